package contentstream

import (
	"strings"

	"github.com/tsawler/pdfcontent/core"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the
// operator, in stream order.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "Tm", "q")
	Operands []core.Object // The operands
}

// String renders the operation in content stream syntax.
func (op Operation) String() string {
	var b strings.Builder
	for _, operand := range op.Operands {
		writeObject(&b, operand)
		b.WriteByte(' ')
	}
	b.WriteString(op.Operator)
	return b.String()
}

// Operand returns the operand at index i, or nil if there is none.
func (op Operation) Operand(i int) core.Object {
	if i < 0 || i >= len(op.Operands) {
		return nil
	}
	return op.Operands[i]
}

// StringMode records how a string operand was written in the stream.
type StringMode int

const (
	StringLiteral StringMode = iota // (...)
	StringHex                       // <...>
)

// StringOperand is a string operand tagged with its serialization mode so it
// can be written back the way it was read.
type StringOperand struct {
	Value core.String
	Mode  StringMode
}

func (s StringOperand) Type() core.ObjectType { return core.ObjString }

// String renders the operand in its original syntax.
func (s StringOperand) String() string {
	var b strings.Builder
	writeObject(&b, s)
	return b.String()
}

// Text decodes the string as a PDF text string.
func (s StringOperand) Text() string {
	return s.Value.Text()
}

// stringHook makes the decoder produce StringOperand values for literal and
// hex strings, including those nested in arrays and dictionaries.
func stringHook(tok core.Token) (core.Object, bool) {
	switch tok.Type {
	case core.TokenString:
		return StringOperand{Value: core.String(tok.Value), Mode: StringLiteral}, true
	case core.TokenHexString:
		return StringOperand{Value: core.String(tok.Value), Mode: StringHex}, true
	}
	return nil, false
}
