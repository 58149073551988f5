package contentstream

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/pdfcontent/core"
)

// Write serializes content objects back into content stream syntax, one
// operation per line. String operands keep their literal or hex form, so
// parsing the output yields the same objects, with one exception: an inline
// image body that is empty or does not start with a whitespace byte is
// written after a single space separator, which parsing keeps as the first
// byte of Body. Data is the same either way.
func Write(w io.Writer, objs []ContentObject) error {
	bw := bufio.NewWriter(w)
	for _, obj := range objs {
		writeContentObject(bw, obj)
	}
	return bw.Flush()
}

// byteWriter is satisfied by both bufio.Writer and strings.Builder.
type byteWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

func writeContentObject(w byteWriter, obj ContentObject) {
	switch obj.Kind {
	case KindText:
		writeLine(w, Operation{Operator: OpBeginText})
		writeChildren(w, obj.Children)
		writeLine(w, Operation{Operator: OpEndText})
	case KindLocalState:
		writeLine(w, Operation{Operator: OpSaveState})
		writeChildren(w, obj.Children)
		writeLine(w, Operation{Operator: OpRestoreState})
	case KindMarkedContent:
		writeLine(w, obj.Operation)
		writeChildren(w, obj.Children)
		writeLine(w, Operation{Operator: OpEndMarked})
	case KindPath:
		for _, op := range obj.Path {
			writeLine(w, op)
		}
	case KindInlineImage:
		writeInlineImage(w, obj.Image)
	default:
		writeLine(w, obj.Operation)
	}
}

func writeChildren(w byteWriter, children []ContentObject) {
	for _, child := range children {
		writeContentObject(w, child)
	}
}

func writeLine(w byteWriter, op Operation) {
	for _, operand := range op.Operands {
		writeObject(w, operand)
		w.WriteByte(' ')
	}
	w.WriteString(op.Operator)
	w.WriteByte('\n')
}

func writeInlineImage(w byteWriter, img *InlineImage) {
	if img == nil {
		img = &InlineImage{}
	}
	w.WriteString(OpBeginInlineImage)
	w.WriteByte('\n')
	for i, v := range img.Header {
		if i > 0 {
			w.WriteByte(' ')
		}
		writeObject(w, v)
	}
	if len(img.Header) > 0 {
		w.WriteByte('\n')
	}
	w.WriteString(OpInlineImageData)
	// ID must be followed by one whitespace byte before the data.
	if len(img.Body) == 0 || !isWhitespace(img.Body[0]) {
		w.WriteByte(' ')
	}
	w.Write(img.Body)
	w.WriteString(OpEndInlineImage)
	w.WriteByte('\n')
}

// writeObject writes a single operand in content stream syntax.
func writeObject(w byteWriter, obj core.Object) {
	switch v := obj.(type) {
	case nil:
		w.WriteString("null")
	case core.Real:
		s := strconv.FormatFloat(float64(v), 'f', -1, 64)
		if !strings.Contains(s, ".") {
			// Keep reals distinguishable from integers.
			s += ".0"
		}
		w.WriteString(s)
	case StringOperand:
		if v.Mode == StringHex {
			w.WriteByte('<')
			w.WriteString(strings.ToUpper(hex.EncodeToString([]byte(v.Value))))
			w.WriteByte('>')
			return
		}
		writeLiteral(w, string(v.Value))
	case core.String:
		writeLiteral(w, string(v))
	case core.Array:
		w.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				w.WriteByte(' ')
			}
			writeObject(w, elem)
		}
		w.WriteByte(']')
	case core.Dict:
		w.WriteString("<<")
		for i, key := range v.Keys() {
			if i > 0 {
				w.WriteByte(' ')
			}
			w.WriteByte('/')
			w.WriteString(key)
			w.WriteByte(' ')
			writeObject(w, v[key])
		}
		w.WriteString(">>")
	default:
		w.WriteString(obj.String())
	}
}

// writeLiteral writes s as a literal string, escaping the bytes that would
// otherwise change its meaning.
func writeLiteral(w byteWriter, s string) {
	w.WriteByte('(')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', ')', '\\':
			w.WriteByte('\\')
			w.WriteByte(c)
		case '\r':
			w.WriteString(`\r`)
		case '\n':
			w.WriteString(`\n`)
		default:
			w.WriteByte(c)
		}
	}
	w.WriteByte(')')
}
