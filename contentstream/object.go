package contentstream

import (
	"github.com/tsawler/pdfcontent/core"
)

// Kind identifies which variant a ContentObject holds.
type Kind int

const (
	KindOperation     Kind = iota // a bare operation
	KindPath                      // path construction and painting operations
	KindText                      // BT ... ET
	KindLocalState                // q ... Q
	KindMarkedContent             // BMC/BDC ... EMC
	KindXObject                   // Do
	KindShading                   // sh
	KindInlineImage               // BI ... ID ... EI
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindOperation:
		return "Operation"
	case KindPath:
		return "Path"
	case KindText:
		return "Text"
	case KindLocalState:
		return "LocalGraphicsState"
	case KindMarkedContent:
		return "MarkedContent"
	case KindXObject:
		return "XObject"
	case KindShading:
		return "Shading"
	case KindInlineImage:
		return "InlineImage"
	default:
		return "Unknown"
	}
}

// ContentObject is one parsed unit of a content stream. Which fields are set
// depends on Kind:
//
//   - KindOperation, KindXObject, KindShading: Operation
//   - KindPath: Path, starting with the m or re that opened it
//   - KindText, KindLocalState: Children
//   - KindMarkedContent: Operation (the BMC or BDC) and Children
//   - KindInlineImage: Image
//
// The opening and closing operators of Text, LocalState and MarkedContent
// are not stored in Children.
type ContentObject struct {
	Kind      Kind
	Operation Operation
	Path      []Operation
	Children  []ContentObject
	Image     *InlineImage
}

// closes reports whether the object is a bare closing operator, which ends
// the nested sequence being collected.
func (o ContentObject) closes() bool {
	return o.Kind == KindOperation && IsClosing(o.Operation.Operator)
}

// Operations flattens the object back into operations in stream order. The
// opening and closing operators of nested constructs are re-created. An
// inline image becomes BI, ID (carrying the header) and EI without its data.
func (o ContentObject) Operations() []Operation {
	switch o.Kind {
	case KindOperation, KindXObject, KindShading:
		return []Operation{o.Operation}
	case KindPath:
		return append([]Operation(nil), o.Path...)
	case KindText:
		return wrapOperations(Operation{Operator: OpBeginText}, o.Children, OpEndText)
	case KindLocalState:
		return wrapOperations(Operation{Operator: OpSaveState}, o.Children, OpRestoreState)
	case KindMarkedContent:
		return wrapOperations(o.Operation, o.Children, OpEndMarked)
	case KindInlineImage:
		var header []core.Object
		if o.Image != nil {
			header = o.Image.Header
		}
		return []Operation{
			{Operator: OpBeginInlineImage},
			{Operator: OpInlineImageData, Operands: header},
			{Operator: OpEndInlineImage},
		}
	}
	return nil
}

func wrapOperations(open Operation, children []ContentObject, closeOp string) []Operation {
	ops := []Operation{open}
	for _, child := range children {
		ops = append(ops, child.Operations()...)
	}
	return append(ops, Operation{Operator: closeOp})
}

// Name returns the resource name operand of an XObject or shading
// invocation, e.g. Im1 for "/Im1 Do".
func (o ContentObject) Name() (core.Name, bool) {
	if o.Kind != KindXObject && o.Kind != KindShading {
		return "", false
	}
	name, ok := o.Operation.Operand(0).(core.Name)
	return name, ok
}

// Tag returns the tag of a marked-content sequence.
func (o ContentObject) Tag() (core.Name, bool) {
	if o.Kind != KindMarkedContent {
		return "", false
	}
	tag, ok := o.Operation.Operand(0).(core.Name)
	return tag, ok
}

// Properties returns the property list operand of a BDC sequence: an inline
// dictionary or the name of a resource. It is nil for BMC.
func (o ContentObject) Properties() core.Object {
	if o.Kind != KindMarkedContent || o.Operation.Operator != OpBeginMarkedProps {
		return nil
	}
	return o.Operation.Operand(1)
}

// ActualText returns the /ActualText entry of an inline BDC property list.
func (o ContentObject) ActualText() (string, bool) {
	props, ok := o.Properties().(core.Dict)
	if !ok {
		return "", false
	}
	switch v := props.Get("ActualText").(type) {
	case StringOperand:
		return v.Text(), true
	case core.String:
		return v.Text(), true
	}
	return "", false
}
