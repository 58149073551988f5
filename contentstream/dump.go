package contentstream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/pdfcontent/core"
)

// Dump writes an indented outline of content objects, one line per object or
// operation. String operands of text-showing operations are followed by their
// decoded text.
func Dump(w io.Writer, objs []ContentObject) error {
	bw := bufio.NewWriter(w)
	for _, obj := range objs {
		dumpObject(bw, obj, 0)
	}
	return bw.Flush()
}

func dumpObject(w *bufio.Writer, obj ContentObject, depth int) {
	indent := strings.Repeat("  ", depth)

	switch obj.Kind {
	case KindText, KindLocalState:
		fmt.Fprintf(w, "%s%s\n", indent, obj.Kind)
		for _, child := range obj.Children {
			dumpObject(w, child, depth+1)
		}
	case KindMarkedContent:
		fmt.Fprintf(w, "%s%s %s\n", indent, obj.Kind, obj.Operation)
		if text, ok := obj.ActualText(); ok {
			fmt.Fprintf(w, "%s  actual text %q\n", indent, text)
		}
		for _, child := range obj.Children {
			dumpObject(w, child, depth+1)
		}
	case KindPath:
		fmt.Fprintf(w, "%s%s\n", indent, obj.Kind)
		for _, op := range obj.Path {
			fmt.Fprintf(w, "%s  %s\n", indent, op)
		}
	case KindInlineImage:
		img := obj.Image
		if img == nil {
			img = &InlineImage{}
		}
		fmt.Fprintf(w, "%s%s %s (%d bytes)\n", indent, obj.Kind, img.Dict(), len(img.Data()))
	default:
		fmt.Fprintf(w, "%s%s %s", indent, obj.Kind, obj.Operation)
		if text := shownText(obj.Operation); text != "" {
			fmt.Fprintf(w, " %q", text)
		}
		w.WriteByte('\n')
	}
}

// shownText returns the decoded text of the string operands of Tj, TJ, '
// and ".
func shownText(op Operation) string {
	switch op.Operator {
	case "Tj", "'", "\"", "TJ":
	default:
		return ""
	}

	var b strings.Builder
	var collect func(core.Object)
	collect = func(obj core.Object) {
		switch v := obj.(type) {
		case StringOperand:
			b.WriteString(v.Text())
		case core.String:
			b.WriteString(v.Text())
		case core.Array:
			for _, elem := range v {
				collect(elem)
			}
		}
	}
	for _, operand := range op.Operands {
		collect(operand)
	}
	return b.String()
}
