// Package contentstream groups the operations of a PDF content stream into a
// tree of content objects.
//
// A [Composer] pulls operations from a [core.Scanner] and classifies them:
// text objects (BT ... ET), locally scoped graphics state (q ... Q), marked
// content (BMC/BDC ... EMC), paths, inline images, XObject and shading
// invocations, and bare operations. Each result is a [ContentObject] whose
// Kind says which fields are set.
//
//	objs, err := contentstream.Parse([]byte("q 1 0 0 1 10 20 cm Q"))
//	// objs[0].Kind == KindLocalState
//	// objs[0].Children[0].Operation.Operator == "cm"
//
// Operator meaning is not interpreted beyond what is needed for grouping, and
// operand counts are not validated.
//
// A missing ET, Q, EMC or EI at the end of the stream closes the open
// construct with whatever was collected. Malformed tokens are fatal and are
// reported as [*core.SyntaxError] values with the byte offset of the problem.
package contentstream
