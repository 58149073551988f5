package contentstream

// Operators that affect grouping.
const (
	OpPaintXObject     = "Do"
	OpShading          = "sh"
	OpMoveTo           = "m"
	OpRectangle        = "re"
	OpBeginText        = "BT"
	OpEndText          = "ET"
	OpSaveState        = "q"
	OpRestoreState     = "Q"
	OpBeginMarked      = "BMC"
	OpBeginMarkedProps = "BDC"
	OpEndMarked        = "EMC"
	OpBeginInlineImage = "BI"
	OpInlineImageData  = "ID"
	OpEndInlineImage   = "EI"
)

// pathPainting lists the operators that stroke, fill or end a path.
var pathPainting = map[string]bool{
	"S":  true,
	"s":  true,
	"f":  true,
	"F":  true,
	"f*": true,
	"B":  true,
	"B*": true,
	"b":  true,
	"b*": true,
	"n":  true,
}

// IsPathPainting reports whether op paints (or discards) the current path.
func IsPathPainting(op string) bool {
	return pathPainting[op]
}

// IsPathStart reports whether op begins a path: a new subpath or a rectangle.
func IsPathStart(op string) bool {
	return op == OpMoveTo || op == OpRectangle
}

// IsMarkedContentStart reports whether op opens a marked-content sequence.
func IsMarkedContentStart(op string) bool {
	return op == OpBeginMarked || op == OpBeginMarkedProps
}

// IsClosing reports whether op ends a nested construct.
func IsClosing(op string) bool {
	switch op {
	case OpEndText, OpRestoreState, OpEndMarked, OpEndInlineImage:
		return true
	}
	return false
}
