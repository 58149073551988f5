package contentstream

import (
	"io"

	"github.com/tsawler/pdfcontent/core"
	"github.com/tsawler/pdfcontent/internal/filters"
)

// InlineImage is an image embedded in the content stream between BI and EI.
type InlineImage struct {
	// Header holds the key/value operands between BI and ID, in order.
	Header []core.Object
	// Body holds every byte after the ID keyword up to, not including, the
	// first "EI". It starts with the separator byte that ended ID.
	Body []byte
}

var inlineKeys = map[string]string{
	"BPC": "BitsPerComponent",
	"CS":  "ColorSpace",
	"D":   "Decode",
	"DP":  "DecodeParms",
	"F":   "Filter",
	"H":   "Height",
	"IM":  "ImageMask",
	"I":   "Interpolate",
	"L":   "Length",
	"W":   "Width",
}

var inlineColorSpaces = map[string]string{
	"G":    "DeviceGray",
	"RGB":  "DeviceRGB",
	"CMYK": "DeviceCMYK",
	"I":    "Indexed",
}

// Data returns the image bytes without the separator after ID and without
// one end-of-line (CR LF, LF or CR) before EI. Other trailing bytes, spaces
// and NULs included, are sample data and are kept.
func (img *InlineImage) Data() []byte {
	data := img.Body
	if len(data) > 0 && isWhitespace(data[0]) {
		data = data[1:]
	}
	switch n := len(data); {
	case n >= 2 && data[n-2] == '\r' && data[n-1] == '\n':
		data = data[:n-2]
	case n >= 1 && (data[n-1] == '\n' || data[n-1] == '\r'):
		data = data[:n-1]
	}
	return data
}

// Dict returns the header as a dictionary with abbreviated keys, color
// spaces and filter names expanded to their full forms. A trailing key
// without a value and entries whose key is not a name are dropped.
func (img *InlineImage) Dict() core.Dict {
	dict := make(core.Dict)
	for i := 0; i+1 < len(img.Header); i += 2 {
		key, ok := img.Header[i].(core.Name)
		if !ok {
			continue
		}
		k := string(key)
		if full, ok := inlineKeys[k]; ok {
			k = full
		}

		value := img.Header[i+1]
		switch k {
		case "ColorSpace":
			value = expandColorSpace(value)
		case "Filter":
			value = expandFilter(value)
		}
		dict[k] = value
	}
	return dict
}

// Decode runs the image data through the filters named in the header.
func (img *InlineImage) Decode() ([]byte, error) {
	dict := img.Dict()
	return core.DecodeFilters(img.Data(), dict.Get("Filter"), dict.Get("DecodeParms"))
}

func expandColorSpace(obj core.Object) core.Object {
	switch v := obj.(type) {
	case core.Name:
		if full, ok := inlineColorSpaces[string(v)]; ok {
			return core.Name(full)
		}
	case core.Array:
		// [/I base hival lookup]
		out := make(core.Array, len(v))
		copy(out, v)
		for i := 0; i < len(out) && i < 2; i++ {
			out[i] = expandColorSpace(out[i])
		}
		return out
	}
	return obj
}

func expandFilter(obj core.Object) core.Object {
	switch v := obj.(type) {
	case core.Name:
		return core.Name(filters.Canonical(string(v)))
	case core.Array:
		out := make(core.Array, len(v))
		for i, f := range v {
			out[i] = expandFilter(f)
		}
		return out
	}
	return obj
}

// readImageBody reads raw bytes until the two-byte sequence "EI". It reports
// false if the input ended first.
func readImageBody(c core.Cursor) ([]byte, bool, error) {
	var body []byte
	var prev byte
	for {
		b, err := c.ReadByte()
		if err == io.EOF {
			return body, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		if prev == 'E' && b == 'I' {
			return body[:len(body)-1], true, nil
		}
		body = append(body, b)
		prev = b
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == 0
}
