package filters

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for filters that are recognised but not
// implemented.
var ErrUnsupported = errors.New("unsupported filter")

// Params represents decode parameters from PDF stream dictionaries.
// Common parameters include Predictor, Columns, Colors, and BitsPerComponent.
type Params map[string]interface{}

var abbreviations = map[string]string{
	"AHx": "ASCIIHexDecode",
	"A85": "ASCII85Decode",
	"LZW": "LZWDecode",
	"Fl":  "FlateDecode",
	"RL":  "RunLengthDecode",
	"CCF": "CCITTFaxDecode",
	"DCT": "DCTDecode",
}

// Canonical expands an abbreviated filter name. Other names are returned
// unchanged.
func Canonical(name string) string {
	if full, ok := abbreviations[name]; ok {
		return full
	}
	return name
}

// Decode applies the named filter to data.
func Decode(name string, data []byte, params Params) ([]byte, error) {
	switch Canonical(name) {
	case "FlateDecode":
		return FlateDecode(data, params)
	case "LZWDecode":
		return LZWDecode(data, params)
	case "ASCIIHexDecode":
		return ASCIIHexDecode(data)
	case "ASCII85Decode":
		return ASCII85Decode(data)
	case "RunLengthDecode":
		return RunLengthDecode(data)
	case "CCITTFaxDecode":
		return CCITTFaxDecode(data, params)
	case "DCTDecode", "JPXDecode":
		return data, nil
	case "JBIG2Decode", "Crypt":
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
	default:
		return nil, fmt.Errorf("unknown filter: %s", name)
	}
}

// getIntParam extracts an integer parameter from Params, returning defaultValue
// if the parameter is missing or cannot be converted to an integer.
func getIntParam(params Params, key string, defaultValue int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// getBoolParam extracts a boolean parameter from Params, returning defaultValue
// if the parameter is missing or not a boolean.
func getBoolParam(params Params, key string, defaultValue bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return defaultValue
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
