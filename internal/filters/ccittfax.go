package filters

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/image/ccitt"
)

// CCITTFaxDecode decodes CCITT fax data, the usual encoding of bi-level
// inline images in scanned pages. The result holds one bit per pixel, rows
// padded to a whole byte.
//
// K selects the encoding (negative for Group 4, otherwise Group 3).
// Columns defaults to 1728; Rows of 0 lets the decoder find the height.
// EncodedByteAlign and BlackIs1 map to the ccitt Align and Invert options.
func CCITTFaxDecode(data []byte, params Params) ([]byte, error) {
	columns := getIntParam(params, "Columns", 1728)
	if columns <= 0 {
		return nil, fmt.Errorf("CCITTFaxDecode: invalid Columns %d", columns)
	}

	sf := ccitt.Group3
	if getIntParam(params, "K", 0) < 0 {
		sf = ccitt.Group4
	}

	rows := getIntParam(params, "Rows", 0)
	if rows <= 0 {
		rows = ccitt.AutoDetectHeight
	}

	opts := &ccitt.Options{
		Align:  getBoolParam(params, "EncodedByteAlign", false),
		Invert: getBoolParam(params, "BlackIs1", false),
	}

	out, err := io.ReadAll(ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, columns, rows, opts))
	if err != nil {
		return nil, fmt.Errorf("CCITTFaxDecode: %w", err)
	}
	return out, nil
}
