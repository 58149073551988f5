package filters

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"io"

	tifflzw "golang.org/x/image/tiff/lzw"
)

// LZWDecode decompresses LZW data. With the default EarlyChange of 1 the code
// width grows one code early, which is the variant TIFF uses; EarlyChange 0
// is the plain variant from compress/lzw.
func LZWDecode(data []byte, params Params) ([]byte, error) {
	var reader io.ReadCloser
	if getIntParam(params, "EarlyChange", 1) == 0 {
		reader = lzw.NewReader(bytes.NewReader(data), lzw.MSB, 8)
	} else {
		reader = tifflzw.NewReader(bytes.NewReader(data), tifflzw.MSB, 8)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("lzw decompression failed: %w", err)
	}

	return applyPredictor(decompressed, params)
}
