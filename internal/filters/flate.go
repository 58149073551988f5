package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data and undoes the
// predictor named by the Predictor parameter, if any.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return applyPredictor(decompressed, params)
}

// applyPredictor reverses the prediction step shared by Flate and LZW.
// Predictor 1 is identity, 2 is TIFF Predictor 2 and 10-15 select PNG
// predictors chosen per row.
func applyPredictor(data []byte, params Params) ([]byte, error) {
	predictor := getIntParam(params, "Predictor", 1)
	switch {
	case predictor == 1:
		return data, nil
	case predictor == 2:
		return applyTIFFPredictor2(data, params)
	case predictor >= 10 && predictor <= 15:
		return applyPNGPredictor(data, params)
	default:
		return nil, fmt.Errorf("unsupported predictor: %d", predictor)
	}
}

// rowGeometry returns the bytes per pixel and bytes per row described by the
// Colors, Columns and BitsPerComponent parameters. Only 8 bits per component
// is supported.
func rowGeometry(params Params, name string) (bpp, rowSize int, err error) {
	columns := getIntParam(params, "Columns", 1)
	colors := getIntParam(params, "Colors", 1)
	bpc := getIntParam(params, "BitsPerComponent", 8)

	if bpc != 8 {
		return 0, 0, fmt.Errorf("%s only supports 8 bits per component, got %d", name, bpc)
	}
	if columns < 1 || colors < 1 {
		return 0, 0, fmt.Errorf("%s: invalid geometry columns=%d colors=%d", name, columns, colors)
	}
	return colors, columns * colors, nil
}

// applyTIFFPredictor2 adds each sample to the sample one pixel to its left.
func applyTIFFPredictor2(data []byte, params Params) ([]byte, error) {
	bpp, rowSize, err := rowGeometry(params, "TIFF Predictor 2")
	if err != nil {
		return nil, err
	}
	if len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	out := make([]byte, len(data))
	copy(out, data)
	for rowStart := 0; rowStart < len(out); rowStart += rowSize {
		for i := rowStart + bpp; i < rowStart+rowSize; i++ {
			out[i] += out[i-bpp]
		}
	}
	return out, nil
}

// applyPNGPredictor decodes rows that each start with a PNG filter type byte
// (0 None, 1 Sub, 2 Up, 3 Average, 4 Paeth).
func applyPNGPredictor(data []byte, params Params) ([]byte, error) {
	bpp, rowSize, err := rowGeometry(params, "PNG predictor")
	if err != nil {
		return nil, err
	}
	stride := rowSize + 1
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), stride)
	}

	rows := len(data) / stride
	out := make([]byte, rows*rowSize)
	prev := make([]byte, rowSize)

	for r := 0; r < rows; r++ {
		filter := data[r*stride]
		src := data[r*stride+1 : (r+1)*stride]
		cur := out[r*rowSize : (r+1)*rowSize]

		for i := range src {
			var left, upLeft byte
			up := prev[i]
			if i >= bpp {
				left = cur[i-bpp]
				upLeft = prev[i-bpp]
			}

			var predicted byte
			switch filter {
			case 0:
			case 1:
				predicted = left
			case 2:
				predicted = up
			case 3:
				predicted = byte((int(left) + int(up)) / 2)
			case 4:
				predicted = paethPredictor(left, up, upLeft)
			default:
				return nil, fmt.Errorf("failed to decode row %d: unknown PNG predictor: %d", r, filter)
			}
			cur[i] = src[i] + predicted
		}
		prev = cur
	}

	return out, nil
}

// paethPredictor selects the neighbor (left, above, or upper-left) closest to
// the linear prediction a+b-c.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
