package filters

import (
	"fmt"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data.
// Whitespace is ignored and '>' marks end of data. An odd final digit is
// treated as if followed by 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)/2)
	var hi byte
	half := false

	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}

		v, err := hexDigitToByte(c)
		if err != nil {
			return nil, err
		}
		if half {
			out = append(out, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}

	if half {
		out = append(out, hi<<4)
	}
	return out, nil
}

// ASCII85Decode decodes ASCII base-85 encoded data. Each group of five
// characters from '!' to 'u' yields four bytes, 'z' stands for four zero
// bytes, and "~>" marks end of data.
func ASCII85Decode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*4/5)
	var group [5]byte
	n := 0

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case isWhitespace(c):
			continue
		case c == '~':
			if i+1 < len(data) && data[i+1] == '>' {
				return flush85(out, group, n), nil
			}
			return nil, fmt.Errorf("invalid ASCII85 character: %c", c)
		case c == 'z' && n == 0:
			out = append(out, 0, 0, 0, 0)
			continue
		case c < '!' || c > 'u':
			return nil, fmt.Errorf("invalid ASCII85 character: %c", c)
		}

		group[n] = c - '!'
		n++
		if n == 5 {
			out = flush85(out, group, 5)
			n = 0
		}
	}

	return flush85(out, group, n), nil
}

// flush85 appends the bytes encoded by the first n digits of group. A partial
// group is padded with the highest digit value.
func flush85(out []byte, group [5]byte, n int) []byte {
	if n <= 1 {
		return out
	}
	for i := n; i < 5; i++ {
		group[i] = 84
	}

	var value uint32
	for _, d := range group {
		value = value*85 + uint32(d)
	}
	for j := 0; j < n-1; j++ {
		out = append(out, byte(value>>(24-8*j)))
	}
	return out
}

// hexDigitToByte converts a hexadecimal character to its numeric value (0-15).
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %c", c)
	}
}
