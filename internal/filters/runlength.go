package filters

import (
	"fmt"
)

// RunLengthDecode decodes data compressed with the PostScript run-length
// scheme. A length byte L below 128 copies the next L+1 bytes, above 128
// repeats the next byte 257-L times, and 128 marks end of data.
func RunLengthDecode(data []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(data); {
		l := int(data[i])
		i++
		switch {
		case l == 128:
			return out, nil
		case l < 128:
			end := i + l + 1
			if end > len(data) {
				return nil, fmt.Errorf("run length literal of %d bytes exceeds data", l+1)
			}
			out = append(out, data[i:end]...)
			i = end
		default:
			if i >= len(data) {
				return nil, fmt.Errorf("run length repeat missing its byte")
			}
			for j := 0; j < 257-l; j++ {
				out = append(out, data[i])
			}
			i++
		}
	}
	return out, nil
}
