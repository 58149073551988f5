// Package filters provides PDF stream decode filters.
//
// Content streams and inline images name their encodings with filter names.
// [Decode] dispatches on a name, accepting both the full names used in stream
// dictionaries and the abbreviations allowed in inline image headers:
//
//	decoded, err := filters.Decode("Fl", data, nil)
//
// # Supported Filters
//
//   - FlateDecode (Fl): zlib/deflate with optional TIFF or PNG predictors
//   - LZWDecode (LZW): with the EarlyChange parameter
//   - ASCIIHexDecode (AHx)
//   - ASCII85Decode (A85)
//   - RunLengthDecode (RL)
//   - CCITTFaxDecode (CCF): Group 3 and Group 4
//   - DCTDecode (DCT) and JPXDecode: returned unchanged, the data is already
//     an image file
//
// # Decode Parameters
//
// Filters accept a Params map for additional parameters:
//
//	params := filters.Params{
//	    "Predictor": 12,
//	    "Columns":   100,
//	    "Colors":    3,
//	}
//	decoded, err := filters.FlateDecode(data, params)
package filters
