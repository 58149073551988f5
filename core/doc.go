// Package core provides the low-level primitives for reading PDF content
// streams: the object model, a rewindable byte cursor, the token scanner and
// a decoder that turns tokens into values.
//
// # Object Types
//
// PDF values are represented by types satisfying the Object interface:
//
//   - [Null] - the PDF null object
//   - [Bool] - PDF boolean values (true/false)
//   - [Int] - PDF integers
//   - [Real] - PDF real numbers (floating point)
//   - [String] - the decoded bytes of a literal or hexadecimal string
//   - [Name] - PDF name objects (e.g., /Type, /Font)
//   - [Array] - PDF arrays
//   - [Dict] - PDF dictionaries
//
// [Stream] pairs a dictionary with encoded bytes; [Stream.Decode] applies its
// filter chain.
//
// # Scanning
//
// A [Scanner] reads one [Token] per call from a [Cursor]:
//
//	s := core.NewScanner(core.NewByteCursor(data))
//	for {
//	    tok, err := s.Scan()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use tok
//	}
//
// The scanner keeps no token history. Lookahead is done by saving a [Mark]
// and calling [Scanner.Reset] to rewind.
//
// # Decoding
//
// A [Decoder] builds values from tokens, descending into arrays and
// dictionaries. A [DecodeHook] can override how primitive tokens are decoded.
//
// # Errors
//
// Malformed input is reported as a [*SyntaxError] carrying the byte offset
// where it was detected. Its Err field is one of the Err* sentinels and can
// be tested with errors.Is.
package core
