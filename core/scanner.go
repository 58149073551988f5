package core

import (
	"fmt"
	"io"
	"strconv"
)

// TokenType represents the type of token
type TokenType int

const (
	TokenKeyword    TokenType = iota // cm, Tj, BT, ...
	TokenBoolean                     // true, false
	TokenInteger                     // 123
	TokenReal                        // 3.14
	TokenString                      // (hello)
	TokenHexString                   // <48656C6C6F>
	TokenName                        // /Type
	TokenComment                     // % to end of line
	TokenArrayStart                  // [
	TokenArrayEnd                    // ]
	TokenDictStart                   // <<
	TokenDictEnd                     // >>
	TokenNull                        // null
)

// String returns the name of the token type
func (t TokenType) String() string {
	switch t {
	case TokenKeyword:
		return "Keyword"
	case TokenBoolean:
		return "Boolean"
	case TokenInteger:
		return "Integer"
	case TokenReal:
		return "Real"
	case TokenString:
		return "String"
	case TokenHexString:
		return "HexString"
	case TokenName:
		return "Name"
	case TokenComment:
		return "Comment"
	case TokenArrayStart:
		return "ArrayStart"
	case TokenArrayEnd:
		return "ArrayEnd"
	case TokenDictStart:
		return "DictStart"
	case TokenDictEnd:
		return "DictEnd"
	case TokenNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token. Value holds the decoded payload for
// keywords, strings, hex strings, names and comments, and the raw digits for
// numbers. Int, Real and Bool hold the parsed value for their token types.
type Token struct {
	Type  TokenType
	Value []byte
	Int   int64
	Real  float64
	Bool  bool
	Pos   int64 // offset of the token's first byte
}

// Scanner splits a content stream into tokens. It keeps no token history:
// callers that need lookahead record a Mark and Reset to it.
type Scanner struct {
	c Cursor
}

// NewScanner creates a scanner reading from c.
func NewScanner(c Cursor) *Scanner {
	return &Scanner{c: c}
}

// Cursor returns the underlying cursor for raw reads.
func (s *Scanner) Cursor() Cursor {
	return s.c
}

// Offset returns the position of the next unread byte.
func (s *Scanner) Offset() int64 {
	return s.c.Offset()
}

// Mark records the current position.
func (s *Scanner) Mark() Mark {
	return s.c.Mark()
}

// Reset rewinds the scanner to a position recorded by Mark.
func (s *Scanner) Reset(m Mark) error {
	return s.c.Reset(m)
}

// Scan returns the next token, or io.EOF when only whitespace remains.
func (s *Scanner) Scan() (Token, error) {
	b, err := s.skipWhitespace()
	if err != nil {
		return Token{}, err
	}
	pos := s.c.Offset() - 1

	switch {
	case b == '/':
		return s.scanName(pos)
	case isDigit(b) || b == '.' || b == '-' || b == '+':
		return s.scanNumber(pos, b)
	case b == '[':
		return Token{Type: TokenArrayStart, Pos: pos}, nil
	case b == ']':
		return Token{Type: TokenArrayEnd, Pos: pos}, nil
	case b == '<':
		return s.scanAngle(pos)
	case b == '>':
		return s.scanDictEnd(pos)
	case b == '(':
		return s.scanString(pos)
	case b == '%':
		return s.scanComment(pos)
	default:
		return s.scanKeyword(pos, b)
	}
}

// read returns the next byte. io.EOF is passed through unwrapped.
func (s *Scanner) read() (byte, error) {
	b, err := s.c.ReadByte()
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read at offset %d: %w", s.c.Offset(), err)
	}
	return b, err
}

// unread pushes back the byte returned by the last read.
func (s *Scanner) unread() error {
	return s.c.Skip(-1)
}

func (s *Scanner) skipWhitespace() (byte, error) {
	for {
		b, err := s.read()
		if err != nil {
			return 0, err
		}
		if !isWhitespace(b) {
			return b, nil
		}
	}
}

// readRun appends bytes to buf until whitespace, a delimiter or end of input.
// The terminating byte is pushed back.
func (s *Scanner) readRun(buf []byte) ([]byte, error) {
	for {
		b, err := s.read()
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
		if isWhitespace(b) || isDelimiter(b) {
			return buf, s.unread()
		}
		buf = append(buf, b)
	}
}

// scanName reads the bytes of a name after the slash. Names are kept raw:
// #xx escapes are not expanded.
func (s *Scanner) scanName(pos int64) (Token, error) {
	value, err := s.readRun(nil)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: TokenName, Value: value, Pos: pos}, nil
}

// scanNumber reads an integer or real. A '.' anywhere in the run makes it a
// real; the run ends at the first byte that is neither a digit nor '.'.
func (s *Scanner) scanNumber(pos int64, first byte) (Token, error) {
	buf := []byte{first}
	isReal := first == '.'

	for {
		b, err := s.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if b == '.' {
			isReal = true
		} else if !isDigit(b) {
			if err := s.unread(); err != nil {
				return Token{}, err
			}
			break
		}
		buf = append(buf, b)
	}

	if isReal {
		val, err := strconv.ParseFloat(string(buf), 64)
		if err != nil {
			return Token{}, syntaxErr(pos, ErrInvalidNumber, strconv.Quote(string(buf)))
		}
		return Token{Type: TokenReal, Value: buf, Real: val, Pos: pos}, nil
	}

	val, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return Token{}, syntaxErr(pos, ErrInvalidNumber, strconv.Quote(string(buf)))
	}
	return Token{Type: TokenInteger, Value: buf, Int: val, Pos: pos}, nil
}

// scanAngle handles '<', which opens either a dictionary or a hex string.
func (s *Scanner) scanAngle(pos int64) (Token, error) {
	b, err := s.read()
	if err == io.EOF {
		return Token{}, syntaxErr(s.c.Offset(), ErrUnterminatedHexString, openedAt(pos))
	}
	if err != nil {
		return Token{}, err
	}
	if b == '<' {
		return Token{Type: TokenDictStart, Pos: pos}, nil
	}

	var digits []byte
	for b != '>' {
		if !isWhitespace(b) {
			if !isHexDigit(b) {
				return Token{}, syntaxErr(s.c.Offset()-1, ErrMalformedHexString, fmt.Sprintf("invalid hex digit %q", b))
			}
			digits = append(digits, b)
		}
		b, err = s.read()
		if err == io.EOF {
			return Token{}, syntaxErr(s.c.Offset(), ErrUnterminatedHexString, openedAt(pos))
		}
		if err != nil {
			return Token{}, err
		}
	}

	return Token{Type: TokenHexString, Value: decodeHexDigits(digits), Pos: pos}, nil
}

// decodeHexDigits converts pairs of hex digits to bytes. A trailing odd digit
// is treated as if followed by 0.
func decodeHexDigits(digits []byte) []byte {
	out := make([]byte, 0, (len(digits)+1)/2)
	for i := 0; i < len(digits); i += 2 {
		hi := hexValue(digits[i])
		var lo byte
		if i+1 < len(digits) {
			lo = hexValue(digits[i+1])
		}
		out = append(out, hi<<4|lo)
	}
	return out
}

// openedAt is the Detail of an unterminated-string error, whose Offset is the
// end of input.
func openedAt(pos int64) string {
	return fmt.Sprintf("opened at offset %d", pos)
}

func (s *Scanner) scanDictEnd(pos int64) (Token, error) {
	b, err := s.read()
	if err != nil && err != io.EOF {
		return Token{}, err
	}
	if err == io.EOF || b != '>' {
		return Token{}, syntaxErr(pos, ErrMalformedDictEnd, "expected '>>'")
	}
	return Token{Type: TokenDictEnd, Pos: pos}, nil
}

// scanString reads a literal string. Unescaped parentheses nest; the ')' that
// would take the depth below zero closes the string.
func (s *Scanner) scanString(pos int64) (Token, error) {
	var buf []byte
	depth := 0

	for {
		b, err := s.read()
		if err == io.EOF {
			return Token{}, syntaxErr(s.c.Offset(), ErrUnterminatedString, openedAt(pos))
		}
		if err != nil {
			return Token{}, err
		}

		switch b {
		case '(':
			depth++
			buf = append(buf, b)
		case ')':
			depth--
			if depth < 0 {
				return Token{Type: TokenString, Value: buf, Pos: pos}, nil
			}
			buf = append(buf, b)
		case '\\':
			buf, err = s.scanEscape(pos, buf)
			if err != nil {
				return Token{}, err
			}
		default:
			buf = append(buf, b)
		}
	}
}

// scanEscape decodes the sequence following a backslash and appends the
// result to buf.
func (s *Scanner) scanEscape(pos int64, buf []byte) ([]byte, error) {
	e, err := s.read()
	if err == io.EOF {
		return nil, syntaxErr(s.c.Offset(), ErrUnterminatedString, openedAt(pos))
	}
	if err != nil {
		return nil, err
	}

	switch e {
	case 'n':
		return append(buf, '\n'), nil
	case 'r':
		return append(buf, '\r'), nil
	case 't':
		return append(buf, '\t'), nil
	case 'b':
		return append(buf, '\b'), nil
	case 'f':
		return append(buf, '\f'), nil
	case '\r':
		// Line continuation, optionally CR LF.
		next, err := s.read()
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
		if next != '\n' {
			if err := s.unread(); err != nil {
				return nil, err
			}
		}
		return buf, nil
	case '\n':
		return buf, nil
	}

	if !isOctalDigit(e) {
		// (, ) and \ land here along with any byte that has no escape meaning.
		return append(buf, e), nil
	}

	val := int(e - '0')
	for i := 0; i < 2; i++ {
		d, err := s.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isOctalDigit(d) {
			if err := s.unread(); err != nil {
				return nil, err
			}
			break
		}
		val = val*8 + int(d-'0')
	}
	return append(buf, byte(val)), nil
}

// scanComment reads to the end of the line. The end-of-line byte is consumed
// and not included.
func (s *Scanner) scanComment(pos int64) (Token, error) {
	var buf []byte
	for {
		b, err := s.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if b == '\r' || b == '\n' {
			break
		}
		buf = append(buf, b)
	}
	return Token{Type: TokenComment, Value: buf, Pos: pos}, nil
}

// scanKeyword reads an operator. true, false and null are reclassified.
func (s *Scanner) scanKeyword(pos int64, first byte) (Token, error) {
	value, err := s.readRun([]byte{first})
	if err != nil {
		return Token{}, err
	}

	switch string(value) {
	case "true":
		return Token{Type: TokenBoolean, Value: value, Bool: true, Pos: pos}, nil
	case "false":
		return Token{Type: TokenBoolean, Value: value, Bool: false, Pos: pos}, nil
	case "null":
		return Token{Type: TokenNull, Pos: pos}, nil
	}
	return Token{Type: TokenKeyword, Value: value, Pos: pos}, nil
}

// Helper functions

func isWhitespace(b byte) bool {
	// PDF whitespace: space, tab, LF, CR, FF, null
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == 0
}

func isDelimiter(b byte) bool {
	return b == '(' || b == ')' || b == '<' || b == '>' || b == '[' || b == ']' ||
		b == '/' || b == '%'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
