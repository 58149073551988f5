package core

import (
	"fmt"
	"io"
)

// DecodeHook lets a caller replace the default decoding of a primitive token.
// When it returns true the returned object is used as is. The hook is
// consulted for every primitive token, including elements nested inside
// arrays and dictionaries.
type DecodeHook func(tok Token) (Object, bool)

// Decoder builds PDF values from scanner tokens. Arrays and dictionaries are
// decoded by recursive descent up to their matching end token. Comments
// between values are skipped.
type Decoder struct {
	scanner *Scanner
	hook    DecodeHook
}

// NewDecoder creates a decoder reading tokens from s.
func NewDecoder(s *Scanner) *Decoder {
	return &Decoder{scanner: s}
}

// SetHook installs a hook for primitive tokens. A nil hook restores the
// default decoding.
func (d *Decoder) SetHook(hook DecodeHook) {
	d.hook = hook
}

// Decode scans the next token and decodes the value it starts. It returns
// io.EOF if no token remains.
func (d *Decoder) Decode() (Object, error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	return d.DecodeToken(tok)
}

// DecodeToken decodes the value that starts with tok, reading further tokens
// for arrays and dictionaries.
func (d *Decoder) DecodeToken(tok Token) (Object, error) {
	switch tok.Type {
	case TokenArrayStart:
		return d.decodeArray()
	case TokenDictStart:
		return d.decodeDict()
	}

	if d.hook != nil {
		if obj, ok := d.hook(tok); ok {
			return obj, nil
		}
	}

	switch tok.Type {
	case TokenInteger:
		return Int(tok.Int), nil
	case TokenReal:
		return Real(tok.Real), nil
	case TokenBoolean:
		return Bool(tok.Bool), nil
	case TokenNull:
		return Null{}, nil
	case TokenName:
		return Name(tok.Value), nil
	case TokenString, TokenHexString:
		return String(tok.Value), nil
	default:
		return nil, syntaxErr(tok.Pos, ErrUnexpectedToken, describe(tok))
	}
}

// next returns the next non-comment token.
func (d *Decoder) next() (Token, error) {
	for {
		tok, err := d.scanner.Scan()
		if err != nil {
			return Token{}, err
		}
		if tok.Type != TokenComment {
			return tok, nil
		}
	}
}

// nextInside is next for tokens inside a composite value, where end of input
// is fatal.
func (d *Decoder) nextInside(what string) (Token, error) {
	tok, err := d.next()
	if err == io.EOF {
		return Token{}, syntaxErr(d.scanner.Offset(), ErrUnexpectedEOF, "inside "+what)
	}
	return tok, err
}

// decodeArray parses elements after '[' up to the matching ']'.
func (d *Decoder) decodeArray() (Object, error) {
	arr := Array{}
	for {
		tok, err := d.nextInside("array")
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenArrayEnd {
			return arr, nil
		}

		obj, err := d.DecodeToken(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// decodeDict parses key/value pairs after '<<' up to the matching '>>'.
func (d *Decoder) decodeDict() (Object, error) {
	dict := make(Dict)
	for {
		tok, err := d.nextInside("dictionary")
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenDictEnd {
			return dict, nil
		}
		if tok.Type != TokenName {
			return nil, syntaxErr(tok.Pos, ErrUnexpectedToken, "dictionary key must be a name, got "+describe(tok))
		}
		key := string(tok.Value)

		tok, err = d.nextInside("dictionary")
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenDictEnd {
			return nil, syntaxErr(tok.Pos, ErrUnexpectedToken, fmt.Sprintf("missing value for key /%s", key))
		}

		value, err := d.DecodeToken(tok)
		if err != nil {
			return nil, fmt.Errorf("dictionary value for key /%s: %w", key, err)
		}
		dict[key] = value
	}
}

func describe(tok Token) string {
	if len(tok.Value) > 0 {
		return fmt.Sprintf("%v %q", tok.Type, tok.Value)
	}
	return tok.Type.String()
}
