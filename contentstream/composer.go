package contentstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tsawler/pdfcontent/core"
)

// ErrOperationLimit is returned when a composer parses more operations than
// allowed by WithMaxOperations.
var ErrOperationLimit = errors.New("operation limit exceeded")

// Composer turns a content stream into a sequence of content objects. It owns
// its scanner and is not safe for concurrent use. Objects are produced on
// demand by Next; a composer cannot be restarted.
type Composer struct {
	scanner *core.Scanner
	decoder *core.Decoder
	log     zerolog.Logger
	maxOps  int
	ops     int
	err     error
}

// NewComposer creates a composer reading from c.
func NewComposer(c core.Cursor, opts ...Option) *Composer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	scanner := core.NewScanner(c)
	decoder := core.NewDecoder(scanner)
	decoder.SetHook(stringHook)

	return &Composer{
		scanner: scanner,
		decoder: decoder,
		log:     o.logger,
		maxOps:  o.maxOps,
	}
}

// Parse parses a whole content stream.
func Parse(data []byte, opts ...Option) ([]ContentObject, error) {
	return NewComposer(core.NewByteCursor(data), opts...).All()
}

// ParseStream decodes the filters of a content stream object and parses the
// result.
func ParseStream(s *core.Stream, opts ...Option) ([]ContentObject, error) {
	data, err := s.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode content stream: %w", err)
	}
	return Parse(data, opts...)
}

// Next returns the next content object, or io.EOF when the stream is
// exhausted. After an error every further call returns the same error.
func (c *Composer) Next() (ContentObject, error) {
	if c.err != nil {
		return ContentObject{}, c.err
	}
	obj, err := c.step()
	if err != nil {
		c.err = err
		return ContentObject{}, err
	}
	return obj, nil
}

// All collects the remaining content objects.
func (c *Composer) All() ([]ContentObject, error) {
	var objs []ContentObject
	for {
		obj, err := c.Next()
		if err == io.EOF {
			return objs, nil
		}
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
}

// step parses one operation and builds the content object it starts.
func (c *Composer) step() (ContentObject, error) {
	op, err := c.readOperation()
	if err != nil {
		return ContentObject{}, err
	}

	switch {
	case op.Operator == OpPaintXObject:
		return ContentObject{Kind: KindXObject, Operation: op}, nil

	case op.Operator == OpShading:
		return ContentObject{Kind: KindShading, Operation: op}, nil

	case IsPathStart(op.Operator):
		return c.readPath(op)

	case op.Operator == OpBeginText:
		children, err := c.readNested("text object")
		if err != nil {
			return ContentObject{}, err
		}
		return ContentObject{Kind: KindText, Children: children}, nil

	case op.Operator == OpSaveState:
		children, err := c.readNested("graphics state block")
		if err != nil {
			return ContentObject{}, err
		}
		return ContentObject{Kind: KindLocalState, Children: children}, nil

	case IsMarkedContentStart(op.Operator):
		children, err := c.readNested("marked content")
		if err != nil {
			return ContentObject{}, err
		}
		return ContentObject{Kind: KindMarkedContent, Operation: op, Children: children}, nil

	case op.Operator == OpBeginInlineImage:
		return c.readInlineImage()
	}

	return ContentObject{Kind: KindOperation, Operation: op}, nil
}

// readOperation collects operands up to the next operator. It returns io.EOF
// if the stream ends before an operator is found.
func (c *Composer) readOperation() (Operation, error) {
	var operands []core.Object
	for {
		tok, err := c.scanner.Scan()
		if err == io.EOF {
			if len(operands) > 0 {
				c.log.Debug().
					Int("operands", len(operands)).
					Msg("content stream ends with operands and no operator")
			}
			return Operation{}, io.EOF
		}
		if err != nil {
			return Operation{}, err
		}

		switch tok.Type {
		case core.TokenComment:
			continue
		case core.TokenKeyword:
			c.ops++
			if c.maxOps > 0 && c.ops > c.maxOps {
				return Operation{}, fmt.Errorf("%w: more than %d operations at offset %d",
					ErrOperationLimit, c.maxOps, tok.Pos)
			}
			return Operation{Operator: string(tok.Value), Operands: operands}, nil
		}

		obj, err := c.decoder.DecodeToken(tok)
		if err != nil {
			return Operation{}, err
		}
		operands = append(operands, obj)
	}
}

// readNested collects content objects until a closing operator, which is
// consumed and dropped. End of stream closes the sequence as well.
func (c *Composer) readNested(what string) ([]ContentObject, error) {
	var children []ContentObject
	for {
		obj, err := c.step()
		if err == io.EOF {
			c.log.Debug().
				Str("construct", what).
				Int("children", len(children)).
				Msg("end of content stream closes open construct")
			return children, nil
		}
		if err != nil {
			return nil, err
		}
		if obj.closes() {
			return children, nil
		}
		children = append(children, obj)
	}
}

// readPath collects the operations of a path started by first. The grammar
// has no end marker for paths: once a painting operator has been seen, the
// first non-painting operation is pushed back and ends the path.
func (c *Composer) readPath(first Operation) (ContentObject, error) {
	path := []Operation{first}
	closeable := false

	for {
		mark := c.scanner.Mark()
		op, err := c.readOperation()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ContentObject{}, err
		}

		painting := IsPathPainting(op.Operator)
		if closeable && !painting {
			if err := c.scanner.Reset(mark); err != nil {
				return ContentObject{}, fmt.Errorf("failed to roll back path lookahead: %w", err)
			}
			c.ops--
			c.log.Debug().
				Int64("offset", int64(mark)).
				Str("operator", op.Operator).
				Int("operations", len(path)).
				Msg("path ends before operator")
			break
		}
		if painting {
			closeable = true
		}
		path = append(path, op)
	}

	return ContentObject{Kind: KindPath, Path: path}, nil
}

// readInlineImage reads the header operands up to ID and then the raw image
// bytes up to EI.
func (c *Composer) readInlineImage() (ContentObject, error) {
	img := &InlineImage{}
	obj := ContentObject{Kind: KindInlineImage, Image: img}

	for {
		tok, err := c.scanner.Scan()
		if err == io.EOF {
			c.log.Debug().Msg("content stream ends inside inline image header")
			return obj, nil
		}
		if err != nil {
			return ContentObject{}, err
		}
		if tok.Type == core.TokenComment {
			continue
		}
		if tok.Type == core.TokenKeyword {
			if string(tok.Value) != OpInlineImageData {
				c.log.Debug().
					Int64("offset", tok.Pos).
					Str("keyword", string(tok.Value)).
					Msg("inline image header ended by unexpected keyword")
			}
			break
		}

		value, err := c.decoder.DecodeToken(tok)
		if err != nil {
			return ContentObject{}, err
		}
		img.Header = append(img.Header, value)
	}

	body, closed, err := readImageBody(c.scanner.Cursor())
	if err != nil {
		return ContentObject{}, fmt.Errorf("failed to read inline image data: %w", err)
	}
	if !closed {
		c.log.Debug().Int("bytes", len(body)).Msg("content stream ends inside inline image data")
	}
	img.Body = body
	return obj, nil
}
