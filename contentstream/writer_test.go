package contentstream

import (
	"bytes"
	"testing"

	"github.com/tsawler/pdfcontent/core"
)

// TestWrite tests the serialized form of content objects
func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		input []ContentObject
		want  string
	}{
		{name: "nothing"},
		{
			name:  "local state",
			input: []ContentObject{{
				Kind:     KindLocalState,
				Children: []ContentObject{bare("cm", core.Int(1), core.Int(0), core.Int(0), core.Int(1), core.Int(10), core.Int(20))},
			}},
			want: "q\n1 0 0 1 10 20 cm\nQ\n",
		},
		{
			name:  "reals keep a decimal point",
			input: []ContentObject{bare("w", core.Real(2)), bare("g", core.Real(0.25))},
			want:  "2.0 w\n0.25 g\n",
		},
		{
			name:  "strings keep their mode",
			input: []ContentObject{
				bare("Tj", lit("a(b)\\c\n")),
				bare("Tj", StringOperand{Value: "\x00\xff", Mode: StringHex}),
			},
			want: "(a\\(b\\)\\\\c\\n) Tj\n<00FF> Tj\n",
		},
		{
			name:  "marked content with properties",
			input: []ContentObject{{
				Kind:      KindMarkedContent,
				Operation: op("BDC", core.Name("P"), core.Dict{"MCID": core.Int(0), "Lang": lit("en")}),
			}},
			want: "/P <</Lang (en) /MCID 0>> BDC\nEMC\n",
		},
		{
			name:  "inline image",
			input: []ContentObject{{
				Kind: KindInlineImage,
				Image: &InlineImage{
					Header: []core.Object{core.Name("W"), core.Int(1), core.Name("H"), core.Int(1)},
					Body:   []byte(" \x80\n"),
				},
			}},
			want: "BI\n/W 1 /H 1\nID \x80\nEI\n",
		},
		{
			name:  "inline image without separator",
			input: []ContentObject{{Kind: KindInlineImage, Image: &InlineImage{Body: []byte("x")}}},
			want:  "BI\nID xEI\n",
		},
		{
			name:  "null and nested arrays",
			input: []ContentObject{bare("d", core.Array{core.Int(3), core.Array{}}, core.Null{})},
			want:  "[3 []] null d\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tc.input); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("Write() = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestWriteRoundTrip tests that written content parses back to the same objects
func TestWriteRoundTrip(t *testing.T) {
	input := "q 1 0 0 1 10 20 cm BT /F1 12 Tf <48656C6C6F> Tj (a\\(b) Tj [(W) 120 (orld)] TJ ET " +
		"0 0 m 10 10 l 1.5 w S /Span <</MCID 0 /ActualText (x)>> BDC /Im1 Do EMC " +
		"BI /W 2 /H 1 /BPC 8 /CS /G ID \x01\x02\nEI /Sh0 sh Q % trailing comment\n"

	objs, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, objs); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	again, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse of written stream failed: %v\n%s", err, buf.String())
	}
	checkObjects(t, again, objs)
}

// TestOperationString tests rendering a single operation
func TestOperationString(t *testing.T) {
	o := op("Td", core.Real(72), core.Int(-10))
	if got := o.String(); got != "72.0 -10 Td" {
		t.Errorf("String() = %q", got)
	}
	if got := op("BT").String(); got != "BT" {
		t.Errorf("String() = %q", got)
	}
	if got := lit("x").String(); got != "(x)" {
		t.Errorf("StringOperand.String() = %q", got)
	}
	if o.Operand(1) != core.Int(-10) || o.Operand(2) != nil {
		t.Error("Operand returned the wrong value")
	}
}

// TestWriteInlineImageSeparator tests that a body without a leading separator
// gains one space and keeps its data
func TestWriteInlineImageSeparator(t *testing.T) {
	for _, body := range []string{"", "x", "\x10\x20"} {
		objs := []ContentObject{{Kind: KindInlineImage, Image: &InlineImage{Body: []byte(body)}}}

		var buf bytes.Buffer
		if err := Write(&buf, objs); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		again, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("Parse of %q failed: %v", buf.String(), err)
		}
		if len(again) != 1 || again[0].Image == nil {
			t.Fatalf("expected one inline image, got %+v", again)
		}

		img := again[0].Image
		if string(img.Body) != " "+body {
			t.Errorf("Body = %q, want %q", img.Body, " "+body)
		}
		if string(img.Data()) != body {
			t.Errorf("Data() = %q, want %q", img.Data(), body)
		}
	}
}
