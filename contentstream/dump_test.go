package contentstream

import (
	"bytes"
	"testing"
)

// TestDump tests the indented outline of content objects
func TestDump(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "text and xobject",
			input: "BT (Hi) Tj [(a) -5 (b)] TJ ET /Im1 Do",
			want: "Text\n" +
				"  Operation (Hi) Tj \"Hi\"\n" +
				"  Operation [(a) -5 (b)] TJ \"ab\"\n" +
				"XObject /Im1 Do\n",
		},
		{
			name:  "nested path",
			input: "q 0 0 m 1 1 l S Q",
			want: "LocalGraphicsState\n" +
				"  Path\n" +
				"    0 0 m\n" +
				"    1 1 l\n" +
				"    S\n",
		},
		{
			name:  "marked content with actual text",
			input: "/Span <</ActualText (fi)>> BDC EMC",
			want: "MarkedContent /Span <</ActualText (fi)>> BDC\n" +
				"  actual text \"fi\"\n",
		},
		{
			name:  "inline image",
			input: "BI /W 2 /CS /G ID ab\nEI",
			want:  "InlineImage <</ColorSpace /DeviceGray /Width 2>> (2 bytes)\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			objs, err := Parse([]byte(tc.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			var buf bytes.Buffer
			if err := Dump(&buf, objs); err != nil {
				t.Fatalf("Dump failed: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("Dump() = %q, want %q", got, tc.want)
			}
		})
	}
}
