package core

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"testing"

	"github.com/tsawler/pdfcontent/internal/filters"
)

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("zlib write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib close failed: %v", err)
	}
	return buf.Bytes()
}

func TestStreamDecodeNoFilter(t *testing.T) {
	s := &Stream{Dict: Dict{}, Data: []byte("q Q")}
	got, err := s.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(got) != "q Q" {
		t.Errorf("Decode() = %q", got)
	}
}

func TestStreamDecodeFlate(t *testing.T) {
	content := []byte("BT /F1 12 Tf (Hello) Tj ET")
	s := &Stream{
		Dict: Dict{"Filter": Name("FlateDecode")},
		Data: zlibBytes(t, content),
	}
	got, err := s.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Decode() = %q, want %q", got, content)
	}
}

func TestStreamDecodeChain(t *testing.T) {
	// ASCIIHex applied first, then Flate
	content := []byte("0 0 m 10 10 l S")
	compressed := zlibBytes(t, content)
	hex := fmt.Sprintf("%X>", compressed)

	s := &Stream{
		Dict: Dict{"Filter": Array{Name("AHx"), Name("Fl")}},
		Data: []byte(hex),
	}
	got, err := s.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Decode() = %q, want %q", got, content)
	}
}

func TestDecodeFiltersParams(t *testing.T) {
	// PNG Up predictor with two columns: the second row adds to the first
	raw := []byte{2, 1, 2, 2, 1, 1}
	params := Dict{"Predictor": Int(12), "Columns": Int(2)}

	got, err := DecodeFilters(zlibBytes(t, raw), Name("FlateDecode"), params)
	if err != nil {
		t.Fatalf("DecodeFilters failed: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 2, 3}) {
		t.Errorf("DecodeFilters() = %v", got)
	}

	// Array params pair up with the filter at the same index
	got, err = DecodeFilters(zlibBytes(t, raw), Array{Name("FlateDecode")}, Array{params})
	if err != nil {
		t.Fatalf("DecodeFilters with array params failed: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 2, 3}) {
		t.Errorf("DecodeFilters() = %v", got)
	}
}

func TestDecodeFiltersErrors(t *testing.T) {
	if _, err := DecodeFilters([]byte("x"), Int(3), nil); err == nil {
		t.Error("expected error for non-name filter")
	}
	if _, err := DecodeFilters([]byte("x"), Array{Int(3)}, nil); err == nil {
		t.Error("expected error for non-name filter in array")
	}
	if _, err := DecodeFilters([]byte("x"), Name("BogusDecode"), nil); err == nil {
		t.Error("expected error for unknown filter")
	}
	_, err := DecodeFilters([]byte("x"), Name("JBIG2Decode"), nil)
	if !errors.Is(err, filters.ErrUnsupported) {
		t.Errorf("JBIG2Decode error = %v, want ErrUnsupported", err)
	}
}

func TestDictToParams(t *testing.T) {
	params := dictToParams(Dict{
		"Columns": Int(4),
		"Scale":   Real(1.5),
		"Black":   Bool(true),
		"Name":    Name("X"),
	})
	if params["Columns"] != 4 || params["Scale"] != 1.5 || params["Black"] != true || params["Name"] != "X" {
		t.Errorf("dictToParams() = %v", params)
	}
	if dictToParams(nil) != nil {
		t.Error("dictToParams(nil) should be nil")
	}
	if paramsObjToDict(Int(1)) != nil {
		t.Error("paramsObjToDict on a non-dict should be nil")
	}
}
