package core

import (
	"testing"
)

// TestObjectType tests the ObjectType String() method
func TestObjectType(t *testing.T) {
	tests := []struct {
		typ  ObjectType
		want string
	}{
		{ObjNull, "Null"},
		{ObjBool, "Bool"},
		{ObjInt, "Int"},
		{ObjReal, "Real"},
		{ObjString, "String"},
		{ObjName, "Name"},
		{ObjArray, "Array"},
		{ObjDict, "Dict"},
		{ObjStream, "Stream"},
		{ObjectType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("ObjectType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPrimitiveObjects tests Type and String of the scalar objects
func TestPrimitiveObjects(t *testing.T) {
	tests := []struct {
		name     string
		obj      Object
		wantType ObjectType
		wantStr  string
	}{
		{"null", Null{}, ObjNull, "null"},
		{"true", Bool(true), ObjBool, "true"},
		{"false", Bool(false), ObjBool, "false"},
		{"int", Int(-17), ObjInt, "-17"},
		{"large int", Int(9223372036854775807), ObjInt, "9223372036854775807"},
		{"real", Real(3.14), ObjReal, "3.14"},
		{"integral real", Real(42.0), ObjReal, "42"},
		{"small real", Real(0.001), ObjReal, "0.001"},
		{"string", String("hello world"), ObjString, "hello world"},
		{"name", Name("Type"), ObjName, "/Type"},
		{"empty name", Name(""), ObjName, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.obj.Type() != tt.wantType {
				t.Errorf("Type() = %v, want %v", tt.obj.Type(), tt.wantType)
			}
			if tt.obj.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", tt.obj.String(), tt.wantStr)
			}
		})
	}
}

// TestArray tests the Array object
func TestArray(t *testing.T) {
	arr := Array{Int(10), Real(2.5), Name("F1")}

	if arr.Type() != ObjArray {
		t.Errorf("Array.Type() = %v, want %v", arr.Type(), ObjArray)
	}
	if arr.String() != "[10 2.5 /F1]" {
		t.Errorf("Array.String() = %v", arr.String())
	}
	if arr.Len() != 3 {
		t.Errorf("Array.Len() = %d, want 3", arr.Len())
	}
	if arr.Get(-1) != nil || arr.Get(3) != nil {
		t.Error("out of range Get should return nil")
	}
	if v, ok := arr.GetInt(0); !ok || v != 10 {
		t.Errorf("GetInt(0) = %v, %v", v, ok)
	}
	if v, ok := arr.GetReal(1); !ok || v != 2.5 {
		t.Errorf("GetReal(1) = %v, %v", v, ok)
	}
	if v, ok := arr.GetName(2); !ok || v != "F1" {
		t.Errorf("GetName(2) = %v, %v", v, ok)
	}
	if _, ok := arr.GetName(0); ok {
		t.Error("GetName(0) should fail on an Int")
	}
	if _, ok := arr.GetInt(5); ok {
		t.Error("GetInt(5) should fail out of range")
	}
}

// TestDict tests the Dict object
func TestDict(t *testing.T) {
	dict := Dict{
		"W":    Int(10),
		"D":    Real(0.5),
		"CS":   Name("DeviceRGB"),
		"T":    String("txt"),
		"IM":   Bool(true),
		"Sub":  Dict{"K": Int(-1)},
		"Arr":  Array{Int(1)},
		"Null": Null{},
	}

	if dict.Type() != ObjDict {
		t.Errorf("Dict.Type() = %v", dict.Type())
	}
	if v, ok := dict.GetInt("W"); !ok || v != 10 {
		t.Errorf("GetInt = %v, %v", v, ok)
	}
	if v, ok := dict.GetReal("D"); !ok || v != 0.5 {
		t.Errorf("GetReal = %v, %v", v, ok)
	}
	if v, ok := dict.GetName("CS"); !ok || v != "DeviceRGB" {
		t.Errorf("GetName = %v, %v", v, ok)
	}
	if v, ok := dict.GetString("T"); !ok || v != "txt" {
		t.Errorf("GetString = %v, %v", v, ok)
	}
	if v, ok := dict.GetBool("IM"); !ok || !bool(v) {
		t.Errorf("GetBool = %v, %v", v, ok)
	}
	if v, ok := dict.GetDict("Sub"); !ok || v["K"] != Int(-1) {
		t.Errorf("GetDict = %v, %v", v, ok)
	}
	if v, ok := dict.GetArray("Arr"); !ok || v.Len() != 1 {
		t.Errorf("GetArray = %v, %v", v, ok)
	}
	if _, ok := dict.GetInt("CS"); ok {
		t.Error("GetInt on a Name should fail")
	}
	if _, ok := dict.GetName("Missing"); ok {
		t.Error("GetName on a missing key should fail")
	}
	if !dict.Has("Null") || dict.Has("Missing") {
		t.Error("Has returned the wrong answer")
	}

	dict.Set("H", Int(20))
	if dict.Get("H") != Int(20) {
		t.Errorf("Set/Get = %v", dict.Get("H"))
	}
}

// TestDictStringSorted tests that Dict.String is deterministic
func TestDictStringSorted(t *testing.T) {
	dict := Dict{"W": Int(1), "BPC": Int(8), "H": Int(2)}
	want := "<</BPC 8 /H 2 /W 1>>"
	for i := 0; i < 5; i++ {
		if got := dict.String(); got != want {
			t.Fatalf("Dict.String() = %q, want %q", got, want)
		}
	}
	keys := dict.Keys()
	if len(keys) != 3 || keys[0] != "BPC" || keys[2] != "W" {
		t.Errorf("Keys() = %v", keys)
	}
}

// TestStream tests the Stream object
func TestStream(t *testing.T) {
	s := &Stream{Dict: Dict{"Length": Int(5)}, Data: []byte("hello")}
	if s.Type() != ObjStream {
		t.Errorf("Stream.Type() = %v", s.Type())
	}
	if s.String() != "stream <</Length 5>> (5 bytes)" {
		t.Errorf("Stream.String() = %q", s.String())
	}
}
