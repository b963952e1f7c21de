package yay

import (
	"math/big"
	"strings"
	"testing"
)

func TestEmitScalars(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{IntFromInt64(42), "42"},
		{Float(1.5), "1.5"},
		{Str("hi"), "'hi'"},
		{Bytes([]byte{0xde, 0xad}), "<de ad>"},
		{Bytes(nil), "<>"},
	}
	for _, tt := range tests {
		got, err := Emit(tt.v, WithIndent(false))
		if err != nil {
			t.Fatalf("Emit(%v): %v", tt.v, err)
		}
		if strings.TrimSpace(got) != tt.want {
			t.Errorf("Emit(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestEmitDoesNotGroupLargeIntegers(t *testing.T) {
	got, err := Emit(IntFromInt64(1000000), WithIndent(false))
	if err != nil {
		t.Fatal(err)
	}
	want := "1000000"
	if strings.TrimSpace(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitNullDocumentIsNullLiteral(t *testing.T) {
	got, err := Emit(Null)
	if err != nil {
		t.Fatal(err)
	}
	if got != "null" {
		t.Errorf("got %q, want %q", got, "null")
	}
}

func TestEmitInlineArray(t *testing.T) {
	v := Array([]Value{IntFromInt64(1), IntFromInt64(2), IntFromInt64(3)})
	got, err := Emit(v, WithIndent(false))
	if err != nil {
		t.Fatal(err)
	}
	want := "[1, 2, 3]"
	if strings.TrimSpace(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitBlockObject(t *testing.T) {
	obj := NewObject()
	obj.AsObject().Set("a", IntFromInt64(1))
	obj.AsObject().Set("b", IntFromInt64(2))
	got, err := Emit(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := "a: 1\nb: 2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitNestedBlockObject(t *testing.T) {
	inner := NewObject()
	inner.AsObject().Set("b", IntFromInt64(1))
	outer := NewObject()
	outer.AsObject().Set("a", inner)
	got, err := Emit(outer)
	if err != nil {
		t.Fatal(err)
	}
	want := "a:\n  b: 1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitQuotesNonSimpleKeys(t *testing.T) {
	obj := NewObject()
	obj.AsObject().Set("has space", IntFromInt64(1))
	got, err := Emit(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := "'has space': 1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitRoundTripsThroughParse(t *testing.T) {
	src := "a: 1\nb:\n  - 1\n  - 2\n"
	v, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Emit(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != src {
		t.Errorf("round trip mismatch:\ngot:  %q\nwant: %q", got, src)
	}
}

func TestEmitBigIntRoundTrip(t *testing.T) {
	n, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	v := Int(n)
	got, err := Emit(v, WithIndent(false))
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(back) {
		t.Errorf("round trip mismatch: got %v, want %v", back.AsInt(), v.AsInt())
	}
}

func TestEmitDoubleQuotesEscapedString(t *testing.T) {
	got, err := Emit(Str("a\nb"), WithIndent(false))
	if err != nil {
		t.Fatal(err)
	}
	want := `"a\nb"`
	if strings.TrimSpace(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
