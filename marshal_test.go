package yay

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type address struct {
	City string
	Zip  string `yay:"zip_code"`
}

type person struct {
	Name    string
	Age     int
	Height  float64
	Tags    []string
	Home    address
	Friends []address
}

func TestUnmarshalStruct(t *testing.T) {
	src := `
name: "Ada"
age: 36
height: 1.68
tags: ["mathematician", "programmer"]
home:
  city: "London"
  zip_code: "SW1A"
friends:
  - city: "Paris"
    zip_code: "75000"
`
	var p person
	if err := UnmarshalBytes([]byte(src), &p); err != nil {
		t.Fatalf("UnmarshalBytes: %v", err)
	}
	want := person{
		Name:   "Ada",
		Age:    36,
		Height: 1.68,
		Tags:   []string{"mathematician", "programmer"},
		Home:   address{City: "London", Zip: "SW1A"},
		Friends: []address{
			{City: "Paris", Zip: "75000"},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalRejectsOutOfRangeInt(t *testing.T) {
	type small struct {
		N int8
	}
	var s small
	err := UnmarshalBytes([]byte("n: 1000\n"), &s)
	if err == nil {
		t.Fatal("want error for out-of-range int8")
	}
}

func TestUnmarshalRequiresStructPointer(t *testing.T) {
	var s struct{ N int }
	if err := UnmarshalBytes([]byte("n: 1\n"), s); err == nil {
		t.Fatal("want error for non-pointer argument")
	}
}

func TestUnmarshalIntoBigInt(t *testing.T) {
	type big1 struct {
		N *big.Int
	}
	var b big1
	if err := UnmarshalBytes([]byte("n: 123456789012345678901234567890\n"), &b); err != nil {
		t.Fatal(err)
	}
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if b.N.Cmp(want) != 0 {
		t.Errorf("got %v, want %v", b.N, want)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	p := person{
		Name:   "Grace",
		Age:    85,
		Height: 1.6,
		Tags:   []string{"admiral"},
		Home:   address{City: "New York", Zip: "10001"},
	}
	v, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var got person
	if err := Unmarshal(v, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalBytesField(t *testing.T) {
	type blob struct {
		Data []byte
	}
	var b blob
	if err := UnmarshalBytes([]byte("data: <de ad be ef>\n"), &b); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if diff := cmp.Diff(want, b.Data); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}
