package mark_test

import (
	"fmt"

	"github.com/yyyoichi/whitespace/mark"
)

// ExampleNew demonstrates how to carry a payload as error-corrected whitespace.
func ExampleNew() {
	m := mark.New(2)

	text, err := m.Encode([]byte("Hi"))
	if err != nil {
		panic(err)
	}
	fmt.Println(len([]rune(text)) == m.Len())

	decoded, err := m.Decode(text)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", decoded)
	// Output:
	// true
	// Hi
}

// ExampleWithoutECC demonstrates a mark without error correction, which is
// the plain whitespace encoding of the payload.
func ExampleWithoutECC() {
	m := mark.New(2, mark.WithoutECC())
	fmt.Printf("Len: %d characters (= %d bytes * 8)\n", m.Len(), m.Size())
	// Output:
	// Len: 16 characters (= 2 bytes * 8)
}
