package whitespace_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yyyoichi/whitespace"
)

func ExampleEncode() {
	text := whitespace.Encode([]byte{10, 2})

	// Show Low as 0 and High as 1.
	r := strings.NewReplacer(string(whitespace.Low), "0", string(whitespace.High), "1")
	fmt.Println(len([]rune(text)))
	fmt.Println(r.Replace(text))
	// Output:
	// 16
	// 0000101000000010
}

func ExampleDecode() {
	decoded, err := whitespace.Decode(whitespace.Encode([]byte("Hi")))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", decoded)
	// Output:
	// Hi
}

func ExampleDecode_errors() {
	low := string(whitespace.Low)

	_, err := whitespace.Decode(low + low + " yeet")
	fmt.Println(err)

	var ice *whitespace.InvalidCharacterError
	fmt.Println(errors.As(err, &ice), ice.Position)

	_, err = whitespace.Decode(strings.Repeat(low, 15))
	fmt.Println(err)
	fmt.Println(errors.Is(err, whitespace.ErrInvalidLength))
	// Output:
	// invalid character 'y' at position 3
	// true 3
	// invalid input length 15: must be divisible by 8
	// true
}
