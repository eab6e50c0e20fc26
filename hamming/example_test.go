package hamming_test

import (
	"fmt"

	"github.com/katalvlaran/infocode/hamming"
)

// ExampleEncodeNibble encodes d = 1011 and repairs a flipped data bit.
func ExampleEncodeNibble() {
	cw, _ := hamming.EncodeNibble(0b1011)
	bad, _ := cw.Flip(6)
	fix := hamming.Correct(bad)
	fmt.Println(cw, bad, fix.Syndrome, fix.Corrected)
	// Output:
	// 0110011 0110001 6 0110011
}

// ExampleCorrectByte protects one byte and repairs one error per half.
func ExampleCorrectByte() {
	word := hamming.EncodeByte('A')
	bad, _ := word.Flip(1)
	bad, _ = bad.Flip(14)
	fix := hamming.CorrectByte(bad)
	fmt.Printf("%s\n%s\n%c\n", bad, fix.Corrected, fix.Corrected.Data())
	// Output:
	// 00011001101000
	// 10011001101001
	// A
}
