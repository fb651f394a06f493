package unitinterval

import "fmt"

func ExampleFromByte() {
	fmt.Printf("max of input range: %08b -> %v\n", 0xff, FromByte(0xff))
	fmt.Printf("mid of input range: %08b -> %v\n", 0x7f, FromByte(0x7f))
	fmt.Printf("min of input range: %08b -> %v\n", 0x00, FromByte(0x00))

	// Output:
	// max of input range: 11111111 -> 0.99609375
	// mid of input range: 01111111 -> 0.49609375
	// min of input range: 00000000 -> 0
}
