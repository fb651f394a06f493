package floatbits

import (
	"fmt"
	"io"
	"strings"
)

const tableRow = "%-8s | %-23s | %v\n"

// WriteTable writes the fields of f to w, each one as raw bits and as a decoded value:
//
//	field    | as bits                 | as real number
//	sign     | 0                       | 1
//	exponent | 10000100                | 32
//	mantissa | 01010011010111000010100 | 1.325625
//	value    | 4229ae14                | 42.42
//
// Decoded values are replaced with the category name for infinities and NaNs.
func WriteTable(w io.Writer, f float32) error {
	fields := Split(f)
	d := fields.Decode()
	var exp, mant interface{} = d.Exponent, d.Mantissa
	if d.Category.IsSpecial() {
		exp, mant = d.Category, d.Category
	}
	rows := [...]struct {
		name    string
		bits    string
		decoded interface{}
	}{
		{"field", "as bits", "as real number"},
		{"sign", fmt.Sprintf("%01b", fields.Sign), d.Sign},
		{"exponent", fmt.Sprintf("%08b", fields.Exponent), exp},
		{"mantissa", fmt.Sprintf("%023b", fields.Fraction), mant},
		{"value", fmt.Sprintf("%08x", fields.Bits()), d.Float32()},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, tableRow, row.name, row.bits, row.decoded); err != nil {
			return err
		}
	}
	return nil
}

// Table returns the table written by WriteTable as a string.
func Table(f float32) string {
	var builder strings.Builder
	_ = WriteTable(&builder, f)
	return builder.String()
}
