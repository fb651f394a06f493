package floatbits

// binary32 layout.
//   31 30     23 22                    0
//   _|_________|_______________________
//   seeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmm
const (
	// Radix is the base raised to the decoded exponent. It is fixed by the standard
	// and never stored in the bit pattern.
	Radix = 2
	// ExponentBits is the width of the exponent field.
	ExponentBits = 8
	// MantissaBits is the width of the fraction field.
	MantissaBits = 23
	// Bias is subtracted from the raw exponent to get the signed power of Radix.
	Bias = 1<<(ExponentBits-1) - 1

	// ExponentMask masks the exponent field after it is shifted down.
	ExponentMask = 1<<ExponentBits - 1
	// FractionMask masks the fraction field.
	FractionMask = 1<<MantissaBits - 1

	signShift = ExponentBits + MantissaBits

	// MinPower and MaxPower bound the decoded power of finite values.
	// Subnormals share MinPower with the smallest normal numbers.
	MinPower = 1 - Bias
	MaxPower = ExponentMask - 1 - Bias

	canonicalNaN = 0x7fc00000
)
