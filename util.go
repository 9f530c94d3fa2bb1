package huffman

const (
	// maxBitsPerCode is the widest Code that fits in Code.Bits.
	maxBitsPerCode = 64

	// headerBits is the width of the padding header at the start of every
	// payload.
	headerBits = 8

	minPadding = 1
	maxPadding = 8
)

// paddingFor returns the number of zero bits appended after numBits code bits.
// The header itself is a whole byte, so only the code bits matter.  An
// already aligned stream still receives a full byte of padding.
func paddingFor(numBits uint64) byte {
	return byte(8 - numBits%8)
}
