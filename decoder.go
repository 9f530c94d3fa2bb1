package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Decode unpacks a payload produced by Encode, using the same CodeTable.
func Decode(payload []byte, ct CodeTable) (string, error) {
	symbols, err := DecodeSymbols(payload, ct)
	if err != nil {
		return "", err
	}
	return SymbolsToString(symbols), nil
}

// DecodeSymbols unpacks a payload produced by EncodeSymbols, using the same
// CodeTable.
//
// The header must declare between 1 and 8 bits of padding, and the bits
// between the header and the padding must be a non-empty sequence of
// complete codes.  Anything else fails with ErrMalformedPayload.  The values
// of the padding bits are not checked.
//
func DecodeSymbols(payload []byte, ct CodeTable) ([]Symbol, error) {
	totalBits := uint64(len(payload)) * 8
	if totalBits < headerBits {
		return nil, fmt.Errorf("%w: %d bytes is too short for the header", ErrMalformedPayload, len(payload))
	}

	r := bitio.NewReader(bytes.NewReader(payload))

	padding, err := r.ReadBits(headerBits)
	if err != nil {
		return nil, err
	}
	if padding < minPadding || padding > maxPadding {
		return nil, fmt.Errorf("%w: padding length %d is out of range %d .. %d", ErrMalformedPayload, padding, minPadding, maxPadding)
	}
	if totalBits < headerBits+padding {
		return nil, fmt.Errorf("%w: padding length %d exceeds the %d bits that follow the header", ErrMalformedPayload, padding, totalBits-headerBits)
	}

	numBits := totalBits - headerBits - padding
	if numBits == 0 {
		return nil, fmt.Errorf("%w: no code bits", ErrMalformedPayload)
	}

	minSize := uint64(ct.MinSize())
	if minSize == 0 {
		minSize = 1
	}
	out := make([]Symbol, 0, numBits/minSize)

	var candidate Code
	for pos := uint64(0); pos < numBits; pos++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, err
		}
		candidate = candidate.Append(uint(bit))
		if symbol, found := ct.Decode(candidate); found {
			out = append(out, symbol)
			candidate = Code{}
			continue
		}
		if candidate.Size >= ct.MaxSize() {
			return nil, fmt.Errorf("%w: no code matches %s at bit %d", ErrMalformedPayload, candidate, headerBits+pos)
		}
	}
	if candidate.Size != 0 {
		return nil, fmt.Errorf("%w: stream ends inside code %s", ErrMalformedPayload, candidate)
	}
	return out, nil
}
