package huffman

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encode packs text into a payload using the given CodeTable.
func Encode(text string, ct CodeTable) ([]byte, error) {
	return EncodeSymbols(SymbolsFromString(text), ct)
}

// EncodeSymbols packs symbols into a payload using the given CodeTable.
//
// The payload begins with an 8-bit header holding the padding length P,
// followed by the code of each symbol and then P zero bits, all most
// significant bit first.  P is 8 - (code bits mod 8), so it is always in the
// range 1 .. 8, and a byte of padding is written even when the code bits are
// already aligned.
//
// Every symbol must have a Code in ct; otherwise ErrUnknownSymbol is returned
// and nothing is produced.
//
func EncodeSymbols(symbols []Symbol, ct CodeTable) ([]byte, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	var numBits uint64
	for i, symbol := range symbols {
		hc, found := ct.Encode(symbol)
		if !found {
			return nil, fmt.Errorf("%w: %s at index %d", ErrUnknownSymbol, symbol, i)
		}
		numBits += uint64(hc.Size)
	}

	padding := paddingFor(numBits)
	totalBits := headerBits + numBits + uint64(padding)
	assert.Assertf(totalBits%8 == 0, "EncodeSymbols: %d bits is not a whole number of bytes", totalBits)

	var buf bytes.Buffer
	buf.Grow(int(totalBits / 8))
	w := bitio.NewWriter(&buf)

	if err := w.WriteBits(uint64(padding), headerBits); err != nil {
		return nil, err
	}
	for _, symbol := range symbols {
		hc, _ := ct.Encode(symbol)
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}
	if err := w.WriteBits(0, padding); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	assert.Assertf(uint64(buf.Len())*8 == totalBits, "EncodeSymbols: wrote %d bytes, expected %d bits", buf.Len(), totalBits)
	return buf.Bytes(), nil
}
