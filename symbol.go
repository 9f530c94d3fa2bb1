package huffman

import (
	"math"
	"strconv"
)

// Symbol represents a single character of text, i.e. a Unicode code point.
// Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted character for this Symbol.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// SymbolsFromString splits text into its Symbols.
func SymbolsFromString(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, ch := range text {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsToString joins Symbols back into text.
func SymbolsToString(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = rune(s)
	}
	return string(runes)
}
