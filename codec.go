package huffman

import (
	"fmt"
	"unicode/utf8"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("texthuff")

// The package only logs progress at DEBUG.  Keep it quiet on go-logging's
// default backend; programs that install their own backend choose the level.
func init() {
	logging.SetLevel(logging.WARNING, "texthuff")
}

// Result holds everything produced by one call to Compress.  The Table is
// required to Decompress the Payload; it is not stored in the Payload.
type Result struct {
	Payload     []byte
	Table       CodeTable
	Frequencies FrequencyTable
}

// BuildCodeTable counts the characters of text and derives its CodeTable.
func BuildCodeTable(text string) (CodeTable, error) {
	ct, _, err := buildCodeTable(text)
	return ct, err
}

func buildCodeTable(text string) (CodeTable, FrequencyTable, error) {
	if len(text) == 0 {
		return CodeTable{}, FrequencyTable{}, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return CodeTable{}, FrequencyTable{}, ErrInvalidText
	}
	ft := CountFrequencies(text)
	ct := NewCodeTable(BuildTree(ft))
	return ct, ft, nil
}

// Compress builds a CodeTable for text and encodes text with it.
func Compress(text string) (Result, error) {
	ct, ft, err := buildCodeTable(text)
	if err != nil {
		return Result{}, err
	}

	payload, err := Encode(text, ct)
	if err != nil {
		return Result{}, fmt.Errorf("encode: %w", err)
	}

	log.Debugf("compressed %d symbols (%d distinct) into %d bytes; %v", ft.Total(), ft.Len(), len(payload), ct)
	return Result{Payload: payload, Table: ct, Frequencies: ft}, nil
}

// Decompress decodes a payload produced by Compress, using the CodeTable
// returned alongside it.
func Decompress(payload []byte, ct CodeTable) (string, error) {
	text, err := Decode(payload, ct)
	if err != nil {
		return "", err
	}
	log.Debugf("decompressed %d bytes into %d bytes of text", len(payload), len(text))
	return text, nil
}
