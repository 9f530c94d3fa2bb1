package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when asked to compress zero symbols.
	ErrEmptyInput = errors.New("input is empty")

	// ErrSourceNotFound is returned when the file to read does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrMalformedPayload is returned when a payload cannot be decoded with
	// the given CodeTable: the padding header is out of range, or the bits
	// do not end on a complete code.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUnknownSymbol is returned when the text to encode contains a
	// Symbol with no Code in the CodeTable.
	ErrUnknownSymbol = errors.New("symbol has no code")

	// ErrInvalidText is returned when the text to compress is not UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")

	// ErrInvalidTable is returned when a serialized CodeTable is not a
	// usable prefix code.
	ErrInvalidTable = errors.New("invalid code table")
)
