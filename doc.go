// Package huffman implements a static Huffman text compressor.  Symbol
// frequencies are counted over the whole input, a prefix tree is built with a
// stable min-heap, and the input is packed into a bitstream that starts with
// an 8-bit padding header.
//
// The payload does not carry the code table.  Decoding requires the same
// CodeTable that produced the payload, either kept in memory or restored from
// its JSON form.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
