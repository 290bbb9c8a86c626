// Package huffman builds optimal prefix-free binary coding trees from
// weighted symbols.  Each leaf's code is derived from the finished tree as a
// string of '0' and '1' decisions read from the root.  These trees are the
// foundation of entropy coders such as the one used by DEFLATE.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2
//
package huffman
