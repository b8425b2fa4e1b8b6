package tables

// Limit constants for JPEG Huffman tables.
const (
	MaxCodeLength = 16  // Longest codeword a BITS list can describe
	AlphabetSize  = 256 // Symbols are byte values
	MaxDCValues   = 12  // DC difference categories 0-11
	MaxACValues   = 256 // (run, size) pairs plus EOB and ZRL
)
