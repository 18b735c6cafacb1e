package types

// CBM DOS file types as stored in the low bits of a C1541 file type byte.
const (
	CbmdosFiletypeDel = 0x00 // DELeted file
	CbmdosFiletypeSeq = 0x01 // SEQuential file
	CbmdosFiletypePrg = 0x02 // PRoGram file
	CbmdosFiletypeUsr = 0x03 // USeR file
	CbmdosFiletypeRel = 0x04 // RELative file
)

// Masks for the flag bits of a C1541 file type byte.
const (
	CbmdosFiletypeMask = 0x07
	CbmdosLockedMask   = 0x40
	CbmdosClosedMask   = 0x80
)

// CbmdosFiletypePrgClosed is the file type written when repairing a record
// with an illegal C1541 type byte: a normal, closed program file.
const CbmdosFiletypePrgClosed = CbmdosClosedMask | CbmdosFiletypePrg // 0x82

// CbmdosBlockSize is the number of data bytes per disk block; the other
// two bytes of a 256-byte sector hold the link to the next block.
const CbmdosBlockSize = 254

// ValidC1541Type reports whether a C1541 file type byte is in the range
// downstream tools accept: a closed DEL, SEQ, PRG, USR or REL file.
func ValidC1541Type(t byte) bool {
	return t >= 0x80 && t < 0x85
}

// CbmdosFiletypeString returns the three-letter name for a file type byte.
func CbmdosFiletypeString(t byte) string {
	switch t & CbmdosFiletypeMask {
	case CbmdosFiletypeDel:
		return "del"
	case CbmdosFiletypeSeq:
		return "seq"
	case CbmdosFiletypePrg:
		return "prg"
	case CbmdosFiletypeUsr:
		return "usr"
	case CbmdosFiletypeRel:
		return "rel"
	default:
		return "???"
	}
}

// NumBlocks returns the number of disk blocks needed for n bytes.
func NumBlocks(n int) int {
	blocks := n / CbmdosBlockSize
	if n%CbmdosBlockSize != 0 {
		blocks++
	}
	return blocks
}
