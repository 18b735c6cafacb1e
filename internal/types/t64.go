package types

import "errors"

// T64 header layout. All multi-byte fields are little endian. The magic
// bytes are ASCII, padded with zeros; the tape name is PETSCII, padded
// with spaces.
const (
	HeaderMagicOffset    = 0x00 // magic bytes, unreliable in the wild
	HeaderMagicLen       = 0x20
	HeaderVersionOffset  = 0x20 // tape version, u16le
	HeaderMaxRecOffset   = 0x22 // maximum number of records, u16le
	HeaderUsedRecOffset  = 0x24 // current number of records, u16le
	HeaderTapeNameOffset = 0x28
	HeaderTapeNameLen    = 0x18

	// RecordTableOffset is where the file record table starts.
	RecordTableOffset = 0x40

	// RecordSize is the size of a single raw file record.
	RecordSize = 0x20
)

// Sub-offsets within a 32-byte file record.
const (
	RecC64sTypeOffset  = 0x00 // C64S file type
	RecC1541TypeOffset = 0x01 // C1541 (CBM DOS) file type
	RecStartAddrOffset = 0x02 // load address on the C64, u16le
	RecEndAddrOffset   = 0x04 // end address (exclusive), u16le
	RecDataOffset      = 0x08 // offset of file data in the container, u32le
	RecFilenameOffset  = 0x10 // PETSCII filename
	RecFilenameLen     = 0x10
)

// HeaderVersion is the version word written when serializing a header,
// regardless of what the source image declared.
const HeaderVersion = 0x0101

// MagicCanonical is the correct T64 magic, as generated by C64S 2.52.
// Serialized images always carry this value, zero-padded to 32 bytes.
const MagicCanonical = "C64S tape image file"

// MagicVariants lists magic bytes found in T64 files in the wild. The
// first entry is the canonical one; any other match means the header was
// produced by a buggy authoring tool and counts as a fix.
var MagicVariants = []string{
	MagicCanonical,
	"C64S tape file",
	"C64 tape image file",
}

// C64S file types stored in the first byte of a record. Values above
// C64sTypeNormal mark memory snapshots of the C64S emulator, which do not
// represent loadable program data.
const (
	C64sTypeFree   = 0x00
	C64sTypeNormal = 0x01
)

// RecordStatus indicates what the verifier decided about a record.
type RecordStatus int

const (
	RecordOK      RecordStatus = iota // record is consistent
	RecordFixed                       // record was repaired
	RecordSkipped                     // record is a memory snapshot
)

func (s RecordStatus) String() string {
	switch s {
	case RecordOK:
		return "OK"
	case RecordFixed:
		return "fixed"
	case RecordSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// T64Header holds the parsed, possibly corrected, container header.
type T64Header struct {
	Magic       string // matched magic variant
	Version     uint16 // read verbatim, not validated
	MaxRecords  uint16
	UsedRecords uint16
	TapeName    [HeaderTapeNameLen]byte // PETSCII, space padded
}

// T64Record holds the metadata of a single file inside a container.
//
// Index is the record's position in the directory as declared by the
// image and is stable identity; the verifier sorts records by data offset
// for analysis and restores declaration order afterwards.
type T64Record struct {
	Filename    [RecFilenameLen]byte // PETSCII, space padded
	Offset      uint32               // offset of file data in the container
	StartAddr   uint16
	EndAddr     uint16 // end address as declared, often wrong
	RealEndAddr uint16 // end address after verification, authoritative
	C64sType    byte
	C1541Type   byte
	Index       int
	Status      RecordStatus
}

var (
	// ErrNotT64 is returned when no known magic bytes are found.
	ErrNotT64 = errors.New("not a T64 image")

	// ErrIndex is returned for a record index outside [0, used records).
	ErrIndex = errors.New("record index out of range")

	// ErrNoTarget is returned by a write when no output path is available.
	ErrNoTarget = errors.New("no output path available")
)

// FieldSpec describes one fixed field of a packed on-image structure.
type FieldSpec struct {
	Name   string
	Offset int
	Width  int
}

// HeaderLayout describes the 64-byte header, byte for byte. The parser
// and writer use the offset constants above; this table exists so the
// layout can be checked in isolation.
var HeaderLayout = []FieldSpec{
	{"magic", HeaderMagicOffset, HeaderMagicLen},
	{"version", HeaderVersionOffset, 2},
	{"max records", HeaderMaxRecOffset, 2},
	{"used records", HeaderUsedRecOffset, 2},
	{"tape name", HeaderTapeNameOffset, HeaderTapeNameLen},
}

// RecordLayout describes a 32-byte file record.
var RecordLayout = []FieldSpec{
	{"c64s type", RecC64sTypeOffset, 1},
	{"c1541 type", RecC1541TypeOffset, 1},
	{"start address", RecStartAddrOffset, 2},
	{"end address", RecEndAddrOffset, 2},
	{"data offset", RecDataOffset, 4},
	{"filename", RecFilenameOffset, RecFilenameLen},
}
