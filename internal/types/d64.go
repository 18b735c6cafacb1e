package types

// D64 disk image geometry for a standard 35-track CBM DOS disk. The D64
// model is independent of the T64 pipeline; it only shares the CBM DOS
// file type constants.
const (
	D64Size = 174848 // 35 tracks, no error info

	D64TrackMin = 1
	D64TrackMax = 35

	D64BlockSizeRaw  = 256 // includes the 2-byte next-block link
	D64BlockSizeData = 254
)

// BAM and directory locations on track 18.
const (
	D64BamOffset = 0x16500
	D64BamTrack  = 18
	D64BamSector = 0
	D64DirTrack  = 18
	D64DirSector = 1
)

// Offsets within the BAM sector.
const (
	D64BamDirTrackOffset   = 0x00
	D64BamDirSectorOffset  = 0x01
	D64BamDosVersionOffset = 0x02
	D64BamDiskNameOffset   = 0x90
	D64BamDiskIDOffset     = 0xa2
)

const (
	D64DiskNameLen = 16
	D64DiskIDLen   = 5
)

// D64TrackInfo gives the image offset and sector count of one track.
type D64TrackInfo struct {
	Offset  int
	Sectors int
}

// D64TrackTable maps track numbers (1-based, index 0 unused) to their
// image offsets and per-track sector counts across the four speed zones.
var D64TrackTable = [D64TrackMax + 1]D64TrackInfo{
	{},
	// tracks 1-17
	{0x00000, 21}, {0x01500, 21}, {0x02a00, 21}, {0x03f00, 21},
	{0x05400, 21}, {0x06900, 21}, {0x07e00, 21}, {0x09300, 21},
	{0x0a800, 21}, {0x0bd00, 21}, {0x0d200, 21}, {0x0e700, 21},
	{0x0fc00, 21}, {0x11100, 21}, {0x12600, 21}, {0x13b00, 21},
	{0x15000, 21},
	// tracks 18-24
	{0x16500, 19}, {0x17800, 19}, {0x18b00, 19}, {0x19e00, 19},
	{0x1b100, 19}, {0x1c400, 19}, {0x1d700, 19},
	// tracks 25-30
	{0x1ea00, 18}, {0x1fc00, 18}, {0x20e00, 18}, {0x22000, 18},
	{0x23200, 18}, {0x24400, 18},
	// tracks 31-35
	{0x25600, 17}, {0x26700, 17}, {0x27800, 17}, {0x28900, 17},
	{0x29a00, 17},
}
