package tape

import (
	"github.com/retrofmt/go-t64/internal/codec"
	"github.com/retrofmt/go-t64/internal/types"
)

// ParseRecord parses a single 32-byte file record. No validation happens
// here: judging a record takes cross-record context, which is the extent
// resolver's job. RealEndAddr starts out as the declared end address and
// is only authoritative after ResolveExtents has run.
func ParseRecord(raw []byte, index int) types.T64Record {
	rec := types.T64Record{
		Offset:    codec.Uint32(raw, types.RecDataOffset),
		StartAddr: codec.Uint16(raw, types.RecStartAddrOffset),
		EndAddr:   codec.Uint16(raw, types.RecEndAddrOffset),
		C64sType:  raw[types.RecC64sTypeOffset],
		C1541Type: raw[types.RecC1541TypeOffset],
		Index:     index,
		Status:    types.RecordOK,
	}
	copy(rec.Filename[:], raw[types.RecFilenameOffset:types.RecFilenameOffset+types.RecFilenameLen])
	rec.RealEndAddr = rec.EndAddr
	return rec
}

// WriteRecord serializes rec into a 32-byte raw record. The end address
// field gets the real, corrected end address, never the declared one.
func WriteRecord(rec *types.T64Record, raw []byte) {
	raw[types.RecC64sTypeOffset] = rec.C64sType
	raw[types.RecC1541TypeOffset] = rec.C1541Type
	codec.PutUint16(raw, types.RecStartAddrOffset, rec.StartAddr)
	codec.PutUint16(raw, types.RecEndAddrOffset, rec.RealEndAddr)
	codec.PutUint32(raw, types.RecDataOffset, rec.Offset)
	copy(raw[types.RecFilenameOffset:types.RecFilenameOffset+types.RecFilenameLen], rec.Filename[:])
}
