// Package tape parses, repairs and serializes the header and file
// records of T64 tape images. Parsing tolerates the malformed headers
// that buggy authoring tools produced; every correction is counted
// rather than reported as an error, and serialization always emits a
// self-consistent, canonical header.
package tape

import (
	"fmt"

	"github.com/retrofmt/go-t64/internal/codec"
	"github.com/retrofmt/go-t64/internal/types"
)

// matchMagic compares the header bytes against the known magic variants.
// It returns the index into types.MagicVariants, or -1 when no variant
// matches. Index 0 is the canonical magic; anything above it means the
// header needs fixing.
func matchMagic(data []byte) int {
	for i, magic := range types.MagicVariants {
		if len(data) >= len(magic) && string(data[:len(magic)]) == magic {
			return i
		}
	}
	return -1
}

// ParseHeader parses the 64-byte header of a T64 image, applying the
// repairs the format's history requires: a legacy magic variant, a zero
// record capacity, a zero used-record count and a used count above the
// capacity are all normalized. It returns the corrected header and the
// number of fixes applied.
func ParseHeader(data []byte) (*types.T64Header, int, error) {
	if len(data) < types.RecordTableOffset {
		return nil, 0, fmt.Errorf("%w: %d bytes is too small for a header",
			types.ErrNotT64, len(data))
	}

	variant := matchMagic(data[types.HeaderMagicOffset:])
	if variant < 0 {
		return nil, 0, fmt.Errorf("%w: no known magic bytes found", types.ErrNotT64)
	}

	fixes := 0
	if variant > 0 {
		fixes++
	}

	hdr := &types.T64Header{
		Magic:       types.MagicVariants[variant],
		Version:     codec.Uint16(data, types.HeaderVersionOffset),
		MaxRecords:  codec.Uint16(data, types.HeaderMaxRecOffset),
		UsedRecords: codec.Uint16(data, types.HeaderUsedRecOffset),
	}
	copy(hdr.TapeName[:], data[types.HeaderTapeNameOffset:types.HeaderTapeNameOffset+types.HeaderTapeNameLen])

	if hdr.MaxRecords == 0 {
		hdr.MaxRecords = 1
		fixes++
	}
	if hdr.UsedRecords == 0 {
		// required for the record fixes to work at all
		hdr.UsedRecords = 1
		fixes++
	}
	if hdr.UsedRecords > hdr.MaxRecords {
		hdr.UsedRecords = hdr.MaxRecords
		fixes++
	}

	return hdr, fixes, nil
}

// WriteHeader serializes hdr into the first 64 bytes of data. The magic
// is always the canonical one, zero-padded to 32 bytes, and the version
// is always written as the fixed constant, so the emitted header is
// valid regardless of what was read.
func WriteHeader(hdr *types.T64Header, data []byte) {
	magic := data[types.HeaderMagicOffset : types.HeaderMagicOffset+types.HeaderMagicLen]
	for i := range magic {
		magic[i] = 0
	}
	copy(magic, types.MagicCanonical)

	copy(data[types.HeaderTapeNameOffset:types.HeaderTapeNameOffset+types.HeaderTapeNameLen],
		hdr.TapeName[:])

	codec.PutUint16(data, types.HeaderVersionOffset, types.HeaderVersion)
	codec.PutUint16(data, types.HeaderMaxRecOffset, hdr.MaxRecords)
	codec.PutUint16(data, types.HeaderUsedRecOffset, hdr.UsedRecords)
}
