package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrofmt/go-t64/internal/codec"
	"github.com/retrofmt/go-t64/internal/types"
)

// createTestRecord builds a 32-byte raw record buffer.
func createTestRecord(c64sType, c1541Type byte, start, end uint16, offset uint32, filename string) []byte {
	raw := make([]byte, types.RecordSize)
	raw[types.RecC64sTypeOffset] = c64sType
	raw[types.RecC1541TypeOffset] = c1541Type
	codec.PutUint16(raw, types.RecStartAddrOffset, start)
	codec.PutUint16(raw, types.RecEndAddrOffset, end)
	codec.PutUint32(raw, types.RecDataOffset, offset)

	name := raw[types.RecFilenameOffset : types.RecFilenameOffset+types.RecFilenameLen]
	for i := range name {
		name[i] = 0x20
	}
	copy(name, filename)
	return raw
}

func TestParseRecord(t *testing.T) {
	raw := createTestRecord(0x01, 0x82, 0x0801, 0x1000, 0x00000400, "GAME")

	rec := ParseRecord(raw, 3)

	assert.Equal(t, byte(0x01), rec.C64sType)
	assert.Equal(t, byte(0x82), rec.C1541Type)
	assert.Equal(t, uint16(0x0801), rec.StartAddr)
	assert.Equal(t, uint16(0x1000), rec.EndAddr)
	assert.Equal(t, uint32(0x00000400), rec.Offset)
	assert.Equal(t, 3, rec.Index)
	assert.Equal(t, types.RecordOK, rec.Status)
	assert.Equal(t, []byte("GAME"), rec.Filename[:4])
	assert.Equal(t, byte(0x20), rec.Filename[types.RecFilenameLen-1])

	// real end address defaults to the declared one until resolved
	assert.Equal(t, rec.EndAddr, rec.RealEndAddr)
}

func TestParseRecordDoesNotValidate(t *testing.T) {
	// garbage type bytes pass through untouched, the extent resolver
	// owns all validation
	raw := createTestRecord(0x05, 0x00, 0x2000, 0x1000, 12, "SNAPSHOT")

	rec := ParseRecord(raw, 0)

	assert.Equal(t, byte(0x05), rec.C64sType)
	assert.Equal(t, byte(0x00), rec.C1541Type)
	assert.Equal(t, types.RecordOK, rec.Status)
}

func TestWriteRecordUsesRealEndAddress(t *testing.T) {
	rec := types.T64Record{
		Offset:      0x00000400,
		StartAddr:   0x0801,
		EndAddr:     0x1000,
		RealEndAddr: 0x2000,
		C64sType:    0x01,
		C1541Type:   0x82,
	}
	copy(rec.Filename[:], "GAME            ")

	raw := make([]byte, types.RecordSize)
	WriteRecord(&rec, raw)

	// the declared end address is gone, only the real one is written
	assert.Equal(t, uint16(0x2000), codec.Uint16(raw, types.RecEndAddrOffset))
	assert.Equal(t, uint16(0x0801), codec.Uint16(raw, types.RecStartAddrOffset))
	assert.Equal(t, uint32(0x00000400), codec.Uint32(raw, types.RecDataOffset))
	assert.Equal(t, byte(0x01), raw[types.RecC64sTypeOffset])
	assert.Equal(t, byte(0x82), raw[types.RecC1541TypeOffset])
	assert.Equal(t, rec.Filename[:], raw[types.RecFilenameOffset:types.RecFilenameOffset+types.RecFilenameLen])
}

func TestRecordRoundTrip(t *testing.T) {
	raw := createTestRecord(0x01, 0x81, 0xc000, 0xc800, 0x00001234, "LOADER")

	rec := ParseRecord(raw, 0)
	out := make([]byte, types.RecordSize)
	WriteRecord(&rec, out)

	// an unresolved record serializes back to its input, except for the
	// reserved bytes the parser never reads
	assert.Equal(t, raw[:types.RecDataOffset], out[:types.RecDataOffset])
	assert.Equal(t, raw[types.RecFilenameOffset:], out[types.RecFilenameOffset:])
}
