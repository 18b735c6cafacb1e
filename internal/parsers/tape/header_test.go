package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrofmt/go-t64/internal/codec"
	"github.com/retrofmt/go-t64/internal/types"
)

// createTestHeader builds a 64-byte header buffer.
func createTestHeader(magic string, version, maxRec, usedRec uint16, tapeName string) []byte {
	data := make([]byte, types.RecordTableOffset)
	copy(data[types.HeaderMagicOffset:], magic)
	codec.PutUint16(data, types.HeaderVersionOffset, version)
	codec.PutUint16(data, types.HeaderMaxRecOffset, maxRec)
	codec.PutUint16(data, types.HeaderUsedRecOffset, usedRec)

	name := data[types.HeaderTapeNameOffset : types.HeaderTapeNameOffset+types.HeaderTapeNameLen]
	for i := range name {
		name[i] = 0x20
	}
	copy(name, tapeName)
	return data
}

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		name          string
		magic         string
		maxRec        uint16
		usedRec       uint16
		expectedMax   uint16
		expectedUsed  uint16
		expectedFixes int
	}{
		{
			name:          "canonical header needs no fixes",
			magic:         "C64S tape image file",
			maxRec:        30,
			usedRec:       10,
			expectedMax:   30,
			expectedUsed:  10,
			expectedFixes: 0,
		},
		{
			name:          "legacy magic counts one fix",
			magic:         "C64 tape image file",
			maxRec:        30,
			usedRec:       10,
			expectedMax:   30,
			expectedUsed:  10,
			expectedFixes: 1,
		},
		{
			name:          "short legacy magic counts one fix",
			magic:         "C64S tape file",
			maxRec:        30,
			usedRec:       10,
			expectedMax:   30,
			expectedUsed:  10,
			expectedFixes: 1,
		},
		{
			name:          "zero max records clamped to one",
			magic:         "C64S tape image file",
			maxRec:        0,
			usedRec:       1,
			expectedMax:   1,
			expectedUsed:  1,
			expectedFixes: 1,
		},
		{
			name:          "zero used records clamped to one",
			magic:         "C64S tape image file",
			maxRec:        30,
			usedRec:       0,
			expectedMax:   30,
			expectedUsed:  1,
			expectedFixes: 1,
		},
		{
			name:          "used above max clamped to max",
			magic:         "C64S tape image file",
			maxRec:        5,
			usedRec:       9,
			expectedMax:   5,
			expectedUsed:  5,
			expectedFixes: 1,
		},
		{
			name:          "both counters zero counts three fixes",
			magic:         "C64 tape image file",
			maxRec:        0,
			usedRec:       0,
			expectedMax:   1,
			expectedUsed:  1,
			expectedFixes: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := createTestHeader(tc.magic, 0x0100, tc.maxRec, tc.usedRec, "TEST TAPE")

			hdr, fixes, err := ParseHeader(data)
			require.NoError(t, err)

			assert.Equal(t, tc.magic, hdr.Magic)
			assert.Equal(t, tc.expectedMax, hdr.MaxRecords)
			assert.Equal(t, tc.expectedUsed, hdr.UsedRecords)
			assert.Equal(t, tc.expectedFixes, fixes)
		})
	}
}

func TestParseHeaderReadsFieldsVerbatim(t *testing.T) {
	data := createTestHeader("C64S tape image file", 0x0200, 30, 10, "DEMO COLLECTION")

	hdr, _, err := ParseHeader(data)
	require.NoError(t, err)

	// version is read as-is, never validated
	assert.Equal(t, uint16(0x0200), hdr.Version)
	assert.Equal(t, []byte("DEMO COLLECTION"), hdr.TapeName[:15])
	// tape name keeps its space padding
	assert.Equal(t, byte(0x20), hdr.TapeName[types.HeaderTapeNameLen-1])
}

func TestParseHeaderRejectsUnknownMagic(t *testing.T) {
	data := createTestHeader("PC64 archive", 0x0100, 30, 10, "TAPE")

	_, _, err := ParseHeader(data)
	assert.ErrorIs(t, err, types.ErrNotT64)
}

func TestParseHeaderRejectsShortBuffer(t *testing.T) {
	_, _, err := ParseHeader(make([]byte, 16))
	assert.ErrorIs(t, err, types.ErrNotT64)
}

func TestWriteHeaderEmitsCanonicalForm(t *testing.T) {
	// a header parsed from a legacy image writes back canonically
	data := createTestHeader("C64 tape image file", 0x0064, 30, 10, "OLD TAPE")

	hdr, fixes, err := ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, 1, fixes)

	out := make([]byte, types.RecordTableOffset)
	WriteHeader(hdr, out)

	expectedMagic := make([]byte, types.HeaderMagicLen)
	copy(expectedMagic, types.MagicCanonical)
	assert.Equal(t, expectedMagic, out[:types.HeaderMagicLen])

	assert.Equal(t, uint16(types.HeaderVersion), codec.Uint16(out, types.HeaderVersionOffset))
	assert.Equal(t, uint16(30), codec.Uint16(out, types.HeaderMaxRecOffset))
	assert.Equal(t, uint16(10), codec.Uint16(out, types.HeaderUsedRecOffset))
	assert.Equal(t, hdr.TapeName[:], out[types.HeaderTapeNameOffset:types.HeaderTapeNameOffset+types.HeaderTapeNameLen])
}
