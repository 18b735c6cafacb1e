package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrofmt/go-t64/internal/codec"
	"github.com/retrofmt/go-t64/internal/types"
)

// writePrgFixture writes a .prg file with the given load address and
// payload length.
func writePrgFixture(t *testing.T, dir, name string, loadAddr uint16, size int) string {
	t.Helper()
	buf := make([]byte, 2+size)
	codec.PutUint16(buf, 0, loadAddr)
	for i := 0; i < size; i++ {
		buf[2+i] = byte(i)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf, 0644))
	return path
}

func TestCreateImage(t *testing.T) {
	dir := t.TempDir()
	first := writePrgFixture(t, dir, "rasterblast.prg", 0x0801, 0x0300)
	second := writePrgFixture(t, dir, "freezer.prg", 0xc000, 0x0100)

	target := filepath.Join(dir, "awesome.t64")
	img, err := CreateImage(target, []string{first, second})
	require.NoError(t, err)

	assert.Equal(t, uint16(2), img.MaxRecords)
	assert.Equal(t, uint16(2), img.UsedRecords)
	require.Len(t, img.Records, 2)

	// data region starts right after header and directory
	dataStart := uint32(types.RecordTableOffset + 2*types.RecordSize)
	assert.Equal(t, dataStart, img.Records[0].Offset)

	// the second record's offset chains off the first file's stripped length
	assert.Equal(t, dataStart+0x0300, img.Records[1].Offset)

	assert.Equal(t, uint16(0x0801), img.Records[0].StartAddr)
	assert.Equal(t, uint16(0x0801+0x0300), img.Records[0].EndAddr)
	assert.Equal(t, img.Records[0].EndAddr, img.Records[0].RealEndAddr)
	assert.Equal(t, uint16(0xc000), img.Records[1].StartAddr)

	for _, rec := range img.Records {
		assert.Equal(t, byte(types.C64sTypeNormal), rec.C64sType)
		assert.Equal(t, byte(types.CbmdosFiletypePrgClosed), rec.C1541Type)
	}

	// tape name derives from the target base name, space padded
	assert.Equal(t, []byte("awesome"), img.TapeName[:7])
	assert.Equal(t, byte(0x20), img.TapeName[7])
}

func TestCreateImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	first := writePrgFixture(t, dir, "one.prg", 0x0801, 0x80)
	second := writePrgFixture(t, dir, "two.prg", 0x2000, 0x40)

	target := filepath.Join(dir, "tape.t64")
	img, err := CreateImage(target, []string{first, second})
	require.NoError(t, err)
	require.NoError(t, img.WriteImage(""))

	// a freshly created image verifies clean
	reopened, err := OpenImage(target)
	require.NoError(t, err)
	assert.Equal(t, 0, reopened.Verify())

	// and extracts back to the original payloads
	out := t.TempDir()
	extracted, skipped, err := reopened.ExtractAll(out)
	require.NoError(t, err)
	assert.Equal(t, 2, extracted)
	assert.Equal(t, 0, skipped)

	// record filenames carry the full source base name, so extraction
	// appends a second extension
	original, err := os.ReadFile(first)
	require.NoError(t, err)
	roundTripped, err := os.ReadFile(filepath.Join(out, "one.prg.prg"))
	require.NoError(t, err)
	assert.Equal(t, original, roundTripped)
}

func TestCreateImageMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := CreateImage(filepath.Join(dir, "tape.t64"),
		[]string{filepath.Join(dir, "missing.prg")})
	assert.Error(t, err)
}

func TestCreateImageNoSources(t *testing.T) {
	_, err := CreateImage("tape.t64", nil)
	assert.Error(t, err)
}

func TestCreateImageTooSmallSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.prg")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0644))

	_, err := CreateImage(filepath.Join(dir, "tape.t64"), []string{path})
	assert.Error(t, err)
}
