// Package services owns the lifecycle of in-memory tape and disk images:
// open, verify, report, write, extract and create.
package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/retrofmt/go-t64/internal/parsers/tape"
	"github.com/retrofmt/go-t64/internal/petscii"
	"github.com/retrofmt/go-t64/internal/types"
)

// T64Image is the full in-memory representation of a T64 container: the
// raw file buffer, the parsed header fields, the file records and the
// running count of repairs. An image exclusively owns its buffer and
// record slice.
type T64Image struct {
	Path    string
	Data    []byte
	Magic   string
	Version uint16

	MaxRecords  uint16
	UsedRecords uint16
	TapeName    [types.HeaderTapeNameLen]byte

	Records []types.T64Record

	// Fixes counts every structural correction applied while opening
	// and verifying. A non-zero count marks the source image as faulty.
	Fixes int

	verified bool
}

// c1541Names maps the low bits of a C1541 type byte to the names shown
// in directory listings. Index 0 reads "frz" here, not "del": inside a
// T64 a zero type byte in practice marks a C64S frozen snapshot.
var c1541Names = [8]string{"frz", "seq", "prg", "rel", "usr", "???", "???", "???"}

// OpenImage reads a T64 file and parses its header and records,
// applying header repairs as it goes. The data is untouched on the host
// until WriteImage is called.
func OpenImage(path string) (*T64Image, error) {
	data, err := ReadImageFile(path)
	if err != nil {
		return nil, err
	}
	img, err := parseImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	img.Path = path
	return img, nil
}

// parseImage builds a T64Image from a raw buffer.
func parseImage(data []byte) (*T64Image, error) {
	hdr, fixes, err := tape.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	img := &T64Image{
		Data:        data,
		Magic:       hdr.Magic,
		Version:     hdr.Version,
		MaxRecords:  hdr.MaxRecords,
		UsedRecords: hdr.UsedRecords,
		TapeName:    hdr.TapeName,
		Fixes:       fixes,
	}

	tableEnd := types.RecordTableOffset + int(img.UsedRecords)*types.RecordSize
	if tableEnd > len(data) {
		return nil, fmt.Errorf("%w: record table extends past end of image",
			types.ErrNotT64)
	}

	img.Records = make([]types.T64Record, img.UsedRecords)
	for i := range img.Records {
		off := types.RecordTableOffset + i*types.RecordSize
		img.Records[i] = tape.ParseRecord(data[off:off+types.RecordSize], i)
	}

	return img, nil
}

// Verify resolves the real extent of every record and repairs untrusted
// metadata, adding to the image's fix count. Verify is idempotent: once
// an image has been verified there is nothing left to fix, so further
// calls return the same count without touching the records.
func (img *T64Image) Verify() int {
	if img.verified {
		return img.Fixes
	}

	if img.MaxRecords == 0 {
		img.MaxRecords = 1
		img.Fixes++
	}
	if img.UsedRecords == 0 {
		img.UsedRecords = 1
		img.Fixes++
	}

	img.Fixes += tape.ResolveExtents(img.Records, len(img.Data))
	img.verified = true
	return img.Fixes
}

// Faulty reports whether any repairs were needed so far.
func (img *T64Image) Faulty() bool {
	return img.Fixes > 0
}

// WriteImage serializes the corrected header and records back into the
// owned buffer and writes the whole buffer to path. An empty path falls
// back to the path the image was opened from or created for.
func (img *T64Image) WriteImage(path string) error {
	if path == "" {
		path = img.Path
	}
	if path == "" {
		return types.ErrNoTarget
	}

	hdr := &types.T64Header{
		Magic:       img.Magic,
		Version:     img.Version,
		MaxRecords:  img.MaxRecords,
		UsedRecords: img.UsedRecords,
		TapeName:    img.TapeName,
	}
	tape.WriteHeader(hdr, img.Data)

	for i := range img.Records {
		off := types.RecordTableOffset + i*types.RecordSize
		tape.WriteRecord(&img.Records[i], img.Data[off:off+types.RecordSize])
	}

	return WriteImageFile(path, img.Data)
}

// Record returns the record at index, in declaration order.
func (img *T64Image) Record(index int) (*types.T64Record, error) {
	if index < 0 || index >= len(img.Records) {
		return nil, fmt.Errorf("%w: %d", types.ErrIndex, index)
	}
	return &img.Records[index], nil
}

const dumpSeparator = "-------------------------------------------------------------------------------"

// Dump prints the image header and a directory listing with both the
// declared and the real memory range of every record.
func (img *T64Image) Dump(w io.Writer) {
	tapeName := strings.TrimRight(petscii.ToASCIIString(img.TapeName[:]), " ")
	magic := strings.TrimRight(img.Magic, " ")

	fmt.Fprintln(w, dumpSeparator)
	fmt.Fprintf(w, "tape magic  : %q\n", magic)
	fmt.Fprintf(w, "tape version: %04x\n", img.Version)
	fmt.Fprintf(w, "tape name   : %q\n", tapeName)
	fmt.Fprintf(w, "file records: %d/%d\n", img.UsedRecords, img.MaxRecords)
	fmt.Fprintln(w, dumpSeparator)

	fmt.Fprintln(w, "blocks filename           type rep. memory  real memory  status")
	for i := range img.Records {
		img.dumpRecord(w, &img.Records[i])
	}
	fmt.Fprintln(w, dumpSeparator)

	if img.Fixes > 0 {
		fmt.Fprintf(w, "faulty image: fixes applied: %d\n", img.Fixes)
	} else {
		fmt.Fprintln(w, "OK, proper image")
	}
}

func (img *T64Image) dumpRecord(w io.Writer, rec *types.T64Record) {
	size := int(rec.EndAddr) - int(rec.StartAddr)
	if size < 0 {
		size = 0
	}
	name := petscii.ToASCIIString(rec.Filename[:])

	fmt.Fprintf(w, "%5d  \"%-16s\" %s  $%04x-$%04x  $%04x-$%04x  %s\n",
		types.NumBlocks(size),
		name,
		c1541Names[rec.C1541Type&types.CbmdosFiletypeMask],
		rec.StartAddr, rec.EndAddr,
		rec.StartAddr, rec.RealEndAddr,
		rec.Status)
}
