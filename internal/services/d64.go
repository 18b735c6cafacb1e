package services

import (
	"fmt"

	"github.com/retrofmt/go-t64/internal/petscii"
	"github.com/retrofmt/go-t64/internal/types"
)

// D64Image is a standard 35-track D64 disk image. Its sector/BAM model
// is independent of the T64 pipeline; only minimal write support is
// provided: a freshly formatted disk with a name and ID.
type D64Image struct {
	Path string
	Data []byte
}

// NewD64Image creates a blank, formatted D64 image: empty sectors, an
// initialized BAM on track 18 and DOS type "2A".
func NewD64Image() *D64Image {
	img := &D64Image{
		Data: make([]byte, types.D64Size),
	}
	img.initBAM()
	return img
}

// initBAM formats the BAM sector at track 18, sector 0.
func (img *D64Image) initBAM() {
	bam := img.Data[types.D64BamOffset:]

	bam[types.D64BamDirTrackOffset] = types.D64DirTrack
	bam[types.D64BamDirSectorOffset] = types.D64DirSector
	bam[types.D64BamDosVersionOffset] = 0x41

	// disk name, ID and the bytes between them read as shifted spaces
	// on an empty disk
	for i := types.D64BamDiskNameOffset; i < types.D64BamDiskIDOffset+types.D64DiskIDLen; i++ {
		bam[i] = 0xa0
	}

	// DOS type '2A'
	bam[types.D64BamDiskIDOffset+3] = 0x32
	bam[types.D64BamDiskIDOffset+4] = 0x41
}

// SetDiskName sets the disk name in the BAM, re-encoded to PETSCII and
// truncated to the fixed name length.
func (img *D64Image) SetDiskName(name string) {
	field := img.Data[types.D64BamOffset+types.D64BamDiskNameOffset:]
	for i := 0; i < types.D64DiskNameLen; i++ {
		if i < len(name) {
			field[i] = petscii.ToPETSCII(name[i])
		} else {
			field[i] = 0xa0
		}
	}
}

// SetDiskID sets the disk ID bytes in the BAM, at most five characters.
func (img *D64Image) SetDiskID(id string) {
	field := img.Data[types.D64BamOffset+types.D64BamDiskIDOffset:]
	for i := 0; i < types.D64DiskIDLen && i < len(id); i++ {
		field[i] = petscii.ToPETSCII(id[i])
	}
}

// WriteD64 writes the image to path, or to the stored path when path is
// empty.
func (img *D64Image) WriteD64(path string) error {
	if path == "" {
		path = img.Path
	}
	if path == "" {
		return types.ErrNoTarget
	}
	return WriteImageFile(path, img.Data)
}

// D64TrackOffset returns the image offset of a track.
func D64TrackOffset(track int) (int, error) {
	if track < types.D64TrackMin || track > types.D64TrackMax {
		return 0, fmt.Errorf("track %d out of range [%d, %d]",
			track, types.D64TrackMin, types.D64TrackMax)
	}
	return types.D64TrackTable[track].Offset, nil
}

// D64SectorCount returns the number of sectors on a track.
func D64SectorCount(track int) (int, error) {
	if track < types.D64TrackMin || track > types.D64TrackMax {
		return 0, fmt.Errorf("track %d out of range [%d, %d]",
			track, types.D64TrackMin, types.D64TrackMax)
	}
	return types.D64TrackTable[track].Sectors, nil
}
