package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retrofmt/go-t64/internal/codec"
	"github.com/retrofmt/go-t64/internal/petscii"
	"github.com/retrofmt/go-t64/internal/types"
)

// CreateImage builds a new in-memory T64 container from program files.
// Each source file must be a .prg: its first two bytes are the load
// address and are stripped from the stored payload. The new image has no
// slack capacity, its record count equals the number of sources, and its
// tape name derives from the target file's base name. The caller still
// has to WriteImage the result.
func CreateImage(path string, sources []string) (*T64Image, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no source files given")
	}

	dataOffset := types.RecordTableOffset + len(sources)*types.RecordSize

	img := &T64Image{
		Path:        path,
		Magic:       types.MagicCanonical,
		Version:     types.HeaderVersion,
		MaxRecords:  uint16(len(sources)),
		UsedRecords: uint16(len(sources)),
		Data:        make([]byte, dataOffset),
		Records:     make([]types.T64Record, 0, len(sources)),
	}

	for n, src := range sources {
		data, err := ReadImageFile(src)
		if err != nil {
			return nil, err
		}
		if len(data) < 2 {
			return nil, fmt.Errorf("%s: too small for a program file", src)
		}

		loadAddr := codec.Uint16(data, 0)
		payload := data[2:]

		rec := types.T64Record{
			Offset:    uint32(len(img.Data)),
			StartAddr: loadAddr,
			EndAddr:   loadAddr + uint16(len(payload)),
			C64sType:  types.C64sTypeNormal,
			C1541Type: types.CbmdosFiletypePrgClosed,
			Index:     n,
			Status:    types.RecordOK,
		}
		rec.RealEndAddr = rec.EndAddr
		petscii.ToPETSCIIString(rec.Filename[:], filepath.Base(src))

		img.Data = append(img.Data, payload...)
		img.Records = append(img.Records, rec)
	}

	img.setTapeName(path)
	return img, nil
}

// setTapeName derives the tape name from the image file's base name,
// without extension, space padded to the fixed name length.
func (img *T64Image) setTapeName(path string) {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	for i := range img.TapeName {
		img.TapeName[i] = 0x20
	}
	if len(name) > len(img.TapeName) {
		name = name[:len(img.TapeName)]
	}
	copy(img.TapeName[:], name)
}
