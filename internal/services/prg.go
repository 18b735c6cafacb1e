package services

import (
	"fmt"
	"path/filepath"

	"github.com/retrofmt/go-t64/internal/petscii"
	"github.com/retrofmt/go-t64/internal/types"
)

// IsSnapshot reports whether a record holds a C64S memory snapshot
// instead of an extractable program file.
func IsSnapshot(rec *types.T64Record) bool {
	return rec.C64sType > types.C64sTypeNormal || rec.C1541Type == 0x00
}

// ExtractRecord writes the program file at index to dir as a .prg file
// named after the record's PETSCII filename. Snapshot records are
// skipped, not extracted; the returned flag tells the two apart.
//
// The caller must have verified the image first: extraction trusts
// RealEndAddr, not the declared end address.
func (img *T64Image) ExtractRecord(index int, dir string) (name string, skipped bool, err error) {
	rec, err := img.Record(index)
	if err != nil {
		return "", false, err
	}

	if IsSnapshot(rec) {
		return "", true, nil
	}

	size := int(rec.RealEndAddr) - int(rec.StartAddr)
	start := int(rec.Offset)
	if size < 0 || start+size > len(img.Data) {
		return "", false, fmt.Errorf("record %d: data range $%04x+%d outside image",
			index, rec.Offset, size)
	}

	name = petscii.FilenameToHost(rec.Filename[:], "prg")
	if err := WritePRGFile(filepath.Join(dir, name), rec.StartAddr, img.Data[start:start+size]); err != nil {
		return "", false, err
	}
	return name, false, nil
}

// ExtractAll extracts every program file record to dir and returns how
// many files were written and how many snapshot records were skipped.
func (img *T64Image) ExtractAll(dir string) (extracted, skipped int, err error) {
	for i := range img.Records {
		_, skip, err := img.ExtractRecord(i, dir)
		if err != nil {
			return extracted, skipped, err
		}
		if skip {
			skipped++
		} else {
			extracted++
		}
	}
	return extracted, skipped, nil
}
