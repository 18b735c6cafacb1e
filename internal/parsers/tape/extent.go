package tape

import (
	"sort"

	"github.com/retrofmt/go-t64/internal/types"
)

// ResolveExtents computes the real end address of every record and
// repairs the metadata the declared end address cannot be trusted for.
//
// Authoring tools frequently wrote a wrong end address; the only ground
// truth for a file's extent is where the next file's data starts, or the
// total image size for the file that comes last in the data region. The
// records are therefore analyzed in data-offset order and restored to
// declaration order before returning, so callers keep indexing records
// the way the directory declares them.
//
// Memory snapshot records are not byte-addressable program data and are
// skipped untouched. The number of fixes applied is returned.
func ResolveExtents(records []types.T64Record, imageSize int) int {
	fixes := 0

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Offset < records[j].Offset
	})

	for i := range records {
		rec := &records[i]

		if rec.C64sType > types.C64sTypeNormal {
			// memory snapshot
			rec.Status = types.RecordSkipped
			continue
		}

		if !types.ValidC1541Type(rec.C1541Type) {
			// a record with an illegal type byte cannot be trusted by
			// downstream tools, assume a closed PRG file
			rec.C1541Type = types.CbmdosFiletypePrgClosed
			rec.Status = types.RecordFixed
			fixes++
		}

		declared := int(rec.EndAddr) - int(rec.StartAddr)

		var actual int
		last := i == len(records)-1
		if last {
			actual = imageSize - int(rec.Offset)
		} else {
			actual = int(records[i+1].Offset) - int(rec.Offset)
		}

		if declared != actual {
			if last && declared >= 0 && declared < actual {
				// Some images deliberately pad the data of the record
				// that comes last; shrinking it would discard data.
				// An end address below the start address is never
				// legitimate padding and still gets repaired.
				continue
			}
			rec.RealEndAddr = uint16(int(rec.StartAddr) + actual)
			rec.Status = types.RecordFixed
			fixes++
		} else {
			rec.RealEndAddr = rec.EndAddr
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Index < records[j].Index
	})

	return fixes
}
