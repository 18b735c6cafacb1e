// Package codec reads and writes the little-endian integer fields of
// packed on-image structures. Offset validity is the caller's contract;
// the functions index straight into the buffer.
package codec

import "encoding/binary"

// Uint16 reads an unsigned 16-bit little-endian value at off.
func Uint16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// PutUint16 writes an unsigned 16-bit little-endian value at off.
func PutUint16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// Uint32 reads an unsigned 32-bit little-endian value at off.
func Uint32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// PutUint32 writes an unsigned 32-bit little-endian value at off.
func PutUint32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}
