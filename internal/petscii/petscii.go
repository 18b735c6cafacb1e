// Package petscii translates between PETSCII and 7-bit ASCII.
//
// Translations are not symmetric: ASCII has CR, LF and FF while PETSCII
// only has CR, so ToASCII(ToPETSCII(0x0a)) yields 0x0d, not 0x0a. No
// 8-bit ASCII code page is involved.
package petscii

import "strings"

// petToAsc maps PETSCII codes to ASCII.
var petToAsc = [256]byte{
	// $00-$0f
	0x00, 0x01, 0x02,
	0x1b, // $03: PETSCII STOP -> ASCII Escape
	0x04, 0x05, 0x06, 0x07,
	0x14, // $08: disable C=-shift -> Shift Out
	0x15, // $09: enable C=-shift -> Shift In
	0x0a, 0x0b, 0x0c,
	0x0d, // $0d: CR == CR
	0x0e, 0x0f,

	// $10-$1f
	0x10, 0x11, 0x12, 0x13,
	0x08, // $14: PETSCII Delete -> ASCII Backspace
	0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,

	// $20-$3f: no conversion needed
	0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2a, 0x2b,
	0x2c, 0x2d, 0x2e, 0x2f, 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
	0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f,

	// $40-$5f: invert case
	0x40, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0x6a, 0x6b,
	0x6c, 0x6d, 0x6e, 0x6f, 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77,
	0x78, 0x79, 0x7a, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f,

	// $60-$7f: copy of PETSCII $c0-$df
	0xc0, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xcb,
	0xcc, 0xcd, 0xce, 0xcf, 0xd0, 0xd1, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7,
	0xd8, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde, 0xdf,

	// $80-$9f
	0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89, 0x8a, 0x8b,
	0x8c,
	0x0d, // $8d: Shift-Return, no ASCII equivalent -> CR
	0x8e, 0x8f, 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99,
	0x9a, 0x9b, 0x9c, 0x9d, 0x9e, 0x9f,

	0x20, // $a0: inverted space -> space

	// $a1-$bf: no conversion
	0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
	0xac, 0xad, 0xae, 0xaf, 0xb0, 0xb1, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7,
	0xb8, 0xb9, 0xba, 0xbb, 0xbc, 0xbd, 0xbe, 0xbf,

	// $c0-$df: invert case
	0x60, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4a, 0x4b,
	0x4c, 0x4d, 0x4e, 0x4f, 0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57,
	0x58, 0x59, 0x5a, 0xdb, 0xdc, 0xdd, 0xde, 0xdf,

	// $e0-$ff: copy of PETSCII $a0-$bf
	0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
	0xac, 0xad, 0xae, 0xaf, 0xb0, 0xb1, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7,
	0xb8, 0xb9, 0xba, 0xbb, 0xbc, 0xbd, 0xbe, 0xbf,
}

// ascToPet maps ASCII codes to PETSCII. Untranslatable codes pass
// through as-is.
var ascToPet = [256]byte{
	// $00-$0f
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x14, // $08: ASCII Backspace -> PETSCII Delete
	0x09,
	0x0d, // $0a: ASCII LF -> PETSCII CR
	0x0b,
	0x0d, // $0c: ASCII FF -> PETSCII CR
	0x0d,
	0x08, // $0e: ASCII Shift-Out -> disable CBM-shift
	0x09, // $0f: ASCII Shift-In -> enable CBM-shift

	// $10-$1f
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a,
	0x03, // $1b: ASCII Escape -> PETSCII STOP
	0x1c, 0x1d, 0x1e, 0x1f,

	// $20-$3f: no conversion needed
	0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2a, 0x2b,
	0x2c, 0x2d, 0x2e, 0x2f, 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
	0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f,

	// $40-$5f: upper case
	0x40, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xcb,
	0xcc, 0xcd, 0xce, 0xcf, 0xd0, 0xd1, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7,
	0xd8, 0xd9, 0xda, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f,

	// $60-$7f: lower case
	0x27, // $60: backtick -> single quote
	0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4a, 0x4b, 0x4c,
	0x4d, 0x4e, 0x4f, 0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
	0x59, 0x5a, 0x7b, 0x7c, 0x7d, 0x7e, 0x7f,

	// $80-$9f
	0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89, 0x8a, 0x8b,
	0x8c, 0x8d, 0x8e, 0x8f, 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97,
	0x98, 0x99, 0x9a, 0x9b, 0x9c, 0x9d, 0x9e, 0x9f,

	// $a0-$bf: no conversion
	0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
	0xac, 0xad, 0xae, 0xaf, 0xb0, 0xb1, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7,
	0xb8, 0xb9, 0xba, 0xbb, 0xbc, 0xbd, 0xbe, 0xbf,

	// $c0-$df
	0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0x6a, 0x6b,
	0x6c, 0x6d, 0x6e, 0x6f, 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77,
	0x78, 0x79, 0x7a, 0x7b, 0x7c, 0x7d, 0x7e, 0x7f,

	// $e0-$ff
	0xe0, 0xe1, 0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea, 0xeb,
	0xec, 0xed, 0xee, 0xef, 0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7,
	0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
}

// Characters that cannot appear in filenames on the host.
const hostIllegalChars = `/\?%*:|"<>`

// ToASCII translates a single PETSCII code to ASCII.
func ToASCII(pet byte) byte {
	return petToAsc[pet]
}

// ToPETSCII translates a single ASCII code to PETSCII.
func ToPETSCII(asc byte) byte {
	return ascToPet[asc]
}

// HostAllowedChar reports whether ch may appear in a host filename.
func HostAllowedChar(ch byte) bool {
	return !strings.ContainsRune(hostIllegalChars, rune(ch))
}

// ToASCIIString translates pet to an ASCII string, stopping at the first
// zero byte. Codes above 0x7f have no ASCII equivalent and become '_'.
func ToASCIIString(pet []byte) string {
	out := make([]byte, 0, len(pet))
	for _, p := range pet {
		if p == 0 {
			break
		}
		b := petToAsc[p]
		if b >= 0x80 {
			b = '_'
		}
		out = append(out, b)
	}
	return string(out)
}

// ToPETSCIIString translates asc into pet, stopping at the first zero
// byte of asc and zero-filling the remainder of pet.
func ToPETSCIIString(pet []byte, asc string) {
	i := 0
	for ; i < len(pet) && i < len(asc) && asc[i] != 0; i++ {
		pet[i] = ascToPet[asc[i]]
	}
	for ; i < len(pet); i++ {
		pet[i] = 0x00
	}
}

// FilenameToHost converts a PETSCII filename to a usable host filename:
// padding (spaces and inverted spaces) is trimmed, unprintable and
// illegal characters become '_', and ext, when non-empty, is appended
// with a dot.
func FilenameToHost(pet []byte, ext string) string {
	lead := 0
	for lead < len(pet) && (pet[lead] == 0x20 || pet[lead] == 0xa0) {
		lead++
	}
	trail := len(pet) - 1
	for trail >= lead && (pet[trail] == 0x20 || pet[trail] == 0xa0 || pet[trail] == 0x00) {
		trail--
	}

	var sb strings.Builder
	for i := lead; i <= trail; i++ {
		b := petToAsc[pet[i]]
		if b < 0x20 || b > 0x7e || !HostAllowedChar(b) {
			b = '_'
		}
		sb.WriteByte(b)
	}
	name := sb.String()
	if ext != "" {
		name += "." + ext
	}
	return name
}
