/*
Copyright 2026 The PGP-Armor Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package armor

// base64Alphabet is the RFC 4648 / RFC 4880 §6.3 alphabet: A-Z, a-z,
// 0-9, +, /, in that value order.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const base64Pad = '='

// base64DecodeTable maps a byte to its sextet value (0-63), -1 if it is
// not part of the alphabet, or -2 if it is the pad character.
var base64DecodeTable [256]int8

func init() {
	for i := range base64DecodeTable {
		base64DecodeTable[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64DecodeTable[base64Alphabet[i]] = int8(i)
	}
	base64DecodeTable[base64Pad] = -2
}

// Base64Decode decodes a flat Base64 sextet stream into octets, per
// §4.1. It has no notion of source location; decodeBase64At is the
// location-aware variant the parser uses so errors can point at a byte
// offset in the original input.
func Base64Decode(data []byte) ([]byte, []Diagnostic, error) {
	out, diags, err := decodeBase64At(data, nil)
	if err != nil {
		return nil, nil, err
	}
	return out, diags, nil
}

// Base64Encode is the inverse of Base64Decode, specified for round-trip
// testing: sextets are emitted most-significant-bit first, and the
// output is padded with '=' to a multiple of 4.
func Base64Encode(octets []byte) []byte {
	n := len(octets)
	out := make([]byte, 0, ((n+2)/3)*4)
	for i := 0; i < n; i += 3 {
		remain := n - i
		switch {
		case remain >= 3:
			b0, b1, b2 := octets[i], octets[i+1], octets[i+2]
			out = append(out,
				base64Alphabet[b0>>2],
				base64Alphabet[(b0&0x03)<<4|b1>>4],
				base64Alphabet[(b1&0x0F)<<2|b2>>6],
				base64Alphabet[b2&0x3F],
			)
		case remain == 2:
			b0, b1 := octets[i], octets[i+1]
			out = append(out,
				base64Alphabet[b0>>2],
				base64Alphabet[(b0&0x03)<<4|b1>>4],
				base64Alphabet[(b1&0x0F)<<2],
				base64Pad,
			)
		case remain == 1:
			b0 := octets[i]
			out = append(out,
				base64Alphabet[b0>>2],
				base64Alphabet[(b0&0x03)<<4],
				base64Pad,
				base64Pad,
			)
		}
	}
	return out
}

// decodeBase64At decodes a sextet stream of alphabet and pad characters.
// The parser only hands it characters the armor grammar already accepted;
// any other character (as Base64Decode may pass through) is reported as
// InvalidBase64Character. locs, if non-nil, must have the same length as data and
// supplies the source Location of each character for error reporting;
// when nil, the zero Location is used throughout.
func decodeBase64At(data []byte, locs []Location) ([]byte, []Diagnostic, *Error) {
	if len(data) == 0 {
		return nil, nil, nil
	}
	if len(data)%4 != 0 {
		return nil, nil, errAt(InvalidPadding, locAt(locs, len(data)-1))
	}

	var out []byte
	var diags []Diagnostic
	groups := len(data) / 4

	for g := 0; g < groups; g++ {
		off := g * 4
		chunk := data[off : off+4]
		isLast := g == groups-1

		padCount := 0
		for _, c := range chunk {
			if c == base64Pad {
				padCount++
			}
		}
		if !isLast && padCount != 0 {
			return nil, nil, errAt(InvalidPadding, locAt(locs, off))
		}
		if isLast && padCount != 0 && padCount != 1 && padCount != 2 {
			return nil, nil, errAt(InvalidPadding, locAt(locs, off))
		}
		// Pads, if any, must be the trailing characters of the group.
		for i := 0; i < 4-padCount; i++ {
			if chunk[i] == base64Pad {
				return nil, nil, errAt(InvalidPadding, locAt(locs, off+i))
			}
		}

		var sextet [4]int8
		for i := 0; i < 4-padCount; i++ {
			v := base64DecodeTable[chunk[i]]
			if v < 0 {
				return nil, nil, &Error{Kind: InvalidBase64Character, Location: locAt(locs, off+i), Fatal: true, Char: rune(chunk[i])}
			}
			sextet[i] = v
		}

		switch padCount {
		case 0:
			out = append(out,
				byte(sextet[0])<<2|byte(sextet[1])>>4,
				byte(sextet[1])<<4|byte(sextet[2])>>2,
				byte(sextet[2])<<6|byte(sextet[3]),
			)
		case 1:
			if sextet[2]&0x3 != 0 {
				diags = append(diags, Diagnostic{
					Kind:     NonCanonicalTail,
					Location: locAt(locs, off+2),
					Message:  "unused low bits of final base64 sextet are not zero",
				})
			}
			out = append(out,
				byte(sextet[0])<<2|byte(sextet[1])>>4,
				byte(sextet[1])<<4|byte(sextet[2])>>2,
			)
		case 2:
			if sextet[1]&0xF != 0 {
				diags = append(diags, Diagnostic{
					Kind:     NonCanonicalTail,
					Location: locAt(locs, off+1),
					Message:  "unused low bits of final base64 sextet are not zero",
				})
			}
			out = append(out, byte(sextet[0])<<2|byte(sextet[1])>>4)
		}
	}

	return out, diags, nil
}

func locAt(locs []Location, i int) Location {
	if i >= 0 && i < len(locs) {
		return locs[i]
	}
	return Location{}
}
