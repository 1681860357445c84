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

import "github.com/snksoft/crc"

// CRC24Init and CRC24Poly are the constants fixed by RFC 4880 §6.1.
// Poly is given here in its 24-bit truncated form (the implicit leading
// bit of the degree-24 polynomial 0x1864CFB is dropped, as crc.Parameters
// expects for a Width-24 table).
const (
	CRC24Init = 0xB704CE
	CRC24Poly = 0x864CFB
)

// crc24Params mirrors RFC 4880's CRC-24: MSB-first, no input or output
// reflection, no final XOR.
var crc24Params = &crc.Parameters{
	Width:      24,
	Polynomial: CRC24Poly,
	Init:       CRC24Init,
	ReflectIn:  false,
	ReflectOut: false,
	FinalXor:   0,
}

var crc24Hash = crc.NewHash(crc24Params)

// CRC24 computes the RFC 4880 CRC-24 of octets. CRC24(nil) == CRC24Init.
func CRC24(octets []byte) uint32 {
	return uint32(crc24Hash.CalculateCRC(octets) & 0xFFFFFF)
}
