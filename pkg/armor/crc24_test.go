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

import "testing"

func TestCRC24OfEmptyIsInit(t *testing.T) {
	if got := CRC24(nil); got != CRC24Init {
		t.Fatalf("CRC24(nil) = %#06x, want %#06x", got, CRC24Init)
	}
	if got := CRC24([]byte{}); got != 0xB704CE {
		t.Fatalf("CRC24([]byte{}) = %#06x, want 0xB704CE", got)
	}
}

func TestCRC24StaysWithin24Bits(t *testing.T) {
	fixtures := [][]byte{
		nil,
		{0x00},
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("a quick brown fox"),
		make([]byte, 1024),
	}
	for _, f := range fixtures {
		if got := CRC24(f); got&0xFF000000 != 0 {
			t.Fatalf("CRC24(%v) = %#x, has bits outside 24-bit range", f, got)
		}
	}
}

func TestCRC24Deterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	a := CRC24(data)
	b := CRC24(data)
	if a != b {
		t.Fatalf("CRC24 not deterministic: %#x != %#x", a, b)
	}
}

func TestCRC24DiffersOnSingleByteChange(t *testing.T) {
	a := CRC24([]byte("hello world"))
	b := CRC24([]byte("hello worlc"))
	if a == b {
		t.Fatalf("CRC24 did not change for a single corrupted byte")
	}
}
