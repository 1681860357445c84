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

import (
	"bytes"
	"io"
)

// payloadLineWidth is the recommended maximum Base64 payload line length
// of RFC 4880 §6.3. Encode always wraps at this width; the spec treats
// enforcing any other width on decode as out of scope, so Decode never
// checks it.
const payloadLineWidth = 76

// Encode is the inverse of Decode, specified in §4.1/§8 for round-trip
// testing rather than as a hardened, independently specified component:
// it assumes msg's fields are already internally consistent (e.g. X <=
// Y for a MessagePartXofY envelope) and does not re-validate them.
func Encode(w io.Writer, msg *ArmoredMessage) error {
	var buf bytes.Buffer

	buf.WriteString("-----BEGIN ")
	buf.WriteString(msg.Envelope.String())
	buf.WriteString("-----\n")

	for _, f := range msg.Headers {
		buf.WriteString(f.Key.String())
		buf.WriteString(": ")
		buf.WriteString(f.Value)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	encoded := Base64Encode(msg.Payload)
	for len(encoded) > 0 {
		n := payloadLineWidth
		if n > len(encoded) {
			n = len(encoded)
		}
		buf.Write(encoded[:n])
		buf.WriteByte('\n')
		encoded = encoded[n:]
	}

	crcOctets := []byte{
		byte(msg.ComputedCRC >> 16),
		byte(msg.ComputedCRC >> 8),
		byte(msg.ComputedCRC),
	}
	buf.WriteByte('=')
	buf.Write(Base64Encode(crcOctets))
	buf.WriteByte('\n')

	buf.WriteString("-----END ")
	buf.WriteString(msg.Envelope.String())
	buf.WriteString("-----\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeMessage builds a new ArmoredMessage from scratch, computing
// ComputedCRC and DeclaredCRC from payload, and renders it with Encode.
// This is the constructor round-trip tests in §8 exercise: Decode(
// EncodeMessage(envelope, headers, payload)) should reproduce envelope,
// headers and payload unchanged.
func EncodeMessage(w io.Writer, envelope MessageType, headers ArmorHeader, payload []byte) error {
	crc := CRC24(payload)
	msg := &ArmoredMessage{
		Envelope:    envelope,
		Headers:     headers,
		Payload:     payload,
		DeclaredCRC: crc,
		ComputedCRC: crc,
	}
	return Encode(w, msg)
}
