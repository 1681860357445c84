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
	"strings"
	"testing"

	xarmor "golang.org/x/crypto/openpgp/armor"
)

// TestConformsToXCryptoOpenpgpArmor cross-validates this decoder against
// golang.org/x/crypto/openpgp/armor on the canonical RFC 4880 message:
// both must agree on the envelope type, the header set and the decoded
// payload bytes. x/crypto's reader is taken as ground truth for the
// well-formed case; this package additionally reports the CRC and a
// richer diagnostic set that x/crypto discards.
func TestConformsToXCryptoOpenpgpArmor(t *testing.T) {
	ours, diags, err := ParseArmor([]byte(scenarioA))
	if err != nil {
		t.Fatalf("our decoder: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("our decoder: unexpected diagnostics %v", diags)
	}

	theirBlock, err := xarmor.Decode(strings.NewReader(scenarioA))
	if err != nil {
		t.Fatalf("x/crypto/openpgp/armor.Decode: %v", err)
	}
	if theirBlock.Type != ours.Envelope.String() {
		t.Fatalf("envelope mismatch: x/crypto says %q, we say %q", theirBlock.Type, ours.Envelope.String())
	}

	theirPayload, err := io.ReadAll(theirBlock.Body)
	if err != nil {
		t.Fatalf("reading x/crypto body: %v", err)
	}
	if !bytes.Equal(theirPayload, ours.Payload) {
		t.Fatalf("payload mismatch:\nx/crypto: % x\nours:     % x", theirPayload, ours.Payload)
	}

	for k, v := range theirBlock.Header {
		got, ok := ours.Headers.First(headerKeyFromName(k))
		if !ok {
			t.Fatalf("our decoder missing header %q present in x/crypto output", k)
		}
		if got != v {
			t.Fatalf("header %q mismatch: x/crypto %q, ours %q", k, v, got)
		}
	}
}

// TestOurEncodingIsReadableByXCryptoOpenpgpArmor checks the other
// direction of conformance: a message produced by EncodeMessage must be
// a block golang.org/x/crypto/openpgp/armor can itself decode, which is
// the strongest evidence this package's wire format is genuinely RFC
// 4880 armor rather than an accidental look-alike.
func TestOurEncodingIsReadableByXCryptoOpenpgpArmor(t *testing.T) {
	headers := ArmorHeader{
		{Key: HeaderKey{Kind: Version}, Value: "pgparmor-conformance 1.0"},
	}
	payload := []byte("conformance payload crossing a line-wrap boundary, long enough to wrap across more than one 76 character output line in the encoder")

	var buf bytes.Buffer
	if err := EncodeMessage(&buf, PublicKeyBlock, headers, payload); err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	block, err := xarmor.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("x/crypto could not decode our encoding: %v", err)
	}
	if block.Type != PublicKeyBlock.String() {
		t.Fatalf("x/crypto read envelope %q, want %q", block.Type, PublicKeyBlock.String())
	}
	got, err := io.ReadAll(block.Body)
	if err != nil {
		t.Fatalf("reading x/crypto body: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("x/crypto decoded payload % x, want % x", got, payload)
	}
}
