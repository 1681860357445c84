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
	"fmt"
	"io"
)

// Decode is the package's single entry point (§4.5): it reads all of r,
// tokenizes and parses it as one armored block, and validates the
// enclosed base64 payload against its declared CRC-24. On success it
// returns the assembled message along with any non-fatal diagnostics
// collected along the way. On a fatal error, the message is nil and no
// partial result is ever returned.
//
// Decode does not retain src, the Tokenizer, or the Parser beyond the
// call: the returned ArmoredMessage owns its own copy of the payload.
func Decode(r io.Reader) (*ArmoredMessage, []Diagnostic, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("armor: reading input: %w", err)
	}
	msg, diags, aerr := ParseArmor(src)
	if aerr != nil {
		return nil, nil, aerr
	}
	return msg, diags, nil
}

// DecodeString is a convenience wrapper around Decode for callers that
// already have the armored text in memory.
func DecodeString(s string) (*ArmoredMessage, []Diagnostic, error) {
	msg, diags, err := ParseArmor([]byte(s))
	if err != nil {
		return nil, nil, err
	}
	return msg, diags, nil
}
