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

import "fmt"

// ErrorKind is the closed taxonomy of §7: every fatal error and every
// non-fatal diagnostic the decoder can produce carries one of these.
type ErrorKind int

const (
	UnexpectedEOF ErrorKind = iota
	MalformedHeaderLine
	MismatchedEnvelope
	InvalidPartIndex
	MalformedHeaderBlock
	InvalidBase64Character
	InvalidPadding
	ChecksumMismatch
	NonCanonicalTail
	DuplicateHeader
	// DeprecatedMessagePartX is not part of RFC 4880's error taxonomy; it
	// is a diagnostic-only extension resolving Open Question 2 of the
	// design notes (flag MessagePartX, the unparametrized form, as
	// deprecated rather than rejecting it).
	DeprecatedMessagePartX
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case MalformedHeaderLine:
		return "MalformedHeaderLine"
	case MismatchedEnvelope:
		return "MismatchedEnvelope"
	case InvalidPartIndex:
		return "InvalidPartIndex"
	case MalformedHeaderBlock:
		return "MalformedHeaderBlock"
	case InvalidBase64Character:
		return "InvalidBase64Character"
	case InvalidPadding:
		return "InvalidPadding"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case NonCanonicalTail:
		return "NonCanonicalTail"
	case DuplicateHeader:
		return "DuplicateHeader"
	case DeprecatedMessagePartX:
		return "DeprecatedMessagePartX"
	default:
		return "UnknownArmorError"
	}
}

// Error is the error type of every armor failure the package reports: a
// kind, a source location, and whatever kind-specific detail applies.
// The one other error is Decode's wrapped failure to read its io.Reader.
// Inner layers (tokenizer, base64 codec, CRC check) never surface a raw
// string; they always produce one of these.
type Error struct {
	Kind     ErrorKind
	Location Location

	// Fatal is false for diagnostics that accumulate rather than abort
	// the decode (NonCanonicalTail, DuplicateHeader).
	Fatal bool

	// Detail fields, populated depending on Kind. Zero value otherwise.
	Char             rune   // InvalidBase64Character
	Begin, End       string // MismatchedEnvelope: "PGP ..." text of each side
	X, Y             int    // InvalidPartIndex
	Declared, Computed uint32 // ChecksumMismatch
	HeaderName       string // DuplicateHeader
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidBase64Character:
		return fmt.Sprintf("armor: invalid base64 character %q at byte %d", e.Char, e.Location.Absolute)
	case MismatchedEnvelope:
		return fmt.Sprintf("armor: mismatched envelope: BEGIN %q vs END %q at byte %d", e.Begin, e.End, e.Location.Absolute)
	case InvalidPartIndex:
		return fmt.Sprintf("armor: invalid part index %d/%d at byte %d", e.X, e.Y, e.Location.Absolute)
	case ChecksumMismatch:
		return fmt.Sprintf("armor: checksum mismatch: declared %06X, computed %06X at byte %d", e.Declared, e.Computed, e.Location.Absolute)
	case DuplicateHeader:
		return fmt.Sprintf("armor: duplicate header %q at byte %d", e.HeaderName, e.Location.Absolute)
	default:
		return fmt.Sprintf("armor: %s at byte %d", e.Kind, e.Location.Absolute)
	}
}

// diagnostic converts a non-fatal Error into the Diagnostic shape carried
// alongside a successful decode.
func (e *Error) diagnostic() Diagnostic {
	return Diagnostic{Kind: e.Kind, Location: e.Location, Message: e.Error()}
}

func errAt(kind ErrorKind, loc Location) *Error {
	return &Error{Kind: kind, Location: loc, Fatal: true}
}
