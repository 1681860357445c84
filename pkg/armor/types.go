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

// Location is a byte offset from the start of the input stream, attached
// to every token and every error so callers can point a user at the
// offending line.
type Location struct {
	Absolute int
}

// MessageTypeKind discriminates the variants of MessageType.
type MessageTypeKind int

const (
	// KindMessage is a generic OpenPGP message ("PGP MESSAGE").
	KindMessage MessageTypeKind = iota
	// KindPublicKeyBlock is an exported public key ("PGP PUBLIC KEY BLOCK").
	KindPublicKeyBlock
	// KindPrivateKeyBlock is an exported private key ("PGP PRIVATE KEY BLOCK").
	KindPrivateKeyBlock
	// KindSignature is a detached signature ("PGP SIGNATURE").
	KindSignature
	// KindMessagePartXofY is a multi-part message with a known part count.
	KindMessagePartXofY
	// KindMessagePartX is a multi-part message with an unknown part count
	// (deprecated; retained for compatibility).
	KindMessagePartX
)

// MessageType identifies the envelope kind of an armored block, i.e. the
// "PGP ..." text between the dashes of the BEGIN/END lines. X and Y are
// only meaningful for the two MessagePart* kinds.
type MessageType struct {
	Kind MessageTypeKind
	X    int
	Y    int
}

// Message, PublicKeyBlock, PrivateKeyBlock and Signature are the four
// fixed-form envelope types.
var (
	Message         = MessageType{Kind: KindMessage}
	PublicKeyBlock  = MessageType{Kind: KindPublicKeyBlock}
	PrivateKeyBlock = MessageType{Kind: KindPrivateKeyBlock}
	Signature       = MessageType{Kind: KindSignature}
)

// MessagePartXofY builds a parametrized envelope for a message split into
// y parts, this being part x. Callers constructing one by hand are
// responsible for the 1 <= x <= y invariant; the parser enforces it on
// input via InvalidPartIndex.
func MessagePartXofY(x, y int) MessageType {
	return MessageType{Kind: KindMessagePartXofY, X: x, Y: y}
}

// MessagePartX builds the deprecated, unparametrized-total envelope.
func MessagePartX(x int) MessageType {
	return MessageType{Kind: KindMessagePartX, X: x}
}

// String renders the canonical "PGP ..." text that appears between the
// dashes, e.g. "PGP MESSAGE" or "PGP MESSAGE, PART 2/3".
func (m MessageType) String() string {
	switch m.Kind {
	case KindMessage:
		return "PGP MESSAGE"
	case KindPublicKeyBlock:
		return "PGP PUBLIC KEY BLOCK"
	case KindPrivateKeyBlock:
		return "PGP PRIVATE KEY BLOCK"
	case KindSignature:
		return "PGP SIGNATURE"
	case KindMessagePartXofY:
		return fmt.Sprintf("PGP MESSAGE, PART %d/%d", m.X, m.Y)
	case KindMessagePartX:
		return fmt.Sprintf("PGP MESSAGE, PART %d", m.X)
	default:
		return "PGP <unknown>"
	}
}

// HeaderKeyKind discriminates the five reserved armor header names plus
// the catch-all "any other name" case.
type HeaderKeyKind int

const (
	Version HeaderKeyKind = iota
	Comment
	MessageID
	Hash
	Charset
	// Other covers any header name that is not one of the five reserved
	// keys above. OtherName holds the literal name in that case.
	Other
)

// HeaderKey identifies one armor header line's key. OtherName is only
// populated (and only meaningful) when Kind == Other.
type HeaderKey struct {
	Kind      HeaderKeyKind
	OtherName string
}

func (k HeaderKey) String() string {
	switch k.Kind {
	case Version:
		return "Version"
	case Comment:
		return "Comment"
	case MessageID:
		return "MessageID"
	case Hash:
		return "Hash"
	case Charset:
		return "Charset"
	default:
		return k.OtherName
	}
}

// reservedHeaderNames maps the wire-exact spelling of each reserved key
// to its HeaderKeyKind. MessageID has no space in its wire form.
var reservedHeaderNames = map[string]HeaderKeyKind{
	"Version":   Version,
	"Comment":   Comment,
	"MessageID": MessageID,
	"Hash":      Hash,
	"Charset":   Charset,
}

// headerKeyFromName classifies a raw header name into a HeaderKey,
// routing anything not in reservedHeaderNames to Other.
func headerKeyFromName(name string) HeaderKey {
	if kind, ok := reservedHeaderNames[name]; ok {
		return HeaderKey{Kind: kind}
	}
	return HeaderKey{Kind: Other, OtherName: name}
}

// HeaderField is a single (key, value) pair in insertion order.
type HeaderField struct {
	Key   HeaderKey
	Value string
}

// ArmorHeader is the ordered sequence of header fields between the BEGIN
// line and the blank line preceding the payload. Order is preserved so a
// decoded message is re-encoded with its fields in the original order.
type ArmorHeader []HeaderField

// Values returns, in insertion order, the values of every field whose key
// equals k. Useful for Hash, which may legally repeat.
func (h ArmorHeader) Values(k HeaderKey) []string {
	var out []string
	for _, f := range h {
		if f.Key == k {
			out = append(out, f.Value)
		}
	}
	return out
}

// First returns the value of the first field whose key equals k, and
// whether one was found.
func (h ArmorHeader) First(k HeaderKey) (string, bool) {
	for _, f := range h {
		if f.Key == k {
			return f.Value, true
		}
	}
	return "", false
}

// Last returns the value of the last field whose key equals k. Per §4.4
// point 5, a non-Hash reserved key that repeats is tolerated but only a
// diagnostic; Last is how a caller recovers the value that "wins".
func (h ArmorHeader) Last(k HeaderKey) (string, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Key == k {
			return h[i].Value, true
		}
	}
	return "", false
}

// ArmoredMessage is the decoder's top-level result: a typed envelope, its
// headers, the decoded binary payload, and the CRC-24 values that were
// compared during validation.
type ArmoredMessage struct {
	Envelope     MessageType
	Headers      ArmorHeader
	Payload      []byte
	DeclaredCRC  uint32
	ComputedCRC  uint32
}

// Diagnostic is a non-fatal finding surfaced alongside a successful
// decode: something worth a caller's attention that did not abort the
// parse.
type Diagnostic struct {
	Kind     ErrorKind
	Location Location
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at byte %d: %s", d.Kind, d.Location.Absolute, d.Message)
}
