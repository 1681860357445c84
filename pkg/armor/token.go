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

// TokenKind enumerates the terminal alphabet of §4.3. Every byte of input
// maps to exactly one token; the tokenizer never fails.
type TokenKind int

const (
	TokFiveDashes TokenKind = iota
	TokBegin
	TokEnd
	TokPgpMessage
	TokPgpPublicKeyBlock
	TokPgpPrivateKeyBlock
	TokPgpSignature
	TokPgpMessagePart
	TokForwardSlash
	TokPad
	TokPlusSign
	TokColon
	TokColonSpace
	TokComma
	TokHyphen
	TokVersionKW
	TokCommentKW
	TokMessageIDKW
	TokHashKW
	TokCharsetKW
	TokDigit
	TokLetter
	TokWhitespace
	TokNewline
	TokBlankLine
	TokOtherUTF8
	TokEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokFiveDashes:
		return "FiveDashes"
	case TokBegin:
		return "Begin"
	case TokEnd:
		return "End"
	case TokPgpMessage:
		return "PgpMessage"
	case TokPgpPublicKeyBlock:
		return "PgpPublicKeyBlock"
	case TokPgpPrivateKeyBlock:
		return "PgpPrivateKeyBlock"
	case TokPgpSignature:
		return "PgpSignature"
	case TokPgpMessagePart:
		return "PgpMessagePart"
	case TokForwardSlash:
		return "ForwardSlash"
	case TokPad:
		return "Pad"
	case TokPlusSign:
		return "PlusSign"
	case TokColon:
		return "Colon"
	case TokColonSpace:
		return "ColonSpace"
	case TokComma:
		return "Comma"
	case TokHyphen:
		return "Hyphen"
	case TokVersionKW:
		return "VersionKW"
	case TokCommentKW:
		return "CommentKW"
	case TokMessageIDKW:
		return "MessageIDKW"
	case TokHashKW:
		return "HashKW"
	case TokCharsetKW:
		return "CharsetKW"
	case TokDigit:
		return "Digit"
	case TokLetter:
		return "Letter"
	case TokWhitespace:
		return "Whitespace"
	case TokNewline:
		return "Newline"
	case TokBlankLine:
		return "BlankLine"
	case TokOtherUTF8:
		return "OtherUtf8"
	case TokEOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is a terminal recognized by the Tokenizer: its kind, its lexeme
// text, and the byte offset in the source where it starts.
type Token struct {
	Kind TokenKind
	Text string
	Loc  Location
}

// headerKeywords lists the five reserved header keyword literals in the
// order the tokenizer should try them, alongside the token kind each one
// produces. Longer, more specific literals are not a concern here since
// none of the five is a prefix of another.
var headerKeywords = []struct {
	text string
	kind TokenKind
}{
	{"Version", TokVersionKW},
	{"Comment", TokCommentKW},
	{"MessageID", TokMessageIDKW},
	{"Hash", TokHashKW},
	{"Charset", TokCharsetKW},
}
