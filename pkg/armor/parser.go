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
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser is a recursive-descent recognizer over the armor grammar of
// §4.4. It owns a bounded replay window on top of a Tokenizer so that
// mark/commit/restore can implement local backtracking without the
// Tokenizer itself needing to support rewinding.
type Parser struct {
	tok    *Tokenizer
	window []Token
	pos    int
	marks  []int
}

// NewParser wraps tok. tok should not be used directly by the caller
// afterwards; the Parser takes over consuming it.
func NewParser(tok *Tokenizer) *Parser {
	return &Parser{tok: tok}
}

func (p *Parser) fill(n int) {
	for len(p.window)-p.pos < n {
		p.window = append(p.window, p.tok.Advance())
	}
}

func (p *Parser) peek(k int) Token {
	p.fill(k)
	return p.window[p.pos+k-1]
}

func (p *Parser) advance() Token {
	p.fill(1)
	t := p.window[p.pos]
	p.pos++
	if len(p.marks) == 0 {
		// Nothing can rewind behind the current position.
		p.compact()
	}
	return t
}

// consumeNewlineAfter swallows a following bare '\n' token when tok (a
// Newline just consumed by the caller) was a lone '\r'. scanOne tokenizes
// CRLF as two separate Newline tokens (see tokenizer.go), per §4.3's
// "CRLF yields two tokens", but every grammar rule in §4.4 expects a
// single Newline terminal at a line ending; this is the one place that
// gap is closed, so CRLF input satisfies those rules like LF or CR alone.
func (p *Parser) consumeNewlineAfter(tok Token) {
	if tok.Text == "\r" && p.peek(1).Kind == TokNewline && p.peek(1).Text == "\n" {
		p.advance()
	}
}

// mark pushes the current read position and returns it.
func (p *Parser) mark() int {
	m := p.pos
	p.marks = append(p.marks, m)
	return m
}

// commit discards the most recent mark, now that its production
// succeeded, and compacts the window.
func (p *Parser) commit() {
	if n := len(p.marks); n > 0 {
		p.marks = p.marks[:n-1]
	}
	p.compact()
}

// restore rewinds the read position to m, which must be the value
// returned by the matching mark call, and discards that mark.
func (p *Parser) restore(m int) {
	p.pos = m
	if n := len(p.marks); n > 0 {
		p.marks = p.marks[:n-1]
	}
}

// compact drops window entries no longer reachable by any outstanding
// mark or the current position, keeping the replay buffer bounded.
func (p *Parser) compact() {
	floor := p.pos
	for _, m := range p.marks {
		if m < floor {
			floor = m
		}
	}
	if floor > 0 {
		p.window = p.window[floor:]
		p.pos -= floor
		for i := range p.marks {
			p.marks[i] -= floor
		}
	}
}

// ParseArmor runs the full Armor production of §4.4 against src,
// including the semantic checks of §4.4 and the base64/CRC validation
// that the façade would otherwise have to re-implement: envelope
// pairing, part-index range, base64 assembly, and the checksum compare.
// On success it returns the assembled message and any accumulated
// non-fatal diagnostics. On failure the returned error is the first
// fatal error encountered and no partial message is returned.
func ParseArmor(src []byte) (*ArmoredMessage, []Diagnostic, *Error) {
	p := NewParser(NewTokenizer(src))
	return p.parseArmor()
}

func (p *Parser) parseArmor() (*ArmoredMessage, []Diagnostic, *Error) {
	var diags []Diagnostic

	beginType, beginText, _, err := p.parseEnvelopeLine(TokBegin, &diags)
	if err != nil {
		return nil, nil, err
	}

	var headers ArmorHeader
	switch sep := p.peek(1); sep.Kind {
	case TokBlankLine:
		// Tokenizer already merged the Newline after the header line
		// with the header block's blank-line separator because the
		// header block is empty; see tokenizer.go's matchBlankLine.
		p.advance()
	case TokNewline:
		p.consumeNewlineAfter(p.advance())
		headers, err = p.parseHeaderBlock(&diags)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, errAt(MalformedHeaderLine, sep.Loc)
	}

	chars, locs, err := p.parsePayloadBlock()
	if err != nil {
		return nil, nil, err
	}

	declaredCRC, err := p.parseCRCLine()
	if err != nil {
		return nil, nil, err
	}

	endType, endText, endLoc, err := p.parseEnvelopeLine(TokEnd, &diags)
	if err != nil {
		return nil, nil, err
	}

	if beginType != endType {
		return nil, nil, &Error{
			Kind: MismatchedEnvelope, Location: endLoc, Fatal: true,
			Begin: beginText, End: endText,
		}
	}

	payload, b64diags, berr := decodeBase64At(chars, locs)
	if berr != nil {
		return nil, nil, berr
	}
	diags = append(diags, b64diags...)

	computed := CRC24(payload)
	if computed != declaredCRC {
		return nil, nil, &Error{
			Kind: ChecksumMismatch, Location: endLoc, Fatal: true,
			Declared: declaredCRC, Computed: computed,
		}
	}

	msg := &ArmoredMessage{
		Envelope:    beginType,
		Headers:     headers,
		Payload:     payload,
		DeclaredCRC: declaredCRC,
		ComputedCRC: computed,
	}
	return msg, diags, nil
}

// parseEnvelopeLine recognizes HeaderLine or TailLine, depending on
// whether want is TokBegin or TokEnd: FiveDashes (Begin|End)
// MessageTypeTok FiveDashes. It is the one production in the grammar
// with more than one token of fixed prefix, so it sets a mark and
// restores on any failure that hasn't committed past it.
func (p *Parser) parseEnvelopeLine(want TokenKind, diags *[]Diagnostic) (MessageType, string, Location, *Error) {
	m := p.mark()

	dashes := p.advance()
	if dashes.Kind != TokFiveDashes {
		p.restore(m)
		return MessageType{}, "", dashes.Loc, errAt(MalformedHeaderLine, dashes.Loc)
	}

	kw := p.advance()
	if kw.Kind != want {
		p.restore(m)
		return MessageType{}, "", kw.Loc, errAt(MalformedHeaderLine, kw.Loc)
	}

	mt, text, err := p.parseMessageTypeTok(diags)
	if err != nil {
		return MessageType{}, "", err.Location, err
	}

	tail := p.advance()
	if tail.Kind != TokFiveDashes {
		return MessageType{}, "", tail.Loc, errAt(MalformedHeaderLine, tail.Loc)
	}

	p.commit()
	return mt, text, dashes.Loc, nil
}

// parseMessageTypeTok implements the state machine of §4.4: a
// priority-ordered dispatch on the lookahead token, with the
// PgpMessagePart branch additionally walking S_PART_X / S_PART_NUM2 and
// preferring the longer MessagePartXofY reduction when a ForwardSlash
// follows the first number.
func (p *Parser) parseMessageTypeTok(diags *[]Diagnostic) (MessageType, string, *Error) {
	tok := p.peek(1)
	switch tok.Kind {
	case TokPgpMessage:
		p.advance()
		return Message, Message.String(), nil
	case TokPgpPublicKeyBlock:
		p.advance()
		return PublicKeyBlock, PublicKeyBlock.String(), nil
	case TokPgpPrivateKeyBlock:
		p.advance()
		return PrivateKeyBlock, PrivateKeyBlock.String(), nil
	case TokPgpSignature:
		p.advance()
		return Signature, Signature.String(), nil
	case TokPgpMessagePart:
		p.advance()
		return p.parseMessagePart(diags)
	default:
		return MessageType{}, "", errAt(MalformedHeaderLine, tok.Loc)
	}
}

func (p *Parser) parseMessagePart(diags *[]Diagnostic) (MessageType, string, *Error) {
	x, xLoc, err := p.parseNumber()
	if err != nil {
		return MessageType{}, "", err
	}

	if p.peek(1).Kind == TokForwardSlash {
		p.advance()
		y, _, err := p.parseNumber()
		if err != nil {
			return MessageType{}, "", err
		}
		if x < 1 || x > y {
			return MessageType{}, "", &Error{Kind: InvalidPartIndex, Location: xLoc, Fatal: true, X: x, Y: y}
		}
		mt := MessagePartXofY(x, y)
		return mt, mt.String(), nil
	}

	if x < 1 {
		return MessageType{}, "", &Error{Kind: InvalidPartIndex, Location: xLoc, Fatal: true, X: x}
	}
	*diags = append(*diags, Diagnostic{
		Kind: DeprecatedMessagePartX, Location: xLoc,
		Message: "PGP MESSAGE, PART n without a total count is deprecated",
	})
	mt := MessagePartX(x)
	return mt, mt.String(), nil
}

// parseNumber recognizes Number ::= Digit { Digit }.
func (p *Parser) parseNumber() (int, Location, *Error) {
	first := p.peek(1)
	if first.Kind != TokDigit {
		return 0, first.Loc, errAt(MalformedHeaderLine, first.Loc)
	}
	var sb strings.Builder
	for p.peek(1).Kind == TokDigit {
		sb.WriteString(p.advance().Text)
	}
	n, convErr := strconv.Atoi(sb.String())
	if convErr != nil {
		return 0, first.Loc, errAt(MalformedHeaderLine, first.Loc)
	}
	return n, first.Loc, nil
}

// parseHeaderBlock recognizes HeaderBlock ::= { HeaderLineKV Newline },
// consuming the terminating BlankLine as part of the same call: thanks
// to the tokenizer's greedy BlankLine matching, the Newline ending the
// last header field and the blank separator's own newline are always
// the same compound token, so there is nothing left over for a caller
// to consume separately.
func (p *Parser) parseHeaderBlock(diags *[]Diagnostic) (ArmorHeader, *Error) {
	var headers ArmorHeader
	seen := make(map[HeaderKey]bool)

	for {
		next := p.peek(1)
		if next.Kind == TokEOF {
			return nil, errAt(UnexpectedEOF, next.Loc)
		}

		field, loc, err := p.parseHeaderLineKV()
		if err != nil {
			return nil, err
		}
		if field.Key.Kind != Hash && seen[field.Key] {
			*diags = append(*diags, Diagnostic{
				Kind: DuplicateHeader, Location: loc,
				Message: "duplicate header " + field.Key.String(),
			})
		}
		seen[field.Key] = true
		headers = append(headers, field)

		switch after := p.peek(1); after.Kind {
		case TokBlankLine:
			p.advance()
			return headers, nil
		case TokNewline:
			p.consumeNewlineAfter(p.advance())
		default:
			return nil, errAt(MalformedHeaderBlock, after.Loc)
		}
	}
}

// parseHeaderLineKV recognizes HeaderLineKV ::= (HeaderKeyTok | OtherName)
// ColonSpace HeaderValue, returning the byte offset of the key for
// diagnostic placement.
func (p *Parser) parseHeaderLineKV() (HeaderField, Location, *Error) {
	var key HeaderKey
	tok := p.peek(1)
	loc := tok.Loc

	switch tok.Kind {
	case TokVersionKW:
		p.advance()
		key = HeaderKey{Kind: Version}
	case TokCommentKW:
		p.advance()
		key = HeaderKey{Kind: Comment}
	case TokMessageIDKW:
		p.advance()
		key = HeaderKey{Kind: MessageID}
	case TokHashKW:
		p.advance()
		key = HeaderKey{Kind: Hash}
	case TokCharsetKW:
		p.advance()
		key = HeaderKey{Kind: Charset}
	case TokLetter, TokDigit:
		name, err := p.parseOtherName()
		if err != nil {
			return HeaderField{}, loc, err
		}
		key = headerKeyFromName(name)
	default:
		return HeaderField{}, loc, errAt(MalformedHeaderBlock, tok.Loc)
	}

	cs := p.advance()
	if cs.Kind != TokColonSpace {
		return HeaderField{}, loc, errAt(MalformedHeaderBlock, cs.Loc)
	}

	value := strings.TrimSpace(p.readHeaderValue())
	return HeaderField{Key: key, Value: value}, loc, nil
}

// parseOtherName recognizes OtherName ::= (Letter | Digit) { Letter |
// Digit | Hyphen }. Reserved names never reach here: the tokenizer
// classifies an exact, identifier-boundary match of a reserved keyword
// as its own token kind before OtherName is ever tried.
func (p *Parser) parseOtherName() (string, *Error) {
	first := p.peek(1)
	if first.Kind != TokLetter && first.Kind != TokDigit {
		return "", errAt(MalformedHeaderBlock, first.Loc)
	}
	var sb strings.Builder
	sb.WriteString(p.advance().Text)
	for {
		switch p.peek(1).Kind {
		case TokLetter, TokDigit, TokHyphen:
			sb.WriteString(p.advance().Text)
		default:
			return sb.String(), nil
		}
	}
}

// readHeaderValue recognizes HeaderValue ::= TextUntilNewline, consuming
// (but not including) the terminating Newline or BlankLine.
func (p *Parser) readHeaderValue() string {
	var sb strings.Builder
	for {
		switch p.peek(1).Kind {
		case TokNewline, TokBlankLine, TokEOF:
			return sb.String()
		default:
			sb.WriteString(p.advance().Text)
		}
	}
}

// parsePayloadBlock recognizes PayloadBlock ::= { Base64Line Newline },
// stopping as soon as the lookahead is a Pad token: per the grammar, a
// Base64Line can never start with '=', so that can only be the leading
// Equal of the CrcLine.
func (p *Parser) parsePayloadBlock() ([]byte, []Location, *Error) {
	var chars []byte
	var locs []Location

	for {
		first := p.peek(1)
		if first.Kind == TokPad {
			return chars, locs, nil
		}
		if first.Kind == TokEOF {
			return nil, nil, errAt(UnexpectedEOF, first.Loc)
		}

		lineChars, lineLocs, err := p.parseBase64Line()
		if err != nil {
			return nil, nil, err
		}
		chars = append(chars, lineChars...)
		locs = append(locs, lineLocs...)

		switch nl := p.advance(); nl.Kind {
		case TokNewline:
			p.consumeNewlineAfter(nl)
		case TokEOF:
			return nil, nil, errAt(UnexpectedEOF, nl.Loc)
		default:
			return nil, nil, &Error{Kind: InvalidBase64Character, Location: nl.Loc, Fatal: true, Char: firstRune(nl)}
		}
	}
}

// parseBase64Line recognizes Base64Line ::= 1..76 of (Letter | Digit |
// ForwardSlash | PlusSign) [Pad [Pad]], additionally tolerating trailing
// whitespace before the line's Newline as §6 permits. The 1..76 upper
// bound is accepted leniently (not enforced as fatal): RFC 4880 gives no
// error kind for an over-long payload line, so a conformant-but-verbose
// encoder's output is not rejected.
func (p *Parser) parseBase64Line() ([]byte, []Location, *Error) {
	var chars []byte
	var locs []Location

alphabet:
	for {
		tok := p.peek(1)
		switch tok.Kind {
		case TokLetter, TokDigit, TokForwardSlash, TokPlusSign:
			p.advance()
			chars = append(chars, tok.Text[0])
			locs = append(locs, tok.Loc)
		case TokVersionKW, TokCommentKW, TokMessageIDKW, TokHashKW, TokCharsetKW:
			// A reserved header keyword is plain letters inside a payload.
			p.advance()
			for j := 0; j < len(tok.Text); j++ {
				chars = append(chars, tok.Text[j])
				locs = append(locs, Location{tok.Loc.Absolute + j})
			}
		default:
			break alphabet
		}
	}

	if len(chars) == 0 {
		tok := p.peek(1)
		return nil, nil, &Error{Kind: InvalidBase64Character, Location: tok.Loc, Fatal: true, Char: firstRune(tok)}
	}

	for i := 0; i < 2 && p.peek(1).Kind == TokPad; i++ {
		tok := p.advance()
		chars = append(chars, '=')
		locs = append(locs, tok.Loc)
	}

	for p.peek(1).Kind == TokWhitespace {
		p.advance()
	}

	if next := p.peek(1); next.Kind != TokNewline && next.Kind != TokEOF {
		return nil, nil, &Error{Kind: InvalidBase64Character, Location: next.Loc, Fatal: true, Char: firstRune(next)}
	}

	return chars, locs, nil
}

// parseCRCLine recognizes CrcLine ::= Equal 4xBase64Char Newline,
// decoding the four characters into the declared 24-bit checksum.
func (p *Parser) parseCRCLine() (uint32, *Error) {
	eq := p.advance()
	if eq.Kind != TokPad {
		if eq.Kind == TokEOF {
			return 0, errAt(UnexpectedEOF, eq.Loc)
		}
		return 0, &Error{Kind: InvalidBase64Character, Location: eq.Loc, Fatal: true, Char: firstRune(eq)}
	}

	var chars [4]byte
	var locs [4]Location
	for i := 0; i < 4; {
		tok := p.peek(1)
		switch tok.Kind {
		case TokLetter, TokDigit, TokForwardSlash, TokPlusSign, TokHashKW:
			// "Hash" is the only reserved keyword short enough to be a
			// whole four-character checksum.
			if i+len(tok.Text) > 4 {
				return 0, &Error{Kind: InvalidBase64Character, Location: tok.Loc, Fatal: true, Char: firstRune(tok)}
			}
			p.advance()
			for j := 0; j < len(tok.Text); j++ {
				chars[i] = tok.Text[j]
				locs[i] = Location{tok.Loc.Absolute + j}
				i++
			}
		default:
			return 0, &Error{Kind: InvalidBase64Character, Location: tok.Loc, Fatal: true, Char: firstRune(tok)}
		}
	}

	switch nl := p.advance(); nl.Kind {
	case TokNewline:
		p.consumeNewlineAfter(nl)
	case TokEOF:
		return 0, errAt(UnexpectedEOF, nl.Loc)
	default:
		return 0, &Error{Kind: InvalidBase64Character, Location: nl.Loc, Fatal: true, Char: firstRune(nl)}
	}

	octets, _, err := decodeBase64At(chars[:], locs[:])
	if err != nil {
		return 0, err
	}
	if len(octets) != 3 {
		return 0, errAt(InvalidPadding, locs[0])
	}
	return uint32(octets[0])<<16 | uint32(octets[1])<<8 | uint32(octets[2]), nil
}

func firstRune(t Token) rune {
	if len(t.Text) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r
}
