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

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func scanAll(src string) []Token {
	tz := NewTokenizer([]byte(src))
	var toks []Token
	for {
		tok := tz.Advance()
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

func TestTokenizerHeaderLine(t *testing.T) {
	got := kinds(scanAll("-----BEGIN PGP MESSAGE-----\n"))
	want := []TokenKind{TokFiveDashes, TokBegin, TokPgpMessage, TokFiveDashes, TokNewline, TokEOF}
	assertKinds(t, got, want)
}

func TestTokenizerMessagePart(t *testing.T) {
	got := kinds(scanAll("PGP MESSAGE, PART 2/3"))
	want := []TokenKind{TokPgpMessagePart, TokDigit, TokForwardSlash, TokDigit, TokEOF}
	assertKinds(t, got, want)
}

func TestTokenizerHeaderKeyword(t *testing.T) {
	got := kinds(scanAll("Version: OpenPrivacy 0.99\n"))
	want := []TokenKind{TokVersionKW, TokColonSpace}
	for range "OpenPrivacy" {
		want = append(want, TokLetter)
	}
	want = append(want,
		TokWhitespace,
		TokDigit, TokOtherUTF8, TokDigit, TokDigit, // "0.99": '.' is not a recognized terminal
		TokNewline, TokEOF,
	)
	assertKinds(t, got, want)
}

func TestTokenizerKeywordLikeNameIsNotMistakenForReserved(t *testing.T) {
	toks := scanAll("Versioning: x\n")
	if toks[0].Kind == TokVersionKW {
		t.Fatalf("\"Versioning\" must not tokenize as the Version keyword")
	}
}

func TestTokenizerBlankLine(t *testing.T) {
	got := kinds(scanAll("a\n\nb"))
	want := []TokenKind{TokLetter, TokBlankLine, TokLetter, TokEOF}
	assertKinds(t, got, want)
}

func TestTokenizerBlankLineWithWhitespace(t *testing.T) {
	got := kinds(scanAll("a\n   \nb"))
	want := []TokenKind{TokLetter, TokBlankLine, TokLetter, TokEOF}
	assertKinds(t, got, want)
}

func TestTokenizerNewlineVariants(t *testing.T) {
	for _, nl := range []string{"\n", "\r"} {
		toks := scanAll("a" + nl + "b")
		got := kinds(toks)
		want := []TokenKind{TokLetter, TokNewline, TokLetter, TokEOF}
		assertKinds(t, got, want)
	}
}

// TestTokenizerCRLFIsTwoNewlineTokens pins down §4.3's "CR, LF, and CRLF
// are all accepted; CRLF yields two tokens": the tokenizer itself never
// merges a CRLF pair into one Newline, unlike the compound BlankLine
// terminal. It is the parser's job (see consumeNewlineAfter) to treat a
// lone-'\r'-then-lone-'\n' pair as satisfying a single Newline production.
func TestTokenizerCRLFIsTwoNewlineTokens(t *testing.T) {
	toks := scanAll("a\r\nb")
	got := kinds(toks)
	want := []TokenKind{TokLetter, TokNewline, TokNewline, TokLetter, TokEOF}
	assertKinds(t, got, want)
	if toks[1].Text != "\r" || toks[2].Text != "\n" {
		t.Fatalf("CRLF split text = %q, %q, want \"\\r\", \"\\n\"", toks[1].Text, toks[2].Text)
	}
}

func TestTokenizerPeekDoesNotConsume(t *testing.T) {
	tz := NewTokenizer([]byte("ab"))
	first := tz.Peek(1)
	second := tz.Peek(1)
	if first != second {
		t.Fatalf("Peek(1) twice returned different tokens: %+v vs %+v", first, second)
	}
	if tz.Peek(2).Text != "b" {
		t.Fatalf("Peek(2) = %+v, want lexeme \"b\"", tz.Peek(2))
	}
	if tz.Advance().Text != "a" {
		t.Fatal("Advance() did not return the peeked token")
	}
	if tz.Advance().Text != "b" {
		t.Fatal("Advance() did not move forward after consuming")
	}
}

func TestTokenizerNeverFails(t *testing.T) {
	toks := scanAll("*日本語*\x00\x01")
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind != TokOtherUTF8 {
			t.Fatalf("expected OtherUtf8 for unclassified input, got %v", tok.Kind)
		}
	}
	if toks[len(toks)-1].Kind != TokEOF {
		t.Fatal("stream did not terminate in Eof")
	}
}

func assertKinds(t *testing.T, got, want []TokenKind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (full: got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}
