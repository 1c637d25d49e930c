// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lassandro/goc8/pkg/assembler"
)

func mustTokenize(t *testing.T, input string) []assembler.Token {
	t.Helper()

	tokens, errs := assembler.Tokenize(strings.NewReader(input))

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	return tokens
}

func TestTokenizeLine(t *testing.T) {
	tokens := mustTokenize(t, "start ld v1, $2A ; comment")

	want := []assembler.TokenType{
		assembler.TOKEN_IDENT,
		assembler.TOKEN_MNEMONIC,
		assembler.TOKEN_REGISTER,
		assembler.TOKEN_COMMA,
		assembler.TOKEN_LITERAL,
		assembler.TOKEN_NEWLINE,
		assembler.TOKEN_EOF,
	}

	have := make([]assembler.TokenType, 0, len(tokens))

	for _, token := range tokens {
		have = append(have, token.Type)
	}

	if !reflect.DeepEqual(want, have) {
		t.Fatalf("Token types\nwant:%v\nhave:%v", want, have)
	}

	if tokens[0].Value != "start" {
		t.Fatalf("Label text\nwant:start\nhave:%s", tokens[0].Value)
	}

	if tokens[2].Number != 1 {
		t.Fatalf("Register index\nwant:1\nhave:%d", tokens[2].Number)
	}

	if tokens[4].Number != 0x2A {
		t.Fatalf("Literal value\nwant:0x2a\nhave:%#x", tokens[4].Number)
	}
}

func TestTokenizeCase(t *testing.T) {
	tokens := mustTokenize(t, "LD Vf, [i]")

	if tokens[0].Type != assembler.TOKEN_MNEMONIC {
		t.Fatalf("LD\nwant:TOKEN_MNEMONIC\nhave:%v", tokens[0].Type)
	}

	if tokens[1].Type != assembler.TOKEN_REGISTER || tokens[1].Number != 15 {
		t.Fatalf(
			"Vf\nwant:TOKEN_REGISTER 15\nhave:%v %d",
			tokens[1].Type,
			tokens[1].Number,
		)
	}

	if tokens[3].Type != assembler.TOKEN_SPECIAL || tokens[3].Value != "[I]" {
		t.Fatalf(
			"[i]\nwant:TOKEN_SPECIAL [I]\nhave:%v %q",
			tokens[3].Type,
			tokens[3].Value,
		)
	}
}

func TestTokenizeCursor(t *testing.T) {
	tokens := mustTokenize(t, "  jp #end")

	jp := tokens[0]

	if jp.Position.Line != 1 || jp.Position.Column != 3 {
		t.Fatalf(
			"jp position\nwant:1:3\nhave:%d:%d",
			jp.Position.Line,
			jp.Position.Column,
		)
	}

	ref := tokens[1]

	if ref.Type != assembler.TOKEN_REF || ref.Value != "end" {
		t.Fatalf("Reference\nwant:end\nhave:%q", ref.Value)
	}

	// size covers the sigil as well as the name
	if ref.Position.Column != 6 || ref.Position.Size != 4 {
		t.Fatalf(
			"Reference position\nwant:col 6 size 4\nhave:col %d size %d",
			ref.Position.Column,
			ref.Position.Size,
		)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tokens, errs := assembler.Tokenize(
		strings.NewReader("@foo\nld v0, $GG\ncls"),
	)

	if len(errs) != 2 {
		t.Fatalf("Error count\nwant:2\nhave:%d", len(errs))
	}

	for i, err := range errs {
		if _, ok := err.(*assembler.LexError); !ok {
			t.Fatalf("errs[%d]\nwant:*LexError\nhave:%T", i, err)
		}
	}

	if line := errs[0].(assembler.TokenError).GetPosition().Line; line != 1 {
		t.Fatalf("First error line\nwant:1\nhave:%d", line)
	}

	if line := errs[1].(assembler.TokenError).GetPosition().Line; line != 2 {
		t.Fatalf("Second error line\nwant:2\nhave:%d", line)
	}

	// scanning resumed after the bad lines
	found := false

	for _, token := range tokens {
		if token.Type == assembler.TOKEN_MNEMONIC && token.Value == "cls" {
			found = true
		}
	}

	if !found {
		t.Fatal("Expected lexing to resume on the line after an error")
	}
}
