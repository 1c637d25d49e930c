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

package assembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/lassandro/goc8/pkg/encoding"
)

// lineLexer tracks scan state within a single source line.
type lineLexer struct {
	line     string
	pos      int
	lineNum  int
	lineByte int64
}

func (l *lineLexer) cursor(start, size int) Cursor {
	return Cursor{
		Line:     l.lineNum,
		Column:   start + 1,
		Byte:     l.lineByte + int64(start),
		Size:     int64(size),
		LineByte: l.lineByte,
	}
}

func isIdentRune(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isLiteralRune(c byte) bool {
	return c == '.' || isIdentRune(c)
}

// word consumes characters while keep returns true and returns the
// consumed text with its starting offset.
func (l *lineLexer) word(keep func(byte) bool) (string, int) {
	start := l.pos

	for l.pos < len(l.line) && keep(l.line[l.pos]) {
		l.pos++
	}

	return l.line[start:l.pos], start
}

// classify turns a bare identifier into its token type. Registers and
// keywords are split out here so the parser never re-inspects text.
func classify(ident string) (TokenType, uint32) {
	if index, ok := parseRegister(ident); ok {
		return TOKEN_REGISTER, uint32(index)
	}

	if parseMnemonic(ident) != MNEMONIC_INVALID {
		return TOKEN_MNEMONIC, 0
	}

	if parseDirective(ident) != DIRECTIVE_INVALID {
		return TOKEN_DIRECTIVE, 0
	}

	if _, ok := parseSpecial(ident); ok {
		return TOKEN_SPECIAL, 0
	}

	return TOKEN_IDENT, 0
}

// Tokenize converts raw source text into a flat token sequence ending
// in TOKEN_EOF. Lines are separated by TOKEN_NEWLINE tokens. Lexical
// errors are accumulated: an unrecognized character sequence abandons
// the rest of its line and scanning resumes on the next one.
func Tokenize(input io.Reader) ([]Token, []error) {
	tokens := make([]Token, 0, 64)
	errs := make([]error, 0)

	scanner := bufio.NewScanner(input)

	var lineByte int64

	lineNum := 1

	for ; scanner.Scan(); lineNum++ {
		line := scanner.Text()

		l := &lineLexer{line: line, lineNum: lineNum, lineByte: lineByte}

		tokens, errs = l.scan(tokens, errs)

		tokens = append(tokens, Token{
			Type:     TOKEN_NEWLINE,
			Position: l.cursor(len(line), 0),
		})

		lineByte += int64(len(line) + 1)
	}

	tokens = append(tokens, Token{
		Type: TOKEN_EOF,
		Position: Cursor{
			Line:     lineNum,
			Column:   1,
			Byte:     lineByte,
			LineByte: lineByte,
		},
	})

	return tokens, errs
}

func (l *lineLexer) scan(tokens []Token, errs []error) ([]Token, []error) {
	for l.pos < len(l.line) {
		c := l.line[l.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++

		case c == ';':
			// comment runs to end of line
			l.pos = len(l.line)

		case c == ',':
			tokens = append(tokens, Token{
				Type:     TOKEN_COMMA,
				Position: l.cursor(l.pos, 1),
				Value:    ",",
			})
			l.pos++

		case c == '[':
			start := l.pos
			l.pos++

			inner, _ := l.word(isIdentRune)

			if !strings.EqualFold(inner, "I") ||
				l.pos >= len(l.line) || l.line[l.pos] != ']' {
				errs = append(errs, &LexError{
					l.cursor(start, l.pos-start),
					l.line[start:l.pos],
				})
				l.pos = len(l.line)
				break
			}

			l.pos++
			tokens = append(tokens, Token{
				Type:     TOKEN_SPECIAL,
				Position: l.cursor(start, l.pos-start),
				Value:    "[I]",
			})

		case c == '#':
			start := l.pos
			l.pos++

			name, _ := l.word(isIdentRune)

			if name == "" {
				errs = append(errs, &LexError{l.cursor(start, 1), "#"})
				l.pos = len(l.line)
				break
			}

			tokens = append(tokens, Token{
				Type:     TOKEN_REF,
				Position: l.cursor(start, l.pos-start),
				Value:    name,
			})

		case c == '$' || c == '%' || (c >= '0' && c <= '9'):
			start := l.pos

			if c == '$' || c == '%' {
				l.pos++
			}

			l.word(isLiteralRune)
			text := l.line[start:l.pos]

			var value uint32
			var err error

			switch text[0] {
			case '$':
				value, err = encoding.DecodeHex(text)
			case '%':
				value, err = encoding.DecodeBin(text)
			default:
				value, err = encoding.DecodeInt(text)
			}

			if err != nil {
				errs = append(errs, &LexError{
					l.cursor(start, len(text)), text,
				})
				l.pos = len(l.line)
				break
			}

			tokens = append(tokens, Token{
				Type:     TOKEN_LITERAL,
				Position: l.cursor(start, len(text)),
				Value:    text,
				Number:   value,
			})

		case isIdentRune(c):
			text, start := l.word(isIdentRune)

			typ, number := classify(text)

			tokens = append(tokens, Token{
				Type:     typ,
				Position: l.cursor(start, len(text)),
				Value:    text,
				Number:   number,
			})

		default:
			text, start := l.word(func(c byte) bool {
				return c != ' ' && c != '\t' && c != ',' && c != ';'
			})

			errs = append(errs, &LexError{l.cursor(start, len(text)), text})
			l.pos = len(l.line)
		}
	}

	return tokens, errs
}
