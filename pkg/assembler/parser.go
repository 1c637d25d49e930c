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

import "fmt"

// Parse consumes the token sequence and produces the ordered statement
// list. Syntax errors are accumulated per line: the first error on a
// line abandons that line's statements and parsing resumes on the next
// line.
func Parse(tokens []Token) ([]Statement, []error) {
	statements := make([]Statement, 0, 32)
	errs := make([]error, 0)

	line := make([]Token, 0, 8)

	for _, token := range tokens {
		if token.Type != TOKEN_NEWLINE && token.Type != TOKEN_EOF {
			line = append(line, token)
			continue
		}

		if len(line) > 0 {
			parsed, err := parseLine(line)

			if err != nil {
				errs = append(errs, err)
			} else {
				statements = append(statements, parsed...)
			}

			line = line[:0]
		}
	}

	return statements, errs
}

func parseLine(line []Token) ([]Statement, error) {
	statements := make([]Statement, 0, 2)

	// optional leading label
	if line[0].Type == TOKEN_IDENT {
		statements = append(statements, Statement{
			Kind:     STATEMENT_LABEL,
			Position: line[0].Position,
			Label:    line[0].Value,
		})

		line = line[1:]

		if len(line) == 0 {
			return statements, nil
		}
	}

	head := line[0]

	switch head.Type {
	case TOKEN_MNEMONIC:
		operands, err := parseOperands(line[1:], head.Position, true)

		if err != nil {
			return nil, err
		}

		mnemonic := parseMnemonic(head.Value)

		if err := checkArity(head, mnemonic, operands); err != nil {
			return nil, err
		}

		statements = append(statements, Statement{
			Kind:     STATEMENT_INSTRUCTION,
			Position: head.Position,
			Mnemonic: mnemonic,
			Operands: operands,
		})

	case TOKEN_DIRECTIVE:
		operands, err := parseOperands(line[1:], head.Position, false)

		if err != nil {
			return nil, err
		}

		directive := parseDirective(head.Value)

		if err := checkDirectiveArgs(head, directive, operands); err != nil {
			return nil, err
		}

		statements = append(statements, Statement{
			Kind:      STATEMENT_DIRECTIVE,
			Position:  head.Position,
			Directive: directive,
			Operands:  operands,
		})

	case TOKEN_IDENT:
		return nil, &ParseError{
			head.Position,
			fmt.Sprintf("Unknown mnemonic or directive '%s'", head.Value),
		}

	default:
		return nil, &ParseError{
			head.Position,
			fmt.Sprintf("Unexpected token '%s'", head.Value),
		}
	}

	return statements, nil
}

// parseOperands reads a comma-separated operand list. Directives also
// accept bare whitespace separation, instructions require commas.
func parseOperands(
	line []Token, at Cursor, requireCommas bool,
) ([]Operand, error) {
	operands := make([]Operand, 0, 3)

	expectComma := false

	for _, token := range line {
		if token.Type == TOKEN_COMMA {
			if !expectComma {
				return nil, &ParseError{
					token.Position, "Unexpected ','",
				}
			}

			expectComma = false
			continue
		}

		if expectComma && requireCommas {
			return nil, &ParseError{
				token.Position,
				fmt.Sprintf("Expected ',' before '%s'", token.Value),
			}
		}

		operand, err := parseOperand(token)

		if err != nil {
			return nil, err
		}

		operands = append(operands, operand)
		expectComma = true
	}

	if len(line) > 0 && !expectComma {
		last := line[len(line)-1]

		return nil, &ParseError{last.Position, "Trailing ','"}
	}

	return operands, nil
}

func parseOperand(token Token) (Operand, error) {
	switch token.Type {
	case TOKEN_REGISTER:
		return Operand{
			Kind:     OPERAND_V,
			Position: token.Position,
			Value:    token.Number,
		}, nil

	case TOKEN_SPECIAL:
		if token.Value == "[I]" {
			return Operand{
				Kind:     OPERAND_INDIRECT,
				Position: token.Position,
			}, nil
		}

		kind, _ := parseSpecial(token.Value)

		return Operand{Kind: kind, Position: token.Position}, nil

	case TOKEN_LITERAL:
		return Operand{
			Kind:     OPERAND_LITERAL,
			Position: token.Position,
			Value:    token.Number,
		}, nil

	case TOKEN_REF:
		return Operand{
			Kind:     OPERAND_REF,
			Position: token.Position,
			Symbol:   token.Value,
		}, nil
	}

	return Operand{}, &ParseError{
		token.Position,
		fmt.Sprintf("Expected operand, found '%s'", token.Value),
	}
}

func checkArity(
	head Token, mnemonic MnemonicType, operands []Operand,
) error {
	for _, count := range mnemonicArity(mnemonic) {
		if len(operands) == count {
			return nil
		}
	}

	return &ParseError{
		head.Position,
		fmt.Sprintf(
			"Invalid number of operands for %s\n\twant:%v\n\thave:%d",
			mnemonicName(mnemonic),
			mnemonicArity(mnemonic),
			len(operands),
		),
	}
}

func checkDirectiveArgs(
	head Token, directive DirectiveType, operands []Operand,
) error {
	for _, operand := range operands {
		if operand.Kind != OPERAND_LITERAL && operand.Kind != OPERAND_REF {
			return &ParseError{
				operand.Position,
				fmt.Sprintf(
					"Invalid %s argument of kind %s",
					directiveName(directive),
					operandKindName(operand.Kind),
				),
			}
		}
	}

	switch directive {
	case DIRECTIVE_ORG:
		if len(operands) != 1 {
			return &ParseError{
				head.Position,
				fmt.Sprintf(
					"Invalid number of arguments for org\n\twant:1\n\thave:%d",
					len(operands),
				),
			}
		}

	case DIRECTIVE_DB, DIRECTIVE_DW:
		if len(operands) == 0 {
			return &ParseError{
				head.Position,
				fmt.Sprintf(
					"%s requires at least one value",
					directiveName(directive),
				),
			}
		}
	}

	return nil
}
