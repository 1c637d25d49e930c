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

import "github.com/lassandro/goc8/pkg/encoding"

// match reports whether the operand kinds equal the wanted tuple.
// Resolved references count as literals.
func match(operands []Operand, kinds ...OperandKind) bool {
	if len(operands) != len(kinds) {
		return false
	}

	for i, kind := range kinds {
		if operands[i].Kind != kind {
			return false
		}
	}

	return true
}

func checkRange(operand Operand, field string, limit uint32) error {
	if operand.Value > limit {
		return &OperandRangeError{
			operand.Position, field, limit, operand.Value,
		}
	}

	return nil
}

// resolveOperands substitutes symbol addresses for label references,
// leaving every other operand untouched.
func resolveOperands(statement *Statement, symbols Symbols) ([]Operand, error) {
	operands := make([]Operand, len(statement.Operands))

	for i, operand := range statement.Operands {
		if operand.Kind == OPERAND_REF {
			symbol, exists := symbols[operand.Symbol]

			if !exists {
				return nil, &UndefinedLabelError{
					operand.Position, operand.Symbol,
				}
			}

			operand.Kind = OPERAND_LITERAL
			operand.Value = uint32(symbol.Addr)
		}

		operands[i] = operand
	}

	return operands, nil
}

// EncodeStatements is pass 2: re-walk the statements with a fresh
// location counter and produce the encoded units. Addresses advance
// exactly as in pass 1, so label addresses line up with the bytes
// encoded here. Fails fast on the first error.
func EncodeStatements(
	statements []Statement, symbols Symbols, origin uint16,
) ([]EncodedUnit, error) {
	units := make([]EncodedUnit, 0, len(statements))

	counter := NewCounter(origin)

	for i := range statements {
		statement := &statements[i]

		switch statement.Kind {
		case STATEMENT_INSTRUCTION:
			word, err := encodeInstruction(statement, symbols)

			if err != nil {
				return nil, err
			}

			units = append(units, EncodedUnit{
				Addr:     counter.Addr,
				Bytes:    word[:],
				Position: statement.Position,
			})

		case STATEMENT_DIRECTIVE:
			switch statement.Directive {
			case DIRECTIVE_ORG:
				target, err := orgTarget(statement, symbols)

				if err != nil {
					return nil, err
				}

				counter.Addr = uint16(target)
				continue

			case DIRECTIVE_DB:
				bytes, err := encodeBytes(statement, symbols)

				if err != nil {
					return nil, err
				}

				units = append(units, EncodedUnit{
					Addr:     counter.Addr,
					Bytes:    bytes,
					Position: statement.Position,
				})

			case DIRECTIVE_DW:
				bytes, err := encodeWords(statement, symbols)

				if err != nil {
					return nil, err
				}

				units = append(units, EncodedUnit{
					Addr:     counter.Addr,
					Bytes:    bytes,
					Position: statement.Position,
				})
			}
		}

		counter.Addr += statementSize(statement)
	}

	return units, nil
}

// encodeInstruction selects the encoding rule matching the mnemonic
// and operand-kind tuple, packing operand values into the fixed 16-bit
// instruction word. Purely functional: the same statement, table, and
// address always yield the same bytes.
func encodeInstruction(
	statement *Statement, symbols Symbols,
) ([2]byte, error) {
	ops, err := resolveOperands(statement, symbols)

	if err != nil {
		return [2]byte{}, err
	}

	switch statement.Mnemonic {
	case MNEMONIC_CLS:
		return encoding.PackWord(0x00E0), nil

	case MNEMONIC_RET:
		return encoding.PackWord(0x00EE), nil

	case MNEMONIC_SYS:
		if match(ops, OPERAND_LITERAL) {
			return packAddr(0x0, ops[0])
		}

	case MNEMONIC_JP:
		if match(ops, OPERAND_LITERAL) {
			return packAddr(0x1, ops[0])
		}

		// JP V0, addr is the indexed jump; no other register is legal
		if match(ops, OPERAND_V, OPERAND_LITERAL) && ops[0].Value == 0 {
			return packAddr(0xB, ops[1])
		}

	case MNEMONIC_JR:
		if match(ops, OPERAND_LITERAL) {
			return packAddr(0xB, ops[0])
		}

	case MNEMONIC_CALL:
		if match(ops, OPERAND_LITERAL) {
			return packAddr(0x2, ops[0])
		}

	case MNEMONIC_SE:
		if match(ops, OPERAND_V, OPERAND_LITERAL) {
			return packByte(0x3, ops[0], ops[1])
		}

		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x5, ops[0], ops[1], 0x0), nil
		}

	case MNEMONIC_SNE:
		if match(ops, OPERAND_V, OPERAND_LITERAL) {
			return packByte(0x4, ops[0], ops[1])
		}

		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x9, ops[0], ops[1], 0x0), nil
		}

	case MNEMONIC_LD:
		return encodeLoad(statement, ops)

	case MNEMONIC_ADD:
		if match(ops, OPERAND_V, OPERAND_LITERAL) {
			return packByte(0x7, ops[0], ops[1])
		}

		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x4), nil
		}

		if match(ops, OPERAND_I, OPERAND_V) {
			return packMisc(ops[1], 0x1E), nil
		}

	case MNEMONIC_OR:
		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x1), nil
		}

	case MNEMONIC_AND:
		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x2), nil
		}

	case MNEMONIC_XOR:
		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x3), nil
		}

	case MNEMONIC_SUB:
		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x5), nil
		}

	case MNEMONIC_SHR:
		if match(ops, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[0], 0x6), nil
		}

		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x6), nil
		}

	case MNEMONIC_SUBN:
		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0x7), nil
		}

	case MNEMONIC_SHL:
		if match(ops, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[0], 0xE), nil
		}

		if match(ops, OPERAND_V, OPERAND_V) {
			return packRegs(0x8, ops[0], ops[1], 0xE), nil
		}

	case MNEMONIC_RND:
		if match(ops, OPERAND_V, OPERAND_LITERAL) {
			return packByte(0xC, ops[0], ops[1])
		}

	case MNEMONIC_DRW:
		if match(ops, OPERAND_V, OPERAND_V, OPERAND_LITERAL) {
			if err := checkRange(ops[2], "nibble", 0xF); err != nil {
				return [2]byte{}, err
			}

			return encoding.PackXYN(
				0xD,
				uint16(ops[0].Value),
				uint16(ops[1].Value),
				uint16(ops[2].Value),
			), nil
		}

	case MNEMONIC_SKP:
		if match(ops, OPERAND_V) {
			return packMisc(ops[0], 0x9E), nil
		}

	case MNEMONIC_SKNP:
		if match(ops, OPERAND_V) {
			return packMisc(ops[0], 0xA1), nil
		}
	}

	return [2]byte{}, unsupported(statement)
}

// encodeLoad handles the load mnemonic's many operand-shape variants.
func encodeLoad(statement *Statement, ops []Operand) ([2]byte, error) {
	switch {
	case match(ops, OPERAND_V, OPERAND_LITERAL):
		return packByte(0x6, ops[0], ops[1])

	case match(ops, OPERAND_V, OPERAND_V):
		return packRegs(0x8, ops[0], ops[1], 0x0), nil

	case match(ops, OPERAND_I, OPERAND_LITERAL):
		return packAddr(0xA, ops[1])

	case match(ops, OPERAND_V, OPERAND_DT):
		return packMisc(ops[0], 0x07), nil

	case match(ops, OPERAND_V, OPERAND_K):
		return packMisc(ops[0], 0x0A), nil

	case match(ops, OPERAND_DT, OPERAND_V):
		return packMisc(ops[1], 0x15), nil

	case match(ops, OPERAND_ST, OPERAND_V):
		return packMisc(ops[1], 0x18), nil

	case match(ops, OPERAND_F, OPERAND_V):
		return packMisc(ops[1], 0x29), nil

	case match(ops, OPERAND_B, OPERAND_V):
		return packMisc(ops[1], 0x33), nil

	case match(ops, OPERAND_INDIRECT, OPERAND_V):
		return packMisc(ops[1], 0x55), nil

	case match(ops, OPERAND_V, OPERAND_INDIRECT):
		return packMisc(ops[0], 0x65), nil
	}

	return [2]byte{}, unsupported(statement)
}

func packAddr(op uint16, addr Operand) ([2]byte, error) {
	if err := checkRange(addr, "address", uint32(AddressLimit)); err != nil {
		return [2]byte{}, err
	}

	return encoding.PackNNN(op, uint16(addr.Value)), nil
}

func packByte(op uint16, x Operand, kk Operand) ([2]byte, error) {
	if err := checkRange(kk, "byte", 0xFF); err != nil {
		return [2]byte{}, err
	}

	return encoding.PackXKK(op, uint16(x.Value), uint16(kk.Value)), nil
}

func packRegs(op uint16, x Operand, y Operand, n uint16) [2]byte {
	return encoding.PackXYN(op, uint16(x.Value), uint16(y.Value), n)
}

// packMisc builds the Fxnn-style encodings where the low byte selects
// the operation.
func packMisc(x Operand, selector uint16) [2]byte {
	return encoding.PackXKK(0xF, uint16(x.Value), selector)
}

func unsupported(statement *Statement) error {
	kinds := make([]OperandKind, 0, len(statement.Operands))

	for _, operand := range statement.Operands {
		kinds = append(kinds, operand.Kind)
	}

	return &UnsupportedOperandsError{
		statement.Position,
		statement.Mnemonic,
		kinds,
	}
}

// encodeBytes emits a db list. Symbolic references contribute the low
// byte of their resolved address; dw exists for full-width addresses.
func encodeBytes(statement *Statement, symbols Symbols) ([]byte, error) {
	bytes := make([]byte, 0, len(statement.Operands))

	for _, operand := range statement.Operands {
		if operand.Kind == OPERAND_REF {
			symbol, exists := symbols[operand.Symbol]

			if !exists {
				return nil, &UndefinedLabelError{
					operand.Position, operand.Symbol,
				}
			}

			bytes = append(bytes, byte(symbol.Addr))
			continue
		}

		if err := checkRange(operand, "byte", 0xFF); err != nil {
			return nil, err
		}

		bytes = append(bytes, byte(operand.Value))
	}

	return bytes, nil
}

// encodeWords emits a dw list as big-endian 16-bit values.
func encodeWords(statement *Statement, symbols Symbols) ([]byte, error) {
	bytes := make([]byte, 0, 2*len(statement.Operands))

	operands, err := resolveOperands(statement, symbols)

	if err != nil {
		return nil, err
	}

	for _, operand := range operands {
		if err := checkRange(operand, "word", 0xFFFF); err != nil {
			return nil, err
		}

		word := encoding.PackWord(uint16(operand.Value))
		bytes = append(bytes, word[0], word[1])
	}

	return bytes, nil
}
