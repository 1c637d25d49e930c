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

// statementSize is the number of bytes a statement occupies. Every
// real instruction in this ISA encodes to two bytes regardless of
// operand values.
func statementSize(statement *Statement) uint16 {
	switch statement.Kind {
	case STATEMENT_INSTRUCTION:
		return 2
	case STATEMENT_DIRECTIVE:
		switch statement.Directive {
		case DIRECTIVE_DB:
			return uint16(len(statement.Operands))
		case DIRECTIVE_DW:
			return uint16(2 * len(statement.Operands))
		}
	}

	return 0
}

// orgTarget evaluates an org argument. Symbolic arguments resolve
// against labels already assigned, so only backward references are
// usable here; forward references to an org make its address
// undecidable in a single pass.
func orgTarget(statement *Statement, symbols Symbols) (uint32, error) {
	operand := statement.Operands[0]

	if operand.Kind == OPERAND_REF {
		symbol, exists := symbols[operand.Symbol]

		if !exists {
			return 0, &UndefinedLabelError{operand.Position, operand.Symbol}
		}

		return uint32(symbol.Addr), nil
	}

	return operand.Value, nil
}

// ResolveAddresses is pass 1: walk the statements with a fresh
// location counter, assign every label its address, and validate
// directive legality. It never chases instruction operand references;
// forward references are resolved in pass 2 against the table built
// here. Fails fast on the first error since later addresses are
// meaningless once the counter is corrupted.
func ResolveAddresses(statements []Statement, origin uint16) (Symbols, error) {
	symbols := make(Symbols)

	counter := NewCounter(origin)

	for i := range statements {
		statement := &statements[i]

		switch statement.Kind {
		case STATEMENT_LABEL:
			if symbol, exists := symbols[statement.Label]; exists {
				return nil, &DuplicateLabelError{
					statement.Position,
					symbol.Position,
					statement.Label,
				}
			}

			symbols[statement.Label] = Symbol{
				Addr:     counter.Addr,
				Position: statement.Position,
			}

		case STATEMENT_DIRECTIVE:
			if statement.Directive == DIRECTIVE_ORG {
				target, err := orgTarget(statement, symbols)

				if err != nil {
					return nil, err
				}

				if target < uint32(counter.Addr) ||
					target > uint32(AddressLimit) {
					return nil, &InvalidOriginError{
						statement.Position,
						counter.Addr,
						target,
					}
				}

				counter.Addr = uint16(target)
				continue
			}
		}

		size := uint32(statementSize(statement))

		if uint32(counter.Addr)+size > uint32(AddressLimit)+1 {
			return nil, &OversizedBinaryError{}
		}

		counter.Addr += uint16(size)
	}

	return symbols, nil
}
