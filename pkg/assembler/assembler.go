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

import "io"

// AssembleChip8Source runs the full pipeline over one source text:
// tokenize, parse, resolve addresses (pass 1), encode (pass 2), emit.
// Lexing and parsing accumulate independent per-line errors to
// maximize diagnostic yield; the passes fail fast since addresses
// after a corrupted location counter are meaningless. On any error no
// bytes are returned.
//
// All state is owned by the single run, so concurrent calls from
// separate call sites are safe.
func AssembleChip8Source(
	input io.ReadSeeker, origin uint16, symtable *SymTable,
) ([]byte, []error) {
	if origin > AddressLimit {
		return nil, []error{
			&InvalidOriginError{Cursor{}, 0, uint32(origin)},
		}
	}

	tokens, errs := Tokenize(input)

	statements, parseErrs := Parse(tokens)
	errs = append(errs, parseErrs...)

	if len(errs) > 0 {
		return nil, errs
	}

	symbols, err := ResolveAddresses(statements, origin)

	if err != nil {
		return nil, []error{err}
	}

	units, err := EncodeStatements(statements, symbols, origin)

	if err != nil {
		return nil, []error{err}
	}

	image, err := EmitImage(units, origin)

	if err != nil {
		return nil, []error{err}
	}

	if symtable != nil {
		for _, unit := range units {
			symtable.Symbols[unit.Addr] = unit.Position.LineByte
		}

		for label, symbol := range symbols {
			symtable.Labels[symbol.Addr] = label
		}
	}

	return image, nil
}
