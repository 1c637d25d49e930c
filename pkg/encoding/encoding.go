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

package encoding

import (
	"errors"
	"strconv"
	"strings"
)

// Decodes a hexadecimal string in the formats: $2A, $FFF
func DecodeHex(s string) (uint32, error) {
	if !strings.HasPrefix(s, "$") || len(s) == 1 {
		return 0, errors.New("Invalid hex string")
	}

	result, err := strconv.ParseUint(s[1:], 16, 32)

	if err != nil {
		return 0, err
	}

	return uint32(result), nil
}

// Decodes a binary string in the formats: %10110000, %1011....
// A '.' counts as 0 so sprite rows read visually.
func DecodeBin(s string) (uint32, error) {
	if !strings.HasPrefix(s, "%") || len(s) == 1 {
		return 0, errors.New("Invalid binary string")
	}

	bits := strings.ReplaceAll(s[1:], ".", "0")

	result, err := strconv.ParseUint(bits, 2, 32)

	if err != nil {
		return 0, err
	}

	return uint32(result), nil
}

// Decodes a bare base-10 string in the formats: 123, 42
func DecodeInt(s string) (uint32, error) {
	result, err := strconv.ParseUint(s, 10, 32)

	if err != nil {
		return 0, err
	}

	return uint32(result), nil
}

// PackNNN packs an opcode nibble and a 12-bit address into one
// instruction word: [op|n n n]
func PackNNN(op uint16, nnn uint16) [2]byte {
	word := (op&0xF)<<12 | (nnn & 0xFFF)
	return [2]byte{byte(word >> 8), byte(word)}
}

// PackXKK packs an opcode nibble, a register index, and an 8-bit
// immediate into one instruction word: [op|x k k]
func PackXKK(op uint16, x uint16, kk uint16) [2]byte {
	word := (op&0xF)<<12 | (x&0xF)<<8 | (kk & 0xFF)
	return [2]byte{byte(word >> 8), byte(word)}
}

// PackXYN packs an opcode nibble, two register indices, and a low
// nibble into one instruction word: [op|x y n]
func PackXYN(op uint16, x uint16, y uint16, n uint16) [2]byte {
	word := (op&0xF)<<12 | (x&0xF)<<8 | (y&0xF)<<4 | (n & 0xF)
	return [2]byte{byte(word >> 8), byte(word)}
}

// PackWord splits a 16-bit value into big-endian bytes.
func PackWord(word uint16) [2]byte {
	return [2]byte{byte(word >> 8), byte(word)}
}
