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
	"fmt"
	"strings"
)

type TokenType uint
type StatementKind uint
type OperandKind uint
type MnemonicType uint
type DirectiveType uint

type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

type Token struct {
	Type     TokenType
	Position Cursor
	Value    string

	// Numeric payload for TOKEN_LITERAL and TOKEN_REGISTER tokens,
	// stored without truncation
	Number uint32
}

type Operand struct {
	Kind     OperandKind
	Position Cursor

	// Register index or literal magnitude
	Value uint32

	// Label name for OPERAND_REF
	Symbol string
}

type Statement struct {
	Kind      StatementKind
	Position  Cursor
	Label     string
	Mnemonic  MnemonicType
	Directive DirectiveType
	Operands  []Operand
}

type Symbol struct {
	Addr     uint16
	Position Cursor
}

type Symbols map[string]Symbol

// Counter is the location counter threaded through both passes. It is
// reset between passes so pass 2 walks the same addresses pass 1
// assigned.
type Counter struct {
	Origin uint16
	Addr   uint16
}

func NewCounter(origin uint16) Counter {
	return Counter{Origin: origin, Addr: origin}
}

// EncodedUnit is one placed span of output bytes.
type EncodedUnit struct {
	Addr     uint16
	Bytes    []byte
	Position Cursor
}

// SymTable is the debug symbol table written alongside the binary when
// requested.
type SymTable struct {
	Source  string
	Symbols map[uint16]int64
	Labels  map[uint16]string
}

type TokenError interface {
	GetPosition() Cursor
}

type LexError struct {
	Position Cursor
	Received string
}

func (err *LexError) GetPosition() Cursor {
	return err.Position
}

func (err *LexError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unrecognized input '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type ParseError struct {
	Position Cursor
	Message  string
}

func (err *ParseError) GetPosition() Cursor {
	return err.Position
}

func (err *ParseError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: %s",
		err.Position.Line,
		err.Position.Column,
		err.Message,
	)
}

type DuplicateLabelError struct {
	Position Cursor
	Original Cursor
	Received string
}

func (err *DuplicateLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *DuplicateLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Duplicate label '%s' (first defined on line %d)",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Original.Line,
	)
}

type InvalidOriginError struct {
	Position Cursor
	Current  uint16
	Received uint32
}

func (err *InvalidOriginError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidOriginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid origin\n\twant:forward of $%03X within $000..$FFF\n\thave:$%X",
		err.Position.Line,
		err.Position.Column,
		err.Current,
		err.Received,
	)
}

type UnsupportedOperandsError struct {
	Position Cursor
	Mnemonic MnemonicType
	Received []OperandKind
}

func (err *UnsupportedOperandsError) GetPosition() Cursor {
	return err.Position
}

func (err *UnsupportedOperandsError) Error() string {
	kinds := make([]string, 0, len(err.Received))

	for _, kind := range err.Received {
		kinds = append(kinds, operandKindName(kind))
	}

	return fmt.Sprintf(
		"%02d:%02d: No %s encoding for operands (%s)",
		err.Position.Line,
		err.Position.Column,
		mnemonicName(err.Mnemonic),
		strings.Join(kinds, ", "),
	)
}

type OperandRangeError struct {
	Position Cursor
	Field    string
	Limit    uint32
	Received uint32
}

func (err *OperandRangeError) GetPosition() Cursor {
	return err.Position
}

func (err *OperandRangeError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Value exceeds %s field\n\twant:0..%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Field,
		err.Limit,
		err.Received,
	)
}

type UndefinedLabelError struct {
	Position Cursor
	Received string
}

func (err *UndefinedLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *UndefinedLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Undefined label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedBinaryError struct{}

func (err *OversizedBinaryError) Error() string {
	return "Binary exceeds addressable memory"
}

type OverlapError struct {
	Addr uint16
}

func (err *OverlapError) Error() string {
	return fmt.Sprintf("Emission overlap at address $%03X", err.Addr)
}
