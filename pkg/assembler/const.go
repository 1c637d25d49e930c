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

import "strings"

const (
	TOKEN_NONE TokenType = iota
	TOKEN_IDENT
	TOKEN_REF
	TOKEN_MNEMONIC
	TOKEN_DIRECTIVE
	TOKEN_REGISTER
	TOKEN_SPECIAL
	TOKEN_LITERAL
	TOKEN_COMMA
	TOKEN_NEWLINE
	TOKEN_EOF
)

const (
	STATEMENT_LABEL StatementKind = iota
	STATEMENT_INSTRUCTION
	STATEMENT_DIRECTIVE
)

const (
	OPERAND_V OperandKind = iota
	OPERAND_I
	OPERAND_DT
	OPERAND_ST
	OPERAND_K
	OPERAND_F
	OPERAND_B
	OPERAND_INDIRECT
	OPERAND_LITERAL
	OPERAND_REF
)

const (
	MNEMONIC_INVALID MnemonicType = iota
	MNEMONIC_CLS
	MNEMONIC_RET
	MNEMONIC_SYS
	MNEMONIC_JP
	MNEMONIC_JR
	MNEMONIC_CALL
	MNEMONIC_SE
	MNEMONIC_SNE
	MNEMONIC_LD
	MNEMONIC_ADD
	MNEMONIC_OR
	MNEMONIC_AND
	MNEMONIC_XOR
	MNEMONIC_SUB
	MNEMONIC_SHR
	MNEMONIC_SUBN
	MNEMONIC_SHL
	MNEMONIC_RND
	MNEMONIC_DRW
	MNEMONIC_SKP
	MNEMONIC_SKNP
)

const (
	DIRECTIVE_INVALID DirectiveType = iota
	DIRECTIVE_ORG
	DIRECTIVE_DB
	DIRECTIVE_DW
)

// ProgramOrigin is the conventional CHIP-8 load address.
const ProgramOrigin uint16 = 0x200

// AddressLimit is the highest addressable byte of CHIP-8 memory.
const AddressLimit uint16 = 0xFFF

func parseMnemonic(ident string) MnemonicType {
	switch strings.ToUpper(ident) {
	case "CLS":
		return MNEMONIC_CLS
	case "RET":
		return MNEMONIC_RET
	case "SYS":
		return MNEMONIC_SYS
	case "JP":
		return MNEMONIC_JP
	case "JR":
		return MNEMONIC_JR
	case "CALL":
		return MNEMONIC_CALL
	case "SE":
		return MNEMONIC_SE
	case "SNE":
		return MNEMONIC_SNE
	case "LD":
		return MNEMONIC_LD
	case "ADD":
		return MNEMONIC_ADD
	case "OR":
		return MNEMONIC_OR
	case "AND":
		return MNEMONIC_AND
	case "XOR":
		return MNEMONIC_XOR
	case "SUB":
		return MNEMONIC_SUB
	case "SHR":
		return MNEMONIC_SHR
	case "SUBN":
		return MNEMONIC_SUBN
	case "SHL":
		return MNEMONIC_SHL
	case "RND":
		return MNEMONIC_RND
	case "DRW":
		return MNEMONIC_DRW
	case "SKP":
		return MNEMONIC_SKP
	case "SKNP":
		return MNEMONIC_SKNP
	}

	return MNEMONIC_INVALID
}

func parseDirective(ident string) DirectiveType {
	if strings.EqualFold(ident, "ORG") {
		return DIRECTIVE_ORG
	} else if strings.EqualFold(ident, "DB") {
		return DIRECTIVE_DB
	} else if strings.EqualFold(ident, "DW") {
		return DIRECTIVE_DW
	}

	return DIRECTIVE_INVALID
}

// parseRegister recognizes V0..VF register identifiers.
func parseRegister(ident string) (uint16, bool) {
	if len(ident) != 2 {
		return 0, false
	}

	if ident[0] != 'V' && ident[0] != 'v' {
		return 0, false
	}

	switch c := ident[1]; {
	case c >= '0' && c <= '9':
		return uint16(c - '0'), true
	case c >= 'A' && c <= 'F':
		return uint16(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10, true
	}

	return 0, false
}

// parseSpecial recognizes the non-V register operands.
func parseSpecial(ident string) (OperandKind, bool) {
	switch strings.ToUpper(ident) {
	case "I":
		return OPERAND_I, true
	case "DT":
		return OPERAND_DT, true
	case "ST":
		return OPERAND_ST, true
	case "K":
		return OPERAND_K, true
	case "F":
		return OPERAND_F, true
	case "B":
		return OPERAND_B, true
	}

	return 0, false
}

func mnemonicName(mnemonic MnemonicType) string {
	switch mnemonic {
	case MNEMONIC_CLS:
		return "CLS"
	case MNEMONIC_RET:
		return "RET"
	case MNEMONIC_SYS:
		return "SYS"
	case MNEMONIC_JP:
		return "JP"
	case MNEMONIC_JR:
		return "JR"
	case MNEMONIC_CALL:
		return "CALL"
	case MNEMONIC_SE:
		return "SE"
	case MNEMONIC_SNE:
		return "SNE"
	case MNEMONIC_LD:
		return "LD"
	case MNEMONIC_ADD:
		return "ADD"
	case MNEMONIC_OR:
		return "OR"
	case MNEMONIC_AND:
		return "AND"
	case MNEMONIC_XOR:
		return "XOR"
	case MNEMONIC_SUB:
		return "SUB"
	case MNEMONIC_SHR:
		return "SHR"
	case MNEMONIC_SUBN:
		return "SUBN"
	case MNEMONIC_SHL:
		return "SHL"
	case MNEMONIC_RND:
		return "RND"
	case MNEMONIC_DRW:
		return "DRW"
	case MNEMONIC_SKP:
		return "SKP"
	case MNEMONIC_SKNP:
		return "SKNP"
	}

	return "<invalid>"
}

func directiveName(directive DirectiveType) string {
	switch directive {
	case DIRECTIVE_ORG:
		return "org"
	case DIRECTIVE_DB:
		return "db"
	case DIRECTIVE_DW:
		return "dw"
	}

	return "<invalid>"
}

func operandKindName(kind OperandKind) string {
	switch kind {
	case OPERAND_V:
		return "Vx"
	case OPERAND_I:
		return "I"
	case OPERAND_DT:
		return "DT"
	case OPERAND_ST:
		return "ST"
	case OPERAND_K:
		return "K"
	case OPERAND_F:
		return "F"
	case OPERAND_B:
		return "B"
	case OPERAND_INDIRECT:
		return "[I]"
	case OPERAND_LITERAL:
		return "Literal"
	case OPERAND_REF:
		return "Reference"
	}

	return "<invalid>"
}

// mnemonicArity lists the operand counts each mnemonic accepts. The
// parser rejects statements outside these counts; kind matching is the
// encoder's job.
func mnemonicArity(mnemonic MnemonicType) []int {
	switch mnemonic {
	case MNEMONIC_CLS, MNEMONIC_RET:
		return []int{0}
	case MNEMONIC_SYS, MNEMONIC_JR, MNEMONIC_CALL, MNEMONIC_SKP, MNEMONIC_SKNP:
		return []int{1}
	case MNEMONIC_JP:
		return []int{1, 2}
	case MNEMONIC_SHR, MNEMONIC_SHL:
		return []int{1, 2}
	case MNEMONIC_SE, MNEMONIC_SNE, MNEMONIC_LD, MNEMONIC_ADD,
		MNEMONIC_OR, MNEMONIC_AND, MNEMONIC_XOR, MNEMONIC_SUB,
		MNEMONIC_SUBN, MNEMONIC_RND:
		return []int{2}
	case MNEMONIC_DRW:
		return []int{3}
	}

	return nil
}
