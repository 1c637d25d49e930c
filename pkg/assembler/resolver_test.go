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
	"testing"

	"github.com/lassandro/goc8/pkg/assembler"
)

func resolveSource(
	t *testing.T, input string,
) (assembler.Symbols, error) {
	t.Helper()

	return assembler.ResolveAddresses(
		mustParse(t, input), assembler.ProgramOrigin,
	)
}

func TestResolveLabelAddresses(t *testing.T) {
	symbols, err := resolveSource(t, `
sprite	db $F0 $90 $90 $90 $F0
after	cls
words	dw 1 2
end		ret
	`)

	if err != nil {
		t.Fatal(err)
	}

	want := map[string]uint16{
		"sprite": 0x200,
		"after":  0x205,
		"words":  0x207,
		"end":    0x20B,
	}

	for name, addr := range want {
		if have := symbols[name].Addr; have != addr {
			t.Fatalf("%s\nwant:%#x\nhave:%#x", name, addr, have)
		}
	}
}

func TestResolveOrg(t *testing.T) {
	symbols, err := resolveSource(t, `
start	cls
		org $20A
end		ret
	`)

	if err != nil {
		t.Fatal(err)
	}

	if symbols["end"].Addr != 0x20A {
		t.Fatalf("end\nwant:0x20a\nhave:%#x", symbols["end"].Addr)
	}
}

// an org argument may name a label defined above it
func TestResolveOrgLabelRef(t *testing.T) {
	if _, err := resolveSource(t, "start\norg #start\ncls"); err != nil {
		t.Fatal(err)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := map[string]struct {
		Input string
		Error error
	}{
		"Duplicate Label": {
			Input: "foo cls\nfoo ret",
			Error: &assembler.DuplicateLabelError{},
		},
		"Backward Org": {
			Input: "base cls\norg #base",
			Error: &assembler.InvalidOriginError{},
		},
		"Forward Org Ref": {
			Input: "org #later\nlater cls",
			Error: &assembler.UndefinedLabelError{},
		},
		"Out of Range Org": {
			Input: "org $1200",
			Error: &assembler.InvalidOriginError{},
		},
		"Counter Overflow": {
			Input: "org $FFF\ndw 1",
			Error: &assembler.OversizedBinaryError{},
		},
	}

	for name, test := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := resolveSource(t, test.Input)

			if err == nil {
				t.Fatalf("want:%T\nhave:<nil>", test.Error)
			}

			if reflect.TypeOf(err) != reflect.TypeOf(test.Error) {
				t.Fatalf("want:%T\nhave:%T", test.Error, err)
			}
		})
	}
}
