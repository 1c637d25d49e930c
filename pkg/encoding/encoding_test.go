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

package encoding_test

import (
	"testing"

	"github.com/lassandro/goc8/pkg/encoding"
)

func TestDecodeHex(t *testing.T) {
	cases := map[string]uint32{
		"$0":   0x0,
		"$2A":  0x2A,
		"$2a":  0x2A,
		"$200": 0x200,
		"$FFF": 0xFFF,
	}

	for input, want := range cases {
		have, err := encoding.DecodeHex(input)

		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", input, err)
		}

		if have != want {
			t.Fatalf(
				"DecodeHex(%q)\nwant:%#x\nhave:%#x", input, want, have,
			)
		}
	}

	for _, input := range []string{"", "$", "2A", "$2G", "x2A"} {
		if _, err := encoding.DecodeHex(input); err == nil {
			t.Fatalf("DecodeHex(%q) expected error", input)
		}
	}
}

func TestDecodeBin(t *testing.T) {
	cases := map[string]uint32{
		"%0":        0,
		"%1111":     0xF,
		"%10010000": 0x90,
		"%1111....": 0xF0,
		"%....1111": 0x0F,
	}

	for input, want := range cases {
		have, err := encoding.DecodeBin(input)

		if err != nil {
			t.Fatalf("DecodeBin(%q): %v", input, err)
		}

		if have != want {
			t.Fatalf(
				"DecodeBin(%q)\nwant:%#x\nhave:%#x", input, want, have,
			)
		}
	}

	for _, input := range []string{"", "%", "1010", "%12", "%1.2"} {
		if _, err := encoding.DecodeBin(input); err == nil {
			t.Fatalf("DecodeBin(%q) expected error", input)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	cases := map[string]uint32{
		"0":   0,
		"42":  42,
		"255": 255,
		"256": 256,
	}

	for input, want := range cases {
		have, err := encoding.DecodeInt(input)

		if err != nil {
			t.Fatalf("DecodeInt(%q): %v", input, err)
		}

		if have != want {
			t.Fatalf("DecodeInt(%q)\nwant:%d\nhave:%d", input, want, have)
		}
	}

	for _, input := range []string{"", "-1", "12ab", "$2A"} {
		if _, err := encoding.DecodeInt(input); err == nil {
			t.Fatalf("DecodeInt(%q) expected error", input)
		}
	}
}

func TestPack(t *testing.T) {
	if have := encoding.PackNNN(0x1, 0x234); have != [2]byte{0x12, 0x34} {
		t.Fatalf("PackNNN\nwant:[12 34]\nhave:%x", have)
	}

	if have := encoding.PackXKK(0x6, 0x1, 0xFF); have != [2]byte{0x61, 0xFF} {
		t.Fatalf("PackXKK\nwant:[61 ff]\nhave:%x", have)
	}

	if have := encoding.PackXYN(0xD, 0x1, 0x2, 0x5); have != [2]byte{0xD1, 0x25} {
		t.Fatalf("PackXYN\nwant:[d1 25]\nhave:%x", have)
	}

	if have := encoding.PackWord(0x00E0); have != [2]byte{0x00, 0xE0} {
		t.Fatalf("PackWord\nwant:[00 e0]\nhave:%x", have)
	}

	// field masking keeps neighbors intact
	if have := encoding.PackXYN(0xD, 0x11, 0x22, 0x35); have != [2]byte{0xD1, 0x25} {
		t.Fatalf("PackXYN masking\nwant:[d1 25]\nhave:%x", have)
	}
}
