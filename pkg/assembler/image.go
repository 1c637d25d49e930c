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

// EmitImage linearizes the encoded units into one contiguous buffer
// whose first byte sits at the origin. Gaps introduced by org are
// zero-filled. Units must arrive in non-decreasing address order
// without collisions; pass 1 already forbids backward org, but the
// check stays as a guard against grammar extensions that could
// reintroduce overlap.
func EmitImage(units []EncodedUnit, origin uint16) ([]byte, error) {
	image := make([]byte, 0, 256)

	next := origin

	for _, unit := range units {
		if unit.Addr < next {
			return nil, &OverlapError{unit.Addr}
		}

		for next < unit.Addr {
			image = append(image, 0)
			next++
		}

		image = append(image, unit.Bytes...)
		next += uint16(len(unit.Bytes))
	}

	return image, nil
}
