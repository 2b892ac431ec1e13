// Copyright (c) 2021-2024 SigScalr, Inc.
//
// This file is part of SigLens Observability Solution
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package smallstr provides the two string representations the benchmark
// compares: Small keeps short content in a fixed inline buffer, while the
// native string type always copies to a fresh heap block.
package smallstr

import (
	"bytes"

	"github.com/siglens/ssobench/pkg/utils"
)

// InlineCap is the longest content Small stores without heap allocation.
// With the length byte the inline region occupies 24 bytes.
const InlineCap = 23

// spillMark in the length byte means the content lives in spill, not inline.
const spillMark = 255

// Small is a byte string with the small-string optimization. Content of up
// to InlineCap bytes is stored inline and copying the struct copies the
// content; longer content spills to a heap string. The zero value is the
// empty string.
type Small struct {
	inline [InlineCap]byte
	n      uint8
	spill  string
}

// FromBytes builds a Small holding a copy of b. Short content does not
// touch the heap.
func FromBytes(b []byte) Small {
	var s Small
	if len(b) <= InlineCap {
		s.n = uint8(copy(s.inline[:], b))
		return s
	}

	s.n = spillMark
	s.spill = string(b)
	return s
}

// FromString builds a Small holding a copy of str.
func FromString(str string) Small {
	return FromBytes(utils.UnsafeStringToByteSlice(str))
}

func (s *Small) Len() int {
	if s.n == spillMark {
		return len(s.spill)
	}
	return int(s.n)
}

// Bytes returns the content without copying. The result aliases s and is
// only valid while s is alive and unmodified.
func (s *Small) Bytes() []byte {
	if s.n == spillMark {
		return utils.UnsafeStringToByteSlice(s.spill)
	}
	return s.inline[:s.n]
}

// String returns the content as a native string. Spilled content is shared,
// inline content is copied out.
func (s Small) String() string {
	if s.n == spillMark {
		return s.spill
	}
	return string(s.inline[:s.n])
}

// IsSpilled reports whether the content lives on the heap.
func (s *Small) IsSpilled() bool {
	return s.n == spillMark
}

// Compare orders two Smalls by their content bytes, like bytes.Compare.
func Compare(a Small, b Small) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Less is the ascending lexicographic order used by the sort phase.
func Less(a Small, b Small) bool {
	return Compare(a, b) < 0
}

// Equal reports content equality.
func Equal(a Small, b Small) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// HeapFromBytes is the no-SSO subject constructor: converting a byte view
// to a native string always allocates and copies.
func HeapFromBytes(b []byte) string {
	return string(b)
}

// HeapLess is the ascending lexicographic order for the native subject.
func HeapLess(a string, b string) bool {
	return a < b
}
