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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_UnsafeByteSliceToString(t *testing.T) {
	b := []byte("#42")
	s := UnsafeByteSliceToString(b)
	assert.Equal(t, "#42", s)
	assert.Equal(t, len(b), len(s))

	assert.Equal(t, "", UnsafeByteSliceToString(nil))
}

func Test_UnsafeStringToByteSlice(t *testing.T) {
	s := "#1234"
	b := UnsafeStringToByteSlice(s)
	assert.Equal(t, []byte("#1234"), b)
	assert.Equal(t, len(s), len(b))

	assert.Nil(t, UnsafeStringToByteSlice(""))
}

func Test_UnsafeRoundTrip(t *testing.T) {
	original := "a string long enough to not be interned"
	b := UnsafeStringToByteSlice(original)
	back := UnsafeByteSliceToString(b)
	assert.Equal(t, original, back)
}

func Test_GetRandomString(t *testing.T) {
	for _, length := range []int{0, 1, 23, 24, 100} {
		s := GetRandomString(length, Alpha)
		assert.Equal(t, length, len(s))
		for i := 0; i < len(s); i++ {
			c := s[i]
			isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
			assert.True(t, isAlpha, "unexpected char %q at index %d", c, i)
		}
	}

	num := GetRandomString(50, Numeric)
	for i := 0; i < len(num); i++ {
		assert.True(t, num[i] >= '0' && num[i] <= '9')
	}

	assert.Equal(t, 10, len(GetRandomString(10, AlphaNumeric)))
}
