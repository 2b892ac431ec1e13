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
	"math/rand"
	"time"
	"unsafe"
)

// returns string using unsafe. This is zero-copy and the returned string
// shares memory with the input slice; the caller must not modify the slice
func UnsafeByteSliceToString(haystack []byte) string {
	return *(*string)(unsafe.Pointer(&haystack))
}

// returns a byte slice aliasing the string's backing array. Zero-copy; the
// returned slice must be treated as read-only
func UnsafeStringToByteSlice(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

type StringType uint8

const (
	Alpha StringType = iota
	Numeric
	AlphaNumeric
)

const alphabets = "abcdefghijklmnopqrstuvwxyz" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const digits = "0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func GetRandomString(length int, stringType StringType) string {
	var charset string
	switch stringType {
	case Alpha:
		charset = alphabets
	case Numeric:
		charset = digits
	case AlphaNumeric:
		charset = alphabets + digits
	default:
		charset = alphabets + digits
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
