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

func Test_ToFixed(t *testing.T) {
	assert.Equal(t, 1.23, ToFixed(1.2345, 2))
	assert.Equal(t, 1.24, ToFixed(1.235, 2))
	assert.Equal(t, 0.0, ToFixed(0.0, 3))
	assert.Equal(t, -1.23, ToFixed(-1.2345, 2))
	assert.Equal(t, 12.0, ToFixed(12.345, 0))
	assert.Equal(t, 1234.568, ToFixed(1234.56789, 3))
}
