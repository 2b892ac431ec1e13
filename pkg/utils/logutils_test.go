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

func Test_TeeErrorf(t *testing.T) {
	err := TeeErrorf("failed at idx %v of %v", 3, 10)
	assert.NotNil(t, err)
	assert.Equal(t, "failed at idx 3 of 10", err.Error())
	assert.False(t, IsFatalError(err))
}

func Test_TeeErrorWithCode(t *testing.T) {
	err := TeeErrorWithCode(CLOCK_UNAVAILABLE_ERR, "clock check failed after %v reads", 16)
	assert.NotNil(t, err)
	assert.True(t, IsClockUnavailableError(err))
	assert.True(t, IsFatalError(err))
	assert.Equal(t, "ErrorCode=CLOCK_UNAVAILABLE_ERR; err=clock check failed after 16 reads", err.Error())

	err = TeeErrorWithCode(ALLOCATION_ERR, "count %v is impossible", 4_000_000_000)
	assert.True(t, IsAllocationError(err))
	assert.False(t, IsClockUnavailableError(err))
}
