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

package sysinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Collect(t *testing.T) {
	info := Collect()

	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, []int{32, 64}, info.PointerBits)
	assert.Greater(t, info.TotalMemory, uint64(0))
}

func Test_Summary(t *testing.T) {
	info := Info{
		OS:           "linux",
		Arch:         "amd64",
		PointerBits:  64,
		GoVersion:    "go1.21.0",
		CPUModel:     "Intel(R) Xeon(R) Platinum 8375C",
		LogicalCores: 8,
		TotalMemory:  16 * 1024 * 1024 * 1024,
	}

	summary := info.Summary()
	assert.Contains(t, summary, "linux/amd64 (64-bit), go1.21.0")
	assert.Contains(t, summary, "CPU: Intel(R) Xeon(R) Platinum 8375C (8 logical cores)")
	assert.Contains(t, summary, "Memory: 16 GiB")
}

func Test_SummaryPartialInfo(t *testing.T) {
	info := Info{
		OS:          "linux",
		Arch:        "arm64",
		PointerBits: 64,
		GoVersion:   "go1.21.0",
	}

	summary := info.Summary()
	assert.Contains(t, summary, "linux/arm64 (64-bit), go1.21.0")
	assert.False(t, strings.Contains(summary, "CPU:"))
	assert.False(t, strings.Contains(summary, "Memory:"))
}
