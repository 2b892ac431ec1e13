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

// Package sysinfo describes the machine a benchmark ran on. Timings are
// meaningless without it.
package sysinfo

import (
	"fmt"
	"math/bits"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
	"github.com/shirou/gopsutil/v3/cpu"
	log "github.com/sirupsen/logrus"
)

type Info struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	PointerBits  int    `json:"pointer_bits"`
	GoVersion    string `json:"go_version"`
	CPUModel     string `json:"cpu_model"`
	LogicalCores int    `json:"logical_cores"`
	TotalMemory  uint64 `json:"total_memory_bytes"`
}

// Collect gathers what it can and downgrades the rest; a machine that
// refuses to report CPU details can still run the benchmark.
func Collect() Info {
	info := Info{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		PointerBits: bits.UintSize,
		GoVersion:   runtime.Version(),
		TotalMemory: memory.TotalMemory(),
	}

	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		log.Warnf("Collect: failed to retrieve CPU info: %v", err)
	} else {
		info.CPUModel = strings.TrimSpace(cpuInfo[0].ModelName)
	}

	cpuCount, err := cpu.Counts(true)
	if err != nil {
		log.Warnf("Collect: failed to retrieve CPU count: %v", err)
	} else {
		info.LogicalCores = cpuCount
	}

	return info
}

// Summary renders the banner lines printed before the first result block.
func (info Info) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s/%s (%d-bit), %s\n", info.OS, info.Arch, info.PointerBits, info.GoVersion)

	if info.CPUModel != "" || info.LogicalCores > 0 {
		fmt.Fprintf(&sb, "CPU: %s (%d logical cores)\n", info.CPUModel, info.LogicalCores)
	}

	if info.TotalMemory > 0 {
		fmt.Fprintf(&sb, "Memory: %s\n", humanize.IBytes(info.TotalMemory))
	}

	return sb.String()
}
