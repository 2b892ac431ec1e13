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

package stopwatch

import (
	"time"

	"github.com/siglens/ssobench/pkg/utils"
)

// Ticks is a raw monotonic clock reading. Ticks are nanoseconds since an
// arbitrary process-local origin; they are only meaningful as deltas.
type Ticks int64

const ticksPerSecond Ticks = 1e9

// origin anchors all readings. time.Sub on two readings derived from the
// same origin uses the runtime's monotonic clock, never the wall clock.
var origin = time.Now()

// Now returns the current monotonic reading.
func Now() Ticks {
	return Ticks(time.Since(origin))
}

// Frequency returns the number of ticks per second.
func Frequency() Ticks {
	return ticksPerSecond
}

// ElapsedMs converts a tick delta to fractional milliseconds.
func ElapsedMs(start Ticks, finish Ticks) float64 {
	return float64(finish-start) * 1000.0 / float64(Frequency())
}

// Verify checks that the monotonic clock is usable. It must be called once
// at startup; a failure is fatal and the process should exit non-zero.
func Verify() error {
	if Frequency() <= 0 {
		return utils.TeeErrorWithCode(utils.CLOCK_UNAVAILABLE_ERR,
			"Verify: invalid tick frequency %v", Frequency())
	}

	prev := Now()
	for i := 0; i < 16; i++ {
		curr := Now()
		if curr < prev {
			return utils.TeeErrorWithCode(utils.CLOCK_UNAVAILABLE_ERR,
				"Verify: monotonic clock went backwards: %v after %v", curr, prev)
		}
		prev = curr
	}

	return nil
}

// Stopwatch is a convenience wrapper for non hot-path timing. The benchmark
// phases read Now() directly to keep the timed windows free of indirection.
type Stopwatch struct {
	start Ticks
}

func Start() *Stopwatch {
	return &Stopwatch{start: Now()}
}

func (sw *Stopwatch) Restart() {
	sw.start = Now()
}

func (sw *Stopwatch) ElapsedMs() float64 {
	return ElapsedMs(sw.start, Now())
}
