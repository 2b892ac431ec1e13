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

// Package bench times the two hot phases for any string-like type: bulk
// append-construction from byte views, then an in-place comparison sort.
// The measurement logic is written once; subjects differ only in their
// constructor and comparator.
package bench

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash"
	"github.com/siglens/ssobench/pkg/dataset"
	"github.com/siglens/ssobench/pkg/stopwatch"
	"github.com/siglens/ssobench/pkg/utils"
)

// PerfRecord holds the raw timings of one measurement invocation.
type PerfRecord struct {
	Label      string  `json:"label"`
	PushBackMs float64 `json:"push_back_ms"`
	SortMs     float64 `json:"sort_ms"`
}

// Subject describes one string type under benchmark. FromView and Less are
// the only capabilities the measured phases use; Bytes is only read by the
// verification pass, outside the timed windows.
type Subject[S any] struct {
	Label    string
	FromView func(v dataset.View) S
	Less     func(a S, b S) bool
	Bytes    func(s S) []byte
}

// Measure builds a fresh container of S from the views and sorts it,
// timing both phases. The container starts empty with no reserved
// capacity, so reallocation during growth is part of the measured
// construction cost. The container is never reused across invocations.
func Measure[S any](views []dataset.View, label string,
	fromView func(v dataset.View) S, less func(a S, b S) bool) PerfRecord {

	record, _ := run(views, label, fromView, less)
	return record
}

// MeasureVerified runs the same timed phases as Measure, then checks the
// result outside the timed windows: the container must hold one string per
// view and be sorted ascending. It returns a digest of the sorted content;
// subjects fed identical views must produce identical digests.
func MeasureVerified[S any](views []dataset.View, subject Subject[S]) (PerfRecord, uint64, error) {
	record, container := run(views, subject.Label, subject.FromView, subject.Less)

	if len(container) != len(views) {
		return record, 0, utils.TeeErrorf("MeasureVerified: label=%v built %v strings from %v views",
			subject.Label, len(container), len(views))
	}

	sorted := sort.SliceIsSorted(container, func(i, j int) bool {
		return subject.Less(container[i], container[j])
	})
	if !sorted {
		return record, 0, utils.TeeErrorf("MeasureVerified: label=%v container is not sorted",
			subject.Label)
	}

	return record, contentDigest(container, subject.Bytes), nil
}

func run[S any](views []dataset.View, label string,
	fromView func(v dataset.View) S, less func(a S, b S) bool) (PerfRecord, []S) {

	var container []S

	start := stopwatch.Now()
	for _, v := range views {
		container = append(container, fromView(v))
	}
	finish := stopwatch.Now()
	pushBackMs := stopwatch.ElapsedMs(start, finish)

	start = stopwatch.Now()
	sort.Slice(container, func(i, j int) bool {
		return less(container[i], container[j])
	})
	finish = stopwatch.Now()
	sortMs := stopwatch.ElapsedMs(start, finish)

	record := PerfRecord{
		Label:      label,
		PushBackMs: pushBackMs,
		SortMs:     sortMs,
	}

	return record, container
}

// contentDigest hashes the container contents in order. Values are length
// prefixed so adjacent strings cannot alias each other in the stream.
func contentDigest[S any](container []S, bytesOf func(s S) []byte) uint64 {
	h := xxhash.New()
	var lenBuf [4]byte
	for i := range container {
		b := bytesOf(container[i])
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
		_, _ = h.Write(lenBuf[:])
		_, _ = h.Write(b)
	}

	return h.Sum64()
}
