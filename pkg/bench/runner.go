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

package bench

import (
	"fmt"

	"github.com/siglens/ssobench/pkg/dataset"
	"github.com/siglens/ssobench/pkg/smallstr"
	"github.com/siglens/ssobench/pkg/stopwatch"
	"github.com/siglens/ssobench/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Config drives one full benchmark run.
type Config struct {
	Count     uint32
	Seed      uint64
	Runs      int
	Generator dataset.Generator
	Verify    bool
}

// Runner executes the default schedule: build the dataset once, then for
// each repetition measure the no-SSO subject followed by the SSO subject
// against the same shared view sequence. Records are handed to emit as
// each invocation completes.
type Runner struct {
	cfg  Config
	emit func(record PerfRecord)
}

func NewRunner(cfg Config, emit func(record PerfRecord)) *Runner {
	if emit == nil {
		emit = func(record PerfRecord) {}
	}

	return &Runner{
		cfg:  cfg,
		emit: emit,
	}
}

// NewHeapSubject describes the always-heap subject: a native string copies
// every view into a fresh heap block.
func NewHeapSubject(label string) Subject[string] {
	return Subject[string]{
		Label:    label,
		FromView: func(v dataset.View) string { return smallstr.HeapFromBytes(v) },
		Less:     smallstr.HeapLess,
		Bytes:    func(s string) []byte { return utils.UnsafeStringToByteSlice(s) },
	}
}

// NewSmallSubject describes the SSO subject: short views land in the
// inline buffer and never touch the heap.
func NewSmallSubject(label string) Subject[smallstr.Small] {
	return Subject[smallstr.Small]{
		Label:    label,
		FromView: func(v dataset.View) smallstr.Small { return smallstr.FromBytes(v) },
		Less:     smallstr.Less,
		Bytes:    func(s smallstr.Small) []byte { return s.Bytes() },
	}
}

// Run performs the whole schedule and returns every record in emission
// order. Any error is fatal to the run; nothing is retried.
func (r *Runner) Run() ([]PerfRecord, error) {
	if r.cfg.Runs < 1 {
		return nil, utils.TeeErrorf("Run: runs must be at least 1; found %v", r.cfg.Runs)
	}

	if err := stopwatch.Verify(); err != nil {
		return nil, utils.WrapErrorf(err, "Run: clock verification failed: %v", err)
	}

	ds, err := dataset.Build(r.cfg.Count, r.cfg.Seed, r.cfg.Generator)
	if err != nil {
		return nil, utils.WrapErrorf(err, "Run: failed to build dataset: %v", err)
	}

	// Derived once; every invocation below shares this exact sequence.
	views := ds.Views()

	records := make([]PerfRecord, 0, r.cfg.Runs*2)
	for rep := 1; rep <= r.cfg.Runs; rep++ {
		heapSub := NewHeapSubject(fmt.Sprintf("heap%d", rep))
		smallSub := NewSmallSubject(fmt.Sprintf("sso%d", rep))

		if r.cfg.Verify {
			heapRecord, heapDigest, err := MeasureVerified(views, heapSub)
			if err != nil {
				return nil, err
			}
			records = append(records, heapRecord)
			r.emit(heapRecord)

			smallRecord, smallDigest, err := MeasureVerified(views, smallSub)
			if err != nil {
				return nil, err
			}
			records = append(records, smallRecord)
			r.emit(smallRecord)

			if heapDigest != smallDigest {
				return nil, utils.TeeErrorf(
					"Run: rep %v subjects disagree on sorted content: %v=%x %v=%x",
					rep, heapSub.Label, heapDigest, smallSub.Label, smallDigest)
			}
			log.Debugf("Run: rep %v digests match: %x", rep, heapDigest)
		} else {
			heapRecord := Measure(views, heapSub.Label, heapSub.FromView, heapSub.Less)
			records = append(records, heapRecord)
			r.emit(heapRecord)

			smallRecord := Measure(views, smallSub.Label, smallSub.FromView, smallSub.Less)
			records = append(records, smallRecord)
			r.emit(smallRecord)
		}
	}

	return records, nil
}
