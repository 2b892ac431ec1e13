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

// Package dataset builds the shuffled value sequence every benchmark run
// measures against, plus the non-owning byte views the measured phases
// construct their strings from.
package dataset

import (
	"encoding/binary"

	"github.com/axiomhq/hyperloglog"
	"github.com/cespare/xxhash"
	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
	"github.com/siglens/ssobench/pkg/stopwatch"
	"github.com/siglens/ssobench/pkg/utils"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fastrand"
)

// View is a non-owning window into one value's bytes. It stays valid only
// while the owning Dataset is alive; callers must not modify it.
type View []byte

// rough per-value footprint used for the pre-flight allocation check:
// string header + short content + one slice slot + one view header.
const approxBytesPerValue = 64

// Dataset owns a shuffled sequence of small values. It is read-only after
// Build and safe to share across any number of measurement invocations.
type Dataset struct {
	values []string
	count  uint32
	seed   uint64
}

// Build generates count values in ascending index order, then applies a
// deterministic seeded shuffle. The same (count, seed, generator) always
// yields the same sequence.
func Build(count uint32, seed uint64, gen Generator) (*Dataset, error) {
	if gen == nil {
		return nil, utils.TeeErrorWithCode(utils.NIL_VALUE_ERR, "Build: generator is nil")
	}

	if estimated := uint64(count) * approxBytesPerValue; estimated > memory.TotalMemory() {
		return nil, utils.TeeErrorWithCode(utils.ALLOCATION_ERR,
			"Build: count=%v needs ~%v of memory but only %v exists",
			count, humanize.Bytes(estimated), humanize.Bytes(memory.TotalMemory()))
	}

	if err := gen.Init(); err != nil {
		return nil, utils.WrapErrorf(err, "Build: failed to init %v generator: %v", gen.Name(), err)
	}

	sw := stopwatch.Start()
	values := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := gen.GetValue(i)
		if err != nil {
			return nil, utils.WrapErrorf(err, "Build: %v generator failed at idx %v: %v",
				gen.Name(), i, err)
		}
		values = append(values, v)
	}

	shuffle(values, seed)

	ds := &Dataset{
		values: values,
		count:  count,
		seed:   seed,
	}

	log.Infof("Build: generator=%v count=%v distinct~%v seed=%v elapsed=%.3fms",
		gen.Name(), humanize.Comma(int64(count)),
		humanize.Comma(int64(ds.estimateDistinct())), seed, sw.ElapsedMs())

	return ds, nil
}

// shuffle is a Fisher-Yates pass driven by a fastrand RNG. fastrand seeds
// with 32 bits, so the 64-bit seed is folded through xxhash first.
func shuffle(values []string, seed uint64) {
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], seed)
	folded := xxhash.Sum64(seedBytes[:])

	var rng fastrand.RNG
	rng.Seed(uint32(folded) ^ uint32(folded>>32))

	for i := len(values) - 1; i > 0; i-- {
		j := int(rng.Uint32n(uint32(i + 1)))
		values[i], values[j] = values[j], values[i]
	}
}

func (ds *Dataset) estimateDistinct() uint64 {
	sketch := hyperloglog.New()
	for _, v := range ds.values {
		sketch.Insert(utils.UnsafeStringToByteSlice(v))
	}

	return sketch.Estimate()
}

func (ds *Dataset) Len() int {
	return len(ds.values)
}

func (ds *Dataset) Seed() uint64 {
	return ds.seed
}

// Values returns a copy of the shuffled sequence. The strings share their
// backing bytes with the dataset.
func (ds *Dataset) Values() []string {
	return utils.ShallowCopySlice(ds.values)
}

// Views derives the reference sequence: one zero-copy view per value, in
// shuffled order. Every measurement invocation shares the same views.
func (ds *Dataset) Views() []View {
	views := make([]View, len(ds.values))
	for i, v := range ds.values {
		views[i] = utils.UnsafeStringToByteSlice(v)
	}

	return views
}
