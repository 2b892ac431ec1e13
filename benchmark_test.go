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
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/siglens/ssobench/pkg/bench"
	"github.com/siglens/ssobench/pkg/dataset"
	"github.com/siglens/ssobench/pkg/smallstr"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fastrand"
)

var json = jsoniter.ConfigFastest

func Benchmark_EndToEnd(b *testing.B) {
	ds, err := dataset.Build(200_000, 64, dataset.InitSequentialGenerator())
	assert.NoError(b, err)
	views := ds.Views()

	count := 3
	allTimes := make([]time.Duration, count)
	timeSum := float64(0)
	records := make([]bench.PerfRecord, 0, count*2)

	b.ResetTimer()
	for i := 0; i < count; i++ {
		sTime := time.Now()
		heapSub := bench.NewHeapSubject(fmt.Sprintf("heap%d", i+1))
		heapRecord := bench.Measure(views, heapSub.Label, heapSub.FromView, heapSub.Less)
		ssoSub := bench.NewSmallSubject(fmt.Sprintf("sso%d", i+1))
		ssoRecord := bench.Measure(views, ssoSub.Label, ssoSub.FromView, ssoSub.Less)
		log.Infof("rep %v: %v push_back=%vms sort=%vms, %v push_back=%vms sort=%vms",
			i, heapRecord.Label, heapRecord.PushBackMs, heapRecord.SortMs,
			ssoRecord.Label, ssoRecord.PushBackMs, ssoRecord.SortMs)
		records = append(records, heapRecord, ssoRecord)
		elapTime := time.Since(sTime)
		allTimes[i] = elapTime
		if i != 0 {
			timeSum += elapTime.Seconds()
		}
	}
	log.Infof("Finished benchmark: allTimes: %v", allTimes)
	log.Infof("Average time: %v", timeSum/float64(count-1))

	body, err := json.Marshal(records)
	assert.NoError(b, err)
	log.Infof("records: %s", body)

	/*
	   go test -run=Bench -bench=Benchmark_EndToEnd  -cpuprofile cpuprofile.out -o ssobench_cpu
	   go tool pprof ./ssobench_cpu cpuprofile.out

	   (for mem profile)
	   go test -run=Bench -bench=Benchmark_EndToEnd -benchmem -memprofile memprofile.out -o ssobench_mem
	   go tool pprof ./ssobench_mem memprofile.out

	*/

}

func Benchmark_MeasureVerified(b *testing.B) {
	ds, err := dataset.Build(100_000, 64, dataset.InitSequentialGenerator())
	assert.NoError(b, err)
	views := ds.Views()

	count := 5
	allTimes := make([]time.Duration, count)
	timeSum := float64(0)

	b.ResetTimer()
	for i := 0; i < count; i++ {
		sTime := time.Now()
		heapRecord, heapDigest, err := bench.MeasureVerified(views, bench.NewHeapSubject("heap"))
		assert.NoError(b, err)
		ssoRecord, ssoDigest, err := bench.MeasureVerified(views, bench.NewSmallSubject("sso"))
		assert.NoError(b, err)
		assert.Equal(b, heapDigest, ssoDigest)
		log.Infof("rep %v: heap sort=%vms, sso sort=%vms, digest=%x",
			i, heapRecord.SortMs, ssoRecord.SortMs, heapDigest)
		elapTime := time.Since(sTime)
		allTimes[i] = elapTime
		if i != 0 {
			timeSum += elapTime.Seconds()
		}
	}
	log.Infof("Finished benchmark: allTimes: %v", allTimes)
	log.Infof("Average time: %v", timeSum/float64(count-1))

	/*
	   go test -run=Bench -bench=Benchmark_MeasureVerified  -cpuprofile cpuprofile.out -o ssobench_cpu
	   go tool pprof ./ssobench_cpu cpuprofile.out

	   (for mem profile)
	   go test -run=Bench -bench=Benchmark_MeasureVerified -benchmem -memprofile memprofile.out -o ssobench_mem
	   go tool pprof ./ssobench_mem memprofile.out

	*/

}

func Benchmark_SmallFromBytes(b *testing.B) {
	entryCount := 1_000_000
	fakeData := make([][]byte, entryCount)
	for i := 0; i < entryCount; i++ {
		fakeData[i] = []byte(fmt.Sprintf("batch-%d", fastrand.Uint32n(1_000_000)))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < entryCount; i++ {
		small := smallstr.FromBytes(fakeData[i])
		if small.Len() != len(fakeData[i]) {
			log.Errorf("ERROR: length mismatch at entry %v", i)
			break
		}
	}

	/*
	   go test -run=Bench -bench=Benchmark_SmallFromBytes -benchmem -memprofile memprofile.out -o ssobench_mem
	   go tool pprof ./ssobench_mem memprofile.out
	*/
}

func Benchmark_HeapFromBytes(b *testing.B) {
	entryCount := 1_000_000
	fakeData := make([][]byte, entryCount)
	for i := 0; i < entryCount; i++ {
		fakeData[i] = []byte(fmt.Sprintf("batch-%d", fastrand.Uint32n(1_000_000)))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < entryCount; i++ {
		native := smallstr.HeapFromBytes(fakeData[i])
		if len(native) != len(fakeData[i]) {
			log.Errorf("ERROR: length mismatch at entry %v", i)
			break
		}
	}

	/*
	   go test -run=Bench -bench=Benchmark_HeapFromBytes -benchmem -memprofile memprofile.out -o ssobench_mem
	   go tool pprof ./ssobench_mem memprofile.out
	*/
}
