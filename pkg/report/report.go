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

// Package report renders benchmark results. Text mode streams one block
// per invocation to stdout in a fixed format; JSON mode collects the whole
// run into a single document. Either way a statistics summary of the run
// goes to the log at the end.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/montanaflynn/stats"
	"github.com/siglens/ssobench/pkg/bench"
	"github.com/siglens/ssobench/pkg/sysinfo"
	"github.com/siglens/ssobench/pkg/utils"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/bytebufferpool"
)

type OutputFormat uint8

const (
	FormatText OutputFormat = iota
	FormatJSON
)

func (f OutputFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps a --format flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, utils.TeeErrorf("ParseFormat: unknown format %q, expected text or json", s)
	}
}

// Params echoes the run configuration into logs and the JSON envelope.
type Params struct {
	Count     uint32 `json:"count"`
	Seed      uint64 `json:"seed"`
	Runs      int    `json:"runs"`
	Generator string `json:"generator"`
	Verify    bool   `json:"verify"`
}

// Reporter accumulates the run's records. It is not safe for concurrent
// use; the benchmark is strictly sequential.
type Reporter struct {
	w         io.Writer
	format    OutputFormat
	runID     string
	startedAt time.Time
	system    sysinfo.Info
	records   []bench.PerfRecord
}

func NewReporter(w io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		w:         w,
		format:    format,
		runID:     shortuuid.New(),
		startedAt: time.Now(),
	}
}

func (r *Reporter) RunID() string {
	return r.runID
}

// Banner prints the program title and host description before any result
// block. JSON mode keeps stdout clean and only retains the host info for
// the envelope.
func (r *Reporter) Banner(system sysinfo.Info) {
	r.system = system

	if r.format != FormatText {
		return
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	_, _ = bb.WriteString("\n*** SSO Performance Benchmark ***\n\n")
	_, _ = bb.WriteString(system.Summary())
	_, _ = bb.WriteString("\n")

	if _, err := r.w.Write(bb.B); err != nil {
		log.Errorf("Banner: failed to write banner, err=%v", err)
	}
}

// Record takes delivery of one invocation's timings. Text mode writes the
// block immediately so partial output survives a later failure.
func (r *Reporter) Record(record bench.PerfRecord) {
	r.records = append(r.records, record)

	if r.format != FormatText {
		return
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	renderBlock(bb, record)
	if _, err := r.w.Write(bb.B); err != nil {
		log.Errorf("Record: failed to write result block for %v, err=%v", record.Label, err)
	}
}

// renderBlock writes exactly one result block:
//
//	<label>:
//	  push_back : <x> ms
//	  sort      : <y> ms
//
// followed by a blank line.
func renderBlock(bb *bytebufferpool.ByteBuffer, record bench.PerfRecord) {
	_, _ = bb.WriteString(record.Label)
	_, _ = bb.WriteString(":\n")
	fmt.Fprintf(bb, "  push_back : %v ms\n", record.PushBackMs)
	fmt.Fprintf(bb, "  sort      : %v ms\n", record.SortMs)
	_, _ = bb.WriteString("\n")
}

// Finish closes out the run: JSON mode emits the envelope, both modes log
// the per-subject summary.
func (r *Reporter) Finish(params Params) error {
	if r.format == FormatJSON {
		if err := r.writeJSON(params); err != nil {
			return err
		}
	}

	r.logSummary()
	return nil
}

// subjectFamily strips the repetition counter, so heap1..heapN aggregate
// under "heap" and sso1..ssoN under "sso".
func subjectFamily(label string) string {
	return strings.TrimRight(label, "0123456789")
}

func (r *Reporter) logSummary() {
	if len(r.records) == 0 {
		return
	}

	families := make([]string, 0)
	pushTimes := make(map[string][]float64)
	sortTimes := make(map[string][]float64)
	for _, record := range r.records {
		family := subjectFamily(record.Label)
		if _, ok := pushTimes[family]; !ok {
			families = append(families, family)
		}
		pushTimes[family] = append(pushTimes[family], record.PushBackMs)
		sortTimes[family] = append(sortTimes[family], record.SortMs)
	}

	log.Infof("-----Run Summary. Completed %d invocations-----", len(r.records))
	for _, family := range families {
		logPhaseSummary(family, "push_back", pushTimes[family])
		logPhaseSummary(family, "sort", sortTimes[family])
	}
}

func logPhaseSummary(family string, phase string, times []float64) {
	p95, _ := stats.Percentile(times, 95)
	avg, _ := stats.Mean(times)
	max, _ := stats.Max(times)
	min, _ := stats.Min(times)
	log.Infof("Subject: %s %s. Min:%+vms, Max:%+vms, Avg:%+vms, P95:%+vms",
		family, phase, utils.ToFixed(min, 3), utils.ToFixed(max, 3),
		utils.ToFixed(avg, 3), utils.ToFixed(p95, 3))
}
