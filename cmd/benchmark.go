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

package cmd

import (
	"os"

	"github.com/siglens/ssobench/pkg/bench"
	"github.com/siglens/ssobench/pkg/dataset"
	"github.com/siglens/ssobench/pkg/report"
	"github.com/siglens/ssobench/pkg/sysinfo"
	"github.com/siglens/ssobench/pkg/utils"
	log "github.com/sirupsen/logrus"
)

var supportedGenerators = []string{"sequential", "words"}

func makeGenerator(name string) (dataset.Generator, error) {
	if !utils.SliceHas(supportedGenerators, name) {
		return nil, utils.TeeErrorf("makeGenerator: unsupported generator %q, expected one of %v",
			name, supportedGenerators)
	}

	if name == "words" {
		return dataset.InitWordGenerator(int64(seed)), nil
	}

	return dataset.InitSequentialGenerator(), nil
}

func runBenchmark() {
	log.Infof("count : %+v. seed : %+v. runs : %+v\n", count, seed, runs)
	log.Infof("generator : %+v. format : %+v. verify : %+v\n", generatorType, format, verify)

	outputFormat, err := report.ParseFormat(format)
	if err != nil {
		os.Exit(1)
	}

	gen, err := makeGenerator(generatorType)
	if err != nil {
		os.Exit(1)
	}

	reporter := report.NewReporter(os.Stdout, outputFormat)
	log.Infof("Starting benchmark run %v", reporter.RunID())
	reporter.Banner(sysinfo.Collect())

	runner := bench.NewRunner(bench.Config{
		Count:     count,
		Seed:      seed,
		Runs:      runs,
		Generator: gen,
		Verify:    verify,
	}, reporter.Record)

	if _, err := runner.Run(); err != nil {
		log.Errorf("runBenchmark: benchmark failed, err=%v", err)
		os.Exit(1)
	}

	err = reporter.Finish(report.Params{
		Count:     count,
		Seed:      seed,
		Runs:      runs,
		Generator: generatorType,
		Verify:    verify,
	})
	if err != nil {
		log.Errorf("runBenchmark: failed to finish report, err=%v", err)
		os.Exit(1)
	}
}
