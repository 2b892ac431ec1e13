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

package report

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/siglens/ssobench/pkg/bench"
	"github.com/siglens/ssobench/pkg/sysinfo"
	"github.com/siglens/ssobench/pkg/utils"
)

var json = jsoniter.ConfigFastest

type envelope struct {
	RunID     string             `json:"run_id"`
	StartedAt string             `json:"started_at"`
	Params    Params             `json:"params"`
	System    sysinfo.Info       `json:"system"`
	Records   []bench.PerfRecord `json:"records"`
}

func (r *Reporter) writeJSON(params Params) error {
	env := envelope{
		RunID:     r.runID,
		StartedAt: r.startedAt.Format(time.RFC3339),
		Params:    params,
		System:    r.system,
		Records:   r.records,
	}

	body, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return utils.TeeErrorf("writeJSON: failed to marshal run %v, err=%v", r.runID, err)
	}
	body = append(body, '\n')

	if _, err := r.w.Write(body); err != nil {
		return utils.TeeErrorf("writeJSON: failed to write run %v, err=%v", r.runID, err)
	}

	return nil
}
