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

package dataset

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces the values a dataset is built from. GetValue is called
// once per index in ascending order, before the shuffle.
type Generator interface {
	Init() error
	Name() string
	GetValue(idx uint32) (string, error)
}

// SequentialGenerator yields "#0", "#1", "#2", ... so every value is unique
// and short. This is the default workload.
type SequentialGenerator struct {
}

func InitSequentialGenerator() *SequentialGenerator {
	return &SequentialGenerator{}
}

func (r *SequentialGenerator) Init() error {
	return nil
}

func (r *SequentialGenerator) Name() string {
	return "sequential"
}

func (r *SequentialGenerator) GetValue(idx uint32) (string, error) {
	return "#" + strconv.FormatUint(uint64(idx), 10), nil
}

// WordGenerator yields short fake tokens like "salmon-4821". Values may
// repeat; the same seed always yields the same sequence.
type WordGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

func InitWordGenerator(seed int64) *WordGenerator {
	return &WordGenerator{seed: seed}
}

func (r *WordGenerator) Init() error {
	gofakeit.Seed(r.seed)
	r.faker = gofakeit.NewUnlocked(r.seed)
	return nil
}

func (r *WordGenerator) Name() string {
	return "words"
}

func (r *WordGenerator) GetValue(idx uint32) (string, error) {
	if r.faker == nil {
		return "", fmt.Errorf("GetValue: generator is not initialized")
	}

	return fmt.Sprintf("%s-%d", r.faker.Color(), r.faker.Number(0, 9999)), nil
}
