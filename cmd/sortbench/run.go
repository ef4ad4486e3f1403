// Copyright 2026 go-typesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-typesort/typesort"
)

func parseAlgorithm(name string) (typesort.Algorithm, error) {
	switch name {
	case "quicksort":
		return typesort.Quicksort, nil
	case "heapsort":
		return typesort.Heapsort, nil
	case "mergesort":
		return typesort.Mergesort, nil
	default:
		return 0, errors.Errorf("unknown algorithm %q (quicksort, heapsort, mergesort)", name)
	}
}

// runFamilies is the subset of families the generator knows how to fill
// with random data.
var runFamilies = []string{"int32", "int64", "uint64", "float32", "float64", "complex128", "bytes"}

func newRunCmd() *cobra.Command {
	var (
		familyName string
		algoName   string
		count      int
		width      int
		seed       int64
		runs       int
		indirect   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate random data and time one sort configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			algo, err := parseAlgorithm(algoName)
			if err != nil {
				return err
			}

			logger.Info("host",
				zap.String("cpu", cpuFeatures()),
				zap.String("family", familyName),
				zap.String("algorithm", algo.String()),
				zap.Int("count", count),
				zap.Bool("indirect", indirect),
			)

			var best, total time.Duration
			for i := 0; i < runs; i++ {
				rng := rand.New(rand.NewSource(seed))
				elapsed, err := runOnce(rng, familyName, algo, count, width, indirect)
				if err != nil {
					return err
				}
				if best == 0 || elapsed < best {
					best = elapsed
				}
				total += elapsed
				logger.Debug("run", zap.Int("iteration", i), zap.Duration("elapsed", elapsed))
			}

			logger.Info("done",
				zap.Int("runs", runs),
				zap.Duration("best", best),
				zap.Duration("mean", total/time.Duration(runs)),
				zap.Float64("melems_per_sec", float64(count)/best.Seconds()/1e6),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&familyName, "family", "float64", "element family, one of "+strings.Join(runFamilies, ", "))
	cmd.Flags().StringVar(&algoName, "algo", "quicksort", "algorithm: quicksort, heapsort, or mergesort")
	cmd.Flags().IntVar(&count, "count", 1_000_000, "number of elements")
	cmd.Flags().IntVar(&width, "width", 8, "key width in units (bytes family only)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&runs, "runs", 3, "number of timed repetitions")
	cmd.Flags().BoolVar(&indirect, "indirect", false, "argsort instead of sorting in place")
	return cmd
}

// runOnce fills a fresh buffer, sorts it, verifies the result, and
// returns the sort's wall time.
func runOnce(rng *rand.Rand, family string, algo typesort.Algorithm, count, width int, indirect bool) (time.Duration, error) {
	switch family {
	case "int32":
		data := make([]int32, count)
		for i := range data {
			data[i] = rng.Int31()
		}
		return timeSort(data, algo, indirect)
	case "int64":
		data := make([]int64, count)
		for i := range data {
			data[i] = rng.Int63()
		}
		return timeSort(data, algo, indirect)
	case "uint64":
		data := make([]uint64, count)
		for i := range data {
			data[i] = rng.Uint64()
		}
		return timeSort(data, algo, indirect)
	case "float32":
		data := make([]float32, count)
		for i := range data {
			data[i] = rng.Float32()
		}
		return timeSort(data, algo, indirect)
	case "float64":
		data := make([]float64, count)
		for i := range data {
			data[i] = rng.NormFloat64()
		}
		return timeSort(data, algo, indirect)
	case "complex128":
		data := make([]complex128, count)
		for i := range data {
			data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		return timeSort(data, algo, indirect)
	case "bytes":
		buf := make([]byte, count*width)
		if _, err := rng.Read(buf); err != nil {
			return 0, err
		}
		start := time.Now()
		if indirect {
			if _, err := typesort.ArgSortBytes(buf, width, algo); err != nil {
				return 0, err
			}
			return time.Since(start), nil
		}
		if err := typesort.SortBytes(buf, width, algo); err != nil {
			return 0, err
		}
		elapsed := time.Since(start)
		if !typesort.IsSortedKeys(buf, width) {
			return 0, errors.New("result verification failed")
		}
		return elapsed, nil
	default:
		return 0, errors.Errorf("unknown family %q, one of %s", family, strings.Join(runFamilies, ", "))
	}
}

func timeSort[T typesort.Elem](data []T, algo typesort.Algorithm, indirect bool) (time.Duration, error) {
	start := time.Now()
	if indirect {
		index, err := typesort.ArgSortSlice(data, algo)
		if err != nil {
			return 0, err
		}
		elapsed := time.Since(start)
		sorted := make([]T, len(data))
		for i, idx := range index {
			sorted[i] = data[idx]
		}
		if !typesort.IsSorted(sorted) {
			return 0, errors.New("result verification failed")
		}
		return elapsed, nil
	}
	if err := typesort.SortSlice(data, algo); err != nil {
		return 0, err
	}
	elapsed := time.Since(start)
	if !typesort.IsSorted(data) {
		return 0, errors.New("result verification failed")
	}
	return elapsed, nil
}

