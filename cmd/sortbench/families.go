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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-typesort/typesort"
)

var familiesList = []typesort.Family{
	typesort.FamilyBool,
	typesort.FamilyInt8, typesort.FamilyInt16, typesort.FamilyInt32, typesort.FamilyInt64, typesort.FamilyInt,
	typesort.FamilyUint8, typesort.FamilyUint16, typesort.FamilyUint32, typesort.FamilyUint64, typesort.FamilyUint,
	typesort.FamilyFloat32, typesort.FamilyFloat64,
	typesort.FamilyComplex64, typesort.FamilyComplex128,
	typesort.FamilyBytes, typesort.FamilyRunes,
}

var algorithmsList = []typesort.Algorithm{
	typesort.Quicksort, typesort.Heapsort, typesort.Mergesort,
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the (family, algorithm) pairs installed in the default registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range familiesList {
				var supported []string
				for _, a := range algorithmsList {
					if typesort.Default.Supports(f, a) {
						supported = append(supported, a.String())
					}
				}
				if len(supported) == 0 {
					continue
				}
				if _, err := fmt.Fprintf(out, "%-12s %s\n", f, strings.Join(supported, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
