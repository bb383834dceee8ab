/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/notargets/gofel/lattice"
	"github.com/notargets/gofel/utils"
	"github.com/spf13/cobra"
)

// tabulateCmd represents the tabulate command
var tabulateCmd = &cobra.Command{
	Use:   "tabulate",
	Short: "Evaluate the element basis on a sample lattice",
	Long: `
Creates an element and evaluates every basis function on an equispaced
lattice of the reference cell, one block per value component,

gofel tabulate -f P -c triangle -d 2 --samples 3`,
	Run: func(cmd *cobra.Command, args []string) {
		e, err := elementFromFlags(cmd)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		ns, _ := cmd.Flags().GetInt("samples")
		pts, err := lattice.Points(e.Cell, lattice.Equispaced, ns, false)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		X := utils.NewMatrix(len(pts), e.Cell.Dim())
		for i, p := range pts {
			X.SetRow(i, p)
		}
		T, err := e.Tabulate(X)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		for c, Tc := range T {
			fmt.Printf("component %d:\n", c)
			nr, nc := Tc.Dims()
			for i := 0; i < nr; i++ {
				for j := 0; j < nc; j++ {
					fmt.Printf("%10.5f ", Tc.At(i, j))
				}
				fmt.Printf("\n")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tabulateCmd)
	addElementFlags(tabulateCmd)
	tabulateCmd.Flags().Int("samples", 2, "degree of the equispaced sample lattice")
}
