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

	"github.com/notargets/gofel/InputParameters"
	"github.com/notargets/gofel/element"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Create one element and print its structure",
	Long: `
Creates a single reference element and prints the value shape, the
number of degrees of freedom and their association with the cell
entities,

gofel describe -f N1E -c tetrahedron -d 2`,
	Run: func(cmd *cobra.Command, args []string) {
		e, err := elementFromFlags(cmd)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		printElement(e)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addElementFlags(describeCmd)
}

func addElementFlags(c *cobra.Command) {
	c.Flags().StringP("family", "f", "P", "element family: P, RT, BDM, N1E, N2E, Regge, HHJ, bubble, serendipity, DPC, CR, Hermite, iso")
	c.Flags().StringP("cell", "c", "triangle", "reference cell: point, interval, triangle, quadrilateral, tetrahedron, hexahedron, prism, pyramid")
	c.Flags().IntP("degree", "d", 1, "polynomial degree")
	c.Flags().String("lagrangeVariant", "unset", "Lagrange variant: unset, equispaced, gll_isaac, gll_warped, legendre, bernstein")
	c.Flags().String("dpcVariant", "unset", "DPC variant: unset, diagonal_equispaced, diagonal_gll, legendre")
	c.Flags().Bool("discontinuous", false, "associate all degrees of freedom with the cell interior")
}

func specFromFlags(cmd *cobra.Command) (es *InputParameters.ElementSpec) {
	es = &InputParameters.ElementSpec{}
	es.Family, _ = cmd.Flags().GetString("family")
	es.Cell, _ = cmd.Flags().GetString("cell")
	es.Degree, _ = cmd.Flags().GetInt("degree")
	es.LagrangeVariant, _ = cmd.Flags().GetString("lagrangeVariant")
	es.DPCVariant, _ = cmd.Flags().GetString("dpcVariant")
	es.Discontinuous, _ = cmd.Flags().GetBool("discontinuous")
	return
}

func elementFromFlags(cmd *cobra.Command) (e *element.Element, err error) {
	return specFromFlags(cmd).Build()
}

func printElement(e *element.Element) {
	fmt.Printf("[%s]\t\t= Family\n", e.Family)
	fmt.Printf("[%s]\t\t= Cell\n", e.Cell)
	fmt.Printf("[%d]\t\t\t= Degree\n", e.Degree)
	fmt.Printf("[%d]\t\t\t= Embedded Degree\n", e.EmbeddedDegree)
	fmt.Printf("%v\t\t\t= Value Shape\n", e.ValueShape)
	fmt.Printf("[%d]\t\t\t= Degrees of Freedom\n", e.NumDofs())
	fmt.Printf("[%v]\t\t= Discontinuous\n", e.Discontinuous)
	for d := 0; d <= e.Cell.Dim(); d++ {
		for i, dofs := range e.EntityDofs[d] {
			fmt.Printf("EntityDofs[%d][%d] = %v\n", d, i, dofs)
		}
	}
}
