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
	"io/ioutil"
	"os"

	"github.com/notargets/gofel/InputParameters"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Create every element listed in a YAML input file",
	Long: `
Reads an element list from a YAML input file and creates each element,
reporting the degree of freedom count or the creation error,

gofel batch -I elements.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fileName, _ := cmd.Flags().GetString("inputFile")
		if len(fileName) == 0 {
			err := fmt.Errorf("must supply an input file (-I, --inputFile) in YAML format")
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Title: "Example Elements"
Elements:
  - Family: P
    Cell: triangle
    Degree: 2
    LagrangeVariant: gll_warped
  - Family: RT
    Cell: tetrahedron
    Degree: 1
########################################
`
			fmt.Printf("Example file contents:%s", exampleFile)
			os.Exit(1)
		}
		data, err := ioutil.ReadFile(fileName)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		bp := &InputParameters.BatchParameters{}
		if err = bp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		bp.Print()
		var failures int
		for i, es := range bp.Elements {
			e, err := es.Build()
			if err != nil {
				failures++
				fmt.Printf("Elements[%d]: error: %s\n", i, err.Error())
				continue
			}
			fmt.Printf("Elements[%d]: %s %s degree %d, %d dofs\n",
				i, e.Family, e.Cell, e.Degree, e.NumDofs())
		}
		if failures > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringP("inputFile", "I", "", "YAML file listing the elements to create")
}
