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
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated element creation",
	Long: `
Creates the same element repeatedly and reports the average creation
time, optionally writing a CPU profile,

gofel bench -f N1E -c tetrahedron -d 3 --count 100 --cpuProfile`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		if prof, _ := cmd.Flags().GetBool("cpuProfile"); prof {
			defer profile.Start().Stop()
		}
		spec := specFromFlags(cmd)
		start := time.Now()
		for i := 0; i < count; i++ {
			if _, err := spec.Build(); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		elapsed := time.Since(start)
		fmt.Printf("%d creations in %v, %v per element\n",
			count, elapsed, elapsed/time.Duration(count))
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	addElementFlags(benchCmd)
	benchCmd.Flags().Int("count", 100, "number of elements to create")
	benchCmd.Flags().Bool("cpuProfile", false, "write a CPU profile via pkg/profile")
}
