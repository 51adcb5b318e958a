/*
Copyright 2020 Google LLC

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

	"github.com/spf13/cobra"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Exports the analysis summary to a text file",
	Long:  `Writes the fixed-format summary (date range, totals, top 20 artists) to the given path, overwriting any existing file.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "aria_charts_analysis.txt"
		if len(args) > 0 {
			path = args[0]
		}
		if err := exportInsights(path); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Analysis exported to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func exportInsights(path string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := analysis.WriteInsights(ds, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
