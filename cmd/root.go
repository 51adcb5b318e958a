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
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

var cfgFile string
var sourceFlag string
var chartFlag string

const dateFormat = "2006-01-02"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aria-chart-tools",
	Short: "Explores the ARIA music charts dataset",
	Long: `Loads weekly ARIA chart data and produces descriptive summaries and plots.

The data comes from Casey Briggs' ARIA charts dataset
(https://github.com/caseybriggs/aria-charts). By default charts are fetched
straight from that repository; --source can point at a local CSV file, a
directory holding the published chart files, or another URL.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.aria-chart-tools.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&sourceFlag, "source", "s", "", "CSV file, directory of chart files, or URL (default is the dataset's GitHub repository)")
	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))

	rootCmd.PersistentFlags().StringVarP(
		&chartFlag, "chart", "c", "singles", "chart type: singles, albums, or new-singles")
	viper.BindPFlag("chart", rootCmd.PersistentFlags().Lookup("chart"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".aria-chart-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".aria-chart-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func loadDataset() (*dataset.Dataset, error) {
	chartType, err := dataset.ParseChartType(viper.GetString("chart"))
	if err != nil {
		return nil, err
	}
	return dataset.Load(viper.GetString("source"), chartType)
}
