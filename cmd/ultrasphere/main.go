// Package main is the entry point for the ultrasphere CLI: a thin surface
// over the hyperspherical eigenfunction evaluators for quick numeric
// inspection from the shell.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base command for the ultrasphere CLI.
var rootCmd = &cobra.Command{
	Use:   "ultrasphere",
	Short: "Evaluate hyperspherical harmonic eigenfunctions",
	Long: `ultrasphere evaluates the per-node eigenfunctions of hyperspherical
harmonics over binary coordinate trees: azimuthal exponentials (type A),
sin- and cos-weighted Jacobi ladders (types B and B'), and the two-subtree
coupling (type C).

Each operation is a subcommand: eval computes one evaluator on a batch of
angles, ndim reports how many quantum-number axes a branching type carries.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ultrasphere.yaml or ~/.config/ultrasphere/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ultrasphere")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ultrasphere"))
		}
	}

	viper.SetEnvPrefix("ULTRASPHERE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
