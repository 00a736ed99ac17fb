package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "spmx",
	Short: "Sparse integer matrix arithmetic over text files",
	Long: `spmx reads two sparse matrices from their textual representation,
performs addition, subtraction or multiplication, and writes the
resulting sparse matrix back to a text file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("output-dir", "results", "directory for result files (created if missing)")
	rootCmd.PersistentFlags().Bool("strict-header", false, "require header labels to read exactly rows= and cols=")
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("strict_header", rootCmd.PersistentFlags().Lookup("strict-header"))
}

// initConfig loads .spmx.yaml (working dir, then home) and SPMX_* env vars.
func initConfig() {
	viper.SetConfigName(".spmx")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("SPMX")
	viper.AutomaticEnv()

	// A missing config file is fine; a broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, errStyle.Render("config: "+err.Error()))
		}
	}
}
