package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vanir",
	Short: "VanirDB wire-format tool",
	Long: `vanir encodes and decodes the byte-level wire formats used by
VanirDB: little-endian fixed32/fixed64, varint32/varint64, and
length-prefixed byte strings.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
