package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func check(e error) {
	if e != nil {
		fmt.Printf("%v\n", e.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "portfolio-admin",
	Short:   "Administration tooling for the portfolio dashboard server",
	Long:    `Administration tooling for the portfolio dashboard server. Subcommands prepare the backing stores so the server itself never needs admin credentials.`,
	Version: "1.0.0",
	Run: func(cmd *cobra.Command, args []string) {
		// empty
	},
}

func main() {
	Execute()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
