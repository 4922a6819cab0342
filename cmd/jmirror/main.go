package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var verbose int

func main() {
	rootCmd := &cobra.Command{
		Use:   "jmirror",
		Short: "Inspect Java types from JVM generic signatures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newErasureCmd())
	rootCmd.AddCommand(newAssignableCmd())
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
