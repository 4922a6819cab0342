package main

import (
	"fmt"

	"github.com/dhamidi/jmirror/mirror"
	"github.com/dhamidi/jmirror/signature"
	"github.com/spf13/cobra"
)

func newErasureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "erasure <signature>",
		Short: "Print the erased form of a type signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := signature.NewParser(mirror.NewUniverse())
			t, err := parseTypeArg(parser, args[0])
			if err != nil {
				return fmt.Errorf("failed to parse signature: %w", err)
			}
			fmt.Println(mirror.Erasure(t))
			return nil
		},
	}
}
