package main

import (
	"fmt"

	"github.com/dhamidi/jmirror/mirror"
	"github.com/dhamidi/jmirror/signature"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var extended bool

	cmd := &cobra.Command{
		Use:   "render <signature>",
		Short: "Print the source-level spelling of a type signature",
		Long: `Print the canonical source-level spelling of a JVM type signature.

Dotted source names are accepted as shorthand for their signature
form: "java.util.List" parses as "Ljava/util/List;".

Examples:
  jmirror render 'Ljava/util/List<Ljava/lang/Integer;>;'
  jmirror render '[Ljava/lang/String;'
  jmirror render java.util.List
  jmirror render -e 'Ljava/util/List<+Ljava/lang/Number;>;'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], extended)
		},
	}

	cmd.Flags().BoolVarP(&extended, "extended", "e", false, "render type variables with their bounds")

	return cmd
}

func runRender(sig string, extended bool) error {
	parser := signature.NewParser(mirror.NewUniverse())
	t, err := parseTypeArg(parser, sig)
	if err != nil {
		return fmt.Errorf("failed to parse signature: %w", err)
	}
	if v, ok := t.(*mirror.TypeVariable); ok && extended {
		fmt.Println(v.StringWithBounds())
		return nil
	}
	fmt.Println(t)
	return nil
}
