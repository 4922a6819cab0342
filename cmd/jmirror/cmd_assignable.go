package main

import (
	"fmt"

	"github.com/dhamidi/jmirror/mirror"
	"github.com/dhamidi/jmirror/signature"
	"github.com/spf13/cobra"
)

func newAssignableCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "assignable <target-signature> <source-signature>",
		Short: "Check whether the source type is assignable to the target type",
		Long: `Check whether a value of the source type may be used where the
target type is expected.

Arguments are JVM type signatures; dotted source names are accepted
as shorthand ("java.lang.Object" for "Ljava/lang/Object;").

Examples:
  jmirror assignable '[Ljava/lang/Object;' '[Ljava/lang/String;'
  jmirror assignable java.lang.Object java.lang.String
  jmirror assignable 'Ljava/util/List<+Ljava/lang/Number;>;' 'Ljava/util/ArrayList<Ljava/lang/Integer;>;'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssignable(args[0], args[1], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when not assignable")

	return cmd
}

func runAssignable(targetSig, sourceSig string, strict bool) error {
	parser := signature.NewParser(mirror.NewUniverse())

	target, err := parseTypeArg(parser, targetSig)
	if err != nil {
		return fmt.Errorf("failed to parse target: %w", err)
	}
	source, err := parseTypeArg(parser, sourceSig)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}

	ok := mirror.IsAssignable(target, source)
	fmt.Println(ok)
	if !ok && strict {
		return fmt.Errorf("%s is not assignable to %s", source, target)
	}
	return nil
}
