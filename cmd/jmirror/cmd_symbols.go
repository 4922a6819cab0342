package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jmirror/mirror"
	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols [prefix]",
		Short: "List the builtin symbols, optionally filtered by prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			u := mirror.NewUniverse()
			for _, name := range u.Names() {
				if !strings.HasPrefix(name, prefix) {
					continue
				}
				sym, err := u.Lookup(name)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%-9s %s", sym.Kind, name)
				if sym.IsGeneric() {
					params := make([]string, len(sym.Params))
					for i, p := range sym.Params {
						params[i] = p.Name
					}
					line += "<" + strings.Join(params, ",") + ">"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
