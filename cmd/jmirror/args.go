package main

import (
	"strings"

	"github.com/dhamidi/jmirror/mirror"
	"github.com/dhamidi/jmirror/signature"
)

// parseTypeArg accepts either a JVM type signature or, as a
// convenience, a dotted source name like java.util.List, which is
// rewritten to its L...; signature form before parsing.
func parseTypeArg(parser *signature.Parser, arg string) (mirror.Type, error) {
	if strings.Contains(arg, ".") && !strings.ContainsAny(arg, ";<[/") {
		arg = "L" + signature.SourceToInternalName(arg) + ";"
	}
	return parser.ParseType(arg)
}
