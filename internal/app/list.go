package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// ListModules writes every module type with its description and arguments.
func (a *App) ListModules(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range a.registry.Types() {
		rm, _ := a.registry.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, rm.Description)

		args, err := a.registry.Arguments(name)
		if err != nil {
			return err
		}
		for _, arg := range args {
			switch {
			case arg.Required:
				fmt.Fprintf(tw, "  %s\t%s\trequired\n", arg.Name, arg.Type)
			case arg.Default != "":
				fmt.Fprintf(tw, "  %s\t%s\tdefault %s\n", arg.Name, arg.Type, arg.Default)
			default:
				fmt.Fprintf(tw, "  %s\t%s\toptional\n", arg.Name, arg.Type)
			}
		}
	}
	return tw.Flush()
}
