package builder

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
)

// sortedArgNames returns argument names in a stable order so that the first
// reported error does not depend on map iteration.
func sortedArgNames(args map[string]hcl.Expression) []string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// configError reports a constructor failure as a diagnostic while keeping
// the constructor's error reachable through errors.Is and errors.As.
type configError struct {
	diag  *hcl.Diagnostic
	cause error
}

func (e *configError) Error() string { return e.diag.Error() }

func (e *configError) Unwrap() []error { return []error{e.diag, e.cause} }
