package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/config"
)

// parseModuleTraversal recognises module.<type>.<name>. Any further
// traversal steps are ignored; callers that need an exact reference check
// the length themselves.
func parseModuleTraversal(t hcl.Traversal) (string, bool) {
	if len(t) < 3 || t.RootName() != "module" {
		return "", false
	}
	typeAttr, typeOk := t[1].(hcl.TraverseAttr)
	nameAttr, nameOk := t[2].(hcl.TraverseAttr)
	if !typeOk || !nameOk {
		return "", false
	}
	return config.ModuleID(typeAttr.Name, nameAttr.Name), true
}

// References returns the sorted, unique module IDs referenced by expr.
func (c *Converter) References(expr hcl.Expression) []string {
	if expr == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var ids []string
	for _, t := range expr.Variables() {
		id, ok := parseModuleTraversal(t)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// moduleRef extracts the module ID from an expression that must be exactly
// a module reference.
func moduleRef(expr hcl.Expression) (string, hcl.Diagnostics) {
	t, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid module reference",
			Detail:   "A module reference of the form module.<type>.<name> is required here.",
			Subject:  expr.Range().Ptr(),
		}}
	}
	id, ok := parseModuleTraversal(t)
	if !ok || len(t) != 3 {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid module reference",
			Detail:   fmt.Sprintf("Expected module.<type>.<name>, got a reference rooted at %q.", t.RootName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return id, nil
}
