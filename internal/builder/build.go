package builder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/specialistvlad/noisegrid/internal/dag"
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// Graph is the result of a build: every declared module, constructed.
type Graph struct {
	// Modules maps a module address to the built module.
	Modules map[string]module.Module
	// Order lists module addresses in the order they were built.
	Order []string
	// Unused lists modules that nothing references.
	Unused []string
}

// Resolve looks up a built module. It satisfies config.Resolver.
func (g *Graph) Resolve(id string) (module.Module, bool) {
	m, ok := g.Modules[id]
	return m, ok
}

// Build validates the module blocks of model and constructs them.
func Build(
	ctx context.Context,
	model *config.Model,
	conv config.Converter,
	evalCtx *hcl.EvalContext,
	reg *registry.Registry,
) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "modules", len(model.Modules))

	d := dag.New()
	blocks := make(map[string]*config.Module, len(model.Modules))

	// First pass: one node per module block.
	for _, mod := range model.Modules {
		if _, ok := reg.Lookup(mod.Type); !ok {
			return nil, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown module type",
				Detail:   fmt.Sprintf("Module type %q is not supported; known types: %s.", mod.Type, strings.Join(reg.Types(), ", ")),
				Subject:  mod.DefRange.Ptr(),
			}
		}
		d.AddNode(mod.ID())
		blocks[mod.ID()] = mod
	}
	logger.Debug("Build: Node creation complete.", "node_count", d.Len())

	// Second pass: link references.
	for _, mod := range model.Modules {
		if err := link(d, conv, mod.ID(), mod.Arguments); err != nil {
			return nil, err
		}
	}
	logger.Debug("Build: Node linking complete.")

	order, err := d.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.", "order", order)

	// Third pass: instantiate in dependency order.
	graph := &Graph{Modules: make(map[string]module.Module, len(order)), Order: order}
	for _, id := range order {
		mod := blocks[id]
		m, err := instantiate(ctx, mod, conv, evalCtx, reg, graph.Resolve)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", id, err)
		}
		graph.Modules[id] = m
		logger.Debug("Build: Module built.", "module", id)
	}

	graph.Unused = unused(d, conv, model)
	for _, id := range graph.Unused {
		logger.Warn("Module is declared but never used.", "module", id, "range", blocks[id].DefRange.String())
	}

	logger.Info("Build: Graph construction successful.", "modules", len(graph.Modules))
	return graph, nil
}

// link adds an edge from every module referenced in args to id.
func link(d *dag.Graph, conv config.Converter, id string, args map[string]hcl.Expression) error {
	for _, name := range sortedArgNames(args) {
		expr := args[name]
		for _, ref := range conv.References(expr) {
			if !d.Has(ref) {
				return &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Reference to undeclared module",
					Detail:   fmt.Sprintf("%s refers to %s, which is not declared.", id, ref),
					Subject:  expr.Range().Ptr(),
				}
			}
			if err := d.AddEdge(ref, id); err != nil {
				return fmt.Errorf("error linking %s: %w", id, err)
			}
		}
	}
	return nil
}

func instantiate(
	ctx context.Context,
	mod *config.Module,
	conv config.Converter,
	evalCtx *hcl.EvalContext,
	reg *registry.Registry,
	resolve config.Resolver,
) (module.Module, error) {
	rm, _ := reg.Lookup(mod.Type)
	input := rm.NewInput()
	if err := conv.DecodeBody(ctx, input, mod.Arguments, mod.DefRange, evalCtx, resolve); err != nil {
		return nil, err
	}
	m, err := rm.Build(input)
	if err != nil {
		return nil, &configError{
			diag: &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid module configuration",
				Detail:   err.Error(),
				Subject:  mod.DefRange.Ptr(),
			},
			cause: err,
		}
	}
	return m, nil
}

// unused returns the modules with no dependents that no render block
// references, sorted.
func unused(d *dag.Graph, conv config.Converter, model *config.Model) []string {
	rendered := make(map[string]struct{})
	for _, r := range model.Renders {
		for _, expr := range r.Arguments {
			for _, ref := range conv.References(expr) {
				rendered[ref] = struct{}{}
			}
		}
	}

	var out []string
	order, _ := d.TopologicalOrder()
	for _, id := range order {
		dependents, _ := d.Dependents(id)
		if _, ok := rendered[id]; !ok && len(dependents) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
