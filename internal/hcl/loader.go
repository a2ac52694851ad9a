package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/specialistvlad/noisegrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges their blocks into
// one model. Paths may be files or directories; directories are walked
// recursively. Declaring the same variable, module or render twice, even
// across files, is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	seen := make(map[string]hcl.Range)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, v := range root.Variables {
			if err := claim(seen, "var."+v.Name, v.DeclRange); err != nil {
				return nil, nil, err
			}
			variable, err := l.translateVariable(v)
			if err != nil {
				return nil, nil, err
			}
			model.Variables[variable.Name] = variable
		}
		for _, m := range root.Modules {
			if err := claim(seen, config.ModuleID(m.Type, m.Name), m.DeclRange); err != nil {
				return nil, nil, err
			}
			mod, err := l.translateModule(m)
			if err != nil {
				return nil, nil, err
			}
			model.Modules = append(model.Modules, mod)
		}
		for _, r := range root.Renders {
			if err := claim(seen, "render."+r.Name, r.DeclRange); err != nil {
				return nil, nil, err
			}
			render, err := l.translateRender(r)
			if err != nil {
				return nil, nil, err
			}
			model.Renders = append(model.Renders, render)
		}
		logger.Debug("Loaded HCL file.", "file", file, "variables", len(root.Variables), "modules", len(root.Modules), "renders", len(root.Renders))
	}

	logger.Debug("HCL loading complete.", "variables", len(model.Variables), "modules", len(model.Modules), "renders", len(model.Renders))
	return model, NewConverter(), nil
}

// claim records a declaration, failing if the address was declared before.
func claim(seen map[string]hcl.Range, addr string, rng hcl.Range) error {
	if prev, ok := seen[addr]; ok {
		return &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate declaration",
			Detail:   fmt.Sprintf("%s was already declared at %s.", addr, prev.String()),
			Subject:  rng.Ptr(),
		}
	}
	seen[addr] = rng
	return nil
}

// findAllHCLFiles walks all given paths and returns a sorted, de-duplicated
// list of .hcl files. A path that does not exist is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var all []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		all = append(all, p)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(filepath.Clean(path))
			}
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(filepath.Clean(f))
		}
	}
	sort.Strings(all)
	return all, nil
}
