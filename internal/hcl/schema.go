package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a file may contain. Any other
// block is rejected by gohcl.
type fileRoot struct {
	Variables []*variableBlock `hcl:"variable,block"`
	Modules   []*moduleBlock   `hcl:"module,block"`
	Renders   []*renderBlock   `hcl:"render,block"`
}

// variableBlock is `variable "<name>" { ... }`.
type variableBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Default     *hcl.Attribute `hcl:"default,optional"`
	DeclRange   hcl.Range      `hcl:",def_range"`
}

// moduleBlock is `module "<type>" "<name>" { ... }`. Its body may only hold
// attributes.
type moduleBlock struct {
	Type      string    `hcl:"type,label"`
	Name      string    `hcl:"name,label"`
	Body      hcl.Body  `hcl:",remain"`
	DeclRange hcl.Range `hcl:",def_range"`
}

// renderBlock is `render "<name>" { ... }` with an optional light block.
type renderBlock struct {
	Name      string      `hcl:"name,label"`
	Light     *lightBlock `hcl:"light,block"`
	Body      hcl.Body    `hcl:",remain"`
	DeclRange hcl.Range   `hcl:",def_range"`
}

type lightBlock struct {
	Body hcl.Body `hcl:",remain"`
}
