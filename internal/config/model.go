package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified representation of every file that was loaded.
type Model struct {
	Variables map[string]*Variable
	Modules   []*Module
	Renders   []*Render
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Variables: make(map[string]*Variable)}
}

// Variable is an input variable that expressions reference as var.<name>.
type Variable struct {
	Name        string
	Description string
	// Default is cty.NilVal when the variable has no default and must be
	// supplied by an override.
	Default  cty.Value
	DefRange hcl.Range
}

// Module is a single noise module declaration.
type Module struct {
	Type      string
	Name      string
	Arguments map[string]hcl.Expression
	DefRange  hcl.Range
}

// ID returns the address other expressions use to refer to the module.
func (m *Module) ID() string {
	return ModuleID(m.Type, m.Name)
}

// ModuleID formats the address of a module.
func ModuleID(moduleType, name string) string {
	return fmt.Sprintf("module.%s.%s", moduleType, name)
}

// Render is a render target: a module sampled onto a model and written to
// a file.
type Render struct {
	Name      string
	Arguments map[string]hcl.Expression
	// Light holds the arguments of the optional light block, or nil.
	Light    map[string]hcl.Expression
	DefRange hcl.Range
}

// ModuleByID returns the module declared under id.
func (m *Model) ModuleByID(id string) (*Module, bool) {
	for _, mod := range m.Modules {
		if mod.ID() == id {
			return mod, true
		}
	}
	return nil, false
}
