package app

import (
	"github.com/specialistvlad/noisegrid/internal/registry"
	"github.com/specialistvlad/noisegrid/modules/combiner"
	"github.com/specialistvlad/noisegrid/modules/generator"
	"github.com/specialistvlad/noisegrid/modules/modifier"
	"github.com/specialistvlad/noisegrid/modules/selector"
	"github.com/specialistvlad/noisegrid/modules/transformer"
)

// coreModules is the definitive list of all module packages that are
// compiled into the noisegrid binary.
var coreModules = []registry.Module{
	&generator.Module{},
	&modifier.Module{},
	&combiner.Module{},
	&selector.Module{},
	&transformer.Module{},
}

// CoreModules returns a copy of the core module list, for callers that add
// their own module types on top of it.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
