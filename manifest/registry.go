package manifest

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	luckytemplate "github.com/mdwagner/lucky-template"
)

// GeneratorFactory creates a content [luckytemplate.Source] from a
// definition's args.
type GeneratorFactory func(args map[string]string) (luckytemplate.Source, error)

var generators = xsync.NewMap[string, GeneratorFactory]()

// Register ties a generator factory to a name and should be called for each
// generator type during app init. Registering an existing name replaces it.
func Register(name string, factory GeneratorFactory) {
	generators.Store(name, factory)
}

// newGeneratorSource resolves a registered generator by name. All expected
// generators should be registered with [Register] before building a
// manifest.
func newGeneratorSource(name string, args map[string]string) (luckytemplate.Source, error) {
	factory, ok := generators.Load(name)
	if !ok {
		return nil, fmt.Errorf("no generator for %q", name)
	}
	return factory(args)
}
