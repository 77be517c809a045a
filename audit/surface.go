package audit

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petal-labs/genai/core"
)

// Surface is a manifest of the exported surface at some release: every
// registered module under the namespace and its export list. A committed
// manifest lets the audit command detect names that silently dropped out of
// the surface between releases.
type Surface struct {
	Namespace string              `yaml:"namespace"`
	Modules   map[string][]string `yaml:"modules"`
}

// CurrentSurface captures the surface of the running registries for every
// module under the namespace prefix. Export lists keep registration order.
func CurrentSurface(prefix string) *Surface {
	s := &Surface{Namespace: prefix, Modules: make(map[string][]string)}
	for _, module := range core.Modules() {
		if module != prefix && !strings.HasPrefix(module, prefix+".") {
			continue
		}
		s.Modules[module] = core.Exports(module)
	}
	return s
}

// LoadSurface reads a manifest written by WriteSurface.
func LoadSurface(path string) (*Surface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading surface manifest: %w", err)
	}
	var s Surface
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing surface manifest %s: %w", path, err)
	}
	if s.Namespace == "" {
		return nil, fmt.Errorf("surface manifest %s has no namespace", path)
	}
	return &s, nil
}

// WriteSurface writes the manifest to path.
func (s *Surface) WriteSurface(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding surface manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing surface manifest: %w", err)
	}
	return nil
}

// Missing returns every name recorded in the manifest that no longer
// resolves in its module, sorted as "module.Name". A name served through the
// compatibility table still resolves and is not reported; only names that
// dropped out of both registries break callers.
func (s *Surface) Missing() []string {
	var missing []string
	for module, names := range s.Modules {
		for _, name := range names {
			if _, err := core.Resolve(module, name); err != nil {
				missing = append(missing, module+"."+name)
			}
		}
	}
	sort.Strings(missing)
	return missing
}
