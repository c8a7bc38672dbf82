package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML plan. Missing stock size and cut extents take
// their defaults.
func Parse(data []byte) (*Plan, error) {
	p := New()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	for i := range p.Cuts {
		if p.Cuts[i].Extent == 0 {
			p.Cuts[i].Extent = DefaultExtent
		}
	}
	return p, nil
}

// Load reads a YAML plan from path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes p as YAML.
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Save writes p as YAML to path, creating parent directories as needed.
func (p *Plan) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
