package hamiltonian

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a Hamiltonian definition from a YAML file.
//
// Expected shape:
//
//	name: transverse-ising
//	description: two-site transverse-field Ising model
//	terms:
//	  - operators: Z0Z1
//	    coefficient: -1.0
//	  - operators: X0
//	    coefficient: -0.5
func LoadYAML(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hamiltonian file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML parses a YAML Hamiltonian definition.
func ParseYAML(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse hamiltonian yaml: %w", err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("hamiltonian yaml: name is required")
	}
	if len(spec.Terms) == 0 {
		return nil, fmt.Errorf("hamiltonian yaml: at least one term is required")
	}
	return &spec, nil
}
