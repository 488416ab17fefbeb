package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyBundle holds policy configuration, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML"; they do not override CLI defaults.
// String fields use empty string for "not set".
//
//	policy: rr
//	quantum: 4
type PolicyBundle struct {
	Policy  string `yaml:"policy"`
	Quantum *int64 `yaml:"quantum"`
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle PolicyBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// Validate checks the policy name and parameter ranges in the bundle.
func (b *PolicyBundle) Validate() error {
	if !IsValidPolicy(b.Policy) {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, b.Policy)
	}
	if b.Quantum != nil && *b.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidInput, *b.Quantum)
	}
	return nil
}
