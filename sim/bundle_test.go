package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolicyBundle_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, "policy: rr\nquantum: 4\n")

	bundle, err := LoadPolicyBundle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Policy != "rr" {
		t.Errorf("expected policy 'rr', got %q", bundle.Policy)
	}
	if bundle.Quantum == nil || *bundle.Quantum != 4 {
		t.Errorf("expected quantum 4, got %v", bundle.Quantum)
	}
	assert.NoError(t, bundle.Validate())
}

func TestLoadPolicyBundle_EmptyFields_NilPointers(t *testing.T) {
	path := writeTempYAML(t, "policy: sjf\n")

	bundle, err := LoadPolicyBundle(path)

	require.NoError(t, err)
	assert.Nil(t, bundle.Quantum)
}

func TestLoadPolicyBundle_UnknownKey_Rejected(t *testing.T) {
	path := writeTempYAML(t, "policy: rr\nquantom: 4\n")

	_, err := LoadPolicyBundle(path)

	assert.Error(t, err)
}

func TestLoadPolicyBundle_MissingFile(t *testing.T) {
	_, err := LoadPolicyBundle(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestPolicyBundle_Validate_Invalid(t *testing.T) {
	zero := int64(0)
	tests := []struct {
		name   string
		bundle PolicyBundle
	}{
		{"unknown policy", PolicyBundle{Policy: "lottery"}},
		{"zero quantum", PolicyBundle{Policy: PolicyRoundRobin, Quantum: &zero}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() = %v, want ErrInvalidInput", err)
			}
		})
	}
}
