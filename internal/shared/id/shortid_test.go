package id

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{0, 1, 12, 32} {
		got, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", length, err)
		}
		want := length
		if want <= 0 {
			want = DefaultLength
		}
		if len(got) != want {
			t.Errorf("Generate(%d) length = %d, want %d", length, len(got), want)
		}
		for _, c := range got {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) produced invalid character %q", length, c)
			}
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id, err := Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[id] {
			t.Errorf("Generate produced duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

func TestNewEntityIDFormats(t *testing.T) {
	tests := []struct {
		name      string
		generator func() (string, error)
		prefix    string
	}{
		{"Dilemma", NewDilemmaID, PrefixDilemma},
		{"Helper", NewHelperID, PrefixHelper},
		{"Session", NewSessionID, PrefixSession},
		{"Reflection", NewReflectionID, PrefixReflection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generated, err := tt.generator()
			if err != nil {
				t.Fatalf("generator failed: %v", err)
			}

			if !HasPrefix(generated, tt.prefix) {
				t.Errorf("generated ID %q doesn't have expected prefix %q_", generated, tt.prefix)
			}

			prefix, shortID, err := ParsePrefixedID(generated)
			if err != nil {
				t.Errorf("failed to parse generated ID %q: %v", generated, err)
			}
			if prefix != tt.prefix {
				t.Errorf("parsed prefix %q doesn't match expected %q", prefix, tt.prefix)
			}
			if len(shortID) != DefaultLength {
				t.Errorf("short ID length %d doesn't match default %d", len(shortID), DefaultLength)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	if err := ValidatePrefix("dl_abc123", PrefixDilemma); err != nil {
		t.Errorf("unexpected error for valid prefix: %v", err)
	}
	if err := ValidatePrefix("hp_abc123", PrefixDilemma); err == nil {
		t.Error("expected error for wrong prefix")
	}
	if err := ValidatePrefix("nounderscore", PrefixDilemma); err == nil {
		t.Error("expected error for unprefixed ID")
	}
}
