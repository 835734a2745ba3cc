package errors

import (
	"strings"
	"testing"
)

func TestValidateTarget(t *testing.T) {
	if err := ValidateTarget(5); err != nil {
		t.Errorf("ValidateTarget(5) = %v, want nil", err)
	}
	if err := ValidateTarget(0); err != nil {
		t.Errorf("ValidateTarget(0) = %v, want nil (maximum mode)", err)
	}
	if err := ValidateTarget(-1); err == nil {
		t.Error("ValidateTarget(-1) should fail")
	} else if !Is(err, ErrCodeInvalidTarget) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidTarget)
	}
}

func TestValidateDatasetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "graph_01", false},
		{"with extension", "dense-50.edgelist", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd", true},
		{"path separator", "dir/file", true},
		{"backslash", "dir\\file", true},
		{"control character", "name\x01", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatasetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatasetName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative path", "data/graph.edgelist", false},
		{"absolute path", "/tmp/graph.edgelist", false},
		{"empty", "", true},
		{"traversal", "data/../../secret", true},
		{"null byte", "file\x00.txt", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAlgorithmName(t *testing.T) {
	for _, name := range []string{"exact", "greedy-coloring", "tabu-search", "all"} {
		if err := ValidateAlgorithmName(name); err != nil {
			t.Errorf("ValidateAlgorithmName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range []string{"", "Exact", "tabu search", "tabu--search", "-exact", "exact-"} {
		if err := ValidateAlgorithmName(name); err == nil {
			t.Errorf("ValidateAlgorithmName(%q) should fail", name)
		}
	}
}

func TestValidateRenderFormat(t *testing.T) {
	for _, f := range []string{"dot", "svg", "png", "SVG"} {
		if err := ValidateRenderFormat(f); err != nil {
			t.Errorf("ValidateRenderFormat(%q) = %v, want nil", f, err)
		}
	}
	for _, f := range []string{"", "jpeg", "pdf"} {
		if err := ValidateRenderFormat(f); err == nil {
			t.Errorf("ValidateRenderFormat(%q) should fail", f)
		}
	}
}
