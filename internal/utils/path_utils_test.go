package utils

import "testing"

func TestResolveImportPath(t *testing.T) {
	tests := []struct {
		baseDir, importPath, want string
	}{
		{"src", "./shapes", "src/shapes"},
		{"", "./shapes", "./shapes"},
		{".", "./shapes", "./shapes"},
		{"src", "Geometry", "Geometry"},
	}
	for _, tt := range tests {
		if got := ResolveImportPath(tt.baseDir, tt.importPath); got != tt.want {
			t.Errorf("ResolveImportPath(%q, %q) = %q, want %q", tt.baseDir, tt.importPath, got, tt.want)
		}
	}
}

func TestExtractModuleName(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"src/shapes.swy", "shapes"},
		{"shapes.swift", "shapes"},
		{"dir/noext", "noext"},
	}
	for _, tt := range tests {
		if got := ExtractModuleName(tt.path); got != tt.want {
			t.Errorf("ExtractModuleName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsSourceFile(t *testing.T) {
	if !IsSourceFile("a.swy") || !IsSourceFile("b.swift") {
		t.Error("recognized extensions should report true")
	}
	if IsSourceFile("a.go") {
		t.Error("unrecognized extension should report false")
	}
}
