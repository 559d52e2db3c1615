package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ltegg/ellingham/src/diagram"
	"github.com/ltegg/ellingham/src/reaction"
)

// Full pipeline: load -> validate -> normalize -> build -> export, the same
// sequence main runs, minus flag parsing.
func TestPipelineEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("renders the full figure")
	}
	tbl := reaction.Load()
	if err := reaction.Validate(tbl); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if issues := reaction.CheckContinuity(tbl); len(issues) != 0 {
		t.Fatalf("continuity issues in built-in table: %v", issues)
	}
	fig, err := diagram.Build(reaction.Normalize(tbl))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	dir := t.TempDir()
	if err := diagram.Export(fig, dir, []string{"eps", "png", "pdf"}); err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, name := range []string{"ellingham.eps", "ellingham.png", "ellingham.pdf"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}
