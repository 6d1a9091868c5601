package deps

import (
	"path/filepath"
	"testing"

	"deskshell/internal/config"
	"deskshell/internal/testsupport"
)

func TestCheckFindsStubbedBinary(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.WriteExecutable(t, dir, "fc-list", "#!/bin/sh\nexit 0\n")

	results := Check(
		Requirement{Name: "absolute", Command: stub},
		Requirement{Name: "missing", Command: filepath.Join(dir, "nope")},
		Requirement{Name: "blank", Command: "  "},
	)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Available() || results[0].Detail() != stub {
		t.Fatalf("expected stub to be found, got %+v", results[0])
	}
	if results[1].Available() {
		t.Fatal("missing binary reported available")
	}
	if results[2].Available() || results[2].Detail() != "command not configured" {
		t.Fatalf("blank command: %+v", results[2])
	}
}

func TestRequirementsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Fonts.FontconfigBinary = "fc-list-custom"

	reqs := Requirements(&cfg)
	if len(reqs) != 1 || reqs[0].Command != "fc-list-custom" || !reqs[0].Optional {
		t.Fatalf("unexpected requirements %+v", reqs)
	}
}
