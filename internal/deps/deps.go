// Package deps reports whether the external programs deskshell runs are
// installed.
package deps

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"deskshell/internal/config"
)

// Requirement is an external program.
type Requirement struct {
	Name        string
	Command     string
	Description string
	// Optional programs degrade a feature when missing instead of breaking it.
	Optional bool
}

// Status is the lookup result for one Requirement.
type Status struct {
	Requirement
	Path string
	Err  error
}

// Available reports whether the program was found.
func (s Status) Available() bool {
	return s.Err == nil
}

// Detail describes the outcome for display.
func (s Status) Detail() string {
	if s.Err == nil {
		return s.Path
	}
	return s.Err.Error()
}

// Requirements lists the programs cfg refers to.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{{
		Name:        "fontconfig",
		Command:     cfg.Fonts.FontconfigBinary,
		Description: "installed font discovery; generic fonts are used without it",
		Optional:    true,
	}}
}

// Check looks up each requirement on PATH.
func Check(requirements ...Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		cmd := strings.TrimSpace(req.Command)
		if cmd == "" {
			status.Err = errors.New("command not configured")
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Err = fmt.Errorf("binary %q not found", cmd)
		}
		status.Path = path
		results = append(results, status)
	}
	return results
}
