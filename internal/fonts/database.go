package fonts

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"deskshell/internal/logging"
)

// fontconfig spacing values; see FC_MONO and FC_CHARCELL.
const (
	spacingMono     = 100
	spacingCharcell = 110
)

// fcListFormat prints one face per line: comma-separated family names, a
// tab, and the numeric spacing (empty when the face does not declare one).
const fcListFormat = "%{family}\t%{spacing}\n"

type familyInfo struct {
	fixedWidth bool
}

// familyIndex maps case-folded family names to what is known about them.
type familyIndex struct {
	fold     cases.Caser
	families map[string]familyInfo
}

func newFamilyIndex() *familyIndex {
	return &familyIndex{fold: cases.Fold(), families: make(map[string]familyInfo)}
}

func (idx *familyIndex) key(family string) string {
	return idx.fold.String(strings.TrimSpace(family))
}

func (idx *familyIndex) add(family string, fixedWidth bool) {
	k := idx.key(family)
	if k == "" {
		return
	}
	info := idx.families[k]
	info.fixedWidth = info.fixedWidth || fixedWidth
	idx.families[k] = info
}

func (idx *familyIndex) lookup(family string) (familyInfo, bool) {
	info, ok := idx.families[idx.key(family)]
	return info, ok
}

// StaticDatabase is a fixed set of families, for tests and hosts without
// fontconfig.
type StaticDatabase struct {
	index *familyIndex
}

// NewStaticDatabase returns a database containing the given proportional and
// monospaced families.
func NewStaticDatabase(proportional, fixedWidth []string) *StaticDatabase {
	idx := newFamilyIndex()
	for _, family := range proportional {
		idx.add(family, false)
	}
	for _, family := range fixedWidth {
		idx.add(family, true)
	}
	return &StaticDatabase{index: idx}
}

func (d *StaticDatabase) ExactMatch(family string) bool {
	_, ok := d.index.lookup(family)
	return ok
}

func (d *StaticDatabase) FixedWidth(family string) bool {
	info, ok := d.index.lookup(family)
	return ok && info.fixedWidth
}

// Runner executes an external command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// FontconfigDatabase answers lookups from fc-list output. The listing runs
// once, on the first lookup.
type FontconfigDatabase struct {
	binary  string
	timeout time.Duration
	run     Runner
	logger  *slog.Logger

	index *familyIndex
}

// NewFontconfigDatabase returns a database backed by the fc-list binary.
// A nil run uses os/exec.
func NewFontconfigDatabase(binary string, timeout time.Duration, run Runner, logger *slog.Logger) *FontconfigDatabase {
	if run == nil {
		run = execRunner
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FontconfigDatabase{
		binary:  binary,
		timeout: timeout,
		run:     run,
		logger:  logging.NewComponentLogger(logger, "fontconfig"),
	}
}

func (d *FontconfigDatabase) ExactMatch(family string) bool {
	_, ok := d.load().lookup(family)
	return ok
}

func (d *FontconfigDatabase) FixedWidth(family string) bool {
	info, ok := d.load().lookup(family)
	return ok && info.fixedWidth
}

// Families returns the number of distinct families found.
func (d *FontconfigDatabase) Families() int {
	return len(d.load().families)
}

func (d *FontconfigDatabase) load() *familyIndex {
	if d.index != nil {
		return d.index
	}
	d.index = newFamilyIndex()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	out, err := d.run(ctx, d.binary, "--format", fcListFormat)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			d.logger.Debug("fontconfig not available; using generic fonts", slog.String("binary", d.binary))
		} else {
			d.logger.Warn("font listing failed; using generic fonts",
				slog.String("binary", d.binary),
				slog.String(logging.FieldEventType, "font_list_failed"),
				logging.Error(err))
		}
		return d.index
	}
	parseFCList(d.index, out)
	d.logger.Debug("fonts listed", slog.Int("families", len(d.index.families)))
	return d.index
}

func parseFCList(idx *familyIndex, out []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		names, spacingText, _ := strings.Cut(line, "\t")
		fixedWidth := false
		if spacing, err := strconv.Atoi(strings.TrimSpace(spacingText)); err == nil {
			fixedWidth = spacing == spacingMono || spacing == spacingCharcell
		}
		for _, name := range splitFamilies(names) {
			idx.add(name, fixedWidth)
		}
	}
}

// splitFamilies splits fontconfig's comma-separated family list, honouring
// backslash-escaped commas.
func splitFamilies(value string) []string {
	var (
		names   []string
		current strings.Builder
		escaped bool
	)
	for _, r := range value {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			names = append(names, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	names = append(names, current.String())
	return names
}
