package paths

import (
	"log/slog"
	"path/filepath"
	"strings"

	"deskshell/internal/fileutil"
	"deskshell/internal/logging"
	"deskshell/internal/platform"
)

const (
	// DefaultDocsBundleDepth is the number of parent hops from a bundle's
	// Resources directory back to the build tree that holds gwt/www/docs.
	DefaultDocsBundleDepth = 5

	bundleDescriptor  = "Info.plist"
	bundleResources   = "Resources"
	resourcesDir      = "resources"
	developerDesktop  = "desktop"
	scratchTempName   = "tmp"
	scratchLockSuffix = ".lock"
)

// ExecutableLocator reports where the running binary lives.
type ExecutableLocator interface {
	Executable() (string, error)
}

// Options configures a Resolver.
type Options struct {
	Platform platform.Platform
	// ScriptsDir overrides the scripts location; empty means the
	// executable's directory.
	ScriptsDir string
	// ScratchRoot is the process-wide scratch root; empty disables the
	// scratch temp directory.
	ScratchRoot string
	// DocsBundleDepth defaults to DefaultDocsBundleDepth.
	DocsBundleDepth int
}

// Resolver resolves and memoizes named locations. It is not safe for
// concurrent use.
type Resolver struct {
	platform    platform.Platform
	locator     ExecutableLocator
	logger      *slog.Logger
	docsDepth   int
	scratchRoot string

	executable *ResolvedPath
	supporting *ResolvedPath
	scripts    *ResolvedPath
	resources  *ResolvedPath
	docs       *ResolvedPath

	scratch scratchState

	executableErrLogged bool
}

// New returns a Resolver that finds the executable through locator.
func New(locator ExecutableLocator, opts Options, logger *slog.Logger) *Resolver {
	depth := opts.DocsBundleDepth
	if depth <= 0 {
		depth = DefaultDocsBundleDepth
	}
	r := &Resolver{
		platform:    opts.Platform,
		locator:     locator,
		logger:      logging.NewComponentLogger(logger, "paths"),
		docsDepth:   depth,
		scratchRoot: strings.TrimSpace(opts.ScratchRoot),
	}
	if dir := strings.TrimSpace(opts.ScriptsDir); dir != "" {
		r.SetScriptsPath(dir)
	}
	return r
}

// ExecutablePath returns the running binary's location. A lookup failure is
// logged the first time and yields an empty path; it is retried on the next
// call because nothing was memoized.
func (r *Resolver) ExecutablePath() ResolvedPath {
	if r.executable != nil {
		return *r.executable
	}
	if r.locator == nil {
		return ResolvedPath{}
	}
	path, err := r.locator.Executable()
	if err != nil || path == "" {
		if !r.executableErrLogged {
			r.executableErrLogged = true
			r.logger.Error("executable path lookup failed",
				slog.String(logging.FieldEventType, "executable_lookup"),
				logging.Error(err))
		}
		return ResolvedPath{}
	}
	return r.remember(&r.executable, ResolvedPath{Path: filepath.Clean(path), Strategy: StrategyInstalled})
}

// SupportingFilePath returns the root of the supporting files: the parent of
// the executable's directory, or the bundle's Resources directory when that
// parent holds an Info.plist on bundle-layout platforms.
func (r *Resolver) SupportingFilePath() ResolvedPath {
	if r.supporting != nil {
		return *r.supporting
	}
	exe := r.ExecutablePath()
	if exe.Empty() {
		return ResolvedPath{}
	}
	root := filepath.Dir(filepath.Dir(exe.Path))
	resolved := ResolvedPath{Path: root, Strategy: StrategyInstalled}
	if r.platform.BundleLayout() && fileutil.Exists(filepath.Join(root, bundleDescriptor)) {
		resolved = ResolvedPath{Path: filepath.Join(root, bundleResources), Strategy: StrategyBundle}
	}
	return r.remember(&r.supporting, resolved)
}

// SetScriptsPath pins the scripts location.
func (r *Resolver) SetScriptsPath(path string) {
	resolved := ResolvedPath{Path: filepath.Clean(path), Strategy: StrategyOverride}
	r.scripts = &resolved
}

// ScriptsPath returns the pinned scripts location or the executable's directory.
func (r *Resolver) ScriptsPath() ResolvedPath {
	if r.scripts != nil {
		return *r.scripts
	}
	exe := r.ExecutablePath()
	if exe.Empty() {
		return ResolvedPath{}
	}
	return r.remember(&r.scripts, ResolvedPath{Path: filepath.Dir(exe.Path), Strategy: StrategyInstalled})
}

// ResourcesPath prefers a resources directory beside the scripts (developer
// checkout) over the one under the supporting files (installed layout).
func (r *Resolver) ResourcesPath() ResolvedPath {
	if r.resources != nil {
		return *r.resources
	}
	if scripts := r.ScriptsPath(); !scripts.Empty() {
		candidate := filepath.Join(scripts.Path, resourcesDir)
		if fileutil.Exists(candidate) {
			return r.remember(&r.resources, ResolvedPath{Path: candidate, Strategy: StrategyDeveloper})
		}
	}
	supporting := r.SupportingFilePath()
	if supporting.Empty() {
		return ResolvedPath{}
	}
	return r.remember(&r.resources, ResolvedPath{
		Path:     filepath.Join(supporting.Path, resourcesDir),
		Strategy: supporting.Strategy,
	})
}

// DocsPath returns the first existing documentation root among
// <supporting>/www/docs, <supporting>/../gwt/www/docs and, for bundles, the
// build-tree docs DocsBundleDepth levels up. If none exists the last
// candidate is returned anyway.
func (r *Resolver) DocsPath() ResolvedPath {
	if r.docs != nil {
		return *r.docs
	}
	supporting := r.SupportingFilePath()
	if supporting.Empty() {
		return ResolvedPath{}
	}

	candidates := []ResolvedPath{
		{Path: filepath.Join(supporting.Path, "www", "docs"), Strategy: supporting.Strategy},
		{Path: filepath.Join(supporting.Path, "..", "gwt", "www", "docs"), Strategy: StrategyDeveloper},
	}
	if r.platform.BundleLayout() {
		hops := make([]string, 0, r.docsDepth+4)
		hops = append(hops, supporting.Path)
		for i := 0; i < r.docsDepth; i++ {
			hops = append(hops, "..")
		}
		hops = append(hops, "gwt", "www", "docs")
		candidates = append(candidates, ResolvedPath{Path: filepath.Join(hops...), Strategy: StrategyDeveloper})
	}

	chosen := candidates[len(candidates)-1]
	for _, candidate := range candidates {
		if fileutil.Exists(candidate.Path) {
			chosen = candidate
			break
		}
	}
	if !fileutil.Exists(chosen.Path) {
		r.logger.Debug("documentation not found; using last candidate", slog.String(logging.FieldPath, chosen.Path))
	}
	return r.remember(&r.docs, chosen)
}

// URLOpenerPath locates the Windows URL opener helper.
func (r *Resolver) URLOpenerPath() ResolvedPath {
	return r.helperPath("urlopener", "urlopener")
}

// InverseSearchPath locates the Windows SyncTeX inverse-search helper.
func (r *Resolver) InverseSearchPath() ResolvedPath {
	return r.helperPath("rsinverse", filepath.Join("synctex", "rsinverse"))
}

// helperPath returns <scripts>/<name>.exe, or <scripts>/<devSubdir>/<name>.exe
// when the scripts directory is a developer checkout's desktop directory.
// Helpers only ship on Windows.
func (r *Resolver) helperPath(name, devSubdir string) ResolvedPath {
	if r.platform != platform.Windows {
		return ResolvedPath{}
	}
	scripts := r.ScriptsPath()
	if scripts.Empty() {
		return ResolvedPath{}
	}
	parent, strategy := scripts.Path, scripts.Strategy
	if filepath.Base(parent) == developerDesktop {
		parent, strategy = filepath.Join(parent, devSubdir), StrategyDeveloper
	}
	return ResolvedPath{Path: filepath.Join(parent, name+r.platform.ExecutableSuffix()), Strategy: strategy}
}

func (r *Resolver) remember(slot **ResolvedPath, resolved ResolvedPath) ResolvedPath {
	*slot = &resolved
	r.logger.Debug("path resolved",
		slog.String(logging.FieldPath, resolved.Path),
		slog.String("strategy", resolved.Strategy.String()))
	return resolved
}
