package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"deskshell/internal/fileutil"
	"deskshell/internal/platform"
)

type fakeLocator struct {
	path  string
	err   error
	calls int
}

func (f *fakeLocator) Executable() (string, error) {
	f.calls++
	return f.path, f.err
}

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	mkdirs(t, filepath.Dir(path))
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// installTree lays out <root>/install/bin/deskshell and returns the root and
// the executable path.
func installTree(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	exe := filepath.Join(root, "install", "bin", "deskshell")
	touch(t, exe)
	return root, exe
}

func TestExecutablePathMemoized(t *testing.T) {
	_, exe := installTree(t)
	loc := &fakeLocator{path: exe}
	r := New(loc, Options{Platform: platform.Linux}, nil)

	first := r.ExecutablePath()
	second := r.ExecutablePath()
	if first != second || first.Path != exe {
		t.Fatalf("unexpected executable paths %+v / %+v", first, second)
	}
	if loc.calls != 1 {
		t.Fatalf("expected one lookup, got %d", loc.calls)
	}
}

func TestExecutablePathFailureReturnsEmpty(t *testing.T) {
	loc := &fakeLocator{err: errors.New("no /proc")}
	r := New(loc, Options{Platform: platform.Linux}, nil)

	if got := r.ExecutablePath(); !got.Empty() {
		t.Fatalf("expected empty path, got %+v", got)
	}
	if got := r.SupportingFilePath(); !got.Empty() {
		t.Fatalf("expected empty supporting path, got %+v", got)
	}
	if got := r.DocsPath(); !got.Empty() {
		t.Fatalf("expected empty docs path, got %+v", got)
	}
}

func TestSupportingFilePathInstalledLayout(t *testing.T) {
	root, exe := installTree(t)
	r := New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)

	got := r.SupportingFilePath()
	if got.Path != filepath.Join(root, "install") || got.Strategy != StrategyInstalled {
		t.Fatalf("unexpected supporting path %+v", got)
	}
}

func TestSupportingFilePathBundleLayout(t *testing.T) {
	root := t.TempDir()
	contents := filepath.Join(root, "DeskShell.app", "Contents")
	exe := filepath.Join(contents, "MacOS", "deskshell")
	touch(t, exe)
	touch(t, filepath.Join(contents, "Info.plist"))

	mac := New(&fakeLocator{path: exe}, Options{Platform: platform.MacOS}, nil)
	if got := mac.SupportingFilePath(); got.Path != filepath.Join(contents, "Resources") || got.Strategy != StrategyBundle {
		t.Fatalf("expected bundle resources, got %+v", got)
	}

	linux := New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)
	if got := linux.SupportingFilePath(); got.Path != contents || got.Strategy != StrategyInstalled {
		t.Fatalf("bundle descriptor must be ignored off macOS, got %+v", got)
	}
}

func TestResourcesPathPrefersScriptsSibling(t *testing.T) {
	root, exe := installTree(t)
	scripts := filepath.Join(root, "checkout", "desktop")
	mkdirs(t, filepath.Join(scripts, "resources"), filepath.Join(root, "install", "resources"))

	r := New(&fakeLocator{path: exe}, Options{Platform: platform.Linux, ScriptsDir: scripts}, nil)
	got := r.ResourcesPath()
	if got.Path != filepath.Join(scripts, "resources") || got.Strategy != StrategyDeveloper {
		t.Fatalf("expected developer resources, got %+v", got)
	}
}

func TestResourcesPathFallsBackToSupportingFiles(t *testing.T) {
	root, exe := installTree(t)
	mkdirs(t, filepath.Join(root, "install", "resources"))

	r := New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)
	got := r.ResourcesPath()
	if got.Path != filepath.Join(root, "install", "resources") || got.Strategy != StrategyInstalled {
		t.Fatalf("expected installed resources, got %+v", got)
	}
	if scripts := r.ScriptsPath(); scripts.Path != filepath.Join(root, "install", "bin") {
		t.Fatalf("scripts path should default to the executable dir, got %+v", scripts)
	}
}

func TestResourcesPathMemoizedDespiteFilesystemChanges(t *testing.T) {
	root, exe := installTree(t)
	r := New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)

	first := r.ResourcesPath()
	mkdirs(t, filepath.Join(root, "install", "bin", "resources"))
	if second := r.ResourcesPath(); second != first {
		t.Fatalf("memoized path changed: %+v -> %+v", first, second)
	}
}

func TestDocsPathPriority(t *testing.T) {
	root, exe := installTree(t)
	install := filepath.Join(root, "install")

	r := New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)
	if got := r.DocsPath(); got.Path != filepath.Join(root, "gwt", "www", "docs") {
		t.Fatalf("expected last candidate when nothing exists, got %+v", got)
	}

	mkdirs(t, filepath.Join(root, "gwt", "www", "docs"))
	r = New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)
	if got := r.DocsPath(); got.Path != filepath.Join(root, "gwt", "www", "docs") || got.Strategy != StrategyDeveloper {
		t.Fatalf("expected developer docs, got %+v", got)
	}

	mkdirs(t, filepath.Join(install, "www", "docs"))
	r = New(&fakeLocator{path: exe}, Options{Platform: platform.Linux}, nil)
	if got := r.DocsPath(); got.Path != filepath.Join(install, "www", "docs") || got.Strategy != StrategyInstalled {
		t.Fatalf("expected installed docs, got %+v", got)
	}
}

func TestDocsPathBundleTraversalDepth(t *testing.T) {
	root := t.TempDir()
	// Five hops up from Resources is root.
	contents := filepath.Join(root, "a", "b", "DeskShell.app", "Contents")
	exe := filepath.Join(contents, "MacOS", "deskshell")
	touch(t, exe)
	touch(t, filepath.Join(contents, "Info.plist"))
	resources := filepath.Join(contents, "Resources")

	r := New(&fakeLocator{path: exe}, Options{Platform: platform.MacOS, DocsBundleDepth: 3}, nil)
	want := filepath.Join(resources, "..", "..", "..", "gwt", "www", "docs")
	if got := r.DocsPath(); got.Path != want {
		t.Fatalf("DocsPath = %q, want %q", got.Path, want)
	}

	r = New(&fakeLocator{path: exe}, Options{Platform: platform.MacOS}, nil)
	want = filepath.Join(resources, "..", "..", "..", "..", "..", "gwt", "www", "docs")
	if got := r.DocsPath(); got.Path != want {
		t.Fatalf("default depth: DocsPath = %q, want %q", got.Path, want)
	}
}

func TestHelperPathsWindowsOnly(t *testing.T) {
	root := t.TempDir()
	installed := filepath.Join(root, "bin")
	r := New(&fakeLocator{path: filepath.Join(installed, "deskshell.exe")}, Options{Platform: platform.Windows}, nil)
	if got := r.URLOpenerPath(); got.Path != filepath.Join(installed, "urlopener.exe") {
		t.Fatalf("URLOpenerPath = %+v", got)
	}

	dev := filepath.Join(root, "build", "desktop")
	r = New(&fakeLocator{}, Options{Platform: platform.Windows, ScriptsDir: dev}, nil)
	if got := r.InverseSearchPath(); got.Path != filepath.Join(dev, "synctex", "rsinverse", "rsinverse.exe") || got.Strategy != StrategyDeveloper {
		t.Fatalf("InverseSearchPath = %+v", got)
	}

	r = New(&fakeLocator{}, Options{Platform: platform.Linux, ScriptsDir: dev}, nil)
	if got := r.URLOpenerPath(); !got.Empty() {
		t.Fatalf("expected no helper off Windows, got %+v", got)
	}
}

func TestScratchTempDirWithoutRootReturnsDefault(t *testing.T) {
	r := New(&fakeLocator{}, Options{Platform: platform.Linux}, nil)
	if got := r.ScratchTempDir("/var/tmp/fallback"); got.Path != "/var/tmp/fallback" || got.Strategy != StrategyCallerDefault {
		t.Fatalf("expected caller default, got %+v", got)
	}

	r.SetScratchRoot(filepath.Join(t.TempDir(), "missing"))
	if got := r.ScratchTempDir("fallback"); got.Path != "fallback" {
		t.Fatalf("missing root must return default, got %+v", got)
	}
}

func TestScratchTempDirCreatesTmp(t *testing.T) {
	root := t.TempDir()
	r := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)
	t.Cleanup(func() { _ = r.Close() })

	got := r.ScratchTempDir("fallback")
	want := filepath.Join(root, "tmp")
	if got.Path != want || got.Strategy != StrategyOverride {
		t.Fatalf("ScratchTempDir = %+v, want %s", got, want)
	}
	if !fileutil.IsDir(want) {
		t.Fatal("expected tmp directory to be created")
	}
	if again := r.ScratchTempDir("fallback"); again != got {
		t.Fatalf("expected memoized scratch dir, got %+v", again)
	}
}

func TestScratchTempDirFallsBackWhenTmpIsAFile(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "tmp"))
	r := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)

	if got := r.ScratchTempDir("fallback"); got.Path != "fallback" {
		t.Fatalf("expected fallback when tmp cannot be created, got %+v", got)
	}
}

func TestCleanUpScratchTempDir(t *testing.T) {
	root := t.TempDir()
	r := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)
	t.Cleanup(func() { _ = r.Close() })

	dir := r.ScratchTempDir("").Path
	touch(t, filepath.Join(dir, "session", "file.txt"))

	r.CleanUpScratchTempDir()
	if fileutil.Exists(dir) {
		t.Fatal("expected scratch temp dir to be removed")
	}
	r.CleanUpScratchTempDir()
	if fileutil.Exists(dir) {
		t.Fatal("second cleanup must leave nothing behind")
	}

	noRoot := New(&fakeLocator{}, Options{Platform: platform.Linux}, nil)
	noRoot.CleanUpScratchTempDir()
}

func TestScratchDirDoesNotRecreateAfterCleanup(t *testing.T) {
	root := t.TempDir()
	r := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)
	t.Cleanup(func() { _ = r.Close() })

	if got := r.ScratchDir(); !got.Empty() {
		t.Fatalf("expected no scratch dir before first use, got %+v", got)
	}

	dir := r.ScratchTempDir("").Path
	r.CleanUpScratchTempDir()
	if got := r.ScratchDir(); got.Path != dir || got.Strategy != StrategyOverride {
		t.Fatalf("ScratchDir = %+v, want %s", got, dir)
	}
	if fileutil.Exists(dir) {
		t.Fatal("ScratchDir must not recreate the removed directory")
	}
}

func TestScratchTempDirUnderReadOnlyRoot(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "tmp")
	mkdirs(t, dir)
	if err := os.Chmod(root, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	r := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)
	t.Cleanup(func() { _ = r.Close() })

	if got := r.ScratchTempDir("fallback"); got.Path != dir {
		t.Fatalf("expected existing tmp under read-only root, got %+v", got)
	}
}

func TestCleanUpSkipsWhileAnotherInstanceHoldsScratch(t *testing.T) {
	root := t.TempDir()
	other := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)
	t.Cleanup(func() { _ = other.Close() })
	self := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: root}, nil)
	t.Cleanup(func() { _ = self.Close() })

	dir := other.ScratchTempDir("").Path
	marker := filepath.Join(dir, "in-use")
	touch(t, marker)

	self.CleanUpScratchTempDir()
	if !fileutil.Exists(marker) {
		t.Fatal("cleanup must not delete a directory another instance holds")
	}

	if err := other.Close(); err != nil {
		t.Fatal(err)
	}
	self.CleanUpScratchTempDir()
	if fileutil.Exists(dir) {
		t.Fatal("expected cleanup once the other instance released the directory")
	}
}

func TestSetScratchRootFixedAfterUse(t *testing.T) {
	first := t.TempDir()
	r := New(&fakeLocator{}, Options{Platform: platform.Linux, ScratchRoot: first}, nil)
	t.Cleanup(func() { _ = r.Close() })

	r.ScratchTempDir("")
	r.SetScratchRoot(t.TempDir())
	if r.ScratchRoot() != first {
		t.Fatalf("scratch root changed after use: %s", r.ScratchRoot())
	}
}

func TestStrategyString(t *testing.T) {
	for s, want := range map[Strategy]string{
		StrategyNone:          "unresolved",
		StrategyOverride:      "override",
		StrategyDeveloper:     "developer",
		StrategyInstalled:     "installed",
		StrategyBundle:        "bundle",
		StrategyCallerDefault: "caller-default",
	} {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
