package paths

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"deskshell/internal/fileutil"
	"deskshell/internal/logging"
)

// scratchState tracks the scratch temp directory and the shared lock that
// marks it as in use by this process.
type scratchState struct {
	dir  *ResolvedPath
	lock *flock.Flock
}

// SetScratchRoot sets the process-wide scratch root. Once a scratch temp
// directory has been handed out the root is fixed and later calls are ignored.
func (r *Resolver) SetScratchRoot(root string) {
	if r.scratch.dir != nil {
		r.logger.Warn("scratch root already in use; ignoring change",
			slog.String(logging.FieldPath, root),
			slog.String(logging.FieldEventType, "scratch_root_fixed"))
		return
	}
	r.scratchRoot = strings.TrimSpace(root)
}

// ScratchRoot returns the configured scratch root.
func (r *Resolver) ScratchRoot() string {
	return r.scratchRoot
}

// ScratchTempDir returns <scratch root>/tmp, creating it if needed. With no
// usable scratch root, or when the directory cannot be created, defaultPath
// is returned unchanged.
func (r *Resolver) ScratchTempDir(defaultPath string) ResolvedPath {
	fallback := ResolvedPath{Path: defaultPath, Strategy: StrategyCallerDefault}

	if r.scratch.dir != nil {
		if err := fileutil.EnsureDir(r.scratch.dir.Path); err != nil {
			r.logger.Debug("scratch temp dir unavailable", logging.Error(err))
			return fallback
		}
		r.holdScratch()
		return *r.scratch.dir
	}

	if r.scratchRoot == "" || !fileutil.IsDir(r.scratchRoot) {
		return fallback
	}
	dir := filepath.Join(r.scratchRoot, scratchTempName)
	if err := fileutil.EnsureDir(dir); err != nil {
		r.logger.Debug("create scratch temp dir failed", logging.Error(err))
		return fallback
	}

	resolved := ResolvedPath{Path: dir, Strategy: StrategyOverride}
	r.scratch.dir = &resolved
	r.scratch.lock = flock.New(dir + scratchLockSuffix)
	r.holdScratch()
	return resolved
}

// ScratchDir returns the scratch temp directory handed out earlier without
// creating it. It is empty if ScratchTempDir never succeeded.
func (r *Resolver) ScratchDir() ResolvedPath {
	if r.scratch.dir == nil {
		return ResolvedPath{}
	}
	return *r.scratch.dir
}

// CleanUpScratchTempDir removes the scratch temp directory. It does nothing
// when there is no scratch directory, and leaves the directory alone while
// another shell instance holds it.
func (r *Resolver) CleanUpScratchTempDir() {
	temp := r.ScratchTempDir("")
	if temp.Empty() {
		return
	}

	lock := r.scratch.lock
	if err := lock.Unlock(); err != nil {
		r.logger.Debug("release scratch lock failed", logging.Error(err))
	}
	locked, err := lock.TryLock()
	if err != nil || !locked {
		r.logger.Debug("scratch temp dir in use by another instance; skipping cleanup",
			slog.String(logging.FieldPath, temp.Path))
		r.holdScratch()
		return
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Debug("release scratch lock failed", logging.Error(err))
		}
	}()

	if err := fileutil.RemoveIfExists(temp.Path); err != nil {
		r.logger.Warn("remove scratch temp dir failed",
			slog.String(logging.FieldPath, temp.Path),
			slog.String(logging.FieldEventType, "scratch_cleanup"),
			logging.Error(err))
		return
	}
	r.logger.Debug("scratch temp dir removed", slog.String(logging.FieldPath, temp.Path))
}

// Close releases the scratch lock.
func (r *Resolver) Close() error {
	if r.scratch.lock == nil {
		return nil
	}
	return r.scratch.lock.Unlock()
}

// holdScratch takes the shared in-use lock if this process does not hold it.
// Lock failures are logged and otherwise ignored.
func (r *Resolver) holdScratch() {
	lock := r.scratch.lock
	if lock == nil || lock.RLocked() || lock.Locked() {
		return
	}
	if ok, err := lock.TryRLock(); err != nil || !ok {
		r.logger.Debug("scratch shared lock unavailable",
			slog.String(logging.FieldPath, lock.Path()),
			logging.Error(err))
	}
}
