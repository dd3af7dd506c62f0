package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

var (
	// ErrNotDirectory is recorded when a walked node is not a directory
	ErrNotDirectory = errors.New("not a directory")
	// ErrSymlinkCycle is recorded when a directory resolves to one of its ancestors
	ErrSymlinkCycle = errors.New("symlink cycle")
)

// WalkOptions configures the traversal
type WalkOptions struct {
	// ExcludeDirs lists directory base names that are never entered
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root directory only)
	MaxDepth int
}

// WalkResult contains the results of a traversal
type WalkResult struct {
	// Files contains absolute paths of matched files in visit order
	Files []string
	// Errors contains the nodes that were skipped and why
	Errors []error
}

// CompileFullMatch compiles expr so that it must match an entire file name.
// expr is compiled on its own first so an unbalanced group cannot close the
// anchoring group early.
func CompileFullMatch(expr string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", expr, err)
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", expr, err)
	}
	return re, nil
}

type walker struct {
	pattern  *regexp.Regexp
	exclude  map[string]bool
	maxDepth int
	result   *WalkResult
}

// Walk collects every file under root whose base name matches pattern.
// pattern is used as-is; build it with CompileFullMatch for full-match semantics.
func Walk(root string, pattern *regexp.Regexp, opts WalkOptions) *WalkResult {
	result := &WalkResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to resolve root %s: %w", root, err))
		return result
	}

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	w := &walker{
		pattern:  pattern,
		exclude:  excludeMap,
		maxDepth: opts.MaxDepth,
		result:   result,
	}
	w.walkDir(absRoot, 0, nil)

	return result
}

// walkDir lists dir and recurses into subdirectories. ancestors holds the
// directories on the current recursion path, root first.
func (w *walker) walkDir(dir string, depth int, ancestors []os.FileInfo) {
	info, err := os.Stat(dir)
	if err != nil {
		w.skip(fmt.Errorf("error accessing %s: %w", dir, err))
		return
	}
	if !info.IsDir() {
		w.skip(fmt.Errorf("%s: %w", dir, ErrNotDirectory))
		return
	}
	for _, ancestor := range ancestors {
		if os.SameFile(ancestor, info) {
			w.skip(fmt.Errorf("%s: %w", dir, ErrSymlinkCycle))
			return
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.skip(fmt.Errorf("error listing %s: %w", dir, err))
		return
	}

	ancestors = append(ancestors, info)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if isDirEntry(path, entry) {
			if w.exclude[entry.Name()] {
				continue
			}
			if w.maxDepth > 0 && depth+1 >= w.maxDepth {
				continue
			}
			w.walkDir(path, depth+1, ancestors)
			continue
		}

		if w.pattern.MatchString(entry.Name()) {
			w.result.Files = append(w.result.Files, path)
		}
	}
}

func (w *walker) skip(err error) {
	w.result.Errors = append(w.result.Errors, err)
}

// isDirEntry reports whether entry is a directory, following symlinks.
// A dangling link is not a directory.
func isDirEntry(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	target, err := os.Stat(path)
	if err != nil {
		return false
	}
	return target.IsDir()
}
