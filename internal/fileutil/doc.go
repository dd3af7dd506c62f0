// Package fileutil implements the directory traversal step of a check run.
//
// Walk recursively lists a root directory and collects the absolute paths of
// every file whose base name fully matches a compiled pattern. The walk is
// depth-first and pre-order, visiting entries in the order the platform
// listing returns them. No extra sorting is applied.
//
// # Error Tolerance
//
// Traversal never fails. A node that does not exist, is not a directory, or
// cannot be listed contributes no entries and recursion stops there. Such
// skips are collected in WalkResult.Errors so callers can log them at debug
// level.
//
// # Symbolic Links
//
// Links are followed: a link to a directory is recursed into and a link to
// anything else is treated as a file. A directory that resolves to one of its
// own ancestors is not re-entered and is reported as ErrSymlinkCycle.
//
// # Usage
//
//	pattern, err := fileutil.CompileFullMatch(`.*\.md`)
//	if err != nil {
//	    return err
//	}
//	result := fileutil.Walk("/path/to/docs", pattern, fileutil.WalkOptions{
//	    ExcludeDirs: []string{".git"},
//	})
//	for _, file := range result.Files {
//	    fmt.Println(file)
//	}
package fileutil
