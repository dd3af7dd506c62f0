package models

import (
	"fmt"
	"time"
)

// Phase identifies one step of a check run
type Phase string

// Run phases, entered exactly once each and in this order
const (
	PhaseInit      Phase = "init"
	PhaseTraverse  Phase = "traverse"
	PhaseScan      Phase = "scan"
	PhaseSummarize Phase = "summarize"
)

// Phases lists every phase in execution order
var Phases = []Phase{PhaseInit, PhaseTraverse, PhaseScan, PhaseSummarize}

// MatchRecord is one occurrence of a target word on a line
type MatchRecord struct {
	Word string // Target word that matched
	Line int    // 1-based line number
	Text string // Raw line text without its terminator
}

// String renders the record as "[word](line) text"
func (r MatchRecord) String() string {
	return fmt.Sprintf("[%s](%d) %s", r.Word, r.Line, r.Text)
}

// FileResult is the outcome of scanning a single file.
// When Err is set the file contributed no records.
type FileResult struct {
	Path    string
	Records []MatchRecord
	Err     error
}

// Failed reports whether the file could not be scanned
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// WordPresence is the final existence flag for one target word
type WordPresence struct {
	Word  string
	Found bool
}

// RunResult summarizes a completed check run
type RunResult struct {
	FilesTraversed   int            // Files selected by traversal
	FilesWithMatches int            // Files that produced at least one record
	Records          int            // Total records printed
	FailedFiles      []FileResult   // Files that could not be scanned
	Words            []WordPresence // Existence flags in target word order
	StartedAt        time.Time
	FinishedAt       time.Time
}

// Elapsed returns the wall-clock time between start and finish
func (r *RunResult) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Found reports whether word was seen during the run
func (r *RunResult) Found(word string) bool {
	for _, w := range r.Words {
		if w.Word == word {
			return w.Found
		}
	}
	return false
}
