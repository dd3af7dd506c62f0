// Package checker runs a word check over a directory tree: it walks the
// tree, scans every selected file, and writes the report as it goes.
package checker

import (
	"io"
	"os"
	"time"

	"github.com/harrison/wordcheck/internal/display"
	"github.com/harrison/wordcheck/internal/fileutil"
	"github.com/harrison/wordcheck/internal/models"
	"github.com/harrison/wordcheck/internal/scanner"
	"github.com/harrison/wordcheck/internal/words"
)

// Logger records run events on the diagnostic stream.
type Logger interface {
	LogPhase(phase models.Phase)
	LogWalkSkip(err error)
	LogFileSelected(path string)
	LogFileError(result models.FileResult)
	LogSummary(result *models.RunResult)
}

// Options configures a Checker. Zero values select defaults.
type Options struct {
	// Out receives the report. Defaults to os.Stdout.
	Out io.Writer

	// Logger is optional and can be nil.
	Logger Logger

	// Words overrides the target word list. Defaults to words.TargetWords.
	Words []string

	// Walk is passed to fileutil.Walk.
	Walk fileutil.WalkOptions

	// MaxLineBytes is passed to scanner.New.
	MaxLineBytes int

	// Color enables report colors.
	Color bool

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// Checker coordinates the init, traverse, scan and summarize phases of a run.
type Checker struct {
	opts   Options
	report *display.Report
}

// New creates a Checker.
func New(opts Options) *Checker {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Words == nil {
		opts.Words = words.TargetWords
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Checker{
		opts:   opts,
		report: display.NewReport(opts.Out, opts.Color),
	}
}

// run holds the state of a single Run call.
type run struct {
	set     *words.Set
	scanner *scanner.Scanner
	files   []string
	result  *models.RunResult
}

// Run checks every file under root whose base name fully matches pattern.
// Per-file failures are logged and skipped. An invalid pattern is returned
// as an error after the start marker has been written.
func (c *Checker) Run(root, pattern string) (*models.RunResult, error) {
	r := &run{result: &models.RunResult{}}

	r.result.StartedAt = c.opts.Clock()
	c.report.Timestamp(r.result.StartedAt)

	c.initPhase(r)

	if err := c.traversePhase(r, root, pattern); err != nil {
		return nil, err
	}

	c.scanPhase(r)
	c.summarizePhase(r)

	return r.result, nil
}

func (c *Checker) initPhase(r *run) {
	c.report.Marker(display.MarkerInit)
	c.logPhase(models.PhaseInit)

	r.set = words.NewSet(c.opts.Words)
	r.scanner = scanner.New(r.set, c.opts.MaxLineBytes)
}

func (c *Checker) traversePhase(r *run, root, pattern string) error {
	c.report.Marker(display.MarkerStart)
	c.logPhase(models.PhaseTraverse)

	re, err := fileutil.CompileFullMatch(pattern)
	if err != nil {
		return err
	}

	walked := fileutil.Walk(root, re, c.opts.Walk)
	if c.opts.Logger != nil {
		for _, skipErr := range walked.Errors {
			c.opts.Logger.LogWalkSkip(skipErr)
		}
		for _, path := range walked.Files {
			c.opts.Logger.LogFileSelected(path)
		}
	}

	r.files = walked.Files
	r.result.FilesTraversed = len(walked.Files)
	return nil
}

func (c *Checker) scanPhase(r *run) {
	c.report.Marker(display.MarkerRegexp)
	c.logPhase(models.PhaseScan)

	total := len(r.files)
	for i, path := range r.files {
		fileResult := r.scanner.ScanFile(path)
		if fileResult.Failed() {
			r.result.FailedFiles = append(r.result.FailedFiles, fileResult)
			if c.opts.Logger != nil {
				c.opts.Logger.LogFileError(fileResult)
			}
			continue
		}
		if len(fileResult.Records) == 0 {
			continue
		}

		r.result.FilesWithMatches++
		r.result.Records += len(fileResult.Records)
		c.report.FileBlock(i+1, total, path, fileResult.Records)
	}
}

func (c *Checker) summarizePhase(r *run) {
	c.report.Marker(display.MarkerResult)
	c.logPhase(models.PhaseSummarize)

	r.result.Words = r.set.Presence()
	c.report.Words(r.result.Words)

	r.result.FinishedAt = c.opts.Clock()
	c.report.Timestamp(r.result.FinishedAt)
	c.report.Elapsed(r.result.Elapsed())

	if c.opts.Logger != nil {
		c.opts.Logger.LogSummary(r.result)
	}
}

func (c *Checker) logPhase(phase models.Phase) {
	if c.opts.Logger != nil {
		c.opts.Logger.LogPhase(phase)
	}
}
