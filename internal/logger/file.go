package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/wordcheck/internal/filelock"
	"github.com/harrison/wordcheck/internal/fileutil"
	"github.com/harrison/wordcheck/internal/models"
)

// LatestLogName is the symlink in the log directory that points at the most recent run log
const LatestLogName = "latest.log"

// FileLogger logs run events to a per-run file in a log directory.
// Each run gets a run-YYYYMMDD-HHMMSS-<id>.log file and the latest.log
// symlink is moved to point at it.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir   string
	runID    string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing under logDir at the given level.
// It creates the log directory if it doesn't exist, opens the run log file,
// and updates the latest.log symlink.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.New().String()
	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", ts, runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := updateLatest(logDir, runFile); err != nil {
		file.Close()
		return nil, err
	}

	logger := &FileLogger{
		logDir:   logDir,
		runID:    runID,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
		mu:       sync.Mutex{},
	}

	logger.writeRunLog("=== wordcheck Run Log ===\n")
	logger.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// updateLatest points latest.log at runFile. Concurrent runs sharing logDir
// serialize the swap through a lock file.
func updateLatest(logDir, runFile string) error {
	return filelock.WithLock(filepath.Join(logDir, ".latest.lock"), func() error {
		symlinkPath := filepath.Join(logDir, LatestLogName)
		if _, err := os.Lstat(symlinkPath); err == nil {
			if err := os.Remove(symlinkPath); err != nil {
				return fmt.Errorf("failed to remove old symlink: %w", err)
			}
		}

		if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
			return fmt.Errorf("failed to create symlink: %w", err)
		}
		return nil
	})
}

// RunID returns the identifier written in the run log header
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// RunFile returns the path of this run's log file
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	formatted := fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message)
	fl.writeRunLog(formatted)
}

// LogPhase logs entry into a run phase at INFO level.
func (fl *FileLogger) LogPhase(phase models.Phase) {
	fl.LogInfo(fmt.Sprintf("entering %s phase", phase))
}

// LogWalkSkip logs a directory that traversal skipped at DEBUG level.
// Symlink cycles are logged at WARN.
func (fl *FileLogger) LogWalkSkip(err error) {
	if errors.Is(err, fileutil.ErrSymlinkCycle) {
		fl.LogWarn(fmt.Sprintf("skipped: %v", err))
		return
	}
	fl.LogDebug(fmt.Sprintf("skipped: %v", err))
}

// LogFileSelected logs a file chosen by traversal at TRACE level.
func (fl *FileLogger) LogFileSelected(path string) {
	fl.LogTrace(fmt.Sprintf("selected %s", path))
}

// LogFileError logs a file that could not be scanned at ERROR level.
func (fl *FileLogger) LogFileError(result models.FileResult) {
	fl.LogError(fmt.Sprintf("failed to scan %s: %v", result.Path, result.Err))
}

// LogSummary logs the run summary at INFO level, including every word's
// existence flag and the files that failed.
func (fl *FileLogger) LogSummary(result *models.RunResult) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()

	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s] === RUN SUMMARY ===\n", ts)
	fmt.Fprintf(&b, "[%s] Files scanned:      %d\n", ts, result.FilesTraversed)
	fmt.Fprintf(&b, "[%s] Files with matches: %d\n", ts, result.FilesWithMatches)
	fmt.Fprintf(&b, "[%s] Match records:      %d\n", ts, result.Records)
	fmt.Fprintf(&b, "[%s] Failed files:       %d\n", ts, len(result.FailedFiles))
	for _, failed := range result.FailedFiles {
		fmt.Fprintf(&b, "[%s]   - %s: %v\n", ts, failed.Path, failed.Err)
	}
	for _, w := range result.Words {
		fmt.Fprintf(&b, "[%s] %s: %t\n", ts, w.Word, w.Found)
	}
	fmt.Fprintf(&b, "[%s] Total time:         %s\n", ts, formatDuration(result.Elapsed()))
	fmt.Fprintf(&b, "[%s] Completed at:       %s\n", ts, result.FinishedAt.Format(time.RFC3339))

	fl.writeRunLog(b.String())
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
