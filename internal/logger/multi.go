package logger

import "github.com/harrison/wordcheck/internal/models"

// RunLogger is the set of run events every logger in this package records
type RunLogger interface {
	LogPhase(phase models.Phase)
	LogWalkSkip(err error)
	LogFileSelected(path string)
	LogFileError(result models.FileResult)
	LogSummary(result *models.RunResult)
}

// MultiLogger forwards every event to each wrapped logger in order
type MultiLogger struct {
	loggers []RunLogger
}

// NewMultiLogger creates a MultiLogger. Nil loggers are dropped.
func NewMultiLogger(loggers ...RunLogger) *MultiLogger {
	ml := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			ml.loggers = append(ml.loggers, l)
		}
	}
	return ml
}

// LogPhase forwards to each logger.
func (ml *MultiLogger) LogPhase(phase models.Phase) {
	for _, l := range ml.loggers {
		l.LogPhase(phase)
	}
}

// LogWalkSkip forwards to each logger.
func (ml *MultiLogger) LogWalkSkip(err error) {
	for _, l := range ml.loggers {
		l.LogWalkSkip(err)
	}
}

// LogFileSelected forwards to each logger.
func (ml *MultiLogger) LogFileSelected(path string) {
	for _, l := range ml.loggers {
		l.LogFileSelected(path)
	}
}

// LogFileError forwards to each logger.
func (ml *MultiLogger) LogFileError(result models.FileResult) {
	for _, l := range ml.loggers {
		l.LogFileError(result)
	}
}

// LogSummary forwards to each logger.
func (ml *MultiLogger) LogSummary(result *models.RunResult) {
	for _, l := range ml.loggers {
		l.LogSummary(result)
	}
}
