// Package display renders the wordcheck report on stdout.
//
// The report is the program's primary output and its plain form is byte
// stable, so it can be piped and diffed:
//
//	1715000000000
//	** init **
//	** start **
//	** regexp **
//
//	1/2[/data/a.md]
//	[This](1) This is a Check
//	[Check](1) This is a Check
//	** result **
//	This: true
//	Check: true
//	Just: false
//	1715000000042
//	42msec
//
// Use a Report for one run:
//
//	report := display.NewReport(os.Stdout, display.ShouldColor(os.Stdout, true))
//	report.Timestamp(start)
//	report.Marker(display.MarkerInit)
//	...
//	report.Elapsed(end.Sub(start))
//
// # Colors
//
// When the writer is a terminal and color is enabled, the file header is cyan,
// the word tag of each record is yellow, and summary flags are green (true)
// or red (false). Colors come from github.com/fatih/color; terminal detection
// uses github.com/mattn/go-isatty.
//
// All functions accept io.Writer interfaces for testability.
package display
