// Package report prints one-shot descriptions of the process environment
// through the sink: operating system, runtime, memory, user, host and
// network sections, each as one info line. It is meant to run once at
// startup so the log stream opens with enough context to interpret the
// instrumentation lines that follow.
//
// # Usage
//
//	report.NewReporter(report.FromEnv(), s).Report()
package report
