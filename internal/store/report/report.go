// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     report
// Description: Template method for collecting, analysing and sending reports
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package report generates store reports with a fixed skeleton: collect,
// analyse, format, send. Concrete reports supply the first three steps; the
// send step has a default that writes the report to the generator output.
package report

import (
	"fmt"
	"io"
)

// Steps are the customisable parts of a report
type Steps interface {
	CollectData()
	AnalyzeData()
	FormatReport() string
}

// Sender delivers a finished report. A Steps value that also implements
// Sender replaces the default send step.
type Sender interface {
	Send(report string)
}

// SenderFunc adapts a function to Sender
type SenderFunc func(report string)

// Send implements Sender
func (f SenderFunc) Send(report string) { f(report) }

// Generator runs the report skeleton
type Generator struct {
	Out    io.Writer
	Sender Sender // overrides both the default and a Steps sender
}

// Generate runs collect -> analyze -> format -> send and returns the report
func (g Generator) Generate(s Steps) string {
	s.CollectData()
	s.AnalyzeData()
	report := s.FormatReport()
	g.sender(s).Send(report)
	return report
}

func (g Generator) sender(s Steps) Sender {
	if g.Sender != nil {
		return g.Sender
	}
	if custom, ok := s.(Sender); ok {
		return custom
	}
	return SenderFunc(func(report string) {
		fmt.Fprintf(g.Out, "\n[Відправка звіту]\n%s\n\n", report)
	})
}
