// Package ui renders terminal progress for the CLI.
package ui

import (
	"fmt"
	"io"
	"path"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter draws a bar while generated files are written. It
// satisfies project.Reporter. It tracks a single run and is not safe for
// concurrent use.
type ProgressReporter struct {
	output io.Writer
	bar    *progressbar.ProgressBar
}

// NewProgressReporter creates a reporter that writes to output.
func NewProgressReporter(output io.Writer) *ProgressReporter {
	return &ProgressReporter{output: output}
}

// Begin starts a bar sized for total files.
func (r *ProgressReporter) Begin(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.output),
		progressbar.OptionSetDescription("[Writing]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

// Step advances the bar by one written file.
func (r *ProgressReporter) Step(file string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("[Writing] %s", path.Base(file)))
	_ = r.bar.Add(1)
}

// Finish completes and clears the bar.
func (r *ProgressReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
}
