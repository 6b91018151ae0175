// Package adapter provides a thin CLI rendering layer over the rate core.
// It handles input/output only - parsing and conversion live in core/rate.
package adapter

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"datarate/core/rate"
	"datarate/core/units"
	"datarate/internal/logging"
)

// CLIAdapter parses a rate expression and renders the period table
type CLIAdapter struct {
	output io.Writer
}

// NewCLIAdapter creates a new CLI adapter writing to stdout
func NewCLIAdapter() *CLIAdapter {
	return &CLIAdapter{output: os.Stdout}
}

// SetOutput sets the output writer
func (a *CLIAdapter) SetOutput(w io.Writer) {
	a.output = w
}

// Run parses the expression and writes the seven-row table
func (a *CLIAdapter) Run(input string) error {
	parsed, err := rate.Parse(input)
	if err != nil {
		return err
	}

	r := rate.New(parsed.Amount, parsed.Unit, parsed.Period)
	logging.Debug("parsed rate expression",
		zap.String("amount", parsed.Amount.String()),
		zap.String("unit", parsed.Unit.String()),
		zap.String("period", parsed.Period.String()),
		zap.String("bytes_per_second", r.BytesPerSecond().String()))

	return a.RenderTable(r)
}

type row struct {
	value  string
	unit   units.ByteUnit
	period units.Period
}

// RenderTable writes one line per period in ascending order of period
// length. Each row is scaled to its best-fit unit and rendered with three
// decimals; the numeric column is right-aligned to the widest row so the
// decimal points line up.
func (a *CLIAdapter) RenderTable(r rate.Rate) error {
	rows := make([]row, len(units.Periods))
	width := 0
	for i, p := range units.Periods {
		value, unit := rate.Scale(r.Over(p))
		text := value.StringFixed(3)
		if len(text) > width {
			width = len(text)
		}
		rows[i] = row{value: text, unit: unit, period: p}
	}

	for _, rw := range rows {
		if _, err := fmt.Fprintf(a.output, "%*s %s / %s\n", width, rw.value, rw.unit, rw.period); err != nil {
			return err
		}
	}
	return nil
}
