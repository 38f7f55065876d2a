// Package export writes the challenge point table of a chart.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/cubelife/internal/lifetime"
	"github.com/san-kum/cubelife/internal/plot"
)

var ErrUnknownFormat = errors.New("export: unknown table format")

type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Row is one annotated challenge point.
type Row struct {
	Challenge float64 `json:"challenge"`
	Epochs    float64 `json:"epochs"`
	Rounded   string  `json:"rounded"`
	Days      float64 `json:"days"`
}

type Calibration struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

type Document struct {
	Calibration  Calibration `json:"calibration"`
	EpochsPerDay float64     `json:"epochs_per_day"`
	Points       []Row       `json:"points"`
}

func Rows(c *plot.Chart) []Row {
	rows := make([]Row, len(c.Points))
	for i, p := range c.Points {
		rows[i] = Row{Challenge: p.X, Epochs: p.Y, Rounded: p.Label, Days: p.Secondary}
	}
	return rows
}

// Write dispatches to the writer for f.
func Write(w io.Writer, f Format, m lifetime.LinearModel, c *plot.Chart) error {
	switch f {
	case FormatText:
		return WriteText(w, c)
	case FormatCSV:
		return WriteCSV(w, Rows(c))
	case FormatJSON:
		return WriteJSON(w, m, c)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"challenge", "epochs", "rounded", "days"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatFloat(r.Challenge, 'f', -1, 64),
			strconv.FormatFloat(r.Epochs, 'f', 6, 64),
			r.Rounded,
			strconv.FormatFloat(r.Days, 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, m lifetime.LinearModel, c *plot.Chart) error {
	x1, y1, x2, y2 := m.Calibration()
	doc := Document{
		Calibration: Calibration{
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Slope:     m.Slope(),
			Intercept: m.Intercept(),
		},
		EpochsPerDay: c.Units.PerUnit,
		Points:       Rows(c),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func WriteText(w io.Writer, c *plot.Chart) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CHALLENGE\t%s\tROUNDED\t%s\n", strings.ToUpper(c.Units.PrimaryName), strings.ToUpper(c.Units.SecondaryName))

	for _, p := range c.Points {
		fmt.Fprintf(tw, "%g\t%.2f\t%s\t%.2f%s\n", p.X, p.Y, p.Label, p.Secondary, c.Units.SecondarySuffix)
	}

	return tw.Flush()
}
