package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"brightpix/frame"
	"brightpix/topk"
)

type Row struct {
	Y     int
	X     int
	Value frame.Pixel
}

type Header string

type DF struct {
	Headers []Header
	Rows    []Row
}

func (df *DF) InitHeader(headers []Header) {
	df.Headers = headers
}

func (df *DF) Insert(r Row) {
	df.Rows = append(df.Rows, r)
}

func (df *DF) PrintTable() {
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
		Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
	})))
	headers := make([]string, len(df.Headers))
	for i, h := range df.Headers {
		headers[i] = string(h)
	}
	table.Header(headers)

	for _, r := range df.Rows {
		row := []string{
			strconv.Itoa(r.Y),
			strconv.Itoa(r.X),
			strconv.Itoa(int(r.Value)),
		}
		table.Append(row)
	}
	table.Render()
}

// buildReport decodes drained results into 2-D coordinates, keeping
// the order the results were drained in.
func buildReport(f *frame.Frame, results []topk.Result) *DF {
	df := &DF{}
	df.InitHeader([]Header{"ROW", "COL", "VALUE"})
	for _, r := range results {
		y, x := f.Coord(r.Pos)
		df.Insert(Row{Y: y, X: x, Value: r.Value})
	}
	return df
}
