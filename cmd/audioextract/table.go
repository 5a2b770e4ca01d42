package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// tableSpec describes one rendered table. MaxWidths caps individual columns;
// zero means unbounded.
type tableSpec struct {
	Title     string
	Headers   []string
	Rows      [][]string
	Aligns    []columnAlignment
	MaxWidths []int
}

func renderTable(spec tableSpec) string {
	columns := len(spec.Headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if spec.Title != "" {
		tw.SetTitle(spec.Title)
	}

	header := make(table.Row, columns)
	for i, h := range spec.Headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range spec.Rows {
		r := make(table.Row, columns)
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		cfg := table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
		if i < len(spec.Aligns) && spec.Aligns[i] == alignRight {
			cfg.Align = text.AlignRight
		}
		if i < len(spec.MaxWidths) && spec.MaxWidths[i] > 0 {
			cfg.WidthMax = spec.MaxWidths[i]
			cfg.WidthMaxEnforcer = text.Trim
		}
		configs = append(configs, cfg)
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
