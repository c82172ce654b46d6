package ui

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// NewValuesTable creates a two-column table (format name, rendered value)
// with the application's colorized styling.
func NewValuesTable(w io.Writer) *tablewriter.Table {
	// Configure colors: green headers, magenta names, cyan values
	colorCfg := renderer.ColorizedConfig{
		Header: renderer.Tint{
			FG: renderer.Colors{color.FgGreen, color.Bold},
		},
		Column: renderer.Tint{
			FG: renderer.Colors{color.FgCyan},
			Columns: []renderer.Tint{
				{FG: renderer.Colors{color.FgMagenta}}, // Format
				{},                                     // Value
			},
		},
		Footer: renderer.Tint{
			FG: renderer.Colors{color.FgYellow, color.Bold},
		},
		Border:    renderer.Tint{FG: renderer.Colors{color.FgBlue}},
		Separator: renderer.Tint{FG: renderer.Colors{color.FgBlue}},
	}

	borders := tw.Border{
		Left:   tw.Off,
		Right:  tw.Off,
		Top:    tw.Off,
		Bottom: tw.Off,
	}

	// Custom symbols for horizontal-only lines with no top/bottom borders
	symbols := tw.NewSymbolCustom("HorizontalOnly").
		WithRow("─").
		WithCenter("─").
		WithColumn(" ")

	return tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewColorized(colorCfg)),
		tablewriter.WithRendition(tw.Rendition{Borders: borders, Symbols: symbols}),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)
}
