package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reactor.de/timehandler/internal/domain"
	"reactor.de/timehandler/internal/ui"
)

// demoLead is how far ahead the "days until" example looks.
const demoLead = 30 * 24 * time.Hour

type demoRow struct {
	name  string
	value string
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show every output format for the current instant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := demoRows(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !ui.IsTerminal(out) {
				for _, r := range rows {
					if _, err := fmt.Fprintf(out, "%s: %s\n", r.name, r.value); err != nil {
						return err
					}
				}
				return nil
			}

			table := ui.NewValuesTable(out)
			table.Header("Format", "Value")
			for _, r := range rows {
				if err := table.Append([]string{r.name, r.value}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func demoRows(cmd *cobra.Command) ([]demoRow, error) {
	svc := getService(cmd)
	tz := getTZ(cmd)

	now, err := svc.Now(tz)
	if err != nil {
		return nil, err
	}

	steps := []struct {
		name   string
		render func() (string, error)
	}{
		{"Current datetime", func() (string, error) { return svc.Format(now, "%F %T.%f %z") }},
		{"Current date", func() (string, error) { return svc.CurrentDate("", tz) }},
		{"Current time", func() (string, error) { return svc.CurrentTime("", tz) }},
		{"DOCX datetime", func() (string, error) { return svc.DocumentDate(tz) }},
		{"Timestamp", func() (string, error) { return svc.Timestamp("", tz) }},
		{"Log timestamp", func() (string, error) { return svc.LogTimestamp(tz) }},
		{"Days until future date", func() (string, error) {
			d, err := svc.Difference(domain.InstantValue(now), domain.InstantValue(now.Add(demoLead)), domain.UnitDays)
			return formatNumber(d), err
		}},
	}
	rows := make([]demoRow, 0, len(steps))
	for _, s := range steps {
		v, err := s.render()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		rows = append(rows, demoRow{name: s.name, value: v})
	}
	return rows, nil
}
