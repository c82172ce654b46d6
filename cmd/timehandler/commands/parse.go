package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reactor.de/timehandler/internal/domain"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text into an instant",
		Long: `Parse text with a strftime pattern and print the instant as RFC 3339.
Without --tz the text is read as UTC wall-clock time.`,
		Example: `  timehandler parse 2025-04-15
  timehandler parse "15/04/2025 09:30" --format "%d/%m/%Y %H:%M" --tz Europe/Berlin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := getService(cmd)
			p, _ := cmd.Flags().GetString("format")

			var (
				t   time.Time
				err error
			)
			if tz := getTZ(cmd); tz != "" {
				t, err = svc.ParseIn(args[0], p, tz)
			} else {
				t, err = svc.Parse(args[0], p)
			}
			if err != nil {
				return err
			}
			return printValue(cmd, t.Format(time.RFC3339Nano), p)
		},
	}
	cmd.Flags().StringP("format", "f", "", "strftime pattern (default: "+domain.DefaultDatePattern+")")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <date>",
		Short: "Reformat a " + domain.DefaultDatePattern + " date",
		Example: `  timehandler format 2025-04-15 --format "%A, %d %B %Y"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := cmd.Flags().GetString("format")
			out, err := getService(cmd).FormatValue(domain.TextValue(args[0]), p)
			if err != nil {
				return err
			}
			return printValue(cmd, out, p)
		},
	}
	cmd.Flags().StringP("format", "f", "", "strftime pattern (default: "+domain.DefaultDatePattern+")")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

// diffResult is the --json shape of the diff command.
type diffResult struct {
	Start string      `json:"start"`
	End   string      `json:"end"`
	Unit  domain.Unit `json:"unit"`
	Value float64     `json:"value"`
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <start> <end>",
		Short: "Print the difference between two " + domain.DefaultDatePattern + " dates",
		Long: `Print end minus start. Days are whole days rounded down; hours,
minutes and seconds may be fractional. Use "now" for the current instant.`,
		Example: `  timehandler diff 2025-01-01 2025-12-25
  timehandler diff now 2026-01-01 --unit hours`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := getService(cmd)
			unitFlag, _ := cmd.Flags().GetString("unit")
			unit := domain.Unit(unitFlag)

			values := make([]domain.Value, len(args))
			for i, arg := range args {
				if arg != "now" {
					values[i] = domain.TextValue(arg)
					continue
				}
				now, err := svc.Now(getTZ(cmd))
				if err != nil {
					return err
				}
				values[i] = domain.InstantValue(now)
			}

			diff, err := svc.Difference(values[0], values[1], unit)
			if err != nil {
				return err
			}
			if !unit.Known() {
				unit = domain.UnitDays
			}
			return printResult(cmd, formatNumber(diff), diffResult{
				Start: values[0].String(),
				End:   values[1].String(),
				Unit:  unit,
				Value: diff,
			})
		},
	}
	cmd.Flags().StringP("unit", "u", string(domain.UnitDays), fmt.Sprintf("One of %s, %s, %s, %s", domain.UnitDays, domain.UnitHours, domain.UnitMinutes, domain.UnitSeconds))
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}
