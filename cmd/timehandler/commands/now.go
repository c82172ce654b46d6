package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant",
		Long:  "Print the current instant as RFC 3339, or with --format as a strftime pattern.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := getService(cmd)
			now, err := svc.Now(getTZ(cmd))
			if err != nil {
				return err
			}

			p, _ := cmd.Flags().GetString("format")
			if p == "" {
				return printValue(cmd, now.Format(time.RFC3339Nano), "")
			}
			out, err := svc.Format(now, p)
			if err != nil {
				return err
			}
			return printValue(cmd, out, p)
		},
	}
	cmd.Flags().StringP("format", "f", "", "strftime pattern, e.g. \"%A %d %B\"")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

// newPatternCmd builds a command that renders the current instant through
// render. The pattern flag is offered only when usesPattern is set.
func newPatternCmd(use, short string, usesPattern bool, render func(cmd *cobra.Command, p, tz string) (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p string
			if usesPattern {
				p, _ = cmd.Flags().GetString("format")
			}
			out, err := render(cmd, p, getTZ(cmd))
			if err != nil {
				return err
			}
			return printValue(cmd, out, p)
		},
	}
	if usesPattern {
		cmd.Flags().StringP("format", "f", "", "strftime pattern (default: from config)")
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func newDateCmd() *cobra.Command {
	return newPatternCmd("date", "Print the current date", true, func(cmd *cobra.Command, p, tz string) (string, error) {
		return getService(cmd).CurrentDate(p, tz)
	})
}

func newTimeCmd() *cobra.Command {
	return newPatternCmd("time", "Print the current time of day", true, func(cmd *cobra.Command, p, tz string) (string, error) {
		return getService(cmd).CurrentTime(p, tz)
	})
}

func newDocxCmd() *cobra.Command {
	return newPatternCmd("docx", "Print the month and year for document headers, e.g. \"April 2025\"", false, func(cmd *cobra.Command, _, tz string) (string, error) {
		return getService(cmd).DocumentDate(tz)
	})
}

func newTimestampCmd() *cobra.Command {
	return newPatternCmd("timestamp", "Print the current date and time", true, func(cmd *cobra.Command, p, tz string) (string, error) {
		return getService(cmd).Timestamp(p, tz)
	})
}

func newLogstampCmd() *cobra.Command {
	return newPatternCmd("logstamp", "Print a log line prefix, e.g. \"[2025-04-15 13:05]\"", false, func(cmd *cobra.Command, _, tz string) (string, error) {
		return getService(cmd).LogTimestamp(tz)
	})
}
