package commands

import (
	"github.com/spf13/cobra"
)

// zoneResult is the --json shape of the zone command.
type zoneResult struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Offset       string `json:"offset"`
	Now          string `json:"now"`
}

func newZoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone [name]",
		Short: "Show the current abbreviation and UTC offset of a timezone",
		Long:  "Show a timezone. Without a name the --tz flag, the configured default or the local zone is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := getService(cmd)
			tz := getTZ(cmd)
			if len(args) == 1 {
				tz = args[0]
			}

			loc, err := svc.Zone(tz)
			if err != nil {
				return err
			}
			now, err := svc.Now(tz)
			if err != nil {
				return err
			}
			abbr, offset := now.Format("MST"), now.Format("-07:00")
			stamp, err := svc.Format(now, "%F %T")
			if err != nil {
				return err
			}

			return printResult(cmd, loc.String()+" "+abbr+" "+offset, zoneResult{
				Name:         loc.String(),
				Abbreviation: abbr,
				Offset:       offset,
				Now:          stamp,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}
