package commands

import (
	"github.com/spf13/cobra"

	"reactor.de/timehandler/internal/infra/clock"
)

// ntpResult is the --json shape of the ntp command.
type ntpResult struct {
	Server        string  `json:"server"`
	OffsetSeconds float64 `json:"offset_seconds"`
}

func newNTPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ntp [server]",
		Short: "Measure the local clock's offset against an NTP server",
		Long: `Query an NTP server and print how far the local clock is behind it.
The server defaults to ntp_server from the config, then ` + clock.DefaultNTPServer + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server := getApp(cmd).Config.NTPServer
			if len(args) == 1 {
				server = args[0]
			}

			ntpClock := clock.NewNTPService(clock.NewService(), server, getApp(cmd).logger)
			offset, err := ntpClock.Offset()
			if err != nil {
				return err
			}
			return printResult(cmd, offset.String(), ntpResult{
				Server:        ntpClock.Server(),
				OffsetSeconds: offset.Seconds(),
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}
