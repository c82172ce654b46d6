package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reactor.de/timehandler/internal/app"
)

// getApp retrieves the application context from the command.
func getApp(cmd *cobra.Command) *AppContext {
	return cmd.Context().Value(appContextKey).(*AppContext)
}

func getService(cmd *cobra.Command) *app.Service {
	return getApp(cmd).Service
}

// getTZ returns the --tz flag; empty means the configured default.
func getTZ(cmd *cobra.Command) string {
	tz, _ := cmd.Flags().GetString("tz")
	return tz
}

// valueResult is the --json shape of commands that print one string.
type valueResult struct {
	Value    string `json:"value"`
	Pattern  string `json:"pattern,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// printResult writes v alone, or v as indented JSON when --json is set.
func printResult(cmd *cobra.Command, plain string, v interface{}) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if !asJSON {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), plain)
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func printValue(cmd *cobra.Command, value, pattern string) error {
	return printResult(cmd, value, valueResult{Value: value, Pattern: pattern, Timezone: getTZ(cmd)})
}

// formatNumber prints whole numbers without a fraction, e.g. 30 not 30.000000.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
