package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color functions for consistent styling
var (
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Symbol helper functions that return colored strings
func successSymbol() string {
	return green("✓")
}

func errorSymbol() string {
	return red("⚠")
}

func warningSymbol() string {
	return yellow("!")
}

func infoSymbol() string {
	return cyan("i")
}

func actionSymbol() string {
	return cyan("→")
}

// Success prints a success message with green ✓ symbol
func Success(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("%s %s\n", successSymbol(), formatted)
}

// Error prints an error message with red ⚠ symbol
func Error(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", errorSymbol(), formatted)
}

// Warning prints a warning message with yellow ! symbol
func Warning(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("%s %s\n", warningSymbol(), formatted)
}

// Info prints an info message with cyan i symbol
func Info(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("%s %s\n", infoSymbol(), formatted)
}

// Action prints an action/progress message with cyan → symbol
func Action(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("%s %s\n", actionSymbol(), formatted)
}

// Banner returns the program name with the clock glyph in cyan and the
// version in gray, for the root command's long help.
func Banner(version string) string {
	gray := color.New(color.FgHiBlack).SprintFunc()

	var b strings.Builder
	b.WriteString(cyan("◷ timehandler"))
	if version != "" {
		b.WriteString(" " + gray(version))
	}
	b.WriteString("\n")
	return b.String()
}
