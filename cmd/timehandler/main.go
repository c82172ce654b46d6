package main

import (
	"os"
	"regexp"
	"strings"

	"reactor.de/timehandler/cmd/timehandler/commands"
	"reactor.de/timehandler/internal/ui"
)

var version = "dev"

// schemaRefRe matches the schema location the validator appends to its messages.
var schemaRefRe = regexp.MustCompile(` with 'schema://\w+#'`)

func main() {
	if err := commands.Execute(version); err != nil {
		ui.Error("%s", errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage capitalizes err for the terminal and indents continuation lines.
func errorMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Unknown error"
	}
	msg = strings.ToUpper(msg[:1]) + msg[1:]
	msg = strings.ReplaceAll(msg, "\n", "\n  ")
	return schemaRefRe.ReplaceAllString(msg, "")
}
