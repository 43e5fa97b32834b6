package repl

import (
	"strings"

	"github.com/c-bata/go-prompt"
)

var commands = []prompt.Suggest{
	{Text: "count", Description: "add one step and show the value (same as an empty line or +)"},
	{Text: "start", Description: "set the number to start at, e.g. start 3000"},
	{Text: "step", Description: "set the step, e.g. step -500"},
	{Text: "show", Description: "show the current value"},
	{Text: "help", Description: "list the commands"},
	{Text: "exit", Description: "leave the counter"},
}

// Complete suggests command names while the first word is being typed.
// It implements go-prompt's Completer.
func Complete(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	if strings.TrimSpace(before) == "" || strings.Contains(before, " ") {
		return nil
	}
	return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
}
