package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/filipedpsilva/counter/errs"
	"github.com/filipedpsilva/counter/widget"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Executor runs one line typed at the prompt against a widget.
// It implements go-prompt's Executor.
type Executor struct {
	widget *widget.Widget
	out    io.Writer
	exit   func(code int)
}

func NewExecutor(w *widget.Widget, out io.Writer) *Executor {
	return &Executor{
		widget: w,
		out:    out,
		exit:   os.Exit,
	}
}

// Execute handles a line of input. An empty line counts, like pressing
// Enter on the button.
func (e *Executor) Execute(input string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		e.printValue(e.widget.Increment())
		return
	}

	command, args := fields[0], fields[1:]
	switch command {
	case "+", "count":
		e.printValue(e.widget.Increment())
	case "start":
		e.setInput(args, "start <number>", e.widget.SetStartAt)
	case "step":
		e.setInput(args, "step <number>", e.widget.SetStep)
	case "show":
		e.printValue(e.widget.State())
	case "help":
		e.printHelp()
	case "exit", "quit":
		fmt.Fprintln(e.out, "Bye!")
		e.exit(0)
	default:
		errs.HandleError(e.out, errs.NewBadInputError(fmt.Sprintf("unknown command %q, try help", command)))
	}
}

func (e *Executor) setInput(args []string, usage string, set func(string) error) {
	if len(args) != 1 {
		errs.HandleError(e.out, errs.NewBadInputError("usage: "+usage))
		return
	}
	if err := set(args[0]); err != nil {
		errs.HandleError(e.out, err)
		return
	}
	e.printValue(e.widget.State())
}

// Prefix shows the current inputs in front of the cursor.
func (e *Executor) Prefix() (string, bool) {
	state := e.widget.State()
	return fmt.Sprintf("start %s, step %s >>> ", state.StartAt, state.Step), true
}

func (e *Executor) printValue(state widget.State) {
	switch state.Sign {
	case widget.Positive:
		fmt.Fprintf(e.out, "%s%s%s\n", colorGreen, state.Display, colorReset)
	case widget.Negative:
		fmt.Fprintf(e.out, "%s%s%s\n", colorRed, state.Display, colorReset)
	default:
		fmt.Fprintln(e.out, state.Display)
	}
}

func (e *Executor) printHelp() {
	for _, s := range commands {
		fmt.Fprintf(e.out, "  %-8s %s\n", s.Text, s.Description)
	}
}
