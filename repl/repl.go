package repl

import (
	"fmt"
	"os"

	"github.com/c-bata/go-prompt"
)

type Repl struct {
	pt *prompt.Prompt
}

func NewRepl(executor *Executor) *Repl {
	pt := prompt.New(
		executor.Execute,
		Complete,
		prompt.OptionTitle("Counter"),
		prompt.OptionLivePrefix(executor.Prefix),
		prompt.OptionAddKeyBind(keyBinds...),
	)
	return &Repl{
		pt: pt,
	}
}

func (r *Repl) Run() {
	r.pt.Run()
}

var keyBinds = []prompt.KeyBind{
	{
		Key: prompt.ControlC,
		Fn: func(buf *prompt.Buffer) {
			fmt.Println("\nExit on Ctrl+C")
			os.Exit(0)
		},
	},
}
