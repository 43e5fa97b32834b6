package main

import (
	"fmt"
	"os"

	"github.com/filipedpsilva/counter/repl"
	"github.com/filipedpsilva/counter/widget"
)

func main() {
	fmt.Println("Counter: type start <n> and step <n>, then press Enter to count. Type help for more.")
	executor := repl.NewExecutor(widget.New(), os.Stdout)
	repl.NewRepl(executor).Run()
}
