package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tiwariParth/todo-json/internal/cli"
)

func main() {
	if err := cli.NewCLI().Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
