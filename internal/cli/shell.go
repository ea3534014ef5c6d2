package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/tiwariParth/todo-json/internal/task"
)

func (c *CLI) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Start an interactive session reading one command per line.
Besides display, add, update and delete, the session accepts
"switch <file>" to work on another list and "exit" to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func (c *CLI) runShell(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	fmt.Fprintf(out, "Working on %s. Type 'help' for commands, 'exit' to quit.\n", c.app.Manager.Path())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "exit", "quit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		root := c.shellRoot()
		root.SetArgs(words)
		root.SetOut(out)
		root.SetErr(errOut)
		if err := root.ExecuteContext(ctx); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}

	fmt.Fprintln(out)
	return scanner.Err()
}

// shellRoot builds a fresh command tree for one line of input so that flag
// values never leak from one line to the next.
func (c *CLI) shellRoot() *cobra.Command {
	root := &cobra.Command{
		Use:               "todo",
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.AddCommand(c.displayCmd())
	root.AddCommand(c.addCmd())
	root.AddCommand(c.updateCmd())
	root.AddCommand(c.deleteCmd())
	root.AddCommand(c.switchCmd())
	return root
}

func (c *CLI) switchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <file>",
		Short: "Switch to a different TODO list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Manager.ChangeList(cmd.Context(), args[0])
			if err != nil {
				c.report(err)
			}
			if errors.Is(err, task.ErrValidation) {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to TODO list file: %s\n", c.app.Manager.Path())
			return nil
		},
	}
}
