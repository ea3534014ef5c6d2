package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiwariParth/todo-json/internal/app"
	"github.com/tiwariParth/todo-json/internal/config"
	"github.com/tiwariParth/todo-json/internal/logging"
	"github.com/tiwariParth/todo-json/internal/models"
	"github.com/tiwariParth/todo-json/internal/storage"
	"github.com/tiwariParth/todo-json/internal/task"
	"github.com/tiwariParth/todo-json/internal/version"
)

// CLI represents the command-line interface. One CLI serves one invocation.
type CLI struct {
	root *cobra.Command
	app  *app.TodoApp

	configDir string
	listName  string
	verbose   bool
	noColor   bool
	dryRun    bool
}

// NewCLI builds the command tree.
func NewCLI() *CLI {
	c := &CLI{configDir: "."}

	root := &cobra.Command{
		Use:     "todo",
		Short:   "TODO List CLI Tool",
		Version: version.String(),
		Long: `todo manages a list of TODO items stored in a JSON file.
Items are numbered by position; deleting an item renumbers the ones after it.`,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("no command provided")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.listName, "list-name", config.DefaultListName, "Use a custom TODO list file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&c.dryRun, "dry-run", false, "Apply changes in memory only")

	root.AddCommand(c.displayCmd())
	root.AddCommand(c.addCmd())
	root.AddCommand(c.updateCmd())
	root.AddCommand(c.deleteCmd())
	root.AddCommand(c.shellCmd())

	c.root = root
	return c
}

// Root returns the root command.
func (c *CLI) Root() *cobra.Command {
	return c.root
}

// Execute runs the command selected by the process arguments.
func (c *CLI) Execute(ctx context.Context) error {
	return c.root.ExecuteContext(ctx)
}

// setup loads configuration, builds the app and loads the list. Load
// failures are reported and leave the list empty; the command still runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configDir)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("list-name") {
		cfg.ListName = c.listName
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	if c.noColor {
		cfg.Color = false
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	a, err := app.NewTodoApp(cfg, logger, app.Options{DryRun: c.dryRun})
	if err != nil {
		return err
	}
	c.app = a

	if err := a.Manager.Load(cmd.Context()); err != nil {
		c.report(err)
	}
	return nil
}

// report prints a domain error for the user. Domain errors never change the
// exit status.
func (c *CLI) report(err error) {
	logger := c.app.Logger
	path := c.app.Manager.Path()

	switch {
	case errors.Is(err, storage.ErrCorrupt):
		logger.Error("Could not read list. File might be corrupted.", "file", path, "err", err)
	case errors.Is(err, storage.ErrWriteDenied):
		logger.Error("No permission to write list.", "file", path)
	case errors.Is(err, storage.ErrLoad):
		logger.Error("Error loading the file.", "file", path, "err", err)
	case errors.Is(err, storage.ErrSave):
		logger.Error("Error saving the file.", "file", path, "err", err)
	default:
		logger.Error(err.Error())
	}
}

func (c *CLI) displayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display",
		Short: "Show all TODO items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Manager.Display(cmd.OutOrStdout())
		},
	}
}

func (c *CLI) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <description>",
		Short: "Add a new TODO item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := c.app.Manager.Add(cmd.Context(), args[0], args[1])
			if err != nil {
				c.report(err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added TODO item with ID %d.\n", item.ID)
			return nil
		},
	}
}

func (c *CLI) updateCmd() *cobra.Command {
	var fields task.UpdateFields

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing TODO item",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := idArg(cmd, args); err != nil {
				return err
			}
			if fields.Status != "" {
				if _, err := models.ParseStatus(fields.Status); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[0])
			item, err := c.app.Manager.Update(cmd.Context(), id, fields)
			if err != nil {
				c.report(err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated TODO item with ID %d.\n", item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Category, "category", "", "The new category for the TODO item")
	cmd.Flags().StringVar(&fields.Description, "description", "", "The new description for the TODO item")
	cmd.Flags().StringVar(&fields.Status, "status", "",
		fmt.Sprintf("The new status for the TODO item (%s)", strings.Join(models.StatusNames(), ", ")))
	_ = cmd.RegisterFlagCompletionFunc("status", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return models.StatusNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a TODO item",
		Long:  "Delete a TODO item. Items after it are renumbered to keep IDs contiguous.",
		Args:  idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[0])
			if _, err := c.app.Manager.Delete(cmd.Context(), id); err != nil {
				c.report(err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted TODO item with ID %d.\n", id)
			return nil
		},
	}
}

// idArg validates a single integer ID argument.
func idArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("invalid ID %q: must be an integer", args[0])
	}
	return nil
}
