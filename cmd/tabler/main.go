package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henrilemoine/tabler/internal/app"
	"github.com/henrilemoine/tabler/internal/config"
	"github.com/henrilemoine/tabler/internal/debug"
	"github.com/henrilemoine/tabler/internal/store"
	"github.com/henrilemoine/tabler/internal/ui"
)

var (
	configPath string
	dataPath   string
	debugPath  string

	cfg *config.Config
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabler",
		Short:         "Browse and check off tasks in a terminal grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configPath != "" {
				cfg, err = config.LoadFromPath(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dataPath != "" {
				cfg.Data.Path = dataPath
			}
			for _, w := range cfg.Validate() {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
			}

			if debugPath != "" {
				if err := debug.Enable(debugPath); err != nil {
					return fmt.Errorf("enabling debug log: %w", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	root.PersistentFlags().StringVar(&dataPath, "data", "", "task file, .toml or .yaml")
	root.PersistentFlags().StringVar(&debugPath, "debug", "", "write a debug log to this file")

	root.AddCommand(addCmd(), initCmd())
	return root
}

func run() error {
	st, err := store.Open(cfg.Data.Path)
	if err != nil {
		return err
	}

	ui.SetTheme(cfg.UI.Theme)

	p := tea.NewProgram(app.New(cfg, st), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	// Resizes replace the grid, so only the final model holds the live one.
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	return err
}

func addCmd() *cobra.Command {
	var (
		status   string
		priority int
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Append a task to the task file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cfg.Data.Path)
			if err != nil {
				return err
			}
			task := st.Insert(store.Fields{
				Name:     strings.Join(args, " "),
				Status:   status,
				Priority: priority,
			})
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added #%d %s\n", task.ID(), task.Name())
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", store.StatusTodo, "todo, active or blocked")
	cmd.Flags().IntVar(&priority, "priority", 0, "priority, 0 to 3")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
