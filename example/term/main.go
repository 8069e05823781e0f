// Term shows a resizable table in the terminal.
//
//	go run ./example/term/
//
// Drag a │ in the header row with the mouse to resize that column.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/term"
	"github.com/go-theft-auto/table/internal/config"
	"github.com/go-theft-auto/table/internal/demo"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	v := viper.New()
	var cfgFile, logFile string

	cmd := &cobra.Command{
		Use:           "term",
		Short:         "Resizable table in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg, logFile)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs here (the terminal is in use)")
	if err := config.BindFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

func run(cfg *config.Config, logFile string) error {
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	opts := append(cfg.Options(cfg.Logger(logOut)), demo.Plugins())
	inst, err := table.New(demo.Columns(), demo.Rows(12), opts...)
	if err != nil {
		return fmt.Errorf("new table: %w", err)
	}

	p := tea.NewProgram(
		term.New(inst, cfg.Term.CellWidth),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
