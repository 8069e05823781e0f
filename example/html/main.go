// HTML writes the sample table as a standalone HTML page to stdout.
//
//	go run ./example/html/ > table.html
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/html"
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
	var cfgFile string
	var rows int

	cmd := &cobra.Command{
		Use:           "html",
		Short:         "Render the sample table as HTML",
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
			opts := append(cfg.Options(cfg.Logger(os.Stderr)), demo.Plugins())
			inst, err := table.New(demo.Columns(), demo.Rows(rows), opts...)
			if err != nil {
				return fmt.Errorf("new table: %w", err)
			}
			return page(inst).Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file")
	cmd.Flags().IntVar(&rows, "rows", 10, "number of rows")
	if err := config.BindFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

func page(inst *table.Instance) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><html><body>"); err != nil {
			return err
		}
		if err := html.Table(inst).Render(ctx, w); err != nil {
			return err
		}
		if err := html.Portal(inst.Document()).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
