// Package config loads settings for the example programs with viper.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-theft-auto/table"
)

// EnvPrefix prefixes environment overrides, e.g. TABLE_LOG_LEVEL.
const EnvPrefix = "TABLE"

// Config is the complete demo configuration.
type Config struct {
	Table  TableConfig  `mapstructure:"table"`
	Log    LogConfig    `mapstructure:"log"`
	Window WindowConfig `mapstructure:"window"`
	Term   TermConfig   `mapstructure:"term"`
}

// TableConfig maps onto table options.
type TableConfig struct {
	DisableResizing bool    `mapstructure:"disable_resizing"`
	AutoResetResize bool    `mapstructure:"auto_reset_resize"`
	ColumnWidth     float64 `mapstructure:"column_width"`
	MinColumnWidth  float64 `mapstructure:"min_column_width"`
	Theme           string  `mapstructure:"theme"` // "default" or "gta"
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
}

// WindowConfig sizes the GLFW window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// TermConfig controls the terminal demo.
type TermConfig struct {
	// CellWidth is how many pixels one terminal column stands for.
	CellWidth float64 `mapstructure:"cell_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			AutoResetResize: true,
			ColumnWidth:     150,
			MinColumnWidth:  30,
			Theme:           "default",
		},
		Log: LogConfig{
			Level: table.LevelInfo,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "table example",
		},
		Term: TermConfig{
			CellWidth: 10,
		},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("table.disable_resizing", d.Table.DisableResizing)
	v.SetDefault("table.auto_reset_resize", d.Table.AutoResetResize)
	v.SetDefault("table.column_width", d.Table.ColumnWidth)
	v.SetDefault("table.min_column_width", d.Table.MinColumnWidth)
	v.SetDefault("table.theme", d.Table.Theme)

	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)

	v.SetDefault("term.cell_width", d.Term.CellWidth)
}

// Init prepares v with defaults and environment overrides, then reads
// cfgFile if one is given.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}
	return nil
}

// BindFlags adds the demo flags to cmd and binds them to v.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	d := Default()
	flags := cmd.Flags()
	flags.Bool("disable-resizing", d.Table.DisableResizing, "disable column resizing")
	flags.Bool("auto-reset-resize", d.Table.AutoResetResize, "reset widths when columns change")
	flags.String("theme", d.Table.Theme, "color theme (default, gta)")
	flags.String("log-level", d.Log.Level, "log level (DEBUG, INFO, WARN, ERROR)")
	flags.Int("width", d.Window.Width, "window width")
	flags.Int("height", d.Window.Height, "window height")

	bindings := map[string]string{
		"table.disable_resizing":  "disable-resizing",
		"table.auto_reset_resize": "auto-reset-resize",
		"table.theme":             "theme",
		"log.level":               "log-level",
		"window.width":            "width",
		"window.height":           "height",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(table.ValidLevels(), strings.ToUpper(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level: invalid level %q", c.Log.Level))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Table.ColumnWidth < 0 || c.Table.MinColumnWidth < 0 {
		errs = append(errs, errors.New("table: column widths must not be negative"))
	}
	if c.Table.Theme != "default" && c.Table.Theme != "gta" {
		errs = append(errs, fmt.Errorf("table.theme: unknown theme %q", c.Table.Theme))
	}
	if c.Term.CellWidth <= 0 {
		errs = append(errs, errors.New("term.cell_width: must be positive"))
	}
	return errors.Join(errs...)
}

// Options converts the table section into instance options.
// logger may be nil.
func (c *Config) Options(logger *slog.Logger) []table.Option {
	opts := []table.Option{
		table.DisableResizing(c.Table.DisableResizing),
		table.AutoResetResize(c.Table.AutoResetResize),
		table.WithDefaultColumn(table.Column{
			Width:    c.Table.ColumnWidth,
			MinWidth: c.Table.MinColumnWidth,
		}),
	}
	if logger != nil {
		opts = append(opts, table.WithLogger(logger))
	}
	return opts
}

// Theme returns the configured canvas theme.
func (c *Config) Theme() table.Theme {
	if c.Table.Theme == "gta" {
		return table.GTATheme()
	}
	return table.DefaultTheme()
}

// Logger builds a logger at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return table.NewLogger(w, c.Log.Level)
}
