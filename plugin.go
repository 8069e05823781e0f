package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for instance construction.
var (
	ErrPluginOrder     = errors.New("table: plugin order")
	ErrDuplicateColumn = errors.New("table: duplicate column id")
	ErrEmptyColumnID   = errors.New("table: empty column id")
)

// Plugin is a named bundle of hook contributions.
type Plugin struct {
	// Name identifies the plugin in ordering checks.
	Name string

	// Requires lists plugins that must be registered before this one.
	Requires []string

	// Register adds the plugin's contributions to h.
	Register func(h *Hooks)
}

// ConfigError reports a plugin registered without, or ahead of, a plugin
// it depends on.
type ConfigError struct {
	Plugin     string // consumer
	Dependency string // missing or misordered plugin; empty if the consumer itself is missing
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.Dependency == "" {
		return fmt.Sprintf("table: plugin %q %s", e.Plugin, e.Reason)
	}
	return fmt.Sprintf("table: plugin %q %s %q", e.Plugin, e.Reason, e.Dependency)
}

// Unwrap lets callers match with errors.Is(err, ErrPluginOrder).
func (e *ConfigError) Unwrap() error {
	return ErrPluginOrder
}

// EnsurePluginOrder checks that every name in before is registered at a
// lower index than consumer. registered is the realized registration order.
func EnsurePluginOrder(registered []string, before []string, consumer string) error {
	consumerIdx := indexOf(registered, consumer)
	if consumerIdx < 0 {
		return &ConfigError{Plugin: consumer, Reason: "was not found in the plugin list"}
	}
	for _, dep := range before {
		depIdx := indexOf(registered, dep)
		switch {
		case depIdx < 0:
			return &ConfigError{Plugin: consumer, Dependency: dep, Reason: "requires missing plugin"}
		case depIdx >= consumerIdx:
			return &ConfigError{Plugin: consumer, Dependency: dep, Reason: "must be registered after"}
		}
	}
	return nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// pluginNames returns the names of plugins in registration order.
func pluginNames(plugins []Plugin) []string {
	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name
	}
	return names
}
