package table

import "log/slog"

// Option configures a table instance.
type Option func(*options)

// options holds instance configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for instance options.
// Plugins outside this package define their own keys the same way.
//
// Example:
//
//	var OptStickyHeader = table.NewOptKey("stickyHeader", false)
//
//	inst, err := table.New(cols, rows, table.WithOpt(OptStickyHeader, true))
//
//	sticky := table.GetOpt(inst, OptStickyHeader)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// getOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func getOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// hasOpt returns true if the option was explicitly set.
func hasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// GetOpt reads an option from a constructed instance.
func GetOpt[T any](inst *Instance, key OptKey[T]) T {
	return getOpt(inst.opts, key)
}

// HasOpt returns true if the option was explicitly set on the instance.
func HasOpt[T any](inst *Instance, key OptKey[T]) bool {
	return hasOpt(inst.opts, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

var (
	// OptPlugins lists plugins in registration order.
	OptPlugins = NewOptKey[[]Plugin]("plugins", nil)

	// OptDisableResizing disables resizing for every column.
	OptDisableResizing = NewOptKey("disableResizing", false)

	// OptAutoResetResize clears resized widths whenever the column set changes.
	OptAutoResetResize = NewOptKey("autoResetResize", true)

	// OptPreview overrides the drag indicator visual.
	OptPreview = NewOptKey[PreviewComponent]("preview", nil)

	// OptDocument is the document-level event target and portal.
	OptDocument = NewOptKey[*Document]("document", nil)

	// OptLogger receives debug logs for dispatch and drag sessions.
	OptLogger = NewOptKey[*slog.Logger]("logger", nil)

	// OptDefaultColumn supplies defaults for unset column fields.
	OptDefaultColumn = NewOptKey("defaultColumn", defaultColumn())
)

// =============================================================================
// Convenience Option Functions
// =============================================================================

// WithPlugins registers plugins in the given order.
func WithPlugins(plugins ...Plugin) Option {
	return WithOpt(OptPlugins, plugins)
}

// DisableResizing turns resizing off table-wide.
func DisableResizing(disabled bool) Option {
	return WithOpt(OptDisableResizing, disabled)
}

// AutoResetResize controls whether a column set change clears resized widths.
func AutoResetResize(enabled bool) Option {
	return WithOpt(OptAutoResetResize, enabled)
}

// WithPreview overrides the drag indicator visual.
func WithPreview(p PreviewComponent) Option {
	return WithOpt(OptPreview, p)
}

// WithDocument sets the event target and portal used by drag sessions.
func WithDocument(d *Document) Option {
	return WithOpt(OptDocument, d)
}

// WithLogger sets the logger for dispatch and drag lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return WithOpt(OptLogger, l)
}

// WithDefaultColumn replaces the default column for this instance only.
func WithDefaultColumn(c Column) Option {
	return WithOpt(OptDefaultColumn, c)
}
