package table

// HookName identifies a prop-getter extension point.
type HookName string

// Prop-getter hooks, one per element kind.
const (
	HookTableProps       HookName = "tableProps"
	HookTableBodyProps   HookName = "tableBodyProps"
	HookRowProps         HookName = "rowProps"
	HookHeaderGroupProps HookName = "headerGroupProps"
	HookFooterGroupProps HookName = "footerGroupProps"
	HookHeaderProps      HookName = "headerProps"
	HookCellProps        HookName = "cellProps"
	HookFooterProps      HookName = "footerProps"
	HookResizerProps     HookName = "resizerProps"
)

// Meta is the read-only context handed to every contribution.
// Which fields are set depends on the hook: header and footer hooks get
// Column and Header, cell hooks get Cell and Row, row hooks get Row.
type Meta struct {
	Instance *Instance
	Column   *Header
	Header   *Header
	Row      *Row
	Cell     *Cell
	Depth    int // header/footer group depth
}

// Contribution augments the props of one element kind.
// Apply receives the props accumulated so far and returns the props to
// continue with plus a patch merged on top of them.
type Contribution interface {
	Apply(props Props, meta Meta) (next Props, patch Props)
}

// PropGetterFunc adapts a plain function to a Contribution.
type PropGetterFunc func(props Props, meta Meta) (Props, Props)

// Apply calls f.
func (f PropGetterFunc) Apply(props Props, meta Meta) (Props, Props) {
	return f(props, meta)
}

// StaticProps is a constant patch. It is merged as-is without a call.
type StaticProps Props

// Apply returns props unchanged and s as the patch.
func (s StaticProps) Apply(props Props, _ Meta) (Props, Props) {
	return props, Props(s)
}

// Reducer folds one action into the table state. Reducers must be pure:
// they return a new State and never modify the one they are given.
type Reducer func(state State, action Action, inst *Instance) State

// InstanceHook runs against the instance during a render pass.
type InstanceHook func(inst *Instance)

// Hooks is the per-instance registry every plugin contributes to.
// Order of registration is order of application.
type Hooks struct {
	props map[HookName][]Contribution

	// StateReducers are folded in order on every Dispatch.
	StateReducers []Reducer

	// UseInstanceBeforeDimensions runs after headers are built and before
	// header totals are aggregated. Plugins that rewrite header widths
	// register here.
	UseInstanceBeforeDimensions []InstanceHook

	// UseInstance runs at the end of each render pass.
	UseInstance []InstanceHook
}

// NewHooks creates an empty registry.
func NewHooks() *Hooks {
	return &Hooks{
		props: make(map[HookName][]Contribution),
	}
}

// Register appends c to the contributions for name. Registering the same
// contribution twice applies it twice.
func (h *Hooks) Register(name HookName, c Contribution) {
	h.props[name] = append(h.props[name], c)
}

// Replace discards every contribution for name and installs cs instead.
// Plugins use it to seed a hook they own.
func (h *Hooks) Replace(name HookName, cs ...Contribution) {
	h.props[name] = append([]Contribution(nil), cs...)
}

// Len returns how many contributions are registered for name.
func (h *Hooks) Len(name HookName) int {
	return len(h.props[name])
}

// Compute folds the contributions for name over initial, left to right.
// initial is never modified; with no contributions a copy of it is returned.
func (h *Hooks) Compute(name HookName, initial Props, meta Meta) Props {
	acc := initial.Clone()
	for _, c := range h.props[name] {
		next, patch := c.Apply(acc, meta)
		acc = Merge(next, patch)
	}
	return acc
}

// PropGetter returns the final props for one element. User props are
// merged after every registered contribution, so they win.
type PropGetter func(userProps ...Props) Props

// MakePropGetter binds a hook and its meta into a PropGetter.
func MakePropGetter(h *Hooks, name HookName, meta Meta) PropGetter {
	return func(userProps ...Props) Props {
		props := h.Compute(name, Props{}, meta)
		for _, up := range userProps {
			props = Merge(props, up)
		}
		return props
	}
}
