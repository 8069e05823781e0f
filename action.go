package table

// ActionType names a state transition.
type ActionType string

const (
	// ActionInit is dispatched once when the instance is constructed.
	ActionInit ActionType = "init"

	ActionResetResize         ActionType = "resetResize"
	ActionColumnStartResizing ActionType = "columnStartResizing"
	ActionColumnResizing      ActionType = "columnResizing"
	ActionColumnDoneResizing  ActionType = "columnDoneResizing"
	ActionColumnEndResizing   ActionType = "columnEndResizing"
)

// Action is the message fed through the reducer chain.
// Only the fields relevant to Type are set.
type Action struct {
	Type           ActionType
	ColumnID       string
	ColumnWidth    float64
	ClientX        float64
	HeaderIDWidths []HeaderIDWidth
}

// String returns the action type, for logging.
func (a Action) String() string {
	return string(a.Type)
}

// reduce folds action through reducers in registration order.
func reduce(reducers []Reducer, state State, action Action, inst *Instance) State {
	for _, r := range reducers {
		state = r(state, action, inst)
	}
	return state
}
