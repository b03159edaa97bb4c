package session

// Action is a command exposed on the toolbar.
type Action int

const (
	// ActionPencil selects the pencil tool.
	ActionPencil Action = iota
	// ActionEraser selects the eraser tool.
	ActionEraser
	// ActionPan selects the pan tool.
	ActionPan
	// ActionClear kills every cell.
	ActionClear
	// ActionRun starts stepping generations.
	ActionRun
	// ActionReset pauses and restores the last edited pattern.
	ActionReset
)

var actionLabels = map[Action]string{
	ActionPencil: "Pencil",
	ActionEraser: "Eraser",
	ActionPan:    "Pan",
	ActionClear:  "Clear",
	ActionRun:    "Run",
	ActionReset:  "Reset",
}

func (a Action) String() string { return actionLabels[a] }

var (
	editActions = []Action{ActionPencil, ActionEraser, ActionPan, ActionClear, ActionRun}
	runActions  = []Action{ActionPan, ActionReset}
)

// Actions lists the commands available in the current mode. While running
// only panning and resetting are offered.
func (s *Session) Actions() []Action {
	if s.mode == ModeRun {
		return runActions
	}
	return editActions
}

// Active reports whether a tool action matches the selected tool.
func (s *Session) Active(a Action) bool {
	switch a {
	case ActionPencil:
		return s.tool == ToolPencil
	case ActionEraser:
		return s.tool == ToolEraser
	case ActionPan:
		return s.tool == ToolPan
	}
	return false
}

// Do performs a if it is available in the current mode.
func (s *Session) Do(a Action) bool {
	available := false
	for _, candidate := range s.Actions() {
		if candidate == a {
			available = true
			break
		}
	}
	if !available {
		return false
	}
	switch a {
	case ActionPencil:
		s.SelectTool(ToolPencil)
	case ActionEraser:
		s.SelectTool(ToolEraser)
	case ActionPan:
		s.SelectTool(ToolPan)
	case ActionClear:
		s.Clear()
	case ActionRun:
		s.StartRun()
	case ActionReset:
		s.Reset()
	}
	return true
}
