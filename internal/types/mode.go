// Package types holds small shared UI types.
package types

// Mode represents the current input mode of the application
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeSearch
	ModeEdit
	ModeSubtask
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInput:
		return "ADD"
	case ModeSearch:
		return "SEARCH"
	case ModeEdit:
		return "EDIT"
	case ModeSubtask:
		return "SUBTASK"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}
