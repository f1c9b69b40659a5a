package statusbar

import "github.com/tasklyhq/taskly/internal/types"

// Hints returns the keybinding hints for the given mode
func Hints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "a add · / search · x done · p pin · e edit · s sub · d del · f filter · c cat · o sort · J/K move · t theme · ? more · q quit"
	case types.ModeInput:
		return "enter add · esc cancel"
	case types.ModeSearch:
		return "enter apply · esc clear"
	case types.ModeEdit:
		return "tab next field · enter save · esc cancel"
	case types.ModeSubtask:
		return "enter add · esc cancel"
	case types.ModeConfirm:
		return "y confirm · n/esc cancel"
	default:
		return ""
	}
}
