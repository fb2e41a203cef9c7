package ui

import "fmt"

// View is the single authoritative "which page is visible" value. The
// render loop, the input handling and the transport's reconnect gate
// all read the same one instead of poking at widget state.
type View int

const (
	VIEW_AUTH View = iota + 1
	VIEW_MENU
	VIEW_GAME
	VIEW_SHOP
	VIEW_BOARD
)

func (v View) Name() string {
	switch v {
	case VIEW_AUTH:
		return "AUTH"
	case VIEW_MENU:
		return "MENU"
	case VIEW_GAME:
		return "GAME"
	case VIEW_SHOP:
		return "SHOP"
	case VIEW_BOARD:
		return "BOARD"
	default:
		return fmt.Sprintf("N/A(%d)", v)
	}
}
