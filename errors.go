package paintkit

import "errors"

// Sentinel errors for names and values coming from menus, scripts and flags.
// Callers wrap them with context and test with errors.Is.
var (
	ErrUnknownFilter  = errors.New("paintkit: unknown filter")
	ErrUnknownTool    = errors.New("paintkit: unknown tool")
	ErrUnknownColor   = errors.New("paintkit: unknown color")
	ErrInvalidWidth   = errors.New("paintkit: invalid line width")
	ErrUnknownCommand = errors.New("paintkit: unknown command")
	ErrNoImage        = errors.New("paintkit: no image loaded")
)
