package session

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/filter"
	"github.com/gogpu/paintkit/tool"
)

// CommandKind identifies the menu a Command comes from.
type CommandKind uint8

const (
	// CommandTool selects a tool.
	CommandTool CommandKind = iota + 1

	// CommandColor selects the drawing color.
	CommandColor

	// CommandWidth selects the line width.
	CommandWidth

	// CommandFilter runs a filter preset.
	CommandFilter

	// CommandFile runs a file menu action.
	CommandFile
)

// String returns the menu name of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandTool:
		return "Tool"
	case CommandColor:
		return "Color"
	case CommandWidth:
		return "LineWidth"
	case CommandFilter:
		return "Filter"
	case CommandFile:
		return "File"
	default:
		return "Unknown"
	}
}

// FileAction identifies a file menu entry that needs no argument.
type FileAction uint8

const (
	// FileClear fills the canvas with white.
	FileClear FileAction = iota + 1

	// FileReload draws the last loaded image again.
	FileReload
)

// String returns the menu name of the action.
func (a FileAction) String() string {
	switch a {
	case FileClear:
		return "Clear"
	case FileReload:
		return "Reload Image"
	default:
		return "Unknown"
	}
}

// Command is one menu selection. Only the field matching Kind is used.
type Command struct {
	Kind   CommandKind
	Tool   tool.Kind
	Color  paintkit.RGB
	Width  int
	Filter filter.Preset
	File   FileAction
}

// String returns the menu name of the selection.
func (c Command) String() string {
	switch c.Kind {
	case CommandTool:
		return c.Tool.String()
	case CommandColor:
		return c.Color.Hex()
	case CommandWidth:
		return strconv.Itoa(c.Width)
	case CommandFilter:
		return c.Filter.String()
	case CommandFile:
		return c.File.String()
	default:
		return "Unknown"
	}
}

// ParseCommand resolves a menu entry name: a file action ("Clear",
// "Reload Image"), a tool, a palette color or #rrggbb hex color, a line
// width, or a filter preset. Names ignore case and surrounding space.
//
// Unknown names return an error wrapping paintkit.ErrUnknownCommand;
// numbers that are not a menu width wrap paintkit.ErrInvalidWidth.
func ParseCommand(name string) (Command, error) {
	folded := paintkit.FoldName(name)
	if folded == "" {
		return Command{}, fmt.Errorf("%w: empty name", paintkit.ErrUnknownCommand)
	}

	for _, a := range []FileAction{FileClear, FileReload} {
		if paintkit.FoldName(a.String()) == folded {
			return Command{Kind: CommandFile, File: a}, nil
		}
	}
	if k, err := tool.ParseKind(name); err == nil {
		return Command{Kind: CommandTool, Tool: k}, nil
	}
	if p, err := filter.ParsePreset(name); err == nil {
		return Command{Kind: CommandFilter, Filter: p}, nil
	}
	if w, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		if !slices.Contains(lineWidths, w) {
			return Command{}, fmt.Errorf("%w: %d", paintkit.ErrInvalidWidth, w)
		}
		return Command{Kind: CommandWidth, Width: w}, nil
	}
	c, err := paintkit.ParseColor(name)
	if err == nil {
		return Command{Kind: CommandColor, Color: c}, nil
	}
	if strings.HasPrefix(folded, "#") {
		return Command{}, err
	}
	return Command{}, fmt.Errorf("%w: %q", paintkit.ErrUnknownCommand, name)
}

// Execute runs a menu selection on the session.
func (s *Session) Execute(c Command) error {
	var err error
	switch c.Kind {
	case CommandTool:
		err = s.SetTool(c.Tool)
	case CommandColor:
		s.SetColor(c.Color)
	case CommandWidth:
		err = s.SetLineWidth(c.Width)
	case CommandFilter:
		err = s.ApplyFilter(c.Filter)
	case CommandFile:
		err = s.runFile(c.File)
	default:
		err = fmt.Errorf("%w: kind %d", paintkit.ErrUnknownCommand, c.Kind)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("session: command", "kind", c.Kind.String(), "name", c.String())
	return nil
}

func (s *Session) runFile(a FileAction) error {
	switch a {
	case FileClear:
		s.Clear()
		return nil
	case FileReload:
		return s.ReloadImage()
	default:
		return fmt.Errorf("%w: file action %d", paintkit.ErrUnknownCommand, a)
	}
}

// Do parses a menu entry name and executes it.
func (s *Session) Do(name string) error {
	c, err := ParseCommand(name)
	if err != nil {
		return err
	}
	if err := s.Execute(c); err != nil {
		return fmt.Errorf("session: %s: %w", c, err)
	}
	return nil
}
