// Package script loads paint session scripts from YAML and replays them
// onto a session.
//
// A script sets the canvas size, optionally loads an image, and lists
// steps. Each step does exactly one thing:
//
//	width: 320
//	height: 240
//	image: photo.png
//	steps:
//	  - tool: smudge
//	  - press: [10, 10]
//	  - drag: [[40, 12], [80, 30]]
//	  - release: true
//	  - color: "#ff8800"
//	  - width: 7
//	  - command: Blur 5, Emboss
//	  - load: other.png
//
// Relative image paths are resolved against the directory of the script
// file.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/session"
	"github.com/gogpu/paintkit/tool"
)

// ErrInvalidStep reports a step that is malformed or out of place.
var ErrInvalidStep = errors.New("script: invalid step")

// Point is a canvas position written as [x, y].
type Point [2]int

// Script is a parsed session script.
type Script struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Image  string `yaml:"image,omitempty"`
	Steps  []Step `yaml:"steps"`

	dir string // directory relative image paths are resolved against
}

// Step is one action of a script. Exactly one field is set.
type Step struct {
	Tool    string  `yaml:"tool,omitempty"`
	Color   string  `yaml:"color,omitempty"`
	Width   *int    `yaml:"width,omitempty"`
	Press   *Point  `yaml:"press,omitempty"`
	Drag    []Point `yaml:"drag,omitempty"`
	Release bool    `yaml:"release,omitempty"`
	Command string  `yaml:"command,omitempty"`
	Load    string  `yaml:"load,omitempty"`
}

// Action returns the name of the field set on the step, or "" if none is.
// Steps with several fields return the first in declaration order.
func (st Step) Action() string {
	actions := st.actions()
	if len(actions) == 0 {
		return ""
	}
	return actions[0]
}

func (st Step) actions() []string {
	var out []string
	if st.Tool != "" {
		out = append(out, "tool")
	}
	if st.Color != "" {
		out = append(out, "color")
	}
	if st.Width != nil {
		out = append(out, "width")
	}
	if st.Press != nil {
		out = append(out, "press")
	}
	if st.Drag != nil {
		out = append(out, "drag")
	}
	if st.Release {
		out = append(out, "release")
	}
	if st.Command != "" {
		out = append(out, "command")
	}
	if st.Load != "" {
		out = append(out, "load")
	}
	return out
}

// Load decodes a script. Unknown keys are errors.
func Load(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("script: empty document")
		}
		return nil, fmt.Errorf("script: failed to parse: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the script at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Validate checks the whole script before anything runs: canvas size,
// every name, every width, and that presses, drags and releases form
// complete gestures. Errors name the offending step.
func (s *Script) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("script: invalid canvas size %dx%d", s.Width, s.Height)
	}

	dragging := false
	for i, st := range s.Steps {
		if err := st.validate(&dragging); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	if dragging {
		return fmt.Errorf("step %d: %w: gesture never released", len(s.Steps), ErrInvalidStep)
	}
	return nil
}

func (st Step) validate(dragging *bool) error {
	actions := st.actions()
	switch len(actions) {
	case 0:
		return fmt.Errorf("%w: no action", ErrInvalidStep)
	case 1:
	default:
		return fmt.Errorf("%w: several actions %v", ErrInvalidStep, actions)
	}

	switch actions[0] {
	case "tool":
		_, err := tool.ParseKind(st.Tool)
		return err
	case "color":
		_, err := paintkit.ParseColor(st.Color)
		return err
	case "width":
		if !slices.Contains(session.LineWidths(), *st.Width) {
			return fmt.Errorf("%w: %d", paintkit.ErrInvalidWidth, *st.Width)
		}
	case "command":
		_, err := session.ParseCommand(st.Command)
		return err
	case "press":
		if *dragging {
			return fmt.Errorf("%w: press during gesture", ErrInvalidStep)
		}
		*dragging = true
	case "drag":
		if !*dragging {
			return fmt.Errorf("%w: drag outside gesture", ErrInvalidStep)
		}
		if len(st.Drag) == 0 {
			return fmt.Errorf("%w: empty drag", ErrInvalidStep)
		}
	case "release":
		if !*dragging {
			return fmt.Errorf("%w: release outside gesture", ErrInvalidStep)
		}
		*dragging = false
	}
	return nil
}

// NewSession creates a session with the canvas size of the script.
func (s *Script) NewSession(opts ...session.Option) *session.Session {
	return session.New(s.Width, s.Height, opts...)
}

// Run validates the script and replays it onto sess. The context is
// checked before every step.
func (s *Script) Run(ctx context.Context, sess *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	log := paintkit.Logger()

	if s.Image != "" {
		if err := sess.LoadImageFile(s.resolve(s.Image)); err != nil {
			return fmt.Errorf("script: image: %w", err)
		}
	}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if err := s.apply(sess, st); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		log.Debug("script: step", "index", i, "action", st.Action())
	}
	log.Info("script: finished", "steps", len(s.Steps))
	return nil
}

func (s *Script) apply(sess *session.Session, st Step) error {
	switch st.Action() {
	case "tool":
		k, err := tool.ParseKind(st.Tool)
		if err != nil {
			return err
		}
		return sess.SetTool(k)
	case "color":
		c, err := paintkit.ParseColor(st.Color)
		if err != nil {
			return err
		}
		sess.SetColor(c)
	case "width":
		return sess.SetLineWidth(*st.Width)
	case "press":
		sess.Press(st.Press[0], st.Press[1])
	case "drag":
		for _, p := range st.Drag {
			sess.Drag(p[0], p[1])
		}
	case "release":
		sess.Release()
	case "command":
		return sess.Do(st.Command)
	case "load":
		return sess.LoadImageFile(s.resolve(st.Load))
	}
	return nil
}

func (s *Script) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}
