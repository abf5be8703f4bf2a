package session

import "golang.org/x/mobile/event/mouse"

// HandleMouse feeds a pointer event to the gesture state machine.
//
// A left-button press starts a gesture and its release ends it at the
// last dragged position; moves
// (DirNone) while the gesture is in progress drag it. Other buttons and
// wheel events are ignored. Coordinates are truncated to pixels.
func (s *Session) HandleMouse(e mouse.Event) {
	x, y := int(e.X), int(e.Y)
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		s.Press(x, y)
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		s.Release()
	case e.Direction == mouse.DirNone && s.dragging:
		s.Drag(x, y)
	}
}
