package states

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/painscape/painscape/internal/engine/input"
	"github.com/painscape/painscape/pkg/region"
)

// dragThreshold is the pixel movement past which a press becomes an orbit
// drag rather than a click.
const dragThreshold = 4

// pointer implements the shared click-vs-drag pointer protocol: left drag
// orbits the camera, a left click (press and release without movement)
// toggles the region under the cursor, movement updates hover.
type pointer struct {
	down    bool
	dragged bool
	downX   int
	downY   int
	lastX   int
	lastY   int
}

// handle processes one event. pick resolves the region under a screen
// position for whichever geometry the owning state displays.
func (p *pointer) handle(ctx *Context, e input.Event, pick func(x, y int) region.PickResult) {
	switch e.Type {
	case input.EventMouseDown:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		p.down = true
		p.dragged = false
		p.downX, p.downY = e.MouseX, e.MouseY
		p.lastX, p.lastY = e.MouseX, e.MouseY

	case input.EventMouseMove:
		if p.down {
			dx := e.MouseX - p.lastX
			dy := e.MouseY - p.lastY
			if p.dragged || abs(e.MouseX-p.downX) > dragThreshold || abs(e.MouseY-p.downY) > dragThreshold {
				p.dragged = true
				ctx.Camera.HandleDrag(float32(dx), float32(dy))
			}
			p.lastX, p.lastY = e.MouseX, e.MouseY
			return
		}
		res := pick(e.MouseX, e.MouseY)
		if ctx.Interaction.Move(res) {
			applyCursor(res.Cursor)
		}

	case input.EventMouseUp:
		if e.Button != sdl.BUTTON_LEFT || !p.down {
			return
		}
		wasClick := !p.dragged
		p.down = false
		p.dragged = false
		if wasClick {
			ctx.Interaction.Press(pick(e.MouseX, e.MouseY))
		}

	case input.EventMouseWheel:
		ctx.Camera.HandleZoom(e.Wheel)

	case input.EventWindowLeave:
		ctx.Interaction.Leave()
		applyCursor(region.CursorDefault)
	}
}

func applyCursor(hint region.CursorHint) {
	if hint == region.CursorPointer {
		input.SetCursor(input.CursorHand)
	} else {
		input.SetCursor(input.CursorArrow)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
