package viewer

import "space-lab/internal/assembly"

// Cursor records the pointer cue for the viewer surface. Parts write to it as
// the pointer enters and leaves them; the last write wins.
type Cursor struct {
	cue     assembly.Cue
	changes int
}

// SetCue implements assembly.PointerCue.
func (c *Cursor) SetCue(cue assembly.Cue) {
	if cue != c.cue {
		c.changes++
	}
	c.cue = cue
}

// Cue is the current cue.
func (c *Cursor) Cue() assembly.Cue { return c.cue }

// Changes counts cue transitions, so a caller can tell whether the OS cursor
// needs updating since it last looked.
func (c *Cursor) Changes() int { return c.changes }
