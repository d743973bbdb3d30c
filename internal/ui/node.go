package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/icons"
)

// Node is a single UI element: panel, label, button, etc. It has optional class and id for CSS matching,
// bounds (position and size), optional text and an optional glyph drawn before the text.
// A node with an Action is clickable; Engine.Hit reports the action under the pointer.
type Node struct {
	Type     string // "panel", "label", "button", etc.
	Class    string // e.g. "menu" for .menu
	ID       string // e.g. "main" for #main
	Bounds   rl.Rectangle
	Text     string
	Glyph    icons.Glyph
	HasGlyph bool
	Fill     rl.Color // overrides the CSS background when non-transparent
	Action   string
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// At sets the node's bounds and returns it.
func (n *Node) At(r rl.Rectangle) *Node {
	n.Bounds = r
	return n
}

// WithGlyph draws g before the text (or centered when there is no text).
func (n *Node) WithGlyph(g icons.Glyph) *Node {
	n.Glyph, n.HasGlyph = g, true
	return n
}

// WithFill sets a per-node background, for colors that come from content.
func (n *Node) WithFill(c rl.Color) *Node {
	n.Fill = c
	return n
}

// OnClick makes the node clickable with the given action.
func (n *Node) OnClick(action string) *Node {
	n.Action = action
	return n
}

// Contains reports whether p is inside the node's bounds.
func (n *Node) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, n.Bounds)
}
