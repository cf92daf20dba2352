// Package composer holds the single draft field and decides, on commit,
// whether the draft becomes a new task or replaces an existing task's text.
package composer

import "github.com/BuzzLyutic/todo-list/internal/model"

// Store is the part of the task store the composer writes to.
type Store interface {
	Create(text string) model.Task
	UpdateText(id, text string) bool
}

type Mode int

const (
	ModeComposing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "composing"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// State is either Composing or Editing.
type State interface {
	draft() string
	withDraft(text string) State
}

type Composing struct {
	Draft string
}

type Editing struct {
	Draft    string
	TargetID string
}

func (s Composing) draft() string { return s.Draft }
func (s Editing) draft() string   { return s.Draft }

func (s Composing) withDraft(text string) State { return Composing{Draft: text} }
func (s Editing) withDraft(text string) State {
	return Editing{Draft: text, TargetID: s.TargetID}
}

type Composer struct {
	store Store
	state State
}

func New(store Store) *Composer {
	return &Composer{
		store: store,
		state: Composing{},
	}
}

func (c *Composer) State() State { return c.state }

func (c *Composer) Draft() string { return c.state.draft() }

func (c *Composer) Mode() Mode {
	if _, ok := c.state.(Editing); ok {
		return ModeEditing
	}
	return ModeComposing
}

// TargetID returns the task being edited, if any.
func (c *Composer) TargetID() (string, bool) {
	e, ok := c.state.(Editing)
	return e.TargetID, ok
}

// ButtonLabel is the commit affordance's label for the current mode.
func (c *Composer) ButtonLabel() string {
	if c.Mode() == ModeEditing {
		return "Update"
	}
	return "+"
}

func (c *Composer) SetDraft(text string) {
	c.state = c.state.withDraft(text)
}

// BeginEdit switches to editing id with its current text as the draft.
// The caller must have checked that id is still in the store.
func (c *Composer) BeginEdit(id, currentText string) {
	c.state = Editing{Draft: currentText, TargetID: id}
}

// Commit applies the draft and resets to an empty Composing state. An empty
// draft leaves everything as is and reports false. Whitespace counts as text.
func (c *Composer) Commit() bool {
	text := c.state.draft()
	if len(text) == 0 {
		return false
	}

	switch s := c.state.(type) {
	case Editing:
		c.store.UpdateText(s.TargetID, text)
	default:
		c.store.Create(text)
	}

	c.state = Composing{}
	return true
}
