// Package controller implements the resource CRUD workflow shared by
// every back-office screen: a locally cached record list, a single
// create/edit form gated by validation, a delete confirmation step, and
// reconciliation of gateway responses into the list. The engine is
// generic over the record and draft types; one binding per resource
// instantiates it.
//
// All state lives in the controller and changes only inside its
// methods. Network work is returned as an Effect the presentation layer
// schedules however it likes; the resulting Msg is fed back through
// Apply. Messages are reconciled strictly in arrival order with no
// request sequencing, so overlapping requests resolve last-write-wins —
// a stale list load can overwrite a newer submit result, matching the
// behavior of the screens this replaces.
package controller

import (
	"context"
	"log/slog"

	"github.com/officepro/officepro/internal/validate"
)

// FailureMessage is the single user-facing message shown for any
// transport failure. There is no retry policy; the user re-triggers the
// action manually.
const FailureMessage = "Unable to process the request. Check the API and try again."

// Record is any server-owned entity with a stable identifier.
type Record interface {
	RecordID() string
}

// Effect is deferred gateway work. Running it produces the Msg that
// reconciles the controller. Effects are never cancelled by later user
// actions; their message still arrives after the form has moved on, and
// Apply stays safe to call at any point.
type Effect func(ctx context.Context) Msg

// Controller drives one resource's list and editing workflow.
type Controller[R Record, D any] struct {
	binding       Binding[R, D]
	logger        *slog.Logger
	records       []R
	draft         D
	fieldErrs     validate.Errors
	errMsg        string
	editingID     string
	pendingDelete *R
	loading       bool
	formVisible   bool
	touched       bool
}

// New builds a controller around a resource binding. The record list
// starts empty until the first Load.
func New[R Record, D any](binding Binding[R, D], logger *slog.Logger) *Controller[R, D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[R, D]{
		binding: binding,
		logger:  logger.With("resource", binding.Name),
		draft:   binding.NewDraft(),
	}
}

// Resource returns the binding's resource name.
func (c *Controller[R, D]) Resource() string { return c.binding.Name }

// Records returns the cached record list in display order. Callers must
// treat it as read-only.
func (c *Controller[R, D]) Records() []R { return c.records }

// Loading reports whether a gateway call is in flight.
func (c *Controller[R, D]) Loading() bool { return c.loading }

// ErrorMessage returns the current user-facing failure message, or ""
// when the last operation succeeded.
func (c *Controller[R, D]) ErrorMessage() string { return c.errMsg }

// EditingID returns the identifier of the record being edited, or ""
// when the form is in create mode.
func (c *Controller[R, D]) EditingID() string { return c.editingID }

// FormVisible reports whether the create/edit form is open.
func (c *Controller[R, D]) FormVisible() bool { return c.formVisible }

// Draft returns the staged form values.
func (c *Controller[R, D]) Draft() D { return c.draft }

// SetDraft replaces the staged form values as the user types.
func (c *Controller[R, D]) SetDraft(d D) { c.draft = d }

// FieldErrors returns the per-field violations from the last rejected
// submit. Empty until a submit attempt fails validation.
func (c *Controller[R, D]) FieldErrors() validate.Errors { return c.fieldErrs }

// Touched reports whether a submit attempt has marked the form so
// field-level messages should render.
func (c *Controller[R, D]) Touched() bool { return c.touched }

// PendingDelete returns the record awaiting delete confirmation, if any.
func (c *Controller[R, D]) PendingDelete() *R { return c.pendingDelete }

// Fields returns the form field definitions for this resource.
func (c *Controller[R, D]) Fields() []FieldDef { return c.binding.Fields }

// FieldValue reads one form field from the draft by key.
func (c *Controller[R, D]) FieldValue(key string) string {
	return c.binding.Get(c.draft, key)
}

// SetFieldValue writes one form field into the draft by key.
func (c *Controller[R, D]) SetFieldValue(key, value string) {
	c.draft = c.binding.Set(c.draft, key, value)
}

// Load fetches the full list. On failure the previous list stays
// visible; only the error message changes.
func (c *Controller[R, D]) Load() Effect {
	c.loading = true
	c.errMsg = ""

	name := c.binding.Name
	list := c.binding.List
	return func(ctx context.Context) Msg {
		records, err := list(ctx)
		return ListLoadedMsg[R]{Resource: name, Records: records, Err: err}
	}
}

// Refresh is Load under its user-facing name. Concurrent refreshes are
// not deduplicated; the last response to arrive wins.
func (c *Controller[R, D]) Refresh() Effect { return c.Load() }

// StartCreate opens the form with field defaults. Calling it again
// resets the draft to the same defaults.
func (c *Controller[R, D]) StartCreate() {
	c.resetForm()
	c.formVisible = true
}

// StartEdit opens the form populated from a record currently in the
// list. The controller does not re-verify membership.
func (c *Controller[R, D]) StartEdit(record R) {
	c.editingID = record.RecordID()
	c.draft = c.binding.DraftFor(record)
	c.fieldErrs = nil
	c.touched = false
	c.formVisible = true
}

// CloseForm hides the form. The editing context is kept so the form can
// be reopened; it is discarded on the next StartCreate, on a successful
// submit, or when the edited record is deleted.
func (c *Controller[R, D]) CloseForm() {
	c.formVisible = false
}

func (c *Controller[R, D]) resetForm() {
	c.editingID = ""
	c.draft = c.binding.NewDraft()
	c.fieldErrs = nil
	c.touched = false
}

// Submit validates the draft and, when it passes, sends it to the
// gateway: update when a record is being edited, create otherwise. An
// invalid draft marks every field touched and returns a nil Effect
// without any network call.
func (c *Controller[R, D]) Submit() Effect {
	editing := c.editingID != ""

	if errs := c.binding.Validate(c.draft, editing); len(errs) > 0 {
		c.fieldErrs = errs
		c.touched = true
		return nil
	}
	c.fieldErrs = nil
	c.touched = false
	c.loading = true
	c.errMsg = ""

	name := c.binding.Name
	draft := c.draft
	if editing {
		id := c.editingID
		update := c.binding.Update
		return func(ctx context.Context) Msg {
			record, err := update(ctx, id, draft)
			return SavedMsg[R]{Resource: name, Record: record, Err: err}
		}
	}
	create := c.binding.Create
	return func(ctx context.Context) Msg {
		record, err := create(ctx, draft)
		return SavedMsg[R]{Resource: name, Record: record, Created: true, Err: err}
	}
}

// RequestDelete stages a record for confirmation. Nothing is sent to
// the gateway until ConfirmDelete.
func (c *Controller[R, D]) RequestDelete(record R) {
	c.pendingDelete = &record
}

// CancelDelete clears the staged delete.
func (c *Controller[R, D]) CancelDelete() {
	c.pendingDelete = nil
}

// ConfirmDelete sends the staged delete to the gateway. It is a no-op
// when nothing is staged. On failure the selection stays staged so the
// same confirmation can be retried.
func (c *Controller[R, D]) ConfirmDelete() Effect {
	if c.pendingDelete == nil {
		return nil
	}
	c.loading = true
	c.errMsg = ""

	name := c.binding.Name
	id := (*c.pendingDelete).RecordID()
	del := c.binding.Delete
	return func(ctx context.Context) Msg {
		err := del(ctx, id)
		return DeletedMsg{Resource: name, ID: id, Err: err}
	}
}

// Apply reconciles a gateway response into the controller. It returns
// false for messages addressed to another resource. Every mutation
// reconciles from the server's canonical record, never from the
// client's guess, so server-computed fields are always current.
func (c *Controller[R, D]) Apply(msg Msg) bool {
	switch m := msg.(type) {
	case ListLoadedMsg[R]:
		if m.Resource != c.binding.Name {
			return false
		}
		c.loading = false
		if m.Err != nil {
			c.fail("load", m.Err)
			return true
		}
		c.records = m.Records
		return true

	case SavedMsg[R]:
		if m.Resource != c.binding.Name {
			return false
		}
		c.loading = false
		if m.Err != nil {
			// The form stays open so the user can retry without
			// re-entering data.
			c.fail("save", m.Err)
			return true
		}
		if m.Created {
			c.records = append([]R{m.Record}, c.records...)
		} else {
			id := m.Record.RecordID()
			for i, r := range c.records {
				if r.RecordID() == id {
					c.records[i] = m.Record
					break
				}
			}
		}
		c.formVisible = false
		c.resetForm()
		return true

	case DeletedMsg:
		if m.Resource != c.binding.Name {
			return false
		}
		c.loading = false
		if m.Err != nil {
			c.fail("delete", m.Err)
			return true
		}
		kept := c.records[:0:0]
		for _, r := range c.records {
			if r.RecordID() != m.ID {
				kept = append(kept, r)
			}
		}
		c.records = kept
		c.pendingDelete = nil
		if c.editingID == m.ID {
			c.resetForm()
			c.formVisible = false
		}
		return true
	}

	return false
}

func (c *Controller[R, D]) fail(op string, err error) {
	c.logger.Error("gateway call failed", "op", op, "error", err)
	c.errMsg = FailureMessage
}
