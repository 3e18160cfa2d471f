package controller

// Msg is a gateway completion routed back into a controller through
// Apply. Each message names its resource so a screen holding several
// controllers can fan messages out to the right one.
type Msg interface {
	ResourceName() string
}

// ListLoadedMsg carries a full list snapshot or the load failure.
type ListLoadedMsg[R Record] struct {
	Err      error
	Resource string
	Records  []R
}

// ResourceName identifies the controller this message belongs to.
func (m ListLoadedMsg[R]) ResourceName() string { return m.Resource }

// SavedMsg carries the canonical record returned by a create or update,
// or the failure that prevented it.
type SavedMsg[R Record] struct {
	Err      error
	Resource string
	Record   R
	Created  bool
}

// ResourceName identifies the controller this message belongs to.
func (m SavedMsg[R]) ResourceName() string { return m.Resource }

// DeletedMsg reports the outcome of a confirmed delete.
type DeletedMsg struct {
	Err      error
	Resource string
	ID       string
}

// ResourceName identifies the controller this message belongs to.
func (m DeletedMsg) ResourceName() string { return m.Resource }
