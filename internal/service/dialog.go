package service

// Dialogs tracks which of the three per-entity dialogs is open. The console
// only ever opens one at a time, but that is presentation policy rather than
// an invariant this type enforces.
type Dialogs struct {
	Add    bool `json:"add"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

func (d Dialogs) AnyOpen() bool {
	return d.Add || d.Edit || d.Delete
}
