package persistent

type (
	// State is the activation state of an object.
	State int
	// Status is the textual rendering of an object's lifecycle,
	// including whether it was ever given a jar.
	Status string

	activation uint8
)

const (
	Ghost    State = -1 // State is not loaded.
	UpToDate State = 0  // Loaded and unchanged since.
	Changed  State = 1  // Loaded and modified.
	Sticky   State = 2  // Loaded and pinned; never evicted by a sweep.
)

const (
	StatusUnsaved Status = "unsaved"
	StatusGhost   Status = "ghost"
	StatusSticky  Status = "sticky"
	StatusChanged Status = "changed"
	StatusSaved   Status = "saved"
)

const (
	flagChanged activation = 1 << iota
	flagSticky
)

func (s State) String() string {
	switch s {
	case Ghost:
		return "ghost"
	case UpToDate:
		return "uptodate"
	case Changed:
		return "changed"
	case Sticky:
		return "sticky"
	default:
		return "invalid"
	}
}
