package persistent

type (
	// Stats receives cache events.
	// Implementations are called synchronously from cache operations
	// and must not call back into the cache.
	Stats interface {
		// Activated is called after a ghost was loaded.
		Activated()
		// ActivationFailed is called when a jar failed to load a ghost.
		ActivationFailed()
		// Registered is called when an object was registered with its jar.
		Registered()
		// Evicted is called after a sweep ghosted n objects.
		Evicted(n int)
		// Invalidated is called for each invalidated object or class.
		Invalidated()
		// Resized reports the live object count and estimated byte total
		// after an operation that may have changed them.
		Resized(nonGhost int, bytes int64)
	}
	// EmptyStats ignores every event.
	EmptyStats struct{}
)

var _ Stats = EmptyStats{}

func (EmptyStats) Activated()         {}
func (EmptyStats) ActivationFailed()  {}
func (EmptyStats) Registered()        {}
func (EmptyStats) Evicted(int)        {}
func (EmptyStats) Invalidated()       {}
func (EmptyStats) Resized(int, int64) {}
