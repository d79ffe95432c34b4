package persistent

type (
	// Jar is the data manager that owns objects.
	// It loads their state on activation and
	// is told when they become dirty.
	// Jar values are compared by identity,
	// so implementations are typically pointers.
	Jar interface {
		// LoadState populates obj's state.
		// While it runs, obj reports [Changed] so that writes
		// made by the loader do not register the object.
		LoadState(obj Object) error
		// Register records that obj was modified
		// and must be saved on commit.
		Register(obj Object) error
	}
	// Resolver is optionally implemented by a [Jar]
	// that can materialize any object it owns by oid.
	// [WeakRef] uses it once the referent left the cache.
	Resolver interface {
		Resolve(oid Oid) (Object, error)
	}
	// Ghostable is optionally implemented by an [Object]
	// to drop its in-memory state when it becomes a ghost.
	Ghostable interface {
		DropState()
	}
	// Class is a cacheable value that is never ghosted,
	// such as a persistent type descriptor.
	// Classes are held strongly by the cache and never enter its ring.
	Class interface {
		POid() Oid
		PJar() Jar
	}
	// ClassInvalidator is optionally implemented by a [Class]
	// that wants to hear about invalidation.
	ClassInvalidator interface {
		PInvalidate()
	}
)
