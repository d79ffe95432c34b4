package persistent

import (
	"fmt"
	"strings"

	"github.com/djdv/go-persistent/internal/ring"
)

type (
	// Object is implemented by every type whose instances a [Cache] manages.
	// It can only be implemented by embedding [Persistent].
	//
	// PDeactivate and PInvalidate may be overridden by the embedding type.
	// An override of PDeactivate that does not call the embedded method
	// leaves the object live, and a sweep will keep it in the ring.
	Object interface {
		PDeactivate()
		PInvalidate()
		persistent() *Persistent
	}
	// Persistent is the base for types that need persistency.
	// It tracks the object's jar, oid, serial, activation state
	// and estimated size, and notifies the owning cache of accesses.
	//
	// Embedding types call [Persistent.PAccess] before reading
	// and [Persistent.PModify] before writing their persistent fields
	// (or use [Get] and [Set]). Volatile fields need neither.
	//
	// The zero value is a free-standing object with no jar or oid.
	Persistent struct {
		jar    Jar
		cache  *Cache
		self   Object
		node   ring.Ring[Object]
		oid    Oid
		serial Serial
		size   uint32 // In sizeUnit blocks.
		flags  activation
		loaded,
		hasOid,
		weakReferenced bool
	}
)

const (
	sizeUnit          = 64
	maxSizeUnits      = 1<<24 - 1
	maxEstimatedBytes = (maxSizeUnits - 1) * sizeUnit
	// ghostSizeHint is the estimate reported for an object that became a ghost.
	ghostSizeHint = -1
)

var _ Object = (*Persistent)(nil)

func (p *Persistent) persistent() *Persistent { return p }

// instance returns the object that embeds p,
// or p itself if p was never bound to one.
func (p *Persistent) instance() Object {
	if p.self != nil {
		return p.self
	}
	return p
}

// resident reports whether p is registered in a cache.
func (p *Persistent) resident() bool { return p.cache != nil }

// PJar returns the jar that owns the object, or nil.
func (p *Persistent) PJar() Jar { return p.jar }

// PSetJar assigns the object's jar, making it live and unchanged.
// A jar can only be assigned once; it must be cleared
// with [Persistent.PClearJar] before another is assigned.
// The jar of an object resident in a cache can not be changed.
func (p *Persistent) PSetJar(jar Jar) error {
	if jar == nil {
		return p.PClearJar()
	}
	if p.jar == jar {
		return nil
	}
	if p.jar != nil {
		if p.resident() {
			return oidError(ErrCachedObject, p.oid)
		}
		return fmt.Errorf("%w: %v", ErrAlreadyHasJar, p.jar)
	}
	p.jar = jar
	p.loaded, p.flags = true, 0
	return nil
}

// PClearJar detaches the object from its jar, leaving it a ghost.
func (p *Persistent) PClearJar() error {
	if p.jar == nil {
		return nil
	}
	if p.resident() {
		return oidError(ErrCachedObject, p.oid)
	}
	p.jar = nil
	p.loaded, p.flags = false, 0
	return nil
}

// POid returns the object's oid, or [InvalidOid] if it has none.
func (p *Persistent) POid() Oid {
	if !p.hasOid {
		return InvalidOid
	}
	return p.oid
}

// PSetOid assigns the object's oid.
// Setting [InvalidOid] is the same as [Persistent.PClearOid].
// The oid of an object resident in a cache can not be changed.
func (p *Persistent) PSetOid(oid Oid) error {
	if oid == InvalidOid {
		return p.PClearOid()
	}
	if p.hasOid && p.oid == oid {
		return nil
	}
	if p.resident() {
		return oidError(ErrCachedObject, p.oid)
	}
	p.oid, p.hasOid = oid, true
	return nil
}

// PClearOid removes the object's oid.
func (p *Persistent) PClearOid() error {
	if !p.hasOid {
		return nil
	}
	if p.resident() {
		return oidError(ErrCachedObject, p.oid)
	}
	p.oid, p.hasOid = 0, false
	return nil
}

// PSerial returns the last known serial, or [ZeroSerial].
func (p *Persistent) PSerial() Serial { return p.serial }

// PSetSerial records the object's serial.
func (p *Persistent) PSetSerial(serial Serial) { p.serial = serial }

// PState returns the activation state of the object.
// Objects without a jar are always reported as [UpToDate].
func (p *Persistent) PState() State {
	switch {
	case p.jar == nil:
		return UpToDate
	case !p.loaded:
		return Ghost
	case p.flags&flagSticky != 0:
		return Sticky
	case p.flags&flagChanged != 0:
		return Changed
	default:
		return UpToDate
	}
}

// PStatus is like [Persistent.PState] but distinguishes
// objects that were never given a jar.
func (p *Persistent) PStatus() Status {
	switch {
	case p.jar == nil:
		return StatusUnsaved
	case !p.loaded:
		return StatusGhost
	case p.flags&flagSticky != 0:
		return StatusSticky
	case p.flags&flagChanged != 0:
		return StatusChanged
	default:
		return StatusSaved
	}
}

// PIsGhost reports whether the object's state is not loaded.
func (p *Persistent) PIsGhost() bool { return p.jar != nil && !p.loaded }

// PChanged reports whether the object was modified since it was loaded.
func (p *Persistent) PChanged() bool {
	return p.jar != nil && p.loaded && p.flags&flagChanged != 0
}

// PSetChanged marks the object as modified or unmodified.
// Marking a ghost as modified activates it first.
// The jar is told about the object the first time it becomes modified;
// if it refuses, the object is left unmodified and the error is returned.
func (p *Persistent) PSetChanged(changed bool) error {
	if !p.loaded {
		if !changed {
			return nil
		}
		if err := p.PActivate(); err != nil {
			return err
		}
	}
	if changed {
		return p.markChanged()
	}
	p.flags &^= flagChanged
	return nil
}

// PSticky reports whether the object is pinned in memory.
func (p *Persistent) PSticky() bool {
	return p.loaded && p.flags&flagSticky != 0
}

// PSetSticky pins or unpins the object.
// Sticky objects are never ghosted by a sweep, only by invalidation.
func (p *Persistent) PSetSticky(sticky bool) error {
	if !p.loaded {
		return oidError(ErrGhost, p.oid)
	}
	if sticky {
		p.flags |= flagSticky
	} else {
		p.flags &^= flagSticky
	}
	return nil
}

// PEstimatedSize returns the estimated size of the object's state in bytes.
// The estimate is kept in 64-byte blocks and saturates at about 1GiB.
func (p *Persistent) PEstimatedSize() int64 { return int64(p.size) * sizeUnit }

// PSetEstimatedSize records the estimated size of the object's state.
// The owning cache's byte total follows the change;
// ghosts in a cache keep a size of zero.
func (p *Persistent) PSetEstimatedSize(size int64) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if c := p.cache; c != nil {
		c.resize(p, size)
		return nil
	}
	p.size = sizeUnits(size)
	return nil
}

func sizeUnits(size int64) uint32 {
	switch {
	case size < 0:
		return 0
	case size > maxEstimatedBytes:
		return maxSizeUnits
	default:
		return uint32(size/sizeUnit) + 1
	}
}

// PActivate loads the object's state if it is a ghost.
//
// While the jar loads the state, the object reports [Changed]
// so that writes made by the loader do not register it.
// On success the object is [UpToDate]. If the jar fails,
// the object is left a ghost, exactly as before the call.
// A ghost without a jar or oid simply becomes live.
func (p *Persistent) PActivate() error {
	if p.loaded {
		return nil
	}
	if p.jar == nil || !p.hasOid {
		p.loaded, p.flags = true, 0
		return nil
	}
	p.loaded, p.flags = true, flagChanged
	if err := p.jar.LoadState(p.instance()); err != nil {
		if c := p.cache; c != nil {
			c.loadFailed(p, err)
		}
		p.loaded, p.flags = false, 0
		return loadError(err, p.oid)
	}
	p.flags = 0
	if c := p.cache; c != nil {
		c.activated(p)
	}
	return nil
}

// PDeactivate turns an unchanged, unpinned object into a ghost,
// dropping its state and releasing its place in the cache's ring.
// It does nothing for ghosts, [Changed] or [Sticky] objects.
func (p *Persistent) PDeactivate() {
	if p.loaded && p.flags == 0 {
		p.ghostify(true)
	}
}

// PInvalidate turns the object into a ghost
// regardless of whether it was changed or pinned.
// Overrides of PDeactivate are bypassed.
func (p *Persistent) PInvalidate() {
	p.loaded, p.flags = true, 0
	p.ghostify(true)
}

func (p *Persistent) ghostify(drop bool) {
	if p.jar == nil {
		return
	}
	p.loaded, p.flags = false, 0
	if drop {
		if ghostable, ok := p.self.(Ghostable); ok {
			ghostable.DropState()
		}
	}
	if c := p.cache; c != nil {
		c.deactivated(p)
	}
}

// PAccess must be called before reading persistent fields.
// It loads a ghost and marks the object as most recently used.
func (p *Persistent) PAccess() error {
	if !p.loaded {
		if err := p.PActivate(); err != nil {
			return err
		}
	}
	p.accessed()
	return nil
}

// PModify must be called before writing persistent fields.
// It is [Persistent.PAccess] followed by marking the object changed;
// the jar hears about the first change only.
// If the jar refuses the registration, the object stays unchanged
// and the caller must not proceed with the write.
func (p *Persistent) PModify() error {
	if err := p.PAccess(); err != nil {
		return err
	}
	if p.jar == nil || !p.hasOid {
		return nil
	}
	return p.markChanged()
}

func (p *Persistent) markChanged() error {
	if p.flags&flagChanged != 0 {
		return nil
	}
	p.flags |= flagChanged
	if p.jar == nil || !p.hasOid {
		return nil
	}
	if err := p.jar.Register(p.instance()); err != nil {
		p.flags &^= flagChanged
		return err
	}
	if c := p.cache; c != nil {
		c.stats.Registered()
	}
	return nil
}

func (p *Persistent) accessed() {
	if p.jar == nil || !p.hasOid || !p.loaded {
		return
	}
	if c := p.cache; c != nil {
		c.mru(p)
	}
}

func (p *Persistent) String() string {
	var (
		b    strings.Builder
		self = p.instance()
	)
	fmt.Fprintf(&b, "<%T object at %p", self, self)
	if p.hasOid {
		b.WriteString(" oid ")
		b.WriteString(p.oid.String())
	}
	if p.jar != nil {
		fmt.Fprintf(&b, " in %v", p.jar)
	}
	b.WriteByte('>')
	return b.String()
}
