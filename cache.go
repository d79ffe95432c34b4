package persistent

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"weak"

	"github.com/djdv/go-persistent/internal/ring"
	"github.com/ethereum/go-ethereum/log"
)

type (
	ringHome = ring.Home[Object]
	// Cache maps oids to the persistent objects of a single [Jar].
	//
	// Objects are held weakly: once nothing else references a
	// ghost, it leaves the cache on its own. Live (non-ghost) objects
	// are additionally held by a ring ordered from least to most
	// recently used, which [Cache.IncrementalGC] trims down
	// to the configured count and byte targets.
	//
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache struct {
		jar     Jar
		logger  log.Logger
		stats   Stats
		collect func()
		objects map[Oid]weak.Pointer[Persistent]
		classes map[Oid]Class
		ring    ringHome
		targetCount,
		drainResistance,
		nonGhostCount int
		targetBytes,
		totalBytes int64
		sweeping,
		deactivateRan bool
	}
	// DebugEntry describes one cached value, see [Cache.DebugInfo].
	DebugEntry struct {
		Type  string
		State State
		Oid   Oid
	}
)

// New creates a [Cache] for objects owned by jar.
func New(jar Jar, options ...Option) (*Cache, error) {
	if jar == nil {
		return nil, fmt.Errorf("%w: jar is required", ErrInvalidConfig)
	}
	settings := newSettings(options)
	if err := settings.config.Validate(); err != nil {
		return nil, err
	}
	cfg := settings.config
	return &Cache{
		jar:             jar,
		logger:          settings.logger,
		stats:           settings.stats,
		collect:         settings.collect,
		objects:         make(map[Oid]weak.Pointer[Persistent]),
		classes:         make(map[Oid]Class),
		targetCount:     cfg.TargetCount,
		drainResistance: cfg.DrainResistance,
		targetBytes:     cfg.TargetBytes,
	}, nil
}

// Jar returns the jar whose objects the cache holds.
func (c *Cache) Jar() Jar { return c.jar }

// Get returns the object cached under oid.
// Classes are returned by [Cache.Class].
func (c *Cache) Get(oid Oid) (Object, bool) {
	if p, ok := c.lookup(oid); ok {
		return p.instance(), true
	}
	return nil, false
}

// Class returns the class cached under oid.
func (c *Cache) Class(oid Oid) (Class, bool) {
	cls, ok := c.classes[oid]
	return cls, ok
}

// Contains reports whether any value is cached under oid.
func (c *Cache) Contains(oid Oid) bool {
	if _, ok := c.classes[oid]; ok {
		return true
	}
	_, ok := c.lookup(oid)
	return ok
}

// lookup returns the live object registered under oid,
// dropping the entry if the object was collected.
func (c *Cache) lookup(oid Oid) (*Persistent, bool) {
	ref, ok := c.objects[oid]
	if !ok {
		return nil, false
	}
	p := ref.Value()
	if p == nil {
		delete(c.objects, oid)
		return nil, false
	}
	return p, true
}

// Set admits value under oid. value must be an [Object] or a [Class]
// whose oid is oid and whose jar is set.
// Re-admitting the same value is a no-op.
// A live object is linked into the ring as the most recently used.
func (c *Cache) Set(oid Oid, value any) error {
	var err error
	switch v := value.(type) {
	case Object:
		err = c.setObject(oid, v)
	case Class:
		err = c.setClass(oid, v)
	default:
		err = fmt.Errorf("%w: %T", ErrNotCacheable, value)
	}
	if err != nil {
		return err
	}
	c.resized()
	return nil
}

func (c *Cache) setObject(oid Oid, obj Object) error {
	p := obj.persistent()
	if got := p.POid(); got != oid {
		return fmt.Errorf("%w: key %s, object %s",
			ErrOidMismatch, oid, got)
	}
	if _, ok := c.classes[oid]; ok {
		return oidError(ErrDuplicateOid, oid)
	}
	if existing, cached := c.lookup(oid); cached {
		if existing != p {
			return oidError(ErrDuplicateOid, oid)
		}
		return nil
	}
	if p.jar == nil {
		return oidError(ErrJarMissing, oid)
	}
	if p.cache != nil && p.cache != c {
		return oidError(ErrForeignCache, oid)
	}
	c.objects[oid] = weak.Make(p)
	if !p.loaded {
		p.size = 0
	}
	c.totalBytes += p.PEstimatedSize()
	p.cache, p.self = c, obj
	if p.loaded && !c.ring.Contains(&p.node) {
		c.ring.Add(&p.node, obj)
		c.nonGhostCount++
	}
	c.logger.Trace("Admitted object", "oid", oid, "state", p.PState())
	return nil
}

func (c *Cache) setClass(oid Oid, cls Class) error {
	if got := cls.POid(); got != oid {
		return fmt.Errorf("%w: key %s, class %s",
			ErrOidMismatch, oid, got)
	}
	if _, ok := c.lookup(oid); ok {
		return oidError(ErrDuplicateOid, oid)
	}
	if existing, ok := c.classes[oid]; ok && existing != cls {
		return oidError(ErrDuplicateOid, oid)
	}
	if cls.PJar() == nil {
		return oidError(ErrJarMissing, oid)
	}
	c.classes[oid] = cls
	c.logger.Trace("Admitted class", "oid", oid, "type", fmt.Sprintf("%T", cls))
	return nil
}

// Remove evicts the value cached under oid.
// A live object leaves the ring, and the object forgets the cache
// so that it may be admitted elsewhere.
func (c *Cache) Remove(oid Oid) error {
	if _, ok := c.classes[oid]; ok {
		delete(c.classes, oid)
		return nil
	}
	p, ok := c.lookup(oid)
	if !ok {
		return oidError(ErrNotFound, oid)
	}
	delete(c.objects, oid)
	c.unlink(p)
	c.totalBytes -= p.PEstimatedSize()
	p.cache = nil
	c.resized()
	return nil
}

// AdmitNewGhost turns obj into a ghost owned by
// the cache's jar under oid, and admits it.
// obj must not have an oid or jar yet.
func (c *Cache) AdmitNewGhost(oid Oid, obj Object) error {
	p := obj.persistent()
	if p.hasOid {
		return oidError(ErrAlreadyHasOid, p.oid)
	}
	if p.jar != nil {
		return fmt.Errorf("%w: %v", ErrAlreadyHasJar, p.jar)
	}
	if c.Contains(oid) {
		return oidError(ErrDuplicateOid, oid)
	}
	p.oid, p.hasOid = oid, true
	p.jar, p.self = c.jar, obj
	p.loaded, p.flags = false, 0
	p.size = 0
	if ghostable, ok := obj.(Ghostable); ok {
		ghostable.DropState()
	}
	if err := c.setObject(oid, obj); err != nil {
		return err
	}
	c.resized()
	return nil
}

// Touch marks the live object cached under oid as the most recently used.
// It reports false if nothing was reordered: the oid is not
// cached, the object is a ghost, or a sweep is in progress.
func (c *Cache) Touch(oid Oid) bool {
	if c.sweeping {
		return false
	}
	p, ok := c.lookup(oid)
	if !ok {
		return false
	}
	return c.mru(p)
}

// Len returns the number of cached values, ghosts and classes included.
// Entries of collected objects are pruned along the way.
func (c *Cache) Len() int {
	count := len(c.classes)
	for range c.Items() {
		count++
	}
	return count
}

// RingLen returns the number of objects in the ring.
func (c *Cache) RingLen() int { return c.ring.Len() }

// NonGhostCount returns the number of live objects in the cache.
func (c *Cache) NonGhostCount() int { return c.nonGhostCount }

// TotalEstimatedBytes returns the sum of the estimated sizes
// of the cached objects.
func (c *Cache) TotalEstimatedBytes() int64 { return c.totalBytes }

// ClassCount returns the number of cached classes.
func (c *Cache) ClassCount() int { return len(c.classes) }

// TargetCount returns the number of live objects a sweep aims for.
func (c *Cache) TargetCount() int { return c.targetCount }

// SetTargetCount changes the number of live objects a sweep aims for.
func (c *Cache) SetTargetCount(count int) error {
	if count < 0 {
		return negativeConfigError("target count", int64(count))
	}
	c.targetCount = count
	return nil
}

// DrainResistance returns the drain resistance, see [WithDrainResistance].
func (c *Cache) DrainResistance() int { return c.drainResistance }

// SetDrainResistance changes the drain resistance. Zero disables it.
func (c *Cache) SetDrainResistance(resistance int) error {
	if resistance < 0 {
		return negativeConfigError("drain resistance", int64(resistance))
	}
	c.drainResistance = resistance
	return nil
}

// TargetBytes returns the estimated byte total a sweep aims for.
func (c *Cache) TargetBytes() int64 { return c.targetBytes }

// SetTargetBytes changes the estimated byte total a sweep aims for.
// Zero disables the byte target.
func (c *Cache) SetTargetBytes(bytes int64) error {
	if bytes < 0 {
		return negativeConfigError("target bytes", bytes)
	}
	c.targetBytes = bytes
	return nil
}

// Items returns an iterator over the cached objects,
// ghosts included, in no particular order.
func (c *Cache) Items() iter.Seq2[Oid, Object] {
	return func(yield func(Oid, Object) bool) {
		for oid := range c.objects {
			p, ok := c.lookup(oid)
			if !ok {
				continue
			}
			if !yield(oid, p.instance()) {
				return
			}
		}
	}
}

// LRUItems returns an iterator over the live objects,
// from least to most recently used.
// The behavior of LRUItems is undefined if the ring
// is changed during iteration.
func (c *Cache) LRUItems() iter.Seq2[Oid, Object] {
	return func(yield func(Oid, Object) bool) {
		for obj := range c.ring.All() {
			if !yield(obj.persistent().oid, obj) {
				return
			}
		}
	}
}

// ClassItems returns an iterator over the cached classes.
func (c *Cache) ClassItems() iter.Seq2[Oid, Class] {
	return func(yield func(Oid, Class) bool) {
		for oid, cls := range c.classes {
			if !yield(oid, cls) {
				return
			}
		}
	}
}

// DebugInfo describes every cached value, ordered by oid.
func (c *Cache) DebugInfo() []DebugEntry {
	entries := make([]DebugEntry, 0, len(c.objects)+len(c.classes))
	for oid, obj := range c.Items() {
		entries = append(entries, DebugEntry{
			Oid:   oid,
			Type:  fmt.Sprintf("%T", obj),
			State: obj.persistent().PState(),
		})
	}
	for oid, cls := range c.classes {
		entries = append(entries, DebugEntry{
			Oid:   oid,
			Type:  fmt.Sprintf("%T", cls),
			State: UpToDate,
		})
	}
	slices.SortFunc(entries, func(a, b DebugEntry) int {
		return cmp.Compare(a.Oid, b.Oid)
	})
	return entries
}

// mru makes p the most recently used object,
// linking it into the ring if it is live but not yet there.
func (c *Cache) mru(p *Persistent) bool {
	if c.sweeping {
		return false
	}
	if c.ring.MoveToHead(&p.node) {
		return true
	}
	if !p.loaded {
		return false
	}
	c.ring.Add(&p.node, p.instance())
	c.nonGhostCount++
	return true
}

func (c *Cache) unlink(p *Persistent) bool {
	if !c.ring.Delete(&p.node) {
		return false
	}
	c.nonGhostCount--
	return true
}

// resize replaces p's contribution to the byte total.
// Ghosts weigh nothing.
func (c *Cache) resize(p *Persistent, size int64) {
	units := sizeUnits(size)
	if !p.loaded {
		units = 0
	}
	c.totalBytes += (int64(units) - int64(p.size)) * sizeUnit
	p.size = units
}

func (c *Cache) activated(p *Persistent) {
	c.stats.Activated()
	c.mru(p)
	c.resized()
}

func (c *Cache) loadFailed(p *Persistent, err error) {
	c.resize(p, ghostSizeHint)
	c.unlink(p)
	c.stats.ActivationFailed()
	c.logger.Debug("Failed to load object state", "oid", p.oid, "err", err)
}

func (c *Cache) deactivated(p *Persistent) {
	c.resize(p, ghostSizeHint)
	c.unlink(p)
	c.deactivateRan = true
}

// resized reports the cache's occupancy to its stats.
func (c *Cache) resized() {
	if debugging {
		assert(c.ring.Len() == c.nonGhostCount,
			"ring length differs from the live object count")
		assert(c.nonGhostCount >= 0,
			"negative live object count")
	}
	c.stats.Resized(c.nonGhostCount, c.totalBytes)
}
