package persistent

import (
	"fmt"
)

// IncrementalGC ghosts least recently used objects until
// the live count and estimated bytes are within their targets.
// With a drain resistance of n, the count target is lowered to
// evict at least about 1/n of the live objects per call.
// It returns how many objects became ghosts.
func (c *Cache) IncrementalGC() int {
	target := c.targetCount
	if resistance := c.drainResistance; resistance >= 1 {
		size := c.nonGhostCount
		target = min(target, size-1-size/resistance)
	}
	return c.sweep(target, c.targetBytes)
}

// FullSweep ghosts every unchanged, unpinned object.
// It returns how many objects became ghosts.
func (c *Cache) FullSweep() int { return c.sweep(0, 0) }

// Minimize is the same as [Cache.FullSweep].
func (c *Cache) Minimize() int { return c.FullSweep() }

// sweep walks the ring from least to most recently used,
// deactivating unchanged objects until the live count is
// within target and, if set, the byte total within targetBytes.
// A target of zero visits every object.
// Objects may reject deactivation by overriding PDeactivate;
// they keep their place and do not count.
func (c *Cache) sweep(target int, targetBytes int64) int {
	if c.sweeping {
		return 0
	}
	defer c.lockRing()()
	var (
		ejected  int
		weakRefs bool
	)
	for element := range c.ring.Sweep() {
		if c.satisfied(target, targetBytes) {
			break
		}
		var (
			obj = element.Value
			p   = obj.persistent()
		)
		if !p.loaded || p.flags != 0 {
			continue
		}
		c.deactivateRan = false
		referenced := p.weakReferenced
		obj.PDeactivate()
		if c.deactivateRan {
			ejected++
			weakRefs = weakRefs || referenced
		}
	}
	if ejected > 0 {
		c.logger.Debug("Swept cache",
			"ejected", ejected, "target", target, "targetBytes", targetBytes,
			"live", c.nonGhostCount, "bytes", c.totalBytes)
		c.stats.Evicted(ejected)
		if weakRefs {
			c.collect()
		}
	}
	c.resized()
	return ejected
}

func (c *Cache) satisfied(target int, targetBytes int64) bool {
	return c.nonGhostCount <= target &&
		(targetBytes == 0 || c.totalBytes <= targetBytes)
}

// lockRing keeps accesses from reordering the ring
// until the returned function is called.
func (c *Cache) lockRing() (unlock func()) {
	held := c.sweeping
	c.sweeping = true
	return func() { c.sweeping = held }
}

// Invalidate forces the objects cached under oids to become ghosts,
// discarding any changes, and evicts the cached classes among them.
// Every oid is processed; the returned error lists those not cached.
func (c *Cache) Invalidate(oids ...Oid) error {
	var missing []Oid
	for _, oid := range oids {
		if !c.invalidate(oid) {
			missing = append(missing, oid)
		}
	}
	c.resized()
	if len(missing) != 0 {
		return fmt.Errorf("%w: %v", ErrNotFound, missing)
	}
	return nil
}

func (c *Cache) invalidate(oid Oid) bool {
	defer c.lockRing()()
	if p, ok := c.lookup(oid); ok {
		if p.loaded {
			p.instance().PInvalidate()
			c.stats.Invalidated()
			c.logger.Trace("Invalidated object", "oid", oid)
		}
		return true
	}
	cls, ok := c.classes[oid]
	if !ok {
		return false
	}
	delete(c.classes, oid)
	if invalidator, ok := cls.(ClassInvalidator); ok {
		invalidator.PInvalidate()
	}
	c.stats.Invalidated()
	c.logger.Trace("Invalidated class", "oid", oid)
	return true
}

// Reify loads the ghosts cached under oids and
// marks them as the most recently used.
// It stops at the first oid that is not cached or fails to load.
func (c *Cache) Reify(oids ...Oid) error {
	for _, oid := range oids {
		p, ok := c.lookup(oid)
		if !ok {
			if _, isClass := c.classes[oid]; isClass {
				continue
			}
			return oidError(ErrNotFound, oid)
		}
		if p.loaded {
			continue
		}
		if err := p.PActivate(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateByteEstimate replaces the estimated size of the object
// cached under oid, adjusting the cache's byte total.
// Unknown oids and ghosts are ignored.
func (c *Cache) UpdateByteEstimate(oid Oid, size int64) {
	p, ok := c.lookup(oid)
	if !ok {
		return
	}
	c.resize(p, size)
}
