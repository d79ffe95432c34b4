package persistent

import "weak"

// WeakRef refers to a persistent object without keeping it in memory.
// While the object is alive, [WeakRef.Get] returns it directly;
// afterwards the ref falls back to the object's cache,
// and then to its jar if the jar is a [Resolver].
//
// Objects that have a WeakRef make sweeps run the cache's
// collector, see [WithCollector].
type WeakRef[T Object] struct {
	jar   Jar
	cache *Cache
	ptr   weak.Pointer[Persistent]
	oid   Oid
}

// NewWeakRef creates a weak reference to obj.
func NewWeakRef[T Object](obj T) *WeakRef[T] {
	p := obj.persistent()
	p.weakReferenced = true
	if p.self == nil {
		p.self = obj
	}
	return &WeakRef[T]{
		jar:   p.jar,
		cache: p.cache,
		ptr:   weak.Make(p),
		oid:   p.POid(),
	}
}

// Oid returns the oid of the referent at the time the ref was made.
func (r *WeakRef[T]) Oid() Oid { return r.oid }

// Get returns the referent if it can still be reached.
func (r *WeakRef[T]) Get() (T, bool) {
	if p := r.ptr.Value(); p != nil {
		if obj, ok := p.instance().(T); ok {
			return obj, true
		}
	}
	if r.oid == InvalidOid {
		var zero T
		return zero, false
	}
	if r.cache != nil {
		if obj, ok := r.cache.Get(r.oid); ok {
			typed, ok := obj.(T)
			return typed, ok
		}
	}
	if resolver, ok := r.jar.(Resolver); ok {
		if obj, err := resolver.Resolve(r.oid); err == nil {
			typed, ok := obj.(T)
			return typed, ok
		}
	}
	var zero T
	return zero, false
}
