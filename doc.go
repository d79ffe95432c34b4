// Package persistent implements the in-memory side of an object database:
// persistent objects that move between ghost and live states,
// and a [Cache] that maps oids to them and evicts by recency.
//
// Glossary and invariants:
//
//   - Oid
//
//     Fixed-width identity of an object within its [Jar].
//
//   - Jar
//
//     The data manager owning objects. It loads state on activation
//     and is told about the first modification of a loaded object.
//
//   - Ghost
//
//     An object whose identity is known but whose state is not loaded.
//     Ghosts are held weakly by the cache and may be collected
//     once the program drops them.
//
//   - Live
//
//     A loaded object, in one of the states [UpToDate], [Changed] or [Sticky].
//     Every live object that has a jar and an oid and is resident in a cache
//     is an element of that cache's ring, which keeps it in memory.
//
//   - Ring
//
//     The recency list of live objects, from least to most recently used.
//     Its length always equals [Cache.NonGhostCount].
//
//   - Sweep
//
//     A walk of the ring from its least recently used end that
//     deactivates [UpToDate] objects until the count and byte
//     targets are met. [Changed] and [Sticky] objects are skipped,
//     as are objects whose PDeactivate override refuses.
//     Accesses made while a sweep runs do not reorder the ring.
//
// Size estimates:
//
//   - Estimates are kept in 64-byte blocks, rounded up,
//     and saturate at about 1GiB per object.
//
//   - The cache's byte total is the sum of the estimates of its objects.
//     Ghosts weigh nothing: objects become size 0 when ghosted,
//     and estimates given to cached ghosts are dropped.
//
// Accessing state:
//
// Persistent fields are plain Go fields of a type embedding [Persistent].
// Readers call [Persistent.PAccess] (or use [Get]) and writers call
// [Persistent.PModify] (or use [Set]) before touching them.
// Fields accessed without these hooks are volatile: they
// are neither loaded nor tracked for changes.
//
// Concurrency:
//
// Objects and caches are not safe for concurrent use.
// A cache and its objects belong to a single connection
// and must be guarded by the caller.
package persistent
