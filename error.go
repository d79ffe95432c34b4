package persistent

import (
	"fmt"

	platformerrors "github.com/jmgilman/go/errors"
)

var (
	// ErrNotCacheable may be returned from [Cache.Set]
	// when the value is neither an [Object] nor a [Class].
	ErrNotCacheable = platformerrors.New(platformerrors.CodeInvalidInput, "cache values must be persistent objects")
	// ErrOidMismatch may be returned from [Cache.Set]
	// when the key does not match the value's own oid.
	ErrOidMismatch = platformerrors.New(platformerrors.CodeInvalidInput, "cache key does not match oid")
	// ErrJarMissing may be returned from [Cache.Set]
	// when the value has no jar.
	ErrJarMissing = platformerrors.New(platformerrors.CodeInvalidInput, "cached object jar missing")
	// ErrDuplicateOid is returned when a different value
	// is already cached under the same oid.
	ErrDuplicateOid = platformerrors.New(platformerrors.CodeAlreadyExists, "a different object already has the same oid")
	// ErrForeignCache is returned when admitting an object
	// that is resident in another cache.
	ErrForeignCache = platformerrors.New(platformerrors.CodeConflict, "cache values may only be in one cache")
	// ErrAlreadyHasOid may be returned from [Cache.AdmitNewGhost].
	ErrAlreadyHasOid = platformerrors.New(platformerrors.CodeInvalidInput, "object already has oid")
	// ErrAlreadyHasJar may be returned from [Cache.AdmitNewGhost]
	// and [Persistent.PSetJar].
	ErrAlreadyHasJar = platformerrors.New(platformerrors.CodeInvalidInput, "object already has jar")
	// ErrNotFound is returned for oids that are not cached.
	ErrNotFound = platformerrors.New(platformerrors.CodeNotFound, "oid not found in cache")
	// ErrCachedObject is returned when changing the jar or oid
	// of an object that is resident in a cache.
	ErrCachedObject = platformerrors.New(platformerrors.CodeConflict, "can not change jar or oid of cached object")
	// ErrGhost is returned by operations that require a live object.
	ErrGhost = platformerrors.New(platformerrors.CodeConflict, "object is a ghost")
	// ErrNegativeSize may be returned from [Persistent.PSetEstimatedSize].
	ErrNegativeSize = platformerrors.New(platformerrors.CodeInvalidInput, "estimated size must not be negative")
	// ErrInvalidConfig may be returned from [New] and [LoadConfig].
	ErrInvalidConfig = platformerrors.New(platformerrors.CodeInvalidConfig, "invalid cache configuration")
)

func oidError(err error, oid Oid) error {
	return fmt.Errorf("%w: oid %s", err, oid)
}

func negativeConfigError(field string, value int64) error {
	return fmt.Errorf(
		"%w: %s must be >=0 but %d was requested",
		ErrInvalidConfig, field, value)
}

func loadError(err error, oid Oid) error {
	return platformerrors.Wrapf(err, platformerrors.CodeDatabase, "could not load state of oid %s", oid)
}
