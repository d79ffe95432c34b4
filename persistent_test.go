package persistent_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/djdv/go-persistent"
	"github.com/djdv/go-persistent/mocks"
	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	item struct {
		persistent.Persistent
		Value,
		loads,
		drops int
	}
	// stubborn refuses deactivation while refuse is set.
	stubborn struct {
		item
		onDeactivate func()
		refuse       bool
	}
	class struct {
		jar         persistent.Jar
		oid         persistent.Oid
		invalidated int
	}
	loader interface{ load() }
)

func (i *item) load() {
	i.Value = int(i.POid()) + 1
	i.loads++
}

func (i *item) DropState() {
	i.Value = 0
	i.drops++
}

func (s *stubborn) PDeactivate() {
	if s.onDeactivate != nil {
		s.onDeactivate()
	}
	if !s.refuse {
		s.item.PDeactivate()
	}
}

func (c *class) POid() persistent.Oid { return c.oid }
func (c *class) PJar() persistent.Jar { return c.jar }
func (c *class) PInvalidate()         { c.invalidated++ }

func newJar() *mocks.JarMock {
	return &mocks.JarMock{
		LoadStateFunc: func(obj persistent.Object) error {
			if l, ok := obj.(loader); ok {
				l.load()
			}
			return nil
		},
		RegisterFunc: func(persistent.Object) error { return nil },
	}
}

func newCache(t testing.TB, jar persistent.Jar, options ...persistent.Option) *persistent.Cache {
	t.Helper()
	cache, err := persistent.New(jar, options...)
	require.NoError(t, err)
	return cache
}

// admitLive admits a new object under oid and loads it.
func admitLive(t testing.TB, cache *persistent.Cache, oid persistent.Oid) *item {
	t.Helper()
	obj := new(item)
	require.NoError(t, cache.AdmitNewGhost(oid, obj))
	require.NoError(t, obj.PActivate())
	return obj
}

func admitLiveN(t testing.TB, cache *persistent.Cache, count int) []*item {
	t.Helper()
	objects := make([]*item, count)
	for i := range objects {
		objects[i] = admitLive(t, cache, persistent.Oid(i))
	}
	return objects
}

func TestPersistent(t *testing.T) {
	t.Run("zero value", zeroValue)
	t.Run("jar and oid", jarAndOid)
	t.Run("activation", activation)
	t.Run("activation failure", activationFailure)
	t.Run("activation failure after access", activationFailureAfterAccess)
	t.Run("activation without jar", activationWithoutJar)
	t.Run("modification", modification)
	t.Run("refused registration", refusedRegistration)
	t.Run("loader writes", loaderWrites)
	t.Run("deactivation", deactivation)
	t.Run("invalidation", invalidation)
	t.Run("sticky", sticky)
	t.Run("set changed", setChanged)
	t.Run("estimated size", estimatedSize)
	t.Run("string", stringer)
}

func zeroValue(t *testing.T) {
	t.Parallel()
	var obj item
	assert.Equal(t, persistent.UpToDate, obj.PState())
	assert.Equal(t, persistent.StatusUnsaved, obj.PStatus())
	assert.Equal(t, persistent.InvalidOid, obj.POid())
	assert.Nil(t, obj.PJar())
	assert.False(t, obj.PIsGhost())
	assert.False(t, obj.PChanged())
	assert.True(t, obj.PSerial().IsZero())
	assert.Zero(t, obj.PEstimatedSize())
}

func jarAndOid(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		other = newJar()
		obj   item
	)
	require.NoError(t, obj.PSetJar(jar))
	assert.Equal(t, persistent.StatusSaved, obj.PStatus())
	require.NoError(t, obj.PSetOid(7))
	assert.Equal(t, persistent.Oid(7), obj.POid())
	obj.PSetSerial(persistent.SerialFromUint64(3))
	assert.Equal(t, uint64(3), obj.PSerial().Uint64())

	cache := newCache(t, jar)
	require.NoError(t, cache.Set(7, &obj))
	for _, err := range []error{
		obj.PSetJar(other),
		obj.PClearJar(),
		obj.PSetOid(8),
		obj.PClearOid(),
	} {
		assert.ErrorIs(t, err, persistent.ErrCachedObject)
	}
	assert.NoError(t, obj.PSetJar(jar), "same jar is a no-op")
	assert.NoError(t, obj.PSetOid(7), "same oid is a no-op")

	require.NoError(t, cache.Remove(7))
	require.NoError(t, obj.PSetChanged(true))
	err := obj.PSetJar(other)
	require.ErrorIs(t, err, persistent.ErrAlreadyHasJar, "jars are assigned once")
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	assert.Same(t, jar, obj.PJar())
	assert.Equal(t, persistent.Changed, obj.PState(), "pending changes are kept")
	assert.Empty(t, other.RegisterCalls())
	require.NoError(t, obj.PSetChanged(false))

	require.NoError(t, obj.PClearOid())
	assert.Equal(t, persistent.InvalidOid, obj.POid())
	require.NoError(t, obj.PClearJar())
	assert.Equal(t, persistent.StatusUnsaved, obj.PStatus())
	require.NoError(t, obj.PSetJar(other), "cleared jars may be reassigned")
	assert.Same(t, other, obj.PJar())
}

func activation(t *testing.T) {
	t.Parallel()
	var (
		jar         = newJar()
		cache       = newCache(t, jar)
		obj         = new(item)
		duringLoad  persistent.State
		loadedState = jar.LoadStateFunc
	)
	jar.LoadStateFunc = func(o persistent.Object) error {
		duringLoad = o.(*item).PState()
		return loadedState(o)
	}
	require.NoError(t, cache.AdmitNewGhost(1, obj))
	assert.Equal(t, persistent.Ghost, obj.PState())
	assert.True(t, obj.PIsGhost())
	assert.Zero(t, cache.RingLen())

	value, err := persistent.Get(obj, &obj.Value)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
	assert.Equal(t, persistent.Changed, duringLoad)
	assert.Equal(t, persistent.UpToDate, obj.PState())
	assert.Equal(t, 1, cache.RingLen())
	assert.Equal(t, 1, cache.NonGhostCount())

	_, err = persistent.Get(obj, &obj.Value)
	require.NoError(t, err)
	assert.Len(t, jar.LoadStateCalls(), 1, "live objects are not reloaded")
	assert.Same(t, obj, jar.LoadStateCalls()[0].Obj)
}

func activationFailure(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = new(item)
		fault = errors.New("storage offline")
	)
	jar.LoadStateFunc = func(persistent.Object) error { return fault }
	require.NoError(t, cache.AdmitNewGhost(1, obj))

	err := obj.PActivate()
	require.ErrorIs(t, err, fault)
	assert.Equal(t, platformerrors.CodeDatabase, platformerrors.GetCode(err))
	assert.Equal(t, persistent.Ghost, obj.PState())
	assert.Zero(t, cache.RingLen())
	assert.Zero(t, cache.NonGhostCount())

	_, err = persistent.Get(obj, &obj.Value)
	assert.ErrorIs(t, err, fault)
	assert.ErrorIs(t, persistent.Set(obj, &obj.Value, 1), fault)
	assert.Zero(t, obj.Value)
	assert.Empty(t, jar.RegisterCalls())
}

func activationFailureAfterAccess(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = new(item)
		fault = errors.New("truncated record")
	)
	jar.LoadStateFunc = func(o persistent.Object) error {
		it := o.(*item)
		if err := persistent.Set(it, &it.Value, 9); err != nil {
			return err
		}
		return fault
	}
	require.NoError(t, cache.AdmitNewGhost(1, obj))
	require.ErrorIs(t, obj.PActivate(), fault)
	assert.Equal(t, persistent.Ghost, obj.PState())
	assert.Zero(t, cache.RingLen(), "loader access must not leave a ghost in the ring")
	assert.Zero(t, cache.NonGhostCount())
}

func activationWithoutJar(t *testing.T) {
	t.Parallel()
	var obj item
	require.NoError(t, obj.PActivate())
	assert.Equal(t, persistent.UpToDate, obj.PState())
	require.NoError(t, persistent.Set(&obj, &obj.Value, 3))
	assert.Equal(t, 3, obj.Value)
	assert.False(t, obj.PChanged(), "objects without a jar are never changed")
}

func modification(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = admitLive(t, cache, 1)
	)
	require.NoError(t, persistent.Set(obj, &obj.Value, 10))
	require.NoError(t, persistent.Set(obj, &obj.Value, 11))
	assert.Equal(t, 11, obj.Value)
	assert.Equal(t, persistent.Changed, obj.PState())
	assert.True(t, obj.PChanged())
	require.Len(t, jar.RegisterCalls(), 1, "only the first change registers")
	assert.Same(t, obj, jar.RegisterCalls()[0].Obj)
}

func refusedRegistration(t *testing.T) {
	t.Parallel()
	var (
		jar     = newJar()
		cache   = newCache(t, jar)
		obj     = admitLive(t, cache, 1)
		refusal = errors.New("read-only transaction")
	)
	jar.RegisterFunc = func(persistent.Object) error { return refusal }
	require.ErrorIs(t, persistent.Set(obj, &obj.Value, 10), refusal)
	assert.Equal(t, 2, obj.Value, "refused writes must not land")
	assert.Equal(t, persistent.UpToDate, obj.PState())

	jar.RegisterFunc = func(persistent.Object) error { return nil }
	require.NoError(t, persistent.Set(obj, &obj.Value, 10))
	assert.Equal(t, persistent.Changed, obj.PState())
	assert.Len(t, jar.RegisterCalls(), 2)
}

func loaderWrites(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = new(item)
	)
	jar.LoadStateFunc = func(o persistent.Object) error {
		it := o.(*item)
		return persistent.Set(it, &it.Value, 42)
	}
	require.NoError(t, cache.AdmitNewGhost(1, obj))
	require.NoError(t, obj.PActivate())
	assert.Equal(t, 42, obj.Value)
	assert.Equal(t, persistent.UpToDate, obj.PState())
	assert.Empty(t, jar.RegisterCalls())
}

func deactivation(t *testing.T) {
	t.Parallel()
	var (
		jar     = newJar()
		cache   = newCache(t, jar)
		objects = admitLiveN(t, cache, 2)
		clean   = objects[0]
		dirty   = objects[1]
	)
	require.NoError(t, persistent.Set(dirty, &dirty.Value, 5))

	dirty.PDeactivate()
	assert.Equal(t, persistent.Changed, dirty.PState())
	assert.Equal(t, 5, dirty.Value)

	drops := clean.drops
	clean.PDeactivate()
	assert.Equal(t, persistent.Ghost, clean.PState())
	assert.Zero(t, clean.Value)
	assert.Equal(t, drops+1, clean.drops)
	assert.Equal(t, 1, cache.RingLen())
	assert.Equal(t, 1, cache.NonGhostCount())

	clean.PDeactivate()
	assert.Equal(t, drops+1, clean.drops, "ghosts are not deactivated twice")

	value, err := persistent.Get(clean, &clean.Value)
	require.NoError(t, err)
	assert.Equal(t, 1, value)
	assert.Equal(t, 2, clean.loads)
}

func invalidation(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = admitLive(t, cache, 1)
	)
	require.NoError(t, persistent.Set(obj, &obj.Value, 5))
	require.NoError(t, obj.PSetSticky(true))
	obj.PInvalidate()
	assert.Equal(t, persistent.Ghost, obj.PState())
	assert.Zero(t, obj.Value)
	assert.Zero(t, cache.RingLen())
}

func sticky(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = new(item)
	)
	require.NoError(t, cache.AdmitNewGhost(1, obj))
	assert.ErrorIs(t, obj.PSetSticky(true), persistent.ErrGhost)

	require.NoError(t, obj.PActivate())
	require.NoError(t, obj.PSetSticky(true))
	assert.Equal(t, persistent.Sticky, obj.PState())
	assert.Equal(t, persistent.StatusSticky, obj.PStatus())
	assert.True(t, obj.PSticky())
	obj.PDeactivate()
	assert.Equal(t, persistent.Sticky, obj.PState())

	require.NoError(t, obj.PSetSticky(false))
	assert.Equal(t, persistent.UpToDate, obj.PState())
}

func setChanged(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = new(item)
	)
	require.NoError(t, cache.AdmitNewGhost(1, obj))
	require.NoError(t, obj.PSetChanged(false))
	assert.Equal(t, persistent.Ghost, obj.PState(), "unsetting a ghost does not load it")

	require.NoError(t, obj.PSetChanged(true))
	assert.Equal(t, persistent.Changed, obj.PState())
	assert.Len(t, jar.LoadStateCalls(), 1)
	assert.Len(t, jar.RegisterCalls(), 1)

	require.NoError(t, obj.PSetChanged(false))
	assert.Equal(t, persistent.UpToDate, obj.PState())
}

func estimatedSize(t *testing.T) {
	t.Parallel()
	const maxUnits = 1<<24 - 1
	for _, test := range []struct {
		size, expected int64
	}{
		{0, 64},
		{1, 64},
		{63, 64},
		{64, 128},
		{1000, 1024},
		{1073741695, 1073741696},
		{1073741696, maxUnits * 64},
		{1073741697, maxUnits * 64},
		{1 << 40, maxUnits * 64},
	} {
		t.Run(fmt.Sprint(test.size), func(t *testing.T) {
			var obj item
			require.NoError(t, obj.PSetEstimatedSize(test.size))
			assert.Equal(t, test.expected, obj.PEstimatedSize())
		})
	}
	var obj item
	err := obj.PSetEstimatedSize(-1)
	require.ErrorIs(t, err, persistent.ErrNegativeSize)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
}

func stringer(t *testing.T) {
	t.Parallel()
	var (
		jar   = newJar()
		cache = newCache(t, jar)
		obj   = new(item)
	)
	assert.Contains(t, obj.String(), "persistent.Persistent")
	require.NoError(t, cache.AdmitNewGhost(0x2a, obj))
	repr := obj.String()
	assert.Contains(t, repr, "*persistent_test.item")
	assert.Contains(t, repr, "oid 0x2a")
	assert.Contains(t, repr, " in ")
}

func TestOid(t *testing.T) {
	t.Parallel()
	oid := persistent.Oid(0x0102030405060708)
	decoded, err := persistent.OidFromBytes(oid.Bytes())
	require.NoError(t, err)
	assert.Equal(t, oid, decoded)
	_, err = persistent.OidFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
	assert.Equal(t, "0x00", persistent.Oid(0).String())
	assert.Equal(t, "0x2a", persistent.Oid(42).String())
	assert.Equal(t, "invalid", persistent.InvalidOid.String())
}

func TestSerial(t *testing.T) {
	t.Parallel()
	var (
		low  = persistent.SerialFromUint64(1)
		high = persistent.SerialFromUint64(2)
	)
	assert.True(t, persistent.ZeroSerial.IsZero())
	assert.False(t, low.IsZero())
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 0, high.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
}
