package persistent

import (
	"runtime"

	"github.com/ethereum/go-ethereum/log"
)

type (
	settings struct {
		logger  log.Logger
		stats   Stats
		collect func()
		config  Config
	}
	// Option configures a [Cache] constructed by [New].
	Option func(*settings)
)

func newSettings(options []Option) *settings {
	s := &settings{
		config:  DefaultConfig(),
		logger:  log.Root(),
		stats:   EmptyStats{},
		collect: runtime.GC,
	}
	for _, apply := range options {
		apply(s)
	}
	return s
}

// WithConfig replaces every tunable of the cache.
// Options applied after it still take effect.
func WithConfig(config Config) Option {
	return func(s *settings) { s.config = config }
}

// WithTargetCount sets the number of live objects
// [Cache.IncrementalGC] aims for. With zero every
// unchanged, unpinned object is ghosted.
// Default is [DefaultTargetCount].
func WithTargetCount(count int) Option {
	return func(s *settings) { s.config.TargetCount = count }
}

// WithDrainResistance makes each [Cache.IncrementalGC] evict
// at least about 1/resistance of the live objects,
// even when the cache is within its targets.
// Zero (the default) disables it.
func WithDrainResistance(resistance int) Option {
	return func(s *settings) { s.config.DrainResistance = resistance }
}

// WithTargetBytes sets the estimated byte total
// [Cache.IncrementalGC] aims for. Zero (the default) disables it.
func WithTargetBytes(bytes int64) Option {
	return func(s *settings) { s.config.TargetBytes = bytes }
}

// WithLogger sets the logger. Default is [log.Root].
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		if logger == nil {
			logger = log.NewLogger(log.DiscardHandler())
		}
		s.logger = logger
	}
}

// WithStats sets the receiver of cache events.
func WithStats(stats Stats) Option {
	return func(s *settings) {
		if stats == nil {
			stats = EmptyStats{}
		}
		s.stats = stats
	}
}

// WithCollector sets the function a sweep calls after ghosting
// objects that have a [WeakRef], so that their memory may be reclaimed
// and their weak references cleared. Default is [runtime.GC].
func WithCollector(collect func()) Option {
	return func(s *settings) {
		if collect == nil {
			collect = func() {}
		}
		s.collect = collect
	}
}
