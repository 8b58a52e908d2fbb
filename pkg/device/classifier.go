package device

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/devicekit/pkg/cache"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// DefaultCacheTTL is the lifetime of a memoized classification.
const DefaultCacheTTL = 5 * time.Minute

type kind string

const (
	kindMobile  kind = "mobile"
	kindOS      kind = "os"
	kindBrowser kind = "browser"
)

// classification holds one memoized verdict; the cache key's kind says which
// field is meaningful.
type classification struct {
	mobile  bool
	os      useragent.OS
	browser useragent.Browser
}

// Classifier answers classification questions for a signal, memoizing pattern
// verdicts in a TTL cache it owns. It is safe for concurrent use.
type Classifier struct {
	matcher        useragent.Matcher
	env            *Environment
	ttl            time.Duration
	maxEntries     int
	now            func() time.Time
	logger         *slog.Logger
	cache          *cache.TTLCache[string, classification]
	defaultOptions []Option
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithEnvironment sets the live environment. The value is copied.
func WithEnvironment(env *Environment) ClassifierOption {
	return func(c *Classifier) {
		if env == nil {
			c.env = nil
			return
		}
		cp := *env
		c.env = &cp
	}
}

// WithMatcher replaces the pattern engine.
func WithMatcher(m useragent.Matcher) ClassifierOption {
	return func(c *Classifier) {
		if m != nil {
			c.matcher = m
		}
	}
}

// WithCacheTTL sets the cache entry lifetime. Non-positive values are ignored.
func WithCacheTTL(ttl time.Duration) ClassifierOption {
	return func(c *Classifier) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheMaxEntries bounds the number of cached verdicts.
func WithCacheMaxEntries(n int) ClassifierOption {
	return func(c *Classifier) { c.maxEntries = n }
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) ClassifierOption {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) ClassifierOption {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaults sets options applied before the per-call ones.
func WithDefaults(opts ...Option) ClassifierOption {
	return func(c *Classifier) { c.defaultOptions = append(c.defaultOptions, opts...) }
}

// NewClassifier creates a Classifier with the regex pattern engine, no live
// environment and a cache of DefaultCacheTTL.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		matcher: useragent.Patterns{},
		ttl:     DefaultCacheTTL,
		now:     time.Now,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.cache = cache.NewTTLCache(c.ttl,
		cache.WithClock[string, classification](c.now),
		cache.WithMaxEntries[string, classification](c.maxEntries),
	)
	return c
}

// Environment returns a copy of the live environment, or nil.
func (c *Classifier) Environment() *Environment {
	if c.env == nil {
		return nil
	}
	cp := *c.env
	return &cp
}

func (c *Classifier) options(opts []Option) Options {
	return newOptions(c.defaultOptions...).with(opts...)
}

// IsMobile reports whether the signal belongs to a phone, or to a tablet when
// WithTablet(true) is given.
func (c *Classifier) IsMobile(opts ...Option) bool { return c.isMobile(c.options(opts)) }

// IsTablet reports whether the signal is mobile only when tablets are included.
// IsTablet and IsMobile without tablets are never both true.
func (c *Classifier) IsTablet(opts ...Option) bool { return c.isTablet(c.options(opts)) }

// IsDesktop is the complement of IsMobile with tablets included.
func (c *Classifier) IsDesktop(opts ...Option) bool { return c.isDesktop(c.options(opts)) }

// OS returns the operating system family.
func (c *Classifier) OS(opts ...Option) useragent.OS { return c.os(c.options(opts)) }

// Browser returns the browser family.
func (c *Classifier) Browser(opts ...Option) useragent.Browser { return c.browser(c.options(opts)) }

// IsTouchDevice reports whether the live environment accepts touch input.
// Without an environment it is false.
func (c *Classifier) IsTouchDevice() bool { return c.env.TouchCapable() }

// Signal resolves the signal the given options would classify.
func (c *Classifier) Signal(opts ...Option) Signal {
	return ResolveSignal(c.options(opts).UA, c.env)
}

// Probe runs the feature prober. It is undecided unless FeatureDetect is on
// and a live environment exists.
func (c *Classifier) Probe(opts ...Option) Verdict { return c.probe(c.options(opts)) }

func (c *Classifier) isMobile(o Options) bool {
	sig := ResolveSignal(o.UA, c.env)
	key := cacheKey(kindMobile, sig, o)
	if v, ok := c.cache.Get(key); ok {
		return v.mobile
	}

	mobile := c.matcher.IsMobile(sig.Value(), o.Tablet)
	// iPadOS Safari reports a desktop signal; only touch reveals it.
	if !mobile && o.Tablet && o.FeatureDetect && c.env != nil &&
		c.env.TouchPoints > 1 && useragent.MasqueradesAsDesktop(sig.Value()) {
		mobile = true
	}

	c.store(key, classification{mobile: mobile})
	return mobile
}

func (c *Classifier) isTablet(o Options) bool {
	return c.isMobile(o.with(WithTablet(true))) && !c.isMobile(o.with(WithTablet(false)))
}

func (c *Classifier) isDesktop(o Options) bool {
	return !c.isMobile(o.with(WithTablet(true)))
}

func (c *Classifier) os(o Options) useragent.OS {
	sig := ResolveSignal(o.UA, c.env)
	key := cacheKey(kindOS, sig, o)
	if v, ok := c.cache.Get(key); ok {
		return v.os
	}

	os := c.matcher.ParseOS(sig.Value())
	c.store(key, classification{os: os})
	return os
}

func (c *Classifier) browser(o Options) useragent.Browser {
	sig := ResolveSignal(o.UA, c.env)
	key := cacheKey(kindBrowser, sig, o)
	if v, ok := c.cache.Get(key); ok {
		return v.browser
	}

	browser := c.matcher.ParseBrowser(sig.Value())
	c.store(key, classification{browser: browser})
	return browser
}

func (c *Classifier) probe(o Options) Verdict {
	if !o.FeatureDetect || c.env == nil {
		return Verdict{}
	}
	return Probe(c.env, ResolveSignal(o.UA, c.env))
}

func (c *Classifier) store(key string, v classification) {
	c.cache.Set(key, v)
	c.logger.Debug("device classification cached",
		logger.Component("device"),
		logger.CacheKey(key),
		logger.CacheSize(c.cache.Len()),
	)
}

// cacheKey joins every input that can change a verdict. The signal goes last
// so separators inside it cannot collide with the flags.
func cacheKey(k kind, sig Signal, o Options) string {
	var b strings.Builder
	b.Grow(len(k) + len(sig.Value()) + 8)
	b.WriteString(string(k))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(o.Tablet))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(o.FeatureDetect))
	b.WriteByte('|')
	if sig.Present() {
		b.WriteString(sig.Value())
	}
	return b.String()
}

// CacheStats is a point-in-time view of the detection cache.
type CacheStats struct {
	Size        int      `json:"size" yaml:"size"`
	Keys        []string `json:"keys" yaml:"keys"`
	TTL         string   `json:"ttl" yaml:"ttl"`
	Hits        uint64   `json:"hits" yaml:"hits"`
	Misses      uint64   `json:"misses" yaml:"misses"`
	Expirations uint64   `json:"expirations" yaml:"expirations"`
	Evictions   uint64   `json:"evictions" yaml:"evictions"`
}

// CacheStats reports the cache size and live keys. Entries that expired since
// the last access are swept before reading.
func (c *Classifier) CacheStats() CacheStats {
	c.cache.DeleteExpired()
	st := c.cache.Stats()
	keys := c.cache.Keys()
	return CacheStats{
		Size:        len(keys),
		Keys:        keys,
		TTL:         c.cache.TTL().String(),
		Hits:        st.Hits,
		Misses:      st.Misses,
		Expirations: st.Expirations,
		Evictions:   st.Evictions,
	}
}

// ClearCache drops every memoized verdict.
func (c *Classifier) ClearCache() {
	c.cache.Clear()
	c.logger.Debug("device cache cleared", logger.Component("device"))
}
