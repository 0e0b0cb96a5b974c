package providers

import "github.com/km1000101/the-Editors-hub/internal/structures"

// instrumentedCache decorates the cache with hit/miss counters.
type instrumentedCache struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	return &instrumentedCache{
		inner:   NewCacheProvider(conf, logger),
		metrics: metrics,
	}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}
