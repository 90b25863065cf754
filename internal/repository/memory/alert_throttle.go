package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AlertThrottle lets one alert through per key per window.
type AlertThrottle struct {
	cache *cache.Cache
}

func NewAlertThrottle(window time.Duration) *AlertThrottle {
	return &AlertThrottle{
		cache: cache.New(window, window),
	}
}

// Allow reports whether key may fire now and, if so, starts its window.
func (r *AlertThrottle) Allow(key string) bool {
	return r.cache.Add(key, struct{}{}, cache.DefaultExpiration) == nil
}

// Release reopens key, e.g. after the alert could not be delivered.
func (r *AlertThrottle) Release(key string) {
	r.cache.Delete(key)
}
