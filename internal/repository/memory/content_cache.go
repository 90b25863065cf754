package memory

import (
	"time"

	"portfolio-be/pkg/portfolio"

	"github.com/patrickmn/go-cache"
)

const publicContentKey = "public"

// ContentCache keeps the anonymous portfolio view so page loads skip the database.
type ContentCache struct {
	cache *cache.Cache
}

func NewContentCache(ttl time.Duration) *ContentCache {
	return &ContentCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *ContentCache) GetPublic() (*portfolio.Content, bool) {
	if x, found := r.cache.Get(publicContentKey); found {
		c := x.(portfolio.Content).Clone()
		return &c, true
	}
	return nil, false
}

func (r *ContentCache) SetPublic(content portfolio.Content) {
	r.cache.Set(publicContentKey, content.Clone(), cache.DefaultExpiration)
}

func (r *ContentCache) Invalidate() {
	r.cache.Delete(publicContentKey)
}
