package catalog

import (
	"time"

	"github.com/metafates/gache"
	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/filesystem"
	"github.com/samber/mo"
)

type cachedPodcast struct {
	Podcast   *feed.Podcast `json:"podcast"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// Cache keeps parsed feeds on disk, keyed by feed URL.
// Each entry stays fresh for the configured lifetime.
type Cache struct {
	cacher   *gache.Cache[map[string]*cachedPodcast]
	lifetime time.Duration
	now      func() time.Time
}

// NewCache returns a cache stored at path on the filesystem backend.
func NewCache(path string, lifetime time.Duration) *Cache {
	return &Cache{
		cacher: gache.New[map[string]*cachedPodcast](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Get returns the cached podcast for url if it is still fresh.
func (c *Cache) Get(url string) mo.Option[*feed.Podcast] {
	entries, err := c.load()
	if err != nil {
		return mo.None[*feed.Podcast]()
	}

	entry, ok := entries[url]
	if !ok || entry.Podcast == nil || c.now().Sub(entry.FetchedAt) > c.lifetime {
		return mo.None[*feed.Podcast]()
	}

	return mo.Some(entry.Podcast)
}

// Put stores podcast under its feed URL.
func (c *Cache) Put(podcast *feed.Podcast) error {
	entries, err := c.load()
	if err != nil {
		entries = make(map[string]*cachedPodcast)
	}

	entries[podcast.URL] = &cachedPodcast{Podcast: podcast, FetchedAt: c.now()}
	return c.cacher.Set(entries)
}

func (c *Cache) load() (map[string]*cachedPodcast, error) {
	entries, expired, err := c.cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || entries == nil {
		return make(map[string]*cachedPodcast), nil
	}
	return entries, nil
}
