package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/emrgen/wiki/internal/cache"
	"github.com/emrgen/wiki/internal/store"
)

// cap on how many recently modified entries a single warm pass pushes
const warmBatchSize = 50

// CacheWarmTask periodically loads the most recently modified entries into
// the entry cache so reads after a restart do not all fall through to the
// database.
type CacheWarmTask struct {
	store store.Store
	cache cache.EntryCache
	cron  string
}

func NewCacheWarmTask(interval string, store store.Store, cache cache.EntryCache) *CacheWarmTask {
	return &CacheWarmTask{
		store: store,
		cache: cache,
		cron:  interval,
	}
}

func (c *CacheWarmTask) Schedule() string {
	return c.cron
}

func (c *CacheWarmTask) Run() {
	ctx := context.Background()

	entries, _, err := c.store.ListEntries(ctx)
	if err != nil {
		logrus.Errorf("cache warm: listing entries failed: %v", err)
		return
	}

	if len(entries) > warmBatchSize {
		entries = entries[:warmBatchSize]
	}

	for _, entry := range entries {
		if err := c.cache.SetEntry(ctx, entry); err != nil {
			logrus.Warnf("cache warm: caching entry %s failed: %v", entry.ID, err)
			return
		}
	}
}
