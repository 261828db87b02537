package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	"taskpro.com/taskpro/internal/logging"
)

// DashboardCache is a read-through cache for dashboard snapshots, keyed by
// the viewing user. All methods tolerate a nil receiver or client so the
// service runs unchanged without Redis.
type DashboardCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewDashboardCache(client rueidis.Client, ttlSeconds int) *DashboardCache {
	return &DashboardCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func key(viewerID string) string {
	return "dashboard:" + viewerID
}

func (c *DashboardCache) Get(ctx context.Context, viewerID string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	result := c.client.Do(ctx, c.client.B().Get().Key(key(viewerID)).Build())
	if err := result.Error(); err != nil {
		if !rueidis.IsRedisNil(err) {
			logging.Logger.Warnf("dashboard cache read failed: %v", err)
		}
		return false
	}

	raw, err := result.AsBytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *DashboardCache) Set(ctx context.Context, viewerID string, value any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().Key(key(viewerID)).Value(string(raw)).
		Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		logging.Logger.Warnf("dashboard cache write failed: %v", err)
	}
}

// Invalidate drops the snapshots of every viewer whose dashboard a write
// may have changed.
func (c *DashboardCache) Invalidate(ctx context.Context, viewerIDs ...string) {
	if c == nil || c.client == nil || len(viewerIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(viewerIDs))
	for _, id := range viewerIDs {
		keys = append(keys, key(id))
	}

	cmd := c.client.B().Del().Key(keys...).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		logging.Logger.Warnf("dashboard cache invalidation failed: %v", err)
	}
}
