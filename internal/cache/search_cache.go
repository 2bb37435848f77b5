package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

// Key prefix for cached search results: companies:search:{query}
const searchKeyPrefix = "companies:search:"

// SearchCache keeps recent company-search results in redis. It is strictly
// best effort: any redis error reads as a miss and writes are fire-and-forget.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

func (c *SearchCache) Get(ctx context.Context, query string) ([]model.Company, bool) {
	data, err := c.client.Get(ctx, searchKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var companies []model.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, false
	}
	return companies, true
}

func (c *SearchCache) Set(ctx context.Context, query string, companies []model.Company) {
	data, err := json.Marshal(companies)
	if err != nil {
		return
	}
	c.client.Set(ctx, searchKey(query), data, c.ttl)
}

func searchKey(query string) string {
	return searchKeyPrefix + query
}
