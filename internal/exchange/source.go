package exchange

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercura/storefront-analytics/internal/analytics/money"
	"github.com/mercura/storefront-analytics/pkg/logger"
	"github.com/mercura/storefront-analytics/pkg/redis"
)

const defaultCacheTTL = 24 * time.Hour

// rateCache is the slice of the redis client the source needs.
type rateCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	RatesKey(baseCurrency string) string
}

// CachedSource serves rate tables from redis, falling back to the
// provider and refreshing the cache on a miss. Cache failures degrade
// to a provider fetch instead of failing the request.
type CachedSource struct {
	client *Client
	cache  rateCache
	ttl    time.Duration
	logg   *logger.Logger
}

func NewCachedSource(client *Client, cache rateCache, ttl time.Duration, logg *logger.Logger) *CachedSource {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedSource{client: client, cache: cache, ttl: ttl, logg: logg}
}

type cachedPayload struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rates returns the rate table for the base currency.
func (s *CachedSource) Rates(ctx context.Context, baseCurrency string) (money.RateTable, error) {
	key := s.cache.RatesKey(baseCurrency)

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var payload cachedPayload
		if unmarshalErr := json.Unmarshal([]byte(raw), &payload); unmarshalErr == nil {
			return payload.table(), nil
		}
		s.warn(ctx, fmt.Sprintf("discarding unreadable rate cache entry %s", key))
	case !stdErrors.Is(err, redis.Nil):
		s.warn(ctx, fmt.Sprintf("rate cache read failed: %v", err))
	}

	table, err := s.client.Latest(ctx, baseCurrency)
	if err != nil {
		return money.RateTable{}, err
	}
	s.store(ctx, key, table)
	return table, nil
}

func (s *CachedSource) store(ctx context.Context, key string, table money.RateTable) {
	payload := cachedPayload{Base: table.Base, Rates: make(map[string]float64, len(table.Rates))}
	for code, rate := range table.Rates {
		payload.Rates[code] = rate.InexactFloat64()
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		s.warn(ctx, fmt.Sprintf("marshaling rate cache entry failed: %v", err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.warn(ctx, fmt.Sprintf("rate cache write failed: %v", err))
	}
}

func (s *CachedSource) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(ctx, msg)
	}
}

func (p cachedPayload) table() money.RateTable {
	rates := make(map[string]decimal.Decimal, len(p.Rates))
	for code, rate := range p.Rates {
		rates[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}
	return money.RateTable{Base: strings.ToUpper(p.Base), Rates: rates}
}
