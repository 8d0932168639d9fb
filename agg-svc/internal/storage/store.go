package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-digital/agg-svc/internal/domain"
)

const (
	allTimeKey   = "analytics:alltime"
	itemNamesKey = "analytics:items"

	dailyTTL  = 7 * 24 * time.Hour
	servedTTL = 90 * 24 * time.Hour
	seenTTL   = 7 * 24 * time.Hour
)

func dailyKey(day string) string  { return "analytics:daily:" + day }
func servedKey(day string) string { return "analytics:served:" + day }
func seenKey(key string) string   { return "analytics:seen:" + key }

// member identifies a menu item in the sorted sets. Item ids are only
// unique within a category.
func member(category string, id int64) string {
	return category + ":" + strconv.FormatInt(id, 10)
}

func parseMember(m string) (string, int64, error) {
	category, id, ok := strings.Cut(m, ":")
	if !ok {
		return "", 0, fmt.Errorf("malformed member %q", m)
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed member %q: %w", m, err)
	}
	return category, n, nil
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// recordPlaced marks an order as counted and adds its lines to the daily and
// all-time rankings in one step. ARGV holds the two TTLs in seconds followed by
// member, quantity and name for each line.
var recordPlaced = redis.NewScript(`
if not redis.call('SET', KEYS[1], 1, 'NX', 'EX', ARGV[1]) then
	return 0
end
for i = 3, #ARGV, 3 do
	redis.call('ZINCRBY', KEYS[2], ARGV[i+1], ARGV[i])
	redis.call('ZINCRBY', KEYS[3], ARGV[i+1], ARGV[i])
	redis.call('HSET', KEYS[4], ARGV[i], ARGV[i+2])
end
if #ARGV > 2 then
	redis.call('EXPIRE', KEYS[2], ARGV[2])
end
return 1
`)

var recordServed = redis.NewScript(`
if not redis.call('SET', KEYS[1], 1, 'NX', 'EX', ARGV[1]) then
	return 0
end
redis.call('HINCRBY', KEYS[2], 'orders', 1)
redis.call('HINCRBY', KEYS[2], 'revenue', ARGV[3])
redis.call('EXPIRE', KEYS[2], ARGV[2])
return 1
`)

func seconds(d time.Duration) int64 { return int64(d / time.Second) }

// RecordPlaced counts the lines of a placed order unless that order was
// already counted. The marker and the counters are written together.
func (s *Store) RecordPlaced(ctx context.Context, orderID int64, day string, items []domain.EventItem) (bool, error) {
	keys := []string{
		seenKey("placed:" + strconv.FormatInt(orderID, 10)),
		dailyKey(day),
		allTimeKey,
		itemNamesKey,
	}
	args := []interface{}{seconds(seenTTL), seconds(dailyTTL)}
	for _, item := range items {
		args = append(args, member(item.Category, item.ItemID), item.Quantity, item.Name)
	}
	n, err := recordPlaced.Run(ctx, s.rdb, keys, args...).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// RecordServed adds a served order to the day's totals unless it was already
// counted.
func (s *Store) RecordServed(ctx context.Context, orderID int64, day string, total int64) (bool, error) {
	keys := []string{
		seenKey("served:" + strconv.FormatInt(orderID, 10)),
		servedKey(day),
	}
	n, err := recordServed.Run(ctx, s.rdb, keys, seconds(seenTTL), seconds(servedTTL), total).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *Store) TopItems(ctx context.Context, day string, limit int) ([]domain.TopItem, error) {
	key := allTimeKey
	if day != "" {
		key = dailyKey(day)
	}

	ranked, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	members := make([]string, len(ranked))
	for i, z := range ranked {
		members[i] = z.Member.(string)
	}
	names, err := s.rdb.HMGet(ctx, itemNamesKey, members...).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.TopItem, 0, len(ranked))
	for i, z := range ranked {
		category, id, err := parseMember(members[i])
		if err != nil {
			return nil, err
		}
		name, _ := names[i].(string)
		items = append(items, domain.TopItem{
			ItemID:   id,
			Category: category,
			Name:     name,
			Ordered:  int64(z.Score),
		})
	}
	return items, nil
}

func (s *Store) Served(ctx context.Context, day string) (domain.ServedCount, error) {
	fields, err := s.rdb.HGetAll(ctx, servedKey(day)).Result()
	if err != nil {
		return domain.ServedCount{}, err
	}
	count := domain.ServedCount{Date: day}
	if v, ok := fields["orders"]; ok {
		if count.Orders, err = strconv.ParseInt(v, 10, 64); err != nil {
			return domain.ServedCount{}, fmt.Errorf("served orders: %w", err)
		}
	}
	if v, ok := fields["revenue"]; ok {
		if count.Revenue, err = strconv.ParseInt(v, 10, 64); err != nil {
			return domain.ServedCount{}, fmt.Errorf("served revenue: %w", err)
		}
	}
	return count, nil
}
