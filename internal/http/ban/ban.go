// Package ban temporarily blocks login attempts after repeated failures.
// A nil *Guard is valid and never bans anyone.
package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikesPrefix = "login:strikes:"
	banPrefix     = "login:ban:"
	// BanLogKey holds the most recent ban events, newest first.
	BanLogKey  = "login:banlog"
	banLogSize = 100
)

type LogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

type Guard struct {
	rdb        *redis.Client
	maxStrikes int
	window     time.Duration
}

func NewGuard(rdb *redis.Client, maxStrikes int, window time.Duration) *Guard {
	return &Guard{rdb: rdb, maxStrikes: maxStrikes, window: window}
}

func (g *Guard) Banned(ctx context.Context, target string) (bool, error) {
	if g == nil {
		return false, nil
	}
	n, err := g.rdb.Exists(ctx, banPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Strike records a failed attempt and bans the target once it reaches the
// strike limit within the window. It reports whether the target is now banned.
func (g *Guard) Strike(ctx context.Context, target, route string) (bool, error) {
	if g == nil {
		return false, nil
	}

	key := strikesPrefix + target
	strikes, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if strikes == 1 {
		if err := g.rdb.Expire(ctx, key, g.window).Err(); err != nil {
			return false, err
		}
	}
	if int(strikes) < g.maxStrikes {
		return false, nil
	}

	entry, err := json.Marshal(LogEntry{Target: target, Route: route, Strikes: int(strikes), Time: time.Now().UTC()})
	if err != nil {
		return false, err
	}

	_, err = g.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, banPrefix+target, strikes, g.window)
		pipe.Del(ctx, key)
		pipe.LPush(ctx, BanLogKey, entry)
		pipe.LTrim(ctx, BanLogKey, 0, banLogSize-1)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("ban %s: %w", target, err)
	}

	slog.Warn("login banned", "target", target, "route", route, "strikes", strikes)
	return true, nil
}

// Clear forgets the target's strikes.
func (g *Guard) Clear(ctx context.Context, target string) error {
	if g == nil {
		return nil
	}
	return g.rdb.Del(ctx, strikesPrefix+target).Err()
}

// Recent returns up to n ban events, newest first.
func (g *Guard) Recent(ctx context.Context, n int64) ([]LogEntry, error) {
	entries := []LogEntry{}
	if g == nil || n <= 0 {
		return entries, nil
	}

	items, err := g.rdb.LRange(ctx, BanLogKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		var entry LogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
