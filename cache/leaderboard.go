package cache

import (
	"context"
	"fmt"
	"time"
)

const leaderboardTTL = 30 * time.Second

func leaderboardKey(top int) string {
	return fmt.Sprintf("leaderboard:top:%d", top)
}

// GetLeaderboard returns the cached leaderboard JSON for the given size, or
// "" on miss. All cache errors degrade to a miss.
func GetLeaderboard(ctx context.Context, top int) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(ctx, leaderboardKey(top)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetLeaderboard stores the serialized leaderboard with a short TTL.
// Best-effort: failures are ignored, the next read just misses.
func SetLeaderboard(ctx context.Context, top int, payload string) {
	if Client == nil {
		return
	}
	Client.Set(ctx, leaderboardKey(top), payload, leaderboardTTL)
}

// InvalidateLeaderboard drops every cached leaderboard size. Called after
// any write that changes a user's points.
func InvalidateLeaderboard(ctx context.Context) {
	if Client == nil {
		return
	}
	iter := Client.Scan(ctx, 0, "leaderboard:top:*", 0).Iterator()
	for iter.Next(ctx) {
		Client.Del(ctx, iter.Val())
	}
}
