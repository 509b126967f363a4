package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/logger"
)

// UnknownUser is the placeholder returned whenever a display name cannot be
// resolved. Resolution failures never fail the calling operation.
const UnknownUser = "Unknown"

const displayNameCacheTTL = 15 * time.Minute

// UserResolver resolves user ids to display names for "added by" attribution
// and payer lists, with an optional Redis cache in front of the profile
// documents.
type UserResolver struct {
	userDB *db.UserDB
	rdb    *redis.Client // nil disables caching
}

func NewUserResolver(userDB *db.UserDB, rdb *redis.Client) *UserResolver {
	return &UserResolver{
		userDB: userDB,
		rdb:    rdb,
	}
}

// DisplayName returns the user's display name, or "Unknown" on any failure.
func (r *UserResolver) DisplayName(ctx context.Context, userID string) string {
	if userID == "" {
		return UnknownUser
	}

	cacheKey := fmt.Sprintf("displayName:%s", userID)
	if r.rdb != nil {
		if name, err := r.rdb.Get(ctx, cacheKey).Result(); err == nil && name != "" {
			return name
		}
	}

	profile, err := r.userDB.GetProfile(ctx, userID)
	if err != nil {
		logger.GetLogger().Debugw("Failed to resolve display name", "user", userID, "error", err)
		return UnknownUser
	}
	name := profile.Name()

	if r.rdb != nil {
		if err := r.rdb.Set(ctx, cacheKey, name, displayNameCacheTTL).Err(); err != nil {
			logger.GetLogger().Debugw("Failed to cache display name", "user", userID, "error", err)
		}
	}
	return name
}

// DisplayNames resolves a batch of user ids, preserving order.
func (r *UserResolver) DisplayNames(ctx context.Context, userIDs []string) map[string]string {
	names := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		names[id] = r.DisplayName(ctx, id)
	}
	return names
}
