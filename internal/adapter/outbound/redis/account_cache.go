package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/cache"
)

const (
	accountKeyPrefix  = "accounts:account:"
	defaultAccountTTL = 1 * time.Hour
)

// accountCache implements cache.AccountCache.
type accountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAccountCache creates a new AccountCache.
func NewAccountCache(client *redis.Client, ttl time.Duration) cache.AccountCache {
	if ttl == 0 {
		ttl = defaultAccountTTL
	}
	return &accountCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *accountCache) Get(ctx context.Context, accountID types.ID) (*model.Account, error) {
	data, err := c.client.Get(ctx, accountKey(accountID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get account from cache: %w", err)
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

func (c *accountCache) Set(ctx context.Context, account *model.Account, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	if err := c.client.Set(ctx, accountKey(types.ID(account.ID)), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set account in cache: %w", err)
	}

	return nil
}

func (c *accountCache) Delete(ctx context.Context, accountID types.ID) error {
	if err := c.client.Del(ctx, accountKey(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to delete account from cache: %w", err)
	}
	return nil
}

func accountKey(id types.ID) string {
	return accountKeyPrefix + id.String()
}
