// Package redis implementa la denylist di revoca token su Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Rive3FY/magazzino-app/internal/application/auth"
	"github.com/Rive3FY/magazzino-app/pkg/config"
)

var _ auth.TokenRevoker = (*Denylist)(nil)
var _ auth.TokenRevoker = (*NoopDenylist)(nil)

const keyPrefix = "revoked:"

// Denylist memorizza i jti revocati fino alla scadenza naturale del token.
type Denylist struct {
	rdb *goredis.Client
}

// NewDenylist crea il client Redis e verifica la connessione.
func NewDenylist(ctx context.Context, cfg config.RedisConfig) (*Denylist, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Denylist{rdb: rdb}, nil
}

// Revoke inserisce il jti con TTL pari alla vita residua del token.
func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := d.rdb.Set(ctx, keyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoca token: %w", err)
	}
	return nil
}

// IsRevoked verifica se il jti è in denylist.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.rdb.Get(ctx, keyPrefix+jti).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verifica revoca: %w", err)
	}
	return true, nil
}

// Close chiude la connessione Redis.
func (d *Denylist) Close() error {
	return d.rdb.Close()
}

// NoopDenylist non revoca mai: usata quando Redis non è configurato,
// il logout resta solo client-side.
type NoopDenylist struct{}

func (NoopDenylist) Revoke(context.Context, string, time.Duration) error { return nil }
func (NoopDenylist) IsRevoked(context.Context, string) (bool, error)    { return false, nil }
