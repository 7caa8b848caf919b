package sessions

import (
	"ClinicBridge/cache"
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const sessionKeyPrefix = "session:"

// RedisDirectory stores sessions in Redis with a TTL matching the
// session expiry, so revocation survives process restarts.
type RedisDirectory struct {
	cache *cache.Cache
}

func NewRedisDirectory(cache *cache.Cache) *RedisDirectory {
	return &RedisDirectory{cache: cache}
}

func (d *RedisDirectory) Put(ctx context.Context, token string, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	ttl := time.Until(session.Expires)
	if ttl <= 0 {
		return errors.New("session is already expired")
	}
	return d.cache.Set(ctx, sessionKeyPrefix+token, payload, ttl)
}

func (d *RedisDirectory) Lookup(ctx context.Context, token string) (Session, bool, error) {
	val, err := d.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return Session{}, false, errors.Wrap(err, "failed to look up session")
	}
	if val == "" {
		return Session{}, false, nil
	}
	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return Session{}, false, errors.Wrap(err, "failed to decode session")
	}
	return session, true, nil
}

func (d *RedisDirectory) Revoke(ctx context.Context, token string) error {
	return d.cache.Delete(ctx, sessionKeyPrefix+token)
}
