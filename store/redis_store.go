package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// RedisStore keeps profile state in Redis without a TTL: a shopper's cart
// survives until checkout clears it, the same way the old local storage
// entries did.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(profileID string) string     { return fmt.Sprintf("profile:%s:cart", profileID) }
func wishlistKey(profileID string) string { return fmt.Sprintf("profile:%s:wishlist", profileID) }
func sessionKey(profileID string) string  { return fmt.Sprintf("profile:%s:session", profileID) }

func (s *RedisStore) GetCart(ctx context.Context, profileID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.getJSON(ctx, cartKey(profileID), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisStore) SetCart(ctx context.Context, profileID string, lines []models.CartLine) error {
	return s.setJSON(ctx, cartKey(profileID), lines)
}

func (s *RedisStore) DeleteCart(ctx context.Context, profileID string) error {
	if err := s.client.Del(ctx, cartKey(profileID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) GetWishlist(ctx context.Context, profileID string) ([]models.Product, error) {
	var items []models.Product
	if err := s.getJSON(ctx, wishlistKey(profileID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStore) SetWishlist(ctx context.Context, profileID string, items []models.Product) error {
	return s.setJSON(ctx, wishlistKey(profileID), items)
}

func (s *RedisStore) GetSession(ctx context.Context, profileID string) (models.Session, error) {
	var sess sessionRecord
	if err := s.getJSON(ctx, sessionKey(profileID), &sess); err != nil {
		return models.Session{}, err
	}
	return sess.toSession(), nil
}

func (s *RedisStore) SetSession(ctx context.Context, profileID string, sess models.Session) error {
	return s.setJSON(ctx, sessionKey(profileID), newSessionRecord(sess))
}

func (s *RedisStore) DeleteSession(ctx context.Context, profileID string) error {
	if err := s.client.Del(ctx, sessionKey(profileID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) getJSON(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal %s failed: %w", key, err)
	}
	return nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// sessionRecord exists because models.Session hides the token from JSON
// responses; the store still has to persist it.
type sessionRecord struct {
	models.Session
	Token string `json:"token,omitempty"`
}

func newSessionRecord(s models.Session) sessionRecord {
	return sessionRecord{Session: s, Token: s.Token}
}

func (r sessionRecord) toSession() models.Session {
	s := r.Session
	s.Token = r.Token
	return s
}
