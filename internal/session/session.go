package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"portfolio-go-app/internal/content"
	"portfolio-go-app/internal/helpers"
)

// viewArticleKey holds the one-shot article handoff between the listing
// page and the reading page.
const viewArticleKey = "viewArticle"

const tokenPrefix = "adminSession:"

const tokenLength = 32

// Store holds the ephemeral page-to-page state: the article handoff and
// the admin login tokens. None of this survives a restart on the memory
// implementation, and on Redis it is TTL-bound.
type Store interface {
	PutArticle(ctx context.Context, article content.Article) error
	// TakeArticle returns the handed-off article at most once: reading it
	// removes it.
	TakeArticle(ctx context.Context) (content.Article, bool, error)

	CreateToken(ctx context.Context) (string, error)
	CheckToken(ctx context.Context, token string) (bool, error)
	DeleteToken(ctx context.Context, token string) error
}

// Redis is the production Store.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (s *Redis) PutArticle(ctx context.Context, article content.Article) error {
	raw, err := json.Marshal(article)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, viewArticleKey, raw, s.ttl).Err()
}

func (s *Redis) TakeArticle(ctx context.Context) (content.Article, bool, error) {
	raw, err := s.rdb.GetDel(ctx, viewArticleKey).Result()
	if err == redis.Nil {
		return content.Article{}, false, nil
	}
	if err != nil {
		return content.Article{}, false, err
	}
	var article content.Article
	if err := json.Unmarshal([]byte(raw), &article); err != nil {
		return content.Article{}, false, err
	}
	return article, true, nil
}

func (s *Redis) CreateToken(ctx context.Context) (string, error) {
	token := helpers.GenerateRandomString(tokenLength)
	if token == "" {
		return "", errors.New("could not generate session token")
	}
	if err := s.rdb.Set(ctx, tokenPrefix+token, "true", s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Redis) CheckToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	value, err := s.rdb.Get(ctx, tokenPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (s *Redis) DeleteToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, tokenPrefix+token).Err()
}
