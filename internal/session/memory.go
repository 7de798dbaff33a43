package session

import (
	"context"
	"errors"
	"sync"

	"portfolio-go-app/internal/content"
	"portfolio-go-app/internal/helpers"
)

// Memory is the Store used by tests.
type Memory struct {
	mu      sync.Mutex
	article *content.Article
	tokens  map[string]bool
}

func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]bool)}
}

func (s *Memory) PutArticle(ctx context.Context, article content.Article) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.article = &article
	return nil
}

func (s *Memory) TakeArticle(ctx context.Context) (content.Article, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.article == nil {
		return content.Article{}, false, nil
	}
	article := *s.article
	s.article = nil
	return article, true, nil
}

func (s *Memory) CreateToken(ctx context.Context) (string, error) {
	_ = ctx
	token := helpers.GenerateRandomString(tokenLength)
	if token == "" {
		return "", errors.New("could not generate session token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = true
	return token, nil
}

func (s *Memory) CheckToken(ctx context.Context, token string) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token], nil
}

func (s *Memory) DeleteToken(ctx context.Context, token string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
