package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hashicorp/golang-lru/simplelru"
)

const DefaultInspectorCacheSize = 16

// TokenClaims are the claims issued by the patients API. They are decoded without
// verification and are informational only: navigation never depends on them, an expired
// or forged token is only rejected by the server.
type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (t *TokenClaims) Expiry() *time.Time {
	if t.ExpiresAt == nil {
		return nil
	}
	expiry := t.ExpiresAt.Time
	return &expiry
}

func (t *TokenClaims) ExpiredAt(now time.Time) bool {
	expiry := t.Expiry()
	return expiry != nil && !now.Before(*expiry)
}

type Inspector struct {
	mu  *sync.Mutex
	lru *simplelru.LRU
}

func NewInspector(size int) (*Inspector, error) {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, err
	}
	return &Inspector{
		mu:  &sync.Mutex{},
		lru: lru,
	}, nil
}

func NewDefaultInspector() (*Inspector, error) {
	return NewInspector(DefaultInspectorCacheSize)
}

// Inspect decodes the claims of token without checking its signature.
func (i *Inspector) Inspect(token string) (*TokenClaims, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if cached, ok := i.lru.Get(token); ok {
		return cached.(*TokenClaims), nil
	}

	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("unable to parse session token: %w", err)
	}
	i.lru.Add(token, claims)
	return claims, nil
}
