package service

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Skotchmaster/doggee/internal/hash"
	"github.com/Skotchmaster/doggee/internal/repo"
	"github.com/Skotchmaster/doggee/internal/testutil"
	"github.com/Skotchmaster/doggee/internal/tokens"
	"github.com/Skotchmaster/doggee/internal/validation"
)

type publishedEvent struct {
	Topic string
	Key   string
	Event Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event.(Event)})
	return nil
}

func (p *recordingPublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

type testEnv struct {
	Repo   *repo.GormRepo
	Codec  *tokens.Codec
	Events *recordingPublisher
	Auth   *AuthService
	Users  *UserService
	Dogs   *DogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	r := repo.New(testutil.NewDB(t))
	codec := tokens.NewCodec([]byte("test-jwt-secret"), []byte("test-refresh-secret"))
	pub := &recordingPublisher{}
	v := validation.New()

	return &testEnv{
		Repo:   r,
		Codec:  codec,
		Events: pub,
		Auth: &AuthService{
			Repo:      r,
			Tokens:    codec,
			Hasher:    hash.Bcrypt{Cost: bcrypt.MinCost},
			Validator: v,
			Events:    pub,
		},
		Users: &UserService{Repo: r},
		Dogs:  &DogService{Repo: r, Validator: v, Events: pub},
	}
}
