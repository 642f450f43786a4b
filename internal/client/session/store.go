package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/menta/internal/common"
)

// TokenStore persists a single bearer token. Load returns "" when nothing
// is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Persistence picks the store a login writes to.
type Persistence int

const (
	// PersistSession keeps the token for the lifetime of the process.
	PersistSession Persistence = iota
	// PersistDurable keeps the token in the local database across restarts.
	PersistDurable
)

func (p Persistence) String() string {
	switch p {
	case PersistSession:
		return "session"
	case PersistDurable:
		return "durable"
	default:
		return "unknown"
	}
}

type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

const savedAtKey = common.TokenMetadataKey + "_saved_at"

// DurableStore keeps the token in the metadata repository together with
// the time it was saved.
type DurableStore struct {
	repo metadata.Repository
	now  func() time.Time
}

func NewDurableStore(repo metadata.Repository) *DurableStore {
	return &DurableStore{repo: repo, now: time.Now}
}

func (d *DurableStore) Load(ctx context.Context) (string, error) {
	v, err := d.repo.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (d *DurableStore) Save(ctx context.Context, token string) error {
	return d.repo.SetMany(ctx, map[string][]byte{
		common.TokenMetadataKey: []byte(token),
		savedAtKey:              []byte(d.now().UTC().Format(time.RFC3339)),
	})
}

func (d *DurableStore) Clear(ctx context.Context) error {
	return d.repo.Delete(ctx, common.TokenMetadataKey, savedAtKey)
}

var errNotSaved = errors.New("no token saved")

// SavedAt reports when the stored token was written.
func (d *DurableStore) SavedAt(ctx context.Context) (time.Time, error) {
	v, err := d.repo.Get(ctx, savedAtKey)
	if err != nil {
		return time.Time{}, err
	}
	if v == nil {
		return time.Time{}, errNotSaved
	}
	return time.Parse(time.RFC3339, string(v))
}
