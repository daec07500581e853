package service

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Product{},
		&models.Customer{},
		&models.Debt{},
	))

	return &repo.GormRepo{DB: db}
}

// recordingPublisher captures published events instead of talking to a
// broker.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []map[string]any
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	if m, ok := event.(map[string]any); ok {
		p.events = append(p.events, m)
	}
	return nil
}
