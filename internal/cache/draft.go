package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"salonmarket/internal/state"
)

// DraftTTL bounds how long an abandoned booking wizard survives.
const DraftTTL = 30 * time.Minute

// WizardSession is a wizard state owned by one user.
type WizardSession struct {
	ID         string            `json:"id"`
	UserID     int64             `json:"userId"`
	ProviderID string            `json:"providerId"`
	Wizard     state.WizardState `json:"wizard"`
	Updated    time.Time         `json:"updatedAt"`
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client, ttl: DraftTTL}
}

type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Get returns ErrCacheMiss for unknown or expired sessions, and for stored
// sessions whose step is outside the wizard.
func (s DraftStore) Get(ctx context.Context, sessionID string) (WizardSession, error) {
	var ws WizardSession
	if err := getJSON(ctx, s.client, draftKey(sessionID), &ws); err != nil {
		return WizardSession{}, err
	}
	if !ws.Wizard.Step.Valid() {
		return WizardSession{}, fmt.Errorf("%w: session %s has step %d", ErrCacheMiss, sessionID, ws.Wizard.Step)
	}
	return ws, nil
}

func (s DraftStore) Save(ctx context.Context, ws WizardSession) error {
	ws.Updated = time.Now().UTC()
	return setJSON(ctx, s.client, draftKey(ws.ID), ws, s.ttl)
}

func (s DraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return "wizard:" + sessionID
}
