package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
)

// AvatarRepo stores rendered avatar images as data URLs keyed by the
// owning record's id, all under a single slot.
type AvatarRepo interface {
	Get(ctx context.Context, ownerID string) (string, error)
	Set(ctx context.Context, ownerID, dataURL string) error
	Delete(ctx context.Context, ownerID string) error
}

type avatarRepo struct {
	mu    sync.Mutex
	store kvstore.Store
	log   *logger.Logger
}

func NewAvatarRepo(store kvstore.Store, baseLog *logger.Logger) AvatarRepo {
	return &avatarRepo{store: store, log: baseLog.With("repo", "AvatarRepo")}
}

func (ar *avatarRepo) loadMap(ctx context.Context) (map[string]string, error) {
	raw, err := ar.store.Get(ctx, SlotAvatars)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("load slot %q: %w", SlotAvatars, err)
	}
	avatars := map[string]string{}
	if err := json.Unmarshal(raw, &avatars); err != nil {
		ar.log.Warn("Avatar slot failed to deserialize, starting empty", "error", err)
		return map[string]string{}, nil
	}
	return avatars, nil
}

func (ar *avatarRepo) saveMap(ctx context.Context, avatars map[string]string) error {
	raw, err := json.Marshal(avatars)
	if err != nil {
		return fmt.Errorf("serialize slot %q: %w", SlotAvatars, err)
	}
	return ar.store.Set(ctx, SlotAvatars, raw)
}

func (ar *avatarRepo) Get(ctx context.Context, ownerID string) (string, error) {
	avatars, err := ar.loadMap(ctx)
	if err != nil {
		return "", err
	}
	url, ok := avatars[ownerID]
	if !ok {
		return "", ErrNotFound
	}
	return url, nil
}

func (ar *avatarRepo) Set(ctx context.Context, ownerID, dataURL string) error {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	avatars, err := ar.loadMap(ctx)
	if err != nil {
		return err
	}
	avatars[ownerID] = dataURL
	return ar.saveMap(ctx, avatars)
}

func (ar *avatarRepo) Delete(ctx context.Context, ownerID string) error {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	avatars, err := ar.loadMap(ctx)
	if err != nil {
		return err
	}
	delete(avatars, ownerID)
	return ar.saveMap(ctx, avatars)
}
