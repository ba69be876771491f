package app

import (
	"context"
	"errors"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/observability"
)

type instrumentedStore struct {
	inner   kvstore.Store
	metrics *observability.Metrics
}

func instrumentStore(inner kvstore.Store, metrics *observability.Metrics) kvstore.Store {
	if inner == nil {
		return nil
	}
	return &instrumentedStore{inner: inner, metrics: metrics}
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.inner.Get(ctx, key)
	s.observe(key, "get", err)
	return value, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.inner.Set(ctx, key, value)
	s.observe(key, "set", err)
	return err
}

func (s *instrumentedStore) Delete(ctx context.Context, key string) error {
	err := s.inner.Delete(ctx, key)
	s.observe(key, "delete", err)
	return err
}

func (s *instrumentedStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.inner.Keys(ctx)
	s.observe("*", "keys", err)
	return keys, err
}

func (s *instrumentedStore) Close() error {
	return s.inner.Close()
}

func (s *instrumentedStore) observe(key, op string, err error) {
	if s == nil || s.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		outcome = "miss"
	case err != nil:
		outcome = "error"
	}
	s.metrics.ObserveStoreOp(key, op, outcome)
}
