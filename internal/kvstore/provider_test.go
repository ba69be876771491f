package kvstore

import (
	"errors"
	"testing"

	"github.com/nvelez/clientbridge-backend/internal/logger"
)

func TestResolveInvalidMode(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	defer log.Sync()

	_, err = Resolve(log, ProviderConfig{Mode: "bad-mode"})
	if err == nil {
		t.Fatalf("Resolve: expected error, got nil")
	}

	var got *BootstrapError
	if !errors.As(err, &got) {
		t.Fatalf("expected BootstrapError, got=%T", err)
	}
	if got.Code != BootstrapErrorInvalidMode {
		t.Fatalf("code: want=%q got=%q", BootstrapErrorInvalidMode, got.Code)
	}
}

func TestResolveDefaultsToMemory(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	defer log.Sync()

	store, err := Resolve(log, ProviderConfig{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	defer store.Close()
	if store == nil {
		t.Fatalf("Resolve: expected store instance")
	}
}

func TestResolveNormalizesMode(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	defer log.Sync()

	store, err := Resolve(log, ProviderConfig{Mode: "  Memory "})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	defer store.Close()
}

func TestIsSupportedMode(t *testing.T) {
	cases := []struct {
		mode Mode
		want bool
	}{
		{ModeMemory, true},
		{ModeSQLite, true},
		{ModeRedis, true},
		{Mode("postgres"), false},
		{Mode(""), false},
	}
	for _, tc := range cases {
		if got := IsSupportedMode(tc.mode); got != tc.want {
			t.Fatalf("mode %q: want=%v got=%v", tc.mode, tc.want, got)
		}
	}
}
