package kvstore

import (
	"fmt"
	"strings"

	"github.com/nvelez/clientbridge-backend/internal/logger"
)

type BootstrapErrorCode string

const (
	BootstrapErrorInvalidMode   BootstrapErrorCode = "invalid_mode"
	BootstrapErrorConnectFailed BootstrapErrorCode = "connect_failed"
)

type BootstrapError struct {
	Code  BootstrapErrorCode
	Mode  string
	Cause error
}

func (e *BootstrapError) Error() string {
	if e == nil {
		return "kv store bootstrap failed"
	}
	return fmt.Sprintf("kv store bootstrap failed (code=%s mode=%q): %v", e.Code, e.Mode, e.Cause)
}

func (e *BootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ProviderConfig selects and parameterizes the slot store backend.
type ProviderConfig struct {
	Mode        Mode
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
}

// Resolve picks the store implementation for the configured mode.
func Resolve(log *logger.Logger, cfg ProviderConfig) (Store, error) {
	mode := Mode(strings.TrimSpace(strings.ToLower(string(cfg.Mode))))
	if mode == "" {
		mode = ModeMemory
	}
	if !IsSupportedMode(mode) {
		err := &BootstrapError{
			Code:  BootstrapErrorInvalidMode,
			Mode:  string(mode),
			Cause: fmt.Errorf("unsupported kv store mode %q", mode),
		}
		log.Error("KV store selection failed", "mode", mode, "error_code", err.Code, "error", err)
		return nil, err
	}

	log.Info("Selecting kv store", "mode", mode)

	switch mode {
	case ModeSQLite:
		st, err := NewSQLiteStore(log, cfg.SQLitePath)
		if err != nil {
			return nil, &BootstrapError{Code: BootstrapErrorConnectFailed, Mode: string(mode), Cause: err}
		}
		return st, nil
	case ModeRedis:
		st, err := NewRedisStore(log, cfg.RedisAddr, cfg.RedisPrefix)
		if err != nil {
			return nil, &BootstrapError{Code: BootstrapErrorConnectFailed, Mode: string(mode), Cause: err}
		}
		return st, nil
	default:
		return NewMemoryStore(), nil
	}
}
