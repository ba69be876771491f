package app

import (
	"strings"
	"time"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/utils"
)

type Config struct {
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	CORSOrigins    []string

	Store kvstore.ProviderConfig
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

	corsRaw := utils.GetEnv("CORS_ORIGINS", "", log)
	var origins []string
	for _, origin := range strings.Split(corsRaw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		Port:           port,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		CORSOrigins:    origins,
		Store: kvstore.ProviderConfig{
			Mode:        kvstore.Mode(utils.GetEnv("STORE_MODE", string(kvstore.ModeMemory), log)),
			SQLitePath:  utils.GetEnv("SQLITE_PATH", "clientbridge.db", log),
			RedisAddr:   utils.GetEnv("REDIS_ADDR", "localhost:6379", log),
			RedisPrefix: utils.GetEnv("REDIS_PREFIX", "crm:", log),
		},
	}
}
