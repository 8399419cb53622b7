package storage

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/common/config"
)

// NewStore creates the persistence facade for the configured backend. The
// choice is made once here; nothing downstream switches per call.
func NewStore(logger *zap.Logger, cfg *config.StorageConfig) (Store, error) {
	logger.Info("Initializing storage", zap.String("type", cfg.Type))
	switch cfg.Type {
	case "redis":
		return NewRedisStore(logger, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
	case "file":
		return NewFileStore(logger, cfg.File.Path)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
