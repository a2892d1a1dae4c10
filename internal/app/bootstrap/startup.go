// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/features/shared"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	shared.Load()

	if err := os.MkdirAll(appCfg.StorageLocalPath, 0o755); err != nil {
		logger.Error("create storage directory",
			zap.String("path", appCfg.StorageLocalPath), zap.Error(err))
		return err
	}

	return nil
}
