// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/imadiksi/orgsite/internal/app/content"
	userstore "github.com/imadiksi/orgsite/internal/app/store/users"
	"go.uber.org/zap"
)

// contentSvc is created once in Startup, shared by BuildHandler, and
// closed in Shutdown.
var contentSvc *content.Service

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// It creates the bootstrap admin account when one is configured, builds
// the content service, and warms its cache with an initial fetch. A
// failed initial fetch does not abort startup; the service records the
// error and pages render the degraded state until a refresh succeeds.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		users := userstore.New(deps.MongoDatabase)
		if err := users.EnsureAdmin(ctx, appCfg.AdminName, appCfg.AdminEmail, appCfg.AdminPassword); err != nil {
			return fmt.Errorf("ensure admin account: %w", err)
		}
	}

	contentSvc = content.NewService(content.NewGateway(deps.MongoDatabase), logger)
	if err := contentSvc.RefreshAll(ctx); err != nil {
		logger.Warn("initial content fetch failed, serving degraded until refresh", zap.Error(err))
	}

	return nil
}
