// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/imadiksi/orgsite/internal/app/features/about"
	contactfeature "github.com/imadiksi/orgsite/internal/app/features/contact"
	dashboardfeature "github.com/imadiksi/orgsite/internal/app/features/dashboard"
	divisionsfeature "github.com/imadiksi/orgsite/internal/app/features/divisions"
	errorsfeature "github.com/imadiksi/orgsite/internal/app/features/errors"
	galleryfeature "github.com/imadiksi/orgsite/internal/app/features/gallery"
	healthfeature "github.com/imadiksi/orgsite/internal/app/features/health"
	homefeature "github.com/imadiksi/orgsite/internal/app/features/home"
	loginfeature "github.com/imadiksi/orgsite/internal/app/features/login"
	logoutfeature "github.com/imadiksi/orgsite/internal/app/features/logout"
	managefeature "github.com/imadiksi/orgsite/internal/app/features/manage"
	newsfeature "github.com/imadiksi/orgsite/internal/app/features/news"
	organizationfeature "github.com/imadiksi/orgsite/internal/app/features/organization"
	programsfeature "github.com/imadiksi/orgsite/internal/app/features/programs"
	_ "github.com/imadiksi/orgsite/internal/app/features/shared/views"
	userstore "github.com/imadiksi/orgsite/internal/app/store/users"
	"github.com/imadiksi/orgsite/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed, so the content service is already warm.
//
// The public site is served in Indonesian under short paths (/berita,
// /program, /divisi, /galeri, /organisasi); everything that writes content
// lives under /admin behind the session and role middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	fileStore, err := buildStorage(appCfg, logger)
	if err != nil {
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Every form on the site posts with a CSRF token, including login.
	r.Use(csrf.Protect([]byte(appCfg.SessionKey), csrf.Secure(secure), csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded files, when stored locally. With s3 storage CloudFront
	// serves them and this route is not registered.
	if appCfg.StorageType == "local" {
		prefix := appCfg.FileBaseURL()
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(appCfg.StorageLocalPath)))
		r.Handle(prefix+"/*", fs)
	}

	// Public pages, all reading from the content service cache.
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(contentSvc, logger)))
	r.Mount("/berita", newsfeature.Routes(newsfeature.NewHandler(contentSvc, errLog, logger)))
	r.Mount("/program", programsfeature.Routes(programsfeature.NewHandler(contentSvc, logger)))
	r.Mount("/divisi", divisionsfeature.Routes(divisionsfeature.NewHandler(contentSvc, errLog, logger)))
	r.Mount("/galeri", galleryfeature.Routes(galleryfeature.NewHandler(contentSvc, logger)))
	r.Mount("/organisasi", organizationfeature.Routes(organizationfeature.NewHandler(contentSvc, logger)))
	r.Mount("/tentang", aboutfeature.Routes(aboutfeature.NewHandler(contentSvc, logger)))
	r.Mount("/kontak", contactfeature.Routes(contactfeature.NewHandler(logger)))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.NotFound(errorsHandler.NotFound)

	// Admin area
	users := userstore.New(deps.MongoDatabase)
	admin := chi.NewRouter()
	admin.Mount("/login", loginfeature.Routes(loginfeature.NewHandler(users, sessionMgr, errLog, logger)))
	admin.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, logger)))
	manageHandler := managefeature.NewHandler(contentSvc, fileStore, appCfg.FileBaseURL(), errLog, logger)
	admin.Mount("/manage", managefeature.Routes(manageHandler, sessionMgr))
	admin.Mount("/", dashboardfeature.Routes(dashboardfeature.NewHandler(contentSvc, logger), sessionMgr))
	r.Mount("/admin", admin)

	return r, nil
}
