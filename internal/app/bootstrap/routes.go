// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	aboutfeature "github.com/somitihub/somiti/internal/app/features/about"
	contactfeature "github.com/somitihub/somiti/internal/app/features/contact"
	errorsfeature "github.com/somitihub/somiti/internal/app/features/errors"
	healthfeature "github.com/somitihub/somiti/internal/app/features/health"
	homefeature "github.com/somitihub/somiti/internal/app/features/home"
	membersfeature "github.com/somitihub/somiti/internal/app/features/members"
	membersapifeature "github.com/somitihub/somiti/internal/app/features/membersapi"
	portfoliofeature "github.com/somitihub/somiti/internal/app/features/portfolio"
	servicesfeature "github.com/somitihub/somiti/internal/app/features/services"
	memberstore "github.com/somitihub/somiti/internal/app/store/members"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. It boots the template engine,
// builds the avatar storage backend, and mounts the feature routers:
// the public pages, the member directory, and the members JSON API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Local file storage for member avatars.
	files, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		logger.Error("storage init failed", zap.Error(err))
		return nil, err
	}

	members := memberstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded member images
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Public pages
	homeHandler := homefeature.NewHandler(members, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	servicesHandler := servicesfeature.NewHandler(logger)
	r.Mount("/services", servicesfeature.Routes(servicesHandler))

	portfolioHandler := portfoliofeature.NewHandler(logger)
	r.Mount("/portfolio", portfoliofeature.Routes(portfolioHandler))

	contactHandler := contactfeature.NewHandler(logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Member directory
	membersHandler := membersfeature.NewHandler(members, files, logger)
	r.Mount("/members", membersfeature.Routes(membersHandler))

	// Members JSON API
	apiHandler := membersapifeature.NewHandler(members, files, logger)
	r.Mount("/api/members", membersapifeature.Routes(apiHandler))

	r.NotFound(errorsfeature.NotFoundHandler())

	return r, nil
}
