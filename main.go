package main

import (
	"embed"
	"log"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/orbit-careers/page-builder/internal/authoriser"
	"github.com/orbit-careers/page-builder/internal/company"
	"github.com/orbit-careers/page-builder/internal/config"
	"github.com/orbit-careers/page-builder/internal/database"
	"github.com/orbit-careers/page-builder/internal/handler"
	"github.com/orbit-careers/page-builder/internal/job"
	"github.com/orbit-careers/page-builder/internal/media"
	"github.com/orbit-careers/page-builder/internal/middleware"
	"github.com/orbit-careers/page-builder/internal/pageconfig"
	"github.com/orbit-careers/page-builder/internal/server"
	"github.com/orbit-careers/page-builder/internal/template"
)

//go:embed static/views
var views embed.FS

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	conn, err := database.GetDbConn(
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
	if err != nil {
		log.Fatalf("unable to connect to postgres: %v", err)
	}
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)

	companyRepo := company.NewRepository(conn)
	pageConfigRepo := pageconfig.NewRepository(conn)
	jobRepo := job.NewRepository(conn)
	mediaRepo := media.NewRepository(conn)
	auth := authoriser.NewAuthoriser(companyRepo)

	svr := server.NewServer(
		cfg,
		conn,
		mux.NewRouter(),
		template.NewTemplate(views),
		sessionStore,
	)

	svr.RegisterRoute("/health", handler.HealthCheckHandler(svr), []string{"GET"})
	svr.RegisterRoute("/sitemap.xml", handler.SitemapHandler(svr, companyRepo), []string{"GET"})
	svr.RegisterRoute("/robots.txt", handler.RobotsTxtHandler, []string{"GET"})

	svr.RegisterRoute("/", handler.IndexPageHandler(svr), []string{"GET"})

	// sign on
	svr.RegisterRoute("/login", handler.GetLoginPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/x/auth", handler.PostAuthPageHandler(svr, auth), []string{"POST"})
	svr.RegisterRoute("/x/auth/signout", handler.SignOutPageHandler(svr), []string{"GET"})

	// media upload and retrieval
	svr.RegisterRoute("/x/s/m", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.SaveMediaPageHandler(svr, mediaRepo)), []string{"POST"})
	svr.RegisterRoute("/x/s/m/{id}", handler.RetrieveMediaPageHandler(svr, mediaRepo), []string{"GET"})

	// draft editing and publish
	svr.RegisterRoute("/x/page/{slug}", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.SaveDraftPageHandler(svr, pageConfigRepo)), []string{"PUT"})
	svr.RegisterRoute("/x/page/{slug}/publish", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.PublishPageHandler(svr, pageConfigRepo)), []string{"POST"})

	// jobs management
	svr.RegisterRoute("/x/jobs/{slug}", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.ListJobsHandler(svr, jobRepo)), []string{"GET"})
	svr.RegisterRoute("/x/jobs/{slug}", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.CreateJobHandler(svr, jobRepo)), []string{"POST"})
	svr.RegisterRoute("/x/jobs/{slug}/{id}", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.DeleteJobHandler(svr, jobRepo)), []string{"DELETE"})

	// public careers pages
	svr.RegisterRoute("/{slug}/jobs.rss", handler.ServeRSSFeed(svr, companyRepo, jobRepo), []string{"GET"})
	svr.RegisterRoute("/{slug}/edit", middleware.TenantAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.EditorPageHandler(svr, companyRepo, pageConfigRepo, jobRepo)), []string{"GET"})
	svr.RegisterRoute("/{slug}", handler.PublicPageHandler(svr, companyRepo, pageConfigRepo, jobRepo), []string{"GET"})

	log.Fatal(svr.Run())
}
