package server

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"

	"counsellor-backend/internal/analyses"
	"counsellor-backend/internal/services/health"
	"counsellor-backend/internal/shared/config"
	"counsellor-backend/internal/shared/server/middleware"
	"counsellor-backend/internal/shared/server/respond"
	"counsellor-backend/internal/shared/storage/db"
	"counsellor-backend/internal/shared/storage/object"
	localstore "counsellor-backend/internal/shared/storage/object/local"
	s3store "counsellor-backend/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := newObjectStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}
	analysisSvc := analyses.NewService(analysisRepo, store, cfg.ArchiveReports)
	analysisHandler := analyses.NewHandler(analysisSvc)
	healthSvc := health.NewService()

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, healthSvc.Banner())
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})

	api := r.Group("/api")
	api.Use(
		middleware.APIKeyAuth(middleware.APIKeyAuthConfig{
			ValidKeys:      cfg.ValidAPIKeys,
			AllowAnonymous: cfg.AllowAnonymous,
		}),
		middleware.RateLimit(middleware.RateLimitConfig{
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
		}),
	)
	analysisHandler.RegisterRoutes(api)

	return r
}

// newObjectStore selects the archival backend. A misconfigured S3 store logs
// and falls back to the local directory store so the API keeps serving.
func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
