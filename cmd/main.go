package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/lexnotes/journal/internal/app/article"
	articlerepo "github.com/lexnotes/journal/internal/app/article/repo/gorm"
	articlehttp "github.com/lexnotes/journal/internal/app/article/transport/http"
	articleusecase "github.com/lexnotes/journal/internal/app/article/usecase"
	"github.com/lexnotes/journal/internal/app/auth"
	authhttp "github.com/lexnotes/journal/internal/app/auth/transport/http"
	"github.com/lexnotes/journal/internal/app/changelog"
	changelogrepo "github.com/lexnotes/journal/internal/app/changelog/repo/gorm"
	"github.com/lexnotes/journal/internal/app/processing"
	"github.com/lexnotes/journal/internal/app/user"
	userrepo "github.com/lexnotes/journal/internal/app/user/repo/gorm"
	userhttp "github.com/lexnotes/journal/internal/app/user/transport/http"
	userusecase "github.com/lexnotes/journal/internal/app/user/usecase"
	"github.com/lexnotes/journal/internal/app/version"
	versionrepo "github.com/lexnotes/journal/internal/app/version/repo/gorm"
	"github.com/lexnotes/journal/internal/infrastructure/cache"
	"github.com/lexnotes/journal/internal/infrastructure/docapi"
	"github.com/lexnotes/journal/internal/infrastructure/httpx"
	"github.com/lexnotes/journal/internal/infrastructure/jobs"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
	"github.com/lexnotes/journal/internal/infrastructure/notify"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
	"github.com/lexnotes/journal/internal/infrastructure/storage"
	"github.com/lexnotes/journal/internal/infrastructure/system"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := loadConfig()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.LogLevel.zeroLog())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Overload(".env"); err != nil {
		log.Debug().Err(err).Msg("failed to load .env file, using environment variables")
	}

	password := os.Getenv("DB_PASSWORD")
	dsn := fmt.Sprintf("%s password=%s", cfg.DatabaseDSN, password)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("failed to set goose dialect")
	}
	if err = goose.Up(sqlDB, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	jwtCodec := secure.NewTokenCodec([]byte(jwtSecret))

	idGen := &system.UUIDv7Generator{}
	timeGen := &system.TimeGenerator{}
	codeGen := &system.CodeGenerator{}
	passwordHasher := secure.NewPasswordHasher()
	txm := tx.New(db)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	kv, err := cache.NewRedisKV(redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create redis kv")
	}

	store, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create object store")
	}

	docClient, err := docapi.NewClient(cfg.DocAPI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create document API client")
	}

	userValidator, err := user.NewValidator(cfg.UserValidation)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create user validator")
	}
	userCore, err := user.NewCore(userrepo.NewRepository(db), idGen, passwordHasher, userValidator, cfg.User)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create user core")
	}

	authCore, err := auth.NewCore(userCore, jwtCodec, passwordHasher, timeGen, cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create auth core")
	}
	guard := auth.NewGuard()

	versionCore, err := version.NewCore(versionrepo.NewRepository(db), idGen, timeGen)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create version core")
	}

	changelogCore, err := changelog.NewCore(changelogrepo.NewRepository(db), idGen, timeGen)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create changelog core")
	}

	articleCore, err := article.NewCore(
		articlerepo.NewRepository(db),
		articlerepo.NewAssignmentRepository(db),
		versionCore,
		changelogCore,
		userCore,
		txm,
		idGen,
		timeGen,
		cfg.Article,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create article core")
	}

	processor, err := processing.NewProcessor(docClient, docClient, versionCore, changelogCore, articleCore, txm)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create processor")
	}

	userService := userusecase.NewService(userCore, guard)
	userHandler := userhttp.NewHandler(userService)

	authHandler := authhttp.NewHandler(authCore)

	articleService := articleusecase.NewService(
		articleCore,
		versionCore,
		changelogCore,
		userCore,
		store,
		kv,
		docClient,
		notify.NewLogNotifier(),
		processor,
		idGen,
		codeGen,
		timeGen,
		cfg.Submission,
	)
	articleHandler := articlehttp.NewHandler(articleService)

	runner := jobs.NewRunner([]jobs.CronJob{processing.NewSweep(processor, cfg.Sweep)})
	if err = runner.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start job runner")
	}
	defer runner.Stop()

	// --- set up chi router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logger.Logger)
	r.Use(httpx.MaxBodyBytes(cfg.MaxBodySize))

	// with auth
	r.Group(func(r chi.Router) {
		r.Use(authhttp.AuthMiddleware(jwtCodec))

		// --- user routes
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.GetAllUsers) // GET    /users?role={role}

			r.Route(fmt.Sprintf("/{%s}", userhttp.URLParamUserID), func(r chi.Router) {
				r.Get("/", userHandler.GetUser)                 // GET    /users/{user_id}
				r.Put("/", userHandler.UpdateUser)              // PUT    /users/{user_id}
				r.Delete("/", userHandler.DeleteUser)           // DELETE /users/{user_id}
				r.Post("/password", userHandler.ChangePassword) // POST   /users/{user_id}/password
				r.Post("/roles", userHandler.AddRole)           // POST   /users/{user_id}/roles
				r.Delete("/roles", userHandler.RemoveRole)      // DELETE /users/{user_id}/roles
			})
		})

		// --- workflow routes
		r.Route("/articles", func(r chi.Router) {
			r.Post("/", articleHandler.Submit) // POST /articles

			r.Route(fmt.Sprintf("/{%s}", articlehttp.URLParamArticleID), func(r chi.Router) {
				r.Delete("/", articleHandler.Delete) // DELETE /articles/{article_id}

				r.Post("/editor", articleHandler.AssignEditor)       // POST /articles/{article_id}/editor
				r.Put("/editor", articleHandler.ReassignEditor)      // PUT  /articles/{article_id}/editor
				r.Post("/reviewer", articleHandler.AssignReviewer)   // POST /articles/{article_id}/reviewer
				r.Put("/reviewer", articleHandler.ReassignReviewer)  // PUT  /articles/{article_id}/reviewer
				r.Post("/citation", articleHandler.SetCitation)      // POST /articles/{article_id}/citation
				r.Post("/publish", articleHandler.Publish)           // POST /articles/{article_id}/publish
				r.Post("/reject", articleHandler.Reject)             // POST /articles/{article_id}/reject
				r.Get("/versions", articleHandler.Versions)          // GET  /articles/{article_id}/versions
				r.Get("/history", articleHandler.History)            // GET  /articles/{article_id}/history
				r.Get("/assignments", articleHandler.Assignments)    // GET  /articles/{article_id}/assignments
				r.Post("/corrections/editor", articleHandler.UploadEditorCorrection)     // POST /articles/{article_id}/corrections/editor
				r.Post("/corrections/reviewer", articleHandler.UploadReviewerCorrection) // POST /articles/{article_id}/corrections/reviewer
				r.Post("/approve/editor", articleHandler.EditorApprove)                  // POST /articles/{article_id}/approve/editor
				r.Post("/approve/reviewer", articleHandler.ReviewerApprove)              // POST /articles/{article_id}/approve/reviewer

				r.Get(fmt.Sprintf("/history/{%s}/diff", articlehttp.URLParamEntryID), articleHandler.DiffSummary) // GET /articles/{article_id}/history/{entry_id}/diff
			})
		})
	})

	// public, token honored when present
	r.Group(func(r chi.Router) {
		r.Use(authhttp.OptionalAuthMiddleware(jwtCodec))

		r.Get("/articles", articleHandler.List) // GET /articles?status={status}
		r.Get(fmt.Sprintf("/articles/{%s}", articlehttp.URLParamArticleID), articleHandler.Get)
		r.Get(fmt.Sprintf("/articles/{%s}/download", articlehttp.URLParamArticleID), articleHandler.Download)
		r.Get(fmt.Sprintf("/articles/slug/{%s}", articlehttp.URLParamSlug), articleHandler.GetBySlug)
	})

	// without auth
	r.Group(func(r chi.Router) {
		r.Post("/login", authHandler.Login)                      // POST /login
		r.Post("/register", userHandler.CreateUser)              // POST /register
		r.Post("/submissions", articleHandler.GuestSubmit)       // POST /submissions
		r.Post("/submissions/verify", articleHandler.VerifyGuest) // POST /submissions/verify
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info().Msg(fmt.Sprintf("starting server on :%s", cfg.Port))
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}
