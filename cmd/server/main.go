package main

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/calebmoore/pennywise/internal/auth"
	"github.com/calebmoore/pennywise/internal/config"
	"github.com/calebmoore/pennywise/internal/server"
	"github.com/calebmoore/pennywise/internal/service"
	"github.com/calebmoore/pennywise/internal/session"
	"github.com/calebmoore/pennywise/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	ctx := context.Background()

	var (
		storeImpl store.Store
		verifier  auth.TokenVerifier
	)

	if cfg.Local() {
		logrus.Info("using in-memory store for local development")
		storeImpl = store.NewMemoryStore()
		verifier = auth.LocalDevVerifier{}
	} else {
		client, err := firestore.NewClient(ctx, cfg.GoogleCloudProject)
		if err != nil {
			logrus.WithError(err).Fatal("failed to create Firestore client")
		}
		defer client.Close()
		storeImpl = store.WithBatchRetry(store.NewFirestoreStore(client), store.DefaultBatchRetryConfig)

		if cfg.SkipAuth {
			logrus.Warn("SKIP_AUTH enabled, using mock authentication (for seeding/testing only)")
			verifier = auth.LocalDevVerifier{}
		} else {
			firebaseAuth, err := auth.NewFirebaseAuth(ctx)
			if err != nil {
				logrus.WithError(err).Fatal("failed to initialize Firebase Auth")
			}
			verifier = firebaseAuth
		}
	}

	svc := service.NewFinanceService(storeImpl)
	loader := session.NewLoader(storeImpl, svc)
	srv := server.New(svc, loader)

	var handler http.Handler = srv.Handler()
	if cfg.Local() || cfg.SkipAuth {
		handler = auth.LocalDevMiddleware()(handler)
	} else {
		handler = auth.Middleware(verifier)(handler)
	}
	handler = auth.DebugImpersonationMiddleware(cfg.SkipAuth)(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
			"X-Debug-Impersonate-User",
		},
		AllowCredentials: true,
	})
	handler = c.Handler(handler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := httpServer.ListenAndServe(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
