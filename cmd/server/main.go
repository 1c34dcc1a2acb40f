package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/api/middleware"
	"postsvc/internal/api/routes"
	"postsvc/internal/config"
	"postsvc/internal/core/events"
	"postsvc/internal/core/posts"
	postgresRepo "postsvc/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to posts database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	notifier, err := newNotifier(cfg)
	if err != nil {
		log.Fatal("Failed to initialize event notifier:", err)
	}

	repo := postgresRepo.NewPostRepository(db)
	service := posts.NewPostService(repo, notifier)
	translator := common.NewErrorTranslator(notifier)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.Recoverer(translator))

	routes.RegisterPostRoutes(r, service, translator)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Posts service starting on port %s\n", cfg.Port)
	fmt.Printf("Events provider: %s\n", cfg.Events.Provider)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// newNotifier builds the event notifier selected by configuration.
// In broker mode the Kafka connection is verified here so a bad broker
// address fails startup instead of dropping events at runtime.
func newNotifier(cfg *config.Config) (events.Notifier, error) {
	switch cfg.Events.Provider {
	case config.ProviderBroker:
		notifier, err := events.NewKafkaNotifier(context.Background(), cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			return nil, err
		}
		log.Printf("Events will be published to Kafka topic %q via %v", cfg.Events.Topic, cfg.Events.Brokers)
		return notifier, nil
	default:
		log.Println("Events will be written to the process log")
		return events.NewConsoleNotifier(), nil
	}
}
