package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/ai"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/http/handlers"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/http/middleware"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/mail"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/queue"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

func main() {
	godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	// 1. Application state (in-memory for the process lifetime)
	appStore := store.New(entity.GenerationContext{
		SenderOrg:     getenv("SENDER_ORG", "Akfix"),
		EventName:     os.Getenv("EVENT_NAME"),
		EventLocation: os.Getenv("EVENT_LOCATION"),
	})

	// 2. Gemini (extraction + drafting)
	var gemini *ai.GeminiClient
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		var err error
		gemini, err = ai.NewGeminiClient(ctx, key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize gemini client")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, extraction and drafting disabled")
	}

	// 3. SMTP (optional direct dispatch)
	var mailer usecase.EmailSender
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
		mailer = mail.NewEmailSender(host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"))
	}

	// 4. RabbitMQ (optional archived-lead events)
	var rabbit *queue.RabbitMQ
	var publisher usecase.EventPublisher
	if url := os.Getenv("AMQP_URL"); url != "" {
		var err error
		rabbit, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rabbit.Close()
		publisher = queue.NewProducer(rabbit.Ch)
	}

	// 5. UseCases
	var extractor usecase.LeadExtractor
	var drafter usecase.Drafter
	if gemini != nil {
		extractor = gemini
		drafter = gemini
	}
	ingestUC := usecase.NewIngestUseCase(appStore, extractor, log)
	generateUC := usecase.NewGenerateUseCase(appStore, drafter, log)
	archiveUC := usecase.NewArchiveUseCase(appStore, publisher, log)

	// 6. Handlers
	ingestHandler := handlers.NewIngestHandler(ingestUC)
	customerHandler := handlers.NewCustomerHandler(appStore, mailer)
	draftHandler := handlers.NewDraftHandler(appStore, generateUC)
	archiveHandler := handlers.NewArchiveHandler(appStore, archiveUC)
	settingsHandler := handlers.NewSettingsHandler(appStore)

	var amqpConn *amqp091.Connection
	if rabbit != nil {
		amqpConn = rabbit.Conn
	}
	healthHandler := handlers.NewHealthHandler(amqpConn, gemini != nil, mailer != nil)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/ingest/extract", ingestHandler.HandleExtract)
	r.Post("/ingest/sheet", ingestHandler.HandleSheetPreview)
	r.Post("/ingest/rows", ingestHandler.HandleCommitRows)

	r.Get("/customers", customerHandler.HandleList)
	r.Delete("/customers/{id}", customerHandler.HandleDelete)
	r.Get("/customers/{id}/links", customerHandler.HandleLinks)
	r.Post("/customers/{id}/dispatch/email", customerHandler.HandleDispatchEmail)

	r.Post("/drafts/generate", draftHandler.HandleGenerate)
	r.Post("/customers/{id}/draft/regenerate", draftHandler.HandleRegenerate)
	r.Get("/customers/{id}/draft", draftHandler.HandleGetDraft)

	r.Post("/customers/{id}/archive", archiveHandler.HandleArchive)
	r.Get("/archive", archiveHandler.HandleList)
	r.Delete("/archive/{id}", archiveHandler.HandleRemove)
	r.Get("/archive/export.csv", archiveHandler.HandleExportCSV)

	r.Get("/settings", settingsHandler.HandleGet)
	r.Put("/settings", settingsHandler.HandlePut)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := getenv("PORT", "8080")
	log.Info().Str("port", port).Msg("outreach automator listening")

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
