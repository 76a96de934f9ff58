package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/londonlets/api/internal/infra/database"
	"github.com/londonlets/api/internal/infra/http/handlers"
	appmiddleware "github.com/londonlets/api/internal/infra/http/middleware"
	"github.com/londonlets/api/internal/infra/integration/llm"
	"github.com/londonlets/api/internal/infra/integration/whatsapp"
	"github.com/londonlets/api/internal/infra/mail"
	"github.com/londonlets/api/internal/infra/notification"
	"github.com/londonlets/api/internal/infra/queue"
	"github.com/londonlets/api/internal/infra/scraper"
	"github.com/londonlets/api/internal/infra/worker"
	"github.com/londonlets/api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ database: %v", err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	propertyRepo := database.NewPropertyRepository(db)

	// 2. Integrations and notification channels
	llmClient := llm.NewClient(os.Getenv("LLM_API_KEY"), os.Getenv("LLM_API_URL"), os.Getenv("LLM_MODEL"))

	emailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"), os.Getenv("OWNER_EMAIL"),
	)
	notifier := notification.NewFanOut(emailSender, whatsapp.NewClientFromEnv())

	// 3. Queue (optional): when RabbitMQ is up, lead notifications go
	// through the queue worker; otherwise they are sent inline.
	var producer usecase.LeadEventProducer
	var rabbitConn *amqp.Connection
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rmq, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, notifying inline: %v", err)
		} else {
			defer rmq.Conn.Close()
			defer rmq.Ch.Close()
			rabbitConn = rmq.Conn
			producer = queue.NewProducer(rmq.Conn, rmq.Ch)

			notifyWorker := queue.NewWorker(rmq.Ch, notifier)
			go notifyWorker.Start(queue.QueueName)
		}
	}

	// 4. Use cases
	submitUC := usecase.NewSubmitLeadUseCase(leadRepo, producer, notifier)
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, notifier)
	rewriter := usecase.NewContentRewriter(llmClient)
	newsService := usecase.NewMarketNewsService(rewriter)
	publishUC := usecase.NewPublishListingsUseCase(scraper.All(), rewriter, propertyRepo, newsService)
	estimateUC := usecase.NewEstimateRentUseCase()

	// 5. Scheduled publisher
	production := os.Getenv("APP_ENV") == "production"
	publisherWorker := worker.NewPublisherWorker(publishUC, production)
	publisherWorker.SingleFlight = os.Getenv("PUBLISHER_SINGLE_FLIGHT") == "true"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go publisherWorker.Start(ctx)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(submitUC)
	adminLeadHandler := handlers.NewAdminLeadHandler(leadRepo, statusUC)
	propertyHandler := handlers.NewPropertyHandler(propertyRepo, estimateUC)
	newsHandler := handlers.NewNewsHandler(newsService)
	publisherHandler := handlers.NewPublisherHandler(publisherWorker)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.HandleSubmit)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/leads", adminLeadHandler.HandleList)
		r.Patch("/leads/{id}/status", adminLeadHandler.HandleUpdateStatus)
		r.Get("/leads/export", adminLeadHandler.HandleExport)
		r.Post("/publish", publisherHandler.HandleTrigger)
	})

	r.Get("/properties", propertyHandler.HandleList)
	r.Get("/properties/{id}", propertyHandler.HandleGetByID)
	r.Post("/estimate", propertyHandler.HandleEstimate)
	r.Get("/news", newsHandler.HandleList)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 London Lets API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
