package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weihan-tan/touchpoint/internal/infra/database"
	"github.com/weihan-tan/touchpoint/internal/infra/http/handlers"
	"github.com/weihan-tan/touchpoint/internal/infra/http/middleware"
	"github.com/weihan-tan/touchpoint/internal/infra/mail"
	"github.com/weihan-tan/touchpoint/internal/infra/queue"
	"github.com/weihan-tan/touchpoint/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Repositories
	prospectRepo := database.NewProspectRepository(db)
	touchRepo := database.NewTouchRepository(db)

	// Reminders are optional: without RABBITMQ_HOST the service runs with
	// the dispatch path disabled.
	var producer *queue.RabbitMQProducer
	var rabbitMQ *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, os.Getenv("REMINDER_NOTIFY_TO"))
		go worker.Start(queue.QueueName)
	}

	// UseCases
	createUC := usecase.NewCreateProspectUseCase(prospectRepo, touchRepo)
	updateUC := usecase.NewUpdateProspectUseCase(prospectRepo, touchRepo)
	getUC := usecase.NewGetProspectUseCase(prospectRepo, touchRepo)
	deleteUC := usecase.NewDeleteProspectUseCase(prospectRepo, touchRepo)
	touchUC := usecase.NewTouchUseCase(prospectRepo, touchRepo)
	importUC := usecase.NewImportProspectsUseCase(createUC)
	dashboardUC := usecase.NewDashboardUseCase(prospectRepo)

	// A typed nil must not leak into the interface field; reminders check
	// for a nil queue to stay a no-op.
	var queueProducer usecase.QueueProducerInterface
	if producer != nil {
		queueProducer = producer
	}
	remindersUC := usecase.NewDispatchRemindersUseCase(prospectRepo, queueProducer)

	// Handlers
	prospectHandler := handlers.NewProspectHandler(createUC, updateUC, getUC, deleteUC)
	touchHandler := handlers.NewTouchHandler(touchUC)
	importHandler := handlers.NewImportHandler(importUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	reminderHandler := handlers.NewReminderHandler(remindersUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// Daily reminder dispatch
	if producer != nil {
		go func() {
			ticker := time.NewTicker(24 * time.Hour)
			defer ticker.Stop()
			for {
				published, err := remindersUC.Execute(context.Background(), time.Now().UTC())
				if err != nil {
					log.Printf("reminder dispatch failed: %v", err)
				} else if published > 0 {
					middleware.RecordRemindersPublished(published)
					log.Printf("dispatched %d touch reminder(s)", published)
				}
				<-ticker.C
			}
		}()
	}

	// Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/prospects", prospectHandler.Create)
	r.Get("/prospects", prospectHandler.List)
	r.Get("/prospects/{id}", prospectHandler.Get)
	r.Patch("/prospects/{id}", prospectHandler.Update)
	r.Delete("/prospects/{id}", prospectHandler.Delete)

	r.Put("/prospects/{id}/touches", touchHandler.Replace)
	r.Post("/prospects/{id}/touches/{touchID}/done", touchHandler.Complete)

	r.Post("/import", importHandler.Handle)
	r.Get("/dashboard", dashboardHandler.Handle)
	r.Post("/reminders/dispatch", reminderHandler.Dispatch)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("touchpoint API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
