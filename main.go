package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/RachitaModiTR/PlanPoker/internal/config"
	"github.com/RachitaModiTR/PlanPoker/internal/handlers"
	"github.com/RachitaModiTR/PlanPoker/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	metrics := services.NewMetrics()
	store := services.NewStore()
	hub := services.NewHub(metrics)
	go hub.Run()

	sessions := services.NewSessionService(store, hub)
	dispatcher := services.NewDispatcher(sessions)

	router := gin.Default()

	wsHandler := handlers.NewWSHandler(hub, sessions, dispatcher, cfg.AllowedOrigins)
	router.GET("/ws/:sessionId", wsHandler.Handle)

	sessionHandlers := handlers.NewSessionHandlers(store, cfg.PublicURL)
	api := router.Group("/api")
	{
		api.POST("/sessions", sessionHandlers.Create)
		api.GET("/sessions/:id", sessionHandlers.Get)
		api.GET("/sessions/:id/invite.png", sessionHandlers.InviteQR)
	}

	router.GET("/metrics", handlers.HandleMetrics(metrics, store))
	router.GET("/healthz", handlers.HandleHealth(metrics, store))

	log.Printf("Listening on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
