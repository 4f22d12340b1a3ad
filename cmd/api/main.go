package main

import (
	"log"
	"net/http"

	"github.com/develtlab/barber-booking/internal/cache"
	"github.com/develtlab/barber-booking/internal/config"
	dbpkg "github.com/develtlab/barber-booking/internal/db"
	"github.com/develtlab/barber-booking/internal/middleware"
	"github.com/develtlab/barber-booking/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
