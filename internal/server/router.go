// Package server exposes the simulator over HTTP.
package server

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/san-kum/pendsim/internal/config"
)

func NewRouter(cfg *config.Config, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	h := NewHandler(cfg, logger)

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.POST("/simulate", h.Simulate)

		presets := api.Group("/presets")
		{
			presets.GET("", h.ListPresets)
			presets.GET("/:name", h.GetPreset)
		}
	}

	return r
}
