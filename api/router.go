package api

import "github.com/gin-gonic/gin"

func NewRouter(cfg *Config, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), RequestID(), Recovery(), CORS(), LimitBody(cfg.MaxBodyBytes))

	// Both endpoints accept any method.
	r.Any("/api/analyze_face", h.AnalyzeFace)
	r.Any("/api/ping", PingHandler)

	return r
}
