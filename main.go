package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/saqibullah/facelex-backend/api"
	"github.com/saqibullah/facelex-backend/provider"
)

func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	h := api.NewHandler(provider.New(cfg.ProviderOptions()))
	r := api.NewRouter(cfg, h)

	log.Printf("Facelex backend (%s) listening on :%s, model %s", cfg.AppEnv, cfg.Port, cfg.OpenAIModel)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
