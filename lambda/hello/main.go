package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/guild/hello-service/internal/config"
	"github.com/guild/hello-service/internal/greeting"
	"github.com/guild/hello-service/internal/handler"
	"github.com/guild/hello-service/internal/logger"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	h := handler.New(log, greeting.NewResolver(greeting.NewSSMClient))
	lambda.Start(h.Handle)
}
