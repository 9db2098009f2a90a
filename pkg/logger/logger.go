package logger

import (
	"log"

	"go.uber.org/zap"
)

func New(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	return l
}
