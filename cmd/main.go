package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/farellandr/lokly/internal/server"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	if err := server.Start(); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}
}
