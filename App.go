package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"net/http"
	"os"
)

const ExitCodeMainError = 1

func RunApp(config AppConfig) error {
	gin.SetMode(gin.ReleaseMode)

	level, err := config.ParseLogLevel()
	if err != nil {
		return err
	}
	logger := NewLogger(os.Stderr, level)

	serviceContainer, err := BuildServiceContainer(config, logger)
	if err != nil {
		return err
	}
	defer serviceContainer.Close()

	if err = serviceContainer.Start(); err != nil {
		return err
	}

	logger.Info("listening", "address", config.ListenAddress, "database", config.DatabaseFilepath)
	return http.ListenAndServe(config.ListenAddress, serviceContainer.Router)
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
