package app

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-tasks/internal/config"
	"github.com/adanyl0v/go-tasks/internal/services"
)

var (
	globalTaskService   services.TaskService
	globalAuthService   services.AuthService
	globalExportService services.ExportService
)

// MustInitServices wires the service layer over the opened storage slot
// and restores the task list from it.
func MustInitServices() {
	cfg := config.Global()

	authCfg := cfg.Auth
	if authCfg.PasswordHash != "" && authCfg.JWTSigningKey == "" {
		globalLogger.Error().Msg("JWT_SIGNING_KEY is required when auth is enabled")
		panic(errors.New("missing jwt signing key"))
	}
	if authCfg.PasswordHash == "" {
		globalLogger.Warn().Msg("no password hash configured, auth is disabled")
	}
	globalAuthService = services.NewAuthService(
		globalLogger,
		authCfg.PasswordHash,
		authCfg.JWTIssuer,
		[]byte(authCfg.JWTSigningKey),
		authCfg.AccessTokenTTL,
	)

	globalTaskService = services.NewTaskService(
		globalLogger,
		globalSlot,
		cfg.Storage.SaveTimeout,
	)
	globalExportService = services.NewExportService(globalLogger, globalTaskService)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.LoadTimeout)
	defer cancel()

	tasks := globalTaskService.Load(ctx)
	globalLogger.Info().
		Int("count", len(tasks)).
		Msg("restored task list")
}

// CloseServices flushes the pending save, if any, and stops the task
// store. Call it after the HTTP server has stopped.
func CloseServices() {
	ctx, cancel := context.WithTimeout(context.Background(), config.Global().HTTP.ShutdownTimeout)
	defer cancel()

	err := globalTaskService.Close(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to flush pending saves")
		return
	}
	globalLogger.Info().Msg("closed task store")
}
