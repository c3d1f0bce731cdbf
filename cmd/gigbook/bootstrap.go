package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gigbook/internal/app/admins"
	"gigbook/internal/config"
)

// bootstrapAdmin seeds the back-office account named by ADMIN_USERNAME.
func bootstrapAdmin(ctx context.Context, cfg config.SecurityConfig, svc admins.Service) error {
	if cfg.AdminUsername == "" {
		return nil
	}

	created, err := svc.Bootstrap(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		log.Info().Str("username", cfg.AdminUsername).Msg("admin account created")
	}
	return nil
}
