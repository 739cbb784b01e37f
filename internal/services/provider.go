package services

import (
	"time"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/dice"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/effects"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/notifications"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/pacing"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/attack"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/resolution"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/status"
)

// Provider holds all service instances
type Provider struct {
	AttackService     attack.Service
	StatusService     status.Service
	ResolutionService resolution.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Repository actors.Repository
	Roller     dice.Roller
	Applier    effects.Applier
	Notifier   notifications.Notifier
	Delayer    pacing.Delayer

	// RepetitionDelay paces repetitions when a card has no timing
	// override; zero keeps the system default
	RepetitionDelay time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.Repository == nil {
		panic("actor repository is required")
	}

	// Use the standard effect applier if none provided
	applier := cfg.Applier
	if applier == nil {
		applier = effects.NewManager(&effects.ManagerConfig{Repository: cfg.Repository})
	}

	attackService := attack.NewService(&attack.ServiceConfig{
		Repository: cfg.Repository,
		Roller:     cfg.Roller,
	})

	statusService := status.NewService(&status.ServiceConfig{
		Repository: cfg.Repository,
		Applier:    applier,
		Notifier:   cfg.Notifier,
		Delayer:    cfg.Delayer,
	})

	resolutionService := resolution.NewService(&resolution.ServiceConfig{
		Repository:    cfg.Repository,
		Roller:        cfg.Roller,
		AttackService: attackService,
		StatusService: statusService,
		Notifier:      cfg.Notifier,
		Delayer:       cfg.Delayer,
		DefaultDelay:  cfg.RepetitionDelay,
	})

	return &Provider{
		AttackService:     attackService,
		StatusService:     statusService,
		ResolutionService: resolutionService,
	}
}
