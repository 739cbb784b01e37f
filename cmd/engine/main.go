package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/cards"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/config"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/notifications"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/pacing"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/resolution"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pick the actor store: Redis when configured, in-memory otherwise
	var repo actors.Repository
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repository")
		} else {
			redisClient = redis.NewClient(opts)

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repository")
			} else {
				repo = actors.NewRedis(redisClient, nil)
				log.Println("Using Redis for persistence")
			}
			cancel()
		}
	}
	if repo == nil {
		log.Println("Using in-memory repository")
		repo = actors.NewInMemoryRepository()
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis client: %v", closeErr)
			}
		}()
	}

	notifier := notifications.NewChannelNotifier(64)
	defer notifier.Close()

	var delayer pacing.Delayer = pacing.NewSleeper()
	if cfg.Engine.DisablePacing {
		delayer = pacing.NoDelay{}
	}

	provider := services.NewProvider(&services.ProviderConfig{
		Repository:      repo,
		Notifier:        notifier,
		Delayer:         delayer,
		RepetitionDelay: time.Duration(cfg.Engine.RepetitionDelaySeconds) * time.Second,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return notifier.Run(ctx, notifications.NewLogNotifier())
	})

	g.Go(func() error {
		defer notifier.Close()
		return runDemo(ctx, cfg, repo, provider.ResolutionService)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalf("Engine exited with error: %v", err)
	}
}

// runDemo seeds two actors, loads the configured card packs, and
// resolves each card against the defender so the engine can be
// exercised end to end from the command line.
func runDemo(ctx context.Context, cfg *config.Config, repo actors.Repository, svc resolution.Service) error {
	source := &entities.Actor{
		ID:           "demo-attacker",
		Name:         "Vess",
		CurrentHP:    30,
		MaxHP:        30,
		CurrentPower: 10,
		MaxPower:     10,
		Attributes: map[entities.Stat]*entities.AbilityScore{
			entities.StatPhysical:  {Score: 14, Bonus: 2, Defense: 12},
			entities.StatFortitude: {Score: 12, Bonus: 1, Defense: 11},
		},
		Inventory: []*entities.GearItem{
			{Name: "Throwing Knife", Quantity: 5, Equipped: true},
		},
	}
	target := &entities.Actor{
		ID:        "demo-defender",
		Name:      "Husk",
		CurrentHP: 25,
		MaxHP:     25,
		Attributes: map[entities.Stat]*entities.AbilityScore{
			entities.StatPhysical:  {Score: 10, Bonus: 0, Defense: 10},
			entities.StatFortitude: {Score: 10, Bonus: 0, Defense: 10},
		},
	}

	for _, actor := range []*entities.Actor{source, target} {
		if err := repo.Create(ctx, actor); err != nil {
			log.Printf("Seed actor %s already present: %v", actor.ID, err)
		}
	}

	packs, err := cards.LoadDir(cfg.Engine.CardPackDir)
	if err != nil {
		log.Printf("No card packs loaded: %v", err)
		return nil
	}

	for _, pack := range packs {
		log.Printf("Resolving pack %q (%d cards)", pack.Name, len(pack.Cards))
		for _, card := range pack.Cards {
			result, execErr := svc.Execute(ctx, &resolution.ExecuteInput{
				Card:          card,
				SourceID:      source.ID,
				TargetIDs:     []string{target.ID},
				DisablePacing: cfg.Engine.DisablePacing,
			})
			if execErr != nil {
				log.Printf("Card %s failed: %v", card.ID, execErr)
				continue
			}

			pretty, marshalErr := json.MarshalIndent(result, "", "  ")
			if marshalErr != nil {
				log.Printf("Card %s result: %+v", card.ID, result)
				continue
			}
			if _, writeErr := os.Stdout.Write(append(pretty, '\n')); writeErr != nil {
				return writeErr
			}
		}
	}

	return nil
}
