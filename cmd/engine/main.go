package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gosaintmrc/sulis/internal/config"
	abilitydef "github.com/gosaintmrc/sulis/internal/domain/ability"
	"github.com/gosaintmrc/sulis/internal/domain/actor"
	"github.com/gosaintmrc/sulis/internal/events"
	"github.com/gosaintmrc/sulis/internal/game"
	abilitysvc "github.com/gosaintmrc/sulis/internal/services/ability"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	defs, err := abilitydef.LoadDefinitions(cfg.Content.AbilityDir)
	if err != nil {
		log.Fatalf("Failed to load ability content: %v", err)
	}
	log.Printf("Loaded %d ability definitions from %s", len(defs), cfg.Content.AbilityDir)

	audio, err := game.NewAudioPlayer(game.AudioConfig{
		Enabled:    cfg.Audio.Enabled,
		Dir:        cfg.Audio.SFXDir,
		SampleRate: cfg.Audio.SampleRate,
	})
	if err != nil {
		log.Printf("Audio unavailable, continuing silent: %v", err)
	}
	if audio != nil {
		log.Printf("Preloaded sfx: %v", audio.Loaded())
	}

	bus := events.NewEventBus()
	actors := actor.NewRegistry(bus)
	services := game.NewServices(audio, game.NewMessageFeed())

	svc := abilitysvc.NewService(&abilitysvc.ServiceConfig{
		Actors:      actors,
		Definitions: defs,
		EventBus:    bus,
		Game:        services,
	})
	abilitysvc.RegisterCoreHandlers(svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runDemo(ctx, actors, svc, services); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// runDemo walks one actor through the stance lifecycle: enter Defensive
// Fighting, displace it with Precise Shot, then swap to a melee weapon so
// the stance drops itself.
func runDemo(ctx context.Context, actors *actor.Registry, svc abilitysvc.Service, services *game.GameServices) error {
	archer := actor.New(actor.Config{
		ID:    "archer-1",
		Name:  "Jorzal",
		Level: 10,
		Held:  actor.HeldRangedWeapon,
		Base: actor.BaseStats{
			MeleeAccuracy:  40,
			RangedAccuracy: 70,
			CritMultiplier: 1.5,
			AttackCost:     2000,
			Defense:        55,
			Damage:         []actor.DamageRange{{Min: 8, Max: 14}},
		},
	})
	archer.GrantAbility(abilitysvc.PreciseShotKey, 2)
	archer.GrantAbility(abilitysvc.DefensiveFightingKey, 1)

	if err := actors.Add(archer); err != nil {
		return err
	}

	logStats := func(label string) {
		stats := archer.Stats()
		log.Printf("%s: ranged accuracy %d, crit x%.2f, attack cost %d, defense %d",
			label, stats.RangedAccuracy, stats.CritMultiplier, stats.AttackCost, stats.Defense)
	}

	logStats("Baseline")

	if err := svc.Activate(ctx, archer.ID, abilitysvc.DefensiveFightingKey); err != nil {
		return err
	}
	logStats("Defensive Fighting up")

	// Activating a second mode displaces the first
	if err := svc.Activate(ctx, archer.ID, abilitysvc.PreciseShotKey); err != nil {
		return err
	}
	logStats("Precise Shot up")

	// Swapping to a melee weapon ends the stance through its own reaction
	if err := actors.SetHeld(archer.ID, actor.HeldMeleeWeapon); err != nil {
		return err
	}
	logStats("After weapon swap")

	for _, line := range services.Feed().Lines() {
		log.Printf("Feed: [%s] %s", line.ActorID, line.Text)
	}

	return nil
}
