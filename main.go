package main

import (
	"context"
	"flag"
	"os"
	"time"

	"example.com/arena/communication/server"
	"example.com/arena/engine"
	"example.com/arena/experiments"
	"example.com/arena/game"
	"example.com/arena/meta"

	hertz "github.com/cloudwego/hertz/pkg/app/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default rules")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for the game layout")
	addr := flag.String("serve", "", "Serve the spectator API on this address, e.g. :8080")
	tick := flag.Duration("tick", 500*time.Millisecond, "Autoplay interval while serving, 0 to disable")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: depth or pruning")
	games := flag.Int("games", experiments.NumGames, "Games per search config in experiments")
	out := flag.String("out", "experiments", "Output directory for experiment results")
	debug := flag.Bool("debug", false, "Log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rules := meta.Default()
	if *configPath != "" {
		var err error
		rules, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	switch *experiment {
	case "":
	case "depth":
		runExperiment(experiments.RunDepthExperiment, rules, *games, *out)
		return
	case "pruning":
		runExperiment(experiments.RunPruningExperiment, rules, *games, *out)
		return
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	e, err := engine.New(rules, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}
	log.Info().Msgf("seed %d", *seed)

	if *addr != "" {
		serve(e, *addr, *tick)
		return
	}
	play(e)
}

func runExperiment(run func(game.Config, int, string) (string, error), rules game.Config, games int, out string) {
	dir, err := run(rules, games, out)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results stored in %s", dir)
}

// play runs one headless game with a status line every 10 turns.
func play(e *engine.Engine) {
	for e.IsActive() {
		e.ExecuteTurn()
		s := e.Snapshot()
		if s.TurnCount%10 == 0 {
			p1, p2 := s.Players[0], s.Players[1]
			log.Info().Msgf("turn %d: %s %d hp %d pts %s | %s %d hp %d pts %s",
				s.TurnCount, p1.Team, p1.Health, p1.Score, p1.Action, p2.Team, p2.Health, p2.Score, p2.Action)
		}
	}

	s := e.Snapshot()
	log.Info().Msgf("%s (turn %d, Blue %d pts, Red %d pts)", s.Reason, s.TurnCount, s.Players[0].Score, s.Players[1].Score)
}

func serve(e *engine.Engine, addr string, tick time.Duration) {
	spectator := server.NewSpectator(e)
	h := hertz.Default(hertz.WithHostPorts(addr))
	spectator.RegisterRoutes(h)

	if tick > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go spectator.Autoplay(ctx, tick)
	}

	log.Info().Msgf("spectator API listening on %s", addr)
	h.Spin()
}
