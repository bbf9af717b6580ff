package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectfour/config"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/searcher/agent"
	"connectfour/server"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	switch cfg.Mode {
	case "demo":
		runDemo(cfg)
	case "serve":
		runServer(cfg)
	case "experiment":
		experiments.RunStrategyComparison()
	default:
		log.Fatal().Msgf("unknown mode %q", cfg.Mode)
	}
}

// runDemo plays one game between two agents and prints the final board.
func runDemo(cfg config.Config) {
	board, err := game.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create board")
	}

	agent1, err := newAgent(cfg.Strategy, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create first agent")
	}
	agent2, err := newAgent(cfg.Strategy2, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create second agent")
	}

	e := engine.Local(board, agent1, agent2)
	winner, gameMetric, _ := e.Run()
	if winner == game.EmptySlot {
		log.Info().Msgf("draw after %d moves\n%s", gameMetric.TotalMoves, e.Board.Dump())
	} else {
		log.Info().Msgf("player %v (%s) wins after %d moves\n%s", winner, e.Agents[winner].Name(), gameMetric.TotalMoves, e.Board.Dump())
	}
}

func runServer(cfg config.Config) {
	s := server.New(cfg.Rows, cfg.Cols, cfg.Strategy, cfg.Depth)
	log.Info().Msgf("play server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, s.Handler()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newAgent(strategy string, cfg config.Config) (agent.Agent, error) {
	if strategy == "random" {
		return agent.NewRandomAgent(cfg.Seed), nil
	}
	return agent.NewSearchAgent(strategy, cfg.Depth)
}
