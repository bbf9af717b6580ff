package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher/agent"
)

const (
	NumGames = 20 // Per matchup
	Rows     = 6
	Cols     = 7
)

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: "minimax", Depth: 3},
	{ID: 2, Strategy: "alphabeta", Depth: 3},
	{ID: 3, Strategy: "alphabeta", Depth: 5},
	{ID: 4, Strategy: "expectimax", Depth: 3},
}

// RunStrategyComparison plays every search strategy against every other at
// their configured depths and records game and per-move metrics.
func RunStrategyComparison() {
	matchUps := [][]metrics.AgentConfig{}
	for i, config1 := range strategyConfigs {
		for _, config2 := range strategyConfigs[i+1:] {
			matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
		}
	}

	runExperiment("strategy_comparison", strategyConfigs, matchUps)
}

// RunPruningExperiment pairs alpha-beta against plain minimax at increasing
// depths; the interesting output is the node and cutoff counts, not the
// winner (the two play identical moves by construction).
func RunPruningExperiment() {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= 4; depth++ {
		minimax := metrics.AgentConfig{ID: depth*2 - 1, Strategy: "minimax", Depth: depth}
		alphabeta := metrics.AgentConfig{ID: depth * 2, Strategy: "alphabeta", Depth: depth}
		configs = append(configs, minimax, alphabeta)
		matchUps = append(matchUps, []metrics.AgentConfig{minimax, alphabeta})
	}

	runExperiment("pruning", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			winner, gameMetric, moveMetrics := runGame(config1, config2)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(matchUps), i+1, NumGames, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	logSummaries(configs, moveRecords)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to write agent configs: %v", err))
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
}

func runGame(config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	board, err := game.NewBoard(Rows, Cols)
	if err != nil {
		panic(err)
	}
	agent1 := mustAgent(config1)
	agent2 := mustAgent(config2)

	winner, gameMetric, moveMetrics := engine.Local(board, agent1, agent2).Run()
	return winnerLabel(winner), gameMetric, moveMetrics
}

func mustAgent(config metrics.AgentConfig) agent.Agent {
	a, err := agent.NewSearchAgent(config.Strategy, config.Depth)
	if err != nil {
		panic(err)
	}
	return a
}

func winnerLabel(winner game.Slot) string {
	if winner == game.EmptySlot {
		return "draw"
	}
	return winner.String()
}

// logSummaries reports mean and standard deviation of per-move search
// duration and explored node counts for each configuration.
func logSummaries(configs []metrics.AgentConfig, records []metrics.MoveRecord) {
	for _, config := range configs {
		var durations, nodes []float64
		for _, record := range records {
			if record.Strategy != config.Strategy || record.Depth != config.Depth {
				continue
			}
			durations = append(durations, record.Duration.Seconds())
			nodes = append(nodes, float64(record.Nodes))
		}
		if len(durations) == 0 {
			continue
		}

		durMean, durStd := stat.MeanStdDev(durations, nil)
		nodeMean, nodeStd := stat.MeanStdDev(nodes, nil)
		log.Info().
			Str("strategy", config.Strategy).
			Int("depth", config.Depth).
			Int("moves", len(durations)).
			Float64("duration_mean_s", durMean).
			Float64("duration_std_s", durStd).
			Float64("nodes_mean", nodeMean).
			Float64("nodes_std", nodeStd).
			Msg("per-move search summary")
	}
}
