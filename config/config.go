package config

import (
	"fmt"

	"github.com/namsral/flag"
)

// Config holds the settings of the connectfour binary. The search core
// itself reads no configuration; only the collaborators wired up in main
// (engine demo, websocket server, experiments) are configured here.
type Config struct {
	Mode      string // "demo", "serve" or "experiment"
	Rows      int
	Cols      int
	Strategy  string // Strategy of the first agent
	Strategy2 string // Strategy of the second agent (demo mode)
	Depth     int
	Addr      string // Listen address (serve mode)
	Seed      uint64 // RNG seed for the random agent
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("connectfour", flag.ContinueOnError)
	fs.StringVar(&c.Mode, "mode", "demo", "what to run: demo, serve or experiment")
	fs.IntVar(&c.Rows, "rows", 6, "number of board rows")
	fs.IntVar(&c.Cols, "cols", 7, "number of board columns")
	fs.StringVar(&c.Strategy, "strategy", "alphabeta", "search strategy: minimax, alphabeta or expectimax")
	fs.StringVar(&c.Strategy2, "strategy2", "random", "demo opponent: minimax, alphabeta, expectimax or random")
	fs.IntVar(&c.Depth, "depth", 4, "search depth limit in plies")
	fs.StringVar(&c.Addr, "addr", ":8080", "listen address for the play server")
	fs.Uint64Var(&c.Seed, "seed", 1, "seed for the random agent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board dimensions %dx%d must be positive", c.Rows, c.Cols)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("depth limit %d must be positive", c.Depth)
	}
	return nil
}
