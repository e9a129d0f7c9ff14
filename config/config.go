package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug                = "debug"
	ConfigLogLevel             = "log-level"
	ConfigFile                 = "config-file"
	ConfigSearchDepthLimit     = "search-depth-limit"
	ConfigSearchTimeBudget     = "search-time-budget"
	ConfigSearchPolicy         = "search-policy"
	ConfigSearchAlgorithm      = "search-algorithm"
	ConfigEvalHeuristic        = "eval-heuristic"
	ConfigBoardSaturation      = "board-saturation"
	ConfigResetStatsPerMove    = "reset-stats-per-move"
	ConfigSearchDisablePruning = "search-disable-pruning"
	ConfigAutoplayThreads      = "autoplay-threads"
	ConfigAutoplayGames        = "autoplay-games"
	ConfigAutoplayLogfile      = "autoplay-logfile"
	ConfigCPUProfile           = "cpu-profile"
)

const envPrefix = "OTHELLO"

type Config struct {
	*viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigSearchDepthLimit, 4)
	c.SetDefault(ConfigSearchTimeBudget, time.Second)
	c.SetDefault(ConfigSearchPolicy, "deepening")
	c.SetDefault(ConfigSearchAlgorithm, "alphabeta")
	c.SetDefault(ConfigEvalHeuristic, "score")
	c.SetDefault(ConfigBoardSaturation, 64)
	c.SetDefault(ConfigResetStatsPerMove, false)
	c.SetDefault(ConfigSearchDisablePruning, false)
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigAutoplayGames, 20)
	c.SetDefault(ConfigAutoplayLogfile, "/tmp/othello-autoplay.csv")
	c.SetDefault(ConfigCPUProfile, "")
	return c
}

// Load parses command-line flags, then reads OTHELLO_* environment variables
// and an optional config.yaml. Flags win over the environment, which wins
// over the file.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("othello", pflag.ContinueOnError)

	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLogLevel, "info", "log level when debug is off")
	fs.String(ConfigFile, "", "path to a YAML config file")
	fs.Int(ConfigSearchDepthLimit, 4, "search depth limit in plies; -1 for unbounded")
	fs.Duration(ConfigSearchTimeBudget, time.Second, "thinking time per move; 0 for none")
	fs.String(ConfigSearchPolicy, "deepening", "fixed or deepening")
	fs.String(ConfigSearchAlgorithm, "alphabeta", "alphabeta or negascout")
	fs.String(ConfigEvalHeuristic, "score", "score or mobility")
	fs.Int(ConfigBoardSaturation, 64, "combined disc count at which deepening stops expanding")
	fs.Bool(ConfigResetStatsPerMove, false, "reset search statistics before every move")
	fs.Bool(ConfigSearchDisablePruning, false, "plain minimax (for comparison)")
	fs.Int(ConfigAutoplayThreads, 4, "concurrent autoplay games")
	fs.Int(ConfigAutoplayGames, 20, "number of autoplay games")
	fs.String(ConfigAutoplayLogfile, "/tmp/othello-autoplay.csv", "autoplay move log")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if f := c.GetString(ConfigFile); f != "" {
		c.SetConfigFile(f)
	} else {
		c.SetConfigName("config")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}
