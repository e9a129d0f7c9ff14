package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetInt(ConfigSearchDepthLimit), 4)
	is.Equal(c.GetDuration(ConfigSearchTimeBudget), time.Second)
	is.Equal(c.GetString(ConfigSearchPolicy), "deepening")
	is.Equal(c.GetString(ConfigSearchAlgorithm), "alphabeta")
	is.Equal(c.GetString(ConfigEvalHeuristic), "score")
	is.Equal(c.GetInt(ConfigBoardSaturation), 64)
	is.True(!c.GetBool(ConfigDebug))
}

func TestLoadPrecedence(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "othello.yaml")
	err := os.WriteFile(cfgFile, []byte(
		"search-algorithm: negascout\neval-heuristic: mobility\nsearch-depth-limit: 6\n"), 0o644)
	is.NoErr(err)
	t.Setenv("OTHELLO_EVAL_HEURISTIC", "score")

	c := DefaultConfig()
	err = c.Load([]string{"--config-file", cfgFile, "--search-depth-limit", "-1",
		"--search-time-budget", "250ms"})
	is.NoErr(err)
	is.Equal(c.GetString(ConfigSearchAlgorithm), "negascout") // file
	is.Equal(c.GetString(ConfigEvalHeuristic), "score")       // env over file
	is.Equal(c.GetInt(ConfigSearchDepthLimit), -1)            // flag over file
	is.Equal(c.GetDuration(ConfigSearchTimeBudget), 250*time.Millisecond)
	is.Equal(c.GetString(ConfigSearchPolicy), "deepening")
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}
