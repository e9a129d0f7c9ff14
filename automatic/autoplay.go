package automatic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/config"
)

var errNoGames = errors.New("need at least one game and one thread")

// Options configure an autoplay run. Logfile receives one CSV line per
// move; empty disables logging.
type Options struct {
	// Players are p1 and p2. They swap colours every game.
	Players      [2]player.Config
	NumGames     int
	Threads      int
	OpeningPlies int
	Seed         uint64
	Logfile      string
}

func OptionsFromSettings(cfg *config.Config) (Options, error) {
	p, err := player.ConfigFromSettings(cfg)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Players:      [2]player.Config{p, p},
		NumGames:     cfg.GetInt(config.ConfigAutoplayGames),
		Threads:      cfg.GetInt(config.ConfigAutoplayThreads),
		OpeningPlies: 4,
		Logfile:      cfg.GetString(config.ConfigAutoplayLogfile),
	}, nil
}

// PlayerName labels a player by seat and engine.
func PlayerName(idx int, cfg player.Config) string {
	return fmt.Sprintf("p%d:%s", idx+1, player.New(cfg).Name())
}

// Play runs opts.NumGames games, opts.Threads at a time. Every game builds
// fresh engines. Results come back in game order.
func Play(ctx context.Context, opts Options) ([]GameResult, error) {
	if opts.NumGames < 1 || opts.Threads < 1 {
		return nil, errNoGames
	}
	var logfile *os.File
	if opts.Logfile != "" {
		var err error
		logfile, err = os.Create(opts.Logfile)
		if err != nil {
			return nil, err
		}
	}
	log.Debug().Int("games", opts.NumGames).Int("threads", opts.Threads).Msg("starting-autoplay")

	logChan := make(chan string, 100)
	writer := errgroup.Group{}
	writer.Go(func() error {
		if logfile == nil {
			for range logChan {
			}
			return nil
		}
		defer logfile.Close()
		var werr error
		if _, err := logfile.WriteString(LogHeader); err != nil {
			werr = err
		}
		// Keep draining on error so game goroutines never block.
		for msg := range logChan {
			if werr != nil {
				continue
			}
			if _, err := logfile.WriteString(msg); err != nil {
				werr = err
			}
		}
		return werr
	})

	names := [2]string{PlayerName(0, opts.Players[0]), PlayerName(1, opts.Players[1])}
	results := make([]GameResult, opts.NumGames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Threads)
	for i := 0; i < opts.NumGames; i++ {
		i := i
		g.Go(func() error {
			seats := [2]int{0, 1}
			if i%2 == 1 {
				seats = [2]int{1, 0}
			}
			r := NewGameRunner(logChan, fmt.Sprintf("game-%d", i),
				[2]string{names[seats[0]], names[seats[1]]},
				[2]player.Config{opts.Players[seats[0]], opts.Players[seats[1]]})
			// Both colour assignments of one opening are played.
			if err := r.PlayRandomOpening(opts.Seed+uint64(i/2), opts.OpeningPlies); err != nil {
				return err
			}
			res, err := r.PlayFull(gctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()
	close(logChan)
	werr := writer.Wait()
	if err != nil {
		return nil, err
	}
	if werr != nil {
		return nil, fmt.Errorf("writing %s: %w", opts.Logfile, werr)
	}
	log.Info().Int("games", len(results)).Msg("autoplay-finished")
	return results, nil
}

// SeatOf returns 0 or 1 for the player a name belongs to, or -1.
func SeatOf(name string) int {
	switch {
	case strings.HasPrefix(name, "p1:"):
		return 0
	case strings.HasPrefix(name, "p2:"):
		return 1
	}
	return -1
}
