// Package automatic plays engine-vs-engine games of Othello and collects
// statistics about them.
package automatic

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/stats"
)

// LogHeader names the CSV columns of the move log. evals and nodes are the
// search work spent on that move alone.
const LogHeader = "engine,gameID,turn,color,move,black,white,evals,nodes,seconds\n"

// GameRunner plays one game between two engines. Each runner owns its
// engines, so runners may be used from different goroutines.
type GameRunner struct {
	gameID    string
	board     *othello.Board
	logchan   chan string
	aiplayers [2]*player.Engine
	names     [2]string
	turn      int
}

// NewGameRunner sets up a game; index 0 of engines and names plays Black.
func NewGameRunner(logchan chan string, gameID string, names [2]string, engines [2]player.Config) *GameRunner {
	return &GameRunner{
		gameID:    gameID,
		board:     othello.NewGame(),
		logchan:   logchan,
		aiplayers: [2]*player.Engine{player.New(engines[0]), player.New(engines[1])},
		names:     names,
	}
}

func (r *GameRunner) Board() *othello.Board {
	return r.board
}

func (r *GameRunner) Playing() bool {
	return !r.board.Status().Decided()
}

// PlayRandomOpening plays n random legal moves drawn from seed, so that
// games between deterministic engines differ.
func (r *GameRunner) PlayRandomOpening(seed uint64, n int) error {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	rng := frand.NewCustom(s[:], 1024, 12)
	for i := 0; i < n && r.board.Status() == game.Playing; i++ {
		sqs := r.board.LegalSquares()
		sq := sqs[rng.Intn(len(sqs))]
		if err := r.apply(sq, stats.SearchStats{}, 0); err != nil {
			return err
		}
	}
	return nil
}

// PlayBestTurn has the engine on turn move, or passes for it.
func (r *GameRunner) PlayBestTurn() error {
	switch r.board.Status() {
	case game.NoLegalMoves:
		return r.apply(othello.PassSquare, stats.SearchStats{}, 0)
	case game.Playing:
	default:
		return othello.ErrGameOver
	}
	engine := r.aiplayers[r.board.CurrentPlayer()]
	m, ok := engine.SelectMove(r.board, engine.Config().Budget)
	if !ok {
		return fmt.Errorf("%s found no move on turn %d", engine.Name(), r.turn)
	}
	return r.apply(m, engine.LastMoveStats(), engine.MoveTimes().Last())
}

// apply plays m and logs it with the search work that chose it.
func (r *GameRunner) apply(m game.Move, work stats.SearchStats, seconds float64) error {
	onTurn := r.board.CurrentPlayer()
	var next *othello.Board
	var err error
	if m == othello.PassSquare {
		next, err = r.board.Pass()
	} else {
		next, err = r.board.Play(m)
	}
	if err != nil {
		return fmt.Errorf("%s on turn %d: %w", m, r.turn, err)
	}
	r.board = next
	r.turn++
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v,%v,%.4f\n",
			r.names[onTurn],
			r.gameID,
			r.turn,
			onTurn,
			m,
			next.Score(game.Black),
			next.Score(game.White),
			work.StaticEvaluations,
			work.ExploredSuccessors,
			seconds)
	}
	return nil
}

// GameResult is indexed by colour.
type GameResult struct {
	GameID string
	Names  [2]string
	Discs  [2]int
	Status game.Status
	Turns  int
	Stats  [2]stats.SearchStats
	// MoveSeconds is the mean thinking time per move.
	MoveSeconds [2]float64
}

// PlayFull plays the game to the end.
func (r *GameRunner) PlayFull(ctx context.Context) (GameResult, error) {
	for r.Playing() {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if err := r.PlayBestTurn(); err != nil {
			return GameResult{}, err
		}
	}
	res := GameResult{
		GameID: r.gameID,
		Names:  r.names,
		Discs:  [2]int{r.board.Score(game.Black), r.board.Score(game.White)},
		Status: r.board.Status(),
		Turns:  r.turn,
	}
	for i, e := range r.aiplayers {
		res.Stats[i] = e.Stats()
		res.MoveSeconds[i] = e.MoveTimes().Mean()
	}
	log.Debug().Str("game", r.gameID).Int("black", res.Discs[0]).Int("white", res.Discs[1]).
		Str("result", res.Status.String()).Msg("game-over")
	return res, nil
}
