package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/automatic"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/othello"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

// settable lists the keys the set command may change.
var settable = []string{
	config.ConfigSearchDepthLimit,
	config.ConfigSearchTimeBudget,
	config.ConfigSearchPolicy,
	config.ConfigSearchAlgorithm,
	config.ConfigEvalHeuristic,
	config.ConfigBoardSaturation,
	config.ConfigResetStatsPerMove,
	config.ConfigSearchDisablePruning,
	config.ConfigAutoplayThreads,
	config.ConfigAutoplayGames,
	config.ConfigAutoplayLogfile,
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.board = othello.NewGame()
	sc.history = nil
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	moves := sc.board.ValidMoves()
	if len(moves) == 0 {
		return msg("no legal moves; " + sc.board.Status().String()), nil
	}
	strs := lo.Map(moves, func(m game.Move, _ int) string { return m.String() })
	return msg(strings.Join(strs, " ")), nil
}

func (sc *ShellController) advance(next *othello.Board) {
	sc.history = append(sc.history, sc.board)
	sc.board = next
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <square>, e.g. play d3")
	}
	sq, err := othello.ParseSquare(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if sq == othello.PassSquare {
		return sc.pass(cmd)
	}
	next, err := sc.board.Play(sq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sq, err)
	}
	sc.advance(next)
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	next, err := sc.board.Pass()
	if err != nil {
		return nil, fmt.Errorf("cannot pass: %w", err)
	}
	sc.advance(next)
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if len(sc.history) == 0 {
		return nil, errors.New("nothing to undo")
	}
	sc.board = sc.history[len(sc.history)-1]
	sc.history = sc.history[:len(sc.history)-1]
	return msg(sc.board.ToDisplayText()), nil
}

// bot has the engine move for the side on turn. The thinking time comes
// from -budget or the search-time-budget setting.
func (sc *ShellController) bot(cmd *shellcmd) (*Response, error) {
	if sc.engine == nil {
		return nil, errNoEngine
	}
	budget := sc.engine.Config().Budget
	if b, ok := cmd.options["budget"]; ok {
		d, err := time.ParseDuration(b)
		if err != nil {
			return nil, err
		}
		budget = d
	}
	if sc.board.Status() == game.NoLegalMoves {
		return sc.pass(cmd)
	}
	m, ok := sc.engine.SelectMove(sc.board, budget)
	if !ok {
		return msg("no move available; " + sc.board.Status().String()), nil
	}
	next, err := sc.board.Play(m)
	if err != nil {
		return nil, err
	}
	sc.advance(next)
	return msg(fmt.Sprintf("%s plays %s (%.3fs)\n%s", sc.engine.Name(), m,
		sc.engine.MoveTimes().Last(), sc.board.ToDisplayText())), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		keys := append([]string{}, settable...)
		sort.Strings(keys)
		var sb strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&sb, "%-24s %v\n", k, sc.config.Get(k))
		}
		return msg(sb.String()), nil
	}
	opt := cmd.args[0]
	if !lo.Contains(settable, opt) {
		return nil, fmt.Errorf("unknown option %q", opt)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s %v", opt, sc.config.Get(opt))), nil
	}
	old := sc.config.Get(opt)
	sc.config.Set(opt, cmd.args[1])
	if err := sc.rebuildEngine(); err != nil {
		sc.config.Set(opt, old)
		if rerr := sc.rebuildEngine(); rerr != nil {
			log.Err(rerr).Str("option", opt).Msg("error-restoring-engine")
		}
		return nil, err
	}
	return msg("set " + opt + " to " + cmd.args[1]), nil
}

func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	if sc.engine == nil {
		return nil, errNoEngine
	}
	if len(cmd.args) > 0 && cmd.args[0] == "reset" {
		sc.engine.ResetStats()
		return msg("statistics reset"), nil
	}
	e := sc.engine
	mt := e.MoveTimes()
	return msg(fmt.Sprintf(
		"engine                     %s\n"+
			"static evaluations         %d\n"+
			"nodes generated            %d\n"+
			"total successors           %d\n"+
			"total parents              %d\n"+
			"average branching factor   %.3f\n"+
			"effective branching factor %.3f\n"+
			"memoized positions         %d\n"+
			"moves timed                %d (mean %.3fs, stdev %.3fs)",
		e.Name(), e.StaticEvaluations(), e.NodesGenerated(), e.TotalSuccessors(),
		e.TotalParents(), e.AverageBranchingFactor(), e.EffectiveBranchingFactor(),
		e.MemoSize(), mt.Iterations(), mt.Mean(), mt.Stdev())), nil
}

// autoplay plays the configured engine (p1) against a variant of it (p2)
// described by the -p2-* options.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	opts, err := automatic.OptionsFromSettings(sc.config)
	if err != nil {
		return nil, err
	}
	for k, v := range cmd.options {
		switch k {
		case "games", "threads", "opening", "p2-depth":
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("-%s: %w", k, err)
			}
			switch k {
			case "games":
				opts.NumGames = n
			case "threads":
				opts.Threads = n
			case "opening":
				opts.OpeningPlies = n
			case "p2-depth":
				opts.Players[1].DepthLimit = n
			}
		case "file":
			opts.Logfile = v
		case "p2-algorithm":
			opts.Players[1].Inner = player.Algorithm(v)
		case "p2-policy":
			opts.Players[1].Policy = player.Policy(v)
		case "p2-heuristic":
			h, err := evaluator.HeuristicFromName(v)
			if err != nil {
				return nil, err
			}
			opts.Players[1].Heuristic = h
		case "p2-budget":
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, err
			}
			opts.Players[1].Budget = d
		default:
			return nil, fmt.Errorf("unknown option -%s", k)
		}
	}
	if err := opts.Players[1].Validate(); err != nil {
		return nil, err
	}
	results, err := automatic.Play(context.Background(), opts)
	if err != nil {
		return nil, err
	}
	sum := automatic.Summarize(results)
	out, err := sum.YAML()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(out)
	if err := sum.WriteHistograms(&sb); err != nil {
		return nil, err
	}
	if opts.Logfile != "" {
		sb.WriteString("move log written to " + opts.Logfile + "\n")
	}
	return msg(sb.String()), nil
}
