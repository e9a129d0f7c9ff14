package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/othello"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format for option")
	errNoEngine          = errors.New("engine settings are invalid; fix them with set")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config

	board   *othello.Board
	history []*othello.Board
	engine  *player.Engine
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := newController(cfg)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mothello>\033[0m ",
		HistoryFile:     "/tmp/othello-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func newController(cfg *config.Config) *ShellController {
	sc := &ShellController{config: cfg, board: othello.NewGame()}
	if err := sc.rebuildEngine(); err != nil {
		log.Error().Err(err).Msg("bad-engine-settings")
	}
	return sc
}

func (sc *ShellController) rebuildEngine() error {
	pcfg, err := player.ConfigFromSettings(sc.config)
	if err != nil {
		sc.engine = nil
		return err
	}
	sc.engine = player.New(pcfg)
	return nil
}

// extractFields splits a line into the command, its positional arguments
// and its -option value pairs. A token like -1 is an argument.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if !isOption(f) {
			args = append(args, f)
			continue
		}
		if i+1 >= len(fields) {
			return nil, errWrongOptionSyntax
		}
		options[f[1:]] = fields[i+1]
		i++
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isOption(f string) bool {
	if len(f) < 2 || f[0] != '-' {
		return false
	}
	c := f[1]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Execute runs one command line. A nil response with a nil error means the
// user asked to exit.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit":
		return nil, nil
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "gen":
		return sc.gen(cmd)
	case "play":
		return sc.play(cmd)
	case "pass":
		return sc.pass(cmd)
	case "undo":
		return sc.undo(cmd)
	case "bot":
		return sc.bot(cmd)
	case "set":
		return sc.set(cmd)
	case "stats":
		return sc.stats(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "script":
		return sc.script(cmd)
	}
	log.Debug().Msgf("you said: %v", line)
	return nil, errors.New("command " + cmd.cmd + " not found; try help")
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.Execute(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp == nil {
			sig <- syscall.SIGINT
			break
		}
		if resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
