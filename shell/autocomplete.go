package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/othello/othello"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"bot": {
		Options: []string{"-budget"},
	},
	"set": {
		Args: settable,
	},
	"stats": {
		Args: []string{"reset"},
	},
	"help": {
		Args: []string{"bot", "set", "stats", "autoplay", "script"},
	},
	"autoplay": {
		Options: []string{
			"-games", "-threads", "-opening", "-file", "-p2-algorithm",
			"-p2-policy", "-p2-heuristic", "-p2-depth", "-p2-budget",
		},
	},
}

var commandNames = []string{
	"help", "new", "show", "gen", "play", "pass", "undo", "bot", "set",
	"stats", "autoplay", "script", "exit",
}

var settingValues = map[string][]string{
	"search-policy":          {"fixed", "deepening"},
	"search-algorithm":       {"alphabeta", "negascout"},
	"eval-heuristic":         {"score", "mobility"},
	"reset-stats-per-move":   {"true", "false"},
	"search-disable-pruning": {"true", "false"},
}

var optionValues = map[string][]string{
	"p2-algorithm": settingValues["search-algorithm"],
	"p2-policy":    settingValues["search-policy"],
	"p2-heuristic": settingValues["eval-heuristic"],
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case cmdName == "play":
			completions = lo.Map(c.sc.board.LegalSquares(),
				func(sq othello.Square, _ int) string { return sq.String() })
		case cmdName == "set" && lastCompleteField != "set":
			completions = settingValues[lastCompleteField]
		case strings.HasPrefix(lastCompleteField, "-"):
			completions = optionValues[strings.TrimPrefix(lastCompleteField, "-")]
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	matches := lo.FilterMap(completions, func(completion string, _ int) ([]rune, bool) {
		if !strings.HasPrefix(completion, prefix) {
			return nil, false
		}
		return []rune(completion[len(prefix):]), true
	})
	return matches, len(prefix)
}
