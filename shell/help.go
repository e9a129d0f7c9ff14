package shell

const usageText = `Commands:
  new                     start a new game
  show (s)                show the board
  gen                     list legal moves for the side to move
  play <square>           play a move, e.g. play d3
  pass                    pass when the side to move has no legal move
  undo                    take back the last move
  bot [-budget 2s]        let the engine move for the side on turn
  set [<option> [value]]  show or change a setting
  stats [reset]           show or reset the engine's search statistics
  autoplay [options]      engine-vs-engine games; see help autoplay
  script <file.lua>       run a Lua script; see help script
  help [topic]            this text, or help on a command
  exit                    leave the shell`

var topics = map[string]string{
	"bot": `bot [-budget <duration>]
  The engine searches with the current settings and plays its move. With the
  deepening policy the budget bounds thinking time; search-time-budget is
  used when -budget is not given. If the side to move has no legal move the
  bot passes.`,
	"set": `set [<option> [value]]
  With no arguments, show all settings. Options:
    search-depth-limit      plies, -1 for unbounded
    search-time-budget      e.g. 500ms, 2s; 0 for none
    search-policy           fixed | deepening
    search-algorithm        alphabeta | negascout
    eval-heuristic          score | mobility
    board-saturation        disc count that ends deepening lines
    reset-stats-per-move    true | false
    search-disable-pruning  true | false (alphabeta only)
    autoplay-threads, autoplay-games, autoplay-logfile`,
	"stats": `stats [reset]
  Static evaluations, nodes generated, total successors and parents, the
  average and effective branching factors, and per-move timing. Branching
  factors are NaN until the engine has expanded a node.`,
	"autoplay": `autoplay [-games n] [-threads n] [-opening plies] [-file path]
         [-p2-algorithm a] [-p2-policy p] [-p2-heuristic h] [-p2-depth d]
         [-p2-budget t]
  p1 uses the current settings; p2 starts from them and applies the -p2-*
  overrides. Players swap colours every game and each opening is played
  from both sides. Prints a YAML summary and branching-factor histograms.`,
	"script": `script <file.lua>
  Runs a Lua script against this shell. Every command is available as a
  function taking the rest of the command line as one string, e.g.
  othello_set("search-depth-limit 3"), othello_play("d3"), othello_bot("").
  Each returns the command output, or nil and an error message.
  othello_stats_table() returns the engine statistics as a table.
  require("json") encodes and decodes JSON; require("http") makes requests.
  A string returned by the script is printed. A depth sweep:

    local json = require("json")
    local out = {}
    for d = 1, 5 do
      othello_new("")
      othello_set("search-depth-limit " .. d)
      othello_stats("reset")
      othello_bot("")
      out[d] = othello_stats_table()
    end
    return json.encode(out)`,
}

func usage() string {
	return usageText
}

func usageTopic(topic string) string {
	if t, ok := topics[topic]; ok {
		return t
	}
	return "There is no help text for the topic " + topic
}
