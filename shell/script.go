package shell

import (
	"errors"
	"math"
	"net/http"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

// scriptCommands are the shell commands exposed to Lua as othello_<name>.
var scriptCommands = []string{
	"new", "show", "gen", "play", "pass", "undo", "bot", "set", "stats", "autoplay",
}

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("othello_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// command wraps a shell command. The Lua function takes the rest of the
// command line as one string and returns the command's output, or nil and
// an error message.
func command(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		line := name
		if rest := L.OptString(1, ""); rest != "" {
			line += " " + rest
		}
		sc := getShell(L)
		r, err := sc.Execute(line)
		if err != nil {
			log.Err(err).Str("command", name).Msg("error-executing-script-command")
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(lua.LString(r.message))
		return 1
	}
}

// StatsTable returns the engine's counters as a table, ready for
// json.encode. Branching factors are left out until something has been
// expanded.
func StatsTable(L *lua.LState) int {
	sc := getShell(L)
	if sc.engine == nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(errNoEngine.Error()))
		return 2
	}
	e := sc.engine
	t := L.NewTable()
	t.RawSetString("engine", lua.LString(e.Name()))
	t.RawSetString("static-evaluations", lua.LNumber(e.StaticEvaluations()))
	t.RawSetString("nodes-generated", lua.LNumber(e.NodesGenerated()))
	t.RawSetString("total-successors", lua.LNumber(e.TotalSuccessors()))
	t.RawSetString("total-parents", lua.LNumber(e.TotalParents()))
	if abf := e.AverageBranchingFactor(); !math.IsNaN(abf) {
		t.RawSetString("average-branching", lua.LNumber(abf))
		t.RawSetString("effective-branching", lua.LNumber(e.EffectiveBranchingFactor()))
	}
	t.RawSetString("mean-move-seconds", lua.LNumber(e.MoveTimes().Mean()))
	L.Push(t)
	return 1
}

// script runs a Lua file against this shell. Whatever the script returns
// becomes the command's output.
func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}
	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal("othello_shell", lsc)
	for _, name := range scriptCommands {
		L.SetGlobal("othello_"+name, L.NewFunction(command(name)))
	}
	L.SetGlobal("othello_stats_table", L.NewFunction(StatsTable))
	luajson.Preload(L)
	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{}).Loader)

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Str("script", filepath).Msg("script-failed")
		return nil, err
	}
	out := "script " + filepath + " done"
	if L.GetTop() > 0 {
		if ret := L.Get(-1); ret != lua.LNil {
			out = lua.LVAsString(ret)
		}
	}
	return msg(out), nil
}
