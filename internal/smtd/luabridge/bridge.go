// Package luabridge lets a user author a key's classifier in Lua instead
// of Go, the way the teacher's internal/plugin/lua lets a user author a
// Keystorm command in Lua. It is a narrower bridge than the teacher's: the
// core calls into a classifier synchronously and expects an immediate
// Resolution back, so this package skips the teacher's Executor
// channel-marshalling goroutine (internal/plugin/lua/executor.go) and
// calls gopher-lua directly from the caller's own goroutine, matching the
// single-threaded scan-loop model the core itself assumes.
package luabridge

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/smtd/internal/smtd"
)

// Bridge converts between Go and Lua values for the handful of shapes a
// classifier script needs, a trimmed version of the teacher's
// lua.Bridge.ToGoValue/ToLuaValue pair.
type Bridge struct {
	L *lua.LState
}

// NewBridge creates a Bridge over an already-initialized Lua state.
func NewBridge(L *lua.LState) *Bridge {
	return &Bridge{L: L}
}

func (b *Bridge) actionToLua(action smtd.Action) lua.LValue {
	return lua.LString(action.String())
}

func (b *Bridge) resolutionFromLua(lv lua.LValue) (smtd.Resolution, error) {
	s, ok := lv.(lua.LString)
	if !ok {
		return smtd.ResolutionUnhandled, fmt.Errorf("luabridge: handler must return a string resolution, got %s", lv.Type())
	}
	switch string(s) {
	case "uncertain":
		return smtd.ResolutionUncertain, nil
	case "unhandled":
		return smtd.ResolutionUnhandled, nil
	case "determined":
		return smtd.ResolutionDetermined, nil
	default:
		return smtd.ResolutionUnhandled, fmt.Errorf("luabridge: unknown resolution %q", s)
	}
}
