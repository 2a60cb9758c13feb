package luabridge

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/classifier"
	"github.com/dshills/smtd/internal/smtd/host"
)

// Script owns a Lua state loaded with one configuration chunk. The chunk
// calls the global smtd.bind(keycode, handler) once per key it wants to
// classify; handler is a Lua function with the signature
// function(keycode, action, tap_count) -> resolution_string.
type Script struct {
	L      *lua.LState
	h      host.Host
	bridge *Bridge
	bound  map[smtd.Keycode]*lua.LFunction
}

// Load compiles and runs source against host h, collecting every
// smtd.bind(...) call the chunk makes. The returned Script's Registry can
// be handed straight to smtd.New as the ClassifierLookup.
func Load(source string, h host.Host) (*Script, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: false})

	s := &Script{L: L, h: h, bridge: NewBridge(L), bound: make(map[smtd.Keycode]*lua.LFunction)}
	s.installAPI()

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("luabridge: running script: %w", err)
	}
	return s, nil
}

// Close releases the underlying Lua state.
func (s *Script) Close() {
	s.L.Close()
}

// Registry builds an smtd.ClassifierLookup from every key bound by the
// script, wrapping each bound Lua function as an smtd.Classifier that
// marshals arguments in and the resolution string back out.
func (s *Script) Registry() *classifier.Registry {
	reg := classifier.NewRegistry()
	for kc, fn := range s.bound {
		reg.Bind(kc, s.classifierFor(fn))
	}
	return reg
}

func (s *Script) classifierFor(fn *lua.LFunction) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) (res smtd.Resolution) {
		res = smtd.ResolutionUnhandled
		defer func() {
			if r := recover(); r != nil {
				res = smtd.ResolutionUnhandled
			}
		}()

		s.L.Push(fn)
		s.L.Push(lua.LNumber(kc))
		s.L.Push(s.bridge.actionToLua(action))
		s.L.Push(lua.LNumber(tapCount))
		if err := s.L.PCall(3, 1, nil); err != nil {
			return smtd.ResolutionUnhandled
		}
		ret := s.L.Get(-1)
		s.L.Pop(1)

		parsed, err := s.bridge.resolutionFromLua(ret)
		if err != nil {
			return smtd.ResolutionUnhandled
		}
		return parsed
	})
}

// installAPI exposes the host operations a handler needs as the global
// smtd table, the Lua-facing surface replacing the original's C macro
// bodies (register_mods, tap_code16, layer_move, ...).
func (s *Script) installAPI() {
	tbl := s.L.NewTable()

	s.L.SetField(tbl, "bind", s.L.NewFunction(func(L *lua.LState) int {
		kc := smtd.Keycode(L.CheckNumber(1))
		fn := L.CheckFunction(2)
		s.bound[kc] = fn
		return 0
	}))

	s.L.SetField(tbl, "tap_code16", s.L.NewFunction(func(L *lua.LState) int {
		s.h.TapCode16(smtd.Keycode(L.CheckNumber(1)))
		return 0
	}))
	s.L.SetField(tbl, "register_code16", s.L.NewFunction(func(L *lua.LState) int {
		s.h.RegisterCode16(smtd.Keycode(L.CheckNumber(1)))
		return 0
	}))
	s.L.SetField(tbl, "unregister_code16", s.L.NewFunction(func(L *lua.LState) int {
		s.h.UnregisterCode16(smtd.Keycode(L.CheckNumber(1)))
		return 0
	}))
	s.L.SetField(tbl, "register_mods", s.L.NewFunction(func(L *lua.LState) int {
		s.h.RegisterMods(smtd.Mods(L.CheckNumber(1)))
		return 0
	}))
	s.L.SetField(tbl, "unregister_mods", s.L.NewFunction(func(L *lua.LState) int {
		s.h.UnregisterMods(smtd.Mods(L.CheckNumber(1)))
		return 0
	}))
	s.L.SetField(tbl, "send_report", s.L.NewFunction(func(L *lua.LState) int {
		s.h.SendReport()
		return 0
	}))
	s.L.SetField(tbl, "move_to_layer", s.L.NewFunction(func(L *lua.LState) int {
		s.h.MoveToLayer(uint8(L.CheckNumber(1)))
		return 0
	}))

	s.L.SetGlobal("smtd", tbl)
}
