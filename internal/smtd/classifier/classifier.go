package classifier

import (
	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/host"
)

// ModTap resolves to tapKeycode on a tap and to mod on a hold. Below
// threshold taps a hold still registers the plain modifier; at or above
// threshold a hold instead repeats tapKeycode, the same aggregate-taps
// escalation SMTD_MT's SMTD_LIMIT encoded. Grounded on SMTD_MT/SMTD_DANCE
// (sm_td.h:1064-1095).
func ModTap(h host.Host, tapKeycode smtd.Keycode, mod smtd.Mods, threshold int) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) smtd.Resolution {
		switch action {
		case smtd.ActionTouch:
			return smtd.ResolutionUncertain
		case smtd.ActionTap:
			h.TapCode16(tapKeycode)
			return smtd.ResolutionDetermined
		case smtd.ActionHold:
			if tapCount < threshold {
				h.RegisterMods(mod)
				h.SendReport()
			} else {
				h.RegisterCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		case smtd.ActionRelease:
			if tapCount < threshold {
				h.UnregisterMods(mod)
			} else {
				h.UnregisterCode16(tapKeycode)
			}
			h.SendReport()
			return smtd.ResolutionDetermined
		default:
			return smtd.ResolutionUnhandled
		}
	})
}

// EagerModTap registers mod the instant the key is touched instead of
// waiting for Hold, swapping it back out for tapKeycode if the press turns
// out to be a tap. Grounded on SMTD_MTE (sm_td.h:1097-1129).
func EagerModTap(h host.Host, tapKeycode smtd.Keycode, mod smtd.Mods, threshold int) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) smtd.Resolution {
		switch action {
		case smtd.ActionTouch:
			h.RegisterMods(mod)
			h.SendReport()
			return smtd.ResolutionUncertain
		case smtd.ActionTap:
			h.UnregisterMods(mod)
			h.TapCode16(tapKeycode)
			return smtd.ResolutionDetermined
		case smtd.ActionHold:
			if tapCount >= threshold {
				h.UnregisterMods(mod)
				h.SendReport()
				h.RegisterCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		case smtd.ActionRelease:
			if tapCount < threshold {
				h.UnregisterMods(mod)
				h.SendReport()
			} else {
				h.UnregisterCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		default:
			return smtd.ResolutionUnhandled
		}
	})
}

// LayerTap resolves to tapKeycode on a tap and pushes layer for the
// duration of a hold. Grounded on SMTD_LT (sm_td.h:1132-1149).
func LayerTap(h host.Host, layers *LayerStack, tapKeycode smtd.Keycode, layer uint8, threshold int) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) smtd.Resolution {
		switch action {
		case smtd.ActionTouch:
			return smtd.ResolutionUncertain
		case smtd.ActionTap:
			h.TapCode16(tapKeycode)
			return smtd.ResolutionDetermined
		case smtd.ActionHold:
			if tapCount < threshold {
				layers.Push(layer)
			} else {
				h.RegisterCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		case smtd.ActionRelease:
			if tapCount < threshold {
				layers.Restore()
			} else {
				h.UnregisterCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		default:
			return smtd.ResolutionUnhandled
		}
	})
}

// TapDance2 resolves to tapKeycode on a tap and to holdKeycode on a hold,
// regardless of tap count beneath threshold; at or above threshold both
// branches fall back to tapKeycode. Grounded on SMTD_TD (sm_td.h:1151-1164).
func TapDance2(h host.Host, tapKeycode, holdKeycode smtd.Keycode, threshold int) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) smtd.Resolution {
		switch action {
		case smtd.ActionTouch:
			return smtd.ResolutionUncertain
		case smtd.ActionTap:
			h.TapCode16(tapKeycode)
			return smtd.ResolutionDetermined
		case smtd.ActionHold:
			if tapCount < threshold {
				h.TapCode16(holdKeycode)
			} else {
				h.TapCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		case smtd.ActionRelease:
			if tapCount < threshold {
				h.UnregisterCode16(holdKeycode)
			} else {
				h.UnregisterCode16(tapKeycode)
			}
			return smtd.ResolutionDetermined
		default:
			return smtd.ResolutionUnhandled
		}
	})
}

// MultiTapKey taps tapKeycode on every touch whose tap count has reached
// threshold, and is silent for everything else: a key that means nothing
// until it has been tapped enough times. Grounded on SMTD_TK (sm_td.h:1166-1179).
func MultiTapKey(h host.Host, tapKeycode smtd.Keycode, threshold int) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) smtd.Resolution {
		if action != smtd.ActionTouch {
			return smtd.ResolutionDetermined
		}
		if tapCount >= threshold {
			h.TapCode16(tapKeycode)
		}
		return smtd.ResolutionUncertain
	})
}

// MultiTapToLayer switches to layer on every touch whose tap count has
// reached threshold, otherwise does nothing. Grounded on SMTD_TTO (sm_td.h:1181-1193).
func MultiTapToLayer(h host.Host, layer uint8, threshold int) smtd.Classifier {
	return smtd.ClassifierFunc(func(kc smtd.Keycode, action smtd.Action, tapCount int) smtd.Resolution {
		if action != smtd.ActionTouch {
			return smtd.ResolutionDetermined
		}
		if tapCount >= threshold {
			h.MoveToLayer(layer)
		}
		return smtd.ResolutionUncertain
	})
}
