package app

import (
	"fmt"

	"github.com/Faultbox/lathe-sim/internal/lathe"
)

// AppName is shown in the window title.
const AppName = "Lathe Sim"

// Title formats the window title from the current session state.
func Title(mode lathe.Mode, material string, points int, stats lathe.Stats) string {
	t := fmt.Sprintf("%s | %s mode", AppName, mode)
	if mode == lathe.ModeCurve {
		t += fmt.Sprintf(" (%d/%d points)", points, lathe.MaxControlPoints)
	}
	if material != "" {
		t += " | " + material
	}
	return t + fmt.Sprintf(" | cuts: %d", stats.Cuts)
}
