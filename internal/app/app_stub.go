//go:build !ebiten

package app

import "life-drift/internal/sim"

// Available reports whether this build can open a window.
const Available = false

// Play reports that no windowed display is available in this build.
func Play(*sim.Run, int, int) error { return ErrHeadless }
