package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/go-cave/rules"
)

const (
	gridPosWall = "██"
	gridPosOpen = "  "

	macosClearCmd = "clear"
)

// gradedShades go from wall (state 0) to fully open
var gradedShades = []string{"██", "▓▓", "▒▒", "░░", "  "}

// TerminalRenderer dumps caves as text for the demo command
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the cave to the terminal. Malformed caves are skipped.
func (r *TerminalRenderer) Display(c Cave, stateCount int) {
	if err := c.Validate(); err != nil {
		logger.Warningf("not displaying cave: %v", err)
		return
	}
	w := r.out()
	switch c.Mode {
	case rules.Graded:
		g := c.Graded
		for y := range g.height {
			for x := range g.width {
				fmt.Fprint(w, shade(g.cells[y][x], stateCount))
			}
			fmt.Fprintln(w)
		}
	default:
		g := c.Binary
		for y := range g.height {
			for x := range g.width {
				if g.cells[y][x] {
					fmt.Fprint(w, gridPosOpen)
				} else {
					fmt.Fprint(w, gridPosWall)
				}
			}
			fmt.Fprintln(w)
		}
	}
}

func shade(state, stateCount int) string {
	if stateCount < 1 || state <= 0 {
		return gradedShades[0]
	}
	if state >= stateCount {
		return gradedShades[len(gradedShades)-1]
	}
	return gradedShades[1+(state-1)*(len(gradedShades)-2)/max(stateCount-1, 1)]
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		logger.Warningf("clearing terminal: %v", err)
	}
}
