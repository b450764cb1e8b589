package ui

import (
	"fmt"

	"faultmap/internal/core"
	"faultmap/internal/terrain"
)

var spinnerFrames = [...]string{"|", "/", "-", `\`}

// Status is the text shown in the viewer's side panel.
type Status struct {
	Title string
	Lines []string
}

// BuildStatus describes the viewer state: the parameters of the current
// request, whether a run is pending, and the statistics of the last result.
func BuildStatus(snapshot core.ParameterSnapshot, pending bool, frame int, res *terrain.Result, err error) Status {
	s := Status{Title: "Fault Map"}
	switch {
	case pending:
		s.Lines = append(s.Lines, "Generating "+spinnerFrames[(frame/8)%len(spinnerFrames)])
	case err != nil:
		s.Lines = append(s.Lines, "Error: "+err.Error())
	case res == nil:
		s.Lines = append(s.Lines, "No map")
	default:
		s.Lines = append(s.Lines, "Ready")
	}
	s.Lines = append(s.Lines, "")
	s.Lines = append(s.Lines, snapshot.Lines()...)
	if res != nil {
		total := res.Size.Area()
		water := res.WaterCells()
		s.Lines = append(s.Lines,
			"",
			"[Result]",
			fmt.Sprintf("  Heights: %d..%d", res.Min, res.Max),
			fmt.Sprintf("  Threshold: %d", res.Threshold),
			fmt.Sprintf("  Water: %.1f%%", 100*float64(water)/float64(max(total, 1))),
		)
	}
	s.Lines = append(s.Lines,
		"",
		"G new seed  R redo",
		"E relief    Q quit",
	)
	return s
}
