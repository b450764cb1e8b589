package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"faultmap/internal/core"
	"faultmap/internal/terrain"
)

func TestBuildStatusPendingSpins(t *testing.T) {
	a := BuildStatus(core.ParameterSnapshot{}, true, 0, nil, nil)
	b := BuildStatus(core.ParameterSnapshot{}, true, 8, nil, nil)

	assert.Equal(t, "Generating |", a.Lines[0])
	assert.Equal(t, "Generating /", b.Lines[0])
}

func TestBuildStatusReportsResult(t *testing.T) {
	res, err := terrain.Generate(terrain.MapConfig{Size: core.Size{W: 4, H: 4}, PercentWater: 0.5}, terrain.DefaultOptions())
	assert.NoError(t, err)

	s := BuildStatus(core.ParameterSnapshot{}, false, 0, res, nil)

	assert.Equal(t, "Ready", s.Lines[0])
	assert.Contains(t, s.Lines, "  Threshold: 1")
	assert.Contains(t, s.Lines, "  Water: 100.0%")
}

func TestBuildStatusReportsError(t *testing.T) {
	s := BuildStatus(core.ParameterSnapshot{}, false, 0, nil, errors.New("boom"))
	assert.Equal(t, "Error: boom", s.Lines[0])
}
