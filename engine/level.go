package engine

import (
	"fmt"

	"github.com/lixenwraith/orbit-recall/constants"
)

// LevelConfig holds the fixed parameters of one level
type LevelConfig struct {
	CircleCount int
	BaseSpeed   float64
}

// levelCatalog is indexed by level-1; both columns are non-decreasing
var levelCatalog = [constants.MaxLevel]LevelConfig{
	{CircleCount: 4, BaseSpeed: 0.8},
	{CircleCount: 5, BaseSpeed: 0.85},
	{CircleCount: 5, BaseSpeed: 0.9},
	{CircleCount: 6, BaseSpeed: 0.95},
	{CircleCount: 6, BaseSpeed: 1.0},
	{CircleCount: 7, BaseSpeed: 1.1},
	{CircleCount: 7, BaseSpeed: 1.2},
	{CircleCount: 8, BaseSpeed: 1.3},
	{CircleCount: 8, BaseSpeed: 1.4},
	{CircleCount: 9, BaseSpeed: 1.5},
}

// LevelFor returns the configuration of a level in [1, MaxLevel]
// Session transitions never leave that range, so any other value is a bug and panics
func LevelFor(level int) LevelConfig {
	if level < 1 || level > constants.MaxLevel {
		panic(fmt.Sprintf("engine: level %d outside [1, %d]", level, constants.MaxLevel))
	}
	return levelCatalog[level-1]
}
