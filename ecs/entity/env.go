package entity

import (
	"github.com/milk9111/goldminer/config"
	"github.com/milk9111/goldminer/physics"
)

// Env carries what factories need besides the ECS world.
type Env struct {
	Physics *physics.World
	Config  *config.Config
}

func (env Env) cfg() *config.Config {
	if env.Config == nil {
		return config.Default()
	}
	return env.Config
}
