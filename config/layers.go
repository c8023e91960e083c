package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer used by the scene.
const Default ecs.LayerID = 0
