package components

import (
	"github.com/automoto/housewalk/assets"
	"github.com/yohamta/donburi"
)

type SceneData struct {
	Layout *assets.SceneLayout
	Assets *assets.SceneAssets
}

var Scene = donburi.NewComponentType[SceneData]()
