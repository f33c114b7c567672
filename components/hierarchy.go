package components

import (
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

// ParentData attaches an entity to another one. The child follows the
// parent at Offset and is destroyed with it.
type ParentData struct {
	Entity  donburi.Entity
	Offset  gamemath.Vec2
	ZOffset float64
}

var Parent = donburi.NewComponentType[ParentData]()

type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()
