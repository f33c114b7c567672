package systems

import (
	"github.com/automoto/flyshoot/components"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	players       = donburi.NewQuery(filter.Contains(tags.Player, components.Player))
	enemies       = donburi.NewQuery(filter.Contains(tags.Enemy, components.Enemy))
	bullets       = donburi.NewQuery(filter.Contains(tags.Bullet))
	explosions    = donburi.NewQuery(filter.Contains(tags.Explosion))
	movers        = donburi.NewQuery(filter.Contains(components.Transform, components.Velocity))
	attached      = donburi.NewQuery(filter.Contains(components.Transform, components.Parent))
	animated      = donburi.NewQuery(filter.Contains(components.Sprite, components.Animation))
	outsiders     = donburi.NewQuery(filter.Contains(components.Transform, components.DestroyOutside))
	collidables   = donburi.NewQuery(filter.Contains(components.Transform, components.HitBox, components.Object))
	shadows       = donburi.NewQuery(filter.Contains(tags.TitleShadow, components.Shadow, components.Text))
	backgrounds   = donburi.NewQuery(filter.Contains(components.Background, components.Transform))
	scoreTexts    = donburi.NewQuery(filter.Contains(tags.ScoreText, components.Text))
	gameOverTexts = donburi.NewQuery(filter.Contains(tags.GameOverText, components.Text))
	instructions  = donburi.NewQuery(filter.Contains(tags.Instructions, components.Text))
	actionTexts   = donburi.NewQuery(filter.Contains(tags.ActionText, components.Text))
)

// eachText applies fn to the text data of every label matching q.
func eachText(w donburi.World, q *donburi.Query, fn func(e *donburi.Entry, t *components.TextData)) {
	q.Each(w, func(e *donburi.Entry) {
		fn(e, components.Text.Get(e))
	})
}
