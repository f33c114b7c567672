package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Bullet       = donburi.NewTag().SetName("Bullet")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	Explosion    = donburi.NewTag().SetName("Explosion")
	Exhaust      = donburi.NewTag().SetName("Exhaust")
	Background   = donburi.NewTag().SetName("Background")

	// Text labels
	ScoreText    = donburi.NewTag().SetName("ScoreText")
	GameOverText = donburi.NewTag().SetName("GameOverText")
	TitleShadow  = donburi.NewTag().SetName("TitleShadow")
	Instructions = donburi.NewTag().SetName("Instructions")
	ActionText   = donburi.NewTag().SetName("ActionText")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlayer       = "player"
	ResolvEnemy        = "enemy"
	ResolvPlayerBullet = "player_bullet"
	ResolvEnemyBullet  = "enemy_bullet"
)
