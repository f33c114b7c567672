package config

// SpriteID names an image or sprite sheet the renderer can draw
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpritePlayer
	SpritePlayerExhaust
	SpriteEnemy
	SpriteEnemyExhaust
	SpritePlayerBullet
	SpriteEnemyBullet
	SpriteExplosion
	SpriteBackground
)

// SheetConfig describes how an image file is cut into frames
type SheetConfig struct {
	Path    string
	Columns int
	Rows    int
}

// Frames is the number of cells in the sheet.
func (s SheetConfig) Frames() int {
	if s.Columns <= 0 || s.Rows <= 0 {
		return 1
	}
	return s.Columns * s.Rows
}

// Sheets maps every sprite to its file, relative to the assets directory
var Sheets map[SpriteID]SheetConfig

// FontPath is the game font, relative to the assets directory
var FontPath = "font.ttf"

func init() {
	Sheets = map[SpriteID]SheetConfig{
		SpritePlayer:        {Path: "player.png", Columns: 1, Rows: 1},
		SpritePlayerExhaust: {Path: "player_exhaust.png", Columns: 2, Rows: 2},
		SpriteEnemy:         {Path: "enemy.png", Columns: 1, Rows: 1},
		SpriteEnemyExhaust:  {Path: "enemy_exhaust.png", Columns: 2, Rows: 2},
		SpritePlayerBullet:  {Path: "player_bullet.png", Columns: 1, Rows: 1},
		SpriteEnemyBullet:   {Path: "enemy_bullet.png", Columns: 1, Rows: 1},
		SpriteExplosion:     {Path: "explosion.png", Columns: 4, Rows: 4},
		SpriteBackground:    {Path: "background.png", Columns: 1, Rows: 1},
	}
}
