package config

import (
	"image/color"

	"github.com/automoto/flyshoot/gamemath"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size        gamemath.Vec2 `yaml:"size"`
	HitBoxScale float64       `yaml:"hitbox_scale"` // Fraction of the sprite used for collisions
	Z           float64       `yaml:"z"`

	// Movement
	Speed            float64 `yaml:"speed"`
	SpeedChange      float64 `yaml:"speed_change"` // Direction easing per second
	SlowFactor       float64 `yaml:"slow_factor"`  // Speed multiplier while Slow is held
	SlideOutSlowdown float64 `yaml:"slide_out_slowdown"`

	// Weapon
	FireInterval         float64       `yaml:"fire_interval"` // Seconds between shots
	BulletHeat           float64       `yaml:"bullet_heat"`
	MaxHeat              float64       `yaml:"max_heat"`
	MinHeatRecovery      float64       `yaml:"min_heat_recovery"`
	MaxHeatRecovery      float64       `yaml:"max_heat_recovery"`
	HeatRecoveryIncrease float64       `yaml:"heat_recovery_increase"` // Recovery gained per idle second
	MuzzleOffset         gamemath.Vec2 `yaml:"muzzle_offset"`

	Exhaust ExhaustConfig `yaml:"exhaust"`
}

// EnemyConfig contains the enemy wave and difficulty curve
type EnemyConfig struct {
	Size        gamemath.Vec2 `yaml:"size"`
	HitBoxScale float64       `yaml:"hitbox_scale"`
	Z           float64       `yaml:"z"`

	// Spawner
	InitialSpawnInterval float64 `yaml:"initial_spawn_interval"`
	SpawnIntervalStart   float64 `yaml:"spawn_interval_start"`
	SpawnIntervalEnd     float64 `yaml:"spawn_interval_end"`
	SpawnMinY            float64 `yaml:"spawn_min_y"`
	SpawnMaxY            float64 `yaml:"spawn_max_y"`
	SpeedStart           float64 `yaml:"speed_start"`
	SpeedEnd             float64 `yaml:"speed_end"`
	MaxAimDeviation      float64 `yaml:"max_aim_deviation"` // Radians

	// Attack
	FireIntervalStart float64 `yaml:"fire_interval_start"`
	FireIntervalEnd   float64 `yaml:"fire_interval_end"`
	MinShootDistance  float64 `yaml:"min_shoot_distance"`
	AimJitter         float64 `yaml:"aim_jitter"` // Max vertical offset of the aim point

	// Score at which the difficulty curve is fully ramped
	DifficultyMaxScore int `yaml:"difficulty_max_score"`

	Exhaust ExhaustConfig `yaml:"exhaust"`
}

// ExhaustConfig describes the animated flame attached to a ship
type ExhaustConfig struct {
	Size      gamemath.Vec2 `yaml:"size"`
	Offset    gamemath.Vec2 `yaml:"offset"`
	ZOffset   float64       `yaml:"z_offset"`
	FrameTime float64       `yaml:"frame_time"`
}

// BulletConfig describes one faction's projectile
type BulletConfig struct {
	Size           gamemath.Vec2 `yaml:"size"`
	CollisionScale float64       `yaml:"collision_scale"`
	Speed          float64       `yaml:"speed"`
	Volume         float64       `yaml:"volume"`
	Z              float64       `yaml:"z"`
}

type ExplosionConfig struct {
	Size      gamemath.Vec2 `yaml:"size"`
	FrameTime float64       `yaml:"frame_time"`
	Volume    float64       `yaml:"volume"`
	Z         float64       `yaml:"z"`
}

type ScoreConfig struct {
	ContinueCost int `yaml:"continue_cost"`

	GameTextSize     float64       `yaml:"game_text_size"`
	GameTextPos      gamemath.Vec2 `yaml:"game_text_pos"`
	GameOverTextSize float64       `yaml:"game_over_text_size"`
	GameOverTextY    float64       `yaml:"game_over_text_y"`
}

// TitleScreenConfig drives the title screen choreography
type TitleScreenConfig struct {
	Text           string  `yaml:"text"`
	TextSize       float64 `yaml:"text_size"`
	Shadows        int     `yaml:"shadows"`
	ShadowRadius   float64 `yaml:"shadow_radius"`
	ShadowAlpha    float64 `yaml:"shadow_alpha"`
	ShadowSpeed    float64 `yaml:"shadow_speed"` // Radians per second
	OuterRadius    float64 `yaml:"outer_radius"`
	CenterOffsetY  float64 `yaml:"center_offset_y"`
	FlyInDuration  float64 `yaml:"fly_in_duration"`
	FlyOutDuration float64 `yaml:"fly_out_duration"`

	Instructions         string  `yaml:"instructions"`
	InstructionsSize     float64 `yaml:"instructions_size"`
	InstructionsY        float64 `yaml:"instructions_y"`
	InstructionsRise     float64 `yaml:"instructions_rise"`
	InstructionsDuration float64 `yaml:"instructions_duration"`

	Action       string  `yaml:"action"`
	ActionSize   float64 `yaml:"action_size"`
	ActionOffset float64 `yaml:"action_offset"` // Below the field middle
	BlinkRate    float64 `yaml:"blink_rate"`
}

// GameOverScreenConfig contains game over screen configuration
type GameOverScreenConfig struct {
	TextSize         float64 `yaml:"text_size"`
	Z                float64 `yaml:"z"`
	NewGameDelay     float64 `yaml:"new_game_delay"`
	ContinueText     string  `yaml:"continue_text"`
	QuickRestartText string  `yaml:"quick_restart_text"`
}

type BackgroundConfig struct {
	Size  gamemath.Vec2 `yaml:"size"`
	Speed float64       `yaml:"speed"`
	Gap   float64       `yaml:"gap"` // Overlap between tiles to hide the seam
	Tiles int           `yaml:"tiles"`
}

// CollisionConfig sizes the broadphase grid
type CollisionConfig struct {
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	CellSize      int     `yaml:"cell_size"`
	Margin        float64 `yaml:"margin"` // Field units tracked around the visible area
}

// Config holds general game configuration
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Title     string  `yaml:"title"`
	TPS       int     `yaml:"tps"`
	BaseTextH float64 `yaml:"base_text_height"` // Window height text sizes are authored for
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle    bool `yaml:"skip_title"`
	ShowHitboxes bool `yaml:"show_hitboxes"`
}

// Global configuration instances
var C *Config
var Field gamemath.Field
var Player PlayerConfig
var Enemy EnemyConfig
var PlayerBullet BulletConfig
var EnemyBullet BulletConfig
var Explosion ExplosionConfig
var Score ScoreConfig
var TitleScreen TitleScreenConfig
var GameOverScreen GameOverScreenConfig
var Background BackgroundConfig
var Collision CollisionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every tuning value to its built-in default.
func Reset() {
	C = &Config{
		Width:     1920,
		Height:    1080,
		Title:     "Fly and Shoot",
		TPS:       60,
		BaseTextH: 1000,
	}
	Field = gamemath.Field{Width: 1920.0 / 1080.0, Height: 1}

	playerW := 0.15
	Player = PlayerConfig{
		Size:        gamemath.V(playerW, playerW*83/152),
		HitBoxScale: 0.9,
		Z:           200,

		Speed:            1.0,
		SpeedChange:      4.5,
		SlowFactor:       0.5,
		SlideOutSlowdown: 5,

		FireInterval:         0.1,
		BulletHeat:           0.05,
		MaxHeat:              1.0,
		MinHeatRecovery:      0.25,
		MaxHeatRecovery:      0.5,
		HeatRecoveryIncrease: 0.1,
		MuzzleOffset:         gamemath.V(0.03, -0.025),

		Exhaust: ExhaustConfig{
			Size:      gamemath.V(0.1, 0.1*25/75),
			Offset:    gamemath.V(-0.11, -0.015),
			ZOffset:   -1,
			FrameTime: 0.1,
		},
	}

	Enemy = EnemyConfig{
		Size:        gamemath.V(0.15, 0.15),
		HitBoxScale: 0.5,
		Z:           100,

		InitialSpawnInterval: 0.5,
		SpawnIntervalStart:   0.6,
		SpawnIntervalEnd:     0.3,
		SpawnMinY:            0.1,
		SpawnMaxY:            1.0,
		SpeedStart:           0.5,
		SpeedEnd:             2.0,
		MaxAimDeviation:      0.3,

		FireIntervalStart: 3.0,
		FireIntervalEnd:   1.5,
		MinShootDistance:  0.5,
		AimJitter:         0.25,

		DifficultyMaxScore: 200,

		Exhaust: ExhaustConfig{
			Size:      gamemath.V(0.05, 0.05*64/75),
			Offset:    gamemath.V(0.085, -0.01),
			ZOffset:   -1,
			FrameTime: 0.1,
		},
	}

	PlayerBullet = BulletConfig{
		Size:           gamemath.V(141, 129).Scale(0.15 / 141),
		CollisionScale: 0.1,
		Speed:          2.0,
		Volume:         0.25,
		Z:              1,
	}
	EnemyBullet = BulletConfig{
		Size:           gamemath.V(141, 129).Scale(0.25 / 325),
		CollisionScale: 0.1,
		Speed:          1.0,
		Volume:         0.75,
		Z:              0.3,
	}

	Explosion = ExplosionConfig{
		Size:      gamemath.V(0.5, 0.5),
		FrameTime: 0.05,
		Volume:    0.25,
		Z:         300,
	}

	Score = ScoreConfig{
		ContinueCost:     50,
		GameTextSize:     25,
		GameTextPos:      gamemath.V(0.01, 1.0),
		GameOverTextSize: 120,
		GameOverTextY:    0.7,
	}

	TitleScreen = TitleScreenConfig{
		Text:           "FLY AND SHOOT",
		TextSize:       180,
		Shadows:        3,
		ShadowRadius:   0.0035,
		ShadowAlpha:    0.5,
		ShadowSpeed:    10,
		OuterRadius:    1.5,
		CenterOffsetY:  0.25,
		FlyInDuration:  2.0,
		FlyOutDuration: 2.0,

		Instructions:         "WASD - MOVEMENT\nM - ATTACK",
		InstructionsSize:     50,
		InstructionsY:        0.35,
		InstructionsRise:     0.1,
		InstructionsDuration: 0.5,

		Action:       "PRESS ENTER",
		ActionSize:   100,
		ActionOffset: 0.35,
		BlinkRate:    50,
	}

	GameOverScreen = GameOverScreenConfig{
		TextSize:     60,
		Z:            1,
		NewGameDelay: 0.5,
		ContinueText: "-= GAME OVER =-\n\n" +
			"PRESS \"ENTER\" TO SPEND %d POINTS AND CONTINUE\n\n" +
			"PRESS \"Q\" TO EXIT",
		QuickRestartText: "-= GAME OVER =-\n\n" +
			"PRESS \"ENTER\" FOR QUICK RESTART\n\n" +
			"PRESS \"Q\" TO EXIT",
	}

	Background = BackgroundConfig{
		Size:  gamemath.V(2.0, 1.0),
		Speed: 0.03,
		Gap:   0.001,
		Tiles: 2,
	}

	Collision = CollisionConfig{
		PixelsPerUnit: 1080,
		CellSize:      64,
		Margin:        0.5,
	}

	Debug = DebugConfig{}
}
