package config

import "image/color"

// EnemyTypeConfig contains configuration for specific enemy types.
// Values are shared by every enemy of the type and never mutated after init.
type EnemyTypeConfig struct {
	Name        string
	Speed       float64 // world units per second
	DetectRange float64 // Distance to notice the player
	AttackRange float64 // Distance to start attacking, expected <= DetectRange
	MaxHP       int
	Color       color.RGBA

	// Combat
	AttackIntervalMs int64 // Minimum time between two attacks
	Damage           float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Archetype catalog keyed by "NORMAL", "SNIPER", "BOSS"
	Types map[string]EnemyTypeConfig

	// Extra distance required before an enemy leaves its current state.
	// Zero re-evaluates purely from distance every frame.
	Hysteresis float64
}

// HitZoneConfig describes the collidable sub-shapes of an enemy.
type HitZoneConfig struct {
	// Body capsule
	BodyRadius float64
	BodyLength float64 // length of the cylindrical section
	BodyY      float64 // local height of the capsule center

	// Head sphere
	HeadRadius float64
	HeadY      float64
	HeadColor  color.RGBA
}

// HealthBarConfig contains the health indicator texture layout.
type HealthBarConfig struct {
	// Texture dimensions (pixels)
	Width   int
	Height  int
	Padding int

	// Colors
	BgColor   color.RGBA
	HighColor color.RGBA // ratio above HighThreshold
	LowColor  color.RGBA

	HighThreshold float64

	// Billboard placement (world units)
	ScaleX  float64
	ScaleY  float64
	OffsetY float64
}

// DeathConfig controls how long a dead enemy stays in the scene.
type DeathConfig struct {
	Duration  float64 // seconds the corpse sinks before removal
	SinkDepth float64 // world units the corpse sinks
}

// ArenaConfig describes the collision space backing the hit-zones.
// World X and Z map onto the space's X and Y, centered on the origin.
type ArenaConfig struct {
	Width    int
	Depth    int
	CellSize int

	PixelsPerUnit int // TMX layout pixels per world unit
}

// ServerConfig holds headless server defaults (overridable by flags).
type ServerConfig struct {
	Port         uint
	TickRate     int
	PlayerSpeed  float64 // world units per second
	PlayerHealth int
	LayoutPath   string
}

// ClientConfig holds arena client defaults.
type ClientConfig struct {
	Width          int
	Height         int
	PixelsPerUnit  float64 // screen pixels per world unit in the top-down view
	PlayerSpeed    float64
	PlayerHealth   int
	ShotDamage     int
	HeadshotDamage int
}

var Enemy EnemyConfig
var HitZone HitZoneConfig
var HealthBar HealthBarConfig
var Death DeathConfig
var Arena ArenaConfig
var Server ServerConfig
var Client ClientConfig

// Archetype keys
const (
	Normal = "NORMAL"
	Sniper = "SNIPER"
	Boss   = "BOSS"
)

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0x33, G: 0x33, B: 0xff, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Skin      = color.RGBA{R: 0xff, G: 0xdb, B: 0xac, A: 255}
	Mint      = color.RGBA{R: 0x00, G: 0xff, B: 0x88, A: 255}
	Crimson   = color.RGBA{R: 0xff, G: 0x46, B: 0x55, A: 255}
	DimShadow = color.RGBA{R: 0, G: 0, B: 0, A: 153}
)

// LookupEnemyType returns the archetype registered under key.
func LookupEnemyType(key string) (EnemyTypeConfig, bool) {
	t, ok := Enemy.Types[key]
	return t, ok
}

func init() {
	normalType := EnemyTypeConfig{
		Name:             "Z-Runner",
		Speed:            8,
		DetectRange:      40,
		AttackRange:      4,
		MaxHP:            100,
		Color:            Green,
		AttackIntervalMs: 1000,
		Damage:           10,
	}

	sniperType := EnemyTypeConfig{
		Name:             "Shadow-Eye",
		Speed:            3,
		DetectRange:      100,
		AttackRange:      60,
		MaxHP:            80,
		Color:            Blue,
		AttackIntervalMs: 3500,
		Damage:           45,
	}

	bossType := EnemyTypeConfig{
		Name:             "GOLIATH",
		Speed:            5,
		DetectRange:      150,
		AttackRange:      15,
		MaxHP:            1000,
		Color:            Red,
		AttackIntervalMs: 2000,
		Damage:           25,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			Normal: normalType,
			Sniper: sniperType,
			Boss:   bossType,
		},
		Hysteresis: 0,
	}

	HitZone = HitZoneConfig{
		BodyRadius: 0.5,
		BodyLength: 1.2,
		BodyY:      1.0,
		HeadRadius: 0.35,
		HeadY:      2.0,
		HeadColor:  Skin,
	}

	HealthBar = HealthBarConfig{
		Width:         128,
		Height:        16,
		Padding:       2,
		BgColor:       DimShadow,
		HighColor:     Mint,
		LowColor:      Crimson,
		HighThreshold: 0.5,
		ScaleX:        1.5,
		ScaleY:        0.2,
		OffsetY:       2.7,
	}

	Death = DeathConfig{
		Duration:  1.5,
		SinkDepth: 2.5,
	}

	Arena = ArenaConfig{
		Width:         512,
		Depth:         512,
		CellSize:      4,
		PixelsPerUnit: 4,
	}

	Server = ServerConfig{
		Port:         7373,
		TickRate:     20,
		PlayerSpeed:  10,
		PlayerHealth: 100,
		LayoutPath:   "levels/arena.tmx",
	}

	Client = ClientConfig{
		Width:          960,
		Height:         540,
		PixelsPerUnit:  4,
		PlayerSpeed:    12,
		PlayerHealth:   200,
		ShotDamage:     20,
		HeadshotDamage: 50,
	}
}
