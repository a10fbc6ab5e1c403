package config

import (
	"image/color"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every gameplay entity lives on.
const Default ecs.LayerID = 0

// BirdConfig contains the slingshot and projectile tuning
type BirdConfig struct {
	// Body
	Radius     float64
	Density    float64
	Friction   float64
	Elasticity float64

	// Dragging
	DragRadius float64 // Max pull distance from the anchor
	DragSpeed  float64 // Approach rate while dragging and moving to the slingshot

	// Launch
	LaunchForce       cp.Vector
	LaunchGravity     float64
	LaunchScale       float64 // Fixed scale applied to the launch velocity
	FrameScaledLaunch bool    // Scale by the tick delta instead of LaunchScale

	// Trajectory
	TrajectoryFrequency  float64
	TrajectoryStartDelay time.Duration
	MinTrajectoryPeriod  time.Duration
	MaxTrajectoryPeriod  time.Duration
	TrajectoryVariants   int

	// Lifetime
	DeathDelay time.Duration

	// Idle hops while waiting in line
	IdleHops      bool
	JumpImpulse   float64
	MaxTimeToJump time.Duration

	// Slingshot
	RestOffset      cp.Vector // Rest point relative to the slingshot
	SlingZoneWidth  float64
	SlingZoneHeight float64

	// Queue layout
	RowSize      int
	QueueSpacing float64 // Pitch between birds, in diameters
	QueueJitter  float64 // 0..1 share of the free gap used for jitter
	QueueOffset  float64 // Gap between the slingshot and the first waiting bird
}

// PhysicsConfig contains the simulation and arena settings
type PhysicsConfig struct {
	Gravity            float64
	Iterations         uint
	SleepTimeThreshold float64

	// Arena ground
	GroundLeft     float64
	GroundRight    float64
	GroundTop      float64
	GroundDepth    float64
	GroundFriction float64

	// Trigger space (resolv)
	Ceiling      float64 // Top of the trigger space in world units
	TriggerScale float64 // Trigger units per world unit
	TriggerCell  int
}

// Ground returns the ground bounds.
func (p PhysicsConfig) Ground() cp.BB {
	return cp.BB{
		L: p.GroundLeft,
		B: p.GroundTop - p.GroundDepth,
		R: p.GroundRight,
		T: p.GroundTop,
	}
}

// RoundConfig contains round flow settings
type RoundConfig struct {
	TimesToGiveUp    int
	ResetDelay       time.Duration // Wait before the first stability poll
	PollInterval     time.Duration // Wait between stability polls
	StabilityEpsilon float64       // Total speed at or below which the arena counts as settled
	Simulation       bool          // No listener callbacks and no idle hops
}

// DamageConfig contains impact damage settings
type DamageConfig struct {
	MinImpactSpeed float64 // Impacts slower than this deal no damage
	Scale          float64 // Damage per unit of speed above the minimum
}

// PigTypeConfig contains configuration for a specific pig type
type PigTypeConfig struct {
	Name       string
	Radius     float64
	Health     float64
	Density    float64
	Friction   float64
	Elasticity float64
}

// ShapeKind is the collision shape of a block type
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeTriangle
)

// BlockTypeConfig contains configuration for a specific block type
type BlockTypeConfig struct {
	Name   string
	Shape  ShapeKind
	Width  float64
	Height float64
}

// MaterialConfig contains the physical response of a block material
type MaterialConfig struct {
	Name       string
	Density    float64
	Friction   float64
	Elasticity float64
	Health     float64
}

// PlatformConfig contains static platform settings
type PlatformConfig struct {
	CellSize float64
	Friction float64
}

// CameraConfig contains camera framing settings
type CameraConfig struct {
	Margin       float64
	DefaultWidth float64
}

// LevelsConfig contains level loading settings
type LevelsConfig struct {
	Dir           string
	PixelsPerUnit float64
	Origin        cp.Vector // World position of the map's top-left corner
}

// DebugConfig contains the debug viewer settings
type DebugConfig struct {
	ScreenWidth  int
	ScreenHeight int
	ShowTriggers bool
	Background   color.RGBA
}

var Bird BirdConfig
var Physics PhysicsConfig
var Round RoundConfig
var Damage DamageConfig
var Pigs map[string]PigTypeConfig
var Blocks map[string]BlockTypeConfig
var Materials map[string]MaterialConfig
var Platform PlatformConfig
var Camera CameraConfig
var Levels LevelsConfig
var Debug DebugConfig

func init() {
	// Physics Config
	Physics = PhysicsConfig{
		Gravity:            -9.81,
		Iterations:         10,
		SleepTimeThreshold: 0.5,

		GroundLeft:     -14.0,
		GroundRight:    26.0,
		GroundTop:      -3.5,
		GroundDepth:    1.0,
		GroundFriction: 0.8,

		Ceiling:      24.0,
		TriggerScale: 32.0, // one trigger unit per level pixel
		TriggerCell:  8,
	}

	// Bird Config
	Bird = BirdConfig{
		Radius:     0.22,
		Density:    2.0,
		Friction:   0.6,
		Elasticity: 0.3,

		DragRadius: 1.0,
		DragSpeed:  12.0,

		LaunchForce:       cp.Vector{X: 900, Y: 900},
		LaunchGravity:     1.0,
		LaunchScale:       1.0 / 60.0,
		FrameScaledLaunch: false,

		TrajectoryFrequency:  0.5,
		TrajectoryStartDelay: 100 * time.Millisecond,
		MinTrajectoryPeriod:  20 * time.Millisecond,
		MaxTrajectoryPeriod:  time.Second,
		TrajectoryVariants:   3,

		DeathDelay: time.Second,

		IdleHops:      true,
		JumpImpulse:   0.3,
		MaxTimeToJump: 2 * time.Second,

		RestOffset:      cp.Vector{X: 0, Y: 0.6},
		SlingZoneWidth:  0.4,
		SlingZoneHeight: 0.4,

		RowSize:      5,
		QueueSpacing: 1.75,
		QueueJitter:  0.5,
		QueueOffset:  0.5,
	}

	// Round Config
	Round = RoundConfig{
		TimesToGiveUp:    3,
		ResetDelay:       time.Second,
		PollInterval:     time.Second,
		StabilityEpsilon: 0.05,
		Simulation:       false,
	}

	Damage = DamageConfig{
		MinImpactSpeed: 1.0,
		Scale:          1.0,
	}

	// Pig types
	Pigs = map[string]PigTypeConfig{
		"BasicSmall": {
			Name:       "BasicSmall",
			Radius:     0.23,
			Health:     3,
			Density:    1.0,
			Friction:   0.7,
			Elasticity: 0.2,
		},
		"BasicMedium": {
			Name:       "BasicMedium",
			Radius:     0.37,
			Health:     5,
			Density:    1.0,
			Friction:   0.7,
			Elasticity: 0.2,
		},
		"BasicBig": {
			Name:       "BasicBig",
			Radius:     0.47,
			Health:     8,
			Density:    1.0,
			Friction:   0.7,
			Elasticity: 0.2,
		},
	}

	// Block types
	Blocks = map[string]BlockTypeConfig{
		"SquareTiny":   {Name: "SquareTiny", Shape: ShapeRect, Width: 0.22, Height: 0.22},
		"SquareSmall":  {Name: "SquareSmall", Shape: ShapeRect, Width: 0.43, Height: 0.43},
		"SquareHole":   {Name: "SquareHole", Shape: ShapeRect, Width: 0.85, Height: 0.85},
		"RectTiny":     {Name: "RectTiny", Shape: ShapeRect, Width: 0.43, Height: 0.22},
		"RectSmall":    {Name: "RectSmall", Shape: ShapeRect, Width: 0.85, Height: 0.22},
		"RectMedium":   {Name: "RectMedium", Shape: ShapeRect, Width: 1.68, Height: 0.22},
		"RectBig":      {Name: "RectBig", Shape: ShapeRect, Width: 2.06, Height: 0.22},
		"RectFat":      {Name: "RectFat", Shape: ShapeRect, Width: 0.85, Height: 0.43},
		"CircleSmall":  {Name: "CircleSmall", Shape: ShapeCircle, Width: 0.45, Height: 0.45},
		"Circle":       {Name: "Circle", Shape: ShapeCircle, Width: 0.8, Height: 0.8},
		"Triangle":     {Name: "Triangle", Shape: ShapeTriangle, Width: 0.82, Height: 0.82},
		"TriangleHole": {Name: "TriangleHole", Shape: ShapeTriangle, Width: 0.82, Height: 0.82},
	}

	// Materials
	Materials = map[string]MaterialConfig{
		"wood": {
			Name:       "wood",
			Density:    0.75,
			Friction:   0.6,
			Elasticity: 0.1,
			Health:     6,
		},
		"stone": {
			Name:       "stone",
			Density:    2.4,
			Friction:   0.8,
			Elasticity: 0.05,
			Health:     12,
		},
		"ice": {
			Name:       "ice",
			Density:    0.9,
			Friction:   0.2,
			Elasticity: 0.1,
			Health:     3,
		},
	}

	Platform = PlatformConfig{
		CellSize: 0.62,
		Friction: 0.8,
	}

	// Camera Config
	Camera = CameraConfig{
		Margin:       0.5,
		DefaultWidth: 20.0,
	}

	Levels = LevelsConfig{
		Dir:           "levels",
		PixelsPerUnit: 32.0,
		Origin:        cp.Vector{X: -14, Y: 14},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		ShowTriggers: false,
		Background:   color.RGBA{R: 135, G: 206, B: 235, A: 255},
	}
}
