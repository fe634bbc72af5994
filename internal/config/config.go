package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Valentine?"

	// Evasive control
	EvadeMargin    = 120
	EvadeMinOffset = 20
	NoButtonWidth  = 90
	NoButtonHeight = 32

	// Affirmative and reset controls
	YesButtonWidth    = 220
	YesButtonHeight   = 80
	ResetButtonWidth  = 160
	ResetButtonHeight = 28

	// Background hearts
	HeartSpawnInterval = 1500 * time.Millisecond
	HeartHistory       = 20
	HeartMinSize       = 15
	HeartMaxSize       = 40
	HeartMinDuration   = 10 * time.Second
	HeartMaxDuration   = 25 * time.Second

	// Celebration burst
	BurstDuration     = 5 * time.Second
	BurstInterval     = 250 * time.Millisecond
	BurstMaxParticles = 70

	// Confetti physics, per tick at 60 TPS
	ConfettiStartVelocity = 35
	ConfettiSpread        = 360
	ConfettiLifeTicks     = 100
	ConfettiGravity       = 1.0
	ConfettiDecay         = 0.9

	// Audio
	SampleRate      = 44100
	VisualRingSize  = 4096
	SmoothingFactor = 0.6

	FallbackPhotoURL  = "https://images.unsplash.com/photo-1516589174184-c68526514283?q=80&w=1000&auto=format&fit=crop"
	PhotoFetchTimeout = 10 * time.Second
)
