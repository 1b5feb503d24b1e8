package constants

import "time"

// Playfield geometry, percentage units on both axes
const (
	FieldMin = 5.0
	FieldMax = 95.0

	LayoutCenterX = 50.0
	LayoutCenterY = 50.0
	LayoutRadius  = 35.0
)

// Attempt timing
const (
	// AttemptSeconds is the countdown length of every level attempt
	AttemptSeconds = 15

	// ReferenceFrameMs is the frame duration velocities are expressed in (60 Hz)
	ReferenceFrameMs = 16.67

	// FrameInterval drives the motion ticker
	FrameInterval = time.Second / 60

	// CountdownInterval drives the attempt countdown
	CountdownInterval = time.Second
)

// Motion difficulty
const (
	SpeedVariationMin   = 0.8
	SpeedVariationRange = 0.4

	// DriftLevel is the first level with the synchronized wobble
	DriftLevel     = 5
	DriftAmplitude = 0.2

	// ErraticLevel is the first level with random redirection
	ErraticLevel  = 8
	ErraticChance = 0.02
)

// Scoring
const (
	MaxLevel        = 10
	PointsPerLevel  = 100
	PenaltyPerLevel = 25

	// MaxTotalScore is 100 * (1 + 2 + ... + 10)
	MaxTotalScore = 5500
)
