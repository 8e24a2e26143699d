package config

import "time"

const (
	WindowWidth  = 480
	WindowHeight = 800
	WindowTitle  = "Tri Create Rot Bouncy - Click or tap to animate, Esc/Q: Quit"

	// Scene parameters
	NodeCount       = 5
	LinesPerNode    = 6
	StepRate        = 0.02
	StrokeFactor    = 90
	RotationDegrees = 60.0

	// Colors
	ForeColor = "#3F51B5"
	BackColor = "#BDBDBD"

	// Frame pacing
	FrameDelay = 30 * time.Millisecond
)
