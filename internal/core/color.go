package core

// Color is the palette slot of a screen cell. The platform maps each slot to
// a terminal color; games only pick the role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky           // Background accents (clouds, horizon)
	ColorGround
	ColorCannon
	ColorShell
	ColorTrail   // Path already flown by the live shell
	ColorPreview // Predicted arc while aiming
	ColorTarget
	ColorTargetHit
	ColorImpact
	ColorHUD
	ColorWarning
	ColorWind
)

// String returns the palette role name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorGround:
		return "ground"
	case ColorCannon:
		return "cannon"
	case ColorShell:
		return "shell"
	case ColorTrail:
		return "trail"
	case ColorPreview:
		return "preview"
	case ColorTarget:
		return "target"
	case ColorTargetHit:
		return "target-hit"
	case ColorImpact:
		return "impact"
	case ColorHUD:
		return "hud"
	case ColorWarning:
		return "warning"
	case ColorWind:
		return "wind"
	default:
		return "unknown"
	}
}
