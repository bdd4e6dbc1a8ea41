package render

import "github.com/fatih/color"

// Tier is the severity band of a usage ratio.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "low"
	}
}

// Thresholds are usage ratios in [0, 1] with Medium < High.
type Thresholds struct {
	Medium float64
	High   float64
}

var DefaultThresholds = Thresholds{Medium: 0.75, High: 0.90}

// Tier classifies ratio. Both bounds are exclusive: a ratio equal to High is
// still medium.
func (t Thresholds) Tier(ratio float64) Tier {
	switch {
	case ratio > t.High:
		return TierHigh
	case ratio > t.Medium:
		return TierMedium
	default:
		return TierLow
	}
}

func (t Tier) attribute() color.Attribute {
	switch t {
	case TierHigh:
		return color.FgRed
	case TierMedium:
		return color.FgYellow
	default:
		return color.FgGreen
	}
}
