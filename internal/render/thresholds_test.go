package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholds_Tier(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Tier
	}{
		{0, TierLow},
		{0.5, TierLow},
		{0.75, TierLow},
		{0.7501, TierMedium},
		{0.90, TierMedium},
		{0.9001, TierHigh},
		{1, TierHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultThresholds.Tier(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestThresholds_TierCustom(t *testing.T) {
	th := Thresholds{Medium: 0.2, High: 0.4}
	assert.Equal(t, TierLow, th.Tier(0.2))
	assert.Equal(t, TierMedium, th.Tier(0.3))
	assert.Equal(t, TierHigh, th.Tier(0.41))
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "low", TierLow.String())
	assert.Equal(t, "medium", TierMedium.String())
	assert.Equal(t, "high", TierHigh.String())
}
