package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForDealValue(t *testing.T) {
	tests := []struct {
		dealValue int
		tier      CustomerTier
	}{
		{120000, TierPremium},
		{100001, TierPremium},
		{100000, TierGold},
		{60000, TierGold},
		{50000, TierSilver},
		{30000, TierSilver},
		{25000, TierBronze},
		{10000, TierBronze},
		{0, TierBronze},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tier, TierForDealValue(tt.dealValue), "dealValue=%d", tt.dealValue)
	}
}

func TestSegmentForDealValue(t *testing.T) {
	assert.Equal(t, SegmentHighValue, SegmentForDealValue(80000))
	assert.Equal(t, SegmentRegular, SegmentForDealValue(75000))
	assert.Equal(t, SegmentRegular, SegmentForDealValue(40000))
}
