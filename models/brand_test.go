package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrandTargetsLocation(t *testing.T) {
	brand := Brand{
		Campaigns: map[string]Campaign{
			"c1": {Status: CampaignStatusActive, LocationIDs: []string{"loc-1", "loc-2"}},
			"c2": {Status: CampaignStatusDraft, LocationIDs: []string{"loc-3"}},
		},
	}

	assert.True(t, brand.TargetsLocation("loc-1"))
	assert.True(t, brand.TargetsLocation("loc-3"))
	assert.False(t, brand.TargetsLocation("loc-9"))
}

func TestBrandTargetsLocationNoCampaigns(t *testing.T) {
	brand := Brand{}
	assert.False(t, brand.TargetsLocation("loc-1"))
}
