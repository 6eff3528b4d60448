package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatus_EnumMembership(t *testing.T) {
	for _, s := range ProjectStatuses {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, ProjectStatus("archived").Valid())
	assert.False(t, ProjectStatus("").Valid())
	assert.False(t, ProjectStatus("New").Valid(), "statuses are case sensitive")
}

func TestContactStatus_EnumMembership(t *testing.T) {
	for _, s := range ContactStatuses {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, ContactStatus("spam").Valid())
	assert.False(t, ContactStatus("").Valid())
}

func TestListingType_EnumMembership(t *testing.T) {
	assert.True(t, ListingTypeJob.Valid())
	assert.True(t, ListingTypeInternship.Valid())
	assert.False(t, ListingType("contract").Valid())
}
