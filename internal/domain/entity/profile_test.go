package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUserProfile_CreditsSignupBonus(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	identity := &Identity{UID: "uid-1", Email: "a@example.com", GoogleLinked: true}

	profile := NewUserProfile(identity, "alice", "ABCD1234", 5, now)

	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "a@example.com", profile.Email)
	assert.True(t, profile.GoogleLinked)
	assert.Equal(t, ProfileStatusActive, profile.Status)
	assert.Equal(t, Points{Total: 5, FromSignup: 5}, profile.Points)
	assert.Nil(t, profile.ReferredByUID)
	assert.Equal(t, now, profile.CreatedAt)
}

func TestPoints_AddKeepsTotalConsistent(t *testing.T) {
	var points Points

	points.Add(PointsFromSignup, 5)
	points.Add(PointsFromReferrals, 5)
	points.Add(PointsFromReferrals, 5)
	points.Add(PointsFromLoops, 1)
	points.Add(PointsField("bogus"), 100)

	assert.Equal(t, Points{Total: 16, FromSignup: 5, FromReferrals: 10, FromLoops: 1}, points)
	assert.True(t, points.Consistent())
	assert.False(t, Points{Total: 3, FromSignup: 5}.Consistent())
}

func TestReferralEdgeID(t *testing.T) {
	assert.Equal(t, "ref_new", ReferralEdgeID("ref", "new"))

	edge := NewConfirmedReferralEdge("ref", "new", "CODE0001", time.Now())
	assert.Equal(t, "ref_new", edge.ID)
	assert.Equal(t, ReferralStatusConfirmed, edge.Status)
	assert.False(t, edge.LoopBonusGiven)
	assert.NotNil(t, edge.ConfirmedAt)
}
