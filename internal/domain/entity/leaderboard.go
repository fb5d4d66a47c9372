package entity

// UserSummary is the public projection of a profile on the leaderboard.
type UserSummary struct {
	UID                 string
	Username            string
	PointsTotal         int64
	PointsFromSignup    int64
	PointsFromReferrals int64
	PointsFromLoops     int64
}

// Leaderboard is a ranked snapshot of active profiles.
type Leaderboard struct {
	TopUsers        []UserSummary
	TotalUsers      int
	CurrentUserRank *int
	CurrentUserData *UserSummary
}
