package service

import "context"

// HumanVerifier checks a bot challenge token before a signup reaches the ledger
type HumanVerifier interface {
	// Enabled reports whether signups must carry a challenge token
	Enabled() bool

	// Verify reports whether the token proves a human submitted the request
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
