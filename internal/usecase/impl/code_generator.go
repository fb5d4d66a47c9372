package impl

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"

	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/repository"
	"waitlist/internal/errors"
)

const referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codeGenerator draws referral codes uniformly from referralCodeAlphabet.
type codeGenerator struct {
	length      int
	maxAttempts int
	random      io.Reader
}

func newCodeGenerator(length, maxAttempts int) *codeGenerator {
	return &codeGenerator{
		length:      length,
		maxAttempts: maxAttempts,
		random:      rand.Reader,
	}
}

// Generate returns a code no profile currently owns. The check runs against the
// repository passed in, so inside a transaction it sees that transaction's view.
func (g *codeGenerator) Generate(ctx context.Context, profiles repository.ProfileRepository) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code, err := g.candidate()
		if err != nil {
			return "", err
		}

		taken, err := profiles.ExistsReferralCode(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check referral code")
		}
		if !taken {
			return code, nil
		}
	}

	return "", errors.Wrapf(domainerrors.ErrCodeGenerationExhausted, "no free code after %d attempts", g.maxAttempts)
}

func (g *codeGenerator) candidate() (string, error) {
	alphabetSize := big.NewInt(int64(len(referralCodeAlphabet)))
	code := make([]byte, g.length)

	for i := range code {
		n, err := rand.Int(g.random, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		code[i] = referralCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
