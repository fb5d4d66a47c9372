package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// Index names shared by the models and the violation classifier.
const (
	constraintUsername     = "username"
	constraintReferralCode = "referral_code"
)

// uniqueViolation reports whether err is a unique constraint violation and, if so,
// a lowercase hint naming the violated constraint or column.
func uniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}

		return strings.ToLower(pgErr.ConstraintName), true
	}

	msg := strings.ToLower(err.Error())
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") {
		return msg, true
	}

	return "", false
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "not null constraint")
}
