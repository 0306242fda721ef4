package repository

import (
	"context"
	"errors"
	"time"

	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/logger"
	"standup-api-backend/internal/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// foreignKeyViolation is the Postgres SQLSTATE for a broken foreign key
const foreignKeyViolation = "23503"

// WriteFunc performs an insert or update inside the guard transaction and
// returns the number of affected rows.
type WriteFunc func(tx *gorm.DB) (int64, error)

// MutationGuard runs a write only when the row it depends on exists.
//
// The existence check and the write share one transaction: the checked row is
// share-locked, a missing row short-circuits before the write runs, and a
// foreign key violation raised by the write itself is reported as the same
// not-found outcome. Zero affected rows is ErrWriteFailed.
type MutationGuard struct {
	base
	checker *ExistenceChecker
}

// NewMutationGuard creates a new mutation guard. The whole transaction is bounded by timeout.
func NewMutationGuard(db *gorm.DB, timeout time.Duration) *MutationGuard {
	return &MutationGuard{base: newBase(db, timeout), checker: NewExistenceChecker()}
}

// Write checks that kind/id exists and then runs write.
func (g *MutationGuard) Write(ctx context.Context, kind Entity, id int64, write WriteFunc) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity":    string(kind),
		"entity_id": id,
	})

	db, _, cancel := g.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := g.checker.Exists(tx, kind, id)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.NewNotFoundError(string(kind), id)
		}

		affected, err := write(tx)
		if err != nil {
			if isForeignKeyViolation(err) {
				return apperrors.NewNotFoundError(string(kind), id)
			}
			return err
		}
		if affected == 0 {
			return apperrors.ErrWriteFailed
		}
		return nil
	})

	switch {
	case err == nil:
		metrics.MutationOutcomes.WithLabelValues(string(kind), metrics.OutcomeWritten).Inc()
	case apperrors.IsNotFound(err):
		metrics.MutationOutcomes.WithLabelValues(string(kind), metrics.OutcomePreconditionFailed).Inc()
		log.Info("guarded write rejected: referenced row missing")
	case errors.Is(err, apperrors.ErrWriteFailed):
		metrics.MutationOutcomes.WithLabelValues(string(kind), metrics.OutcomeWriteFailed).Inc()
		log.Warn("guarded write affected no rows")
	default:
		metrics.MutationOutcomes.WithLabelValues(string(kind), metrics.OutcomeStoreError).Inc()
		log.WithError(err).Error("guarded write failed")
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
