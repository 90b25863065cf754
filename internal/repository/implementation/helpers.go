package implementation

import (
	"errors"

	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return contract.ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return contract.ErrDuplicate
	}
	return err
}
