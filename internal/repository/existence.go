package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity names a table whose rows can be referenced by id
type Entity string

const (
	EntityTeam     Entity = "team"
	EntityStandup  Entity = "standup"
	EntityActivity Entity = "activity"
)

var entityTables = map[Entity]string{
	EntityTeam:     "teams",
	EntityStandup:  "standups",
	EntityActivity: "activities",
}

// Table returns the table backing the entity
func (e Entity) Table() (string, error) {
	table, ok := entityTables[e]
	if !ok {
		return "", fmt.Errorf("unknown entity %q", string(e))
	}
	return table, nil
}

// ExistenceChecker reports whether a row of a given entity exists
type ExistenceChecker struct{}

// NewExistenceChecker creates a new existence checker
func NewExistenceChecker() *ExistenceChecker {
	return &ExistenceChecker{}
}

// Exists looks up a single row by id inside tx and holds it FOR SHARE until tx
// ends, so it cannot be deleted underneath the caller. Dialects without row
// locks drop the clause. A missing row is (false, nil); a store error is
// (false, err) and is never reported as a missing row.
func (c *ExistenceChecker) Exists(tx *gorm.DB, kind Entity, id int64) (bool, error) {
	table, err := kind.Table()
	if err != nil {
		return false, err
	}

	var ids []int64
	err = tx.Table(table).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ?", id).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("check %s %d exists: %w", kind, id, err)
	}
	return len(ids) > 0, nil
}
