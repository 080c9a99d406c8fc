package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// forUpdate adds SELECT ... FOR UPDATE. Dialects without row locks ignore it.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// onPrimary routes a read to the primary so a just-written row is visible
// even when replicas lag.
func onPrimary(db *gorm.DB) *gorm.DB {
	return db.Clauses(dbresolver.Write)
}
