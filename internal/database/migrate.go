package database

import (
	"log"

	"gorm.io/gorm"

	"studyrez/internal/domain"
)

// Migrate brings the schema up to date and installs the storage-level
// no-overlap invariant where the engine supports it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Building{},
		&domain.Room{},
		&domain.Reservation{},
	); err != nil {
		return err
	}
	return ensureOverlapConstraint(db)
}

// ensureOverlapConstraint makes double-booking impossible at the storage
// layer: two confirmed reservations for the same room may never hold
// intersecting [start, end) ranges, regardless of what the application-level
// pre-check observed. The pre-check stays only to produce friendly 409s.
func ensureOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		// SQLite has no exclusion constraints; dev and test setups rely on
		// the application-level check alone.
		log.Println("Skipping reservations_no_overlap constraint: requires PostgreSQL")
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	var cnt int64
	if err := db.Raw(
		"SELECT COUNT(1) FROM pg_constraint WHERE conname = 'reservations_no_overlap'",
	).Scan(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	return db.Exec(`
ALTER TABLE reservations
  ADD CONSTRAINT reservations_no_overlap
  EXCLUDE USING gist (
    room_id WITH =,
    tsrange(start_time, end_time, '[)') WITH &&
  )
  WHERE (status = 'confirmed')
`).Error
}
