package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Counter is a named monotonically-increasing sequence. "userId" numbers
// participant display IDs; "result" is recorded in leaderboard snapshots.
type Counter struct {
	Name string `gorm:"primaryKey"`
	Seq  int64  `gorm:"not null"`
}

type CounterDAO struct {
	db *gorm.DB
}

func NewCounterDAO(db *gorm.DB) *CounterDAO {
	return &CounterDAO{
		db: db,
	}
}

// Next atomically increments and returns the counter, creating it at 1 on
// first use. tx may be an open transaction handle or the root db.
func (d *CounterDAO) Next(ctx context.Context, tx *gorm.DB, name string) (int64, error) {
	if tx == nil {
		tx = d.db
	}

	var seq int64
	err := tx.WithContext(ctx).Raw(
		`INSERT INTO counters (name, seq) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`, name,
	).Scan(&seq).Error
	if err != nil {
		return 0, err
	}

	return seq, nil
}

// Current returns the counter's value without incrementing; 0 if it has never
// been used.
func (d *CounterDAO) Current(ctx context.Context, name string) (int64, error) {
	var counter Counter

	result := d.db.WithContext(ctx).First(&counter, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, result.Error
	}

	return counter.Seq, nil
}
