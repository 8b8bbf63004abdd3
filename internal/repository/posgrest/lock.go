package posgrest

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const acquireLockSQL = `
INSERT INTO scheduler_locks (name, lock_until, locked_at, locked_by)
VALUES (?, now() + CAST(? AS double precision) * interval '1 millisecond', now(), ?)
ON CONFLICT (name) DO UPDATE
SET lock_until = EXCLUDED.lock_until, locked_at = EXCLUDED.locked_at, locked_by = EXCLUDED.locked_by
WHERE scheduler_locks.lock_until <= now()`

const releaseLockSQL = `
UPDATE scheduler_locks
SET lock_until = GREATEST(locked_at + CAST(? AS double precision) * interval '1 millisecond', now())
WHERE name = ? AND locked_by = ?`

// Locker is a lease-based lock over the scheduler_locks table. All times come
// from the database clock so instances with skewed clocks agree on expiry.
type Locker struct {
	db    *gorm.DB
	owner string
}

func NewLocker(db *gorm.DB) *Locker {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return &Locker{db: db, owner: host + "-" + uuid.NewString()}
}

// Acquire takes the named lock for at most atMostFor. It returns false without
// error when another holder's lease has not expired yet.
func (l *Locker) Acquire(ctx context.Context, name string, atMostFor time.Duration) (bool, error) {
	res := l.db.WithContext(ctx).Exec(acquireLockSQL, name, atMostFor.Milliseconds(), l.owner)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Release shortens the lease to now, but never below atLeastFor after it was taken.
func (l *Locker) Release(ctx context.Context, name string, atLeastFor time.Duration) error {
	return l.db.WithContext(ctx).Exec(releaseLockSQL, atLeastFor.Milliseconds(), name, l.owner).Error
}

func (l *Locker) Owner() string {
	return l.owner
}
