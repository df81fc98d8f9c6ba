package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// WriteAccess describes what the connected database credential is allowed to
// do. It is probed once at startup so the admin mutation guard can reject
// writes with a diagnostic naming the role instead of failing mid-request.
type WriteAccess struct {
	Role     string `db:"role"`
	Writable bool   `db:"writable"`
}

func CheckWriteAccess(ctx context.Context, db *sqlx.DB) (WriteAccess, error) {
	const query = `
		SELECT current_user AS role,
		       bool_and(has_table_privilege(current_user, t.name, 'INSERT,UPDATE,DELETE')) AS writable
		FROM (VALUES ('destinations'), ('packages'), ('hotels'), ('package_hotels'), ('leads'), ('agency_settings')) AS t(name)`

	var access WriteAccess
	if err := db.GetContext(ctx, &access, query); err != nil {
		return WriteAccess{}, err
	}
	return access, nil
}
