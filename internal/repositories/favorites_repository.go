package repositories

import (
	"context"
	"database/sql"
)

type FavoritesRepo struct {
	DB *sql.DB
}

// Toggle removes the favorite when present, otherwise adds it. It reports the new membership.
func (r FavoritesRepo) Toggle(ctx context.Context, userID int64, targetID string) (bool, error) {
	db, err := conn(r.DB)
	if err != nil {
		return false, err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND target_id = ?`, userID, targetID)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}
	if _, err := db.ExecContext(ctx, `INSERT IGNORE INTO favorites (user_id, target_id) VALUES (?, ?)`, userID, targetID); err != nil {
		return false, err
	}
	return true, nil
}

func (r FavoritesRepo) List(ctx context.Context, userID int64) ([]string, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT target_id FROM favorites WHERE user_id = ? ORDER BY created_at, target_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
