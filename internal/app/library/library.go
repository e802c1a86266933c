// Package library keeps the listener's liked songs.
package library

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// Library stores liked track IDs in SQLite, in the order they were liked.
type Library struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a library on a migrated database.
func New(db *sql.DB) *Library {
	return &Library{db: db, now: time.Now}
}

// ToggleLike likes the track, or unlikes it when it is already liked.
// It returns the new liked state.
func (l *Library) ToggleLike(ctx context.Context, trackID string) (bool, error) {
	if trackID == "" {
		return false, errors.New("track id is required")
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM liked_tracks WHERE track_id = ?`, trackID)
	if err != nil {
		return false, errors.Wrap(err, "failed to unlike track")
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}

	liked := removed == 0
	if liked {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO liked_tracks (track_id, liked_at) VALUES (?, ?)`,
			trackID, l.now().UTC(),
		); err != nil {
			return false, errors.Wrap(err, "failed to like track")
		}
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "failed to commit like")
	}

	zlog.Debug().Msgf("library: toggled like: track=%s liked=%t", trackID, liked)
	return liked, nil
}

// LikedIDs returns liked track IDs, oldest like first.
func (l *Library) LikedIDs(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT track_id FROM liked_tracks ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query liked tracks")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan liked track")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate liked tracks")
	}
	return ids, nil
}
