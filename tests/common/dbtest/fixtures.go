//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultCreator      = "alice"
	DefaultInstructions = "Pay via the link on my profile"
)

// CreateTestCreator inserts a creator with explicit prices in cents.
func CreateTestCreator(t *testing.T, db DBLike, username string, movieShort, movieLong, episode, priority int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO creator_profiles (
			username, movie_price_short_cents, movie_price_long_cents,
			episode_price_cents, priority_price_cents, currency, contact_instructions)
		VALUES ($1, $2, $3, $4, $5, 'USD', $6)
		ON CONFLICT (username) DO UPDATE SET
			movie_price_short_cents = EXCLUDED.movie_price_short_cents,
			movie_price_long_cents  = EXCLUDED.movie_price_long_cents,
			episode_price_cents     = EXCLUDED.episode_price_cents,
			priority_price_cents    = EXCLUDED.priority_price_cents`,
		username, movieShort, movieLong, episode, priority, DefaultInstructions)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO creator_profiles (
			username, movie_price_short_cents, movie_price_long_cents,
			episode_price_cents, priority_price_cents, currency, contact_instructions)
		VALUES ($1, 5000, 8000, 1000, 2000, 'USD', $2)
		ON CONFLICT (username) DO NOTHING;
	`, DefaultCreator, DefaultInstructions)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
