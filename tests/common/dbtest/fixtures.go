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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	var branchID uuid.UUID

	ctx := context.Background()
	err := db.QueryRow(ctx, "SELECT id FROM branches WHERE name = 'Main Branch' LIMIT 1").Scan(&branchID)
	require.NoError(t, err)

	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO staff (id, email, password_hash, role, branch_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		staffID, email, passwordHash, role, branchID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1 AND is_active = true", email).Scan(&staffID)
	}

	return staffID
}

// MainBranchID returns the seeded default branch, the one CreateTestStaff
// assigns staff to.
func MainBranchID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var branchID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM branches WHERE name = 'Main Branch' LIMIT 1").Scan(&branchID)
	require.NoError(t, err)
	return branchID
}

func CreateTestBranch(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	branchID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO branches (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", branchID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM branches WHERE name = $1", name).Scan(&branchID)
	}

	return branchID
}

func CreateTestRoom(t *testing.T, db DBLike, branchID uuid.UUID, roomNumber string, maxOccupants int32) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rooms (id, branch_id, room_number, category, max_occupants, current_occupants, cost_amount, cost_duration, is_active)
		VALUES ($1, $2, $3, 'dorm', $4, 0, 2500, 'night', true)`,
		roomID, branchID, roomNumber, maxOccupants)
	require.NoError(t, err)

	return roomID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Insert branches
	_, err := pool.Exec(ctx, `
		INSERT INTO branches (id, name) VALUES
		    (gen_random_uuid(), 'Main Branch'),
		    (gen_random_uuid(), 'Annex Branch')
		ON CONFLICT (name) DO NOTHING;
	`)
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
