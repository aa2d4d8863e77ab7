package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestCurrent_EmptyStoreReadsLoggedOut(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	s, err := r.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, s.LoggedIn)
	assert.Zero(t, s.UserID)
	assert.Empty(t, s.Token)
}

func TestSetLoggedIn_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.SetLoggedIn(ctx, 7, "tok-abc"))

	s, err := r.Current(ctx)
	require.NoError(t, err)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, int64(7), s.UserID)
	assert.Equal(t, "tok-abc", s.Token)
}

func TestSetLoggedIn_SecondLoginOverwrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.SetLoggedIn(ctx, 7, "tok-a"))
	require.NoError(t, r.SetLoggedIn(ctx, 8, ""))

	s, err := r.Current(ctx)
	require.NoError(t, err)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, int64(8), s.UserID)
	assert.Empty(t, s.Token)
}

func TestClear_ResetsToLoggedOut(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.SetLoggedIn(ctx, 7, "tok"))
	require.NoError(t, r.Clear(ctx))

	s, err := r.Current(ctx)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn)
	assert.Zero(t, s.UserID)

	// clearing an already-clear session is a no-op
	require.NoError(t, r.Clear(ctx))
}

func TestCurrent_CorruptUserID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session(key,value) VALUES ('logged_in','1'), ('user_id','abc')`)
	require.NoError(t, err)

	_, err = r.Current(ctx)
	require.Error(t, err)
}
