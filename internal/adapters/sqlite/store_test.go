package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/ports"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	version, err := db.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestOpen_PragmasApplyToEveryConnection(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	// holding the first connection forces the pool to dial a second one
	first, err := db.db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := db.db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout, "conn %d busy_timeout", i)

		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode, "conn %d journal_mode", i)

		var sync int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA synchronous").Scan(&sync))
		assert.Equal(t, 1, sync, "conn %d synchronous", i)
	}
}

func TestOpen_DefaultPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	assert.Equal(t, filepath.Join(dataHome, "careerpath", "careerpath.db"), DefaultPath())

	db, err := Open("")
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, DefaultPath(), db.Path())
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t).Durable()

	_, err := s.Get(ctx, "project_progress_a")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "project_progress_a", []byte(`{"task-1":true}`), 0))
	got, err := s.Get(ctx, "project_progress_a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"task-1":true}`, string(got))

	require.NoError(t, s.Set(ctx, "project_progress_a", []byte(`{}`), 0))
	got, err = s.Get(ctx, "project_progress_a")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	require.NoError(t, s.Delete(ctx, "project_progress_a"))
	_, err = s.Get(ctx, "project_progress_a")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, db.Durable().Set(ctx, "k", []byte("durable"), 0))
	require.NoError(t, db.Namespace("other").Set(ctx, "k", []byte("other"), 0))

	got, err := db.Durable().Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "durable", string(got))

	require.NoError(t, db.Namespace("other").Clear(ctx))
	_, err = db.Durable().Get(ctx, "k")
	assert.NoError(t, err)
}

func TestStore_TTL(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return now }
	s := db.Namespace("session:test")

	require.NoError(t, s.Set(ctx, "project_x", []byte("p"), time.Hour))

	_, err := s.Get(ctx, "project_x")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = s.Get(ctx, "project_x")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	keys, err := s.Keys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)

	removed, err := db.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestStore_Keys(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t).Durable()

	for _, k := range []string{"project_progress_b", "project_progress_a", "selectedProjectId"} {
		require.NoError(t, s.Set(ctx, k, []byte("1"), 0))
	}

	keys, err := s.Keys(ctx, "project_progress_")
	require.NoError(t, err)
	assert.Equal(t, []string{"project_progress_a", "project_progress_b"}, keys)
}

func TestStore_EmptyValue(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t).Durable()

	require.NoError(t, s.Set(ctx, "k", nil, 0))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Durable().Set(ctx, "project_progress_a", []byte("x"), 0))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Durable().Get(ctx, "project_progress_a")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestSession_StableUntilEnded(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	first, err := db.Session(ctx)
	require.NoError(t, err)
	again, err := db.Session(ctx)
	require.NoError(t, err)
	firstNS, err := first.Namespace(ctx)
	require.NoError(t, err)
	againNS, err := again.Namespace(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstNS, againNS)

	require.NoError(t, first.Set(ctx, "generatedDomains", []byte("[]"), 0))
	require.NoError(t, first.Set(ctx, "ikigaiSummary", []byte(`"x"`), 0))
	require.NoError(t, db.Durable().Set(ctx, "project_progress_a", []byte("{}"), 0))

	newID, removed, err := db.EndSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, newID)
	assert.Equal(t, int64(2), removed)

	nextNS, err := first.Namespace(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, firstNS, nextNS)
	assert.Equal(t, sessionNSPrefix+newID, nextNS)

	_, err = first.Get(ctx, "generatedDomains")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	_, err = db.Durable().Get(ctx, "project_progress_a")
	assert.NoError(t, err, "ending a session must keep durable progress")
}

func TestSession_FollowsRotationByAnotherProcess(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")

	server, err := Open(path)
	require.NoError(t, err)
	defer server.Close()
	cli, err := Open(path)
	require.NoError(t, err)
	defer cli.Close()

	serverSession, err := server.Session(ctx)
	require.NoError(t, err)
	cliSession, err := cli.Session(ctx)
	require.NoError(t, err)

	require.NoError(t, serverSession.Set(ctx, "selectedProject", []byte(`"a"`), 0))
	got, err := cliSession.Get(ctx, "selectedProject")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(got))

	newID, removed, err := cli.EndSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// the long-lived handle writes into the new session, not the cleared one
	require.NoError(t, serverSession.Set(ctx, "selectedProject", []byte(`"b"`), 0))
	ns, err := serverSession.Namespace(ctx)
	require.NoError(t, err)
	assert.Equal(t, sessionNSPrefix+newID, ns)

	got, err = cliSession.Get(ctx, "selectedProject")
	require.NoError(t, err)
	assert.Equal(t, `"b"`, string(got))

	keys, err := cliSession.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"selectedProject"}, keys)
}
