package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

func matchAt(id, u1, u2 string, created time.Time) *domain.Match {
	return &domain.Match{ID: id, User1ID: u1, User2ID: u2, CreatedAt: created}
}

func TestNormalize_CollapsesDuplicatePairs(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	older := matchAt("older", "alice", "bob", base)
	// Same pair in reversed order, created later.
	newer := matchAt("newer", "bob", "alice", base.Add(time.Hour))
	other := matchAt("other", "alice", "carol", base)

	out := Normalize([]*domain.Match{older, newer, other})

	require.Len(t, out, 2)
	ids := []string{out[0].ID, out[1].ID}
	assert.Contains(t, ids, "newer")
	assert.Contains(t, ids, "other")
}

func TestNormalize_LastMessageBeatsCreation(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	chatty := matchAt("chatty", "alice", "bob", base)
	at := base.Add(48 * time.Hour)
	chatty.LastMessageAt = &at
	fresh := matchAt("fresh", "alice", "bob", base.Add(time.Hour))

	out := Normalize([]*domain.Match{chatty, fresh})

	require.Len(t, out, 1)
	assert.Equal(t, "chatty", out[0].ID)
}

func TestNormalize_ExactTieKeepsLaterEntry(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	first := matchAt("first", "alice", "bob", base)
	second := matchAt("second", "alice", "bob", base)

	out := Normalize([]*domain.Match{first, second})

	require.Len(t, out, 1)
	assert.Equal(t, "second", out[0].ID)
}

func TestNormalize_CleanInputIsStable(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	matches := []*domain.Match{
		matchAt("ab", "alice", "bob", base.Add(2*time.Hour)),
		matchAt("ac", "alice", "carol", base.Add(time.Hour)),
		matchAt("bc", "bob", "carol", base),
	}

	once := Normalize(matches)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestMatchRepository_UpsertReplacesPair(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMatchRepository(store, "test")
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, matchAt("first", "alice", "bob", base)))
	require.NoError(t, repo.Upsert(ctx, matchAt("second", "bob", "alice", base.Add(time.Hour))))

	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "second", all[0].ID)

	m, ok := repo.ByPair(ctx, "alice", "bob")
	require.True(t, ok)
	assert.Equal(t, "second", m.ID)
}

func TestMatchRepository_LegacyDuplicatesCollapseOnLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()
	ns := storage.Namespace("test")

	// Persist a snapshot containing a duplicated pair, as an older version
	// could have written.
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	legacy := []*domain.Match{
		matchAt("older", "alice", "bob", base),
		matchAt("newer", "bob", "alice", base.Add(time.Hour)),
	}
	require.NoError(t, storage.SaveJSON(ctx, store, ns.Key(storage.KeyMatches), legacy))

	repo := NewMatchRepository(store, ns)
	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "newer", all[0].ID)

	// The corrected snapshot was written back; a second load stays clean.
	again := NewMatchRepository(store, ns)
	assert.Len(t, again.All(ctx), 1)
}

func TestMatchRepository_ForUserSortsByActivity(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMatchRepository(store, "test")
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, matchAt("quiet", "alice", "bob", base)))
	require.NoError(t, repo.Upsert(ctx, matchAt("recent", "alice", "carol", base.Add(time.Hour))))
	require.NoError(t, repo.SetLastMessage(ctx, "quiet", "ping", base.Add(2*time.Hour)))

	matches := repo.ForUser(ctx, "alice")
	require.Len(t, matches, 2)
	assert.Equal(t, "quiet", matches[0].ID)
	assert.Equal(t, "recent", matches[1].ID)
}

func TestMatchRepository_SetLastMessageUnknownID(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMatchRepository(store, "test")

	err = repo.SetLastMessage(context.Background(), "missing", "x", time.Now())
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}
