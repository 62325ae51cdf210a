package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleContact(name, birthDate string) model.Contact {
	return model.Contact{
		BirthDate:          birthDate,
		PersonName:         name,
		Relationship:       "Guter Freund",
		Gender:             config.GenderDiverse,
		BondStrength:       config.BondMedium,
		CommunicationStyle: config.CommStyleDirect,
		EmojiPreference:    config.PrefNo,
		WriterType:         config.PrefYes,
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	saved, err := s.Save(ctx, sampleContact("Mira", "1990-05-03"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "insert must assign a ULID")
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mira", got.PersonName)
	assert.Equal(t, "1990-05-03", got.BirthDate)
	assert.Equal(t, saved.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestSave_Update(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	saved, err := s.Save(ctx, sampleContact("Mira", "1990-05-03"))
	require.NoError(t, err)

	saved.Nickname = "Miri"
	saved.Description = "sehr lustig"
	updated, err := s.Save(ctx, *saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Miri", got.Nickname)
	assert.Equal(t, "sehr lustig", got.Description)
}

func TestSave_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := sampleContact("Niemand", "1990-05-03")
	c.ID = "01HZZZZZZZZZZZZZZZZZZZZZZZ"
	_, err := s.Save(ctx, c)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_OrderedByName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, name := range []string{"Zoe", "Anna", "Mira"} {
		_, err := s.Save(ctx, sampleContact(name, "1990-05-03"))
		require.NoError(t, err)
	}

	contacts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Anna", contacts[0].PersonName)
	assert.Equal(t, "Mira", contacts[1].PersonName)
	assert.Equal(t, "Zoe", contacts[2].PersonName)
}

func TestForDay(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Save(ctx, sampleContact("Mira", "1990-05-03"))
	require.NoError(t, err)
	_, err = s.Save(ctx, sampleContact("Alba", "2000-05-03"))
	require.NoError(t, err)
	_, err = s.Save(ctx, sampleContact("Jonas", "1985-11-20"))
	require.NoError(t, err)

	matches, err := s.ForDay(ctx, "05-03")
	require.NoError(t, err)
	require.Len(t, matches, 2, "month-day lookup ignores the birth year")
	assert.Equal(t, "Alba", matches[0].PersonName)
	assert.Equal(t, "Mira", matches[1].PersonName)

	empty, err := s.ForDay(ctx, "01-01")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	saved, err := s.Save(ctx, sampleContact("Mira", "1990-05-03"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, saved.ID))

	_, err = s.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, saved.ID), ErrNotFound)
}

func TestPrefs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Unset keys read as empty without error.
	value, err := s.GetPref(ctx, config.PrefNotifyTime)
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, s.SetPref(ctx, config.PrefNotifyTime, "09:15"))
	value, err = s.GetPref(ctx, config.PrefNotifyTime)
	require.NoError(t, err)
	assert.Equal(t, "09:15", value)

	// Upsert replaces the stored value.
	require.NoError(t, s.SetPref(ctx, config.PrefNotifyTime, "18:00"))
	value, err = s.GetPref(ctx, config.PrefNotifyTime)
	require.NoError(t, err)
	assert.Equal(t, "18:00", value)
}

func TestNewID_Unique(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.newID()
		assert.Len(t, id, 26, "ULIDs are 26 characters")
		assert.False(t, seen[id], "IDs must be unique")
		seen[id] = true
	}
}
