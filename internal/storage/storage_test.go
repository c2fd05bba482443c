package storage

import (
	"context"
	"testing"

	"takt/internal/database"
	"takt/internal/shell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettings(t *testing.T) *SettingsService {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSettingsService(db)
}

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	s := newSettings(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "a", "2"))
	require.NoError(t, s.Set(ctx, "b", ""))

	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	// An empty value is still a stored value.
	v, ok, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "2", "b": ""}, all)

	require.NoError(t, s.Delete(ctx, "a"))
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlacementStore_DefaultsWhenEmpty(t *testing.T) {
	p := NewPlacementStore(newSettings(t))

	got, err := p.Load(context.Background(), shell.DefaultPlacement())
	require.NoError(t, err)
	assert.Equal(t, shell.DefaultPlacement(), got)
}

func TestPlacementStore_SaveLoadReset(t *testing.T) {
	ctx := context.Background()
	p := NewPlacementStore(newSettings(t))

	calibrated := shell.Placement{HorizontalOffset: 323, Anchor: shell.AnchorTop}
	require.NoError(t, p.Save(ctx, calibrated))

	got, err := p.Load(ctx, shell.DefaultPlacement())
	require.NoError(t, err)
	assert.Equal(t, calibrated, got)

	require.NoError(t, p.Reset(ctx))
	got, err = p.Load(ctx, shell.DefaultPlacement())
	require.NoError(t, err)
	assert.Equal(t, shell.DefaultPlacement(), got)
}

func TestPlacementStore_IgnoresCorruptValues(t *testing.T) {
	ctx := context.Background()
	s := newSettings(t)
	p := NewPlacementStore(s)

	require.NoError(t, s.Set(ctx, KeyHorizontalOffset, "wide"))
	require.NoError(t, s.Set(ctx, KeyVerticalAnchor, "top"))

	got, err := p.Load(ctx, shell.DefaultPlacement())
	require.NoError(t, err)
	assert.Equal(t, shell.Placement{HorizontalOffset: shell.DefaultHorizontalOffset, Anchor: shell.AnchorTop}, got)
}
