package bookingflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/lokly/internal/models"
)

func sampleSelection() Selection {
	return Selection{
		ExperienceID: 1,
		Experience:   models.Experience{ID: 1, Title: "Traditional Kathak Dance Class", Price: 59900},
		TimeSlot:     models.TimeSlot{ID: 2, ExperienceID: 1, Name: "Afternoon", StartTime: "02:00", EndTime: "04:00"},
		Package:      models.Package{ID: 1, ExperienceID: 1, Name: "Single Session", Price: 59900},
		SelectedDate: "2026-09-12",
	}
}

func TestStoreSaveLoadClear(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSelection)

	require.NoError(t, store.Save(sampleSelection()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, uint(1), loaded.ExperienceID)
	assert.Equal(t, "Afternoon", loaded.TimeSlot.Name)
	assert.Equal(t, "2026-09-12", loaded.SelectedDate)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(sampleSelection()))

	// A fresh store over the same directory stands in for a reload.
	reopened, err := NewStore(dir)
	require.NoError(t, err)

	loaded, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "Single Session", loaded.Package.Name)
}

func TestClearRemovesDurableCopy(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(sampleSelection()))
	require.NoError(t, store.Clear())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	_, err = reopened.Load()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{price: 59900, want: 76672},
		{price: 79900, want: 102272},
		{price: 161730, want: 207014},
		{price: 1, want: 1},
		{price: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Total(tt.price))
	}
}
