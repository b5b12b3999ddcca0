package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SeededAndStable(t *testing.T) {
	repo := NewMemoryServiceRepo()

	all := repo.GetAll()
	require.Len(t, all, 6)
	assert.Equal(t, "Swedish Massage", all[0].Title)

	// Mutating a returned slice must not leak into the catalog.
	all[0].Title = "Mud Bath"
	assert.Equal(t, "Swedish Massage", repo.GetAll()[0].Title)
}

func TestCatalog_GetByID(t *testing.T) {
	repo := NewMemoryServiceRepo()

	svc, err := repo.GetByID(4)
	require.NoError(t, err)
	assert.Equal(t, "Hot Stone Therapy", svc.Title)

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
