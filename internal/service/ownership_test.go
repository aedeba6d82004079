package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceError(t *testing.T) {
	err := notFound(models.KindFolder, 12)
	assert.EqualError(t, err, "folder 12: not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)

	err = &ResourceError{Kind: models.KindTag, Err: ErrConstraintViolation}
	assert.EqualError(t, err, "tag: constraint violation")
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError(models.KindApplication, 1, nil))

	assertResourceError(t, storeError(models.KindApplication, 1, store.ErrRecordNotFound), models.KindApplication, 1, ErrNotFound)
	assertResourceError(t,
		storeError(models.KindStatus, 0, fmt.Errorf("%w: dup", store.ErrConstraintViolation)),
		models.KindStatus, 0, ErrConstraintViolation)

	kept := forbidden(models.KindFolder, 3)
	assert.Same(t, kept, storeError(models.KindApplication, 9, kept))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, storeError(models.KindApplication, 1, plain))
}

func TestCheckReferences_OrderAndShortCircuit(t *testing.T) {
	d := newTestDeps(t)

	refs := map[models.ResourceKind][]int64{
		models.KindTag:    {1},
		models.KindFolder: {2},
		models.KindStatus: {3},
	}

	gomock.InOrder(
		d.folders.EXPECT().CountOwned(gomock.Any(), ownerID, []int64{2}).Return(int64(1), nil),
		d.statuses.EXPECT().CountOwned(gomock.Any(), ownerID, []int64{3}).Return(int64(0), nil),
	)

	err := checkReferences(testContext(), d.repos, ownerID, refs)
	assertResourceError(t, err, models.KindStatus, 3, ErrNotFound)
}

func TestCheckReferences_CountFailure(t *testing.T) {
	d := newTestDeps(t)

	d.tags.EXPECT().CountOwned(gomock.Any(), ownerID, []int64{1}).Return(int64(0), store.ErrExecutingQuery)

	err := checkReferences(testContext(), d.repos, ownerID, map[models.ResourceKind][]int64{models.KindTag: {1, 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestDistinct(t *testing.T) {
	assert.Nil(t, distinct(nil))
	assert.Equal(t, []int64{3, 1, 2}, distinct([]int64{3, 1, 3, 2, 1}))
}
