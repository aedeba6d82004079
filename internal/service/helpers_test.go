package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/mock"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

var (
	ownerID = uuid.MustParse("7b0c8a52-3f5e-4d0e-9a55-0f1c2e6d9b01")
	otherID = uuid.MustParse("c2d4e6f8-1a3b-4c5d-8e7f-90a1b2c3d4e5")

	owner     = models.Principal{ID: ownerID}
	intruder  = models.Principal{ID: otherID}
	superuser = models.Principal{ID: uuid.MustParse("00000000-0000-4000-8000-000000000001"), Superuser: true}

	testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

// testDeps bundles gomock store mocks behind one Repositories value that is
// handed out both as the pooled set and as the transaction-bound set.
type testDeps struct {
	storage    *mock.MockStorage
	users      *mock.MockUserRepository
	apps       *mock.MockApplicationRepository
	folders    *mock.MockFolderRepository
	tags       *mock.MockSelectRepository
	statuses   *mock.MockSelectRepository
	priorities *mock.MockSelectRepository
	repos      *store.Repositories
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		storage:    mock.NewMockStorage(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
		apps:       mock.NewMockApplicationRepository(ctrl),
		folders:    mock.NewMockFolderRepository(ctrl),
		tags:       mock.NewMockSelectRepository(ctrl),
		statuses:   mock.NewMockSelectRepository(ctrl),
		priorities: mock.NewMockSelectRepository(ctrl),
	}
	d.repos = &store.Repositories{
		Users:        d.users,
		Applications: d.apps,
		Folders:      d.folders,
		Tags:         d.tags,
		Statuses:     d.statuses,
		Priorities:   d.priorities,
	}
	return d
}

// expectTx makes the next WithinTx call run fn once against the mocks.
func (d *testDeps) expectTx() *gomock.Call {
	return d.storage.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, *store.Repositories) error) error {
			return fn(ctx, d.repos)
		})
}

func (d *testDeps) expectPooled() *gomock.Call {
	return d.storage.EXPECT().Repositories().Return(d.repos).AnyTimes()
}

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func ptr[T any](v T) *T { return &v }

func testApplication(id int64, userID uuid.UUID) models.Application {
	return models.Application{
		ID:        id,
		UserID:    userID,
		Title:     "Backend Engineer",
		Company:   "Acme",
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func testFolder(id int64, userID uuid.UUID) models.Folder {
	return models.Folder{ID: id, UserID: userID, Title: "Remote", CreatedAt: testNow, UpdatedAt: testNow}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
