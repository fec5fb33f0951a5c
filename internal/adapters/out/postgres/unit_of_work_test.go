package postgres_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/cancellationrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&cancellationrepo.CancellationDTO{},
	))
	return db
}

func newTestDriver(t *testing.T, userID string) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(userID, "Driver "+userID, userID+"@example.com", "")
	require.NoError(t, err)
	return d
}

func TestGormUnitOfWork_Commit_PersistsChanges(t *testing.T) {
	ctx := t.Context()
	db := newTestDB(t)
	factory := postgres.NewGormUnitOfWorkFactory(db)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	require.NoError(t, uow.DriverRepository().Upsert(ctx, newTestDriver(t, "driver-1")))
	require.NoError(t, uow.Commit(ctx))

	// Visible through a fresh repository outside the transaction.
	restored, err := driverrepo.NewGormDriverRepository(db).Get(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, "driver-1", restored.UserID())
}

func TestGormUnitOfWork_Rollback_DiscardsChanges(t *testing.T) {
	ctx := t.Context()
	db := newTestDB(t)
	factory := postgres.NewGormUnitOfWorkFactory(db)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	require.NoError(t, uow.DriverRepository().Upsert(ctx, newTestDriver(t, "driver-1")))
	require.NoError(t, uow.Rollback(ctx))

	_, err := driverrepo.NewGormDriverRepository(db).Get(ctx, "driver-1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormUnitOfWork_CommitWithoutBegin_ReturnsError(t *testing.T) {
	ctx := t.Context()
	factory := postgres.NewGormUnitOfWorkFactory(newTestDB(t))

	uow := factory.Create()
	require.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWork_RollbackAfterCommit_ReturnsError(t *testing.T) {
	ctx := t.Context()
	factory := postgres.NewGormUnitOfWorkFactory(newTestDB(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))

	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWork_BeginTwice_IsNoOp(t *testing.T) {
	ctx := t.Context()
	factory := postgres.NewGormUnitOfWorkFactory(newTestDB(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
}

func TestGormUnitOfWork_IsolatedInstances(t *testing.T) {
	ctx := t.Context()
	db := newTestDB(t)
	factory := postgres.NewGormUnitOfWorkFactory(db)

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))
	require.NoError(t, first.DriverRepository().Upsert(ctx, newTestDriver(t, "driver-1")))

	// A second unit of work gets its own transaction state.
	second := factory.Create()
	require.ErrorIs(t, second.Commit(ctx), gorm.ErrInvalidTransaction)

	require.NoError(t, first.Commit(ctx))
}
