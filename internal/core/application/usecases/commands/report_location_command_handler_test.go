package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"
)

func TestReportLocationCommandHandler_Handle_RegistersUnknownDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReportLocationCommand(
		"driver-1", "Bob Jones", "bob@example.com", "+15550101", 40.7128, -74.0060)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, "driver-1").
			Return(nil, errs.NewObjectNotFoundError("userId", "driver-1")).Once(),
		driverRepo.On("Upsert", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	reported, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "driver-1", reported.UserID())
	assert.Equal(t, "Bob Jones", reported.Name())
	assert.Equal(t, "bob@example.com", reported.Email())
	assert.True(t, reported.IsAvailable())
	assert.True(t, reported.HasLocation())
	assert.InDelta(t, 40.7128, reported.Location().Latitude(), 1e-9)

	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportLocationCommandHandler_Handle_UpdatesKnownDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReportLocationCommand(
		"driver-1", "Robert Jones", "", "", 41.0, -74.5)
	require.NoError(t, err)

	existing := availableDriver(t, "driver-1", 0)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, "driver-1").Return(existing, nil).Once(),
		driverRepo.On("Upsert", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	reported, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 41.0, reported.Location().Latitude(), 1e-9)
	assert.InDelta(t, -74.5, reported.Location().Longitude(), 1e-9)

	// Name was refreshed from the claims; empty email and phone left the
	// stored values untouched.
	assert.Equal(t, "Robert Jones", reported.Name())
	assert.Equal(t, "driver-1@example.com", reported.Email())
	assert.Equal(t, "+15550100", reported.Phone())

	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportLocationCommandHandler_Handle_PreservesAvailabilityOfBusyDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReportLocationCommand("driver-1", "", "", "", 40.5, -74.0)
	require.NoError(t, err)

	existing := availableDriver(t, "driver-1", 0)
	existing.MarkBusy()

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, "driver-1").Return(existing, nil).Once(),
		driverRepo.On("Upsert", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	reported, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, reported.IsAvailable())
	assert.Equal(t, 1, reported.CurrentOrders())
}

func TestReportLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReportLocationCommand{} // not constructed properly

	factory := new(MockDriverUoWFactory)

	handler := commands.NewReportLocationCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrReportLocationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReportLocationCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReportLocationCommand("driver-1", "", "", "", 40.5, -74.0)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, "driver-1").Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	driverRepo.AssertNotCalled(t, "Upsert")
}

func TestReportLocationCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReportLocationCommand("driver-1", "", "", "", 40.5, -74.0)
	require.NoError(t, err)

	existing := availableDriver(t, "driver-1", 0)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, "driver-1").Return(existing, nil).Once(),
		driverRepo.On("Upsert", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit failed")
}

func TestNewReportLocationCommand_Validation(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{"empty userID", "", 40.0, -74.0, commands.ErrUserIDIsRequired},
		{"latitude out of range", "driver-1", 91.0, -74.0, errs.ErrValueIsOutOfRange},
		{"longitude out of range", "driver-1", 40.0, -181.0, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewReportLocationCommand(tt.userID, "", "", "", tt.latitude, tt.longitude)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
