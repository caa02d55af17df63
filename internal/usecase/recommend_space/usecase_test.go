package recommend_space

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/recommend"
)

type fakeSpaceRepo struct {
	spaces []*domain.Space
	err    error
}

func (f *fakeSpaceRepo) ListActive(ctx context.Context) ([]*domain.Space, error) {
	return f.spaces, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSpaces() []*domain.Space {
	return []*domain.Space{
		{ID: 1, Name: "Seminar Hall A", Type: domain.TypeHall, Capacity: 30, IsActive: true},
		{ID: 2, Name: "Main Auditorium", Type: domain.TypeHall, Capacity: 50, IsActive: true},
		{ID: 3, Name: "Conference Room", Type: domain.TypeClassroom, Capacity: 45, IsActive: true},
	}
}

func TestExecute_BestFit(t *testing.T) {
	uc := NewUseCase(&fakeSpaceRepo{spaces: testSpaces()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequiredCountRaw: "40"})
	require.NoError(t, err)

	assert.Equal(t, recommend.KindBestFit, resp.Kind)
	require.NotNil(t, resp.Best)
	assert.Equal(t, int64(3), resp.Best.SpaceID)
	assert.Equal(t, 5, resp.Best.Surplus)
	assert.True(t, resp.Form.SubmitEnabled)
	require.Len(t, resp.Form.Options, 3)
	assert.True(t, resp.Form.Options[0].Disabled, "30-seat hall must be disabled at count 40")
	assert.True(t, resp.Form.Options[2].Selected)
}

func TestExecute_NonNumericInputIsEmpty(t *testing.T) {
	uc := NewUseCase(&fakeSpaceRepo{spaces: testSpaces()}, nopLogger{})

	for _, raw := range []string{"", "forty", "-2"} {
		resp, err := uc.Execute(context.Background(), &Request{RequiredCountRaw: raw})
		require.NoError(t, err)

		assert.Equal(t, recommend.KindEmpty, resp.Kind, "input %q", raw)
		assert.Nil(t, resp.Best)
		assert.True(t, resp.Form.SubmitEnabled)
		for _, opt := range resp.Form.Options {
			assert.False(t, opt.Disabled, "input %q", raw)
		}
	}
}

func TestExecute_NoFitGatesSubmit(t *testing.T) {
	uc := NewUseCase(&fakeSpaceRepo{spaces: testSpaces()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequiredCountRaw: "500"})
	require.NoError(t, err)

	assert.Equal(t, recommend.KindNoFit, resp.Kind)
	assert.Nil(t, resp.Best)
	assert.False(t, resp.Form.SubmitEnabled)
	assert.Equal(t, 500, resp.RequiredCount)
}

func TestExecute_NoSpacesDegradesToNoFit(t *testing.T) {
	uc := NewUseCase(&fakeSpaceRepo{spaces: nil}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequiredCountRaw: "10"})
	require.NoError(t, err)

	assert.Equal(t, recommend.KindNoFit, resp.Kind)
}

func TestExecute_RepoErrorWrapsInternal(t *testing.T) {
	uc := NewUseCase(&fakeSpaceRepo{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequiredCountRaw: "10"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
