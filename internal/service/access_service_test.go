package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/columnamoda/store_bot/internal/model"
)

type fakeProfileSource struct {
	users map[int64]*model.User
	err   error

	flagsSet map[int64][2]bool
}

func (f *fakeProfileSource) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[telegramID], nil
}

func (f *fakeProfileSource) SetAdminFlags(_ context.Context, telegramID int64, isAdmin, isSuperAdmin bool) error {
	if f.flagsSet == nil {
		f.flagsSet = make(map[int64][2]bool)
	}
	f.flagsSet[telegramID] = [2]bool{isAdmin, isSuperAdmin}
	return nil
}

func TestIsAdminStaticLists(t *testing.T) {
	profiles := &fakeProfileSource{users: map[int64]*model.User{}}
	svc := NewAccessService(profiles, []int64{10}, []int64{20}, zap.NewNop())

	ctx := context.Background()

	assert.True(t, svc.IsAdmin(ctx, 10), "id from admin list")
	assert.True(t, svc.IsAdmin(ctx, 20), "id from super admin list")
	assert.False(t, svc.IsAdmin(ctx, 30), "unknown id without profile")
}

func TestIsAdminStoredFlags(t *testing.T) {
	profiles := &fakeProfileSource{users: map[int64]*model.User{
		1: {TelegramID: 1, IsAdmin: true},
		2: {TelegramID: 2, IsSuperAdmin: true},
		3: {TelegramID: 3},
	}}
	svc := NewAccessService(profiles, nil, nil, zap.NewNop())

	ctx := context.Background()

	assert.True(t, svc.IsAdmin(ctx, 1))
	assert.True(t, svc.IsAdmin(ctx, 2))
	assert.False(t, svc.IsAdmin(ctx, 3))
}

func TestIsAdminLookupErrorMeansDenied(t *testing.T) {
	profiles := &fakeProfileSource{err: errors.New("connection refused")}
	svc := NewAccessService(profiles, nil, nil, zap.NewNop())

	assert.False(t, svc.IsAdmin(context.Background(), 1))
}

func TestIsSuperAdminIgnoresPlainAdminFlag(t *testing.T) {
	profiles := &fakeProfileSource{users: map[int64]*model.User{
		1: {TelegramID: 1, IsAdmin: true},
		2: {TelegramID: 2, IsSuperAdmin: true},
	}}
	svc := NewAccessService(profiles, []int64{1}, nil, zap.NewNop())

	ctx := context.Background()

	// id 1 админ и по списку, и по флагу, но не суперадмин
	assert.True(t, svc.IsAdmin(ctx, 1))
	assert.False(t, svc.IsSuperAdmin(ctx, 1))

	assert.True(t, svc.IsSuperAdmin(ctx, 2))
}

func TestPromoteSuperAdmin(t *testing.T) {
	profiles := &fakeProfileSource{users: map[int64]*model.User{
		1: {TelegramID: 1, Name: "Juan"},
	}}
	svc := NewAccessService(profiles, nil, nil, zap.NewNop())

	ctx := context.Background()

	err := svc.PromoteSuperAdmin(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, [2]bool{true, true}, profiles.flagsSet[1])

	err = svc.PromoteSuperAdmin(ctx, 42)
	assert.Error(t, err, "promoting unknown user must fail")
}
