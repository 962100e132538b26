package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type mockGlobalPolicyRepo struct {
	mock.Mock
}

func (m *mockGlobalPolicyRepo) Get(ctx context.Context) (*policy.GlobalPolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policy.GlobalPolicy), args.Error(1)
}

func (m *mockGlobalPolicyRepo) Save(ctx context.Context, global *policy.GlobalPolicy) error {
	args := m.Called(ctx, global)
	return args.Error(0)
}

type mockOverrideRepo struct {
	mock.Mock
}

func (m *mockOverrideRepo) GetByPartnerID(ctx context.Context, partnerID uint) (*policy.PolicyOverride, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policy.PolicyOverride), args.Error(1)
}

func (m *mockOverrideRepo) Save(ctx context.Context, override *policy.PolicyOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *mockOverrideRepo) DeleteByPartnerID(ctx context.Context, partnerID uint) error {
	args := m.Called(ctx, partnerID)
	return args.Error(0)
}

type mockPolicyCache struct {
	mock.Mock
}

func (m *mockPolicyCache) Get(ctx context.Context, partnerID uint) (policy.EffectivePolicy, bool, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).(policy.EffectivePolicy), args.Bool(1), args.Error(2)
}

func (m *mockPolicyCache) Set(ctx context.Context, partnerID uint, ep policy.EffectivePolicy) error {
	args := m.Called(ctx, partnerID, ep)
	return args.Error(0)
}

func (m *mockPolicyCache) Invalidate(ctx context.Context, partnerID uint) error {
	args := m.Called(ctx, partnerID)
	return args.Error(0)
}

func (m *mockPolicyCache) InvalidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
