package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type mockSnapshotRepo struct {
	mock.Mock
}

func (m *mockSnapshotRepo) LoadRouteSnapshot(ctx context.Context) (*billing.RouteSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.RouteSnapshot), args.Error(1)
}

type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) Save(ctx context.Context, plan *billing.PricingPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepo) FindByID(ctx context.Context, planID uint) (*billing.PricingPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PricingPlan), args.Error(1)
}

func (m *mockPlanRepo) FindBySID(ctx context.Context, sid string) (*billing.PricingPlan, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PricingPlan), args.Error(1)
}

func (m *mockPlanRepo) FindBySlug(ctx context.Context, slug string) (*billing.PricingPlan, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PricingPlan), args.Error(1)
}

func (m *mockPlanRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*billing.PricingPlan, int64, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*billing.PricingPlan), args.Get(1).(int64), args.Error(2)
}

func (m *mockPlanRepo) Update(ctx context.Context, plan *billing.PricingPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepo) DeleteCascade(ctx context.Context, planID uint) (int64, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(int64), args.Error(1)
}

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) Save(ctx context.Context, provider *billing.PSPProvider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *mockProviderRepo) FindByID(ctx context.Context, providerID uint) (*billing.PSPProvider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PSPProvider), args.Error(1)
}

func (m *mockProviderRepo) FindBySID(ctx context.Context, sid string) (*billing.PSPProvider, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PSPProvider), args.Error(1)
}

func (m *mockProviderRepo) FindBySlug(ctx context.Context, slug string) (*billing.PSPProvider, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PSPProvider), args.Error(1)
}

func (m *mockProviderRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*billing.PSPProvider, int64, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*billing.PSPProvider), args.Get(1).(int64), args.Error(2)
}

func (m *mockProviderRepo) Update(ctx context.Context, provider *billing.PSPProvider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *mockProviderRepo) Delete(ctx context.Context, providerID uint) error {
	return m.Called(ctx, providerID).Error(0)
}

type mockRuleRepo struct {
	mock.Mock
}

func (m *mockRuleRepo) Save(ctx context.Context, rule *billing.AvailabilityRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *mockRuleRepo) FindByID(ctx context.Context, ruleID uint) (*billing.AvailabilityRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.AvailabilityRule), args.Error(1)
}

func (m *mockRuleRepo) FindBySID(ctx context.Context, sid string) (*billing.AvailabilityRule, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.AvailabilityRule), args.Error(1)
}

func (m *mockRuleRepo) List(ctx context.Context, enabledOnly bool, offset, limit int) ([]*billing.AvailabilityRule, int64, error) {
	args := m.Called(ctx, enabledOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*billing.AvailabilityRule), args.Get(1).(int64), args.Error(2)
}

func (m *mockRuleRepo) Update(ctx context.Context, rule *billing.AvailabilityRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *mockRuleRepo) Delete(ctx context.Context, ruleID uint) error {
	return m.Called(ctx, ruleID).Error(0)
}

type mockCredentialRepo struct {
	mock.Mock
}

func (m *mockCredentialRepo) Save(ctx context.Context, credential *billing.Credential) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *mockCredentialRepo) FindByID(ctx context.Context, credentialID uint) (*billing.Credential, error) {
	args := m.Called(ctx, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Credential), args.Error(1)
}

func (m *mockCredentialRepo) FindBySID(ctx context.Context, sid string) (*billing.Credential, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Credential), args.Error(1)
}

func (m *mockCredentialRepo) ListByProviderID(ctx context.Context, providerID uint) ([]*billing.Credential, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Credential), args.Error(1)
}

func (m *mockCredentialRepo) List(ctx context.Context, offset, limit int) ([]*billing.Credential, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*billing.Credential), args.Get(1).(int64), args.Error(2)
}

func (m *mockCredentialRepo) Update(ctx context.Context, credential *billing.Credential) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *mockCredentialRepo) Delete(ctx context.Context, credentialID uint) error {
	return m.Called(ctx, credentialID).Error(0)
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
