package mocks

import (
	"context"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockPaymentSDK is a testify mock for application.PaymentSDK.
type MockPaymentSDK struct {
	mock.Mock
}

type MockPaymentSDK_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentSDK) EXPECT() *MockPaymentSDK_Expecter {
	return &MockPaymentSDK_Expecter{mock: &_m.Mock}
}

// ConfigureEnvironment provides a mock function with given fields: ctx, env
func (_m *MockPaymentSDK) ConfigureEnvironment(ctx context.Context, env domain.Environment) error {
	ret := _m.Called(ctx, env)

	if rf, ok := ret.Get(0).(func(context.Context, domain.Environment) error); ok {
		return rf(ctx, env)
	}
	return ret.Error(0)
}

type MockPaymentSDK_ConfigureEnvironment_Call struct {
	*mock.Call
}

func (_e *MockPaymentSDK_Expecter) ConfigureEnvironment(ctx interface{}, env interface{}) *MockPaymentSDK_ConfigureEnvironment_Call {
	return &MockPaymentSDK_ConfigureEnvironment_Call{Call: _e.mock.On("ConfigureEnvironment", ctx, env)}
}

func (_c *MockPaymentSDK_ConfigureEnvironment_Call) Return(_a0 error) *MockPaymentSDK_ConfigureEnvironment_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPaymentSDK_ConfigureEnvironment_Call) Once() *MockPaymentSDK_ConfigureEnvironment_Call {
	_c.Call.Once()
	return _c
}

// FetchSessionID provides a mock function with given fields: ctx
func (_m *MockPaymentSDK) FetchSessionID(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) (string, error)); ok {
		return rf(ctx)
	}
	return ret.String(0), ret.Error(1)
}

type MockPaymentSDK_FetchSessionID_Call struct {
	*mock.Call
}

func (_e *MockPaymentSDK_Expecter) FetchSessionID(ctx interface{}) *MockPaymentSDK_FetchSessionID_Call {
	return &MockPaymentSDK_FetchSessionID_Call{Call: _e.mock.On("FetchSessionID", ctx)}
}

func (_c *MockPaymentSDK_FetchSessionID_Call) Return(_a0 string, _a1 error) *MockPaymentSDK_FetchSessionID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentSDK_FetchSessionID_Call) Once() *MockPaymentSDK_FetchSessionID_Call {
	_c.Call.Once()
	return _c
}

// SubmitCardForTokenization provides a mock function with given fields: ctx, req, callback
func (_m *MockPaymentSDK) SubmitCardForTokenization(ctx context.Context, req application.TokenizationRequest, callback application.TokenCallback) {
	_m.Called(ctx, req, callback)
}

type MockPaymentSDK_SubmitCardForTokenization_Call struct {
	*mock.Call
}

func (_e *MockPaymentSDK_Expecter) SubmitCardForTokenization(ctx interface{}, req interface{}, callback interface{}) *MockPaymentSDK_SubmitCardForTokenization_Call {
	return &MockPaymentSDK_SubmitCardForTokenization_Call{Call: _e.mock.On("SubmitCardForTokenization", ctx, req, callback)}
}

// Run hands the registered callback to fn so tests can drive the outcome.
func (_c *MockPaymentSDK_SubmitCardForTokenization_Call) Run(fn func(ctx context.Context, req application.TokenizationRequest, callback application.TokenCallback)) *MockPaymentSDK_SubmitCardForTokenization_Call {
	_c.Call.Run(func(args mock.Arguments) {
		fn(args.Get(0).(context.Context), args.Get(1).(application.TokenizationRequest), args.Get(2).(application.TokenCallback))
	})
	return _c
}

func (_c *MockPaymentSDK_SubmitCardForTokenization_Call) Return() *MockPaymentSDK_SubmitCardForTokenization_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPaymentSDK_SubmitCardForTokenization_Call) Once() *MockPaymentSDK_SubmitCardForTokenization_Call {
	_c.Call.Once()
	return _c
}

// NewMockPaymentSDK creates a mock and registers AssertExpectations on cleanup.
func NewMockPaymentSDK(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentSDK {
	m := &MockPaymentSDK{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
