// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/user/usecase.Guard -o guard_mock.go -n GuardMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
)

// GuardMock implements mm_usecase.Guard
type GuardMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCheckIsAdmin          func(ctx context.Context) (err error)
	funcCheckIsAdminOrigin    string
	inspectFuncCheckIsAdmin   func(ctx context.Context)
	afterCheckIsAdminCounter  uint64
	beforeCheckIsAdminCounter uint64
	CheckIsAdminMock          mGuardMockCheckIsAdmin

	funcCheckSelf          func(ctx context.Context, targetUserID uuid.UUID) (err error)
	funcCheckSelfOrigin    string
	inspectFuncCheckSelf   func(ctx context.Context, targetUserID uuid.UUID)
	afterCheckSelfCounter  uint64
	beforeCheckSelfCounter uint64
	CheckSelfMock          mGuardMockCheckSelf

	funcCheckSelfOrAdmin          func(ctx context.Context, targetUserID uuid.UUID) (err error)
	funcCheckSelfOrAdminOrigin    string
	inspectFuncCheckSelfOrAdmin   func(ctx context.Context, targetUserID uuid.UUID)
	afterCheckSelfOrAdminCounter  uint64
	beforeCheckSelfOrAdminCounter uint64
	CheckSelfOrAdminMock          mGuardMockCheckSelfOrAdmin

	funcIsAdmin          func(ctx context.Context) (b1 bool, err error)
	funcIsAdminOrigin    string
	inspectFuncIsAdmin   func(ctx context.Context)
	afterIsAdminCounter  uint64
	beforeIsAdminCounter uint64
	IsAdminMock          mGuardMockIsAdmin
}

// NewGuardMock returns a mock for mm_usecase.Guard
func NewGuardMock(t minimock.Tester) *GuardMock {
	m := &GuardMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CheckIsAdminMock = mGuardMockCheckIsAdmin{mock: m}
	m.CheckIsAdminMock.callArgs = []*GuardMockCheckIsAdminParams{}

	m.CheckSelfMock = mGuardMockCheckSelf{mock: m}
	m.CheckSelfMock.callArgs = []*GuardMockCheckSelfParams{}

	m.CheckSelfOrAdminMock = mGuardMockCheckSelfOrAdmin{mock: m}
	m.CheckSelfOrAdminMock.callArgs = []*GuardMockCheckSelfOrAdminParams{}

	m.IsAdminMock = mGuardMockIsAdmin{mock: m}
	m.IsAdminMock.callArgs = []*GuardMockIsAdminParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mGuardMockCheckIsAdmin struct {
	optional           bool
	mock               *GuardMock
	defaultExpectation *GuardMockCheckIsAdminExpectation
	expectations       []*GuardMockCheckIsAdminExpectation

	callArgs []*GuardMockCheckIsAdminParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// GuardMockCheckIsAdminExpectation specifies expectation struct of the Guard.CheckIsAdmin
type GuardMockCheckIsAdminExpectation struct {
	mock               *GuardMock
	params             *GuardMockCheckIsAdminParams
	paramPtrs          *GuardMockCheckIsAdminParamPtrs
	expectationOrigins GuardMockCheckIsAdminExpectationOrigins
	results            *GuardMockCheckIsAdminResults
	returnOrigin       string
	Counter            uint64
}

// GuardMockCheckIsAdminParams contains parameters of the Guard.CheckIsAdmin
type GuardMockCheckIsAdminParams struct {
	ctx context.Context
}

// GuardMockCheckIsAdminParamPtrs contains pointers to parameters of the Guard.CheckIsAdmin
type GuardMockCheckIsAdminParamPtrs struct {
	ctx *context.Context
}

// GuardMockCheckIsAdminResults contains results of the Guard.CheckIsAdmin
type GuardMockCheckIsAdminResults struct {
	err error
}

// GuardMockCheckIsAdminOrigins contains origins of expectations of the Guard.CheckIsAdmin
type GuardMockCheckIsAdminExpectationOrigins struct {
	origin    string
	originCtx string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Optional() *mGuardMockCheckIsAdmin {
	mmCheckIsAdmin.optional = true
	return mmCheckIsAdmin
}

// Expect sets up expected params for Guard.CheckIsAdmin
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Expect(ctx context.Context) *mGuardMockCheckIsAdmin {
	if mmCheckIsAdmin.mock.funcCheckIsAdmin != nil {
		mmCheckIsAdmin.mock.t.Fatalf("GuardMock.CheckIsAdmin mock is already set by Set")
	}

	if mmCheckIsAdmin.defaultExpectation == nil {
		mmCheckIsAdmin.defaultExpectation = &GuardMockCheckIsAdminExpectation{}
	}

	if mmCheckIsAdmin.defaultExpectation.paramPtrs != nil {
		mmCheckIsAdmin.mock.t.Fatalf("GuardMock.CheckIsAdmin mock is already set by ExpectParams functions")
	}

	mmCheckIsAdmin.defaultExpectation.params = &GuardMockCheckIsAdminParams{ctx}
	mmCheckIsAdmin.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCheckIsAdmin.expectations {
		if minimock.Equal(e.params, mmCheckIsAdmin.defaultExpectation.params) {
			mmCheckIsAdmin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCheckIsAdmin.defaultExpectation.params)
		}
	}

	return mmCheckIsAdmin
}

// ExpectCtxParam1 sets up expected param ctx for Guard.CheckIsAdmin
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) ExpectCtxParam1(ctx context.Context) *mGuardMockCheckIsAdmin {
	if mmCheckIsAdmin.mock.funcCheckIsAdmin != nil {
		mmCheckIsAdmin.mock.t.Fatalf("GuardMock.CheckIsAdmin mock is already set by Set")
	}

	if mmCheckIsAdmin.defaultExpectation == nil {
		mmCheckIsAdmin.defaultExpectation = &GuardMockCheckIsAdminExpectation{}
	}

	if mmCheckIsAdmin.defaultExpectation.params != nil {
		mmCheckIsAdmin.mock.t.Fatalf("GuardMock.CheckIsAdmin mock is already set by Expect")
	}

	if mmCheckIsAdmin.defaultExpectation.paramPtrs == nil {
		mmCheckIsAdmin.defaultExpectation.paramPtrs = &GuardMockCheckIsAdminParamPtrs{}
	}
	mmCheckIsAdmin.defaultExpectation.paramPtrs.ctx = &ctx
	mmCheckIsAdmin.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmCheckIsAdmin
}

// Inspect accepts an inspector function that has same arguments as the Guard.CheckIsAdmin
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Inspect(f func(ctx context.Context)) *mGuardMockCheckIsAdmin {
	if mmCheckIsAdmin.mock.inspectFuncCheckIsAdmin != nil {
		mmCheckIsAdmin.mock.t.Fatalf("Inspect function is already set for GuardMock.CheckIsAdmin")
	}

	mmCheckIsAdmin.mock.inspectFuncCheckIsAdmin = f

	return mmCheckIsAdmin
}

// Return sets up results that will be returned by Guard.CheckIsAdmin
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Return(err error) *GuardMock {
	if mmCheckIsAdmin.mock.funcCheckIsAdmin != nil {
		mmCheckIsAdmin.mock.t.Fatalf("GuardMock.CheckIsAdmin mock is already set by Set")
	}

	if mmCheckIsAdmin.defaultExpectation == nil {
		mmCheckIsAdmin.defaultExpectation = &GuardMockCheckIsAdminExpectation{mock: mmCheckIsAdmin.mock}
	}
	mmCheckIsAdmin.defaultExpectation.results = &GuardMockCheckIsAdminResults{err}
	mmCheckIsAdmin.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCheckIsAdmin.mock
}

// Set uses given function f to mock the Guard.CheckIsAdmin method
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Set(f func(ctx context.Context) (err error)) *GuardMock {
	if mmCheckIsAdmin.defaultExpectation != nil {
		mmCheckIsAdmin.mock.t.Fatalf("Default expectation is already set for the Guard.CheckIsAdmin method")
	}

	if len(mmCheckIsAdmin.expectations) > 0 {
		mmCheckIsAdmin.mock.t.Fatalf("Some expectations are already set for the Guard.CheckIsAdmin method")
	}

	mmCheckIsAdmin.mock.funcCheckIsAdmin = f
	mmCheckIsAdmin.mock.funcCheckIsAdminOrigin = minimock.CallerInfo(1)
	return mmCheckIsAdmin.mock
}

// When sets expectation for the Guard.CheckIsAdmin which will trigger the result defined by the following
// Then helper
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) When(ctx context.Context) *GuardMockCheckIsAdminExpectation {
	if mmCheckIsAdmin.mock.funcCheckIsAdmin != nil {
		mmCheckIsAdmin.mock.t.Fatalf("GuardMock.CheckIsAdmin mock is already set by Set")
	}

	expectation := &GuardMockCheckIsAdminExpectation{
		mock:               mmCheckIsAdmin.mock,
		params:             &GuardMockCheckIsAdminParams{ctx},
		expectationOrigins: GuardMockCheckIsAdminExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCheckIsAdmin.expectations = append(mmCheckIsAdmin.expectations, expectation)
	return expectation
}

// Then sets up Guard.CheckIsAdmin return parameters for the expectation previously defined by the When method
func (e *GuardMockCheckIsAdminExpectation) Then(err error) *GuardMock {
	e.results = &GuardMockCheckIsAdminResults{err}
	return e.mock
}

// Times sets number of times Guard.CheckIsAdmin should be invoked
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Times(n uint64) *mGuardMockCheckIsAdmin {
	if n == 0 {
		mmCheckIsAdmin.mock.t.Fatalf("Times of GuardMock.CheckIsAdmin mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCheckIsAdmin.expectedInvocations, n)
	mmCheckIsAdmin.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCheckIsAdmin
}

func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) invocationsDone() bool {
	if len(mmCheckIsAdmin.expectations) == 0 && mmCheckIsAdmin.defaultExpectation == nil && mmCheckIsAdmin.mock.funcCheckIsAdmin == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCheckIsAdmin.mock.afterCheckIsAdminCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCheckIsAdmin.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// CheckIsAdmin implements mm_usecase.Guard
func (mmCheckIsAdmin *GuardMock) CheckIsAdmin(ctx context.Context) (err error) {
	mm_atomic.AddUint64(&mmCheckIsAdmin.beforeCheckIsAdminCounter, 1)
	defer mm_atomic.AddUint64(&mmCheckIsAdmin.afterCheckIsAdminCounter, 1)

	mmCheckIsAdmin.t.Helper()

	if mmCheckIsAdmin.inspectFuncCheckIsAdmin != nil {
		mmCheckIsAdmin.inspectFuncCheckIsAdmin(ctx)
	}

	mm_params := GuardMockCheckIsAdminParams{ctx}

	// Record call args
	mmCheckIsAdmin.CheckIsAdminMock.mutex.Lock()
	mmCheckIsAdmin.CheckIsAdminMock.callArgs = append(mmCheckIsAdmin.CheckIsAdminMock.callArgs, &mm_params)
	mmCheckIsAdmin.CheckIsAdminMock.mutex.Unlock()

	for _, e := range mmCheckIsAdmin.CheckIsAdminMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation.Counter, 1)
		mm_want := mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation.params
		mm_want_ptrs := mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation.paramPtrs

		mm_got := GuardMockCheckIsAdminParams{ctx}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCheckIsAdmin.t.Errorf("GuardMock.CheckIsAdmin got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCheckIsAdmin.t.Errorf("GuardMock.CheckIsAdmin got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCheckIsAdmin.CheckIsAdminMock.defaultExpectation.results
		if mm_results == nil {
			mmCheckIsAdmin.t.Fatal("No results are set for the GuardMock.CheckIsAdmin")
		}
		return (*mm_results).err
	}
	if mmCheckIsAdmin.funcCheckIsAdmin != nil {
		return mmCheckIsAdmin.funcCheckIsAdmin(ctx)
	}
	mmCheckIsAdmin.t.Fatalf("Unexpected call to GuardMock.CheckIsAdmin. %v", ctx)
	return
}

// CheckIsAdminAfterCounter returns a count of finished GuardMock.CheckIsAdmin invocations
func (mmCheckIsAdmin *GuardMock) CheckIsAdminAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckIsAdmin.afterCheckIsAdminCounter)
}

// CheckIsAdminBeforeCounter returns a count of GuardMock.CheckIsAdmin invocations
func (mmCheckIsAdmin *GuardMock) CheckIsAdminBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckIsAdmin.beforeCheckIsAdminCounter)
}

// Calls returns a list of arguments used in each call to GuardMock.CheckIsAdmin.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCheckIsAdmin *mGuardMockCheckIsAdmin) Calls() []*GuardMockCheckIsAdminParams {
	mmCheckIsAdmin.mutex.RLock()

	argCopy := make([]*GuardMockCheckIsAdminParams, len(mmCheckIsAdmin.callArgs))
	copy(argCopy, mmCheckIsAdmin.callArgs)

	mmCheckIsAdmin.mutex.RUnlock()

	return argCopy
}

// MinimockCheckIsAdminDone returns true if the count of the CheckIsAdmin invocations corresponds
// the number of defined expectations
func (m *GuardMock) MinimockCheckIsAdminDone() bool {
	if m.CheckIsAdminMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CheckIsAdminMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CheckIsAdminMock.invocationsDone()
}

// MinimockCheckIsAdminInspect logs each unmet expectation
func (m *GuardMock) MinimockCheckIsAdminInspect() {
	for _, e := range m.CheckIsAdminMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to GuardMock.CheckIsAdmin at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCheckIsAdminCounter := mm_atomic.LoadUint64(&m.afterCheckIsAdminCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CheckIsAdminMock.defaultExpectation != nil && afterCheckIsAdminCounter < 1 {
		if m.CheckIsAdminMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to GuardMock.CheckIsAdmin at\n%s", m.CheckIsAdminMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to GuardMock.CheckIsAdmin at\n%s with params: %#v", m.CheckIsAdminMock.defaultExpectation.expectationOrigins.origin, *m.CheckIsAdminMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCheckIsAdmin != nil && afterCheckIsAdminCounter < 1 {
		m.t.Errorf("Expected call to GuardMock.CheckIsAdmin at\n%s", m.funcCheckIsAdminOrigin)
	}

	if !m.CheckIsAdminMock.invocationsDone() && afterCheckIsAdminCounter > 0 {
		m.t.Errorf("Expected %d calls to GuardMock.CheckIsAdmin at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CheckIsAdminMock.expectedInvocations), m.CheckIsAdminMock.expectedInvocationsOrigin, afterCheckIsAdminCounter)
	}
}

type mGuardMockCheckSelf struct {
	optional           bool
	mock               *GuardMock
	defaultExpectation *GuardMockCheckSelfExpectation
	expectations       []*GuardMockCheckSelfExpectation

	callArgs []*GuardMockCheckSelfParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// GuardMockCheckSelfExpectation specifies expectation struct of the Guard.CheckSelf
type GuardMockCheckSelfExpectation struct {
	mock               *GuardMock
	params             *GuardMockCheckSelfParams
	paramPtrs          *GuardMockCheckSelfParamPtrs
	expectationOrigins GuardMockCheckSelfExpectationOrigins
	results            *GuardMockCheckSelfResults
	returnOrigin       string
	Counter            uint64
}

// GuardMockCheckSelfParams contains parameters of the Guard.CheckSelf
type GuardMockCheckSelfParams struct {
	ctx          context.Context
	targetUserID uuid.UUID
}

// GuardMockCheckSelfParamPtrs contains pointers to parameters of the Guard.CheckSelf
type GuardMockCheckSelfParamPtrs struct {
	ctx          *context.Context
	targetUserID *uuid.UUID
}

// GuardMockCheckSelfResults contains results of the Guard.CheckSelf
type GuardMockCheckSelfResults struct {
	err error
}

// GuardMockCheckSelfOrigins contains origins of expectations of the Guard.CheckSelf
type GuardMockCheckSelfExpectationOrigins struct {
	origin             string
	originCtx          string
	originTargetUserID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCheckSelf *mGuardMockCheckSelf) Optional() *mGuardMockCheckSelf {
	mmCheckSelf.optional = true
	return mmCheckSelf
}

// Expect sets up expected params for Guard.CheckSelf
func (mmCheckSelf *mGuardMockCheckSelf) Expect(ctx context.Context, targetUserID uuid.UUID) *mGuardMockCheckSelf {
	if mmCheckSelf.mock.funcCheckSelf != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Set")
	}

	if mmCheckSelf.defaultExpectation == nil {
		mmCheckSelf.defaultExpectation = &GuardMockCheckSelfExpectation{}
	}

	if mmCheckSelf.defaultExpectation.paramPtrs != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by ExpectParams functions")
	}

	mmCheckSelf.defaultExpectation.params = &GuardMockCheckSelfParams{ctx, targetUserID}
	mmCheckSelf.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCheckSelf.expectations {
		if minimock.Equal(e.params, mmCheckSelf.defaultExpectation.params) {
			mmCheckSelf.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCheckSelf.defaultExpectation.params)
		}
	}

	return mmCheckSelf
}

// ExpectCtxParam1 sets up expected param ctx for Guard.CheckSelf
func (mmCheckSelf *mGuardMockCheckSelf) ExpectCtxParam1(ctx context.Context) *mGuardMockCheckSelf {
	if mmCheckSelf.mock.funcCheckSelf != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Set")
	}

	if mmCheckSelf.defaultExpectation == nil {
		mmCheckSelf.defaultExpectation = &GuardMockCheckSelfExpectation{}
	}

	if mmCheckSelf.defaultExpectation.params != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Expect")
	}

	if mmCheckSelf.defaultExpectation.paramPtrs == nil {
		mmCheckSelf.defaultExpectation.paramPtrs = &GuardMockCheckSelfParamPtrs{}
	}
	mmCheckSelf.defaultExpectation.paramPtrs.ctx = &ctx
	mmCheckSelf.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmCheckSelf
}

// ExpectTargetUserIDParam2 sets up expected param targetUserID for Guard.CheckSelf
func (mmCheckSelf *mGuardMockCheckSelf) ExpectTargetUserIDParam2(targetUserID uuid.UUID) *mGuardMockCheckSelf {
	if mmCheckSelf.mock.funcCheckSelf != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Set")
	}

	if mmCheckSelf.defaultExpectation == nil {
		mmCheckSelf.defaultExpectation = &GuardMockCheckSelfExpectation{}
	}

	if mmCheckSelf.defaultExpectation.params != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Expect")
	}

	if mmCheckSelf.defaultExpectation.paramPtrs == nil {
		mmCheckSelf.defaultExpectation.paramPtrs = &GuardMockCheckSelfParamPtrs{}
	}
	mmCheckSelf.defaultExpectation.paramPtrs.targetUserID = &targetUserID
	mmCheckSelf.defaultExpectation.expectationOrigins.originTargetUserID = minimock.CallerInfo(1)

	return mmCheckSelf
}

// Inspect accepts an inspector function that has same arguments as the Guard.CheckSelf
func (mmCheckSelf *mGuardMockCheckSelf) Inspect(f func(ctx context.Context, targetUserID uuid.UUID)) *mGuardMockCheckSelf {
	if mmCheckSelf.mock.inspectFuncCheckSelf != nil {
		mmCheckSelf.mock.t.Fatalf("Inspect function is already set for GuardMock.CheckSelf")
	}

	mmCheckSelf.mock.inspectFuncCheckSelf = f

	return mmCheckSelf
}

// Return sets up results that will be returned by Guard.CheckSelf
func (mmCheckSelf *mGuardMockCheckSelf) Return(err error) *GuardMock {
	if mmCheckSelf.mock.funcCheckSelf != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Set")
	}

	if mmCheckSelf.defaultExpectation == nil {
		mmCheckSelf.defaultExpectation = &GuardMockCheckSelfExpectation{mock: mmCheckSelf.mock}
	}
	mmCheckSelf.defaultExpectation.results = &GuardMockCheckSelfResults{err}
	mmCheckSelf.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCheckSelf.mock
}

// Set uses given function f to mock the Guard.CheckSelf method
func (mmCheckSelf *mGuardMockCheckSelf) Set(f func(ctx context.Context, targetUserID uuid.UUID) (err error)) *GuardMock {
	if mmCheckSelf.defaultExpectation != nil {
		mmCheckSelf.mock.t.Fatalf("Default expectation is already set for the Guard.CheckSelf method")
	}

	if len(mmCheckSelf.expectations) > 0 {
		mmCheckSelf.mock.t.Fatalf("Some expectations are already set for the Guard.CheckSelf method")
	}

	mmCheckSelf.mock.funcCheckSelf = f
	mmCheckSelf.mock.funcCheckSelfOrigin = minimock.CallerInfo(1)
	return mmCheckSelf.mock
}

// When sets expectation for the Guard.CheckSelf which will trigger the result defined by the following
// Then helper
func (mmCheckSelf *mGuardMockCheckSelf) When(ctx context.Context, targetUserID uuid.UUID) *GuardMockCheckSelfExpectation {
	if mmCheckSelf.mock.funcCheckSelf != nil {
		mmCheckSelf.mock.t.Fatalf("GuardMock.CheckSelf mock is already set by Set")
	}

	expectation := &GuardMockCheckSelfExpectation{
		mock:               mmCheckSelf.mock,
		params:             &GuardMockCheckSelfParams{ctx, targetUserID},
		expectationOrigins: GuardMockCheckSelfExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCheckSelf.expectations = append(mmCheckSelf.expectations, expectation)
	return expectation
}

// Then sets up Guard.CheckSelf return parameters for the expectation previously defined by the When method
func (e *GuardMockCheckSelfExpectation) Then(err error) *GuardMock {
	e.results = &GuardMockCheckSelfResults{err}
	return e.mock
}

// Times sets number of times Guard.CheckSelf should be invoked
func (mmCheckSelf *mGuardMockCheckSelf) Times(n uint64) *mGuardMockCheckSelf {
	if n == 0 {
		mmCheckSelf.mock.t.Fatalf("Times of GuardMock.CheckSelf mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCheckSelf.expectedInvocations, n)
	mmCheckSelf.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCheckSelf
}

func (mmCheckSelf *mGuardMockCheckSelf) invocationsDone() bool {
	if len(mmCheckSelf.expectations) == 0 && mmCheckSelf.defaultExpectation == nil && mmCheckSelf.mock.funcCheckSelf == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCheckSelf.mock.afterCheckSelfCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCheckSelf.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// CheckSelf implements mm_usecase.Guard
func (mmCheckSelf *GuardMock) CheckSelf(ctx context.Context, targetUserID uuid.UUID) (err error) {
	mm_atomic.AddUint64(&mmCheckSelf.beforeCheckSelfCounter, 1)
	defer mm_atomic.AddUint64(&mmCheckSelf.afterCheckSelfCounter, 1)

	mmCheckSelf.t.Helper()

	if mmCheckSelf.inspectFuncCheckSelf != nil {
		mmCheckSelf.inspectFuncCheckSelf(ctx, targetUserID)
	}

	mm_params := GuardMockCheckSelfParams{ctx, targetUserID}

	// Record call args
	mmCheckSelf.CheckSelfMock.mutex.Lock()
	mmCheckSelf.CheckSelfMock.callArgs = append(mmCheckSelf.CheckSelfMock.callArgs, &mm_params)
	mmCheckSelf.CheckSelfMock.mutex.Unlock()

	for _, e := range mmCheckSelf.CheckSelfMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCheckSelf.CheckSelfMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCheckSelf.CheckSelfMock.defaultExpectation.Counter, 1)
		mm_want := mmCheckSelf.CheckSelfMock.defaultExpectation.params
		mm_want_ptrs := mmCheckSelf.CheckSelfMock.defaultExpectation.paramPtrs

		mm_got := GuardMockCheckSelfParams{ctx, targetUserID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCheckSelf.t.Errorf("GuardMock.CheckSelf got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckSelf.CheckSelfMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.targetUserID != nil && !minimock.Equal(*mm_want_ptrs.targetUserID, mm_got.targetUserID) {
				mmCheckSelf.t.Errorf("GuardMock.CheckSelf got unexpected parameter targetUserID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckSelf.CheckSelfMock.defaultExpectation.expectationOrigins.originTargetUserID, *mm_want_ptrs.targetUserID, mm_got.targetUserID, minimock.Diff(*mm_want_ptrs.targetUserID, mm_got.targetUserID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCheckSelf.t.Errorf("GuardMock.CheckSelf got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCheckSelf.CheckSelfMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCheckSelf.CheckSelfMock.defaultExpectation.results
		if mm_results == nil {
			mmCheckSelf.t.Fatal("No results are set for the GuardMock.CheckSelf")
		}
		return (*mm_results).err
	}
	if mmCheckSelf.funcCheckSelf != nil {
		return mmCheckSelf.funcCheckSelf(ctx, targetUserID)
	}
	mmCheckSelf.t.Fatalf("Unexpected call to GuardMock.CheckSelf. %v %v", ctx, targetUserID)
	return
}

// CheckSelfAfterCounter returns a count of finished GuardMock.CheckSelf invocations
func (mmCheckSelf *GuardMock) CheckSelfAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckSelf.afterCheckSelfCounter)
}

// CheckSelfBeforeCounter returns a count of GuardMock.CheckSelf invocations
func (mmCheckSelf *GuardMock) CheckSelfBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckSelf.beforeCheckSelfCounter)
}

// Calls returns a list of arguments used in each call to GuardMock.CheckSelf.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCheckSelf *mGuardMockCheckSelf) Calls() []*GuardMockCheckSelfParams {
	mmCheckSelf.mutex.RLock()

	argCopy := make([]*GuardMockCheckSelfParams, len(mmCheckSelf.callArgs))
	copy(argCopy, mmCheckSelf.callArgs)

	mmCheckSelf.mutex.RUnlock()

	return argCopy
}

// MinimockCheckSelfDone returns true if the count of the CheckSelf invocations corresponds
// the number of defined expectations
func (m *GuardMock) MinimockCheckSelfDone() bool {
	if m.CheckSelfMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CheckSelfMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CheckSelfMock.invocationsDone()
}

// MinimockCheckSelfInspect logs each unmet expectation
func (m *GuardMock) MinimockCheckSelfInspect() {
	for _, e := range m.CheckSelfMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to GuardMock.CheckSelf at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCheckSelfCounter := mm_atomic.LoadUint64(&m.afterCheckSelfCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CheckSelfMock.defaultExpectation != nil && afterCheckSelfCounter < 1 {
		if m.CheckSelfMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to GuardMock.CheckSelf at\n%s", m.CheckSelfMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to GuardMock.CheckSelf at\n%s with params: %#v", m.CheckSelfMock.defaultExpectation.expectationOrigins.origin, *m.CheckSelfMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCheckSelf != nil && afterCheckSelfCounter < 1 {
		m.t.Errorf("Expected call to GuardMock.CheckSelf at\n%s", m.funcCheckSelfOrigin)
	}

	if !m.CheckSelfMock.invocationsDone() && afterCheckSelfCounter > 0 {
		m.t.Errorf("Expected %d calls to GuardMock.CheckSelf at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CheckSelfMock.expectedInvocations), m.CheckSelfMock.expectedInvocationsOrigin, afterCheckSelfCounter)
	}
}

type mGuardMockCheckSelfOrAdmin struct {
	optional           bool
	mock               *GuardMock
	defaultExpectation *GuardMockCheckSelfOrAdminExpectation
	expectations       []*GuardMockCheckSelfOrAdminExpectation

	callArgs []*GuardMockCheckSelfOrAdminParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// GuardMockCheckSelfOrAdminExpectation specifies expectation struct of the Guard.CheckSelfOrAdmin
type GuardMockCheckSelfOrAdminExpectation struct {
	mock               *GuardMock
	params             *GuardMockCheckSelfOrAdminParams
	paramPtrs          *GuardMockCheckSelfOrAdminParamPtrs
	expectationOrigins GuardMockCheckSelfOrAdminExpectationOrigins
	results            *GuardMockCheckSelfOrAdminResults
	returnOrigin       string
	Counter            uint64
}

// GuardMockCheckSelfOrAdminParams contains parameters of the Guard.CheckSelfOrAdmin
type GuardMockCheckSelfOrAdminParams struct {
	ctx          context.Context
	targetUserID uuid.UUID
}

// GuardMockCheckSelfOrAdminParamPtrs contains pointers to parameters of the Guard.CheckSelfOrAdmin
type GuardMockCheckSelfOrAdminParamPtrs struct {
	ctx          *context.Context
	targetUserID *uuid.UUID
}

// GuardMockCheckSelfOrAdminResults contains results of the Guard.CheckSelfOrAdmin
type GuardMockCheckSelfOrAdminResults struct {
	err error
}

// GuardMockCheckSelfOrAdminOrigins contains origins of expectations of the Guard.CheckSelfOrAdmin
type GuardMockCheckSelfOrAdminExpectationOrigins struct {
	origin             string
	originCtx          string
	originTargetUserID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Optional() *mGuardMockCheckSelfOrAdmin {
	mmCheckSelfOrAdmin.optional = true
	return mmCheckSelfOrAdmin
}

// Expect sets up expected params for Guard.CheckSelfOrAdmin
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Expect(ctx context.Context, targetUserID uuid.UUID) *mGuardMockCheckSelfOrAdmin {
	if mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Set")
	}

	if mmCheckSelfOrAdmin.defaultExpectation == nil {
		mmCheckSelfOrAdmin.defaultExpectation = &GuardMockCheckSelfOrAdminExpectation{}
	}

	if mmCheckSelfOrAdmin.defaultExpectation.paramPtrs != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by ExpectParams functions")
	}

	mmCheckSelfOrAdmin.defaultExpectation.params = &GuardMockCheckSelfOrAdminParams{ctx, targetUserID}
	mmCheckSelfOrAdmin.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCheckSelfOrAdmin.expectations {
		if minimock.Equal(e.params, mmCheckSelfOrAdmin.defaultExpectation.params) {
			mmCheckSelfOrAdmin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCheckSelfOrAdmin.defaultExpectation.params)
		}
	}

	return mmCheckSelfOrAdmin
}

// ExpectCtxParam1 sets up expected param ctx for Guard.CheckSelfOrAdmin
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) ExpectCtxParam1(ctx context.Context) *mGuardMockCheckSelfOrAdmin {
	if mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Set")
	}

	if mmCheckSelfOrAdmin.defaultExpectation == nil {
		mmCheckSelfOrAdmin.defaultExpectation = &GuardMockCheckSelfOrAdminExpectation{}
	}

	if mmCheckSelfOrAdmin.defaultExpectation.params != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Expect")
	}

	if mmCheckSelfOrAdmin.defaultExpectation.paramPtrs == nil {
		mmCheckSelfOrAdmin.defaultExpectation.paramPtrs = &GuardMockCheckSelfOrAdminParamPtrs{}
	}
	mmCheckSelfOrAdmin.defaultExpectation.paramPtrs.ctx = &ctx
	mmCheckSelfOrAdmin.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmCheckSelfOrAdmin
}

// ExpectTargetUserIDParam2 sets up expected param targetUserID for Guard.CheckSelfOrAdmin
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) ExpectTargetUserIDParam2(targetUserID uuid.UUID) *mGuardMockCheckSelfOrAdmin {
	if mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Set")
	}

	if mmCheckSelfOrAdmin.defaultExpectation == nil {
		mmCheckSelfOrAdmin.defaultExpectation = &GuardMockCheckSelfOrAdminExpectation{}
	}

	if mmCheckSelfOrAdmin.defaultExpectation.params != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Expect")
	}

	if mmCheckSelfOrAdmin.defaultExpectation.paramPtrs == nil {
		mmCheckSelfOrAdmin.defaultExpectation.paramPtrs = &GuardMockCheckSelfOrAdminParamPtrs{}
	}
	mmCheckSelfOrAdmin.defaultExpectation.paramPtrs.targetUserID = &targetUserID
	mmCheckSelfOrAdmin.defaultExpectation.expectationOrigins.originTargetUserID = minimock.CallerInfo(1)

	return mmCheckSelfOrAdmin
}

// Inspect accepts an inspector function that has same arguments as the Guard.CheckSelfOrAdmin
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Inspect(f func(ctx context.Context, targetUserID uuid.UUID)) *mGuardMockCheckSelfOrAdmin {
	if mmCheckSelfOrAdmin.mock.inspectFuncCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("Inspect function is already set for GuardMock.CheckSelfOrAdmin")
	}

	mmCheckSelfOrAdmin.mock.inspectFuncCheckSelfOrAdmin = f

	return mmCheckSelfOrAdmin
}

// Return sets up results that will be returned by Guard.CheckSelfOrAdmin
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Return(err error) *GuardMock {
	if mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Set")
	}

	if mmCheckSelfOrAdmin.defaultExpectation == nil {
		mmCheckSelfOrAdmin.defaultExpectation = &GuardMockCheckSelfOrAdminExpectation{mock: mmCheckSelfOrAdmin.mock}
	}
	mmCheckSelfOrAdmin.defaultExpectation.results = &GuardMockCheckSelfOrAdminResults{err}
	mmCheckSelfOrAdmin.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCheckSelfOrAdmin.mock
}

// Set uses given function f to mock the Guard.CheckSelfOrAdmin method
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Set(f func(ctx context.Context, targetUserID uuid.UUID) (err error)) *GuardMock {
	if mmCheckSelfOrAdmin.defaultExpectation != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("Default expectation is already set for the Guard.CheckSelfOrAdmin method")
	}

	if len(mmCheckSelfOrAdmin.expectations) > 0 {
		mmCheckSelfOrAdmin.mock.t.Fatalf("Some expectations are already set for the Guard.CheckSelfOrAdmin method")
	}

	mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin = f
	mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdminOrigin = minimock.CallerInfo(1)
	return mmCheckSelfOrAdmin.mock
}

// When sets expectation for the Guard.CheckSelfOrAdmin which will trigger the result defined by the following
// Then helper
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) When(ctx context.Context, targetUserID uuid.UUID) *GuardMockCheckSelfOrAdminExpectation {
	if mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.mock.t.Fatalf("GuardMock.CheckSelfOrAdmin mock is already set by Set")
	}

	expectation := &GuardMockCheckSelfOrAdminExpectation{
		mock:               mmCheckSelfOrAdmin.mock,
		params:             &GuardMockCheckSelfOrAdminParams{ctx, targetUserID},
		expectationOrigins: GuardMockCheckSelfOrAdminExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCheckSelfOrAdmin.expectations = append(mmCheckSelfOrAdmin.expectations, expectation)
	return expectation
}

// Then sets up Guard.CheckSelfOrAdmin return parameters for the expectation previously defined by the When method
func (e *GuardMockCheckSelfOrAdminExpectation) Then(err error) *GuardMock {
	e.results = &GuardMockCheckSelfOrAdminResults{err}
	return e.mock
}

// Times sets number of times Guard.CheckSelfOrAdmin should be invoked
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Times(n uint64) *mGuardMockCheckSelfOrAdmin {
	if n == 0 {
		mmCheckSelfOrAdmin.mock.t.Fatalf("Times of GuardMock.CheckSelfOrAdmin mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCheckSelfOrAdmin.expectedInvocations, n)
	mmCheckSelfOrAdmin.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCheckSelfOrAdmin
}

func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) invocationsDone() bool {
	if len(mmCheckSelfOrAdmin.expectations) == 0 && mmCheckSelfOrAdmin.defaultExpectation == nil && mmCheckSelfOrAdmin.mock.funcCheckSelfOrAdmin == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCheckSelfOrAdmin.mock.afterCheckSelfOrAdminCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCheckSelfOrAdmin.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// CheckSelfOrAdmin implements mm_usecase.Guard
func (mmCheckSelfOrAdmin *GuardMock) CheckSelfOrAdmin(ctx context.Context, targetUserID uuid.UUID) (err error) {
	mm_atomic.AddUint64(&mmCheckSelfOrAdmin.beforeCheckSelfOrAdminCounter, 1)
	defer mm_atomic.AddUint64(&mmCheckSelfOrAdmin.afterCheckSelfOrAdminCounter, 1)

	mmCheckSelfOrAdmin.t.Helper()

	if mmCheckSelfOrAdmin.inspectFuncCheckSelfOrAdmin != nil {
		mmCheckSelfOrAdmin.inspectFuncCheckSelfOrAdmin(ctx, targetUserID)
	}

	mm_params := GuardMockCheckSelfOrAdminParams{ctx, targetUserID}

	// Record call args
	mmCheckSelfOrAdmin.CheckSelfOrAdminMock.mutex.Lock()
	mmCheckSelfOrAdmin.CheckSelfOrAdminMock.callArgs = append(mmCheckSelfOrAdmin.CheckSelfOrAdminMock.callArgs, &mm_params)
	mmCheckSelfOrAdmin.CheckSelfOrAdminMock.mutex.Unlock()

	for _, e := range mmCheckSelfOrAdmin.CheckSelfOrAdminMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.Counter, 1)
		mm_want := mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.params
		mm_want_ptrs := mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.paramPtrs

		mm_got := GuardMockCheckSelfOrAdminParams{ctx, targetUserID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCheckSelfOrAdmin.t.Errorf("GuardMock.CheckSelfOrAdmin got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.targetUserID != nil && !minimock.Equal(*mm_want_ptrs.targetUserID, mm_got.targetUserID) {
				mmCheckSelfOrAdmin.t.Errorf("GuardMock.CheckSelfOrAdmin got unexpected parameter targetUserID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.expectationOrigins.originTargetUserID, *mm_want_ptrs.targetUserID, mm_got.targetUserID, minimock.Diff(*mm_want_ptrs.targetUserID, mm_got.targetUserID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCheckSelfOrAdmin.t.Errorf("GuardMock.CheckSelfOrAdmin got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCheckSelfOrAdmin.CheckSelfOrAdminMock.defaultExpectation.results
		if mm_results == nil {
			mmCheckSelfOrAdmin.t.Fatal("No results are set for the GuardMock.CheckSelfOrAdmin")
		}
		return (*mm_results).err
	}
	if mmCheckSelfOrAdmin.funcCheckSelfOrAdmin != nil {
		return mmCheckSelfOrAdmin.funcCheckSelfOrAdmin(ctx, targetUserID)
	}
	mmCheckSelfOrAdmin.t.Fatalf("Unexpected call to GuardMock.CheckSelfOrAdmin. %v %v", ctx, targetUserID)
	return
}

// CheckSelfOrAdminAfterCounter returns a count of finished GuardMock.CheckSelfOrAdmin invocations
func (mmCheckSelfOrAdmin *GuardMock) CheckSelfOrAdminAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckSelfOrAdmin.afterCheckSelfOrAdminCounter)
}

// CheckSelfOrAdminBeforeCounter returns a count of GuardMock.CheckSelfOrAdmin invocations
func (mmCheckSelfOrAdmin *GuardMock) CheckSelfOrAdminBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckSelfOrAdmin.beforeCheckSelfOrAdminCounter)
}

// Calls returns a list of arguments used in each call to GuardMock.CheckSelfOrAdmin.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCheckSelfOrAdmin *mGuardMockCheckSelfOrAdmin) Calls() []*GuardMockCheckSelfOrAdminParams {
	mmCheckSelfOrAdmin.mutex.RLock()

	argCopy := make([]*GuardMockCheckSelfOrAdminParams, len(mmCheckSelfOrAdmin.callArgs))
	copy(argCopy, mmCheckSelfOrAdmin.callArgs)

	mmCheckSelfOrAdmin.mutex.RUnlock()

	return argCopy
}

// MinimockCheckSelfOrAdminDone returns true if the count of the CheckSelfOrAdmin invocations corresponds
// the number of defined expectations
func (m *GuardMock) MinimockCheckSelfOrAdminDone() bool {
	if m.CheckSelfOrAdminMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CheckSelfOrAdminMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CheckSelfOrAdminMock.invocationsDone()
}

// MinimockCheckSelfOrAdminInspect logs each unmet expectation
func (m *GuardMock) MinimockCheckSelfOrAdminInspect() {
	for _, e := range m.CheckSelfOrAdminMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to GuardMock.CheckSelfOrAdmin at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCheckSelfOrAdminCounter := mm_atomic.LoadUint64(&m.afterCheckSelfOrAdminCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CheckSelfOrAdminMock.defaultExpectation != nil && afterCheckSelfOrAdminCounter < 1 {
		if m.CheckSelfOrAdminMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to GuardMock.CheckSelfOrAdmin at\n%s", m.CheckSelfOrAdminMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to GuardMock.CheckSelfOrAdmin at\n%s with params: %#v", m.CheckSelfOrAdminMock.defaultExpectation.expectationOrigins.origin, *m.CheckSelfOrAdminMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCheckSelfOrAdmin != nil && afterCheckSelfOrAdminCounter < 1 {
		m.t.Errorf("Expected call to GuardMock.CheckSelfOrAdmin at\n%s", m.funcCheckSelfOrAdminOrigin)
	}

	if !m.CheckSelfOrAdminMock.invocationsDone() && afterCheckSelfOrAdminCounter > 0 {
		m.t.Errorf("Expected %d calls to GuardMock.CheckSelfOrAdmin at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CheckSelfOrAdminMock.expectedInvocations), m.CheckSelfOrAdminMock.expectedInvocationsOrigin, afterCheckSelfOrAdminCounter)
	}
}

type mGuardMockIsAdmin struct {
	optional           bool
	mock               *GuardMock
	defaultExpectation *GuardMockIsAdminExpectation
	expectations       []*GuardMockIsAdminExpectation

	callArgs []*GuardMockIsAdminParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// GuardMockIsAdminExpectation specifies expectation struct of the Guard.IsAdmin
type GuardMockIsAdminExpectation struct {
	mock               *GuardMock
	params             *GuardMockIsAdminParams
	paramPtrs          *GuardMockIsAdminParamPtrs
	expectationOrigins GuardMockIsAdminExpectationOrigins
	results            *GuardMockIsAdminResults
	returnOrigin       string
	Counter            uint64
}

// GuardMockIsAdminParams contains parameters of the Guard.IsAdmin
type GuardMockIsAdminParams struct {
	ctx context.Context
}

// GuardMockIsAdminParamPtrs contains pointers to parameters of the Guard.IsAdmin
type GuardMockIsAdminParamPtrs struct {
	ctx *context.Context
}

// GuardMockIsAdminResults contains results of the Guard.IsAdmin
type GuardMockIsAdminResults struct {
	b1  bool
	err error
}

// GuardMockIsAdminOrigins contains origins of expectations of the Guard.IsAdmin
type GuardMockIsAdminExpectationOrigins struct {
	origin    string
	originCtx string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmIsAdmin *mGuardMockIsAdmin) Optional() *mGuardMockIsAdmin {
	mmIsAdmin.optional = true
	return mmIsAdmin
}

// Expect sets up expected params for Guard.IsAdmin
func (mmIsAdmin *mGuardMockIsAdmin) Expect(ctx context.Context) *mGuardMockIsAdmin {
	if mmIsAdmin.mock.funcIsAdmin != nil {
		mmIsAdmin.mock.t.Fatalf("GuardMock.IsAdmin mock is already set by Set")
	}

	if mmIsAdmin.defaultExpectation == nil {
		mmIsAdmin.defaultExpectation = &GuardMockIsAdminExpectation{}
	}

	if mmIsAdmin.defaultExpectation.paramPtrs != nil {
		mmIsAdmin.mock.t.Fatalf("GuardMock.IsAdmin mock is already set by ExpectParams functions")
	}

	mmIsAdmin.defaultExpectation.params = &GuardMockIsAdminParams{ctx}
	mmIsAdmin.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmIsAdmin.expectations {
		if minimock.Equal(e.params, mmIsAdmin.defaultExpectation.params) {
			mmIsAdmin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmIsAdmin.defaultExpectation.params)
		}
	}

	return mmIsAdmin
}

// ExpectCtxParam1 sets up expected param ctx for Guard.IsAdmin
func (mmIsAdmin *mGuardMockIsAdmin) ExpectCtxParam1(ctx context.Context) *mGuardMockIsAdmin {
	if mmIsAdmin.mock.funcIsAdmin != nil {
		mmIsAdmin.mock.t.Fatalf("GuardMock.IsAdmin mock is already set by Set")
	}

	if mmIsAdmin.defaultExpectation == nil {
		mmIsAdmin.defaultExpectation = &GuardMockIsAdminExpectation{}
	}

	if mmIsAdmin.defaultExpectation.params != nil {
		mmIsAdmin.mock.t.Fatalf("GuardMock.IsAdmin mock is already set by Expect")
	}

	if mmIsAdmin.defaultExpectation.paramPtrs == nil {
		mmIsAdmin.defaultExpectation.paramPtrs = &GuardMockIsAdminParamPtrs{}
	}
	mmIsAdmin.defaultExpectation.paramPtrs.ctx = &ctx
	mmIsAdmin.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmIsAdmin
}

// Inspect accepts an inspector function that has same arguments as the Guard.IsAdmin
func (mmIsAdmin *mGuardMockIsAdmin) Inspect(f func(ctx context.Context)) *mGuardMockIsAdmin {
	if mmIsAdmin.mock.inspectFuncIsAdmin != nil {
		mmIsAdmin.mock.t.Fatalf("Inspect function is already set for GuardMock.IsAdmin")
	}

	mmIsAdmin.mock.inspectFuncIsAdmin = f

	return mmIsAdmin
}

// Return sets up results that will be returned by Guard.IsAdmin
func (mmIsAdmin *mGuardMockIsAdmin) Return(b1 bool, err error) *GuardMock {
	if mmIsAdmin.mock.funcIsAdmin != nil {
		mmIsAdmin.mock.t.Fatalf("GuardMock.IsAdmin mock is already set by Set")
	}

	if mmIsAdmin.defaultExpectation == nil {
		mmIsAdmin.defaultExpectation = &GuardMockIsAdminExpectation{mock: mmIsAdmin.mock}
	}
	mmIsAdmin.defaultExpectation.results = &GuardMockIsAdminResults{b1, err}
	mmIsAdmin.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmIsAdmin.mock
}

// Set uses given function f to mock the Guard.IsAdmin method
func (mmIsAdmin *mGuardMockIsAdmin) Set(f func(ctx context.Context) (b1 bool, err error)) *GuardMock {
	if mmIsAdmin.defaultExpectation != nil {
		mmIsAdmin.mock.t.Fatalf("Default expectation is already set for the Guard.IsAdmin method")
	}

	if len(mmIsAdmin.expectations) > 0 {
		mmIsAdmin.mock.t.Fatalf("Some expectations are already set for the Guard.IsAdmin method")
	}

	mmIsAdmin.mock.funcIsAdmin = f
	mmIsAdmin.mock.funcIsAdminOrigin = minimock.CallerInfo(1)
	return mmIsAdmin.mock
}

// When sets expectation for the Guard.IsAdmin which will trigger the result defined by the following
// Then helper
func (mmIsAdmin *mGuardMockIsAdmin) When(ctx context.Context) *GuardMockIsAdminExpectation {
	if mmIsAdmin.mock.funcIsAdmin != nil {
		mmIsAdmin.mock.t.Fatalf("GuardMock.IsAdmin mock is already set by Set")
	}

	expectation := &GuardMockIsAdminExpectation{
		mock:               mmIsAdmin.mock,
		params:             &GuardMockIsAdminParams{ctx},
		expectationOrigins: GuardMockIsAdminExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmIsAdmin.expectations = append(mmIsAdmin.expectations, expectation)
	return expectation
}

// Then sets up Guard.IsAdmin return parameters for the expectation previously defined by the When method
func (e *GuardMockIsAdminExpectation) Then(b1 bool, err error) *GuardMock {
	e.results = &GuardMockIsAdminResults{b1, err}
	return e.mock
}

// Times sets number of times Guard.IsAdmin should be invoked
func (mmIsAdmin *mGuardMockIsAdmin) Times(n uint64) *mGuardMockIsAdmin {
	if n == 0 {
		mmIsAdmin.mock.t.Fatalf("Times of GuardMock.IsAdmin mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmIsAdmin.expectedInvocations, n)
	mmIsAdmin.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmIsAdmin
}

func (mmIsAdmin *mGuardMockIsAdmin) invocationsDone() bool {
	if len(mmIsAdmin.expectations) == 0 && mmIsAdmin.defaultExpectation == nil && mmIsAdmin.mock.funcIsAdmin == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmIsAdmin.mock.afterIsAdminCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmIsAdmin.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// IsAdmin implements mm_usecase.Guard
func (mmIsAdmin *GuardMock) IsAdmin(ctx context.Context) (b1 bool, err error) {
	mm_atomic.AddUint64(&mmIsAdmin.beforeIsAdminCounter, 1)
	defer mm_atomic.AddUint64(&mmIsAdmin.afterIsAdminCounter, 1)

	mmIsAdmin.t.Helper()

	if mmIsAdmin.inspectFuncIsAdmin != nil {
		mmIsAdmin.inspectFuncIsAdmin(ctx)
	}

	mm_params := GuardMockIsAdminParams{ctx}

	// Record call args
	mmIsAdmin.IsAdminMock.mutex.Lock()
	mmIsAdmin.IsAdminMock.callArgs = append(mmIsAdmin.IsAdminMock.callArgs, &mm_params)
	mmIsAdmin.IsAdminMock.mutex.Unlock()

	for _, e := range mmIsAdmin.IsAdminMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.b1, e.results.err
		}
	}

	if mmIsAdmin.IsAdminMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmIsAdmin.IsAdminMock.defaultExpectation.Counter, 1)
		mm_want := mmIsAdmin.IsAdminMock.defaultExpectation.params
		mm_want_ptrs := mmIsAdmin.IsAdminMock.defaultExpectation.paramPtrs

		mm_got := GuardMockIsAdminParams{ctx}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmIsAdmin.t.Errorf("GuardMock.IsAdmin got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmIsAdmin.IsAdminMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmIsAdmin.t.Errorf("GuardMock.IsAdmin got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmIsAdmin.IsAdminMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmIsAdmin.IsAdminMock.defaultExpectation.results
		if mm_results == nil {
			mmIsAdmin.t.Fatal("No results are set for the GuardMock.IsAdmin")
		}
		return (*mm_results).b1, (*mm_results).err
	}
	if mmIsAdmin.funcIsAdmin != nil {
		return mmIsAdmin.funcIsAdmin(ctx)
	}
	mmIsAdmin.t.Fatalf("Unexpected call to GuardMock.IsAdmin. %v", ctx)
	return
}

// IsAdminAfterCounter returns a count of finished GuardMock.IsAdmin invocations
func (mmIsAdmin *GuardMock) IsAdminAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmIsAdmin.afterIsAdminCounter)
}

// IsAdminBeforeCounter returns a count of GuardMock.IsAdmin invocations
func (mmIsAdmin *GuardMock) IsAdminBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmIsAdmin.beforeIsAdminCounter)
}

// Calls returns a list of arguments used in each call to GuardMock.IsAdmin.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmIsAdmin *mGuardMockIsAdmin) Calls() []*GuardMockIsAdminParams {
	mmIsAdmin.mutex.RLock()

	argCopy := make([]*GuardMockIsAdminParams, len(mmIsAdmin.callArgs))
	copy(argCopy, mmIsAdmin.callArgs)

	mmIsAdmin.mutex.RUnlock()

	return argCopy
}

// MinimockIsAdminDone returns true if the count of the IsAdmin invocations corresponds
// the number of defined expectations
func (m *GuardMock) MinimockIsAdminDone() bool {
	if m.IsAdminMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.IsAdminMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.IsAdminMock.invocationsDone()
}

// MinimockIsAdminInspect logs each unmet expectation
func (m *GuardMock) MinimockIsAdminInspect() {
	for _, e := range m.IsAdminMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to GuardMock.IsAdmin at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterIsAdminCounter := mm_atomic.LoadUint64(&m.afterIsAdminCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.IsAdminMock.defaultExpectation != nil && afterIsAdminCounter < 1 {
		if m.IsAdminMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to GuardMock.IsAdmin at\n%s", m.IsAdminMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to GuardMock.IsAdmin at\n%s with params: %#v", m.IsAdminMock.defaultExpectation.expectationOrigins.origin, *m.IsAdminMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcIsAdmin != nil && afterIsAdminCounter < 1 {
		m.t.Errorf("Expected call to GuardMock.IsAdmin at\n%s", m.funcIsAdminOrigin)
	}

	if !m.IsAdminMock.invocationsDone() && afterIsAdminCounter > 0 {
		m.t.Errorf("Expected %d calls to GuardMock.IsAdmin at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.IsAdminMock.expectedInvocations), m.IsAdminMock.expectedInvocationsOrigin, afterIsAdminCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *GuardMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCheckIsAdminInspect()

			m.MinimockCheckSelfInspect()

			m.MinimockCheckSelfOrAdminInspect()

			m.MinimockIsAdminInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *GuardMock) MinimockWait(timeout mm_time.Duration) {
	timeoutCh := mm_time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-mm_time.After(10 * mm_time.Millisecond):
		}
	}
}

func (m *GuardMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCheckIsAdminDone() &&
		m.MinimockCheckSelfDone() &&
		m.MinimockCheckSelfOrAdminDone() &&
		m.MinimockIsAdminDone()
}
