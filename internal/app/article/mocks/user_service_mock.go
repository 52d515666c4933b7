// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article.UserService -o user_service_mock.go -n UserServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
)

// UserServiceMock implements mm_article.UserService
type UserServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcRequireRole          func(ctx context.Context, id uuid.UUID, role user.Role) (err error)
	funcRequireRoleOrigin    string
	inspectFuncRequireRole   func(ctx context.Context, id uuid.UUID, role user.Role)
	afterRequireRoleCounter  uint64
	beforeRequireRoleCounter uint64
	RequireRoleMock          mUserServiceMockRequireRole
}

// NewUserServiceMock returns a mock for mm_article.UserService
func NewUserServiceMock(t minimock.Tester) *UserServiceMock {
	m := &UserServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.RequireRoleMock = mUserServiceMockRequireRole{mock: m}
	m.RequireRoleMock.callArgs = []*UserServiceMockRequireRoleParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mUserServiceMockRequireRole struct {
	optional           bool
	mock               *UserServiceMock
	defaultExpectation *UserServiceMockRequireRoleExpectation
	expectations       []*UserServiceMockRequireRoleExpectation

	callArgs []*UserServiceMockRequireRoleParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// UserServiceMockRequireRoleExpectation specifies expectation struct of the UserService.RequireRole
type UserServiceMockRequireRoleExpectation struct {
	mock               *UserServiceMock
	params             *UserServiceMockRequireRoleParams
	paramPtrs          *UserServiceMockRequireRoleParamPtrs
	expectationOrigins UserServiceMockRequireRoleExpectationOrigins
	results            *UserServiceMockRequireRoleResults
	returnOrigin       string
	Counter            uint64
}

// UserServiceMockRequireRoleParams contains parameters of the UserService.RequireRole
type UserServiceMockRequireRoleParams struct {
	ctx  context.Context
	id   uuid.UUID
	role user.Role
}

// UserServiceMockRequireRoleParamPtrs contains pointers to parameters of the UserService.RequireRole
type UserServiceMockRequireRoleParamPtrs struct {
	ctx  *context.Context
	id   *uuid.UUID
	role *user.Role
}

// UserServiceMockRequireRoleResults contains results of the UserService.RequireRole
type UserServiceMockRequireRoleResults struct {
	err error
}

// UserServiceMockRequireRoleOrigins contains origins of expectations of the UserService.RequireRole
type UserServiceMockRequireRoleExpectationOrigins struct {
	origin     string
	originCtx  string
	originId   string
	originRole string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmRequireRole *mUserServiceMockRequireRole) Optional() *mUserServiceMockRequireRole {
	mmRequireRole.optional = true
	return mmRequireRole
}

// Expect sets up expected params for UserService.RequireRole
func (mmRequireRole *mUserServiceMockRequireRole) Expect(ctx context.Context, id uuid.UUID, role user.Role) *mUserServiceMockRequireRole {
	if mmRequireRole.mock.funcRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Set")
	}

	if mmRequireRole.defaultExpectation == nil {
		mmRequireRole.defaultExpectation = &UserServiceMockRequireRoleExpectation{}
	}

	if mmRequireRole.defaultExpectation.paramPtrs != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by ExpectParams functions")
	}

	mmRequireRole.defaultExpectation.params = &UserServiceMockRequireRoleParams{ctx, id, role}
	mmRequireRole.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmRequireRole.expectations {
		if minimock.Equal(e.params, mmRequireRole.defaultExpectation.params) {
			mmRequireRole.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRequireRole.defaultExpectation.params)
		}
	}

	return mmRequireRole
}

// ExpectCtxParam1 sets up expected param ctx for UserService.RequireRole
func (mmRequireRole *mUserServiceMockRequireRole) ExpectCtxParam1(ctx context.Context) *mUserServiceMockRequireRole {
	if mmRequireRole.mock.funcRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Set")
	}

	if mmRequireRole.defaultExpectation == nil {
		mmRequireRole.defaultExpectation = &UserServiceMockRequireRoleExpectation{}
	}

	if mmRequireRole.defaultExpectation.params != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Expect")
	}

	if mmRequireRole.defaultExpectation.paramPtrs == nil {
		mmRequireRole.defaultExpectation.paramPtrs = &UserServiceMockRequireRoleParamPtrs{}
	}
	mmRequireRole.defaultExpectation.paramPtrs.ctx = &ctx
	mmRequireRole.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmRequireRole
}

// ExpectIdParam2 sets up expected param id for UserService.RequireRole
func (mmRequireRole *mUserServiceMockRequireRole) ExpectIdParam2(id uuid.UUID) *mUserServiceMockRequireRole {
	if mmRequireRole.mock.funcRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Set")
	}

	if mmRequireRole.defaultExpectation == nil {
		mmRequireRole.defaultExpectation = &UserServiceMockRequireRoleExpectation{}
	}

	if mmRequireRole.defaultExpectation.params != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Expect")
	}

	if mmRequireRole.defaultExpectation.paramPtrs == nil {
		mmRequireRole.defaultExpectation.paramPtrs = &UserServiceMockRequireRoleParamPtrs{}
	}
	mmRequireRole.defaultExpectation.paramPtrs.id = &id
	mmRequireRole.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmRequireRole
}

// ExpectRoleParam3 sets up expected param role for UserService.RequireRole
func (mmRequireRole *mUserServiceMockRequireRole) ExpectRoleParam3(role user.Role) *mUserServiceMockRequireRole {
	if mmRequireRole.mock.funcRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Set")
	}

	if mmRequireRole.defaultExpectation == nil {
		mmRequireRole.defaultExpectation = &UserServiceMockRequireRoleExpectation{}
	}

	if mmRequireRole.defaultExpectation.params != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Expect")
	}

	if mmRequireRole.defaultExpectation.paramPtrs == nil {
		mmRequireRole.defaultExpectation.paramPtrs = &UserServiceMockRequireRoleParamPtrs{}
	}
	mmRequireRole.defaultExpectation.paramPtrs.role = &role
	mmRequireRole.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmRequireRole
}

// Inspect accepts an inspector function that has same arguments as the UserService.RequireRole
func (mmRequireRole *mUserServiceMockRequireRole) Inspect(f func(ctx context.Context, id uuid.UUID, role user.Role)) *mUserServiceMockRequireRole {
	if mmRequireRole.mock.inspectFuncRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("Inspect function is already set for UserServiceMock.RequireRole")
	}

	mmRequireRole.mock.inspectFuncRequireRole = f

	return mmRequireRole
}

// Return sets up results that will be returned by UserService.RequireRole
func (mmRequireRole *mUserServiceMockRequireRole) Return(err error) *UserServiceMock {
	if mmRequireRole.mock.funcRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Set")
	}

	if mmRequireRole.defaultExpectation == nil {
		mmRequireRole.defaultExpectation = &UserServiceMockRequireRoleExpectation{mock: mmRequireRole.mock}
	}
	mmRequireRole.defaultExpectation.results = &UserServiceMockRequireRoleResults{err}
	mmRequireRole.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmRequireRole.mock
}

// Set uses given function f to mock the UserService.RequireRole method
func (mmRequireRole *mUserServiceMockRequireRole) Set(f func(ctx context.Context, id uuid.UUID, role user.Role) (err error)) *UserServiceMock {
	if mmRequireRole.defaultExpectation != nil {
		mmRequireRole.mock.t.Fatalf("Default expectation is already set for the UserService.RequireRole method")
	}

	if len(mmRequireRole.expectations) > 0 {
		mmRequireRole.mock.t.Fatalf("Some expectations are already set for the UserService.RequireRole method")
	}

	mmRequireRole.mock.funcRequireRole = f
	mmRequireRole.mock.funcRequireRoleOrigin = minimock.CallerInfo(1)
	return mmRequireRole.mock
}

// When sets expectation for the UserService.RequireRole which will trigger the result defined by the following
// Then helper
func (mmRequireRole *mUserServiceMockRequireRole) When(ctx context.Context, id uuid.UUID, role user.Role) *UserServiceMockRequireRoleExpectation {
	if mmRequireRole.mock.funcRequireRole != nil {
		mmRequireRole.mock.t.Fatalf("UserServiceMock.RequireRole mock is already set by Set")
	}

	expectation := &UserServiceMockRequireRoleExpectation{
		mock:               mmRequireRole.mock,
		params:             &UserServiceMockRequireRoleParams{ctx, id, role},
		expectationOrigins: UserServiceMockRequireRoleExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmRequireRole.expectations = append(mmRequireRole.expectations, expectation)
	return expectation
}

// Then sets up UserService.RequireRole return parameters for the expectation previously defined by the When method
func (e *UserServiceMockRequireRoleExpectation) Then(err error) *UserServiceMock {
	e.results = &UserServiceMockRequireRoleResults{err}
	return e.mock
}

// Times sets number of times UserService.RequireRole should be invoked
func (mmRequireRole *mUserServiceMockRequireRole) Times(n uint64) *mUserServiceMockRequireRole {
	if n == 0 {
		mmRequireRole.mock.t.Fatalf("Times of UserServiceMock.RequireRole mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmRequireRole.expectedInvocations, n)
	mmRequireRole.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmRequireRole
}

func (mmRequireRole *mUserServiceMockRequireRole) invocationsDone() bool {
	if len(mmRequireRole.expectations) == 0 && mmRequireRole.defaultExpectation == nil && mmRequireRole.mock.funcRequireRole == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmRequireRole.mock.afterRequireRoleCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmRequireRole.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// RequireRole implements mm_article.UserService
func (mmRequireRole *UserServiceMock) RequireRole(ctx context.Context, id uuid.UUID, role user.Role) (err error) {
	mm_atomic.AddUint64(&mmRequireRole.beforeRequireRoleCounter, 1)
	defer mm_atomic.AddUint64(&mmRequireRole.afterRequireRoleCounter, 1)

	mmRequireRole.t.Helper()

	if mmRequireRole.inspectFuncRequireRole != nil {
		mmRequireRole.inspectFuncRequireRole(ctx, id, role)
	}

	mm_params := UserServiceMockRequireRoleParams{ctx, id, role}

	// Record call args
	mmRequireRole.RequireRoleMock.mutex.Lock()
	mmRequireRole.RequireRoleMock.callArgs = append(mmRequireRole.RequireRoleMock.callArgs, &mm_params)
	mmRequireRole.RequireRoleMock.mutex.Unlock()

	for _, e := range mmRequireRole.RequireRoleMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmRequireRole.RequireRoleMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRequireRole.RequireRoleMock.defaultExpectation.Counter, 1)
		mm_want := mmRequireRole.RequireRoleMock.defaultExpectation.params
		mm_want_ptrs := mmRequireRole.RequireRoleMock.defaultExpectation.paramPtrs

		mm_got := UserServiceMockRequireRoleParams{ctx, id, role}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmRequireRole.t.Errorf("UserServiceMock.RequireRole got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRequireRole.RequireRoleMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmRequireRole.t.Errorf("UserServiceMock.RequireRole got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRequireRole.RequireRoleMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmRequireRole.t.Errorf("UserServiceMock.RequireRole got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRequireRole.RequireRoleMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmRequireRole.t.Errorf("UserServiceMock.RequireRole got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmRequireRole.RequireRoleMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmRequireRole.RequireRoleMock.defaultExpectation.results
		if mm_results == nil {
			mmRequireRole.t.Fatal("No results are set for the UserServiceMock.RequireRole")
		}
		return (*mm_results).err
	}
	if mmRequireRole.funcRequireRole != nil {
		return mmRequireRole.funcRequireRole(ctx, id, role)
	}
	mmRequireRole.t.Fatalf("Unexpected call to UserServiceMock.RequireRole. %v %v %v", ctx, id, role)
	return
}

// RequireRoleAfterCounter returns a count of finished UserServiceMock.RequireRole invocations
func (mmRequireRole *UserServiceMock) RequireRoleAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequireRole.afterRequireRoleCounter)
}

// RequireRoleBeforeCounter returns a count of UserServiceMock.RequireRole invocations
func (mmRequireRole *UserServiceMock) RequireRoleBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequireRole.beforeRequireRoleCounter)
}

// Calls returns a list of arguments used in each call to UserServiceMock.RequireRole.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRequireRole *mUserServiceMockRequireRole) Calls() []*UserServiceMockRequireRoleParams {
	mmRequireRole.mutex.RLock()

	argCopy := make([]*UserServiceMockRequireRoleParams, len(mmRequireRole.callArgs))
	copy(argCopy, mmRequireRole.callArgs)

	mmRequireRole.mutex.RUnlock()

	return argCopy
}

// MinimockRequireRoleDone returns true if the count of the RequireRole invocations corresponds
// the number of defined expectations
func (m *UserServiceMock) MinimockRequireRoleDone() bool {
	if m.RequireRoleMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.RequireRoleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RequireRoleMock.invocationsDone()
}

// MinimockRequireRoleInspect logs each unmet expectation
func (m *UserServiceMock) MinimockRequireRoleInspect() {
	for _, e := range m.RequireRoleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to UserServiceMock.RequireRole at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRequireRoleCounter := mm_atomic.LoadUint64(&m.afterRequireRoleCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RequireRoleMock.defaultExpectation != nil && afterRequireRoleCounter < 1 {
		if m.RequireRoleMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to UserServiceMock.RequireRole at\n%s", m.RequireRoleMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to UserServiceMock.RequireRole at\n%s with params: %#v", m.RequireRoleMock.defaultExpectation.expectationOrigins.origin, *m.RequireRoleMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRequireRole != nil && afterRequireRoleCounter < 1 {
		m.t.Errorf("Expected call to UserServiceMock.RequireRole at\n%s", m.funcRequireRoleOrigin)
	}

	if !m.RequireRoleMock.invocationsDone() && afterRequireRoleCounter > 0 {
		m.t.Errorf("Expected %d calls to UserServiceMock.RequireRole at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RequireRoleMock.expectedInvocations), m.RequireRoleMock.expectedInvocationsOrigin, afterRequireRoleCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *UserServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockRequireRoleInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *UserServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *UserServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockRequireRoleDone()
}
