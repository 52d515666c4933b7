// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article.AssignmentRepository -o assignment_repository_mock.go -n AssignmentRepositoryMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	"time"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	mm_article "github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// AssignmentRepositoryMock implements mm_article.AssignmentRepository
type AssignmentRepositoryMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCloseOpen          func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time) (err error)
	funcCloseOpenOrigin    string
	inspectFuncCloseOpen   func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time)
	afterCloseOpenCounter  uint64
	beforeCloseOpenCounter uint64
	CloseOpenMock          mAssignmentRepositoryMockCloseOpen

	funcListByArticle          func(ctx context.Context, articleID uuid.UUID) (aa1 []mm_article.Assignment, err error)
	funcListByArticleOrigin    string
	inspectFuncListByArticle   func(ctx context.Context, articleID uuid.UUID)
	afterListByArticleCounter  uint64
	beforeListByArticleCounter uint64
	ListByArticleMock          mAssignmentRepositoryMockListByArticle

	funcOpen          func(ctx context.Context, tx tx.Transaction, a mm_article.Assignment) (err error)
	funcOpenOrigin    string
	inspectFuncOpen   func(ctx context.Context, tx tx.Transaction, a mm_article.Assignment)
	afterOpenCounter  uint64
	beforeOpenCounter uint64
	OpenMock          mAssignmentRepositoryMockOpen
}

// NewAssignmentRepositoryMock returns a mock for mm_article.AssignmentRepository
func NewAssignmentRepositoryMock(t minimock.Tester) *AssignmentRepositoryMock {
	m := &AssignmentRepositoryMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CloseOpenMock = mAssignmentRepositoryMockCloseOpen{mock: m}
	m.CloseOpenMock.callArgs = []*AssignmentRepositoryMockCloseOpenParams{}

	m.ListByArticleMock = mAssignmentRepositoryMockListByArticle{mock: m}
	m.ListByArticleMock.callArgs = []*AssignmentRepositoryMockListByArticleParams{}

	m.OpenMock = mAssignmentRepositoryMockOpen{mock: m}
	m.OpenMock.callArgs = []*AssignmentRepositoryMockOpenParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mAssignmentRepositoryMockCloseOpen struct {
	optional           bool
	mock               *AssignmentRepositoryMock
	defaultExpectation *AssignmentRepositoryMockCloseOpenExpectation
	expectations       []*AssignmentRepositoryMockCloseOpenExpectation

	callArgs []*AssignmentRepositoryMockCloseOpenParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// AssignmentRepositoryMockCloseOpenExpectation specifies expectation struct of the AssignmentRepository.CloseOpen
type AssignmentRepositoryMockCloseOpenExpectation struct {
	mock               *AssignmentRepositoryMock
	params             *AssignmentRepositoryMockCloseOpenParams
	paramPtrs          *AssignmentRepositoryMockCloseOpenParamPtrs
	expectationOrigins AssignmentRepositoryMockCloseOpenExpectationOrigins
	results            *AssignmentRepositoryMockCloseOpenResults
	returnOrigin       string
	Counter            uint64
}

// AssignmentRepositoryMockCloseOpenParams contains parameters of the AssignmentRepository.CloseOpen
type AssignmentRepositoryMockCloseOpenParams struct {
	ctx       context.Context
	tx        tx.Transaction
	articleID uuid.UUID
	role      mm_article.AssignmentRole
	at        time.Time
}

// AssignmentRepositoryMockCloseOpenParamPtrs contains pointers to parameters of the AssignmentRepository.CloseOpen
type AssignmentRepositoryMockCloseOpenParamPtrs struct {
	ctx       *context.Context
	tx        *tx.Transaction
	articleID *uuid.UUID
	role      *mm_article.AssignmentRole
	at        *time.Time
}

// AssignmentRepositoryMockCloseOpenResults contains results of the AssignmentRepository.CloseOpen
type AssignmentRepositoryMockCloseOpenResults struct {
	err error
}

// AssignmentRepositoryMockCloseOpenOrigins contains origins of expectations of the AssignmentRepository.CloseOpen
type AssignmentRepositoryMockCloseOpenExpectationOrigins struct {
	origin          string
	originCtx       string
	originTx        string
	originArticleID string
	originRole      string
	originAt        string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Optional() *mAssignmentRepositoryMockCloseOpen {
	mmCloseOpen.optional = true
	return mmCloseOpen
}

// Expect sets up expected params for AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Expect(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{}
	}

	if mmCloseOpen.defaultExpectation.paramPtrs != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by ExpectParams functions")
	}

	mmCloseOpen.defaultExpectation.params = &AssignmentRepositoryMockCloseOpenParams{ctx, tx, articleID, role, at}
	mmCloseOpen.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCloseOpen.expectations {
		if minimock.Equal(e.params, mmCloseOpen.defaultExpectation.params) {
			mmCloseOpen.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCloseOpen.defaultExpectation.params)
		}
	}

	return mmCloseOpen
}

// ExpectCtxParam1 sets up expected param ctx for AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) ExpectCtxParam1(ctx context.Context) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{}
	}

	if mmCloseOpen.defaultExpectation.params != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Expect")
	}

	if mmCloseOpen.defaultExpectation.paramPtrs == nil {
		mmCloseOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockCloseOpenParamPtrs{}
	}
	mmCloseOpen.defaultExpectation.paramPtrs.ctx = &ctx
	mmCloseOpen.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmCloseOpen
}

// ExpectTxParam2 sets up expected param tx for AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) ExpectTxParam2(tx tx.Transaction) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{}
	}

	if mmCloseOpen.defaultExpectation.params != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Expect")
	}

	if mmCloseOpen.defaultExpectation.paramPtrs == nil {
		mmCloseOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockCloseOpenParamPtrs{}
	}
	mmCloseOpen.defaultExpectation.paramPtrs.tx = &tx
	mmCloseOpen.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmCloseOpen
}

// ExpectArticleIDParam3 sets up expected param articleID for AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) ExpectArticleIDParam3(articleID uuid.UUID) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{}
	}

	if mmCloseOpen.defaultExpectation.params != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Expect")
	}

	if mmCloseOpen.defaultExpectation.paramPtrs == nil {
		mmCloseOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockCloseOpenParamPtrs{}
	}
	mmCloseOpen.defaultExpectation.paramPtrs.articleID = &articleID
	mmCloseOpen.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmCloseOpen
}

// ExpectRoleParam4 sets up expected param role for AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) ExpectRoleParam4(role mm_article.AssignmentRole) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{}
	}

	if mmCloseOpen.defaultExpectation.params != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Expect")
	}

	if mmCloseOpen.defaultExpectation.paramPtrs == nil {
		mmCloseOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockCloseOpenParamPtrs{}
	}
	mmCloseOpen.defaultExpectation.paramPtrs.role = &role
	mmCloseOpen.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmCloseOpen
}

// ExpectAtParam5 sets up expected param at for AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) ExpectAtParam5(at time.Time) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{}
	}

	if mmCloseOpen.defaultExpectation.params != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Expect")
	}

	if mmCloseOpen.defaultExpectation.paramPtrs == nil {
		mmCloseOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockCloseOpenParamPtrs{}
	}
	mmCloseOpen.defaultExpectation.paramPtrs.at = &at
	mmCloseOpen.defaultExpectation.expectationOrigins.originAt = minimock.CallerInfo(1)

	return mmCloseOpen
}

// Inspect accepts an inspector function that has same arguments as the AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Inspect(f func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time)) *mAssignmentRepositoryMockCloseOpen {
	if mmCloseOpen.mock.inspectFuncCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("Inspect function is already set for AssignmentRepositoryMock.CloseOpen")
	}

	mmCloseOpen.mock.inspectFuncCloseOpen = f

	return mmCloseOpen
}

// Return sets up results that will be returned by AssignmentRepository.CloseOpen
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Return(err error) *AssignmentRepositoryMock {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	if mmCloseOpen.defaultExpectation == nil {
		mmCloseOpen.defaultExpectation = &AssignmentRepositoryMockCloseOpenExpectation{mock: mmCloseOpen.mock}
	}
	mmCloseOpen.defaultExpectation.results = &AssignmentRepositoryMockCloseOpenResults{err}
	mmCloseOpen.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCloseOpen.mock
}

// Set uses given function f to mock the AssignmentRepository.CloseOpen method
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Set(f func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time) (err error)) *AssignmentRepositoryMock {
	if mmCloseOpen.defaultExpectation != nil {
		mmCloseOpen.mock.t.Fatalf("Default expectation is already set for the AssignmentRepository.CloseOpen method")
	}

	if len(mmCloseOpen.expectations) > 0 {
		mmCloseOpen.mock.t.Fatalf("Some expectations are already set for the AssignmentRepository.CloseOpen method")
	}

	mmCloseOpen.mock.funcCloseOpen = f
	mmCloseOpen.mock.funcCloseOpenOrigin = minimock.CallerInfo(1)
	return mmCloseOpen.mock
}

// When sets expectation for the AssignmentRepository.CloseOpen which will trigger the result defined by the following
// Then helper
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) When(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time) *AssignmentRepositoryMockCloseOpenExpectation {
	if mmCloseOpen.mock.funcCloseOpen != nil {
		mmCloseOpen.mock.t.Fatalf("AssignmentRepositoryMock.CloseOpen mock is already set by Set")
	}

	expectation := &AssignmentRepositoryMockCloseOpenExpectation{
		mock:               mmCloseOpen.mock,
		params:             &AssignmentRepositoryMockCloseOpenParams{ctx, tx, articleID, role, at},
		expectationOrigins: AssignmentRepositoryMockCloseOpenExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCloseOpen.expectations = append(mmCloseOpen.expectations, expectation)
	return expectation
}

// Then sets up AssignmentRepository.CloseOpen return parameters for the expectation previously defined by the When method
func (e *AssignmentRepositoryMockCloseOpenExpectation) Then(err error) *AssignmentRepositoryMock {
	e.results = &AssignmentRepositoryMockCloseOpenResults{err}
	return e.mock
}

// Times sets number of times AssignmentRepository.CloseOpen should be invoked
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Times(n uint64) *mAssignmentRepositoryMockCloseOpen {
	if n == 0 {
		mmCloseOpen.mock.t.Fatalf("Times of AssignmentRepositoryMock.CloseOpen mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCloseOpen.expectedInvocations, n)
	mmCloseOpen.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCloseOpen
}

func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) invocationsDone() bool {
	if len(mmCloseOpen.expectations) == 0 && mmCloseOpen.defaultExpectation == nil && mmCloseOpen.mock.funcCloseOpen == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCloseOpen.mock.afterCloseOpenCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCloseOpen.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// CloseOpen implements mm_article.AssignmentRepository
func (mmCloseOpen *AssignmentRepositoryMock) CloseOpen(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role mm_article.AssignmentRole, at time.Time) (err error) {
	mm_atomic.AddUint64(&mmCloseOpen.beforeCloseOpenCounter, 1)
	defer mm_atomic.AddUint64(&mmCloseOpen.afterCloseOpenCounter, 1)

	mmCloseOpen.t.Helper()

	if mmCloseOpen.inspectFuncCloseOpen != nil {
		mmCloseOpen.inspectFuncCloseOpen(ctx, tx, articleID, role, at)
	}

	mm_params := AssignmentRepositoryMockCloseOpenParams{ctx, tx, articleID, role, at}

	// Record call args
	mmCloseOpen.CloseOpenMock.mutex.Lock()
	mmCloseOpen.CloseOpenMock.callArgs = append(mmCloseOpen.CloseOpenMock.callArgs, &mm_params)
	mmCloseOpen.CloseOpenMock.mutex.Unlock()

	for _, e := range mmCloseOpen.CloseOpenMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCloseOpen.CloseOpenMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCloseOpen.CloseOpenMock.defaultExpectation.Counter, 1)
		mm_want := mmCloseOpen.CloseOpenMock.defaultExpectation.params
		mm_want_ptrs := mmCloseOpen.CloseOpenMock.defaultExpectation.paramPtrs

		mm_got := AssignmentRepositoryMockCloseOpenParams{ctx, tx, articleID, role, at}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCloseOpen.t.Errorf("AssignmentRepositoryMock.CloseOpen got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCloseOpen.CloseOpenMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmCloseOpen.t.Errorf("AssignmentRepositoryMock.CloseOpen got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCloseOpen.CloseOpenMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmCloseOpen.t.Errorf("AssignmentRepositoryMock.CloseOpen got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCloseOpen.CloseOpenMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmCloseOpen.t.Errorf("AssignmentRepositoryMock.CloseOpen got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCloseOpen.CloseOpenMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

			if mm_want_ptrs.at != nil && !minimock.Equal(*mm_want_ptrs.at, mm_got.at) {
				mmCloseOpen.t.Errorf("AssignmentRepositoryMock.CloseOpen got unexpected parameter at, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCloseOpen.CloseOpenMock.defaultExpectation.expectationOrigins.originAt, *mm_want_ptrs.at, mm_got.at, minimock.Diff(*mm_want_ptrs.at, mm_got.at))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCloseOpen.t.Errorf("AssignmentRepositoryMock.CloseOpen got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCloseOpen.CloseOpenMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCloseOpen.CloseOpenMock.defaultExpectation.results
		if mm_results == nil {
			mmCloseOpen.t.Fatal("No results are set for the AssignmentRepositoryMock.CloseOpen")
		}
		return (*mm_results).err
	}
	if mmCloseOpen.funcCloseOpen != nil {
		return mmCloseOpen.funcCloseOpen(ctx, tx, articleID, role, at)
	}
	mmCloseOpen.t.Fatalf("Unexpected call to AssignmentRepositoryMock.CloseOpen. %v %v %v %v %v", ctx, tx, articleID, role, at)
	return
}

// CloseOpenAfterCounter returns a count of finished AssignmentRepositoryMock.CloseOpen invocations
func (mmCloseOpen *AssignmentRepositoryMock) CloseOpenAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCloseOpen.afterCloseOpenCounter)
}

// CloseOpenBeforeCounter returns a count of AssignmentRepositoryMock.CloseOpen invocations
func (mmCloseOpen *AssignmentRepositoryMock) CloseOpenBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCloseOpen.beforeCloseOpenCounter)
}

// Calls returns a list of arguments used in each call to AssignmentRepositoryMock.CloseOpen.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCloseOpen *mAssignmentRepositoryMockCloseOpen) Calls() []*AssignmentRepositoryMockCloseOpenParams {
	mmCloseOpen.mutex.RLock()

	argCopy := make([]*AssignmentRepositoryMockCloseOpenParams, len(mmCloseOpen.callArgs))
	copy(argCopy, mmCloseOpen.callArgs)

	mmCloseOpen.mutex.RUnlock()

	return argCopy
}

// MinimockCloseOpenDone returns true if the count of the CloseOpen invocations corresponds
// the number of defined expectations
func (m *AssignmentRepositoryMock) MinimockCloseOpenDone() bool {
	if m.CloseOpenMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CloseOpenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CloseOpenMock.invocationsDone()
}

// MinimockCloseOpenInspect logs each unmet expectation
func (m *AssignmentRepositoryMock) MinimockCloseOpenInspect() {
	for _, e := range m.CloseOpenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.CloseOpen at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCloseOpenCounter := mm_atomic.LoadUint64(&m.afterCloseOpenCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CloseOpenMock.defaultExpectation != nil && afterCloseOpenCounter < 1 {
		if m.CloseOpenMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.CloseOpen at\n%s", m.CloseOpenMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.CloseOpen at\n%s with params: %#v", m.CloseOpenMock.defaultExpectation.expectationOrigins.origin, *m.CloseOpenMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCloseOpen != nil && afterCloseOpenCounter < 1 {
		m.t.Errorf("Expected call to AssignmentRepositoryMock.CloseOpen at\n%s", m.funcCloseOpenOrigin)
	}

	if !m.CloseOpenMock.invocationsDone() && afterCloseOpenCounter > 0 {
		m.t.Errorf("Expected %d calls to AssignmentRepositoryMock.CloseOpen at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CloseOpenMock.expectedInvocations), m.CloseOpenMock.expectedInvocationsOrigin, afterCloseOpenCounter)
	}
}

type mAssignmentRepositoryMockListByArticle struct {
	optional           bool
	mock               *AssignmentRepositoryMock
	defaultExpectation *AssignmentRepositoryMockListByArticleExpectation
	expectations       []*AssignmentRepositoryMockListByArticleExpectation

	callArgs []*AssignmentRepositoryMockListByArticleParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// AssignmentRepositoryMockListByArticleExpectation specifies expectation struct of the AssignmentRepository.ListByArticle
type AssignmentRepositoryMockListByArticleExpectation struct {
	mock               *AssignmentRepositoryMock
	params             *AssignmentRepositoryMockListByArticleParams
	paramPtrs          *AssignmentRepositoryMockListByArticleParamPtrs
	expectationOrigins AssignmentRepositoryMockListByArticleExpectationOrigins
	results            *AssignmentRepositoryMockListByArticleResults
	returnOrigin       string
	Counter            uint64
}

// AssignmentRepositoryMockListByArticleParams contains parameters of the AssignmentRepository.ListByArticle
type AssignmentRepositoryMockListByArticleParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// AssignmentRepositoryMockListByArticleParamPtrs contains pointers to parameters of the AssignmentRepository.ListByArticle
type AssignmentRepositoryMockListByArticleParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// AssignmentRepositoryMockListByArticleResults contains results of the AssignmentRepository.ListByArticle
type AssignmentRepositoryMockListByArticleResults struct {
	aa1 []mm_article.Assignment
	err error
}

// AssignmentRepositoryMockListByArticleOrigins contains origins of expectations of the AssignmentRepository.ListByArticle
type AssignmentRepositoryMockListByArticleExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Optional() *mAssignmentRepositoryMockListByArticle {
	mmListByArticle.optional = true
	return mmListByArticle
}

// Expect sets up expected params for AssignmentRepository.ListByArticle
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Expect(ctx context.Context, articleID uuid.UUID) *mAssignmentRepositoryMockListByArticle {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &AssignmentRepositoryMockListByArticleExpectation{}
	}

	if mmListByArticle.defaultExpectation.paramPtrs != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by ExpectParams functions")
	}

	mmListByArticle.defaultExpectation.params = &AssignmentRepositoryMockListByArticleParams{ctx, articleID}
	mmListByArticle.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListByArticle.expectations {
		if minimock.Equal(e.params, mmListByArticle.defaultExpectation.params) {
			mmListByArticle.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListByArticle.defaultExpectation.params)
		}
	}

	return mmListByArticle
}

// ExpectCtxParam1 sets up expected param ctx for AssignmentRepository.ListByArticle
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) ExpectCtxParam1(ctx context.Context) *mAssignmentRepositoryMockListByArticle {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &AssignmentRepositoryMockListByArticleExpectation{}
	}

	if mmListByArticle.defaultExpectation.params != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Expect")
	}

	if mmListByArticle.defaultExpectation.paramPtrs == nil {
		mmListByArticle.defaultExpectation.paramPtrs = &AssignmentRepositoryMockListByArticleParamPtrs{}
	}
	mmListByArticle.defaultExpectation.paramPtrs.ctx = &ctx
	mmListByArticle.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListByArticle
}

// ExpectArticleIDParam2 sets up expected param articleID for AssignmentRepository.ListByArticle
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) ExpectArticleIDParam2(articleID uuid.UUID) *mAssignmentRepositoryMockListByArticle {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &AssignmentRepositoryMockListByArticleExpectation{}
	}

	if mmListByArticle.defaultExpectation.params != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Expect")
	}

	if mmListByArticle.defaultExpectation.paramPtrs == nil {
		mmListByArticle.defaultExpectation.paramPtrs = &AssignmentRepositoryMockListByArticleParamPtrs{}
	}
	mmListByArticle.defaultExpectation.paramPtrs.articleID = &articleID
	mmListByArticle.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmListByArticle
}

// Inspect accepts an inspector function that has same arguments as the AssignmentRepository.ListByArticle
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mAssignmentRepositoryMockListByArticle {
	if mmListByArticle.mock.inspectFuncListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("Inspect function is already set for AssignmentRepositoryMock.ListByArticle")
	}

	mmListByArticle.mock.inspectFuncListByArticle = f

	return mmListByArticle
}

// Return sets up results that will be returned by AssignmentRepository.ListByArticle
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Return(aa1 []mm_article.Assignment, err error) *AssignmentRepositoryMock {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &AssignmentRepositoryMockListByArticleExpectation{mock: mmListByArticle.mock}
	}
	mmListByArticle.defaultExpectation.results = &AssignmentRepositoryMockListByArticleResults{aa1, err}
	mmListByArticle.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListByArticle.mock
}

// Set uses given function f to mock the AssignmentRepository.ListByArticle method
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Set(f func(ctx context.Context, articleID uuid.UUID) (aa1 []mm_article.Assignment, err error)) *AssignmentRepositoryMock {
	if mmListByArticle.defaultExpectation != nil {
		mmListByArticle.mock.t.Fatalf("Default expectation is already set for the AssignmentRepository.ListByArticle method")
	}

	if len(mmListByArticle.expectations) > 0 {
		mmListByArticle.mock.t.Fatalf("Some expectations are already set for the AssignmentRepository.ListByArticle method")
	}

	mmListByArticle.mock.funcListByArticle = f
	mmListByArticle.mock.funcListByArticleOrigin = minimock.CallerInfo(1)
	return mmListByArticle.mock
}

// When sets expectation for the AssignmentRepository.ListByArticle which will trigger the result defined by the following
// Then helper
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) When(ctx context.Context, articleID uuid.UUID) *AssignmentRepositoryMockListByArticleExpectation {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("AssignmentRepositoryMock.ListByArticle mock is already set by Set")
	}

	expectation := &AssignmentRepositoryMockListByArticleExpectation{
		mock:               mmListByArticle.mock,
		params:             &AssignmentRepositoryMockListByArticleParams{ctx, articleID},
		expectationOrigins: AssignmentRepositoryMockListByArticleExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListByArticle.expectations = append(mmListByArticle.expectations, expectation)
	return expectation
}

// Then sets up AssignmentRepository.ListByArticle return parameters for the expectation previously defined by the When method
func (e *AssignmentRepositoryMockListByArticleExpectation) Then(aa1 []mm_article.Assignment, err error) *AssignmentRepositoryMock {
	e.results = &AssignmentRepositoryMockListByArticleResults{aa1, err}
	return e.mock
}

// Times sets number of times AssignmentRepository.ListByArticle should be invoked
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Times(n uint64) *mAssignmentRepositoryMockListByArticle {
	if n == 0 {
		mmListByArticle.mock.t.Fatalf("Times of AssignmentRepositoryMock.ListByArticle mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListByArticle.expectedInvocations, n)
	mmListByArticle.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListByArticle
}

func (mmListByArticle *mAssignmentRepositoryMockListByArticle) invocationsDone() bool {
	if len(mmListByArticle.expectations) == 0 && mmListByArticle.defaultExpectation == nil && mmListByArticle.mock.funcListByArticle == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListByArticle.mock.afterListByArticleCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListByArticle.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListByArticle implements mm_article.AssignmentRepository
func (mmListByArticle *AssignmentRepositoryMock) ListByArticle(ctx context.Context, articleID uuid.UUID) (aa1 []mm_article.Assignment, err error) {
	mm_atomic.AddUint64(&mmListByArticle.beforeListByArticleCounter, 1)
	defer mm_atomic.AddUint64(&mmListByArticle.afterListByArticleCounter, 1)

	mmListByArticle.t.Helper()

	if mmListByArticle.inspectFuncListByArticle != nil {
		mmListByArticle.inspectFuncListByArticle(ctx, articleID)
	}

	mm_params := AssignmentRepositoryMockListByArticleParams{ctx, articleID}

	// Record call args
	mmListByArticle.ListByArticleMock.mutex.Lock()
	mmListByArticle.ListByArticleMock.callArgs = append(mmListByArticle.ListByArticleMock.callArgs, &mm_params)
	mmListByArticle.ListByArticleMock.mutex.Unlock()

	for _, e := range mmListByArticle.ListByArticleMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.aa1, e.results.err
		}
	}

	if mmListByArticle.ListByArticleMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListByArticle.ListByArticleMock.defaultExpectation.Counter, 1)
		mm_want := mmListByArticle.ListByArticleMock.defaultExpectation.params
		mm_want_ptrs := mmListByArticle.ListByArticleMock.defaultExpectation.paramPtrs

		mm_got := AssignmentRepositoryMockListByArticleParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListByArticle.t.Errorf("AssignmentRepositoryMock.ListByArticle got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListByArticle.ListByArticleMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmListByArticle.t.Errorf("AssignmentRepositoryMock.ListByArticle got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListByArticle.ListByArticleMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListByArticle.t.Errorf("AssignmentRepositoryMock.ListByArticle got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListByArticle.ListByArticleMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListByArticle.ListByArticleMock.defaultExpectation.results
		if mm_results == nil {
			mmListByArticle.t.Fatal("No results are set for the AssignmentRepositoryMock.ListByArticle")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmListByArticle.funcListByArticle != nil {
		return mmListByArticle.funcListByArticle(ctx, articleID)
	}
	mmListByArticle.t.Fatalf("Unexpected call to AssignmentRepositoryMock.ListByArticle. %v %v", ctx, articleID)
	return
}

// ListByArticleAfterCounter returns a count of finished AssignmentRepositoryMock.ListByArticle invocations
func (mmListByArticle *AssignmentRepositoryMock) ListByArticleAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListByArticle.afterListByArticleCounter)
}

// ListByArticleBeforeCounter returns a count of AssignmentRepositoryMock.ListByArticle invocations
func (mmListByArticle *AssignmentRepositoryMock) ListByArticleBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListByArticle.beforeListByArticleCounter)
}

// Calls returns a list of arguments used in each call to AssignmentRepositoryMock.ListByArticle.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListByArticle *mAssignmentRepositoryMockListByArticle) Calls() []*AssignmentRepositoryMockListByArticleParams {
	mmListByArticle.mutex.RLock()

	argCopy := make([]*AssignmentRepositoryMockListByArticleParams, len(mmListByArticle.callArgs))
	copy(argCopy, mmListByArticle.callArgs)

	mmListByArticle.mutex.RUnlock()

	return argCopy
}

// MinimockListByArticleDone returns true if the count of the ListByArticle invocations corresponds
// the number of defined expectations
func (m *AssignmentRepositoryMock) MinimockListByArticleDone() bool {
	if m.ListByArticleMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListByArticleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListByArticleMock.invocationsDone()
}

// MinimockListByArticleInspect logs each unmet expectation
func (m *AssignmentRepositoryMock) MinimockListByArticleInspect() {
	for _, e := range m.ListByArticleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.ListByArticle at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListByArticleCounter := mm_atomic.LoadUint64(&m.afterListByArticleCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListByArticleMock.defaultExpectation != nil && afterListByArticleCounter < 1 {
		if m.ListByArticleMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.ListByArticle at\n%s", m.ListByArticleMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.ListByArticle at\n%s with params: %#v", m.ListByArticleMock.defaultExpectation.expectationOrigins.origin, *m.ListByArticleMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListByArticle != nil && afterListByArticleCounter < 1 {
		m.t.Errorf("Expected call to AssignmentRepositoryMock.ListByArticle at\n%s", m.funcListByArticleOrigin)
	}

	if !m.ListByArticleMock.invocationsDone() && afterListByArticleCounter > 0 {
		m.t.Errorf("Expected %d calls to AssignmentRepositoryMock.ListByArticle at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListByArticleMock.expectedInvocations), m.ListByArticleMock.expectedInvocationsOrigin, afterListByArticleCounter)
	}
}

type mAssignmentRepositoryMockOpen struct {
	optional           bool
	mock               *AssignmentRepositoryMock
	defaultExpectation *AssignmentRepositoryMockOpenExpectation
	expectations       []*AssignmentRepositoryMockOpenExpectation

	callArgs []*AssignmentRepositoryMockOpenParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// AssignmentRepositoryMockOpenExpectation specifies expectation struct of the AssignmentRepository.Open
type AssignmentRepositoryMockOpenExpectation struct {
	mock               *AssignmentRepositoryMock
	params             *AssignmentRepositoryMockOpenParams
	paramPtrs          *AssignmentRepositoryMockOpenParamPtrs
	expectationOrigins AssignmentRepositoryMockOpenExpectationOrigins
	results            *AssignmentRepositoryMockOpenResults
	returnOrigin       string
	Counter            uint64
}

// AssignmentRepositoryMockOpenParams contains parameters of the AssignmentRepository.Open
type AssignmentRepositoryMockOpenParams struct {
	ctx context.Context
	tx  tx.Transaction
	a   mm_article.Assignment
}

// AssignmentRepositoryMockOpenParamPtrs contains pointers to parameters of the AssignmentRepository.Open
type AssignmentRepositoryMockOpenParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	a   *mm_article.Assignment
}

// AssignmentRepositoryMockOpenResults contains results of the AssignmentRepository.Open
type AssignmentRepositoryMockOpenResults struct {
	err error
}

// AssignmentRepositoryMockOpenOrigins contains origins of expectations of the AssignmentRepository.Open
type AssignmentRepositoryMockOpenExpectationOrigins struct {
	origin    string
	originCtx string
	originTx  string
	originA   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmOpen *mAssignmentRepositoryMockOpen) Optional() *mAssignmentRepositoryMockOpen {
	mmOpen.optional = true
	return mmOpen
}

// Expect sets up expected params for AssignmentRepository.Open
func (mmOpen *mAssignmentRepositoryMockOpen) Expect(ctx context.Context, tx tx.Transaction, a mm_article.Assignment) *mAssignmentRepositoryMockOpen {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &AssignmentRepositoryMockOpenExpectation{}
	}

	if mmOpen.defaultExpectation.paramPtrs != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by ExpectParams functions")
	}

	mmOpen.defaultExpectation.params = &AssignmentRepositoryMockOpenParams{ctx, tx, a}
	mmOpen.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmOpen.expectations {
		if minimock.Equal(e.params, mmOpen.defaultExpectation.params) {
			mmOpen.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmOpen.defaultExpectation.params)
		}
	}

	return mmOpen
}

// ExpectCtxParam1 sets up expected param ctx for AssignmentRepository.Open
func (mmOpen *mAssignmentRepositoryMockOpen) ExpectCtxParam1(ctx context.Context) *mAssignmentRepositoryMockOpen {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &AssignmentRepositoryMockOpenExpectation{}
	}

	if mmOpen.defaultExpectation.params != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Expect")
	}

	if mmOpen.defaultExpectation.paramPtrs == nil {
		mmOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockOpenParamPtrs{}
	}
	mmOpen.defaultExpectation.paramPtrs.ctx = &ctx
	mmOpen.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmOpen
}

// ExpectTxParam2 sets up expected param tx for AssignmentRepository.Open
func (mmOpen *mAssignmentRepositoryMockOpen) ExpectTxParam2(tx tx.Transaction) *mAssignmentRepositoryMockOpen {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &AssignmentRepositoryMockOpenExpectation{}
	}

	if mmOpen.defaultExpectation.params != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Expect")
	}

	if mmOpen.defaultExpectation.paramPtrs == nil {
		mmOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockOpenParamPtrs{}
	}
	mmOpen.defaultExpectation.paramPtrs.tx = &tx
	mmOpen.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmOpen
}

// ExpectAParam3 sets up expected param a for AssignmentRepository.Open
func (mmOpen *mAssignmentRepositoryMockOpen) ExpectAParam3(a mm_article.Assignment) *mAssignmentRepositoryMockOpen {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &AssignmentRepositoryMockOpenExpectation{}
	}

	if mmOpen.defaultExpectation.params != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Expect")
	}

	if mmOpen.defaultExpectation.paramPtrs == nil {
		mmOpen.defaultExpectation.paramPtrs = &AssignmentRepositoryMockOpenParamPtrs{}
	}
	mmOpen.defaultExpectation.paramPtrs.a = &a
	mmOpen.defaultExpectation.expectationOrigins.originA = minimock.CallerInfo(1)

	return mmOpen
}

// Inspect accepts an inspector function that has same arguments as the AssignmentRepository.Open
func (mmOpen *mAssignmentRepositoryMockOpen) Inspect(f func(ctx context.Context, tx tx.Transaction, a mm_article.Assignment)) *mAssignmentRepositoryMockOpen {
	if mmOpen.mock.inspectFuncOpen != nil {
		mmOpen.mock.t.Fatalf("Inspect function is already set for AssignmentRepositoryMock.Open")
	}

	mmOpen.mock.inspectFuncOpen = f

	return mmOpen
}

// Return sets up results that will be returned by AssignmentRepository.Open
func (mmOpen *mAssignmentRepositoryMockOpen) Return(err error) *AssignmentRepositoryMock {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &AssignmentRepositoryMockOpenExpectation{mock: mmOpen.mock}
	}
	mmOpen.defaultExpectation.results = &AssignmentRepositoryMockOpenResults{err}
	mmOpen.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmOpen.mock
}

// Set uses given function f to mock the AssignmentRepository.Open method
func (mmOpen *mAssignmentRepositoryMockOpen) Set(f func(ctx context.Context, tx tx.Transaction, a mm_article.Assignment) (err error)) *AssignmentRepositoryMock {
	if mmOpen.defaultExpectation != nil {
		mmOpen.mock.t.Fatalf("Default expectation is already set for the AssignmentRepository.Open method")
	}

	if len(mmOpen.expectations) > 0 {
		mmOpen.mock.t.Fatalf("Some expectations are already set for the AssignmentRepository.Open method")
	}

	mmOpen.mock.funcOpen = f
	mmOpen.mock.funcOpenOrigin = minimock.CallerInfo(1)
	return mmOpen.mock
}

// When sets expectation for the AssignmentRepository.Open which will trigger the result defined by the following
// Then helper
func (mmOpen *mAssignmentRepositoryMockOpen) When(ctx context.Context, tx tx.Transaction, a mm_article.Assignment) *AssignmentRepositoryMockOpenExpectation {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("AssignmentRepositoryMock.Open mock is already set by Set")
	}

	expectation := &AssignmentRepositoryMockOpenExpectation{
		mock:               mmOpen.mock,
		params:             &AssignmentRepositoryMockOpenParams{ctx, tx, a},
		expectationOrigins: AssignmentRepositoryMockOpenExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmOpen.expectations = append(mmOpen.expectations, expectation)
	return expectation
}

// Then sets up AssignmentRepository.Open return parameters for the expectation previously defined by the When method
func (e *AssignmentRepositoryMockOpenExpectation) Then(err error) *AssignmentRepositoryMock {
	e.results = &AssignmentRepositoryMockOpenResults{err}
	return e.mock
}

// Times sets number of times AssignmentRepository.Open should be invoked
func (mmOpen *mAssignmentRepositoryMockOpen) Times(n uint64) *mAssignmentRepositoryMockOpen {
	if n == 0 {
		mmOpen.mock.t.Fatalf("Times of AssignmentRepositoryMock.Open mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmOpen.expectedInvocations, n)
	mmOpen.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmOpen
}

func (mmOpen *mAssignmentRepositoryMockOpen) invocationsDone() bool {
	if len(mmOpen.expectations) == 0 && mmOpen.defaultExpectation == nil && mmOpen.mock.funcOpen == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmOpen.mock.afterOpenCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmOpen.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Open implements mm_article.AssignmentRepository
func (mmOpen *AssignmentRepositoryMock) Open(ctx context.Context, tx tx.Transaction, a mm_article.Assignment) (err error) {
	mm_atomic.AddUint64(&mmOpen.beforeOpenCounter, 1)
	defer mm_atomic.AddUint64(&mmOpen.afterOpenCounter, 1)

	mmOpen.t.Helper()

	if mmOpen.inspectFuncOpen != nil {
		mmOpen.inspectFuncOpen(ctx, tx, a)
	}

	mm_params := AssignmentRepositoryMockOpenParams{ctx, tx, a}

	// Record call args
	mmOpen.OpenMock.mutex.Lock()
	mmOpen.OpenMock.callArgs = append(mmOpen.OpenMock.callArgs, &mm_params)
	mmOpen.OpenMock.mutex.Unlock()

	for _, e := range mmOpen.OpenMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmOpen.OpenMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmOpen.OpenMock.defaultExpectation.Counter, 1)
		mm_want := mmOpen.OpenMock.defaultExpectation.params
		mm_want_ptrs := mmOpen.OpenMock.defaultExpectation.paramPtrs

		mm_got := AssignmentRepositoryMockOpenParams{ctx, tx, a}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmOpen.t.Errorf("AssignmentRepositoryMock.Open got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmOpen.OpenMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmOpen.t.Errorf("AssignmentRepositoryMock.Open got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmOpen.OpenMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.a != nil && !minimock.Equal(*mm_want_ptrs.a, mm_got.a) {
				mmOpen.t.Errorf("AssignmentRepositoryMock.Open got unexpected parameter a, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmOpen.OpenMock.defaultExpectation.expectationOrigins.originA, *mm_want_ptrs.a, mm_got.a, minimock.Diff(*mm_want_ptrs.a, mm_got.a))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmOpen.t.Errorf("AssignmentRepositoryMock.Open got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmOpen.OpenMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmOpen.OpenMock.defaultExpectation.results
		if mm_results == nil {
			mmOpen.t.Fatal("No results are set for the AssignmentRepositoryMock.Open")
		}
		return (*mm_results).err
	}
	if mmOpen.funcOpen != nil {
		return mmOpen.funcOpen(ctx, tx, a)
	}
	mmOpen.t.Fatalf("Unexpected call to AssignmentRepositoryMock.Open. %v %v %v", ctx, tx, a)
	return
}

// OpenAfterCounter returns a count of finished AssignmentRepositoryMock.Open invocations
func (mmOpen *AssignmentRepositoryMock) OpenAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmOpen.afterOpenCounter)
}

// OpenBeforeCounter returns a count of AssignmentRepositoryMock.Open invocations
func (mmOpen *AssignmentRepositoryMock) OpenBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmOpen.beforeOpenCounter)
}

// Calls returns a list of arguments used in each call to AssignmentRepositoryMock.Open.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmOpen *mAssignmentRepositoryMockOpen) Calls() []*AssignmentRepositoryMockOpenParams {
	mmOpen.mutex.RLock()

	argCopy := make([]*AssignmentRepositoryMockOpenParams, len(mmOpen.callArgs))
	copy(argCopy, mmOpen.callArgs)

	mmOpen.mutex.RUnlock()

	return argCopy
}

// MinimockOpenDone returns true if the count of the Open invocations corresponds
// the number of defined expectations
func (m *AssignmentRepositoryMock) MinimockOpenDone() bool {
	if m.OpenMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.OpenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.OpenMock.invocationsDone()
}

// MinimockOpenInspect logs each unmet expectation
func (m *AssignmentRepositoryMock) MinimockOpenInspect() {
	for _, e := range m.OpenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.Open at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterOpenCounter := mm_atomic.LoadUint64(&m.afterOpenCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.OpenMock.defaultExpectation != nil && afterOpenCounter < 1 {
		if m.OpenMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.Open at\n%s", m.OpenMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to AssignmentRepositoryMock.Open at\n%s with params: %#v", m.OpenMock.defaultExpectation.expectationOrigins.origin, *m.OpenMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcOpen != nil && afterOpenCounter < 1 {
		m.t.Errorf("Expected call to AssignmentRepositoryMock.Open at\n%s", m.funcOpenOrigin)
	}

	if !m.OpenMock.invocationsDone() && afterOpenCounter > 0 {
		m.t.Errorf("Expected %d calls to AssignmentRepositoryMock.Open at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.OpenMock.expectedInvocations), m.OpenMock.expectedInvocationsOrigin, afterOpenCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *AssignmentRepositoryMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCloseOpenInspect()

			m.MinimockListByArticleInspect()

			m.MinimockOpenInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *AssignmentRepositoryMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *AssignmentRepositoryMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCloseOpenDone() &&
		m.MinimockListByArticleDone() &&
		m.MinimockOpenDone()
}
