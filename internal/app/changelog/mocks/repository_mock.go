// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/changelog.Repository -o repository_mock.go -n RepositoryMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	mm_changelog "github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// RepositoryMock implements mm_changelog.Repository
type RepositoryMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCreate          func(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry) (err error)
	funcCreateOrigin    string
	inspectFuncCreate   func(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry)
	afterCreateCounter  uint64
	beforeCreateCounter uint64
	CreateMock          mRepositoryMockCreate

	funcGet          func(ctx context.Context, id uuid.UUID) (e1 mm_changelog.Entry, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, id uuid.UUID)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mRepositoryMockGet

	funcListByArticle          func(ctx context.Context, articleID uuid.UUID) (ea1 []mm_changelog.Entry, err error)
	funcListByArticleOrigin    string
	inspectFuncListByArticle   func(ctx context.Context, articleID uuid.UUID)
	afterListByArticleCounter  uint64
	beforeListByArticleCounter uint64
	ListByArticleMock          mRepositoryMockListByArticle

	funcListMissingDiff          func(ctx context.Context, limit int) (ea1 []mm_changelog.Entry, err error)
	funcListMissingDiffOrigin    string
	inspectFuncListMissingDiff   func(ctx context.Context, limit int)
	afterListMissingDiffCounter  uint64
	beforeListMissingDiffCounter uint64
	ListMissingDiffMock          mRepositoryMockListMissingDiff

	funcUpdateDiffSummary          func(ctx context.Context, id uuid.UUID, summary diff.Stats) (err error)
	funcUpdateDiffSummaryOrigin    string
	inspectFuncUpdateDiffSummary   func(ctx context.Context, id uuid.UUID, summary diff.Stats)
	afterUpdateDiffSummaryCounter  uint64
	beforeUpdateDiffSummaryCounter uint64
	UpdateDiffSummaryMock          mRepositoryMockUpdateDiffSummary
}

// NewRepositoryMock returns a mock for mm_changelog.Repository
func NewRepositoryMock(t minimock.Tester) *RepositoryMock {
	m := &RepositoryMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CreateMock = mRepositoryMockCreate{mock: m}
	m.CreateMock.callArgs = []*RepositoryMockCreateParams{}

	m.GetMock = mRepositoryMockGet{mock: m}
	m.GetMock.callArgs = []*RepositoryMockGetParams{}

	m.ListByArticleMock = mRepositoryMockListByArticle{mock: m}
	m.ListByArticleMock.callArgs = []*RepositoryMockListByArticleParams{}

	m.ListMissingDiffMock = mRepositoryMockListMissingDiff{mock: m}
	m.ListMissingDiffMock.callArgs = []*RepositoryMockListMissingDiffParams{}

	m.UpdateDiffSummaryMock = mRepositoryMockUpdateDiffSummary{mock: m}
	m.UpdateDiffSummaryMock.callArgs = []*RepositoryMockUpdateDiffSummaryParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mRepositoryMockCreate struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockCreateExpectation
	expectations       []*RepositoryMockCreateExpectation

	callArgs []*RepositoryMockCreateParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockCreateExpectation specifies expectation struct of the Repository.Create
type RepositoryMockCreateExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockCreateParams
	paramPtrs          *RepositoryMockCreateParamPtrs
	expectationOrigins RepositoryMockCreateExpectationOrigins
	results            *RepositoryMockCreateResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockCreateParams contains parameters of the Repository.Create
type RepositoryMockCreateParams struct {
	ctx   context.Context
	tx    tx.Transaction
	entry mm_changelog.Entry
}

// RepositoryMockCreateParamPtrs contains pointers to parameters of the Repository.Create
type RepositoryMockCreateParamPtrs struct {
	ctx   *context.Context
	tx    *tx.Transaction
	entry *mm_changelog.Entry
}

// RepositoryMockCreateResults contains results of the Repository.Create
type RepositoryMockCreateResults struct {
	err error
}

// RepositoryMockCreateOrigins contains origins of expectations of the Repository.Create
type RepositoryMockCreateExpectationOrigins struct {
	origin      string
	originCtx   string
	originTx    string
	originEntry string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCreate *mRepositoryMockCreate) Optional() *mRepositoryMockCreate {
	mmCreate.optional = true
	return mmCreate
}

// Expect sets up expected params for Repository.Create
func (mmCreate *mRepositoryMockCreate) Expect(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry) *mRepositoryMockCreate {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{}
	}

	if mmCreate.defaultExpectation.paramPtrs != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by ExpectParams functions")
	}

	mmCreate.defaultExpectation.params = &RepositoryMockCreateParams{ctx, tx, entry}
	mmCreate.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCreate.expectations {
		if minimock.Equal(e.params, mmCreate.defaultExpectation.params) {
			mmCreate.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCreate.defaultExpectation.params)
		}
	}

	return mmCreate
}

// ExpectCtxParam1 sets up expected param ctx for Repository.Create
func (mmCreate *mRepositoryMockCreate) ExpectCtxParam1(ctx context.Context) *mRepositoryMockCreate {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{}
	}

	if mmCreate.defaultExpectation.params != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Expect")
	}

	if mmCreate.defaultExpectation.paramPtrs == nil {
		mmCreate.defaultExpectation.paramPtrs = &RepositoryMockCreateParamPtrs{}
	}
	mmCreate.defaultExpectation.paramPtrs.ctx = &ctx
	mmCreate.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmCreate
}

// ExpectTxParam2 sets up expected param tx for Repository.Create
func (mmCreate *mRepositoryMockCreate) ExpectTxParam2(tx tx.Transaction) *mRepositoryMockCreate {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{}
	}

	if mmCreate.defaultExpectation.params != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Expect")
	}

	if mmCreate.defaultExpectation.paramPtrs == nil {
		mmCreate.defaultExpectation.paramPtrs = &RepositoryMockCreateParamPtrs{}
	}
	mmCreate.defaultExpectation.paramPtrs.tx = &tx
	mmCreate.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmCreate
}

// ExpectEntryParam3 sets up expected param entry for Repository.Create
func (mmCreate *mRepositoryMockCreate) ExpectEntryParam3(entry mm_changelog.Entry) *mRepositoryMockCreate {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{}
	}

	if mmCreate.defaultExpectation.params != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Expect")
	}

	if mmCreate.defaultExpectation.paramPtrs == nil {
		mmCreate.defaultExpectation.paramPtrs = &RepositoryMockCreateParamPtrs{}
	}
	mmCreate.defaultExpectation.paramPtrs.entry = &entry
	mmCreate.defaultExpectation.expectationOrigins.originEntry = minimock.CallerInfo(1)

	return mmCreate
}

// Inspect accepts an inspector function that has same arguments as the Repository.Create
func (mmCreate *mRepositoryMockCreate) Inspect(f func(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry)) *mRepositoryMockCreate {
	if mmCreate.mock.inspectFuncCreate != nil {
		mmCreate.mock.t.Fatalf("Inspect function is already set for RepositoryMock.Create")
	}

	mmCreate.mock.inspectFuncCreate = f

	return mmCreate
}

// Return sets up results that will be returned by Repository.Create
func (mmCreate *mRepositoryMockCreate) Return(err error) *RepositoryMock {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{mock: mmCreate.mock}
	}
	mmCreate.defaultExpectation.results = &RepositoryMockCreateResults{err}
	mmCreate.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCreate.mock
}

// Set uses given function f to mock the Repository.Create method
func (mmCreate *mRepositoryMockCreate) Set(f func(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry) (err error)) *RepositoryMock {
	if mmCreate.defaultExpectation != nil {
		mmCreate.mock.t.Fatalf("Default expectation is already set for the Repository.Create method")
	}

	if len(mmCreate.expectations) > 0 {
		mmCreate.mock.t.Fatalf("Some expectations are already set for the Repository.Create method")
	}

	mmCreate.mock.funcCreate = f
	mmCreate.mock.funcCreateOrigin = minimock.CallerInfo(1)
	return mmCreate.mock
}

// When sets expectation for the Repository.Create which will trigger the result defined by the following
// Then helper
func (mmCreate *mRepositoryMockCreate) When(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry) *RepositoryMockCreateExpectation {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	expectation := &RepositoryMockCreateExpectation{
		mock:               mmCreate.mock,
		params:             &RepositoryMockCreateParams{ctx, tx, entry},
		expectationOrigins: RepositoryMockCreateExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCreate.expectations = append(mmCreate.expectations, expectation)
	return expectation
}

// Then sets up Repository.Create return parameters for the expectation previously defined by the When method
func (e *RepositoryMockCreateExpectation) Then(err error) *RepositoryMock {
	e.results = &RepositoryMockCreateResults{err}
	return e.mock
}

// Times sets number of times Repository.Create should be invoked
func (mmCreate *mRepositoryMockCreate) Times(n uint64) *mRepositoryMockCreate {
	if n == 0 {
		mmCreate.mock.t.Fatalf("Times of RepositoryMock.Create mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCreate.expectedInvocations, n)
	mmCreate.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCreate
}

func (mmCreate *mRepositoryMockCreate) invocationsDone() bool {
	if len(mmCreate.expectations) == 0 && mmCreate.defaultExpectation == nil && mmCreate.mock.funcCreate == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCreate.mock.afterCreateCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCreate.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Create implements mm_changelog.Repository
func (mmCreate *RepositoryMock) Create(ctx context.Context, tx tx.Transaction, entry mm_changelog.Entry) (err error) {
	mm_atomic.AddUint64(&mmCreate.beforeCreateCounter, 1)
	defer mm_atomic.AddUint64(&mmCreate.afterCreateCounter, 1)

	mmCreate.t.Helper()

	if mmCreate.inspectFuncCreate != nil {
		mmCreate.inspectFuncCreate(ctx, tx, entry)
	}

	mm_params := RepositoryMockCreateParams{ctx, tx, entry}

	// Record call args
	mmCreate.CreateMock.mutex.Lock()
	mmCreate.CreateMock.callArgs = append(mmCreate.CreateMock.callArgs, &mm_params)
	mmCreate.CreateMock.mutex.Unlock()

	for _, e := range mmCreate.CreateMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCreate.CreateMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCreate.CreateMock.defaultExpectation.Counter, 1)
		mm_want := mmCreate.CreateMock.defaultExpectation.params
		mm_want_ptrs := mmCreate.CreateMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockCreateParams{ctx, tx, entry}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.entry != nil && !minimock.Equal(*mm_want_ptrs.entry, mm_got.entry) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter entry, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originEntry, *mm_want_ptrs.entry, mm_got.entry, minimock.Diff(*mm_want_ptrs.entry, mm_got.entry))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCreate.CreateMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCreate.CreateMock.defaultExpectation.results
		if mm_results == nil {
			mmCreate.t.Fatal("No results are set for the RepositoryMock.Create")
		}
		return (*mm_results).err
	}
	if mmCreate.funcCreate != nil {
		return mmCreate.funcCreate(ctx, tx, entry)
	}
	mmCreate.t.Fatalf("Unexpected call to RepositoryMock.Create. %v %v %v", ctx, tx, entry)
	return
}

// CreateAfterCounter returns a count of finished RepositoryMock.Create invocations
func (mmCreate *RepositoryMock) CreateAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCreate.afterCreateCounter)
}

// CreateBeforeCounter returns a count of RepositoryMock.Create invocations
func (mmCreate *RepositoryMock) CreateBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCreate.beforeCreateCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.Create.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCreate *mRepositoryMockCreate) Calls() []*RepositoryMockCreateParams {
	mmCreate.mutex.RLock()

	argCopy := make([]*RepositoryMockCreateParams, len(mmCreate.callArgs))
	copy(argCopy, mmCreate.callArgs)

	mmCreate.mutex.RUnlock()

	return argCopy
}

// MinimockCreateDone returns true if the count of the Create invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockCreateDone() bool {
	if m.CreateMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CreateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CreateMock.invocationsDone()
}

// MinimockCreateInspect logs each unmet expectation
func (m *RepositoryMock) MinimockCreateInspect() {
	for _, e := range m.CreateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.Create at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCreateCounter := mm_atomic.LoadUint64(&m.afterCreateCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CreateMock.defaultExpectation != nil && afterCreateCounter < 1 {
		if m.CreateMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.Create at\n%s", m.CreateMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.Create at\n%s with params: %#v", m.CreateMock.defaultExpectation.expectationOrigins.origin, *m.CreateMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCreate != nil && afterCreateCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.Create at\n%s", m.funcCreateOrigin)
	}

	if !m.CreateMock.invocationsDone() && afterCreateCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.Create at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CreateMock.expectedInvocations), m.CreateMock.expectedInvocationsOrigin, afterCreateCounter)
	}
}

type mRepositoryMockGet struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockGetExpectation
	expectations       []*RepositoryMockGetExpectation

	callArgs []*RepositoryMockGetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockGetExpectation specifies expectation struct of the Repository.Get
type RepositoryMockGetExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockGetParams
	paramPtrs          *RepositoryMockGetParamPtrs
	expectationOrigins RepositoryMockGetExpectationOrigins
	results            *RepositoryMockGetResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockGetParams contains parameters of the Repository.Get
type RepositoryMockGetParams struct {
	ctx context.Context
	id  uuid.UUID
}

// RepositoryMockGetParamPtrs contains pointers to parameters of the Repository.Get
type RepositoryMockGetParamPtrs struct {
	ctx *context.Context
	id  *uuid.UUID
}

// RepositoryMockGetResults contains results of the Repository.Get
type RepositoryMockGetResults struct {
	e1  mm_changelog.Entry
	err error
}

// RepositoryMockGetOrigins contains origins of expectations of the Repository.Get
type RepositoryMockGetExpectationOrigins struct {
	origin    string
	originCtx string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGet *mRepositoryMockGet) Optional() *mRepositoryMockGet {
	mmGet.optional = true
	return mmGet
}

// Expect sets up expected params for Repository.Get
func (mmGet *mRepositoryMockGet) Expect(ctx context.Context, id uuid.UUID) *mRepositoryMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &RepositoryMockGetExpectation{}
	}

	if mmGet.defaultExpectation.paramPtrs != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by ExpectParams functions")
	}

	mmGet.defaultExpectation.params = &RepositoryMockGetParams{ctx, id}
	mmGet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGet.expectations {
		if minimock.Equal(e.params, mmGet.defaultExpectation.params) {
			mmGet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGet.defaultExpectation.params)
		}
	}

	return mmGet
}

// ExpectCtxParam1 sets up expected param ctx for Repository.Get
func (mmGet *mRepositoryMockGet) ExpectCtxParam1(ctx context.Context) *mRepositoryMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &RepositoryMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &RepositoryMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.ctx = &ctx
	mmGet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGet
}

// ExpectIdParam2 sets up expected param id for Repository.Get
func (mmGet *mRepositoryMockGet) ExpectIdParam2(id uuid.UUID) *mRepositoryMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &RepositoryMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &RepositoryMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.id = &id
	mmGet.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmGet
}

// Inspect accepts an inspector function that has same arguments as the Repository.Get
func (mmGet *mRepositoryMockGet) Inspect(f func(ctx context.Context, id uuid.UUID)) *mRepositoryMockGet {
	if mmGet.mock.inspectFuncGet != nil {
		mmGet.mock.t.Fatalf("Inspect function is already set for RepositoryMock.Get")
	}

	mmGet.mock.inspectFuncGet = f

	return mmGet
}

// Return sets up results that will be returned by Repository.Get
func (mmGet *mRepositoryMockGet) Return(e1 mm_changelog.Entry, err error) *RepositoryMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &RepositoryMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &RepositoryMockGetResults{e1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Repository.Get method
func (mmGet *mRepositoryMockGet) Set(f func(ctx context.Context, id uuid.UUID) (e1 mm_changelog.Entry, err error)) *RepositoryMock {
	if mmGet.defaultExpectation != nil {
		mmGet.mock.t.Fatalf("Default expectation is already set for the Repository.Get method")
	}

	if len(mmGet.expectations) > 0 {
		mmGet.mock.t.Fatalf("Some expectations are already set for the Repository.Get method")
	}

	mmGet.mock.funcGet = f
	mmGet.mock.funcGetOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// When sets expectation for the Repository.Get which will trigger the result defined by the following
// Then helper
func (mmGet *mRepositoryMockGet) When(ctx context.Context, id uuid.UUID) *RepositoryMockGetExpectation {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	expectation := &RepositoryMockGetExpectation{
		mock:               mmGet.mock,
		params:             &RepositoryMockGetParams{ctx, id},
		expectationOrigins: RepositoryMockGetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGet.expectations = append(mmGet.expectations, expectation)
	return expectation
}

// Then sets up Repository.Get return parameters for the expectation previously defined by the When method
func (e *RepositoryMockGetExpectation) Then(e1 mm_changelog.Entry, err error) *RepositoryMock {
	e.results = &RepositoryMockGetResults{e1, err}
	return e.mock
}

// Times sets number of times Repository.Get should be invoked
func (mmGet *mRepositoryMockGet) Times(n uint64) *mRepositoryMockGet {
	if n == 0 {
		mmGet.mock.t.Fatalf("Times of RepositoryMock.Get mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGet.expectedInvocations, n)
	mmGet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGet
}

func (mmGet *mRepositoryMockGet) invocationsDone() bool {
	if len(mmGet.expectations) == 0 && mmGet.defaultExpectation == nil && mmGet.mock.funcGet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGet.mock.afterGetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Get implements mm_changelog.Repository
func (mmGet *RepositoryMock) Get(ctx context.Context, id uuid.UUID) (e1 mm_changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmGet.beforeGetCounter, 1)
	defer mm_atomic.AddUint64(&mmGet.afterGetCounter, 1)

	mmGet.t.Helper()

	if mmGet.inspectFuncGet != nil {
		mmGet.inspectFuncGet(ctx, id)
	}

	mm_params := RepositoryMockGetParams{ctx, id}

	// Record call args
	mmGet.GetMock.mutex.Lock()
	mmGet.GetMock.callArgs = append(mmGet.GetMock.callArgs, &mm_params)
	mmGet.GetMock.mutex.Unlock()

	for _, e := range mmGet.GetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.e1, e.results.err
		}
	}

	if mmGet.GetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGet.GetMock.defaultExpectation.Counter, 1)
		mm_want := mmGet.GetMock.defaultExpectation.params
		mm_want_ptrs := mmGet.GetMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockGetParams{ctx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGet.t.Errorf("RepositoryMock.Get got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmGet.t.Errorf("RepositoryMock.Get got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGet.t.Errorf("RepositoryMock.Get got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGet.GetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGet.GetMock.defaultExpectation.results
		if mm_results == nil {
			mmGet.t.Fatal("No results are set for the RepositoryMock.Get")
		}
		return (*mm_results).e1, (*mm_results).err
	}
	if mmGet.funcGet != nil {
		return mmGet.funcGet(ctx, id)
	}
	mmGet.t.Fatalf("Unexpected call to RepositoryMock.Get. %v %v", ctx, id)
	return
}

// GetAfterCounter returns a count of finished RepositoryMock.Get invocations
func (mmGet *RepositoryMock) GetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.afterGetCounter)
}

// GetBeforeCounter returns a count of RepositoryMock.Get invocations
func (mmGet *RepositoryMock) GetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.beforeGetCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.Get.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGet *mRepositoryMockGet) Calls() []*RepositoryMockGetParams {
	mmGet.mutex.RLock()

	argCopy := make([]*RepositoryMockGetParams, len(mmGet.callArgs))
	copy(argCopy, mmGet.callArgs)

	mmGet.mutex.RUnlock()

	return argCopy
}

// MinimockGetDone returns true if the count of the Get invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockGetDone() bool {
	if m.GetMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetMock.invocationsDone()
}

// MinimockGetInspect logs each unmet expectation
func (m *RepositoryMock) MinimockGetInspect() {
	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.Get at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetCounter := mm_atomic.LoadUint64(&m.afterGetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetMock.defaultExpectation != nil && afterGetCounter < 1 {
		if m.GetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.Get at\n%s", m.GetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.Get at\n%s with params: %#v", m.GetMock.defaultExpectation.expectationOrigins.origin, *m.GetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGet != nil && afterGetCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.Get at\n%s", m.funcGetOrigin)
	}

	if !m.GetMock.invocationsDone() && afterGetCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.Get at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetMock.expectedInvocations), m.GetMock.expectedInvocationsOrigin, afterGetCounter)
	}
}

type mRepositoryMockListByArticle struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockListByArticleExpectation
	expectations       []*RepositoryMockListByArticleExpectation

	callArgs []*RepositoryMockListByArticleParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockListByArticleExpectation specifies expectation struct of the Repository.ListByArticle
type RepositoryMockListByArticleExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockListByArticleParams
	paramPtrs          *RepositoryMockListByArticleParamPtrs
	expectationOrigins RepositoryMockListByArticleExpectationOrigins
	results            *RepositoryMockListByArticleResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockListByArticleParams contains parameters of the Repository.ListByArticle
type RepositoryMockListByArticleParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// RepositoryMockListByArticleParamPtrs contains pointers to parameters of the Repository.ListByArticle
type RepositoryMockListByArticleParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// RepositoryMockListByArticleResults contains results of the Repository.ListByArticle
type RepositoryMockListByArticleResults struct {
	ea1 []mm_changelog.Entry
	err error
}

// RepositoryMockListByArticleOrigins contains origins of expectations of the Repository.ListByArticle
type RepositoryMockListByArticleExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListByArticle *mRepositoryMockListByArticle) Optional() *mRepositoryMockListByArticle {
	mmListByArticle.optional = true
	return mmListByArticle
}

// Expect sets up expected params for Repository.ListByArticle
func (mmListByArticle *mRepositoryMockListByArticle) Expect(ctx context.Context, articleID uuid.UUID) *mRepositoryMockListByArticle {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &RepositoryMockListByArticleExpectation{}
	}

	if mmListByArticle.defaultExpectation.paramPtrs != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by ExpectParams functions")
	}

	mmListByArticle.defaultExpectation.params = &RepositoryMockListByArticleParams{ctx, articleID}
	mmListByArticle.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListByArticle.expectations {
		if minimock.Equal(e.params, mmListByArticle.defaultExpectation.params) {
			mmListByArticle.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListByArticle.defaultExpectation.params)
		}
	}

	return mmListByArticle
}

// ExpectCtxParam1 sets up expected param ctx for Repository.ListByArticle
func (mmListByArticle *mRepositoryMockListByArticle) ExpectCtxParam1(ctx context.Context) *mRepositoryMockListByArticle {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &RepositoryMockListByArticleExpectation{}
	}

	if mmListByArticle.defaultExpectation.params != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Expect")
	}

	if mmListByArticle.defaultExpectation.paramPtrs == nil {
		mmListByArticle.defaultExpectation.paramPtrs = &RepositoryMockListByArticleParamPtrs{}
	}
	mmListByArticle.defaultExpectation.paramPtrs.ctx = &ctx
	mmListByArticle.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListByArticle
}

// ExpectArticleIDParam2 sets up expected param articleID for Repository.ListByArticle
func (mmListByArticle *mRepositoryMockListByArticle) ExpectArticleIDParam2(articleID uuid.UUID) *mRepositoryMockListByArticle {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &RepositoryMockListByArticleExpectation{}
	}

	if mmListByArticle.defaultExpectation.params != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Expect")
	}

	if mmListByArticle.defaultExpectation.paramPtrs == nil {
		mmListByArticle.defaultExpectation.paramPtrs = &RepositoryMockListByArticleParamPtrs{}
	}
	mmListByArticle.defaultExpectation.paramPtrs.articleID = &articleID
	mmListByArticle.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmListByArticle
}

// Inspect accepts an inspector function that has same arguments as the Repository.ListByArticle
func (mmListByArticle *mRepositoryMockListByArticle) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mRepositoryMockListByArticle {
	if mmListByArticle.mock.inspectFuncListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("Inspect function is already set for RepositoryMock.ListByArticle")
	}

	mmListByArticle.mock.inspectFuncListByArticle = f

	return mmListByArticle
}

// Return sets up results that will be returned by Repository.ListByArticle
func (mmListByArticle *mRepositoryMockListByArticle) Return(ea1 []mm_changelog.Entry, err error) *RepositoryMock {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &RepositoryMockListByArticleExpectation{mock: mmListByArticle.mock}
	}
	mmListByArticle.defaultExpectation.results = &RepositoryMockListByArticleResults{ea1, err}
	mmListByArticle.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListByArticle.mock
}

// Set uses given function f to mock the Repository.ListByArticle method
func (mmListByArticle *mRepositoryMockListByArticle) Set(f func(ctx context.Context, articleID uuid.UUID) (ea1 []mm_changelog.Entry, err error)) *RepositoryMock {
	if mmListByArticle.defaultExpectation != nil {
		mmListByArticle.mock.t.Fatalf("Default expectation is already set for the Repository.ListByArticle method")
	}

	if len(mmListByArticle.expectations) > 0 {
		mmListByArticle.mock.t.Fatalf("Some expectations are already set for the Repository.ListByArticle method")
	}

	mmListByArticle.mock.funcListByArticle = f
	mmListByArticle.mock.funcListByArticleOrigin = minimock.CallerInfo(1)
	return mmListByArticle.mock
}

// When sets expectation for the Repository.ListByArticle which will trigger the result defined by the following
// Then helper
func (mmListByArticle *mRepositoryMockListByArticle) When(ctx context.Context, articleID uuid.UUID) *RepositoryMockListByArticleExpectation {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Set")
	}

	expectation := &RepositoryMockListByArticleExpectation{
		mock:               mmListByArticle.mock,
		params:             &RepositoryMockListByArticleParams{ctx, articleID},
		expectationOrigins: RepositoryMockListByArticleExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListByArticle.expectations = append(mmListByArticle.expectations, expectation)
	return expectation
}

// Then sets up Repository.ListByArticle return parameters for the expectation previously defined by the When method
func (e *RepositoryMockListByArticleExpectation) Then(ea1 []mm_changelog.Entry, err error) *RepositoryMock {
	e.results = &RepositoryMockListByArticleResults{ea1, err}
	return e.mock
}

// Times sets number of times Repository.ListByArticle should be invoked
func (mmListByArticle *mRepositoryMockListByArticle) Times(n uint64) *mRepositoryMockListByArticle {
	if n == 0 {
		mmListByArticle.mock.t.Fatalf("Times of RepositoryMock.ListByArticle mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListByArticle.expectedInvocations, n)
	mmListByArticle.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListByArticle
}

func (mmListByArticle *mRepositoryMockListByArticle) invocationsDone() bool {
	if len(mmListByArticle.expectations) == 0 && mmListByArticle.defaultExpectation == nil && mmListByArticle.mock.funcListByArticle == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListByArticle.mock.afterListByArticleCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListByArticle.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListByArticle implements mm_changelog.Repository
func (mmListByArticle *RepositoryMock) ListByArticle(ctx context.Context, articleID uuid.UUID) (ea1 []mm_changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmListByArticle.beforeListByArticleCounter, 1)
	defer mm_atomic.AddUint64(&mmListByArticle.afterListByArticleCounter, 1)

	mmListByArticle.t.Helper()

	if mmListByArticle.inspectFuncListByArticle != nil {
		mmListByArticle.inspectFuncListByArticle(ctx, articleID)
	}

	mm_params := RepositoryMockListByArticleParams{ctx, articleID}

	// Record call args
	mmListByArticle.ListByArticleMock.mutex.Lock()
	mmListByArticle.ListByArticleMock.callArgs = append(mmListByArticle.ListByArticleMock.callArgs, &mm_params)
	mmListByArticle.ListByArticleMock.mutex.Unlock()

	for _, e := range mmListByArticle.ListByArticleMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ea1, e.results.err
		}
	}

	if mmListByArticle.ListByArticleMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListByArticle.ListByArticleMock.defaultExpectation.Counter, 1)
		mm_want := mmListByArticle.ListByArticleMock.defaultExpectation.params
		mm_want_ptrs := mmListByArticle.ListByArticleMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockListByArticleParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListByArticle.t.Errorf("RepositoryMock.ListByArticle got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListByArticle.ListByArticleMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmListByArticle.t.Errorf("RepositoryMock.ListByArticle got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListByArticle.ListByArticleMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListByArticle.t.Errorf("RepositoryMock.ListByArticle got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListByArticle.ListByArticleMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListByArticle.ListByArticleMock.defaultExpectation.results
		if mm_results == nil {
			mmListByArticle.t.Fatal("No results are set for the RepositoryMock.ListByArticle")
		}
		return (*mm_results).ea1, (*mm_results).err
	}
	if mmListByArticle.funcListByArticle != nil {
		return mmListByArticle.funcListByArticle(ctx, articleID)
	}
	mmListByArticle.t.Fatalf("Unexpected call to RepositoryMock.ListByArticle. %v %v", ctx, articleID)
	return
}

// ListByArticleAfterCounter returns a count of finished RepositoryMock.ListByArticle invocations
func (mmListByArticle *RepositoryMock) ListByArticleAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListByArticle.afterListByArticleCounter)
}

// ListByArticleBeforeCounter returns a count of RepositoryMock.ListByArticle invocations
func (mmListByArticle *RepositoryMock) ListByArticleBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListByArticle.beforeListByArticleCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.ListByArticle.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListByArticle *mRepositoryMockListByArticle) Calls() []*RepositoryMockListByArticleParams {
	mmListByArticle.mutex.RLock()

	argCopy := make([]*RepositoryMockListByArticleParams, len(mmListByArticle.callArgs))
	copy(argCopy, mmListByArticle.callArgs)

	mmListByArticle.mutex.RUnlock()

	return argCopy
}

// MinimockListByArticleDone returns true if the count of the ListByArticle invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockListByArticleDone() bool {
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
func (m *RepositoryMock) MinimockListByArticleInspect() {
	for _, e := range m.ListByArticleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.ListByArticle at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListByArticleCounter := mm_atomic.LoadUint64(&m.afterListByArticleCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListByArticleMock.defaultExpectation != nil && afterListByArticleCounter < 1 {
		if m.ListByArticleMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.ListByArticle at\n%s", m.ListByArticleMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.ListByArticle at\n%s with params: %#v", m.ListByArticleMock.defaultExpectation.expectationOrigins.origin, *m.ListByArticleMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListByArticle != nil && afterListByArticleCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.ListByArticle at\n%s", m.funcListByArticleOrigin)
	}

	if !m.ListByArticleMock.invocationsDone() && afterListByArticleCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.ListByArticle at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListByArticleMock.expectedInvocations), m.ListByArticleMock.expectedInvocationsOrigin, afterListByArticleCounter)
	}
}

type mRepositoryMockListMissingDiff struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockListMissingDiffExpectation
	expectations       []*RepositoryMockListMissingDiffExpectation

	callArgs []*RepositoryMockListMissingDiffParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockListMissingDiffExpectation specifies expectation struct of the Repository.ListMissingDiff
type RepositoryMockListMissingDiffExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockListMissingDiffParams
	paramPtrs          *RepositoryMockListMissingDiffParamPtrs
	expectationOrigins RepositoryMockListMissingDiffExpectationOrigins
	results            *RepositoryMockListMissingDiffResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockListMissingDiffParams contains parameters of the Repository.ListMissingDiff
type RepositoryMockListMissingDiffParams struct {
	ctx   context.Context
	limit int
}

// RepositoryMockListMissingDiffParamPtrs contains pointers to parameters of the Repository.ListMissingDiff
type RepositoryMockListMissingDiffParamPtrs struct {
	ctx   *context.Context
	limit *int
}

// RepositoryMockListMissingDiffResults contains results of the Repository.ListMissingDiff
type RepositoryMockListMissingDiffResults struct {
	ea1 []mm_changelog.Entry
	err error
}

// RepositoryMockListMissingDiffOrigins contains origins of expectations of the Repository.ListMissingDiff
type RepositoryMockListMissingDiffExpectationOrigins struct {
	origin      string
	originCtx   string
	originLimit string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Optional() *mRepositoryMockListMissingDiff {
	mmListMissingDiff.optional = true
	return mmListMissingDiff
}

// Expect sets up expected params for Repository.ListMissingDiff
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Expect(ctx context.Context, limit int) *mRepositoryMockListMissingDiff {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &RepositoryMockListMissingDiffExpectation{}
	}

	if mmListMissingDiff.defaultExpectation.paramPtrs != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by ExpectParams functions")
	}

	mmListMissingDiff.defaultExpectation.params = &RepositoryMockListMissingDiffParams{ctx, limit}
	mmListMissingDiff.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListMissingDiff.expectations {
		if minimock.Equal(e.params, mmListMissingDiff.defaultExpectation.params) {
			mmListMissingDiff.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListMissingDiff.defaultExpectation.params)
		}
	}

	return mmListMissingDiff
}

// ExpectCtxParam1 sets up expected param ctx for Repository.ListMissingDiff
func (mmListMissingDiff *mRepositoryMockListMissingDiff) ExpectCtxParam1(ctx context.Context) *mRepositoryMockListMissingDiff {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &RepositoryMockListMissingDiffExpectation{}
	}

	if mmListMissingDiff.defaultExpectation.params != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Expect")
	}

	if mmListMissingDiff.defaultExpectation.paramPtrs == nil {
		mmListMissingDiff.defaultExpectation.paramPtrs = &RepositoryMockListMissingDiffParamPtrs{}
	}
	mmListMissingDiff.defaultExpectation.paramPtrs.ctx = &ctx
	mmListMissingDiff.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListMissingDiff
}

// ExpectLimitParam2 sets up expected param limit for Repository.ListMissingDiff
func (mmListMissingDiff *mRepositoryMockListMissingDiff) ExpectLimitParam2(limit int) *mRepositoryMockListMissingDiff {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &RepositoryMockListMissingDiffExpectation{}
	}

	if mmListMissingDiff.defaultExpectation.params != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Expect")
	}

	if mmListMissingDiff.defaultExpectation.paramPtrs == nil {
		mmListMissingDiff.defaultExpectation.paramPtrs = &RepositoryMockListMissingDiffParamPtrs{}
	}
	mmListMissingDiff.defaultExpectation.paramPtrs.limit = &limit
	mmListMissingDiff.defaultExpectation.expectationOrigins.originLimit = minimock.CallerInfo(1)

	return mmListMissingDiff
}

// Inspect accepts an inspector function that has same arguments as the Repository.ListMissingDiff
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Inspect(f func(ctx context.Context, limit int)) *mRepositoryMockListMissingDiff {
	if mmListMissingDiff.mock.inspectFuncListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("Inspect function is already set for RepositoryMock.ListMissingDiff")
	}

	mmListMissingDiff.mock.inspectFuncListMissingDiff = f

	return mmListMissingDiff
}

// Return sets up results that will be returned by Repository.ListMissingDiff
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Return(ea1 []mm_changelog.Entry, err error) *RepositoryMock {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &RepositoryMockListMissingDiffExpectation{mock: mmListMissingDiff.mock}
	}
	mmListMissingDiff.defaultExpectation.results = &RepositoryMockListMissingDiffResults{ea1, err}
	mmListMissingDiff.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListMissingDiff.mock
}

// Set uses given function f to mock the Repository.ListMissingDiff method
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Set(f func(ctx context.Context, limit int) (ea1 []mm_changelog.Entry, err error)) *RepositoryMock {
	if mmListMissingDiff.defaultExpectation != nil {
		mmListMissingDiff.mock.t.Fatalf("Default expectation is already set for the Repository.ListMissingDiff method")
	}

	if len(mmListMissingDiff.expectations) > 0 {
		mmListMissingDiff.mock.t.Fatalf("Some expectations are already set for the Repository.ListMissingDiff method")
	}

	mmListMissingDiff.mock.funcListMissingDiff = f
	mmListMissingDiff.mock.funcListMissingDiffOrigin = minimock.CallerInfo(1)
	return mmListMissingDiff.mock
}

// When sets expectation for the Repository.ListMissingDiff which will trigger the result defined by the following
// Then helper
func (mmListMissingDiff *mRepositoryMockListMissingDiff) When(ctx context.Context, limit int) *RepositoryMockListMissingDiffExpectation {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("RepositoryMock.ListMissingDiff mock is already set by Set")
	}

	expectation := &RepositoryMockListMissingDiffExpectation{
		mock:               mmListMissingDiff.mock,
		params:             &RepositoryMockListMissingDiffParams{ctx, limit},
		expectationOrigins: RepositoryMockListMissingDiffExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListMissingDiff.expectations = append(mmListMissingDiff.expectations, expectation)
	return expectation
}

// Then sets up Repository.ListMissingDiff return parameters for the expectation previously defined by the When method
func (e *RepositoryMockListMissingDiffExpectation) Then(ea1 []mm_changelog.Entry, err error) *RepositoryMock {
	e.results = &RepositoryMockListMissingDiffResults{ea1, err}
	return e.mock
}

// Times sets number of times Repository.ListMissingDiff should be invoked
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Times(n uint64) *mRepositoryMockListMissingDiff {
	if n == 0 {
		mmListMissingDiff.mock.t.Fatalf("Times of RepositoryMock.ListMissingDiff mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListMissingDiff.expectedInvocations, n)
	mmListMissingDiff.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListMissingDiff
}

func (mmListMissingDiff *mRepositoryMockListMissingDiff) invocationsDone() bool {
	if len(mmListMissingDiff.expectations) == 0 && mmListMissingDiff.defaultExpectation == nil && mmListMissingDiff.mock.funcListMissingDiff == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListMissingDiff.mock.afterListMissingDiffCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListMissingDiff.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListMissingDiff implements mm_changelog.Repository
func (mmListMissingDiff *RepositoryMock) ListMissingDiff(ctx context.Context, limit int) (ea1 []mm_changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmListMissingDiff.beforeListMissingDiffCounter, 1)
	defer mm_atomic.AddUint64(&mmListMissingDiff.afterListMissingDiffCounter, 1)

	mmListMissingDiff.t.Helper()

	if mmListMissingDiff.inspectFuncListMissingDiff != nil {
		mmListMissingDiff.inspectFuncListMissingDiff(ctx, limit)
	}

	mm_params := RepositoryMockListMissingDiffParams{ctx, limit}

	// Record call args
	mmListMissingDiff.ListMissingDiffMock.mutex.Lock()
	mmListMissingDiff.ListMissingDiffMock.callArgs = append(mmListMissingDiff.ListMissingDiffMock.callArgs, &mm_params)
	mmListMissingDiff.ListMissingDiffMock.mutex.Unlock()

	for _, e := range mmListMissingDiff.ListMissingDiffMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ea1, e.results.err
		}
	}

	if mmListMissingDiff.ListMissingDiffMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListMissingDiff.ListMissingDiffMock.defaultExpectation.Counter, 1)
		mm_want := mmListMissingDiff.ListMissingDiffMock.defaultExpectation.params
		mm_want_ptrs := mmListMissingDiff.ListMissingDiffMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockListMissingDiffParams{ctx, limit}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListMissingDiff.t.Errorf("RepositoryMock.ListMissingDiff got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingDiff.ListMissingDiffMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.limit != nil && !minimock.Equal(*mm_want_ptrs.limit, mm_got.limit) {
				mmListMissingDiff.t.Errorf("RepositoryMock.ListMissingDiff got unexpected parameter limit, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingDiff.ListMissingDiffMock.defaultExpectation.expectationOrigins.originLimit, *mm_want_ptrs.limit, mm_got.limit, minimock.Diff(*mm_want_ptrs.limit, mm_got.limit))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListMissingDiff.t.Errorf("RepositoryMock.ListMissingDiff got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListMissingDiff.ListMissingDiffMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListMissingDiff.ListMissingDiffMock.defaultExpectation.results
		if mm_results == nil {
			mmListMissingDiff.t.Fatal("No results are set for the RepositoryMock.ListMissingDiff")
		}
		return (*mm_results).ea1, (*mm_results).err
	}
	if mmListMissingDiff.funcListMissingDiff != nil {
		return mmListMissingDiff.funcListMissingDiff(ctx, limit)
	}
	mmListMissingDiff.t.Fatalf("Unexpected call to RepositoryMock.ListMissingDiff. %v %v", ctx, limit)
	return
}

// ListMissingDiffAfterCounter returns a count of finished RepositoryMock.ListMissingDiff invocations
func (mmListMissingDiff *RepositoryMock) ListMissingDiffAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingDiff.afterListMissingDiffCounter)
}

// ListMissingDiffBeforeCounter returns a count of RepositoryMock.ListMissingDiff invocations
func (mmListMissingDiff *RepositoryMock) ListMissingDiffBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingDiff.beforeListMissingDiffCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.ListMissingDiff.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListMissingDiff *mRepositoryMockListMissingDiff) Calls() []*RepositoryMockListMissingDiffParams {
	mmListMissingDiff.mutex.RLock()

	argCopy := make([]*RepositoryMockListMissingDiffParams, len(mmListMissingDiff.callArgs))
	copy(argCopy, mmListMissingDiff.callArgs)

	mmListMissingDiff.mutex.RUnlock()

	return argCopy
}

// MinimockListMissingDiffDone returns true if the count of the ListMissingDiff invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockListMissingDiffDone() bool {
	if m.ListMissingDiffMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListMissingDiffMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListMissingDiffMock.invocationsDone()
}

// MinimockListMissingDiffInspect logs each unmet expectation
func (m *RepositoryMock) MinimockListMissingDiffInspect() {
	for _, e := range m.ListMissingDiffMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.ListMissingDiff at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListMissingDiffCounter := mm_atomic.LoadUint64(&m.afterListMissingDiffCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMissingDiffMock.defaultExpectation != nil && afterListMissingDiffCounter < 1 {
		if m.ListMissingDiffMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.ListMissingDiff at\n%s", m.ListMissingDiffMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.ListMissingDiff at\n%s with params: %#v", m.ListMissingDiffMock.defaultExpectation.expectationOrigins.origin, *m.ListMissingDiffMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListMissingDiff != nil && afterListMissingDiffCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.ListMissingDiff at\n%s", m.funcListMissingDiffOrigin)
	}

	if !m.ListMissingDiffMock.invocationsDone() && afterListMissingDiffCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.ListMissingDiff at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMissingDiffMock.expectedInvocations), m.ListMissingDiffMock.expectedInvocationsOrigin, afterListMissingDiffCounter)
	}
}

type mRepositoryMockUpdateDiffSummary struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockUpdateDiffSummaryExpectation
	expectations       []*RepositoryMockUpdateDiffSummaryExpectation

	callArgs []*RepositoryMockUpdateDiffSummaryParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockUpdateDiffSummaryExpectation specifies expectation struct of the Repository.UpdateDiffSummary
type RepositoryMockUpdateDiffSummaryExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockUpdateDiffSummaryParams
	paramPtrs          *RepositoryMockUpdateDiffSummaryParamPtrs
	expectationOrigins RepositoryMockUpdateDiffSummaryExpectationOrigins
	results            *RepositoryMockUpdateDiffSummaryResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockUpdateDiffSummaryParams contains parameters of the Repository.UpdateDiffSummary
type RepositoryMockUpdateDiffSummaryParams struct {
	ctx     context.Context
	id      uuid.UUID
	summary diff.Stats
}

// RepositoryMockUpdateDiffSummaryParamPtrs contains pointers to parameters of the Repository.UpdateDiffSummary
type RepositoryMockUpdateDiffSummaryParamPtrs struct {
	ctx     *context.Context
	id      *uuid.UUID
	summary *diff.Stats
}

// RepositoryMockUpdateDiffSummaryResults contains results of the Repository.UpdateDiffSummary
type RepositoryMockUpdateDiffSummaryResults struct {
	err error
}

// RepositoryMockUpdateDiffSummaryOrigins contains origins of expectations of the Repository.UpdateDiffSummary
type RepositoryMockUpdateDiffSummaryExpectationOrigins struct {
	origin        string
	originCtx     string
	originId      string
	originSummary string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Optional() *mRepositoryMockUpdateDiffSummary {
	mmUpdateDiffSummary.optional = true
	return mmUpdateDiffSummary
}

// Expect sets up expected params for Repository.UpdateDiffSummary
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Expect(ctx context.Context, id uuid.UUID, summary diff.Stats) *mRepositoryMockUpdateDiffSummary {
	if mmUpdateDiffSummary.mock.funcUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Set")
	}

	if mmUpdateDiffSummary.defaultExpectation == nil {
		mmUpdateDiffSummary.defaultExpectation = &RepositoryMockUpdateDiffSummaryExpectation{}
	}

	if mmUpdateDiffSummary.defaultExpectation.paramPtrs != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by ExpectParams functions")
	}

	mmUpdateDiffSummary.defaultExpectation.params = &RepositoryMockUpdateDiffSummaryParams{ctx, id, summary}
	mmUpdateDiffSummary.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUpdateDiffSummary.expectations {
		if minimock.Equal(e.params, mmUpdateDiffSummary.defaultExpectation.params) {
			mmUpdateDiffSummary.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUpdateDiffSummary.defaultExpectation.params)
		}
	}

	return mmUpdateDiffSummary
}

// ExpectCtxParam1 sets up expected param ctx for Repository.UpdateDiffSummary
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) ExpectCtxParam1(ctx context.Context) *mRepositoryMockUpdateDiffSummary {
	if mmUpdateDiffSummary.mock.funcUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Set")
	}

	if mmUpdateDiffSummary.defaultExpectation == nil {
		mmUpdateDiffSummary.defaultExpectation = &RepositoryMockUpdateDiffSummaryExpectation{}
	}

	if mmUpdateDiffSummary.defaultExpectation.params != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Expect")
	}

	if mmUpdateDiffSummary.defaultExpectation.paramPtrs == nil {
		mmUpdateDiffSummary.defaultExpectation.paramPtrs = &RepositoryMockUpdateDiffSummaryParamPtrs{}
	}
	mmUpdateDiffSummary.defaultExpectation.paramPtrs.ctx = &ctx
	mmUpdateDiffSummary.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUpdateDiffSummary
}

// ExpectIdParam2 sets up expected param id for Repository.UpdateDiffSummary
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) ExpectIdParam2(id uuid.UUID) *mRepositoryMockUpdateDiffSummary {
	if mmUpdateDiffSummary.mock.funcUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Set")
	}

	if mmUpdateDiffSummary.defaultExpectation == nil {
		mmUpdateDiffSummary.defaultExpectation = &RepositoryMockUpdateDiffSummaryExpectation{}
	}

	if mmUpdateDiffSummary.defaultExpectation.params != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Expect")
	}

	if mmUpdateDiffSummary.defaultExpectation.paramPtrs == nil {
		mmUpdateDiffSummary.defaultExpectation.paramPtrs = &RepositoryMockUpdateDiffSummaryParamPtrs{}
	}
	mmUpdateDiffSummary.defaultExpectation.paramPtrs.id = &id
	mmUpdateDiffSummary.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmUpdateDiffSummary
}

// ExpectSummaryParam3 sets up expected param summary for Repository.UpdateDiffSummary
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) ExpectSummaryParam3(summary diff.Stats) *mRepositoryMockUpdateDiffSummary {
	if mmUpdateDiffSummary.mock.funcUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Set")
	}

	if mmUpdateDiffSummary.defaultExpectation == nil {
		mmUpdateDiffSummary.defaultExpectation = &RepositoryMockUpdateDiffSummaryExpectation{}
	}

	if mmUpdateDiffSummary.defaultExpectation.params != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Expect")
	}

	if mmUpdateDiffSummary.defaultExpectation.paramPtrs == nil {
		mmUpdateDiffSummary.defaultExpectation.paramPtrs = &RepositoryMockUpdateDiffSummaryParamPtrs{}
	}
	mmUpdateDiffSummary.defaultExpectation.paramPtrs.summary = &summary
	mmUpdateDiffSummary.defaultExpectation.expectationOrigins.originSummary = minimock.CallerInfo(1)

	return mmUpdateDiffSummary
}

// Inspect accepts an inspector function that has same arguments as the Repository.UpdateDiffSummary
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Inspect(f func(ctx context.Context, id uuid.UUID, summary diff.Stats)) *mRepositoryMockUpdateDiffSummary {
	if mmUpdateDiffSummary.mock.inspectFuncUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("Inspect function is already set for RepositoryMock.UpdateDiffSummary")
	}

	mmUpdateDiffSummary.mock.inspectFuncUpdateDiffSummary = f

	return mmUpdateDiffSummary
}

// Return sets up results that will be returned by Repository.UpdateDiffSummary
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Return(err error) *RepositoryMock {
	if mmUpdateDiffSummary.mock.funcUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Set")
	}

	if mmUpdateDiffSummary.defaultExpectation == nil {
		mmUpdateDiffSummary.defaultExpectation = &RepositoryMockUpdateDiffSummaryExpectation{mock: mmUpdateDiffSummary.mock}
	}
	mmUpdateDiffSummary.defaultExpectation.results = &RepositoryMockUpdateDiffSummaryResults{err}
	mmUpdateDiffSummary.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUpdateDiffSummary.mock
}

// Set uses given function f to mock the Repository.UpdateDiffSummary method
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Set(f func(ctx context.Context, id uuid.UUID, summary diff.Stats) (err error)) *RepositoryMock {
	if mmUpdateDiffSummary.defaultExpectation != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("Default expectation is already set for the Repository.UpdateDiffSummary method")
	}

	if len(mmUpdateDiffSummary.expectations) > 0 {
		mmUpdateDiffSummary.mock.t.Fatalf("Some expectations are already set for the Repository.UpdateDiffSummary method")
	}

	mmUpdateDiffSummary.mock.funcUpdateDiffSummary = f
	mmUpdateDiffSummary.mock.funcUpdateDiffSummaryOrigin = minimock.CallerInfo(1)
	return mmUpdateDiffSummary.mock
}

// When sets expectation for the Repository.UpdateDiffSummary which will trigger the result defined by the following
// Then helper
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) When(ctx context.Context, id uuid.UUID, summary diff.Stats) *RepositoryMockUpdateDiffSummaryExpectation {
	if mmUpdateDiffSummary.mock.funcUpdateDiffSummary != nil {
		mmUpdateDiffSummary.mock.t.Fatalf("RepositoryMock.UpdateDiffSummary mock is already set by Set")
	}

	expectation := &RepositoryMockUpdateDiffSummaryExpectation{
		mock:               mmUpdateDiffSummary.mock,
		params:             &RepositoryMockUpdateDiffSummaryParams{ctx, id, summary},
		expectationOrigins: RepositoryMockUpdateDiffSummaryExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUpdateDiffSummary.expectations = append(mmUpdateDiffSummary.expectations, expectation)
	return expectation
}

// Then sets up Repository.UpdateDiffSummary return parameters for the expectation previously defined by the When method
func (e *RepositoryMockUpdateDiffSummaryExpectation) Then(err error) *RepositoryMock {
	e.results = &RepositoryMockUpdateDiffSummaryResults{err}
	return e.mock
}

// Times sets number of times Repository.UpdateDiffSummary should be invoked
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Times(n uint64) *mRepositoryMockUpdateDiffSummary {
	if n == 0 {
		mmUpdateDiffSummary.mock.t.Fatalf("Times of RepositoryMock.UpdateDiffSummary mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUpdateDiffSummary.expectedInvocations, n)
	mmUpdateDiffSummary.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUpdateDiffSummary
}

func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) invocationsDone() bool {
	if len(mmUpdateDiffSummary.expectations) == 0 && mmUpdateDiffSummary.defaultExpectation == nil && mmUpdateDiffSummary.mock.funcUpdateDiffSummary == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUpdateDiffSummary.mock.afterUpdateDiffSummaryCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUpdateDiffSummary.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// UpdateDiffSummary implements mm_changelog.Repository
func (mmUpdateDiffSummary *RepositoryMock) UpdateDiffSummary(ctx context.Context, id uuid.UUID, summary diff.Stats) (err error) {
	mm_atomic.AddUint64(&mmUpdateDiffSummary.beforeUpdateDiffSummaryCounter, 1)
	defer mm_atomic.AddUint64(&mmUpdateDiffSummary.afterUpdateDiffSummaryCounter, 1)

	mmUpdateDiffSummary.t.Helper()

	if mmUpdateDiffSummary.inspectFuncUpdateDiffSummary != nil {
		mmUpdateDiffSummary.inspectFuncUpdateDiffSummary(ctx, id, summary)
	}

	mm_params := RepositoryMockUpdateDiffSummaryParams{ctx, id, summary}

	// Record call args
	mmUpdateDiffSummary.UpdateDiffSummaryMock.mutex.Lock()
	mmUpdateDiffSummary.UpdateDiffSummaryMock.callArgs = append(mmUpdateDiffSummary.UpdateDiffSummaryMock.callArgs, &mm_params)
	mmUpdateDiffSummary.UpdateDiffSummaryMock.mutex.Unlock()

	for _, e := range mmUpdateDiffSummary.UpdateDiffSummaryMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.Counter, 1)
		mm_want := mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.params
		mm_want_ptrs := mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockUpdateDiffSummaryParams{ctx, id, summary}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUpdateDiffSummary.t.Errorf("RepositoryMock.UpdateDiffSummary got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmUpdateDiffSummary.t.Errorf("RepositoryMock.UpdateDiffSummary got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

			if mm_want_ptrs.summary != nil && !minimock.Equal(*mm_want_ptrs.summary, mm_got.summary) {
				mmUpdateDiffSummary.t.Errorf("RepositoryMock.UpdateDiffSummary got unexpected parameter summary, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.expectationOrigins.originSummary, *mm_want_ptrs.summary, mm_got.summary, minimock.Diff(*mm_want_ptrs.summary, mm_got.summary))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUpdateDiffSummary.t.Errorf("RepositoryMock.UpdateDiffSummary got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUpdateDiffSummary.UpdateDiffSummaryMock.defaultExpectation.results
		if mm_results == nil {
			mmUpdateDiffSummary.t.Fatal("No results are set for the RepositoryMock.UpdateDiffSummary")
		}
		return (*mm_results).err
	}
	if mmUpdateDiffSummary.funcUpdateDiffSummary != nil {
		return mmUpdateDiffSummary.funcUpdateDiffSummary(ctx, id, summary)
	}
	mmUpdateDiffSummary.t.Fatalf("Unexpected call to RepositoryMock.UpdateDiffSummary. %v %v %v", ctx, id, summary)
	return
}

// UpdateDiffSummaryAfterCounter returns a count of finished RepositoryMock.UpdateDiffSummary invocations
func (mmUpdateDiffSummary *RepositoryMock) UpdateDiffSummaryAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUpdateDiffSummary.afterUpdateDiffSummaryCounter)
}

// UpdateDiffSummaryBeforeCounter returns a count of RepositoryMock.UpdateDiffSummary invocations
func (mmUpdateDiffSummary *RepositoryMock) UpdateDiffSummaryBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUpdateDiffSummary.beforeUpdateDiffSummaryCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.UpdateDiffSummary.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUpdateDiffSummary *mRepositoryMockUpdateDiffSummary) Calls() []*RepositoryMockUpdateDiffSummaryParams {
	mmUpdateDiffSummary.mutex.RLock()

	argCopy := make([]*RepositoryMockUpdateDiffSummaryParams, len(mmUpdateDiffSummary.callArgs))
	copy(argCopy, mmUpdateDiffSummary.callArgs)

	mmUpdateDiffSummary.mutex.RUnlock()

	return argCopy
}

// MinimockUpdateDiffSummaryDone returns true if the count of the UpdateDiffSummary invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockUpdateDiffSummaryDone() bool {
	if m.UpdateDiffSummaryMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.UpdateDiffSummaryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.UpdateDiffSummaryMock.invocationsDone()
}

// MinimockUpdateDiffSummaryInspect logs each unmet expectation
func (m *RepositoryMock) MinimockUpdateDiffSummaryInspect() {
	for _, e := range m.UpdateDiffSummaryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.UpdateDiffSummary at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUpdateDiffSummaryCounter := mm_atomic.LoadUint64(&m.afterUpdateDiffSummaryCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UpdateDiffSummaryMock.defaultExpectation != nil && afterUpdateDiffSummaryCounter < 1 {
		if m.UpdateDiffSummaryMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.UpdateDiffSummary at\n%s", m.UpdateDiffSummaryMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.UpdateDiffSummary at\n%s with params: %#v", m.UpdateDiffSummaryMock.defaultExpectation.expectationOrigins.origin, *m.UpdateDiffSummaryMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUpdateDiffSummary != nil && afterUpdateDiffSummaryCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.UpdateDiffSummary at\n%s", m.funcUpdateDiffSummaryOrigin)
	}

	if !m.UpdateDiffSummaryMock.invocationsDone() && afterUpdateDiffSummaryCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.UpdateDiffSummary at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UpdateDiffSummaryMock.expectedInvocations), m.UpdateDiffSummaryMock.expectedInvocationsOrigin, afterUpdateDiffSummaryCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *RepositoryMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCreateInspect()

			m.MinimockGetInspect()

			m.MinimockListByArticleInspect()

			m.MinimockListMissingDiffInspect()

			m.MinimockUpdateDiffSummaryInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *RepositoryMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *RepositoryMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCreateDone() &&
		m.MinimockGetDone() &&
		m.MinimockListByArticleDone() &&
		m.MinimockListMissingDiffDone() &&
		m.MinimockUpdateDiffSummaryDone()
}
