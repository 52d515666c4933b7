// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/version.Repository -o repository_mock.go -n RepositoryMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	mm_version "github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// RepositoryMock implements mm_version.Repository
type RepositoryMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCreate          func(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion) (err error)
	funcCreateOrigin    string
	inspectFuncCreate   func(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion)
	afterCreateCounter  uint64
	beforeCreateCounter uint64
	CreateMock          mRepositoryMockCreate

	funcGet          func(ctx context.Context, id uuid.UUID) (d1 mm_version.DocumentVersion, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, id uuid.UUID)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mRepositoryMockGet

	funcGetLatest          func(ctx context.Context, articleID uuid.UUID, role mm_version.Role) (d1 mm_version.DocumentVersion, err error)
	funcGetLatestOrigin    string
	inspectFuncGetLatest   func(ctx context.Context, articleID uuid.UUID, role mm_version.Role)
	afterGetLatestCounter  uint64
	beforeGetLatestCounter uint64
	GetLatestMock          mRepositoryMockGetLatest

	funcGetLatestByFormat          func(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format) (d1 mm_version.DocumentVersion, err error)
	funcGetLatestByFormatOrigin    string
	inspectFuncGetLatestByFormat   func(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format)
	afterGetLatestByFormatCounter  uint64
	beforeGetLatestByFormatCounter uint64
	GetLatestByFormatMock          mRepositoryMockGetLatestByFormat

	funcGetLineageTip          func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) (d1 mm_version.DocumentVersion, err error)
	funcGetLineageTipOrigin    string
	inspectFuncGetLineageTip   func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID)
	afterGetLineageTipCounter  uint64
	beforeGetLineageTipCounter uint64
	GetLineageTipMock          mRepositoryMockGetLineageTip

	funcListByArticle          func(ctx context.Context, articleID uuid.UUID) (da1 []mm_version.DocumentVersion, err error)
	funcListByArticleOrigin    string
	inspectFuncListByArticle   func(ctx context.Context, articleID uuid.UUID)
	afterListByArticleCounter  uint64
	beforeListByArticleCounter uint64
	ListByArticleMock          mRepositoryMockListByArticle

	funcListMissingCounterpart          func(ctx context.Context, limit int) (da1 []mm_version.DocumentVersion, err error)
	funcListMissingCounterpartOrigin    string
	inspectFuncListMissingCounterpart   func(ctx context.Context, limit int)
	afterListMissingCounterpartCounter  uint64
	beforeListMissingCounterpartCounter uint64
	ListMissingCounterpartMock          mRepositoryMockListMissingCounterpart
}

// NewRepositoryMock returns a mock for mm_version.Repository
func NewRepositoryMock(t minimock.Tester) *RepositoryMock {
	m := &RepositoryMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CreateMock = mRepositoryMockCreate{mock: m}
	m.CreateMock.callArgs = []*RepositoryMockCreateParams{}

	m.GetMock = mRepositoryMockGet{mock: m}
	m.GetMock.callArgs = []*RepositoryMockGetParams{}

	m.GetLatestMock = mRepositoryMockGetLatest{mock: m}
	m.GetLatestMock.callArgs = []*RepositoryMockGetLatestParams{}

	m.GetLatestByFormatMock = mRepositoryMockGetLatestByFormat{mock: m}
	m.GetLatestByFormatMock.callArgs = []*RepositoryMockGetLatestByFormatParams{}

	m.GetLineageTipMock = mRepositoryMockGetLineageTip{mock: m}
	m.GetLineageTipMock.callArgs = []*RepositoryMockGetLineageTipParams{}

	m.ListByArticleMock = mRepositoryMockListByArticle{mock: m}
	m.ListByArticleMock.callArgs = []*RepositoryMockListByArticleParams{}

	m.ListMissingCounterpartMock = mRepositoryMockListMissingCounterpart{mock: m}
	m.ListMissingCounterpartMock.callArgs = []*RepositoryMockListMissingCounterpartParams{}

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
	ctx     context.Context
	tx      tx.Transaction
	version mm_version.DocumentVersion
}

// RepositoryMockCreateParamPtrs contains pointers to parameters of the Repository.Create
type RepositoryMockCreateParamPtrs struct {
	ctx     *context.Context
	tx      *tx.Transaction
	version *mm_version.DocumentVersion
}

// RepositoryMockCreateResults contains results of the Repository.Create
type RepositoryMockCreateResults struct {
	err error
}

// RepositoryMockCreateOrigins contains origins of expectations of the Repository.Create
type RepositoryMockCreateExpectationOrigins struct {
	origin        string
	originCtx     string
	originTx      string
	originVersion string
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
func (mmCreate *mRepositoryMockCreate) Expect(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion) *mRepositoryMockCreate {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{}
	}

	if mmCreate.defaultExpectation.paramPtrs != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by ExpectParams functions")
	}

	mmCreate.defaultExpectation.params = &RepositoryMockCreateParams{ctx, tx, version}
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

// ExpectVersionParam3 sets up expected param version for Repository.Create
func (mmCreate *mRepositoryMockCreate) ExpectVersionParam3(version mm_version.DocumentVersion) *mRepositoryMockCreate {
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
	mmCreate.defaultExpectation.paramPtrs.version = &version
	mmCreate.defaultExpectation.expectationOrigins.originVersion = minimock.CallerInfo(1)

	return mmCreate
}

// Inspect accepts an inspector function that has same arguments as the Repository.Create
func (mmCreate *mRepositoryMockCreate) Inspect(f func(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion)) *mRepositoryMockCreate {
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
func (mmCreate *mRepositoryMockCreate) Set(f func(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion) (err error)) *RepositoryMock {
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
func (mmCreate *mRepositoryMockCreate) When(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion) *RepositoryMockCreateExpectation {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	expectation := &RepositoryMockCreateExpectation{
		mock:               mmCreate.mock,
		params:             &RepositoryMockCreateParams{ctx, tx, version},
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

// Create implements mm_version.Repository
func (mmCreate *RepositoryMock) Create(ctx context.Context, tx tx.Transaction, version mm_version.DocumentVersion) (err error) {
	mm_atomic.AddUint64(&mmCreate.beforeCreateCounter, 1)
	defer mm_atomic.AddUint64(&mmCreate.afterCreateCounter, 1)

	mmCreate.t.Helper()

	if mmCreate.inspectFuncCreate != nil {
		mmCreate.inspectFuncCreate(ctx, tx, version)
	}

	mm_params := RepositoryMockCreateParams{ctx, tx, version}

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

		mm_got := RepositoryMockCreateParams{ctx, tx, version}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.version != nil && !minimock.Equal(*mm_want_ptrs.version, mm_got.version) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter version, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originVersion, *mm_want_ptrs.version, mm_got.version, minimock.Diff(*mm_want_ptrs.version, mm_got.version))
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
		return mmCreate.funcCreate(ctx, tx, version)
	}
	mmCreate.t.Fatalf("Unexpected call to RepositoryMock.Create. %v %v %v", ctx, tx, version)
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
	d1  mm_version.DocumentVersion
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
func (mmGet *mRepositoryMockGet) Return(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &RepositoryMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &RepositoryMockGetResults{d1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Repository.Get method
func (mmGet *mRepositoryMockGet) Set(f func(ctx context.Context, id uuid.UUID) (d1 mm_version.DocumentVersion, err error)) *RepositoryMock {
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
func (e *RepositoryMockGetExpectation) Then(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	e.results = &RepositoryMockGetResults{d1, err}
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

// Get implements mm_version.Repository
func (mmGet *RepositoryMock) Get(ctx context.Context, id uuid.UUID) (d1 mm_version.DocumentVersion, err error) {
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
			return e.results.d1, e.results.err
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
		return (*mm_results).d1, (*mm_results).err
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

type mRepositoryMockGetLatest struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockGetLatestExpectation
	expectations       []*RepositoryMockGetLatestExpectation

	callArgs []*RepositoryMockGetLatestParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockGetLatestExpectation specifies expectation struct of the Repository.GetLatest
type RepositoryMockGetLatestExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockGetLatestParams
	paramPtrs          *RepositoryMockGetLatestParamPtrs
	expectationOrigins RepositoryMockGetLatestExpectationOrigins
	results            *RepositoryMockGetLatestResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockGetLatestParams contains parameters of the Repository.GetLatest
type RepositoryMockGetLatestParams struct {
	ctx       context.Context
	articleID uuid.UUID
	role      mm_version.Role
}

// RepositoryMockGetLatestParamPtrs contains pointers to parameters of the Repository.GetLatest
type RepositoryMockGetLatestParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
	role      *mm_version.Role
}

// RepositoryMockGetLatestResults contains results of the Repository.GetLatest
type RepositoryMockGetLatestResults struct {
	d1  mm_version.DocumentVersion
	err error
}

// RepositoryMockGetLatestOrigins contains origins of expectations of the Repository.GetLatest
type RepositoryMockGetLatestExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
	originRole      string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetLatest *mRepositoryMockGetLatest) Optional() *mRepositoryMockGetLatest {
	mmGetLatest.optional = true
	return mmGetLatest
}

// Expect sets up expected params for Repository.GetLatest
func (mmGetLatest *mRepositoryMockGetLatest) Expect(ctx context.Context, articleID uuid.UUID, role mm_version.Role) *mRepositoryMockGetLatest {
	if mmGetLatest.mock.funcGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Set")
	}

	if mmGetLatest.defaultExpectation == nil {
		mmGetLatest.defaultExpectation = &RepositoryMockGetLatestExpectation{}
	}

	if mmGetLatest.defaultExpectation.paramPtrs != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by ExpectParams functions")
	}

	mmGetLatest.defaultExpectation.params = &RepositoryMockGetLatestParams{ctx, articleID, role}
	mmGetLatest.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetLatest.expectations {
		if minimock.Equal(e.params, mmGetLatest.defaultExpectation.params) {
			mmGetLatest.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetLatest.defaultExpectation.params)
		}
	}

	return mmGetLatest
}

// ExpectCtxParam1 sets up expected param ctx for Repository.GetLatest
func (mmGetLatest *mRepositoryMockGetLatest) ExpectCtxParam1(ctx context.Context) *mRepositoryMockGetLatest {
	if mmGetLatest.mock.funcGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Set")
	}

	if mmGetLatest.defaultExpectation == nil {
		mmGetLatest.defaultExpectation = &RepositoryMockGetLatestExpectation{}
	}

	if mmGetLatest.defaultExpectation.params != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Expect")
	}

	if mmGetLatest.defaultExpectation.paramPtrs == nil {
		mmGetLatest.defaultExpectation.paramPtrs = &RepositoryMockGetLatestParamPtrs{}
	}
	mmGetLatest.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetLatest.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetLatest
}

// ExpectArticleIDParam2 sets up expected param articleID for Repository.GetLatest
func (mmGetLatest *mRepositoryMockGetLatest) ExpectArticleIDParam2(articleID uuid.UUID) *mRepositoryMockGetLatest {
	if mmGetLatest.mock.funcGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Set")
	}

	if mmGetLatest.defaultExpectation == nil {
		mmGetLatest.defaultExpectation = &RepositoryMockGetLatestExpectation{}
	}

	if mmGetLatest.defaultExpectation.params != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Expect")
	}

	if mmGetLatest.defaultExpectation.paramPtrs == nil {
		mmGetLatest.defaultExpectation.paramPtrs = &RepositoryMockGetLatestParamPtrs{}
	}
	mmGetLatest.defaultExpectation.paramPtrs.articleID = &articleID
	mmGetLatest.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmGetLatest
}

// ExpectRoleParam3 sets up expected param role for Repository.GetLatest
func (mmGetLatest *mRepositoryMockGetLatest) ExpectRoleParam3(role mm_version.Role) *mRepositoryMockGetLatest {
	if mmGetLatest.mock.funcGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Set")
	}

	if mmGetLatest.defaultExpectation == nil {
		mmGetLatest.defaultExpectation = &RepositoryMockGetLatestExpectation{}
	}

	if mmGetLatest.defaultExpectation.params != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Expect")
	}

	if mmGetLatest.defaultExpectation.paramPtrs == nil {
		mmGetLatest.defaultExpectation.paramPtrs = &RepositoryMockGetLatestParamPtrs{}
	}
	mmGetLatest.defaultExpectation.paramPtrs.role = &role
	mmGetLatest.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmGetLatest
}

// Inspect accepts an inspector function that has same arguments as the Repository.GetLatest
func (mmGetLatest *mRepositoryMockGetLatest) Inspect(f func(ctx context.Context, articleID uuid.UUID, role mm_version.Role)) *mRepositoryMockGetLatest {
	if mmGetLatest.mock.inspectFuncGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("Inspect function is already set for RepositoryMock.GetLatest")
	}

	mmGetLatest.mock.inspectFuncGetLatest = f

	return mmGetLatest
}

// Return sets up results that will be returned by Repository.GetLatest
func (mmGetLatest *mRepositoryMockGetLatest) Return(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	if mmGetLatest.mock.funcGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Set")
	}

	if mmGetLatest.defaultExpectation == nil {
		mmGetLatest.defaultExpectation = &RepositoryMockGetLatestExpectation{mock: mmGetLatest.mock}
	}
	mmGetLatest.defaultExpectation.results = &RepositoryMockGetLatestResults{d1, err}
	mmGetLatest.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetLatest.mock
}

// Set uses given function f to mock the Repository.GetLatest method
func (mmGetLatest *mRepositoryMockGetLatest) Set(f func(ctx context.Context, articleID uuid.UUID, role mm_version.Role) (d1 mm_version.DocumentVersion, err error)) *RepositoryMock {
	if mmGetLatest.defaultExpectation != nil {
		mmGetLatest.mock.t.Fatalf("Default expectation is already set for the Repository.GetLatest method")
	}

	if len(mmGetLatest.expectations) > 0 {
		mmGetLatest.mock.t.Fatalf("Some expectations are already set for the Repository.GetLatest method")
	}

	mmGetLatest.mock.funcGetLatest = f
	mmGetLatest.mock.funcGetLatestOrigin = minimock.CallerInfo(1)
	return mmGetLatest.mock
}

// When sets expectation for the Repository.GetLatest which will trigger the result defined by the following
// Then helper
func (mmGetLatest *mRepositoryMockGetLatest) When(ctx context.Context, articleID uuid.UUID, role mm_version.Role) *RepositoryMockGetLatestExpectation {
	if mmGetLatest.mock.funcGetLatest != nil {
		mmGetLatest.mock.t.Fatalf("RepositoryMock.GetLatest mock is already set by Set")
	}

	expectation := &RepositoryMockGetLatestExpectation{
		mock:               mmGetLatest.mock,
		params:             &RepositoryMockGetLatestParams{ctx, articleID, role},
		expectationOrigins: RepositoryMockGetLatestExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetLatest.expectations = append(mmGetLatest.expectations, expectation)
	return expectation
}

// Then sets up Repository.GetLatest return parameters for the expectation previously defined by the When method
func (e *RepositoryMockGetLatestExpectation) Then(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	e.results = &RepositoryMockGetLatestResults{d1, err}
	return e.mock
}

// Times sets number of times Repository.GetLatest should be invoked
func (mmGetLatest *mRepositoryMockGetLatest) Times(n uint64) *mRepositoryMockGetLatest {
	if n == 0 {
		mmGetLatest.mock.t.Fatalf("Times of RepositoryMock.GetLatest mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetLatest.expectedInvocations, n)
	mmGetLatest.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetLatest
}

func (mmGetLatest *mRepositoryMockGetLatest) invocationsDone() bool {
	if len(mmGetLatest.expectations) == 0 && mmGetLatest.defaultExpectation == nil && mmGetLatest.mock.funcGetLatest == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetLatest.mock.afterGetLatestCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetLatest.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetLatest implements mm_version.Repository
func (mmGetLatest *RepositoryMock) GetLatest(ctx context.Context, articleID uuid.UUID, role mm_version.Role) (d1 mm_version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmGetLatest.beforeGetLatestCounter, 1)
	defer mm_atomic.AddUint64(&mmGetLatest.afterGetLatestCounter, 1)

	mmGetLatest.t.Helper()

	if mmGetLatest.inspectFuncGetLatest != nil {
		mmGetLatest.inspectFuncGetLatest(ctx, articleID, role)
	}

	mm_params := RepositoryMockGetLatestParams{ctx, articleID, role}

	// Record call args
	mmGetLatest.GetLatestMock.mutex.Lock()
	mmGetLatest.GetLatestMock.callArgs = append(mmGetLatest.GetLatestMock.callArgs, &mm_params)
	mmGetLatest.GetLatestMock.mutex.Unlock()

	for _, e := range mmGetLatest.GetLatestMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.d1, e.results.err
		}
	}

	if mmGetLatest.GetLatestMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetLatest.GetLatestMock.defaultExpectation.Counter, 1)
		mm_want := mmGetLatest.GetLatestMock.defaultExpectation.params
		mm_want_ptrs := mmGetLatest.GetLatestMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockGetLatestParams{ctx, articleID, role}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetLatest.t.Errorf("RepositoryMock.GetLatest got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatest.GetLatestMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmGetLatest.t.Errorf("RepositoryMock.GetLatest got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatest.GetLatestMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmGetLatest.t.Errorf("RepositoryMock.GetLatest got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatest.GetLatestMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetLatest.t.Errorf("RepositoryMock.GetLatest got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetLatest.GetLatestMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetLatest.GetLatestMock.defaultExpectation.results
		if mm_results == nil {
			mmGetLatest.t.Fatal("No results are set for the RepositoryMock.GetLatest")
		}
		return (*mm_results).d1, (*mm_results).err
	}
	if mmGetLatest.funcGetLatest != nil {
		return mmGetLatest.funcGetLatest(ctx, articleID, role)
	}
	mmGetLatest.t.Fatalf("Unexpected call to RepositoryMock.GetLatest. %v %v %v", ctx, articleID, role)
	return
}

// GetLatestAfterCounter returns a count of finished RepositoryMock.GetLatest invocations
func (mmGetLatest *RepositoryMock) GetLatestAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetLatest.afterGetLatestCounter)
}

// GetLatestBeforeCounter returns a count of RepositoryMock.GetLatest invocations
func (mmGetLatest *RepositoryMock) GetLatestBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetLatest.beforeGetLatestCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.GetLatest.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetLatest *mRepositoryMockGetLatest) Calls() []*RepositoryMockGetLatestParams {
	mmGetLatest.mutex.RLock()

	argCopy := make([]*RepositoryMockGetLatestParams, len(mmGetLatest.callArgs))
	copy(argCopy, mmGetLatest.callArgs)

	mmGetLatest.mutex.RUnlock()

	return argCopy
}

// MinimockGetLatestDone returns true if the count of the GetLatest invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockGetLatestDone() bool {
	if m.GetLatestMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetLatestMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetLatestMock.invocationsDone()
}

// MinimockGetLatestInspect logs each unmet expectation
func (m *RepositoryMock) MinimockGetLatestInspect() {
	for _, e := range m.GetLatestMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.GetLatest at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetLatestCounter := mm_atomic.LoadUint64(&m.afterGetLatestCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetLatestMock.defaultExpectation != nil && afterGetLatestCounter < 1 {
		if m.GetLatestMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.GetLatest at\n%s", m.GetLatestMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.GetLatest at\n%s with params: %#v", m.GetLatestMock.defaultExpectation.expectationOrigins.origin, *m.GetLatestMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetLatest != nil && afterGetLatestCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.GetLatest at\n%s", m.funcGetLatestOrigin)
	}

	if !m.GetLatestMock.invocationsDone() && afterGetLatestCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.GetLatest at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetLatestMock.expectedInvocations), m.GetLatestMock.expectedInvocationsOrigin, afterGetLatestCounter)
	}
}

type mRepositoryMockGetLatestByFormat struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockGetLatestByFormatExpectation
	expectations       []*RepositoryMockGetLatestByFormatExpectation

	callArgs []*RepositoryMockGetLatestByFormatParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockGetLatestByFormatExpectation specifies expectation struct of the Repository.GetLatestByFormat
type RepositoryMockGetLatestByFormatExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockGetLatestByFormatParams
	paramPtrs          *RepositoryMockGetLatestByFormatParamPtrs
	expectationOrigins RepositoryMockGetLatestByFormatExpectationOrigins
	results            *RepositoryMockGetLatestByFormatResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockGetLatestByFormatParams contains parameters of the Repository.GetLatestByFormat
type RepositoryMockGetLatestByFormatParams struct {
	ctx       context.Context
	articleID uuid.UUID
	role      mm_version.Role
	format    mm_version.Format
}

// RepositoryMockGetLatestByFormatParamPtrs contains pointers to parameters of the Repository.GetLatestByFormat
type RepositoryMockGetLatestByFormatParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
	role      *mm_version.Role
	format    *mm_version.Format
}

// RepositoryMockGetLatestByFormatResults contains results of the Repository.GetLatestByFormat
type RepositoryMockGetLatestByFormatResults struct {
	d1  mm_version.DocumentVersion
	err error
}

// RepositoryMockGetLatestByFormatOrigins contains origins of expectations of the Repository.GetLatestByFormat
type RepositoryMockGetLatestByFormatExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
	originRole      string
	originFormat    string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Optional() *mRepositoryMockGetLatestByFormat {
	mmGetLatestByFormat.optional = true
	return mmGetLatestByFormat
}

// Expect sets up expected params for Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Expect(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format) *mRepositoryMockGetLatestByFormat {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	if mmGetLatestByFormat.defaultExpectation == nil {
		mmGetLatestByFormat.defaultExpectation = &RepositoryMockGetLatestByFormatExpectation{}
	}

	if mmGetLatestByFormat.defaultExpectation.paramPtrs != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by ExpectParams functions")
	}

	mmGetLatestByFormat.defaultExpectation.params = &RepositoryMockGetLatestByFormatParams{ctx, articleID, role, format}
	mmGetLatestByFormat.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetLatestByFormat.expectations {
		if minimock.Equal(e.params, mmGetLatestByFormat.defaultExpectation.params) {
			mmGetLatestByFormat.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetLatestByFormat.defaultExpectation.params)
		}
	}

	return mmGetLatestByFormat
}

// ExpectCtxParam1 sets up expected param ctx for Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) ExpectCtxParam1(ctx context.Context) *mRepositoryMockGetLatestByFormat {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	if mmGetLatestByFormat.defaultExpectation == nil {
		mmGetLatestByFormat.defaultExpectation = &RepositoryMockGetLatestByFormatExpectation{}
	}

	if mmGetLatestByFormat.defaultExpectation.params != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Expect")
	}

	if mmGetLatestByFormat.defaultExpectation.paramPtrs == nil {
		mmGetLatestByFormat.defaultExpectation.paramPtrs = &RepositoryMockGetLatestByFormatParamPtrs{}
	}
	mmGetLatestByFormat.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetLatestByFormat.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetLatestByFormat
}

// ExpectArticleIDParam2 sets up expected param articleID for Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) ExpectArticleIDParam2(articleID uuid.UUID) *mRepositoryMockGetLatestByFormat {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	if mmGetLatestByFormat.defaultExpectation == nil {
		mmGetLatestByFormat.defaultExpectation = &RepositoryMockGetLatestByFormatExpectation{}
	}

	if mmGetLatestByFormat.defaultExpectation.params != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Expect")
	}

	if mmGetLatestByFormat.defaultExpectation.paramPtrs == nil {
		mmGetLatestByFormat.defaultExpectation.paramPtrs = &RepositoryMockGetLatestByFormatParamPtrs{}
	}
	mmGetLatestByFormat.defaultExpectation.paramPtrs.articleID = &articleID
	mmGetLatestByFormat.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmGetLatestByFormat
}

// ExpectRoleParam3 sets up expected param role for Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) ExpectRoleParam3(role mm_version.Role) *mRepositoryMockGetLatestByFormat {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	if mmGetLatestByFormat.defaultExpectation == nil {
		mmGetLatestByFormat.defaultExpectation = &RepositoryMockGetLatestByFormatExpectation{}
	}

	if mmGetLatestByFormat.defaultExpectation.params != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Expect")
	}

	if mmGetLatestByFormat.defaultExpectation.paramPtrs == nil {
		mmGetLatestByFormat.defaultExpectation.paramPtrs = &RepositoryMockGetLatestByFormatParamPtrs{}
	}
	mmGetLatestByFormat.defaultExpectation.paramPtrs.role = &role
	mmGetLatestByFormat.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmGetLatestByFormat
}

// ExpectFormatParam4 sets up expected param format for Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) ExpectFormatParam4(format mm_version.Format) *mRepositoryMockGetLatestByFormat {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	if mmGetLatestByFormat.defaultExpectation == nil {
		mmGetLatestByFormat.defaultExpectation = &RepositoryMockGetLatestByFormatExpectation{}
	}

	if mmGetLatestByFormat.defaultExpectation.params != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Expect")
	}

	if mmGetLatestByFormat.defaultExpectation.paramPtrs == nil {
		mmGetLatestByFormat.defaultExpectation.paramPtrs = &RepositoryMockGetLatestByFormatParamPtrs{}
	}
	mmGetLatestByFormat.defaultExpectation.paramPtrs.format = &format
	mmGetLatestByFormat.defaultExpectation.expectationOrigins.originFormat = minimock.CallerInfo(1)

	return mmGetLatestByFormat
}

// Inspect accepts an inspector function that has same arguments as the Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Inspect(f func(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format)) *mRepositoryMockGetLatestByFormat {
	if mmGetLatestByFormat.mock.inspectFuncGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("Inspect function is already set for RepositoryMock.GetLatestByFormat")
	}

	mmGetLatestByFormat.mock.inspectFuncGetLatestByFormat = f

	return mmGetLatestByFormat
}

// Return sets up results that will be returned by Repository.GetLatestByFormat
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Return(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	if mmGetLatestByFormat.defaultExpectation == nil {
		mmGetLatestByFormat.defaultExpectation = &RepositoryMockGetLatestByFormatExpectation{mock: mmGetLatestByFormat.mock}
	}
	mmGetLatestByFormat.defaultExpectation.results = &RepositoryMockGetLatestByFormatResults{d1, err}
	mmGetLatestByFormat.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetLatestByFormat.mock
}

// Set uses given function f to mock the Repository.GetLatestByFormat method
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Set(f func(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format) (d1 mm_version.DocumentVersion, err error)) *RepositoryMock {
	if mmGetLatestByFormat.defaultExpectation != nil {
		mmGetLatestByFormat.mock.t.Fatalf("Default expectation is already set for the Repository.GetLatestByFormat method")
	}

	if len(mmGetLatestByFormat.expectations) > 0 {
		mmGetLatestByFormat.mock.t.Fatalf("Some expectations are already set for the Repository.GetLatestByFormat method")
	}

	mmGetLatestByFormat.mock.funcGetLatestByFormat = f
	mmGetLatestByFormat.mock.funcGetLatestByFormatOrigin = minimock.CallerInfo(1)
	return mmGetLatestByFormat.mock
}

// When sets expectation for the Repository.GetLatestByFormat which will trigger the result defined by the following
// Then helper
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) When(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format) *RepositoryMockGetLatestByFormatExpectation {
	if mmGetLatestByFormat.mock.funcGetLatestByFormat != nil {
		mmGetLatestByFormat.mock.t.Fatalf("RepositoryMock.GetLatestByFormat mock is already set by Set")
	}

	expectation := &RepositoryMockGetLatestByFormatExpectation{
		mock:               mmGetLatestByFormat.mock,
		params:             &RepositoryMockGetLatestByFormatParams{ctx, articleID, role, format},
		expectationOrigins: RepositoryMockGetLatestByFormatExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetLatestByFormat.expectations = append(mmGetLatestByFormat.expectations, expectation)
	return expectation
}

// Then sets up Repository.GetLatestByFormat return parameters for the expectation previously defined by the When method
func (e *RepositoryMockGetLatestByFormatExpectation) Then(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	e.results = &RepositoryMockGetLatestByFormatResults{d1, err}
	return e.mock
}

// Times sets number of times Repository.GetLatestByFormat should be invoked
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Times(n uint64) *mRepositoryMockGetLatestByFormat {
	if n == 0 {
		mmGetLatestByFormat.mock.t.Fatalf("Times of RepositoryMock.GetLatestByFormat mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetLatestByFormat.expectedInvocations, n)
	mmGetLatestByFormat.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetLatestByFormat
}

func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) invocationsDone() bool {
	if len(mmGetLatestByFormat.expectations) == 0 && mmGetLatestByFormat.defaultExpectation == nil && mmGetLatestByFormat.mock.funcGetLatestByFormat == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetLatestByFormat.mock.afterGetLatestByFormatCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetLatestByFormat.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetLatestByFormat implements mm_version.Repository
func (mmGetLatestByFormat *RepositoryMock) GetLatestByFormat(ctx context.Context, articleID uuid.UUID, role mm_version.Role, format mm_version.Format) (d1 mm_version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmGetLatestByFormat.beforeGetLatestByFormatCounter, 1)
	defer mm_atomic.AddUint64(&mmGetLatestByFormat.afterGetLatestByFormatCounter, 1)

	mmGetLatestByFormat.t.Helper()

	if mmGetLatestByFormat.inspectFuncGetLatestByFormat != nil {
		mmGetLatestByFormat.inspectFuncGetLatestByFormat(ctx, articleID, role, format)
	}

	mm_params := RepositoryMockGetLatestByFormatParams{ctx, articleID, role, format}

	// Record call args
	mmGetLatestByFormat.GetLatestByFormatMock.mutex.Lock()
	mmGetLatestByFormat.GetLatestByFormatMock.callArgs = append(mmGetLatestByFormat.GetLatestByFormatMock.callArgs, &mm_params)
	mmGetLatestByFormat.GetLatestByFormatMock.mutex.Unlock()

	for _, e := range mmGetLatestByFormat.GetLatestByFormatMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.d1, e.results.err
		}
	}

	if mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.Counter, 1)
		mm_want := mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.params
		mm_want_ptrs := mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockGetLatestByFormatParams{ctx, articleID, role, format}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetLatestByFormat.t.Errorf("RepositoryMock.GetLatestByFormat got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmGetLatestByFormat.t.Errorf("RepositoryMock.GetLatestByFormat got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmGetLatestByFormat.t.Errorf("RepositoryMock.GetLatestByFormat got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

			if mm_want_ptrs.format != nil && !minimock.Equal(*mm_want_ptrs.format, mm_got.format) {
				mmGetLatestByFormat.t.Errorf("RepositoryMock.GetLatestByFormat got unexpected parameter format, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.expectationOrigins.originFormat, *mm_want_ptrs.format, mm_got.format, minimock.Diff(*mm_want_ptrs.format, mm_got.format))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetLatestByFormat.t.Errorf("RepositoryMock.GetLatestByFormat got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetLatestByFormat.GetLatestByFormatMock.defaultExpectation.results
		if mm_results == nil {
			mmGetLatestByFormat.t.Fatal("No results are set for the RepositoryMock.GetLatestByFormat")
		}
		return (*mm_results).d1, (*mm_results).err
	}
	if mmGetLatestByFormat.funcGetLatestByFormat != nil {
		return mmGetLatestByFormat.funcGetLatestByFormat(ctx, articleID, role, format)
	}
	mmGetLatestByFormat.t.Fatalf("Unexpected call to RepositoryMock.GetLatestByFormat. %v %v %v %v", ctx, articleID, role, format)
	return
}

// GetLatestByFormatAfterCounter returns a count of finished RepositoryMock.GetLatestByFormat invocations
func (mmGetLatestByFormat *RepositoryMock) GetLatestByFormatAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetLatestByFormat.afterGetLatestByFormatCounter)
}

// GetLatestByFormatBeforeCounter returns a count of RepositoryMock.GetLatestByFormat invocations
func (mmGetLatestByFormat *RepositoryMock) GetLatestByFormatBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetLatestByFormat.beforeGetLatestByFormatCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.GetLatestByFormat.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetLatestByFormat *mRepositoryMockGetLatestByFormat) Calls() []*RepositoryMockGetLatestByFormatParams {
	mmGetLatestByFormat.mutex.RLock()

	argCopy := make([]*RepositoryMockGetLatestByFormatParams, len(mmGetLatestByFormat.callArgs))
	copy(argCopy, mmGetLatestByFormat.callArgs)

	mmGetLatestByFormat.mutex.RUnlock()

	return argCopy
}

// MinimockGetLatestByFormatDone returns true if the count of the GetLatestByFormat invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockGetLatestByFormatDone() bool {
	if m.GetLatestByFormatMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetLatestByFormatMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetLatestByFormatMock.invocationsDone()
}

// MinimockGetLatestByFormatInspect logs each unmet expectation
func (m *RepositoryMock) MinimockGetLatestByFormatInspect() {
	for _, e := range m.GetLatestByFormatMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.GetLatestByFormat at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetLatestByFormatCounter := mm_atomic.LoadUint64(&m.afterGetLatestByFormatCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetLatestByFormatMock.defaultExpectation != nil && afterGetLatestByFormatCounter < 1 {
		if m.GetLatestByFormatMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.GetLatestByFormat at\n%s", m.GetLatestByFormatMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.GetLatestByFormat at\n%s with params: %#v", m.GetLatestByFormatMock.defaultExpectation.expectationOrigins.origin, *m.GetLatestByFormatMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetLatestByFormat != nil && afterGetLatestByFormatCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.GetLatestByFormat at\n%s", m.funcGetLatestByFormatOrigin)
	}

	if !m.GetLatestByFormatMock.invocationsDone() && afterGetLatestByFormatCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.GetLatestByFormat at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetLatestByFormatMock.expectedInvocations), m.GetLatestByFormatMock.expectedInvocationsOrigin, afterGetLatestByFormatCounter)
	}
}

type mRepositoryMockGetLineageTip struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockGetLineageTipExpectation
	expectations       []*RepositoryMockGetLineageTipExpectation

	callArgs []*RepositoryMockGetLineageTipParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockGetLineageTipExpectation specifies expectation struct of the Repository.GetLineageTip
type RepositoryMockGetLineageTipExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockGetLineageTipParams
	paramPtrs          *RepositoryMockGetLineageTipParamPtrs
	expectationOrigins RepositoryMockGetLineageTipExpectationOrigins
	results            *RepositoryMockGetLineageTipResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockGetLineageTipParams contains parameters of the Repository.GetLineageTip
type RepositoryMockGetLineageTipParams struct {
	ctx       context.Context
	tx        tx.Transaction
	articleID uuid.UUID
}

// RepositoryMockGetLineageTipParamPtrs contains pointers to parameters of the Repository.GetLineageTip
type RepositoryMockGetLineageTipParamPtrs struct {
	ctx       *context.Context
	tx        *tx.Transaction
	articleID *uuid.UUID
}

// RepositoryMockGetLineageTipResults contains results of the Repository.GetLineageTip
type RepositoryMockGetLineageTipResults struct {
	d1  mm_version.DocumentVersion
	err error
}

// RepositoryMockGetLineageTipOrigins contains origins of expectations of the Repository.GetLineageTip
type RepositoryMockGetLineageTipExpectationOrigins struct {
	origin          string
	originCtx       string
	originTx        string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Optional() *mRepositoryMockGetLineageTip {
	mmGetLineageTip.optional = true
	return mmGetLineageTip
}

// Expect sets up expected params for Repository.GetLineageTip
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Expect(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) *mRepositoryMockGetLineageTip {
	if mmGetLineageTip.mock.funcGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Set")
	}

	if mmGetLineageTip.defaultExpectation == nil {
		mmGetLineageTip.defaultExpectation = &RepositoryMockGetLineageTipExpectation{}
	}

	if mmGetLineageTip.defaultExpectation.paramPtrs != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by ExpectParams functions")
	}

	mmGetLineageTip.defaultExpectation.params = &RepositoryMockGetLineageTipParams{ctx, tx, articleID}
	mmGetLineageTip.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetLineageTip.expectations {
		if minimock.Equal(e.params, mmGetLineageTip.defaultExpectation.params) {
			mmGetLineageTip.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetLineageTip.defaultExpectation.params)
		}
	}

	return mmGetLineageTip
}

// ExpectCtxParam1 sets up expected param ctx for Repository.GetLineageTip
func (mmGetLineageTip *mRepositoryMockGetLineageTip) ExpectCtxParam1(ctx context.Context) *mRepositoryMockGetLineageTip {
	if mmGetLineageTip.mock.funcGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Set")
	}

	if mmGetLineageTip.defaultExpectation == nil {
		mmGetLineageTip.defaultExpectation = &RepositoryMockGetLineageTipExpectation{}
	}

	if mmGetLineageTip.defaultExpectation.params != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Expect")
	}

	if mmGetLineageTip.defaultExpectation.paramPtrs == nil {
		mmGetLineageTip.defaultExpectation.paramPtrs = &RepositoryMockGetLineageTipParamPtrs{}
	}
	mmGetLineageTip.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetLineageTip.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetLineageTip
}

// ExpectTxParam2 sets up expected param tx for Repository.GetLineageTip
func (mmGetLineageTip *mRepositoryMockGetLineageTip) ExpectTxParam2(tx tx.Transaction) *mRepositoryMockGetLineageTip {
	if mmGetLineageTip.mock.funcGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Set")
	}

	if mmGetLineageTip.defaultExpectation == nil {
		mmGetLineageTip.defaultExpectation = &RepositoryMockGetLineageTipExpectation{}
	}

	if mmGetLineageTip.defaultExpectation.params != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Expect")
	}

	if mmGetLineageTip.defaultExpectation.paramPtrs == nil {
		mmGetLineageTip.defaultExpectation.paramPtrs = &RepositoryMockGetLineageTipParamPtrs{}
	}
	mmGetLineageTip.defaultExpectation.paramPtrs.tx = &tx
	mmGetLineageTip.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmGetLineageTip
}

// ExpectArticleIDParam3 sets up expected param articleID for Repository.GetLineageTip
func (mmGetLineageTip *mRepositoryMockGetLineageTip) ExpectArticleIDParam3(articleID uuid.UUID) *mRepositoryMockGetLineageTip {
	if mmGetLineageTip.mock.funcGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Set")
	}

	if mmGetLineageTip.defaultExpectation == nil {
		mmGetLineageTip.defaultExpectation = &RepositoryMockGetLineageTipExpectation{}
	}

	if mmGetLineageTip.defaultExpectation.params != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Expect")
	}

	if mmGetLineageTip.defaultExpectation.paramPtrs == nil {
		mmGetLineageTip.defaultExpectation.paramPtrs = &RepositoryMockGetLineageTipParamPtrs{}
	}
	mmGetLineageTip.defaultExpectation.paramPtrs.articleID = &articleID
	mmGetLineageTip.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmGetLineageTip
}

// Inspect accepts an inspector function that has same arguments as the Repository.GetLineageTip
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Inspect(f func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID)) *mRepositoryMockGetLineageTip {
	if mmGetLineageTip.mock.inspectFuncGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("Inspect function is already set for RepositoryMock.GetLineageTip")
	}

	mmGetLineageTip.mock.inspectFuncGetLineageTip = f

	return mmGetLineageTip
}

// Return sets up results that will be returned by Repository.GetLineageTip
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Return(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	if mmGetLineageTip.mock.funcGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Set")
	}

	if mmGetLineageTip.defaultExpectation == nil {
		mmGetLineageTip.defaultExpectation = &RepositoryMockGetLineageTipExpectation{mock: mmGetLineageTip.mock}
	}
	mmGetLineageTip.defaultExpectation.results = &RepositoryMockGetLineageTipResults{d1, err}
	mmGetLineageTip.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetLineageTip.mock
}

// Set uses given function f to mock the Repository.GetLineageTip method
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Set(f func(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) (d1 mm_version.DocumentVersion, err error)) *RepositoryMock {
	if mmGetLineageTip.defaultExpectation != nil {
		mmGetLineageTip.mock.t.Fatalf("Default expectation is already set for the Repository.GetLineageTip method")
	}

	if len(mmGetLineageTip.expectations) > 0 {
		mmGetLineageTip.mock.t.Fatalf("Some expectations are already set for the Repository.GetLineageTip method")
	}

	mmGetLineageTip.mock.funcGetLineageTip = f
	mmGetLineageTip.mock.funcGetLineageTipOrigin = minimock.CallerInfo(1)
	return mmGetLineageTip.mock
}

// When sets expectation for the Repository.GetLineageTip which will trigger the result defined by the following
// Then helper
func (mmGetLineageTip *mRepositoryMockGetLineageTip) When(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) *RepositoryMockGetLineageTipExpectation {
	if mmGetLineageTip.mock.funcGetLineageTip != nil {
		mmGetLineageTip.mock.t.Fatalf("RepositoryMock.GetLineageTip mock is already set by Set")
	}

	expectation := &RepositoryMockGetLineageTipExpectation{
		mock:               mmGetLineageTip.mock,
		params:             &RepositoryMockGetLineageTipParams{ctx, tx, articleID},
		expectationOrigins: RepositoryMockGetLineageTipExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetLineageTip.expectations = append(mmGetLineageTip.expectations, expectation)
	return expectation
}

// Then sets up Repository.GetLineageTip return parameters for the expectation previously defined by the When method
func (e *RepositoryMockGetLineageTipExpectation) Then(d1 mm_version.DocumentVersion, err error) *RepositoryMock {
	e.results = &RepositoryMockGetLineageTipResults{d1, err}
	return e.mock
}

// Times sets number of times Repository.GetLineageTip should be invoked
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Times(n uint64) *mRepositoryMockGetLineageTip {
	if n == 0 {
		mmGetLineageTip.mock.t.Fatalf("Times of RepositoryMock.GetLineageTip mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetLineageTip.expectedInvocations, n)
	mmGetLineageTip.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetLineageTip
}

func (mmGetLineageTip *mRepositoryMockGetLineageTip) invocationsDone() bool {
	if len(mmGetLineageTip.expectations) == 0 && mmGetLineageTip.defaultExpectation == nil && mmGetLineageTip.mock.funcGetLineageTip == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetLineageTip.mock.afterGetLineageTipCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetLineageTip.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetLineageTip implements mm_version.Repository
func (mmGetLineageTip *RepositoryMock) GetLineageTip(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) (d1 mm_version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmGetLineageTip.beforeGetLineageTipCounter, 1)
	defer mm_atomic.AddUint64(&mmGetLineageTip.afterGetLineageTipCounter, 1)

	mmGetLineageTip.t.Helper()

	if mmGetLineageTip.inspectFuncGetLineageTip != nil {
		mmGetLineageTip.inspectFuncGetLineageTip(ctx, tx, articleID)
	}

	mm_params := RepositoryMockGetLineageTipParams{ctx, tx, articleID}

	// Record call args
	mmGetLineageTip.GetLineageTipMock.mutex.Lock()
	mmGetLineageTip.GetLineageTipMock.callArgs = append(mmGetLineageTip.GetLineageTipMock.callArgs, &mm_params)
	mmGetLineageTip.GetLineageTipMock.mutex.Unlock()

	for _, e := range mmGetLineageTip.GetLineageTipMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.d1, e.results.err
		}
	}

	if mmGetLineageTip.GetLineageTipMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetLineageTip.GetLineageTipMock.defaultExpectation.Counter, 1)
		mm_want := mmGetLineageTip.GetLineageTipMock.defaultExpectation.params
		mm_want_ptrs := mmGetLineageTip.GetLineageTipMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockGetLineageTipParams{ctx, tx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetLineageTip.t.Errorf("RepositoryMock.GetLineageTip got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLineageTip.GetLineageTipMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmGetLineageTip.t.Errorf("RepositoryMock.GetLineageTip got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLineageTip.GetLineageTipMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmGetLineageTip.t.Errorf("RepositoryMock.GetLineageTip got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetLineageTip.GetLineageTipMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetLineageTip.t.Errorf("RepositoryMock.GetLineageTip got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetLineageTip.GetLineageTipMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetLineageTip.GetLineageTipMock.defaultExpectation.results
		if mm_results == nil {
			mmGetLineageTip.t.Fatal("No results are set for the RepositoryMock.GetLineageTip")
		}
		return (*mm_results).d1, (*mm_results).err
	}
	if mmGetLineageTip.funcGetLineageTip != nil {
		return mmGetLineageTip.funcGetLineageTip(ctx, tx, articleID)
	}
	mmGetLineageTip.t.Fatalf("Unexpected call to RepositoryMock.GetLineageTip. %v %v %v", ctx, tx, articleID)
	return
}

// GetLineageTipAfterCounter returns a count of finished RepositoryMock.GetLineageTip invocations
func (mmGetLineageTip *RepositoryMock) GetLineageTipAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetLineageTip.afterGetLineageTipCounter)
}

// GetLineageTipBeforeCounter returns a count of RepositoryMock.GetLineageTip invocations
func (mmGetLineageTip *RepositoryMock) GetLineageTipBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetLineageTip.beforeGetLineageTipCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.GetLineageTip.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetLineageTip *mRepositoryMockGetLineageTip) Calls() []*RepositoryMockGetLineageTipParams {
	mmGetLineageTip.mutex.RLock()

	argCopy := make([]*RepositoryMockGetLineageTipParams, len(mmGetLineageTip.callArgs))
	copy(argCopy, mmGetLineageTip.callArgs)

	mmGetLineageTip.mutex.RUnlock()

	return argCopy
}

// MinimockGetLineageTipDone returns true if the count of the GetLineageTip invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockGetLineageTipDone() bool {
	if m.GetLineageTipMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetLineageTipMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetLineageTipMock.invocationsDone()
}

// MinimockGetLineageTipInspect logs each unmet expectation
func (m *RepositoryMock) MinimockGetLineageTipInspect() {
	for _, e := range m.GetLineageTipMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.GetLineageTip at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetLineageTipCounter := mm_atomic.LoadUint64(&m.afterGetLineageTipCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetLineageTipMock.defaultExpectation != nil && afterGetLineageTipCounter < 1 {
		if m.GetLineageTipMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.GetLineageTip at\n%s", m.GetLineageTipMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.GetLineageTip at\n%s with params: %#v", m.GetLineageTipMock.defaultExpectation.expectationOrigins.origin, *m.GetLineageTipMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetLineageTip != nil && afterGetLineageTipCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.GetLineageTip at\n%s", m.funcGetLineageTipOrigin)
	}

	if !m.GetLineageTipMock.invocationsDone() && afterGetLineageTipCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.GetLineageTip at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetLineageTipMock.expectedInvocations), m.GetLineageTipMock.expectedInvocationsOrigin, afterGetLineageTipCounter)
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
	da1 []mm_version.DocumentVersion
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
func (mmListByArticle *mRepositoryMockListByArticle) Return(da1 []mm_version.DocumentVersion, err error) *RepositoryMock {
	if mmListByArticle.mock.funcListByArticle != nil {
		mmListByArticle.mock.t.Fatalf("RepositoryMock.ListByArticle mock is already set by Set")
	}

	if mmListByArticle.defaultExpectation == nil {
		mmListByArticle.defaultExpectation = &RepositoryMockListByArticleExpectation{mock: mmListByArticle.mock}
	}
	mmListByArticle.defaultExpectation.results = &RepositoryMockListByArticleResults{da1, err}
	mmListByArticle.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListByArticle.mock
}

// Set uses given function f to mock the Repository.ListByArticle method
func (mmListByArticle *mRepositoryMockListByArticle) Set(f func(ctx context.Context, articleID uuid.UUID) (da1 []mm_version.DocumentVersion, err error)) *RepositoryMock {
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
func (e *RepositoryMockListByArticleExpectation) Then(da1 []mm_version.DocumentVersion, err error) *RepositoryMock {
	e.results = &RepositoryMockListByArticleResults{da1, err}
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

// ListByArticle implements mm_version.Repository
func (mmListByArticle *RepositoryMock) ListByArticle(ctx context.Context, articleID uuid.UUID) (da1 []mm_version.DocumentVersion, err error) {
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
			return e.results.da1, e.results.err
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
		return (*mm_results).da1, (*mm_results).err
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

type mRepositoryMockListMissingCounterpart struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockListMissingCounterpartExpectation
	expectations       []*RepositoryMockListMissingCounterpartExpectation

	callArgs []*RepositoryMockListMissingCounterpartParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockListMissingCounterpartExpectation specifies expectation struct of the Repository.ListMissingCounterpart
type RepositoryMockListMissingCounterpartExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockListMissingCounterpartParams
	paramPtrs          *RepositoryMockListMissingCounterpartParamPtrs
	expectationOrigins RepositoryMockListMissingCounterpartExpectationOrigins
	results            *RepositoryMockListMissingCounterpartResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockListMissingCounterpartParams contains parameters of the Repository.ListMissingCounterpart
type RepositoryMockListMissingCounterpartParams struct {
	ctx   context.Context
	limit int
}

// RepositoryMockListMissingCounterpartParamPtrs contains pointers to parameters of the Repository.ListMissingCounterpart
type RepositoryMockListMissingCounterpartParamPtrs struct {
	ctx   *context.Context
	limit *int
}

// RepositoryMockListMissingCounterpartResults contains results of the Repository.ListMissingCounterpart
type RepositoryMockListMissingCounterpartResults struct {
	da1 []mm_version.DocumentVersion
	err error
}

// RepositoryMockListMissingCounterpartOrigins contains origins of expectations of the Repository.ListMissingCounterpart
type RepositoryMockListMissingCounterpartExpectationOrigins struct {
	origin      string
	originCtx   string
	originLimit string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Optional() *mRepositoryMockListMissingCounterpart {
	mmListMissingCounterpart.optional = true
	return mmListMissingCounterpart
}

// Expect sets up expected params for Repository.ListMissingCounterpart
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Expect(ctx context.Context, limit int) *mRepositoryMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &RepositoryMockListMissingCounterpartExpectation{}
	}

	if mmListMissingCounterpart.defaultExpectation.paramPtrs != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by ExpectParams functions")
	}

	mmListMissingCounterpart.defaultExpectation.params = &RepositoryMockListMissingCounterpartParams{ctx, limit}
	mmListMissingCounterpart.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListMissingCounterpart.expectations {
		if minimock.Equal(e.params, mmListMissingCounterpart.defaultExpectation.params) {
			mmListMissingCounterpart.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListMissingCounterpart.defaultExpectation.params)
		}
	}

	return mmListMissingCounterpart
}

// ExpectCtxParam1 sets up expected param ctx for Repository.ListMissingCounterpart
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) ExpectCtxParam1(ctx context.Context) *mRepositoryMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &RepositoryMockListMissingCounterpartExpectation{}
	}

	if mmListMissingCounterpart.defaultExpectation.params != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Expect")
	}

	if mmListMissingCounterpart.defaultExpectation.paramPtrs == nil {
		mmListMissingCounterpart.defaultExpectation.paramPtrs = &RepositoryMockListMissingCounterpartParamPtrs{}
	}
	mmListMissingCounterpart.defaultExpectation.paramPtrs.ctx = &ctx
	mmListMissingCounterpart.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListMissingCounterpart
}

// ExpectLimitParam2 sets up expected param limit for Repository.ListMissingCounterpart
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) ExpectLimitParam2(limit int) *mRepositoryMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &RepositoryMockListMissingCounterpartExpectation{}
	}

	if mmListMissingCounterpart.defaultExpectation.params != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Expect")
	}

	if mmListMissingCounterpart.defaultExpectation.paramPtrs == nil {
		mmListMissingCounterpart.defaultExpectation.paramPtrs = &RepositoryMockListMissingCounterpartParamPtrs{}
	}
	mmListMissingCounterpart.defaultExpectation.paramPtrs.limit = &limit
	mmListMissingCounterpart.defaultExpectation.expectationOrigins.originLimit = minimock.CallerInfo(1)

	return mmListMissingCounterpart
}

// Inspect accepts an inspector function that has same arguments as the Repository.ListMissingCounterpart
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Inspect(f func(ctx context.Context, limit int)) *mRepositoryMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.inspectFuncListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("Inspect function is already set for RepositoryMock.ListMissingCounterpart")
	}

	mmListMissingCounterpart.mock.inspectFuncListMissingCounterpart = f

	return mmListMissingCounterpart
}

// Return sets up results that will be returned by Repository.ListMissingCounterpart
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Return(da1 []mm_version.DocumentVersion, err error) *RepositoryMock {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &RepositoryMockListMissingCounterpartExpectation{mock: mmListMissingCounterpart.mock}
	}
	mmListMissingCounterpart.defaultExpectation.results = &RepositoryMockListMissingCounterpartResults{da1, err}
	mmListMissingCounterpart.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListMissingCounterpart.mock
}

// Set uses given function f to mock the Repository.ListMissingCounterpart method
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Set(f func(ctx context.Context, limit int) (da1 []mm_version.DocumentVersion, err error)) *RepositoryMock {
	if mmListMissingCounterpart.defaultExpectation != nil {
		mmListMissingCounterpart.mock.t.Fatalf("Default expectation is already set for the Repository.ListMissingCounterpart method")
	}

	if len(mmListMissingCounterpart.expectations) > 0 {
		mmListMissingCounterpart.mock.t.Fatalf("Some expectations are already set for the Repository.ListMissingCounterpart method")
	}

	mmListMissingCounterpart.mock.funcListMissingCounterpart = f
	mmListMissingCounterpart.mock.funcListMissingCounterpartOrigin = minimock.CallerInfo(1)
	return mmListMissingCounterpart.mock
}

// When sets expectation for the Repository.ListMissingCounterpart which will trigger the result defined by the following
// Then helper
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) When(ctx context.Context, limit int) *RepositoryMockListMissingCounterpartExpectation {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("RepositoryMock.ListMissingCounterpart mock is already set by Set")
	}

	expectation := &RepositoryMockListMissingCounterpartExpectation{
		mock:               mmListMissingCounterpart.mock,
		params:             &RepositoryMockListMissingCounterpartParams{ctx, limit},
		expectationOrigins: RepositoryMockListMissingCounterpartExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListMissingCounterpart.expectations = append(mmListMissingCounterpart.expectations, expectation)
	return expectation
}

// Then sets up Repository.ListMissingCounterpart return parameters for the expectation previously defined by the When method
func (e *RepositoryMockListMissingCounterpartExpectation) Then(da1 []mm_version.DocumentVersion, err error) *RepositoryMock {
	e.results = &RepositoryMockListMissingCounterpartResults{da1, err}
	return e.mock
}

// Times sets number of times Repository.ListMissingCounterpart should be invoked
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Times(n uint64) *mRepositoryMockListMissingCounterpart {
	if n == 0 {
		mmListMissingCounterpart.mock.t.Fatalf("Times of RepositoryMock.ListMissingCounterpart mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListMissingCounterpart.expectedInvocations, n)
	mmListMissingCounterpart.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListMissingCounterpart
}

func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) invocationsDone() bool {
	if len(mmListMissingCounterpart.expectations) == 0 && mmListMissingCounterpart.defaultExpectation == nil && mmListMissingCounterpart.mock.funcListMissingCounterpart == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListMissingCounterpart.mock.afterListMissingCounterpartCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListMissingCounterpart.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListMissingCounterpart implements mm_version.Repository
func (mmListMissingCounterpart *RepositoryMock) ListMissingCounterpart(ctx context.Context, limit int) (da1 []mm_version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmListMissingCounterpart.beforeListMissingCounterpartCounter, 1)
	defer mm_atomic.AddUint64(&mmListMissingCounterpart.afterListMissingCounterpartCounter, 1)

	mmListMissingCounterpart.t.Helper()

	if mmListMissingCounterpart.inspectFuncListMissingCounterpart != nil {
		mmListMissingCounterpart.inspectFuncListMissingCounterpart(ctx, limit)
	}

	mm_params := RepositoryMockListMissingCounterpartParams{ctx, limit}

	// Record call args
	mmListMissingCounterpart.ListMissingCounterpartMock.mutex.Lock()
	mmListMissingCounterpart.ListMissingCounterpartMock.callArgs = append(mmListMissingCounterpart.ListMissingCounterpartMock.callArgs, &mm_params)
	mmListMissingCounterpart.ListMissingCounterpartMock.mutex.Unlock()

	for _, e := range mmListMissingCounterpart.ListMissingCounterpartMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.da1, e.results.err
		}
	}

	if mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.Counter, 1)
		mm_want := mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.params
		mm_want_ptrs := mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockListMissingCounterpartParams{ctx, limit}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListMissingCounterpart.t.Errorf("RepositoryMock.ListMissingCounterpart got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.limit != nil && !minimock.Equal(*mm_want_ptrs.limit, mm_got.limit) {
				mmListMissingCounterpart.t.Errorf("RepositoryMock.ListMissingCounterpart got unexpected parameter limit, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.originLimit, *mm_want_ptrs.limit, mm_got.limit, minimock.Diff(*mm_want_ptrs.limit, mm_got.limit))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListMissingCounterpart.t.Errorf("RepositoryMock.ListMissingCounterpart got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.results
		if mm_results == nil {
			mmListMissingCounterpart.t.Fatal("No results are set for the RepositoryMock.ListMissingCounterpart")
		}
		return (*mm_results).da1, (*mm_results).err
	}
	if mmListMissingCounterpart.funcListMissingCounterpart != nil {
		return mmListMissingCounterpart.funcListMissingCounterpart(ctx, limit)
	}
	mmListMissingCounterpart.t.Fatalf("Unexpected call to RepositoryMock.ListMissingCounterpart. %v %v", ctx, limit)
	return
}

// ListMissingCounterpartAfterCounter returns a count of finished RepositoryMock.ListMissingCounterpart invocations
func (mmListMissingCounterpart *RepositoryMock) ListMissingCounterpartAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingCounterpart.afterListMissingCounterpartCounter)
}

// ListMissingCounterpartBeforeCounter returns a count of RepositoryMock.ListMissingCounterpart invocations
func (mmListMissingCounterpart *RepositoryMock) ListMissingCounterpartBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingCounterpart.beforeListMissingCounterpartCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.ListMissingCounterpart.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListMissingCounterpart *mRepositoryMockListMissingCounterpart) Calls() []*RepositoryMockListMissingCounterpartParams {
	mmListMissingCounterpart.mutex.RLock()

	argCopy := make([]*RepositoryMockListMissingCounterpartParams, len(mmListMissingCounterpart.callArgs))
	copy(argCopy, mmListMissingCounterpart.callArgs)

	mmListMissingCounterpart.mutex.RUnlock()

	return argCopy
}

// MinimockListMissingCounterpartDone returns true if the count of the ListMissingCounterpart invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockListMissingCounterpartDone() bool {
	if m.ListMissingCounterpartMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListMissingCounterpartMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListMissingCounterpartMock.invocationsDone()
}

// MinimockListMissingCounterpartInspect logs each unmet expectation
func (m *RepositoryMock) MinimockListMissingCounterpartInspect() {
	for _, e := range m.ListMissingCounterpartMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.ListMissingCounterpart at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListMissingCounterpartCounter := mm_atomic.LoadUint64(&m.afterListMissingCounterpartCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMissingCounterpartMock.defaultExpectation != nil && afterListMissingCounterpartCounter < 1 {
		if m.ListMissingCounterpartMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.ListMissingCounterpart at\n%s", m.ListMissingCounterpartMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.ListMissingCounterpart at\n%s with params: %#v", m.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.origin, *m.ListMissingCounterpartMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListMissingCounterpart != nil && afterListMissingCounterpartCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.ListMissingCounterpart at\n%s", m.funcListMissingCounterpartOrigin)
	}

	if !m.ListMissingCounterpartMock.invocationsDone() && afterListMissingCounterpartCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.ListMissingCounterpart at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMissingCounterpartMock.expectedInvocations), m.ListMissingCounterpartMock.expectedInvocationsOrigin, afterListMissingCounterpartCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *RepositoryMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCreateInspect()

			m.MinimockGetInspect()

			m.MinimockGetLatestInspect()

			m.MinimockGetLatestByFormatInspect()

			m.MinimockGetLineageTipInspect()

			m.MinimockListByArticleInspect()

			m.MinimockListMissingCounterpartInspect()
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
		m.MinimockGetLatestDone() &&
		m.MinimockGetLatestByFormatDone() &&
		m.MinimockGetLineageTipDone() &&
		m.MinimockListByArticleDone() &&
		m.MinimockListMissingCounterpartDone()
}
