// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article.Repository -o repository_mock.go -n RepositoryMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	mm_article "github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// RepositoryMock implements mm_article.Repository
type RepositoryMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCreate          func(ctx context.Context, tx tx.Transaction, a mm_article.Article) (err error)
	funcCreateOrigin    string
	inspectFuncCreate   func(ctx context.Context, tx tx.Transaction, a mm_article.Article)
	afterCreateCounter  uint64
	beforeCreateCounter uint64
	CreateMock          mRepositoryMockCreate

	funcDelete          func(ctx context.Context, tx tx.Transaction, id uuid.UUID) (err error)
	funcDeleteOrigin    string
	inspectFuncDelete   func(ctx context.Context, tx tx.Transaction, id uuid.UUID)
	afterDeleteCounter  uint64
	beforeDeleteCounter uint64
	DeleteMock          mRepositoryMockDelete

	funcGet          func(ctx context.Context, id uuid.UUID) (a1 mm_article.Article, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, id uuid.UUID)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mRepositoryMockGet

	funcGetBySlug          func(ctx context.Context, slug string) (a1 mm_article.Article, err error)
	funcGetBySlugOrigin    string
	inspectFuncGetBySlug   func(ctx context.Context, slug string)
	afterGetBySlugCounter  uint64
	beforeGetBySlugCounter uint64
	GetBySlugMock          mRepositoryMockGetBySlug

	funcGetForUpdate          func(ctx context.Context, tx tx.Transaction, id uuid.UUID) (a1 mm_article.Article, err error)
	funcGetForUpdateOrigin    string
	inspectFuncGetForUpdate   func(ctx context.Context, tx tx.Transaction, id uuid.UUID)
	afterGetForUpdateCounter  uint64
	beforeGetForUpdateCounter uint64
	GetForUpdateMock          mRepositoryMockGetForUpdate

	funcList          func(ctx context.Context, filter mm_article.ListFilter) (aa1 []mm_article.Article, err error)
	funcListOrigin    string
	inspectFuncList   func(ctx context.Context, filter mm_article.ListFilter)
	afterListCounter  uint64
	beforeListCounter uint64
	ListMock          mRepositoryMockList

	funcSetCitation          func(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) (err error)
	funcSetCitationOrigin    string
	inspectFuncSetCitation   func(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string)
	afterSetCitationCounter  uint64
	beforeSetCitationCounter uint64
	SetCitationMock          mRepositoryMockSetCitation

	funcUpdate          func(ctx context.Context, tx tx.Transaction, a mm_article.Article) (err error)
	funcUpdateOrigin    string
	inspectFuncUpdate   func(ctx context.Context, tx tx.Transaction, a mm_article.Article)
	afterUpdateCounter  uint64
	beforeUpdateCounter uint64
	UpdateMock          mRepositoryMockUpdate
}

// NewRepositoryMock returns a mock for mm_article.Repository
func NewRepositoryMock(t minimock.Tester) *RepositoryMock {
	m := &RepositoryMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CreateMock = mRepositoryMockCreate{mock: m}
	m.CreateMock.callArgs = []*RepositoryMockCreateParams{}

	m.DeleteMock = mRepositoryMockDelete{mock: m}
	m.DeleteMock.callArgs = []*RepositoryMockDeleteParams{}

	m.GetMock = mRepositoryMockGet{mock: m}
	m.GetMock.callArgs = []*RepositoryMockGetParams{}

	m.GetBySlugMock = mRepositoryMockGetBySlug{mock: m}
	m.GetBySlugMock.callArgs = []*RepositoryMockGetBySlugParams{}

	m.GetForUpdateMock = mRepositoryMockGetForUpdate{mock: m}
	m.GetForUpdateMock.callArgs = []*RepositoryMockGetForUpdateParams{}

	m.ListMock = mRepositoryMockList{mock: m}
	m.ListMock.callArgs = []*RepositoryMockListParams{}

	m.SetCitationMock = mRepositoryMockSetCitation{mock: m}
	m.SetCitationMock.callArgs = []*RepositoryMockSetCitationParams{}

	m.UpdateMock = mRepositoryMockUpdate{mock: m}
	m.UpdateMock.callArgs = []*RepositoryMockUpdateParams{}

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
	ctx context.Context
	tx  tx.Transaction
	a   mm_article.Article
}

// RepositoryMockCreateParamPtrs contains pointers to parameters of the Repository.Create
type RepositoryMockCreateParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	a   *mm_article.Article
}

// RepositoryMockCreateResults contains results of the Repository.Create
type RepositoryMockCreateResults struct {
	err error
}

// RepositoryMockCreateOrigins contains origins of expectations of the Repository.Create
type RepositoryMockCreateExpectationOrigins struct {
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
func (mmCreate *mRepositoryMockCreate) Optional() *mRepositoryMockCreate {
	mmCreate.optional = true
	return mmCreate
}

// Expect sets up expected params for Repository.Create
func (mmCreate *mRepositoryMockCreate) Expect(ctx context.Context, tx tx.Transaction, a mm_article.Article) *mRepositoryMockCreate {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	if mmCreate.defaultExpectation == nil {
		mmCreate.defaultExpectation = &RepositoryMockCreateExpectation{}
	}

	if mmCreate.defaultExpectation.paramPtrs != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by ExpectParams functions")
	}

	mmCreate.defaultExpectation.params = &RepositoryMockCreateParams{ctx, tx, a}
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

// ExpectAParam3 sets up expected param a for Repository.Create
func (mmCreate *mRepositoryMockCreate) ExpectAParam3(a mm_article.Article) *mRepositoryMockCreate {
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
	mmCreate.defaultExpectation.paramPtrs.a = &a
	mmCreate.defaultExpectation.expectationOrigins.originA = minimock.CallerInfo(1)

	return mmCreate
}

// Inspect accepts an inspector function that has same arguments as the Repository.Create
func (mmCreate *mRepositoryMockCreate) Inspect(f func(ctx context.Context, tx tx.Transaction, a mm_article.Article)) *mRepositoryMockCreate {
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
func (mmCreate *mRepositoryMockCreate) Set(f func(ctx context.Context, tx tx.Transaction, a mm_article.Article) (err error)) *RepositoryMock {
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
func (mmCreate *mRepositoryMockCreate) When(ctx context.Context, tx tx.Transaction, a mm_article.Article) *RepositoryMockCreateExpectation {
	if mmCreate.mock.funcCreate != nil {
		mmCreate.mock.t.Fatalf("RepositoryMock.Create mock is already set by Set")
	}

	expectation := &RepositoryMockCreateExpectation{
		mock:               mmCreate.mock,
		params:             &RepositoryMockCreateParams{ctx, tx, a},
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

// Create implements mm_article.Repository
func (mmCreate *RepositoryMock) Create(ctx context.Context, tx tx.Transaction, a mm_article.Article) (err error) {
	mm_atomic.AddUint64(&mmCreate.beforeCreateCounter, 1)
	defer mm_atomic.AddUint64(&mmCreate.afterCreateCounter, 1)

	mmCreate.t.Helper()

	if mmCreate.inspectFuncCreate != nil {
		mmCreate.inspectFuncCreate(ctx, tx, a)
	}

	mm_params := RepositoryMockCreateParams{ctx, tx, a}

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

		mm_got := RepositoryMockCreateParams{ctx, tx, a}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.a != nil && !minimock.Equal(*mm_want_ptrs.a, mm_got.a) {
				mmCreate.t.Errorf("RepositoryMock.Create got unexpected parameter a, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCreate.CreateMock.defaultExpectation.expectationOrigins.originA, *mm_want_ptrs.a, mm_got.a, minimock.Diff(*mm_want_ptrs.a, mm_got.a))
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
		return mmCreate.funcCreate(ctx, tx, a)
	}
	mmCreate.t.Fatalf("Unexpected call to RepositoryMock.Create. %v %v %v", ctx, tx, a)
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

type mRepositoryMockDelete struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockDeleteExpectation
	expectations       []*RepositoryMockDeleteExpectation

	callArgs []*RepositoryMockDeleteParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockDeleteExpectation specifies expectation struct of the Repository.Delete
type RepositoryMockDeleteExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockDeleteParams
	paramPtrs          *RepositoryMockDeleteParamPtrs
	expectationOrigins RepositoryMockDeleteExpectationOrigins
	results            *RepositoryMockDeleteResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockDeleteParams contains parameters of the Repository.Delete
type RepositoryMockDeleteParams struct {
	ctx context.Context
	tx  tx.Transaction
	id  uuid.UUID
}

// RepositoryMockDeleteParamPtrs contains pointers to parameters of the Repository.Delete
type RepositoryMockDeleteParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	id  *uuid.UUID
}

// RepositoryMockDeleteResults contains results of the Repository.Delete
type RepositoryMockDeleteResults struct {
	err error
}

// RepositoryMockDeleteOrigins contains origins of expectations of the Repository.Delete
type RepositoryMockDeleteExpectationOrigins struct {
	origin    string
	originCtx string
	originTx  string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDelete *mRepositoryMockDelete) Optional() *mRepositoryMockDelete {
	mmDelete.optional = true
	return mmDelete
}

// Expect sets up expected params for Repository.Delete
func (mmDelete *mRepositoryMockDelete) Expect(ctx context.Context, tx tx.Transaction, id uuid.UUID) *mRepositoryMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &RepositoryMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.paramPtrs != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by ExpectParams functions")
	}

	mmDelete.defaultExpectation.params = &RepositoryMockDeleteParams{ctx, tx, id}
	mmDelete.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDelete.expectations {
		if minimock.Equal(e.params, mmDelete.defaultExpectation.params) {
			mmDelete.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDelete.defaultExpectation.params)
		}
	}

	return mmDelete
}

// ExpectCtxParam1 sets up expected param ctx for Repository.Delete
func (mmDelete *mRepositoryMockDelete) ExpectCtxParam1(ctx context.Context) *mRepositoryMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &RepositoryMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &RepositoryMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.ctx = &ctx
	mmDelete.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDelete
}

// ExpectTxParam2 sets up expected param tx for Repository.Delete
func (mmDelete *mRepositoryMockDelete) ExpectTxParam2(tx tx.Transaction) *mRepositoryMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &RepositoryMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &RepositoryMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.tx = &tx
	mmDelete.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmDelete
}

// ExpectIdParam3 sets up expected param id for Repository.Delete
func (mmDelete *mRepositoryMockDelete) ExpectIdParam3(id uuid.UUID) *mRepositoryMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &RepositoryMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &RepositoryMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.id = &id
	mmDelete.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmDelete
}

// Inspect accepts an inspector function that has same arguments as the Repository.Delete
func (mmDelete *mRepositoryMockDelete) Inspect(f func(ctx context.Context, tx tx.Transaction, id uuid.UUID)) *mRepositoryMockDelete {
	if mmDelete.mock.inspectFuncDelete != nil {
		mmDelete.mock.t.Fatalf("Inspect function is already set for RepositoryMock.Delete")
	}

	mmDelete.mock.inspectFuncDelete = f

	return mmDelete
}

// Return sets up results that will be returned by Repository.Delete
func (mmDelete *mRepositoryMockDelete) Return(err error) *RepositoryMock {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &RepositoryMockDeleteExpectation{mock: mmDelete.mock}
	}
	mmDelete.defaultExpectation.results = &RepositoryMockDeleteResults{err}
	mmDelete.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// Set uses given function f to mock the Repository.Delete method
func (mmDelete *mRepositoryMockDelete) Set(f func(ctx context.Context, tx tx.Transaction, id uuid.UUID) (err error)) *RepositoryMock {
	if mmDelete.defaultExpectation != nil {
		mmDelete.mock.t.Fatalf("Default expectation is already set for the Repository.Delete method")
	}

	if len(mmDelete.expectations) > 0 {
		mmDelete.mock.t.Fatalf("Some expectations are already set for the Repository.Delete method")
	}

	mmDelete.mock.funcDelete = f
	mmDelete.mock.funcDeleteOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// When sets expectation for the Repository.Delete which will trigger the result defined by the following
// Then helper
func (mmDelete *mRepositoryMockDelete) When(ctx context.Context, tx tx.Transaction, id uuid.UUID) *RepositoryMockDeleteExpectation {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("RepositoryMock.Delete mock is already set by Set")
	}

	expectation := &RepositoryMockDeleteExpectation{
		mock:               mmDelete.mock,
		params:             &RepositoryMockDeleteParams{ctx, tx, id},
		expectationOrigins: RepositoryMockDeleteExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDelete.expectations = append(mmDelete.expectations, expectation)
	return expectation
}

// Then sets up Repository.Delete return parameters for the expectation previously defined by the When method
func (e *RepositoryMockDeleteExpectation) Then(err error) *RepositoryMock {
	e.results = &RepositoryMockDeleteResults{err}
	return e.mock
}

// Times sets number of times Repository.Delete should be invoked
func (mmDelete *mRepositoryMockDelete) Times(n uint64) *mRepositoryMockDelete {
	if n == 0 {
		mmDelete.mock.t.Fatalf("Times of RepositoryMock.Delete mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDelete.expectedInvocations, n)
	mmDelete.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDelete
}

func (mmDelete *mRepositoryMockDelete) invocationsDone() bool {
	if len(mmDelete.expectations) == 0 && mmDelete.defaultExpectation == nil && mmDelete.mock.funcDelete == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDelete.mock.afterDeleteCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDelete.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Delete implements mm_article.Repository
func (mmDelete *RepositoryMock) Delete(ctx context.Context, tx tx.Transaction, id uuid.UUID) (err error) {
	mm_atomic.AddUint64(&mmDelete.beforeDeleteCounter, 1)
	defer mm_atomic.AddUint64(&mmDelete.afterDeleteCounter, 1)

	mmDelete.t.Helper()

	if mmDelete.inspectFuncDelete != nil {
		mmDelete.inspectFuncDelete(ctx, tx, id)
	}

	mm_params := RepositoryMockDeleteParams{ctx, tx, id}

	// Record call args
	mmDelete.DeleteMock.mutex.Lock()
	mmDelete.DeleteMock.callArgs = append(mmDelete.DeleteMock.callArgs, &mm_params)
	mmDelete.DeleteMock.mutex.Unlock()

	for _, e := range mmDelete.DeleteMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmDelete.DeleteMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDelete.DeleteMock.defaultExpectation.Counter, 1)
		mm_want := mmDelete.DeleteMock.defaultExpectation.params
		mm_want_ptrs := mmDelete.DeleteMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockDeleteParams{ctx, tx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDelete.t.Errorf("RepositoryMock.Delete got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmDelete.t.Errorf("RepositoryMock.Delete got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmDelete.t.Errorf("RepositoryMock.Delete got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDelete.t.Errorf("RepositoryMock.Delete got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDelete.DeleteMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDelete.DeleteMock.defaultExpectation.results
		if mm_results == nil {
			mmDelete.t.Fatal("No results are set for the RepositoryMock.Delete")
		}
		return (*mm_results).err
	}
	if mmDelete.funcDelete != nil {
		return mmDelete.funcDelete(ctx, tx, id)
	}
	mmDelete.t.Fatalf("Unexpected call to RepositoryMock.Delete. %v %v %v", ctx, tx, id)
	return
}

// DeleteAfterCounter returns a count of finished RepositoryMock.Delete invocations
func (mmDelete *RepositoryMock) DeleteAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.afterDeleteCounter)
}

// DeleteBeforeCounter returns a count of RepositoryMock.Delete invocations
func (mmDelete *RepositoryMock) DeleteBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.beforeDeleteCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.Delete.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDelete *mRepositoryMockDelete) Calls() []*RepositoryMockDeleteParams {
	mmDelete.mutex.RLock()

	argCopy := make([]*RepositoryMockDeleteParams, len(mmDelete.callArgs))
	copy(argCopy, mmDelete.callArgs)

	mmDelete.mutex.RUnlock()

	return argCopy
}

// MinimockDeleteDone returns true if the count of the Delete invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockDeleteDone() bool {
	if m.DeleteMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DeleteMock.invocationsDone()
}

// MinimockDeleteInspect logs each unmet expectation
func (m *RepositoryMock) MinimockDeleteInspect() {
	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.Delete at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDeleteCounter := mm_atomic.LoadUint64(&m.afterDeleteCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DeleteMock.defaultExpectation != nil && afterDeleteCounter < 1 {
		if m.DeleteMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.Delete at\n%s", m.DeleteMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.Delete at\n%s with params: %#v", m.DeleteMock.defaultExpectation.expectationOrigins.origin, *m.DeleteMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDelete != nil && afterDeleteCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.Delete at\n%s", m.funcDeleteOrigin)
	}

	if !m.DeleteMock.invocationsDone() && afterDeleteCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.Delete at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DeleteMock.expectedInvocations), m.DeleteMock.expectedInvocationsOrigin, afterDeleteCounter)
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
	a1  mm_article.Article
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
func (mmGet *mRepositoryMockGet) Return(a1 mm_article.Article, err error) *RepositoryMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("RepositoryMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &RepositoryMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &RepositoryMockGetResults{a1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Repository.Get method
func (mmGet *mRepositoryMockGet) Set(f func(ctx context.Context, id uuid.UUID) (a1 mm_article.Article, err error)) *RepositoryMock {
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
func (e *RepositoryMockGetExpectation) Then(a1 mm_article.Article, err error) *RepositoryMock {
	e.results = &RepositoryMockGetResults{a1, err}
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

// Get implements mm_article.Repository
func (mmGet *RepositoryMock) Get(ctx context.Context, id uuid.UUID) (a1 mm_article.Article, err error) {
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
			return e.results.a1, e.results.err
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
		return (*mm_results).a1, (*mm_results).err
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

type mRepositoryMockGetBySlug struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockGetBySlugExpectation
	expectations       []*RepositoryMockGetBySlugExpectation

	callArgs []*RepositoryMockGetBySlugParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockGetBySlugExpectation specifies expectation struct of the Repository.GetBySlug
type RepositoryMockGetBySlugExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockGetBySlugParams
	paramPtrs          *RepositoryMockGetBySlugParamPtrs
	expectationOrigins RepositoryMockGetBySlugExpectationOrigins
	results            *RepositoryMockGetBySlugResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockGetBySlugParams contains parameters of the Repository.GetBySlug
type RepositoryMockGetBySlugParams struct {
	ctx  context.Context
	slug string
}

// RepositoryMockGetBySlugParamPtrs contains pointers to parameters of the Repository.GetBySlug
type RepositoryMockGetBySlugParamPtrs struct {
	ctx  *context.Context
	slug *string
}

// RepositoryMockGetBySlugResults contains results of the Repository.GetBySlug
type RepositoryMockGetBySlugResults struct {
	a1  mm_article.Article
	err error
}

// RepositoryMockGetBySlugOrigins contains origins of expectations of the Repository.GetBySlug
type RepositoryMockGetBySlugExpectationOrigins struct {
	origin     string
	originCtx  string
	originSlug string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetBySlug *mRepositoryMockGetBySlug) Optional() *mRepositoryMockGetBySlug {
	mmGetBySlug.optional = true
	return mmGetBySlug
}

// Expect sets up expected params for Repository.GetBySlug
func (mmGetBySlug *mRepositoryMockGetBySlug) Expect(ctx context.Context, slug string) *mRepositoryMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &RepositoryMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.paramPtrs != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by ExpectParams functions")
	}

	mmGetBySlug.defaultExpectation.params = &RepositoryMockGetBySlugParams{ctx, slug}
	mmGetBySlug.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetBySlug.expectations {
		if minimock.Equal(e.params, mmGetBySlug.defaultExpectation.params) {
			mmGetBySlug.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetBySlug.defaultExpectation.params)
		}
	}

	return mmGetBySlug
}

// ExpectCtxParam1 sets up expected param ctx for Repository.GetBySlug
func (mmGetBySlug *mRepositoryMockGetBySlug) ExpectCtxParam1(ctx context.Context) *mRepositoryMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &RepositoryMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.params != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Expect")
	}

	if mmGetBySlug.defaultExpectation.paramPtrs == nil {
		mmGetBySlug.defaultExpectation.paramPtrs = &RepositoryMockGetBySlugParamPtrs{}
	}
	mmGetBySlug.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetBySlug.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetBySlug
}

// ExpectSlugParam2 sets up expected param slug for Repository.GetBySlug
func (mmGetBySlug *mRepositoryMockGetBySlug) ExpectSlugParam2(slug string) *mRepositoryMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &RepositoryMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.params != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Expect")
	}

	if mmGetBySlug.defaultExpectation.paramPtrs == nil {
		mmGetBySlug.defaultExpectation.paramPtrs = &RepositoryMockGetBySlugParamPtrs{}
	}
	mmGetBySlug.defaultExpectation.paramPtrs.slug = &slug
	mmGetBySlug.defaultExpectation.expectationOrigins.originSlug = minimock.CallerInfo(1)

	return mmGetBySlug
}

// Inspect accepts an inspector function that has same arguments as the Repository.GetBySlug
func (mmGetBySlug *mRepositoryMockGetBySlug) Inspect(f func(ctx context.Context, slug string)) *mRepositoryMockGetBySlug {
	if mmGetBySlug.mock.inspectFuncGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("Inspect function is already set for RepositoryMock.GetBySlug")
	}

	mmGetBySlug.mock.inspectFuncGetBySlug = f

	return mmGetBySlug
}

// Return sets up results that will be returned by Repository.GetBySlug
func (mmGetBySlug *mRepositoryMockGetBySlug) Return(a1 mm_article.Article, err error) *RepositoryMock {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &RepositoryMockGetBySlugExpectation{mock: mmGetBySlug.mock}
	}
	mmGetBySlug.defaultExpectation.results = &RepositoryMockGetBySlugResults{a1, err}
	mmGetBySlug.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetBySlug.mock
}

// Set uses given function f to mock the Repository.GetBySlug method
func (mmGetBySlug *mRepositoryMockGetBySlug) Set(f func(ctx context.Context, slug string) (a1 mm_article.Article, err error)) *RepositoryMock {
	if mmGetBySlug.defaultExpectation != nil {
		mmGetBySlug.mock.t.Fatalf("Default expectation is already set for the Repository.GetBySlug method")
	}

	if len(mmGetBySlug.expectations) > 0 {
		mmGetBySlug.mock.t.Fatalf("Some expectations are already set for the Repository.GetBySlug method")
	}

	mmGetBySlug.mock.funcGetBySlug = f
	mmGetBySlug.mock.funcGetBySlugOrigin = minimock.CallerInfo(1)
	return mmGetBySlug.mock
}

// When sets expectation for the Repository.GetBySlug which will trigger the result defined by the following
// Then helper
func (mmGetBySlug *mRepositoryMockGetBySlug) When(ctx context.Context, slug string) *RepositoryMockGetBySlugExpectation {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("RepositoryMock.GetBySlug mock is already set by Set")
	}

	expectation := &RepositoryMockGetBySlugExpectation{
		mock:               mmGetBySlug.mock,
		params:             &RepositoryMockGetBySlugParams{ctx, slug},
		expectationOrigins: RepositoryMockGetBySlugExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetBySlug.expectations = append(mmGetBySlug.expectations, expectation)
	return expectation
}

// Then sets up Repository.GetBySlug return parameters for the expectation previously defined by the When method
func (e *RepositoryMockGetBySlugExpectation) Then(a1 mm_article.Article, err error) *RepositoryMock {
	e.results = &RepositoryMockGetBySlugResults{a1, err}
	return e.mock
}

// Times sets number of times Repository.GetBySlug should be invoked
func (mmGetBySlug *mRepositoryMockGetBySlug) Times(n uint64) *mRepositoryMockGetBySlug {
	if n == 0 {
		mmGetBySlug.mock.t.Fatalf("Times of RepositoryMock.GetBySlug mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetBySlug.expectedInvocations, n)
	mmGetBySlug.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetBySlug
}

func (mmGetBySlug *mRepositoryMockGetBySlug) invocationsDone() bool {
	if len(mmGetBySlug.expectations) == 0 && mmGetBySlug.defaultExpectation == nil && mmGetBySlug.mock.funcGetBySlug == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetBySlug.mock.afterGetBySlugCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetBySlug.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetBySlug implements mm_article.Repository
func (mmGetBySlug *RepositoryMock) GetBySlug(ctx context.Context, slug string) (a1 mm_article.Article, err error) {
	mm_atomic.AddUint64(&mmGetBySlug.beforeGetBySlugCounter, 1)
	defer mm_atomic.AddUint64(&mmGetBySlug.afterGetBySlugCounter, 1)

	mmGetBySlug.t.Helper()

	if mmGetBySlug.inspectFuncGetBySlug != nil {
		mmGetBySlug.inspectFuncGetBySlug(ctx, slug)
	}

	mm_params := RepositoryMockGetBySlugParams{ctx, slug}

	// Record call args
	mmGetBySlug.GetBySlugMock.mutex.Lock()
	mmGetBySlug.GetBySlugMock.callArgs = append(mmGetBySlug.GetBySlugMock.callArgs, &mm_params)
	mmGetBySlug.GetBySlugMock.mutex.Unlock()

	for _, e := range mmGetBySlug.GetBySlugMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmGetBySlug.GetBySlugMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetBySlug.GetBySlugMock.defaultExpectation.Counter, 1)
		mm_want := mmGetBySlug.GetBySlugMock.defaultExpectation.params
		mm_want_ptrs := mmGetBySlug.GetBySlugMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockGetBySlugParams{ctx, slug}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetBySlug.t.Errorf("RepositoryMock.GetBySlug got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.slug != nil && !minimock.Equal(*mm_want_ptrs.slug, mm_got.slug) {
				mmGetBySlug.t.Errorf("RepositoryMock.GetBySlug got unexpected parameter slug, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.originSlug, *mm_want_ptrs.slug, mm_got.slug, minimock.Diff(*mm_want_ptrs.slug, mm_got.slug))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetBySlug.t.Errorf("RepositoryMock.GetBySlug got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetBySlug.GetBySlugMock.defaultExpectation.results
		if mm_results == nil {
			mmGetBySlug.t.Fatal("No results are set for the RepositoryMock.GetBySlug")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmGetBySlug.funcGetBySlug != nil {
		return mmGetBySlug.funcGetBySlug(ctx, slug)
	}
	mmGetBySlug.t.Fatalf("Unexpected call to RepositoryMock.GetBySlug. %v %v", ctx, slug)
	return
}

// GetBySlugAfterCounter returns a count of finished RepositoryMock.GetBySlug invocations
func (mmGetBySlug *RepositoryMock) GetBySlugAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetBySlug.afterGetBySlugCounter)
}

// GetBySlugBeforeCounter returns a count of RepositoryMock.GetBySlug invocations
func (mmGetBySlug *RepositoryMock) GetBySlugBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetBySlug.beforeGetBySlugCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.GetBySlug.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetBySlug *mRepositoryMockGetBySlug) Calls() []*RepositoryMockGetBySlugParams {
	mmGetBySlug.mutex.RLock()

	argCopy := make([]*RepositoryMockGetBySlugParams, len(mmGetBySlug.callArgs))
	copy(argCopy, mmGetBySlug.callArgs)

	mmGetBySlug.mutex.RUnlock()

	return argCopy
}

// MinimockGetBySlugDone returns true if the count of the GetBySlug invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockGetBySlugDone() bool {
	if m.GetBySlugMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetBySlugMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetBySlugMock.invocationsDone()
}

// MinimockGetBySlugInspect logs each unmet expectation
func (m *RepositoryMock) MinimockGetBySlugInspect() {
	for _, e := range m.GetBySlugMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.GetBySlug at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetBySlugCounter := mm_atomic.LoadUint64(&m.afterGetBySlugCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetBySlugMock.defaultExpectation != nil && afterGetBySlugCounter < 1 {
		if m.GetBySlugMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.GetBySlug at\n%s", m.GetBySlugMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.GetBySlug at\n%s with params: %#v", m.GetBySlugMock.defaultExpectation.expectationOrigins.origin, *m.GetBySlugMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetBySlug != nil && afterGetBySlugCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.GetBySlug at\n%s", m.funcGetBySlugOrigin)
	}

	if !m.GetBySlugMock.invocationsDone() && afterGetBySlugCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.GetBySlug at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetBySlugMock.expectedInvocations), m.GetBySlugMock.expectedInvocationsOrigin, afterGetBySlugCounter)
	}
}

type mRepositoryMockGetForUpdate struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockGetForUpdateExpectation
	expectations       []*RepositoryMockGetForUpdateExpectation

	callArgs []*RepositoryMockGetForUpdateParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockGetForUpdateExpectation specifies expectation struct of the Repository.GetForUpdate
type RepositoryMockGetForUpdateExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockGetForUpdateParams
	paramPtrs          *RepositoryMockGetForUpdateParamPtrs
	expectationOrigins RepositoryMockGetForUpdateExpectationOrigins
	results            *RepositoryMockGetForUpdateResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockGetForUpdateParams contains parameters of the Repository.GetForUpdate
type RepositoryMockGetForUpdateParams struct {
	ctx context.Context
	tx  tx.Transaction
	id  uuid.UUID
}

// RepositoryMockGetForUpdateParamPtrs contains pointers to parameters of the Repository.GetForUpdate
type RepositoryMockGetForUpdateParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	id  *uuid.UUID
}

// RepositoryMockGetForUpdateResults contains results of the Repository.GetForUpdate
type RepositoryMockGetForUpdateResults struct {
	a1  mm_article.Article
	err error
}

// RepositoryMockGetForUpdateOrigins contains origins of expectations of the Repository.GetForUpdate
type RepositoryMockGetForUpdateExpectationOrigins struct {
	origin    string
	originCtx string
	originTx  string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Optional() *mRepositoryMockGetForUpdate {
	mmGetForUpdate.optional = true
	return mmGetForUpdate
}

// Expect sets up expected params for Repository.GetForUpdate
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Expect(ctx context.Context, tx tx.Transaction, id uuid.UUID) *mRepositoryMockGetForUpdate {
	if mmGetForUpdate.mock.funcGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Set")
	}

	if mmGetForUpdate.defaultExpectation == nil {
		mmGetForUpdate.defaultExpectation = &RepositoryMockGetForUpdateExpectation{}
	}

	if mmGetForUpdate.defaultExpectation.paramPtrs != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by ExpectParams functions")
	}

	mmGetForUpdate.defaultExpectation.params = &RepositoryMockGetForUpdateParams{ctx, tx, id}
	mmGetForUpdate.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetForUpdate.expectations {
		if minimock.Equal(e.params, mmGetForUpdate.defaultExpectation.params) {
			mmGetForUpdate.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetForUpdate.defaultExpectation.params)
		}
	}

	return mmGetForUpdate
}

// ExpectCtxParam1 sets up expected param ctx for Repository.GetForUpdate
func (mmGetForUpdate *mRepositoryMockGetForUpdate) ExpectCtxParam1(ctx context.Context) *mRepositoryMockGetForUpdate {
	if mmGetForUpdate.mock.funcGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Set")
	}

	if mmGetForUpdate.defaultExpectation == nil {
		mmGetForUpdate.defaultExpectation = &RepositoryMockGetForUpdateExpectation{}
	}

	if mmGetForUpdate.defaultExpectation.params != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Expect")
	}

	if mmGetForUpdate.defaultExpectation.paramPtrs == nil {
		mmGetForUpdate.defaultExpectation.paramPtrs = &RepositoryMockGetForUpdateParamPtrs{}
	}
	mmGetForUpdate.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetForUpdate.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetForUpdate
}

// ExpectTxParam2 sets up expected param tx for Repository.GetForUpdate
func (mmGetForUpdate *mRepositoryMockGetForUpdate) ExpectTxParam2(tx tx.Transaction) *mRepositoryMockGetForUpdate {
	if mmGetForUpdate.mock.funcGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Set")
	}

	if mmGetForUpdate.defaultExpectation == nil {
		mmGetForUpdate.defaultExpectation = &RepositoryMockGetForUpdateExpectation{}
	}

	if mmGetForUpdate.defaultExpectation.params != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Expect")
	}

	if mmGetForUpdate.defaultExpectation.paramPtrs == nil {
		mmGetForUpdate.defaultExpectation.paramPtrs = &RepositoryMockGetForUpdateParamPtrs{}
	}
	mmGetForUpdate.defaultExpectation.paramPtrs.tx = &tx
	mmGetForUpdate.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmGetForUpdate
}

// ExpectIdParam3 sets up expected param id for Repository.GetForUpdate
func (mmGetForUpdate *mRepositoryMockGetForUpdate) ExpectIdParam3(id uuid.UUID) *mRepositoryMockGetForUpdate {
	if mmGetForUpdate.mock.funcGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Set")
	}

	if mmGetForUpdate.defaultExpectation == nil {
		mmGetForUpdate.defaultExpectation = &RepositoryMockGetForUpdateExpectation{}
	}

	if mmGetForUpdate.defaultExpectation.params != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Expect")
	}

	if mmGetForUpdate.defaultExpectation.paramPtrs == nil {
		mmGetForUpdate.defaultExpectation.paramPtrs = &RepositoryMockGetForUpdateParamPtrs{}
	}
	mmGetForUpdate.defaultExpectation.paramPtrs.id = &id
	mmGetForUpdate.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmGetForUpdate
}

// Inspect accepts an inspector function that has same arguments as the Repository.GetForUpdate
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Inspect(f func(ctx context.Context, tx tx.Transaction, id uuid.UUID)) *mRepositoryMockGetForUpdate {
	if mmGetForUpdate.mock.inspectFuncGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("Inspect function is already set for RepositoryMock.GetForUpdate")
	}

	mmGetForUpdate.mock.inspectFuncGetForUpdate = f

	return mmGetForUpdate
}

// Return sets up results that will be returned by Repository.GetForUpdate
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Return(a1 mm_article.Article, err error) *RepositoryMock {
	if mmGetForUpdate.mock.funcGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Set")
	}

	if mmGetForUpdate.defaultExpectation == nil {
		mmGetForUpdate.defaultExpectation = &RepositoryMockGetForUpdateExpectation{mock: mmGetForUpdate.mock}
	}
	mmGetForUpdate.defaultExpectation.results = &RepositoryMockGetForUpdateResults{a1, err}
	mmGetForUpdate.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetForUpdate.mock
}

// Set uses given function f to mock the Repository.GetForUpdate method
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Set(f func(ctx context.Context, tx tx.Transaction, id uuid.UUID) (a1 mm_article.Article, err error)) *RepositoryMock {
	if mmGetForUpdate.defaultExpectation != nil {
		mmGetForUpdate.mock.t.Fatalf("Default expectation is already set for the Repository.GetForUpdate method")
	}

	if len(mmGetForUpdate.expectations) > 0 {
		mmGetForUpdate.mock.t.Fatalf("Some expectations are already set for the Repository.GetForUpdate method")
	}

	mmGetForUpdate.mock.funcGetForUpdate = f
	mmGetForUpdate.mock.funcGetForUpdateOrigin = minimock.CallerInfo(1)
	return mmGetForUpdate.mock
}

// When sets expectation for the Repository.GetForUpdate which will trigger the result defined by the following
// Then helper
func (mmGetForUpdate *mRepositoryMockGetForUpdate) When(ctx context.Context, tx tx.Transaction, id uuid.UUID) *RepositoryMockGetForUpdateExpectation {
	if mmGetForUpdate.mock.funcGetForUpdate != nil {
		mmGetForUpdate.mock.t.Fatalf("RepositoryMock.GetForUpdate mock is already set by Set")
	}

	expectation := &RepositoryMockGetForUpdateExpectation{
		mock:               mmGetForUpdate.mock,
		params:             &RepositoryMockGetForUpdateParams{ctx, tx, id},
		expectationOrigins: RepositoryMockGetForUpdateExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetForUpdate.expectations = append(mmGetForUpdate.expectations, expectation)
	return expectation
}

// Then sets up Repository.GetForUpdate return parameters for the expectation previously defined by the When method
func (e *RepositoryMockGetForUpdateExpectation) Then(a1 mm_article.Article, err error) *RepositoryMock {
	e.results = &RepositoryMockGetForUpdateResults{a1, err}
	return e.mock
}

// Times sets number of times Repository.GetForUpdate should be invoked
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Times(n uint64) *mRepositoryMockGetForUpdate {
	if n == 0 {
		mmGetForUpdate.mock.t.Fatalf("Times of RepositoryMock.GetForUpdate mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetForUpdate.expectedInvocations, n)
	mmGetForUpdate.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetForUpdate
}

func (mmGetForUpdate *mRepositoryMockGetForUpdate) invocationsDone() bool {
	if len(mmGetForUpdate.expectations) == 0 && mmGetForUpdate.defaultExpectation == nil && mmGetForUpdate.mock.funcGetForUpdate == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetForUpdate.mock.afterGetForUpdateCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetForUpdate.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetForUpdate implements mm_article.Repository
func (mmGetForUpdate *RepositoryMock) GetForUpdate(ctx context.Context, tx tx.Transaction, id uuid.UUID) (a1 mm_article.Article, err error) {
	mm_atomic.AddUint64(&mmGetForUpdate.beforeGetForUpdateCounter, 1)
	defer mm_atomic.AddUint64(&mmGetForUpdate.afterGetForUpdateCounter, 1)

	mmGetForUpdate.t.Helper()

	if mmGetForUpdate.inspectFuncGetForUpdate != nil {
		mmGetForUpdate.inspectFuncGetForUpdate(ctx, tx, id)
	}

	mm_params := RepositoryMockGetForUpdateParams{ctx, tx, id}

	// Record call args
	mmGetForUpdate.GetForUpdateMock.mutex.Lock()
	mmGetForUpdate.GetForUpdateMock.callArgs = append(mmGetForUpdate.GetForUpdateMock.callArgs, &mm_params)
	mmGetForUpdate.GetForUpdateMock.mutex.Unlock()

	for _, e := range mmGetForUpdate.GetForUpdateMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmGetForUpdate.GetForUpdateMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetForUpdate.GetForUpdateMock.defaultExpectation.Counter, 1)
		mm_want := mmGetForUpdate.GetForUpdateMock.defaultExpectation.params
		mm_want_ptrs := mmGetForUpdate.GetForUpdateMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockGetForUpdateParams{ctx, tx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetForUpdate.t.Errorf("RepositoryMock.GetForUpdate got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetForUpdate.GetForUpdateMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmGetForUpdate.t.Errorf("RepositoryMock.GetForUpdate got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetForUpdate.GetForUpdateMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmGetForUpdate.t.Errorf("RepositoryMock.GetForUpdate got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetForUpdate.GetForUpdateMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetForUpdate.t.Errorf("RepositoryMock.GetForUpdate got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetForUpdate.GetForUpdateMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetForUpdate.GetForUpdateMock.defaultExpectation.results
		if mm_results == nil {
			mmGetForUpdate.t.Fatal("No results are set for the RepositoryMock.GetForUpdate")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmGetForUpdate.funcGetForUpdate != nil {
		return mmGetForUpdate.funcGetForUpdate(ctx, tx, id)
	}
	mmGetForUpdate.t.Fatalf("Unexpected call to RepositoryMock.GetForUpdate. %v %v %v", ctx, tx, id)
	return
}

// GetForUpdateAfterCounter returns a count of finished RepositoryMock.GetForUpdate invocations
func (mmGetForUpdate *RepositoryMock) GetForUpdateAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetForUpdate.afterGetForUpdateCounter)
}

// GetForUpdateBeforeCounter returns a count of RepositoryMock.GetForUpdate invocations
func (mmGetForUpdate *RepositoryMock) GetForUpdateBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetForUpdate.beforeGetForUpdateCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.GetForUpdate.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetForUpdate *mRepositoryMockGetForUpdate) Calls() []*RepositoryMockGetForUpdateParams {
	mmGetForUpdate.mutex.RLock()

	argCopy := make([]*RepositoryMockGetForUpdateParams, len(mmGetForUpdate.callArgs))
	copy(argCopy, mmGetForUpdate.callArgs)

	mmGetForUpdate.mutex.RUnlock()

	return argCopy
}

// MinimockGetForUpdateDone returns true if the count of the GetForUpdate invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockGetForUpdateDone() bool {
	if m.GetForUpdateMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetForUpdateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetForUpdateMock.invocationsDone()
}

// MinimockGetForUpdateInspect logs each unmet expectation
func (m *RepositoryMock) MinimockGetForUpdateInspect() {
	for _, e := range m.GetForUpdateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.GetForUpdate at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetForUpdateCounter := mm_atomic.LoadUint64(&m.afterGetForUpdateCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetForUpdateMock.defaultExpectation != nil && afterGetForUpdateCounter < 1 {
		if m.GetForUpdateMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.GetForUpdate at\n%s", m.GetForUpdateMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.GetForUpdate at\n%s with params: %#v", m.GetForUpdateMock.defaultExpectation.expectationOrigins.origin, *m.GetForUpdateMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetForUpdate != nil && afterGetForUpdateCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.GetForUpdate at\n%s", m.funcGetForUpdateOrigin)
	}

	if !m.GetForUpdateMock.invocationsDone() && afterGetForUpdateCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.GetForUpdate at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetForUpdateMock.expectedInvocations), m.GetForUpdateMock.expectedInvocationsOrigin, afterGetForUpdateCounter)
	}
}

type mRepositoryMockList struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockListExpectation
	expectations       []*RepositoryMockListExpectation

	callArgs []*RepositoryMockListParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockListExpectation specifies expectation struct of the Repository.List
type RepositoryMockListExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockListParams
	paramPtrs          *RepositoryMockListParamPtrs
	expectationOrigins RepositoryMockListExpectationOrigins
	results            *RepositoryMockListResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockListParams contains parameters of the Repository.List
type RepositoryMockListParams struct {
	ctx    context.Context
	filter mm_article.ListFilter
}

// RepositoryMockListParamPtrs contains pointers to parameters of the Repository.List
type RepositoryMockListParamPtrs struct {
	ctx    *context.Context
	filter *mm_article.ListFilter
}

// RepositoryMockListResults contains results of the Repository.List
type RepositoryMockListResults struct {
	aa1 []mm_article.Article
	err error
}

// RepositoryMockListOrigins contains origins of expectations of the Repository.List
type RepositoryMockListExpectationOrigins struct {
	origin       string
	originCtx    string
	originFilter string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmList *mRepositoryMockList) Optional() *mRepositoryMockList {
	mmList.optional = true
	return mmList
}

// Expect sets up expected params for Repository.List
func (mmList *mRepositoryMockList) Expect(ctx context.Context, filter mm_article.ListFilter) *mRepositoryMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &RepositoryMockListExpectation{}
	}

	if mmList.defaultExpectation.paramPtrs != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by ExpectParams functions")
	}

	mmList.defaultExpectation.params = &RepositoryMockListParams{ctx, filter}
	mmList.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmList.expectations {
		if minimock.Equal(e.params, mmList.defaultExpectation.params) {
			mmList.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmList.defaultExpectation.params)
		}
	}

	return mmList
}

// ExpectCtxParam1 sets up expected param ctx for Repository.List
func (mmList *mRepositoryMockList) ExpectCtxParam1(ctx context.Context) *mRepositoryMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &RepositoryMockListExpectation{}
	}

	if mmList.defaultExpectation.params != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Expect")
	}

	if mmList.defaultExpectation.paramPtrs == nil {
		mmList.defaultExpectation.paramPtrs = &RepositoryMockListParamPtrs{}
	}
	mmList.defaultExpectation.paramPtrs.ctx = &ctx
	mmList.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmList
}

// ExpectFilterParam2 sets up expected param filter for Repository.List
func (mmList *mRepositoryMockList) ExpectFilterParam2(filter mm_article.ListFilter) *mRepositoryMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &RepositoryMockListExpectation{}
	}

	if mmList.defaultExpectation.params != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Expect")
	}

	if mmList.defaultExpectation.paramPtrs == nil {
		mmList.defaultExpectation.paramPtrs = &RepositoryMockListParamPtrs{}
	}
	mmList.defaultExpectation.paramPtrs.filter = &filter
	mmList.defaultExpectation.expectationOrigins.originFilter = minimock.CallerInfo(1)

	return mmList
}

// Inspect accepts an inspector function that has same arguments as the Repository.List
func (mmList *mRepositoryMockList) Inspect(f func(ctx context.Context, filter mm_article.ListFilter)) *mRepositoryMockList {
	if mmList.mock.inspectFuncList != nil {
		mmList.mock.t.Fatalf("Inspect function is already set for RepositoryMock.List")
	}

	mmList.mock.inspectFuncList = f

	return mmList
}

// Return sets up results that will be returned by Repository.List
func (mmList *mRepositoryMockList) Return(aa1 []mm_article.Article, err error) *RepositoryMock {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &RepositoryMockListExpectation{mock: mmList.mock}
	}
	mmList.defaultExpectation.results = &RepositoryMockListResults{aa1, err}
	mmList.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmList.mock
}

// Set uses given function f to mock the Repository.List method
func (mmList *mRepositoryMockList) Set(f func(ctx context.Context, filter mm_article.ListFilter) (aa1 []mm_article.Article, err error)) *RepositoryMock {
	if mmList.defaultExpectation != nil {
		mmList.mock.t.Fatalf("Default expectation is already set for the Repository.List method")
	}

	if len(mmList.expectations) > 0 {
		mmList.mock.t.Fatalf("Some expectations are already set for the Repository.List method")
	}

	mmList.mock.funcList = f
	mmList.mock.funcListOrigin = minimock.CallerInfo(1)
	return mmList.mock
}

// When sets expectation for the Repository.List which will trigger the result defined by the following
// Then helper
func (mmList *mRepositoryMockList) When(ctx context.Context, filter mm_article.ListFilter) *RepositoryMockListExpectation {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("RepositoryMock.List mock is already set by Set")
	}

	expectation := &RepositoryMockListExpectation{
		mock:               mmList.mock,
		params:             &RepositoryMockListParams{ctx, filter},
		expectationOrigins: RepositoryMockListExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmList.expectations = append(mmList.expectations, expectation)
	return expectation
}

// Then sets up Repository.List return parameters for the expectation previously defined by the When method
func (e *RepositoryMockListExpectation) Then(aa1 []mm_article.Article, err error) *RepositoryMock {
	e.results = &RepositoryMockListResults{aa1, err}
	return e.mock
}

// Times sets number of times Repository.List should be invoked
func (mmList *mRepositoryMockList) Times(n uint64) *mRepositoryMockList {
	if n == 0 {
		mmList.mock.t.Fatalf("Times of RepositoryMock.List mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmList.expectedInvocations, n)
	mmList.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmList
}

func (mmList *mRepositoryMockList) invocationsDone() bool {
	if len(mmList.expectations) == 0 && mmList.defaultExpectation == nil && mmList.mock.funcList == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmList.mock.afterListCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmList.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// List implements mm_article.Repository
func (mmList *RepositoryMock) List(ctx context.Context, filter mm_article.ListFilter) (aa1 []mm_article.Article, err error) {
	mm_atomic.AddUint64(&mmList.beforeListCounter, 1)
	defer mm_atomic.AddUint64(&mmList.afterListCounter, 1)

	mmList.t.Helper()

	if mmList.inspectFuncList != nil {
		mmList.inspectFuncList(ctx, filter)
	}

	mm_params := RepositoryMockListParams{ctx, filter}

	// Record call args
	mmList.ListMock.mutex.Lock()
	mmList.ListMock.callArgs = append(mmList.ListMock.callArgs, &mm_params)
	mmList.ListMock.mutex.Unlock()

	for _, e := range mmList.ListMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.aa1, e.results.err
		}
	}

	if mmList.ListMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmList.ListMock.defaultExpectation.Counter, 1)
		mm_want := mmList.ListMock.defaultExpectation.params
		mm_want_ptrs := mmList.ListMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockListParams{ctx, filter}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmList.t.Errorf("RepositoryMock.List got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmList.ListMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.filter != nil && !minimock.Equal(*mm_want_ptrs.filter, mm_got.filter) {
				mmList.t.Errorf("RepositoryMock.List got unexpected parameter filter, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmList.ListMock.defaultExpectation.expectationOrigins.originFilter, *mm_want_ptrs.filter, mm_got.filter, minimock.Diff(*mm_want_ptrs.filter, mm_got.filter))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmList.t.Errorf("RepositoryMock.List got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmList.ListMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmList.ListMock.defaultExpectation.results
		if mm_results == nil {
			mmList.t.Fatal("No results are set for the RepositoryMock.List")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmList.funcList != nil {
		return mmList.funcList(ctx, filter)
	}
	mmList.t.Fatalf("Unexpected call to RepositoryMock.List. %v %v", ctx, filter)
	return
}

// ListAfterCounter returns a count of finished RepositoryMock.List invocations
func (mmList *RepositoryMock) ListAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.afterListCounter)
}

// ListBeforeCounter returns a count of RepositoryMock.List invocations
func (mmList *RepositoryMock) ListBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.beforeListCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.List.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmList *mRepositoryMockList) Calls() []*RepositoryMockListParams {
	mmList.mutex.RLock()

	argCopy := make([]*RepositoryMockListParams, len(mmList.callArgs))
	copy(argCopy, mmList.callArgs)

	mmList.mutex.RUnlock()

	return argCopy
}

// MinimockListDone returns true if the count of the List invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockListDone() bool {
	if m.ListMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListMock.invocationsDone()
}

// MinimockListInspect logs each unmet expectation
func (m *RepositoryMock) MinimockListInspect() {
	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.List at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListCounter := mm_atomic.LoadUint64(&m.afterListCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMock.defaultExpectation != nil && afterListCounter < 1 {
		if m.ListMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.List at\n%s", m.ListMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.List at\n%s with params: %#v", m.ListMock.defaultExpectation.expectationOrigins.origin, *m.ListMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcList != nil && afterListCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.List at\n%s", m.funcListOrigin)
	}

	if !m.ListMock.invocationsDone() && afterListCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.List at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMock.expectedInvocations), m.ListMock.expectedInvocationsOrigin, afterListCounter)
	}
}

type mRepositoryMockSetCitation struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockSetCitationExpectation
	expectations       []*RepositoryMockSetCitationExpectation

	callArgs []*RepositoryMockSetCitationParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockSetCitationExpectation specifies expectation struct of the Repository.SetCitation
type RepositoryMockSetCitationExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockSetCitationParams
	paramPtrs          *RepositoryMockSetCitationParamPtrs
	expectationOrigins RepositoryMockSetCitationExpectationOrigins
	results            *RepositoryMockSetCitationResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockSetCitationParams contains parameters of the Repository.SetCitation
type RepositoryMockSetCitationParams struct {
	ctx      context.Context
	tx       tx.Transaction
	id       uuid.UUID
	citation string
}

// RepositoryMockSetCitationParamPtrs contains pointers to parameters of the Repository.SetCitation
type RepositoryMockSetCitationParamPtrs struct {
	ctx      *context.Context
	tx       *tx.Transaction
	id       *uuid.UUID
	citation *string
}

// RepositoryMockSetCitationResults contains results of the Repository.SetCitation
type RepositoryMockSetCitationResults struct {
	err error
}

// RepositoryMockSetCitationOrigins contains origins of expectations of the Repository.SetCitation
type RepositoryMockSetCitationExpectationOrigins struct {
	origin         string
	originCtx      string
	originTx       string
	originId       string
	originCitation string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSetCitation *mRepositoryMockSetCitation) Optional() *mRepositoryMockSetCitation {
	mmSetCitation.optional = true
	return mmSetCitation
}

// Expect sets up expected params for Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) Expect(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) *mRepositoryMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &RepositoryMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.paramPtrs != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by ExpectParams functions")
	}

	mmSetCitation.defaultExpectation.params = &RepositoryMockSetCitationParams{ctx, tx, id, citation}
	mmSetCitation.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSetCitation.expectations {
		if minimock.Equal(e.params, mmSetCitation.defaultExpectation.params) {
			mmSetCitation.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSetCitation.defaultExpectation.params)
		}
	}

	return mmSetCitation
}

// ExpectCtxParam1 sets up expected param ctx for Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) ExpectCtxParam1(ctx context.Context) *mRepositoryMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &RepositoryMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &RepositoryMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.ctx = &ctx
	mmSetCitation.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSetCitation
}

// ExpectTxParam2 sets up expected param tx for Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) ExpectTxParam2(tx tx.Transaction) *mRepositoryMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &RepositoryMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &RepositoryMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.tx = &tx
	mmSetCitation.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmSetCitation
}

// ExpectIdParam3 sets up expected param id for Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) ExpectIdParam3(id uuid.UUID) *mRepositoryMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &RepositoryMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &RepositoryMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.id = &id
	mmSetCitation.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmSetCitation
}

// ExpectCitationParam4 sets up expected param citation for Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) ExpectCitationParam4(citation string) *mRepositoryMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &RepositoryMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &RepositoryMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.citation = &citation
	mmSetCitation.defaultExpectation.expectationOrigins.originCitation = minimock.CallerInfo(1)

	return mmSetCitation
}

// Inspect accepts an inspector function that has same arguments as the Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) Inspect(f func(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string)) *mRepositoryMockSetCitation {
	if mmSetCitation.mock.inspectFuncSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("Inspect function is already set for RepositoryMock.SetCitation")
	}

	mmSetCitation.mock.inspectFuncSetCitation = f

	return mmSetCitation
}

// Return sets up results that will be returned by Repository.SetCitation
func (mmSetCitation *mRepositoryMockSetCitation) Return(err error) *RepositoryMock {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &RepositoryMockSetCitationExpectation{mock: mmSetCitation.mock}
	}
	mmSetCitation.defaultExpectation.results = &RepositoryMockSetCitationResults{err}
	mmSetCitation.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSetCitation.mock
}

// Set uses given function f to mock the Repository.SetCitation method
func (mmSetCitation *mRepositoryMockSetCitation) Set(f func(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) (err error)) *RepositoryMock {
	if mmSetCitation.defaultExpectation != nil {
		mmSetCitation.mock.t.Fatalf("Default expectation is already set for the Repository.SetCitation method")
	}

	if len(mmSetCitation.expectations) > 0 {
		mmSetCitation.mock.t.Fatalf("Some expectations are already set for the Repository.SetCitation method")
	}

	mmSetCitation.mock.funcSetCitation = f
	mmSetCitation.mock.funcSetCitationOrigin = minimock.CallerInfo(1)
	return mmSetCitation.mock
}

// When sets expectation for the Repository.SetCitation which will trigger the result defined by the following
// Then helper
func (mmSetCitation *mRepositoryMockSetCitation) When(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) *RepositoryMockSetCitationExpectation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("RepositoryMock.SetCitation mock is already set by Set")
	}

	expectation := &RepositoryMockSetCitationExpectation{
		mock:               mmSetCitation.mock,
		params:             &RepositoryMockSetCitationParams{ctx, tx, id, citation},
		expectationOrigins: RepositoryMockSetCitationExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSetCitation.expectations = append(mmSetCitation.expectations, expectation)
	return expectation
}

// Then sets up Repository.SetCitation return parameters for the expectation previously defined by the When method
func (e *RepositoryMockSetCitationExpectation) Then(err error) *RepositoryMock {
	e.results = &RepositoryMockSetCitationResults{err}
	return e.mock
}

// Times sets number of times Repository.SetCitation should be invoked
func (mmSetCitation *mRepositoryMockSetCitation) Times(n uint64) *mRepositoryMockSetCitation {
	if n == 0 {
		mmSetCitation.mock.t.Fatalf("Times of RepositoryMock.SetCitation mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSetCitation.expectedInvocations, n)
	mmSetCitation.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSetCitation
}

func (mmSetCitation *mRepositoryMockSetCitation) invocationsDone() bool {
	if len(mmSetCitation.expectations) == 0 && mmSetCitation.defaultExpectation == nil && mmSetCitation.mock.funcSetCitation == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSetCitation.mock.afterSetCitationCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSetCitation.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// SetCitation implements mm_article.Repository
func (mmSetCitation *RepositoryMock) SetCitation(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) (err error) {
	mm_atomic.AddUint64(&mmSetCitation.beforeSetCitationCounter, 1)
	defer mm_atomic.AddUint64(&mmSetCitation.afterSetCitationCounter, 1)

	mmSetCitation.t.Helper()

	if mmSetCitation.inspectFuncSetCitation != nil {
		mmSetCitation.inspectFuncSetCitation(ctx, tx, id, citation)
	}

	mm_params := RepositoryMockSetCitationParams{ctx, tx, id, citation}

	// Record call args
	mmSetCitation.SetCitationMock.mutex.Lock()
	mmSetCitation.SetCitationMock.callArgs = append(mmSetCitation.SetCitationMock.callArgs, &mm_params)
	mmSetCitation.SetCitationMock.mutex.Unlock()

	for _, e := range mmSetCitation.SetCitationMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmSetCitation.SetCitationMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSetCitation.SetCitationMock.defaultExpectation.Counter, 1)
		mm_want := mmSetCitation.SetCitationMock.defaultExpectation.params
		mm_want_ptrs := mmSetCitation.SetCitationMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockSetCitationParams{ctx, tx, id, citation}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSetCitation.t.Errorf("RepositoryMock.SetCitation got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmSetCitation.t.Errorf("RepositoryMock.SetCitation got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmSetCitation.t.Errorf("RepositoryMock.SetCitation got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

			if mm_want_ptrs.citation != nil && !minimock.Equal(*mm_want_ptrs.citation, mm_got.citation) {
				mmSetCitation.t.Errorf("RepositoryMock.SetCitation got unexpected parameter citation, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originCitation, *mm_want_ptrs.citation, mm_got.citation, minimock.Diff(*mm_want_ptrs.citation, mm_got.citation))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSetCitation.t.Errorf("RepositoryMock.SetCitation got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSetCitation.SetCitationMock.defaultExpectation.results
		if mm_results == nil {
			mmSetCitation.t.Fatal("No results are set for the RepositoryMock.SetCitation")
		}
		return (*mm_results).err
	}
	if mmSetCitation.funcSetCitation != nil {
		return mmSetCitation.funcSetCitation(ctx, tx, id, citation)
	}
	mmSetCitation.t.Fatalf("Unexpected call to RepositoryMock.SetCitation. %v %v %v %v", ctx, tx, id, citation)
	return
}

// SetCitationAfterCounter returns a count of finished RepositoryMock.SetCitation invocations
func (mmSetCitation *RepositoryMock) SetCitationAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetCitation.afterSetCitationCounter)
}

// SetCitationBeforeCounter returns a count of RepositoryMock.SetCitation invocations
func (mmSetCitation *RepositoryMock) SetCitationBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetCitation.beforeSetCitationCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.SetCitation.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSetCitation *mRepositoryMockSetCitation) Calls() []*RepositoryMockSetCitationParams {
	mmSetCitation.mutex.RLock()

	argCopy := make([]*RepositoryMockSetCitationParams, len(mmSetCitation.callArgs))
	copy(argCopy, mmSetCitation.callArgs)

	mmSetCitation.mutex.RUnlock()

	return argCopy
}

// MinimockSetCitationDone returns true if the count of the SetCitation invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockSetCitationDone() bool {
	if m.SetCitationMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SetCitationMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SetCitationMock.invocationsDone()
}

// MinimockSetCitationInspect logs each unmet expectation
func (m *RepositoryMock) MinimockSetCitationInspect() {
	for _, e := range m.SetCitationMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.SetCitation at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSetCitationCounter := mm_atomic.LoadUint64(&m.afterSetCitationCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SetCitationMock.defaultExpectation != nil && afterSetCitationCounter < 1 {
		if m.SetCitationMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.SetCitation at\n%s", m.SetCitationMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.SetCitation at\n%s with params: %#v", m.SetCitationMock.defaultExpectation.expectationOrigins.origin, *m.SetCitationMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSetCitation != nil && afterSetCitationCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.SetCitation at\n%s", m.funcSetCitationOrigin)
	}

	if !m.SetCitationMock.invocationsDone() && afterSetCitationCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.SetCitation at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SetCitationMock.expectedInvocations), m.SetCitationMock.expectedInvocationsOrigin, afterSetCitationCounter)
	}
}

type mRepositoryMockUpdate struct {
	optional           bool
	mock               *RepositoryMock
	defaultExpectation *RepositoryMockUpdateExpectation
	expectations       []*RepositoryMockUpdateExpectation

	callArgs []*RepositoryMockUpdateParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RepositoryMockUpdateExpectation specifies expectation struct of the Repository.Update
type RepositoryMockUpdateExpectation struct {
	mock               *RepositoryMock
	params             *RepositoryMockUpdateParams
	paramPtrs          *RepositoryMockUpdateParamPtrs
	expectationOrigins RepositoryMockUpdateExpectationOrigins
	results            *RepositoryMockUpdateResults
	returnOrigin       string
	Counter            uint64
}

// RepositoryMockUpdateParams contains parameters of the Repository.Update
type RepositoryMockUpdateParams struct {
	ctx context.Context
	tx  tx.Transaction
	a   mm_article.Article
}

// RepositoryMockUpdateParamPtrs contains pointers to parameters of the Repository.Update
type RepositoryMockUpdateParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	a   *mm_article.Article
}

// RepositoryMockUpdateResults contains results of the Repository.Update
type RepositoryMockUpdateResults struct {
	err error
}

// RepositoryMockUpdateOrigins contains origins of expectations of the Repository.Update
type RepositoryMockUpdateExpectationOrigins struct {
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
func (mmUpdate *mRepositoryMockUpdate) Optional() *mRepositoryMockUpdate {
	mmUpdate.optional = true
	return mmUpdate
}

// Expect sets up expected params for Repository.Update
func (mmUpdate *mRepositoryMockUpdate) Expect(ctx context.Context, tx tx.Transaction, a mm_article.Article) *mRepositoryMockUpdate {
	if mmUpdate.mock.funcUpdate != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Set")
	}

	if mmUpdate.defaultExpectation == nil {
		mmUpdate.defaultExpectation = &RepositoryMockUpdateExpectation{}
	}

	if mmUpdate.defaultExpectation.paramPtrs != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by ExpectParams functions")
	}

	mmUpdate.defaultExpectation.params = &RepositoryMockUpdateParams{ctx, tx, a}
	mmUpdate.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUpdate.expectations {
		if minimock.Equal(e.params, mmUpdate.defaultExpectation.params) {
			mmUpdate.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUpdate.defaultExpectation.params)
		}
	}

	return mmUpdate
}

// ExpectCtxParam1 sets up expected param ctx for Repository.Update
func (mmUpdate *mRepositoryMockUpdate) ExpectCtxParam1(ctx context.Context) *mRepositoryMockUpdate {
	if mmUpdate.mock.funcUpdate != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Set")
	}

	if mmUpdate.defaultExpectation == nil {
		mmUpdate.defaultExpectation = &RepositoryMockUpdateExpectation{}
	}

	if mmUpdate.defaultExpectation.params != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Expect")
	}

	if mmUpdate.defaultExpectation.paramPtrs == nil {
		mmUpdate.defaultExpectation.paramPtrs = &RepositoryMockUpdateParamPtrs{}
	}
	mmUpdate.defaultExpectation.paramPtrs.ctx = &ctx
	mmUpdate.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUpdate
}

// ExpectTxParam2 sets up expected param tx for Repository.Update
func (mmUpdate *mRepositoryMockUpdate) ExpectTxParam2(tx tx.Transaction) *mRepositoryMockUpdate {
	if mmUpdate.mock.funcUpdate != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Set")
	}

	if mmUpdate.defaultExpectation == nil {
		mmUpdate.defaultExpectation = &RepositoryMockUpdateExpectation{}
	}

	if mmUpdate.defaultExpectation.params != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Expect")
	}

	if mmUpdate.defaultExpectation.paramPtrs == nil {
		mmUpdate.defaultExpectation.paramPtrs = &RepositoryMockUpdateParamPtrs{}
	}
	mmUpdate.defaultExpectation.paramPtrs.tx = &tx
	mmUpdate.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmUpdate
}

// ExpectAParam3 sets up expected param a for Repository.Update
func (mmUpdate *mRepositoryMockUpdate) ExpectAParam3(a mm_article.Article) *mRepositoryMockUpdate {
	if mmUpdate.mock.funcUpdate != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Set")
	}

	if mmUpdate.defaultExpectation == nil {
		mmUpdate.defaultExpectation = &RepositoryMockUpdateExpectation{}
	}

	if mmUpdate.defaultExpectation.params != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Expect")
	}

	if mmUpdate.defaultExpectation.paramPtrs == nil {
		mmUpdate.defaultExpectation.paramPtrs = &RepositoryMockUpdateParamPtrs{}
	}
	mmUpdate.defaultExpectation.paramPtrs.a = &a
	mmUpdate.defaultExpectation.expectationOrigins.originA = minimock.CallerInfo(1)

	return mmUpdate
}

// Inspect accepts an inspector function that has same arguments as the Repository.Update
func (mmUpdate *mRepositoryMockUpdate) Inspect(f func(ctx context.Context, tx tx.Transaction, a mm_article.Article)) *mRepositoryMockUpdate {
	if mmUpdate.mock.inspectFuncUpdate != nil {
		mmUpdate.mock.t.Fatalf("Inspect function is already set for RepositoryMock.Update")
	}

	mmUpdate.mock.inspectFuncUpdate = f

	return mmUpdate
}

// Return sets up results that will be returned by Repository.Update
func (mmUpdate *mRepositoryMockUpdate) Return(err error) *RepositoryMock {
	if mmUpdate.mock.funcUpdate != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Set")
	}

	if mmUpdate.defaultExpectation == nil {
		mmUpdate.defaultExpectation = &RepositoryMockUpdateExpectation{mock: mmUpdate.mock}
	}
	mmUpdate.defaultExpectation.results = &RepositoryMockUpdateResults{err}
	mmUpdate.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUpdate.mock
}

// Set uses given function f to mock the Repository.Update method
func (mmUpdate *mRepositoryMockUpdate) Set(f func(ctx context.Context, tx tx.Transaction, a mm_article.Article) (err error)) *RepositoryMock {
	if mmUpdate.defaultExpectation != nil {
		mmUpdate.mock.t.Fatalf("Default expectation is already set for the Repository.Update method")
	}

	if len(mmUpdate.expectations) > 0 {
		mmUpdate.mock.t.Fatalf("Some expectations are already set for the Repository.Update method")
	}

	mmUpdate.mock.funcUpdate = f
	mmUpdate.mock.funcUpdateOrigin = minimock.CallerInfo(1)
	return mmUpdate.mock
}

// When sets expectation for the Repository.Update which will trigger the result defined by the following
// Then helper
func (mmUpdate *mRepositoryMockUpdate) When(ctx context.Context, tx tx.Transaction, a mm_article.Article) *RepositoryMockUpdateExpectation {
	if mmUpdate.mock.funcUpdate != nil {
		mmUpdate.mock.t.Fatalf("RepositoryMock.Update mock is already set by Set")
	}

	expectation := &RepositoryMockUpdateExpectation{
		mock:               mmUpdate.mock,
		params:             &RepositoryMockUpdateParams{ctx, tx, a},
		expectationOrigins: RepositoryMockUpdateExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUpdate.expectations = append(mmUpdate.expectations, expectation)
	return expectation
}

// Then sets up Repository.Update return parameters for the expectation previously defined by the When method
func (e *RepositoryMockUpdateExpectation) Then(err error) *RepositoryMock {
	e.results = &RepositoryMockUpdateResults{err}
	return e.mock
}

// Times sets number of times Repository.Update should be invoked
func (mmUpdate *mRepositoryMockUpdate) Times(n uint64) *mRepositoryMockUpdate {
	if n == 0 {
		mmUpdate.mock.t.Fatalf("Times of RepositoryMock.Update mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUpdate.expectedInvocations, n)
	mmUpdate.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUpdate
}

func (mmUpdate *mRepositoryMockUpdate) invocationsDone() bool {
	if len(mmUpdate.expectations) == 0 && mmUpdate.defaultExpectation == nil && mmUpdate.mock.funcUpdate == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUpdate.mock.afterUpdateCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUpdate.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Update implements mm_article.Repository
func (mmUpdate *RepositoryMock) Update(ctx context.Context, tx tx.Transaction, a mm_article.Article) (err error) {
	mm_atomic.AddUint64(&mmUpdate.beforeUpdateCounter, 1)
	defer mm_atomic.AddUint64(&mmUpdate.afterUpdateCounter, 1)

	mmUpdate.t.Helper()

	if mmUpdate.inspectFuncUpdate != nil {
		mmUpdate.inspectFuncUpdate(ctx, tx, a)
	}

	mm_params := RepositoryMockUpdateParams{ctx, tx, a}

	// Record call args
	mmUpdate.UpdateMock.mutex.Lock()
	mmUpdate.UpdateMock.callArgs = append(mmUpdate.UpdateMock.callArgs, &mm_params)
	mmUpdate.UpdateMock.mutex.Unlock()

	for _, e := range mmUpdate.UpdateMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmUpdate.UpdateMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUpdate.UpdateMock.defaultExpectation.Counter, 1)
		mm_want := mmUpdate.UpdateMock.defaultExpectation.params
		mm_want_ptrs := mmUpdate.UpdateMock.defaultExpectation.paramPtrs

		mm_got := RepositoryMockUpdateParams{ctx, tx, a}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUpdate.t.Errorf("RepositoryMock.Update got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdate.UpdateMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmUpdate.t.Errorf("RepositoryMock.Update got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdate.UpdateMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.a != nil && !minimock.Equal(*mm_want_ptrs.a, mm_got.a) {
				mmUpdate.t.Errorf("RepositoryMock.Update got unexpected parameter a, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdate.UpdateMock.defaultExpectation.expectationOrigins.originA, *mm_want_ptrs.a, mm_got.a, minimock.Diff(*mm_want_ptrs.a, mm_got.a))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUpdate.t.Errorf("RepositoryMock.Update got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUpdate.UpdateMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUpdate.UpdateMock.defaultExpectation.results
		if mm_results == nil {
			mmUpdate.t.Fatal("No results are set for the RepositoryMock.Update")
		}
		return (*mm_results).err
	}
	if mmUpdate.funcUpdate != nil {
		return mmUpdate.funcUpdate(ctx, tx, a)
	}
	mmUpdate.t.Fatalf("Unexpected call to RepositoryMock.Update. %v %v %v", ctx, tx, a)
	return
}

// UpdateAfterCounter returns a count of finished RepositoryMock.Update invocations
func (mmUpdate *RepositoryMock) UpdateAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUpdate.afterUpdateCounter)
}

// UpdateBeforeCounter returns a count of RepositoryMock.Update invocations
func (mmUpdate *RepositoryMock) UpdateBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUpdate.beforeUpdateCounter)
}

// Calls returns a list of arguments used in each call to RepositoryMock.Update.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUpdate *mRepositoryMockUpdate) Calls() []*RepositoryMockUpdateParams {
	mmUpdate.mutex.RLock()

	argCopy := make([]*RepositoryMockUpdateParams, len(mmUpdate.callArgs))
	copy(argCopy, mmUpdate.callArgs)

	mmUpdate.mutex.RUnlock()

	return argCopy
}

// MinimockUpdateDone returns true if the count of the Update invocations corresponds
// the number of defined expectations
func (m *RepositoryMock) MinimockUpdateDone() bool {
	if m.UpdateMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.UpdateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.UpdateMock.invocationsDone()
}

// MinimockUpdateInspect logs each unmet expectation
func (m *RepositoryMock) MinimockUpdateInspect() {
	for _, e := range m.UpdateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RepositoryMock.Update at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUpdateCounter := mm_atomic.LoadUint64(&m.afterUpdateCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UpdateMock.defaultExpectation != nil && afterUpdateCounter < 1 {
		if m.UpdateMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RepositoryMock.Update at\n%s", m.UpdateMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RepositoryMock.Update at\n%s with params: %#v", m.UpdateMock.defaultExpectation.expectationOrigins.origin, *m.UpdateMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUpdate != nil && afterUpdateCounter < 1 {
		m.t.Errorf("Expected call to RepositoryMock.Update at\n%s", m.funcUpdateOrigin)
	}

	if !m.UpdateMock.invocationsDone() && afterUpdateCounter > 0 {
		m.t.Errorf("Expected %d calls to RepositoryMock.Update at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UpdateMock.expectedInvocations), m.UpdateMock.expectedInvocationsOrigin, afterUpdateCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *RepositoryMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCreateInspect()

			m.MinimockDeleteInspect()

			m.MinimockGetInspect()

			m.MinimockGetBySlugInspect()

			m.MinimockGetForUpdateInspect()

			m.MinimockListInspect()

			m.MinimockSetCitationInspect()

			m.MinimockUpdateInspect()
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
		m.MinimockDeleteDone() &&
		m.MinimockGetDone() &&
		m.MinimockGetBySlugDone() &&
		m.MinimockGetForUpdateDone() &&
		m.MinimockListDone() &&
		m.MinimockSetCitationDone() &&
		m.MinimockUpdateDone()
}
