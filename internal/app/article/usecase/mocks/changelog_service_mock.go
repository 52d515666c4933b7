// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.ChangelogService -o changelog_service_mock.go -n ChangelogServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
)

// ChangelogServiceMock implements mm_usecase.ChangelogService
type ChangelogServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcDiffFor          func(ctx context.Context, entryID uuid.UUID) (s1 diff.Stats, err error)
	funcDiffForOrigin    string
	inspectFuncDiffFor   func(ctx context.Context, entryID uuid.UUID)
	afterDiffForCounter  uint64
	beforeDiffForCounter uint64
	DiffForMock          mChangelogServiceMockDiffFor

	funcHistoryFor          func(ctx context.Context, articleID uuid.UUID) (ea1 []changelog.Entry, err error)
	funcHistoryForOrigin    string
	inspectFuncHistoryFor   func(ctx context.Context, articleID uuid.UUID)
	afterHistoryForCounter  uint64
	beforeHistoryForCounter uint64
	HistoryForMock          mChangelogServiceMockHistoryFor
}

// NewChangelogServiceMock returns a mock for mm_usecase.ChangelogService
func NewChangelogServiceMock(t minimock.Tester) *ChangelogServiceMock {
	m := &ChangelogServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.DiffForMock = mChangelogServiceMockDiffFor{mock: m}
	m.DiffForMock.callArgs = []*ChangelogServiceMockDiffForParams{}

	m.HistoryForMock = mChangelogServiceMockHistoryFor{mock: m}
	m.HistoryForMock.callArgs = []*ChangelogServiceMockHistoryForParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mChangelogServiceMockDiffFor struct {
	optional           bool
	mock               *ChangelogServiceMock
	defaultExpectation *ChangelogServiceMockDiffForExpectation
	expectations       []*ChangelogServiceMockDiffForExpectation

	callArgs []*ChangelogServiceMockDiffForParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ChangelogServiceMockDiffForExpectation specifies expectation struct of the ChangelogService.DiffFor
type ChangelogServiceMockDiffForExpectation struct {
	mock               *ChangelogServiceMock
	params             *ChangelogServiceMockDiffForParams
	paramPtrs          *ChangelogServiceMockDiffForParamPtrs
	expectationOrigins ChangelogServiceMockDiffForExpectationOrigins
	results            *ChangelogServiceMockDiffForResults
	returnOrigin       string
	Counter            uint64
}

// ChangelogServiceMockDiffForParams contains parameters of the ChangelogService.DiffFor
type ChangelogServiceMockDiffForParams struct {
	ctx     context.Context
	entryID uuid.UUID
}

// ChangelogServiceMockDiffForParamPtrs contains pointers to parameters of the ChangelogService.DiffFor
type ChangelogServiceMockDiffForParamPtrs struct {
	ctx     *context.Context
	entryID *uuid.UUID
}

// ChangelogServiceMockDiffForResults contains results of the ChangelogService.DiffFor
type ChangelogServiceMockDiffForResults struct {
	s1  diff.Stats
	err error
}

// ChangelogServiceMockDiffForOrigins contains origins of expectations of the ChangelogService.DiffFor
type ChangelogServiceMockDiffForExpectationOrigins struct {
	origin        string
	originCtx     string
	originEntryID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDiffFor *mChangelogServiceMockDiffFor) Optional() *mChangelogServiceMockDiffFor {
	mmDiffFor.optional = true
	return mmDiffFor
}

// Expect sets up expected params for ChangelogService.DiffFor
func (mmDiffFor *mChangelogServiceMockDiffFor) Expect(ctx context.Context, entryID uuid.UUID) *mChangelogServiceMockDiffFor {
	if mmDiffFor.mock.funcDiffFor != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Set")
	}

	if mmDiffFor.defaultExpectation == nil {
		mmDiffFor.defaultExpectation = &ChangelogServiceMockDiffForExpectation{}
	}

	if mmDiffFor.defaultExpectation.paramPtrs != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by ExpectParams functions")
	}

	mmDiffFor.defaultExpectation.params = &ChangelogServiceMockDiffForParams{ctx, entryID}
	mmDiffFor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDiffFor.expectations {
		if minimock.Equal(e.params, mmDiffFor.defaultExpectation.params) {
			mmDiffFor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDiffFor.defaultExpectation.params)
		}
	}

	return mmDiffFor
}

// ExpectCtxParam1 sets up expected param ctx for ChangelogService.DiffFor
func (mmDiffFor *mChangelogServiceMockDiffFor) ExpectCtxParam1(ctx context.Context) *mChangelogServiceMockDiffFor {
	if mmDiffFor.mock.funcDiffFor != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Set")
	}

	if mmDiffFor.defaultExpectation == nil {
		mmDiffFor.defaultExpectation = &ChangelogServiceMockDiffForExpectation{}
	}

	if mmDiffFor.defaultExpectation.params != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Expect")
	}

	if mmDiffFor.defaultExpectation.paramPtrs == nil {
		mmDiffFor.defaultExpectation.paramPtrs = &ChangelogServiceMockDiffForParamPtrs{}
	}
	mmDiffFor.defaultExpectation.paramPtrs.ctx = &ctx
	mmDiffFor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDiffFor
}

// ExpectEntryIDParam2 sets up expected param entryID for ChangelogService.DiffFor
func (mmDiffFor *mChangelogServiceMockDiffFor) ExpectEntryIDParam2(entryID uuid.UUID) *mChangelogServiceMockDiffFor {
	if mmDiffFor.mock.funcDiffFor != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Set")
	}

	if mmDiffFor.defaultExpectation == nil {
		mmDiffFor.defaultExpectation = &ChangelogServiceMockDiffForExpectation{}
	}

	if mmDiffFor.defaultExpectation.params != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Expect")
	}

	if mmDiffFor.defaultExpectation.paramPtrs == nil {
		mmDiffFor.defaultExpectation.paramPtrs = &ChangelogServiceMockDiffForParamPtrs{}
	}
	mmDiffFor.defaultExpectation.paramPtrs.entryID = &entryID
	mmDiffFor.defaultExpectation.expectationOrigins.originEntryID = minimock.CallerInfo(1)

	return mmDiffFor
}

// Inspect accepts an inspector function that has same arguments as the ChangelogService.DiffFor
func (mmDiffFor *mChangelogServiceMockDiffFor) Inspect(f func(ctx context.Context, entryID uuid.UUID)) *mChangelogServiceMockDiffFor {
	if mmDiffFor.mock.inspectFuncDiffFor != nil {
		mmDiffFor.mock.t.Fatalf("Inspect function is already set for ChangelogServiceMock.DiffFor")
	}

	mmDiffFor.mock.inspectFuncDiffFor = f

	return mmDiffFor
}

// Return sets up results that will be returned by ChangelogService.DiffFor
func (mmDiffFor *mChangelogServiceMockDiffFor) Return(s1 diff.Stats, err error) *ChangelogServiceMock {
	if mmDiffFor.mock.funcDiffFor != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Set")
	}

	if mmDiffFor.defaultExpectation == nil {
		mmDiffFor.defaultExpectation = &ChangelogServiceMockDiffForExpectation{mock: mmDiffFor.mock}
	}
	mmDiffFor.defaultExpectation.results = &ChangelogServiceMockDiffForResults{s1, err}
	mmDiffFor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDiffFor.mock
}

// Set uses given function f to mock the ChangelogService.DiffFor method
func (mmDiffFor *mChangelogServiceMockDiffFor) Set(f func(ctx context.Context, entryID uuid.UUID) (s1 diff.Stats, err error)) *ChangelogServiceMock {
	if mmDiffFor.defaultExpectation != nil {
		mmDiffFor.mock.t.Fatalf("Default expectation is already set for the ChangelogService.DiffFor method")
	}

	if len(mmDiffFor.expectations) > 0 {
		mmDiffFor.mock.t.Fatalf("Some expectations are already set for the ChangelogService.DiffFor method")
	}

	mmDiffFor.mock.funcDiffFor = f
	mmDiffFor.mock.funcDiffForOrigin = minimock.CallerInfo(1)
	return mmDiffFor.mock
}

// When sets expectation for the ChangelogService.DiffFor which will trigger the result defined by the following
// Then helper
func (mmDiffFor *mChangelogServiceMockDiffFor) When(ctx context.Context, entryID uuid.UUID) *ChangelogServiceMockDiffForExpectation {
	if mmDiffFor.mock.funcDiffFor != nil {
		mmDiffFor.mock.t.Fatalf("ChangelogServiceMock.DiffFor mock is already set by Set")
	}

	expectation := &ChangelogServiceMockDiffForExpectation{
		mock:               mmDiffFor.mock,
		params:             &ChangelogServiceMockDiffForParams{ctx, entryID},
		expectationOrigins: ChangelogServiceMockDiffForExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDiffFor.expectations = append(mmDiffFor.expectations, expectation)
	return expectation
}

// Then sets up ChangelogService.DiffFor return parameters for the expectation previously defined by the When method
func (e *ChangelogServiceMockDiffForExpectation) Then(s1 diff.Stats, err error) *ChangelogServiceMock {
	e.results = &ChangelogServiceMockDiffForResults{s1, err}
	return e.mock
}

// Times sets number of times ChangelogService.DiffFor should be invoked
func (mmDiffFor *mChangelogServiceMockDiffFor) Times(n uint64) *mChangelogServiceMockDiffFor {
	if n == 0 {
		mmDiffFor.mock.t.Fatalf("Times of ChangelogServiceMock.DiffFor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDiffFor.expectedInvocations, n)
	mmDiffFor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDiffFor
}

func (mmDiffFor *mChangelogServiceMockDiffFor) invocationsDone() bool {
	if len(mmDiffFor.expectations) == 0 && mmDiffFor.defaultExpectation == nil && mmDiffFor.mock.funcDiffFor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDiffFor.mock.afterDiffForCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDiffFor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// DiffFor implements mm_usecase.ChangelogService
func (mmDiffFor *ChangelogServiceMock) DiffFor(ctx context.Context, entryID uuid.UUID) (s1 diff.Stats, err error) {
	mm_atomic.AddUint64(&mmDiffFor.beforeDiffForCounter, 1)
	defer mm_atomic.AddUint64(&mmDiffFor.afterDiffForCounter, 1)

	mmDiffFor.t.Helper()

	if mmDiffFor.inspectFuncDiffFor != nil {
		mmDiffFor.inspectFuncDiffFor(ctx, entryID)
	}

	mm_params := ChangelogServiceMockDiffForParams{ctx, entryID}

	// Record call args
	mmDiffFor.DiffForMock.mutex.Lock()
	mmDiffFor.DiffForMock.callArgs = append(mmDiffFor.DiffForMock.callArgs, &mm_params)
	mmDiffFor.DiffForMock.mutex.Unlock()

	for _, e := range mmDiffFor.DiffForMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmDiffFor.DiffForMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDiffFor.DiffForMock.defaultExpectation.Counter, 1)
		mm_want := mmDiffFor.DiffForMock.defaultExpectation.params
		mm_want_ptrs := mmDiffFor.DiffForMock.defaultExpectation.paramPtrs

		mm_got := ChangelogServiceMockDiffForParams{ctx, entryID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDiffFor.t.Errorf("ChangelogServiceMock.DiffFor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDiffFor.DiffForMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.entryID != nil && !minimock.Equal(*mm_want_ptrs.entryID, mm_got.entryID) {
				mmDiffFor.t.Errorf("ChangelogServiceMock.DiffFor got unexpected parameter entryID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDiffFor.DiffForMock.defaultExpectation.expectationOrigins.originEntryID, *mm_want_ptrs.entryID, mm_got.entryID, minimock.Diff(*mm_want_ptrs.entryID, mm_got.entryID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDiffFor.t.Errorf("ChangelogServiceMock.DiffFor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDiffFor.DiffForMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDiffFor.DiffForMock.defaultExpectation.results
		if mm_results == nil {
			mmDiffFor.t.Fatal("No results are set for the ChangelogServiceMock.DiffFor")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmDiffFor.funcDiffFor != nil {
		return mmDiffFor.funcDiffFor(ctx, entryID)
	}
	mmDiffFor.t.Fatalf("Unexpected call to ChangelogServiceMock.DiffFor. %v %v", ctx, entryID)
	return
}

// DiffForAfterCounter returns a count of finished ChangelogServiceMock.DiffFor invocations
func (mmDiffFor *ChangelogServiceMock) DiffForAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDiffFor.afterDiffForCounter)
}

// DiffForBeforeCounter returns a count of ChangelogServiceMock.DiffFor invocations
func (mmDiffFor *ChangelogServiceMock) DiffForBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDiffFor.beforeDiffForCounter)
}

// Calls returns a list of arguments used in each call to ChangelogServiceMock.DiffFor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDiffFor *mChangelogServiceMockDiffFor) Calls() []*ChangelogServiceMockDiffForParams {
	mmDiffFor.mutex.RLock()

	argCopy := make([]*ChangelogServiceMockDiffForParams, len(mmDiffFor.callArgs))
	copy(argCopy, mmDiffFor.callArgs)

	mmDiffFor.mutex.RUnlock()

	return argCopy
}

// MinimockDiffForDone returns true if the count of the DiffFor invocations corresponds
// the number of defined expectations
func (m *ChangelogServiceMock) MinimockDiffForDone() bool {
	if m.DiffForMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DiffForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DiffForMock.invocationsDone()
}

// MinimockDiffForInspect logs each unmet expectation
func (m *ChangelogServiceMock) MinimockDiffForInspect() {
	for _, e := range m.DiffForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ChangelogServiceMock.DiffFor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDiffForCounter := mm_atomic.LoadUint64(&m.afterDiffForCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DiffForMock.defaultExpectation != nil && afterDiffForCounter < 1 {
		if m.DiffForMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ChangelogServiceMock.DiffFor at\n%s", m.DiffForMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ChangelogServiceMock.DiffFor at\n%s with params: %#v", m.DiffForMock.defaultExpectation.expectationOrigins.origin, *m.DiffForMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDiffFor != nil && afterDiffForCounter < 1 {
		m.t.Errorf("Expected call to ChangelogServiceMock.DiffFor at\n%s", m.funcDiffForOrigin)
	}

	if !m.DiffForMock.invocationsDone() && afterDiffForCounter > 0 {
		m.t.Errorf("Expected %d calls to ChangelogServiceMock.DiffFor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DiffForMock.expectedInvocations), m.DiffForMock.expectedInvocationsOrigin, afterDiffForCounter)
	}
}

type mChangelogServiceMockHistoryFor struct {
	optional           bool
	mock               *ChangelogServiceMock
	defaultExpectation *ChangelogServiceMockHistoryForExpectation
	expectations       []*ChangelogServiceMockHistoryForExpectation

	callArgs []*ChangelogServiceMockHistoryForParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ChangelogServiceMockHistoryForExpectation specifies expectation struct of the ChangelogService.HistoryFor
type ChangelogServiceMockHistoryForExpectation struct {
	mock               *ChangelogServiceMock
	params             *ChangelogServiceMockHistoryForParams
	paramPtrs          *ChangelogServiceMockHistoryForParamPtrs
	expectationOrigins ChangelogServiceMockHistoryForExpectationOrigins
	results            *ChangelogServiceMockHistoryForResults
	returnOrigin       string
	Counter            uint64
}

// ChangelogServiceMockHistoryForParams contains parameters of the ChangelogService.HistoryFor
type ChangelogServiceMockHistoryForParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// ChangelogServiceMockHistoryForParamPtrs contains pointers to parameters of the ChangelogService.HistoryFor
type ChangelogServiceMockHistoryForParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// ChangelogServiceMockHistoryForResults contains results of the ChangelogService.HistoryFor
type ChangelogServiceMockHistoryForResults struct {
	ea1 []changelog.Entry
	err error
}

// ChangelogServiceMockHistoryForOrigins contains origins of expectations of the ChangelogService.HistoryFor
type ChangelogServiceMockHistoryForExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Optional() *mChangelogServiceMockHistoryFor {
	mmHistoryFor.optional = true
	return mmHistoryFor
}

// Expect sets up expected params for ChangelogService.HistoryFor
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Expect(ctx context.Context, articleID uuid.UUID) *mChangelogServiceMockHistoryFor {
	if mmHistoryFor.mock.funcHistoryFor != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Set")
	}

	if mmHistoryFor.defaultExpectation == nil {
		mmHistoryFor.defaultExpectation = &ChangelogServiceMockHistoryForExpectation{}
	}

	if mmHistoryFor.defaultExpectation.paramPtrs != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by ExpectParams functions")
	}

	mmHistoryFor.defaultExpectation.params = &ChangelogServiceMockHistoryForParams{ctx, articleID}
	mmHistoryFor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmHistoryFor.expectations {
		if minimock.Equal(e.params, mmHistoryFor.defaultExpectation.params) {
			mmHistoryFor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmHistoryFor.defaultExpectation.params)
		}
	}

	return mmHistoryFor
}

// ExpectCtxParam1 sets up expected param ctx for ChangelogService.HistoryFor
func (mmHistoryFor *mChangelogServiceMockHistoryFor) ExpectCtxParam1(ctx context.Context) *mChangelogServiceMockHistoryFor {
	if mmHistoryFor.mock.funcHistoryFor != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Set")
	}

	if mmHistoryFor.defaultExpectation == nil {
		mmHistoryFor.defaultExpectation = &ChangelogServiceMockHistoryForExpectation{}
	}

	if mmHistoryFor.defaultExpectation.params != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Expect")
	}

	if mmHistoryFor.defaultExpectation.paramPtrs == nil {
		mmHistoryFor.defaultExpectation.paramPtrs = &ChangelogServiceMockHistoryForParamPtrs{}
	}
	mmHistoryFor.defaultExpectation.paramPtrs.ctx = &ctx
	mmHistoryFor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmHistoryFor
}

// ExpectArticleIDParam2 sets up expected param articleID for ChangelogService.HistoryFor
func (mmHistoryFor *mChangelogServiceMockHistoryFor) ExpectArticleIDParam2(articleID uuid.UUID) *mChangelogServiceMockHistoryFor {
	if mmHistoryFor.mock.funcHistoryFor != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Set")
	}

	if mmHistoryFor.defaultExpectation == nil {
		mmHistoryFor.defaultExpectation = &ChangelogServiceMockHistoryForExpectation{}
	}

	if mmHistoryFor.defaultExpectation.params != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Expect")
	}

	if mmHistoryFor.defaultExpectation.paramPtrs == nil {
		mmHistoryFor.defaultExpectation.paramPtrs = &ChangelogServiceMockHistoryForParamPtrs{}
	}
	mmHistoryFor.defaultExpectation.paramPtrs.articleID = &articleID
	mmHistoryFor.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmHistoryFor
}

// Inspect accepts an inspector function that has same arguments as the ChangelogService.HistoryFor
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mChangelogServiceMockHistoryFor {
	if mmHistoryFor.mock.inspectFuncHistoryFor != nil {
		mmHistoryFor.mock.t.Fatalf("Inspect function is already set for ChangelogServiceMock.HistoryFor")
	}

	mmHistoryFor.mock.inspectFuncHistoryFor = f

	return mmHistoryFor
}

// Return sets up results that will be returned by ChangelogService.HistoryFor
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Return(ea1 []changelog.Entry, err error) *ChangelogServiceMock {
	if mmHistoryFor.mock.funcHistoryFor != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Set")
	}

	if mmHistoryFor.defaultExpectation == nil {
		mmHistoryFor.defaultExpectation = &ChangelogServiceMockHistoryForExpectation{mock: mmHistoryFor.mock}
	}
	mmHistoryFor.defaultExpectation.results = &ChangelogServiceMockHistoryForResults{ea1, err}
	mmHistoryFor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmHistoryFor.mock
}

// Set uses given function f to mock the ChangelogService.HistoryFor method
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Set(f func(ctx context.Context, articleID uuid.UUID) (ea1 []changelog.Entry, err error)) *ChangelogServiceMock {
	if mmHistoryFor.defaultExpectation != nil {
		mmHistoryFor.mock.t.Fatalf("Default expectation is already set for the ChangelogService.HistoryFor method")
	}

	if len(mmHistoryFor.expectations) > 0 {
		mmHistoryFor.mock.t.Fatalf("Some expectations are already set for the ChangelogService.HistoryFor method")
	}

	mmHistoryFor.mock.funcHistoryFor = f
	mmHistoryFor.mock.funcHistoryForOrigin = minimock.CallerInfo(1)
	return mmHistoryFor.mock
}

// When sets expectation for the ChangelogService.HistoryFor which will trigger the result defined by the following
// Then helper
func (mmHistoryFor *mChangelogServiceMockHistoryFor) When(ctx context.Context, articleID uuid.UUID) *ChangelogServiceMockHistoryForExpectation {
	if mmHistoryFor.mock.funcHistoryFor != nil {
		mmHistoryFor.mock.t.Fatalf("ChangelogServiceMock.HistoryFor mock is already set by Set")
	}

	expectation := &ChangelogServiceMockHistoryForExpectation{
		mock:               mmHistoryFor.mock,
		params:             &ChangelogServiceMockHistoryForParams{ctx, articleID},
		expectationOrigins: ChangelogServiceMockHistoryForExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmHistoryFor.expectations = append(mmHistoryFor.expectations, expectation)
	return expectation
}

// Then sets up ChangelogService.HistoryFor return parameters for the expectation previously defined by the When method
func (e *ChangelogServiceMockHistoryForExpectation) Then(ea1 []changelog.Entry, err error) *ChangelogServiceMock {
	e.results = &ChangelogServiceMockHistoryForResults{ea1, err}
	return e.mock
}

// Times sets number of times ChangelogService.HistoryFor should be invoked
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Times(n uint64) *mChangelogServiceMockHistoryFor {
	if n == 0 {
		mmHistoryFor.mock.t.Fatalf("Times of ChangelogServiceMock.HistoryFor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmHistoryFor.expectedInvocations, n)
	mmHistoryFor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmHistoryFor
}

func (mmHistoryFor *mChangelogServiceMockHistoryFor) invocationsDone() bool {
	if len(mmHistoryFor.expectations) == 0 && mmHistoryFor.defaultExpectation == nil && mmHistoryFor.mock.funcHistoryFor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmHistoryFor.mock.afterHistoryForCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmHistoryFor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// HistoryFor implements mm_usecase.ChangelogService
func (mmHistoryFor *ChangelogServiceMock) HistoryFor(ctx context.Context, articleID uuid.UUID) (ea1 []changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmHistoryFor.beforeHistoryForCounter, 1)
	defer mm_atomic.AddUint64(&mmHistoryFor.afterHistoryForCounter, 1)

	mmHistoryFor.t.Helper()

	if mmHistoryFor.inspectFuncHistoryFor != nil {
		mmHistoryFor.inspectFuncHistoryFor(ctx, articleID)
	}

	mm_params := ChangelogServiceMockHistoryForParams{ctx, articleID}

	// Record call args
	mmHistoryFor.HistoryForMock.mutex.Lock()
	mmHistoryFor.HistoryForMock.callArgs = append(mmHistoryFor.HistoryForMock.callArgs, &mm_params)
	mmHistoryFor.HistoryForMock.mutex.Unlock()

	for _, e := range mmHistoryFor.HistoryForMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ea1, e.results.err
		}
	}

	if mmHistoryFor.HistoryForMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmHistoryFor.HistoryForMock.defaultExpectation.Counter, 1)
		mm_want := mmHistoryFor.HistoryForMock.defaultExpectation.params
		mm_want_ptrs := mmHistoryFor.HistoryForMock.defaultExpectation.paramPtrs

		mm_got := ChangelogServiceMockHistoryForParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmHistoryFor.t.Errorf("ChangelogServiceMock.HistoryFor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmHistoryFor.HistoryForMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmHistoryFor.t.Errorf("ChangelogServiceMock.HistoryFor got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmHistoryFor.HistoryForMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmHistoryFor.t.Errorf("ChangelogServiceMock.HistoryFor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmHistoryFor.HistoryForMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmHistoryFor.HistoryForMock.defaultExpectation.results
		if mm_results == nil {
			mmHistoryFor.t.Fatal("No results are set for the ChangelogServiceMock.HistoryFor")
		}
		return (*mm_results).ea1, (*mm_results).err
	}
	if mmHistoryFor.funcHistoryFor != nil {
		return mmHistoryFor.funcHistoryFor(ctx, articleID)
	}
	mmHistoryFor.t.Fatalf("Unexpected call to ChangelogServiceMock.HistoryFor. %v %v", ctx, articleID)
	return
}

// HistoryForAfterCounter returns a count of finished ChangelogServiceMock.HistoryFor invocations
func (mmHistoryFor *ChangelogServiceMock) HistoryForAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHistoryFor.afterHistoryForCounter)
}

// HistoryForBeforeCounter returns a count of ChangelogServiceMock.HistoryFor invocations
func (mmHistoryFor *ChangelogServiceMock) HistoryForBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHistoryFor.beforeHistoryForCounter)
}

// Calls returns a list of arguments used in each call to ChangelogServiceMock.HistoryFor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmHistoryFor *mChangelogServiceMockHistoryFor) Calls() []*ChangelogServiceMockHistoryForParams {
	mmHistoryFor.mutex.RLock()

	argCopy := make([]*ChangelogServiceMockHistoryForParams, len(mmHistoryFor.callArgs))
	copy(argCopy, mmHistoryFor.callArgs)

	mmHistoryFor.mutex.RUnlock()

	return argCopy
}

// MinimockHistoryForDone returns true if the count of the HistoryFor invocations corresponds
// the number of defined expectations
func (m *ChangelogServiceMock) MinimockHistoryForDone() bool {
	if m.HistoryForMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.HistoryForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.HistoryForMock.invocationsDone()
}

// MinimockHistoryForInspect logs each unmet expectation
func (m *ChangelogServiceMock) MinimockHistoryForInspect() {
	for _, e := range m.HistoryForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ChangelogServiceMock.HistoryFor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterHistoryForCounter := mm_atomic.LoadUint64(&m.afterHistoryForCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.HistoryForMock.defaultExpectation != nil && afterHistoryForCounter < 1 {
		if m.HistoryForMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ChangelogServiceMock.HistoryFor at\n%s", m.HistoryForMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ChangelogServiceMock.HistoryFor at\n%s with params: %#v", m.HistoryForMock.defaultExpectation.expectationOrigins.origin, *m.HistoryForMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcHistoryFor != nil && afterHistoryForCounter < 1 {
		m.t.Errorf("Expected call to ChangelogServiceMock.HistoryFor at\n%s", m.funcHistoryForOrigin)
	}

	if !m.HistoryForMock.invocationsDone() && afterHistoryForCounter > 0 {
		m.t.Errorf("Expected %d calls to ChangelogServiceMock.HistoryFor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.HistoryForMock.expectedInvocations), m.HistoryForMock.expectedInvocationsOrigin, afterHistoryForCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ChangelogServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockDiffForInspect()

			m.MinimockHistoryForInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ChangelogServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ChangelogServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockDiffForDone() &&
		m.MinimockHistoryForDone()
}
