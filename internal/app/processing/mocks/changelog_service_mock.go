// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/processing.ChangelogService -o changelog_service_mock.go -n ChangelogServiceMock -p mocks

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

// ChangelogServiceMock implements mm_processing.ChangelogService
type ChangelogServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcListMissingDiff          func(ctx context.Context, limit int) (ea1 []changelog.Entry, err error)
	funcListMissingDiffOrigin    string
	inspectFuncListMissingDiff   func(ctx context.Context, limit int)
	afterListMissingDiffCounter  uint64
	beforeListMissingDiffCounter uint64
	ListMissingDiffMock          mChangelogServiceMockListMissingDiff

	funcSetDiffSummary          func(ctx context.Context, entryID uuid.UUID, summary diff.Stats) (err error)
	funcSetDiffSummaryOrigin    string
	inspectFuncSetDiffSummary   func(ctx context.Context, entryID uuid.UUID, summary diff.Stats)
	afterSetDiffSummaryCounter  uint64
	beforeSetDiffSummaryCounter uint64
	SetDiffSummaryMock          mChangelogServiceMockSetDiffSummary
}

// NewChangelogServiceMock returns a mock for mm_processing.ChangelogService
func NewChangelogServiceMock(t minimock.Tester) *ChangelogServiceMock {
	m := &ChangelogServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ListMissingDiffMock = mChangelogServiceMockListMissingDiff{mock: m}
	m.ListMissingDiffMock.callArgs = []*ChangelogServiceMockListMissingDiffParams{}

	m.SetDiffSummaryMock = mChangelogServiceMockSetDiffSummary{mock: m}
	m.SetDiffSummaryMock.callArgs = []*ChangelogServiceMockSetDiffSummaryParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mChangelogServiceMockListMissingDiff struct {
	optional           bool
	mock               *ChangelogServiceMock
	defaultExpectation *ChangelogServiceMockListMissingDiffExpectation
	expectations       []*ChangelogServiceMockListMissingDiffExpectation

	callArgs []*ChangelogServiceMockListMissingDiffParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ChangelogServiceMockListMissingDiffExpectation specifies expectation struct of the ChangelogService.ListMissingDiff
type ChangelogServiceMockListMissingDiffExpectation struct {
	mock               *ChangelogServiceMock
	params             *ChangelogServiceMockListMissingDiffParams
	paramPtrs          *ChangelogServiceMockListMissingDiffParamPtrs
	expectationOrigins ChangelogServiceMockListMissingDiffExpectationOrigins
	results            *ChangelogServiceMockListMissingDiffResults
	returnOrigin       string
	Counter            uint64
}

// ChangelogServiceMockListMissingDiffParams contains parameters of the ChangelogService.ListMissingDiff
type ChangelogServiceMockListMissingDiffParams struct {
	ctx   context.Context
	limit int
}

// ChangelogServiceMockListMissingDiffParamPtrs contains pointers to parameters of the ChangelogService.ListMissingDiff
type ChangelogServiceMockListMissingDiffParamPtrs struct {
	ctx   *context.Context
	limit *int
}

// ChangelogServiceMockListMissingDiffResults contains results of the ChangelogService.ListMissingDiff
type ChangelogServiceMockListMissingDiffResults struct {
	ea1 []changelog.Entry
	err error
}

// ChangelogServiceMockListMissingDiffOrigins contains origins of expectations of the ChangelogService.ListMissingDiff
type ChangelogServiceMockListMissingDiffExpectationOrigins struct {
	origin      string
	originCtx   string
	originLimit string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Optional() *mChangelogServiceMockListMissingDiff {
	mmListMissingDiff.optional = true
	return mmListMissingDiff
}

// Expect sets up expected params for ChangelogService.ListMissingDiff
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Expect(ctx context.Context, limit int) *mChangelogServiceMockListMissingDiff {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &ChangelogServiceMockListMissingDiffExpectation{}
	}

	if mmListMissingDiff.defaultExpectation.paramPtrs != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by ExpectParams functions")
	}

	mmListMissingDiff.defaultExpectation.params = &ChangelogServiceMockListMissingDiffParams{ctx, limit}
	mmListMissingDiff.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListMissingDiff.expectations {
		if minimock.Equal(e.params, mmListMissingDiff.defaultExpectation.params) {
			mmListMissingDiff.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListMissingDiff.defaultExpectation.params)
		}
	}

	return mmListMissingDiff
}

// ExpectCtxParam1 sets up expected param ctx for ChangelogService.ListMissingDiff
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) ExpectCtxParam1(ctx context.Context) *mChangelogServiceMockListMissingDiff {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &ChangelogServiceMockListMissingDiffExpectation{}
	}

	if mmListMissingDiff.defaultExpectation.params != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Expect")
	}

	if mmListMissingDiff.defaultExpectation.paramPtrs == nil {
		mmListMissingDiff.defaultExpectation.paramPtrs = &ChangelogServiceMockListMissingDiffParamPtrs{}
	}
	mmListMissingDiff.defaultExpectation.paramPtrs.ctx = &ctx
	mmListMissingDiff.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListMissingDiff
}

// ExpectLimitParam2 sets up expected param limit for ChangelogService.ListMissingDiff
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) ExpectLimitParam2(limit int) *mChangelogServiceMockListMissingDiff {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &ChangelogServiceMockListMissingDiffExpectation{}
	}

	if mmListMissingDiff.defaultExpectation.params != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Expect")
	}

	if mmListMissingDiff.defaultExpectation.paramPtrs == nil {
		mmListMissingDiff.defaultExpectation.paramPtrs = &ChangelogServiceMockListMissingDiffParamPtrs{}
	}
	mmListMissingDiff.defaultExpectation.paramPtrs.limit = &limit
	mmListMissingDiff.defaultExpectation.expectationOrigins.originLimit = minimock.CallerInfo(1)

	return mmListMissingDiff
}

// Inspect accepts an inspector function that has same arguments as the ChangelogService.ListMissingDiff
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Inspect(f func(ctx context.Context, limit int)) *mChangelogServiceMockListMissingDiff {
	if mmListMissingDiff.mock.inspectFuncListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("Inspect function is already set for ChangelogServiceMock.ListMissingDiff")
	}

	mmListMissingDiff.mock.inspectFuncListMissingDiff = f

	return mmListMissingDiff
}

// Return sets up results that will be returned by ChangelogService.ListMissingDiff
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Return(ea1 []changelog.Entry, err error) *ChangelogServiceMock {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Set")
	}

	if mmListMissingDiff.defaultExpectation == nil {
		mmListMissingDiff.defaultExpectation = &ChangelogServiceMockListMissingDiffExpectation{mock: mmListMissingDiff.mock}
	}
	mmListMissingDiff.defaultExpectation.results = &ChangelogServiceMockListMissingDiffResults{ea1, err}
	mmListMissingDiff.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListMissingDiff.mock
}

// Set uses given function f to mock the ChangelogService.ListMissingDiff method
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Set(f func(ctx context.Context, limit int) (ea1 []changelog.Entry, err error)) *ChangelogServiceMock {
	if mmListMissingDiff.defaultExpectation != nil {
		mmListMissingDiff.mock.t.Fatalf("Default expectation is already set for the ChangelogService.ListMissingDiff method")
	}

	if len(mmListMissingDiff.expectations) > 0 {
		mmListMissingDiff.mock.t.Fatalf("Some expectations are already set for the ChangelogService.ListMissingDiff method")
	}

	mmListMissingDiff.mock.funcListMissingDiff = f
	mmListMissingDiff.mock.funcListMissingDiffOrigin = minimock.CallerInfo(1)
	return mmListMissingDiff.mock
}

// When sets expectation for the ChangelogService.ListMissingDiff which will trigger the result defined by the following
// Then helper
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) When(ctx context.Context, limit int) *ChangelogServiceMockListMissingDiffExpectation {
	if mmListMissingDiff.mock.funcListMissingDiff != nil {
		mmListMissingDiff.mock.t.Fatalf("ChangelogServiceMock.ListMissingDiff mock is already set by Set")
	}

	expectation := &ChangelogServiceMockListMissingDiffExpectation{
		mock:               mmListMissingDiff.mock,
		params:             &ChangelogServiceMockListMissingDiffParams{ctx, limit},
		expectationOrigins: ChangelogServiceMockListMissingDiffExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListMissingDiff.expectations = append(mmListMissingDiff.expectations, expectation)
	return expectation
}

// Then sets up ChangelogService.ListMissingDiff return parameters for the expectation previously defined by the When method
func (e *ChangelogServiceMockListMissingDiffExpectation) Then(ea1 []changelog.Entry, err error) *ChangelogServiceMock {
	e.results = &ChangelogServiceMockListMissingDiffResults{ea1, err}
	return e.mock
}

// Times sets number of times ChangelogService.ListMissingDiff should be invoked
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Times(n uint64) *mChangelogServiceMockListMissingDiff {
	if n == 0 {
		mmListMissingDiff.mock.t.Fatalf("Times of ChangelogServiceMock.ListMissingDiff mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListMissingDiff.expectedInvocations, n)
	mmListMissingDiff.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListMissingDiff
}

func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) invocationsDone() bool {
	if len(mmListMissingDiff.expectations) == 0 && mmListMissingDiff.defaultExpectation == nil && mmListMissingDiff.mock.funcListMissingDiff == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListMissingDiff.mock.afterListMissingDiffCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListMissingDiff.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListMissingDiff implements mm_processing.ChangelogService
func (mmListMissingDiff *ChangelogServiceMock) ListMissingDiff(ctx context.Context, limit int) (ea1 []changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmListMissingDiff.beforeListMissingDiffCounter, 1)
	defer mm_atomic.AddUint64(&mmListMissingDiff.afterListMissingDiffCounter, 1)

	mmListMissingDiff.t.Helper()

	if mmListMissingDiff.inspectFuncListMissingDiff != nil {
		mmListMissingDiff.inspectFuncListMissingDiff(ctx, limit)
	}

	mm_params := ChangelogServiceMockListMissingDiffParams{ctx, limit}

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

		mm_got := ChangelogServiceMockListMissingDiffParams{ctx, limit}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListMissingDiff.t.Errorf("ChangelogServiceMock.ListMissingDiff got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingDiff.ListMissingDiffMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.limit != nil && !minimock.Equal(*mm_want_ptrs.limit, mm_got.limit) {
				mmListMissingDiff.t.Errorf("ChangelogServiceMock.ListMissingDiff got unexpected parameter limit, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingDiff.ListMissingDiffMock.defaultExpectation.expectationOrigins.originLimit, *mm_want_ptrs.limit, mm_got.limit, minimock.Diff(*mm_want_ptrs.limit, mm_got.limit))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListMissingDiff.t.Errorf("ChangelogServiceMock.ListMissingDiff got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListMissingDiff.ListMissingDiffMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListMissingDiff.ListMissingDiffMock.defaultExpectation.results
		if mm_results == nil {
			mmListMissingDiff.t.Fatal("No results are set for the ChangelogServiceMock.ListMissingDiff")
		}
		return (*mm_results).ea1, (*mm_results).err
	}
	if mmListMissingDiff.funcListMissingDiff != nil {
		return mmListMissingDiff.funcListMissingDiff(ctx, limit)
	}
	mmListMissingDiff.t.Fatalf("Unexpected call to ChangelogServiceMock.ListMissingDiff. %v %v", ctx, limit)
	return
}

// ListMissingDiffAfterCounter returns a count of finished ChangelogServiceMock.ListMissingDiff invocations
func (mmListMissingDiff *ChangelogServiceMock) ListMissingDiffAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingDiff.afterListMissingDiffCounter)
}

// ListMissingDiffBeforeCounter returns a count of ChangelogServiceMock.ListMissingDiff invocations
func (mmListMissingDiff *ChangelogServiceMock) ListMissingDiffBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingDiff.beforeListMissingDiffCounter)
}

// Calls returns a list of arguments used in each call to ChangelogServiceMock.ListMissingDiff.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListMissingDiff *mChangelogServiceMockListMissingDiff) Calls() []*ChangelogServiceMockListMissingDiffParams {
	mmListMissingDiff.mutex.RLock()

	argCopy := make([]*ChangelogServiceMockListMissingDiffParams, len(mmListMissingDiff.callArgs))
	copy(argCopy, mmListMissingDiff.callArgs)

	mmListMissingDiff.mutex.RUnlock()

	return argCopy
}

// MinimockListMissingDiffDone returns true if the count of the ListMissingDiff invocations corresponds
// the number of defined expectations
func (m *ChangelogServiceMock) MinimockListMissingDiffDone() bool {
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
func (m *ChangelogServiceMock) MinimockListMissingDiffInspect() {
	for _, e := range m.ListMissingDiffMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ChangelogServiceMock.ListMissingDiff at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListMissingDiffCounter := mm_atomic.LoadUint64(&m.afterListMissingDiffCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMissingDiffMock.defaultExpectation != nil && afterListMissingDiffCounter < 1 {
		if m.ListMissingDiffMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ChangelogServiceMock.ListMissingDiff at\n%s", m.ListMissingDiffMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ChangelogServiceMock.ListMissingDiff at\n%s with params: %#v", m.ListMissingDiffMock.defaultExpectation.expectationOrigins.origin, *m.ListMissingDiffMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListMissingDiff != nil && afterListMissingDiffCounter < 1 {
		m.t.Errorf("Expected call to ChangelogServiceMock.ListMissingDiff at\n%s", m.funcListMissingDiffOrigin)
	}

	if !m.ListMissingDiffMock.invocationsDone() && afterListMissingDiffCounter > 0 {
		m.t.Errorf("Expected %d calls to ChangelogServiceMock.ListMissingDiff at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMissingDiffMock.expectedInvocations), m.ListMissingDiffMock.expectedInvocationsOrigin, afterListMissingDiffCounter)
	}
}

type mChangelogServiceMockSetDiffSummary struct {
	optional           bool
	mock               *ChangelogServiceMock
	defaultExpectation *ChangelogServiceMockSetDiffSummaryExpectation
	expectations       []*ChangelogServiceMockSetDiffSummaryExpectation

	callArgs []*ChangelogServiceMockSetDiffSummaryParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ChangelogServiceMockSetDiffSummaryExpectation specifies expectation struct of the ChangelogService.SetDiffSummary
type ChangelogServiceMockSetDiffSummaryExpectation struct {
	mock               *ChangelogServiceMock
	params             *ChangelogServiceMockSetDiffSummaryParams
	paramPtrs          *ChangelogServiceMockSetDiffSummaryParamPtrs
	expectationOrigins ChangelogServiceMockSetDiffSummaryExpectationOrigins
	results            *ChangelogServiceMockSetDiffSummaryResults
	returnOrigin       string
	Counter            uint64
}

// ChangelogServiceMockSetDiffSummaryParams contains parameters of the ChangelogService.SetDiffSummary
type ChangelogServiceMockSetDiffSummaryParams struct {
	ctx     context.Context
	entryID uuid.UUID
	summary diff.Stats
}

// ChangelogServiceMockSetDiffSummaryParamPtrs contains pointers to parameters of the ChangelogService.SetDiffSummary
type ChangelogServiceMockSetDiffSummaryParamPtrs struct {
	ctx     *context.Context
	entryID *uuid.UUID
	summary *diff.Stats
}

// ChangelogServiceMockSetDiffSummaryResults contains results of the ChangelogService.SetDiffSummary
type ChangelogServiceMockSetDiffSummaryResults struct {
	err error
}

// ChangelogServiceMockSetDiffSummaryOrigins contains origins of expectations of the ChangelogService.SetDiffSummary
type ChangelogServiceMockSetDiffSummaryExpectationOrigins struct {
	origin        string
	originCtx     string
	originEntryID string
	originSummary string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Optional() *mChangelogServiceMockSetDiffSummary {
	mmSetDiffSummary.optional = true
	return mmSetDiffSummary
}

// Expect sets up expected params for ChangelogService.SetDiffSummary
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Expect(ctx context.Context, entryID uuid.UUID, summary diff.Stats) *mChangelogServiceMockSetDiffSummary {
	if mmSetDiffSummary.mock.funcSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Set")
	}

	if mmSetDiffSummary.defaultExpectation == nil {
		mmSetDiffSummary.defaultExpectation = &ChangelogServiceMockSetDiffSummaryExpectation{}
	}

	if mmSetDiffSummary.defaultExpectation.paramPtrs != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by ExpectParams functions")
	}

	mmSetDiffSummary.defaultExpectation.params = &ChangelogServiceMockSetDiffSummaryParams{ctx, entryID, summary}
	mmSetDiffSummary.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSetDiffSummary.expectations {
		if minimock.Equal(e.params, mmSetDiffSummary.defaultExpectation.params) {
			mmSetDiffSummary.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSetDiffSummary.defaultExpectation.params)
		}
	}

	return mmSetDiffSummary
}

// ExpectCtxParam1 sets up expected param ctx for ChangelogService.SetDiffSummary
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) ExpectCtxParam1(ctx context.Context) *mChangelogServiceMockSetDiffSummary {
	if mmSetDiffSummary.mock.funcSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Set")
	}

	if mmSetDiffSummary.defaultExpectation == nil {
		mmSetDiffSummary.defaultExpectation = &ChangelogServiceMockSetDiffSummaryExpectation{}
	}

	if mmSetDiffSummary.defaultExpectation.params != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Expect")
	}

	if mmSetDiffSummary.defaultExpectation.paramPtrs == nil {
		mmSetDiffSummary.defaultExpectation.paramPtrs = &ChangelogServiceMockSetDiffSummaryParamPtrs{}
	}
	mmSetDiffSummary.defaultExpectation.paramPtrs.ctx = &ctx
	mmSetDiffSummary.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSetDiffSummary
}

// ExpectEntryIDParam2 sets up expected param entryID for ChangelogService.SetDiffSummary
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) ExpectEntryIDParam2(entryID uuid.UUID) *mChangelogServiceMockSetDiffSummary {
	if mmSetDiffSummary.mock.funcSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Set")
	}

	if mmSetDiffSummary.defaultExpectation == nil {
		mmSetDiffSummary.defaultExpectation = &ChangelogServiceMockSetDiffSummaryExpectation{}
	}

	if mmSetDiffSummary.defaultExpectation.params != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Expect")
	}

	if mmSetDiffSummary.defaultExpectation.paramPtrs == nil {
		mmSetDiffSummary.defaultExpectation.paramPtrs = &ChangelogServiceMockSetDiffSummaryParamPtrs{}
	}
	mmSetDiffSummary.defaultExpectation.paramPtrs.entryID = &entryID
	mmSetDiffSummary.defaultExpectation.expectationOrigins.originEntryID = minimock.CallerInfo(1)

	return mmSetDiffSummary
}

// ExpectSummaryParam3 sets up expected param summary for ChangelogService.SetDiffSummary
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) ExpectSummaryParam3(summary diff.Stats) *mChangelogServiceMockSetDiffSummary {
	if mmSetDiffSummary.mock.funcSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Set")
	}

	if mmSetDiffSummary.defaultExpectation == nil {
		mmSetDiffSummary.defaultExpectation = &ChangelogServiceMockSetDiffSummaryExpectation{}
	}

	if mmSetDiffSummary.defaultExpectation.params != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Expect")
	}

	if mmSetDiffSummary.defaultExpectation.paramPtrs == nil {
		mmSetDiffSummary.defaultExpectation.paramPtrs = &ChangelogServiceMockSetDiffSummaryParamPtrs{}
	}
	mmSetDiffSummary.defaultExpectation.paramPtrs.summary = &summary
	mmSetDiffSummary.defaultExpectation.expectationOrigins.originSummary = minimock.CallerInfo(1)

	return mmSetDiffSummary
}

// Inspect accepts an inspector function that has same arguments as the ChangelogService.SetDiffSummary
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Inspect(f func(ctx context.Context, entryID uuid.UUID, summary diff.Stats)) *mChangelogServiceMockSetDiffSummary {
	if mmSetDiffSummary.mock.inspectFuncSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("Inspect function is already set for ChangelogServiceMock.SetDiffSummary")
	}

	mmSetDiffSummary.mock.inspectFuncSetDiffSummary = f

	return mmSetDiffSummary
}

// Return sets up results that will be returned by ChangelogService.SetDiffSummary
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Return(err error) *ChangelogServiceMock {
	if mmSetDiffSummary.mock.funcSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Set")
	}

	if mmSetDiffSummary.defaultExpectation == nil {
		mmSetDiffSummary.defaultExpectation = &ChangelogServiceMockSetDiffSummaryExpectation{mock: mmSetDiffSummary.mock}
	}
	mmSetDiffSummary.defaultExpectation.results = &ChangelogServiceMockSetDiffSummaryResults{err}
	mmSetDiffSummary.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSetDiffSummary.mock
}

// Set uses given function f to mock the ChangelogService.SetDiffSummary method
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Set(f func(ctx context.Context, entryID uuid.UUID, summary diff.Stats) (err error)) *ChangelogServiceMock {
	if mmSetDiffSummary.defaultExpectation != nil {
		mmSetDiffSummary.mock.t.Fatalf("Default expectation is already set for the ChangelogService.SetDiffSummary method")
	}

	if len(mmSetDiffSummary.expectations) > 0 {
		mmSetDiffSummary.mock.t.Fatalf("Some expectations are already set for the ChangelogService.SetDiffSummary method")
	}

	mmSetDiffSummary.mock.funcSetDiffSummary = f
	mmSetDiffSummary.mock.funcSetDiffSummaryOrigin = minimock.CallerInfo(1)
	return mmSetDiffSummary.mock
}

// When sets expectation for the ChangelogService.SetDiffSummary which will trigger the result defined by the following
// Then helper
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) When(ctx context.Context, entryID uuid.UUID, summary diff.Stats) *ChangelogServiceMockSetDiffSummaryExpectation {
	if mmSetDiffSummary.mock.funcSetDiffSummary != nil {
		mmSetDiffSummary.mock.t.Fatalf("ChangelogServiceMock.SetDiffSummary mock is already set by Set")
	}

	expectation := &ChangelogServiceMockSetDiffSummaryExpectation{
		mock:               mmSetDiffSummary.mock,
		params:             &ChangelogServiceMockSetDiffSummaryParams{ctx, entryID, summary},
		expectationOrigins: ChangelogServiceMockSetDiffSummaryExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSetDiffSummary.expectations = append(mmSetDiffSummary.expectations, expectation)
	return expectation
}

// Then sets up ChangelogService.SetDiffSummary return parameters for the expectation previously defined by the When method
func (e *ChangelogServiceMockSetDiffSummaryExpectation) Then(err error) *ChangelogServiceMock {
	e.results = &ChangelogServiceMockSetDiffSummaryResults{err}
	return e.mock
}

// Times sets number of times ChangelogService.SetDiffSummary should be invoked
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Times(n uint64) *mChangelogServiceMockSetDiffSummary {
	if n == 0 {
		mmSetDiffSummary.mock.t.Fatalf("Times of ChangelogServiceMock.SetDiffSummary mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSetDiffSummary.expectedInvocations, n)
	mmSetDiffSummary.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSetDiffSummary
}

func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) invocationsDone() bool {
	if len(mmSetDiffSummary.expectations) == 0 && mmSetDiffSummary.defaultExpectation == nil && mmSetDiffSummary.mock.funcSetDiffSummary == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSetDiffSummary.mock.afterSetDiffSummaryCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSetDiffSummary.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// SetDiffSummary implements mm_processing.ChangelogService
func (mmSetDiffSummary *ChangelogServiceMock) SetDiffSummary(ctx context.Context, entryID uuid.UUID, summary diff.Stats) (err error) {
	mm_atomic.AddUint64(&mmSetDiffSummary.beforeSetDiffSummaryCounter, 1)
	defer mm_atomic.AddUint64(&mmSetDiffSummary.afterSetDiffSummaryCounter, 1)

	mmSetDiffSummary.t.Helper()

	if mmSetDiffSummary.inspectFuncSetDiffSummary != nil {
		mmSetDiffSummary.inspectFuncSetDiffSummary(ctx, entryID, summary)
	}

	mm_params := ChangelogServiceMockSetDiffSummaryParams{ctx, entryID, summary}

	// Record call args
	mmSetDiffSummary.SetDiffSummaryMock.mutex.Lock()
	mmSetDiffSummary.SetDiffSummaryMock.callArgs = append(mmSetDiffSummary.SetDiffSummaryMock.callArgs, &mm_params)
	mmSetDiffSummary.SetDiffSummaryMock.mutex.Unlock()

	for _, e := range mmSetDiffSummary.SetDiffSummaryMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.Counter, 1)
		mm_want := mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.params
		mm_want_ptrs := mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.paramPtrs

		mm_got := ChangelogServiceMockSetDiffSummaryParams{ctx, entryID, summary}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSetDiffSummary.t.Errorf("ChangelogServiceMock.SetDiffSummary got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.entryID != nil && !minimock.Equal(*mm_want_ptrs.entryID, mm_got.entryID) {
				mmSetDiffSummary.t.Errorf("ChangelogServiceMock.SetDiffSummary got unexpected parameter entryID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.expectationOrigins.originEntryID, *mm_want_ptrs.entryID, mm_got.entryID, minimock.Diff(*mm_want_ptrs.entryID, mm_got.entryID))
			}

			if mm_want_ptrs.summary != nil && !minimock.Equal(*mm_want_ptrs.summary, mm_got.summary) {
				mmSetDiffSummary.t.Errorf("ChangelogServiceMock.SetDiffSummary got unexpected parameter summary, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.expectationOrigins.originSummary, *mm_want_ptrs.summary, mm_got.summary, minimock.Diff(*mm_want_ptrs.summary, mm_got.summary))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSetDiffSummary.t.Errorf("ChangelogServiceMock.SetDiffSummary got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSetDiffSummary.SetDiffSummaryMock.defaultExpectation.results
		if mm_results == nil {
			mmSetDiffSummary.t.Fatal("No results are set for the ChangelogServiceMock.SetDiffSummary")
		}
		return (*mm_results).err
	}
	if mmSetDiffSummary.funcSetDiffSummary != nil {
		return mmSetDiffSummary.funcSetDiffSummary(ctx, entryID, summary)
	}
	mmSetDiffSummary.t.Fatalf("Unexpected call to ChangelogServiceMock.SetDiffSummary. %v %v %v", ctx, entryID, summary)
	return
}

// SetDiffSummaryAfterCounter returns a count of finished ChangelogServiceMock.SetDiffSummary invocations
func (mmSetDiffSummary *ChangelogServiceMock) SetDiffSummaryAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetDiffSummary.afterSetDiffSummaryCounter)
}

// SetDiffSummaryBeforeCounter returns a count of ChangelogServiceMock.SetDiffSummary invocations
func (mmSetDiffSummary *ChangelogServiceMock) SetDiffSummaryBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetDiffSummary.beforeSetDiffSummaryCounter)
}

// Calls returns a list of arguments used in each call to ChangelogServiceMock.SetDiffSummary.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSetDiffSummary *mChangelogServiceMockSetDiffSummary) Calls() []*ChangelogServiceMockSetDiffSummaryParams {
	mmSetDiffSummary.mutex.RLock()

	argCopy := make([]*ChangelogServiceMockSetDiffSummaryParams, len(mmSetDiffSummary.callArgs))
	copy(argCopy, mmSetDiffSummary.callArgs)

	mmSetDiffSummary.mutex.RUnlock()

	return argCopy
}

// MinimockSetDiffSummaryDone returns true if the count of the SetDiffSummary invocations corresponds
// the number of defined expectations
func (m *ChangelogServiceMock) MinimockSetDiffSummaryDone() bool {
	if m.SetDiffSummaryMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SetDiffSummaryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SetDiffSummaryMock.invocationsDone()
}

// MinimockSetDiffSummaryInspect logs each unmet expectation
func (m *ChangelogServiceMock) MinimockSetDiffSummaryInspect() {
	for _, e := range m.SetDiffSummaryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ChangelogServiceMock.SetDiffSummary at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSetDiffSummaryCounter := mm_atomic.LoadUint64(&m.afterSetDiffSummaryCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SetDiffSummaryMock.defaultExpectation != nil && afterSetDiffSummaryCounter < 1 {
		if m.SetDiffSummaryMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ChangelogServiceMock.SetDiffSummary at\n%s", m.SetDiffSummaryMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ChangelogServiceMock.SetDiffSummary at\n%s with params: %#v", m.SetDiffSummaryMock.defaultExpectation.expectationOrigins.origin, *m.SetDiffSummaryMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSetDiffSummary != nil && afterSetDiffSummaryCounter < 1 {
		m.t.Errorf("Expected call to ChangelogServiceMock.SetDiffSummary at\n%s", m.funcSetDiffSummaryOrigin)
	}

	if !m.SetDiffSummaryMock.invocationsDone() && afterSetDiffSummaryCounter > 0 {
		m.t.Errorf("Expected %d calls to ChangelogServiceMock.SetDiffSummary at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SetDiffSummaryMock.expectedInvocations), m.SetDiffSummaryMock.expectedInvocationsOrigin, afterSetDiffSummaryCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ChangelogServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockListMissingDiffInspect()

			m.MinimockSetDiffSummaryInspect()
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
		m.MinimockListMissingDiffDone() &&
		m.MinimockSetDiffSummaryDone()
}
