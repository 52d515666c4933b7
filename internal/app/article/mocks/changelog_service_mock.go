// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article.ChangelogService -o changelog_service_mock.go -n ChangelogServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// ChangelogServiceMock implements mm_article.ChangelogService
type ChangelogServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcAppend          func(ctx context.Context, tx tx.Transaction, req changelog.AppendReq) (e1 changelog.Entry, err error)
	funcAppendOrigin    string
	inspectFuncAppend   func(ctx context.Context, tx tx.Transaction, req changelog.AppendReq)
	afterAppendCounter  uint64
	beforeAppendCounter uint64
	AppendMock          mChangelogServiceMockAppend
}

// NewChangelogServiceMock returns a mock for mm_article.ChangelogService
func NewChangelogServiceMock(t minimock.Tester) *ChangelogServiceMock {
	m := &ChangelogServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AppendMock = mChangelogServiceMockAppend{mock: m}
	m.AppendMock.callArgs = []*ChangelogServiceMockAppendParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mChangelogServiceMockAppend struct {
	optional           bool
	mock               *ChangelogServiceMock
	defaultExpectation *ChangelogServiceMockAppendExpectation
	expectations       []*ChangelogServiceMockAppendExpectation

	callArgs []*ChangelogServiceMockAppendParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ChangelogServiceMockAppendExpectation specifies expectation struct of the ChangelogService.Append
type ChangelogServiceMockAppendExpectation struct {
	mock               *ChangelogServiceMock
	params             *ChangelogServiceMockAppendParams
	paramPtrs          *ChangelogServiceMockAppendParamPtrs
	expectationOrigins ChangelogServiceMockAppendExpectationOrigins
	results            *ChangelogServiceMockAppendResults
	returnOrigin       string
	Counter            uint64
}

// ChangelogServiceMockAppendParams contains parameters of the ChangelogService.Append
type ChangelogServiceMockAppendParams struct {
	ctx context.Context
	tx  tx.Transaction
	req changelog.AppendReq
}

// ChangelogServiceMockAppendParamPtrs contains pointers to parameters of the ChangelogService.Append
type ChangelogServiceMockAppendParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	req *changelog.AppendReq
}

// ChangelogServiceMockAppendResults contains results of the ChangelogService.Append
type ChangelogServiceMockAppendResults struct {
	e1  changelog.Entry
	err error
}

// ChangelogServiceMockAppendOrigins contains origins of expectations of the ChangelogService.Append
type ChangelogServiceMockAppendExpectationOrigins struct {
	origin    string
	originCtx string
	originTx  string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAppend *mChangelogServiceMockAppend) Optional() *mChangelogServiceMockAppend {
	mmAppend.optional = true
	return mmAppend
}

// Expect sets up expected params for ChangelogService.Append
func (mmAppend *mChangelogServiceMockAppend) Expect(ctx context.Context, tx tx.Transaction, req changelog.AppendReq) *mChangelogServiceMockAppend {
	if mmAppend.mock.funcAppend != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Set")
	}

	if mmAppend.defaultExpectation == nil {
		mmAppend.defaultExpectation = &ChangelogServiceMockAppendExpectation{}
	}

	if mmAppend.defaultExpectation.paramPtrs != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by ExpectParams functions")
	}

	mmAppend.defaultExpectation.params = &ChangelogServiceMockAppendParams{ctx, tx, req}
	mmAppend.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAppend.expectations {
		if minimock.Equal(e.params, mmAppend.defaultExpectation.params) {
			mmAppend.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAppend.defaultExpectation.params)
		}
	}

	return mmAppend
}

// ExpectCtxParam1 sets up expected param ctx for ChangelogService.Append
func (mmAppend *mChangelogServiceMockAppend) ExpectCtxParam1(ctx context.Context) *mChangelogServiceMockAppend {
	if mmAppend.mock.funcAppend != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Set")
	}

	if mmAppend.defaultExpectation == nil {
		mmAppend.defaultExpectation = &ChangelogServiceMockAppendExpectation{}
	}

	if mmAppend.defaultExpectation.params != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Expect")
	}

	if mmAppend.defaultExpectation.paramPtrs == nil {
		mmAppend.defaultExpectation.paramPtrs = &ChangelogServiceMockAppendParamPtrs{}
	}
	mmAppend.defaultExpectation.paramPtrs.ctx = &ctx
	mmAppend.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAppend
}

// ExpectTxParam2 sets up expected param tx for ChangelogService.Append
func (mmAppend *mChangelogServiceMockAppend) ExpectTxParam2(tx tx.Transaction) *mChangelogServiceMockAppend {
	if mmAppend.mock.funcAppend != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Set")
	}

	if mmAppend.defaultExpectation == nil {
		mmAppend.defaultExpectation = &ChangelogServiceMockAppendExpectation{}
	}

	if mmAppend.defaultExpectation.params != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Expect")
	}

	if mmAppend.defaultExpectation.paramPtrs == nil {
		mmAppend.defaultExpectation.paramPtrs = &ChangelogServiceMockAppendParamPtrs{}
	}
	mmAppend.defaultExpectation.paramPtrs.tx = &tx
	mmAppend.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmAppend
}

// ExpectReqParam3 sets up expected param req for ChangelogService.Append
func (mmAppend *mChangelogServiceMockAppend) ExpectReqParam3(req changelog.AppendReq) *mChangelogServiceMockAppend {
	if mmAppend.mock.funcAppend != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Set")
	}

	if mmAppend.defaultExpectation == nil {
		mmAppend.defaultExpectation = &ChangelogServiceMockAppendExpectation{}
	}

	if mmAppend.defaultExpectation.params != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Expect")
	}

	if mmAppend.defaultExpectation.paramPtrs == nil {
		mmAppend.defaultExpectation.paramPtrs = &ChangelogServiceMockAppendParamPtrs{}
	}
	mmAppend.defaultExpectation.paramPtrs.req = &req
	mmAppend.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmAppend
}

// Inspect accepts an inspector function that has same arguments as the ChangelogService.Append
func (mmAppend *mChangelogServiceMockAppend) Inspect(f func(ctx context.Context, tx tx.Transaction, req changelog.AppendReq)) *mChangelogServiceMockAppend {
	if mmAppend.mock.inspectFuncAppend != nil {
		mmAppend.mock.t.Fatalf("Inspect function is already set for ChangelogServiceMock.Append")
	}

	mmAppend.mock.inspectFuncAppend = f

	return mmAppend
}

// Return sets up results that will be returned by ChangelogService.Append
func (mmAppend *mChangelogServiceMockAppend) Return(e1 changelog.Entry, err error) *ChangelogServiceMock {
	if mmAppend.mock.funcAppend != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Set")
	}

	if mmAppend.defaultExpectation == nil {
		mmAppend.defaultExpectation = &ChangelogServiceMockAppendExpectation{mock: mmAppend.mock}
	}
	mmAppend.defaultExpectation.results = &ChangelogServiceMockAppendResults{e1, err}
	mmAppend.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAppend.mock
}

// Set uses given function f to mock the ChangelogService.Append method
func (mmAppend *mChangelogServiceMockAppend) Set(f func(ctx context.Context, tx tx.Transaction, req changelog.AppendReq) (e1 changelog.Entry, err error)) *ChangelogServiceMock {
	if mmAppend.defaultExpectation != nil {
		mmAppend.mock.t.Fatalf("Default expectation is already set for the ChangelogService.Append method")
	}

	if len(mmAppend.expectations) > 0 {
		mmAppend.mock.t.Fatalf("Some expectations are already set for the ChangelogService.Append method")
	}

	mmAppend.mock.funcAppend = f
	mmAppend.mock.funcAppendOrigin = minimock.CallerInfo(1)
	return mmAppend.mock
}

// When sets expectation for the ChangelogService.Append which will trigger the result defined by the following
// Then helper
func (mmAppend *mChangelogServiceMockAppend) When(ctx context.Context, tx tx.Transaction, req changelog.AppendReq) *ChangelogServiceMockAppendExpectation {
	if mmAppend.mock.funcAppend != nil {
		mmAppend.mock.t.Fatalf("ChangelogServiceMock.Append mock is already set by Set")
	}

	expectation := &ChangelogServiceMockAppendExpectation{
		mock:               mmAppend.mock,
		params:             &ChangelogServiceMockAppendParams{ctx, tx, req},
		expectationOrigins: ChangelogServiceMockAppendExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAppend.expectations = append(mmAppend.expectations, expectation)
	return expectation
}

// Then sets up ChangelogService.Append return parameters for the expectation previously defined by the When method
func (e *ChangelogServiceMockAppendExpectation) Then(e1 changelog.Entry, err error) *ChangelogServiceMock {
	e.results = &ChangelogServiceMockAppendResults{e1, err}
	return e.mock
}

// Times sets number of times ChangelogService.Append should be invoked
func (mmAppend *mChangelogServiceMockAppend) Times(n uint64) *mChangelogServiceMockAppend {
	if n == 0 {
		mmAppend.mock.t.Fatalf("Times of ChangelogServiceMock.Append mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAppend.expectedInvocations, n)
	mmAppend.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAppend
}

func (mmAppend *mChangelogServiceMockAppend) invocationsDone() bool {
	if len(mmAppend.expectations) == 0 && mmAppend.defaultExpectation == nil && mmAppend.mock.funcAppend == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAppend.mock.afterAppendCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAppend.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Append implements mm_article.ChangelogService
func (mmAppend *ChangelogServiceMock) Append(ctx context.Context, tx tx.Transaction, req changelog.AppendReq) (e1 changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmAppend.beforeAppendCounter, 1)
	defer mm_atomic.AddUint64(&mmAppend.afterAppendCounter, 1)

	mmAppend.t.Helper()

	if mmAppend.inspectFuncAppend != nil {
		mmAppend.inspectFuncAppend(ctx, tx, req)
	}

	mm_params := ChangelogServiceMockAppendParams{ctx, tx, req}

	// Record call args
	mmAppend.AppendMock.mutex.Lock()
	mmAppend.AppendMock.callArgs = append(mmAppend.AppendMock.callArgs, &mm_params)
	mmAppend.AppendMock.mutex.Unlock()

	for _, e := range mmAppend.AppendMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.e1, e.results.err
		}
	}

	if mmAppend.AppendMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAppend.AppendMock.defaultExpectation.Counter, 1)
		mm_want := mmAppend.AppendMock.defaultExpectation.params
		mm_want_ptrs := mmAppend.AppendMock.defaultExpectation.paramPtrs

		mm_got := ChangelogServiceMockAppendParams{ctx, tx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAppend.t.Errorf("ChangelogServiceMock.Append got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAppend.AppendMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmAppend.t.Errorf("ChangelogServiceMock.Append got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAppend.AppendMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmAppend.t.Errorf("ChangelogServiceMock.Append got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAppend.AppendMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAppend.t.Errorf("ChangelogServiceMock.Append got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAppend.AppendMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAppend.AppendMock.defaultExpectation.results
		if mm_results == nil {
			mmAppend.t.Fatal("No results are set for the ChangelogServiceMock.Append")
		}
		return (*mm_results).e1, (*mm_results).err
	}
	if mmAppend.funcAppend != nil {
		return mmAppend.funcAppend(ctx, tx, req)
	}
	mmAppend.t.Fatalf("Unexpected call to ChangelogServiceMock.Append. %v %v %v", ctx, tx, req)
	return
}

// AppendAfterCounter returns a count of finished ChangelogServiceMock.Append invocations
func (mmAppend *ChangelogServiceMock) AppendAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAppend.afterAppendCounter)
}

// AppendBeforeCounter returns a count of ChangelogServiceMock.Append invocations
func (mmAppend *ChangelogServiceMock) AppendBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAppend.beforeAppendCounter)
}

// Calls returns a list of arguments used in each call to ChangelogServiceMock.Append.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAppend *mChangelogServiceMockAppend) Calls() []*ChangelogServiceMockAppendParams {
	mmAppend.mutex.RLock()

	argCopy := make([]*ChangelogServiceMockAppendParams, len(mmAppend.callArgs))
	copy(argCopy, mmAppend.callArgs)

	mmAppend.mutex.RUnlock()

	return argCopy
}

// MinimockAppendDone returns true if the count of the Append invocations corresponds
// the number of defined expectations
func (m *ChangelogServiceMock) MinimockAppendDone() bool {
	if m.AppendMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AppendMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AppendMock.invocationsDone()
}

// MinimockAppendInspect logs each unmet expectation
func (m *ChangelogServiceMock) MinimockAppendInspect() {
	for _, e := range m.AppendMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ChangelogServiceMock.Append at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAppendCounter := mm_atomic.LoadUint64(&m.afterAppendCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AppendMock.defaultExpectation != nil && afterAppendCounter < 1 {
		if m.AppendMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ChangelogServiceMock.Append at\n%s", m.AppendMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ChangelogServiceMock.Append at\n%s with params: %#v", m.AppendMock.defaultExpectation.expectationOrigins.origin, *m.AppendMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAppend != nil && afterAppendCounter < 1 {
		m.t.Errorf("Expected call to ChangelogServiceMock.Append at\n%s", m.funcAppendOrigin)
	}

	if !m.AppendMock.invocationsDone() && afterAppendCounter > 0 {
		m.t.Errorf("Expected %d calls to ChangelogServiceMock.Append at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AppendMock.expectedInvocations), m.AppendMock.expectedInvocationsOrigin, afterAppendCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ChangelogServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockAppendInspect()
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
		m.MinimockAppendDone()
}
