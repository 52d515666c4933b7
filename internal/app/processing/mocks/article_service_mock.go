// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/processing.ArticleService -o article_service_mock.go -n ArticleServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// ArticleServiceMock implements mm_processing.ArticleService
type ArticleServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcRefreshCurrent          func(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) (err error)
	funcRefreshCurrentOrigin    string
	inspectFuncRefreshCurrent   func(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string)
	afterRefreshCurrentCounter  uint64
	beforeRefreshCurrentCounter uint64
	RefreshCurrentMock          mArticleServiceMockRefreshCurrent
}

// NewArticleServiceMock returns a mock for mm_processing.ArticleService
func NewArticleServiceMock(t minimock.Tester) *ArticleServiceMock {
	m := &ArticleServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.RefreshCurrentMock = mArticleServiceMockRefreshCurrent{mock: m}
	m.RefreshCurrentMock.callArgs = []*ArticleServiceMockRefreshCurrentParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mArticleServiceMockRefreshCurrent struct {
	optional           bool
	mock               *ArticleServiceMock
	defaultExpectation *ArticleServiceMockRefreshCurrentExpectation
	expectations       []*ArticleServiceMockRefreshCurrentExpectation

	callArgs []*ArticleServiceMockRefreshCurrentParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ArticleServiceMockRefreshCurrentExpectation specifies expectation struct of the ArticleService.RefreshCurrent
type ArticleServiceMockRefreshCurrentExpectation struct {
	mock               *ArticleServiceMock
	params             *ArticleServiceMockRefreshCurrentParams
	paramPtrs          *ArticleServiceMockRefreshCurrentParamPtrs
	expectationOrigins ArticleServiceMockRefreshCurrentExpectationOrigins
	results            *ArticleServiceMockRefreshCurrentResults
	returnOrigin       string
	Counter            uint64
}

// ArticleServiceMockRefreshCurrentParams contains parameters of the ArticleService.RefreshCurrent
type ArticleServiceMockRefreshCurrentParams struct {
	ctx          context.Context
	tx           tx.Transaction
	source       version.DocumentVersion
	convertedURL string
}

// ArticleServiceMockRefreshCurrentParamPtrs contains pointers to parameters of the ArticleService.RefreshCurrent
type ArticleServiceMockRefreshCurrentParamPtrs struct {
	ctx          *context.Context
	tx           *tx.Transaction
	source       *version.DocumentVersion
	convertedURL *string
}

// ArticleServiceMockRefreshCurrentResults contains results of the ArticleService.RefreshCurrent
type ArticleServiceMockRefreshCurrentResults struct {
	err error
}

// ArticleServiceMockRefreshCurrentOrigins contains origins of expectations of the ArticleService.RefreshCurrent
type ArticleServiceMockRefreshCurrentExpectationOrigins struct {
	origin             string
	originCtx          string
	originTx           string
	originSource       string
	originConvertedURL string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Optional() *mArticleServiceMockRefreshCurrent {
	mmRefreshCurrent.optional = true
	return mmRefreshCurrent
}

// Expect sets up expected params for ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Expect(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) *mArticleServiceMockRefreshCurrent {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	if mmRefreshCurrent.defaultExpectation == nil {
		mmRefreshCurrent.defaultExpectation = &ArticleServiceMockRefreshCurrentExpectation{}
	}

	if mmRefreshCurrent.defaultExpectation.paramPtrs != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by ExpectParams functions")
	}

	mmRefreshCurrent.defaultExpectation.params = &ArticleServiceMockRefreshCurrentParams{ctx, tx, source, convertedURL}
	mmRefreshCurrent.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmRefreshCurrent.expectations {
		if minimock.Equal(e.params, mmRefreshCurrent.defaultExpectation.params) {
			mmRefreshCurrent.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRefreshCurrent.defaultExpectation.params)
		}
	}

	return mmRefreshCurrent
}

// ExpectCtxParam1 sets up expected param ctx for ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) ExpectCtxParam1(ctx context.Context) *mArticleServiceMockRefreshCurrent {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	if mmRefreshCurrent.defaultExpectation == nil {
		mmRefreshCurrent.defaultExpectation = &ArticleServiceMockRefreshCurrentExpectation{}
	}

	if mmRefreshCurrent.defaultExpectation.params != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Expect")
	}

	if mmRefreshCurrent.defaultExpectation.paramPtrs == nil {
		mmRefreshCurrent.defaultExpectation.paramPtrs = &ArticleServiceMockRefreshCurrentParamPtrs{}
	}
	mmRefreshCurrent.defaultExpectation.paramPtrs.ctx = &ctx
	mmRefreshCurrent.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmRefreshCurrent
}

// ExpectTxParam2 sets up expected param tx for ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) ExpectTxParam2(tx tx.Transaction) *mArticleServiceMockRefreshCurrent {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	if mmRefreshCurrent.defaultExpectation == nil {
		mmRefreshCurrent.defaultExpectation = &ArticleServiceMockRefreshCurrentExpectation{}
	}

	if mmRefreshCurrent.defaultExpectation.params != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Expect")
	}

	if mmRefreshCurrent.defaultExpectation.paramPtrs == nil {
		mmRefreshCurrent.defaultExpectation.paramPtrs = &ArticleServiceMockRefreshCurrentParamPtrs{}
	}
	mmRefreshCurrent.defaultExpectation.paramPtrs.tx = &tx
	mmRefreshCurrent.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmRefreshCurrent
}

// ExpectSourceParam3 sets up expected param source for ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) ExpectSourceParam3(source version.DocumentVersion) *mArticleServiceMockRefreshCurrent {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	if mmRefreshCurrent.defaultExpectation == nil {
		mmRefreshCurrent.defaultExpectation = &ArticleServiceMockRefreshCurrentExpectation{}
	}

	if mmRefreshCurrent.defaultExpectation.params != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Expect")
	}

	if mmRefreshCurrent.defaultExpectation.paramPtrs == nil {
		mmRefreshCurrent.defaultExpectation.paramPtrs = &ArticleServiceMockRefreshCurrentParamPtrs{}
	}
	mmRefreshCurrent.defaultExpectation.paramPtrs.source = &source
	mmRefreshCurrent.defaultExpectation.expectationOrigins.originSource = minimock.CallerInfo(1)

	return mmRefreshCurrent
}

// ExpectConvertedURLParam4 sets up expected param convertedURL for ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) ExpectConvertedURLParam4(convertedURL string) *mArticleServiceMockRefreshCurrent {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	if mmRefreshCurrent.defaultExpectation == nil {
		mmRefreshCurrent.defaultExpectation = &ArticleServiceMockRefreshCurrentExpectation{}
	}

	if mmRefreshCurrent.defaultExpectation.params != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Expect")
	}

	if mmRefreshCurrent.defaultExpectation.paramPtrs == nil {
		mmRefreshCurrent.defaultExpectation.paramPtrs = &ArticleServiceMockRefreshCurrentParamPtrs{}
	}
	mmRefreshCurrent.defaultExpectation.paramPtrs.convertedURL = &convertedURL
	mmRefreshCurrent.defaultExpectation.expectationOrigins.originConvertedURL = minimock.CallerInfo(1)

	return mmRefreshCurrent
}

// Inspect accepts an inspector function that has same arguments as the ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Inspect(f func(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string)) *mArticleServiceMockRefreshCurrent {
	if mmRefreshCurrent.mock.inspectFuncRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("Inspect function is already set for ArticleServiceMock.RefreshCurrent")
	}

	mmRefreshCurrent.mock.inspectFuncRefreshCurrent = f

	return mmRefreshCurrent
}

// Return sets up results that will be returned by ArticleService.RefreshCurrent
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Return(err error) *ArticleServiceMock {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	if mmRefreshCurrent.defaultExpectation == nil {
		mmRefreshCurrent.defaultExpectation = &ArticleServiceMockRefreshCurrentExpectation{mock: mmRefreshCurrent.mock}
	}
	mmRefreshCurrent.defaultExpectation.results = &ArticleServiceMockRefreshCurrentResults{err}
	mmRefreshCurrent.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmRefreshCurrent.mock
}

// Set uses given function f to mock the ArticleService.RefreshCurrent method
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Set(f func(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) (err error)) *ArticleServiceMock {
	if mmRefreshCurrent.defaultExpectation != nil {
		mmRefreshCurrent.mock.t.Fatalf("Default expectation is already set for the ArticleService.RefreshCurrent method")
	}

	if len(mmRefreshCurrent.expectations) > 0 {
		mmRefreshCurrent.mock.t.Fatalf("Some expectations are already set for the ArticleService.RefreshCurrent method")
	}

	mmRefreshCurrent.mock.funcRefreshCurrent = f
	mmRefreshCurrent.mock.funcRefreshCurrentOrigin = minimock.CallerInfo(1)
	return mmRefreshCurrent.mock
}

// When sets expectation for the ArticleService.RefreshCurrent which will trigger the result defined by the following
// Then helper
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) When(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) *ArticleServiceMockRefreshCurrentExpectation {
	if mmRefreshCurrent.mock.funcRefreshCurrent != nil {
		mmRefreshCurrent.mock.t.Fatalf("ArticleServiceMock.RefreshCurrent mock is already set by Set")
	}

	expectation := &ArticleServiceMockRefreshCurrentExpectation{
		mock:               mmRefreshCurrent.mock,
		params:             &ArticleServiceMockRefreshCurrentParams{ctx, tx, source, convertedURL},
		expectationOrigins: ArticleServiceMockRefreshCurrentExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmRefreshCurrent.expectations = append(mmRefreshCurrent.expectations, expectation)
	return expectation
}

// Then sets up ArticleService.RefreshCurrent return parameters for the expectation previously defined by the When method
func (e *ArticleServiceMockRefreshCurrentExpectation) Then(err error) *ArticleServiceMock {
	e.results = &ArticleServiceMockRefreshCurrentResults{err}
	return e.mock
}

// Times sets number of times ArticleService.RefreshCurrent should be invoked
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Times(n uint64) *mArticleServiceMockRefreshCurrent {
	if n == 0 {
		mmRefreshCurrent.mock.t.Fatalf("Times of ArticleServiceMock.RefreshCurrent mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmRefreshCurrent.expectedInvocations, n)
	mmRefreshCurrent.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmRefreshCurrent
}

func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) invocationsDone() bool {
	if len(mmRefreshCurrent.expectations) == 0 && mmRefreshCurrent.defaultExpectation == nil && mmRefreshCurrent.mock.funcRefreshCurrent == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmRefreshCurrent.mock.afterRefreshCurrentCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmRefreshCurrent.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// RefreshCurrent implements mm_processing.ArticleService
func (mmRefreshCurrent *ArticleServiceMock) RefreshCurrent(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) (err error) {
	mm_atomic.AddUint64(&mmRefreshCurrent.beforeRefreshCurrentCounter, 1)
	defer mm_atomic.AddUint64(&mmRefreshCurrent.afterRefreshCurrentCounter, 1)

	mmRefreshCurrent.t.Helper()

	if mmRefreshCurrent.inspectFuncRefreshCurrent != nil {
		mmRefreshCurrent.inspectFuncRefreshCurrent(ctx, tx, source, convertedURL)
	}

	mm_params := ArticleServiceMockRefreshCurrentParams{ctx, tx, source, convertedURL}

	// Record call args
	mmRefreshCurrent.RefreshCurrentMock.mutex.Lock()
	mmRefreshCurrent.RefreshCurrentMock.callArgs = append(mmRefreshCurrent.RefreshCurrentMock.callArgs, &mm_params)
	mmRefreshCurrent.RefreshCurrentMock.mutex.Unlock()

	for _, e := range mmRefreshCurrent.RefreshCurrentMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmRefreshCurrent.RefreshCurrentMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.Counter, 1)
		mm_want := mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.params
		mm_want_ptrs := mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.paramPtrs

		mm_got := ArticleServiceMockRefreshCurrentParams{ctx, tx, source, convertedURL}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmRefreshCurrent.t.Errorf("ArticleServiceMock.RefreshCurrent got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmRefreshCurrent.t.Errorf("ArticleServiceMock.RefreshCurrent got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.source != nil && !minimock.Equal(*mm_want_ptrs.source, mm_got.source) {
				mmRefreshCurrent.t.Errorf("ArticleServiceMock.RefreshCurrent got unexpected parameter source, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.expectationOrigins.originSource, *mm_want_ptrs.source, mm_got.source, minimock.Diff(*mm_want_ptrs.source, mm_got.source))
			}

			if mm_want_ptrs.convertedURL != nil && !minimock.Equal(*mm_want_ptrs.convertedURL, mm_got.convertedURL) {
				mmRefreshCurrent.t.Errorf("ArticleServiceMock.RefreshCurrent got unexpected parameter convertedURL, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.expectationOrigins.originConvertedURL, *mm_want_ptrs.convertedURL, mm_got.convertedURL, minimock.Diff(*mm_want_ptrs.convertedURL, mm_got.convertedURL))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmRefreshCurrent.t.Errorf("ArticleServiceMock.RefreshCurrent got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmRefreshCurrent.RefreshCurrentMock.defaultExpectation.results
		if mm_results == nil {
			mmRefreshCurrent.t.Fatal("No results are set for the ArticleServiceMock.RefreshCurrent")
		}
		return (*mm_results).err
	}
	if mmRefreshCurrent.funcRefreshCurrent != nil {
		return mmRefreshCurrent.funcRefreshCurrent(ctx, tx, source, convertedURL)
	}
	mmRefreshCurrent.t.Fatalf("Unexpected call to ArticleServiceMock.RefreshCurrent. %v %v %v %v", ctx, tx, source, convertedURL)
	return
}

// RefreshCurrentAfterCounter returns a count of finished ArticleServiceMock.RefreshCurrent invocations
func (mmRefreshCurrent *ArticleServiceMock) RefreshCurrentAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRefreshCurrent.afterRefreshCurrentCounter)
}

// RefreshCurrentBeforeCounter returns a count of ArticleServiceMock.RefreshCurrent invocations
func (mmRefreshCurrent *ArticleServiceMock) RefreshCurrentBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRefreshCurrent.beforeRefreshCurrentCounter)
}

// Calls returns a list of arguments used in each call to ArticleServiceMock.RefreshCurrent.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRefreshCurrent *mArticleServiceMockRefreshCurrent) Calls() []*ArticleServiceMockRefreshCurrentParams {
	mmRefreshCurrent.mutex.RLock()

	argCopy := make([]*ArticleServiceMockRefreshCurrentParams, len(mmRefreshCurrent.callArgs))
	copy(argCopy, mmRefreshCurrent.callArgs)

	mmRefreshCurrent.mutex.RUnlock()

	return argCopy
}

// MinimockRefreshCurrentDone returns true if the count of the RefreshCurrent invocations corresponds
// the number of defined expectations
func (m *ArticleServiceMock) MinimockRefreshCurrentDone() bool {
	if m.RefreshCurrentMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.RefreshCurrentMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RefreshCurrentMock.invocationsDone()
}

// MinimockRefreshCurrentInspect logs each unmet expectation
func (m *ArticleServiceMock) MinimockRefreshCurrentInspect() {
	for _, e := range m.RefreshCurrentMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ArticleServiceMock.RefreshCurrent at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRefreshCurrentCounter := mm_atomic.LoadUint64(&m.afterRefreshCurrentCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RefreshCurrentMock.defaultExpectation != nil && afterRefreshCurrentCounter < 1 {
		if m.RefreshCurrentMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ArticleServiceMock.RefreshCurrent at\n%s", m.RefreshCurrentMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ArticleServiceMock.RefreshCurrent at\n%s with params: %#v", m.RefreshCurrentMock.defaultExpectation.expectationOrigins.origin, *m.RefreshCurrentMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRefreshCurrent != nil && afterRefreshCurrentCounter < 1 {
		m.t.Errorf("Expected call to ArticleServiceMock.RefreshCurrent at\n%s", m.funcRefreshCurrentOrigin)
	}

	if !m.RefreshCurrentMock.invocationsDone() && afterRefreshCurrentCounter > 0 {
		m.t.Errorf("Expected %d calls to ArticleServiceMock.RefreshCurrent at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RefreshCurrentMock.expectedInvocations), m.RefreshCurrentMock.expectedInvocationsOrigin, afterRefreshCurrentCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ArticleServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockRefreshCurrentInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ArticleServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ArticleServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockRefreshCurrentDone()
}
