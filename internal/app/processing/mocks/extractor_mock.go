// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/processing.Extractor -o extractor_mock.go -n ExtractorMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// ExtractorMock implements mm_processing.Extractor
type ExtractorMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcExtract          func(ctx context.Context, fileURL string) (s1 string, err error)
	funcExtractOrigin    string
	inspectFuncExtract   func(ctx context.Context, fileURL string)
	afterExtractCounter  uint64
	beforeExtractCounter uint64
	ExtractMock          mExtractorMockExtract
}

// NewExtractorMock returns a mock for mm_processing.Extractor
func NewExtractorMock(t minimock.Tester) *ExtractorMock {
	m := &ExtractorMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ExtractMock = mExtractorMockExtract{mock: m}
	m.ExtractMock.callArgs = []*ExtractorMockExtractParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mExtractorMockExtract struct {
	optional           bool
	mock               *ExtractorMock
	defaultExpectation *ExtractorMockExtractExpectation
	expectations       []*ExtractorMockExtractExpectation

	callArgs []*ExtractorMockExtractParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ExtractorMockExtractExpectation specifies expectation struct of the Extractor.Extract
type ExtractorMockExtractExpectation struct {
	mock               *ExtractorMock
	params             *ExtractorMockExtractParams
	paramPtrs          *ExtractorMockExtractParamPtrs
	expectationOrigins ExtractorMockExtractExpectationOrigins
	results            *ExtractorMockExtractResults
	returnOrigin       string
	Counter            uint64
}

// ExtractorMockExtractParams contains parameters of the Extractor.Extract
type ExtractorMockExtractParams struct {
	ctx     context.Context
	fileURL string
}

// ExtractorMockExtractParamPtrs contains pointers to parameters of the Extractor.Extract
type ExtractorMockExtractParamPtrs struct {
	ctx     *context.Context
	fileURL *string
}

// ExtractorMockExtractResults contains results of the Extractor.Extract
type ExtractorMockExtractResults struct {
	s1  string
	err error
}

// ExtractorMockExtractOrigins contains origins of expectations of the Extractor.Extract
type ExtractorMockExtractExpectationOrigins struct {
	origin        string
	originCtx     string
	originFileURL string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmExtract *mExtractorMockExtract) Optional() *mExtractorMockExtract {
	mmExtract.optional = true
	return mmExtract
}

// Expect sets up expected params for Extractor.Extract
func (mmExtract *mExtractorMockExtract) Expect(ctx context.Context, fileURL string) *mExtractorMockExtract {
	if mmExtract.mock.funcExtract != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Set")
	}

	if mmExtract.defaultExpectation == nil {
		mmExtract.defaultExpectation = &ExtractorMockExtractExpectation{}
	}

	if mmExtract.defaultExpectation.paramPtrs != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by ExpectParams functions")
	}

	mmExtract.defaultExpectation.params = &ExtractorMockExtractParams{ctx, fileURL}
	mmExtract.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmExtract.expectations {
		if minimock.Equal(e.params, mmExtract.defaultExpectation.params) {
			mmExtract.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmExtract.defaultExpectation.params)
		}
	}

	return mmExtract
}

// ExpectCtxParam1 sets up expected param ctx for Extractor.Extract
func (mmExtract *mExtractorMockExtract) ExpectCtxParam1(ctx context.Context) *mExtractorMockExtract {
	if mmExtract.mock.funcExtract != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Set")
	}

	if mmExtract.defaultExpectation == nil {
		mmExtract.defaultExpectation = &ExtractorMockExtractExpectation{}
	}

	if mmExtract.defaultExpectation.params != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Expect")
	}

	if mmExtract.defaultExpectation.paramPtrs == nil {
		mmExtract.defaultExpectation.paramPtrs = &ExtractorMockExtractParamPtrs{}
	}
	mmExtract.defaultExpectation.paramPtrs.ctx = &ctx
	mmExtract.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmExtract
}

// ExpectFileURLParam2 sets up expected param fileURL for Extractor.Extract
func (mmExtract *mExtractorMockExtract) ExpectFileURLParam2(fileURL string) *mExtractorMockExtract {
	if mmExtract.mock.funcExtract != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Set")
	}

	if mmExtract.defaultExpectation == nil {
		mmExtract.defaultExpectation = &ExtractorMockExtractExpectation{}
	}

	if mmExtract.defaultExpectation.params != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Expect")
	}

	if mmExtract.defaultExpectation.paramPtrs == nil {
		mmExtract.defaultExpectation.paramPtrs = &ExtractorMockExtractParamPtrs{}
	}
	mmExtract.defaultExpectation.paramPtrs.fileURL = &fileURL
	mmExtract.defaultExpectation.expectationOrigins.originFileURL = minimock.CallerInfo(1)

	return mmExtract
}

// Inspect accepts an inspector function that has same arguments as the Extractor.Extract
func (mmExtract *mExtractorMockExtract) Inspect(f func(ctx context.Context, fileURL string)) *mExtractorMockExtract {
	if mmExtract.mock.inspectFuncExtract != nil {
		mmExtract.mock.t.Fatalf("Inspect function is already set for ExtractorMock.Extract")
	}

	mmExtract.mock.inspectFuncExtract = f

	return mmExtract
}

// Return sets up results that will be returned by Extractor.Extract
func (mmExtract *mExtractorMockExtract) Return(s1 string, err error) *ExtractorMock {
	if mmExtract.mock.funcExtract != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Set")
	}

	if mmExtract.defaultExpectation == nil {
		mmExtract.defaultExpectation = &ExtractorMockExtractExpectation{mock: mmExtract.mock}
	}
	mmExtract.defaultExpectation.results = &ExtractorMockExtractResults{s1, err}
	mmExtract.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmExtract.mock
}

// Set uses given function f to mock the Extractor.Extract method
func (mmExtract *mExtractorMockExtract) Set(f func(ctx context.Context, fileURL string) (s1 string, err error)) *ExtractorMock {
	if mmExtract.defaultExpectation != nil {
		mmExtract.mock.t.Fatalf("Default expectation is already set for the Extractor.Extract method")
	}

	if len(mmExtract.expectations) > 0 {
		mmExtract.mock.t.Fatalf("Some expectations are already set for the Extractor.Extract method")
	}

	mmExtract.mock.funcExtract = f
	mmExtract.mock.funcExtractOrigin = minimock.CallerInfo(1)
	return mmExtract.mock
}

// When sets expectation for the Extractor.Extract which will trigger the result defined by the following
// Then helper
func (mmExtract *mExtractorMockExtract) When(ctx context.Context, fileURL string) *ExtractorMockExtractExpectation {
	if mmExtract.mock.funcExtract != nil {
		mmExtract.mock.t.Fatalf("ExtractorMock.Extract mock is already set by Set")
	}

	expectation := &ExtractorMockExtractExpectation{
		mock:               mmExtract.mock,
		params:             &ExtractorMockExtractParams{ctx, fileURL},
		expectationOrigins: ExtractorMockExtractExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmExtract.expectations = append(mmExtract.expectations, expectation)
	return expectation
}

// Then sets up Extractor.Extract return parameters for the expectation previously defined by the When method
func (e *ExtractorMockExtractExpectation) Then(s1 string, err error) *ExtractorMock {
	e.results = &ExtractorMockExtractResults{s1, err}
	return e.mock
}

// Times sets number of times Extractor.Extract should be invoked
func (mmExtract *mExtractorMockExtract) Times(n uint64) *mExtractorMockExtract {
	if n == 0 {
		mmExtract.mock.t.Fatalf("Times of ExtractorMock.Extract mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmExtract.expectedInvocations, n)
	mmExtract.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmExtract
}

func (mmExtract *mExtractorMockExtract) invocationsDone() bool {
	if len(mmExtract.expectations) == 0 && mmExtract.defaultExpectation == nil && mmExtract.mock.funcExtract == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmExtract.mock.afterExtractCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmExtract.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Extract implements mm_processing.Extractor
func (mmExtract *ExtractorMock) Extract(ctx context.Context, fileURL string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmExtract.beforeExtractCounter, 1)
	defer mm_atomic.AddUint64(&mmExtract.afterExtractCounter, 1)

	mmExtract.t.Helper()

	if mmExtract.inspectFuncExtract != nil {
		mmExtract.inspectFuncExtract(ctx, fileURL)
	}

	mm_params := ExtractorMockExtractParams{ctx, fileURL}

	// Record call args
	mmExtract.ExtractMock.mutex.Lock()
	mmExtract.ExtractMock.callArgs = append(mmExtract.ExtractMock.callArgs, &mm_params)
	mmExtract.ExtractMock.mutex.Unlock()

	for _, e := range mmExtract.ExtractMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmExtract.ExtractMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmExtract.ExtractMock.defaultExpectation.Counter, 1)
		mm_want := mmExtract.ExtractMock.defaultExpectation.params
		mm_want_ptrs := mmExtract.ExtractMock.defaultExpectation.paramPtrs

		mm_got := ExtractorMockExtractParams{ctx, fileURL}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmExtract.t.Errorf("ExtractorMock.Extract got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmExtract.ExtractMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.fileURL != nil && !minimock.Equal(*mm_want_ptrs.fileURL, mm_got.fileURL) {
				mmExtract.t.Errorf("ExtractorMock.Extract got unexpected parameter fileURL, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmExtract.ExtractMock.defaultExpectation.expectationOrigins.originFileURL, *mm_want_ptrs.fileURL, mm_got.fileURL, minimock.Diff(*mm_want_ptrs.fileURL, mm_got.fileURL))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmExtract.t.Errorf("ExtractorMock.Extract got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmExtract.ExtractMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmExtract.ExtractMock.defaultExpectation.results
		if mm_results == nil {
			mmExtract.t.Fatal("No results are set for the ExtractorMock.Extract")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmExtract.funcExtract != nil {
		return mmExtract.funcExtract(ctx, fileURL)
	}
	mmExtract.t.Fatalf("Unexpected call to ExtractorMock.Extract. %v %v", ctx, fileURL)
	return
}

// ExtractAfterCounter returns a count of finished ExtractorMock.Extract invocations
func (mmExtract *ExtractorMock) ExtractAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmExtract.afterExtractCounter)
}

// ExtractBeforeCounter returns a count of ExtractorMock.Extract invocations
func (mmExtract *ExtractorMock) ExtractBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmExtract.beforeExtractCounter)
}

// Calls returns a list of arguments used in each call to ExtractorMock.Extract.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmExtract *mExtractorMockExtract) Calls() []*ExtractorMockExtractParams {
	mmExtract.mutex.RLock()

	argCopy := make([]*ExtractorMockExtractParams, len(mmExtract.callArgs))
	copy(argCopy, mmExtract.callArgs)

	mmExtract.mutex.RUnlock()

	return argCopy
}

// MinimockExtractDone returns true if the count of the Extract invocations corresponds
// the number of defined expectations
func (m *ExtractorMock) MinimockExtractDone() bool {
	if m.ExtractMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ExtractMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ExtractMock.invocationsDone()
}

// MinimockExtractInspect logs each unmet expectation
func (m *ExtractorMock) MinimockExtractInspect() {
	for _, e := range m.ExtractMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ExtractorMock.Extract at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterExtractCounter := mm_atomic.LoadUint64(&m.afterExtractCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ExtractMock.defaultExpectation != nil && afterExtractCounter < 1 {
		if m.ExtractMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ExtractorMock.Extract at\n%s", m.ExtractMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ExtractorMock.Extract at\n%s with params: %#v", m.ExtractMock.defaultExpectation.expectationOrigins.origin, *m.ExtractMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcExtract != nil && afterExtractCounter < 1 {
		m.t.Errorf("Expected call to ExtractorMock.Extract at\n%s", m.funcExtractOrigin)
	}

	if !m.ExtractMock.invocationsDone() && afterExtractCounter > 0 {
		m.t.Errorf("Expected %d calls to ExtractorMock.Extract at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ExtractMock.expectedInvocations), m.ExtractMock.expectedInvocationsOrigin, afterExtractCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ExtractorMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockExtractInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ExtractorMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ExtractorMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockExtractDone()
}
