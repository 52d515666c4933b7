// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.Processor -o processor_mock.go -n ProcessorMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/lexnotes/journal/internal/app/article"
)

// ProcessorMock implements mm_usecase.Processor
type ProcessorMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcDispatch          func(ctx context.Context, res article.TransitionResult)
	funcDispatchOrigin    string
	inspectFuncDispatch   func(ctx context.Context, res article.TransitionResult)
	afterDispatchCounter  uint64
	beforeDispatchCounter uint64
	DispatchMock          mProcessorMockDispatch
}

// NewProcessorMock returns a mock for mm_usecase.Processor
func NewProcessorMock(t minimock.Tester) *ProcessorMock {
	m := &ProcessorMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.DispatchMock = mProcessorMockDispatch{mock: m}
	m.DispatchMock.callArgs = []*ProcessorMockDispatchParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mProcessorMockDispatch struct {
	optional           bool
	mock               *ProcessorMock
	defaultExpectation *ProcessorMockDispatchExpectation
	expectations       []*ProcessorMockDispatchExpectation

	callArgs []*ProcessorMockDispatchParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ProcessorMockDispatchExpectation specifies expectation struct of the Processor.Dispatch
type ProcessorMockDispatchExpectation struct {
	mock               *ProcessorMock
	params             *ProcessorMockDispatchParams
	paramPtrs          *ProcessorMockDispatchParamPtrs
	expectationOrigins ProcessorMockDispatchExpectationOrigins

	returnOrigin string
	Counter      uint64
}

// ProcessorMockDispatchParams contains parameters of the Processor.Dispatch
type ProcessorMockDispatchParams struct {
	ctx context.Context
	res article.TransitionResult
}

// ProcessorMockDispatchParamPtrs contains pointers to parameters of the Processor.Dispatch
type ProcessorMockDispatchParamPtrs struct {
	ctx *context.Context
	res *article.TransitionResult
}

// ProcessorMockDispatchOrigins contains origins of expectations of the Processor.Dispatch
type ProcessorMockDispatchExpectationOrigins struct {
	origin    string
	originCtx string
	originRes string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDispatch *mProcessorMockDispatch) Optional() *mProcessorMockDispatch {
	mmDispatch.optional = true
	return mmDispatch
}

// Expect sets up expected params for Processor.Dispatch
func (mmDispatch *mProcessorMockDispatch) Expect(ctx context.Context, res article.TransitionResult) *mProcessorMockDispatch {
	if mmDispatch.mock.funcDispatch != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Set")
	}

	if mmDispatch.defaultExpectation == nil {
		mmDispatch.defaultExpectation = &ProcessorMockDispatchExpectation{}
	}

	if mmDispatch.defaultExpectation.paramPtrs != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by ExpectParams functions")
	}

	mmDispatch.defaultExpectation.params = &ProcessorMockDispatchParams{ctx, res}
	mmDispatch.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDispatch.expectations {
		if minimock.Equal(e.params, mmDispatch.defaultExpectation.params) {
			mmDispatch.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDispatch.defaultExpectation.params)
		}
	}

	return mmDispatch
}

// ExpectCtxParam1 sets up expected param ctx for Processor.Dispatch
func (mmDispatch *mProcessorMockDispatch) ExpectCtxParam1(ctx context.Context) *mProcessorMockDispatch {
	if mmDispatch.mock.funcDispatch != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Set")
	}

	if mmDispatch.defaultExpectation == nil {
		mmDispatch.defaultExpectation = &ProcessorMockDispatchExpectation{}
	}

	if mmDispatch.defaultExpectation.params != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Expect")
	}

	if mmDispatch.defaultExpectation.paramPtrs == nil {
		mmDispatch.defaultExpectation.paramPtrs = &ProcessorMockDispatchParamPtrs{}
	}
	mmDispatch.defaultExpectation.paramPtrs.ctx = &ctx
	mmDispatch.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDispatch
}

// ExpectResParam2 sets up expected param res for Processor.Dispatch
func (mmDispatch *mProcessorMockDispatch) ExpectResParam2(res article.TransitionResult) *mProcessorMockDispatch {
	if mmDispatch.mock.funcDispatch != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Set")
	}

	if mmDispatch.defaultExpectation == nil {
		mmDispatch.defaultExpectation = &ProcessorMockDispatchExpectation{}
	}

	if mmDispatch.defaultExpectation.params != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Expect")
	}

	if mmDispatch.defaultExpectation.paramPtrs == nil {
		mmDispatch.defaultExpectation.paramPtrs = &ProcessorMockDispatchParamPtrs{}
	}
	mmDispatch.defaultExpectation.paramPtrs.res = &res
	mmDispatch.defaultExpectation.expectationOrigins.originRes = minimock.CallerInfo(1)

	return mmDispatch
}

// Inspect accepts an inspector function that has same arguments as the Processor.Dispatch
func (mmDispatch *mProcessorMockDispatch) Inspect(f func(ctx context.Context, res article.TransitionResult)) *mProcessorMockDispatch {
	if mmDispatch.mock.inspectFuncDispatch != nil {
		mmDispatch.mock.t.Fatalf("Inspect function is already set for ProcessorMock.Dispatch")
	}

	mmDispatch.mock.inspectFuncDispatch = f

	return mmDispatch
}

// Return sets up results that will be returned by Processor.Dispatch
func (mmDispatch *mProcessorMockDispatch) Return() *ProcessorMock {
	if mmDispatch.mock.funcDispatch != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Set")
	}

	if mmDispatch.defaultExpectation == nil {
		mmDispatch.defaultExpectation = &ProcessorMockDispatchExpectation{mock: mmDispatch.mock}
	}

	mmDispatch.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDispatch.mock
}

// Set uses given function f to mock the Processor.Dispatch method
func (mmDispatch *mProcessorMockDispatch) Set(f func(ctx context.Context, res article.TransitionResult)) *ProcessorMock {
	if mmDispatch.defaultExpectation != nil {
		mmDispatch.mock.t.Fatalf("Default expectation is already set for the Processor.Dispatch method")
	}

	if len(mmDispatch.expectations) > 0 {
		mmDispatch.mock.t.Fatalf("Some expectations are already set for the Processor.Dispatch method")
	}

	mmDispatch.mock.funcDispatch = f
	mmDispatch.mock.funcDispatchOrigin = minimock.CallerInfo(1)
	return mmDispatch.mock
}

// When sets expectation for the Processor.Dispatch which will trigger the result defined by the following
// Then helper
func (mmDispatch *mProcessorMockDispatch) When(ctx context.Context, res article.TransitionResult) *ProcessorMockDispatchExpectation {
	if mmDispatch.mock.funcDispatch != nil {
		mmDispatch.mock.t.Fatalf("ProcessorMock.Dispatch mock is already set by Set")
	}

	expectation := &ProcessorMockDispatchExpectation{
		mock:               mmDispatch.mock,
		params:             &ProcessorMockDispatchParams{ctx, res},
		expectationOrigins: ProcessorMockDispatchExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDispatch.expectations = append(mmDispatch.expectations, expectation)
	return expectation
}

// Then sets up Processor.Dispatch return parameters for the expectation previously defined by the When method

func (e *ProcessorMockDispatchExpectation) Then() *ProcessorMock {
	return e.mock
}

// Times sets number of times Processor.Dispatch should be invoked
func (mmDispatch *mProcessorMockDispatch) Times(n uint64) *mProcessorMockDispatch {
	if n == 0 {
		mmDispatch.mock.t.Fatalf("Times of ProcessorMock.Dispatch mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDispatch.expectedInvocations, n)
	mmDispatch.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDispatch
}

func (mmDispatch *mProcessorMockDispatch) invocationsDone() bool {
	if len(mmDispatch.expectations) == 0 && mmDispatch.defaultExpectation == nil && mmDispatch.mock.funcDispatch == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDispatch.mock.afterDispatchCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDispatch.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Dispatch implements mm_usecase.Processor
func (mmDispatch *ProcessorMock) Dispatch(ctx context.Context, res article.TransitionResult) {
	mm_atomic.AddUint64(&mmDispatch.beforeDispatchCounter, 1)
	defer mm_atomic.AddUint64(&mmDispatch.afterDispatchCounter, 1)

	mmDispatch.t.Helper()

	if mmDispatch.inspectFuncDispatch != nil {
		mmDispatch.inspectFuncDispatch(ctx, res)
	}

	mm_params := ProcessorMockDispatchParams{ctx, res}

	// Record call args
	mmDispatch.DispatchMock.mutex.Lock()
	mmDispatch.DispatchMock.callArgs = append(mmDispatch.DispatchMock.callArgs, &mm_params)
	mmDispatch.DispatchMock.mutex.Unlock()

	for _, e := range mmDispatch.DispatchMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return
		}
	}

	if mmDispatch.DispatchMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDispatch.DispatchMock.defaultExpectation.Counter, 1)
		mm_want := mmDispatch.DispatchMock.defaultExpectation.params
		mm_want_ptrs := mmDispatch.DispatchMock.defaultExpectation.paramPtrs

		mm_got := ProcessorMockDispatchParams{ctx, res}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDispatch.t.Errorf("ProcessorMock.Dispatch got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDispatch.DispatchMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.res != nil && !minimock.Equal(*mm_want_ptrs.res, mm_got.res) {
				mmDispatch.t.Errorf("ProcessorMock.Dispatch got unexpected parameter res, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDispatch.DispatchMock.defaultExpectation.expectationOrigins.originRes, *mm_want_ptrs.res, mm_got.res, minimock.Diff(*mm_want_ptrs.res, mm_got.res))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDispatch.t.Errorf("ProcessorMock.Dispatch got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDispatch.DispatchMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		return

	}
	if mmDispatch.funcDispatch != nil {
		mmDispatch.funcDispatch(ctx, res)
		return
	}
	mmDispatch.t.Fatalf("Unexpected call to ProcessorMock.Dispatch. %v %v", ctx, res)

}

// DispatchAfterCounter returns a count of finished ProcessorMock.Dispatch invocations
func (mmDispatch *ProcessorMock) DispatchAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDispatch.afterDispatchCounter)
}

// DispatchBeforeCounter returns a count of ProcessorMock.Dispatch invocations
func (mmDispatch *ProcessorMock) DispatchBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDispatch.beforeDispatchCounter)
}

// Calls returns a list of arguments used in each call to ProcessorMock.Dispatch.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDispatch *mProcessorMockDispatch) Calls() []*ProcessorMockDispatchParams {
	mmDispatch.mutex.RLock()

	argCopy := make([]*ProcessorMockDispatchParams, len(mmDispatch.callArgs))
	copy(argCopy, mmDispatch.callArgs)

	mmDispatch.mutex.RUnlock()

	return argCopy
}

// MinimockDispatchDone returns true if the count of the Dispatch invocations corresponds
// the number of defined expectations
func (m *ProcessorMock) MinimockDispatchDone() bool {
	if m.DispatchMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DispatchMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DispatchMock.invocationsDone()
}

// MinimockDispatchInspect logs each unmet expectation
func (m *ProcessorMock) MinimockDispatchInspect() {
	for _, e := range m.DispatchMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ProcessorMock.Dispatch at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDispatchCounter := mm_atomic.LoadUint64(&m.afterDispatchCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DispatchMock.defaultExpectation != nil && afterDispatchCounter < 1 {
		if m.DispatchMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ProcessorMock.Dispatch at\n%s", m.DispatchMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ProcessorMock.Dispatch at\n%s with params: %#v", m.DispatchMock.defaultExpectation.expectationOrigins.origin, *m.DispatchMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDispatch != nil && afterDispatchCounter < 1 {
		m.t.Errorf("Expected call to ProcessorMock.Dispatch at\n%s", m.funcDispatchOrigin)
	}

	if !m.DispatchMock.invocationsDone() && afterDispatchCounter > 0 {
		m.t.Errorf("Expected %d calls to ProcessorMock.Dispatch at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DispatchMock.expectedInvocations), m.DispatchMock.expectedInvocationsOrigin, afterDispatchCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ProcessorMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockDispatchInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ProcessorMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ProcessorMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockDispatchDone()
}
