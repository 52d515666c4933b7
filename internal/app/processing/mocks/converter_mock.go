// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/processing.Converter -o converter_mock.go -n ConverterMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// ConverterMock implements mm_processing.Converter
type ConverterMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcConvert          func(ctx context.Context, fileURL string, targetFormat string) (s1 string, err error)
	funcConvertOrigin    string
	inspectFuncConvert   func(ctx context.Context, fileURL string, targetFormat string)
	afterConvertCounter  uint64
	beforeConvertCounter uint64
	ConvertMock          mConverterMockConvert
}

// NewConverterMock returns a mock for mm_processing.Converter
func NewConverterMock(t minimock.Tester) *ConverterMock {
	m := &ConverterMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ConvertMock = mConverterMockConvert{mock: m}
	m.ConvertMock.callArgs = []*ConverterMockConvertParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mConverterMockConvert struct {
	optional           bool
	mock               *ConverterMock
	defaultExpectation *ConverterMockConvertExpectation
	expectations       []*ConverterMockConvertExpectation

	callArgs []*ConverterMockConvertParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ConverterMockConvertExpectation specifies expectation struct of the Converter.Convert
type ConverterMockConvertExpectation struct {
	mock               *ConverterMock
	params             *ConverterMockConvertParams
	paramPtrs          *ConverterMockConvertParamPtrs
	expectationOrigins ConverterMockConvertExpectationOrigins
	results            *ConverterMockConvertResults
	returnOrigin       string
	Counter            uint64
}

// ConverterMockConvertParams contains parameters of the Converter.Convert
type ConverterMockConvertParams struct {
	ctx          context.Context
	fileURL      string
	targetFormat string
}

// ConverterMockConvertParamPtrs contains pointers to parameters of the Converter.Convert
type ConverterMockConvertParamPtrs struct {
	ctx          *context.Context
	fileURL      *string
	targetFormat *string
}

// ConverterMockConvertResults contains results of the Converter.Convert
type ConverterMockConvertResults struct {
	s1  string
	err error
}

// ConverterMockConvertOrigins contains origins of expectations of the Converter.Convert
type ConverterMockConvertExpectationOrigins struct {
	origin             string
	originCtx          string
	originFileURL      string
	originTargetFormat string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmConvert *mConverterMockConvert) Optional() *mConverterMockConvert {
	mmConvert.optional = true
	return mmConvert
}

// Expect sets up expected params for Converter.Convert
func (mmConvert *mConverterMockConvert) Expect(ctx context.Context, fileURL string, targetFormat string) *mConverterMockConvert {
	if mmConvert.mock.funcConvert != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Set")
	}

	if mmConvert.defaultExpectation == nil {
		mmConvert.defaultExpectation = &ConverterMockConvertExpectation{}
	}

	if mmConvert.defaultExpectation.paramPtrs != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by ExpectParams functions")
	}

	mmConvert.defaultExpectation.params = &ConverterMockConvertParams{ctx, fileURL, targetFormat}
	mmConvert.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmConvert.expectations {
		if minimock.Equal(e.params, mmConvert.defaultExpectation.params) {
			mmConvert.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmConvert.defaultExpectation.params)
		}
	}

	return mmConvert
}

// ExpectCtxParam1 sets up expected param ctx for Converter.Convert
func (mmConvert *mConverterMockConvert) ExpectCtxParam1(ctx context.Context) *mConverterMockConvert {
	if mmConvert.mock.funcConvert != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Set")
	}

	if mmConvert.defaultExpectation == nil {
		mmConvert.defaultExpectation = &ConverterMockConvertExpectation{}
	}

	if mmConvert.defaultExpectation.params != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Expect")
	}

	if mmConvert.defaultExpectation.paramPtrs == nil {
		mmConvert.defaultExpectation.paramPtrs = &ConverterMockConvertParamPtrs{}
	}
	mmConvert.defaultExpectation.paramPtrs.ctx = &ctx
	mmConvert.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmConvert
}

// ExpectFileURLParam2 sets up expected param fileURL for Converter.Convert
func (mmConvert *mConverterMockConvert) ExpectFileURLParam2(fileURL string) *mConverterMockConvert {
	if mmConvert.mock.funcConvert != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Set")
	}

	if mmConvert.defaultExpectation == nil {
		mmConvert.defaultExpectation = &ConverterMockConvertExpectation{}
	}

	if mmConvert.defaultExpectation.params != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Expect")
	}

	if mmConvert.defaultExpectation.paramPtrs == nil {
		mmConvert.defaultExpectation.paramPtrs = &ConverterMockConvertParamPtrs{}
	}
	mmConvert.defaultExpectation.paramPtrs.fileURL = &fileURL
	mmConvert.defaultExpectation.expectationOrigins.originFileURL = minimock.CallerInfo(1)

	return mmConvert
}

// ExpectTargetFormatParam3 sets up expected param targetFormat for Converter.Convert
func (mmConvert *mConverterMockConvert) ExpectTargetFormatParam3(targetFormat string) *mConverterMockConvert {
	if mmConvert.mock.funcConvert != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Set")
	}

	if mmConvert.defaultExpectation == nil {
		mmConvert.defaultExpectation = &ConverterMockConvertExpectation{}
	}

	if mmConvert.defaultExpectation.params != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Expect")
	}

	if mmConvert.defaultExpectation.paramPtrs == nil {
		mmConvert.defaultExpectation.paramPtrs = &ConverterMockConvertParamPtrs{}
	}
	mmConvert.defaultExpectation.paramPtrs.targetFormat = &targetFormat
	mmConvert.defaultExpectation.expectationOrigins.originTargetFormat = minimock.CallerInfo(1)

	return mmConvert
}

// Inspect accepts an inspector function that has same arguments as the Converter.Convert
func (mmConvert *mConverterMockConvert) Inspect(f func(ctx context.Context, fileURL string, targetFormat string)) *mConverterMockConvert {
	if mmConvert.mock.inspectFuncConvert != nil {
		mmConvert.mock.t.Fatalf("Inspect function is already set for ConverterMock.Convert")
	}

	mmConvert.mock.inspectFuncConvert = f

	return mmConvert
}

// Return sets up results that will be returned by Converter.Convert
func (mmConvert *mConverterMockConvert) Return(s1 string, err error) *ConverterMock {
	if mmConvert.mock.funcConvert != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Set")
	}

	if mmConvert.defaultExpectation == nil {
		mmConvert.defaultExpectation = &ConverterMockConvertExpectation{mock: mmConvert.mock}
	}
	mmConvert.defaultExpectation.results = &ConverterMockConvertResults{s1, err}
	mmConvert.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmConvert.mock
}

// Set uses given function f to mock the Converter.Convert method
func (mmConvert *mConverterMockConvert) Set(f func(ctx context.Context, fileURL string, targetFormat string) (s1 string, err error)) *ConverterMock {
	if mmConvert.defaultExpectation != nil {
		mmConvert.mock.t.Fatalf("Default expectation is already set for the Converter.Convert method")
	}

	if len(mmConvert.expectations) > 0 {
		mmConvert.mock.t.Fatalf("Some expectations are already set for the Converter.Convert method")
	}

	mmConvert.mock.funcConvert = f
	mmConvert.mock.funcConvertOrigin = minimock.CallerInfo(1)
	return mmConvert.mock
}

// When sets expectation for the Converter.Convert which will trigger the result defined by the following
// Then helper
func (mmConvert *mConverterMockConvert) When(ctx context.Context, fileURL string, targetFormat string) *ConverterMockConvertExpectation {
	if mmConvert.mock.funcConvert != nil {
		mmConvert.mock.t.Fatalf("ConverterMock.Convert mock is already set by Set")
	}

	expectation := &ConverterMockConvertExpectation{
		mock:               mmConvert.mock,
		params:             &ConverterMockConvertParams{ctx, fileURL, targetFormat},
		expectationOrigins: ConverterMockConvertExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmConvert.expectations = append(mmConvert.expectations, expectation)
	return expectation
}

// Then sets up Converter.Convert return parameters for the expectation previously defined by the When method
func (e *ConverterMockConvertExpectation) Then(s1 string, err error) *ConverterMock {
	e.results = &ConverterMockConvertResults{s1, err}
	return e.mock
}

// Times sets number of times Converter.Convert should be invoked
func (mmConvert *mConverterMockConvert) Times(n uint64) *mConverterMockConvert {
	if n == 0 {
		mmConvert.mock.t.Fatalf("Times of ConverterMock.Convert mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmConvert.expectedInvocations, n)
	mmConvert.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmConvert
}

func (mmConvert *mConverterMockConvert) invocationsDone() bool {
	if len(mmConvert.expectations) == 0 && mmConvert.defaultExpectation == nil && mmConvert.mock.funcConvert == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmConvert.mock.afterConvertCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmConvert.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Convert implements mm_processing.Converter
func (mmConvert *ConverterMock) Convert(ctx context.Context, fileURL string, targetFormat string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmConvert.beforeConvertCounter, 1)
	defer mm_atomic.AddUint64(&mmConvert.afterConvertCounter, 1)

	mmConvert.t.Helper()

	if mmConvert.inspectFuncConvert != nil {
		mmConvert.inspectFuncConvert(ctx, fileURL, targetFormat)
	}

	mm_params := ConverterMockConvertParams{ctx, fileURL, targetFormat}

	// Record call args
	mmConvert.ConvertMock.mutex.Lock()
	mmConvert.ConvertMock.callArgs = append(mmConvert.ConvertMock.callArgs, &mm_params)
	mmConvert.ConvertMock.mutex.Unlock()

	for _, e := range mmConvert.ConvertMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmConvert.ConvertMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmConvert.ConvertMock.defaultExpectation.Counter, 1)
		mm_want := mmConvert.ConvertMock.defaultExpectation.params
		mm_want_ptrs := mmConvert.ConvertMock.defaultExpectation.paramPtrs

		mm_got := ConverterMockConvertParams{ctx, fileURL, targetFormat}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmConvert.t.Errorf("ConverterMock.Convert got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmConvert.ConvertMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.fileURL != nil && !minimock.Equal(*mm_want_ptrs.fileURL, mm_got.fileURL) {
				mmConvert.t.Errorf("ConverterMock.Convert got unexpected parameter fileURL, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmConvert.ConvertMock.defaultExpectation.expectationOrigins.originFileURL, *mm_want_ptrs.fileURL, mm_got.fileURL, minimock.Diff(*mm_want_ptrs.fileURL, mm_got.fileURL))
			}

			if mm_want_ptrs.targetFormat != nil && !minimock.Equal(*mm_want_ptrs.targetFormat, mm_got.targetFormat) {
				mmConvert.t.Errorf("ConverterMock.Convert got unexpected parameter targetFormat, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmConvert.ConvertMock.defaultExpectation.expectationOrigins.originTargetFormat, *mm_want_ptrs.targetFormat, mm_got.targetFormat, minimock.Diff(*mm_want_ptrs.targetFormat, mm_got.targetFormat))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmConvert.t.Errorf("ConverterMock.Convert got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmConvert.ConvertMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmConvert.ConvertMock.defaultExpectation.results
		if mm_results == nil {
			mmConvert.t.Fatal("No results are set for the ConverterMock.Convert")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmConvert.funcConvert != nil {
		return mmConvert.funcConvert(ctx, fileURL, targetFormat)
	}
	mmConvert.t.Fatalf("Unexpected call to ConverterMock.Convert. %v %v %v", ctx, fileURL, targetFormat)
	return
}

// ConvertAfterCounter returns a count of finished ConverterMock.Convert invocations
func (mmConvert *ConverterMock) ConvertAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmConvert.afterConvertCounter)
}

// ConvertBeforeCounter returns a count of ConverterMock.Convert invocations
func (mmConvert *ConverterMock) ConvertBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmConvert.beforeConvertCounter)
}

// Calls returns a list of arguments used in each call to ConverterMock.Convert.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmConvert *mConverterMockConvert) Calls() []*ConverterMockConvertParams {
	mmConvert.mutex.RLock()

	argCopy := make([]*ConverterMockConvertParams, len(mmConvert.callArgs))
	copy(argCopy, mmConvert.callArgs)

	mmConvert.mutex.RUnlock()

	return argCopy
}

// MinimockConvertDone returns true if the count of the Convert invocations corresponds
// the number of defined expectations
func (m *ConverterMock) MinimockConvertDone() bool {
	if m.ConvertMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ConvertMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ConvertMock.invocationsDone()
}

// MinimockConvertInspect logs each unmet expectation
func (m *ConverterMock) MinimockConvertInspect() {
	for _, e := range m.ConvertMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ConverterMock.Convert at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterConvertCounter := mm_atomic.LoadUint64(&m.afterConvertCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ConvertMock.defaultExpectation != nil && afterConvertCounter < 1 {
		if m.ConvertMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ConverterMock.Convert at\n%s", m.ConvertMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ConverterMock.Convert at\n%s with params: %#v", m.ConvertMock.defaultExpectation.expectationOrigins.origin, *m.ConvertMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcConvert != nil && afterConvertCounter < 1 {
		m.t.Errorf("Expected call to ConverterMock.Convert at\n%s", m.funcConvertOrigin)
	}

	if !m.ConvertMock.invocationsDone() && afterConvertCounter > 0 {
		m.t.Errorf("Expected %d calls to ConverterMock.Convert at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ConvertMock.expectedInvocations), m.ConvertMock.expectedInvocationsOrigin, afterConvertCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ConverterMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockConvertInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ConverterMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ConverterMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockConvertDone()
}
