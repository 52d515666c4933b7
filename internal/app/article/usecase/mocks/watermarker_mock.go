// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.Watermarker -o watermarker_mock.go -n WatermarkerMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// WatermarkerMock implements mm_usecase.Watermarker
type WatermarkerMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcWatermark          func(ctx context.Context, fileURL string, metadata map[string]string, role string) (ba1 []byte, err error)
	funcWatermarkOrigin    string
	inspectFuncWatermark   func(ctx context.Context, fileURL string, metadata map[string]string, role string)
	afterWatermarkCounter  uint64
	beforeWatermarkCounter uint64
	WatermarkMock          mWatermarkerMockWatermark
}

// NewWatermarkerMock returns a mock for mm_usecase.Watermarker
func NewWatermarkerMock(t minimock.Tester) *WatermarkerMock {
	m := &WatermarkerMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.WatermarkMock = mWatermarkerMockWatermark{mock: m}
	m.WatermarkMock.callArgs = []*WatermarkerMockWatermarkParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mWatermarkerMockWatermark struct {
	optional           bool
	mock               *WatermarkerMock
	defaultExpectation *WatermarkerMockWatermarkExpectation
	expectations       []*WatermarkerMockWatermarkExpectation

	callArgs []*WatermarkerMockWatermarkParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// WatermarkerMockWatermarkExpectation specifies expectation struct of the Watermarker.Watermark
type WatermarkerMockWatermarkExpectation struct {
	mock               *WatermarkerMock
	params             *WatermarkerMockWatermarkParams
	paramPtrs          *WatermarkerMockWatermarkParamPtrs
	expectationOrigins WatermarkerMockWatermarkExpectationOrigins
	results            *WatermarkerMockWatermarkResults
	returnOrigin       string
	Counter            uint64
}

// WatermarkerMockWatermarkParams contains parameters of the Watermarker.Watermark
type WatermarkerMockWatermarkParams struct {
	ctx      context.Context
	fileURL  string
	metadata map[string]string
	role     string
}

// WatermarkerMockWatermarkParamPtrs contains pointers to parameters of the Watermarker.Watermark
type WatermarkerMockWatermarkParamPtrs struct {
	ctx      *context.Context
	fileURL  *string
	metadata *map[string]string
	role     *string
}

// WatermarkerMockWatermarkResults contains results of the Watermarker.Watermark
type WatermarkerMockWatermarkResults struct {
	ba1 []byte
	err error
}

// WatermarkerMockWatermarkOrigins contains origins of expectations of the Watermarker.Watermark
type WatermarkerMockWatermarkExpectationOrigins struct {
	origin         string
	originCtx      string
	originFileURL  string
	originMetadata string
	originRole     string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmWatermark *mWatermarkerMockWatermark) Optional() *mWatermarkerMockWatermark {
	mmWatermark.optional = true
	return mmWatermark
}

// Expect sets up expected params for Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) Expect(ctx context.Context, fileURL string, metadata map[string]string, role string) *mWatermarkerMockWatermark {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	if mmWatermark.defaultExpectation == nil {
		mmWatermark.defaultExpectation = &WatermarkerMockWatermarkExpectation{}
	}

	if mmWatermark.defaultExpectation.paramPtrs != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by ExpectParams functions")
	}

	mmWatermark.defaultExpectation.params = &WatermarkerMockWatermarkParams{ctx, fileURL, metadata, role}
	mmWatermark.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmWatermark.expectations {
		if minimock.Equal(e.params, mmWatermark.defaultExpectation.params) {
			mmWatermark.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmWatermark.defaultExpectation.params)
		}
	}

	return mmWatermark
}

// ExpectCtxParam1 sets up expected param ctx for Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) ExpectCtxParam1(ctx context.Context) *mWatermarkerMockWatermark {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	if mmWatermark.defaultExpectation == nil {
		mmWatermark.defaultExpectation = &WatermarkerMockWatermarkExpectation{}
	}

	if mmWatermark.defaultExpectation.params != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Expect")
	}

	if mmWatermark.defaultExpectation.paramPtrs == nil {
		mmWatermark.defaultExpectation.paramPtrs = &WatermarkerMockWatermarkParamPtrs{}
	}
	mmWatermark.defaultExpectation.paramPtrs.ctx = &ctx
	mmWatermark.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmWatermark
}

// ExpectFileURLParam2 sets up expected param fileURL for Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) ExpectFileURLParam2(fileURL string) *mWatermarkerMockWatermark {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	if mmWatermark.defaultExpectation == nil {
		mmWatermark.defaultExpectation = &WatermarkerMockWatermarkExpectation{}
	}

	if mmWatermark.defaultExpectation.params != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Expect")
	}

	if mmWatermark.defaultExpectation.paramPtrs == nil {
		mmWatermark.defaultExpectation.paramPtrs = &WatermarkerMockWatermarkParamPtrs{}
	}
	mmWatermark.defaultExpectation.paramPtrs.fileURL = &fileURL
	mmWatermark.defaultExpectation.expectationOrigins.originFileURL = minimock.CallerInfo(1)

	return mmWatermark
}

// ExpectMetadataParam3 sets up expected param metadata for Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) ExpectMetadataParam3(metadata map[string]string) *mWatermarkerMockWatermark {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	if mmWatermark.defaultExpectation == nil {
		mmWatermark.defaultExpectation = &WatermarkerMockWatermarkExpectation{}
	}

	if mmWatermark.defaultExpectation.params != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Expect")
	}

	if mmWatermark.defaultExpectation.paramPtrs == nil {
		mmWatermark.defaultExpectation.paramPtrs = &WatermarkerMockWatermarkParamPtrs{}
	}
	mmWatermark.defaultExpectation.paramPtrs.metadata = &metadata
	mmWatermark.defaultExpectation.expectationOrigins.originMetadata = minimock.CallerInfo(1)

	return mmWatermark
}

// ExpectRoleParam4 sets up expected param role for Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) ExpectRoleParam4(role string) *mWatermarkerMockWatermark {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	if mmWatermark.defaultExpectation == nil {
		mmWatermark.defaultExpectation = &WatermarkerMockWatermarkExpectation{}
	}

	if mmWatermark.defaultExpectation.params != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Expect")
	}

	if mmWatermark.defaultExpectation.paramPtrs == nil {
		mmWatermark.defaultExpectation.paramPtrs = &WatermarkerMockWatermarkParamPtrs{}
	}
	mmWatermark.defaultExpectation.paramPtrs.role = &role
	mmWatermark.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmWatermark
}

// Inspect accepts an inspector function that has same arguments as the Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) Inspect(f func(ctx context.Context, fileURL string, metadata map[string]string, role string)) *mWatermarkerMockWatermark {
	if mmWatermark.mock.inspectFuncWatermark != nil {
		mmWatermark.mock.t.Fatalf("Inspect function is already set for WatermarkerMock.Watermark")
	}

	mmWatermark.mock.inspectFuncWatermark = f

	return mmWatermark
}

// Return sets up results that will be returned by Watermarker.Watermark
func (mmWatermark *mWatermarkerMockWatermark) Return(ba1 []byte, err error) *WatermarkerMock {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	if mmWatermark.defaultExpectation == nil {
		mmWatermark.defaultExpectation = &WatermarkerMockWatermarkExpectation{mock: mmWatermark.mock}
	}
	mmWatermark.defaultExpectation.results = &WatermarkerMockWatermarkResults{ba1, err}
	mmWatermark.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmWatermark.mock
}

// Set uses given function f to mock the Watermarker.Watermark method
func (mmWatermark *mWatermarkerMockWatermark) Set(f func(ctx context.Context, fileURL string, metadata map[string]string, role string) (ba1 []byte, err error)) *WatermarkerMock {
	if mmWatermark.defaultExpectation != nil {
		mmWatermark.mock.t.Fatalf("Default expectation is already set for the Watermarker.Watermark method")
	}

	if len(mmWatermark.expectations) > 0 {
		mmWatermark.mock.t.Fatalf("Some expectations are already set for the Watermarker.Watermark method")
	}

	mmWatermark.mock.funcWatermark = f
	mmWatermark.mock.funcWatermarkOrigin = minimock.CallerInfo(1)
	return mmWatermark.mock
}

// When sets expectation for the Watermarker.Watermark which will trigger the result defined by the following
// Then helper
func (mmWatermark *mWatermarkerMockWatermark) When(ctx context.Context, fileURL string, metadata map[string]string, role string) *WatermarkerMockWatermarkExpectation {
	if mmWatermark.mock.funcWatermark != nil {
		mmWatermark.mock.t.Fatalf("WatermarkerMock.Watermark mock is already set by Set")
	}

	expectation := &WatermarkerMockWatermarkExpectation{
		mock:               mmWatermark.mock,
		params:             &WatermarkerMockWatermarkParams{ctx, fileURL, metadata, role},
		expectationOrigins: WatermarkerMockWatermarkExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmWatermark.expectations = append(mmWatermark.expectations, expectation)
	return expectation
}

// Then sets up Watermarker.Watermark return parameters for the expectation previously defined by the When method
func (e *WatermarkerMockWatermarkExpectation) Then(ba1 []byte, err error) *WatermarkerMock {
	e.results = &WatermarkerMockWatermarkResults{ba1, err}
	return e.mock
}

// Times sets number of times Watermarker.Watermark should be invoked
func (mmWatermark *mWatermarkerMockWatermark) Times(n uint64) *mWatermarkerMockWatermark {
	if n == 0 {
		mmWatermark.mock.t.Fatalf("Times of WatermarkerMock.Watermark mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmWatermark.expectedInvocations, n)
	mmWatermark.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmWatermark
}

func (mmWatermark *mWatermarkerMockWatermark) invocationsDone() bool {
	if len(mmWatermark.expectations) == 0 && mmWatermark.defaultExpectation == nil && mmWatermark.mock.funcWatermark == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmWatermark.mock.afterWatermarkCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmWatermark.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Watermark implements mm_usecase.Watermarker
func (mmWatermark *WatermarkerMock) Watermark(ctx context.Context, fileURL string, metadata map[string]string, role string) (ba1 []byte, err error) {
	mm_atomic.AddUint64(&mmWatermark.beforeWatermarkCounter, 1)
	defer mm_atomic.AddUint64(&mmWatermark.afterWatermarkCounter, 1)

	mmWatermark.t.Helper()

	if mmWatermark.inspectFuncWatermark != nil {
		mmWatermark.inspectFuncWatermark(ctx, fileURL, metadata, role)
	}

	mm_params := WatermarkerMockWatermarkParams{ctx, fileURL, metadata, role}

	// Record call args
	mmWatermark.WatermarkMock.mutex.Lock()
	mmWatermark.WatermarkMock.callArgs = append(mmWatermark.WatermarkMock.callArgs, &mm_params)
	mmWatermark.WatermarkMock.mutex.Unlock()

	for _, e := range mmWatermark.WatermarkMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ba1, e.results.err
		}
	}

	if mmWatermark.WatermarkMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmWatermark.WatermarkMock.defaultExpectation.Counter, 1)
		mm_want := mmWatermark.WatermarkMock.defaultExpectation.params
		mm_want_ptrs := mmWatermark.WatermarkMock.defaultExpectation.paramPtrs

		mm_got := WatermarkerMockWatermarkParams{ctx, fileURL, metadata, role}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmWatermark.t.Errorf("WatermarkerMock.Watermark got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmWatermark.WatermarkMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.fileURL != nil && !minimock.Equal(*mm_want_ptrs.fileURL, mm_got.fileURL) {
				mmWatermark.t.Errorf("WatermarkerMock.Watermark got unexpected parameter fileURL, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmWatermark.WatermarkMock.defaultExpectation.expectationOrigins.originFileURL, *mm_want_ptrs.fileURL, mm_got.fileURL, minimock.Diff(*mm_want_ptrs.fileURL, mm_got.fileURL))
			}

			if mm_want_ptrs.metadata != nil && !minimock.Equal(*mm_want_ptrs.metadata, mm_got.metadata) {
				mmWatermark.t.Errorf("WatermarkerMock.Watermark got unexpected parameter metadata, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmWatermark.WatermarkMock.defaultExpectation.expectationOrigins.originMetadata, *mm_want_ptrs.metadata, mm_got.metadata, minimock.Diff(*mm_want_ptrs.metadata, mm_got.metadata))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmWatermark.t.Errorf("WatermarkerMock.Watermark got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmWatermark.WatermarkMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmWatermark.t.Errorf("WatermarkerMock.Watermark got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmWatermark.WatermarkMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmWatermark.WatermarkMock.defaultExpectation.results
		if mm_results == nil {
			mmWatermark.t.Fatal("No results are set for the WatermarkerMock.Watermark")
		}
		return (*mm_results).ba1, (*mm_results).err
	}
	if mmWatermark.funcWatermark != nil {
		return mmWatermark.funcWatermark(ctx, fileURL, metadata, role)
	}
	mmWatermark.t.Fatalf("Unexpected call to WatermarkerMock.Watermark. %v %v %v %v", ctx, fileURL, metadata, role)
	return
}

// WatermarkAfterCounter returns a count of finished WatermarkerMock.Watermark invocations
func (mmWatermark *WatermarkerMock) WatermarkAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmWatermark.afterWatermarkCounter)
}

// WatermarkBeforeCounter returns a count of WatermarkerMock.Watermark invocations
func (mmWatermark *WatermarkerMock) WatermarkBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmWatermark.beforeWatermarkCounter)
}

// Calls returns a list of arguments used in each call to WatermarkerMock.Watermark.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmWatermark *mWatermarkerMockWatermark) Calls() []*WatermarkerMockWatermarkParams {
	mmWatermark.mutex.RLock()

	argCopy := make([]*WatermarkerMockWatermarkParams, len(mmWatermark.callArgs))
	copy(argCopy, mmWatermark.callArgs)

	mmWatermark.mutex.RUnlock()

	return argCopy
}

// MinimockWatermarkDone returns true if the count of the Watermark invocations corresponds
// the number of defined expectations
func (m *WatermarkerMock) MinimockWatermarkDone() bool {
	if m.WatermarkMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.WatermarkMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.WatermarkMock.invocationsDone()
}

// MinimockWatermarkInspect logs each unmet expectation
func (m *WatermarkerMock) MinimockWatermarkInspect() {
	for _, e := range m.WatermarkMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to WatermarkerMock.Watermark at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterWatermarkCounter := mm_atomic.LoadUint64(&m.afterWatermarkCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.WatermarkMock.defaultExpectation != nil && afterWatermarkCounter < 1 {
		if m.WatermarkMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to WatermarkerMock.Watermark at\n%s", m.WatermarkMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to WatermarkerMock.Watermark at\n%s with params: %#v", m.WatermarkMock.defaultExpectation.expectationOrigins.origin, *m.WatermarkMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcWatermark != nil && afterWatermarkCounter < 1 {
		m.t.Errorf("Expected call to WatermarkerMock.Watermark at\n%s", m.funcWatermarkOrigin)
	}

	if !m.WatermarkMock.invocationsDone() && afterWatermarkCounter > 0 {
		m.t.Errorf("Expected %d calls to WatermarkerMock.Watermark at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.WatermarkMock.expectedInvocations), m.WatermarkMock.expectedInvocationsOrigin, afterWatermarkCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *WatermarkerMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockWatermarkInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *WatermarkerMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *WatermarkerMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockWatermarkDone()
}
