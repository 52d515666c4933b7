// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/infrastructure/storage.Store -o store_mock.go -n StoreMock -p mocks

import (
	"context"
	"io"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// StoreMock implements mm_storage.Store
type StoreMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcGet          func(ctx context.Context, key string) (r1 io.ReadCloser, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, key string)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mStoreMockGet

	funcPut          func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (s1 string, err error)
	funcPutOrigin    string
	inspectFuncPut   func(ctx context.Context, key string, r io.Reader, size int64, contentType string)
	afterPutCounter  uint64
	beforePutCounter uint64
	PutMock          mStoreMockPut
}

// NewStoreMock returns a mock for mm_storage.Store
func NewStoreMock(t minimock.Tester) *StoreMock {
	m := &StoreMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GetMock = mStoreMockGet{mock: m}
	m.GetMock.callArgs = []*StoreMockGetParams{}

	m.PutMock = mStoreMockPut{mock: m}
	m.PutMock.callArgs = []*StoreMockPutParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mStoreMockGet struct {
	optional           bool
	mock               *StoreMock
	defaultExpectation *StoreMockGetExpectation
	expectations       []*StoreMockGetExpectation

	callArgs []*StoreMockGetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// StoreMockGetExpectation specifies expectation struct of the Store.Get
type StoreMockGetExpectation struct {
	mock               *StoreMock
	params             *StoreMockGetParams
	paramPtrs          *StoreMockGetParamPtrs
	expectationOrigins StoreMockGetExpectationOrigins
	results            *StoreMockGetResults
	returnOrigin       string
	Counter            uint64
}

// StoreMockGetParams contains parameters of the Store.Get
type StoreMockGetParams struct {
	ctx context.Context
	key string
}

// StoreMockGetParamPtrs contains pointers to parameters of the Store.Get
type StoreMockGetParamPtrs struct {
	ctx *context.Context
	key *string
}

// StoreMockGetResults contains results of the Store.Get
type StoreMockGetResults struct {
	r1  io.ReadCloser
	err error
}

// StoreMockGetOrigins contains origins of expectations of the Store.Get
type StoreMockGetExpectationOrigins struct {
	origin    string
	originCtx string
	originKey string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGet *mStoreMockGet) Optional() *mStoreMockGet {
	mmGet.optional = true
	return mmGet
}

// Expect sets up expected params for Store.Get
func (mmGet *mStoreMockGet) Expect(ctx context.Context, key string) *mStoreMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &StoreMockGetExpectation{}
	}

	if mmGet.defaultExpectation.paramPtrs != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by ExpectParams functions")
	}

	mmGet.defaultExpectation.params = &StoreMockGetParams{ctx, key}
	mmGet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGet.expectations {
		if minimock.Equal(e.params, mmGet.defaultExpectation.params) {
			mmGet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGet.defaultExpectation.params)
		}
	}

	return mmGet
}

// ExpectCtxParam1 sets up expected param ctx for Store.Get
func (mmGet *mStoreMockGet) ExpectCtxParam1(ctx context.Context) *mStoreMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &StoreMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &StoreMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.ctx = &ctx
	mmGet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGet
}

// ExpectKeyParam2 sets up expected param key for Store.Get
func (mmGet *mStoreMockGet) ExpectKeyParam2(key string) *mStoreMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &StoreMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &StoreMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.key = &key
	mmGet.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmGet
}

// Inspect accepts an inspector function that has same arguments as the Store.Get
func (mmGet *mStoreMockGet) Inspect(f func(ctx context.Context, key string)) *mStoreMockGet {
	if mmGet.mock.inspectFuncGet != nil {
		mmGet.mock.t.Fatalf("Inspect function is already set for StoreMock.Get")
	}

	mmGet.mock.inspectFuncGet = f

	return mmGet
}

// Return sets up results that will be returned by Store.Get
func (mmGet *mStoreMockGet) Return(r1 io.ReadCloser, err error) *StoreMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &StoreMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &StoreMockGetResults{r1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Store.Get method
func (mmGet *mStoreMockGet) Set(f func(ctx context.Context, key string) (r1 io.ReadCloser, err error)) *StoreMock {
	if mmGet.defaultExpectation != nil {
		mmGet.mock.t.Fatalf("Default expectation is already set for the Store.Get method")
	}

	if len(mmGet.expectations) > 0 {
		mmGet.mock.t.Fatalf("Some expectations are already set for the Store.Get method")
	}

	mmGet.mock.funcGet = f
	mmGet.mock.funcGetOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// When sets expectation for the Store.Get which will trigger the result defined by the following
// Then helper
func (mmGet *mStoreMockGet) When(ctx context.Context, key string) *StoreMockGetExpectation {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("StoreMock.Get mock is already set by Set")
	}

	expectation := &StoreMockGetExpectation{
		mock:               mmGet.mock,
		params:             &StoreMockGetParams{ctx, key},
		expectationOrigins: StoreMockGetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGet.expectations = append(mmGet.expectations, expectation)
	return expectation
}

// Then sets up Store.Get return parameters for the expectation previously defined by the When method
func (e *StoreMockGetExpectation) Then(r1 io.ReadCloser, err error) *StoreMock {
	e.results = &StoreMockGetResults{r1, err}
	return e.mock
}

// Times sets number of times Store.Get should be invoked
func (mmGet *mStoreMockGet) Times(n uint64) *mStoreMockGet {
	if n == 0 {
		mmGet.mock.t.Fatalf("Times of StoreMock.Get mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGet.expectedInvocations, n)
	mmGet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGet
}

func (mmGet *mStoreMockGet) invocationsDone() bool {
	if len(mmGet.expectations) == 0 && mmGet.defaultExpectation == nil && mmGet.mock.funcGet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGet.mock.afterGetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Get implements mm_storage.Store
func (mmGet *StoreMock) Get(ctx context.Context, key string) (r1 io.ReadCloser, err error) {
	mm_atomic.AddUint64(&mmGet.beforeGetCounter, 1)
	defer mm_atomic.AddUint64(&mmGet.afterGetCounter, 1)

	mmGet.t.Helper()

	if mmGet.inspectFuncGet != nil {
		mmGet.inspectFuncGet(ctx, key)
	}

	mm_params := StoreMockGetParams{ctx, key}

	// Record call args
	mmGet.GetMock.mutex.Lock()
	mmGet.GetMock.callArgs = append(mmGet.GetMock.callArgs, &mm_params)
	mmGet.GetMock.mutex.Unlock()

	for _, e := range mmGet.GetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.r1, e.results.err
		}
	}

	if mmGet.GetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGet.GetMock.defaultExpectation.Counter, 1)
		mm_want := mmGet.GetMock.defaultExpectation.params
		mm_want_ptrs := mmGet.GetMock.defaultExpectation.paramPtrs

		mm_got := StoreMockGetParams{ctx, key}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGet.t.Errorf("StoreMock.Get got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmGet.t.Errorf("StoreMock.Get got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGet.t.Errorf("StoreMock.Get got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGet.GetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGet.GetMock.defaultExpectation.results
		if mm_results == nil {
			mmGet.t.Fatal("No results are set for the StoreMock.Get")
		}
		return (*mm_results).r1, (*mm_results).err
	}
	if mmGet.funcGet != nil {
		return mmGet.funcGet(ctx, key)
	}
	mmGet.t.Fatalf("Unexpected call to StoreMock.Get. %v %v", ctx, key)
	return
}

// GetAfterCounter returns a count of finished StoreMock.Get invocations
func (mmGet *StoreMock) GetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.afterGetCounter)
}

// GetBeforeCounter returns a count of StoreMock.Get invocations
func (mmGet *StoreMock) GetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.beforeGetCounter)
}

// Calls returns a list of arguments used in each call to StoreMock.Get.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGet *mStoreMockGet) Calls() []*StoreMockGetParams {
	mmGet.mutex.RLock()

	argCopy := make([]*StoreMockGetParams, len(mmGet.callArgs))
	copy(argCopy, mmGet.callArgs)

	mmGet.mutex.RUnlock()

	return argCopy
}

// MinimockGetDone returns true if the count of the Get invocations corresponds
// the number of defined expectations
func (m *StoreMock) MinimockGetDone() bool {
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
func (m *StoreMock) MinimockGetInspect() {
	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to StoreMock.Get at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetCounter := mm_atomic.LoadUint64(&m.afterGetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetMock.defaultExpectation != nil && afterGetCounter < 1 {
		if m.GetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to StoreMock.Get at\n%s", m.GetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to StoreMock.Get at\n%s with params: %#v", m.GetMock.defaultExpectation.expectationOrigins.origin, *m.GetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGet != nil && afterGetCounter < 1 {
		m.t.Errorf("Expected call to StoreMock.Get at\n%s", m.funcGetOrigin)
	}

	if !m.GetMock.invocationsDone() && afterGetCounter > 0 {
		m.t.Errorf("Expected %d calls to StoreMock.Get at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetMock.expectedInvocations), m.GetMock.expectedInvocationsOrigin, afterGetCounter)
	}
}

type mStoreMockPut struct {
	optional           bool
	mock               *StoreMock
	defaultExpectation *StoreMockPutExpectation
	expectations       []*StoreMockPutExpectation

	callArgs []*StoreMockPutParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// StoreMockPutExpectation specifies expectation struct of the Store.Put
type StoreMockPutExpectation struct {
	mock               *StoreMock
	params             *StoreMockPutParams
	paramPtrs          *StoreMockPutParamPtrs
	expectationOrigins StoreMockPutExpectationOrigins
	results            *StoreMockPutResults
	returnOrigin       string
	Counter            uint64
}

// StoreMockPutParams contains parameters of the Store.Put
type StoreMockPutParams struct {
	ctx         context.Context
	key         string
	r           io.Reader
	size        int64
	contentType string
}

// StoreMockPutParamPtrs contains pointers to parameters of the Store.Put
type StoreMockPutParamPtrs struct {
	ctx         *context.Context
	key         *string
	r           *io.Reader
	size        *int64
	contentType *string
}

// StoreMockPutResults contains results of the Store.Put
type StoreMockPutResults struct {
	s1  string
	err error
}

// StoreMockPutOrigins contains origins of expectations of the Store.Put
type StoreMockPutExpectationOrigins struct {
	origin            string
	originCtx         string
	originKey         string
	originR           string
	originSize        string
	originContentType string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmPut *mStoreMockPut) Optional() *mStoreMockPut {
	mmPut.optional = true
	return mmPut
}

// Expect sets up expected params for Store.Put
func (mmPut *mStoreMockPut) Expect(ctx context.Context, key string, r io.Reader, size int64, contentType string) *mStoreMockPut {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{}
	}

	if mmPut.defaultExpectation.paramPtrs != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by ExpectParams functions")
	}

	mmPut.defaultExpectation.params = &StoreMockPutParams{ctx, key, r, size, contentType}
	mmPut.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmPut.expectations {
		if minimock.Equal(e.params, mmPut.defaultExpectation.params) {
			mmPut.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmPut.defaultExpectation.params)
		}
	}

	return mmPut
}

// ExpectCtxParam1 sets up expected param ctx for Store.Put
func (mmPut *mStoreMockPut) ExpectCtxParam1(ctx context.Context) *mStoreMockPut {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{}
	}

	if mmPut.defaultExpectation.params != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Expect")
	}

	if mmPut.defaultExpectation.paramPtrs == nil {
		mmPut.defaultExpectation.paramPtrs = &StoreMockPutParamPtrs{}
	}
	mmPut.defaultExpectation.paramPtrs.ctx = &ctx
	mmPut.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmPut
}

// ExpectKeyParam2 sets up expected param key for Store.Put
func (mmPut *mStoreMockPut) ExpectKeyParam2(key string) *mStoreMockPut {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{}
	}

	if mmPut.defaultExpectation.params != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Expect")
	}

	if mmPut.defaultExpectation.paramPtrs == nil {
		mmPut.defaultExpectation.paramPtrs = &StoreMockPutParamPtrs{}
	}
	mmPut.defaultExpectation.paramPtrs.key = &key
	mmPut.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmPut
}

// ExpectRParam3 sets up expected param r for Store.Put
func (mmPut *mStoreMockPut) ExpectRParam3(r io.Reader) *mStoreMockPut {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{}
	}

	if mmPut.defaultExpectation.params != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Expect")
	}

	if mmPut.defaultExpectation.paramPtrs == nil {
		mmPut.defaultExpectation.paramPtrs = &StoreMockPutParamPtrs{}
	}
	mmPut.defaultExpectation.paramPtrs.r = &r
	mmPut.defaultExpectation.expectationOrigins.originR = minimock.CallerInfo(1)

	return mmPut
}

// ExpectSizeParam4 sets up expected param size for Store.Put
func (mmPut *mStoreMockPut) ExpectSizeParam4(size int64) *mStoreMockPut {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{}
	}

	if mmPut.defaultExpectation.params != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Expect")
	}

	if mmPut.defaultExpectation.paramPtrs == nil {
		mmPut.defaultExpectation.paramPtrs = &StoreMockPutParamPtrs{}
	}
	mmPut.defaultExpectation.paramPtrs.size = &size
	mmPut.defaultExpectation.expectationOrigins.originSize = minimock.CallerInfo(1)

	return mmPut
}

// ExpectContentTypeParam5 sets up expected param contentType for Store.Put
func (mmPut *mStoreMockPut) ExpectContentTypeParam5(contentType string) *mStoreMockPut {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{}
	}

	if mmPut.defaultExpectation.params != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Expect")
	}

	if mmPut.defaultExpectation.paramPtrs == nil {
		mmPut.defaultExpectation.paramPtrs = &StoreMockPutParamPtrs{}
	}
	mmPut.defaultExpectation.paramPtrs.contentType = &contentType
	mmPut.defaultExpectation.expectationOrigins.originContentType = minimock.CallerInfo(1)

	return mmPut
}

// Inspect accepts an inspector function that has same arguments as the Store.Put
func (mmPut *mStoreMockPut) Inspect(f func(ctx context.Context, key string, r io.Reader, size int64, contentType string)) *mStoreMockPut {
	if mmPut.mock.inspectFuncPut != nil {
		mmPut.mock.t.Fatalf("Inspect function is already set for StoreMock.Put")
	}

	mmPut.mock.inspectFuncPut = f

	return mmPut
}

// Return sets up results that will be returned by Store.Put
func (mmPut *mStoreMockPut) Return(s1 string, err error) *StoreMock {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	if mmPut.defaultExpectation == nil {
		mmPut.defaultExpectation = &StoreMockPutExpectation{mock: mmPut.mock}
	}
	mmPut.defaultExpectation.results = &StoreMockPutResults{s1, err}
	mmPut.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmPut.mock
}

// Set uses given function f to mock the Store.Put method
func (mmPut *mStoreMockPut) Set(f func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (s1 string, err error)) *StoreMock {
	if mmPut.defaultExpectation != nil {
		mmPut.mock.t.Fatalf("Default expectation is already set for the Store.Put method")
	}

	if len(mmPut.expectations) > 0 {
		mmPut.mock.t.Fatalf("Some expectations are already set for the Store.Put method")
	}

	mmPut.mock.funcPut = f
	mmPut.mock.funcPutOrigin = minimock.CallerInfo(1)
	return mmPut.mock
}

// When sets expectation for the Store.Put which will trigger the result defined by the following
// Then helper
func (mmPut *mStoreMockPut) When(ctx context.Context, key string, r io.Reader, size int64, contentType string) *StoreMockPutExpectation {
	if mmPut.mock.funcPut != nil {
		mmPut.mock.t.Fatalf("StoreMock.Put mock is already set by Set")
	}

	expectation := &StoreMockPutExpectation{
		mock:               mmPut.mock,
		params:             &StoreMockPutParams{ctx, key, r, size, contentType},
		expectationOrigins: StoreMockPutExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmPut.expectations = append(mmPut.expectations, expectation)
	return expectation
}

// Then sets up Store.Put return parameters for the expectation previously defined by the When method
func (e *StoreMockPutExpectation) Then(s1 string, err error) *StoreMock {
	e.results = &StoreMockPutResults{s1, err}
	return e.mock
}

// Times sets number of times Store.Put should be invoked
func (mmPut *mStoreMockPut) Times(n uint64) *mStoreMockPut {
	if n == 0 {
		mmPut.mock.t.Fatalf("Times of StoreMock.Put mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmPut.expectedInvocations, n)
	mmPut.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmPut
}

func (mmPut *mStoreMockPut) invocationsDone() bool {
	if len(mmPut.expectations) == 0 && mmPut.defaultExpectation == nil && mmPut.mock.funcPut == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmPut.mock.afterPutCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmPut.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Put implements mm_storage.Store
func (mmPut *StoreMock) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmPut.beforePutCounter, 1)
	defer mm_atomic.AddUint64(&mmPut.afterPutCounter, 1)

	mmPut.t.Helper()

	if mmPut.inspectFuncPut != nil {
		mmPut.inspectFuncPut(ctx, key, r, size, contentType)
	}

	mm_params := StoreMockPutParams{ctx, key, r, size, contentType}

	// Record call args
	mmPut.PutMock.mutex.Lock()
	mmPut.PutMock.callArgs = append(mmPut.PutMock.callArgs, &mm_params)
	mmPut.PutMock.mutex.Unlock()

	for _, e := range mmPut.PutMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmPut.PutMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmPut.PutMock.defaultExpectation.Counter, 1)
		mm_want := mmPut.PutMock.defaultExpectation.params
		mm_want_ptrs := mmPut.PutMock.defaultExpectation.paramPtrs

		mm_got := StoreMockPutParams{ctx, key, r, size, contentType}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmPut.t.Errorf("StoreMock.Put got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPut.PutMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmPut.t.Errorf("StoreMock.Put got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPut.PutMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

			if mm_want_ptrs.r != nil && !minimock.Equal(*mm_want_ptrs.r, mm_got.r) {
				mmPut.t.Errorf("StoreMock.Put got unexpected parameter r, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPut.PutMock.defaultExpectation.expectationOrigins.originR, *mm_want_ptrs.r, mm_got.r, minimock.Diff(*mm_want_ptrs.r, mm_got.r))
			}

			if mm_want_ptrs.size != nil && !minimock.Equal(*mm_want_ptrs.size, mm_got.size) {
				mmPut.t.Errorf("StoreMock.Put got unexpected parameter size, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPut.PutMock.defaultExpectation.expectationOrigins.originSize, *mm_want_ptrs.size, mm_got.size, minimock.Diff(*mm_want_ptrs.size, mm_got.size))
			}

			if mm_want_ptrs.contentType != nil && !minimock.Equal(*mm_want_ptrs.contentType, mm_got.contentType) {
				mmPut.t.Errorf("StoreMock.Put got unexpected parameter contentType, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPut.PutMock.defaultExpectation.expectationOrigins.originContentType, *mm_want_ptrs.contentType, mm_got.contentType, minimock.Diff(*mm_want_ptrs.contentType, mm_got.contentType))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmPut.t.Errorf("StoreMock.Put got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmPut.PutMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmPut.PutMock.defaultExpectation.results
		if mm_results == nil {
			mmPut.t.Fatal("No results are set for the StoreMock.Put")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmPut.funcPut != nil {
		return mmPut.funcPut(ctx, key, r, size, contentType)
	}
	mmPut.t.Fatalf("Unexpected call to StoreMock.Put. %v %v %v %v %v", ctx, key, r, size, contentType)
	return
}

// PutAfterCounter returns a count of finished StoreMock.Put invocations
func (mmPut *StoreMock) PutAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPut.afterPutCounter)
}

// PutBeforeCounter returns a count of StoreMock.Put invocations
func (mmPut *StoreMock) PutBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPut.beforePutCounter)
}

// Calls returns a list of arguments used in each call to StoreMock.Put.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmPut *mStoreMockPut) Calls() []*StoreMockPutParams {
	mmPut.mutex.RLock()

	argCopy := make([]*StoreMockPutParams, len(mmPut.callArgs))
	copy(argCopy, mmPut.callArgs)

	mmPut.mutex.RUnlock()

	return argCopy
}

// MinimockPutDone returns true if the count of the Put invocations corresponds
// the number of defined expectations
func (m *StoreMock) MinimockPutDone() bool {
	if m.PutMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.PutMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.PutMock.invocationsDone()
}

// MinimockPutInspect logs each unmet expectation
func (m *StoreMock) MinimockPutInspect() {
	for _, e := range m.PutMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to StoreMock.Put at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterPutCounter := mm_atomic.LoadUint64(&m.afterPutCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.PutMock.defaultExpectation != nil && afterPutCounter < 1 {
		if m.PutMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to StoreMock.Put at\n%s", m.PutMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to StoreMock.Put at\n%s with params: %#v", m.PutMock.defaultExpectation.expectationOrigins.origin, *m.PutMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcPut != nil && afterPutCounter < 1 {
		m.t.Errorf("Expected call to StoreMock.Put at\n%s", m.funcPutOrigin)
	}

	if !m.PutMock.invocationsDone() && afterPutCounter > 0 {
		m.t.Errorf("Expected %d calls to StoreMock.Put at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.PutMock.expectedInvocations), m.PutMock.expectedInvocationsOrigin, afterPutCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *StoreMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockGetInspect()

			m.MinimockPutInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *StoreMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *StoreMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockGetDone() &&
		m.MinimockPutDone()
}
