// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/infrastructure/cache.KV -o kv_mock.go -n KVMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	"time"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// KVMock implements mm_cache.KV
type KVMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcGet          func(ctx context.Context, key string) (s1 string, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, key string)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mKVMockGet

	funcGetDel          func(ctx context.Context, key string) (s1 string, err error)
	funcGetDelOrigin    string
	inspectFuncGetDel   func(ctx context.Context, key string)
	afterGetDelCounter  uint64
	beforeGetDelCounter uint64
	GetDelMock          mKVMockGetDel

	funcSet          func(ctx context.Context, key string, value string, ttl time.Duration) (err error)
	funcSetOrigin    string
	inspectFuncSet   func(ctx context.Context, key string, value string, ttl time.Duration)
	afterSetCounter  uint64
	beforeSetCounter uint64
	SetMock          mKVMockSet
}

// NewKVMock returns a mock for mm_cache.KV
func NewKVMock(t minimock.Tester) *KVMock {
	m := &KVMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GetMock = mKVMockGet{mock: m}
	m.GetMock.callArgs = []*KVMockGetParams{}

	m.GetDelMock = mKVMockGetDel{mock: m}
	m.GetDelMock.callArgs = []*KVMockGetDelParams{}

	m.SetMock = mKVMockSet{mock: m}
	m.SetMock.callArgs = []*KVMockSetParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mKVMockGet struct {
	optional           bool
	mock               *KVMock
	defaultExpectation *KVMockGetExpectation
	expectations       []*KVMockGetExpectation

	callArgs []*KVMockGetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// KVMockGetExpectation specifies expectation struct of the KV.Get
type KVMockGetExpectation struct {
	mock               *KVMock
	params             *KVMockGetParams
	paramPtrs          *KVMockGetParamPtrs
	expectationOrigins KVMockGetExpectationOrigins
	results            *KVMockGetResults
	returnOrigin       string
	Counter            uint64
}

// KVMockGetParams contains parameters of the KV.Get
type KVMockGetParams struct {
	ctx context.Context
	key string
}

// KVMockGetParamPtrs contains pointers to parameters of the KV.Get
type KVMockGetParamPtrs struct {
	ctx *context.Context
	key *string
}

// KVMockGetResults contains results of the KV.Get
type KVMockGetResults struct {
	s1  string
	err error
}

// KVMockGetOrigins contains origins of expectations of the KV.Get
type KVMockGetExpectationOrigins struct {
	origin    string
	originCtx string
	originKey string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGet *mKVMockGet) Optional() *mKVMockGet {
	mmGet.optional = true
	return mmGet
}

// Expect sets up expected params for KV.Get
func (mmGet *mKVMockGet) Expect(ctx context.Context, key string) *mKVMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &KVMockGetExpectation{}
	}

	if mmGet.defaultExpectation.paramPtrs != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by ExpectParams functions")
	}

	mmGet.defaultExpectation.params = &KVMockGetParams{ctx, key}
	mmGet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGet.expectations {
		if minimock.Equal(e.params, mmGet.defaultExpectation.params) {
			mmGet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGet.defaultExpectation.params)
		}
	}

	return mmGet
}

// ExpectCtxParam1 sets up expected param ctx for KV.Get
func (mmGet *mKVMockGet) ExpectCtxParam1(ctx context.Context) *mKVMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &KVMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &KVMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.ctx = &ctx
	mmGet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGet
}

// ExpectKeyParam2 sets up expected param key for KV.Get
func (mmGet *mKVMockGet) ExpectKeyParam2(key string) *mKVMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &KVMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &KVMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.key = &key
	mmGet.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmGet
}

// Inspect accepts an inspector function that has same arguments as the KV.Get
func (mmGet *mKVMockGet) Inspect(f func(ctx context.Context, key string)) *mKVMockGet {
	if mmGet.mock.inspectFuncGet != nil {
		mmGet.mock.t.Fatalf("Inspect function is already set for KVMock.Get")
	}

	mmGet.mock.inspectFuncGet = f

	return mmGet
}

// Return sets up results that will be returned by KV.Get
func (mmGet *mKVMockGet) Return(s1 string, err error) *KVMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &KVMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &KVMockGetResults{s1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the KV.Get method
func (mmGet *mKVMockGet) Set(f func(ctx context.Context, key string) (s1 string, err error)) *KVMock {
	if mmGet.defaultExpectation != nil {
		mmGet.mock.t.Fatalf("Default expectation is already set for the KV.Get method")
	}

	if len(mmGet.expectations) > 0 {
		mmGet.mock.t.Fatalf("Some expectations are already set for the KV.Get method")
	}

	mmGet.mock.funcGet = f
	mmGet.mock.funcGetOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// When sets expectation for the KV.Get which will trigger the result defined by the following
// Then helper
func (mmGet *mKVMockGet) When(ctx context.Context, key string) *KVMockGetExpectation {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("KVMock.Get mock is already set by Set")
	}

	expectation := &KVMockGetExpectation{
		mock:               mmGet.mock,
		params:             &KVMockGetParams{ctx, key},
		expectationOrigins: KVMockGetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGet.expectations = append(mmGet.expectations, expectation)
	return expectation
}

// Then sets up KV.Get return parameters for the expectation previously defined by the When method
func (e *KVMockGetExpectation) Then(s1 string, err error) *KVMock {
	e.results = &KVMockGetResults{s1, err}
	return e.mock
}

// Times sets number of times KV.Get should be invoked
func (mmGet *mKVMockGet) Times(n uint64) *mKVMockGet {
	if n == 0 {
		mmGet.mock.t.Fatalf("Times of KVMock.Get mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGet.expectedInvocations, n)
	mmGet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGet
}

func (mmGet *mKVMockGet) invocationsDone() bool {
	if len(mmGet.expectations) == 0 && mmGet.defaultExpectation == nil && mmGet.mock.funcGet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGet.mock.afterGetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Get implements mm_cache.KV
func (mmGet *KVMock) Get(ctx context.Context, key string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmGet.beforeGetCounter, 1)
	defer mm_atomic.AddUint64(&mmGet.afterGetCounter, 1)

	mmGet.t.Helper()

	if mmGet.inspectFuncGet != nil {
		mmGet.inspectFuncGet(ctx, key)
	}

	mm_params := KVMockGetParams{ctx, key}

	// Record call args
	mmGet.GetMock.mutex.Lock()
	mmGet.GetMock.callArgs = append(mmGet.GetMock.callArgs, &mm_params)
	mmGet.GetMock.mutex.Unlock()

	for _, e := range mmGet.GetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmGet.GetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGet.GetMock.defaultExpectation.Counter, 1)
		mm_want := mmGet.GetMock.defaultExpectation.params
		mm_want_ptrs := mmGet.GetMock.defaultExpectation.paramPtrs

		mm_got := KVMockGetParams{ctx, key}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGet.t.Errorf("KVMock.Get got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmGet.t.Errorf("KVMock.Get got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGet.t.Errorf("KVMock.Get got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGet.GetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGet.GetMock.defaultExpectation.results
		if mm_results == nil {
			mmGet.t.Fatal("No results are set for the KVMock.Get")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmGet.funcGet != nil {
		return mmGet.funcGet(ctx, key)
	}
	mmGet.t.Fatalf("Unexpected call to KVMock.Get. %v %v", ctx, key)
	return
}

// GetAfterCounter returns a count of finished KVMock.Get invocations
func (mmGet *KVMock) GetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.afterGetCounter)
}

// GetBeforeCounter returns a count of KVMock.Get invocations
func (mmGet *KVMock) GetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.beforeGetCounter)
}

// Calls returns a list of arguments used in each call to KVMock.Get.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGet *mKVMockGet) Calls() []*KVMockGetParams {
	mmGet.mutex.RLock()

	argCopy := make([]*KVMockGetParams, len(mmGet.callArgs))
	copy(argCopy, mmGet.callArgs)

	mmGet.mutex.RUnlock()

	return argCopy
}

// MinimockGetDone returns true if the count of the Get invocations corresponds
// the number of defined expectations
func (m *KVMock) MinimockGetDone() bool {
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
func (m *KVMock) MinimockGetInspect() {
	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to KVMock.Get at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetCounter := mm_atomic.LoadUint64(&m.afterGetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetMock.defaultExpectation != nil && afterGetCounter < 1 {
		if m.GetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to KVMock.Get at\n%s", m.GetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to KVMock.Get at\n%s with params: %#v", m.GetMock.defaultExpectation.expectationOrigins.origin, *m.GetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGet != nil && afterGetCounter < 1 {
		m.t.Errorf("Expected call to KVMock.Get at\n%s", m.funcGetOrigin)
	}

	if !m.GetMock.invocationsDone() && afterGetCounter > 0 {
		m.t.Errorf("Expected %d calls to KVMock.Get at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetMock.expectedInvocations), m.GetMock.expectedInvocationsOrigin, afterGetCounter)
	}
}

type mKVMockGetDel struct {
	optional           bool
	mock               *KVMock
	defaultExpectation *KVMockGetDelExpectation
	expectations       []*KVMockGetDelExpectation

	callArgs []*KVMockGetDelParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// KVMockGetDelExpectation specifies expectation struct of the KV.GetDel
type KVMockGetDelExpectation struct {
	mock               *KVMock
	params             *KVMockGetDelParams
	paramPtrs          *KVMockGetDelParamPtrs
	expectationOrigins KVMockGetDelExpectationOrigins
	results            *KVMockGetDelResults
	returnOrigin       string
	Counter            uint64
}

// KVMockGetDelParams contains parameters of the KV.GetDel
type KVMockGetDelParams struct {
	ctx context.Context
	key string
}

// KVMockGetDelParamPtrs contains pointers to parameters of the KV.GetDel
type KVMockGetDelParamPtrs struct {
	ctx *context.Context
	key *string
}

// KVMockGetDelResults contains results of the KV.GetDel
type KVMockGetDelResults struct {
	s1  string
	err error
}

// KVMockGetDelOrigins contains origins of expectations of the KV.GetDel
type KVMockGetDelExpectationOrigins struct {
	origin    string
	originCtx string
	originKey string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetDel *mKVMockGetDel) Optional() *mKVMockGetDel {
	mmGetDel.optional = true
	return mmGetDel
}

// Expect sets up expected params for KV.GetDel
func (mmGetDel *mKVMockGetDel) Expect(ctx context.Context, key string) *mKVMockGetDel {
	if mmGetDel.mock.funcGetDel != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Set")
	}

	if mmGetDel.defaultExpectation == nil {
		mmGetDel.defaultExpectation = &KVMockGetDelExpectation{}
	}

	if mmGetDel.defaultExpectation.paramPtrs != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by ExpectParams functions")
	}

	mmGetDel.defaultExpectation.params = &KVMockGetDelParams{ctx, key}
	mmGetDel.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetDel.expectations {
		if minimock.Equal(e.params, mmGetDel.defaultExpectation.params) {
			mmGetDel.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetDel.defaultExpectation.params)
		}
	}

	return mmGetDel
}

// ExpectCtxParam1 sets up expected param ctx for KV.GetDel
func (mmGetDel *mKVMockGetDel) ExpectCtxParam1(ctx context.Context) *mKVMockGetDel {
	if mmGetDel.mock.funcGetDel != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Set")
	}

	if mmGetDel.defaultExpectation == nil {
		mmGetDel.defaultExpectation = &KVMockGetDelExpectation{}
	}

	if mmGetDel.defaultExpectation.params != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Expect")
	}

	if mmGetDel.defaultExpectation.paramPtrs == nil {
		mmGetDel.defaultExpectation.paramPtrs = &KVMockGetDelParamPtrs{}
	}
	mmGetDel.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetDel.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetDel
}

// ExpectKeyParam2 sets up expected param key for KV.GetDel
func (mmGetDel *mKVMockGetDel) ExpectKeyParam2(key string) *mKVMockGetDel {
	if mmGetDel.mock.funcGetDel != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Set")
	}

	if mmGetDel.defaultExpectation == nil {
		mmGetDel.defaultExpectation = &KVMockGetDelExpectation{}
	}

	if mmGetDel.defaultExpectation.params != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Expect")
	}

	if mmGetDel.defaultExpectation.paramPtrs == nil {
		mmGetDel.defaultExpectation.paramPtrs = &KVMockGetDelParamPtrs{}
	}
	mmGetDel.defaultExpectation.paramPtrs.key = &key
	mmGetDel.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmGetDel
}

// Inspect accepts an inspector function that has same arguments as the KV.GetDel
func (mmGetDel *mKVMockGetDel) Inspect(f func(ctx context.Context, key string)) *mKVMockGetDel {
	if mmGetDel.mock.inspectFuncGetDel != nil {
		mmGetDel.mock.t.Fatalf("Inspect function is already set for KVMock.GetDel")
	}

	mmGetDel.mock.inspectFuncGetDel = f

	return mmGetDel
}

// Return sets up results that will be returned by KV.GetDel
func (mmGetDel *mKVMockGetDel) Return(s1 string, err error) *KVMock {
	if mmGetDel.mock.funcGetDel != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Set")
	}

	if mmGetDel.defaultExpectation == nil {
		mmGetDel.defaultExpectation = &KVMockGetDelExpectation{mock: mmGetDel.mock}
	}
	mmGetDel.defaultExpectation.results = &KVMockGetDelResults{s1, err}
	mmGetDel.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetDel.mock
}

// Set uses given function f to mock the KV.GetDel method
func (mmGetDel *mKVMockGetDel) Set(f func(ctx context.Context, key string) (s1 string, err error)) *KVMock {
	if mmGetDel.defaultExpectation != nil {
		mmGetDel.mock.t.Fatalf("Default expectation is already set for the KV.GetDel method")
	}

	if len(mmGetDel.expectations) > 0 {
		mmGetDel.mock.t.Fatalf("Some expectations are already set for the KV.GetDel method")
	}

	mmGetDel.mock.funcGetDel = f
	mmGetDel.mock.funcGetDelOrigin = minimock.CallerInfo(1)
	return mmGetDel.mock
}

// When sets expectation for the KV.GetDel which will trigger the result defined by the following
// Then helper
func (mmGetDel *mKVMockGetDel) When(ctx context.Context, key string) *KVMockGetDelExpectation {
	if mmGetDel.mock.funcGetDel != nil {
		mmGetDel.mock.t.Fatalf("KVMock.GetDel mock is already set by Set")
	}

	expectation := &KVMockGetDelExpectation{
		mock:               mmGetDel.mock,
		params:             &KVMockGetDelParams{ctx, key},
		expectationOrigins: KVMockGetDelExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetDel.expectations = append(mmGetDel.expectations, expectation)
	return expectation
}

// Then sets up KV.GetDel return parameters for the expectation previously defined by the When method
func (e *KVMockGetDelExpectation) Then(s1 string, err error) *KVMock {
	e.results = &KVMockGetDelResults{s1, err}
	return e.mock
}

// Times sets number of times KV.GetDel should be invoked
func (mmGetDel *mKVMockGetDel) Times(n uint64) *mKVMockGetDel {
	if n == 0 {
		mmGetDel.mock.t.Fatalf("Times of KVMock.GetDel mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetDel.expectedInvocations, n)
	mmGetDel.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetDel
}

func (mmGetDel *mKVMockGetDel) invocationsDone() bool {
	if len(mmGetDel.expectations) == 0 && mmGetDel.defaultExpectation == nil && mmGetDel.mock.funcGetDel == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetDel.mock.afterGetDelCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetDel.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetDel implements mm_cache.KV
func (mmGetDel *KVMock) GetDel(ctx context.Context, key string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmGetDel.beforeGetDelCounter, 1)
	defer mm_atomic.AddUint64(&mmGetDel.afterGetDelCounter, 1)

	mmGetDel.t.Helper()

	if mmGetDel.inspectFuncGetDel != nil {
		mmGetDel.inspectFuncGetDel(ctx, key)
	}

	mm_params := KVMockGetDelParams{ctx, key}

	// Record call args
	mmGetDel.GetDelMock.mutex.Lock()
	mmGetDel.GetDelMock.callArgs = append(mmGetDel.GetDelMock.callArgs, &mm_params)
	mmGetDel.GetDelMock.mutex.Unlock()

	for _, e := range mmGetDel.GetDelMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmGetDel.GetDelMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetDel.GetDelMock.defaultExpectation.Counter, 1)
		mm_want := mmGetDel.GetDelMock.defaultExpectation.params
		mm_want_ptrs := mmGetDel.GetDelMock.defaultExpectation.paramPtrs

		mm_got := KVMockGetDelParams{ctx, key}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetDel.t.Errorf("KVMock.GetDel got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetDel.GetDelMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmGetDel.t.Errorf("KVMock.GetDel got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetDel.GetDelMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetDel.t.Errorf("KVMock.GetDel got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetDel.GetDelMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetDel.GetDelMock.defaultExpectation.results
		if mm_results == nil {
			mmGetDel.t.Fatal("No results are set for the KVMock.GetDel")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmGetDel.funcGetDel != nil {
		return mmGetDel.funcGetDel(ctx, key)
	}
	mmGetDel.t.Fatalf("Unexpected call to KVMock.GetDel. %v %v", ctx, key)
	return
}

// GetDelAfterCounter returns a count of finished KVMock.GetDel invocations
func (mmGetDel *KVMock) GetDelAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetDel.afterGetDelCounter)
}

// GetDelBeforeCounter returns a count of KVMock.GetDel invocations
func (mmGetDel *KVMock) GetDelBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetDel.beforeGetDelCounter)
}

// Calls returns a list of arguments used in each call to KVMock.GetDel.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetDel *mKVMockGetDel) Calls() []*KVMockGetDelParams {
	mmGetDel.mutex.RLock()

	argCopy := make([]*KVMockGetDelParams, len(mmGetDel.callArgs))
	copy(argCopy, mmGetDel.callArgs)

	mmGetDel.mutex.RUnlock()

	return argCopy
}

// MinimockGetDelDone returns true if the count of the GetDel invocations corresponds
// the number of defined expectations
func (m *KVMock) MinimockGetDelDone() bool {
	if m.GetDelMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetDelMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetDelMock.invocationsDone()
}

// MinimockGetDelInspect logs each unmet expectation
func (m *KVMock) MinimockGetDelInspect() {
	for _, e := range m.GetDelMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to KVMock.GetDel at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetDelCounter := mm_atomic.LoadUint64(&m.afterGetDelCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetDelMock.defaultExpectation != nil && afterGetDelCounter < 1 {
		if m.GetDelMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to KVMock.GetDel at\n%s", m.GetDelMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to KVMock.GetDel at\n%s with params: %#v", m.GetDelMock.defaultExpectation.expectationOrigins.origin, *m.GetDelMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetDel != nil && afterGetDelCounter < 1 {
		m.t.Errorf("Expected call to KVMock.GetDel at\n%s", m.funcGetDelOrigin)
	}

	if !m.GetDelMock.invocationsDone() && afterGetDelCounter > 0 {
		m.t.Errorf("Expected %d calls to KVMock.GetDel at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetDelMock.expectedInvocations), m.GetDelMock.expectedInvocationsOrigin, afterGetDelCounter)
	}
}

type mKVMockSet struct {
	optional           bool
	mock               *KVMock
	defaultExpectation *KVMockSetExpectation
	expectations       []*KVMockSetExpectation

	callArgs []*KVMockSetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// KVMockSetExpectation specifies expectation struct of the KV.Set
type KVMockSetExpectation struct {
	mock               *KVMock
	params             *KVMockSetParams
	paramPtrs          *KVMockSetParamPtrs
	expectationOrigins KVMockSetExpectationOrigins
	results            *KVMockSetResults
	returnOrigin       string
	Counter            uint64
}

// KVMockSetParams contains parameters of the KV.Set
type KVMockSetParams struct {
	ctx   context.Context
	key   string
	value string
	ttl   time.Duration
}

// KVMockSetParamPtrs contains pointers to parameters of the KV.Set
type KVMockSetParamPtrs struct {
	ctx   *context.Context
	key   *string
	value *string
	ttl   *time.Duration
}

// KVMockSetResults contains results of the KV.Set
type KVMockSetResults struct {
	err error
}

// KVMockSetOrigins contains origins of expectations of the KV.Set
type KVMockSetExpectationOrigins struct {
	origin      string
	originCtx   string
	originKey   string
	originValue string
	originTtl   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSet *mKVMockSet) Optional() *mKVMockSet {
	mmSet.optional = true
	return mmSet
}

// Expect sets up expected params for KV.Set
func (mmSet *mKVMockSet) Expect(ctx context.Context, key string, value string, ttl time.Duration) *mKVMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &KVMockSetExpectation{}
	}

	if mmSet.defaultExpectation.paramPtrs != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by ExpectParams functions")
	}

	mmSet.defaultExpectation.params = &KVMockSetParams{ctx, key, value, ttl}
	mmSet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSet.expectations {
		if minimock.Equal(e.params, mmSet.defaultExpectation.params) {
			mmSet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSet.defaultExpectation.params)
		}
	}

	return mmSet
}

// ExpectCtxParam1 sets up expected param ctx for KV.Set
func (mmSet *mKVMockSet) ExpectCtxParam1(ctx context.Context) *mKVMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &KVMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &KVMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.ctx = &ctx
	mmSet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSet
}

// ExpectKeyParam2 sets up expected param key for KV.Set
func (mmSet *mKVMockSet) ExpectKeyParam2(key string) *mKVMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &KVMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &KVMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.key = &key
	mmSet.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmSet
}

// ExpectValueParam3 sets up expected param value for KV.Set
func (mmSet *mKVMockSet) ExpectValueParam3(value string) *mKVMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &KVMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &KVMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.value = &value
	mmSet.defaultExpectation.expectationOrigins.originValue = minimock.CallerInfo(1)

	return mmSet
}

// ExpectTtlParam4 sets up expected param ttl for KV.Set
func (mmSet *mKVMockSet) ExpectTtlParam4(ttl time.Duration) *mKVMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &KVMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &KVMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.ttl = &ttl
	mmSet.defaultExpectation.expectationOrigins.originTtl = minimock.CallerInfo(1)

	return mmSet
}

// Inspect accepts an inspector function that has same arguments as the KV.Set
func (mmSet *mKVMockSet) Inspect(f func(ctx context.Context, key string, value string, ttl time.Duration)) *mKVMockSet {
	if mmSet.mock.inspectFuncSet != nil {
		mmSet.mock.t.Fatalf("Inspect function is already set for KVMock.Set")
	}

	mmSet.mock.inspectFuncSet = f

	return mmSet
}

// Return sets up results that will be returned by KV.Set
func (mmSet *mKVMockSet) Return(err error) *KVMock {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &KVMockSetExpectation{mock: mmSet.mock}
	}
	mmSet.defaultExpectation.results = &KVMockSetResults{err}
	mmSet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSet.mock
}

// Set uses given function f to mock the KV.Set method
func (mmSet *mKVMockSet) Set(f func(ctx context.Context, key string, value string, ttl time.Duration) (err error)) *KVMock {
	if mmSet.defaultExpectation != nil {
		mmSet.mock.t.Fatalf("Default expectation is already set for the KV.Set method")
	}

	if len(mmSet.expectations) > 0 {
		mmSet.mock.t.Fatalf("Some expectations are already set for the KV.Set method")
	}

	mmSet.mock.funcSet = f
	mmSet.mock.funcSetOrigin = minimock.CallerInfo(1)
	return mmSet.mock
}

// When sets expectation for the KV.Set which will trigger the result defined by the following
// Then helper
func (mmSet *mKVMockSet) When(ctx context.Context, key string, value string, ttl time.Duration) *KVMockSetExpectation {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("KVMock.Set mock is already set by Set")
	}

	expectation := &KVMockSetExpectation{
		mock:               mmSet.mock,
		params:             &KVMockSetParams{ctx, key, value, ttl},
		expectationOrigins: KVMockSetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSet.expectations = append(mmSet.expectations, expectation)
	return expectation
}

// Then sets up KV.Set return parameters for the expectation previously defined by the When method
func (e *KVMockSetExpectation) Then(err error) *KVMock {
	e.results = &KVMockSetResults{err}
	return e.mock
}

// Times sets number of times KV.Set should be invoked
func (mmSet *mKVMockSet) Times(n uint64) *mKVMockSet {
	if n == 0 {
		mmSet.mock.t.Fatalf("Times of KVMock.Set mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSet.expectedInvocations, n)
	mmSet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSet
}

func (mmSet *mKVMockSet) invocationsDone() bool {
	if len(mmSet.expectations) == 0 && mmSet.defaultExpectation == nil && mmSet.mock.funcSet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSet.mock.afterSetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Set implements mm_cache.KV
func (mmSet *KVMock) Set(ctx context.Context, key string, value string, ttl time.Duration) (err error) {
	mm_atomic.AddUint64(&mmSet.beforeSetCounter, 1)
	defer mm_atomic.AddUint64(&mmSet.afterSetCounter, 1)

	mmSet.t.Helper()

	if mmSet.inspectFuncSet != nil {
		mmSet.inspectFuncSet(ctx, key, value, ttl)
	}

	mm_params := KVMockSetParams{ctx, key, value, ttl}

	// Record call args
	mmSet.SetMock.mutex.Lock()
	mmSet.SetMock.callArgs = append(mmSet.SetMock.callArgs, &mm_params)
	mmSet.SetMock.mutex.Unlock()

	for _, e := range mmSet.SetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmSet.SetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSet.SetMock.defaultExpectation.Counter, 1)
		mm_want := mmSet.SetMock.defaultExpectation.params
		mm_want_ptrs := mmSet.SetMock.defaultExpectation.paramPtrs

		mm_got := KVMockSetParams{ctx, key, value, ttl}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSet.t.Errorf("KVMock.Set got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmSet.t.Errorf("KVMock.Set got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

			if mm_want_ptrs.value != nil && !minimock.Equal(*mm_want_ptrs.value, mm_got.value) {
				mmSet.t.Errorf("KVMock.Set got unexpected parameter value, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originValue, *mm_want_ptrs.value, mm_got.value, minimock.Diff(*mm_want_ptrs.value, mm_got.value))
			}

			if mm_want_ptrs.ttl != nil && !minimock.Equal(*mm_want_ptrs.ttl, mm_got.ttl) {
				mmSet.t.Errorf("KVMock.Set got unexpected parameter ttl, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originTtl, *mm_want_ptrs.ttl, mm_got.ttl, minimock.Diff(*mm_want_ptrs.ttl, mm_got.ttl))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSet.t.Errorf("KVMock.Set got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSet.SetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSet.SetMock.defaultExpectation.results
		if mm_results == nil {
			mmSet.t.Fatal("No results are set for the KVMock.Set")
		}
		return (*mm_results).err
	}
	if mmSet.funcSet != nil {
		return mmSet.funcSet(ctx, key, value, ttl)
	}
	mmSet.t.Fatalf("Unexpected call to KVMock.Set. %v %v %v %v", ctx, key, value, ttl)
	return
}

// SetAfterCounter returns a count of finished KVMock.Set invocations
func (mmSet *KVMock) SetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSet.afterSetCounter)
}

// SetBeforeCounter returns a count of KVMock.Set invocations
func (mmSet *KVMock) SetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSet.beforeSetCounter)
}

// Calls returns a list of arguments used in each call to KVMock.Set.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSet *mKVMockSet) Calls() []*KVMockSetParams {
	mmSet.mutex.RLock()

	argCopy := make([]*KVMockSetParams, len(mmSet.callArgs))
	copy(argCopy, mmSet.callArgs)

	mmSet.mutex.RUnlock()

	return argCopy
}

// MinimockSetDone returns true if the count of the Set invocations corresponds
// the number of defined expectations
func (m *KVMock) MinimockSetDone() bool {
	if m.SetMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SetMock.invocationsDone()
}

// MinimockSetInspect logs each unmet expectation
func (m *KVMock) MinimockSetInspect() {
	for _, e := range m.SetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to KVMock.Set at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSetCounter := mm_atomic.LoadUint64(&m.afterSetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SetMock.defaultExpectation != nil && afterSetCounter < 1 {
		if m.SetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to KVMock.Set at\n%s", m.SetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to KVMock.Set at\n%s with params: %#v", m.SetMock.defaultExpectation.expectationOrigins.origin, *m.SetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSet != nil && afterSetCounter < 1 {
		m.t.Errorf("Expected call to KVMock.Set at\n%s", m.funcSetOrigin)
	}

	if !m.SetMock.invocationsDone() && afterSetCounter > 0 {
		m.t.Errorf("Expected %d calls to KVMock.Set at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SetMock.expectedInvocations), m.SetMock.expectedInvocationsOrigin, afterSetCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *KVMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockGetInspect()

			m.MinimockGetDelInspect()

			m.MinimockSetInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *KVMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *KVMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockGetDone() &&
		m.MinimockGetDelDone() &&
		m.MinimockSetDone()
}
