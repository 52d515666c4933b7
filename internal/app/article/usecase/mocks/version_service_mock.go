// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.VersionService -o version_service_mock.go -n VersionServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/version"
)

// VersionServiceMock implements mm_usecase.VersionService
type VersionServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcLatestForFormat          func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (d1 version.DocumentVersion, err error)
	funcLatestForFormatOrigin    string
	inspectFuncLatestForFormat   func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format)
	afterLatestForFormatCounter  uint64
	beforeLatestForFormatCounter uint64
	LatestForFormatMock          mVersionServiceMockLatestForFormat

	funcListFor          func(ctx context.Context, articleID uuid.UUID) (da1 []version.DocumentVersion, err error)
	funcListForOrigin    string
	inspectFuncListFor   func(ctx context.Context, articleID uuid.UUID)
	afterListForCounter  uint64
	beforeListForCounter uint64
	ListForMock          mVersionServiceMockListFor
}

// NewVersionServiceMock returns a mock for mm_usecase.VersionService
func NewVersionServiceMock(t minimock.Tester) *VersionServiceMock {
	m := &VersionServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LatestForFormatMock = mVersionServiceMockLatestForFormat{mock: m}
	m.LatestForFormatMock.callArgs = []*VersionServiceMockLatestForFormatParams{}

	m.ListForMock = mVersionServiceMockListFor{mock: m}
	m.ListForMock.callArgs = []*VersionServiceMockListForParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mVersionServiceMockLatestForFormat struct {
	optional           bool
	mock               *VersionServiceMock
	defaultExpectation *VersionServiceMockLatestForFormatExpectation
	expectations       []*VersionServiceMockLatestForFormatExpectation

	callArgs []*VersionServiceMockLatestForFormatParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// VersionServiceMockLatestForFormatExpectation specifies expectation struct of the VersionService.LatestForFormat
type VersionServiceMockLatestForFormatExpectation struct {
	mock               *VersionServiceMock
	params             *VersionServiceMockLatestForFormatParams
	paramPtrs          *VersionServiceMockLatestForFormatParamPtrs
	expectationOrigins VersionServiceMockLatestForFormatExpectationOrigins
	results            *VersionServiceMockLatestForFormatResults
	returnOrigin       string
	Counter            uint64
}

// VersionServiceMockLatestForFormatParams contains parameters of the VersionService.LatestForFormat
type VersionServiceMockLatestForFormatParams struct {
	ctx       context.Context
	articleID uuid.UUID
	role      version.Role
	format    version.Format
}

// VersionServiceMockLatestForFormatParamPtrs contains pointers to parameters of the VersionService.LatestForFormat
type VersionServiceMockLatestForFormatParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
	role      *version.Role
	format    *version.Format
}

// VersionServiceMockLatestForFormatResults contains results of the VersionService.LatestForFormat
type VersionServiceMockLatestForFormatResults struct {
	d1  version.DocumentVersion
	err error
}

// VersionServiceMockLatestForFormatOrigins contains origins of expectations of the VersionService.LatestForFormat
type VersionServiceMockLatestForFormatExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
	originRole      string
	originFormat    string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Optional() *mVersionServiceMockLatestForFormat {
	mmLatestForFormat.optional = true
	return mmLatestForFormat
}

// Expect sets up expected params for VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Expect(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) *mVersionServiceMockLatestForFormat {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	if mmLatestForFormat.defaultExpectation == nil {
		mmLatestForFormat.defaultExpectation = &VersionServiceMockLatestForFormatExpectation{}
	}

	if mmLatestForFormat.defaultExpectation.paramPtrs != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by ExpectParams functions")
	}

	mmLatestForFormat.defaultExpectation.params = &VersionServiceMockLatestForFormatParams{ctx, articleID, role, format}
	mmLatestForFormat.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLatestForFormat.expectations {
		if minimock.Equal(e.params, mmLatestForFormat.defaultExpectation.params) {
			mmLatestForFormat.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLatestForFormat.defaultExpectation.params)
		}
	}

	return mmLatestForFormat
}

// ExpectCtxParam1 sets up expected param ctx for VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) ExpectCtxParam1(ctx context.Context) *mVersionServiceMockLatestForFormat {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	if mmLatestForFormat.defaultExpectation == nil {
		mmLatestForFormat.defaultExpectation = &VersionServiceMockLatestForFormatExpectation{}
	}

	if mmLatestForFormat.defaultExpectation.params != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Expect")
	}

	if mmLatestForFormat.defaultExpectation.paramPtrs == nil {
		mmLatestForFormat.defaultExpectation.paramPtrs = &VersionServiceMockLatestForFormatParamPtrs{}
	}
	mmLatestForFormat.defaultExpectation.paramPtrs.ctx = &ctx
	mmLatestForFormat.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmLatestForFormat
}

// ExpectArticleIDParam2 sets up expected param articleID for VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) ExpectArticleIDParam2(articleID uuid.UUID) *mVersionServiceMockLatestForFormat {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	if mmLatestForFormat.defaultExpectation == nil {
		mmLatestForFormat.defaultExpectation = &VersionServiceMockLatestForFormatExpectation{}
	}

	if mmLatestForFormat.defaultExpectation.params != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Expect")
	}

	if mmLatestForFormat.defaultExpectation.paramPtrs == nil {
		mmLatestForFormat.defaultExpectation.paramPtrs = &VersionServiceMockLatestForFormatParamPtrs{}
	}
	mmLatestForFormat.defaultExpectation.paramPtrs.articleID = &articleID
	mmLatestForFormat.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmLatestForFormat
}

// ExpectRoleParam3 sets up expected param role for VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) ExpectRoleParam3(role version.Role) *mVersionServiceMockLatestForFormat {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	if mmLatestForFormat.defaultExpectation == nil {
		mmLatestForFormat.defaultExpectation = &VersionServiceMockLatestForFormatExpectation{}
	}

	if mmLatestForFormat.defaultExpectation.params != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Expect")
	}

	if mmLatestForFormat.defaultExpectation.paramPtrs == nil {
		mmLatestForFormat.defaultExpectation.paramPtrs = &VersionServiceMockLatestForFormatParamPtrs{}
	}
	mmLatestForFormat.defaultExpectation.paramPtrs.role = &role
	mmLatestForFormat.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmLatestForFormat
}

// ExpectFormatParam4 sets up expected param format for VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) ExpectFormatParam4(format version.Format) *mVersionServiceMockLatestForFormat {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	if mmLatestForFormat.defaultExpectation == nil {
		mmLatestForFormat.defaultExpectation = &VersionServiceMockLatestForFormatExpectation{}
	}

	if mmLatestForFormat.defaultExpectation.params != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Expect")
	}

	if mmLatestForFormat.defaultExpectation.paramPtrs == nil {
		mmLatestForFormat.defaultExpectation.paramPtrs = &VersionServiceMockLatestForFormatParamPtrs{}
	}
	mmLatestForFormat.defaultExpectation.paramPtrs.format = &format
	mmLatestForFormat.defaultExpectation.expectationOrigins.originFormat = minimock.CallerInfo(1)

	return mmLatestForFormat
}

// Inspect accepts an inspector function that has same arguments as the VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Inspect(f func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format)) *mVersionServiceMockLatestForFormat {
	if mmLatestForFormat.mock.inspectFuncLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("Inspect function is already set for VersionServiceMock.LatestForFormat")
	}

	mmLatestForFormat.mock.inspectFuncLatestForFormat = f

	return mmLatestForFormat
}

// Return sets up results that will be returned by VersionService.LatestForFormat
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Return(d1 version.DocumentVersion, err error) *VersionServiceMock {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	if mmLatestForFormat.defaultExpectation == nil {
		mmLatestForFormat.defaultExpectation = &VersionServiceMockLatestForFormatExpectation{mock: mmLatestForFormat.mock}
	}
	mmLatestForFormat.defaultExpectation.results = &VersionServiceMockLatestForFormatResults{d1, err}
	mmLatestForFormat.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLatestForFormat.mock
}

// Set uses given function f to mock the VersionService.LatestForFormat method
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Set(f func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (d1 version.DocumentVersion, err error)) *VersionServiceMock {
	if mmLatestForFormat.defaultExpectation != nil {
		mmLatestForFormat.mock.t.Fatalf("Default expectation is already set for the VersionService.LatestForFormat method")
	}

	if len(mmLatestForFormat.expectations) > 0 {
		mmLatestForFormat.mock.t.Fatalf("Some expectations are already set for the VersionService.LatestForFormat method")
	}

	mmLatestForFormat.mock.funcLatestForFormat = f
	mmLatestForFormat.mock.funcLatestForFormatOrigin = minimock.CallerInfo(1)
	return mmLatestForFormat.mock
}

// When sets expectation for the VersionService.LatestForFormat which will trigger the result defined by the following
// Then helper
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) When(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) *VersionServiceMockLatestForFormatExpectation {
	if mmLatestForFormat.mock.funcLatestForFormat != nil {
		mmLatestForFormat.mock.t.Fatalf("VersionServiceMock.LatestForFormat mock is already set by Set")
	}

	expectation := &VersionServiceMockLatestForFormatExpectation{
		mock:               mmLatestForFormat.mock,
		params:             &VersionServiceMockLatestForFormatParams{ctx, articleID, role, format},
		expectationOrigins: VersionServiceMockLatestForFormatExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLatestForFormat.expectations = append(mmLatestForFormat.expectations, expectation)
	return expectation
}

// Then sets up VersionService.LatestForFormat return parameters for the expectation previously defined by the When method
func (e *VersionServiceMockLatestForFormatExpectation) Then(d1 version.DocumentVersion, err error) *VersionServiceMock {
	e.results = &VersionServiceMockLatestForFormatResults{d1, err}
	return e.mock
}

// Times sets number of times VersionService.LatestForFormat should be invoked
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Times(n uint64) *mVersionServiceMockLatestForFormat {
	if n == 0 {
		mmLatestForFormat.mock.t.Fatalf("Times of VersionServiceMock.LatestForFormat mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLatestForFormat.expectedInvocations, n)
	mmLatestForFormat.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLatestForFormat
}

func (mmLatestForFormat *mVersionServiceMockLatestForFormat) invocationsDone() bool {
	if len(mmLatestForFormat.expectations) == 0 && mmLatestForFormat.defaultExpectation == nil && mmLatestForFormat.mock.funcLatestForFormat == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLatestForFormat.mock.afterLatestForFormatCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLatestForFormat.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// LatestForFormat implements mm_usecase.VersionService
func (mmLatestForFormat *VersionServiceMock) LatestForFormat(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (d1 version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmLatestForFormat.beforeLatestForFormatCounter, 1)
	defer mm_atomic.AddUint64(&mmLatestForFormat.afterLatestForFormatCounter, 1)

	mmLatestForFormat.t.Helper()

	if mmLatestForFormat.inspectFuncLatestForFormat != nil {
		mmLatestForFormat.inspectFuncLatestForFormat(ctx, articleID, role, format)
	}

	mm_params := VersionServiceMockLatestForFormatParams{ctx, articleID, role, format}

	// Record call args
	mmLatestForFormat.LatestForFormatMock.mutex.Lock()
	mmLatestForFormat.LatestForFormatMock.callArgs = append(mmLatestForFormat.LatestForFormatMock.callArgs, &mm_params)
	mmLatestForFormat.LatestForFormatMock.mutex.Unlock()

	for _, e := range mmLatestForFormat.LatestForFormatMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.d1, e.results.err
		}
	}

	if mmLatestForFormat.LatestForFormatMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLatestForFormat.LatestForFormatMock.defaultExpectation.Counter, 1)
		mm_want := mmLatestForFormat.LatestForFormatMock.defaultExpectation.params
		mm_want_ptrs := mmLatestForFormat.LatestForFormatMock.defaultExpectation.paramPtrs

		mm_got := VersionServiceMockLatestForFormatParams{ctx, articleID, role, format}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmLatestForFormat.t.Errorf("VersionServiceMock.LatestForFormat got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestForFormat.LatestForFormatMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmLatestForFormat.t.Errorf("VersionServiceMock.LatestForFormat got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestForFormat.LatestForFormatMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmLatestForFormat.t.Errorf("VersionServiceMock.LatestForFormat got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestForFormat.LatestForFormatMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

			if mm_want_ptrs.format != nil && !minimock.Equal(*mm_want_ptrs.format, mm_got.format) {
				mmLatestForFormat.t.Errorf("VersionServiceMock.LatestForFormat got unexpected parameter format, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestForFormat.LatestForFormatMock.defaultExpectation.expectationOrigins.originFormat, *mm_want_ptrs.format, mm_got.format, minimock.Diff(*mm_want_ptrs.format, mm_got.format))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLatestForFormat.t.Errorf("VersionServiceMock.LatestForFormat got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLatestForFormat.LatestForFormatMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLatestForFormat.LatestForFormatMock.defaultExpectation.results
		if mm_results == nil {
			mmLatestForFormat.t.Fatal("No results are set for the VersionServiceMock.LatestForFormat")
		}
		return (*mm_results).d1, (*mm_results).err
	}
	if mmLatestForFormat.funcLatestForFormat != nil {
		return mmLatestForFormat.funcLatestForFormat(ctx, articleID, role, format)
	}
	mmLatestForFormat.t.Fatalf("Unexpected call to VersionServiceMock.LatestForFormat. %v %v %v %v", ctx, articleID, role, format)
	return
}

// LatestForFormatAfterCounter returns a count of finished VersionServiceMock.LatestForFormat invocations
func (mmLatestForFormat *VersionServiceMock) LatestForFormatAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLatestForFormat.afterLatestForFormatCounter)
}

// LatestForFormatBeforeCounter returns a count of VersionServiceMock.LatestForFormat invocations
func (mmLatestForFormat *VersionServiceMock) LatestForFormatBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLatestForFormat.beforeLatestForFormatCounter)
}

// Calls returns a list of arguments used in each call to VersionServiceMock.LatestForFormat.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLatestForFormat *mVersionServiceMockLatestForFormat) Calls() []*VersionServiceMockLatestForFormatParams {
	mmLatestForFormat.mutex.RLock()

	argCopy := make([]*VersionServiceMockLatestForFormatParams, len(mmLatestForFormat.callArgs))
	copy(argCopy, mmLatestForFormat.callArgs)

	mmLatestForFormat.mutex.RUnlock()

	return argCopy
}

// MinimockLatestForFormatDone returns true if the count of the LatestForFormat invocations corresponds
// the number of defined expectations
func (m *VersionServiceMock) MinimockLatestForFormatDone() bool {
	if m.LatestForFormatMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.LatestForFormatMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.LatestForFormatMock.invocationsDone()
}

// MinimockLatestForFormatInspect logs each unmet expectation
func (m *VersionServiceMock) MinimockLatestForFormatInspect() {
	for _, e := range m.LatestForFormatMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to VersionServiceMock.LatestForFormat at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLatestForFormatCounter := mm_atomic.LoadUint64(&m.afterLatestForFormatCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LatestForFormatMock.defaultExpectation != nil && afterLatestForFormatCounter < 1 {
		if m.LatestForFormatMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to VersionServiceMock.LatestForFormat at\n%s", m.LatestForFormatMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to VersionServiceMock.LatestForFormat at\n%s with params: %#v", m.LatestForFormatMock.defaultExpectation.expectationOrigins.origin, *m.LatestForFormatMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLatestForFormat != nil && afterLatestForFormatCounter < 1 {
		m.t.Errorf("Expected call to VersionServiceMock.LatestForFormat at\n%s", m.funcLatestForFormatOrigin)
	}

	if !m.LatestForFormatMock.invocationsDone() && afterLatestForFormatCounter > 0 {
		m.t.Errorf("Expected %d calls to VersionServiceMock.LatestForFormat at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LatestForFormatMock.expectedInvocations), m.LatestForFormatMock.expectedInvocationsOrigin, afterLatestForFormatCounter)
	}
}

type mVersionServiceMockListFor struct {
	optional           bool
	mock               *VersionServiceMock
	defaultExpectation *VersionServiceMockListForExpectation
	expectations       []*VersionServiceMockListForExpectation

	callArgs []*VersionServiceMockListForParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// VersionServiceMockListForExpectation specifies expectation struct of the VersionService.ListFor
type VersionServiceMockListForExpectation struct {
	mock               *VersionServiceMock
	params             *VersionServiceMockListForParams
	paramPtrs          *VersionServiceMockListForParamPtrs
	expectationOrigins VersionServiceMockListForExpectationOrigins
	results            *VersionServiceMockListForResults
	returnOrigin       string
	Counter            uint64
}

// VersionServiceMockListForParams contains parameters of the VersionService.ListFor
type VersionServiceMockListForParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// VersionServiceMockListForParamPtrs contains pointers to parameters of the VersionService.ListFor
type VersionServiceMockListForParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// VersionServiceMockListForResults contains results of the VersionService.ListFor
type VersionServiceMockListForResults struct {
	da1 []version.DocumentVersion
	err error
}

// VersionServiceMockListForOrigins contains origins of expectations of the VersionService.ListFor
type VersionServiceMockListForExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListFor *mVersionServiceMockListFor) Optional() *mVersionServiceMockListFor {
	mmListFor.optional = true
	return mmListFor
}

// Expect sets up expected params for VersionService.ListFor
func (mmListFor *mVersionServiceMockListFor) Expect(ctx context.Context, articleID uuid.UUID) *mVersionServiceMockListFor {
	if mmListFor.mock.funcListFor != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Set")
	}

	if mmListFor.defaultExpectation == nil {
		mmListFor.defaultExpectation = &VersionServiceMockListForExpectation{}
	}

	if mmListFor.defaultExpectation.paramPtrs != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by ExpectParams functions")
	}

	mmListFor.defaultExpectation.params = &VersionServiceMockListForParams{ctx, articleID}
	mmListFor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListFor.expectations {
		if minimock.Equal(e.params, mmListFor.defaultExpectation.params) {
			mmListFor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListFor.defaultExpectation.params)
		}
	}

	return mmListFor
}

// ExpectCtxParam1 sets up expected param ctx for VersionService.ListFor
func (mmListFor *mVersionServiceMockListFor) ExpectCtxParam1(ctx context.Context) *mVersionServiceMockListFor {
	if mmListFor.mock.funcListFor != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Set")
	}

	if mmListFor.defaultExpectation == nil {
		mmListFor.defaultExpectation = &VersionServiceMockListForExpectation{}
	}

	if mmListFor.defaultExpectation.params != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Expect")
	}

	if mmListFor.defaultExpectation.paramPtrs == nil {
		mmListFor.defaultExpectation.paramPtrs = &VersionServiceMockListForParamPtrs{}
	}
	mmListFor.defaultExpectation.paramPtrs.ctx = &ctx
	mmListFor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListFor
}

// ExpectArticleIDParam2 sets up expected param articleID for VersionService.ListFor
func (mmListFor *mVersionServiceMockListFor) ExpectArticleIDParam2(articleID uuid.UUID) *mVersionServiceMockListFor {
	if mmListFor.mock.funcListFor != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Set")
	}

	if mmListFor.defaultExpectation == nil {
		mmListFor.defaultExpectation = &VersionServiceMockListForExpectation{}
	}

	if mmListFor.defaultExpectation.params != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Expect")
	}

	if mmListFor.defaultExpectation.paramPtrs == nil {
		mmListFor.defaultExpectation.paramPtrs = &VersionServiceMockListForParamPtrs{}
	}
	mmListFor.defaultExpectation.paramPtrs.articleID = &articleID
	mmListFor.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmListFor
}

// Inspect accepts an inspector function that has same arguments as the VersionService.ListFor
func (mmListFor *mVersionServiceMockListFor) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mVersionServiceMockListFor {
	if mmListFor.mock.inspectFuncListFor != nil {
		mmListFor.mock.t.Fatalf("Inspect function is already set for VersionServiceMock.ListFor")
	}

	mmListFor.mock.inspectFuncListFor = f

	return mmListFor
}

// Return sets up results that will be returned by VersionService.ListFor
func (mmListFor *mVersionServiceMockListFor) Return(da1 []version.DocumentVersion, err error) *VersionServiceMock {
	if mmListFor.mock.funcListFor != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Set")
	}

	if mmListFor.defaultExpectation == nil {
		mmListFor.defaultExpectation = &VersionServiceMockListForExpectation{mock: mmListFor.mock}
	}
	mmListFor.defaultExpectation.results = &VersionServiceMockListForResults{da1, err}
	mmListFor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListFor.mock
}

// Set uses given function f to mock the VersionService.ListFor method
func (mmListFor *mVersionServiceMockListFor) Set(f func(ctx context.Context, articleID uuid.UUID) (da1 []version.DocumentVersion, err error)) *VersionServiceMock {
	if mmListFor.defaultExpectation != nil {
		mmListFor.mock.t.Fatalf("Default expectation is already set for the VersionService.ListFor method")
	}

	if len(mmListFor.expectations) > 0 {
		mmListFor.mock.t.Fatalf("Some expectations are already set for the VersionService.ListFor method")
	}

	mmListFor.mock.funcListFor = f
	mmListFor.mock.funcListForOrigin = minimock.CallerInfo(1)
	return mmListFor.mock
}

// When sets expectation for the VersionService.ListFor which will trigger the result defined by the following
// Then helper
func (mmListFor *mVersionServiceMockListFor) When(ctx context.Context, articleID uuid.UUID) *VersionServiceMockListForExpectation {
	if mmListFor.mock.funcListFor != nil {
		mmListFor.mock.t.Fatalf("VersionServiceMock.ListFor mock is already set by Set")
	}

	expectation := &VersionServiceMockListForExpectation{
		mock:               mmListFor.mock,
		params:             &VersionServiceMockListForParams{ctx, articleID},
		expectationOrigins: VersionServiceMockListForExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListFor.expectations = append(mmListFor.expectations, expectation)
	return expectation
}

// Then sets up VersionService.ListFor return parameters for the expectation previously defined by the When method
func (e *VersionServiceMockListForExpectation) Then(da1 []version.DocumentVersion, err error) *VersionServiceMock {
	e.results = &VersionServiceMockListForResults{da1, err}
	return e.mock
}

// Times sets number of times VersionService.ListFor should be invoked
func (mmListFor *mVersionServiceMockListFor) Times(n uint64) *mVersionServiceMockListFor {
	if n == 0 {
		mmListFor.mock.t.Fatalf("Times of VersionServiceMock.ListFor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListFor.expectedInvocations, n)
	mmListFor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListFor
}

func (mmListFor *mVersionServiceMockListFor) invocationsDone() bool {
	if len(mmListFor.expectations) == 0 && mmListFor.defaultExpectation == nil && mmListFor.mock.funcListFor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListFor.mock.afterListForCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListFor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListFor implements mm_usecase.VersionService
func (mmListFor *VersionServiceMock) ListFor(ctx context.Context, articleID uuid.UUID) (da1 []version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmListFor.beforeListForCounter, 1)
	defer mm_atomic.AddUint64(&mmListFor.afterListForCounter, 1)

	mmListFor.t.Helper()

	if mmListFor.inspectFuncListFor != nil {
		mmListFor.inspectFuncListFor(ctx, articleID)
	}

	mm_params := VersionServiceMockListForParams{ctx, articleID}

	// Record call args
	mmListFor.ListForMock.mutex.Lock()
	mmListFor.ListForMock.callArgs = append(mmListFor.ListForMock.callArgs, &mm_params)
	mmListFor.ListForMock.mutex.Unlock()

	for _, e := range mmListFor.ListForMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.da1, e.results.err
		}
	}

	if mmListFor.ListForMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListFor.ListForMock.defaultExpectation.Counter, 1)
		mm_want := mmListFor.ListForMock.defaultExpectation.params
		mm_want_ptrs := mmListFor.ListForMock.defaultExpectation.paramPtrs

		mm_got := VersionServiceMockListForParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListFor.t.Errorf("VersionServiceMock.ListFor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListFor.ListForMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmListFor.t.Errorf("VersionServiceMock.ListFor got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListFor.ListForMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListFor.t.Errorf("VersionServiceMock.ListFor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListFor.ListForMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListFor.ListForMock.defaultExpectation.results
		if mm_results == nil {
			mmListFor.t.Fatal("No results are set for the VersionServiceMock.ListFor")
		}
		return (*mm_results).da1, (*mm_results).err
	}
	if mmListFor.funcListFor != nil {
		return mmListFor.funcListFor(ctx, articleID)
	}
	mmListFor.t.Fatalf("Unexpected call to VersionServiceMock.ListFor. %v %v", ctx, articleID)
	return
}

// ListForAfterCounter returns a count of finished VersionServiceMock.ListFor invocations
func (mmListFor *VersionServiceMock) ListForAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListFor.afterListForCounter)
}

// ListForBeforeCounter returns a count of VersionServiceMock.ListFor invocations
func (mmListFor *VersionServiceMock) ListForBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListFor.beforeListForCounter)
}

// Calls returns a list of arguments used in each call to VersionServiceMock.ListFor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListFor *mVersionServiceMockListFor) Calls() []*VersionServiceMockListForParams {
	mmListFor.mutex.RLock()

	argCopy := make([]*VersionServiceMockListForParams, len(mmListFor.callArgs))
	copy(argCopy, mmListFor.callArgs)

	mmListFor.mutex.RUnlock()

	return argCopy
}

// MinimockListForDone returns true if the count of the ListFor invocations corresponds
// the number of defined expectations
func (m *VersionServiceMock) MinimockListForDone() bool {
	if m.ListForMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListForMock.invocationsDone()
}

// MinimockListForInspect logs each unmet expectation
func (m *VersionServiceMock) MinimockListForInspect() {
	for _, e := range m.ListForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to VersionServiceMock.ListFor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListForCounter := mm_atomic.LoadUint64(&m.afterListForCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListForMock.defaultExpectation != nil && afterListForCounter < 1 {
		if m.ListForMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to VersionServiceMock.ListFor at\n%s", m.ListForMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to VersionServiceMock.ListFor at\n%s with params: %#v", m.ListForMock.defaultExpectation.expectationOrigins.origin, *m.ListForMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListFor != nil && afterListForCounter < 1 {
		m.t.Errorf("Expected call to VersionServiceMock.ListFor at\n%s", m.funcListForOrigin)
	}

	if !m.ListForMock.invocationsDone() && afterListForCounter > 0 {
		m.t.Errorf("Expected %d calls to VersionServiceMock.ListFor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListForMock.expectedInvocations), m.ListForMock.expectedInvocationsOrigin, afterListForCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *VersionServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockLatestForFormatInspect()

			m.MinimockListForInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *VersionServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *VersionServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockLatestForFormatDone() &&
		m.MinimockListForDone()
}
