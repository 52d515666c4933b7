// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/processing.VersionService -o version_service_mock.go -n VersionServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// VersionServiceMock implements mm_processing.VersionService
type VersionServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcLatestForFormat          func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (d1 version.DocumentVersion, err error)
	funcLatestForFormatOrigin    string
	inspectFuncLatestForFormat   func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format)
	afterLatestForFormatCounter  uint64
	beforeLatestForFormatCounter uint64
	LatestForFormatMock          mVersionServiceMockLatestForFormat

	funcListMissingCounterpart          func(ctx context.Context, limit int) (da1 []version.DocumentVersion, err error)
	funcListMissingCounterpartOrigin    string
	inspectFuncListMissingCounterpart   func(ctx context.Context, limit int)
	afterListMissingCounterpartCounter  uint64
	beforeListMissingCounterpartCounter uint64
	ListMissingCounterpartMock          mVersionServiceMockListMissingCounterpart

	funcRecord          func(ctx context.Context, tx tx.Transaction, req version.RecordReq) (d1 version.DocumentVersion, err error)
	funcRecordOrigin    string
	inspectFuncRecord   func(ctx context.Context, tx tx.Transaction, req version.RecordReq)
	afterRecordCounter  uint64
	beforeRecordCounter uint64
	RecordMock          mVersionServiceMockRecord
}

// NewVersionServiceMock returns a mock for mm_processing.VersionService
func NewVersionServiceMock(t minimock.Tester) *VersionServiceMock {
	m := &VersionServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LatestForFormatMock = mVersionServiceMockLatestForFormat{mock: m}
	m.LatestForFormatMock.callArgs = []*VersionServiceMockLatestForFormatParams{}

	m.ListMissingCounterpartMock = mVersionServiceMockListMissingCounterpart{mock: m}
	m.ListMissingCounterpartMock.callArgs = []*VersionServiceMockListMissingCounterpartParams{}

	m.RecordMock = mVersionServiceMockRecord{mock: m}
	m.RecordMock.callArgs = []*VersionServiceMockRecordParams{}

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

// LatestForFormat implements mm_processing.VersionService
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

type mVersionServiceMockListMissingCounterpart struct {
	optional           bool
	mock               *VersionServiceMock
	defaultExpectation *VersionServiceMockListMissingCounterpartExpectation
	expectations       []*VersionServiceMockListMissingCounterpartExpectation

	callArgs []*VersionServiceMockListMissingCounterpartParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// VersionServiceMockListMissingCounterpartExpectation specifies expectation struct of the VersionService.ListMissingCounterpart
type VersionServiceMockListMissingCounterpartExpectation struct {
	mock               *VersionServiceMock
	params             *VersionServiceMockListMissingCounterpartParams
	paramPtrs          *VersionServiceMockListMissingCounterpartParamPtrs
	expectationOrigins VersionServiceMockListMissingCounterpartExpectationOrigins
	results            *VersionServiceMockListMissingCounterpartResults
	returnOrigin       string
	Counter            uint64
}

// VersionServiceMockListMissingCounterpartParams contains parameters of the VersionService.ListMissingCounterpart
type VersionServiceMockListMissingCounterpartParams struct {
	ctx   context.Context
	limit int
}

// VersionServiceMockListMissingCounterpartParamPtrs contains pointers to parameters of the VersionService.ListMissingCounterpart
type VersionServiceMockListMissingCounterpartParamPtrs struct {
	ctx   *context.Context
	limit *int
}

// VersionServiceMockListMissingCounterpartResults contains results of the VersionService.ListMissingCounterpart
type VersionServiceMockListMissingCounterpartResults struct {
	da1 []version.DocumentVersion
	err error
}

// VersionServiceMockListMissingCounterpartOrigins contains origins of expectations of the VersionService.ListMissingCounterpart
type VersionServiceMockListMissingCounterpartExpectationOrigins struct {
	origin      string
	originCtx   string
	originLimit string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Optional() *mVersionServiceMockListMissingCounterpart {
	mmListMissingCounterpart.optional = true
	return mmListMissingCounterpart
}

// Expect sets up expected params for VersionService.ListMissingCounterpart
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Expect(ctx context.Context, limit int) *mVersionServiceMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &VersionServiceMockListMissingCounterpartExpectation{}
	}

	if mmListMissingCounterpart.defaultExpectation.paramPtrs != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by ExpectParams functions")
	}

	mmListMissingCounterpart.defaultExpectation.params = &VersionServiceMockListMissingCounterpartParams{ctx, limit}
	mmListMissingCounterpart.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmListMissingCounterpart.expectations {
		if minimock.Equal(e.params, mmListMissingCounterpart.defaultExpectation.params) {
			mmListMissingCounterpart.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListMissingCounterpart.defaultExpectation.params)
		}
	}

	return mmListMissingCounterpart
}

// ExpectCtxParam1 sets up expected param ctx for VersionService.ListMissingCounterpart
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) ExpectCtxParam1(ctx context.Context) *mVersionServiceMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &VersionServiceMockListMissingCounterpartExpectation{}
	}

	if mmListMissingCounterpart.defaultExpectation.params != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Expect")
	}

	if mmListMissingCounterpart.defaultExpectation.paramPtrs == nil {
		mmListMissingCounterpart.defaultExpectation.paramPtrs = &VersionServiceMockListMissingCounterpartParamPtrs{}
	}
	mmListMissingCounterpart.defaultExpectation.paramPtrs.ctx = &ctx
	mmListMissingCounterpart.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmListMissingCounterpart
}

// ExpectLimitParam2 sets up expected param limit for VersionService.ListMissingCounterpart
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) ExpectLimitParam2(limit int) *mVersionServiceMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &VersionServiceMockListMissingCounterpartExpectation{}
	}

	if mmListMissingCounterpart.defaultExpectation.params != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Expect")
	}

	if mmListMissingCounterpart.defaultExpectation.paramPtrs == nil {
		mmListMissingCounterpart.defaultExpectation.paramPtrs = &VersionServiceMockListMissingCounterpartParamPtrs{}
	}
	mmListMissingCounterpart.defaultExpectation.paramPtrs.limit = &limit
	mmListMissingCounterpart.defaultExpectation.expectationOrigins.originLimit = minimock.CallerInfo(1)

	return mmListMissingCounterpart
}

// Inspect accepts an inspector function that has same arguments as the VersionService.ListMissingCounterpart
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Inspect(f func(ctx context.Context, limit int)) *mVersionServiceMockListMissingCounterpart {
	if mmListMissingCounterpart.mock.inspectFuncListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("Inspect function is already set for VersionServiceMock.ListMissingCounterpart")
	}

	mmListMissingCounterpart.mock.inspectFuncListMissingCounterpart = f

	return mmListMissingCounterpart
}

// Return sets up results that will be returned by VersionService.ListMissingCounterpart
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Return(da1 []version.DocumentVersion, err error) *VersionServiceMock {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Set")
	}

	if mmListMissingCounterpart.defaultExpectation == nil {
		mmListMissingCounterpart.defaultExpectation = &VersionServiceMockListMissingCounterpartExpectation{mock: mmListMissingCounterpart.mock}
	}
	mmListMissingCounterpart.defaultExpectation.results = &VersionServiceMockListMissingCounterpartResults{da1, err}
	mmListMissingCounterpart.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmListMissingCounterpart.mock
}

// Set uses given function f to mock the VersionService.ListMissingCounterpart method
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Set(f func(ctx context.Context, limit int) (da1 []version.DocumentVersion, err error)) *VersionServiceMock {
	if mmListMissingCounterpart.defaultExpectation != nil {
		mmListMissingCounterpart.mock.t.Fatalf("Default expectation is already set for the VersionService.ListMissingCounterpart method")
	}

	if len(mmListMissingCounterpart.expectations) > 0 {
		mmListMissingCounterpart.mock.t.Fatalf("Some expectations are already set for the VersionService.ListMissingCounterpart method")
	}

	mmListMissingCounterpart.mock.funcListMissingCounterpart = f
	mmListMissingCounterpart.mock.funcListMissingCounterpartOrigin = minimock.CallerInfo(1)
	return mmListMissingCounterpart.mock
}

// When sets expectation for the VersionService.ListMissingCounterpart which will trigger the result defined by the following
// Then helper
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) When(ctx context.Context, limit int) *VersionServiceMockListMissingCounterpartExpectation {
	if mmListMissingCounterpart.mock.funcListMissingCounterpart != nil {
		mmListMissingCounterpart.mock.t.Fatalf("VersionServiceMock.ListMissingCounterpart mock is already set by Set")
	}

	expectation := &VersionServiceMockListMissingCounterpartExpectation{
		mock:               mmListMissingCounterpart.mock,
		params:             &VersionServiceMockListMissingCounterpartParams{ctx, limit},
		expectationOrigins: VersionServiceMockListMissingCounterpartExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmListMissingCounterpart.expectations = append(mmListMissingCounterpart.expectations, expectation)
	return expectation
}

// Then sets up VersionService.ListMissingCounterpart return parameters for the expectation previously defined by the When method
func (e *VersionServiceMockListMissingCounterpartExpectation) Then(da1 []version.DocumentVersion, err error) *VersionServiceMock {
	e.results = &VersionServiceMockListMissingCounterpartResults{da1, err}
	return e.mock
}

// Times sets number of times VersionService.ListMissingCounterpart should be invoked
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Times(n uint64) *mVersionServiceMockListMissingCounterpart {
	if n == 0 {
		mmListMissingCounterpart.mock.t.Fatalf("Times of VersionServiceMock.ListMissingCounterpart mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListMissingCounterpart.expectedInvocations, n)
	mmListMissingCounterpart.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmListMissingCounterpart
}

func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) invocationsDone() bool {
	if len(mmListMissingCounterpart.expectations) == 0 && mmListMissingCounterpart.defaultExpectation == nil && mmListMissingCounterpart.mock.funcListMissingCounterpart == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListMissingCounterpart.mock.afterListMissingCounterpartCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListMissingCounterpart.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListMissingCounterpart implements mm_processing.VersionService
func (mmListMissingCounterpart *VersionServiceMock) ListMissingCounterpart(ctx context.Context, limit int) (da1 []version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmListMissingCounterpart.beforeListMissingCounterpartCounter, 1)
	defer mm_atomic.AddUint64(&mmListMissingCounterpart.afterListMissingCounterpartCounter, 1)

	mmListMissingCounterpart.t.Helper()

	if mmListMissingCounterpart.inspectFuncListMissingCounterpart != nil {
		mmListMissingCounterpart.inspectFuncListMissingCounterpart(ctx, limit)
	}

	mm_params := VersionServiceMockListMissingCounterpartParams{ctx, limit}

	// Record call args
	mmListMissingCounterpart.ListMissingCounterpartMock.mutex.Lock()
	mmListMissingCounterpart.ListMissingCounterpartMock.callArgs = append(mmListMissingCounterpart.ListMissingCounterpartMock.callArgs, &mm_params)
	mmListMissingCounterpart.ListMissingCounterpartMock.mutex.Unlock()

	for _, e := range mmListMissingCounterpart.ListMissingCounterpartMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.da1, e.results.err
		}
	}

	if mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.Counter, 1)
		mm_want := mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.params
		mm_want_ptrs := mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.paramPtrs

		mm_got := VersionServiceMockListMissingCounterpartParams{ctx, limit}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmListMissingCounterpart.t.Errorf("VersionServiceMock.ListMissingCounterpart got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.limit != nil && !minimock.Equal(*mm_want_ptrs.limit, mm_got.limit) {
				mmListMissingCounterpart.t.Errorf("VersionServiceMock.ListMissingCounterpart got unexpected parameter limit, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.originLimit, *mm_want_ptrs.limit, mm_got.limit, minimock.Diff(*mm_want_ptrs.limit, mm_got.limit))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmListMissingCounterpart.t.Errorf("VersionServiceMock.ListMissingCounterpart got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmListMissingCounterpart.ListMissingCounterpartMock.defaultExpectation.results
		if mm_results == nil {
			mmListMissingCounterpart.t.Fatal("No results are set for the VersionServiceMock.ListMissingCounterpart")
		}
		return (*mm_results).da1, (*mm_results).err
	}
	if mmListMissingCounterpart.funcListMissingCounterpart != nil {
		return mmListMissingCounterpart.funcListMissingCounterpart(ctx, limit)
	}
	mmListMissingCounterpart.t.Fatalf("Unexpected call to VersionServiceMock.ListMissingCounterpart. %v %v", ctx, limit)
	return
}

// ListMissingCounterpartAfterCounter returns a count of finished VersionServiceMock.ListMissingCounterpart invocations
func (mmListMissingCounterpart *VersionServiceMock) ListMissingCounterpartAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingCounterpart.afterListMissingCounterpartCounter)
}

// ListMissingCounterpartBeforeCounter returns a count of VersionServiceMock.ListMissingCounterpart invocations
func (mmListMissingCounterpart *VersionServiceMock) ListMissingCounterpartBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListMissingCounterpart.beforeListMissingCounterpartCounter)
}

// Calls returns a list of arguments used in each call to VersionServiceMock.ListMissingCounterpart.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListMissingCounterpart *mVersionServiceMockListMissingCounterpart) Calls() []*VersionServiceMockListMissingCounterpartParams {
	mmListMissingCounterpart.mutex.RLock()

	argCopy := make([]*VersionServiceMockListMissingCounterpartParams, len(mmListMissingCounterpart.callArgs))
	copy(argCopy, mmListMissingCounterpart.callArgs)

	mmListMissingCounterpart.mutex.RUnlock()

	return argCopy
}

// MinimockListMissingCounterpartDone returns true if the count of the ListMissingCounterpart invocations corresponds
// the number of defined expectations
func (m *VersionServiceMock) MinimockListMissingCounterpartDone() bool {
	if m.ListMissingCounterpartMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListMissingCounterpartMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListMissingCounterpartMock.invocationsDone()
}

// MinimockListMissingCounterpartInspect logs each unmet expectation
func (m *VersionServiceMock) MinimockListMissingCounterpartInspect() {
	for _, e := range m.ListMissingCounterpartMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to VersionServiceMock.ListMissingCounterpart at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListMissingCounterpartCounter := mm_atomic.LoadUint64(&m.afterListMissingCounterpartCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMissingCounterpartMock.defaultExpectation != nil && afterListMissingCounterpartCounter < 1 {
		if m.ListMissingCounterpartMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to VersionServiceMock.ListMissingCounterpart at\n%s", m.ListMissingCounterpartMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to VersionServiceMock.ListMissingCounterpart at\n%s with params: %#v", m.ListMissingCounterpartMock.defaultExpectation.expectationOrigins.origin, *m.ListMissingCounterpartMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListMissingCounterpart != nil && afterListMissingCounterpartCounter < 1 {
		m.t.Errorf("Expected call to VersionServiceMock.ListMissingCounterpart at\n%s", m.funcListMissingCounterpartOrigin)
	}

	if !m.ListMissingCounterpartMock.invocationsDone() && afterListMissingCounterpartCounter > 0 {
		m.t.Errorf("Expected %d calls to VersionServiceMock.ListMissingCounterpart at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMissingCounterpartMock.expectedInvocations), m.ListMissingCounterpartMock.expectedInvocationsOrigin, afterListMissingCounterpartCounter)
	}
}

type mVersionServiceMockRecord struct {
	optional           bool
	mock               *VersionServiceMock
	defaultExpectation *VersionServiceMockRecordExpectation
	expectations       []*VersionServiceMockRecordExpectation

	callArgs []*VersionServiceMockRecordParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// VersionServiceMockRecordExpectation specifies expectation struct of the VersionService.Record
type VersionServiceMockRecordExpectation struct {
	mock               *VersionServiceMock
	params             *VersionServiceMockRecordParams
	paramPtrs          *VersionServiceMockRecordParamPtrs
	expectationOrigins VersionServiceMockRecordExpectationOrigins
	results            *VersionServiceMockRecordResults
	returnOrigin       string
	Counter            uint64
}

// VersionServiceMockRecordParams contains parameters of the VersionService.Record
type VersionServiceMockRecordParams struct {
	ctx context.Context
	tx  tx.Transaction
	req version.RecordReq
}

// VersionServiceMockRecordParamPtrs contains pointers to parameters of the VersionService.Record
type VersionServiceMockRecordParamPtrs struct {
	ctx *context.Context
	tx  *tx.Transaction
	req *version.RecordReq
}

// VersionServiceMockRecordResults contains results of the VersionService.Record
type VersionServiceMockRecordResults struct {
	d1  version.DocumentVersion
	err error
}

// VersionServiceMockRecordOrigins contains origins of expectations of the VersionService.Record
type VersionServiceMockRecordExpectationOrigins struct {
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
func (mmRecord *mVersionServiceMockRecord) Optional() *mVersionServiceMockRecord {
	mmRecord.optional = true
	return mmRecord
}

// Expect sets up expected params for VersionService.Record
func (mmRecord *mVersionServiceMockRecord) Expect(ctx context.Context, tx tx.Transaction, req version.RecordReq) *mVersionServiceMockRecord {
	if mmRecord.mock.funcRecord != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Set")
	}

	if mmRecord.defaultExpectation == nil {
		mmRecord.defaultExpectation = &VersionServiceMockRecordExpectation{}
	}

	if mmRecord.defaultExpectation.paramPtrs != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by ExpectParams functions")
	}

	mmRecord.defaultExpectation.params = &VersionServiceMockRecordParams{ctx, tx, req}
	mmRecord.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmRecord.expectations {
		if minimock.Equal(e.params, mmRecord.defaultExpectation.params) {
			mmRecord.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRecord.defaultExpectation.params)
		}
	}

	return mmRecord
}

// ExpectCtxParam1 sets up expected param ctx for VersionService.Record
func (mmRecord *mVersionServiceMockRecord) ExpectCtxParam1(ctx context.Context) *mVersionServiceMockRecord {
	if mmRecord.mock.funcRecord != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Set")
	}

	if mmRecord.defaultExpectation == nil {
		mmRecord.defaultExpectation = &VersionServiceMockRecordExpectation{}
	}

	if mmRecord.defaultExpectation.params != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Expect")
	}

	if mmRecord.defaultExpectation.paramPtrs == nil {
		mmRecord.defaultExpectation.paramPtrs = &VersionServiceMockRecordParamPtrs{}
	}
	mmRecord.defaultExpectation.paramPtrs.ctx = &ctx
	mmRecord.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmRecord
}

// ExpectTxParam2 sets up expected param tx for VersionService.Record
func (mmRecord *mVersionServiceMockRecord) ExpectTxParam2(tx tx.Transaction) *mVersionServiceMockRecord {
	if mmRecord.mock.funcRecord != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Set")
	}

	if mmRecord.defaultExpectation == nil {
		mmRecord.defaultExpectation = &VersionServiceMockRecordExpectation{}
	}

	if mmRecord.defaultExpectation.params != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Expect")
	}

	if mmRecord.defaultExpectation.paramPtrs == nil {
		mmRecord.defaultExpectation.paramPtrs = &VersionServiceMockRecordParamPtrs{}
	}
	mmRecord.defaultExpectation.paramPtrs.tx = &tx
	mmRecord.defaultExpectation.expectationOrigins.originTx = minimock.CallerInfo(1)

	return mmRecord
}

// ExpectReqParam3 sets up expected param req for VersionService.Record
func (mmRecord *mVersionServiceMockRecord) ExpectReqParam3(req version.RecordReq) *mVersionServiceMockRecord {
	if mmRecord.mock.funcRecord != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Set")
	}

	if mmRecord.defaultExpectation == nil {
		mmRecord.defaultExpectation = &VersionServiceMockRecordExpectation{}
	}

	if mmRecord.defaultExpectation.params != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Expect")
	}

	if mmRecord.defaultExpectation.paramPtrs == nil {
		mmRecord.defaultExpectation.paramPtrs = &VersionServiceMockRecordParamPtrs{}
	}
	mmRecord.defaultExpectation.paramPtrs.req = &req
	mmRecord.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmRecord
}

// Inspect accepts an inspector function that has same arguments as the VersionService.Record
func (mmRecord *mVersionServiceMockRecord) Inspect(f func(ctx context.Context, tx tx.Transaction, req version.RecordReq)) *mVersionServiceMockRecord {
	if mmRecord.mock.inspectFuncRecord != nil {
		mmRecord.mock.t.Fatalf("Inspect function is already set for VersionServiceMock.Record")
	}

	mmRecord.mock.inspectFuncRecord = f

	return mmRecord
}

// Return sets up results that will be returned by VersionService.Record
func (mmRecord *mVersionServiceMockRecord) Return(d1 version.DocumentVersion, err error) *VersionServiceMock {
	if mmRecord.mock.funcRecord != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Set")
	}

	if mmRecord.defaultExpectation == nil {
		mmRecord.defaultExpectation = &VersionServiceMockRecordExpectation{mock: mmRecord.mock}
	}
	mmRecord.defaultExpectation.results = &VersionServiceMockRecordResults{d1, err}
	mmRecord.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmRecord.mock
}

// Set uses given function f to mock the VersionService.Record method
func (mmRecord *mVersionServiceMockRecord) Set(f func(ctx context.Context, tx tx.Transaction, req version.RecordReq) (d1 version.DocumentVersion, err error)) *VersionServiceMock {
	if mmRecord.defaultExpectation != nil {
		mmRecord.mock.t.Fatalf("Default expectation is already set for the VersionService.Record method")
	}

	if len(mmRecord.expectations) > 0 {
		mmRecord.mock.t.Fatalf("Some expectations are already set for the VersionService.Record method")
	}

	mmRecord.mock.funcRecord = f
	mmRecord.mock.funcRecordOrigin = minimock.CallerInfo(1)
	return mmRecord.mock
}

// When sets expectation for the VersionService.Record which will trigger the result defined by the following
// Then helper
func (mmRecord *mVersionServiceMockRecord) When(ctx context.Context, tx tx.Transaction, req version.RecordReq) *VersionServiceMockRecordExpectation {
	if mmRecord.mock.funcRecord != nil {
		mmRecord.mock.t.Fatalf("VersionServiceMock.Record mock is already set by Set")
	}

	expectation := &VersionServiceMockRecordExpectation{
		mock:               mmRecord.mock,
		params:             &VersionServiceMockRecordParams{ctx, tx, req},
		expectationOrigins: VersionServiceMockRecordExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmRecord.expectations = append(mmRecord.expectations, expectation)
	return expectation
}

// Then sets up VersionService.Record return parameters for the expectation previously defined by the When method
func (e *VersionServiceMockRecordExpectation) Then(d1 version.DocumentVersion, err error) *VersionServiceMock {
	e.results = &VersionServiceMockRecordResults{d1, err}
	return e.mock
}

// Times sets number of times VersionService.Record should be invoked
func (mmRecord *mVersionServiceMockRecord) Times(n uint64) *mVersionServiceMockRecord {
	if n == 0 {
		mmRecord.mock.t.Fatalf("Times of VersionServiceMock.Record mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmRecord.expectedInvocations, n)
	mmRecord.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmRecord
}

func (mmRecord *mVersionServiceMockRecord) invocationsDone() bool {
	if len(mmRecord.expectations) == 0 && mmRecord.defaultExpectation == nil && mmRecord.mock.funcRecord == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmRecord.mock.afterRecordCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmRecord.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Record implements mm_processing.VersionService
func (mmRecord *VersionServiceMock) Record(ctx context.Context, tx tx.Transaction, req version.RecordReq) (d1 version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmRecord.beforeRecordCounter, 1)
	defer mm_atomic.AddUint64(&mmRecord.afterRecordCounter, 1)

	mmRecord.t.Helper()

	if mmRecord.inspectFuncRecord != nil {
		mmRecord.inspectFuncRecord(ctx, tx, req)
	}

	mm_params := VersionServiceMockRecordParams{ctx, tx, req}

	// Record call args
	mmRecord.RecordMock.mutex.Lock()
	mmRecord.RecordMock.callArgs = append(mmRecord.RecordMock.callArgs, &mm_params)
	mmRecord.RecordMock.mutex.Unlock()

	for _, e := range mmRecord.RecordMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.d1, e.results.err
		}
	}

	if mmRecord.RecordMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRecord.RecordMock.defaultExpectation.Counter, 1)
		mm_want := mmRecord.RecordMock.defaultExpectation.params
		mm_want_ptrs := mmRecord.RecordMock.defaultExpectation.paramPtrs

		mm_got := VersionServiceMockRecordParams{ctx, tx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmRecord.t.Errorf("VersionServiceMock.Record got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRecord.RecordMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tx != nil && !minimock.Equal(*mm_want_ptrs.tx, mm_got.tx) {
				mmRecord.t.Errorf("VersionServiceMock.Record got unexpected parameter tx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRecord.RecordMock.defaultExpectation.expectationOrigins.originTx, *mm_want_ptrs.tx, mm_got.tx, minimock.Diff(*mm_want_ptrs.tx, mm_got.tx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmRecord.t.Errorf("VersionServiceMock.Record got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRecord.RecordMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmRecord.t.Errorf("VersionServiceMock.Record got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmRecord.RecordMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmRecord.RecordMock.defaultExpectation.results
		if mm_results == nil {
			mmRecord.t.Fatal("No results are set for the VersionServiceMock.Record")
		}
		return (*mm_results).d1, (*mm_results).err
	}
	if mmRecord.funcRecord != nil {
		return mmRecord.funcRecord(ctx, tx, req)
	}
	mmRecord.t.Fatalf("Unexpected call to VersionServiceMock.Record. %v %v %v", ctx, tx, req)
	return
}

// RecordAfterCounter returns a count of finished VersionServiceMock.Record invocations
func (mmRecord *VersionServiceMock) RecordAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRecord.afterRecordCounter)
}

// RecordBeforeCounter returns a count of VersionServiceMock.Record invocations
func (mmRecord *VersionServiceMock) RecordBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRecord.beforeRecordCounter)
}

// Calls returns a list of arguments used in each call to VersionServiceMock.Record.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRecord *mVersionServiceMockRecord) Calls() []*VersionServiceMockRecordParams {
	mmRecord.mutex.RLock()

	argCopy := make([]*VersionServiceMockRecordParams, len(mmRecord.callArgs))
	copy(argCopy, mmRecord.callArgs)

	mmRecord.mutex.RUnlock()

	return argCopy
}

// MinimockRecordDone returns true if the count of the Record invocations corresponds
// the number of defined expectations
func (m *VersionServiceMock) MinimockRecordDone() bool {
	if m.RecordMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.RecordMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RecordMock.invocationsDone()
}

// MinimockRecordInspect logs each unmet expectation
func (m *VersionServiceMock) MinimockRecordInspect() {
	for _, e := range m.RecordMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to VersionServiceMock.Record at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRecordCounter := mm_atomic.LoadUint64(&m.afterRecordCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RecordMock.defaultExpectation != nil && afterRecordCounter < 1 {
		if m.RecordMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to VersionServiceMock.Record at\n%s", m.RecordMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to VersionServiceMock.Record at\n%s with params: %#v", m.RecordMock.defaultExpectation.expectationOrigins.origin, *m.RecordMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRecord != nil && afterRecordCounter < 1 {
		m.t.Errorf("Expected call to VersionServiceMock.Record at\n%s", m.funcRecordOrigin)
	}

	if !m.RecordMock.invocationsDone() && afterRecordCounter > 0 {
		m.t.Errorf("Expected %d calls to VersionServiceMock.Record at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RecordMock.expectedInvocations), m.RecordMock.expectedInvocationsOrigin, afterRecordCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *VersionServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockLatestForFormatInspect()

			m.MinimockListMissingCounterpartInspect()

			m.MinimockRecordInspect()
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
		m.MinimockListMissingCounterpartDone() &&
		m.MinimockRecordDone()
}
