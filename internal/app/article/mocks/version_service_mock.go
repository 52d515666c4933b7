// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article.VersionService -o version_service_mock.go -n VersionServiceMock -p mocks

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

// VersionServiceMock implements mm_article.VersionService
type VersionServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcLatestFor          func(ctx context.Context, articleID uuid.UUID, role version.Role) (d1 version.DocumentVersion, err error)
	funcLatestForOrigin    string
	inspectFuncLatestFor   func(ctx context.Context, articleID uuid.UUID, role version.Role)
	afterLatestForCounter  uint64
	beforeLatestForCounter uint64
	LatestForMock          mVersionServiceMockLatestFor

	funcRecord          func(ctx context.Context, tx tx.Transaction, req version.RecordReq) (d1 version.DocumentVersion, err error)
	funcRecordOrigin    string
	inspectFuncRecord   func(ctx context.Context, tx tx.Transaction, req version.RecordReq)
	afterRecordCounter  uint64
	beforeRecordCounter uint64
	RecordMock          mVersionServiceMockRecord
}

// NewVersionServiceMock returns a mock for mm_article.VersionService
func NewVersionServiceMock(t minimock.Tester) *VersionServiceMock {
	m := &VersionServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LatestForMock = mVersionServiceMockLatestFor{mock: m}
	m.LatestForMock.callArgs = []*VersionServiceMockLatestForParams{}

	m.RecordMock = mVersionServiceMockRecord{mock: m}
	m.RecordMock.callArgs = []*VersionServiceMockRecordParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mVersionServiceMockLatestFor struct {
	optional           bool
	mock               *VersionServiceMock
	defaultExpectation *VersionServiceMockLatestForExpectation
	expectations       []*VersionServiceMockLatestForExpectation

	callArgs []*VersionServiceMockLatestForParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// VersionServiceMockLatestForExpectation specifies expectation struct of the VersionService.LatestFor
type VersionServiceMockLatestForExpectation struct {
	mock               *VersionServiceMock
	params             *VersionServiceMockLatestForParams
	paramPtrs          *VersionServiceMockLatestForParamPtrs
	expectationOrigins VersionServiceMockLatestForExpectationOrigins
	results            *VersionServiceMockLatestForResults
	returnOrigin       string
	Counter            uint64
}

// VersionServiceMockLatestForParams contains parameters of the VersionService.LatestFor
type VersionServiceMockLatestForParams struct {
	ctx       context.Context
	articleID uuid.UUID
	role      version.Role
}

// VersionServiceMockLatestForParamPtrs contains pointers to parameters of the VersionService.LatestFor
type VersionServiceMockLatestForParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
	role      *version.Role
}

// VersionServiceMockLatestForResults contains results of the VersionService.LatestFor
type VersionServiceMockLatestForResults struct {
	d1  version.DocumentVersion
	err error
}

// VersionServiceMockLatestForOrigins contains origins of expectations of the VersionService.LatestFor
type VersionServiceMockLatestForExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
	originRole      string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLatestFor *mVersionServiceMockLatestFor) Optional() *mVersionServiceMockLatestFor {
	mmLatestFor.optional = true
	return mmLatestFor
}

// Expect sets up expected params for VersionService.LatestFor
func (mmLatestFor *mVersionServiceMockLatestFor) Expect(ctx context.Context, articleID uuid.UUID, role version.Role) *mVersionServiceMockLatestFor {
	if mmLatestFor.mock.funcLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Set")
	}

	if mmLatestFor.defaultExpectation == nil {
		mmLatestFor.defaultExpectation = &VersionServiceMockLatestForExpectation{}
	}

	if mmLatestFor.defaultExpectation.paramPtrs != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by ExpectParams functions")
	}

	mmLatestFor.defaultExpectation.params = &VersionServiceMockLatestForParams{ctx, articleID, role}
	mmLatestFor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLatestFor.expectations {
		if minimock.Equal(e.params, mmLatestFor.defaultExpectation.params) {
			mmLatestFor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLatestFor.defaultExpectation.params)
		}
	}

	return mmLatestFor
}

// ExpectCtxParam1 sets up expected param ctx for VersionService.LatestFor
func (mmLatestFor *mVersionServiceMockLatestFor) ExpectCtxParam1(ctx context.Context) *mVersionServiceMockLatestFor {
	if mmLatestFor.mock.funcLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Set")
	}

	if mmLatestFor.defaultExpectation == nil {
		mmLatestFor.defaultExpectation = &VersionServiceMockLatestForExpectation{}
	}

	if mmLatestFor.defaultExpectation.params != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Expect")
	}

	if mmLatestFor.defaultExpectation.paramPtrs == nil {
		mmLatestFor.defaultExpectation.paramPtrs = &VersionServiceMockLatestForParamPtrs{}
	}
	mmLatestFor.defaultExpectation.paramPtrs.ctx = &ctx
	mmLatestFor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmLatestFor
}

// ExpectArticleIDParam2 sets up expected param articleID for VersionService.LatestFor
func (mmLatestFor *mVersionServiceMockLatestFor) ExpectArticleIDParam2(articleID uuid.UUID) *mVersionServiceMockLatestFor {
	if mmLatestFor.mock.funcLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Set")
	}

	if mmLatestFor.defaultExpectation == nil {
		mmLatestFor.defaultExpectation = &VersionServiceMockLatestForExpectation{}
	}

	if mmLatestFor.defaultExpectation.params != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Expect")
	}

	if mmLatestFor.defaultExpectation.paramPtrs == nil {
		mmLatestFor.defaultExpectation.paramPtrs = &VersionServiceMockLatestForParamPtrs{}
	}
	mmLatestFor.defaultExpectation.paramPtrs.articleID = &articleID
	mmLatestFor.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmLatestFor
}

// ExpectRoleParam3 sets up expected param role for VersionService.LatestFor
func (mmLatestFor *mVersionServiceMockLatestFor) ExpectRoleParam3(role version.Role) *mVersionServiceMockLatestFor {
	if mmLatestFor.mock.funcLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Set")
	}

	if mmLatestFor.defaultExpectation == nil {
		mmLatestFor.defaultExpectation = &VersionServiceMockLatestForExpectation{}
	}

	if mmLatestFor.defaultExpectation.params != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Expect")
	}

	if mmLatestFor.defaultExpectation.paramPtrs == nil {
		mmLatestFor.defaultExpectation.paramPtrs = &VersionServiceMockLatestForParamPtrs{}
	}
	mmLatestFor.defaultExpectation.paramPtrs.role = &role
	mmLatestFor.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmLatestFor
}

// Inspect accepts an inspector function that has same arguments as the VersionService.LatestFor
func (mmLatestFor *mVersionServiceMockLatestFor) Inspect(f func(ctx context.Context, articleID uuid.UUID, role version.Role)) *mVersionServiceMockLatestFor {
	if mmLatestFor.mock.inspectFuncLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("Inspect function is already set for VersionServiceMock.LatestFor")
	}

	mmLatestFor.mock.inspectFuncLatestFor = f

	return mmLatestFor
}

// Return sets up results that will be returned by VersionService.LatestFor
func (mmLatestFor *mVersionServiceMockLatestFor) Return(d1 version.DocumentVersion, err error) *VersionServiceMock {
	if mmLatestFor.mock.funcLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Set")
	}

	if mmLatestFor.defaultExpectation == nil {
		mmLatestFor.defaultExpectation = &VersionServiceMockLatestForExpectation{mock: mmLatestFor.mock}
	}
	mmLatestFor.defaultExpectation.results = &VersionServiceMockLatestForResults{d1, err}
	mmLatestFor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLatestFor.mock
}

// Set uses given function f to mock the VersionService.LatestFor method
func (mmLatestFor *mVersionServiceMockLatestFor) Set(f func(ctx context.Context, articleID uuid.UUID, role version.Role) (d1 version.DocumentVersion, err error)) *VersionServiceMock {
	if mmLatestFor.defaultExpectation != nil {
		mmLatestFor.mock.t.Fatalf("Default expectation is already set for the VersionService.LatestFor method")
	}

	if len(mmLatestFor.expectations) > 0 {
		mmLatestFor.mock.t.Fatalf("Some expectations are already set for the VersionService.LatestFor method")
	}

	mmLatestFor.mock.funcLatestFor = f
	mmLatestFor.mock.funcLatestForOrigin = minimock.CallerInfo(1)
	return mmLatestFor.mock
}

// When sets expectation for the VersionService.LatestFor which will trigger the result defined by the following
// Then helper
func (mmLatestFor *mVersionServiceMockLatestFor) When(ctx context.Context, articleID uuid.UUID, role version.Role) *VersionServiceMockLatestForExpectation {
	if mmLatestFor.mock.funcLatestFor != nil {
		mmLatestFor.mock.t.Fatalf("VersionServiceMock.LatestFor mock is already set by Set")
	}

	expectation := &VersionServiceMockLatestForExpectation{
		mock:               mmLatestFor.mock,
		params:             &VersionServiceMockLatestForParams{ctx, articleID, role},
		expectationOrigins: VersionServiceMockLatestForExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLatestFor.expectations = append(mmLatestFor.expectations, expectation)
	return expectation
}

// Then sets up VersionService.LatestFor return parameters for the expectation previously defined by the When method
func (e *VersionServiceMockLatestForExpectation) Then(d1 version.DocumentVersion, err error) *VersionServiceMock {
	e.results = &VersionServiceMockLatestForResults{d1, err}
	return e.mock
}

// Times sets number of times VersionService.LatestFor should be invoked
func (mmLatestFor *mVersionServiceMockLatestFor) Times(n uint64) *mVersionServiceMockLatestFor {
	if n == 0 {
		mmLatestFor.mock.t.Fatalf("Times of VersionServiceMock.LatestFor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLatestFor.expectedInvocations, n)
	mmLatestFor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLatestFor
}

func (mmLatestFor *mVersionServiceMockLatestFor) invocationsDone() bool {
	if len(mmLatestFor.expectations) == 0 && mmLatestFor.defaultExpectation == nil && mmLatestFor.mock.funcLatestFor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLatestFor.mock.afterLatestForCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLatestFor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// LatestFor implements mm_article.VersionService
func (mmLatestFor *VersionServiceMock) LatestFor(ctx context.Context, articleID uuid.UUID, role version.Role) (d1 version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmLatestFor.beforeLatestForCounter, 1)
	defer mm_atomic.AddUint64(&mmLatestFor.afterLatestForCounter, 1)

	mmLatestFor.t.Helper()

	if mmLatestFor.inspectFuncLatestFor != nil {
		mmLatestFor.inspectFuncLatestFor(ctx, articleID, role)
	}

	mm_params := VersionServiceMockLatestForParams{ctx, articleID, role}

	// Record call args
	mmLatestFor.LatestForMock.mutex.Lock()
	mmLatestFor.LatestForMock.callArgs = append(mmLatestFor.LatestForMock.callArgs, &mm_params)
	mmLatestFor.LatestForMock.mutex.Unlock()

	for _, e := range mmLatestFor.LatestForMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.d1, e.results.err
		}
	}

	if mmLatestFor.LatestForMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLatestFor.LatestForMock.defaultExpectation.Counter, 1)
		mm_want := mmLatestFor.LatestForMock.defaultExpectation.params
		mm_want_ptrs := mmLatestFor.LatestForMock.defaultExpectation.paramPtrs

		mm_got := VersionServiceMockLatestForParams{ctx, articleID, role}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmLatestFor.t.Errorf("VersionServiceMock.LatestFor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestFor.LatestForMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmLatestFor.t.Errorf("VersionServiceMock.LatestFor got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestFor.LatestForMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmLatestFor.t.Errorf("VersionServiceMock.LatestFor got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLatestFor.LatestForMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLatestFor.t.Errorf("VersionServiceMock.LatestFor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLatestFor.LatestForMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLatestFor.LatestForMock.defaultExpectation.results
		if mm_results == nil {
			mmLatestFor.t.Fatal("No results are set for the VersionServiceMock.LatestFor")
		}
		return (*mm_results).d1, (*mm_results).err
	}
	if mmLatestFor.funcLatestFor != nil {
		return mmLatestFor.funcLatestFor(ctx, articleID, role)
	}
	mmLatestFor.t.Fatalf("Unexpected call to VersionServiceMock.LatestFor. %v %v %v", ctx, articleID, role)
	return
}

// LatestForAfterCounter returns a count of finished VersionServiceMock.LatestFor invocations
func (mmLatestFor *VersionServiceMock) LatestForAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLatestFor.afterLatestForCounter)
}

// LatestForBeforeCounter returns a count of VersionServiceMock.LatestFor invocations
func (mmLatestFor *VersionServiceMock) LatestForBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLatestFor.beforeLatestForCounter)
}

// Calls returns a list of arguments used in each call to VersionServiceMock.LatestFor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLatestFor *mVersionServiceMockLatestFor) Calls() []*VersionServiceMockLatestForParams {
	mmLatestFor.mutex.RLock()

	argCopy := make([]*VersionServiceMockLatestForParams, len(mmLatestFor.callArgs))
	copy(argCopy, mmLatestFor.callArgs)

	mmLatestFor.mutex.RUnlock()

	return argCopy
}

// MinimockLatestForDone returns true if the count of the LatestFor invocations corresponds
// the number of defined expectations
func (m *VersionServiceMock) MinimockLatestForDone() bool {
	if m.LatestForMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.LatestForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.LatestForMock.invocationsDone()
}

// MinimockLatestForInspect logs each unmet expectation
func (m *VersionServiceMock) MinimockLatestForInspect() {
	for _, e := range m.LatestForMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to VersionServiceMock.LatestFor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLatestForCounter := mm_atomic.LoadUint64(&m.afterLatestForCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LatestForMock.defaultExpectation != nil && afterLatestForCounter < 1 {
		if m.LatestForMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to VersionServiceMock.LatestFor at\n%s", m.LatestForMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to VersionServiceMock.LatestFor at\n%s with params: %#v", m.LatestForMock.defaultExpectation.expectationOrigins.origin, *m.LatestForMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLatestFor != nil && afterLatestForCounter < 1 {
		m.t.Errorf("Expected call to VersionServiceMock.LatestFor at\n%s", m.funcLatestForOrigin)
	}

	if !m.LatestForMock.invocationsDone() && afterLatestForCounter > 0 {
		m.t.Errorf("Expected %d calls to VersionServiceMock.LatestFor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LatestForMock.expectedInvocations), m.LatestForMock.expectedInvocationsOrigin, afterLatestForCounter)
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

// Record implements mm_article.VersionService
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
			m.MinimockLatestForInspect()

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
		m.MinimockLatestForDone() &&
		m.MinimockRecordDone()
}
