// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.Core -o core_mock.go -n CoreMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
)

// CoreMock implements mm_usecase.Core
type CoreMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcAssignEditor          func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)
	funcAssignEditorOrigin    string
	inspectFuncAssignEditor   func(ctx context.Context, actor article.Actor, req article.AssignReq)
	afterAssignEditorCounter  uint64
	beforeAssignEditorCounter uint64
	AssignEditorMock          mCoreMockAssignEditor

	funcAssignReviewer          func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)
	funcAssignReviewerOrigin    string
	inspectFuncAssignReviewer   func(ctx context.Context, actor article.Actor, req article.AssignReq)
	afterAssignReviewerCounter  uint64
	beforeAssignReviewerCounter uint64
	AssignReviewerMock          mCoreMockAssignReviewer

	funcAssignments          func(ctx context.Context, articleID uuid.UUID) (aa1 []article.Assignment, err error)
	funcAssignmentsOrigin    string
	inspectFuncAssignments   func(ctx context.Context, articleID uuid.UUID)
	afterAssignmentsCounter  uint64
	beforeAssignmentsCounter uint64
	AssignmentsMock          mCoreMockAssignments

	funcDelete          func(ctx context.Context, actor article.Actor, id uuid.UUID) (err error)
	funcDeleteOrigin    string
	inspectFuncDelete   func(ctx context.Context, actor article.Actor, id uuid.UUID)
	afterDeleteCounter  uint64
	beforeDeleteCounter uint64
	DeleteMock          mCoreMockDelete

	funcEditorApprove          func(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error)
	funcEditorApproveOrigin    string
	inspectFuncEditorApprove   func(ctx context.Context, actor article.Actor, req article.ApproveReq)
	afterEditorApproveCounter  uint64
	beforeEditorApproveCounter uint64
	EditorApproveMock          mCoreMockEditorApprove

	funcGet          func(ctx context.Context, id uuid.UUID) (a1 article.Article, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, id uuid.UUID)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mCoreMockGet

	funcGetBySlug          func(ctx context.Context, slug string) (a1 article.Article, err error)
	funcGetBySlugOrigin    string
	inspectFuncGetBySlug   func(ctx context.Context, slug string)
	afterGetBySlugCounter  uint64
	beforeGetBySlugCounter uint64
	GetBySlugMock          mCoreMockGetBySlug

	funcList          func(ctx context.Context, filter article.ListFilter) (aa1 []article.Article, err error)
	funcListOrigin    string
	inspectFuncList   func(ctx context.Context, filter article.ListFilter)
	afterListCounter  uint64
	beforeListCounter uint64
	ListMock          mCoreMockList

	funcPublish          func(ctx context.Context, actor article.Actor, req article.PublishReq) (t1 article.TransitionResult, err error)
	funcPublishOrigin    string
	inspectFuncPublish   func(ctx context.Context, actor article.Actor, req article.PublishReq)
	afterPublishCounter  uint64
	beforePublishCounter uint64
	PublishMock          mCoreMockPublish

	funcReassignEditor          func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)
	funcReassignEditorOrigin    string
	inspectFuncReassignEditor   func(ctx context.Context, actor article.Actor, req article.AssignReq)
	afterReassignEditorCounter  uint64
	beforeReassignEditorCounter uint64
	ReassignEditorMock          mCoreMockReassignEditor

	funcReassignReviewer          func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)
	funcReassignReviewerOrigin    string
	inspectFuncReassignReviewer   func(ctx context.Context, actor article.Actor, req article.AssignReq)
	afterReassignReviewerCounter  uint64
	beforeReassignReviewerCounter uint64
	ReassignReviewerMock          mCoreMockReassignReviewer

	funcReject          func(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error)
	funcRejectOrigin    string
	inspectFuncReject   func(ctx context.Context, actor article.Actor, req article.ApproveReq)
	afterRejectCounter  uint64
	beforeRejectCounter uint64
	RejectMock          mCoreMockReject

	funcReviewerApprove          func(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error)
	funcReviewerApproveOrigin    string
	inspectFuncReviewerApprove   func(ctx context.Context, actor article.Actor, req article.ApproveReq)
	afterReviewerApproveCounter  uint64
	beforeReviewerApproveCounter uint64
	ReviewerApproveMock          mCoreMockReviewerApprove

	funcSetCitation          func(ctx context.Context, actor article.Actor, req article.SetCitationReq) (t1 article.TransitionResult, err error)
	funcSetCitationOrigin    string
	inspectFuncSetCitation   func(ctx context.Context, actor article.Actor, req article.SetCitationReq)
	afterSetCitationCounter  uint64
	beforeSetCitationCounter uint64
	SetCitationMock          mCoreMockSetCitation

	funcSubmit          func(ctx context.Context, req article.SubmitReq) (t1 article.TransitionResult, err error)
	funcSubmitOrigin    string
	inspectFuncSubmit   func(ctx context.Context, req article.SubmitReq)
	afterSubmitCounter  uint64
	beforeSubmitCounter uint64
	SubmitMock          mCoreMockSubmit

	funcUploadEditorCorrection          func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (t1 article.TransitionResult, err error)
	funcUploadEditorCorrectionOrigin    string
	inspectFuncUploadEditorCorrection   func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq)
	afterUploadEditorCorrectionCounter  uint64
	beforeUploadEditorCorrectionCounter uint64
	UploadEditorCorrectionMock          mCoreMockUploadEditorCorrection

	funcUploadReviewerCorrection          func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (t1 article.TransitionResult, err error)
	funcUploadReviewerCorrectionOrigin    string
	inspectFuncUploadReviewerCorrection   func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq)
	afterUploadReviewerCorrectionCounter  uint64
	beforeUploadReviewerCorrectionCounter uint64
	UploadReviewerCorrectionMock          mCoreMockUploadReviewerCorrection
}

// NewCoreMock returns a mock for mm_usecase.Core
func NewCoreMock(t minimock.Tester) *CoreMock {
	m := &CoreMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AssignEditorMock = mCoreMockAssignEditor{mock: m}
	m.AssignEditorMock.callArgs = []*CoreMockAssignEditorParams{}

	m.AssignReviewerMock = mCoreMockAssignReviewer{mock: m}
	m.AssignReviewerMock.callArgs = []*CoreMockAssignReviewerParams{}

	m.AssignmentsMock = mCoreMockAssignments{mock: m}
	m.AssignmentsMock.callArgs = []*CoreMockAssignmentsParams{}

	m.DeleteMock = mCoreMockDelete{mock: m}
	m.DeleteMock.callArgs = []*CoreMockDeleteParams{}

	m.EditorApproveMock = mCoreMockEditorApprove{mock: m}
	m.EditorApproveMock.callArgs = []*CoreMockEditorApproveParams{}

	m.GetMock = mCoreMockGet{mock: m}
	m.GetMock.callArgs = []*CoreMockGetParams{}

	m.GetBySlugMock = mCoreMockGetBySlug{mock: m}
	m.GetBySlugMock.callArgs = []*CoreMockGetBySlugParams{}

	m.ListMock = mCoreMockList{mock: m}
	m.ListMock.callArgs = []*CoreMockListParams{}

	m.PublishMock = mCoreMockPublish{mock: m}
	m.PublishMock.callArgs = []*CoreMockPublishParams{}

	m.ReassignEditorMock = mCoreMockReassignEditor{mock: m}
	m.ReassignEditorMock.callArgs = []*CoreMockReassignEditorParams{}

	m.ReassignReviewerMock = mCoreMockReassignReviewer{mock: m}
	m.ReassignReviewerMock.callArgs = []*CoreMockReassignReviewerParams{}

	m.RejectMock = mCoreMockReject{mock: m}
	m.RejectMock.callArgs = []*CoreMockRejectParams{}

	m.ReviewerApproveMock = mCoreMockReviewerApprove{mock: m}
	m.ReviewerApproveMock.callArgs = []*CoreMockReviewerApproveParams{}

	m.SetCitationMock = mCoreMockSetCitation{mock: m}
	m.SetCitationMock.callArgs = []*CoreMockSetCitationParams{}

	m.SubmitMock = mCoreMockSubmit{mock: m}
	m.SubmitMock.callArgs = []*CoreMockSubmitParams{}

	m.UploadEditorCorrectionMock = mCoreMockUploadEditorCorrection{mock: m}
	m.UploadEditorCorrectionMock.callArgs = []*CoreMockUploadEditorCorrectionParams{}

	m.UploadReviewerCorrectionMock = mCoreMockUploadReviewerCorrection{mock: m}
	m.UploadReviewerCorrectionMock.callArgs = []*CoreMockUploadReviewerCorrectionParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mCoreMockAssignEditor struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockAssignEditorExpectation
	expectations       []*CoreMockAssignEditorExpectation

	callArgs []*CoreMockAssignEditorParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockAssignEditorExpectation specifies expectation struct of the Core.AssignEditor
type CoreMockAssignEditorExpectation struct {
	mock               *CoreMock
	params             *CoreMockAssignEditorParams
	paramPtrs          *CoreMockAssignEditorParamPtrs
	expectationOrigins CoreMockAssignEditorExpectationOrigins
	results            *CoreMockAssignEditorResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockAssignEditorParams contains parameters of the Core.AssignEditor
type CoreMockAssignEditorParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.AssignReq
}

// CoreMockAssignEditorParamPtrs contains pointers to parameters of the Core.AssignEditor
type CoreMockAssignEditorParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.AssignReq
}

// CoreMockAssignEditorResults contains results of the Core.AssignEditor
type CoreMockAssignEditorResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockAssignEditorOrigins contains origins of expectations of the Core.AssignEditor
type CoreMockAssignEditorExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignEditor *mCoreMockAssignEditor) Optional() *mCoreMockAssignEditor {
	mmAssignEditor.optional = true
	return mmAssignEditor
}

// Expect sets up expected params for Core.AssignEditor
func (mmAssignEditor *mCoreMockAssignEditor) Expect(ctx context.Context, actor article.Actor, req article.AssignReq) *mCoreMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &CoreMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.paramPtrs != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by ExpectParams functions")
	}

	mmAssignEditor.defaultExpectation.params = &CoreMockAssignEditorParams{ctx, actor, req}
	mmAssignEditor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignEditor.expectations {
		if minimock.Equal(e.params, mmAssignEditor.defaultExpectation.params) {
			mmAssignEditor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignEditor.defaultExpectation.params)
		}
	}

	return mmAssignEditor
}

// ExpectCtxParam1 sets up expected param ctx for Core.AssignEditor
func (mmAssignEditor *mCoreMockAssignEditor) ExpectCtxParam1(ctx context.Context) *mCoreMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &CoreMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.params != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Expect")
	}

	if mmAssignEditor.defaultExpectation.paramPtrs == nil {
		mmAssignEditor.defaultExpectation.paramPtrs = &CoreMockAssignEditorParamPtrs{}
	}
	mmAssignEditor.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignEditor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignEditor
}

// ExpectActorParam2 sets up expected param actor for Core.AssignEditor
func (mmAssignEditor *mCoreMockAssignEditor) ExpectActorParam2(actor article.Actor) *mCoreMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &CoreMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.params != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Expect")
	}

	if mmAssignEditor.defaultExpectation.paramPtrs == nil {
		mmAssignEditor.defaultExpectation.paramPtrs = &CoreMockAssignEditorParamPtrs{}
	}
	mmAssignEditor.defaultExpectation.paramPtrs.actor = &actor
	mmAssignEditor.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmAssignEditor
}

// ExpectReqParam3 sets up expected param req for Core.AssignEditor
func (mmAssignEditor *mCoreMockAssignEditor) ExpectReqParam3(req article.AssignReq) *mCoreMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &CoreMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.params != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Expect")
	}

	if mmAssignEditor.defaultExpectation.paramPtrs == nil {
		mmAssignEditor.defaultExpectation.paramPtrs = &CoreMockAssignEditorParamPtrs{}
	}
	mmAssignEditor.defaultExpectation.paramPtrs.req = &req
	mmAssignEditor.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmAssignEditor
}

// Inspect accepts an inspector function that has same arguments as the Core.AssignEditor
func (mmAssignEditor *mCoreMockAssignEditor) Inspect(f func(ctx context.Context, actor article.Actor, req article.AssignReq)) *mCoreMockAssignEditor {
	if mmAssignEditor.mock.inspectFuncAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("Inspect function is already set for CoreMock.AssignEditor")
	}

	mmAssignEditor.mock.inspectFuncAssignEditor = f

	return mmAssignEditor
}

// Return sets up results that will be returned by Core.AssignEditor
func (mmAssignEditor *mCoreMockAssignEditor) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &CoreMockAssignEditorExpectation{mock: mmAssignEditor.mock}
	}
	mmAssignEditor.defaultExpectation.results = &CoreMockAssignEditorResults{t1, err}
	mmAssignEditor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignEditor.mock
}

// Set uses given function f to mock the Core.AssignEditor method
func (mmAssignEditor *mCoreMockAssignEditor) Set(f func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmAssignEditor.defaultExpectation != nil {
		mmAssignEditor.mock.t.Fatalf("Default expectation is already set for the Core.AssignEditor method")
	}

	if len(mmAssignEditor.expectations) > 0 {
		mmAssignEditor.mock.t.Fatalf("Some expectations are already set for the Core.AssignEditor method")
	}

	mmAssignEditor.mock.funcAssignEditor = f
	mmAssignEditor.mock.funcAssignEditorOrigin = minimock.CallerInfo(1)
	return mmAssignEditor.mock
}

// When sets expectation for the Core.AssignEditor which will trigger the result defined by the following
// Then helper
func (mmAssignEditor *mCoreMockAssignEditor) When(ctx context.Context, actor article.Actor, req article.AssignReq) *CoreMockAssignEditorExpectation {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("CoreMock.AssignEditor mock is already set by Set")
	}

	expectation := &CoreMockAssignEditorExpectation{
		mock:               mmAssignEditor.mock,
		params:             &CoreMockAssignEditorParams{ctx, actor, req},
		expectationOrigins: CoreMockAssignEditorExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignEditor.expectations = append(mmAssignEditor.expectations, expectation)
	return expectation
}

// Then sets up Core.AssignEditor return parameters for the expectation previously defined by the When method
func (e *CoreMockAssignEditorExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockAssignEditorResults{t1, err}
	return e.mock
}

// Times sets number of times Core.AssignEditor should be invoked
func (mmAssignEditor *mCoreMockAssignEditor) Times(n uint64) *mCoreMockAssignEditor {
	if n == 0 {
		mmAssignEditor.mock.t.Fatalf("Times of CoreMock.AssignEditor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignEditor.expectedInvocations, n)
	mmAssignEditor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignEditor
}

func (mmAssignEditor *mCoreMockAssignEditor) invocationsDone() bool {
	if len(mmAssignEditor.expectations) == 0 && mmAssignEditor.defaultExpectation == nil && mmAssignEditor.mock.funcAssignEditor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignEditor.mock.afterAssignEditorCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignEditor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// AssignEditor implements mm_usecase.Core
func (mmAssignEditor *CoreMock) AssignEditor(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmAssignEditor.beforeAssignEditorCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignEditor.afterAssignEditorCounter, 1)

	mmAssignEditor.t.Helper()

	if mmAssignEditor.inspectFuncAssignEditor != nil {
		mmAssignEditor.inspectFuncAssignEditor(ctx, actor, req)
	}

	mm_params := CoreMockAssignEditorParams{ctx, actor, req}

	// Record call args
	mmAssignEditor.AssignEditorMock.mutex.Lock()
	mmAssignEditor.AssignEditorMock.callArgs = append(mmAssignEditor.AssignEditorMock.callArgs, &mm_params)
	mmAssignEditor.AssignEditorMock.mutex.Unlock()

	for _, e := range mmAssignEditor.AssignEditorMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmAssignEditor.AssignEditorMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAssignEditor.AssignEditorMock.defaultExpectation.Counter, 1)
		mm_want := mmAssignEditor.AssignEditorMock.defaultExpectation.params
		mm_want_ptrs := mmAssignEditor.AssignEditorMock.defaultExpectation.paramPtrs

		mm_got := CoreMockAssignEditorParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignEditor.t.Errorf("CoreMock.AssignEditor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmAssignEditor.t.Errorf("CoreMock.AssignEditor got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmAssignEditor.t.Errorf("CoreMock.AssignEditor got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignEditor.t.Errorf("CoreMock.AssignEditor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignEditor.AssignEditorMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignEditor.t.Fatal("No results are set for the CoreMock.AssignEditor")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmAssignEditor.funcAssignEditor != nil {
		return mmAssignEditor.funcAssignEditor(ctx, actor, req)
	}
	mmAssignEditor.t.Fatalf("Unexpected call to CoreMock.AssignEditor. %v %v %v", ctx, actor, req)
	return
}

// AssignEditorAfterCounter returns a count of finished CoreMock.AssignEditor invocations
func (mmAssignEditor *CoreMock) AssignEditorAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignEditor.afterAssignEditorCounter)
}

// AssignEditorBeforeCounter returns a count of CoreMock.AssignEditor invocations
func (mmAssignEditor *CoreMock) AssignEditorBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignEditor.beforeAssignEditorCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.AssignEditor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignEditor *mCoreMockAssignEditor) Calls() []*CoreMockAssignEditorParams {
	mmAssignEditor.mutex.RLock()

	argCopy := make([]*CoreMockAssignEditorParams, len(mmAssignEditor.callArgs))
	copy(argCopy, mmAssignEditor.callArgs)

	mmAssignEditor.mutex.RUnlock()

	return argCopy
}

// MinimockAssignEditorDone returns true if the count of the AssignEditor invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockAssignEditorDone() bool {
	if m.AssignEditorMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AssignEditorMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AssignEditorMock.invocationsDone()
}

// MinimockAssignEditorInspect logs each unmet expectation
func (m *CoreMock) MinimockAssignEditorInspect() {
	for _, e := range m.AssignEditorMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.AssignEditor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignEditorCounter := mm_atomic.LoadUint64(&m.afterAssignEditorCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignEditorMock.defaultExpectation != nil && afterAssignEditorCounter < 1 {
		if m.AssignEditorMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.AssignEditor at\n%s", m.AssignEditorMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.AssignEditor at\n%s with params: %#v", m.AssignEditorMock.defaultExpectation.expectationOrigins.origin, *m.AssignEditorMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignEditor != nil && afterAssignEditorCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.AssignEditor at\n%s", m.funcAssignEditorOrigin)
	}

	if !m.AssignEditorMock.invocationsDone() && afterAssignEditorCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.AssignEditor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignEditorMock.expectedInvocations), m.AssignEditorMock.expectedInvocationsOrigin, afterAssignEditorCounter)
	}
}

type mCoreMockAssignReviewer struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockAssignReviewerExpectation
	expectations       []*CoreMockAssignReviewerExpectation

	callArgs []*CoreMockAssignReviewerParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockAssignReviewerExpectation specifies expectation struct of the Core.AssignReviewer
type CoreMockAssignReviewerExpectation struct {
	mock               *CoreMock
	params             *CoreMockAssignReviewerParams
	paramPtrs          *CoreMockAssignReviewerParamPtrs
	expectationOrigins CoreMockAssignReviewerExpectationOrigins
	results            *CoreMockAssignReviewerResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockAssignReviewerParams contains parameters of the Core.AssignReviewer
type CoreMockAssignReviewerParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.AssignReq
}

// CoreMockAssignReviewerParamPtrs contains pointers to parameters of the Core.AssignReviewer
type CoreMockAssignReviewerParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.AssignReq
}

// CoreMockAssignReviewerResults contains results of the Core.AssignReviewer
type CoreMockAssignReviewerResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockAssignReviewerOrigins contains origins of expectations of the Core.AssignReviewer
type CoreMockAssignReviewerExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignReviewer *mCoreMockAssignReviewer) Optional() *mCoreMockAssignReviewer {
	mmAssignReviewer.optional = true
	return mmAssignReviewer
}

// Expect sets up expected params for Core.AssignReviewer
func (mmAssignReviewer *mCoreMockAssignReviewer) Expect(ctx context.Context, actor article.Actor, req article.AssignReq) *mCoreMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &CoreMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by ExpectParams functions")
	}

	mmAssignReviewer.defaultExpectation.params = &CoreMockAssignReviewerParams{ctx, actor, req}
	mmAssignReviewer.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignReviewer.expectations {
		if minimock.Equal(e.params, mmAssignReviewer.defaultExpectation.params) {
			mmAssignReviewer.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignReviewer.defaultExpectation.params)
		}
	}

	return mmAssignReviewer
}

// ExpectCtxParam1 sets up expected param ctx for Core.AssignReviewer
func (mmAssignReviewer *mCoreMockAssignReviewer) ExpectCtxParam1(ctx context.Context) *mCoreMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &CoreMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.params != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Expect")
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs == nil {
		mmAssignReviewer.defaultExpectation.paramPtrs = &CoreMockAssignReviewerParamPtrs{}
	}
	mmAssignReviewer.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignReviewer.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignReviewer
}

// ExpectActorParam2 sets up expected param actor for Core.AssignReviewer
func (mmAssignReviewer *mCoreMockAssignReviewer) ExpectActorParam2(actor article.Actor) *mCoreMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &CoreMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.params != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Expect")
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs == nil {
		mmAssignReviewer.defaultExpectation.paramPtrs = &CoreMockAssignReviewerParamPtrs{}
	}
	mmAssignReviewer.defaultExpectation.paramPtrs.actor = &actor
	mmAssignReviewer.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmAssignReviewer
}

// ExpectReqParam3 sets up expected param req for Core.AssignReviewer
func (mmAssignReviewer *mCoreMockAssignReviewer) ExpectReqParam3(req article.AssignReq) *mCoreMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &CoreMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.params != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Expect")
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs == nil {
		mmAssignReviewer.defaultExpectation.paramPtrs = &CoreMockAssignReviewerParamPtrs{}
	}
	mmAssignReviewer.defaultExpectation.paramPtrs.req = &req
	mmAssignReviewer.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmAssignReviewer
}

// Inspect accepts an inspector function that has same arguments as the Core.AssignReviewer
func (mmAssignReviewer *mCoreMockAssignReviewer) Inspect(f func(ctx context.Context, actor article.Actor, req article.AssignReq)) *mCoreMockAssignReviewer {
	if mmAssignReviewer.mock.inspectFuncAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("Inspect function is already set for CoreMock.AssignReviewer")
	}

	mmAssignReviewer.mock.inspectFuncAssignReviewer = f

	return mmAssignReviewer
}

// Return sets up results that will be returned by Core.AssignReviewer
func (mmAssignReviewer *mCoreMockAssignReviewer) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &CoreMockAssignReviewerExpectation{mock: mmAssignReviewer.mock}
	}
	mmAssignReviewer.defaultExpectation.results = &CoreMockAssignReviewerResults{t1, err}
	mmAssignReviewer.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignReviewer.mock
}

// Set uses given function f to mock the Core.AssignReviewer method
func (mmAssignReviewer *mCoreMockAssignReviewer) Set(f func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmAssignReviewer.defaultExpectation != nil {
		mmAssignReviewer.mock.t.Fatalf("Default expectation is already set for the Core.AssignReviewer method")
	}

	if len(mmAssignReviewer.expectations) > 0 {
		mmAssignReviewer.mock.t.Fatalf("Some expectations are already set for the Core.AssignReviewer method")
	}

	mmAssignReviewer.mock.funcAssignReviewer = f
	mmAssignReviewer.mock.funcAssignReviewerOrigin = minimock.CallerInfo(1)
	return mmAssignReviewer.mock
}

// When sets expectation for the Core.AssignReviewer which will trigger the result defined by the following
// Then helper
func (mmAssignReviewer *mCoreMockAssignReviewer) When(ctx context.Context, actor article.Actor, req article.AssignReq) *CoreMockAssignReviewerExpectation {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("CoreMock.AssignReviewer mock is already set by Set")
	}

	expectation := &CoreMockAssignReviewerExpectation{
		mock:               mmAssignReviewer.mock,
		params:             &CoreMockAssignReviewerParams{ctx, actor, req},
		expectationOrigins: CoreMockAssignReviewerExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignReviewer.expectations = append(mmAssignReviewer.expectations, expectation)
	return expectation
}

// Then sets up Core.AssignReviewer return parameters for the expectation previously defined by the When method
func (e *CoreMockAssignReviewerExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockAssignReviewerResults{t1, err}
	return e.mock
}

// Times sets number of times Core.AssignReviewer should be invoked
func (mmAssignReviewer *mCoreMockAssignReviewer) Times(n uint64) *mCoreMockAssignReviewer {
	if n == 0 {
		mmAssignReviewer.mock.t.Fatalf("Times of CoreMock.AssignReviewer mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignReviewer.expectedInvocations, n)
	mmAssignReviewer.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignReviewer
}

func (mmAssignReviewer *mCoreMockAssignReviewer) invocationsDone() bool {
	if len(mmAssignReviewer.expectations) == 0 && mmAssignReviewer.defaultExpectation == nil && mmAssignReviewer.mock.funcAssignReviewer == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignReviewer.mock.afterAssignReviewerCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignReviewer.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// AssignReviewer implements mm_usecase.Core
func (mmAssignReviewer *CoreMock) AssignReviewer(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmAssignReviewer.beforeAssignReviewerCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignReviewer.afterAssignReviewerCounter, 1)

	mmAssignReviewer.t.Helper()

	if mmAssignReviewer.inspectFuncAssignReviewer != nil {
		mmAssignReviewer.inspectFuncAssignReviewer(ctx, actor, req)
	}

	mm_params := CoreMockAssignReviewerParams{ctx, actor, req}

	// Record call args
	mmAssignReviewer.AssignReviewerMock.mutex.Lock()
	mmAssignReviewer.AssignReviewerMock.callArgs = append(mmAssignReviewer.AssignReviewerMock.callArgs, &mm_params)
	mmAssignReviewer.AssignReviewerMock.mutex.Unlock()

	for _, e := range mmAssignReviewer.AssignReviewerMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmAssignReviewer.AssignReviewerMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAssignReviewer.AssignReviewerMock.defaultExpectation.Counter, 1)
		mm_want := mmAssignReviewer.AssignReviewerMock.defaultExpectation.params
		mm_want_ptrs := mmAssignReviewer.AssignReviewerMock.defaultExpectation.paramPtrs

		mm_got := CoreMockAssignReviewerParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignReviewer.t.Errorf("CoreMock.AssignReviewer got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmAssignReviewer.t.Errorf("CoreMock.AssignReviewer got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmAssignReviewer.t.Errorf("CoreMock.AssignReviewer got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignReviewer.t.Errorf("CoreMock.AssignReviewer got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignReviewer.AssignReviewerMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignReviewer.t.Fatal("No results are set for the CoreMock.AssignReviewer")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmAssignReviewer.funcAssignReviewer != nil {
		return mmAssignReviewer.funcAssignReviewer(ctx, actor, req)
	}
	mmAssignReviewer.t.Fatalf("Unexpected call to CoreMock.AssignReviewer. %v %v %v", ctx, actor, req)
	return
}

// AssignReviewerAfterCounter returns a count of finished CoreMock.AssignReviewer invocations
func (mmAssignReviewer *CoreMock) AssignReviewerAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignReviewer.afterAssignReviewerCounter)
}

// AssignReviewerBeforeCounter returns a count of CoreMock.AssignReviewer invocations
func (mmAssignReviewer *CoreMock) AssignReviewerBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignReviewer.beforeAssignReviewerCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.AssignReviewer.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignReviewer *mCoreMockAssignReviewer) Calls() []*CoreMockAssignReviewerParams {
	mmAssignReviewer.mutex.RLock()

	argCopy := make([]*CoreMockAssignReviewerParams, len(mmAssignReviewer.callArgs))
	copy(argCopy, mmAssignReviewer.callArgs)

	mmAssignReviewer.mutex.RUnlock()

	return argCopy
}

// MinimockAssignReviewerDone returns true if the count of the AssignReviewer invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockAssignReviewerDone() bool {
	if m.AssignReviewerMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AssignReviewerMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AssignReviewerMock.invocationsDone()
}

// MinimockAssignReviewerInspect logs each unmet expectation
func (m *CoreMock) MinimockAssignReviewerInspect() {
	for _, e := range m.AssignReviewerMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.AssignReviewer at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignReviewerCounter := mm_atomic.LoadUint64(&m.afterAssignReviewerCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignReviewerMock.defaultExpectation != nil && afterAssignReviewerCounter < 1 {
		if m.AssignReviewerMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.AssignReviewer at\n%s", m.AssignReviewerMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.AssignReviewer at\n%s with params: %#v", m.AssignReviewerMock.defaultExpectation.expectationOrigins.origin, *m.AssignReviewerMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignReviewer != nil && afterAssignReviewerCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.AssignReviewer at\n%s", m.funcAssignReviewerOrigin)
	}

	if !m.AssignReviewerMock.invocationsDone() && afterAssignReviewerCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.AssignReviewer at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignReviewerMock.expectedInvocations), m.AssignReviewerMock.expectedInvocationsOrigin, afterAssignReviewerCounter)
	}
}

type mCoreMockAssignments struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockAssignmentsExpectation
	expectations       []*CoreMockAssignmentsExpectation

	callArgs []*CoreMockAssignmentsParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockAssignmentsExpectation specifies expectation struct of the Core.Assignments
type CoreMockAssignmentsExpectation struct {
	mock               *CoreMock
	params             *CoreMockAssignmentsParams
	paramPtrs          *CoreMockAssignmentsParamPtrs
	expectationOrigins CoreMockAssignmentsExpectationOrigins
	results            *CoreMockAssignmentsResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockAssignmentsParams contains parameters of the Core.Assignments
type CoreMockAssignmentsParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// CoreMockAssignmentsParamPtrs contains pointers to parameters of the Core.Assignments
type CoreMockAssignmentsParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// CoreMockAssignmentsResults contains results of the Core.Assignments
type CoreMockAssignmentsResults struct {
	aa1 []article.Assignment
	err error
}

// CoreMockAssignmentsOrigins contains origins of expectations of the Core.Assignments
type CoreMockAssignmentsExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignments *mCoreMockAssignments) Optional() *mCoreMockAssignments {
	mmAssignments.optional = true
	return mmAssignments
}

// Expect sets up expected params for Core.Assignments
func (mmAssignments *mCoreMockAssignments) Expect(ctx context.Context, articleID uuid.UUID) *mCoreMockAssignments {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &CoreMockAssignmentsExpectation{}
	}

	if mmAssignments.defaultExpectation.paramPtrs != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by ExpectParams functions")
	}

	mmAssignments.defaultExpectation.params = &CoreMockAssignmentsParams{ctx, articleID}
	mmAssignments.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignments.expectations {
		if minimock.Equal(e.params, mmAssignments.defaultExpectation.params) {
			mmAssignments.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignments.defaultExpectation.params)
		}
	}

	return mmAssignments
}

// ExpectCtxParam1 sets up expected param ctx for Core.Assignments
func (mmAssignments *mCoreMockAssignments) ExpectCtxParam1(ctx context.Context) *mCoreMockAssignments {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &CoreMockAssignmentsExpectation{}
	}

	if mmAssignments.defaultExpectation.params != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Expect")
	}

	if mmAssignments.defaultExpectation.paramPtrs == nil {
		mmAssignments.defaultExpectation.paramPtrs = &CoreMockAssignmentsParamPtrs{}
	}
	mmAssignments.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignments.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignments
}

// ExpectArticleIDParam2 sets up expected param articleID for Core.Assignments
func (mmAssignments *mCoreMockAssignments) ExpectArticleIDParam2(articleID uuid.UUID) *mCoreMockAssignments {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &CoreMockAssignmentsExpectation{}
	}

	if mmAssignments.defaultExpectation.params != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Expect")
	}

	if mmAssignments.defaultExpectation.paramPtrs == nil {
		mmAssignments.defaultExpectation.paramPtrs = &CoreMockAssignmentsParamPtrs{}
	}
	mmAssignments.defaultExpectation.paramPtrs.articleID = &articleID
	mmAssignments.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmAssignments
}

// Inspect accepts an inspector function that has same arguments as the Core.Assignments
func (mmAssignments *mCoreMockAssignments) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mCoreMockAssignments {
	if mmAssignments.mock.inspectFuncAssignments != nil {
		mmAssignments.mock.t.Fatalf("Inspect function is already set for CoreMock.Assignments")
	}

	mmAssignments.mock.inspectFuncAssignments = f

	return mmAssignments
}

// Return sets up results that will be returned by Core.Assignments
func (mmAssignments *mCoreMockAssignments) Return(aa1 []article.Assignment, err error) *CoreMock {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &CoreMockAssignmentsExpectation{mock: mmAssignments.mock}
	}
	mmAssignments.defaultExpectation.results = &CoreMockAssignmentsResults{aa1, err}
	mmAssignments.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignments.mock
}

// Set uses given function f to mock the Core.Assignments method
func (mmAssignments *mCoreMockAssignments) Set(f func(ctx context.Context, articleID uuid.UUID) (aa1 []article.Assignment, err error)) *CoreMock {
	if mmAssignments.defaultExpectation != nil {
		mmAssignments.mock.t.Fatalf("Default expectation is already set for the Core.Assignments method")
	}

	if len(mmAssignments.expectations) > 0 {
		mmAssignments.mock.t.Fatalf("Some expectations are already set for the Core.Assignments method")
	}

	mmAssignments.mock.funcAssignments = f
	mmAssignments.mock.funcAssignmentsOrigin = minimock.CallerInfo(1)
	return mmAssignments.mock
}

// When sets expectation for the Core.Assignments which will trigger the result defined by the following
// Then helper
func (mmAssignments *mCoreMockAssignments) When(ctx context.Context, articleID uuid.UUID) *CoreMockAssignmentsExpectation {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("CoreMock.Assignments mock is already set by Set")
	}

	expectation := &CoreMockAssignmentsExpectation{
		mock:               mmAssignments.mock,
		params:             &CoreMockAssignmentsParams{ctx, articleID},
		expectationOrigins: CoreMockAssignmentsExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignments.expectations = append(mmAssignments.expectations, expectation)
	return expectation
}

// Then sets up Core.Assignments return parameters for the expectation previously defined by the When method
func (e *CoreMockAssignmentsExpectation) Then(aa1 []article.Assignment, err error) *CoreMock {
	e.results = &CoreMockAssignmentsResults{aa1, err}
	return e.mock
}

// Times sets number of times Core.Assignments should be invoked
func (mmAssignments *mCoreMockAssignments) Times(n uint64) *mCoreMockAssignments {
	if n == 0 {
		mmAssignments.mock.t.Fatalf("Times of CoreMock.Assignments mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignments.expectedInvocations, n)
	mmAssignments.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignments
}

func (mmAssignments *mCoreMockAssignments) invocationsDone() bool {
	if len(mmAssignments.expectations) == 0 && mmAssignments.defaultExpectation == nil && mmAssignments.mock.funcAssignments == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignments.mock.afterAssignmentsCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignments.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Assignments implements mm_usecase.Core
func (mmAssignments *CoreMock) Assignments(ctx context.Context, articleID uuid.UUID) (aa1 []article.Assignment, err error) {
	mm_atomic.AddUint64(&mmAssignments.beforeAssignmentsCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignments.afterAssignmentsCounter, 1)

	mmAssignments.t.Helper()

	if mmAssignments.inspectFuncAssignments != nil {
		mmAssignments.inspectFuncAssignments(ctx, articleID)
	}

	mm_params := CoreMockAssignmentsParams{ctx, articleID}

	// Record call args
	mmAssignments.AssignmentsMock.mutex.Lock()
	mmAssignments.AssignmentsMock.callArgs = append(mmAssignments.AssignmentsMock.callArgs, &mm_params)
	mmAssignments.AssignmentsMock.mutex.Unlock()

	for _, e := range mmAssignments.AssignmentsMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.aa1, e.results.err
		}
	}

	if mmAssignments.AssignmentsMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAssignments.AssignmentsMock.defaultExpectation.Counter, 1)
		mm_want := mmAssignments.AssignmentsMock.defaultExpectation.params
		mm_want_ptrs := mmAssignments.AssignmentsMock.defaultExpectation.paramPtrs

		mm_got := CoreMockAssignmentsParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignments.t.Errorf("CoreMock.Assignments got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignments.AssignmentsMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmAssignments.t.Errorf("CoreMock.Assignments got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignments.AssignmentsMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignments.t.Errorf("CoreMock.Assignments got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignments.AssignmentsMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignments.AssignmentsMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignments.t.Fatal("No results are set for the CoreMock.Assignments")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmAssignments.funcAssignments != nil {
		return mmAssignments.funcAssignments(ctx, articleID)
	}
	mmAssignments.t.Fatalf("Unexpected call to CoreMock.Assignments. %v %v", ctx, articleID)
	return
}

// AssignmentsAfterCounter returns a count of finished CoreMock.Assignments invocations
func (mmAssignments *CoreMock) AssignmentsAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignments.afterAssignmentsCounter)
}

// AssignmentsBeforeCounter returns a count of CoreMock.Assignments invocations
func (mmAssignments *CoreMock) AssignmentsBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignments.beforeAssignmentsCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Assignments.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignments *mCoreMockAssignments) Calls() []*CoreMockAssignmentsParams {
	mmAssignments.mutex.RLock()

	argCopy := make([]*CoreMockAssignmentsParams, len(mmAssignments.callArgs))
	copy(argCopy, mmAssignments.callArgs)

	mmAssignments.mutex.RUnlock()

	return argCopy
}

// MinimockAssignmentsDone returns true if the count of the Assignments invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockAssignmentsDone() bool {
	if m.AssignmentsMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AssignmentsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AssignmentsMock.invocationsDone()
}

// MinimockAssignmentsInspect logs each unmet expectation
func (m *CoreMock) MinimockAssignmentsInspect() {
	for _, e := range m.AssignmentsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Assignments at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignmentsCounter := mm_atomic.LoadUint64(&m.afterAssignmentsCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignmentsMock.defaultExpectation != nil && afterAssignmentsCounter < 1 {
		if m.AssignmentsMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Assignments at\n%s", m.AssignmentsMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Assignments at\n%s with params: %#v", m.AssignmentsMock.defaultExpectation.expectationOrigins.origin, *m.AssignmentsMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignments != nil && afterAssignmentsCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Assignments at\n%s", m.funcAssignmentsOrigin)
	}

	if !m.AssignmentsMock.invocationsDone() && afterAssignmentsCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Assignments at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignmentsMock.expectedInvocations), m.AssignmentsMock.expectedInvocationsOrigin, afterAssignmentsCounter)
	}
}

type mCoreMockDelete struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockDeleteExpectation
	expectations       []*CoreMockDeleteExpectation

	callArgs []*CoreMockDeleteParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockDeleteExpectation specifies expectation struct of the Core.Delete
type CoreMockDeleteExpectation struct {
	mock               *CoreMock
	params             *CoreMockDeleteParams
	paramPtrs          *CoreMockDeleteParamPtrs
	expectationOrigins CoreMockDeleteExpectationOrigins
	results            *CoreMockDeleteResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockDeleteParams contains parameters of the Core.Delete
type CoreMockDeleteParams struct {
	ctx   context.Context
	actor article.Actor
	id    uuid.UUID
}

// CoreMockDeleteParamPtrs contains pointers to parameters of the Core.Delete
type CoreMockDeleteParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	id    *uuid.UUID
}

// CoreMockDeleteResults contains results of the Core.Delete
type CoreMockDeleteResults struct {
	err error
}

// CoreMockDeleteOrigins contains origins of expectations of the Core.Delete
type CoreMockDeleteExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originId    string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDelete *mCoreMockDelete) Optional() *mCoreMockDelete {
	mmDelete.optional = true
	return mmDelete
}

// Expect sets up expected params for Core.Delete
func (mmDelete *mCoreMockDelete) Expect(ctx context.Context, actor article.Actor, id uuid.UUID) *mCoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &CoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.paramPtrs != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by ExpectParams functions")
	}

	mmDelete.defaultExpectation.params = &CoreMockDeleteParams{ctx, actor, id}
	mmDelete.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDelete.expectations {
		if minimock.Equal(e.params, mmDelete.defaultExpectation.params) {
			mmDelete.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDelete.defaultExpectation.params)
		}
	}

	return mmDelete
}

// ExpectCtxParam1 sets up expected param ctx for Core.Delete
func (mmDelete *mCoreMockDelete) ExpectCtxParam1(ctx context.Context) *mCoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &CoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &CoreMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.ctx = &ctx
	mmDelete.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDelete
}

// ExpectActorParam2 sets up expected param actor for Core.Delete
func (mmDelete *mCoreMockDelete) ExpectActorParam2(actor article.Actor) *mCoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &CoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &CoreMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.actor = &actor
	mmDelete.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmDelete
}

// ExpectIdParam3 sets up expected param id for Core.Delete
func (mmDelete *mCoreMockDelete) ExpectIdParam3(id uuid.UUID) *mCoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &CoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &CoreMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.id = &id
	mmDelete.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmDelete
}

// Inspect accepts an inspector function that has same arguments as the Core.Delete
func (mmDelete *mCoreMockDelete) Inspect(f func(ctx context.Context, actor article.Actor, id uuid.UUID)) *mCoreMockDelete {
	if mmDelete.mock.inspectFuncDelete != nil {
		mmDelete.mock.t.Fatalf("Inspect function is already set for CoreMock.Delete")
	}

	mmDelete.mock.inspectFuncDelete = f

	return mmDelete
}

// Return sets up results that will be returned by Core.Delete
func (mmDelete *mCoreMockDelete) Return(err error) *CoreMock {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &CoreMockDeleteExpectation{mock: mmDelete.mock}
	}
	mmDelete.defaultExpectation.results = &CoreMockDeleteResults{err}
	mmDelete.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// Set uses given function f to mock the Core.Delete method
func (mmDelete *mCoreMockDelete) Set(f func(ctx context.Context, actor article.Actor, id uuid.UUID) (err error)) *CoreMock {
	if mmDelete.defaultExpectation != nil {
		mmDelete.mock.t.Fatalf("Default expectation is already set for the Core.Delete method")
	}

	if len(mmDelete.expectations) > 0 {
		mmDelete.mock.t.Fatalf("Some expectations are already set for the Core.Delete method")
	}

	mmDelete.mock.funcDelete = f
	mmDelete.mock.funcDeleteOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// When sets expectation for the Core.Delete which will trigger the result defined by the following
// Then helper
func (mmDelete *mCoreMockDelete) When(ctx context.Context, actor article.Actor, id uuid.UUID) *CoreMockDeleteExpectation {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("CoreMock.Delete mock is already set by Set")
	}

	expectation := &CoreMockDeleteExpectation{
		mock:               mmDelete.mock,
		params:             &CoreMockDeleteParams{ctx, actor, id},
		expectationOrigins: CoreMockDeleteExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDelete.expectations = append(mmDelete.expectations, expectation)
	return expectation
}

// Then sets up Core.Delete return parameters for the expectation previously defined by the When method
func (e *CoreMockDeleteExpectation) Then(err error) *CoreMock {
	e.results = &CoreMockDeleteResults{err}
	return e.mock
}

// Times sets number of times Core.Delete should be invoked
func (mmDelete *mCoreMockDelete) Times(n uint64) *mCoreMockDelete {
	if n == 0 {
		mmDelete.mock.t.Fatalf("Times of CoreMock.Delete mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDelete.expectedInvocations, n)
	mmDelete.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDelete
}

func (mmDelete *mCoreMockDelete) invocationsDone() bool {
	if len(mmDelete.expectations) == 0 && mmDelete.defaultExpectation == nil && mmDelete.mock.funcDelete == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDelete.mock.afterDeleteCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDelete.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Delete implements mm_usecase.Core
func (mmDelete *CoreMock) Delete(ctx context.Context, actor article.Actor, id uuid.UUID) (err error) {
	mm_atomic.AddUint64(&mmDelete.beforeDeleteCounter, 1)
	defer mm_atomic.AddUint64(&mmDelete.afterDeleteCounter, 1)

	mmDelete.t.Helper()

	if mmDelete.inspectFuncDelete != nil {
		mmDelete.inspectFuncDelete(ctx, actor, id)
	}

	mm_params := CoreMockDeleteParams{ctx, actor, id}

	// Record call args
	mmDelete.DeleteMock.mutex.Lock()
	mmDelete.DeleteMock.callArgs = append(mmDelete.DeleteMock.callArgs, &mm_params)
	mmDelete.DeleteMock.mutex.Unlock()

	for _, e := range mmDelete.DeleteMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmDelete.DeleteMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDelete.DeleteMock.defaultExpectation.Counter, 1)
		mm_want := mmDelete.DeleteMock.defaultExpectation.params
		mm_want_ptrs := mmDelete.DeleteMock.defaultExpectation.paramPtrs

		mm_got := CoreMockDeleteParams{ctx, actor, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDelete.t.Errorf("CoreMock.Delete got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmDelete.t.Errorf("CoreMock.Delete got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmDelete.t.Errorf("CoreMock.Delete got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDelete.t.Errorf("CoreMock.Delete got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDelete.DeleteMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDelete.DeleteMock.defaultExpectation.results
		if mm_results == nil {
			mmDelete.t.Fatal("No results are set for the CoreMock.Delete")
		}
		return (*mm_results).err
	}
	if mmDelete.funcDelete != nil {
		return mmDelete.funcDelete(ctx, actor, id)
	}
	mmDelete.t.Fatalf("Unexpected call to CoreMock.Delete. %v %v %v", ctx, actor, id)
	return
}

// DeleteAfterCounter returns a count of finished CoreMock.Delete invocations
func (mmDelete *CoreMock) DeleteAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.afterDeleteCounter)
}

// DeleteBeforeCounter returns a count of CoreMock.Delete invocations
func (mmDelete *CoreMock) DeleteBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.beforeDeleteCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Delete.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDelete *mCoreMockDelete) Calls() []*CoreMockDeleteParams {
	mmDelete.mutex.RLock()

	argCopy := make([]*CoreMockDeleteParams, len(mmDelete.callArgs))
	copy(argCopy, mmDelete.callArgs)

	mmDelete.mutex.RUnlock()

	return argCopy
}

// MinimockDeleteDone returns true if the count of the Delete invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockDeleteDone() bool {
	if m.DeleteMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DeleteMock.invocationsDone()
}

// MinimockDeleteInspect logs each unmet expectation
func (m *CoreMock) MinimockDeleteInspect() {
	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Delete at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDeleteCounter := mm_atomic.LoadUint64(&m.afterDeleteCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DeleteMock.defaultExpectation != nil && afterDeleteCounter < 1 {
		if m.DeleteMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Delete at\n%s", m.DeleteMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Delete at\n%s with params: %#v", m.DeleteMock.defaultExpectation.expectationOrigins.origin, *m.DeleteMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDelete != nil && afterDeleteCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Delete at\n%s", m.funcDeleteOrigin)
	}

	if !m.DeleteMock.invocationsDone() && afterDeleteCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Delete at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DeleteMock.expectedInvocations), m.DeleteMock.expectedInvocationsOrigin, afterDeleteCounter)
	}
}

type mCoreMockEditorApprove struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockEditorApproveExpectation
	expectations       []*CoreMockEditorApproveExpectation

	callArgs []*CoreMockEditorApproveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockEditorApproveExpectation specifies expectation struct of the Core.EditorApprove
type CoreMockEditorApproveExpectation struct {
	mock               *CoreMock
	params             *CoreMockEditorApproveParams
	paramPtrs          *CoreMockEditorApproveParamPtrs
	expectationOrigins CoreMockEditorApproveExpectationOrigins
	results            *CoreMockEditorApproveResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockEditorApproveParams contains parameters of the Core.EditorApprove
type CoreMockEditorApproveParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.ApproveReq
}

// CoreMockEditorApproveParamPtrs contains pointers to parameters of the Core.EditorApprove
type CoreMockEditorApproveParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.ApproveReq
}

// CoreMockEditorApproveResults contains results of the Core.EditorApprove
type CoreMockEditorApproveResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockEditorApproveOrigins contains origins of expectations of the Core.EditorApprove
type CoreMockEditorApproveExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmEditorApprove *mCoreMockEditorApprove) Optional() *mCoreMockEditorApprove {
	mmEditorApprove.optional = true
	return mmEditorApprove
}

// Expect sets up expected params for Core.EditorApprove
func (mmEditorApprove *mCoreMockEditorApprove) Expect(ctx context.Context, actor article.Actor, req article.ApproveReq) *mCoreMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &CoreMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.paramPtrs != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by ExpectParams functions")
	}

	mmEditorApprove.defaultExpectation.params = &CoreMockEditorApproveParams{ctx, actor, req}
	mmEditorApprove.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmEditorApprove.expectations {
		if minimock.Equal(e.params, mmEditorApprove.defaultExpectation.params) {
			mmEditorApprove.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmEditorApprove.defaultExpectation.params)
		}
	}

	return mmEditorApprove
}

// ExpectCtxParam1 sets up expected param ctx for Core.EditorApprove
func (mmEditorApprove *mCoreMockEditorApprove) ExpectCtxParam1(ctx context.Context) *mCoreMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &CoreMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.params != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Expect")
	}

	if mmEditorApprove.defaultExpectation.paramPtrs == nil {
		mmEditorApprove.defaultExpectation.paramPtrs = &CoreMockEditorApproveParamPtrs{}
	}
	mmEditorApprove.defaultExpectation.paramPtrs.ctx = &ctx
	mmEditorApprove.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmEditorApprove
}

// ExpectActorParam2 sets up expected param actor for Core.EditorApprove
func (mmEditorApprove *mCoreMockEditorApprove) ExpectActorParam2(actor article.Actor) *mCoreMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &CoreMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.params != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Expect")
	}

	if mmEditorApprove.defaultExpectation.paramPtrs == nil {
		mmEditorApprove.defaultExpectation.paramPtrs = &CoreMockEditorApproveParamPtrs{}
	}
	mmEditorApprove.defaultExpectation.paramPtrs.actor = &actor
	mmEditorApprove.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmEditorApprove
}

// ExpectReqParam3 sets up expected param req for Core.EditorApprove
func (mmEditorApprove *mCoreMockEditorApprove) ExpectReqParam3(req article.ApproveReq) *mCoreMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &CoreMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.params != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Expect")
	}

	if mmEditorApprove.defaultExpectation.paramPtrs == nil {
		mmEditorApprove.defaultExpectation.paramPtrs = &CoreMockEditorApproveParamPtrs{}
	}
	mmEditorApprove.defaultExpectation.paramPtrs.req = &req
	mmEditorApprove.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmEditorApprove
}

// Inspect accepts an inspector function that has same arguments as the Core.EditorApprove
func (mmEditorApprove *mCoreMockEditorApprove) Inspect(f func(ctx context.Context, actor article.Actor, req article.ApproveReq)) *mCoreMockEditorApprove {
	if mmEditorApprove.mock.inspectFuncEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("Inspect function is already set for CoreMock.EditorApprove")
	}

	mmEditorApprove.mock.inspectFuncEditorApprove = f

	return mmEditorApprove
}

// Return sets up results that will be returned by Core.EditorApprove
func (mmEditorApprove *mCoreMockEditorApprove) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &CoreMockEditorApproveExpectation{mock: mmEditorApprove.mock}
	}
	mmEditorApprove.defaultExpectation.results = &CoreMockEditorApproveResults{t1, err}
	mmEditorApprove.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmEditorApprove.mock
}

// Set uses given function f to mock the Core.EditorApprove method
func (mmEditorApprove *mCoreMockEditorApprove) Set(f func(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmEditorApprove.defaultExpectation != nil {
		mmEditorApprove.mock.t.Fatalf("Default expectation is already set for the Core.EditorApprove method")
	}

	if len(mmEditorApprove.expectations) > 0 {
		mmEditorApprove.mock.t.Fatalf("Some expectations are already set for the Core.EditorApprove method")
	}

	mmEditorApprove.mock.funcEditorApprove = f
	mmEditorApprove.mock.funcEditorApproveOrigin = minimock.CallerInfo(1)
	return mmEditorApprove.mock
}

// When sets expectation for the Core.EditorApprove which will trigger the result defined by the following
// Then helper
func (mmEditorApprove *mCoreMockEditorApprove) When(ctx context.Context, actor article.Actor, req article.ApproveReq) *CoreMockEditorApproveExpectation {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("CoreMock.EditorApprove mock is already set by Set")
	}

	expectation := &CoreMockEditorApproveExpectation{
		mock:               mmEditorApprove.mock,
		params:             &CoreMockEditorApproveParams{ctx, actor, req},
		expectationOrigins: CoreMockEditorApproveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmEditorApprove.expectations = append(mmEditorApprove.expectations, expectation)
	return expectation
}

// Then sets up Core.EditorApprove return parameters for the expectation previously defined by the When method
func (e *CoreMockEditorApproveExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockEditorApproveResults{t1, err}
	return e.mock
}

// Times sets number of times Core.EditorApprove should be invoked
func (mmEditorApprove *mCoreMockEditorApprove) Times(n uint64) *mCoreMockEditorApprove {
	if n == 0 {
		mmEditorApprove.mock.t.Fatalf("Times of CoreMock.EditorApprove mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmEditorApprove.expectedInvocations, n)
	mmEditorApprove.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmEditorApprove
}

func (mmEditorApprove *mCoreMockEditorApprove) invocationsDone() bool {
	if len(mmEditorApprove.expectations) == 0 && mmEditorApprove.defaultExpectation == nil && mmEditorApprove.mock.funcEditorApprove == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmEditorApprove.mock.afterEditorApproveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmEditorApprove.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// EditorApprove implements mm_usecase.Core
func (mmEditorApprove *CoreMock) EditorApprove(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmEditorApprove.beforeEditorApproveCounter, 1)
	defer mm_atomic.AddUint64(&mmEditorApprove.afterEditorApproveCounter, 1)

	mmEditorApprove.t.Helper()

	if mmEditorApprove.inspectFuncEditorApprove != nil {
		mmEditorApprove.inspectFuncEditorApprove(ctx, actor, req)
	}

	mm_params := CoreMockEditorApproveParams{ctx, actor, req}

	// Record call args
	mmEditorApprove.EditorApproveMock.mutex.Lock()
	mmEditorApprove.EditorApproveMock.callArgs = append(mmEditorApprove.EditorApproveMock.callArgs, &mm_params)
	mmEditorApprove.EditorApproveMock.mutex.Unlock()

	for _, e := range mmEditorApprove.EditorApproveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmEditorApprove.EditorApproveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmEditorApprove.EditorApproveMock.defaultExpectation.Counter, 1)
		mm_want := mmEditorApprove.EditorApproveMock.defaultExpectation.params
		mm_want_ptrs := mmEditorApprove.EditorApproveMock.defaultExpectation.paramPtrs

		mm_got := CoreMockEditorApproveParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmEditorApprove.t.Errorf("CoreMock.EditorApprove got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmEditorApprove.t.Errorf("CoreMock.EditorApprove got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmEditorApprove.t.Errorf("CoreMock.EditorApprove got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmEditorApprove.t.Errorf("CoreMock.EditorApprove got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmEditorApprove.EditorApproveMock.defaultExpectation.results
		if mm_results == nil {
			mmEditorApprove.t.Fatal("No results are set for the CoreMock.EditorApprove")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmEditorApprove.funcEditorApprove != nil {
		return mmEditorApprove.funcEditorApprove(ctx, actor, req)
	}
	mmEditorApprove.t.Fatalf("Unexpected call to CoreMock.EditorApprove. %v %v %v", ctx, actor, req)
	return
}

// EditorApproveAfterCounter returns a count of finished CoreMock.EditorApprove invocations
func (mmEditorApprove *CoreMock) EditorApproveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmEditorApprove.afterEditorApproveCounter)
}

// EditorApproveBeforeCounter returns a count of CoreMock.EditorApprove invocations
func (mmEditorApprove *CoreMock) EditorApproveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmEditorApprove.beforeEditorApproveCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.EditorApprove.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmEditorApprove *mCoreMockEditorApprove) Calls() []*CoreMockEditorApproveParams {
	mmEditorApprove.mutex.RLock()

	argCopy := make([]*CoreMockEditorApproveParams, len(mmEditorApprove.callArgs))
	copy(argCopy, mmEditorApprove.callArgs)

	mmEditorApprove.mutex.RUnlock()

	return argCopy
}

// MinimockEditorApproveDone returns true if the count of the EditorApprove invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockEditorApproveDone() bool {
	if m.EditorApproveMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.EditorApproveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.EditorApproveMock.invocationsDone()
}

// MinimockEditorApproveInspect logs each unmet expectation
func (m *CoreMock) MinimockEditorApproveInspect() {
	for _, e := range m.EditorApproveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.EditorApprove at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterEditorApproveCounter := mm_atomic.LoadUint64(&m.afterEditorApproveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.EditorApproveMock.defaultExpectation != nil && afterEditorApproveCounter < 1 {
		if m.EditorApproveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.EditorApprove at\n%s", m.EditorApproveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.EditorApprove at\n%s with params: %#v", m.EditorApproveMock.defaultExpectation.expectationOrigins.origin, *m.EditorApproveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcEditorApprove != nil && afterEditorApproveCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.EditorApprove at\n%s", m.funcEditorApproveOrigin)
	}

	if !m.EditorApproveMock.invocationsDone() && afterEditorApproveCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.EditorApprove at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.EditorApproveMock.expectedInvocations), m.EditorApproveMock.expectedInvocationsOrigin, afterEditorApproveCounter)
	}
}

type mCoreMockGet struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockGetExpectation
	expectations       []*CoreMockGetExpectation

	callArgs []*CoreMockGetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockGetExpectation specifies expectation struct of the Core.Get
type CoreMockGetExpectation struct {
	mock               *CoreMock
	params             *CoreMockGetParams
	paramPtrs          *CoreMockGetParamPtrs
	expectationOrigins CoreMockGetExpectationOrigins
	results            *CoreMockGetResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockGetParams contains parameters of the Core.Get
type CoreMockGetParams struct {
	ctx context.Context
	id  uuid.UUID
}

// CoreMockGetParamPtrs contains pointers to parameters of the Core.Get
type CoreMockGetParamPtrs struct {
	ctx *context.Context
	id  *uuid.UUID
}

// CoreMockGetResults contains results of the Core.Get
type CoreMockGetResults struct {
	a1  article.Article
	err error
}

// CoreMockGetOrigins contains origins of expectations of the Core.Get
type CoreMockGetExpectationOrigins struct {
	origin    string
	originCtx string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGet *mCoreMockGet) Optional() *mCoreMockGet {
	mmGet.optional = true
	return mmGet
}

// Expect sets up expected params for Core.Get
func (mmGet *mCoreMockGet) Expect(ctx context.Context, id uuid.UUID) *mCoreMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CoreMockGetExpectation{}
	}

	if mmGet.defaultExpectation.paramPtrs != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by ExpectParams functions")
	}

	mmGet.defaultExpectation.params = &CoreMockGetParams{ctx, id}
	mmGet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGet.expectations {
		if minimock.Equal(e.params, mmGet.defaultExpectation.params) {
			mmGet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGet.defaultExpectation.params)
		}
	}

	return mmGet
}

// ExpectCtxParam1 sets up expected param ctx for Core.Get
func (mmGet *mCoreMockGet) ExpectCtxParam1(ctx context.Context) *mCoreMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CoreMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &CoreMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.ctx = &ctx
	mmGet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGet
}

// ExpectIdParam2 sets up expected param id for Core.Get
func (mmGet *mCoreMockGet) ExpectIdParam2(id uuid.UUID) *mCoreMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CoreMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &CoreMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.id = &id
	mmGet.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmGet
}

// Inspect accepts an inspector function that has same arguments as the Core.Get
func (mmGet *mCoreMockGet) Inspect(f func(ctx context.Context, id uuid.UUID)) *mCoreMockGet {
	if mmGet.mock.inspectFuncGet != nil {
		mmGet.mock.t.Fatalf("Inspect function is already set for CoreMock.Get")
	}

	mmGet.mock.inspectFuncGet = f

	return mmGet
}

// Return sets up results that will be returned by Core.Get
func (mmGet *mCoreMockGet) Return(a1 article.Article, err error) *CoreMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CoreMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &CoreMockGetResults{a1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Core.Get method
func (mmGet *mCoreMockGet) Set(f func(ctx context.Context, id uuid.UUID) (a1 article.Article, err error)) *CoreMock {
	if mmGet.defaultExpectation != nil {
		mmGet.mock.t.Fatalf("Default expectation is already set for the Core.Get method")
	}

	if len(mmGet.expectations) > 0 {
		mmGet.mock.t.Fatalf("Some expectations are already set for the Core.Get method")
	}

	mmGet.mock.funcGet = f
	mmGet.mock.funcGetOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// When sets expectation for the Core.Get which will trigger the result defined by the following
// Then helper
func (mmGet *mCoreMockGet) When(ctx context.Context, id uuid.UUID) *CoreMockGetExpectation {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CoreMock.Get mock is already set by Set")
	}

	expectation := &CoreMockGetExpectation{
		mock:               mmGet.mock,
		params:             &CoreMockGetParams{ctx, id},
		expectationOrigins: CoreMockGetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGet.expectations = append(mmGet.expectations, expectation)
	return expectation
}

// Then sets up Core.Get return parameters for the expectation previously defined by the When method
func (e *CoreMockGetExpectation) Then(a1 article.Article, err error) *CoreMock {
	e.results = &CoreMockGetResults{a1, err}
	return e.mock
}

// Times sets number of times Core.Get should be invoked
func (mmGet *mCoreMockGet) Times(n uint64) *mCoreMockGet {
	if n == 0 {
		mmGet.mock.t.Fatalf("Times of CoreMock.Get mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGet.expectedInvocations, n)
	mmGet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGet
}

func (mmGet *mCoreMockGet) invocationsDone() bool {
	if len(mmGet.expectations) == 0 && mmGet.defaultExpectation == nil && mmGet.mock.funcGet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGet.mock.afterGetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Get implements mm_usecase.Core
func (mmGet *CoreMock) Get(ctx context.Context, id uuid.UUID) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmGet.beforeGetCounter, 1)
	defer mm_atomic.AddUint64(&mmGet.afterGetCounter, 1)

	mmGet.t.Helper()

	if mmGet.inspectFuncGet != nil {
		mmGet.inspectFuncGet(ctx, id)
	}

	mm_params := CoreMockGetParams{ctx, id}

	// Record call args
	mmGet.GetMock.mutex.Lock()
	mmGet.GetMock.callArgs = append(mmGet.GetMock.callArgs, &mm_params)
	mmGet.GetMock.mutex.Unlock()

	for _, e := range mmGet.GetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmGet.GetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGet.GetMock.defaultExpectation.Counter, 1)
		mm_want := mmGet.GetMock.defaultExpectation.params
		mm_want_ptrs := mmGet.GetMock.defaultExpectation.paramPtrs

		mm_got := CoreMockGetParams{ctx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGet.t.Errorf("CoreMock.Get got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmGet.t.Errorf("CoreMock.Get got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGet.t.Errorf("CoreMock.Get got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGet.GetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGet.GetMock.defaultExpectation.results
		if mm_results == nil {
			mmGet.t.Fatal("No results are set for the CoreMock.Get")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmGet.funcGet != nil {
		return mmGet.funcGet(ctx, id)
	}
	mmGet.t.Fatalf("Unexpected call to CoreMock.Get. %v %v", ctx, id)
	return
}

// GetAfterCounter returns a count of finished CoreMock.Get invocations
func (mmGet *CoreMock) GetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.afterGetCounter)
}

// GetBeforeCounter returns a count of CoreMock.Get invocations
func (mmGet *CoreMock) GetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.beforeGetCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Get.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGet *mCoreMockGet) Calls() []*CoreMockGetParams {
	mmGet.mutex.RLock()

	argCopy := make([]*CoreMockGetParams, len(mmGet.callArgs))
	copy(argCopy, mmGet.callArgs)

	mmGet.mutex.RUnlock()

	return argCopy
}

// MinimockGetDone returns true if the count of the Get invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockGetDone() bool {
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
func (m *CoreMock) MinimockGetInspect() {
	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Get at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetCounter := mm_atomic.LoadUint64(&m.afterGetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetMock.defaultExpectation != nil && afterGetCounter < 1 {
		if m.GetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Get at\n%s", m.GetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Get at\n%s with params: %#v", m.GetMock.defaultExpectation.expectationOrigins.origin, *m.GetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGet != nil && afterGetCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Get at\n%s", m.funcGetOrigin)
	}

	if !m.GetMock.invocationsDone() && afterGetCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Get at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetMock.expectedInvocations), m.GetMock.expectedInvocationsOrigin, afterGetCounter)
	}
}

type mCoreMockGetBySlug struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockGetBySlugExpectation
	expectations       []*CoreMockGetBySlugExpectation

	callArgs []*CoreMockGetBySlugParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockGetBySlugExpectation specifies expectation struct of the Core.GetBySlug
type CoreMockGetBySlugExpectation struct {
	mock               *CoreMock
	params             *CoreMockGetBySlugParams
	paramPtrs          *CoreMockGetBySlugParamPtrs
	expectationOrigins CoreMockGetBySlugExpectationOrigins
	results            *CoreMockGetBySlugResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockGetBySlugParams contains parameters of the Core.GetBySlug
type CoreMockGetBySlugParams struct {
	ctx  context.Context
	slug string
}

// CoreMockGetBySlugParamPtrs contains pointers to parameters of the Core.GetBySlug
type CoreMockGetBySlugParamPtrs struct {
	ctx  *context.Context
	slug *string
}

// CoreMockGetBySlugResults contains results of the Core.GetBySlug
type CoreMockGetBySlugResults struct {
	a1  article.Article
	err error
}

// CoreMockGetBySlugOrigins contains origins of expectations of the Core.GetBySlug
type CoreMockGetBySlugExpectationOrigins struct {
	origin     string
	originCtx  string
	originSlug string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetBySlug *mCoreMockGetBySlug) Optional() *mCoreMockGetBySlug {
	mmGetBySlug.optional = true
	return mmGetBySlug
}

// Expect sets up expected params for Core.GetBySlug
func (mmGetBySlug *mCoreMockGetBySlug) Expect(ctx context.Context, slug string) *mCoreMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &CoreMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.paramPtrs != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by ExpectParams functions")
	}

	mmGetBySlug.defaultExpectation.params = &CoreMockGetBySlugParams{ctx, slug}
	mmGetBySlug.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetBySlug.expectations {
		if minimock.Equal(e.params, mmGetBySlug.defaultExpectation.params) {
			mmGetBySlug.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetBySlug.defaultExpectation.params)
		}
	}

	return mmGetBySlug
}

// ExpectCtxParam1 sets up expected param ctx for Core.GetBySlug
func (mmGetBySlug *mCoreMockGetBySlug) ExpectCtxParam1(ctx context.Context) *mCoreMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &CoreMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.params != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Expect")
	}

	if mmGetBySlug.defaultExpectation.paramPtrs == nil {
		mmGetBySlug.defaultExpectation.paramPtrs = &CoreMockGetBySlugParamPtrs{}
	}
	mmGetBySlug.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetBySlug.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetBySlug
}

// ExpectSlugParam2 sets up expected param slug for Core.GetBySlug
func (mmGetBySlug *mCoreMockGetBySlug) ExpectSlugParam2(slug string) *mCoreMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &CoreMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.params != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Expect")
	}

	if mmGetBySlug.defaultExpectation.paramPtrs == nil {
		mmGetBySlug.defaultExpectation.paramPtrs = &CoreMockGetBySlugParamPtrs{}
	}
	mmGetBySlug.defaultExpectation.paramPtrs.slug = &slug
	mmGetBySlug.defaultExpectation.expectationOrigins.originSlug = minimock.CallerInfo(1)

	return mmGetBySlug
}

// Inspect accepts an inspector function that has same arguments as the Core.GetBySlug
func (mmGetBySlug *mCoreMockGetBySlug) Inspect(f func(ctx context.Context, slug string)) *mCoreMockGetBySlug {
	if mmGetBySlug.mock.inspectFuncGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("Inspect function is already set for CoreMock.GetBySlug")
	}

	mmGetBySlug.mock.inspectFuncGetBySlug = f

	return mmGetBySlug
}

// Return sets up results that will be returned by Core.GetBySlug
func (mmGetBySlug *mCoreMockGetBySlug) Return(a1 article.Article, err error) *CoreMock {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &CoreMockGetBySlugExpectation{mock: mmGetBySlug.mock}
	}
	mmGetBySlug.defaultExpectation.results = &CoreMockGetBySlugResults{a1, err}
	mmGetBySlug.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetBySlug.mock
}

// Set uses given function f to mock the Core.GetBySlug method
func (mmGetBySlug *mCoreMockGetBySlug) Set(f func(ctx context.Context, slug string) (a1 article.Article, err error)) *CoreMock {
	if mmGetBySlug.defaultExpectation != nil {
		mmGetBySlug.mock.t.Fatalf("Default expectation is already set for the Core.GetBySlug method")
	}

	if len(mmGetBySlug.expectations) > 0 {
		mmGetBySlug.mock.t.Fatalf("Some expectations are already set for the Core.GetBySlug method")
	}

	mmGetBySlug.mock.funcGetBySlug = f
	mmGetBySlug.mock.funcGetBySlugOrigin = minimock.CallerInfo(1)
	return mmGetBySlug.mock
}

// When sets expectation for the Core.GetBySlug which will trigger the result defined by the following
// Then helper
func (mmGetBySlug *mCoreMockGetBySlug) When(ctx context.Context, slug string) *CoreMockGetBySlugExpectation {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("CoreMock.GetBySlug mock is already set by Set")
	}

	expectation := &CoreMockGetBySlugExpectation{
		mock:               mmGetBySlug.mock,
		params:             &CoreMockGetBySlugParams{ctx, slug},
		expectationOrigins: CoreMockGetBySlugExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetBySlug.expectations = append(mmGetBySlug.expectations, expectation)
	return expectation
}

// Then sets up Core.GetBySlug return parameters for the expectation previously defined by the When method
func (e *CoreMockGetBySlugExpectation) Then(a1 article.Article, err error) *CoreMock {
	e.results = &CoreMockGetBySlugResults{a1, err}
	return e.mock
}

// Times sets number of times Core.GetBySlug should be invoked
func (mmGetBySlug *mCoreMockGetBySlug) Times(n uint64) *mCoreMockGetBySlug {
	if n == 0 {
		mmGetBySlug.mock.t.Fatalf("Times of CoreMock.GetBySlug mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetBySlug.expectedInvocations, n)
	mmGetBySlug.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetBySlug
}

func (mmGetBySlug *mCoreMockGetBySlug) invocationsDone() bool {
	if len(mmGetBySlug.expectations) == 0 && mmGetBySlug.defaultExpectation == nil && mmGetBySlug.mock.funcGetBySlug == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetBySlug.mock.afterGetBySlugCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetBySlug.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetBySlug implements mm_usecase.Core
func (mmGetBySlug *CoreMock) GetBySlug(ctx context.Context, slug string) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmGetBySlug.beforeGetBySlugCounter, 1)
	defer mm_atomic.AddUint64(&mmGetBySlug.afterGetBySlugCounter, 1)

	mmGetBySlug.t.Helper()

	if mmGetBySlug.inspectFuncGetBySlug != nil {
		mmGetBySlug.inspectFuncGetBySlug(ctx, slug)
	}

	mm_params := CoreMockGetBySlugParams{ctx, slug}

	// Record call args
	mmGetBySlug.GetBySlugMock.mutex.Lock()
	mmGetBySlug.GetBySlugMock.callArgs = append(mmGetBySlug.GetBySlugMock.callArgs, &mm_params)
	mmGetBySlug.GetBySlugMock.mutex.Unlock()

	for _, e := range mmGetBySlug.GetBySlugMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmGetBySlug.GetBySlugMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetBySlug.GetBySlugMock.defaultExpectation.Counter, 1)
		mm_want := mmGetBySlug.GetBySlugMock.defaultExpectation.params
		mm_want_ptrs := mmGetBySlug.GetBySlugMock.defaultExpectation.paramPtrs

		mm_got := CoreMockGetBySlugParams{ctx, slug}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetBySlug.t.Errorf("CoreMock.GetBySlug got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.slug != nil && !minimock.Equal(*mm_want_ptrs.slug, mm_got.slug) {
				mmGetBySlug.t.Errorf("CoreMock.GetBySlug got unexpected parameter slug, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.originSlug, *mm_want_ptrs.slug, mm_got.slug, minimock.Diff(*mm_want_ptrs.slug, mm_got.slug))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetBySlug.t.Errorf("CoreMock.GetBySlug got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetBySlug.GetBySlugMock.defaultExpectation.results
		if mm_results == nil {
			mmGetBySlug.t.Fatal("No results are set for the CoreMock.GetBySlug")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmGetBySlug.funcGetBySlug != nil {
		return mmGetBySlug.funcGetBySlug(ctx, slug)
	}
	mmGetBySlug.t.Fatalf("Unexpected call to CoreMock.GetBySlug. %v %v", ctx, slug)
	return
}

// GetBySlugAfterCounter returns a count of finished CoreMock.GetBySlug invocations
func (mmGetBySlug *CoreMock) GetBySlugAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetBySlug.afterGetBySlugCounter)
}

// GetBySlugBeforeCounter returns a count of CoreMock.GetBySlug invocations
func (mmGetBySlug *CoreMock) GetBySlugBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetBySlug.beforeGetBySlugCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.GetBySlug.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetBySlug *mCoreMockGetBySlug) Calls() []*CoreMockGetBySlugParams {
	mmGetBySlug.mutex.RLock()

	argCopy := make([]*CoreMockGetBySlugParams, len(mmGetBySlug.callArgs))
	copy(argCopy, mmGetBySlug.callArgs)

	mmGetBySlug.mutex.RUnlock()

	return argCopy
}

// MinimockGetBySlugDone returns true if the count of the GetBySlug invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockGetBySlugDone() bool {
	if m.GetBySlugMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetBySlugMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetBySlugMock.invocationsDone()
}

// MinimockGetBySlugInspect logs each unmet expectation
func (m *CoreMock) MinimockGetBySlugInspect() {
	for _, e := range m.GetBySlugMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.GetBySlug at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetBySlugCounter := mm_atomic.LoadUint64(&m.afterGetBySlugCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetBySlugMock.defaultExpectation != nil && afterGetBySlugCounter < 1 {
		if m.GetBySlugMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.GetBySlug at\n%s", m.GetBySlugMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.GetBySlug at\n%s with params: %#v", m.GetBySlugMock.defaultExpectation.expectationOrigins.origin, *m.GetBySlugMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetBySlug != nil && afterGetBySlugCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.GetBySlug at\n%s", m.funcGetBySlugOrigin)
	}

	if !m.GetBySlugMock.invocationsDone() && afterGetBySlugCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.GetBySlug at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetBySlugMock.expectedInvocations), m.GetBySlugMock.expectedInvocationsOrigin, afterGetBySlugCounter)
	}
}

type mCoreMockList struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockListExpectation
	expectations       []*CoreMockListExpectation

	callArgs []*CoreMockListParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockListExpectation specifies expectation struct of the Core.List
type CoreMockListExpectation struct {
	mock               *CoreMock
	params             *CoreMockListParams
	paramPtrs          *CoreMockListParamPtrs
	expectationOrigins CoreMockListExpectationOrigins
	results            *CoreMockListResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockListParams contains parameters of the Core.List
type CoreMockListParams struct {
	ctx    context.Context
	filter article.ListFilter
}

// CoreMockListParamPtrs contains pointers to parameters of the Core.List
type CoreMockListParamPtrs struct {
	ctx    *context.Context
	filter *article.ListFilter
}

// CoreMockListResults contains results of the Core.List
type CoreMockListResults struct {
	aa1 []article.Article
	err error
}

// CoreMockListOrigins contains origins of expectations of the Core.List
type CoreMockListExpectationOrigins struct {
	origin       string
	originCtx    string
	originFilter string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmList *mCoreMockList) Optional() *mCoreMockList {
	mmList.optional = true
	return mmList
}

// Expect sets up expected params for Core.List
func (mmList *mCoreMockList) Expect(ctx context.Context, filter article.ListFilter) *mCoreMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &CoreMockListExpectation{}
	}

	if mmList.defaultExpectation.paramPtrs != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by ExpectParams functions")
	}

	mmList.defaultExpectation.params = &CoreMockListParams{ctx, filter}
	mmList.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmList.expectations {
		if minimock.Equal(e.params, mmList.defaultExpectation.params) {
			mmList.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmList.defaultExpectation.params)
		}
	}

	return mmList
}

// ExpectCtxParam1 sets up expected param ctx for Core.List
func (mmList *mCoreMockList) ExpectCtxParam1(ctx context.Context) *mCoreMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &CoreMockListExpectation{}
	}

	if mmList.defaultExpectation.params != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Expect")
	}

	if mmList.defaultExpectation.paramPtrs == nil {
		mmList.defaultExpectation.paramPtrs = &CoreMockListParamPtrs{}
	}
	mmList.defaultExpectation.paramPtrs.ctx = &ctx
	mmList.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmList
}

// ExpectFilterParam2 sets up expected param filter for Core.List
func (mmList *mCoreMockList) ExpectFilterParam2(filter article.ListFilter) *mCoreMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &CoreMockListExpectation{}
	}

	if mmList.defaultExpectation.params != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Expect")
	}

	if mmList.defaultExpectation.paramPtrs == nil {
		mmList.defaultExpectation.paramPtrs = &CoreMockListParamPtrs{}
	}
	mmList.defaultExpectation.paramPtrs.filter = &filter
	mmList.defaultExpectation.expectationOrigins.originFilter = minimock.CallerInfo(1)

	return mmList
}

// Inspect accepts an inspector function that has same arguments as the Core.List
func (mmList *mCoreMockList) Inspect(f func(ctx context.Context, filter article.ListFilter)) *mCoreMockList {
	if mmList.mock.inspectFuncList != nil {
		mmList.mock.t.Fatalf("Inspect function is already set for CoreMock.List")
	}

	mmList.mock.inspectFuncList = f

	return mmList
}

// Return sets up results that will be returned by Core.List
func (mmList *mCoreMockList) Return(aa1 []article.Article, err error) *CoreMock {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &CoreMockListExpectation{mock: mmList.mock}
	}
	mmList.defaultExpectation.results = &CoreMockListResults{aa1, err}
	mmList.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmList.mock
}

// Set uses given function f to mock the Core.List method
func (mmList *mCoreMockList) Set(f func(ctx context.Context, filter article.ListFilter) (aa1 []article.Article, err error)) *CoreMock {
	if mmList.defaultExpectation != nil {
		mmList.mock.t.Fatalf("Default expectation is already set for the Core.List method")
	}

	if len(mmList.expectations) > 0 {
		mmList.mock.t.Fatalf("Some expectations are already set for the Core.List method")
	}

	mmList.mock.funcList = f
	mmList.mock.funcListOrigin = minimock.CallerInfo(1)
	return mmList.mock
}

// When sets expectation for the Core.List which will trigger the result defined by the following
// Then helper
func (mmList *mCoreMockList) When(ctx context.Context, filter article.ListFilter) *CoreMockListExpectation {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("CoreMock.List mock is already set by Set")
	}

	expectation := &CoreMockListExpectation{
		mock:               mmList.mock,
		params:             &CoreMockListParams{ctx, filter},
		expectationOrigins: CoreMockListExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmList.expectations = append(mmList.expectations, expectation)
	return expectation
}

// Then sets up Core.List return parameters for the expectation previously defined by the When method
func (e *CoreMockListExpectation) Then(aa1 []article.Article, err error) *CoreMock {
	e.results = &CoreMockListResults{aa1, err}
	return e.mock
}

// Times sets number of times Core.List should be invoked
func (mmList *mCoreMockList) Times(n uint64) *mCoreMockList {
	if n == 0 {
		mmList.mock.t.Fatalf("Times of CoreMock.List mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmList.expectedInvocations, n)
	mmList.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmList
}

func (mmList *mCoreMockList) invocationsDone() bool {
	if len(mmList.expectations) == 0 && mmList.defaultExpectation == nil && mmList.mock.funcList == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmList.mock.afterListCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmList.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// List implements mm_usecase.Core
func (mmList *CoreMock) List(ctx context.Context, filter article.ListFilter) (aa1 []article.Article, err error) {
	mm_atomic.AddUint64(&mmList.beforeListCounter, 1)
	defer mm_atomic.AddUint64(&mmList.afterListCounter, 1)

	mmList.t.Helper()

	if mmList.inspectFuncList != nil {
		mmList.inspectFuncList(ctx, filter)
	}

	mm_params := CoreMockListParams{ctx, filter}

	// Record call args
	mmList.ListMock.mutex.Lock()
	mmList.ListMock.callArgs = append(mmList.ListMock.callArgs, &mm_params)
	mmList.ListMock.mutex.Unlock()

	for _, e := range mmList.ListMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.aa1, e.results.err
		}
	}

	if mmList.ListMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmList.ListMock.defaultExpectation.Counter, 1)
		mm_want := mmList.ListMock.defaultExpectation.params
		mm_want_ptrs := mmList.ListMock.defaultExpectation.paramPtrs

		mm_got := CoreMockListParams{ctx, filter}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmList.t.Errorf("CoreMock.List got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmList.ListMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.filter != nil && !minimock.Equal(*mm_want_ptrs.filter, mm_got.filter) {
				mmList.t.Errorf("CoreMock.List got unexpected parameter filter, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmList.ListMock.defaultExpectation.expectationOrigins.originFilter, *mm_want_ptrs.filter, mm_got.filter, minimock.Diff(*mm_want_ptrs.filter, mm_got.filter))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmList.t.Errorf("CoreMock.List got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmList.ListMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmList.ListMock.defaultExpectation.results
		if mm_results == nil {
			mmList.t.Fatal("No results are set for the CoreMock.List")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmList.funcList != nil {
		return mmList.funcList(ctx, filter)
	}
	mmList.t.Fatalf("Unexpected call to CoreMock.List. %v %v", ctx, filter)
	return
}

// ListAfterCounter returns a count of finished CoreMock.List invocations
func (mmList *CoreMock) ListAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.afterListCounter)
}

// ListBeforeCounter returns a count of CoreMock.List invocations
func (mmList *CoreMock) ListBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.beforeListCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.List.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmList *mCoreMockList) Calls() []*CoreMockListParams {
	mmList.mutex.RLock()

	argCopy := make([]*CoreMockListParams, len(mmList.callArgs))
	copy(argCopy, mmList.callArgs)

	mmList.mutex.RUnlock()

	return argCopy
}

// MinimockListDone returns true if the count of the List invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockListDone() bool {
	if m.ListMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListMock.invocationsDone()
}

// MinimockListInspect logs each unmet expectation
func (m *CoreMock) MinimockListInspect() {
	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.List at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListCounter := mm_atomic.LoadUint64(&m.afterListCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMock.defaultExpectation != nil && afterListCounter < 1 {
		if m.ListMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.List at\n%s", m.ListMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.List at\n%s with params: %#v", m.ListMock.defaultExpectation.expectationOrigins.origin, *m.ListMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcList != nil && afterListCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.List at\n%s", m.funcListOrigin)
	}

	if !m.ListMock.invocationsDone() && afterListCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.List at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMock.expectedInvocations), m.ListMock.expectedInvocationsOrigin, afterListCounter)
	}
}

type mCoreMockPublish struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockPublishExpectation
	expectations       []*CoreMockPublishExpectation

	callArgs []*CoreMockPublishParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockPublishExpectation specifies expectation struct of the Core.Publish
type CoreMockPublishExpectation struct {
	mock               *CoreMock
	params             *CoreMockPublishParams
	paramPtrs          *CoreMockPublishParamPtrs
	expectationOrigins CoreMockPublishExpectationOrigins
	results            *CoreMockPublishResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockPublishParams contains parameters of the Core.Publish
type CoreMockPublishParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.PublishReq
}

// CoreMockPublishParamPtrs contains pointers to parameters of the Core.Publish
type CoreMockPublishParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.PublishReq
}

// CoreMockPublishResults contains results of the Core.Publish
type CoreMockPublishResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockPublishOrigins contains origins of expectations of the Core.Publish
type CoreMockPublishExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmPublish *mCoreMockPublish) Optional() *mCoreMockPublish {
	mmPublish.optional = true
	return mmPublish
}

// Expect sets up expected params for Core.Publish
func (mmPublish *mCoreMockPublish) Expect(ctx context.Context, actor article.Actor, req article.PublishReq) *mCoreMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &CoreMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.paramPtrs != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by ExpectParams functions")
	}

	mmPublish.defaultExpectation.params = &CoreMockPublishParams{ctx, actor, req}
	mmPublish.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmPublish.expectations {
		if minimock.Equal(e.params, mmPublish.defaultExpectation.params) {
			mmPublish.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmPublish.defaultExpectation.params)
		}
	}

	return mmPublish
}

// ExpectCtxParam1 sets up expected param ctx for Core.Publish
func (mmPublish *mCoreMockPublish) ExpectCtxParam1(ctx context.Context) *mCoreMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &CoreMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.params != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Expect")
	}

	if mmPublish.defaultExpectation.paramPtrs == nil {
		mmPublish.defaultExpectation.paramPtrs = &CoreMockPublishParamPtrs{}
	}
	mmPublish.defaultExpectation.paramPtrs.ctx = &ctx
	mmPublish.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmPublish
}

// ExpectActorParam2 sets up expected param actor for Core.Publish
func (mmPublish *mCoreMockPublish) ExpectActorParam2(actor article.Actor) *mCoreMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &CoreMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.params != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Expect")
	}

	if mmPublish.defaultExpectation.paramPtrs == nil {
		mmPublish.defaultExpectation.paramPtrs = &CoreMockPublishParamPtrs{}
	}
	mmPublish.defaultExpectation.paramPtrs.actor = &actor
	mmPublish.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmPublish
}

// ExpectReqParam3 sets up expected param req for Core.Publish
func (mmPublish *mCoreMockPublish) ExpectReqParam3(req article.PublishReq) *mCoreMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &CoreMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.params != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Expect")
	}

	if mmPublish.defaultExpectation.paramPtrs == nil {
		mmPublish.defaultExpectation.paramPtrs = &CoreMockPublishParamPtrs{}
	}
	mmPublish.defaultExpectation.paramPtrs.req = &req
	mmPublish.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmPublish
}

// Inspect accepts an inspector function that has same arguments as the Core.Publish
func (mmPublish *mCoreMockPublish) Inspect(f func(ctx context.Context, actor article.Actor, req article.PublishReq)) *mCoreMockPublish {
	if mmPublish.mock.inspectFuncPublish != nil {
		mmPublish.mock.t.Fatalf("Inspect function is already set for CoreMock.Publish")
	}

	mmPublish.mock.inspectFuncPublish = f

	return mmPublish
}

// Return sets up results that will be returned by Core.Publish
func (mmPublish *mCoreMockPublish) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &CoreMockPublishExpectation{mock: mmPublish.mock}
	}
	mmPublish.defaultExpectation.results = &CoreMockPublishResults{t1, err}
	mmPublish.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmPublish.mock
}

// Set uses given function f to mock the Core.Publish method
func (mmPublish *mCoreMockPublish) Set(f func(ctx context.Context, actor article.Actor, req article.PublishReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmPublish.defaultExpectation != nil {
		mmPublish.mock.t.Fatalf("Default expectation is already set for the Core.Publish method")
	}

	if len(mmPublish.expectations) > 0 {
		mmPublish.mock.t.Fatalf("Some expectations are already set for the Core.Publish method")
	}

	mmPublish.mock.funcPublish = f
	mmPublish.mock.funcPublishOrigin = minimock.CallerInfo(1)
	return mmPublish.mock
}

// When sets expectation for the Core.Publish which will trigger the result defined by the following
// Then helper
func (mmPublish *mCoreMockPublish) When(ctx context.Context, actor article.Actor, req article.PublishReq) *CoreMockPublishExpectation {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("CoreMock.Publish mock is already set by Set")
	}

	expectation := &CoreMockPublishExpectation{
		mock:               mmPublish.mock,
		params:             &CoreMockPublishParams{ctx, actor, req},
		expectationOrigins: CoreMockPublishExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmPublish.expectations = append(mmPublish.expectations, expectation)
	return expectation
}

// Then sets up Core.Publish return parameters for the expectation previously defined by the When method
func (e *CoreMockPublishExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockPublishResults{t1, err}
	return e.mock
}

// Times sets number of times Core.Publish should be invoked
func (mmPublish *mCoreMockPublish) Times(n uint64) *mCoreMockPublish {
	if n == 0 {
		mmPublish.mock.t.Fatalf("Times of CoreMock.Publish mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmPublish.expectedInvocations, n)
	mmPublish.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmPublish
}

func (mmPublish *mCoreMockPublish) invocationsDone() bool {
	if len(mmPublish.expectations) == 0 && mmPublish.defaultExpectation == nil && mmPublish.mock.funcPublish == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmPublish.mock.afterPublishCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmPublish.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Publish implements mm_usecase.Core
func (mmPublish *CoreMock) Publish(ctx context.Context, actor article.Actor, req article.PublishReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmPublish.beforePublishCounter, 1)
	defer mm_atomic.AddUint64(&mmPublish.afterPublishCounter, 1)

	mmPublish.t.Helper()

	if mmPublish.inspectFuncPublish != nil {
		mmPublish.inspectFuncPublish(ctx, actor, req)
	}

	mm_params := CoreMockPublishParams{ctx, actor, req}

	// Record call args
	mmPublish.PublishMock.mutex.Lock()
	mmPublish.PublishMock.callArgs = append(mmPublish.PublishMock.callArgs, &mm_params)
	mmPublish.PublishMock.mutex.Unlock()

	for _, e := range mmPublish.PublishMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmPublish.PublishMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmPublish.PublishMock.defaultExpectation.Counter, 1)
		mm_want := mmPublish.PublishMock.defaultExpectation.params
		mm_want_ptrs := mmPublish.PublishMock.defaultExpectation.paramPtrs

		mm_got := CoreMockPublishParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmPublish.t.Errorf("CoreMock.Publish got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPublish.PublishMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmPublish.t.Errorf("CoreMock.Publish got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPublish.PublishMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmPublish.t.Errorf("CoreMock.Publish got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPublish.PublishMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmPublish.t.Errorf("CoreMock.Publish got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmPublish.PublishMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmPublish.PublishMock.defaultExpectation.results
		if mm_results == nil {
			mmPublish.t.Fatal("No results are set for the CoreMock.Publish")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmPublish.funcPublish != nil {
		return mmPublish.funcPublish(ctx, actor, req)
	}
	mmPublish.t.Fatalf("Unexpected call to CoreMock.Publish. %v %v %v", ctx, actor, req)
	return
}

// PublishAfterCounter returns a count of finished CoreMock.Publish invocations
func (mmPublish *CoreMock) PublishAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPublish.afterPublishCounter)
}

// PublishBeforeCounter returns a count of CoreMock.Publish invocations
func (mmPublish *CoreMock) PublishBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPublish.beforePublishCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Publish.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmPublish *mCoreMockPublish) Calls() []*CoreMockPublishParams {
	mmPublish.mutex.RLock()

	argCopy := make([]*CoreMockPublishParams, len(mmPublish.callArgs))
	copy(argCopy, mmPublish.callArgs)

	mmPublish.mutex.RUnlock()

	return argCopy
}

// MinimockPublishDone returns true if the count of the Publish invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockPublishDone() bool {
	if m.PublishMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.PublishMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.PublishMock.invocationsDone()
}

// MinimockPublishInspect logs each unmet expectation
func (m *CoreMock) MinimockPublishInspect() {
	for _, e := range m.PublishMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Publish at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterPublishCounter := mm_atomic.LoadUint64(&m.afterPublishCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.PublishMock.defaultExpectation != nil && afterPublishCounter < 1 {
		if m.PublishMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Publish at\n%s", m.PublishMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Publish at\n%s with params: %#v", m.PublishMock.defaultExpectation.expectationOrigins.origin, *m.PublishMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcPublish != nil && afterPublishCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Publish at\n%s", m.funcPublishOrigin)
	}

	if !m.PublishMock.invocationsDone() && afterPublishCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Publish at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.PublishMock.expectedInvocations), m.PublishMock.expectedInvocationsOrigin, afterPublishCounter)
	}
}

type mCoreMockReassignEditor struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockReassignEditorExpectation
	expectations       []*CoreMockReassignEditorExpectation

	callArgs []*CoreMockReassignEditorParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockReassignEditorExpectation specifies expectation struct of the Core.ReassignEditor
type CoreMockReassignEditorExpectation struct {
	mock               *CoreMock
	params             *CoreMockReassignEditorParams
	paramPtrs          *CoreMockReassignEditorParamPtrs
	expectationOrigins CoreMockReassignEditorExpectationOrigins
	results            *CoreMockReassignEditorResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockReassignEditorParams contains parameters of the Core.ReassignEditor
type CoreMockReassignEditorParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.AssignReq
}

// CoreMockReassignEditorParamPtrs contains pointers to parameters of the Core.ReassignEditor
type CoreMockReassignEditorParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.AssignReq
}

// CoreMockReassignEditorResults contains results of the Core.ReassignEditor
type CoreMockReassignEditorResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockReassignEditorOrigins contains origins of expectations of the Core.ReassignEditor
type CoreMockReassignEditorExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReassignEditor *mCoreMockReassignEditor) Optional() *mCoreMockReassignEditor {
	mmReassignEditor.optional = true
	return mmReassignEditor
}

// Expect sets up expected params for Core.ReassignEditor
func (mmReassignEditor *mCoreMockReassignEditor) Expect(ctx context.Context, actor article.Actor, req article.AssignReq) *mCoreMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &CoreMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.paramPtrs != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by ExpectParams functions")
	}

	mmReassignEditor.defaultExpectation.params = &CoreMockReassignEditorParams{ctx, actor, req}
	mmReassignEditor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReassignEditor.expectations {
		if minimock.Equal(e.params, mmReassignEditor.defaultExpectation.params) {
			mmReassignEditor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReassignEditor.defaultExpectation.params)
		}
	}

	return mmReassignEditor
}

// ExpectCtxParam1 sets up expected param ctx for Core.ReassignEditor
func (mmReassignEditor *mCoreMockReassignEditor) ExpectCtxParam1(ctx context.Context) *mCoreMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &CoreMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.params != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Expect")
	}

	if mmReassignEditor.defaultExpectation.paramPtrs == nil {
		mmReassignEditor.defaultExpectation.paramPtrs = &CoreMockReassignEditorParamPtrs{}
	}
	mmReassignEditor.defaultExpectation.paramPtrs.ctx = &ctx
	mmReassignEditor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReassignEditor
}

// ExpectActorParam2 sets up expected param actor for Core.ReassignEditor
func (mmReassignEditor *mCoreMockReassignEditor) ExpectActorParam2(actor article.Actor) *mCoreMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &CoreMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.params != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Expect")
	}

	if mmReassignEditor.defaultExpectation.paramPtrs == nil {
		mmReassignEditor.defaultExpectation.paramPtrs = &CoreMockReassignEditorParamPtrs{}
	}
	mmReassignEditor.defaultExpectation.paramPtrs.actor = &actor
	mmReassignEditor.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmReassignEditor
}

// ExpectReqParam3 sets up expected param req for Core.ReassignEditor
func (mmReassignEditor *mCoreMockReassignEditor) ExpectReqParam3(req article.AssignReq) *mCoreMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &CoreMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.params != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Expect")
	}

	if mmReassignEditor.defaultExpectation.paramPtrs == nil {
		mmReassignEditor.defaultExpectation.paramPtrs = &CoreMockReassignEditorParamPtrs{}
	}
	mmReassignEditor.defaultExpectation.paramPtrs.req = &req
	mmReassignEditor.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReassignEditor
}

// Inspect accepts an inspector function that has same arguments as the Core.ReassignEditor
func (mmReassignEditor *mCoreMockReassignEditor) Inspect(f func(ctx context.Context, actor article.Actor, req article.AssignReq)) *mCoreMockReassignEditor {
	if mmReassignEditor.mock.inspectFuncReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("Inspect function is already set for CoreMock.ReassignEditor")
	}

	mmReassignEditor.mock.inspectFuncReassignEditor = f

	return mmReassignEditor
}

// Return sets up results that will be returned by Core.ReassignEditor
func (mmReassignEditor *mCoreMockReassignEditor) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &CoreMockReassignEditorExpectation{mock: mmReassignEditor.mock}
	}
	mmReassignEditor.defaultExpectation.results = &CoreMockReassignEditorResults{t1, err}
	mmReassignEditor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReassignEditor.mock
}

// Set uses given function f to mock the Core.ReassignEditor method
func (mmReassignEditor *mCoreMockReassignEditor) Set(f func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmReassignEditor.defaultExpectation != nil {
		mmReassignEditor.mock.t.Fatalf("Default expectation is already set for the Core.ReassignEditor method")
	}

	if len(mmReassignEditor.expectations) > 0 {
		mmReassignEditor.mock.t.Fatalf("Some expectations are already set for the Core.ReassignEditor method")
	}

	mmReassignEditor.mock.funcReassignEditor = f
	mmReassignEditor.mock.funcReassignEditorOrigin = minimock.CallerInfo(1)
	return mmReassignEditor.mock
}

// When sets expectation for the Core.ReassignEditor which will trigger the result defined by the following
// Then helper
func (mmReassignEditor *mCoreMockReassignEditor) When(ctx context.Context, actor article.Actor, req article.AssignReq) *CoreMockReassignEditorExpectation {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("CoreMock.ReassignEditor mock is already set by Set")
	}

	expectation := &CoreMockReassignEditorExpectation{
		mock:               mmReassignEditor.mock,
		params:             &CoreMockReassignEditorParams{ctx, actor, req},
		expectationOrigins: CoreMockReassignEditorExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReassignEditor.expectations = append(mmReassignEditor.expectations, expectation)
	return expectation
}

// Then sets up Core.ReassignEditor return parameters for the expectation previously defined by the When method
func (e *CoreMockReassignEditorExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockReassignEditorResults{t1, err}
	return e.mock
}

// Times sets number of times Core.ReassignEditor should be invoked
func (mmReassignEditor *mCoreMockReassignEditor) Times(n uint64) *mCoreMockReassignEditor {
	if n == 0 {
		mmReassignEditor.mock.t.Fatalf("Times of CoreMock.ReassignEditor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReassignEditor.expectedInvocations, n)
	mmReassignEditor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReassignEditor
}

func (mmReassignEditor *mCoreMockReassignEditor) invocationsDone() bool {
	if len(mmReassignEditor.expectations) == 0 && mmReassignEditor.defaultExpectation == nil && mmReassignEditor.mock.funcReassignEditor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReassignEditor.mock.afterReassignEditorCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReassignEditor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ReassignEditor implements mm_usecase.Core
func (mmReassignEditor *CoreMock) ReassignEditor(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmReassignEditor.beforeReassignEditorCounter, 1)
	defer mm_atomic.AddUint64(&mmReassignEditor.afterReassignEditorCounter, 1)

	mmReassignEditor.t.Helper()

	if mmReassignEditor.inspectFuncReassignEditor != nil {
		mmReassignEditor.inspectFuncReassignEditor(ctx, actor, req)
	}

	mm_params := CoreMockReassignEditorParams{ctx, actor, req}

	// Record call args
	mmReassignEditor.ReassignEditorMock.mutex.Lock()
	mmReassignEditor.ReassignEditorMock.callArgs = append(mmReassignEditor.ReassignEditorMock.callArgs, &mm_params)
	mmReassignEditor.ReassignEditorMock.mutex.Unlock()

	for _, e := range mmReassignEditor.ReassignEditorMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmReassignEditor.ReassignEditorMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReassignEditor.ReassignEditorMock.defaultExpectation.Counter, 1)
		mm_want := mmReassignEditor.ReassignEditorMock.defaultExpectation.params
		mm_want_ptrs := mmReassignEditor.ReassignEditorMock.defaultExpectation.paramPtrs

		mm_got := CoreMockReassignEditorParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReassignEditor.t.Errorf("CoreMock.ReassignEditor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmReassignEditor.t.Errorf("CoreMock.ReassignEditor got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReassignEditor.t.Errorf("CoreMock.ReassignEditor got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReassignEditor.t.Errorf("CoreMock.ReassignEditor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReassignEditor.ReassignEditorMock.defaultExpectation.results
		if mm_results == nil {
			mmReassignEditor.t.Fatal("No results are set for the CoreMock.ReassignEditor")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmReassignEditor.funcReassignEditor != nil {
		return mmReassignEditor.funcReassignEditor(ctx, actor, req)
	}
	mmReassignEditor.t.Fatalf("Unexpected call to CoreMock.ReassignEditor. %v %v %v", ctx, actor, req)
	return
}

// ReassignEditorAfterCounter returns a count of finished CoreMock.ReassignEditor invocations
func (mmReassignEditor *CoreMock) ReassignEditorAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignEditor.afterReassignEditorCounter)
}

// ReassignEditorBeforeCounter returns a count of CoreMock.ReassignEditor invocations
func (mmReassignEditor *CoreMock) ReassignEditorBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignEditor.beforeReassignEditorCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.ReassignEditor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReassignEditor *mCoreMockReassignEditor) Calls() []*CoreMockReassignEditorParams {
	mmReassignEditor.mutex.RLock()

	argCopy := make([]*CoreMockReassignEditorParams, len(mmReassignEditor.callArgs))
	copy(argCopy, mmReassignEditor.callArgs)

	mmReassignEditor.mutex.RUnlock()

	return argCopy
}

// MinimockReassignEditorDone returns true if the count of the ReassignEditor invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockReassignEditorDone() bool {
	if m.ReassignEditorMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ReassignEditorMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ReassignEditorMock.invocationsDone()
}

// MinimockReassignEditorInspect logs each unmet expectation
func (m *CoreMock) MinimockReassignEditorInspect() {
	for _, e := range m.ReassignEditorMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.ReassignEditor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterReassignEditorCounter := mm_atomic.LoadUint64(&m.afterReassignEditorCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ReassignEditorMock.defaultExpectation != nil && afterReassignEditorCounter < 1 {
		if m.ReassignEditorMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.ReassignEditor at\n%s", m.ReassignEditorMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.ReassignEditor at\n%s with params: %#v", m.ReassignEditorMock.defaultExpectation.expectationOrigins.origin, *m.ReassignEditorMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReassignEditor != nil && afterReassignEditorCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.ReassignEditor at\n%s", m.funcReassignEditorOrigin)
	}

	if !m.ReassignEditorMock.invocationsDone() && afterReassignEditorCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.ReassignEditor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ReassignEditorMock.expectedInvocations), m.ReassignEditorMock.expectedInvocationsOrigin, afterReassignEditorCounter)
	}
}

type mCoreMockReassignReviewer struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockReassignReviewerExpectation
	expectations       []*CoreMockReassignReviewerExpectation

	callArgs []*CoreMockReassignReviewerParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockReassignReviewerExpectation specifies expectation struct of the Core.ReassignReviewer
type CoreMockReassignReviewerExpectation struct {
	mock               *CoreMock
	params             *CoreMockReassignReviewerParams
	paramPtrs          *CoreMockReassignReviewerParamPtrs
	expectationOrigins CoreMockReassignReviewerExpectationOrigins
	results            *CoreMockReassignReviewerResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockReassignReviewerParams contains parameters of the Core.ReassignReviewer
type CoreMockReassignReviewerParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.AssignReq
}

// CoreMockReassignReviewerParamPtrs contains pointers to parameters of the Core.ReassignReviewer
type CoreMockReassignReviewerParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.AssignReq
}

// CoreMockReassignReviewerResults contains results of the Core.ReassignReviewer
type CoreMockReassignReviewerResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockReassignReviewerOrigins contains origins of expectations of the Core.ReassignReviewer
type CoreMockReassignReviewerExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReassignReviewer *mCoreMockReassignReviewer) Optional() *mCoreMockReassignReviewer {
	mmReassignReviewer.optional = true
	return mmReassignReviewer
}

// Expect sets up expected params for Core.ReassignReviewer
func (mmReassignReviewer *mCoreMockReassignReviewer) Expect(ctx context.Context, actor article.Actor, req article.AssignReq) *mCoreMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &CoreMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by ExpectParams functions")
	}

	mmReassignReviewer.defaultExpectation.params = &CoreMockReassignReviewerParams{ctx, actor, req}
	mmReassignReviewer.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReassignReviewer.expectations {
		if minimock.Equal(e.params, mmReassignReviewer.defaultExpectation.params) {
			mmReassignReviewer.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReassignReviewer.defaultExpectation.params)
		}
	}

	return mmReassignReviewer
}

// ExpectCtxParam1 sets up expected param ctx for Core.ReassignReviewer
func (mmReassignReviewer *mCoreMockReassignReviewer) ExpectCtxParam1(ctx context.Context) *mCoreMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &CoreMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.params != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Expect")
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs == nil {
		mmReassignReviewer.defaultExpectation.paramPtrs = &CoreMockReassignReviewerParamPtrs{}
	}
	mmReassignReviewer.defaultExpectation.paramPtrs.ctx = &ctx
	mmReassignReviewer.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReassignReviewer
}

// ExpectActorParam2 sets up expected param actor for Core.ReassignReviewer
func (mmReassignReviewer *mCoreMockReassignReviewer) ExpectActorParam2(actor article.Actor) *mCoreMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &CoreMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.params != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Expect")
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs == nil {
		mmReassignReviewer.defaultExpectation.paramPtrs = &CoreMockReassignReviewerParamPtrs{}
	}
	mmReassignReviewer.defaultExpectation.paramPtrs.actor = &actor
	mmReassignReviewer.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmReassignReviewer
}

// ExpectReqParam3 sets up expected param req for Core.ReassignReviewer
func (mmReassignReviewer *mCoreMockReassignReviewer) ExpectReqParam3(req article.AssignReq) *mCoreMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &CoreMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.params != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Expect")
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs == nil {
		mmReassignReviewer.defaultExpectation.paramPtrs = &CoreMockReassignReviewerParamPtrs{}
	}
	mmReassignReviewer.defaultExpectation.paramPtrs.req = &req
	mmReassignReviewer.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReassignReviewer
}

// Inspect accepts an inspector function that has same arguments as the Core.ReassignReviewer
func (mmReassignReviewer *mCoreMockReassignReviewer) Inspect(f func(ctx context.Context, actor article.Actor, req article.AssignReq)) *mCoreMockReassignReviewer {
	if mmReassignReviewer.mock.inspectFuncReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("Inspect function is already set for CoreMock.ReassignReviewer")
	}

	mmReassignReviewer.mock.inspectFuncReassignReviewer = f

	return mmReassignReviewer
}

// Return sets up results that will be returned by Core.ReassignReviewer
func (mmReassignReviewer *mCoreMockReassignReviewer) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &CoreMockReassignReviewerExpectation{mock: mmReassignReviewer.mock}
	}
	mmReassignReviewer.defaultExpectation.results = &CoreMockReassignReviewerResults{t1, err}
	mmReassignReviewer.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReassignReviewer.mock
}

// Set uses given function f to mock the Core.ReassignReviewer method
func (mmReassignReviewer *mCoreMockReassignReviewer) Set(f func(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmReassignReviewer.defaultExpectation != nil {
		mmReassignReviewer.mock.t.Fatalf("Default expectation is already set for the Core.ReassignReviewer method")
	}

	if len(mmReassignReviewer.expectations) > 0 {
		mmReassignReviewer.mock.t.Fatalf("Some expectations are already set for the Core.ReassignReviewer method")
	}

	mmReassignReviewer.mock.funcReassignReviewer = f
	mmReassignReviewer.mock.funcReassignReviewerOrigin = minimock.CallerInfo(1)
	return mmReassignReviewer.mock
}

// When sets expectation for the Core.ReassignReviewer which will trigger the result defined by the following
// Then helper
func (mmReassignReviewer *mCoreMockReassignReviewer) When(ctx context.Context, actor article.Actor, req article.AssignReq) *CoreMockReassignReviewerExpectation {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("CoreMock.ReassignReviewer mock is already set by Set")
	}

	expectation := &CoreMockReassignReviewerExpectation{
		mock:               mmReassignReviewer.mock,
		params:             &CoreMockReassignReviewerParams{ctx, actor, req},
		expectationOrigins: CoreMockReassignReviewerExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReassignReviewer.expectations = append(mmReassignReviewer.expectations, expectation)
	return expectation
}

// Then sets up Core.ReassignReviewer return parameters for the expectation previously defined by the When method
func (e *CoreMockReassignReviewerExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockReassignReviewerResults{t1, err}
	return e.mock
}

// Times sets number of times Core.ReassignReviewer should be invoked
func (mmReassignReviewer *mCoreMockReassignReviewer) Times(n uint64) *mCoreMockReassignReviewer {
	if n == 0 {
		mmReassignReviewer.mock.t.Fatalf("Times of CoreMock.ReassignReviewer mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReassignReviewer.expectedInvocations, n)
	mmReassignReviewer.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReassignReviewer
}

func (mmReassignReviewer *mCoreMockReassignReviewer) invocationsDone() bool {
	if len(mmReassignReviewer.expectations) == 0 && mmReassignReviewer.defaultExpectation == nil && mmReassignReviewer.mock.funcReassignReviewer == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReassignReviewer.mock.afterReassignReviewerCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReassignReviewer.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ReassignReviewer implements mm_usecase.Core
func (mmReassignReviewer *CoreMock) ReassignReviewer(ctx context.Context, actor article.Actor, req article.AssignReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmReassignReviewer.beforeReassignReviewerCounter, 1)
	defer mm_atomic.AddUint64(&mmReassignReviewer.afterReassignReviewerCounter, 1)

	mmReassignReviewer.t.Helper()

	if mmReassignReviewer.inspectFuncReassignReviewer != nil {
		mmReassignReviewer.inspectFuncReassignReviewer(ctx, actor, req)
	}

	mm_params := CoreMockReassignReviewerParams{ctx, actor, req}

	// Record call args
	mmReassignReviewer.ReassignReviewerMock.mutex.Lock()
	mmReassignReviewer.ReassignReviewerMock.callArgs = append(mmReassignReviewer.ReassignReviewerMock.callArgs, &mm_params)
	mmReassignReviewer.ReassignReviewerMock.mutex.Unlock()

	for _, e := range mmReassignReviewer.ReassignReviewerMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmReassignReviewer.ReassignReviewerMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReassignReviewer.ReassignReviewerMock.defaultExpectation.Counter, 1)
		mm_want := mmReassignReviewer.ReassignReviewerMock.defaultExpectation.params
		mm_want_ptrs := mmReassignReviewer.ReassignReviewerMock.defaultExpectation.paramPtrs

		mm_got := CoreMockReassignReviewerParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReassignReviewer.t.Errorf("CoreMock.ReassignReviewer got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmReassignReviewer.t.Errorf("CoreMock.ReassignReviewer got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReassignReviewer.t.Errorf("CoreMock.ReassignReviewer got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReassignReviewer.t.Errorf("CoreMock.ReassignReviewer got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReassignReviewer.ReassignReviewerMock.defaultExpectation.results
		if mm_results == nil {
			mmReassignReviewer.t.Fatal("No results are set for the CoreMock.ReassignReviewer")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmReassignReviewer.funcReassignReviewer != nil {
		return mmReassignReviewer.funcReassignReviewer(ctx, actor, req)
	}
	mmReassignReviewer.t.Fatalf("Unexpected call to CoreMock.ReassignReviewer. %v %v %v", ctx, actor, req)
	return
}

// ReassignReviewerAfterCounter returns a count of finished CoreMock.ReassignReviewer invocations
func (mmReassignReviewer *CoreMock) ReassignReviewerAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignReviewer.afterReassignReviewerCounter)
}

// ReassignReviewerBeforeCounter returns a count of CoreMock.ReassignReviewer invocations
func (mmReassignReviewer *CoreMock) ReassignReviewerBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignReviewer.beforeReassignReviewerCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.ReassignReviewer.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReassignReviewer *mCoreMockReassignReviewer) Calls() []*CoreMockReassignReviewerParams {
	mmReassignReviewer.mutex.RLock()

	argCopy := make([]*CoreMockReassignReviewerParams, len(mmReassignReviewer.callArgs))
	copy(argCopy, mmReassignReviewer.callArgs)

	mmReassignReviewer.mutex.RUnlock()

	return argCopy
}

// MinimockReassignReviewerDone returns true if the count of the ReassignReviewer invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockReassignReviewerDone() bool {
	if m.ReassignReviewerMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ReassignReviewerMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ReassignReviewerMock.invocationsDone()
}

// MinimockReassignReviewerInspect logs each unmet expectation
func (m *CoreMock) MinimockReassignReviewerInspect() {
	for _, e := range m.ReassignReviewerMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.ReassignReviewer at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterReassignReviewerCounter := mm_atomic.LoadUint64(&m.afterReassignReviewerCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ReassignReviewerMock.defaultExpectation != nil && afterReassignReviewerCounter < 1 {
		if m.ReassignReviewerMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.ReassignReviewer at\n%s", m.ReassignReviewerMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.ReassignReviewer at\n%s with params: %#v", m.ReassignReviewerMock.defaultExpectation.expectationOrigins.origin, *m.ReassignReviewerMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReassignReviewer != nil && afterReassignReviewerCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.ReassignReviewer at\n%s", m.funcReassignReviewerOrigin)
	}

	if !m.ReassignReviewerMock.invocationsDone() && afterReassignReviewerCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.ReassignReviewer at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ReassignReviewerMock.expectedInvocations), m.ReassignReviewerMock.expectedInvocationsOrigin, afterReassignReviewerCounter)
	}
}

type mCoreMockReject struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockRejectExpectation
	expectations       []*CoreMockRejectExpectation

	callArgs []*CoreMockRejectParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockRejectExpectation specifies expectation struct of the Core.Reject
type CoreMockRejectExpectation struct {
	mock               *CoreMock
	params             *CoreMockRejectParams
	paramPtrs          *CoreMockRejectParamPtrs
	expectationOrigins CoreMockRejectExpectationOrigins
	results            *CoreMockRejectResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockRejectParams contains parameters of the Core.Reject
type CoreMockRejectParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.ApproveReq
}

// CoreMockRejectParamPtrs contains pointers to parameters of the Core.Reject
type CoreMockRejectParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.ApproveReq
}

// CoreMockRejectResults contains results of the Core.Reject
type CoreMockRejectResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockRejectOrigins contains origins of expectations of the Core.Reject
type CoreMockRejectExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReject *mCoreMockReject) Optional() *mCoreMockReject {
	mmReject.optional = true
	return mmReject
}

// Expect sets up expected params for Core.Reject
func (mmReject *mCoreMockReject) Expect(ctx context.Context, actor article.Actor, req article.ApproveReq) *mCoreMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &CoreMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.paramPtrs != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by ExpectParams functions")
	}

	mmReject.defaultExpectation.params = &CoreMockRejectParams{ctx, actor, req}
	mmReject.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReject.expectations {
		if minimock.Equal(e.params, mmReject.defaultExpectation.params) {
			mmReject.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReject.defaultExpectation.params)
		}
	}

	return mmReject
}

// ExpectCtxParam1 sets up expected param ctx for Core.Reject
func (mmReject *mCoreMockReject) ExpectCtxParam1(ctx context.Context) *mCoreMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &CoreMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.params != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Expect")
	}

	if mmReject.defaultExpectation.paramPtrs == nil {
		mmReject.defaultExpectation.paramPtrs = &CoreMockRejectParamPtrs{}
	}
	mmReject.defaultExpectation.paramPtrs.ctx = &ctx
	mmReject.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReject
}

// ExpectActorParam2 sets up expected param actor for Core.Reject
func (mmReject *mCoreMockReject) ExpectActorParam2(actor article.Actor) *mCoreMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &CoreMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.params != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Expect")
	}

	if mmReject.defaultExpectation.paramPtrs == nil {
		mmReject.defaultExpectation.paramPtrs = &CoreMockRejectParamPtrs{}
	}
	mmReject.defaultExpectation.paramPtrs.actor = &actor
	mmReject.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmReject
}

// ExpectReqParam3 sets up expected param req for Core.Reject
func (mmReject *mCoreMockReject) ExpectReqParam3(req article.ApproveReq) *mCoreMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &CoreMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.params != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Expect")
	}

	if mmReject.defaultExpectation.paramPtrs == nil {
		mmReject.defaultExpectation.paramPtrs = &CoreMockRejectParamPtrs{}
	}
	mmReject.defaultExpectation.paramPtrs.req = &req
	mmReject.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReject
}

// Inspect accepts an inspector function that has same arguments as the Core.Reject
func (mmReject *mCoreMockReject) Inspect(f func(ctx context.Context, actor article.Actor, req article.ApproveReq)) *mCoreMockReject {
	if mmReject.mock.inspectFuncReject != nil {
		mmReject.mock.t.Fatalf("Inspect function is already set for CoreMock.Reject")
	}

	mmReject.mock.inspectFuncReject = f

	return mmReject
}

// Return sets up results that will be returned by Core.Reject
func (mmReject *mCoreMockReject) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &CoreMockRejectExpectation{mock: mmReject.mock}
	}
	mmReject.defaultExpectation.results = &CoreMockRejectResults{t1, err}
	mmReject.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReject.mock
}

// Set uses given function f to mock the Core.Reject method
func (mmReject *mCoreMockReject) Set(f func(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmReject.defaultExpectation != nil {
		mmReject.mock.t.Fatalf("Default expectation is already set for the Core.Reject method")
	}

	if len(mmReject.expectations) > 0 {
		mmReject.mock.t.Fatalf("Some expectations are already set for the Core.Reject method")
	}

	mmReject.mock.funcReject = f
	mmReject.mock.funcRejectOrigin = minimock.CallerInfo(1)
	return mmReject.mock
}

// When sets expectation for the Core.Reject which will trigger the result defined by the following
// Then helper
func (mmReject *mCoreMockReject) When(ctx context.Context, actor article.Actor, req article.ApproveReq) *CoreMockRejectExpectation {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("CoreMock.Reject mock is already set by Set")
	}

	expectation := &CoreMockRejectExpectation{
		mock:               mmReject.mock,
		params:             &CoreMockRejectParams{ctx, actor, req},
		expectationOrigins: CoreMockRejectExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReject.expectations = append(mmReject.expectations, expectation)
	return expectation
}

// Then sets up Core.Reject return parameters for the expectation previously defined by the When method
func (e *CoreMockRejectExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockRejectResults{t1, err}
	return e.mock
}

// Times sets number of times Core.Reject should be invoked
func (mmReject *mCoreMockReject) Times(n uint64) *mCoreMockReject {
	if n == 0 {
		mmReject.mock.t.Fatalf("Times of CoreMock.Reject mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReject.expectedInvocations, n)
	mmReject.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReject
}

func (mmReject *mCoreMockReject) invocationsDone() bool {
	if len(mmReject.expectations) == 0 && mmReject.defaultExpectation == nil && mmReject.mock.funcReject == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReject.mock.afterRejectCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReject.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Reject implements mm_usecase.Core
func (mmReject *CoreMock) Reject(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmReject.beforeRejectCounter, 1)
	defer mm_atomic.AddUint64(&mmReject.afterRejectCounter, 1)

	mmReject.t.Helper()

	if mmReject.inspectFuncReject != nil {
		mmReject.inspectFuncReject(ctx, actor, req)
	}

	mm_params := CoreMockRejectParams{ctx, actor, req}

	// Record call args
	mmReject.RejectMock.mutex.Lock()
	mmReject.RejectMock.callArgs = append(mmReject.RejectMock.callArgs, &mm_params)
	mmReject.RejectMock.mutex.Unlock()

	for _, e := range mmReject.RejectMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmReject.RejectMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReject.RejectMock.defaultExpectation.Counter, 1)
		mm_want := mmReject.RejectMock.defaultExpectation.params
		mm_want_ptrs := mmReject.RejectMock.defaultExpectation.paramPtrs

		mm_got := CoreMockRejectParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReject.t.Errorf("CoreMock.Reject got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReject.RejectMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmReject.t.Errorf("CoreMock.Reject got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReject.RejectMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReject.t.Errorf("CoreMock.Reject got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReject.RejectMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReject.t.Errorf("CoreMock.Reject got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReject.RejectMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReject.RejectMock.defaultExpectation.results
		if mm_results == nil {
			mmReject.t.Fatal("No results are set for the CoreMock.Reject")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmReject.funcReject != nil {
		return mmReject.funcReject(ctx, actor, req)
	}
	mmReject.t.Fatalf("Unexpected call to CoreMock.Reject. %v %v %v", ctx, actor, req)
	return
}

// RejectAfterCounter returns a count of finished CoreMock.Reject invocations
func (mmReject *CoreMock) RejectAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReject.afterRejectCounter)
}

// RejectBeforeCounter returns a count of CoreMock.Reject invocations
func (mmReject *CoreMock) RejectBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReject.beforeRejectCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Reject.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReject *mCoreMockReject) Calls() []*CoreMockRejectParams {
	mmReject.mutex.RLock()

	argCopy := make([]*CoreMockRejectParams, len(mmReject.callArgs))
	copy(argCopy, mmReject.callArgs)

	mmReject.mutex.RUnlock()

	return argCopy
}

// MinimockRejectDone returns true if the count of the Reject invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockRejectDone() bool {
	if m.RejectMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.RejectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RejectMock.invocationsDone()
}

// MinimockRejectInspect logs each unmet expectation
func (m *CoreMock) MinimockRejectInspect() {
	for _, e := range m.RejectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Reject at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRejectCounter := mm_atomic.LoadUint64(&m.afterRejectCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RejectMock.defaultExpectation != nil && afterRejectCounter < 1 {
		if m.RejectMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Reject at\n%s", m.RejectMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Reject at\n%s with params: %#v", m.RejectMock.defaultExpectation.expectationOrigins.origin, *m.RejectMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReject != nil && afterRejectCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Reject at\n%s", m.funcRejectOrigin)
	}

	if !m.RejectMock.invocationsDone() && afterRejectCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Reject at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RejectMock.expectedInvocations), m.RejectMock.expectedInvocationsOrigin, afterRejectCounter)
	}
}

type mCoreMockReviewerApprove struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockReviewerApproveExpectation
	expectations       []*CoreMockReviewerApproveExpectation

	callArgs []*CoreMockReviewerApproveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockReviewerApproveExpectation specifies expectation struct of the Core.ReviewerApprove
type CoreMockReviewerApproveExpectation struct {
	mock               *CoreMock
	params             *CoreMockReviewerApproveParams
	paramPtrs          *CoreMockReviewerApproveParamPtrs
	expectationOrigins CoreMockReviewerApproveExpectationOrigins
	results            *CoreMockReviewerApproveResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockReviewerApproveParams contains parameters of the Core.ReviewerApprove
type CoreMockReviewerApproveParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.ApproveReq
}

// CoreMockReviewerApproveParamPtrs contains pointers to parameters of the Core.ReviewerApprove
type CoreMockReviewerApproveParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.ApproveReq
}

// CoreMockReviewerApproveResults contains results of the Core.ReviewerApprove
type CoreMockReviewerApproveResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockReviewerApproveOrigins contains origins of expectations of the Core.ReviewerApprove
type CoreMockReviewerApproveExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReviewerApprove *mCoreMockReviewerApprove) Optional() *mCoreMockReviewerApprove {
	mmReviewerApprove.optional = true
	return mmReviewerApprove
}

// Expect sets up expected params for Core.ReviewerApprove
func (mmReviewerApprove *mCoreMockReviewerApprove) Expect(ctx context.Context, actor article.Actor, req article.ApproveReq) *mCoreMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &CoreMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by ExpectParams functions")
	}

	mmReviewerApprove.defaultExpectation.params = &CoreMockReviewerApproveParams{ctx, actor, req}
	mmReviewerApprove.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReviewerApprove.expectations {
		if minimock.Equal(e.params, mmReviewerApprove.defaultExpectation.params) {
			mmReviewerApprove.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReviewerApprove.defaultExpectation.params)
		}
	}

	return mmReviewerApprove
}

// ExpectCtxParam1 sets up expected param ctx for Core.ReviewerApprove
func (mmReviewerApprove *mCoreMockReviewerApprove) ExpectCtxParam1(ctx context.Context) *mCoreMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &CoreMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.params != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Expect")
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs == nil {
		mmReviewerApprove.defaultExpectation.paramPtrs = &CoreMockReviewerApproveParamPtrs{}
	}
	mmReviewerApprove.defaultExpectation.paramPtrs.ctx = &ctx
	mmReviewerApprove.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReviewerApprove
}

// ExpectActorParam2 sets up expected param actor for Core.ReviewerApprove
func (mmReviewerApprove *mCoreMockReviewerApprove) ExpectActorParam2(actor article.Actor) *mCoreMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &CoreMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.params != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Expect")
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs == nil {
		mmReviewerApprove.defaultExpectation.paramPtrs = &CoreMockReviewerApproveParamPtrs{}
	}
	mmReviewerApprove.defaultExpectation.paramPtrs.actor = &actor
	mmReviewerApprove.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmReviewerApprove
}

// ExpectReqParam3 sets up expected param req for Core.ReviewerApprove
func (mmReviewerApprove *mCoreMockReviewerApprove) ExpectReqParam3(req article.ApproveReq) *mCoreMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &CoreMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.params != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Expect")
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs == nil {
		mmReviewerApprove.defaultExpectation.paramPtrs = &CoreMockReviewerApproveParamPtrs{}
	}
	mmReviewerApprove.defaultExpectation.paramPtrs.req = &req
	mmReviewerApprove.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReviewerApprove
}

// Inspect accepts an inspector function that has same arguments as the Core.ReviewerApprove
func (mmReviewerApprove *mCoreMockReviewerApprove) Inspect(f func(ctx context.Context, actor article.Actor, req article.ApproveReq)) *mCoreMockReviewerApprove {
	if mmReviewerApprove.mock.inspectFuncReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("Inspect function is already set for CoreMock.ReviewerApprove")
	}

	mmReviewerApprove.mock.inspectFuncReviewerApprove = f

	return mmReviewerApprove
}

// Return sets up results that will be returned by Core.ReviewerApprove
func (mmReviewerApprove *mCoreMockReviewerApprove) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &CoreMockReviewerApproveExpectation{mock: mmReviewerApprove.mock}
	}
	mmReviewerApprove.defaultExpectation.results = &CoreMockReviewerApproveResults{t1, err}
	mmReviewerApprove.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReviewerApprove.mock
}

// Set uses given function f to mock the Core.ReviewerApprove method
func (mmReviewerApprove *mCoreMockReviewerApprove) Set(f func(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmReviewerApprove.defaultExpectation != nil {
		mmReviewerApprove.mock.t.Fatalf("Default expectation is already set for the Core.ReviewerApprove method")
	}

	if len(mmReviewerApprove.expectations) > 0 {
		mmReviewerApprove.mock.t.Fatalf("Some expectations are already set for the Core.ReviewerApprove method")
	}

	mmReviewerApprove.mock.funcReviewerApprove = f
	mmReviewerApprove.mock.funcReviewerApproveOrigin = minimock.CallerInfo(1)
	return mmReviewerApprove.mock
}

// When sets expectation for the Core.ReviewerApprove which will trigger the result defined by the following
// Then helper
func (mmReviewerApprove *mCoreMockReviewerApprove) When(ctx context.Context, actor article.Actor, req article.ApproveReq) *CoreMockReviewerApproveExpectation {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("CoreMock.ReviewerApprove mock is already set by Set")
	}

	expectation := &CoreMockReviewerApproveExpectation{
		mock:               mmReviewerApprove.mock,
		params:             &CoreMockReviewerApproveParams{ctx, actor, req},
		expectationOrigins: CoreMockReviewerApproveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReviewerApprove.expectations = append(mmReviewerApprove.expectations, expectation)
	return expectation
}

// Then sets up Core.ReviewerApprove return parameters for the expectation previously defined by the When method
func (e *CoreMockReviewerApproveExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockReviewerApproveResults{t1, err}
	return e.mock
}

// Times sets number of times Core.ReviewerApprove should be invoked
func (mmReviewerApprove *mCoreMockReviewerApprove) Times(n uint64) *mCoreMockReviewerApprove {
	if n == 0 {
		mmReviewerApprove.mock.t.Fatalf("Times of CoreMock.ReviewerApprove mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReviewerApprove.expectedInvocations, n)
	mmReviewerApprove.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReviewerApprove
}

func (mmReviewerApprove *mCoreMockReviewerApprove) invocationsDone() bool {
	if len(mmReviewerApprove.expectations) == 0 && mmReviewerApprove.defaultExpectation == nil && mmReviewerApprove.mock.funcReviewerApprove == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReviewerApprove.mock.afterReviewerApproveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReviewerApprove.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ReviewerApprove implements mm_usecase.Core
func (mmReviewerApprove *CoreMock) ReviewerApprove(ctx context.Context, actor article.Actor, req article.ApproveReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmReviewerApprove.beforeReviewerApproveCounter, 1)
	defer mm_atomic.AddUint64(&mmReviewerApprove.afterReviewerApproveCounter, 1)

	mmReviewerApprove.t.Helper()

	if mmReviewerApprove.inspectFuncReviewerApprove != nil {
		mmReviewerApprove.inspectFuncReviewerApprove(ctx, actor, req)
	}

	mm_params := CoreMockReviewerApproveParams{ctx, actor, req}

	// Record call args
	mmReviewerApprove.ReviewerApproveMock.mutex.Lock()
	mmReviewerApprove.ReviewerApproveMock.callArgs = append(mmReviewerApprove.ReviewerApproveMock.callArgs, &mm_params)
	mmReviewerApprove.ReviewerApproveMock.mutex.Unlock()

	for _, e := range mmReviewerApprove.ReviewerApproveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmReviewerApprove.ReviewerApproveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReviewerApprove.ReviewerApproveMock.defaultExpectation.Counter, 1)
		mm_want := mmReviewerApprove.ReviewerApproveMock.defaultExpectation.params
		mm_want_ptrs := mmReviewerApprove.ReviewerApproveMock.defaultExpectation.paramPtrs

		mm_got := CoreMockReviewerApproveParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReviewerApprove.t.Errorf("CoreMock.ReviewerApprove got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmReviewerApprove.t.Errorf("CoreMock.ReviewerApprove got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReviewerApprove.t.Errorf("CoreMock.ReviewerApprove got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReviewerApprove.t.Errorf("CoreMock.ReviewerApprove got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReviewerApprove.ReviewerApproveMock.defaultExpectation.results
		if mm_results == nil {
			mmReviewerApprove.t.Fatal("No results are set for the CoreMock.ReviewerApprove")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmReviewerApprove.funcReviewerApprove != nil {
		return mmReviewerApprove.funcReviewerApprove(ctx, actor, req)
	}
	mmReviewerApprove.t.Fatalf("Unexpected call to CoreMock.ReviewerApprove. %v %v %v", ctx, actor, req)
	return
}

// ReviewerApproveAfterCounter returns a count of finished CoreMock.ReviewerApprove invocations
func (mmReviewerApprove *CoreMock) ReviewerApproveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReviewerApprove.afterReviewerApproveCounter)
}

// ReviewerApproveBeforeCounter returns a count of CoreMock.ReviewerApprove invocations
func (mmReviewerApprove *CoreMock) ReviewerApproveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReviewerApprove.beforeReviewerApproveCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.ReviewerApprove.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReviewerApprove *mCoreMockReviewerApprove) Calls() []*CoreMockReviewerApproveParams {
	mmReviewerApprove.mutex.RLock()

	argCopy := make([]*CoreMockReviewerApproveParams, len(mmReviewerApprove.callArgs))
	copy(argCopy, mmReviewerApprove.callArgs)

	mmReviewerApprove.mutex.RUnlock()

	return argCopy
}

// MinimockReviewerApproveDone returns true if the count of the ReviewerApprove invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockReviewerApproveDone() bool {
	if m.ReviewerApproveMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ReviewerApproveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ReviewerApproveMock.invocationsDone()
}

// MinimockReviewerApproveInspect logs each unmet expectation
func (m *CoreMock) MinimockReviewerApproveInspect() {
	for _, e := range m.ReviewerApproveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.ReviewerApprove at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterReviewerApproveCounter := mm_atomic.LoadUint64(&m.afterReviewerApproveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ReviewerApproveMock.defaultExpectation != nil && afterReviewerApproveCounter < 1 {
		if m.ReviewerApproveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.ReviewerApprove at\n%s", m.ReviewerApproveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.ReviewerApprove at\n%s with params: %#v", m.ReviewerApproveMock.defaultExpectation.expectationOrigins.origin, *m.ReviewerApproveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReviewerApprove != nil && afterReviewerApproveCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.ReviewerApprove at\n%s", m.funcReviewerApproveOrigin)
	}

	if !m.ReviewerApproveMock.invocationsDone() && afterReviewerApproveCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.ReviewerApprove at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ReviewerApproveMock.expectedInvocations), m.ReviewerApproveMock.expectedInvocationsOrigin, afterReviewerApproveCounter)
	}
}

type mCoreMockSetCitation struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockSetCitationExpectation
	expectations       []*CoreMockSetCitationExpectation

	callArgs []*CoreMockSetCitationParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockSetCitationExpectation specifies expectation struct of the Core.SetCitation
type CoreMockSetCitationExpectation struct {
	mock               *CoreMock
	params             *CoreMockSetCitationParams
	paramPtrs          *CoreMockSetCitationParamPtrs
	expectationOrigins CoreMockSetCitationExpectationOrigins
	results            *CoreMockSetCitationResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockSetCitationParams contains parameters of the Core.SetCitation
type CoreMockSetCitationParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.SetCitationReq
}

// CoreMockSetCitationParamPtrs contains pointers to parameters of the Core.SetCitation
type CoreMockSetCitationParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.SetCitationReq
}

// CoreMockSetCitationResults contains results of the Core.SetCitation
type CoreMockSetCitationResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockSetCitationOrigins contains origins of expectations of the Core.SetCitation
type CoreMockSetCitationExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSetCitation *mCoreMockSetCitation) Optional() *mCoreMockSetCitation {
	mmSetCitation.optional = true
	return mmSetCitation
}

// Expect sets up expected params for Core.SetCitation
func (mmSetCitation *mCoreMockSetCitation) Expect(ctx context.Context, actor article.Actor, req article.SetCitationReq) *mCoreMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &CoreMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.paramPtrs != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by ExpectParams functions")
	}

	mmSetCitation.defaultExpectation.params = &CoreMockSetCitationParams{ctx, actor, req}
	mmSetCitation.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSetCitation.expectations {
		if minimock.Equal(e.params, mmSetCitation.defaultExpectation.params) {
			mmSetCitation.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSetCitation.defaultExpectation.params)
		}
	}

	return mmSetCitation
}

// ExpectCtxParam1 sets up expected param ctx for Core.SetCitation
func (mmSetCitation *mCoreMockSetCitation) ExpectCtxParam1(ctx context.Context) *mCoreMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &CoreMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &CoreMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.ctx = &ctx
	mmSetCitation.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSetCitation
}

// ExpectActorParam2 sets up expected param actor for Core.SetCitation
func (mmSetCitation *mCoreMockSetCitation) ExpectActorParam2(actor article.Actor) *mCoreMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &CoreMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &CoreMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.actor = &actor
	mmSetCitation.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmSetCitation
}

// ExpectReqParam3 sets up expected param req for Core.SetCitation
func (mmSetCitation *mCoreMockSetCitation) ExpectReqParam3(req article.SetCitationReq) *mCoreMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &CoreMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &CoreMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.req = &req
	mmSetCitation.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmSetCitation
}

// Inspect accepts an inspector function that has same arguments as the Core.SetCitation
func (mmSetCitation *mCoreMockSetCitation) Inspect(f func(ctx context.Context, actor article.Actor, req article.SetCitationReq)) *mCoreMockSetCitation {
	if mmSetCitation.mock.inspectFuncSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("Inspect function is already set for CoreMock.SetCitation")
	}

	mmSetCitation.mock.inspectFuncSetCitation = f

	return mmSetCitation
}

// Return sets up results that will be returned by Core.SetCitation
func (mmSetCitation *mCoreMockSetCitation) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &CoreMockSetCitationExpectation{mock: mmSetCitation.mock}
	}
	mmSetCitation.defaultExpectation.results = &CoreMockSetCitationResults{t1, err}
	mmSetCitation.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSetCitation.mock
}

// Set uses given function f to mock the Core.SetCitation method
func (mmSetCitation *mCoreMockSetCitation) Set(f func(ctx context.Context, actor article.Actor, req article.SetCitationReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmSetCitation.defaultExpectation != nil {
		mmSetCitation.mock.t.Fatalf("Default expectation is already set for the Core.SetCitation method")
	}

	if len(mmSetCitation.expectations) > 0 {
		mmSetCitation.mock.t.Fatalf("Some expectations are already set for the Core.SetCitation method")
	}

	mmSetCitation.mock.funcSetCitation = f
	mmSetCitation.mock.funcSetCitationOrigin = minimock.CallerInfo(1)
	return mmSetCitation.mock
}

// When sets expectation for the Core.SetCitation which will trigger the result defined by the following
// Then helper
func (mmSetCitation *mCoreMockSetCitation) When(ctx context.Context, actor article.Actor, req article.SetCitationReq) *CoreMockSetCitationExpectation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("CoreMock.SetCitation mock is already set by Set")
	}

	expectation := &CoreMockSetCitationExpectation{
		mock:               mmSetCitation.mock,
		params:             &CoreMockSetCitationParams{ctx, actor, req},
		expectationOrigins: CoreMockSetCitationExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSetCitation.expectations = append(mmSetCitation.expectations, expectation)
	return expectation
}

// Then sets up Core.SetCitation return parameters for the expectation previously defined by the When method
func (e *CoreMockSetCitationExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockSetCitationResults{t1, err}
	return e.mock
}

// Times sets number of times Core.SetCitation should be invoked
func (mmSetCitation *mCoreMockSetCitation) Times(n uint64) *mCoreMockSetCitation {
	if n == 0 {
		mmSetCitation.mock.t.Fatalf("Times of CoreMock.SetCitation mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSetCitation.expectedInvocations, n)
	mmSetCitation.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSetCitation
}

func (mmSetCitation *mCoreMockSetCitation) invocationsDone() bool {
	if len(mmSetCitation.expectations) == 0 && mmSetCitation.defaultExpectation == nil && mmSetCitation.mock.funcSetCitation == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSetCitation.mock.afterSetCitationCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSetCitation.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// SetCitation implements mm_usecase.Core
func (mmSetCitation *CoreMock) SetCitation(ctx context.Context, actor article.Actor, req article.SetCitationReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmSetCitation.beforeSetCitationCounter, 1)
	defer mm_atomic.AddUint64(&mmSetCitation.afterSetCitationCounter, 1)

	mmSetCitation.t.Helper()

	if mmSetCitation.inspectFuncSetCitation != nil {
		mmSetCitation.inspectFuncSetCitation(ctx, actor, req)
	}

	mm_params := CoreMockSetCitationParams{ctx, actor, req}

	// Record call args
	mmSetCitation.SetCitationMock.mutex.Lock()
	mmSetCitation.SetCitationMock.callArgs = append(mmSetCitation.SetCitationMock.callArgs, &mm_params)
	mmSetCitation.SetCitationMock.mutex.Unlock()

	for _, e := range mmSetCitation.SetCitationMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmSetCitation.SetCitationMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSetCitation.SetCitationMock.defaultExpectation.Counter, 1)
		mm_want := mmSetCitation.SetCitationMock.defaultExpectation.params
		mm_want_ptrs := mmSetCitation.SetCitationMock.defaultExpectation.paramPtrs

		mm_got := CoreMockSetCitationParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSetCitation.t.Errorf("CoreMock.SetCitation got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmSetCitation.t.Errorf("CoreMock.SetCitation got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmSetCitation.t.Errorf("CoreMock.SetCitation got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSetCitation.t.Errorf("CoreMock.SetCitation got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSetCitation.SetCitationMock.defaultExpectation.results
		if mm_results == nil {
			mmSetCitation.t.Fatal("No results are set for the CoreMock.SetCitation")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmSetCitation.funcSetCitation != nil {
		return mmSetCitation.funcSetCitation(ctx, actor, req)
	}
	mmSetCitation.t.Fatalf("Unexpected call to CoreMock.SetCitation. %v %v %v", ctx, actor, req)
	return
}

// SetCitationAfterCounter returns a count of finished CoreMock.SetCitation invocations
func (mmSetCitation *CoreMock) SetCitationAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetCitation.afterSetCitationCounter)
}

// SetCitationBeforeCounter returns a count of CoreMock.SetCitation invocations
func (mmSetCitation *CoreMock) SetCitationBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetCitation.beforeSetCitationCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.SetCitation.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSetCitation *mCoreMockSetCitation) Calls() []*CoreMockSetCitationParams {
	mmSetCitation.mutex.RLock()

	argCopy := make([]*CoreMockSetCitationParams, len(mmSetCitation.callArgs))
	copy(argCopy, mmSetCitation.callArgs)

	mmSetCitation.mutex.RUnlock()

	return argCopy
}

// MinimockSetCitationDone returns true if the count of the SetCitation invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockSetCitationDone() bool {
	if m.SetCitationMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SetCitationMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SetCitationMock.invocationsDone()
}

// MinimockSetCitationInspect logs each unmet expectation
func (m *CoreMock) MinimockSetCitationInspect() {
	for _, e := range m.SetCitationMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.SetCitation at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSetCitationCounter := mm_atomic.LoadUint64(&m.afterSetCitationCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SetCitationMock.defaultExpectation != nil && afterSetCitationCounter < 1 {
		if m.SetCitationMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.SetCitation at\n%s", m.SetCitationMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.SetCitation at\n%s with params: %#v", m.SetCitationMock.defaultExpectation.expectationOrigins.origin, *m.SetCitationMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSetCitation != nil && afterSetCitationCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.SetCitation at\n%s", m.funcSetCitationOrigin)
	}

	if !m.SetCitationMock.invocationsDone() && afterSetCitationCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.SetCitation at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SetCitationMock.expectedInvocations), m.SetCitationMock.expectedInvocationsOrigin, afterSetCitationCounter)
	}
}

type mCoreMockSubmit struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockSubmitExpectation
	expectations       []*CoreMockSubmitExpectation

	callArgs []*CoreMockSubmitParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockSubmitExpectation specifies expectation struct of the Core.Submit
type CoreMockSubmitExpectation struct {
	mock               *CoreMock
	params             *CoreMockSubmitParams
	paramPtrs          *CoreMockSubmitParamPtrs
	expectationOrigins CoreMockSubmitExpectationOrigins
	results            *CoreMockSubmitResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockSubmitParams contains parameters of the Core.Submit
type CoreMockSubmitParams struct {
	ctx context.Context
	req article.SubmitReq
}

// CoreMockSubmitParamPtrs contains pointers to parameters of the Core.Submit
type CoreMockSubmitParamPtrs struct {
	ctx *context.Context
	req *article.SubmitReq
}

// CoreMockSubmitResults contains results of the Core.Submit
type CoreMockSubmitResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockSubmitOrigins contains origins of expectations of the Core.Submit
type CoreMockSubmitExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSubmit *mCoreMockSubmit) Optional() *mCoreMockSubmit {
	mmSubmit.optional = true
	return mmSubmit
}

// Expect sets up expected params for Core.Submit
func (mmSubmit *mCoreMockSubmit) Expect(ctx context.Context, req article.SubmitReq) *mCoreMockSubmit {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &CoreMockSubmitExpectation{}
	}

	if mmSubmit.defaultExpectation.paramPtrs != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by ExpectParams functions")
	}

	mmSubmit.defaultExpectation.params = &CoreMockSubmitParams{ctx, req}
	mmSubmit.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSubmit.expectations {
		if minimock.Equal(e.params, mmSubmit.defaultExpectation.params) {
			mmSubmit.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSubmit.defaultExpectation.params)
		}
	}

	return mmSubmit
}

// ExpectCtxParam1 sets up expected param ctx for Core.Submit
func (mmSubmit *mCoreMockSubmit) ExpectCtxParam1(ctx context.Context) *mCoreMockSubmit {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &CoreMockSubmitExpectation{}
	}

	if mmSubmit.defaultExpectation.params != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Expect")
	}

	if mmSubmit.defaultExpectation.paramPtrs == nil {
		mmSubmit.defaultExpectation.paramPtrs = &CoreMockSubmitParamPtrs{}
	}
	mmSubmit.defaultExpectation.paramPtrs.ctx = &ctx
	mmSubmit.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSubmit
}

// ExpectReqParam2 sets up expected param req for Core.Submit
func (mmSubmit *mCoreMockSubmit) ExpectReqParam2(req article.SubmitReq) *mCoreMockSubmit {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &CoreMockSubmitExpectation{}
	}

	if mmSubmit.defaultExpectation.params != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Expect")
	}

	if mmSubmit.defaultExpectation.paramPtrs == nil {
		mmSubmit.defaultExpectation.paramPtrs = &CoreMockSubmitParamPtrs{}
	}
	mmSubmit.defaultExpectation.paramPtrs.req = &req
	mmSubmit.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmSubmit
}

// Inspect accepts an inspector function that has same arguments as the Core.Submit
func (mmSubmit *mCoreMockSubmit) Inspect(f func(ctx context.Context, req article.SubmitReq)) *mCoreMockSubmit {
	if mmSubmit.mock.inspectFuncSubmit != nil {
		mmSubmit.mock.t.Fatalf("Inspect function is already set for CoreMock.Submit")
	}

	mmSubmit.mock.inspectFuncSubmit = f

	return mmSubmit
}

// Return sets up results that will be returned by Core.Submit
func (mmSubmit *mCoreMockSubmit) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &CoreMockSubmitExpectation{mock: mmSubmit.mock}
	}
	mmSubmit.defaultExpectation.results = &CoreMockSubmitResults{t1, err}
	mmSubmit.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSubmit.mock
}

// Set uses given function f to mock the Core.Submit method
func (mmSubmit *mCoreMockSubmit) Set(f func(ctx context.Context, req article.SubmitReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmSubmit.defaultExpectation != nil {
		mmSubmit.mock.t.Fatalf("Default expectation is already set for the Core.Submit method")
	}

	if len(mmSubmit.expectations) > 0 {
		mmSubmit.mock.t.Fatalf("Some expectations are already set for the Core.Submit method")
	}

	mmSubmit.mock.funcSubmit = f
	mmSubmit.mock.funcSubmitOrigin = minimock.CallerInfo(1)
	return mmSubmit.mock
}

// When sets expectation for the Core.Submit which will trigger the result defined by the following
// Then helper
func (mmSubmit *mCoreMockSubmit) When(ctx context.Context, req article.SubmitReq) *CoreMockSubmitExpectation {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("CoreMock.Submit mock is already set by Set")
	}

	expectation := &CoreMockSubmitExpectation{
		mock:               mmSubmit.mock,
		params:             &CoreMockSubmitParams{ctx, req},
		expectationOrigins: CoreMockSubmitExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSubmit.expectations = append(mmSubmit.expectations, expectation)
	return expectation
}

// Then sets up Core.Submit return parameters for the expectation previously defined by the When method
func (e *CoreMockSubmitExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockSubmitResults{t1, err}
	return e.mock
}

// Times sets number of times Core.Submit should be invoked
func (mmSubmit *mCoreMockSubmit) Times(n uint64) *mCoreMockSubmit {
	if n == 0 {
		mmSubmit.mock.t.Fatalf("Times of CoreMock.Submit mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSubmit.expectedInvocations, n)
	mmSubmit.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSubmit
}

func (mmSubmit *mCoreMockSubmit) invocationsDone() bool {
	if len(mmSubmit.expectations) == 0 && mmSubmit.defaultExpectation == nil && mmSubmit.mock.funcSubmit == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSubmit.mock.afterSubmitCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSubmit.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Submit implements mm_usecase.Core
func (mmSubmit *CoreMock) Submit(ctx context.Context, req article.SubmitReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmSubmit.beforeSubmitCounter, 1)
	defer mm_atomic.AddUint64(&mmSubmit.afterSubmitCounter, 1)

	mmSubmit.t.Helper()

	if mmSubmit.inspectFuncSubmit != nil {
		mmSubmit.inspectFuncSubmit(ctx, req)
	}

	mm_params := CoreMockSubmitParams{ctx, req}

	// Record call args
	mmSubmit.SubmitMock.mutex.Lock()
	mmSubmit.SubmitMock.callArgs = append(mmSubmit.SubmitMock.callArgs, &mm_params)
	mmSubmit.SubmitMock.mutex.Unlock()

	for _, e := range mmSubmit.SubmitMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmSubmit.SubmitMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSubmit.SubmitMock.defaultExpectation.Counter, 1)
		mm_want := mmSubmit.SubmitMock.defaultExpectation.params
		mm_want_ptrs := mmSubmit.SubmitMock.defaultExpectation.paramPtrs

		mm_got := CoreMockSubmitParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSubmit.t.Errorf("CoreMock.Submit got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSubmit.SubmitMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmSubmit.t.Errorf("CoreMock.Submit got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSubmit.SubmitMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSubmit.t.Errorf("CoreMock.Submit got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSubmit.SubmitMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSubmit.SubmitMock.defaultExpectation.results
		if mm_results == nil {
			mmSubmit.t.Fatal("No results are set for the CoreMock.Submit")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmSubmit.funcSubmit != nil {
		return mmSubmit.funcSubmit(ctx, req)
	}
	mmSubmit.t.Fatalf("Unexpected call to CoreMock.Submit. %v %v", ctx, req)
	return
}

// SubmitAfterCounter returns a count of finished CoreMock.Submit invocations
func (mmSubmit *CoreMock) SubmitAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSubmit.afterSubmitCounter)
}

// SubmitBeforeCounter returns a count of CoreMock.Submit invocations
func (mmSubmit *CoreMock) SubmitBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSubmit.beforeSubmitCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Submit.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSubmit *mCoreMockSubmit) Calls() []*CoreMockSubmitParams {
	mmSubmit.mutex.RLock()

	argCopy := make([]*CoreMockSubmitParams, len(mmSubmit.callArgs))
	copy(argCopy, mmSubmit.callArgs)

	mmSubmit.mutex.RUnlock()

	return argCopy
}

// MinimockSubmitDone returns true if the count of the Submit invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockSubmitDone() bool {
	if m.SubmitMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SubmitMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SubmitMock.invocationsDone()
}

// MinimockSubmitInspect logs each unmet expectation
func (m *CoreMock) MinimockSubmitInspect() {
	for _, e := range m.SubmitMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Submit at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSubmitCounter := mm_atomic.LoadUint64(&m.afterSubmitCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SubmitMock.defaultExpectation != nil && afterSubmitCounter < 1 {
		if m.SubmitMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Submit at\n%s", m.SubmitMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Submit at\n%s with params: %#v", m.SubmitMock.defaultExpectation.expectationOrigins.origin, *m.SubmitMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSubmit != nil && afterSubmitCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Submit at\n%s", m.funcSubmitOrigin)
	}

	if !m.SubmitMock.invocationsDone() && afterSubmitCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Submit at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SubmitMock.expectedInvocations), m.SubmitMock.expectedInvocationsOrigin, afterSubmitCounter)
	}
}

type mCoreMockUploadEditorCorrection struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockUploadEditorCorrectionExpectation
	expectations       []*CoreMockUploadEditorCorrectionExpectation

	callArgs []*CoreMockUploadEditorCorrectionParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockUploadEditorCorrectionExpectation specifies expectation struct of the Core.UploadEditorCorrection
type CoreMockUploadEditorCorrectionExpectation struct {
	mock               *CoreMock
	params             *CoreMockUploadEditorCorrectionParams
	paramPtrs          *CoreMockUploadEditorCorrectionParamPtrs
	expectationOrigins CoreMockUploadEditorCorrectionExpectationOrigins
	results            *CoreMockUploadEditorCorrectionResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockUploadEditorCorrectionParams contains parameters of the Core.UploadEditorCorrection
type CoreMockUploadEditorCorrectionParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.UploadCorrectionReq
}

// CoreMockUploadEditorCorrectionParamPtrs contains pointers to parameters of the Core.UploadEditorCorrection
type CoreMockUploadEditorCorrectionParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.UploadCorrectionReq
}

// CoreMockUploadEditorCorrectionResults contains results of the Core.UploadEditorCorrection
type CoreMockUploadEditorCorrectionResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockUploadEditorCorrectionOrigins contains origins of expectations of the Core.UploadEditorCorrection
type CoreMockUploadEditorCorrectionExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Optional() *mCoreMockUploadEditorCorrection {
	mmUploadEditorCorrection.optional = true
	return mmUploadEditorCorrection
}

// Expect sets up expected params for Core.UploadEditorCorrection
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Expect(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) *mCoreMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &CoreMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by ExpectParams functions")
	}

	mmUploadEditorCorrection.defaultExpectation.params = &CoreMockUploadEditorCorrectionParams{ctx, actor, req}
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUploadEditorCorrection.expectations {
		if minimock.Equal(e.params, mmUploadEditorCorrection.defaultExpectation.params) {
			mmUploadEditorCorrection.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUploadEditorCorrection.defaultExpectation.params)
		}
	}

	return mmUploadEditorCorrection
}

// ExpectCtxParam1 sets up expected param ctx for Core.UploadEditorCorrection
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) ExpectCtxParam1(ctx context.Context) *mCoreMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &CoreMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.params != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Expect")
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadEditorCorrection.defaultExpectation.paramPtrs = &CoreMockUploadEditorCorrectionParamPtrs{}
	}
	mmUploadEditorCorrection.defaultExpectation.paramPtrs.ctx = &ctx
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUploadEditorCorrection
}

// ExpectActorParam2 sets up expected param actor for Core.UploadEditorCorrection
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) ExpectActorParam2(actor article.Actor) *mCoreMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &CoreMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.params != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Expect")
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadEditorCorrection.defaultExpectation.paramPtrs = &CoreMockUploadEditorCorrectionParamPtrs{}
	}
	mmUploadEditorCorrection.defaultExpectation.paramPtrs.actor = &actor
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmUploadEditorCorrection
}

// ExpectReqParam3 sets up expected param req for Core.UploadEditorCorrection
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) ExpectReqParam3(req article.UploadCorrectionReq) *mCoreMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &CoreMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.params != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Expect")
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadEditorCorrection.defaultExpectation.paramPtrs = &CoreMockUploadEditorCorrectionParamPtrs{}
	}
	mmUploadEditorCorrection.defaultExpectation.paramPtrs.req = &req
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmUploadEditorCorrection
}

// Inspect accepts an inspector function that has same arguments as the Core.UploadEditorCorrection
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Inspect(f func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq)) *mCoreMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.inspectFuncUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("Inspect function is already set for CoreMock.UploadEditorCorrection")
	}

	mmUploadEditorCorrection.mock.inspectFuncUploadEditorCorrection = f

	return mmUploadEditorCorrection
}

// Return sets up results that will be returned by Core.UploadEditorCorrection
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &CoreMockUploadEditorCorrectionExpectation{mock: mmUploadEditorCorrection.mock}
	}
	mmUploadEditorCorrection.defaultExpectation.results = &CoreMockUploadEditorCorrectionResults{t1, err}
	mmUploadEditorCorrection.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUploadEditorCorrection.mock
}

// Set uses given function f to mock the Core.UploadEditorCorrection method
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Set(f func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmUploadEditorCorrection.defaultExpectation != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("Default expectation is already set for the Core.UploadEditorCorrection method")
	}

	if len(mmUploadEditorCorrection.expectations) > 0 {
		mmUploadEditorCorrection.mock.t.Fatalf("Some expectations are already set for the Core.UploadEditorCorrection method")
	}

	mmUploadEditorCorrection.mock.funcUploadEditorCorrection = f
	mmUploadEditorCorrection.mock.funcUploadEditorCorrectionOrigin = minimock.CallerInfo(1)
	return mmUploadEditorCorrection.mock
}

// When sets expectation for the Core.UploadEditorCorrection which will trigger the result defined by the following
// Then helper
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) When(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) *CoreMockUploadEditorCorrectionExpectation {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("CoreMock.UploadEditorCorrection mock is already set by Set")
	}

	expectation := &CoreMockUploadEditorCorrectionExpectation{
		mock:               mmUploadEditorCorrection.mock,
		params:             &CoreMockUploadEditorCorrectionParams{ctx, actor, req},
		expectationOrigins: CoreMockUploadEditorCorrectionExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUploadEditorCorrection.expectations = append(mmUploadEditorCorrection.expectations, expectation)
	return expectation
}

// Then sets up Core.UploadEditorCorrection return parameters for the expectation previously defined by the When method
func (e *CoreMockUploadEditorCorrectionExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockUploadEditorCorrectionResults{t1, err}
	return e.mock
}

// Times sets number of times Core.UploadEditorCorrection should be invoked
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Times(n uint64) *mCoreMockUploadEditorCorrection {
	if n == 0 {
		mmUploadEditorCorrection.mock.t.Fatalf("Times of CoreMock.UploadEditorCorrection mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUploadEditorCorrection.expectedInvocations, n)
	mmUploadEditorCorrection.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUploadEditorCorrection
}

func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) invocationsDone() bool {
	if len(mmUploadEditorCorrection.expectations) == 0 && mmUploadEditorCorrection.defaultExpectation == nil && mmUploadEditorCorrection.mock.funcUploadEditorCorrection == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUploadEditorCorrection.mock.afterUploadEditorCorrectionCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUploadEditorCorrection.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// UploadEditorCorrection implements mm_usecase.Core
func (mmUploadEditorCorrection *CoreMock) UploadEditorCorrection(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmUploadEditorCorrection.beforeUploadEditorCorrectionCounter, 1)
	defer mm_atomic.AddUint64(&mmUploadEditorCorrection.afterUploadEditorCorrectionCounter, 1)

	mmUploadEditorCorrection.t.Helper()

	if mmUploadEditorCorrection.inspectFuncUploadEditorCorrection != nil {
		mmUploadEditorCorrection.inspectFuncUploadEditorCorrection(ctx, actor, req)
	}

	mm_params := CoreMockUploadEditorCorrectionParams{ctx, actor, req}

	// Record call args
	mmUploadEditorCorrection.UploadEditorCorrectionMock.mutex.Lock()
	mmUploadEditorCorrection.UploadEditorCorrectionMock.callArgs = append(mmUploadEditorCorrection.UploadEditorCorrectionMock.callArgs, &mm_params)
	mmUploadEditorCorrection.UploadEditorCorrectionMock.mutex.Unlock()

	for _, e := range mmUploadEditorCorrection.UploadEditorCorrectionMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.Counter, 1)
		mm_want := mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.params
		mm_want_ptrs := mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.paramPtrs

		mm_got := CoreMockUploadEditorCorrectionParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUploadEditorCorrection.t.Errorf("CoreMock.UploadEditorCorrection got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmUploadEditorCorrection.t.Errorf("CoreMock.UploadEditorCorrection got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmUploadEditorCorrection.t.Errorf("CoreMock.UploadEditorCorrection got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUploadEditorCorrection.t.Errorf("CoreMock.UploadEditorCorrection got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.results
		if mm_results == nil {
			mmUploadEditorCorrection.t.Fatal("No results are set for the CoreMock.UploadEditorCorrection")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmUploadEditorCorrection.funcUploadEditorCorrection != nil {
		return mmUploadEditorCorrection.funcUploadEditorCorrection(ctx, actor, req)
	}
	mmUploadEditorCorrection.t.Fatalf("Unexpected call to CoreMock.UploadEditorCorrection. %v %v %v", ctx, actor, req)
	return
}

// UploadEditorCorrectionAfterCounter returns a count of finished CoreMock.UploadEditorCorrection invocations
func (mmUploadEditorCorrection *CoreMock) UploadEditorCorrectionAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadEditorCorrection.afterUploadEditorCorrectionCounter)
}

// UploadEditorCorrectionBeforeCounter returns a count of CoreMock.UploadEditorCorrection invocations
func (mmUploadEditorCorrection *CoreMock) UploadEditorCorrectionBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadEditorCorrection.beforeUploadEditorCorrectionCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.UploadEditorCorrection.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUploadEditorCorrection *mCoreMockUploadEditorCorrection) Calls() []*CoreMockUploadEditorCorrectionParams {
	mmUploadEditorCorrection.mutex.RLock()

	argCopy := make([]*CoreMockUploadEditorCorrectionParams, len(mmUploadEditorCorrection.callArgs))
	copy(argCopy, mmUploadEditorCorrection.callArgs)

	mmUploadEditorCorrection.mutex.RUnlock()

	return argCopy
}

// MinimockUploadEditorCorrectionDone returns true if the count of the UploadEditorCorrection invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockUploadEditorCorrectionDone() bool {
	if m.UploadEditorCorrectionMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.UploadEditorCorrectionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.UploadEditorCorrectionMock.invocationsDone()
}

// MinimockUploadEditorCorrectionInspect logs each unmet expectation
func (m *CoreMock) MinimockUploadEditorCorrectionInspect() {
	for _, e := range m.UploadEditorCorrectionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.UploadEditorCorrection at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUploadEditorCorrectionCounter := mm_atomic.LoadUint64(&m.afterUploadEditorCorrectionCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UploadEditorCorrectionMock.defaultExpectation != nil && afterUploadEditorCorrectionCounter < 1 {
		if m.UploadEditorCorrectionMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.UploadEditorCorrection at\n%s", m.UploadEditorCorrectionMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.UploadEditorCorrection at\n%s with params: %#v", m.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.origin, *m.UploadEditorCorrectionMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUploadEditorCorrection != nil && afterUploadEditorCorrectionCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.UploadEditorCorrection at\n%s", m.funcUploadEditorCorrectionOrigin)
	}

	if !m.UploadEditorCorrectionMock.invocationsDone() && afterUploadEditorCorrectionCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.UploadEditorCorrection at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UploadEditorCorrectionMock.expectedInvocations), m.UploadEditorCorrectionMock.expectedInvocationsOrigin, afterUploadEditorCorrectionCounter)
	}
}

type mCoreMockUploadReviewerCorrection struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockUploadReviewerCorrectionExpectation
	expectations       []*CoreMockUploadReviewerCorrectionExpectation

	callArgs []*CoreMockUploadReviewerCorrectionParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockUploadReviewerCorrectionExpectation specifies expectation struct of the Core.UploadReviewerCorrection
type CoreMockUploadReviewerCorrectionExpectation struct {
	mock               *CoreMock
	params             *CoreMockUploadReviewerCorrectionParams
	paramPtrs          *CoreMockUploadReviewerCorrectionParamPtrs
	expectationOrigins CoreMockUploadReviewerCorrectionExpectationOrigins
	results            *CoreMockUploadReviewerCorrectionResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockUploadReviewerCorrectionParams contains parameters of the Core.UploadReviewerCorrection
type CoreMockUploadReviewerCorrectionParams struct {
	ctx   context.Context
	actor article.Actor
	req   article.UploadCorrectionReq
}

// CoreMockUploadReviewerCorrectionParamPtrs contains pointers to parameters of the Core.UploadReviewerCorrection
type CoreMockUploadReviewerCorrectionParamPtrs struct {
	ctx   *context.Context
	actor *article.Actor
	req   *article.UploadCorrectionReq
}

// CoreMockUploadReviewerCorrectionResults contains results of the Core.UploadReviewerCorrection
type CoreMockUploadReviewerCorrectionResults struct {
	t1  article.TransitionResult
	err error
}

// CoreMockUploadReviewerCorrectionOrigins contains origins of expectations of the Core.UploadReviewerCorrection
type CoreMockUploadReviewerCorrectionExpectationOrigins struct {
	origin      string
	originCtx   string
	originActor string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Optional() *mCoreMockUploadReviewerCorrection {
	mmUploadReviewerCorrection.optional = true
	return mmUploadReviewerCorrection
}

// Expect sets up expected params for Core.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Expect(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) *mCoreMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &CoreMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by ExpectParams functions")
	}

	mmUploadReviewerCorrection.defaultExpectation.params = &CoreMockUploadReviewerCorrectionParams{ctx, actor, req}
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUploadReviewerCorrection.expectations {
		if minimock.Equal(e.params, mmUploadReviewerCorrection.defaultExpectation.params) {
			mmUploadReviewerCorrection.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUploadReviewerCorrection.defaultExpectation.params)
		}
	}

	return mmUploadReviewerCorrection
}

// ExpectCtxParam1 sets up expected param ctx for Core.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) ExpectCtxParam1(ctx context.Context) *mCoreMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &CoreMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.params != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Expect")
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadReviewerCorrection.defaultExpectation.paramPtrs = &CoreMockUploadReviewerCorrectionParamPtrs{}
	}
	mmUploadReviewerCorrection.defaultExpectation.paramPtrs.ctx = &ctx
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUploadReviewerCorrection
}

// ExpectActorParam2 sets up expected param actor for Core.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) ExpectActorParam2(actor article.Actor) *mCoreMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &CoreMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.params != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Expect")
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadReviewerCorrection.defaultExpectation.paramPtrs = &CoreMockUploadReviewerCorrectionParamPtrs{}
	}
	mmUploadReviewerCorrection.defaultExpectation.paramPtrs.actor = &actor
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.originActor = minimock.CallerInfo(1)

	return mmUploadReviewerCorrection
}

// ExpectReqParam3 sets up expected param req for Core.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) ExpectReqParam3(req article.UploadCorrectionReq) *mCoreMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &CoreMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.params != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Expect")
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadReviewerCorrection.defaultExpectation.paramPtrs = &CoreMockUploadReviewerCorrectionParamPtrs{}
	}
	mmUploadReviewerCorrection.defaultExpectation.paramPtrs.req = &req
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmUploadReviewerCorrection
}

// Inspect accepts an inspector function that has same arguments as the Core.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Inspect(f func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq)) *mCoreMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.inspectFuncUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("Inspect function is already set for CoreMock.UploadReviewerCorrection")
	}

	mmUploadReviewerCorrection.mock.inspectFuncUploadReviewerCorrection = f

	return mmUploadReviewerCorrection
}

// Return sets up results that will be returned by Core.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Return(t1 article.TransitionResult, err error) *CoreMock {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &CoreMockUploadReviewerCorrectionExpectation{mock: mmUploadReviewerCorrection.mock}
	}
	mmUploadReviewerCorrection.defaultExpectation.results = &CoreMockUploadReviewerCorrectionResults{t1, err}
	mmUploadReviewerCorrection.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUploadReviewerCorrection.mock
}

// Set uses given function f to mock the Core.UploadReviewerCorrection method
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Set(f func(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (t1 article.TransitionResult, err error)) *CoreMock {
	if mmUploadReviewerCorrection.defaultExpectation != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("Default expectation is already set for the Core.UploadReviewerCorrection method")
	}

	if len(mmUploadReviewerCorrection.expectations) > 0 {
		mmUploadReviewerCorrection.mock.t.Fatalf("Some expectations are already set for the Core.UploadReviewerCorrection method")
	}

	mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection = f
	mmUploadReviewerCorrection.mock.funcUploadReviewerCorrectionOrigin = minimock.CallerInfo(1)
	return mmUploadReviewerCorrection.mock
}

// When sets expectation for the Core.UploadReviewerCorrection which will trigger the result defined by the following
// Then helper
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) When(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) *CoreMockUploadReviewerCorrectionExpectation {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("CoreMock.UploadReviewerCorrection mock is already set by Set")
	}

	expectation := &CoreMockUploadReviewerCorrectionExpectation{
		mock:               mmUploadReviewerCorrection.mock,
		params:             &CoreMockUploadReviewerCorrectionParams{ctx, actor, req},
		expectationOrigins: CoreMockUploadReviewerCorrectionExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUploadReviewerCorrection.expectations = append(mmUploadReviewerCorrection.expectations, expectation)
	return expectation
}

// Then sets up Core.UploadReviewerCorrection return parameters for the expectation previously defined by the When method
func (e *CoreMockUploadReviewerCorrectionExpectation) Then(t1 article.TransitionResult, err error) *CoreMock {
	e.results = &CoreMockUploadReviewerCorrectionResults{t1, err}
	return e.mock
}

// Times sets number of times Core.UploadReviewerCorrection should be invoked
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Times(n uint64) *mCoreMockUploadReviewerCorrection {
	if n == 0 {
		mmUploadReviewerCorrection.mock.t.Fatalf("Times of CoreMock.UploadReviewerCorrection mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUploadReviewerCorrection.expectedInvocations, n)
	mmUploadReviewerCorrection.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUploadReviewerCorrection
}

func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) invocationsDone() bool {
	if len(mmUploadReviewerCorrection.expectations) == 0 && mmUploadReviewerCorrection.defaultExpectation == nil && mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUploadReviewerCorrection.mock.afterUploadReviewerCorrectionCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUploadReviewerCorrection.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// UploadReviewerCorrection implements mm_usecase.Core
func (mmUploadReviewerCorrection *CoreMock) UploadReviewerCorrection(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (t1 article.TransitionResult, err error) {
	mm_atomic.AddUint64(&mmUploadReviewerCorrection.beforeUploadReviewerCorrectionCounter, 1)
	defer mm_atomic.AddUint64(&mmUploadReviewerCorrection.afterUploadReviewerCorrectionCounter, 1)

	mmUploadReviewerCorrection.t.Helper()

	if mmUploadReviewerCorrection.inspectFuncUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.inspectFuncUploadReviewerCorrection(ctx, actor, req)
	}

	mm_params := CoreMockUploadReviewerCorrectionParams{ctx, actor, req}

	// Record call args
	mmUploadReviewerCorrection.UploadReviewerCorrectionMock.mutex.Lock()
	mmUploadReviewerCorrection.UploadReviewerCorrectionMock.callArgs = append(mmUploadReviewerCorrection.UploadReviewerCorrectionMock.callArgs, &mm_params)
	mmUploadReviewerCorrection.UploadReviewerCorrectionMock.mutex.Unlock()

	for _, e := range mmUploadReviewerCorrection.UploadReviewerCorrectionMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.Counter, 1)
		mm_want := mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.params
		mm_want_ptrs := mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.paramPtrs

		mm_got := CoreMockUploadReviewerCorrectionParams{ctx, actor, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUploadReviewerCorrection.t.Errorf("CoreMock.UploadReviewerCorrection got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.actor != nil && !minimock.Equal(*mm_want_ptrs.actor, mm_got.actor) {
				mmUploadReviewerCorrection.t.Errorf("CoreMock.UploadReviewerCorrection got unexpected parameter actor, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.originActor, *mm_want_ptrs.actor, mm_got.actor, minimock.Diff(*mm_want_ptrs.actor, mm_got.actor))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmUploadReviewerCorrection.t.Errorf("CoreMock.UploadReviewerCorrection got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUploadReviewerCorrection.t.Errorf("CoreMock.UploadReviewerCorrection got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.results
		if mm_results == nil {
			mmUploadReviewerCorrection.t.Fatal("No results are set for the CoreMock.UploadReviewerCorrection")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmUploadReviewerCorrection.funcUploadReviewerCorrection != nil {
		return mmUploadReviewerCorrection.funcUploadReviewerCorrection(ctx, actor, req)
	}
	mmUploadReviewerCorrection.t.Fatalf("Unexpected call to CoreMock.UploadReviewerCorrection. %v %v %v", ctx, actor, req)
	return
}

// UploadReviewerCorrectionAfterCounter returns a count of finished CoreMock.UploadReviewerCorrection invocations
func (mmUploadReviewerCorrection *CoreMock) UploadReviewerCorrectionAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadReviewerCorrection.afterUploadReviewerCorrectionCounter)
}

// UploadReviewerCorrectionBeforeCounter returns a count of CoreMock.UploadReviewerCorrection invocations
func (mmUploadReviewerCorrection *CoreMock) UploadReviewerCorrectionBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadReviewerCorrection.beforeUploadReviewerCorrectionCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.UploadReviewerCorrection.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUploadReviewerCorrection *mCoreMockUploadReviewerCorrection) Calls() []*CoreMockUploadReviewerCorrectionParams {
	mmUploadReviewerCorrection.mutex.RLock()

	argCopy := make([]*CoreMockUploadReviewerCorrectionParams, len(mmUploadReviewerCorrection.callArgs))
	copy(argCopy, mmUploadReviewerCorrection.callArgs)

	mmUploadReviewerCorrection.mutex.RUnlock()

	return argCopy
}

// MinimockUploadReviewerCorrectionDone returns true if the count of the UploadReviewerCorrection invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockUploadReviewerCorrectionDone() bool {
	if m.UploadReviewerCorrectionMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.UploadReviewerCorrectionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.UploadReviewerCorrectionMock.invocationsDone()
}

// MinimockUploadReviewerCorrectionInspect logs each unmet expectation
func (m *CoreMock) MinimockUploadReviewerCorrectionInspect() {
	for _, e := range m.UploadReviewerCorrectionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.UploadReviewerCorrection at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUploadReviewerCorrectionCounter := mm_atomic.LoadUint64(&m.afterUploadReviewerCorrectionCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UploadReviewerCorrectionMock.defaultExpectation != nil && afterUploadReviewerCorrectionCounter < 1 {
		if m.UploadReviewerCorrectionMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.UploadReviewerCorrection at\n%s", m.UploadReviewerCorrectionMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.UploadReviewerCorrection at\n%s with params: %#v", m.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.origin, *m.UploadReviewerCorrectionMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUploadReviewerCorrection != nil && afterUploadReviewerCorrectionCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.UploadReviewerCorrection at\n%s", m.funcUploadReviewerCorrectionOrigin)
	}

	if !m.UploadReviewerCorrectionMock.invocationsDone() && afterUploadReviewerCorrectionCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.UploadReviewerCorrection at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UploadReviewerCorrectionMock.expectedInvocations), m.UploadReviewerCorrectionMock.expectedInvocationsOrigin, afterUploadReviewerCorrectionCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *CoreMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockAssignEditorInspect()

			m.MinimockAssignReviewerInspect()

			m.MinimockAssignmentsInspect()

			m.MinimockDeleteInspect()

			m.MinimockEditorApproveInspect()

			m.MinimockGetInspect()

			m.MinimockGetBySlugInspect()

			m.MinimockListInspect()

			m.MinimockPublishInspect()

			m.MinimockReassignEditorInspect()

			m.MinimockReassignReviewerInspect()

			m.MinimockRejectInspect()

			m.MinimockReviewerApproveInspect()

			m.MinimockSetCitationInspect()

			m.MinimockSubmitInspect()

			m.MinimockUploadEditorCorrectionInspect()

			m.MinimockUploadReviewerCorrectionInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *CoreMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *CoreMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockAssignEditorDone() &&
		m.MinimockAssignReviewerDone() &&
		m.MinimockAssignmentsDone() &&
		m.MinimockDeleteDone() &&
		m.MinimockEditorApproveDone() &&
		m.MinimockGetDone() &&
		m.MinimockGetBySlugDone() &&
		m.MinimockListDone() &&
		m.MinimockPublishDone() &&
		m.MinimockReassignEditorDone() &&
		m.MinimockReassignReviewerDone() &&
		m.MinimockRejectDone() &&
		m.MinimockReviewerApproveDone() &&
		m.MinimockSetCitationDone() &&
		m.MinimockSubmitDone() &&
		m.MinimockUploadEditorCorrectionDone() &&
		m.MinimockUploadReviewerCorrectionDone()
}
