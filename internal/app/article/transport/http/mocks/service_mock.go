// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/transport/http.Service -o service_mock.go -n ServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/app/article/usecase"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
)

// ServiceMock implements mm_http.Service
type ServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcAssignEditor          func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)
	funcAssignEditorOrigin    string
	inspectFuncAssignEditor   func(ctx context.Context, req article.AssignReq)
	afterAssignEditorCounter  uint64
	beforeAssignEditorCounter uint64
	AssignEditorMock          mServiceMockAssignEditor

	funcAssignReviewer          func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)
	funcAssignReviewerOrigin    string
	inspectFuncAssignReviewer   func(ctx context.Context, req article.AssignReq)
	afterAssignReviewerCounter  uint64
	beforeAssignReviewerCounter uint64
	AssignReviewerMock          mServiceMockAssignReviewer

	funcAssignments          func(ctx context.Context, articleID uuid.UUID) (aa1 []article.Assignment, err error)
	funcAssignmentsOrigin    string
	inspectFuncAssignments   func(ctx context.Context, articleID uuid.UUID)
	afterAssignmentsCounter  uint64
	beforeAssignmentsCounter uint64
	AssignmentsMock          mServiceMockAssignments

	funcDelete          func(ctx context.Context, id uuid.UUID) (err error)
	funcDeleteOrigin    string
	inspectFuncDelete   func(ctx context.Context, id uuid.UUID)
	afterDeleteCounter  uint64
	beforeDeleteCounter uint64
	DeleteMock          mServiceMockDelete

	funcDiffSummary          func(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID) (s1 diff.Stats, err error)
	funcDiffSummaryOrigin    string
	inspectFuncDiffSummary   func(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID)
	afterDiffSummaryCounter  uint64
	beforeDiffSummaryCounter uint64
	DiffSummaryMock          mServiceMockDiffSummary

	funcDownload          func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (ba1 []byte, s1 string, err error)
	funcDownloadOrigin    string
	inspectFuncDownload   func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format)
	afterDownloadCounter  uint64
	beforeDownloadCounter uint64
	DownloadMock          mServiceMockDownload

	funcEditorApprove          func(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error)
	funcEditorApproveOrigin    string
	inspectFuncEditorApprove   func(ctx context.Context, req article.ApproveReq)
	afterEditorApproveCounter  uint64
	beforeEditorApproveCounter uint64
	EditorApproveMock          mServiceMockEditorApprove

	funcGet          func(ctx context.Context, id uuid.UUID) (a1 article.Article, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, id uuid.UUID)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mServiceMockGet

	funcGetBySlug          func(ctx context.Context, slug string) (a1 article.Article, err error)
	funcGetBySlugOrigin    string
	inspectFuncGetBySlug   func(ctx context.Context, slug string)
	afterGetBySlugCounter  uint64
	beforeGetBySlugCounter uint64
	GetBySlugMock          mServiceMockGetBySlug

	funcGuestSubmit          func(ctx context.Context, cmd usecase.GuestSubmitCmd) (err error)
	funcGuestSubmitOrigin    string
	inspectFuncGuestSubmit   func(ctx context.Context, cmd usecase.GuestSubmitCmd)
	afterGuestSubmitCounter  uint64
	beforeGuestSubmitCounter uint64
	GuestSubmitMock          mServiceMockGuestSubmit

	funcHistory          func(ctx context.Context, articleID uuid.UUID) (ea1 []changelog.Entry, err error)
	funcHistoryOrigin    string
	inspectFuncHistory   func(ctx context.Context, articleID uuid.UUID)
	afterHistoryCounter  uint64
	beforeHistoryCounter uint64
	HistoryMock          mServiceMockHistory

	funcList          func(ctx context.Context, status *article.Status) (aa1 []article.Article, err error)
	funcListOrigin    string
	inspectFuncList   func(ctx context.Context, status *article.Status)
	afterListCounter  uint64
	beforeListCounter uint64
	ListMock          mServiceMockList

	funcPublish          func(ctx context.Context, cmd usecase.PublishCmd) (a1 article.Article, err error)
	funcPublishOrigin    string
	inspectFuncPublish   func(ctx context.Context, cmd usecase.PublishCmd)
	afterPublishCounter  uint64
	beforePublishCounter uint64
	PublishMock          mServiceMockPublish

	funcReassignEditor          func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)
	funcReassignEditorOrigin    string
	inspectFuncReassignEditor   func(ctx context.Context, req article.AssignReq)
	afterReassignEditorCounter  uint64
	beforeReassignEditorCounter uint64
	ReassignEditorMock          mServiceMockReassignEditor

	funcReassignReviewer          func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)
	funcReassignReviewerOrigin    string
	inspectFuncReassignReviewer   func(ctx context.Context, req article.AssignReq)
	afterReassignReviewerCounter  uint64
	beforeReassignReviewerCounter uint64
	ReassignReviewerMock          mServiceMockReassignReviewer

	funcReject          func(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error)
	funcRejectOrigin    string
	inspectFuncReject   func(ctx context.Context, req article.ApproveReq)
	afterRejectCounter  uint64
	beforeRejectCounter uint64
	RejectMock          mServiceMockReject

	funcReviewerApprove          func(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error)
	funcReviewerApproveOrigin    string
	inspectFuncReviewerApprove   func(ctx context.Context, req article.ApproveReq)
	afterReviewerApproveCounter  uint64
	beforeReviewerApproveCounter uint64
	ReviewerApproveMock          mServiceMockReviewerApprove

	funcSetCitation          func(ctx context.Context, req article.SetCitationReq) (a1 article.Article, err error)
	funcSetCitationOrigin    string
	inspectFuncSetCitation   func(ctx context.Context, req article.SetCitationReq)
	afterSetCitationCounter  uint64
	beforeSetCitationCounter uint64
	SetCitationMock          mServiceMockSetCitation

	funcSubmit          func(ctx context.Context, cmd usecase.SubmitCmd) (a1 article.Article, err error)
	funcSubmitOrigin    string
	inspectFuncSubmit   func(ctx context.Context, cmd usecase.SubmitCmd)
	afterSubmitCounter  uint64
	beforeSubmitCounter uint64
	SubmitMock          mServiceMockSubmit

	funcUploadEditorCorrection          func(ctx context.Context, cmd usecase.UploadCorrectionCmd) (a1 article.Article, err error)
	funcUploadEditorCorrectionOrigin    string
	inspectFuncUploadEditorCorrection   func(ctx context.Context, cmd usecase.UploadCorrectionCmd)
	afterUploadEditorCorrectionCounter  uint64
	beforeUploadEditorCorrectionCounter uint64
	UploadEditorCorrectionMock          mServiceMockUploadEditorCorrection

	funcUploadReviewerCorrection          func(ctx context.Context, cmd usecase.UploadCorrectionCmd) (a1 article.Article, err error)
	funcUploadReviewerCorrectionOrigin    string
	inspectFuncUploadReviewerCorrection   func(ctx context.Context, cmd usecase.UploadCorrectionCmd)
	afterUploadReviewerCorrectionCounter  uint64
	beforeUploadReviewerCorrectionCounter uint64
	UploadReviewerCorrectionMock          mServiceMockUploadReviewerCorrection

	funcVerifyGuest          func(ctx context.Context, code string) (a1 article.Article, err error)
	funcVerifyGuestOrigin    string
	inspectFuncVerifyGuest   func(ctx context.Context, code string)
	afterVerifyGuestCounter  uint64
	beforeVerifyGuestCounter uint64
	VerifyGuestMock          mServiceMockVerifyGuest

	funcVersions          func(ctx context.Context, articleID uuid.UUID) (da1 []version.DocumentVersion, err error)
	funcVersionsOrigin    string
	inspectFuncVersions   func(ctx context.Context, articleID uuid.UUID)
	afterVersionsCounter  uint64
	beforeVersionsCounter uint64
	VersionsMock          mServiceMockVersions
}

// NewServiceMock returns a mock for mm_http.Service
func NewServiceMock(t minimock.Tester) *ServiceMock {
	m := &ServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AssignEditorMock = mServiceMockAssignEditor{mock: m}
	m.AssignEditorMock.callArgs = []*ServiceMockAssignEditorParams{}

	m.AssignReviewerMock = mServiceMockAssignReviewer{mock: m}
	m.AssignReviewerMock.callArgs = []*ServiceMockAssignReviewerParams{}

	m.AssignmentsMock = mServiceMockAssignments{mock: m}
	m.AssignmentsMock.callArgs = []*ServiceMockAssignmentsParams{}

	m.DeleteMock = mServiceMockDelete{mock: m}
	m.DeleteMock.callArgs = []*ServiceMockDeleteParams{}

	m.DiffSummaryMock = mServiceMockDiffSummary{mock: m}
	m.DiffSummaryMock.callArgs = []*ServiceMockDiffSummaryParams{}

	m.DownloadMock = mServiceMockDownload{mock: m}
	m.DownloadMock.callArgs = []*ServiceMockDownloadParams{}

	m.EditorApproveMock = mServiceMockEditorApprove{mock: m}
	m.EditorApproveMock.callArgs = []*ServiceMockEditorApproveParams{}

	m.GetMock = mServiceMockGet{mock: m}
	m.GetMock.callArgs = []*ServiceMockGetParams{}

	m.GetBySlugMock = mServiceMockGetBySlug{mock: m}
	m.GetBySlugMock.callArgs = []*ServiceMockGetBySlugParams{}

	m.GuestSubmitMock = mServiceMockGuestSubmit{mock: m}
	m.GuestSubmitMock.callArgs = []*ServiceMockGuestSubmitParams{}

	m.HistoryMock = mServiceMockHistory{mock: m}
	m.HistoryMock.callArgs = []*ServiceMockHistoryParams{}

	m.ListMock = mServiceMockList{mock: m}
	m.ListMock.callArgs = []*ServiceMockListParams{}

	m.PublishMock = mServiceMockPublish{mock: m}
	m.PublishMock.callArgs = []*ServiceMockPublishParams{}

	m.ReassignEditorMock = mServiceMockReassignEditor{mock: m}
	m.ReassignEditorMock.callArgs = []*ServiceMockReassignEditorParams{}

	m.ReassignReviewerMock = mServiceMockReassignReviewer{mock: m}
	m.ReassignReviewerMock.callArgs = []*ServiceMockReassignReviewerParams{}

	m.RejectMock = mServiceMockReject{mock: m}
	m.RejectMock.callArgs = []*ServiceMockRejectParams{}

	m.ReviewerApproveMock = mServiceMockReviewerApprove{mock: m}
	m.ReviewerApproveMock.callArgs = []*ServiceMockReviewerApproveParams{}

	m.SetCitationMock = mServiceMockSetCitation{mock: m}
	m.SetCitationMock.callArgs = []*ServiceMockSetCitationParams{}

	m.SubmitMock = mServiceMockSubmit{mock: m}
	m.SubmitMock.callArgs = []*ServiceMockSubmitParams{}

	m.UploadEditorCorrectionMock = mServiceMockUploadEditorCorrection{mock: m}
	m.UploadEditorCorrectionMock.callArgs = []*ServiceMockUploadEditorCorrectionParams{}

	m.UploadReviewerCorrectionMock = mServiceMockUploadReviewerCorrection{mock: m}
	m.UploadReviewerCorrectionMock.callArgs = []*ServiceMockUploadReviewerCorrectionParams{}

	m.VerifyGuestMock = mServiceMockVerifyGuest{mock: m}
	m.VerifyGuestMock.callArgs = []*ServiceMockVerifyGuestParams{}

	m.VersionsMock = mServiceMockVersions{mock: m}
	m.VersionsMock.callArgs = []*ServiceMockVersionsParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mServiceMockAssignEditor struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockAssignEditorExpectation
	expectations       []*ServiceMockAssignEditorExpectation

	callArgs []*ServiceMockAssignEditorParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockAssignEditorExpectation specifies expectation struct of the Service.AssignEditor
type ServiceMockAssignEditorExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockAssignEditorParams
	paramPtrs          *ServiceMockAssignEditorParamPtrs
	expectationOrigins ServiceMockAssignEditorExpectationOrigins
	results            *ServiceMockAssignEditorResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockAssignEditorParams contains parameters of the Service.AssignEditor
type ServiceMockAssignEditorParams struct {
	ctx context.Context
	req article.AssignReq
}

// ServiceMockAssignEditorParamPtrs contains pointers to parameters of the Service.AssignEditor
type ServiceMockAssignEditorParamPtrs struct {
	ctx *context.Context
	req *article.AssignReq
}

// ServiceMockAssignEditorResults contains results of the Service.AssignEditor
type ServiceMockAssignEditorResults struct {
	a1  article.Article
	err error
}

// ServiceMockAssignEditorOrigins contains origins of expectations of the Service.AssignEditor
type ServiceMockAssignEditorExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignEditor *mServiceMockAssignEditor) Optional() *mServiceMockAssignEditor {
	mmAssignEditor.optional = true
	return mmAssignEditor
}

// Expect sets up expected params for Service.AssignEditor
func (mmAssignEditor *mServiceMockAssignEditor) Expect(ctx context.Context, req article.AssignReq) *mServiceMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &ServiceMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.paramPtrs != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by ExpectParams functions")
	}

	mmAssignEditor.defaultExpectation.params = &ServiceMockAssignEditorParams{ctx, req}
	mmAssignEditor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignEditor.expectations {
		if minimock.Equal(e.params, mmAssignEditor.defaultExpectation.params) {
			mmAssignEditor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignEditor.defaultExpectation.params)
		}
	}

	return mmAssignEditor
}

// ExpectCtxParam1 sets up expected param ctx for Service.AssignEditor
func (mmAssignEditor *mServiceMockAssignEditor) ExpectCtxParam1(ctx context.Context) *mServiceMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &ServiceMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.params != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Expect")
	}

	if mmAssignEditor.defaultExpectation.paramPtrs == nil {
		mmAssignEditor.defaultExpectation.paramPtrs = &ServiceMockAssignEditorParamPtrs{}
	}
	mmAssignEditor.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignEditor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignEditor
}

// ExpectReqParam2 sets up expected param req for Service.AssignEditor
func (mmAssignEditor *mServiceMockAssignEditor) ExpectReqParam2(req article.AssignReq) *mServiceMockAssignEditor {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &ServiceMockAssignEditorExpectation{}
	}

	if mmAssignEditor.defaultExpectation.params != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Expect")
	}

	if mmAssignEditor.defaultExpectation.paramPtrs == nil {
		mmAssignEditor.defaultExpectation.paramPtrs = &ServiceMockAssignEditorParamPtrs{}
	}
	mmAssignEditor.defaultExpectation.paramPtrs.req = &req
	mmAssignEditor.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmAssignEditor
}

// Inspect accepts an inspector function that has same arguments as the Service.AssignEditor
func (mmAssignEditor *mServiceMockAssignEditor) Inspect(f func(ctx context.Context, req article.AssignReq)) *mServiceMockAssignEditor {
	if mmAssignEditor.mock.inspectFuncAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("Inspect function is already set for ServiceMock.AssignEditor")
	}

	mmAssignEditor.mock.inspectFuncAssignEditor = f

	return mmAssignEditor
}

// Return sets up results that will be returned by Service.AssignEditor
func (mmAssignEditor *mServiceMockAssignEditor) Return(a1 article.Article, err error) *ServiceMock {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Set")
	}

	if mmAssignEditor.defaultExpectation == nil {
		mmAssignEditor.defaultExpectation = &ServiceMockAssignEditorExpectation{mock: mmAssignEditor.mock}
	}
	mmAssignEditor.defaultExpectation.results = &ServiceMockAssignEditorResults{a1, err}
	mmAssignEditor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignEditor.mock
}

// Set uses given function f to mock the Service.AssignEditor method
func (mmAssignEditor *mServiceMockAssignEditor) Set(f func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)) *ServiceMock {
	if mmAssignEditor.defaultExpectation != nil {
		mmAssignEditor.mock.t.Fatalf("Default expectation is already set for the Service.AssignEditor method")
	}

	if len(mmAssignEditor.expectations) > 0 {
		mmAssignEditor.mock.t.Fatalf("Some expectations are already set for the Service.AssignEditor method")
	}

	mmAssignEditor.mock.funcAssignEditor = f
	mmAssignEditor.mock.funcAssignEditorOrigin = minimock.CallerInfo(1)
	return mmAssignEditor.mock
}

// When sets expectation for the Service.AssignEditor which will trigger the result defined by the following
// Then helper
func (mmAssignEditor *mServiceMockAssignEditor) When(ctx context.Context, req article.AssignReq) *ServiceMockAssignEditorExpectation {
	if mmAssignEditor.mock.funcAssignEditor != nil {
		mmAssignEditor.mock.t.Fatalf("ServiceMock.AssignEditor mock is already set by Set")
	}

	expectation := &ServiceMockAssignEditorExpectation{
		mock:               mmAssignEditor.mock,
		params:             &ServiceMockAssignEditorParams{ctx, req},
		expectationOrigins: ServiceMockAssignEditorExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignEditor.expectations = append(mmAssignEditor.expectations, expectation)
	return expectation
}

// Then sets up Service.AssignEditor return parameters for the expectation previously defined by the When method
func (e *ServiceMockAssignEditorExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockAssignEditorResults{a1, err}
	return e.mock
}

// Times sets number of times Service.AssignEditor should be invoked
func (mmAssignEditor *mServiceMockAssignEditor) Times(n uint64) *mServiceMockAssignEditor {
	if n == 0 {
		mmAssignEditor.mock.t.Fatalf("Times of ServiceMock.AssignEditor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignEditor.expectedInvocations, n)
	mmAssignEditor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignEditor
}

func (mmAssignEditor *mServiceMockAssignEditor) invocationsDone() bool {
	if len(mmAssignEditor.expectations) == 0 && mmAssignEditor.defaultExpectation == nil && mmAssignEditor.mock.funcAssignEditor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignEditor.mock.afterAssignEditorCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignEditor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// AssignEditor implements mm_http.Service
func (mmAssignEditor *ServiceMock) AssignEditor(ctx context.Context, req article.AssignReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmAssignEditor.beforeAssignEditorCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignEditor.afterAssignEditorCounter, 1)

	mmAssignEditor.t.Helper()

	if mmAssignEditor.inspectFuncAssignEditor != nil {
		mmAssignEditor.inspectFuncAssignEditor(ctx, req)
	}

	mm_params := ServiceMockAssignEditorParams{ctx, req}

	// Record call args
	mmAssignEditor.AssignEditorMock.mutex.Lock()
	mmAssignEditor.AssignEditorMock.callArgs = append(mmAssignEditor.AssignEditorMock.callArgs, &mm_params)
	mmAssignEditor.AssignEditorMock.mutex.Unlock()

	for _, e := range mmAssignEditor.AssignEditorMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmAssignEditor.AssignEditorMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAssignEditor.AssignEditorMock.defaultExpectation.Counter, 1)
		mm_want := mmAssignEditor.AssignEditorMock.defaultExpectation.params
		mm_want_ptrs := mmAssignEditor.AssignEditorMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockAssignEditorParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignEditor.t.Errorf("ServiceMock.AssignEditor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmAssignEditor.t.Errorf("ServiceMock.AssignEditor got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignEditor.t.Errorf("ServiceMock.AssignEditor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignEditor.AssignEditorMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignEditor.AssignEditorMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignEditor.t.Fatal("No results are set for the ServiceMock.AssignEditor")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmAssignEditor.funcAssignEditor != nil {
		return mmAssignEditor.funcAssignEditor(ctx, req)
	}
	mmAssignEditor.t.Fatalf("Unexpected call to ServiceMock.AssignEditor. %v %v", ctx, req)
	return
}

// AssignEditorAfterCounter returns a count of finished ServiceMock.AssignEditor invocations
func (mmAssignEditor *ServiceMock) AssignEditorAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignEditor.afterAssignEditorCounter)
}

// AssignEditorBeforeCounter returns a count of ServiceMock.AssignEditor invocations
func (mmAssignEditor *ServiceMock) AssignEditorBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignEditor.beforeAssignEditorCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.AssignEditor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignEditor *mServiceMockAssignEditor) Calls() []*ServiceMockAssignEditorParams {
	mmAssignEditor.mutex.RLock()

	argCopy := make([]*ServiceMockAssignEditorParams, len(mmAssignEditor.callArgs))
	copy(argCopy, mmAssignEditor.callArgs)

	mmAssignEditor.mutex.RUnlock()

	return argCopy
}

// MinimockAssignEditorDone returns true if the count of the AssignEditor invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockAssignEditorDone() bool {
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
func (m *ServiceMock) MinimockAssignEditorInspect() {
	for _, e := range m.AssignEditorMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.AssignEditor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignEditorCounter := mm_atomic.LoadUint64(&m.afterAssignEditorCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignEditorMock.defaultExpectation != nil && afterAssignEditorCounter < 1 {
		if m.AssignEditorMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.AssignEditor at\n%s", m.AssignEditorMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.AssignEditor at\n%s with params: %#v", m.AssignEditorMock.defaultExpectation.expectationOrigins.origin, *m.AssignEditorMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignEditor != nil && afterAssignEditorCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.AssignEditor at\n%s", m.funcAssignEditorOrigin)
	}

	if !m.AssignEditorMock.invocationsDone() && afterAssignEditorCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.AssignEditor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignEditorMock.expectedInvocations), m.AssignEditorMock.expectedInvocationsOrigin, afterAssignEditorCounter)
	}
}

type mServiceMockAssignReviewer struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockAssignReviewerExpectation
	expectations       []*ServiceMockAssignReviewerExpectation

	callArgs []*ServiceMockAssignReviewerParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockAssignReviewerExpectation specifies expectation struct of the Service.AssignReviewer
type ServiceMockAssignReviewerExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockAssignReviewerParams
	paramPtrs          *ServiceMockAssignReviewerParamPtrs
	expectationOrigins ServiceMockAssignReviewerExpectationOrigins
	results            *ServiceMockAssignReviewerResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockAssignReviewerParams contains parameters of the Service.AssignReviewer
type ServiceMockAssignReviewerParams struct {
	ctx context.Context
	req article.AssignReq
}

// ServiceMockAssignReviewerParamPtrs contains pointers to parameters of the Service.AssignReviewer
type ServiceMockAssignReviewerParamPtrs struct {
	ctx *context.Context
	req *article.AssignReq
}

// ServiceMockAssignReviewerResults contains results of the Service.AssignReviewer
type ServiceMockAssignReviewerResults struct {
	a1  article.Article
	err error
}

// ServiceMockAssignReviewerOrigins contains origins of expectations of the Service.AssignReviewer
type ServiceMockAssignReviewerExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignReviewer *mServiceMockAssignReviewer) Optional() *mServiceMockAssignReviewer {
	mmAssignReviewer.optional = true
	return mmAssignReviewer
}

// Expect sets up expected params for Service.AssignReviewer
func (mmAssignReviewer *mServiceMockAssignReviewer) Expect(ctx context.Context, req article.AssignReq) *mServiceMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &ServiceMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by ExpectParams functions")
	}

	mmAssignReviewer.defaultExpectation.params = &ServiceMockAssignReviewerParams{ctx, req}
	mmAssignReviewer.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignReviewer.expectations {
		if minimock.Equal(e.params, mmAssignReviewer.defaultExpectation.params) {
			mmAssignReviewer.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignReviewer.defaultExpectation.params)
		}
	}

	return mmAssignReviewer
}

// ExpectCtxParam1 sets up expected param ctx for Service.AssignReviewer
func (mmAssignReviewer *mServiceMockAssignReviewer) ExpectCtxParam1(ctx context.Context) *mServiceMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &ServiceMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.params != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Expect")
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs == nil {
		mmAssignReviewer.defaultExpectation.paramPtrs = &ServiceMockAssignReviewerParamPtrs{}
	}
	mmAssignReviewer.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignReviewer.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignReviewer
}

// ExpectReqParam2 sets up expected param req for Service.AssignReviewer
func (mmAssignReviewer *mServiceMockAssignReviewer) ExpectReqParam2(req article.AssignReq) *mServiceMockAssignReviewer {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &ServiceMockAssignReviewerExpectation{}
	}

	if mmAssignReviewer.defaultExpectation.params != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Expect")
	}

	if mmAssignReviewer.defaultExpectation.paramPtrs == nil {
		mmAssignReviewer.defaultExpectation.paramPtrs = &ServiceMockAssignReviewerParamPtrs{}
	}
	mmAssignReviewer.defaultExpectation.paramPtrs.req = &req
	mmAssignReviewer.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmAssignReviewer
}

// Inspect accepts an inspector function that has same arguments as the Service.AssignReviewer
func (mmAssignReviewer *mServiceMockAssignReviewer) Inspect(f func(ctx context.Context, req article.AssignReq)) *mServiceMockAssignReviewer {
	if mmAssignReviewer.mock.inspectFuncAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("Inspect function is already set for ServiceMock.AssignReviewer")
	}

	mmAssignReviewer.mock.inspectFuncAssignReviewer = f

	return mmAssignReviewer
}

// Return sets up results that will be returned by Service.AssignReviewer
func (mmAssignReviewer *mServiceMockAssignReviewer) Return(a1 article.Article, err error) *ServiceMock {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Set")
	}

	if mmAssignReviewer.defaultExpectation == nil {
		mmAssignReviewer.defaultExpectation = &ServiceMockAssignReviewerExpectation{mock: mmAssignReviewer.mock}
	}
	mmAssignReviewer.defaultExpectation.results = &ServiceMockAssignReviewerResults{a1, err}
	mmAssignReviewer.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignReviewer.mock
}

// Set uses given function f to mock the Service.AssignReviewer method
func (mmAssignReviewer *mServiceMockAssignReviewer) Set(f func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)) *ServiceMock {
	if mmAssignReviewer.defaultExpectation != nil {
		mmAssignReviewer.mock.t.Fatalf("Default expectation is already set for the Service.AssignReviewer method")
	}

	if len(mmAssignReviewer.expectations) > 0 {
		mmAssignReviewer.mock.t.Fatalf("Some expectations are already set for the Service.AssignReviewer method")
	}

	mmAssignReviewer.mock.funcAssignReviewer = f
	mmAssignReviewer.mock.funcAssignReviewerOrigin = minimock.CallerInfo(1)
	return mmAssignReviewer.mock
}

// When sets expectation for the Service.AssignReviewer which will trigger the result defined by the following
// Then helper
func (mmAssignReviewer *mServiceMockAssignReviewer) When(ctx context.Context, req article.AssignReq) *ServiceMockAssignReviewerExpectation {
	if mmAssignReviewer.mock.funcAssignReviewer != nil {
		mmAssignReviewer.mock.t.Fatalf("ServiceMock.AssignReviewer mock is already set by Set")
	}

	expectation := &ServiceMockAssignReviewerExpectation{
		mock:               mmAssignReviewer.mock,
		params:             &ServiceMockAssignReviewerParams{ctx, req},
		expectationOrigins: ServiceMockAssignReviewerExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignReviewer.expectations = append(mmAssignReviewer.expectations, expectation)
	return expectation
}

// Then sets up Service.AssignReviewer return parameters for the expectation previously defined by the When method
func (e *ServiceMockAssignReviewerExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockAssignReviewerResults{a1, err}
	return e.mock
}

// Times sets number of times Service.AssignReviewer should be invoked
func (mmAssignReviewer *mServiceMockAssignReviewer) Times(n uint64) *mServiceMockAssignReviewer {
	if n == 0 {
		mmAssignReviewer.mock.t.Fatalf("Times of ServiceMock.AssignReviewer mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignReviewer.expectedInvocations, n)
	mmAssignReviewer.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignReviewer
}

func (mmAssignReviewer *mServiceMockAssignReviewer) invocationsDone() bool {
	if len(mmAssignReviewer.expectations) == 0 && mmAssignReviewer.defaultExpectation == nil && mmAssignReviewer.mock.funcAssignReviewer == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignReviewer.mock.afterAssignReviewerCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignReviewer.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// AssignReviewer implements mm_http.Service
func (mmAssignReviewer *ServiceMock) AssignReviewer(ctx context.Context, req article.AssignReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmAssignReviewer.beforeAssignReviewerCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignReviewer.afterAssignReviewerCounter, 1)

	mmAssignReviewer.t.Helper()

	if mmAssignReviewer.inspectFuncAssignReviewer != nil {
		mmAssignReviewer.inspectFuncAssignReviewer(ctx, req)
	}

	mm_params := ServiceMockAssignReviewerParams{ctx, req}

	// Record call args
	mmAssignReviewer.AssignReviewerMock.mutex.Lock()
	mmAssignReviewer.AssignReviewerMock.callArgs = append(mmAssignReviewer.AssignReviewerMock.callArgs, &mm_params)
	mmAssignReviewer.AssignReviewerMock.mutex.Unlock()

	for _, e := range mmAssignReviewer.AssignReviewerMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmAssignReviewer.AssignReviewerMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAssignReviewer.AssignReviewerMock.defaultExpectation.Counter, 1)
		mm_want := mmAssignReviewer.AssignReviewerMock.defaultExpectation.params
		mm_want_ptrs := mmAssignReviewer.AssignReviewerMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockAssignReviewerParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignReviewer.t.Errorf("ServiceMock.AssignReviewer got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmAssignReviewer.t.Errorf("ServiceMock.AssignReviewer got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignReviewer.t.Errorf("ServiceMock.AssignReviewer got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignReviewer.AssignReviewerMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignReviewer.AssignReviewerMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignReviewer.t.Fatal("No results are set for the ServiceMock.AssignReviewer")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmAssignReviewer.funcAssignReviewer != nil {
		return mmAssignReviewer.funcAssignReviewer(ctx, req)
	}
	mmAssignReviewer.t.Fatalf("Unexpected call to ServiceMock.AssignReviewer. %v %v", ctx, req)
	return
}

// AssignReviewerAfterCounter returns a count of finished ServiceMock.AssignReviewer invocations
func (mmAssignReviewer *ServiceMock) AssignReviewerAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignReviewer.afterAssignReviewerCounter)
}

// AssignReviewerBeforeCounter returns a count of ServiceMock.AssignReviewer invocations
func (mmAssignReviewer *ServiceMock) AssignReviewerBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignReviewer.beforeAssignReviewerCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.AssignReviewer.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignReviewer *mServiceMockAssignReviewer) Calls() []*ServiceMockAssignReviewerParams {
	mmAssignReviewer.mutex.RLock()

	argCopy := make([]*ServiceMockAssignReviewerParams, len(mmAssignReviewer.callArgs))
	copy(argCopy, mmAssignReviewer.callArgs)

	mmAssignReviewer.mutex.RUnlock()

	return argCopy
}

// MinimockAssignReviewerDone returns true if the count of the AssignReviewer invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockAssignReviewerDone() bool {
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
func (m *ServiceMock) MinimockAssignReviewerInspect() {
	for _, e := range m.AssignReviewerMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.AssignReviewer at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignReviewerCounter := mm_atomic.LoadUint64(&m.afterAssignReviewerCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignReviewerMock.defaultExpectation != nil && afterAssignReviewerCounter < 1 {
		if m.AssignReviewerMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.AssignReviewer at\n%s", m.AssignReviewerMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.AssignReviewer at\n%s with params: %#v", m.AssignReviewerMock.defaultExpectation.expectationOrigins.origin, *m.AssignReviewerMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignReviewer != nil && afterAssignReviewerCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.AssignReviewer at\n%s", m.funcAssignReviewerOrigin)
	}

	if !m.AssignReviewerMock.invocationsDone() && afterAssignReviewerCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.AssignReviewer at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignReviewerMock.expectedInvocations), m.AssignReviewerMock.expectedInvocationsOrigin, afterAssignReviewerCounter)
	}
}

type mServiceMockAssignments struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockAssignmentsExpectation
	expectations       []*ServiceMockAssignmentsExpectation

	callArgs []*ServiceMockAssignmentsParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockAssignmentsExpectation specifies expectation struct of the Service.Assignments
type ServiceMockAssignmentsExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockAssignmentsParams
	paramPtrs          *ServiceMockAssignmentsParamPtrs
	expectationOrigins ServiceMockAssignmentsExpectationOrigins
	results            *ServiceMockAssignmentsResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockAssignmentsParams contains parameters of the Service.Assignments
type ServiceMockAssignmentsParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// ServiceMockAssignmentsParamPtrs contains pointers to parameters of the Service.Assignments
type ServiceMockAssignmentsParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// ServiceMockAssignmentsResults contains results of the Service.Assignments
type ServiceMockAssignmentsResults struct {
	aa1 []article.Assignment
	err error
}

// ServiceMockAssignmentsOrigins contains origins of expectations of the Service.Assignments
type ServiceMockAssignmentsExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignments *mServiceMockAssignments) Optional() *mServiceMockAssignments {
	mmAssignments.optional = true
	return mmAssignments
}

// Expect sets up expected params for Service.Assignments
func (mmAssignments *mServiceMockAssignments) Expect(ctx context.Context, articleID uuid.UUID) *mServiceMockAssignments {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &ServiceMockAssignmentsExpectation{}
	}

	if mmAssignments.defaultExpectation.paramPtrs != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by ExpectParams functions")
	}

	mmAssignments.defaultExpectation.params = &ServiceMockAssignmentsParams{ctx, articleID}
	mmAssignments.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignments.expectations {
		if minimock.Equal(e.params, mmAssignments.defaultExpectation.params) {
			mmAssignments.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignments.defaultExpectation.params)
		}
	}

	return mmAssignments
}

// ExpectCtxParam1 sets up expected param ctx for Service.Assignments
func (mmAssignments *mServiceMockAssignments) ExpectCtxParam1(ctx context.Context) *mServiceMockAssignments {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &ServiceMockAssignmentsExpectation{}
	}

	if mmAssignments.defaultExpectation.params != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Expect")
	}

	if mmAssignments.defaultExpectation.paramPtrs == nil {
		mmAssignments.defaultExpectation.paramPtrs = &ServiceMockAssignmentsParamPtrs{}
	}
	mmAssignments.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignments.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignments
}

// ExpectArticleIDParam2 sets up expected param articleID for Service.Assignments
func (mmAssignments *mServiceMockAssignments) ExpectArticleIDParam2(articleID uuid.UUID) *mServiceMockAssignments {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &ServiceMockAssignmentsExpectation{}
	}

	if mmAssignments.defaultExpectation.params != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Expect")
	}

	if mmAssignments.defaultExpectation.paramPtrs == nil {
		mmAssignments.defaultExpectation.paramPtrs = &ServiceMockAssignmentsParamPtrs{}
	}
	mmAssignments.defaultExpectation.paramPtrs.articleID = &articleID
	mmAssignments.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmAssignments
}

// Inspect accepts an inspector function that has same arguments as the Service.Assignments
func (mmAssignments *mServiceMockAssignments) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mServiceMockAssignments {
	if mmAssignments.mock.inspectFuncAssignments != nil {
		mmAssignments.mock.t.Fatalf("Inspect function is already set for ServiceMock.Assignments")
	}

	mmAssignments.mock.inspectFuncAssignments = f

	return mmAssignments
}

// Return sets up results that will be returned by Service.Assignments
func (mmAssignments *mServiceMockAssignments) Return(aa1 []article.Assignment, err error) *ServiceMock {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Set")
	}

	if mmAssignments.defaultExpectation == nil {
		mmAssignments.defaultExpectation = &ServiceMockAssignmentsExpectation{mock: mmAssignments.mock}
	}
	mmAssignments.defaultExpectation.results = &ServiceMockAssignmentsResults{aa1, err}
	mmAssignments.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignments.mock
}

// Set uses given function f to mock the Service.Assignments method
func (mmAssignments *mServiceMockAssignments) Set(f func(ctx context.Context, articleID uuid.UUID) (aa1 []article.Assignment, err error)) *ServiceMock {
	if mmAssignments.defaultExpectation != nil {
		mmAssignments.mock.t.Fatalf("Default expectation is already set for the Service.Assignments method")
	}

	if len(mmAssignments.expectations) > 0 {
		mmAssignments.mock.t.Fatalf("Some expectations are already set for the Service.Assignments method")
	}

	mmAssignments.mock.funcAssignments = f
	mmAssignments.mock.funcAssignmentsOrigin = minimock.CallerInfo(1)
	return mmAssignments.mock
}

// When sets expectation for the Service.Assignments which will trigger the result defined by the following
// Then helper
func (mmAssignments *mServiceMockAssignments) When(ctx context.Context, articleID uuid.UUID) *ServiceMockAssignmentsExpectation {
	if mmAssignments.mock.funcAssignments != nil {
		mmAssignments.mock.t.Fatalf("ServiceMock.Assignments mock is already set by Set")
	}

	expectation := &ServiceMockAssignmentsExpectation{
		mock:               mmAssignments.mock,
		params:             &ServiceMockAssignmentsParams{ctx, articleID},
		expectationOrigins: ServiceMockAssignmentsExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignments.expectations = append(mmAssignments.expectations, expectation)
	return expectation
}

// Then sets up Service.Assignments return parameters for the expectation previously defined by the When method
func (e *ServiceMockAssignmentsExpectation) Then(aa1 []article.Assignment, err error) *ServiceMock {
	e.results = &ServiceMockAssignmentsResults{aa1, err}
	return e.mock
}

// Times sets number of times Service.Assignments should be invoked
func (mmAssignments *mServiceMockAssignments) Times(n uint64) *mServiceMockAssignments {
	if n == 0 {
		mmAssignments.mock.t.Fatalf("Times of ServiceMock.Assignments mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignments.expectedInvocations, n)
	mmAssignments.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignments
}

func (mmAssignments *mServiceMockAssignments) invocationsDone() bool {
	if len(mmAssignments.expectations) == 0 && mmAssignments.defaultExpectation == nil && mmAssignments.mock.funcAssignments == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignments.mock.afterAssignmentsCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignments.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Assignments implements mm_http.Service
func (mmAssignments *ServiceMock) Assignments(ctx context.Context, articleID uuid.UUID) (aa1 []article.Assignment, err error) {
	mm_atomic.AddUint64(&mmAssignments.beforeAssignmentsCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignments.afterAssignmentsCounter, 1)

	mmAssignments.t.Helper()

	if mmAssignments.inspectFuncAssignments != nil {
		mmAssignments.inspectFuncAssignments(ctx, articleID)
	}

	mm_params := ServiceMockAssignmentsParams{ctx, articleID}

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

		mm_got := ServiceMockAssignmentsParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignments.t.Errorf("ServiceMock.Assignments got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignments.AssignmentsMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmAssignments.t.Errorf("ServiceMock.Assignments got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignments.AssignmentsMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignments.t.Errorf("ServiceMock.Assignments got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignments.AssignmentsMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignments.AssignmentsMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignments.t.Fatal("No results are set for the ServiceMock.Assignments")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmAssignments.funcAssignments != nil {
		return mmAssignments.funcAssignments(ctx, articleID)
	}
	mmAssignments.t.Fatalf("Unexpected call to ServiceMock.Assignments. %v %v", ctx, articleID)
	return
}

// AssignmentsAfterCounter returns a count of finished ServiceMock.Assignments invocations
func (mmAssignments *ServiceMock) AssignmentsAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignments.afterAssignmentsCounter)
}

// AssignmentsBeforeCounter returns a count of ServiceMock.Assignments invocations
func (mmAssignments *ServiceMock) AssignmentsBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignments.beforeAssignmentsCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Assignments.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignments *mServiceMockAssignments) Calls() []*ServiceMockAssignmentsParams {
	mmAssignments.mutex.RLock()

	argCopy := make([]*ServiceMockAssignmentsParams, len(mmAssignments.callArgs))
	copy(argCopy, mmAssignments.callArgs)

	mmAssignments.mutex.RUnlock()

	return argCopy
}

// MinimockAssignmentsDone returns true if the count of the Assignments invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockAssignmentsDone() bool {
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
func (m *ServiceMock) MinimockAssignmentsInspect() {
	for _, e := range m.AssignmentsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Assignments at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignmentsCounter := mm_atomic.LoadUint64(&m.afterAssignmentsCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignmentsMock.defaultExpectation != nil && afterAssignmentsCounter < 1 {
		if m.AssignmentsMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Assignments at\n%s", m.AssignmentsMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Assignments at\n%s with params: %#v", m.AssignmentsMock.defaultExpectation.expectationOrigins.origin, *m.AssignmentsMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignments != nil && afterAssignmentsCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Assignments at\n%s", m.funcAssignmentsOrigin)
	}

	if !m.AssignmentsMock.invocationsDone() && afterAssignmentsCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Assignments at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignmentsMock.expectedInvocations), m.AssignmentsMock.expectedInvocationsOrigin, afterAssignmentsCounter)
	}
}

type mServiceMockDelete struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockDeleteExpectation
	expectations       []*ServiceMockDeleteExpectation

	callArgs []*ServiceMockDeleteParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockDeleteExpectation specifies expectation struct of the Service.Delete
type ServiceMockDeleteExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockDeleteParams
	paramPtrs          *ServiceMockDeleteParamPtrs
	expectationOrigins ServiceMockDeleteExpectationOrigins
	results            *ServiceMockDeleteResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockDeleteParams contains parameters of the Service.Delete
type ServiceMockDeleteParams struct {
	ctx context.Context
	id  uuid.UUID
}

// ServiceMockDeleteParamPtrs contains pointers to parameters of the Service.Delete
type ServiceMockDeleteParamPtrs struct {
	ctx *context.Context
	id  *uuid.UUID
}

// ServiceMockDeleteResults contains results of the Service.Delete
type ServiceMockDeleteResults struct {
	err error
}

// ServiceMockDeleteOrigins contains origins of expectations of the Service.Delete
type ServiceMockDeleteExpectationOrigins struct {
	origin    string
	originCtx string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDelete *mServiceMockDelete) Optional() *mServiceMockDelete {
	mmDelete.optional = true
	return mmDelete
}

// Expect sets up expected params for Service.Delete
func (mmDelete *mServiceMockDelete) Expect(ctx context.Context, id uuid.UUID) *mServiceMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &ServiceMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.paramPtrs != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by ExpectParams functions")
	}

	mmDelete.defaultExpectation.params = &ServiceMockDeleteParams{ctx, id}
	mmDelete.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDelete.expectations {
		if minimock.Equal(e.params, mmDelete.defaultExpectation.params) {
			mmDelete.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDelete.defaultExpectation.params)
		}
	}

	return mmDelete
}

// ExpectCtxParam1 sets up expected param ctx for Service.Delete
func (mmDelete *mServiceMockDelete) ExpectCtxParam1(ctx context.Context) *mServiceMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &ServiceMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &ServiceMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.ctx = &ctx
	mmDelete.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDelete
}

// ExpectIdParam2 sets up expected param id for Service.Delete
func (mmDelete *mServiceMockDelete) ExpectIdParam2(id uuid.UUID) *mServiceMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &ServiceMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &ServiceMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.id = &id
	mmDelete.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmDelete
}

// Inspect accepts an inspector function that has same arguments as the Service.Delete
func (mmDelete *mServiceMockDelete) Inspect(f func(ctx context.Context, id uuid.UUID)) *mServiceMockDelete {
	if mmDelete.mock.inspectFuncDelete != nil {
		mmDelete.mock.t.Fatalf("Inspect function is already set for ServiceMock.Delete")
	}

	mmDelete.mock.inspectFuncDelete = f

	return mmDelete
}

// Return sets up results that will be returned by Service.Delete
func (mmDelete *mServiceMockDelete) Return(err error) *ServiceMock {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &ServiceMockDeleteExpectation{mock: mmDelete.mock}
	}
	mmDelete.defaultExpectation.results = &ServiceMockDeleteResults{err}
	mmDelete.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// Set uses given function f to mock the Service.Delete method
func (mmDelete *mServiceMockDelete) Set(f func(ctx context.Context, id uuid.UUID) (err error)) *ServiceMock {
	if mmDelete.defaultExpectation != nil {
		mmDelete.mock.t.Fatalf("Default expectation is already set for the Service.Delete method")
	}

	if len(mmDelete.expectations) > 0 {
		mmDelete.mock.t.Fatalf("Some expectations are already set for the Service.Delete method")
	}

	mmDelete.mock.funcDelete = f
	mmDelete.mock.funcDeleteOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// When sets expectation for the Service.Delete which will trigger the result defined by the following
// Then helper
func (mmDelete *mServiceMockDelete) When(ctx context.Context, id uuid.UUID) *ServiceMockDeleteExpectation {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("ServiceMock.Delete mock is already set by Set")
	}

	expectation := &ServiceMockDeleteExpectation{
		mock:               mmDelete.mock,
		params:             &ServiceMockDeleteParams{ctx, id},
		expectationOrigins: ServiceMockDeleteExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDelete.expectations = append(mmDelete.expectations, expectation)
	return expectation
}

// Then sets up Service.Delete return parameters for the expectation previously defined by the When method
func (e *ServiceMockDeleteExpectation) Then(err error) *ServiceMock {
	e.results = &ServiceMockDeleteResults{err}
	return e.mock
}

// Times sets number of times Service.Delete should be invoked
func (mmDelete *mServiceMockDelete) Times(n uint64) *mServiceMockDelete {
	if n == 0 {
		mmDelete.mock.t.Fatalf("Times of ServiceMock.Delete mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDelete.expectedInvocations, n)
	mmDelete.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDelete
}

func (mmDelete *mServiceMockDelete) invocationsDone() bool {
	if len(mmDelete.expectations) == 0 && mmDelete.defaultExpectation == nil && mmDelete.mock.funcDelete == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDelete.mock.afterDeleteCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDelete.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Delete implements mm_http.Service
func (mmDelete *ServiceMock) Delete(ctx context.Context, id uuid.UUID) (err error) {
	mm_atomic.AddUint64(&mmDelete.beforeDeleteCounter, 1)
	defer mm_atomic.AddUint64(&mmDelete.afterDeleteCounter, 1)

	mmDelete.t.Helper()

	if mmDelete.inspectFuncDelete != nil {
		mmDelete.inspectFuncDelete(ctx, id)
	}

	mm_params := ServiceMockDeleteParams{ctx, id}

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

		mm_got := ServiceMockDeleteParams{ctx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDelete.t.Errorf("ServiceMock.Delete got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmDelete.t.Errorf("ServiceMock.Delete got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDelete.t.Errorf("ServiceMock.Delete got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDelete.DeleteMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDelete.DeleteMock.defaultExpectation.results
		if mm_results == nil {
			mmDelete.t.Fatal("No results are set for the ServiceMock.Delete")
		}
		return (*mm_results).err
	}
	if mmDelete.funcDelete != nil {
		return mmDelete.funcDelete(ctx, id)
	}
	mmDelete.t.Fatalf("Unexpected call to ServiceMock.Delete. %v %v", ctx, id)
	return
}

// DeleteAfterCounter returns a count of finished ServiceMock.Delete invocations
func (mmDelete *ServiceMock) DeleteAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.afterDeleteCounter)
}

// DeleteBeforeCounter returns a count of ServiceMock.Delete invocations
func (mmDelete *ServiceMock) DeleteBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.beforeDeleteCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Delete.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDelete *mServiceMockDelete) Calls() []*ServiceMockDeleteParams {
	mmDelete.mutex.RLock()

	argCopy := make([]*ServiceMockDeleteParams, len(mmDelete.callArgs))
	copy(argCopy, mmDelete.callArgs)

	mmDelete.mutex.RUnlock()

	return argCopy
}

// MinimockDeleteDone returns true if the count of the Delete invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockDeleteDone() bool {
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
func (m *ServiceMock) MinimockDeleteInspect() {
	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Delete at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDeleteCounter := mm_atomic.LoadUint64(&m.afterDeleteCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DeleteMock.defaultExpectation != nil && afterDeleteCounter < 1 {
		if m.DeleteMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Delete at\n%s", m.DeleteMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Delete at\n%s with params: %#v", m.DeleteMock.defaultExpectation.expectationOrigins.origin, *m.DeleteMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDelete != nil && afterDeleteCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Delete at\n%s", m.funcDeleteOrigin)
	}

	if !m.DeleteMock.invocationsDone() && afterDeleteCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Delete at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DeleteMock.expectedInvocations), m.DeleteMock.expectedInvocationsOrigin, afterDeleteCounter)
	}
}

type mServiceMockDiffSummary struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockDiffSummaryExpectation
	expectations       []*ServiceMockDiffSummaryExpectation

	callArgs []*ServiceMockDiffSummaryParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockDiffSummaryExpectation specifies expectation struct of the Service.DiffSummary
type ServiceMockDiffSummaryExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockDiffSummaryParams
	paramPtrs          *ServiceMockDiffSummaryParamPtrs
	expectationOrigins ServiceMockDiffSummaryExpectationOrigins
	results            *ServiceMockDiffSummaryResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockDiffSummaryParams contains parameters of the Service.DiffSummary
type ServiceMockDiffSummaryParams struct {
	ctx       context.Context
	articleID uuid.UUID
	entryID   uuid.UUID
}

// ServiceMockDiffSummaryParamPtrs contains pointers to parameters of the Service.DiffSummary
type ServiceMockDiffSummaryParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
	entryID   *uuid.UUID
}

// ServiceMockDiffSummaryResults contains results of the Service.DiffSummary
type ServiceMockDiffSummaryResults struct {
	s1  diff.Stats
	err error
}

// ServiceMockDiffSummaryOrigins contains origins of expectations of the Service.DiffSummary
type ServiceMockDiffSummaryExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
	originEntryID   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDiffSummary *mServiceMockDiffSummary) Optional() *mServiceMockDiffSummary {
	mmDiffSummary.optional = true
	return mmDiffSummary
}

// Expect sets up expected params for Service.DiffSummary
func (mmDiffSummary *mServiceMockDiffSummary) Expect(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID) *mServiceMockDiffSummary {
	if mmDiffSummary.mock.funcDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Set")
	}

	if mmDiffSummary.defaultExpectation == nil {
		mmDiffSummary.defaultExpectation = &ServiceMockDiffSummaryExpectation{}
	}

	if mmDiffSummary.defaultExpectation.paramPtrs != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by ExpectParams functions")
	}

	mmDiffSummary.defaultExpectation.params = &ServiceMockDiffSummaryParams{ctx, articleID, entryID}
	mmDiffSummary.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDiffSummary.expectations {
		if minimock.Equal(e.params, mmDiffSummary.defaultExpectation.params) {
			mmDiffSummary.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDiffSummary.defaultExpectation.params)
		}
	}

	return mmDiffSummary
}

// ExpectCtxParam1 sets up expected param ctx for Service.DiffSummary
func (mmDiffSummary *mServiceMockDiffSummary) ExpectCtxParam1(ctx context.Context) *mServiceMockDiffSummary {
	if mmDiffSummary.mock.funcDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Set")
	}

	if mmDiffSummary.defaultExpectation == nil {
		mmDiffSummary.defaultExpectation = &ServiceMockDiffSummaryExpectation{}
	}

	if mmDiffSummary.defaultExpectation.params != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Expect")
	}

	if mmDiffSummary.defaultExpectation.paramPtrs == nil {
		mmDiffSummary.defaultExpectation.paramPtrs = &ServiceMockDiffSummaryParamPtrs{}
	}
	mmDiffSummary.defaultExpectation.paramPtrs.ctx = &ctx
	mmDiffSummary.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDiffSummary
}

// ExpectArticleIDParam2 sets up expected param articleID for Service.DiffSummary
func (mmDiffSummary *mServiceMockDiffSummary) ExpectArticleIDParam2(articleID uuid.UUID) *mServiceMockDiffSummary {
	if mmDiffSummary.mock.funcDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Set")
	}

	if mmDiffSummary.defaultExpectation == nil {
		mmDiffSummary.defaultExpectation = &ServiceMockDiffSummaryExpectation{}
	}

	if mmDiffSummary.defaultExpectation.params != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Expect")
	}

	if mmDiffSummary.defaultExpectation.paramPtrs == nil {
		mmDiffSummary.defaultExpectation.paramPtrs = &ServiceMockDiffSummaryParamPtrs{}
	}
	mmDiffSummary.defaultExpectation.paramPtrs.articleID = &articleID
	mmDiffSummary.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmDiffSummary
}

// ExpectEntryIDParam3 sets up expected param entryID for Service.DiffSummary
func (mmDiffSummary *mServiceMockDiffSummary) ExpectEntryIDParam3(entryID uuid.UUID) *mServiceMockDiffSummary {
	if mmDiffSummary.mock.funcDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Set")
	}

	if mmDiffSummary.defaultExpectation == nil {
		mmDiffSummary.defaultExpectation = &ServiceMockDiffSummaryExpectation{}
	}

	if mmDiffSummary.defaultExpectation.params != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Expect")
	}

	if mmDiffSummary.defaultExpectation.paramPtrs == nil {
		mmDiffSummary.defaultExpectation.paramPtrs = &ServiceMockDiffSummaryParamPtrs{}
	}
	mmDiffSummary.defaultExpectation.paramPtrs.entryID = &entryID
	mmDiffSummary.defaultExpectation.expectationOrigins.originEntryID = minimock.CallerInfo(1)

	return mmDiffSummary
}

// Inspect accepts an inspector function that has same arguments as the Service.DiffSummary
func (mmDiffSummary *mServiceMockDiffSummary) Inspect(f func(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID)) *mServiceMockDiffSummary {
	if mmDiffSummary.mock.inspectFuncDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("Inspect function is already set for ServiceMock.DiffSummary")
	}

	mmDiffSummary.mock.inspectFuncDiffSummary = f

	return mmDiffSummary
}

// Return sets up results that will be returned by Service.DiffSummary
func (mmDiffSummary *mServiceMockDiffSummary) Return(s1 diff.Stats, err error) *ServiceMock {
	if mmDiffSummary.mock.funcDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Set")
	}

	if mmDiffSummary.defaultExpectation == nil {
		mmDiffSummary.defaultExpectation = &ServiceMockDiffSummaryExpectation{mock: mmDiffSummary.mock}
	}
	mmDiffSummary.defaultExpectation.results = &ServiceMockDiffSummaryResults{s1, err}
	mmDiffSummary.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDiffSummary.mock
}

// Set uses given function f to mock the Service.DiffSummary method
func (mmDiffSummary *mServiceMockDiffSummary) Set(f func(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID) (s1 diff.Stats, err error)) *ServiceMock {
	if mmDiffSummary.defaultExpectation != nil {
		mmDiffSummary.mock.t.Fatalf("Default expectation is already set for the Service.DiffSummary method")
	}

	if len(mmDiffSummary.expectations) > 0 {
		mmDiffSummary.mock.t.Fatalf("Some expectations are already set for the Service.DiffSummary method")
	}

	mmDiffSummary.mock.funcDiffSummary = f
	mmDiffSummary.mock.funcDiffSummaryOrigin = minimock.CallerInfo(1)
	return mmDiffSummary.mock
}

// When sets expectation for the Service.DiffSummary which will trigger the result defined by the following
// Then helper
func (mmDiffSummary *mServiceMockDiffSummary) When(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID) *ServiceMockDiffSummaryExpectation {
	if mmDiffSummary.mock.funcDiffSummary != nil {
		mmDiffSummary.mock.t.Fatalf("ServiceMock.DiffSummary mock is already set by Set")
	}

	expectation := &ServiceMockDiffSummaryExpectation{
		mock:               mmDiffSummary.mock,
		params:             &ServiceMockDiffSummaryParams{ctx, articleID, entryID},
		expectationOrigins: ServiceMockDiffSummaryExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDiffSummary.expectations = append(mmDiffSummary.expectations, expectation)
	return expectation
}

// Then sets up Service.DiffSummary return parameters for the expectation previously defined by the When method
func (e *ServiceMockDiffSummaryExpectation) Then(s1 diff.Stats, err error) *ServiceMock {
	e.results = &ServiceMockDiffSummaryResults{s1, err}
	return e.mock
}

// Times sets number of times Service.DiffSummary should be invoked
func (mmDiffSummary *mServiceMockDiffSummary) Times(n uint64) *mServiceMockDiffSummary {
	if n == 0 {
		mmDiffSummary.mock.t.Fatalf("Times of ServiceMock.DiffSummary mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDiffSummary.expectedInvocations, n)
	mmDiffSummary.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDiffSummary
}

func (mmDiffSummary *mServiceMockDiffSummary) invocationsDone() bool {
	if len(mmDiffSummary.expectations) == 0 && mmDiffSummary.defaultExpectation == nil && mmDiffSummary.mock.funcDiffSummary == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDiffSummary.mock.afterDiffSummaryCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDiffSummary.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// DiffSummary implements mm_http.Service
func (mmDiffSummary *ServiceMock) DiffSummary(ctx context.Context, articleID uuid.UUID, entryID uuid.UUID) (s1 diff.Stats, err error) {
	mm_atomic.AddUint64(&mmDiffSummary.beforeDiffSummaryCounter, 1)
	defer mm_atomic.AddUint64(&mmDiffSummary.afterDiffSummaryCounter, 1)

	mmDiffSummary.t.Helper()

	if mmDiffSummary.inspectFuncDiffSummary != nil {
		mmDiffSummary.inspectFuncDiffSummary(ctx, articleID, entryID)
	}

	mm_params := ServiceMockDiffSummaryParams{ctx, articleID, entryID}

	// Record call args
	mmDiffSummary.DiffSummaryMock.mutex.Lock()
	mmDiffSummary.DiffSummaryMock.callArgs = append(mmDiffSummary.DiffSummaryMock.callArgs, &mm_params)
	mmDiffSummary.DiffSummaryMock.mutex.Unlock()

	for _, e := range mmDiffSummary.DiffSummaryMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmDiffSummary.DiffSummaryMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDiffSummary.DiffSummaryMock.defaultExpectation.Counter, 1)
		mm_want := mmDiffSummary.DiffSummaryMock.defaultExpectation.params
		mm_want_ptrs := mmDiffSummary.DiffSummaryMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockDiffSummaryParams{ctx, articleID, entryID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDiffSummary.t.Errorf("ServiceMock.DiffSummary got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDiffSummary.DiffSummaryMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmDiffSummary.t.Errorf("ServiceMock.DiffSummary got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDiffSummary.DiffSummaryMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.entryID != nil && !minimock.Equal(*mm_want_ptrs.entryID, mm_got.entryID) {
				mmDiffSummary.t.Errorf("ServiceMock.DiffSummary got unexpected parameter entryID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDiffSummary.DiffSummaryMock.defaultExpectation.expectationOrigins.originEntryID, *mm_want_ptrs.entryID, mm_got.entryID, minimock.Diff(*mm_want_ptrs.entryID, mm_got.entryID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDiffSummary.t.Errorf("ServiceMock.DiffSummary got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDiffSummary.DiffSummaryMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDiffSummary.DiffSummaryMock.defaultExpectation.results
		if mm_results == nil {
			mmDiffSummary.t.Fatal("No results are set for the ServiceMock.DiffSummary")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmDiffSummary.funcDiffSummary != nil {
		return mmDiffSummary.funcDiffSummary(ctx, articleID, entryID)
	}
	mmDiffSummary.t.Fatalf("Unexpected call to ServiceMock.DiffSummary. %v %v %v", ctx, articleID, entryID)
	return
}

// DiffSummaryAfterCounter returns a count of finished ServiceMock.DiffSummary invocations
func (mmDiffSummary *ServiceMock) DiffSummaryAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDiffSummary.afterDiffSummaryCounter)
}

// DiffSummaryBeforeCounter returns a count of ServiceMock.DiffSummary invocations
func (mmDiffSummary *ServiceMock) DiffSummaryBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDiffSummary.beforeDiffSummaryCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.DiffSummary.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDiffSummary *mServiceMockDiffSummary) Calls() []*ServiceMockDiffSummaryParams {
	mmDiffSummary.mutex.RLock()

	argCopy := make([]*ServiceMockDiffSummaryParams, len(mmDiffSummary.callArgs))
	copy(argCopy, mmDiffSummary.callArgs)

	mmDiffSummary.mutex.RUnlock()

	return argCopy
}

// MinimockDiffSummaryDone returns true if the count of the DiffSummary invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockDiffSummaryDone() bool {
	if m.DiffSummaryMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DiffSummaryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DiffSummaryMock.invocationsDone()
}

// MinimockDiffSummaryInspect logs each unmet expectation
func (m *ServiceMock) MinimockDiffSummaryInspect() {
	for _, e := range m.DiffSummaryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.DiffSummary at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDiffSummaryCounter := mm_atomic.LoadUint64(&m.afterDiffSummaryCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DiffSummaryMock.defaultExpectation != nil && afterDiffSummaryCounter < 1 {
		if m.DiffSummaryMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.DiffSummary at\n%s", m.DiffSummaryMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.DiffSummary at\n%s with params: %#v", m.DiffSummaryMock.defaultExpectation.expectationOrigins.origin, *m.DiffSummaryMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDiffSummary != nil && afterDiffSummaryCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.DiffSummary at\n%s", m.funcDiffSummaryOrigin)
	}

	if !m.DiffSummaryMock.invocationsDone() && afterDiffSummaryCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.DiffSummary at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DiffSummaryMock.expectedInvocations), m.DiffSummaryMock.expectedInvocationsOrigin, afterDiffSummaryCounter)
	}
}

type mServiceMockDownload struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockDownloadExpectation
	expectations       []*ServiceMockDownloadExpectation

	callArgs []*ServiceMockDownloadParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockDownloadExpectation specifies expectation struct of the Service.Download
type ServiceMockDownloadExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockDownloadParams
	paramPtrs          *ServiceMockDownloadParamPtrs
	expectationOrigins ServiceMockDownloadExpectationOrigins
	results            *ServiceMockDownloadResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockDownloadParams contains parameters of the Service.Download
type ServiceMockDownloadParams struct {
	ctx       context.Context
	articleID uuid.UUID
	role      version.Role
	format    version.Format
}

// ServiceMockDownloadParamPtrs contains pointers to parameters of the Service.Download
type ServiceMockDownloadParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
	role      *version.Role
	format    *version.Format
}

// ServiceMockDownloadResults contains results of the Service.Download
type ServiceMockDownloadResults struct {
	ba1 []byte
	s1  string
	err error
}

// ServiceMockDownloadOrigins contains origins of expectations of the Service.Download
type ServiceMockDownloadExpectationOrigins struct {
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
func (mmDownload *mServiceMockDownload) Optional() *mServiceMockDownload {
	mmDownload.optional = true
	return mmDownload
}

// Expect sets up expected params for Service.Download
func (mmDownload *mServiceMockDownload) Expect(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) *mServiceMockDownload {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	if mmDownload.defaultExpectation == nil {
		mmDownload.defaultExpectation = &ServiceMockDownloadExpectation{}
	}

	if mmDownload.defaultExpectation.paramPtrs != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by ExpectParams functions")
	}

	mmDownload.defaultExpectation.params = &ServiceMockDownloadParams{ctx, articleID, role, format}
	mmDownload.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDownload.expectations {
		if minimock.Equal(e.params, mmDownload.defaultExpectation.params) {
			mmDownload.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDownload.defaultExpectation.params)
		}
	}

	return mmDownload
}

// ExpectCtxParam1 sets up expected param ctx for Service.Download
func (mmDownload *mServiceMockDownload) ExpectCtxParam1(ctx context.Context) *mServiceMockDownload {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	if mmDownload.defaultExpectation == nil {
		mmDownload.defaultExpectation = &ServiceMockDownloadExpectation{}
	}

	if mmDownload.defaultExpectation.params != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Expect")
	}

	if mmDownload.defaultExpectation.paramPtrs == nil {
		mmDownload.defaultExpectation.paramPtrs = &ServiceMockDownloadParamPtrs{}
	}
	mmDownload.defaultExpectation.paramPtrs.ctx = &ctx
	mmDownload.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDownload
}

// ExpectArticleIDParam2 sets up expected param articleID for Service.Download
func (mmDownload *mServiceMockDownload) ExpectArticleIDParam2(articleID uuid.UUID) *mServiceMockDownload {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	if mmDownload.defaultExpectation == nil {
		mmDownload.defaultExpectation = &ServiceMockDownloadExpectation{}
	}

	if mmDownload.defaultExpectation.params != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Expect")
	}

	if mmDownload.defaultExpectation.paramPtrs == nil {
		mmDownload.defaultExpectation.paramPtrs = &ServiceMockDownloadParamPtrs{}
	}
	mmDownload.defaultExpectation.paramPtrs.articleID = &articleID
	mmDownload.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmDownload
}

// ExpectRoleParam3 sets up expected param role for Service.Download
func (mmDownload *mServiceMockDownload) ExpectRoleParam3(role version.Role) *mServiceMockDownload {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	if mmDownload.defaultExpectation == nil {
		mmDownload.defaultExpectation = &ServiceMockDownloadExpectation{}
	}

	if mmDownload.defaultExpectation.params != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Expect")
	}

	if mmDownload.defaultExpectation.paramPtrs == nil {
		mmDownload.defaultExpectation.paramPtrs = &ServiceMockDownloadParamPtrs{}
	}
	mmDownload.defaultExpectation.paramPtrs.role = &role
	mmDownload.defaultExpectation.expectationOrigins.originRole = minimock.CallerInfo(1)

	return mmDownload
}

// ExpectFormatParam4 sets up expected param format for Service.Download
func (mmDownload *mServiceMockDownload) ExpectFormatParam4(format version.Format) *mServiceMockDownload {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	if mmDownload.defaultExpectation == nil {
		mmDownload.defaultExpectation = &ServiceMockDownloadExpectation{}
	}

	if mmDownload.defaultExpectation.params != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Expect")
	}

	if mmDownload.defaultExpectation.paramPtrs == nil {
		mmDownload.defaultExpectation.paramPtrs = &ServiceMockDownloadParamPtrs{}
	}
	mmDownload.defaultExpectation.paramPtrs.format = &format
	mmDownload.defaultExpectation.expectationOrigins.originFormat = minimock.CallerInfo(1)

	return mmDownload
}

// Inspect accepts an inspector function that has same arguments as the Service.Download
func (mmDownload *mServiceMockDownload) Inspect(f func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format)) *mServiceMockDownload {
	if mmDownload.mock.inspectFuncDownload != nil {
		mmDownload.mock.t.Fatalf("Inspect function is already set for ServiceMock.Download")
	}

	mmDownload.mock.inspectFuncDownload = f

	return mmDownload
}

// Return sets up results that will be returned by Service.Download
func (mmDownload *mServiceMockDownload) Return(ba1 []byte, s1 string, err error) *ServiceMock {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	if mmDownload.defaultExpectation == nil {
		mmDownload.defaultExpectation = &ServiceMockDownloadExpectation{mock: mmDownload.mock}
	}
	mmDownload.defaultExpectation.results = &ServiceMockDownloadResults{ba1, s1, err}
	mmDownload.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDownload.mock
}

// Set uses given function f to mock the Service.Download method
func (mmDownload *mServiceMockDownload) Set(f func(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (ba1 []byte, s1 string, err error)) *ServiceMock {
	if mmDownload.defaultExpectation != nil {
		mmDownload.mock.t.Fatalf("Default expectation is already set for the Service.Download method")
	}

	if len(mmDownload.expectations) > 0 {
		mmDownload.mock.t.Fatalf("Some expectations are already set for the Service.Download method")
	}

	mmDownload.mock.funcDownload = f
	mmDownload.mock.funcDownloadOrigin = minimock.CallerInfo(1)
	return mmDownload.mock
}

// When sets expectation for the Service.Download which will trigger the result defined by the following
// Then helper
func (mmDownload *mServiceMockDownload) When(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) *ServiceMockDownloadExpectation {
	if mmDownload.mock.funcDownload != nil {
		mmDownload.mock.t.Fatalf("ServiceMock.Download mock is already set by Set")
	}

	expectation := &ServiceMockDownloadExpectation{
		mock:               mmDownload.mock,
		params:             &ServiceMockDownloadParams{ctx, articleID, role, format},
		expectationOrigins: ServiceMockDownloadExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDownload.expectations = append(mmDownload.expectations, expectation)
	return expectation
}

// Then sets up Service.Download return parameters for the expectation previously defined by the When method
func (e *ServiceMockDownloadExpectation) Then(ba1 []byte, s1 string, err error) *ServiceMock {
	e.results = &ServiceMockDownloadResults{ba1, s1, err}
	return e.mock
}

// Times sets number of times Service.Download should be invoked
func (mmDownload *mServiceMockDownload) Times(n uint64) *mServiceMockDownload {
	if n == 0 {
		mmDownload.mock.t.Fatalf("Times of ServiceMock.Download mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDownload.expectedInvocations, n)
	mmDownload.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDownload
}

func (mmDownload *mServiceMockDownload) invocationsDone() bool {
	if len(mmDownload.expectations) == 0 && mmDownload.defaultExpectation == nil && mmDownload.mock.funcDownload == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDownload.mock.afterDownloadCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDownload.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Download implements mm_http.Service
func (mmDownload *ServiceMock) Download(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (ba1 []byte, s1 string, err error) {
	mm_atomic.AddUint64(&mmDownload.beforeDownloadCounter, 1)
	defer mm_atomic.AddUint64(&mmDownload.afterDownloadCounter, 1)

	mmDownload.t.Helper()

	if mmDownload.inspectFuncDownload != nil {
		mmDownload.inspectFuncDownload(ctx, articleID, role, format)
	}

	mm_params := ServiceMockDownloadParams{ctx, articleID, role, format}

	// Record call args
	mmDownload.DownloadMock.mutex.Lock()
	mmDownload.DownloadMock.callArgs = append(mmDownload.DownloadMock.callArgs, &mm_params)
	mmDownload.DownloadMock.mutex.Unlock()

	for _, e := range mmDownload.DownloadMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ba1, e.results.s1, e.results.err
		}
	}

	if mmDownload.DownloadMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDownload.DownloadMock.defaultExpectation.Counter, 1)
		mm_want := mmDownload.DownloadMock.defaultExpectation.params
		mm_want_ptrs := mmDownload.DownloadMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockDownloadParams{ctx, articleID, role, format}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDownload.t.Errorf("ServiceMock.Download got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDownload.DownloadMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmDownload.t.Errorf("ServiceMock.Download got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDownload.DownloadMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.role != nil && !minimock.Equal(*mm_want_ptrs.role, mm_got.role) {
				mmDownload.t.Errorf("ServiceMock.Download got unexpected parameter role, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDownload.DownloadMock.defaultExpectation.expectationOrigins.originRole, *mm_want_ptrs.role, mm_got.role, minimock.Diff(*mm_want_ptrs.role, mm_got.role))
			}

			if mm_want_ptrs.format != nil && !minimock.Equal(*mm_want_ptrs.format, mm_got.format) {
				mmDownload.t.Errorf("ServiceMock.Download got unexpected parameter format, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDownload.DownloadMock.defaultExpectation.expectationOrigins.originFormat, *mm_want_ptrs.format, mm_got.format, minimock.Diff(*mm_want_ptrs.format, mm_got.format))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDownload.t.Errorf("ServiceMock.Download got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDownload.DownloadMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDownload.DownloadMock.defaultExpectation.results
		if mm_results == nil {
			mmDownload.t.Fatal("No results are set for the ServiceMock.Download")
		}
		return (*mm_results).ba1, (*mm_results).s1, (*mm_results).err
	}
	if mmDownload.funcDownload != nil {
		return mmDownload.funcDownload(ctx, articleID, role, format)
	}
	mmDownload.t.Fatalf("Unexpected call to ServiceMock.Download. %v %v %v %v", ctx, articleID, role, format)
	return
}

// DownloadAfterCounter returns a count of finished ServiceMock.Download invocations
func (mmDownload *ServiceMock) DownloadAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDownload.afterDownloadCounter)
}

// DownloadBeforeCounter returns a count of ServiceMock.Download invocations
func (mmDownload *ServiceMock) DownloadBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDownload.beforeDownloadCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Download.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDownload *mServiceMockDownload) Calls() []*ServiceMockDownloadParams {
	mmDownload.mutex.RLock()

	argCopy := make([]*ServiceMockDownloadParams, len(mmDownload.callArgs))
	copy(argCopy, mmDownload.callArgs)

	mmDownload.mutex.RUnlock()

	return argCopy
}

// MinimockDownloadDone returns true if the count of the Download invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockDownloadDone() bool {
	if m.DownloadMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DownloadMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DownloadMock.invocationsDone()
}

// MinimockDownloadInspect logs each unmet expectation
func (m *ServiceMock) MinimockDownloadInspect() {
	for _, e := range m.DownloadMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Download at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDownloadCounter := mm_atomic.LoadUint64(&m.afterDownloadCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DownloadMock.defaultExpectation != nil && afterDownloadCounter < 1 {
		if m.DownloadMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Download at\n%s", m.DownloadMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Download at\n%s with params: %#v", m.DownloadMock.defaultExpectation.expectationOrigins.origin, *m.DownloadMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDownload != nil && afterDownloadCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Download at\n%s", m.funcDownloadOrigin)
	}

	if !m.DownloadMock.invocationsDone() && afterDownloadCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Download at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DownloadMock.expectedInvocations), m.DownloadMock.expectedInvocationsOrigin, afterDownloadCounter)
	}
}

type mServiceMockEditorApprove struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockEditorApproveExpectation
	expectations       []*ServiceMockEditorApproveExpectation

	callArgs []*ServiceMockEditorApproveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockEditorApproveExpectation specifies expectation struct of the Service.EditorApprove
type ServiceMockEditorApproveExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockEditorApproveParams
	paramPtrs          *ServiceMockEditorApproveParamPtrs
	expectationOrigins ServiceMockEditorApproveExpectationOrigins
	results            *ServiceMockEditorApproveResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockEditorApproveParams contains parameters of the Service.EditorApprove
type ServiceMockEditorApproveParams struct {
	ctx context.Context
	req article.ApproveReq
}

// ServiceMockEditorApproveParamPtrs contains pointers to parameters of the Service.EditorApprove
type ServiceMockEditorApproveParamPtrs struct {
	ctx *context.Context
	req *article.ApproveReq
}

// ServiceMockEditorApproveResults contains results of the Service.EditorApprove
type ServiceMockEditorApproveResults struct {
	a1  article.Article
	err error
}

// ServiceMockEditorApproveOrigins contains origins of expectations of the Service.EditorApprove
type ServiceMockEditorApproveExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmEditorApprove *mServiceMockEditorApprove) Optional() *mServiceMockEditorApprove {
	mmEditorApprove.optional = true
	return mmEditorApprove
}

// Expect sets up expected params for Service.EditorApprove
func (mmEditorApprove *mServiceMockEditorApprove) Expect(ctx context.Context, req article.ApproveReq) *mServiceMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &ServiceMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.paramPtrs != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by ExpectParams functions")
	}

	mmEditorApprove.defaultExpectation.params = &ServiceMockEditorApproveParams{ctx, req}
	mmEditorApprove.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmEditorApprove.expectations {
		if minimock.Equal(e.params, mmEditorApprove.defaultExpectation.params) {
			mmEditorApprove.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmEditorApprove.defaultExpectation.params)
		}
	}

	return mmEditorApprove
}

// ExpectCtxParam1 sets up expected param ctx for Service.EditorApprove
func (mmEditorApprove *mServiceMockEditorApprove) ExpectCtxParam1(ctx context.Context) *mServiceMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &ServiceMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.params != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Expect")
	}

	if mmEditorApprove.defaultExpectation.paramPtrs == nil {
		mmEditorApprove.defaultExpectation.paramPtrs = &ServiceMockEditorApproveParamPtrs{}
	}
	mmEditorApprove.defaultExpectation.paramPtrs.ctx = &ctx
	mmEditorApprove.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmEditorApprove
}

// ExpectReqParam2 sets up expected param req for Service.EditorApprove
func (mmEditorApprove *mServiceMockEditorApprove) ExpectReqParam2(req article.ApproveReq) *mServiceMockEditorApprove {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &ServiceMockEditorApproveExpectation{}
	}

	if mmEditorApprove.defaultExpectation.params != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Expect")
	}

	if mmEditorApprove.defaultExpectation.paramPtrs == nil {
		mmEditorApprove.defaultExpectation.paramPtrs = &ServiceMockEditorApproveParamPtrs{}
	}
	mmEditorApprove.defaultExpectation.paramPtrs.req = &req
	mmEditorApprove.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmEditorApprove
}

// Inspect accepts an inspector function that has same arguments as the Service.EditorApprove
func (mmEditorApprove *mServiceMockEditorApprove) Inspect(f func(ctx context.Context, req article.ApproveReq)) *mServiceMockEditorApprove {
	if mmEditorApprove.mock.inspectFuncEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("Inspect function is already set for ServiceMock.EditorApprove")
	}

	mmEditorApprove.mock.inspectFuncEditorApprove = f

	return mmEditorApprove
}

// Return sets up results that will be returned by Service.EditorApprove
func (mmEditorApprove *mServiceMockEditorApprove) Return(a1 article.Article, err error) *ServiceMock {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Set")
	}

	if mmEditorApprove.defaultExpectation == nil {
		mmEditorApprove.defaultExpectation = &ServiceMockEditorApproveExpectation{mock: mmEditorApprove.mock}
	}
	mmEditorApprove.defaultExpectation.results = &ServiceMockEditorApproveResults{a1, err}
	mmEditorApprove.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmEditorApprove.mock
}

// Set uses given function f to mock the Service.EditorApprove method
func (mmEditorApprove *mServiceMockEditorApprove) Set(f func(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error)) *ServiceMock {
	if mmEditorApprove.defaultExpectation != nil {
		mmEditorApprove.mock.t.Fatalf("Default expectation is already set for the Service.EditorApprove method")
	}

	if len(mmEditorApprove.expectations) > 0 {
		mmEditorApprove.mock.t.Fatalf("Some expectations are already set for the Service.EditorApprove method")
	}

	mmEditorApprove.mock.funcEditorApprove = f
	mmEditorApprove.mock.funcEditorApproveOrigin = minimock.CallerInfo(1)
	return mmEditorApprove.mock
}

// When sets expectation for the Service.EditorApprove which will trigger the result defined by the following
// Then helper
func (mmEditorApprove *mServiceMockEditorApprove) When(ctx context.Context, req article.ApproveReq) *ServiceMockEditorApproveExpectation {
	if mmEditorApprove.mock.funcEditorApprove != nil {
		mmEditorApprove.mock.t.Fatalf("ServiceMock.EditorApprove mock is already set by Set")
	}

	expectation := &ServiceMockEditorApproveExpectation{
		mock:               mmEditorApprove.mock,
		params:             &ServiceMockEditorApproveParams{ctx, req},
		expectationOrigins: ServiceMockEditorApproveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmEditorApprove.expectations = append(mmEditorApprove.expectations, expectation)
	return expectation
}

// Then sets up Service.EditorApprove return parameters for the expectation previously defined by the When method
func (e *ServiceMockEditorApproveExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockEditorApproveResults{a1, err}
	return e.mock
}

// Times sets number of times Service.EditorApprove should be invoked
func (mmEditorApprove *mServiceMockEditorApprove) Times(n uint64) *mServiceMockEditorApprove {
	if n == 0 {
		mmEditorApprove.mock.t.Fatalf("Times of ServiceMock.EditorApprove mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmEditorApprove.expectedInvocations, n)
	mmEditorApprove.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmEditorApprove
}

func (mmEditorApprove *mServiceMockEditorApprove) invocationsDone() bool {
	if len(mmEditorApprove.expectations) == 0 && mmEditorApprove.defaultExpectation == nil && mmEditorApprove.mock.funcEditorApprove == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmEditorApprove.mock.afterEditorApproveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmEditorApprove.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// EditorApprove implements mm_http.Service
func (mmEditorApprove *ServiceMock) EditorApprove(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmEditorApprove.beforeEditorApproveCounter, 1)
	defer mm_atomic.AddUint64(&mmEditorApprove.afterEditorApproveCounter, 1)

	mmEditorApprove.t.Helper()

	if mmEditorApprove.inspectFuncEditorApprove != nil {
		mmEditorApprove.inspectFuncEditorApprove(ctx, req)
	}

	mm_params := ServiceMockEditorApproveParams{ctx, req}

	// Record call args
	mmEditorApprove.EditorApproveMock.mutex.Lock()
	mmEditorApprove.EditorApproveMock.callArgs = append(mmEditorApprove.EditorApproveMock.callArgs, &mm_params)
	mmEditorApprove.EditorApproveMock.mutex.Unlock()

	for _, e := range mmEditorApprove.EditorApproveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmEditorApprove.EditorApproveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmEditorApprove.EditorApproveMock.defaultExpectation.Counter, 1)
		mm_want := mmEditorApprove.EditorApproveMock.defaultExpectation.params
		mm_want_ptrs := mmEditorApprove.EditorApproveMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockEditorApproveParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmEditorApprove.t.Errorf("ServiceMock.EditorApprove got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmEditorApprove.t.Errorf("ServiceMock.EditorApprove got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmEditorApprove.t.Errorf("ServiceMock.EditorApprove got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmEditorApprove.EditorApproveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmEditorApprove.EditorApproveMock.defaultExpectation.results
		if mm_results == nil {
			mmEditorApprove.t.Fatal("No results are set for the ServiceMock.EditorApprove")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmEditorApprove.funcEditorApprove != nil {
		return mmEditorApprove.funcEditorApprove(ctx, req)
	}
	mmEditorApprove.t.Fatalf("Unexpected call to ServiceMock.EditorApprove. %v %v", ctx, req)
	return
}

// EditorApproveAfterCounter returns a count of finished ServiceMock.EditorApprove invocations
func (mmEditorApprove *ServiceMock) EditorApproveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmEditorApprove.afterEditorApproveCounter)
}

// EditorApproveBeforeCounter returns a count of ServiceMock.EditorApprove invocations
func (mmEditorApprove *ServiceMock) EditorApproveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmEditorApprove.beforeEditorApproveCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.EditorApprove.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmEditorApprove *mServiceMockEditorApprove) Calls() []*ServiceMockEditorApproveParams {
	mmEditorApprove.mutex.RLock()

	argCopy := make([]*ServiceMockEditorApproveParams, len(mmEditorApprove.callArgs))
	copy(argCopy, mmEditorApprove.callArgs)

	mmEditorApprove.mutex.RUnlock()

	return argCopy
}

// MinimockEditorApproveDone returns true if the count of the EditorApprove invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockEditorApproveDone() bool {
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
func (m *ServiceMock) MinimockEditorApproveInspect() {
	for _, e := range m.EditorApproveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.EditorApprove at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterEditorApproveCounter := mm_atomic.LoadUint64(&m.afterEditorApproveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.EditorApproveMock.defaultExpectation != nil && afterEditorApproveCounter < 1 {
		if m.EditorApproveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.EditorApprove at\n%s", m.EditorApproveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.EditorApprove at\n%s with params: %#v", m.EditorApproveMock.defaultExpectation.expectationOrigins.origin, *m.EditorApproveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcEditorApprove != nil && afterEditorApproveCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.EditorApprove at\n%s", m.funcEditorApproveOrigin)
	}

	if !m.EditorApproveMock.invocationsDone() && afterEditorApproveCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.EditorApprove at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.EditorApproveMock.expectedInvocations), m.EditorApproveMock.expectedInvocationsOrigin, afterEditorApproveCounter)
	}
}

type mServiceMockGet struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockGetExpectation
	expectations       []*ServiceMockGetExpectation

	callArgs []*ServiceMockGetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockGetExpectation specifies expectation struct of the Service.Get
type ServiceMockGetExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockGetParams
	paramPtrs          *ServiceMockGetParamPtrs
	expectationOrigins ServiceMockGetExpectationOrigins
	results            *ServiceMockGetResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockGetParams contains parameters of the Service.Get
type ServiceMockGetParams struct {
	ctx context.Context
	id  uuid.UUID
}

// ServiceMockGetParamPtrs contains pointers to parameters of the Service.Get
type ServiceMockGetParamPtrs struct {
	ctx *context.Context
	id  *uuid.UUID
}

// ServiceMockGetResults contains results of the Service.Get
type ServiceMockGetResults struct {
	a1  article.Article
	err error
}

// ServiceMockGetOrigins contains origins of expectations of the Service.Get
type ServiceMockGetExpectationOrigins struct {
	origin    string
	originCtx string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGet *mServiceMockGet) Optional() *mServiceMockGet {
	mmGet.optional = true
	return mmGet
}

// Expect sets up expected params for Service.Get
func (mmGet *mServiceMockGet) Expect(ctx context.Context, id uuid.UUID) *mServiceMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &ServiceMockGetExpectation{}
	}

	if mmGet.defaultExpectation.paramPtrs != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by ExpectParams functions")
	}

	mmGet.defaultExpectation.params = &ServiceMockGetParams{ctx, id}
	mmGet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGet.expectations {
		if minimock.Equal(e.params, mmGet.defaultExpectation.params) {
			mmGet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGet.defaultExpectation.params)
		}
	}

	return mmGet
}

// ExpectCtxParam1 sets up expected param ctx for Service.Get
func (mmGet *mServiceMockGet) ExpectCtxParam1(ctx context.Context) *mServiceMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &ServiceMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &ServiceMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.ctx = &ctx
	mmGet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGet
}

// ExpectIdParam2 sets up expected param id for Service.Get
func (mmGet *mServiceMockGet) ExpectIdParam2(id uuid.UUID) *mServiceMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &ServiceMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &ServiceMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.id = &id
	mmGet.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmGet
}

// Inspect accepts an inspector function that has same arguments as the Service.Get
func (mmGet *mServiceMockGet) Inspect(f func(ctx context.Context, id uuid.UUID)) *mServiceMockGet {
	if mmGet.mock.inspectFuncGet != nil {
		mmGet.mock.t.Fatalf("Inspect function is already set for ServiceMock.Get")
	}

	mmGet.mock.inspectFuncGet = f

	return mmGet
}

// Return sets up results that will be returned by Service.Get
func (mmGet *mServiceMockGet) Return(a1 article.Article, err error) *ServiceMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &ServiceMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &ServiceMockGetResults{a1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Service.Get method
func (mmGet *mServiceMockGet) Set(f func(ctx context.Context, id uuid.UUID) (a1 article.Article, err error)) *ServiceMock {
	if mmGet.defaultExpectation != nil {
		mmGet.mock.t.Fatalf("Default expectation is already set for the Service.Get method")
	}

	if len(mmGet.expectations) > 0 {
		mmGet.mock.t.Fatalf("Some expectations are already set for the Service.Get method")
	}

	mmGet.mock.funcGet = f
	mmGet.mock.funcGetOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// When sets expectation for the Service.Get which will trigger the result defined by the following
// Then helper
func (mmGet *mServiceMockGet) When(ctx context.Context, id uuid.UUID) *ServiceMockGetExpectation {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("ServiceMock.Get mock is already set by Set")
	}

	expectation := &ServiceMockGetExpectation{
		mock:               mmGet.mock,
		params:             &ServiceMockGetParams{ctx, id},
		expectationOrigins: ServiceMockGetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGet.expectations = append(mmGet.expectations, expectation)
	return expectation
}

// Then sets up Service.Get return parameters for the expectation previously defined by the When method
func (e *ServiceMockGetExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockGetResults{a1, err}
	return e.mock
}

// Times sets number of times Service.Get should be invoked
func (mmGet *mServiceMockGet) Times(n uint64) *mServiceMockGet {
	if n == 0 {
		mmGet.mock.t.Fatalf("Times of ServiceMock.Get mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGet.expectedInvocations, n)
	mmGet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGet
}

func (mmGet *mServiceMockGet) invocationsDone() bool {
	if len(mmGet.expectations) == 0 && mmGet.defaultExpectation == nil && mmGet.mock.funcGet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGet.mock.afterGetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Get implements mm_http.Service
func (mmGet *ServiceMock) Get(ctx context.Context, id uuid.UUID) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmGet.beforeGetCounter, 1)
	defer mm_atomic.AddUint64(&mmGet.afterGetCounter, 1)

	mmGet.t.Helper()

	if mmGet.inspectFuncGet != nil {
		mmGet.inspectFuncGet(ctx, id)
	}

	mm_params := ServiceMockGetParams{ctx, id}

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

		mm_got := ServiceMockGetParams{ctx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGet.t.Errorf("ServiceMock.Get got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmGet.t.Errorf("ServiceMock.Get got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGet.t.Errorf("ServiceMock.Get got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGet.GetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGet.GetMock.defaultExpectation.results
		if mm_results == nil {
			mmGet.t.Fatal("No results are set for the ServiceMock.Get")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmGet.funcGet != nil {
		return mmGet.funcGet(ctx, id)
	}
	mmGet.t.Fatalf("Unexpected call to ServiceMock.Get. %v %v", ctx, id)
	return
}

// GetAfterCounter returns a count of finished ServiceMock.Get invocations
func (mmGet *ServiceMock) GetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.afterGetCounter)
}

// GetBeforeCounter returns a count of ServiceMock.Get invocations
func (mmGet *ServiceMock) GetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.beforeGetCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Get.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGet *mServiceMockGet) Calls() []*ServiceMockGetParams {
	mmGet.mutex.RLock()

	argCopy := make([]*ServiceMockGetParams, len(mmGet.callArgs))
	copy(argCopy, mmGet.callArgs)

	mmGet.mutex.RUnlock()

	return argCopy
}

// MinimockGetDone returns true if the count of the Get invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockGetDone() bool {
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
func (m *ServiceMock) MinimockGetInspect() {
	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Get at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetCounter := mm_atomic.LoadUint64(&m.afterGetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetMock.defaultExpectation != nil && afterGetCounter < 1 {
		if m.GetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Get at\n%s", m.GetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Get at\n%s with params: %#v", m.GetMock.defaultExpectation.expectationOrigins.origin, *m.GetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGet != nil && afterGetCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Get at\n%s", m.funcGetOrigin)
	}

	if !m.GetMock.invocationsDone() && afterGetCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Get at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetMock.expectedInvocations), m.GetMock.expectedInvocationsOrigin, afterGetCounter)
	}
}

type mServiceMockGetBySlug struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockGetBySlugExpectation
	expectations       []*ServiceMockGetBySlugExpectation

	callArgs []*ServiceMockGetBySlugParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockGetBySlugExpectation specifies expectation struct of the Service.GetBySlug
type ServiceMockGetBySlugExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockGetBySlugParams
	paramPtrs          *ServiceMockGetBySlugParamPtrs
	expectationOrigins ServiceMockGetBySlugExpectationOrigins
	results            *ServiceMockGetBySlugResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockGetBySlugParams contains parameters of the Service.GetBySlug
type ServiceMockGetBySlugParams struct {
	ctx  context.Context
	slug string
}

// ServiceMockGetBySlugParamPtrs contains pointers to parameters of the Service.GetBySlug
type ServiceMockGetBySlugParamPtrs struct {
	ctx  *context.Context
	slug *string
}

// ServiceMockGetBySlugResults contains results of the Service.GetBySlug
type ServiceMockGetBySlugResults struct {
	a1  article.Article
	err error
}

// ServiceMockGetBySlugOrigins contains origins of expectations of the Service.GetBySlug
type ServiceMockGetBySlugExpectationOrigins struct {
	origin     string
	originCtx  string
	originSlug string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGetBySlug *mServiceMockGetBySlug) Optional() *mServiceMockGetBySlug {
	mmGetBySlug.optional = true
	return mmGetBySlug
}

// Expect sets up expected params for Service.GetBySlug
func (mmGetBySlug *mServiceMockGetBySlug) Expect(ctx context.Context, slug string) *mServiceMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &ServiceMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.paramPtrs != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by ExpectParams functions")
	}

	mmGetBySlug.defaultExpectation.params = &ServiceMockGetBySlugParams{ctx, slug}
	mmGetBySlug.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGetBySlug.expectations {
		if minimock.Equal(e.params, mmGetBySlug.defaultExpectation.params) {
			mmGetBySlug.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetBySlug.defaultExpectation.params)
		}
	}

	return mmGetBySlug
}

// ExpectCtxParam1 sets up expected param ctx for Service.GetBySlug
func (mmGetBySlug *mServiceMockGetBySlug) ExpectCtxParam1(ctx context.Context) *mServiceMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &ServiceMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.params != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Expect")
	}

	if mmGetBySlug.defaultExpectation.paramPtrs == nil {
		mmGetBySlug.defaultExpectation.paramPtrs = &ServiceMockGetBySlugParamPtrs{}
	}
	mmGetBySlug.defaultExpectation.paramPtrs.ctx = &ctx
	mmGetBySlug.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGetBySlug
}

// ExpectSlugParam2 sets up expected param slug for Service.GetBySlug
func (mmGetBySlug *mServiceMockGetBySlug) ExpectSlugParam2(slug string) *mServiceMockGetBySlug {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &ServiceMockGetBySlugExpectation{}
	}

	if mmGetBySlug.defaultExpectation.params != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Expect")
	}

	if mmGetBySlug.defaultExpectation.paramPtrs == nil {
		mmGetBySlug.defaultExpectation.paramPtrs = &ServiceMockGetBySlugParamPtrs{}
	}
	mmGetBySlug.defaultExpectation.paramPtrs.slug = &slug
	mmGetBySlug.defaultExpectation.expectationOrigins.originSlug = minimock.CallerInfo(1)

	return mmGetBySlug
}

// Inspect accepts an inspector function that has same arguments as the Service.GetBySlug
func (mmGetBySlug *mServiceMockGetBySlug) Inspect(f func(ctx context.Context, slug string)) *mServiceMockGetBySlug {
	if mmGetBySlug.mock.inspectFuncGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("Inspect function is already set for ServiceMock.GetBySlug")
	}

	mmGetBySlug.mock.inspectFuncGetBySlug = f

	return mmGetBySlug
}

// Return sets up results that will be returned by Service.GetBySlug
func (mmGetBySlug *mServiceMockGetBySlug) Return(a1 article.Article, err error) *ServiceMock {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Set")
	}

	if mmGetBySlug.defaultExpectation == nil {
		mmGetBySlug.defaultExpectation = &ServiceMockGetBySlugExpectation{mock: mmGetBySlug.mock}
	}
	mmGetBySlug.defaultExpectation.results = &ServiceMockGetBySlugResults{a1, err}
	mmGetBySlug.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGetBySlug.mock
}

// Set uses given function f to mock the Service.GetBySlug method
func (mmGetBySlug *mServiceMockGetBySlug) Set(f func(ctx context.Context, slug string) (a1 article.Article, err error)) *ServiceMock {
	if mmGetBySlug.defaultExpectation != nil {
		mmGetBySlug.mock.t.Fatalf("Default expectation is already set for the Service.GetBySlug method")
	}

	if len(mmGetBySlug.expectations) > 0 {
		mmGetBySlug.mock.t.Fatalf("Some expectations are already set for the Service.GetBySlug method")
	}

	mmGetBySlug.mock.funcGetBySlug = f
	mmGetBySlug.mock.funcGetBySlugOrigin = minimock.CallerInfo(1)
	return mmGetBySlug.mock
}

// When sets expectation for the Service.GetBySlug which will trigger the result defined by the following
// Then helper
func (mmGetBySlug *mServiceMockGetBySlug) When(ctx context.Context, slug string) *ServiceMockGetBySlugExpectation {
	if mmGetBySlug.mock.funcGetBySlug != nil {
		mmGetBySlug.mock.t.Fatalf("ServiceMock.GetBySlug mock is already set by Set")
	}

	expectation := &ServiceMockGetBySlugExpectation{
		mock:               mmGetBySlug.mock,
		params:             &ServiceMockGetBySlugParams{ctx, slug},
		expectationOrigins: ServiceMockGetBySlugExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGetBySlug.expectations = append(mmGetBySlug.expectations, expectation)
	return expectation
}

// Then sets up Service.GetBySlug return parameters for the expectation previously defined by the When method
func (e *ServiceMockGetBySlugExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockGetBySlugResults{a1, err}
	return e.mock
}

// Times sets number of times Service.GetBySlug should be invoked
func (mmGetBySlug *mServiceMockGetBySlug) Times(n uint64) *mServiceMockGetBySlug {
	if n == 0 {
		mmGetBySlug.mock.t.Fatalf("Times of ServiceMock.GetBySlug mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetBySlug.expectedInvocations, n)
	mmGetBySlug.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGetBySlug
}

func (mmGetBySlug *mServiceMockGetBySlug) invocationsDone() bool {
	if len(mmGetBySlug.expectations) == 0 && mmGetBySlug.defaultExpectation == nil && mmGetBySlug.mock.funcGetBySlug == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetBySlug.mock.afterGetBySlugCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetBySlug.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetBySlug implements mm_http.Service
func (mmGetBySlug *ServiceMock) GetBySlug(ctx context.Context, slug string) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmGetBySlug.beforeGetBySlugCounter, 1)
	defer mm_atomic.AddUint64(&mmGetBySlug.afterGetBySlugCounter, 1)

	mmGetBySlug.t.Helper()

	if mmGetBySlug.inspectFuncGetBySlug != nil {
		mmGetBySlug.inspectFuncGetBySlug(ctx, slug)
	}

	mm_params := ServiceMockGetBySlugParams{ctx, slug}

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

		mm_got := ServiceMockGetBySlugParams{ctx, slug}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGetBySlug.t.Errorf("ServiceMock.GetBySlug got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.slug != nil && !minimock.Equal(*mm_want_ptrs.slug, mm_got.slug) {
				mmGetBySlug.t.Errorf("ServiceMock.GetBySlug got unexpected parameter slug, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.originSlug, *mm_want_ptrs.slug, mm_got.slug, minimock.Diff(*mm_want_ptrs.slug, mm_got.slug))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetBySlug.t.Errorf("ServiceMock.GetBySlug got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGetBySlug.GetBySlugMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGetBySlug.GetBySlugMock.defaultExpectation.results
		if mm_results == nil {
			mmGetBySlug.t.Fatal("No results are set for the ServiceMock.GetBySlug")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmGetBySlug.funcGetBySlug != nil {
		return mmGetBySlug.funcGetBySlug(ctx, slug)
	}
	mmGetBySlug.t.Fatalf("Unexpected call to ServiceMock.GetBySlug. %v %v", ctx, slug)
	return
}

// GetBySlugAfterCounter returns a count of finished ServiceMock.GetBySlug invocations
func (mmGetBySlug *ServiceMock) GetBySlugAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetBySlug.afterGetBySlugCounter)
}

// GetBySlugBeforeCounter returns a count of ServiceMock.GetBySlug invocations
func (mmGetBySlug *ServiceMock) GetBySlugBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetBySlug.beforeGetBySlugCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.GetBySlug.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetBySlug *mServiceMockGetBySlug) Calls() []*ServiceMockGetBySlugParams {
	mmGetBySlug.mutex.RLock()

	argCopy := make([]*ServiceMockGetBySlugParams, len(mmGetBySlug.callArgs))
	copy(argCopy, mmGetBySlug.callArgs)

	mmGetBySlug.mutex.RUnlock()

	return argCopy
}

// MinimockGetBySlugDone returns true if the count of the GetBySlug invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockGetBySlugDone() bool {
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
func (m *ServiceMock) MinimockGetBySlugInspect() {
	for _, e := range m.GetBySlugMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.GetBySlug at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetBySlugCounter := mm_atomic.LoadUint64(&m.afterGetBySlugCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetBySlugMock.defaultExpectation != nil && afterGetBySlugCounter < 1 {
		if m.GetBySlugMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.GetBySlug at\n%s", m.GetBySlugMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.GetBySlug at\n%s with params: %#v", m.GetBySlugMock.defaultExpectation.expectationOrigins.origin, *m.GetBySlugMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetBySlug != nil && afterGetBySlugCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.GetBySlug at\n%s", m.funcGetBySlugOrigin)
	}

	if !m.GetBySlugMock.invocationsDone() && afterGetBySlugCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.GetBySlug at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetBySlugMock.expectedInvocations), m.GetBySlugMock.expectedInvocationsOrigin, afterGetBySlugCounter)
	}
}

type mServiceMockGuestSubmit struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockGuestSubmitExpectation
	expectations       []*ServiceMockGuestSubmitExpectation

	callArgs []*ServiceMockGuestSubmitParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockGuestSubmitExpectation specifies expectation struct of the Service.GuestSubmit
type ServiceMockGuestSubmitExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockGuestSubmitParams
	paramPtrs          *ServiceMockGuestSubmitParamPtrs
	expectationOrigins ServiceMockGuestSubmitExpectationOrigins
	results            *ServiceMockGuestSubmitResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockGuestSubmitParams contains parameters of the Service.GuestSubmit
type ServiceMockGuestSubmitParams struct {
	ctx context.Context
	cmd usecase.GuestSubmitCmd
}

// ServiceMockGuestSubmitParamPtrs contains pointers to parameters of the Service.GuestSubmit
type ServiceMockGuestSubmitParamPtrs struct {
	ctx *context.Context
	cmd *usecase.GuestSubmitCmd
}

// ServiceMockGuestSubmitResults contains results of the Service.GuestSubmit
type ServiceMockGuestSubmitResults struct {
	err error
}

// ServiceMockGuestSubmitOrigins contains origins of expectations of the Service.GuestSubmit
type ServiceMockGuestSubmitExpectationOrigins struct {
	origin    string
	originCtx string
	originCmd string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGuestSubmit *mServiceMockGuestSubmit) Optional() *mServiceMockGuestSubmit {
	mmGuestSubmit.optional = true
	return mmGuestSubmit
}

// Expect sets up expected params for Service.GuestSubmit
func (mmGuestSubmit *mServiceMockGuestSubmit) Expect(ctx context.Context, cmd usecase.GuestSubmitCmd) *mServiceMockGuestSubmit {
	if mmGuestSubmit.mock.funcGuestSubmit != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Set")
	}

	if mmGuestSubmit.defaultExpectation == nil {
		mmGuestSubmit.defaultExpectation = &ServiceMockGuestSubmitExpectation{}
	}

	if mmGuestSubmit.defaultExpectation.paramPtrs != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by ExpectParams functions")
	}

	mmGuestSubmit.defaultExpectation.params = &ServiceMockGuestSubmitParams{ctx, cmd}
	mmGuestSubmit.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGuestSubmit.expectations {
		if minimock.Equal(e.params, mmGuestSubmit.defaultExpectation.params) {
			mmGuestSubmit.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGuestSubmit.defaultExpectation.params)
		}
	}

	return mmGuestSubmit
}

// ExpectCtxParam1 sets up expected param ctx for Service.GuestSubmit
func (mmGuestSubmit *mServiceMockGuestSubmit) ExpectCtxParam1(ctx context.Context) *mServiceMockGuestSubmit {
	if mmGuestSubmit.mock.funcGuestSubmit != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Set")
	}

	if mmGuestSubmit.defaultExpectation == nil {
		mmGuestSubmit.defaultExpectation = &ServiceMockGuestSubmitExpectation{}
	}

	if mmGuestSubmit.defaultExpectation.params != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Expect")
	}

	if mmGuestSubmit.defaultExpectation.paramPtrs == nil {
		mmGuestSubmit.defaultExpectation.paramPtrs = &ServiceMockGuestSubmitParamPtrs{}
	}
	mmGuestSubmit.defaultExpectation.paramPtrs.ctx = &ctx
	mmGuestSubmit.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGuestSubmit
}

// ExpectCmdParam2 sets up expected param cmd for Service.GuestSubmit
func (mmGuestSubmit *mServiceMockGuestSubmit) ExpectCmdParam2(cmd usecase.GuestSubmitCmd) *mServiceMockGuestSubmit {
	if mmGuestSubmit.mock.funcGuestSubmit != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Set")
	}

	if mmGuestSubmit.defaultExpectation == nil {
		mmGuestSubmit.defaultExpectation = &ServiceMockGuestSubmitExpectation{}
	}

	if mmGuestSubmit.defaultExpectation.params != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Expect")
	}

	if mmGuestSubmit.defaultExpectation.paramPtrs == nil {
		mmGuestSubmit.defaultExpectation.paramPtrs = &ServiceMockGuestSubmitParamPtrs{}
	}
	mmGuestSubmit.defaultExpectation.paramPtrs.cmd = &cmd
	mmGuestSubmit.defaultExpectation.expectationOrigins.originCmd = minimock.CallerInfo(1)

	return mmGuestSubmit
}

// Inspect accepts an inspector function that has same arguments as the Service.GuestSubmit
func (mmGuestSubmit *mServiceMockGuestSubmit) Inspect(f func(ctx context.Context, cmd usecase.GuestSubmitCmd)) *mServiceMockGuestSubmit {
	if mmGuestSubmit.mock.inspectFuncGuestSubmit != nil {
		mmGuestSubmit.mock.t.Fatalf("Inspect function is already set for ServiceMock.GuestSubmit")
	}

	mmGuestSubmit.mock.inspectFuncGuestSubmit = f

	return mmGuestSubmit
}

// Return sets up results that will be returned by Service.GuestSubmit
func (mmGuestSubmit *mServiceMockGuestSubmit) Return(err error) *ServiceMock {
	if mmGuestSubmit.mock.funcGuestSubmit != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Set")
	}

	if mmGuestSubmit.defaultExpectation == nil {
		mmGuestSubmit.defaultExpectation = &ServiceMockGuestSubmitExpectation{mock: mmGuestSubmit.mock}
	}
	mmGuestSubmit.defaultExpectation.results = &ServiceMockGuestSubmitResults{err}
	mmGuestSubmit.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGuestSubmit.mock
}

// Set uses given function f to mock the Service.GuestSubmit method
func (mmGuestSubmit *mServiceMockGuestSubmit) Set(f func(ctx context.Context, cmd usecase.GuestSubmitCmd) (err error)) *ServiceMock {
	if mmGuestSubmit.defaultExpectation != nil {
		mmGuestSubmit.mock.t.Fatalf("Default expectation is already set for the Service.GuestSubmit method")
	}

	if len(mmGuestSubmit.expectations) > 0 {
		mmGuestSubmit.mock.t.Fatalf("Some expectations are already set for the Service.GuestSubmit method")
	}

	mmGuestSubmit.mock.funcGuestSubmit = f
	mmGuestSubmit.mock.funcGuestSubmitOrigin = minimock.CallerInfo(1)
	return mmGuestSubmit.mock
}

// When sets expectation for the Service.GuestSubmit which will trigger the result defined by the following
// Then helper
func (mmGuestSubmit *mServiceMockGuestSubmit) When(ctx context.Context, cmd usecase.GuestSubmitCmd) *ServiceMockGuestSubmitExpectation {
	if mmGuestSubmit.mock.funcGuestSubmit != nil {
		mmGuestSubmit.mock.t.Fatalf("ServiceMock.GuestSubmit mock is already set by Set")
	}

	expectation := &ServiceMockGuestSubmitExpectation{
		mock:               mmGuestSubmit.mock,
		params:             &ServiceMockGuestSubmitParams{ctx, cmd},
		expectationOrigins: ServiceMockGuestSubmitExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGuestSubmit.expectations = append(mmGuestSubmit.expectations, expectation)
	return expectation
}

// Then sets up Service.GuestSubmit return parameters for the expectation previously defined by the When method
func (e *ServiceMockGuestSubmitExpectation) Then(err error) *ServiceMock {
	e.results = &ServiceMockGuestSubmitResults{err}
	return e.mock
}

// Times sets number of times Service.GuestSubmit should be invoked
func (mmGuestSubmit *mServiceMockGuestSubmit) Times(n uint64) *mServiceMockGuestSubmit {
	if n == 0 {
		mmGuestSubmit.mock.t.Fatalf("Times of ServiceMock.GuestSubmit mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGuestSubmit.expectedInvocations, n)
	mmGuestSubmit.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGuestSubmit
}

func (mmGuestSubmit *mServiceMockGuestSubmit) invocationsDone() bool {
	if len(mmGuestSubmit.expectations) == 0 && mmGuestSubmit.defaultExpectation == nil && mmGuestSubmit.mock.funcGuestSubmit == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGuestSubmit.mock.afterGuestSubmitCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGuestSubmit.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GuestSubmit implements mm_http.Service
func (mmGuestSubmit *ServiceMock) GuestSubmit(ctx context.Context, cmd usecase.GuestSubmitCmd) (err error) {
	mm_atomic.AddUint64(&mmGuestSubmit.beforeGuestSubmitCounter, 1)
	defer mm_atomic.AddUint64(&mmGuestSubmit.afterGuestSubmitCounter, 1)

	mmGuestSubmit.t.Helper()

	if mmGuestSubmit.inspectFuncGuestSubmit != nil {
		mmGuestSubmit.inspectFuncGuestSubmit(ctx, cmd)
	}

	mm_params := ServiceMockGuestSubmitParams{ctx, cmd}

	// Record call args
	mmGuestSubmit.GuestSubmitMock.mutex.Lock()
	mmGuestSubmit.GuestSubmitMock.callArgs = append(mmGuestSubmit.GuestSubmitMock.callArgs, &mm_params)
	mmGuestSubmit.GuestSubmitMock.mutex.Unlock()

	for _, e := range mmGuestSubmit.GuestSubmitMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmGuestSubmit.GuestSubmitMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGuestSubmit.GuestSubmitMock.defaultExpectation.Counter, 1)
		mm_want := mmGuestSubmit.GuestSubmitMock.defaultExpectation.params
		mm_want_ptrs := mmGuestSubmit.GuestSubmitMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockGuestSubmitParams{ctx, cmd}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGuestSubmit.t.Errorf("ServiceMock.GuestSubmit got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGuestSubmit.GuestSubmitMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.cmd != nil && !minimock.Equal(*mm_want_ptrs.cmd, mm_got.cmd) {
				mmGuestSubmit.t.Errorf("ServiceMock.GuestSubmit got unexpected parameter cmd, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGuestSubmit.GuestSubmitMock.defaultExpectation.expectationOrigins.originCmd, *mm_want_ptrs.cmd, mm_got.cmd, minimock.Diff(*mm_want_ptrs.cmd, mm_got.cmd))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGuestSubmit.t.Errorf("ServiceMock.GuestSubmit got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGuestSubmit.GuestSubmitMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGuestSubmit.GuestSubmitMock.defaultExpectation.results
		if mm_results == nil {
			mmGuestSubmit.t.Fatal("No results are set for the ServiceMock.GuestSubmit")
		}
		return (*mm_results).err
	}
	if mmGuestSubmit.funcGuestSubmit != nil {
		return mmGuestSubmit.funcGuestSubmit(ctx, cmd)
	}
	mmGuestSubmit.t.Fatalf("Unexpected call to ServiceMock.GuestSubmit. %v %v", ctx, cmd)
	return
}

// GuestSubmitAfterCounter returns a count of finished ServiceMock.GuestSubmit invocations
func (mmGuestSubmit *ServiceMock) GuestSubmitAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGuestSubmit.afterGuestSubmitCounter)
}

// GuestSubmitBeforeCounter returns a count of ServiceMock.GuestSubmit invocations
func (mmGuestSubmit *ServiceMock) GuestSubmitBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGuestSubmit.beforeGuestSubmitCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.GuestSubmit.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGuestSubmit *mServiceMockGuestSubmit) Calls() []*ServiceMockGuestSubmitParams {
	mmGuestSubmit.mutex.RLock()

	argCopy := make([]*ServiceMockGuestSubmitParams, len(mmGuestSubmit.callArgs))
	copy(argCopy, mmGuestSubmit.callArgs)

	mmGuestSubmit.mutex.RUnlock()

	return argCopy
}

// MinimockGuestSubmitDone returns true if the count of the GuestSubmit invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockGuestSubmitDone() bool {
	if m.GuestSubmitMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GuestSubmitMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GuestSubmitMock.invocationsDone()
}

// MinimockGuestSubmitInspect logs each unmet expectation
func (m *ServiceMock) MinimockGuestSubmitInspect() {
	for _, e := range m.GuestSubmitMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.GuestSubmit at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGuestSubmitCounter := mm_atomic.LoadUint64(&m.afterGuestSubmitCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GuestSubmitMock.defaultExpectation != nil && afterGuestSubmitCounter < 1 {
		if m.GuestSubmitMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.GuestSubmit at\n%s", m.GuestSubmitMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.GuestSubmit at\n%s with params: %#v", m.GuestSubmitMock.defaultExpectation.expectationOrigins.origin, *m.GuestSubmitMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGuestSubmit != nil && afterGuestSubmitCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.GuestSubmit at\n%s", m.funcGuestSubmitOrigin)
	}

	if !m.GuestSubmitMock.invocationsDone() && afterGuestSubmitCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.GuestSubmit at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GuestSubmitMock.expectedInvocations), m.GuestSubmitMock.expectedInvocationsOrigin, afterGuestSubmitCounter)
	}
}

type mServiceMockHistory struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockHistoryExpectation
	expectations       []*ServiceMockHistoryExpectation

	callArgs []*ServiceMockHistoryParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockHistoryExpectation specifies expectation struct of the Service.History
type ServiceMockHistoryExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockHistoryParams
	paramPtrs          *ServiceMockHistoryParamPtrs
	expectationOrigins ServiceMockHistoryExpectationOrigins
	results            *ServiceMockHistoryResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockHistoryParams contains parameters of the Service.History
type ServiceMockHistoryParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// ServiceMockHistoryParamPtrs contains pointers to parameters of the Service.History
type ServiceMockHistoryParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// ServiceMockHistoryResults contains results of the Service.History
type ServiceMockHistoryResults struct {
	ea1 []changelog.Entry
	err error
}

// ServiceMockHistoryOrigins contains origins of expectations of the Service.History
type ServiceMockHistoryExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmHistory *mServiceMockHistory) Optional() *mServiceMockHistory {
	mmHistory.optional = true
	return mmHistory
}

// Expect sets up expected params for Service.History
func (mmHistory *mServiceMockHistory) Expect(ctx context.Context, articleID uuid.UUID) *mServiceMockHistory {
	if mmHistory.mock.funcHistory != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Set")
	}

	if mmHistory.defaultExpectation == nil {
		mmHistory.defaultExpectation = &ServiceMockHistoryExpectation{}
	}

	if mmHistory.defaultExpectation.paramPtrs != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by ExpectParams functions")
	}

	mmHistory.defaultExpectation.params = &ServiceMockHistoryParams{ctx, articleID}
	mmHistory.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmHistory.expectations {
		if minimock.Equal(e.params, mmHistory.defaultExpectation.params) {
			mmHistory.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmHistory.defaultExpectation.params)
		}
	}

	return mmHistory
}

// ExpectCtxParam1 sets up expected param ctx for Service.History
func (mmHistory *mServiceMockHistory) ExpectCtxParam1(ctx context.Context) *mServiceMockHistory {
	if mmHistory.mock.funcHistory != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Set")
	}

	if mmHistory.defaultExpectation == nil {
		mmHistory.defaultExpectation = &ServiceMockHistoryExpectation{}
	}

	if mmHistory.defaultExpectation.params != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Expect")
	}

	if mmHistory.defaultExpectation.paramPtrs == nil {
		mmHistory.defaultExpectation.paramPtrs = &ServiceMockHistoryParamPtrs{}
	}
	mmHistory.defaultExpectation.paramPtrs.ctx = &ctx
	mmHistory.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmHistory
}

// ExpectArticleIDParam2 sets up expected param articleID for Service.History
func (mmHistory *mServiceMockHistory) ExpectArticleIDParam2(articleID uuid.UUID) *mServiceMockHistory {
	if mmHistory.mock.funcHistory != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Set")
	}

	if mmHistory.defaultExpectation == nil {
		mmHistory.defaultExpectation = &ServiceMockHistoryExpectation{}
	}

	if mmHistory.defaultExpectation.params != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Expect")
	}

	if mmHistory.defaultExpectation.paramPtrs == nil {
		mmHistory.defaultExpectation.paramPtrs = &ServiceMockHistoryParamPtrs{}
	}
	mmHistory.defaultExpectation.paramPtrs.articleID = &articleID
	mmHistory.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmHistory
}

// Inspect accepts an inspector function that has same arguments as the Service.History
func (mmHistory *mServiceMockHistory) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mServiceMockHistory {
	if mmHistory.mock.inspectFuncHistory != nil {
		mmHistory.mock.t.Fatalf("Inspect function is already set for ServiceMock.History")
	}

	mmHistory.mock.inspectFuncHistory = f

	return mmHistory
}

// Return sets up results that will be returned by Service.History
func (mmHistory *mServiceMockHistory) Return(ea1 []changelog.Entry, err error) *ServiceMock {
	if mmHistory.mock.funcHistory != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Set")
	}

	if mmHistory.defaultExpectation == nil {
		mmHistory.defaultExpectation = &ServiceMockHistoryExpectation{mock: mmHistory.mock}
	}
	mmHistory.defaultExpectation.results = &ServiceMockHistoryResults{ea1, err}
	mmHistory.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmHistory.mock
}

// Set uses given function f to mock the Service.History method
func (mmHistory *mServiceMockHistory) Set(f func(ctx context.Context, articleID uuid.UUID) (ea1 []changelog.Entry, err error)) *ServiceMock {
	if mmHistory.defaultExpectation != nil {
		mmHistory.mock.t.Fatalf("Default expectation is already set for the Service.History method")
	}

	if len(mmHistory.expectations) > 0 {
		mmHistory.mock.t.Fatalf("Some expectations are already set for the Service.History method")
	}

	mmHistory.mock.funcHistory = f
	mmHistory.mock.funcHistoryOrigin = minimock.CallerInfo(1)
	return mmHistory.mock
}

// When sets expectation for the Service.History which will trigger the result defined by the following
// Then helper
func (mmHistory *mServiceMockHistory) When(ctx context.Context, articleID uuid.UUID) *ServiceMockHistoryExpectation {
	if mmHistory.mock.funcHistory != nil {
		mmHistory.mock.t.Fatalf("ServiceMock.History mock is already set by Set")
	}

	expectation := &ServiceMockHistoryExpectation{
		mock:               mmHistory.mock,
		params:             &ServiceMockHistoryParams{ctx, articleID},
		expectationOrigins: ServiceMockHistoryExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmHistory.expectations = append(mmHistory.expectations, expectation)
	return expectation
}

// Then sets up Service.History return parameters for the expectation previously defined by the When method
func (e *ServiceMockHistoryExpectation) Then(ea1 []changelog.Entry, err error) *ServiceMock {
	e.results = &ServiceMockHistoryResults{ea1, err}
	return e.mock
}

// Times sets number of times Service.History should be invoked
func (mmHistory *mServiceMockHistory) Times(n uint64) *mServiceMockHistory {
	if n == 0 {
		mmHistory.mock.t.Fatalf("Times of ServiceMock.History mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmHistory.expectedInvocations, n)
	mmHistory.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmHistory
}

func (mmHistory *mServiceMockHistory) invocationsDone() bool {
	if len(mmHistory.expectations) == 0 && mmHistory.defaultExpectation == nil && mmHistory.mock.funcHistory == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmHistory.mock.afterHistoryCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmHistory.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// History implements mm_http.Service
func (mmHistory *ServiceMock) History(ctx context.Context, articleID uuid.UUID) (ea1 []changelog.Entry, err error) {
	mm_atomic.AddUint64(&mmHistory.beforeHistoryCounter, 1)
	defer mm_atomic.AddUint64(&mmHistory.afterHistoryCounter, 1)

	mmHistory.t.Helper()

	if mmHistory.inspectFuncHistory != nil {
		mmHistory.inspectFuncHistory(ctx, articleID)
	}

	mm_params := ServiceMockHistoryParams{ctx, articleID}

	// Record call args
	mmHistory.HistoryMock.mutex.Lock()
	mmHistory.HistoryMock.callArgs = append(mmHistory.HistoryMock.callArgs, &mm_params)
	mmHistory.HistoryMock.mutex.Unlock()

	for _, e := range mmHistory.HistoryMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ea1, e.results.err
		}
	}

	if mmHistory.HistoryMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmHistory.HistoryMock.defaultExpectation.Counter, 1)
		mm_want := mmHistory.HistoryMock.defaultExpectation.params
		mm_want_ptrs := mmHistory.HistoryMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockHistoryParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmHistory.t.Errorf("ServiceMock.History got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmHistory.HistoryMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmHistory.t.Errorf("ServiceMock.History got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmHistory.HistoryMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmHistory.t.Errorf("ServiceMock.History got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmHistory.HistoryMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmHistory.HistoryMock.defaultExpectation.results
		if mm_results == nil {
			mmHistory.t.Fatal("No results are set for the ServiceMock.History")
		}
		return (*mm_results).ea1, (*mm_results).err
	}
	if mmHistory.funcHistory != nil {
		return mmHistory.funcHistory(ctx, articleID)
	}
	mmHistory.t.Fatalf("Unexpected call to ServiceMock.History. %v %v", ctx, articleID)
	return
}

// HistoryAfterCounter returns a count of finished ServiceMock.History invocations
func (mmHistory *ServiceMock) HistoryAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHistory.afterHistoryCounter)
}

// HistoryBeforeCounter returns a count of ServiceMock.History invocations
func (mmHistory *ServiceMock) HistoryBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHistory.beforeHistoryCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.History.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmHistory *mServiceMockHistory) Calls() []*ServiceMockHistoryParams {
	mmHistory.mutex.RLock()

	argCopy := make([]*ServiceMockHistoryParams, len(mmHistory.callArgs))
	copy(argCopy, mmHistory.callArgs)

	mmHistory.mutex.RUnlock()

	return argCopy
}

// MinimockHistoryDone returns true if the count of the History invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockHistoryDone() bool {
	if m.HistoryMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.HistoryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.HistoryMock.invocationsDone()
}

// MinimockHistoryInspect logs each unmet expectation
func (m *ServiceMock) MinimockHistoryInspect() {
	for _, e := range m.HistoryMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.History at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterHistoryCounter := mm_atomic.LoadUint64(&m.afterHistoryCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.HistoryMock.defaultExpectation != nil && afterHistoryCounter < 1 {
		if m.HistoryMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.History at\n%s", m.HistoryMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.History at\n%s with params: %#v", m.HistoryMock.defaultExpectation.expectationOrigins.origin, *m.HistoryMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcHistory != nil && afterHistoryCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.History at\n%s", m.funcHistoryOrigin)
	}

	if !m.HistoryMock.invocationsDone() && afterHistoryCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.History at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.HistoryMock.expectedInvocations), m.HistoryMock.expectedInvocationsOrigin, afterHistoryCounter)
	}
}

type mServiceMockList struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockListExpectation
	expectations       []*ServiceMockListExpectation

	callArgs []*ServiceMockListParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockListExpectation specifies expectation struct of the Service.List
type ServiceMockListExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockListParams
	paramPtrs          *ServiceMockListParamPtrs
	expectationOrigins ServiceMockListExpectationOrigins
	results            *ServiceMockListResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockListParams contains parameters of the Service.List
type ServiceMockListParams struct {
	ctx    context.Context
	status *article.Status
}

// ServiceMockListParamPtrs contains pointers to parameters of the Service.List
type ServiceMockListParamPtrs struct {
	ctx    *context.Context
	status **article.Status
}

// ServiceMockListResults contains results of the Service.List
type ServiceMockListResults struct {
	aa1 []article.Article
	err error
}

// ServiceMockListOrigins contains origins of expectations of the Service.List
type ServiceMockListExpectationOrigins struct {
	origin       string
	originCtx    string
	originStatus string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmList *mServiceMockList) Optional() *mServiceMockList {
	mmList.optional = true
	return mmList
}

// Expect sets up expected params for Service.List
func (mmList *mServiceMockList) Expect(ctx context.Context, status *article.Status) *mServiceMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &ServiceMockListExpectation{}
	}

	if mmList.defaultExpectation.paramPtrs != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by ExpectParams functions")
	}

	mmList.defaultExpectation.params = &ServiceMockListParams{ctx, status}
	mmList.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmList.expectations {
		if minimock.Equal(e.params, mmList.defaultExpectation.params) {
			mmList.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmList.defaultExpectation.params)
		}
	}

	return mmList
}

// ExpectCtxParam1 sets up expected param ctx for Service.List
func (mmList *mServiceMockList) ExpectCtxParam1(ctx context.Context) *mServiceMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &ServiceMockListExpectation{}
	}

	if mmList.defaultExpectation.params != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Expect")
	}

	if mmList.defaultExpectation.paramPtrs == nil {
		mmList.defaultExpectation.paramPtrs = &ServiceMockListParamPtrs{}
	}
	mmList.defaultExpectation.paramPtrs.ctx = &ctx
	mmList.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmList
}

// ExpectStatusParam2 sets up expected param status for Service.List
func (mmList *mServiceMockList) ExpectStatusParam2(status *article.Status) *mServiceMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &ServiceMockListExpectation{}
	}

	if mmList.defaultExpectation.params != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Expect")
	}

	if mmList.defaultExpectation.paramPtrs == nil {
		mmList.defaultExpectation.paramPtrs = &ServiceMockListParamPtrs{}
	}
	mmList.defaultExpectation.paramPtrs.status = &status
	mmList.defaultExpectation.expectationOrigins.originStatus = minimock.CallerInfo(1)

	return mmList
}

// Inspect accepts an inspector function that has same arguments as the Service.List
func (mmList *mServiceMockList) Inspect(f func(ctx context.Context, status *article.Status)) *mServiceMockList {
	if mmList.mock.inspectFuncList != nil {
		mmList.mock.t.Fatalf("Inspect function is already set for ServiceMock.List")
	}

	mmList.mock.inspectFuncList = f

	return mmList
}

// Return sets up results that will be returned by Service.List
func (mmList *mServiceMockList) Return(aa1 []article.Article, err error) *ServiceMock {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &ServiceMockListExpectation{mock: mmList.mock}
	}
	mmList.defaultExpectation.results = &ServiceMockListResults{aa1, err}
	mmList.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmList.mock
}

// Set uses given function f to mock the Service.List method
func (mmList *mServiceMockList) Set(f func(ctx context.Context, status *article.Status) (aa1 []article.Article, err error)) *ServiceMock {
	if mmList.defaultExpectation != nil {
		mmList.mock.t.Fatalf("Default expectation is already set for the Service.List method")
	}

	if len(mmList.expectations) > 0 {
		mmList.mock.t.Fatalf("Some expectations are already set for the Service.List method")
	}

	mmList.mock.funcList = f
	mmList.mock.funcListOrigin = minimock.CallerInfo(1)
	return mmList.mock
}

// When sets expectation for the Service.List which will trigger the result defined by the following
// Then helper
func (mmList *mServiceMockList) When(ctx context.Context, status *article.Status) *ServiceMockListExpectation {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("ServiceMock.List mock is already set by Set")
	}

	expectation := &ServiceMockListExpectation{
		mock:               mmList.mock,
		params:             &ServiceMockListParams{ctx, status},
		expectationOrigins: ServiceMockListExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmList.expectations = append(mmList.expectations, expectation)
	return expectation
}

// Then sets up Service.List return parameters for the expectation previously defined by the When method
func (e *ServiceMockListExpectation) Then(aa1 []article.Article, err error) *ServiceMock {
	e.results = &ServiceMockListResults{aa1, err}
	return e.mock
}

// Times sets number of times Service.List should be invoked
func (mmList *mServiceMockList) Times(n uint64) *mServiceMockList {
	if n == 0 {
		mmList.mock.t.Fatalf("Times of ServiceMock.List mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmList.expectedInvocations, n)
	mmList.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmList
}

func (mmList *mServiceMockList) invocationsDone() bool {
	if len(mmList.expectations) == 0 && mmList.defaultExpectation == nil && mmList.mock.funcList == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmList.mock.afterListCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmList.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// List implements mm_http.Service
func (mmList *ServiceMock) List(ctx context.Context, status *article.Status) (aa1 []article.Article, err error) {
	mm_atomic.AddUint64(&mmList.beforeListCounter, 1)
	defer mm_atomic.AddUint64(&mmList.afterListCounter, 1)

	mmList.t.Helper()

	if mmList.inspectFuncList != nil {
		mmList.inspectFuncList(ctx, status)
	}

	mm_params := ServiceMockListParams{ctx, status}

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

		mm_got := ServiceMockListParams{ctx, status}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmList.t.Errorf("ServiceMock.List got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmList.ListMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.status != nil && !minimock.Equal(*mm_want_ptrs.status, mm_got.status) {
				mmList.t.Errorf("ServiceMock.List got unexpected parameter status, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmList.ListMock.defaultExpectation.expectationOrigins.originStatus, *mm_want_ptrs.status, mm_got.status, minimock.Diff(*mm_want_ptrs.status, mm_got.status))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmList.t.Errorf("ServiceMock.List got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmList.ListMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmList.ListMock.defaultExpectation.results
		if mm_results == nil {
			mmList.t.Fatal("No results are set for the ServiceMock.List")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmList.funcList != nil {
		return mmList.funcList(ctx, status)
	}
	mmList.t.Fatalf("Unexpected call to ServiceMock.List. %v %v", ctx, status)
	return
}

// ListAfterCounter returns a count of finished ServiceMock.List invocations
func (mmList *ServiceMock) ListAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.afterListCounter)
}

// ListBeforeCounter returns a count of ServiceMock.List invocations
func (mmList *ServiceMock) ListBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.beforeListCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.List.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmList *mServiceMockList) Calls() []*ServiceMockListParams {
	mmList.mutex.RLock()

	argCopy := make([]*ServiceMockListParams, len(mmList.callArgs))
	copy(argCopy, mmList.callArgs)

	mmList.mutex.RUnlock()

	return argCopy
}

// MinimockListDone returns true if the count of the List invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockListDone() bool {
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
func (m *ServiceMock) MinimockListInspect() {
	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.List at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterListCounter := mm_atomic.LoadUint64(&m.afterListCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMock.defaultExpectation != nil && afterListCounter < 1 {
		if m.ListMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.List at\n%s", m.ListMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.List at\n%s with params: %#v", m.ListMock.defaultExpectation.expectationOrigins.origin, *m.ListMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcList != nil && afterListCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.List at\n%s", m.funcListOrigin)
	}

	if !m.ListMock.invocationsDone() && afterListCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.List at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ListMock.expectedInvocations), m.ListMock.expectedInvocationsOrigin, afterListCounter)
	}
}

type mServiceMockPublish struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockPublishExpectation
	expectations       []*ServiceMockPublishExpectation

	callArgs []*ServiceMockPublishParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockPublishExpectation specifies expectation struct of the Service.Publish
type ServiceMockPublishExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockPublishParams
	paramPtrs          *ServiceMockPublishParamPtrs
	expectationOrigins ServiceMockPublishExpectationOrigins
	results            *ServiceMockPublishResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockPublishParams contains parameters of the Service.Publish
type ServiceMockPublishParams struct {
	ctx context.Context
	cmd usecase.PublishCmd
}

// ServiceMockPublishParamPtrs contains pointers to parameters of the Service.Publish
type ServiceMockPublishParamPtrs struct {
	ctx *context.Context
	cmd *usecase.PublishCmd
}

// ServiceMockPublishResults contains results of the Service.Publish
type ServiceMockPublishResults struct {
	a1  article.Article
	err error
}

// ServiceMockPublishOrigins contains origins of expectations of the Service.Publish
type ServiceMockPublishExpectationOrigins struct {
	origin    string
	originCtx string
	originCmd string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmPublish *mServiceMockPublish) Optional() *mServiceMockPublish {
	mmPublish.optional = true
	return mmPublish
}

// Expect sets up expected params for Service.Publish
func (mmPublish *mServiceMockPublish) Expect(ctx context.Context, cmd usecase.PublishCmd) *mServiceMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &ServiceMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.paramPtrs != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by ExpectParams functions")
	}

	mmPublish.defaultExpectation.params = &ServiceMockPublishParams{ctx, cmd}
	mmPublish.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmPublish.expectations {
		if minimock.Equal(e.params, mmPublish.defaultExpectation.params) {
			mmPublish.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmPublish.defaultExpectation.params)
		}
	}

	return mmPublish
}

// ExpectCtxParam1 sets up expected param ctx for Service.Publish
func (mmPublish *mServiceMockPublish) ExpectCtxParam1(ctx context.Context) *mServiceMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &ServiceMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.params != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Expect")
	}

	if mmPublish.defaultExpectation.paramPtrs == nil {
		mmPublish.defaultExpectation.paramPtrs = &ServiceMockPublishParamPtrs{}
	}
	mmPublish.defaultExpectation.paramPtrs.ctx = &ctx
	mmPublish.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmPublish
}

// ExpectCmdParam2 sets up expected param cmd for Service.Publish
func (mmPublish *mServiceMockPublish) ExpectCmdParam2(cmd usecase.PublishCmd) *mServiceMockPublish {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &ServiceMockPublishExpectation{}
	}

	if mmPublish.defaultExpectation.params != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Expect")
	}

	if mmPublish.defaultExpectation.paramPtrs == nil {
		mmPublish.defaultExpectation.paramPtrs = &ServiceMockPublishParamPtrs{}
	}
	mmPublish.defaultExpectation.paramPtrs.cmd = &cmd
	mmPublish.defaultExpectation.expectationOrigins.originCmd = minimock.CallerInfo(1)

	return mmPublish
}

// Inspect accepts an inspector function that has same arguments as the Service.Publish
func (mmPublish *mServiceMockPublish) Inspect(f func(ctx context.Context, cmd usecase.PublishCmd)) *mServiceMockPublish {
	if mmPublish.mock.inspectFuncPublish != nil {
		mmPublish.mock.t.Fatalf("Inspect function is already set for ServiceMock.Publish")
	}

	mmPublish.mock.inspectFuncPublish = f

	return mmPublish
}

// Return sets up results that will be returned by Service.Publish
func (mmPublish *mServiceMockPublish) Return(a1 article.Article, err error) *ServiceMock {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Set")
	}

	if mmPublish.defaultExpectation == nil {
		mmPublish.defaultExpectation = &ServiceMockPublishExpectation{mock: mmPublish.mock}
	}
	mmPublish.defaultExpectation.results = &ServiceMockPublishResults{a1, err}
	mmPublish.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmPublish.mock
}

// Set uses given function f to mock the Service.Publish method
func (mmPublish *mServiceMockPublish) Set(f func(ctx context.Context, cmd usecase.PublishCmd) (a1 article.Article, err error)) *ServiceMock {
	if mmPublish.defaultExpectation != nil {
		mmPublish.mock.t.Fatalf("Default expectation is already set for the Service.Publish method")
	}

	if len(mmPublish.expectations) > 0 {
		mmPublish.mock.t.Fatalf("Some expectations are already set for the Service.Publish method")
	}

	mmPublish.mock.funcPublish = f
	mmPublish.mock.funcPublishOrigin = minimock.CallerInfo(1)
	return mmPublish.mock
}

// When sets expectation for the Service.Publish which will trigger the result defined by the following
// Then helper
func (mmPublish *mServiceMockPublish) When(ctx context.Context, cmd usecase.PublishCmd) *ServiceMockPublishExpectation {
	if mmPublish.mock.funcPublish != nil {
		mmPublish.mock.t.Fatalf("ServiceMock.Publish mock is already set by Set")
	}

	expectation := &ServiceMockPublishExpectation{
		mock:               mmPublish.mock,
		params:             &ServiceMockPublishParams{ctx, cmd},
		expectationOrigins: ServiceMockPublishExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmPublish.expectations = append(mmPublish.expectations, expectation)
	return expectation
}

// Then sets up Service.Publish return parameters for the expectation previously defined by the When method
func (e *ServiceMockPublishExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockPublishResults{a1, err}
	return e.mock
}

// Times sets number of times Service.Publish should be invoked
func (mmPublish *mServiceMockPublish) Times(n uint64) *mServiceMockPublish {
	if n == 0 {
		mmPublish.mock.t.Fatalf("Times of ServiceMock.Publish mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmPublish.expectedInvocations, n)
	mmPublish.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmPublish
}

func (mmPublish *mServiceMockPublish) invocationsDone() bool {
	if len(mmPublish.expectations) == 0 && mmPublish.defaultExpectation == nil && mmPublish.mock.funcPublish == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmPublish.mock.afterPublishCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmPublish.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Publish implements mm_http.Service
func (mmPublish *ServiceMock) Publish(ctx context.Context, cmd usecase.PublishCmd) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmPublish.beforePublishCounter, 1)
	defer mm_atomic.AddUint64(&mmPublish.afterPublishCounter, 1)

	mmPublish.t.Helper()

	if mmPublish.inspectFuncPublish != nil {
		mmPublish.inspectFuncPublish(ctx, cmd)
	}

	mm_params := ServiceMockPublishParams{ctx, cmd}

	// Record call args
	mmPublish.PublishMock.mutex.Lock()
	mmPublish.PublishMock.callArgs = append(mmPublish.PublishMock.callArgs, &mm_params)
	mmPublish.PublishMock.mutex.Unlock()

	for _, e := range mmPublish.PublishMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmPublish.PublishMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmPublish.PublishMock.defaultExpectation.Counter, 1)
		mm_want := mmPublish.PublishMock.defaultExpectation.params
		mm_want_ptrs := mmPublish.PublishMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockPublishParams{ctx, cmd}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmPublish.t.Errorf("ServiceMock.Publish got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPublish.PublishMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.cmd != nil && !minimock.Equal(*mm_want_ptrs.cmd, mm_got.cmd) {
				mmPublish.t.Errorf("ServiceMock.Publish got unexpected parameter cmd, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPublish.PublishMock.defaultExpectation.expectationOrigins.originCmd, *mm_want_ptrs.cmd, mm_got.cmd, minimock.Diff(*mm_want_ptrs.cmd, mm_got.cmd))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmPublish.t.Errorf("ServiceMock.Publish got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmPublish.PublishMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmPublish.PublishMock.defaultExpectation.results
		if mm_results == nil {
			mmPublish.t.Fatal("No results are set for the ServiceMock.Publish")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmPublish.funcPublish != nil {
		return mmPublish.funcPublish(ctx, cmd)
	}
	mmPublish.t.Fatalf("Unexpected call to ServiceMock.Publish. %v %v", ctx, cmd)
	return
}

// PublishAfterCounter returns a count of finished ServiceMock.Publish invocations
func (mmPublish *ServiceMock) PublishAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPublish.afterPublishCounter)
}

// PublishBeforeCounter returns a count of ServiceMock.Publish invocations
func (mmPublish *ServiceMock) PublishBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPublish.beforePublishCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Publish.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmPublish *mServiceMockPublish) Calls() []*ServiceMockPublishParams {
	mmPublish.mutex.RLock()

	argCopy := make([]*ServiceMockPublishParams, len(mmPublish.callArgs))
	copy(argCopy, mmPublish.callArgs)

	mmPublish.mutex.RUnlock()

	return argCopy
}

// MinimockPublishDone returns true if the count of the Publish invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockPublishDone() bool {
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
func (m *ServiceMock) MinimockPublishInspect() {
	for _, e := range m.PublishMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Publish at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterPublishCounter := mm_atomic.LoadUint64(&m.afterPublishCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.PublishMock.defaultExpectation != nil && afterPublishCounter < 1 {
		if m.PublishMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Publish at\n%s", m.PublishMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Publish at\n%s with params: %#v", m.PublishMock.defaultExpectation.expectationOrigins.origin, *m.PublishMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcPublish != nil && afterPublishCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Publish at\n%s", m.funcPublishOrigin)
	}

	if !m.PublishMock.invocationsDone() && afterPublishCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Publish at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.PublishMock.expectedInvocations), m.PublishMock.expectedInvocationsOrigin, afterPublishCounter)
	}
}

type mServiceMockReassignEditor struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockReassignEditorExpectation
	expectations       []*ServiceMockReassignEditorExpectation

	callArgs []*ServiceMockReassignEditorParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockReassignEditorExpectation specifies expectation struct of the Service.ReassignEditor
type ServiceMockReassignEditorExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockReassignEditorParams
	paramPtrs          *ServiceMockReassignEditorParamPtrs
	expectationOrigins ServiceMockReassignEditorExpectationOrigins
	results            *ServiceMockReassignEditorResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockReassignEditorParams contains parameters of the Service.ReassignEditor
type ServiceMockReassignEditorParams struct {
	ctx context.Context
	req article.AssignReq
}

// ServiceMockReassignEditorParamPtrs contains pointers to parameters of the Service.ReassignEditor
type ServiceMockReassignEditorParamPtrs struct {
	ctx *context.Context
	req *article.AssignReq
}

// ServiceMockReassignEditorResults contains results of the Service.ReassignEditor
type ServiceMockReassignEditorResults struct {
	a1  article.Article
	err error
}

// ServiceMockReassignEditorOrigins contains origins of expectations of the Service.ReassignEditor
type ServiceMockReassignEditorExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReassignEditor *mServiceMockReassignEditor) Optional() *mServiceMockReassignEditor {
	mmReassignEditor.optional = true
	return mmReassignEditor
}

// Expect sets up expected params for Service.ReassignEditor
func (mmReassignEditor *mServiceMockReassignEditor) Expect(ctx context.Context, req article.AssignReq) *mServiceMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &ServiceMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.paramPtrs != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by ExpectParams functions")
	}

	mmReassignEditor.defaultExpectation.params = &ServiceMockReassignEditorParams{ctx, req}
	mmReassignEditor.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReassignEditor.expectations {
		if minimock.Equal(e.params, mmReassignEditor.defaultExpectation.params) {
			mmReassignEditor.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReassignEditor.defaultExpectation.params)
		}
	}

	return mmReassignEditor
}

// ExpectCtxParam1 sets up expected param ctx for Service.ReassignEditor
func (mmReassignEditor *mServiceMockReassignEditor) ExpectCtxParam1(ctx context.Context) *mServiceMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &ServiceMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.params != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Expect")
	}

	if mmReassignEditor.defaultExpectation.paramPtrs == nil {
		mmReassignEditor.defaultExpectation.paramPtrs = &ServiceMockReassignEditorParamPtrs{}
	}
	mmReassignEditor.defaultExpectation.paramPtrs.ctx = &ctx
	mmReassignEditor.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReassignEditor
}

// ExpectReqParam2 sets up expected param req for Service.ReassignEditor
func (mmReassignEditor *mServiceMockReassignEditor) ExpectReqParam2(req article.AssignReq) *mServiceMockReassignEditor {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &ServiceMockReassignEditorExpectation{}
	}

	if mmReassignEditor.defaultExpectation.params != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Expect")
	}

	if mmReassignEditor.defaultExpectation.paramPtrs == nil {
		mmReassignEditor.defaultExpectation.paramPtrs = &ServiceMockReassignEditorParamPtrs{}
	}
	mmReassignEditor.defaultExpectation.paramPtrs.req = &req
	mmReassignEditor.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReassignEditor
}

// Inspect accepts an inspector function that has same arguments as the Service.ReassignEditor
func (mmReassignEditor *mServiceMockReassignEditor) Inspect(f func(ctx context.Context, req article.AssignReq)) *mServiceMockReassignEditor {
	if mmReassignEditor.mock.inspectFuncReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("Inspect function is already set for ServiceMock.ReassignEditor")
	}

	mmReassignEditor.mock.inspectFuncReassignEditor = f

	return mmReassignEditor
}

// Return sets up results that will be returned by Service.ReassignEditor
func (mmReassignEditor *mServiceMockReassignEditor) Return(a1 article.Article, err error) *ServiceMock {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Set")
	}

	if mmReassignEditor.defaultExpectation == nil {
		mmReassignEditor.defaultExpectation = &ServiceMockReassignEditorExpectation{mock: mmReassignEditor.mock}
	}
	mmReassignEditor.defaultExpectation.results = &ServiceMockReassignEditorResults{a1, err}
	mmReassignEditor.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReassignEditor.mock
}

// Set uses given function f to mock the Service.ReassignEditor method
func (mmReassignEditor *mServiceMockReassignEditor) Set(f func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)) *ServiceMock {
	if mmReassignEditor.defaultExpectation != nil {
		mmReassignEditor.mock.t.Fatalf("Default expectation is already set for the Service.ReassignEditor method")
	}

	if len(mmReassignEditor.expectations) > 0 {
		mmReassignEditor.mock.t.Fatalf("Some expectations are already set for the Service.ReassignEditor method")
	}

	mmReassignEditor.mock.funcReassignEditor = f
	mmReassignEditor.mock.funcReassignEditorOrigin = minimock.CallerInfo(1)
	return mmReassignEditor.mock
}

// When sets expectation for the Service.ReassignEditor which will trigger the result defined by the following
// Then helper
func (mmReassignEditor *mServiceMockReassignEditor) When(ctx context.Context, req article.AssignReq) *ServiceMockReassignEditorExpectation {
	if mmReassignEditor.mock.funcReassignEditor != nil {
		mmReassignEditor.mock.t.Fatalf("ServiceMock.ReassignEditor mock is already set by Set")
	}

	expectation := &ServiceMockReassignEditorExpectation{
		mock:               mmReassignEditor.mock,
		params:             &ServiceMockReassignEditorParams{ctx, req},
		expectationOrigins: ServiceMockReassignEditorExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReassignEditor.expectations = append(mmReassignEditor.expectations, expectation)
	return expectation
}

// Then sets up Service.ReassignEditor return parameters for the expectation previously defined by the When method
func (e *ServiceMockReassignEditorExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockReassignEditorResults{a1, err}
	return e.mock
}

// Times sets number of times Service.ReassignEditor should be invoked
func (mmReassignEditor *mServiceMockReassignEditor) Times(n uint64) *mServiceMockReassignEditor {
	if n == 0 {
		mmReassignEditor.mock.t.Fatalf("Times of ServiceMock.ReassignEditor mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReassignEditor.expectedInvocations, n)
	mmReassignEditor.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReassignEditor
}

func (mmReassignEditor *mServiceMockReassignEditor) invocationsDone() bool {
	if len(mmReassignEditor.expectations) == 0 && mmReassignEditor.defaultExpectation == nil && mmReassignEditor.mock.funcReassignEditor == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReassignEditor.mock.afterReassignEditorCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReassignEditor.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ReassignEditor implements mm_http.Service
func (mmReassignEditor *ServiceMock) ReassignEditor(ctx context.Context, req article.AssignReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmReassignEditor.beforeReassignEditorCounter, 1)
	defer mm_atomic.AddUint64(&mmReassignEditor.afterReassignEditorCounter, 1)

	mmReassignEditor.t.Helper()

	if mmReassignEditor.inspectFuncReassignEditor != nil {
		mmReassignEditor.inspectFuncReassignEditor(ctx, req)
	}

	mm_params := ServiceMockReassignEditorParams{ctx, req}

	// Record call args
	mmReassignEditor.ReassignEditorMock.mutex.Lock()
	mmReassignEditor.ReassignEditorMock.callArgs = append(mmReassignEditor.ReassignEditorMock.callArgs, &mm_params)
	mmReassignEditor.ReassignEditorMock.mutex.Unlock()

	for _, e := range mmReassignEditor.ReassignEditorMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmReassignEditor.ReassignEditorMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReassignEditor.ReassignEditorMock.defaultExpectation.Counter, 1)
		mm_want := mmReassignEditor.ReassignEditorMock.defaultExpectation.params
		mm_want_ptrs := mmReassignEditor.ReassignEditorMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockReassignEditorParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReassignEditor.t.Errorf("ServiceMock.ReassignEditor got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReassignEditor.t.Errorf("ServiceMock.ReassignEditor got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReassignEditor.t.Errorf("ServiceMock.ReassignEditor got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReassignEditor.ReassignEditorMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReassignEditor.ReassignEditorMock.defaultExpectation.results
		if mm_results == nil {
			mmReassignEditor.t.Fatal("No results are set for the ServiceMock.ReassignEditor")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmReassignEditor.funcReassignEditor != nil {
		return mmReassignEditor.funcReassignEditor(ctx, req)
	}
	mmReassignEditor.t.Fatalf("Unexpected call to ServiceMock.ReassignEditor. %v %v", ctx, req)
	return
}

// ReassignEditorAfterCounter returns a count of finished ServiceMock.ReassignEditor invocations
func (mmReassignEditor *ServiceMock) ReassignEditorAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignEditor.afterReassignEditorCounter)
}

// ReassignEditorBeforeCounter returns a count of ServiceMock.ReassignEditor invocations
func (mmReassignEditor *ServiceMock) ReassignEditorBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignEditor.beforeReassignEditorCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.ReassignEditor.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReassignEditor *mServiceMockReassignEditor) Calls() []*ServiceMockReassignEditorParams {
	mmReassignEditor.mutex.RLock()

	argCopy := make([]*ServiceMockReassignEditorParams, len(mmReassignEditor.callArgs))
	copy(argCopy, mmReassignEditor.callArgs)

	mmReassignEditor.mutex.RUnlock()

	return argCopy
}

// MinimockReassignEditorDone returns true if the count of the ReassignEditor invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockReassignEditorDone() bool {
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
func (m *ServiceMock) MinimockReassignEditorInspect() {
	for _, e := range m.ReassignEditorMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.ReassignEditor at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterReassignEditorCounter := mm_atomic.LoadUint64(&m.afterReassignEditorCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ReassignEditorMock.defaultExpectation != nil && afterReassignEditorCounter < 1 {
		if m.ReassignEditorMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.ReassignEditor at\n%s", m.ReassignEditorMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.ReassignEditor at\n%s with params: %#v", m.ReassignEditorMock.defaultExpectation.expectationOrigins.origin, *m.ReassignEditorMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReassignEditor != nil && afterReassignEditorCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.ReassignEditor at\n%s", m.funcReassignEditorOrigin)
	}

	if !m.ReassignEditorMock.invocationsDone() && afterReassignEditorCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.ReassignEditor at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ReassignEditorMock.expectedInvocations), m.ReassignEditorMock.expectedInvocationsOrigin, afterReassignEditorCounter)
	}
}

type mServiceMockReassignReviewer struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockReassignReviewerExpectation
	expectations       []*ServiceMockReassignReviewerExpectation

	callArgs []*ServiceMockReassignReviewerParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockReassignReviewerExpectation specifies expectation struct of the Service.ReassignReviewer
type ServiceMockReassignReviewerExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockReassignReviewerParams
	paramPtrs          *ServiceMockReassignReviewerParamPtrs
	expectationOrigins ServiceMockReassignReviewerExpectationOrigins
	results            *ServiceMockReassignReviewerResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockReassignReviewerParams contains parameters of the Service.ReassignReviewer
type ServiceMockReassignReviewerParams struct {
	ctx context.Context
	req article.AssignReq
}

// ServiceMockReassignReviewerParamPtrs contains pointers to parameters of the Service.ReassignReviewer
type ServiceMockReassignReviewerParamPtrs struct {
	ctx *context.Context
	req *article.AssignReq
}

// ServiceMockReassignReviewerResults contains results of the Service.ReassignReviewer
type ServiceMockReassignReviewerResults struct {
	a1  article.Article
	err error
}

// ServiceMockReassignReviewerOrigins contains origins of expectations of the Service.ReassignReviewer
type ServiceMockReassignReviewerExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReassignReviewer *mServiceMockReassignReviewer) Optional() *mServiceMockReassignReviewer {
	mmReassignReviewer.optional = true
	return mmReassignReviewer
}

// Expect sets up expected params for Service.ReassignReviewer
func (mmReassignReviewer *mServiceMockReassignReviewer) Expect(ctx context.Context, req article.AssignReq) *mServiceMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &ServiceMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by ExpectParams functions")
	}

	mmReassignReviewer.defaultExpectation.params = &ServiceMockReassignReviewerParams{ctx, req}
	mmReassignReviewer.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReassignReviewer.expectations {
		if minimock.Equal(e.params, mmReassignReviewer.defaultExpectation.params) {
			mmReassignReviewer.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReassignReviewer.defaultExpectation.params)
		}
	}

	return mmReassignReviewer
}

// ExpectCtxParam1 sets up expected param ctx for Service.ReassignReviewer
func (mmReassignReviewer *mServiceMockReassignReviewer) ExpectCtxParam1(ctx context.Context) *mServiceMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &ServiceMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.params != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Expect")
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs == nil {
		mmReassignReviewer.defaultExpectation.paramPtrs = &ServiceMockReassignReviewerParamPtrs{}
	}
	mmReassignReviewer.defaultExpectation.paramPtrs.ctx = &ctx
	mmReassignReviewer.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReassignReviewer
}

// ExpectReqParam2 sets up expected param req for Service.ReassignReviewer
func (mmReassignReviewer *mServiceMockReassignReviewer) ExpectReqParam2(req article.AssignReq) *mServiceMockReassignReviewer {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &ServiceMockReassignReviewerExpectation{}
	}

	if mmReassignReviewer.defaultExpectation.params != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Expect")
	}

	if mmReassignReviewer.defaultExpectation.paramPtrs == nil {
		mmReassignReviewer.defaultExpectation.paramPtrs = &ServiceMockReassignReviewerParamPtrs{}
	}
	mmReassignReviewer.defaultExpectation.paramPtrs.req = &req
	mmReassignReviewer.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReassignReviewer
}

// Inspect accepts an inspector function that has same arguments as the Service.ReassignReviewer
func (mmReassignReviewer *mServiceMockReassignReviewer) Inspect(f func(ctx context.Context, req article.AssignReq)) *mServiceMockReassignReviewer {
	if mmReassignReviewer.mock.inspectFuncReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("Inspect function is already set for ServiceMock.ReassignReviewer")
	}

	mmReassignReviewer.mock.inspectFuncReassignReviewer = f

	return mmReassignReviewer
}

// Return sets up results that will be returned by Service.ReassignReviewer
func (mmReassignReviewer *mServiceMockReassignReviewer) Return(a1 article.Article, err error) *ServiceMock {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Set")
	}

	if mmReassignReviewer.defaultExpectation == nil {
		mmReassignReviewer.defaultExpectation = &ServiceMockReassignReviewerExpectation{mock: mmReassignReviewer.mock}
	}
	mmReassignReviewer.defaultExpectation.results = &ServiceMockReassignReviewerResults{a1, err}
	mmReassignReviewer.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReassignReviewer.mock
}

// Set uses given function f to mock the Service.ReassignReviewer method
func (mmReassignReviewer *mServiceMockReassignReviewer) Set(f func(ctx context.Context, req article.AssignReq) (a1 article.Article, err error)) *ServiceMock {
	if mmReassignReviewer.defaultExpectation != nil {
		mmReassignReviewer.mock.t.Fatalf("Default expectation is already set for the Service.ReassignReviewer method")
	}

	if len(mmReassignReviewer.expectations) > 0 {
		mmReassignReviewer.mock.t.Fatalf("Some expectations are already set for the Service.ReassignReviewer method")
	}

	mmReassignReviewer.mock.funcReassignReviewer = f
	mmReassignReviewer.mock.funcReassignReviewerOrigin = minimock.CallerInfo(1)
	return mmReassignReviewer.mock
}

// When sets expectation for the Service.ReassignReviewer which will trigger the result defined by the following
// Then helper
func (mmReassignReviewer *mServiceMockReassignReviewer) When(ctx context.Context, req article.AssignReq) *ServiceMockReassignReviewerExpectation {
	if mmReassignReviewer.mock.funcReassignReviewer != nil {
		mmReassignReviewer.mock.t.Fatalf("ServiceMock.ReassignReviewer mock is already set by Set")
	}

	expectation := &ServiceMockReassignReviewerExpectation{
		mock:               mmReassignReviewer.mock,
		params:             &ServiceMockReassignReviewerParams{ctx, req},
		expectationOrigins: ServiceMockReassignReviewerExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReassignReviewer.expectations = append(mmReassignReviewer.expectations, expectation)
	return expectation
}

// Then sets up Service.ReassignReviewer return parameters for the expectation previously defined by the When method
func (e *ServiceMockReassignReviewerExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockReassignReviewerResults{a1, err}
	return e.mock
}

// Times sets number of times Service.ReassignReviewer should be invoked
func (mmReassignReviewer *mServiceMockReassignReviewer) Times(n uint64) *mServiceMockReassignReviewer {
	if n == 0 {
		mmReassignReviewer.mock.t.Fatalf("Times of ServiceMock.ReassignReviewer mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReassignReviewer.expectedInvocations, n)
	mmReassignReviewer.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReassignReviewer
}

func (mmReassignReviewer *mServiceMockReassignReviewer) invocationsDone() bool {
	if len(mmReassignReviewer.expectations) == 0 && mmReassignReviewer.defaultExpectation == nil && mmReassignReviewer.mock.funcReassignReviewer == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReassignReviewer.mock.afterReassignReviewerCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReassignReviewer.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ReassignReviewer implements mm_http.Service
func (mmReassignReviewer *ServiceMock) ReassignReviewer(ctx context.Context, req article.AssignReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmReassignReviewer.beforeReassignReviewerCounter, 1)
	defer mm_atomic.AddUint64(&mmReassignReviewer.afterReassignReviewerCounter, 1)

	mmReassignReviewer.t.Helper()

	if mmReassignReviewer.inspectFuncReassignReviewer != nil {
		mmReassignReviewer.inspectFuncReassignReviewer(ctx, req)
	}

	mm_params := ServiceMockReassignReviewerParams{ctx, req}

	// Record call args
	mmReassignReviewer.ReassignReviewerMock.mutex.Lock()
	mmReassignReviewer.ReassignReviewerMock.callArgs = append(mmReassignReviewer.ReassignReviewerMock.callArgs, &mm_params)
	mmReassignReviewer.ReassignReviewerMock.mutex.Unlock()

	for _, e := range mmReassignReviewer.ReassignReviewerMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmReassignReviewer.ReassignReviewerMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReassignReviewer.ReassignReviewerMock.defaultExpectation.Counter, 1)
		mm_want := mmReassignReviewer.ReassignReviewerMock.defaultExpectation.params
		mm_want_ptrs := mmReassignReviewer.ReassignReviewerMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockReassignReviewerParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReassignReviewer.t.Errorf("ServiceMock.ReassignReviewer got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReassignReviewer.t.Errorf("ServiceMock.ReassignReviewer got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReassignReviewer.t.Errorf("ServiceMock.ReassignReviewer got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReassignReviewer.ReassignReviewerMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReassignReviewer.ReassignReviewerMock.defaultExpectation.results
		if mm_results == nil {
			mmReassignReviewer.t.Fatal("No results are set for the ServiceMock.ReassignReviewer")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmReassignReviewer.funcReassignReviewer != nil {
		return mmReassignReviewer.funcReassignReviewer(ctx, req)
	}
	mmReassignReviewer.t.Fatalf("Unexpected call to ServiceMock.ReassignReviewer. %v %v", ctx, req)
	return
}

// ReassignReviewerAfterCounter returns a count of finished ServiceMock.ReassignReviewer invocations
func (mmReassignReviewer *ServiceMock) ReassignReviewerAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignReviewer.afterReassignReviewerCounter)
}

// ReassignReviewerBeforeCounter returns a count of ServiceMock.ReassignReviewer invocations
func (mmReassignReviewer *ServiceMock) ReassignReviewerBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReassignReviewer.beforeReassignReviewerCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.ReassignReviewer.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReassignReviewer *mServiceMockReassignReviewer) Calls() []*ServiceMockReassignReviewerParams {
	mmReassignReviewer.mutex.RLock()

	argCopy := make([]*ServiceMockReassignReviewerParams, len(mmReassignReviewer.callArgs))
	copy(argCopy, mmReassignReviewer.callArgs)

	mmReassignReviewer.mutex.RUnlock()

	return argCopy
}

// MinimockReassignReviewerDone returns true if the count of the ReassignReviewer invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockReassignReviewerDone() bool {
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
func (m *ServiceMock) MinimockReassignReviewerInspect() {
	for _, e := range m.ReassignReviewerMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.ReassignReviewer at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterReassignReviewerCounter := mm_atomic.LoadUint64(&m.afterReassignReviewerCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ReassignReviewerMock.defaultExpectation != nil && afterReassignReviewerCounter < 1 {
		if m.ReassignReviewerMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.ReassignReviewer at\n%s", m.ReassignReviewerMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.ReassignReviewer at\n%s with params: %#v", m.ReassignReviewerMock.defaultExpectation.expectationOrigins.origin, *m.ReassignReviewerMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReassignReviewer != nil && afterReassignReviewerCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.ReassignReviewer at\n%s", m.funcReassignReviewerOrigin)
	}

	if !m.ReassignReviewerMock.invocationsDone() && afterReassignReviewerCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.ReassignReviewer at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ReassignReviewerMock.expectedInvocations), m.ReassignReviewerMock.expectedInvocationsOrigin, afterReassignReviewerCounter)
	}
}

type mServiceMockReject struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockRejectExpectation
	expectations       []*ServiceMockRejectExpectation

	callArgs []*ServiceMockRejectParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockRejectExpectation specifies expectation struct of the Service.Reject
type ServiceMockRejectExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockRejectParams
	paramPtrs          *ServiceMockRejectParamPtrs
	expectationOrigins ServiceMockRejectExpectationOrigins
	results            *ServiceMockRejectResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockRejectParams contains parameters of the Service.Reject
type ServiceMockRejectParams struct {
	ctx context.Context
	req article.ApproveReq
}

// ServiceMockRejectParamPtrs contains pointers to parameters of the Service.Reject
type ServiceMockRejectParamPtrs struct {
	ctx *context.Context
	req *article.ApproveReq
}

// ServiceMockRejectResults contains results of the Service.Reject
type ServiceMockRejectResults struct {
	a1  article.Article
	err error
}

// ServiceMockRejectOrigins contains origins of expectations of the Service.Reject
type ServiceMockRejectExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReject *mServiceMockReject) Optional() *mServiceMockReject {
	mmReject.optional = true
	return mmReject
}

// Expect sets up expected params for Service.Reject
func (mmReject *mServiceMockReject) Expect(ctx context.Context, req article.ApproveReq) *mServiceMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &ServiceMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.paramPtrs != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by ExpectParams functions")
	}

	mmReject.defaultExpectation.params = &ServiceMockRejectParams{ctx, req}
	mmReject.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReject.expectations {
		if minimock.Equal(e.params, mmReject.defaultExpectation.params) {
			mmReject.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReject.defaultExpectation.params)
		}
	}

	return mmReject
}

// ExpectCtxParam1 sets up expected param ctx for Service.Reject
func (mmReject *mServiceMockReject) ExpectCtxParam1(ctx context.Context) *mServiceMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &ServiceMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.params != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Expect")
	}

	if mmReject.defaultExpectation.paramPtrs == nil {
		mmReject.defaultExpectation.paramPtrs = &ServiceMockRejectParamPtrs{}
	}
	mmReject.defaultExpectation.paramPtrs.ctx = &ctx
	mmReject.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReject
}

// ExpectReqParam2 sets up expected param req for Service.Reject
func (mmReject *mServiceMockReject) ExpectReqParam2(req article.ApproveReq) *mServiceMockReject {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &ServiceMockRejectExpectation{}
	}

	if mmReject.defaultExpectation.params != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Expect")
	}

	if mmReject.defaultExpectation.paramPtrs == nil {
		mmReject.defaultExpectation.paramPtrs = &ServiceMockRejectParamPtrs{}
	}
	mmReject.defaultExpectation.paramPtrs.req = &req
	mmReject.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReject
}

// Inspect accepts an inspector function that has same arguments as the Service.Reject
func (mmReject *mServiceMockReject) Inspect(f func(ctx context.Context, req article.ApproveReq)) *mServiceMockReject {
	if mmReject.mock.inspectFuncReject != nil {
		mmReject.mock.t.Fatalf("Inspect function is already set for ServiceMock.Reject")
	}

	mmReject.mock.inspectFuncReject = f

	return mmReject
}

// Return sets up results that will be returned by Service.Reject
func (mmReject *mServiceMockReject) Return(a1 article.Article, err error) *ServiceMock {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Set")
	}

	if mmReject.defaultExpectation == nil {
		mmReject.defaultExpectation = &ServiceMockRejectExpectation{mock: mmReject.mock}
	}
	mmReject.defaultExpectation.results = &ServiceMockRejectResults{a1, err}
	mmReject.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReject.mock
}

// Set uses given function f to mock the Service.Reject method
func (mmReject *mServiceMockReject) Set(f func(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error)) *ServiceMock {
	if mmReject.defaultExpectation != nil {
		mmReject.mock.t.Fatalf("Default expectation is already set for the Service.Reject method")
	}

	if len(mmReject.expectations) > 0 {
		mmReject.mock.t.Fatalf("Some expectations are already set for the Service.Reject method")
	}

	mmReject.mock.funcReject = f
	mmReject.mock.funcRejectOrigin = minimock.CallerInfo(1)
	return mmReject.mock
}

// When sets expectation for the Service.Reject which will trigger the result defined by the following
// Then helper
func (mmReject *mServiceMockReject) When(ctx context.Context, req article.ApproveReq) *ServiceMockRejectExpectation {
	if mmReject.mock.funcReject != nil {
		mmReject.mock.t.Fatalf("ServiceMock.Reject mock is already set by Set")
	}

	expectation := &ServiceMockRejectExpectation{
		mock:               mmReject.mock,
		params:             &ServiceMockRejectParams{ctx, req},
		expectationOrigins: ServiceMockRejectExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReject.expectations = append(mmReject.expectations, expectation)
	return expectation
}

// Then sets up Service.Reject return parameters for the expectation previously defined by the When method
func (e *ServiceMockRejectExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockRejectResults{a1, err}
	return e.mock
}

// Times sets number of times Service.Reject should be invoked
func (mmReject *mServiceMockReject) Times(n uint64) *mServiceMockReject {
	if n == 0 {
		mmReject.mock.t.Fatalf("Times of ServiceMock.Reject mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReject.expectedInvocations, n)
	mmReject.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReject
}

func (mmReject *mServiceMockReject) invocationsDone() bool {
	if len(mmReject.expectations) == 0 && mmReject.defaultExpectation == nil && mmReject.mock.funcReject == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReject.mock.afterRejectCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReject.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Reject implements mm_http.Service
func (mmReject *ServiceMock) Reject(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmReject.beforeRejectCounter, 1)
	defer mm_atomic.AddUint64(&mmReject.afterRejectCounter, 1)

	mmReject.t.Helper()

	if mmReject.inspectFuncReject != nil {
		mmReject.inspectFuncReject(ctx, req)
	}

	mm_params := ServiceMockRejectParams{ctx, req}

	// Record call args
	mmReject.RejectMock.mutex.Lock()
	mmReject.RejectMock.callArgs = append(mmReject.RejectMock.callArgs, &mm_params)
	mmReject.RejectMock.mutex.Unlock()

	for _, e := range mmReject.RejectMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmReject.RejectMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReject.RejectMock.defaultExpectation.Counter, 1)
		mm_want := mmReject.RejectMock.defaultExpectation.params
		mm_want_ptrs := mmReject.RejectMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockRejectParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReject.t.Errorf("ServiceMock.Reject got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReject.RejectMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReject.t.Errorf("ServiceMock.Reject got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReject.RejectMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReject.t.Errorf("ServiceMock.Reject got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReject.RejectMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReject.RejectMock.defaultExpectation.results
		if mm_results == nil {
			mmReject.t.Fatal("No results are set for the ServiceMock.Reject")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmReject.funcReject != nil {
		return mmReject.funcReject(ctx, req)
	}
	mmReject.t.Fatalf("Unexpected call to ServiceMock.Reject. %v %v", ctx, req)
	return
}

// RejectAfterCounter returns a count of finished ServiceMock.Reject invocations
func (mmReject *ServiceMock) RejectAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReject.afterRejectCounter)
}

// RejectBeforeCounter returns a count of ServiceMock.Reject invocations
func (mmReject *ServiceMock) RejectBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReject.beforeRejectCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Reject.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReject *mServiceMockReject) Calls() []*ServiceMockRejectParams {
	mmReject.mutex.RLock()

	argCopy := make([]*ServiceMockRejectParams, len(mmReject.callArgs))
	copy(argCopy, mmReject.callArgs)

	mmReject.mutex.RUnlock()

	return argCopy
}

// MinimockRejectDone returns true if the count of the Reject invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockRejectDone() bool {
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
func (m *ServiceMock) MinimockRejectInspect() {
	for _, e := range m.RejectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Reject at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRejectCounter := mm_atomic.LoadUint64(&m.afterRejectCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RejectMock.defaultExpectation != nil && afterRejectCounter < 1 {
		if m.RejectMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Reject at\n%s", m.RejectMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Reject at\n%s with params: %#v", m.RejectMock.defaultExpectation.expectationOrigins.origin, *m.RejectMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReject != nil && afterRejectCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Reject at\n%s", m.funcRejectOrigin)
	}

	if !m.RejectMock.invocationsDone() && afterRejectCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Reject at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RejectMock.expectedInvocations), m.RejectMock.expectedInvocationsOrigin, afterRejectCounter)
	}
}

type mServiceMockReviewerApprove struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockReviewerApproveExpectation
	expectations       []*ServiceMockReviewerApproveExpectation

	callArgs []*ServiceMockReviewerApproveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockReviewerApproveExpectation specifies expectation struct of the Service.ReviewerApprove
type ServiceMockReviewerApproveExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockReviewerApproveParams
	paramPtrs          *ServiceMockReviewerApproveParamPtrs
	expectationOrigins ServiceMockReviewerApproveExpectationOrigins
	results            *ServiceMockReviewerApproveResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockReviewerApproveParams contains parameters of the Service.ReviewerApprove
type ServiceMockReviewerApproveParams struct {
	ctx context.Context
	req article.ApproveReq
}

// ServiceMockReviewerApproveParamPtrs contains pointers to parameters of the Service.ReviewerApprove
type ServiceMockReviewerApproveParamPtrs struct {
	ctx *context.Context
	req *article.ApproveReq
}

// ServiceMockReviewerApproveResults contains results of the Service.ReviewerApprove
type ServiceMockReviewerApproveResults struct {
	a1  article.Article
	err error
}

// ServiceMockReviewerApproveOrigins contains origins of expectations of the Service.ReviewerApprove
type ServiceMockReviewerApproveExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReviewerApprove *mServiceMockReviewerApprove) Optional() *mServiceMockReviewerApprove {
	mmReviewerApprove.optional = true
	return mmReviewerApprove
}

// Expect sets up expected params for Service.ReviewerApprove
func (mmReviewerApprove *mServiceMockReviewerApprove) Expect(ctx context.Context, req article.ApproveReq) *mServiceMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &ServiceMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by ExpectParams functions")
	}

	mmReviewerApprove.defaultExpectation.params = &ServiceMockReviewerApproveParams{ctx, req}
	mmReviewerApprove.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReviewerApprove.expectations {
		if minimock.Equal(e.params, mmReviewerApprove.defaultExpectation.params) {
			mmReviewerApprove.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReviewerApprove.defaultExpectation.params)
		}
	}

	return mmReviewerApprove
}

// ExpectCtxParam1 sets up expected param ctx for Service.ReviewerApprove
func (mmReviewerApprove *mServiceMockReviewerApprove) ExpectCtxParam1(ctx context.Context) *mServiceMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &ServiceMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.params != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Expect")
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs == nil {
		mmReviewerApprove.defaultExpectation.paramPtrs = &ServiceMockReviewerApproveParamPtrs{}
	}
	mmReviewerApprove.defaultExpectation.paramPtrs.ctx = &ctx
	mmReviewerApprove.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReviewerApprove
}

// ExpectReqParam2 sets up expected param req for Service.ReviewerApprove
func (mmReviewerApprove *mServiceMockReviewerApprove) ExpectReqParam2(req article.ApproveReq) *mServiceMockReviewerApprove {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &ServiceMockReviewerApproveExpectation{}
	}

	if mmReviewerApprove.defaultExpectation.params != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Expect")
	}

	if mmReviewerApprove.defaultExpectation.paramPtrs == nil {
		mmReviewerApprove.defaultExpectation.paramPtrs = &ServiceMockReviewerApproveParamPtrs{}
	}
	mmReviewerApprove.defaultExpectation.paramPtrs.req = &req
	mmReviewerApprove.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmReviewerApprove
}

// Inspect accepts an inspector function that has same arguments as the Service.ReviewerApprove
func (mmReviewerApprove *mServiceMockReviewerApprove) Inspect(f func(ctx context.Context, req article.ApproveReq)) *mServiceMockReviewerApprove {
	if mmReviewerApprove.mock.inspectFuncReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("Inspect function is already set for ServiceMock.ReviewerApprove")
	}

	mmReviewerApprove.mock.inspectFuncReviewerApprove = f

	return mmReviewerApprove
}

// Return sets up results that will be returned by Service.ReviewerApprove
func (mmReviewerApprove *mServiceMockReviewerApprove) Return(a1 article.Article, err error) *ServiceMock {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Set")
	}

	if mmReviewerApprove.defaultExpectation == nil {
		mmReviewerApprove.defaultExpectation = &ServiceMockReviewerApproveExpectation{mock: mmReviewerApprove.mock}
	}
	mmReviewerApprove.defaultExpectation.results = &ServiceMockReviewerApproveResults{a1, err}
	mmReviewerApprove.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReviewerApprove.mock
}

// Set uses given function f to mock the Service.ReviewerApprove method
func (mmReviewerApprove *mServiceMockReviewerApprove) Set(f func(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error)) *ServiceMock {
	if mmReviewerApprove.defaultExpectation != nil {
		mmReviewerApprove.mock.t.Fatalf("Default expectation is already set for the Service.ReviewerApprove method")
	}

	if len(mmReviewerApprove.expectations) > 0 {
		mmReviewerApprove.mock.t.Fatalf("Some expectations are already set for the Service.ReviewerApprove method")
	}

	mmReviewerApprove.mock.funcReviewerApprove = f
	mmReviewerApprove.mock.funcReviewerApproveOrigin = minimock.CallerInfo(1)
	return mmReviewerApprove.mock
}

// When sets expectation for the Service.ReviewerApprove which will trigger the result defined by the following
// Then helper
func (mmReviewerApprove *mServiceMockReviewerApprove) When(ctx context.Context, req article.ApproveReq) *ServiceMockReviewerApproveExpectation {
	if mmReviewerApprove.mock.funcReviewerApprove != nil {
		mmReviewerApprove.mock.t.Fatalf("ServiceMock.ReviewerApprove mock is already set by Set")
	}

	expectation := &ServiceMockReviewerApproveExpectation{
		mock:               mmReviewerApprove.mock,
		params:             &ServiceMockReviewerApproveParams{ctx, req},
		expectationOrigins: ServiceMockReviewerApproveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReviewerApprove.expectations = append(mmReviewerApprove.expectations, expectation)
	return expectation
}

// Then sets up Service.ReviewerApprove return parameters for the expectation previously defined by the When method
func (e *ServiceMockReviewerApproveExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockReviewerApproveResults{a1, err}
	return e.mock
}

// Times sets number of times Service.ReviewerApprove should be invoked
func (mmReviewerApprove *mServiceMockReviewerApprove) Times(n uint64) *mServiceMockReviewerApprove {
	if n == 0 {
		mmReviewerApprove.mock.t.Fatalf("Times of ServiceMock.ReviewerApprove mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReviewerApprove.expectedInvocations, n)
	mmReviewerApprove.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReviewerApprove
}

func (mmReviewerApprove *mServiceMockReviewerApprove) invocationsDone() bool {
	if len(mmReviewerApprove.expectations) == 0 && mmReviewerApprove.defaultExpectation == nil && mmReviewerApprove.mock.funcReviewerApprove == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReviewerApprove.mock.afterReviewerApproveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReviewerApprove.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ReviewerApprove implements mm_http.Service
func (mmReviewerApprove *ServiceMock) ReviewerApprove(ctx context.Context, req article.ApproveReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmReviewerApprove.beforeReviewerApproveCounter, 1)
	defer mm_atomic.AddUint64(&mmReviewerApprove.afterReviewerApproveCounter, 1)

	mmReviewerApprove.t.Helper()

	if mmReviewerApprove.inspectFuncReviewerApprove != nil {
		mmReviewerApprove.inspectFuncReviewerApprove(ctx, req)
	}

	mm_params := ServiceMockReviewerApproveParams{ctx, req}

	// Record call args
	mmReviewerApprove.ReviewerApproveMock.mutex.Lock()
	mmReviewerApprove.ReviewerApproveMock.callArgs = append(mmReviewerApprove.ReviewerApproveMock.callArgs, &mm_params)
	mmReviewerApprove.ReviewerApproveMock.mutex.Unlock()

	for _, e := range mmReviewerApprove.ReviewerApproveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmReviewerApprove.ReviewerApproveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReviewerApprove.ReviewerApproveMock.defaultExpectation.Counter, 1)
		mm_want := mmReviewerApprove.ReviewerApproveMock.defaultExpectation.params
		mm_want_ptrs := mmReviewerApprove.ReviewerApproveMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockReviewerApproveParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReviewerApprove.t.Errorf("ServiceMock.ReviewerApprove got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmReviewerApprove.t.Errorf("ServiceMock.ReviewerApprove got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReviewerApprove.t.Errorf("ServiceMock.ReviewerApprove got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReviewerApprove.ReviewerApproveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReviewerApprove.ReviewerApproveMock.defaultExpectation.results
		if mm_results == nil {
			mmReviewerApprove.t.Fatal("No results are set for the ServiceMock.ReviewerApprove")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmReviewerApprove.funcReviewerApprove != nil {
		return mmReviewerApprove.funcReviewerApprove(ctx, req)
	}
	mmReviewerApprove.t.Fatalf("Unexpected call to ServiceMock.ReviewerApprove. %v %v", ctx, req)
	return
}

// ReviewerApproveAfterCounter returns a count of finished ServiceMock.ReviewerApprove invocations
func (mmReviewerApprove *ServiceMock) ReviewerApproveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReviewerApprove.afterReviewerApproveCounter)
}

// ReviewerApproveBeforeCounter returns a count of ServiceMock.ReviewerApprove invocations
func (mmReviewerApprove *ServiceMock) ReviewerApproveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReviewerApprove.beforeReviewerApproveCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.ReviewerApprove.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReviewerApprove *mServiceMockReviewerApprove) Calls() []*ServiceMockReviewerApproveParams {
	mmReviewerApprove.mutex.RLock()

	argCopy := make([]*ServiceMockReviewerApproveParams, len(mmReviewerApprove.callArgs))
	copy(argCopy, mmReviewerApprove.callArgs)

	mmReviewerApprove.mutex.RUnlock()

	return argCopy
}

// MinimockReviewerApproveDone returns true if the count of the ReviewerApprove invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockReviewerApproveDone() bool {
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
func (m *ServiceMock) MinimockReviewerApproveInspect() {
	for _, e := range m.ReviewerApproveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.ReviewerApprove at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterReviewerApproveCounter := mm_atomic.LoadUint64(&m.afterReviewerApproveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ReviewerApproveMock.defaultExpectation != nil && afterReviewerApproveCounter < 1 {
		if m.ReviewerApproveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.ReviewerApprove at\n%s", m.ReviewerApproveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.ReviewerApprove at\n%s with params: %#v", m.ReviewerApproveMock.defaultExpectation.expectationOrigins.origin, *m.ReviewerApproveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReviewerApprove != nil && afterReviewerApproveCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.ReviewerApprove at\n%s", m.funcReviewerApproveOrigin)
	}

	if !m.ReviewerApproveMock.invocationsDone() && afterReviewerApproveCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.ReviewerApprove at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ReviewerApproveMock.expectedInvocations), m.ReviewerApproveMock.expectedInvocationsOrigin, afterReviewerApproveCounter)
	}
}

type mServiceMockSetCitation struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockSetCitationExpectation
	expectations       []*ServiceMockSetCitationExpectation

	callArgs []*ServiceMockSetCitationParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockSetCitationExpectation specifies expectation struct of the Service.SetCitation
type ServiceMockSetCitationExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockSetCitationParams
	paramPtrs          *ServiceMockSetCitationParamPtrs
	expectationOrigins ServiceMockSetCitationExpectationOrigins
	results            *ServiceMockSetCitationResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockSetCitationParams contains parameters of the Service.SetCitation
type ServiceMockSetCitationParams struct {
	ctx context.Context
	req article.SetCitationReq
}

// ServiceMockSetCitationParamPtrs contains pointers to parameters of the Service.SetCitation
type ServiceMockSetCitationParamPtrs struct {
	ctx *context.Context
	req *article.SetCitationReq
}

// ServiceMockSetCitationResults contains results of the Service.SetCitation
type ServiceMockSetCitationResults struct {
	a1  article.Article
	err error
}

// ServiceMockSetCitationOrigins contains origins of expectations of the Service.SetCitation
type ServiceMockSetCitationExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSetCitation *mServiceMockSetCitation) Optional() *mServiceMockSetCitation {
	mmSetCitation.optional = true
	return mmSetCitation
}

// Expect sets up expected params for Service.SetCitation
func (mmSetCitation *mServiceMockSetCitation) Expect(ctx context.Context, req article.SetCitationReq) *mServiceMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &ServiceMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.paramPtrs != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by ExpectParams functions")
	}

	mmSetCitation.defaultExpectation.params = &ServiceMockSetCitationParams{ctx, req}
	mmSetCitation.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSetCitation.expectations {
		if minimock.Equal(e.params, mmSetCitation.defaultExpectation.params) {
			mmSetCitation.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSetCitation.defaultExpectation.params)
		}
	}

	return mmSetCitation
}

// ExpectCtxParam1 sets up expected param ctx for Service.SetCitation
func (mmSetCitation *mServiceMockSetCitation) ExpectCtxParam1(ctx context.Context) *mServiceMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &ServiceMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &ServiceMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.ctx = &ctx
	mmSetCitation.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSetCitation
}

// ExpectReqParam2 sets up expected param req for Service.SetCitation
func (mmSetCitation *mServiceMockSetCitation) ExpectReqParam2(req article.SetCitationReq) *mServiceMockSetCitation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &ServiceMockSetCitationExpectation{}
	}

	if mmSetCitation.defaultExpectation.params != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Expect")
	}

	if mmSetCitation.defaultExpectation.paramPtrs == nil {
		mmSetCitation.defaultExpectation.paramPtrs = &ServiceMockSetCitationParamPtrs{}
	}
	mmSetCitation.defaultExpectation.paramPtrs.req = &req
	mmSetCitation.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmSetCitation
}

// Inspect accepts an inspector function that has same arguments as the Service.SetCitation
func (mmSetCitation *mServiceMockSetCitation) Inspect(f func(ctx context.Context, req article.SetCitationReq)) *mServiceMockSetCitation {
	if mmSetCitation.mock.inspectFuncSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("Inspect function is already set for ServiceMock.SetCitation")
	}

	mmSetCitation.mock.inspectFuncSetCitation = f

	return mmSetCitation
}

// Return sets up results that will be returned by Service.SetCitation
func (mmSetCitation *mServiceMockSetCitation) Return(a1 article.Article, err error) *ServiceMock {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Set")
	}

	if mmSetCitation.defaultExpectation == nil {
		mmSetCitation.defaultExpectation = &ServiceMockSetCitationExpectation{mock: mmSetCitation.mock}
	}
	mmSetCitation.defaultExpectation.results = &ServiceMockSetCitationResults{a1, err}
	mmSetCitation.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSetCitation.mock
}

// Set uses given function f to mock the Service.SetCitation method
func (mmSetCitation *mServiceMockSetCitation) Set(f func(ctx context.Context, req article.SetCitationReq) (a1 article.Article, err error)) *ServiceMock {
	if mmSetCitation.defaultExpectation != nil {
		mmSetCitation.mock.t.Fatalf("Default expectation is already set for the Service.SetCitation method")
	}

	if len(mmSetCitation.expectations) > 0 {
		mmSetCitation.mock.t.Fatalf("Some expectations are already set for the Service.SetCitation method")
	}

	mmSetCitation.mock.funcSetCitation = f
	mmSetCitation.mock.funcSetCitationOrigin = minimock.CallerInfo(1)
	return mmSetCitation.mock
}

// When sets expectation for the Service.SetCitation which will trigger the result defined by the following
// Then helper
func (mmSetCitation *mServiceMockSetCitation) When(ctx context.Context, req article.SetCitationReq) *ServiceMockSetCitationExpectation {
	if mmSetCitation.mock.funcSetCitation != nil {
		mmSetCitation.mock.t.Fatalf("ServiceMock.SetCitation mock is already set by Set")
	}

	expectation := &ServiceMockSetCitationExpectation{
		mock:               mmSetCitation.mock,
		params:             &ServiceMockSetCitationParams{ctx, req},
		expectationOrigins: ServiceMockSetCitationExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSetCitation.expectations = append(mmSetCitation.expectations, expectation)
	return expectation
}

// Then sets up Service.SetCitation return parameters for the expectation previously defined by the When method
func (e *ServiceMockSetCitationExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockSetCitationResults{a1, err}
	return e.mock
}

// Times sets number of times Service.SetCitation should be invoked
func (mmSetCitation *mServiceMockSetCitation) Times(n uint64) *mServiceMockSetCitation {
	if n == 0 {
		mmSetCitation.mock.t.Fatalf("Times of ServiceMock.SetCitation mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSetCitation.expectedInvocations, n)
	mmSetCitation.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSetCitation
}

func (mmSetCitation *mServiceMockSetCitation) invocationsDone() bool {
	if len(mmSetCitation.expectations) == 0 && mmSetCitation.defaultExpectation == nil && mmSetCitation.mock.funcSetCitation == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSetCitation.mock.afterSetCitationCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSetCitation.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// SetCitation implements mm_http.Service
func (mmSetCitation *ServiceMock) SetCitation(ctx context.Context, req article.SetCitationReq) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmSetCitation.beforeSetCitationCounter, 1)
	defer mm_atomic.AddUint64(&mmSetCitation.afterSetCitationCounter, 1)

	mmSetCitation.t.Helper()

	if mmSetCitation.inspectFuncSetCitation != nil {
		mmSetCitation.inspectFuncSetCitation(ctx, req)
	}

	mm_params := ServiceMockSetCitationParams{ctx, req}

	// Record call args
	mmSetCitation.SetCitationMock.mutex.Lock()
	mmSetCitation.SetCitationMock.callArgs = append(mmSetCitation.SetCitationMock.callArgs, &mm_params)
	mmSetCitation.SetCitationMock.mutex.Unlock()

	for _, e := range mmSetCitation.SetCitationMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmSetCitation.SetCitationMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSetCitation.SetCitationMock.defaultExpectation.Counter, 1)
		mm_want := mmSetCitation.SetCitationMock.defaultExpectation.params
		mm_want_ptrs := mmSetCitation.SetCitationMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockSetCitationParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSetCitation.t.Errorf("ServiceMock.SetCitation got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmSetCitation.t.Errorf("ServiceMock.SetCitation got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSetCitation.t.Errorf("ServiceMock.SetCitation got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSetCitation.SetCitationMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSetCitation.SetCitationMock.defaultExpectation.results
		if mm_results == nil {
			mmSetCitation.t.Fatal("No results are set for the ServiceMock.SetCitation")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmSetCitation.funcSetCitation != nil {
		return mmSetCitation.funcSetCitation(ctx, req)
	}
	mmSetCitation.t.Fatalf("Unexpected call to ServiceMock.SetCitation. %v %v", ctx, req)
	return
}

// SetCitationAfterCounter returns a count of finished ServiceMock.SetCitation invocations
func (mmSetCitation *ServiceMock) SetCitationAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetCitation.afterSetCitationCounter)
}

// SetCitationBeforeCounter returns a count of ServiceMock.SetCitation invocations
func (mmSetCitation *ServiceMock) SetCitationBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSetCitation.beforeSetCitationCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.SetCitation.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSetCitation *mServiceMockSetCitation) Calls() []*ServiceMockSetCitationParams {
	mmSetCitation.mutex.RLock()

	argCopy := make([]*ServiceMockSetCitationParams, len(mmSetCitation.callArgs))
	copy(argCopy, mmSetCitation.callArgs)

	mmSetCitation.mutex.RUnlock()

	return argCopy
}

// MinimockSetCitationDone returns true if the count of the SetCitation invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockSetCitationDone() bool {
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
func (m *ServiceMock) MinimockSetCitationInspect() {
	for _, e := range m.SetCitationMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.SetCitation at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSetCitationCounter := mm_atomic.LoadUint64(&m.afterSetCitationCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SetCitationMock.defaultExpectation != nil && afterSetCitationCounter < 1 {
		if m.SetCitationMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.SetCitation at\n%s", m.SetCitationMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.SetCitation at\n%s with params: %#v", m.SetCitationMock.defaultExpectation.expectationOrigins.origin, *m.SetCitationMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSetCitation != nil && afterSetCitationCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.SetCitation at\n%s", m.funcSetCitationOrigin)
	}

	if !m.SetCitationMock.invocationsDone() && afterSetCitationCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.SetCitation at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SetCitationMock.expectedInvocations), m.SetCitationMock.expectedInvocationsOrigin, afterSetCitationCounter)
	}
}

type mServiceMockSubmit struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockSubmitExpectation
	expectations       []*ServiceMockSubmitExpectation

	callArgs []*ServiceMockSubmitParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockSubmitExpectation specifies expectation struct of the Service.Submit
type ServiceMockSubmitExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockSubmitParams
	paramPtrs          *ServiceMockSubmitParamPtrs
	expectationOrigins ServiceMockSubmitExpectationOrigins
	results            *ServiceMockSubmitResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockSubmitParams contains parameters of the Service.Submit
type ServiceMockSubmitParams struct {
	ctx context.Context
	cmd usecase.SubmitCmd
}

// ServiceMockSubmitParamPtrs contains pointers to parameters of the Service.Submit
type ServiceMockSubmitParamPtrs struct {
	ctx *context.Context
	cmd *usecase.SubmitCmd
}

// ServiceMockSubmitResults contains results of the Service.Submit
type ServiceMockSubmitResults struct {
	a1  article.Article
	err error
}

// ServiceMockSubmitOrigins contains origins of expectations of the Service.Submit
type ServiceMockSubmitExpectationOrigins struct {
	origin    string
	originCtx string
	originCmd string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSubmit *mServiceMockSubmit) Optional() *mServiceMockSubmit {
	mmSubmit.optional = true
	return mmSubmit
}

// Expect sets up expected params for Service.Submit
func (mmSubmit *mServiceMockSubmit) Expect(ctx context.Context, cmd usecase.SubmitCmd) *mServiceMockSubmit {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &ServiceMockSubmitExpectation{}
	}

	if mmSubmit.defaultExpectation.paramPtrs != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by ExpectParams functions")
	}

	mmSubmit.defaultExpectation.params = &ServiceMockSubmitParams{ctx, cmd}
	mmSubmit.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSubmit.expectations {
		if minimock.Equal(e.params, mmSubmit.defaultExpectation.params) {
			mmSubmit.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSubmit.defaultExpectation.params)
		}
	}

	return mmSubmit
}

// ExpectCtxParam1 sets up expected param ctx for Service.Submit
func (mmSubmit *mServiceMockSubmit) ExpectCtxParam1(ctx context.Context) *mServiceMockSubmit {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &ServiceMockSubmitExpectation{}
	}

	if mmSubmit.defaultExpectation.params != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Expect")
	}

	if mmSubmit.defaultExpectation.paramPtrs == nil {
		mmSubmit.defaultExpectation.paramPtrs = &ServiceMockSubmitParamPtrs{}
	}
	mmSubmit.defaultExpectation.paramPtrs.ctx = &ctx
	mmSubmit.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSubmit
}

// ExpectCmdParam2 sets up expected param cmd for Service.Submit
func (mmSubmit *mServiceMockSubmit) ExpectCmdParam2(cmd usecase.SubmitCmd) *mServiceMockSubmit {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &ServiceMockSubmitExpectation{}
	}

	if mmSubmit.defaultExpectation.params != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Expect")
	}

	if mmSubmit.defaultExpectation.paramPtrs == nil {
		mmSubmit.defaultExpectation.paramPtrs = &ServiceMockSubmitParamPtrs{}
	}
	mmSubmit.defaultExpectation.paramPtrs.cmd = &cmd
	mmSubmit.defaultExpectation.expectationOrigins.originCmd = minimock.CallerInfo(1)

	return mmSubmit
}

// Inspect accepts an inspector function that has same arguments as the Service.Submit
func (mmSubmit *mServiceMockSubmit) Inspect(f func(ctx context.Context, cmd usecase.SubmitCmd)) *mServiceMockSubmit {
	if mmSubmit.mock.inspectFuncSubmit != nil {
		mmSubmit.mock.t.Fatalf("Inspect function is already set for ServiceMock.Submit")
	}

	mmSubmit.mock.inspectFuncSubmit = f

	return mmSubmit
}

// Return sets up results that will be returned by Service.Submit
func (mmSubmit *mServiceMockSubmit) Return(a1 article.Article, err error) *ServiceMock {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Set")
	}

	if mmSubmit.defaultExpectation == nil {
		mmSubmit.defaultExpectation = &ServiceMockSubmitExpectation{mock: mmSubmit.mock}
	}
	mmSubmit.defaultExpectation.results = &ServiceMockSubmitResults{a1, err}
	mmSubmit.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSubmit.mock
}

// Set uses given function f to mock the Service.Submit method
func (mmSubmit *mServiceMockSubmit) Set(f func(ctx context.Context, cmd usecase.SubmitCmd) (a1 article.Article, err error)) *ServiceMock {
	if mmSubmit.defaultExpectation != nil {
		mmSubmit.mock.t.Fatalf("Default expectation is already set for the Service.Submit method")
	}

	if len(mmSubmit.expectations) > 0 {
		mmSubmit.mock.t.Fatalf("Some expectations are already set for the Service.Submit method")
	}

	mmSubmit.mock.funcSubmit = f
	mmSubmit.mock.funcSubmitOrigin = minimock.CallerInfo(1)
	return mmSubmit.mock
}

// When sets expectation for the Service.Submit which will trigger the result defined by the following
// Then helper
func (mmSubmit *mServiceMockSubmit) When(ctx context.Context, cmd usecase.SubmitCmd) *ServiceMockSubmitExpectation {
	if mmSubmit.mock.funcSubmit != nil {
		mmSubmit.mock.t.Fatalf("ServiceMock.Submit mock is already set by Set")
	}

	expectation := &ServiceMockSubmitExpectation{
		mock:               mmSubmit.mock,
		params:             &ServiceMockSubmitParams{ctx, cmd},
		expectationOrigins: ServiceMockSubmitExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSubmit.expectations = append(mmSubmit.expectations, expectation)
	return expectation
}

// Then sets up Service.Submit return parameters for the expectation previously defined by the When method
func (e *ServiceMockSubmitExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockSubmitResults{a1, err}
	return e.mock
}

// Times sets number of times Service.Submit should be invoked
func (mmSubmit *mServiceMockSubmit) Times(n uint64) *mServiceMockSubmit {
	if n == 0 {
		mmSubmit.mock.t.Fatalf("Times of ServiceMock.Submit mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSubmit.expectedInvocations, n)
	mmSubmit.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSubmit
}

func (mmSubmit *mServiceMockSubmit) invocationsDone() bool {
	if len(mmSubmit.expectations) == 0 && mmSubmit.defaultExpectation == nil && mmSubmit.mock.funcSubmit == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSubmit.mock.afterSubmitCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSubmit.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Submit implements mm_http.Service
func (mmSubmit *ServiceMock) Submit(ctx context.Context, cmd usecase.SubmitCmd) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmSubmit.beforeSubmitCounter, 1)
	defer mm_atomic.AddUint64(&mmSubmit.afterSubmitCounter, 1)

	mmSubmit.t.Helper()

	if mmSubmit.inspectFuncSubmit != nil {
		mmSubmit.inspectFuncSubmit(ctx, cmd)
	}

	mm_params := ServiceMockSubmitParams{ctx, cmd}

	// Record call args
	mmSubmit.SubmitMock.mutex.Lock()
	mmSubmit.SubmitMock.callArgs = append(mmSubmit.SubmitMock.callArgs, &mm_params)
	mmSubmit.SubmitMock.mutex.Unlock()

	for _, e := range mmSubmit.SubmitMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmSubmit.SubmitMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSubmit.SubmitMock.defaultExpectation.Counter, 1)
		mm_want := mmSubmit.SubmitMock.defaultExpectation.params
		mm_want_ptrs := mmSubmit.SubmitMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockSubmitParams{ctx, cmd}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSubmit.t.Errorf("ServiceMock.Submit got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSubmit.SubmitMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.cmd != nil && !minimock.Equal(*mm_want_ptrs.cmd, mm_got.cmd) {
				mmSubmit.t.Errorf("ServiceMock.Submit got unexpected parameter cmd, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSubmit.SubmitMock.defaultExpectation.expectationOrigins.originCmd, *mm_want_ptrs.cmd, mm_got.cmd, minimock.Diff(*mm_want_ptrs.cmd, mm_got.cmd))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSubmit.t.Errorf("ServiceMock.Submit got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSubmit.SubmitMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSubmit.SubmitMock.defaultExpectation.results
		if mm_results == nil {
			mmSubmit.t.Fatal("No results are set for the ServiceMock.Submit")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmSubmit.funcSubmit != nil {
		return mmSubmit.funcSubmit(ctx, cmd)
	}
	mmSubmit.t.Fatalf("Unexpected call to ServiceMock.Submit. %v %v", ctx, cmd)
	return
}

// SubmitAfterCounter returns a count of finished ServiceMock.Submit invocations
func (mmSubmit *ServiceMock) SubmitAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSubmit.afterSubmitCounter)
}

// SubmitBeforeCounter returns a count of ServiceMock.Submit invocations
func (mmSubmit *ServiceMock) SubmitBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSubmit.beforeSubmitCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Submit.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSubmit *mServiceMockSubmit) Calls() []*ServiceMockSubmitParams {
	mmSubmit.mutex.RLock()

	argCopy := make([]*ServiceMockSubmitParams, len(mmSubmit.callArgs))
	copy(argCopy, mmSubmit.callArgs)

	mmSubmit.mutex.RUnlock()

	return argCopy
}

// MinimockSubmitDone returns true if the count of the Submit invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockSubmitDone() bool {
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
func (m *ServiceMock) MinimockSubmitInspect() {
	for _, e := range m.SubmitMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Submit at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSubmitCounter := mm_atomic.LoadUint64(&m.afterSubmitCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SubmitMock.defaultExpectation != nil && afterSubmitCounter < 1 {
		if m.SubmitMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Submit at\n%s", m.SubmitMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Submit at\n%s with params: %#v", m.SubmitMock.defaultExpectation.expectationOrigins.origin, *m.SubmitMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSubmit != nil && afterSubmitCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Submit at\n%s", m.funcSubmitOrigin)
	}

	if !m.SubmitMock.invocationsDone() && afterSubmitCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Submit at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SubmitMock.expectedInvocations), m.SubmitMock.expectedInvocationsOrigin, afterSubmitCounter)
	}
}

type mServiceMockUploadEditorCorrection struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockUploadEditorCorrectionExpectation
	expectations       []*ServiceMockUploadEditorCorrectionExpectation

	callArgs []*ServiceMockUploadEditorCorrectionParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockUploadEditorCorrectionExpectation specifies expectation struct of the Service.UploadEditorCorrection
type ServiceMockUploadEditorCorrectionExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockUploadEditorCorrectionParams
	paramPtrs          *ServiceMockUploadEditorCorrectionParamPtrs
	expectationOrigins ServiceMockUploadEditorCorrectionExpectationOrigins
	results            *ServiceMockUploadEditorCorrectionResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockUploadEditorCorrectionParams contains parameters of the Service.UploadEditorCorrection
type ServiceMockUploadEditorCorrectionParams struct {
	ctx context.Context
	cmd usecase.UploadCorrectionCmd
}

// ServiceMockUploadEditorCorrectionParamPtrs contains pointers to parameters of the Service.UploadEditorCorrection
type ServiceMockUploadEditorCorrectionParamPtrs struct {
	ctx *context.Context
	cmd *usecase.UploadCorrectionCmd
}

// ServiceMockUploadEditorCorrectionResults contains results of the Service.UploadEditorCorrection
type ServiceMockUploadEditorCorrectionResults struct {
	a1  article.Article
	err error
}

// ServiceMockUploadEditorCorrectionOrigins contains origins of expectations of the Service.UploadEditorCorrection
type ServiceMockUploadEditorCorrectionExpectationOrigins struct {
	origin    string
	originCtx string
	originCmd string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Optional() *mServiceMockUploadEditorCorrection {
	mmUploadEditorCorrection.optional = true
	return mmUploadEditorCorrection
}

// Expect sets up expected params for Service.UploadEditorCorrection
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Expect(ctx context.Context, cmd usecase.UploadCorrectionCmd) *mServiceMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &ServiceMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by ExpectParams functions")
	}

	mmUploadEditorCorrection.defaultExpectation.params = &ServiceMockUploadEditorCorrectionParams{ctx, cmd}
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUploadEditorCorrection.expectations {
		if minimock.Equal(e.params, mmUploadEditorCorrection.defaultExpectation.params) {
			mmUploadEditorCorrection.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUploadEditorCorrection.defaultExpectation.params)
		}
	}

	return mmUploadEditorCorrection
}

// ExpectCtxParam1 sets up expected param ctx for Service.UploadEditorCorrection
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) ExpectCtxParam1(ctx context.Context) *mServiceMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &ServiceMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.params != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Expect")
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadEditorCorrection.defaultExpectation.paramPtrs = &ServiceMockUploadEditorCorrectionParamPtrs{}
	}
	mmUploadEditorCorrection.defaultExpectation.paramPtrs.ctx = &ctx
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUploadEditorCorrection
}

// ExpectCmdParam2 sets up expected param cmd for Service.UploadEditorCorrection
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) ExpectCmdParam2(cmd usecase.UploadCorrectionCmd) *mServiceMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &ServiceMockUploadEditorCorrectionExpectation{}
	}

	if mmUploadEditorCorrection.defaultExpectation.params != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Expect")
	}

	if mmUploadEditorCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadEditorCorrection.defaultExpectation.paramPtrs = &ServiceMockUploadEditorCorrectionParamPtrs{}
	}
	mmUploadEditorCorrection.defaultExpectation.paramPtrs.cmd = &cmd
	mmUploadEditorCorrection.defaultExpectation.expectationOrigins.originCmd = minimock.CallerInfo(1)

	return mmUploadEditorCorrection
}

// Inspect accepts an inspector function that has same arguments as the Service.UploadEditorCorrection
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Inspect(f func(ctx context.Context, cmd usecase.UploadCorrectionCmd)) *mServiceMockUploadEditorCorrection {
	if mmUploadEditorCorrection.mock.inspectFuncUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("Inspect function is already set for ServiceMock.UploadEditorCorrection")
	}

	mmUploadEditorCorrection.mock.inspectFuncUploadEditorCorrection = f

	return mmUploadEditorCorrection
}

// Return sets up results that will be returned by Service.UploadEditorCorrection
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Return(a1 article.Article, err error) *ServiceMock {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Set")
	}

	if mmUploadEditorCorrection.defaultExpectation == nil {
		mmUploadEditorCorrection.defaultExpectation = &ServiceMockUploadEditorCorrectionExpectation{mock: mmUploadEditorCorrection.mock}
	}
	mmUploadEditorCorrection.defaultExpectation.results = &ServiceMockUploadEditorCorrectionResults{a1, err}
	mmUploadEditorCorrection.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUploadEditorCorrection.mock
}

// Set uses given function f to mock the Service.UploadEditorCorrection method
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Set(f func(ctx context.Context, cmd usecase.UploadCorrectionCmd) (a1 article.Article, err error)) *ServiceMock {
	if mmUploadEditorCorrection.defaultExpectation != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("Default expectation is already set for the Service.UploadEditorCorrection method")
	}

	if len(mmUploadEditorCorrection.expectations) > 0 {
		mmUploadEditorCorrection.mock.t.Fatalf("Some expectations are already set for the Service.UploadEditorCorrection method")
	}

	mmUploadEditorCorrection.mock.funcUploadEditorCorrection = f
	mmUploadEditorCorrection.mock.funcUploadEditorCorrectionOrigin = minimock.CallerInfo(1)
	return mmUploadEditorCorrection.mock
}

// When sets expectation for the Service.UploadEditorCorrection which will trigger the result defined by the following
// Then helper
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) When(ctx context.Context, cmd usecase.UploadCorrectionCmd) *ServiceMockUploadEditorCorrectionExpectation {
	if mmUploadEditorCorrection.mock.funcUploadEditorCorrection != nil {
		mmUploadEditorCorrection.mock.t.Fatalf("ServiceMock.UploadEditorCorrection mock is already set by Set")
	}

	expectation := &ServiceMockUploadEditorCorrectionExpectation{
		mock:               mmUploadEditorCorrection.mock,
		params:             &ServiceMockUploadEditorCorrectionParams{ctx, cmd},
		expectationOrigins: ServiceMockUploadEditorCorrectionExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUploadEditorCorrection.expectations = append(mmUploadEditorCorrection.expectations, expectation)
	return expectation
}

// Then sets up Service.UploadEditorCorrection return parameters for the expectation previously defined by the When method
func (e *ServiceMockUploadEditorCorrectionExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockUploadEditorCorrectionResults{a1, err}
	return e.mock
}

// Times sets number of times Service.UploadEditorCorrection should be invoked
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Times(n uint64) *mServiceMockUploadEditorCorrection {
	if n == 0 {
		mmUploadEditorCorrection.mock.t.Fatalf("Times of ServiceMock.UploadEditorCorrection mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUploadEditorCorrection.expectedInvocations, n)
	mmUploadEditorCorrection.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUploadEditorCorrection
}

func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) invocationsDone() bool {
	if len(mmUploadEditorCorrection.expectations) == 0 && mmUploadEditorCorrection.defaultExpectation == nil && mmUploadEditorCorrection.mock.funcUploadEditorCorrection == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUploadEditorCorrection.mock.afterUploadEditorCorrectionCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUploadEditorCorrection.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// UploadEditorCorrection implements mm_http.Service
func (mmUploadEditorCorrection *ServiceMock) UploadEditorCorrection(ctx context.Context, cmd usecase.UploadCorrectionCmd) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmUploadEditorCorrection.beforeUploadEditorCorrectionCounter, 1)
	defer mm_atomic.AddUint64(&mmUploadEditorCorrection.afterUploadEditorCorrectionCounter, 1)

	mmUploadEditorCorrection.t.Helper()

	if mmUploadEditorCorrection.inspectFuncUploadEditorCorrection != nil {
		mmUploadEditorCorrection.inspectFuncUploadEditorCorrection(ctx, cmd)
	}

	mm_params := ServiceMockUploadEditorCorrectionParams{ctx, cmd}

	// Record call args
	mmUploadEditorCorrection.UploadEditorCorrectionMock.mutex.Lock()
	mmUploadEditorCorrection.UploadEditorCorrectionMock.callArgs = append(mmUploadEditorCorrection.UploadEditorCorrectionMock.callArgs, &mm_params)
	mmUploadEditorCorrection.UploadEditorCorrectionMock.mutex.Unlock()

	for _, e := range mmUploadEditorCorrection.UploadEditorCorrectionMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.Counter, 1)
		mm_want := mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.params
		mm_want_ptrs := mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockUploadEditorCorrectionParams{ctx, cmd}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUploadEditorCorrection.t.Errorf("ServiceMock.UploadEditorCorrection got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.cmd != nil && !minimock.Equal(*mm_want_ptrs.cmd, mm_got.cmd) {
				mmUploadEditorCorrection.t.Errorf("ServiceMock.UploadEditorCorrection got unexpected parameter cmd, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.originCmd, *mm_want_ptrs.cmd, mm_got.cmd, minimock.Diff(*mm_want_ptrs.cmd, mm_got.cmd))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUploadEditorCorrection.t.Errorf("ServiceMock.UploadEditorCorrection got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUploadEditorCorrection.UploadEditorCorrectionMock.defaultExpectation.results
		if mm_results == nil {
			mmUploadEditorCorrection.t.Fatal("No results are set for the ServiceMock.UploadEditorCorrection")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmUploadEditorCorrection.funcUploadEditorCorrection != nil {
		return mmUploadEditorCorrection.funcUploadEditorCorrection(ctx, cmd)
	}
	mmUploadEditorCorrection.t.Fatalf("Unexpected call to ServiceMock.UploadEditorCorrection. %v %v", ctx, cmd)
	return
}

// UploadEditorCorrectionAfterCounter returns a count of finished ServiceMock.UploadEditorCorrection invocations
func (mmUploadEditorCorrection *ServiceMock) UploadEditorCorrectionAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadEditorCorrection.afterUploadEditorCorrectionCounter)
}

// UploadEditorCorrectionBeforeCounter returns a count of ServiceMock.UploadEditorCorrection invocations
func (mmUploadEditorCorrection *ServiceMock) UploadEditorCorrectionBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadEditorCorrection.beforeUploadEditorCorrectionCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.UploadEditorCorrection.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUploadEditorCorrection *mServiceMockUploadEditorCorrection) Calls() []*ServiceMockUploadEditorCorrectionParams {
	mmUploadEditorCorrection.mutex.RLock()

	argCopy := make([]*ServiceMockUploadEditorCorrectionParams, len(mmUploadEditorCorrection.callArgs))
	copy(argCopy, mmUploadEditorCorrection.callArgs)

	mmUploadEditorCorrection.mutex.RUnlock()

	return argCopy
}

// MinimockUploadEditorCorrectionDone returns true if the count of the UploadEditorCorrection invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockUploadEditorCorrectionDone() bool {
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
func (m *ServiceMock) MinimockUploadEditorCorrectionInspect() {
	for _, e := range m.UploadEditorCorrectionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.UploadEditorCorrection at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUploadEditorCorrectionCounter := mm_atomic.LoadUint64(&m.afterUploadEditorCorrectionCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UploadEditorCorrectionMock.defaultExpectation != nil && afterUploadEditorCorrectionCounter < 1 {
		if m.UploadEditorCorrectionMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.UploadEditorCorrection at\n%s", m.UploadEditorCorrectionMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.UploadEditorCorrection at\n%s with params: %#v", m.UploadEditorCorrectionMock.defaultExpectation.expectationOrigins.origin, *m.UploadEditorCorrectionMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUploadEditorCorrection != nil && afterUploadEditorCorrectionCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.UploadEditorCorrection at\n%s", m.funcUploadEditorCorrectionOrigin)
	}

	if !m.UploadEditorCorrectionMock.invocationsDone() && afterUploadEditorCorrectionCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.UploadEditorCorrection at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UploadEditorCorrectionMock.expectedInvocations), m.UploadEditorCorrectionMock.expectedInvocationsOrigin, afterUploadEditorCorrectionCounter)
	}
}

type mServiceMockUploadReviewerCorrection struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockUploadReviewerCorrectionExpectation
	expectations       []*ServiceMockUploadReviewerCorrectionExpectation

	callArgs []*ServiceMockUploadReviewerCorrectionParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockUploadReviewerCorrectionExpectation specifies expectation struct of the Service.UploadReviewerCorrection
type ServiceMockUploadReviewerCorrectionExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockUploadReviewerCorrectionParams
	paramPtrs          *ServiceMockUploadReviewerCorrectionParamPtrs
	expectationOrigins ServiceMockUploadReviewerCorrectionExpectationOrigins
	results            *ServiceMockUploadReviewerCorrectionResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockUploadReviewerCorrectionParams contains parameters of the Service.UploadReviewerCorrection
type ServiceMockUploadReviewerCorrectionParams struct {
	ctx context.Context
	cmd usecase.UploadCorrectionCmd
}

// ServiceMockUploadReviewerCorrectionParamPtrs contains pointers to parameters of the Service.UploadReviewerCorrection
type ServiceMockUploadReviewerCorrectionParamPtrs struct {
	ctx *context.Context
	cmd *usecase.UploadCorrectionCmd
}

// ServiceMockUploadReviewerCorrectionResults contains results of the Service.UploadReviewerCorrection
type ServiceMockUploadReviewerCorrectionResults struct {
	a1  article.Article
	err error
}

// ServiceMockUploadReviewerCorrectionOrigins contains origins of expectations of the Service.UploadReviewerCorrection
type ServiceMockUploadReviewerCorrectionExpectationOrigins struct {
	origin    string
	originCtx string
	originCmd string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Optional() *mServiceMockUploadReviewerCorrection {
	mmUploadReviewerCorrection.optional = true
	return mmUploadReviewerCorrection
}

// Expect sets up expected params for Service.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Expect(ctx context.Context, cmd usecase.UploadCorrectionCmd) *mServiceMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &ServiceMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by ExpectParams functions")
	}

	mmUploadReviewerCorrection.defaultExpectation.params = &ServiceMockUploadReviewerCorrectionParams{ctx, cmd}
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUploadReviewerCorrection.expectations {
		if minimock.Equal(e.params, mmUploadReviewerCorrection.defaultExpectation.params) {
			mmUploadReviewerCorrection.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUploadReviewerCorrection.defaultExpectation.params)
		}
	}

	return mmUploadReviewerCorrection
}

// ExpectCtxParam1 sets up expected param ctx for Service.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) ExpectCtxParam1(ctx context.Context) *mServiceMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &ServiceMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.params != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Expect")
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadReviewerCorrection.defaultExpectation.paramPtrs = &ServiceMockUploadReviewerCorrectionParamPtrs{}
	}
	mmUploadReviewerCorrection.defaultExpectation.paramPtrs.ctx = &ctx
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUploadReviewerCorrection
}

// ExpectCmdParam2 sets up expected param cmd for Service.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) ExpectCmdParam2(cmd usecase.UploadCorrectionCmd) *mServiceMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &ServiceMockUploadReviewerCorrectionExpectation{}
	}

	if mmUploadReviewerCorrection.defaultExpectation.params != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Expect")
	}

	if mmUploadReviewerCorrection.defaultExpectation.paramPtrs == nil {
		mmUploadReviewerCorrection.defaultExpectation.paramPtrs = &ServiceMockUploadReviewerCorrectionParamPtrs{}
	}
	mmUploadReviewerCorrection.defaultExpectation.paramPtrs.cmd = &cmd
	mmUploadReviewerCorrection.defaultExpectation.expectationOrigins.originCmd = minimock.CallerInfo(1)

	return mmUploadReviewerCorrection
}

// Inspect accepts an inspector function that has same arguments as the Service.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Inspect(f func(ctx context.Context, cmd usecase.UploadCorrectionCmd)) *mServiceMockUploadReviewerCorrection {
	if mmUploadReviewerCorrection.mock.inspectFuncUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("Inspect function is already set for ServiceMock.UploadReviewerCorrection")
	}

	mmUploadReviewerCorrection.mock.inspectFuncUploadReviewerCorrection = f

	return mmUploadReviewerCorrection
}

// Return sets up results that will be returned by Service.UploadReviewerCorrection
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Return(a1 article.Article, err error) *ServiceMock {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Set")
	}

	if mmUploadReviewerCorrection.defaultExpectation == nil {
		mmUploadReviewerCorrection.defaultExpectation = &ServiceMockUploadReviewerCorrectionExpectation{mock: mmUploadReviewerCorrection.mock}
	}
	mmUploadReviewerCorrection.defaultExpectation.results = &ServiceMockUploadReviewerCorrectionResults{a1, err}
	mmUploadReviewerCorrection.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUploadReviewerCorrection.mock
}

// Set uses given function f to mock the Service.UploadReviewerCorrection method
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Set(f func(ctx context.Context, cmd usecase.UploadCorrectionCmd) (a1 article.Article, err error)) *ServiceMock {
	if mmUploadReviewerCorrection.defaultExpectation != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("Default expectation is already set for the Service.UploadReviewerCorrection method")
	}

	if len(mmUploadReviewerCorrection.expectations) > 0 {
		mmUploadReviewerCorrection.mock.t.Fatalf("Some expectations are already set for the Service.UploadReviewerCorrection method")
	}

	mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection = f
	mmUploadReviewerCorrection.mock.funcUploadReviewerCorrectionOrigin = minimock.CallerInfo(1)
	return mmUploadReviewerCorrection.mock
}

// When sets expectation for the Service.UploadReviewerCorrection which will trigger the result defined by the following
// Then helper
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) When(ctx context.Context, cmd usecase.UploadCorrectionCmd) *ServiceMockUploadReviewerCorrectionExpectation {
	if mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.mock.t.Fatalf("ServiceMock.UploadReviewerCorrection mock is already set by Set")
	}

	expectation := &ServiceMockUploadReviewerCorrectionExpectation{
		mock:               mmUploadReviewerCorrection.mock,
		params:             &ServiceMockUploadReviewerCorrectionParams{ctx, cmd},
		expectationOrigins: ServiceMockUploadReviewerCorrectionExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUploadReviewerCorrection.expectations = append(mmUploadReviewerCorrection.expectations, expectation)
	return expectation
}

// Then sets up Service.UploadReviewerCorrection return parameters for the expectation previously defined by the When method
func (e *ServiceMockUploadReviewerCorrectionExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockUploadReviewerCorrectionResults{a1, err}
	return e.mock
}

// Times sets number of times Service.UploadReviewerCorrection should be invoked
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Times(n uint64) *mServiceMockUploadReviewerCorrection {
	if n == 0 {
		mmUploadReviewerCorrection.mock.t.Fatalf("Times of ServiceMock.UploadReviewerCorrection mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUploadReviewerCorrection.expectedInvocations, n)
	mmUploadReviewerCorrection.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUploadReviewerCorrection
}

func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) invocationsDone() bool {
	if len(mmUploadReviewerCorrection.expectations) == 0 && mmUploadReviewerCorrection.defaultExpectation == nil && mmUploadReviewerCorrection.mock.funcUploadReviewerCorrection == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUploadReviewerCorrection.mock.afterUploadReviewerCorrectionCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUploadReviewerCorrection.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// UploadReviewerCorrection implements mm_http.Service
func (mmUploadReviewerCorrection *ServiceMock) UploadReviewerCorrection(ctx context.Context, cmd usecase.UploadCorrectionCmd) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmUploadReviewerCorrection.beforeUploadReviewerCorrectionCounter, 1)
	defer mm_atomic.AddUint64(&mmUploadReviewerCorrection.afterUploadReviewerCorrectionCounter, 1)

	mmUploadReviewerCorrection.t.Helper()

	if mmUploadReviewerCorrection.inspectFuncUploadReviewerCorrection != nil {
		mmUploadReviewerCorrection.inspectFuncUploadReviewerCorrection(ctx, cmd)
	}

	mm_params := ServiceMockUploadReviewerCorrectionParams{ctx, cmd}

	// Record call args
	mmUploadReviewerCorrection.UploadReviewerCorrectionMock.mutex.Lock()
	mmUploadReviewerCorrection.UploadReviewerCorrectionMock.callArgs = append(mmUploadReviewerCorrection.UploadReviewerCorrectionMock.callArgs, &mm_params)
	mmUploadReviewerCorrection.UploadReviewerCorrectionMock.mutex.Unlock()

	for _, e := range mmUploadReviewerCorrection.UploadReviewerCorrectionMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.Counter, 1)
		mm_want := mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.params
		mm_want_ptrs := mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockUploadReviewerCorrectionParams{ctx, cmd}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUploadReviewerCorrection.t.Errorf("ServiceMock.UploadReviewerCorrection got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.cmd != nil && !minimock.Equal(*mm_want_ptrs.cmd, mm_got.cmd) {
				mmUploadReviewerCorrection.t.Errorf("ServiceMock.UploadReviewerCorrection got unexpected parameter cmd, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.originCmd, *mm_want_ptrs.cmd, mm_got.cmd, minimock.Diff(*mm_want_ptrs.cmd, mm_got.cmd))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUploadReviewerCorrection.t.Errorf("ServiceMock.UploadReviewerCorrection got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUploadReviewerCorrection.UploadReviewerCorrectionMock.defaultExpectation.results
		if mm_results == nil {
			mmUploadReviewerCorrection.t.Fatal("No results are set for the ServiceMock.UploadReviewerCorrection")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmUploadReviewerCorrection.funcUploadReviewerCorrection != nil {
		return mmUploadReviewerCorrection.funcUploadReviewerCorrection(ctx, cmd)
	}
	mmUploadReviewerCorrection.t.Fatalf("Unexpected call to ServiceMock.UploadReviewerCorrection. %v %v", ctx, cmd)
	return
}

// UploadReviewerCorrectionAfterCounter returns a count of finished ServiceMock.UploadReviewerCorrection invocations
func (mmUploadReviewerCorrection *ServiceMock) UploadReviewerCorrectionAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadReviewerCorrection.afterUploadReviewerCorrectionCounter)
}

// UploadReviewerCorrectionBeforeCounter returns a count of ServiceMock.UploadReviewerCorrection invocations
func (mmUploadReviewerCorrection *ServiceMock) UploadReviewerCorrectionBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUploadReviewerCorrection.beforeUploadReviewerCorrectionCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.UploadReviewerCorrection.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUploadReviewerCorrection *mServiceMockUploadReviewerCorrection) Calls() []*ServiceMockUploadReviewerCorrectionParams {
	mmUploadReviewerCorrection.mutex.RLock()

	argCopy := make([]*ServiceMockUploadReviewerCorrectionParams, len(mmUploadReviewerCorrection.callArgs))
	copy(argCopy, mmUploadReviewerCorrection.callArgs)

	mmUploadReviewerCorrection.mutex.RUnlock()

	return argCopy
}

// MinimockUploadReviewerCorrectionDone returns true if the count of the UploadReviewerCorrection invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockUploadReviewerCorrectionDone() bool {
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
func (m *ServiceMock) MinimockUploadReviewerCorrectionInspect() {
	for _, e := range m.UploadReviewerCorrectionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.UploadReviewerCorrection at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUploadReviewerCorrectionCounter := mm_atomic.LoadUint64(&m.afterUploadReviewerCorrectionCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UploadReviewerCorrectionMock.defaultExpectation != nil && afterUploadReviewerCorrectionCounter < 1 {
		if m.UploadReviewerCorrectionMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.UploadReviewerCorrection at\n%s", m.UploadReviewerCorrectionMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.UploadReviewerCorrection at\n%s with params: %#v", m.UploadReviewerCorrectionMock.defaultExpectation.expectationOrigins.origin, *m.UploadReviewerCorrectionMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUploadReviewerCorrection != nil && afterUploadReviewerCorrectionCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.UploadReviewerCorrection at\n%s", m.funcUploadReviewerCorrectionOrigin)
	}

	if !m.UploadReviewerCorrectionMock.invocationsDone() && afterUploadReviewerCorrectionCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.UploadReviewerCorrection at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UploadReviewerCorrectionMock.expectedInvocations), m.UploadReviewerCorrectionMock.expectedInvocationsOrigin, afterUploadReviewerCorrectionCounter)
	}
}

type mServiceMockVerifyGuest struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockVerifyGuestExpectation
	expectations       []*ServiceMockVerifyGuestExpectation

	callArgs []*ServiceMockVerifyGuestParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockVerifyGuestExpectation specifies expectation struct of the Service.VerifyGuest
type ServiceMockVerifyGuestExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockVerifyGuestParams
	paramPtrs          *ServiceMockVerifyGuestParamPtrs
	expectationOrigins ServiceMockVerifyGuestExpectationOrigins
	results            *ServiceMockVerifyGuestResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockVerifyGuestParams contains parameters of the Service.VerifyGuest
type ServiceMockVerifyGuestParams struct {
	ctx  context.Context
	code string
}

// ServiceMockVerifyGuestParamPtrs contains pointers to parameters of the Service.VerifyGuest
type ServiceMockVerifyGuestParamPtrs struct {
	ctx  *context.Context
	code *string
}

// ServiceMockVerifyGuestResults contains results of the Service.VerifyGuest
type ServiceMockVerifyGuestResults struct {
	a1  article.Article
	err error
}

// ServiceMockVerifyGuestOrigins contains origins of expectations of the Service.VerifyGuest
type ServiceMockVerifyGuestExpectationOrigins struct {
	origin     string
	originCtx  string
	originCode string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmVerifyGuest *mServiceMockVerifyGuest) Optional() *mServiceMockVerifyGuest {
	mmVerifyGuest.optional = true
	return mmVerifyGuest
}

// Expect sets up expected params for Service.VerifyGuest
func (mmVerifyGuest *mServiceMockVerifyGuest) Expect(ctx context.Context, code string) *mServiceMockVerifyGuest {
	if mmVerifyGuest.mock.funcVerifyGuest != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Set")
	}

	if mmVerifyGuest.defaultExpectation == nil {
		mmVerifyGuest.defaultExpectation = &ServiceMockVerifyGuestExpectation{}
	}

	if mmVerifyGuest.defaultExpectation.paramPtrs != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by ExpectParams functions")
	}

	mmVerifyGuest.defaultExpectation.params = &ServiceMockVerifyGuestParams{ctx, code}
	mmVerifyGuest.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmVerifyGuest.expectations {
		if minimock.Equal(e.params, mmVerifyGuest.defaultExpectation.params) {
			mmVerifyGuest.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmVerifyGuest.defaultExpectation.params)
		}
	}

	return mmVerifyGuest
}

// ExpectCtxParam1 sets up expected param ctx for Service.VerifyGuest
func (mmVerifyGuest *mServiceMockVerifyGuest) ExpectCtxParam1(ctx context.Context) *mServiceMockVerifyGuest {
	if mmVerifyGuest.mock.funcVerifyGuest != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Set")
	}

	if mmVerifyGuest.defaultExpectation == nil {
		mmVerifyGuest.defaultExpectation = &ServiceMockVerifyGuestExpectation{}
	}

	if mmVerifyGuest.defaultExpectation.params != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Expect")
	}

	if mmVerifyGuest.defaultExpectation.paramPtrs == nil {
		mmVerifyGuest.defaultExpectation.paramPtrs = &ServiceMockVerifyGuestParamPtrs{}
	}
	mmVerifyGuest.defaultExpectation.paramPtrs.ctx = &ctx
	mmVerifyGuest.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmVerifyGuest
}

// ExpectCodeParam2 sets up expected param code for Service.VerifyGuest
func (mmVerifyGuest *mServiceMockVerifyGuest) ExpectCodeParam2(code string) *mServiceMockVerifyGuest {
	if mmVerifyGuest.mock.funcVerifyGuest != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Set")
	}

	if mmVerifyGuest.defaultExpectation == nil {
		mmVerifyGuest.defaultExpectation = &ServiceMockVerifyGuestExpectation{}
	}

	if mmVerifyGuest.defaultExpectation.params != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Expect")
	}

	if mmVerifyGuest.defaultExpectation.paramPtrs == nil {
		mmVerifyGuest.defaultExpectation.paramPtrs = &ServiceMockVerifyGuestParamPtrs{}
	}
	mmVerifyGuest.defaultExpectation.paramPtrs.code = &code
	mmVerifyGuest.defaultExpectation.expectationOrigins.originCode = minimock.CallerInfo(1)

	return mmVerifyGuest
}

// Inspect accepts an inspector function that has same arguments as the Service.VerifyGuest
func (mmVerifyGuest *mServiceMockVerifyGuest) Inspect(f func(ctx context.Context, code string)) *mServiceMockVerifyGuest {
	if mmVerifyGuest.mock.inspectFuncVerifyGuest != nil {
		mmVerifyGuest.mock.t.Fatalf("Inspect function is already set for ServiceMock.VerifyGuest")
	}

	mmVerifyGuest.mock.inspectFuncVerifyGuest = f

	return mmVerifyGuest
}

// Return sets up results that will be returned by Service.VerifyGuest
func (mmVerifyGuest *mServiceMockVerifyGuest) Return(a1 article.Article, err error) *ServiceMock {
	if mmVerifyGuest.mock.funcVerifyGuest != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Set")
	}

	if mmVerifyGuest.defaultExpectation == nil {
		mmVerifyGuest.defaultExpectation = &ServiceMockVerifyGuestExpectation{mock: mmVerifyGuest.mock}
	}
	mmVerifyGuest.defaultExpectation.results = &ServiceMockVerifyGuestResults{a1, err}
	mmVerifyGuest.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmVerifyGuest.mock
}

// Set uses given function f to mock the Service.VerifyGuest method
func (mmVerifyGuest *mServiceMockVerifyGuest) Set(f func(ctx context.Context, code string) (a1 article.Article, err error)) *ServiceMock {
	if mmVerifyGuest.defaultExpectation != nil {
		mmVerifyGuest.mock.t.Fatalf("Default expectation is already set for the Service.VerifyGuest method")
	}

	if len(mmVerifyGuest.expectations) > 0 {
		mmVerifyGuest.mock.t.Fatalf("Some expectations are already set for the Service.VerifyGuest method")
	}

	mmVerifyGuest.mock.funcVerifyGuest = f
	mmVerifyGuest.mock.funcVerifyGuestOrigin = minimock.CallerInfo(1)
	return mmVerifyGuest.mock
}

// When sets expectation for the Service.VerifyGuest which will trigger the result defined by the following
// Then helper
func (mmVerifyGuest *mServiceMockVerifyGuest) When(ctx context.Context, code string) *ServiceMockVerifyGuestExpectation {
	if mmVerifyGuest.mock.funcVerifyGuest != nil {
		mmVerifyGuest.mock.t.Fatalf("ServiceMock.VerifyGuest mock is already set by Set")
	}

	expectation := &ServiceMockVerifyGuestExpectation{
		mock:               mmVerifyGuest.mock,
		params:             &ServiceMockVerifyGuestParams{ctx, code},
		expectationOrigins: ServiceMockVerifyGuestExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmVerifyGuest.expectations = append(mmVerifyGuest.expectations, expectation)
	return expectation
}

// Then sets up Service.VerifyGuest return parameters for the expectation previously defined by the When method
func (e *ServiceMockVerifyGuestExpectation) Then(a1 article.Article, err error) *ServiceMock {
	e.results = &ServiceMockVerifyGuestResults{a1, err}
	return e.mock
}

// Times sets number of times Service.VerifyGuest should be invoked
func (mmVerifyGuest *mServiceMockVerifyGuest) Times(n uint64) *mServiceMockVerifyGuest {
	if n == 0 {
		mmVerifyGuest.mock.t.Fatalf("Times of ServiceMock.VerifyGuest mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmVerifyGuest.expectedInvocations, n)
	mmVerifyGuest.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmVerifyGuest
}

func (mmVerifyGuest *mServiceMockVerifyGuest) invocationsDone() bool {
	if len(mmVerifyGuest.expectations) == 0 && mmVerifyGuest.defaultExpectation == nil && mmVerifyGuest.mock.funcVerifyGuest == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmVerifyGuest.mock.afterVerifyGuestCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmVerifyGuest.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// VerifyGuest implements mm_http.Service
func (mmVerifyGuest *ServiceMock) VerifyGuest(ctx context.Context, code string) (a1 article.Article, err error) {
	mm_atomic.AddUint64(&mmVerifyGuest.beforeVerifyGuestCounter, 1)
	defer mm_atomic.AddUint64(&mmVerifyGuest.afterVerifyGuestCounter, 1)

	mmVerifyGuest.t.Helper()

	if mmVerifyGuest.inspectFuncVerifyGuest != nil {
		mmVerifyGuest.inspectFuncVerifyGuest(ctx, code)
	}

	mm_params := ServiceMockVerifyGuestParams{ctx, code}

	// Record call args
	mmVerifyGuest.VerifyGuestMock.mutex.Lock()
	mmVerifyGuest.VerifyGuestMock.callArgs = append(mmVerifyGuest.VerifyGuestMock.callArgs, &mm_params)
	mmVerifyGuest.VerifyGuestMock.mutex.Unlock()

	for _, e := range mmVerifyGuest.VerifyGuestMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.a1, e.results.err
		}
	}

	if mmVerifyGuest.VerifyGuestMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmVerifyGuest.VerifyGuestMock.defaultExpectation.Counter, 1)
		mm_want := mmVerifyGuest.VerifyGuestMock.defaultExpectation.params
		mm_want_ptrs := mmVerifyGuest.VerifyGuestMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockVerifyGuestParams{ctx, code}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmVerifyGuest.t.Errorf("ServiceMock.VerifyGuest got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmVerifyGuest.VerifyGuestMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.code != nil && !minimock.Equal(*mm_want_ptrs.code, mm_got.code) {
				mmVerifyGuest.t.Errorf("ServiceMock.VerifyGuest got unexpected parameter code, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmVerifyGuest.VerifyGuestMock.defaultExpectation.expectationOrigins.originCode, *mm_want_ptrs.code, mm_got.code, minimock.Diff(*mm_want_ptrs.code, mm_got.code))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmVerifyGuest.t.Errorf("ServiceMock.VerifyGuest got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmVerifyGuest.VerifyGuestMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmVerifyGuest.VerifyGuestMock.defaultExpectation.results
		if mm_results == nil {
			mmVerifyGuest.t.Fatal("No results are set for the ServiceMock.VerifyGuest")
		}
		return (*mm_results).a1, (*mm_results).err
	}
	if mmVerifyGuest.funcVerifyGuest != nil {
		return mmVerifyGuest.funcVerifyGuest(ctx, code)
	}
	mmVerifyGuest.t.Fatalf("Unexpected call to ServiceMock.VerifyGuest. %v %v", ctx, code)
	return
}

// VerifyGuestAfterCounter returns a count of finished ServiceMock.VerifyGuest invocations
func (mmVerifyGuest *ServiceMock) VerifyGuestAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmVerifyGuest.afterVerifyGuestCounter)
}

// VerifyGuestBeforeCounter returns a count of ServiceMock.VerifyGuest invocations
func (mmVerifyGuest *ServiceMock) VerifyGuestBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmVerifyGuest.beforeVerifyGuestCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.VerifyGuest.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmVerifyGuest *mServiceMockVerifyGuest) Calls() []*ServiceMockVerifyGuestParams {
	mmVerifyGuest.mutex.RLock()

	argCopy := make([]*ServiceMockVerifyGuestParams, len(mmVerifyGuest.callArgs))
	copy(argCopy, mmVerifyGuest.callArgs)

	mmVerifyGuest.mutex.RUnlock()

	return argCopy
}

// MinimockVerifyGuestDone returns true if the count of the VerifyGuest invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockVerifyGuestDone() bool {
	if m.VerifyGuestMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.VerifyGuestMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.VerifyGuestMock.invocationsDone()
}

// MinimockVerifyGuestInspect logs each unmet expectation
func (m *ServiceMock) MinimockVerifyGuestInspect() {
	for _, e := range m.VerifyGuestMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.VerifyGuest at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterVerifyGuestCounter := mm_atomic.LoadUint64(&m.afterVerifyGuestCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.VerifyGuestMock.defaultExpectation != nil && afterVerifyGuestCounter < 1 {
		if m.VerifyGuestMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.VerifyGuest at\n%s", m.VerifyGuestMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.VerifyGuest at\n%s with params: %#v", m.VerifyGuestMock.defaultExpectation.expectationOrigins.origin, *m.VerifyGuestMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcVerifyGuest != nil && afterVerifyGuestCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.VerifyGuest at\n%s", m.funcVerifyGuestOrigin)
	}

	if !m.VerifyGuestMock.invocationsDone() && afterVerifyGuestCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.VerifyGuest at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.VerifyGuestMock.expectedInvocations), m.VerifyGuestMock.expectedInvocationsOrigin, afterVerifyGuestCounter)
	}
}

type mServiceMockVersions struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockVersionsExpectation
	expectations       []*ServiceMockVersionsExpectation

	callArgs []*ServiceMockVersionsParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockVersionsExpectation specifies expectation struct of the Service.Versions
type ServiceMockVersionsExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockVersionsParams
	paramPtrs          *ServiceMockVersionsParamPtrs
	expectationOrigins ServiceMockVersionsExpectationOrigins
	results            *ServiceMockVersionsResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockVersionsParams contains parameters of the Service.Versions
type ServiceMockVersionsParams struct {
	ctx       context.Context
	articleID uuid.UUID
}

// ServiceMockVersionsParamPtrs contains pointers to parameters of the Service.Versions
type ServiceMockVersionsParamPtrs struct {
	ctx       *context.Context
	articleID *uuid.UUID
}

// ServiceMockVersionsResults contains results of the Service.Versions
type ServiceMockVersionsResults struct {
	da1 []version.DocumentVersion
	err error
}

// ServiceMockVersionsOrigins contains origins of expectations of the Service.Versions
type ServiceMockVersionsExpectationOrigins struct {
	origin          string
	originCtx       string
	originArticleID string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmVersions *mServiceMockVersions) Optional() *mServiceMockVersions {
	mmVersions.optional = true
	return mmVersions
}

// Expect sets up expected params for Service.Versions
func (mmVersions *mServiceMockVersions) Expect(ctx context.Context, articleID uuid.UUID) *mServiceMockVersions {
	if mmVersions.mock.funcVersions != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Set")
	}

	if mmVersions.defaultExpectation == nil {
		mmVersions.defaultExpectation = &ServiceMockVersionsExpectation{}
	}

	if mmVersions.defaultExpectation.paramPtrs != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by ExpectParams functions")
	}

	mmVersions.defaultExpectation.params = &ServiceMockVersionsParams{ctx, articleID}
	mmVersions.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmVersions.expectations {
		if minimock.Equal(e.params, mmVersions.defaultExpectation.params) {
			mmVersions.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmVersions.defaultExpectation.params)
		}
	}

	return mmVersions
}

// ExpectCtxParam1 sets up expected param ctx for Service.Versions
func (mmVersions *mServiceMockVersions) ExpectCtxParam1(ctx context.Context) *mServiceMockVersions {
	if mmVersions.mock.funcVersions != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Set")
	}

	if mmVersions.defaultExpectation == nil {
		mmVersions.defaultExpectation = &ServiceMockVersionsExpectation{}
	}

	if mmVersions.defaultExpectation.params != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Expect")
	}

	if mmVersions.defaultExpectation.paramPtrs == nil {
		mmVersions.defaultExpectation.paramPtrs = &ServiceMockVersionsParamPtrs{}
	}
	mmVersions.defaultExpectation.paramPtrs.ctx = &ctx
	mmVersions.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmVersions
}

// ExpectArticleIDParam2 sets up expected param articleID for Service.Versions
func (mmVersions *mServiceMockVersions) ExpectArticleIDParam2(articleID uuid.UUID) *mServiceMockVersions {
	if mmVersions.mock.funcVersions != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Set")
	}

	if mmVersions.defaultExpectation == nil {
		mmVersions.defaultExpectation = &ServiceMockVersionsExpectation{}
	}

	if mmVersions.defaultExpectation.params != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Expect")
	}

	if mmVersions.defaultExpectation.paramPtrs == nil {
		mmVersions.defaultExpectation.paramPtrs = &ServiceMockVersionsParamPtrs{}
	}
	mmVersions.defaultExpectation.paramPtrs.articleID = &articleID
	mmVersions.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmVersions
}

// Inspect accepts an inspector function that has same arguments as the Service.Versions
func (mmVersions *mServiceMockVersions) Inspect(f func(ctx context.Context, articleID uuid.UUID)) *mServiceMockVersions {
	if mmVersions.mock.inspectFuncVersions != nil {
		mmVersions.mock.t.Fatalf("Inspect function is already set for ServiceMock.Versions")
	}

	mmVersions.mock.inspectFuncVersions = f

	return mmVersions
}

// Return sets up results that will be returned by Service.Versions
func (mmVersions *mServiceMockVersions) Return(da1 []version.DocumentVersion, err error) *ServiceMock {
	if mmVersions.mock.funcVersions != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Set")
	}

	if mmVersions.defaultExpectation == nil {
		mmVersions.defaultExpectation = &ServiceMockVersionsExpectation{mock: mmVersions.mock}
	}
	mmVersions.defaultExpectation.results = &ServiceMockVersionsResults{da1, err}
	mmVersions.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmVersions.mock
}

// Set uses given function f to mock the Service.Versions method
func (mmVersions *mServiceMockVersions) Set(f func(ctx context.Context, articleID uuid.UUID) (da1 []version.DocumentVersion, err error)) *ServiceMock {
	if mmVersions.defaultExpectation != nil {
		mmVersions.mock.t.Fatalf("Default expectation is already set for the Service.Versions method")
	}

	if len(mmVersions.expectations) > 0 {
		mmVersions.mock.t.Fatalf("Some expectations are already set for the Service.Versions method")
	}

	mmVersions.mock.funcVersions = f
	mmVersions.mock.funcVersionsOrigin = minimock.CallerInfo(1)
	return mmVersions.mock
}

// When sets expectation for the Service.Versions which will trigger the result defined by the following
// Then helper
func (mmVersions *mServiceMockVersions) When(ctx context.Context, articleID uuid.UUID) *ServiceMockVersionsExpectation {
	if mmVersions.mock.funcVersions != nil {
		mmVersions.mock.t.Fatalf("ServiceMock.Versions mock is already set by Set")
	}

	expectation := &ServiceMockVersionsExpectation{
		mock:               mmVersions.mock,
		params:             &ServiceMockVersionsParams{ctx, articleID},
		expectationOrigins: ServiceMockVersionsExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmVersions.expectations = append(mmVersions.expectations, expectation)
	return expectation
}

// Then sets up Service.Versions return parameters for the expectation previously defined by the When method
func (e *ServiceMockVersionsExpectation) Then(da1 []version.DocumentVersion, err error) *ServiceMock {
	e.results = &ServiceMockVersionsResults{da1, err}
	return e.mock
}

// Times sets number of times Service.Versions should be invoked
func (mmVersions *mServiceMockVersions) Times(n uint64) *mServiceMockVersions {
	if n == 0 {
		mmVersions.mock.t.Fatalf("Times of ServiceMock.Versions mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmVersions.expectedInvocations, n)
	mmVersions.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmVersions
}

func (mmVersions *mServiceMockVersions) invocationsDone() bool {
	if len(mmVersions.expectations) == 0 && mmVersions.defaultExpectation == nil && mmVersions.mock.funcVersions == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmVersions.mock.afterVersionsCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmVersions.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Versions implements mm_http.Service
func (mmVersions *ServiceMock) Versions(ctx context.Context, articleID uuid.UUID) (da1 []version.DocumentVersion, err error) {
	mm_atomic.AddUint64(&mmVersions.beforeVersionsCounter, 1)
	defer mm_atomic.AddUint64(&mmVersions.afterVersionsCounter, 1)

	mmVersions.t.Helper()

	if mmVersions.inspectFuncVersions != nil {
		mmVersions.inspectFuncVersions(ctx, articleID)
	}

	mm_params := ServiceMockVersionsParams{ctx, articleID}

	// Record call args
	mmVersions.VersionsMock.mutex.Lock()
	mmVersions.VersionsMock.callArgs = append(mmVersions.VersionsMock.callArgs, &mm_params)
	mmVersions.VersionsMock.mutex.Unlock()

	for _, e := range mmVersions.VersionsMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.da1, e.results.err
		}
	}

	if mmVersions.VersionsMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmVersions.VersionsMock.defaultExpectation.Counter, 1)
		mm_want := mmVersions.VersionsMock.defaultExpectation.params
		mm_want_ptrs := mmVersions.VersionsMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockVersionsParams{ctx, articleID}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmVersions.t.Errorf("ServiceMock.Versions got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmVersions.VersionsMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmVersions.t.Errorf("ServiceMock.Versions got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmVersions.VersionsMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmVersions.t.Errorf("ServiceMock.Versions got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmVersions.VersionsMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmVersions.VersionsMock.defaultExpectation.results
		if mm_results == nil {
			mmVersions.t.Fatal("No results are set for the ServiceMock.Versions")
		}
		return (*mm_results).da1, (*mm_results).err
	}
	if mmVersions.funcVersions != nil {
		return mmVersions.funcVersions(ctx, articleID)
	}
	mmVersions.t.Fatalf("Unexpected call to ServiceMock.Versions. %v %v", ctx, articleID)
	return
}

// VersionsAfterCounter returns a count of finished ServiceMock.Versions invocations
func (mmVersions *ServiceMock) VersionsAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmVersions.afterVersionsCounter)
}

// VersionsBeforeCounter returns a count of ServiceMock.Versions invocations
func (mmVersions *ServiceMock) VersionsBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmVersions.beforeVersionsCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Versions.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmVersions *mServiceMockVersions) Calls() []*ServiceMockVersionsParams {
	mmVersions.mutex.RLock()

	argCopy := make([]*ServiceMockVersionsParams, len(mmVersions.callArgs))
	copy(argCopy, mmVersions.callArgs)

	mmVersions.mutex.RUnlock()

	return argCopy
}

// MinimockVersionsDone returns true if the count of the Versions invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockVersionsDone() bool {
	if m.VersionsMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.VersionsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.VersionsMock.invocationsDone()
}

// MinimockVersionsInspect logs each unmet expectation
func (m *ServiceMock) MinimockVersionsInspect() {
	for _, e := range m.VersionsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Versions at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterVersionsCounter := mm_atomic.LoadUint64(&m.afterVersionsCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.VersionsMock.defaultExpectation != nil && afterVersionsCounter < 1 {
		if m.VersionsMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Versions at\n%s", m.VersionsMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Versions at\n%s with params: %#v", m.VersionsMock.defaultExpectation.expectationOrigins.origin, *m.VersionsMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcVersions != nil && afterVersionsCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Versions at\n%s", m.funcVersionsOrigin)
	}

	if !m.VersionsMock.invocationsDone() && afterVersionsCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Versions at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.VersionsMock.expectedInvocations), m.VersionsMock.expectedInvocationsOrigin, afterVersionsCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockAssignEditorInspect()

			m.MinimockAssignReviewerInspect()

			m.MinimockAssignmentsInspect()

			m.MinimockDeleteInspect()

			m.MinimockDiffSummaryInspect()

			m.MinimockDownloadInspect()

			m.MinimockEditorApproveInspect()

			m.MinimockGetInspect()

			m.MinimockGetBySlugInspect()

			m.MinimockGuestSubmitInspect()

			m.MinimockHistoryInspect()

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

			m.MinimockVerifyGuestInspect()

			m.MinimockVersionsInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockAssignEditorDone() &&
		m.MinimockAssignReviewerDone() &&
		m.MinimockAssignmentsDone() &&
		m.MinimockDeleteDone() &&
		m.MinimockDiffSummaryDone() &&
		m.MinimockDownloadDone() &&
		m.MinimockEditorApproveDone() &&
		m.MinimockGetDone() &&
		m.MinimockGetBySlugDone() &&
		m.MinimockGuestSubmitDone() &&
		m.MinimockHistoryDone() &&
		m.MinimockListDone() &&
		m.MinimockPublishDone() &&
		m.MinimockReassignEditorDone() &&
		m.MinimockReassignReviewerDone() &&
		m.MinimockRejectDone() &&
		m.MinimockReviewerApproveDone() &&
		m.MinimockSetCitationDone() &&
		m.MinimockSubmitDone() &&
		m.MinimockUploadEditorCorrectionDone() &&
		m.MinimockUploadReviewerCorrectionDone() &&
		m.MinimockVerifyGuestDone() &&
		m.MinimockVersionsDone()
}
