// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.Notifier -o notifier_mock.go -n NotifierMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
)

// NotifierMock implements mm_usecase.Notifier
type NotifierMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcNotify          func(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) (err error)
	funcNotifyOrigin    string
	inspectFuncNotify   func(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string)
	afterNotifyCounter  uint64
	beforeNotifyCounter uint64
	NotifyMock          mNotifierMockNotify
}

// NewNotifierMock returns a mock for mm_usecase.Notifier
func NewNotifierMock(t minimock.Tester) *NotifierMock {
	m := &NotifierMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.NotifyMock = mNotifierMockNotify{mock: m}
	m.NotifyMock.callArgs = []*NotifierMockNotifyParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mNotifierMockNotify struct {
	optional           bool
	mock               *NotifierMock
	defaultExpectation *NotifierMockNotifyExpectation
	expectations       []*NotifierMockNotifyExpectation

	callArgs []*NotifierMockNotifyParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// NotifierMockNotifyExpectation specifies expectation struct of the Notifier.Notify
type NotifierMockNotifyExpectation struct {
	mock               *NotifierMock
	params             *NotifierMockNotifyParams
	paramPtrs          *NotifierMockNotifyParamPtrs
	expectationOrigins NotifierMockNotifyExpectationOrigins
	results            *NotifierMockNotifyResults
	returnOrigin       string
	Counter            uint64
}

// NotifierMockNotifyParams contains parameters of the Notifier.Notify
type NotifierMockNotifyParams struct {
	ctx        context.Context
	event      string
	articleID  uuid.UUID
	recipients []string
	meta       map[string]string
}

// NotifierMockNotifyParamPtrs contains pointers to parameters of the Notifier.Notify
type NotifierMockNotifyParamPtrs struct {
	ctx        *context.Context
	event      *string
	articleID  *uuid.UUID
	recipients *[]string
	meta       *map[string]string
}

// NotifierMockNotifyResults contains results of the Notifier.Notify
type NotifierMockNotifyResults struct {
	err error
}

// NotifierMockNotifyOrigins contains origins of expectations of the Notifier.Notify
type NotifierMockNotifyExpectationOrigins struct {
	origin           string
	originCtx        string
	originEvent      string
	originArticleID  string
	originRecipients string
	originMeta       string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmNotify *mNotifierMockNotify) Optional() *mNotifierMockNotify {
	mmNotify.optional = true
	return mmNotify
}

// Expect sets up expected params for Notifier.Notify
func (mmNotify *mNotifierMockNotify) Expect(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) *mNotifierMockNotify {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{}
	}

	if mmNotify.defaultExpectation.paramPtrs != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by ExpectParams functions")
	}

	mmNotify.defaultExpectation.params = &NotifierMockNotifyParams{ctx, event, articleID, recipients, meta}
	mmNotify.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmNotify.expectations {
		if minimock.Equal(e.params, mmNotify.defaultExpectation.params) {
			mmNotify.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmNotify.defaultExpectation.params)
		}
	}

	return mmNotify
}

// ExpectCtxParam1 sets up expected param ctx for Notifier.Notify
func (mmNotify *mNotifierMockNotify) ExpectCtxParam1(ctx context.Context) *mNotifierMockNotify {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{}
	}

	if mmNotify.defaultExpectation.params != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Expect")
	}

	if mmNotify.defaultExpectation.paramPtrs == nil {
		mmNotify.defaultExpectation.paramPtrs = &NotifierMockNotifyParamPtrs{}
	}
	mmNotify.defaultExpectation.paramPtrs.ctx = &ctx
	mmNotify.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmNotify
}

// ExpectEventParam2 sets up expected param event for Notifier.Notify
func (mmNotify *mNotifierMockNotify) ExpectEventParam2(event string) *mNotifierMockNotify {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{}
	}

	if mmNotify.defaultExpectation.params != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Expect")
	}

	if mmNotify.defaultExpectation.paramPtrs == nil {
		mmNotify.defaultExpectation.paramPtrs = &NotifierMockNotifyParamPtrs{}
	}
	mmNotify.defaultExpectation.paramPtrs.event = &event
	mmNotify.defaultExpectation.expectationOrigins.originEvent = minimock.CallerInfo(1)

	return mmNotify
}

// ExpectArticleIDParam3 sets up expected param articleID for Notifier.Notify
func (mmNotify *mNotifierMockNotify) ExpectArticleIDParam3(articleID uuid.UUID) *mNotifierMockNotify {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{}
	}

	if mmNotify.defaultExpectation.params != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Expect")
	}

	if mmNotify.defaultExpectation.paramPtrs == nil {
		mmNotify.defaultExpectation.paramPtrs = &NotifierMockNotifyParamPtrs{}
	}
	mmNotify.defaultExpectation.paramPtrs.articleID = &articleID
	mmNotify.defaultExpectation.expectationOrigins.originArticleID = minimock.CallerInfo(1)

	return mmNotify
}

// ExpectRecipientsParam4 sets up expected param recipients for Notifier.Notify
func (mmNotify *mNotifierMockNotify) ExpectRecipientsParam4(recipients []string) *mNotifierMockNotify {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{}
	}

	if mmNotify.defaultExpectation.params != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Expect")
	}

	if mmNotify.defaultExpectation.paramPtrs == nil {
		mmNotify.defaultExpectation.paramPtrs = &NotifierMockNotifyParamPtrs{}
	}
	mmNotify.defaultExpectation.paramPtrs.recipients = &recipients
	mmNotify.defaultExpectation.expectationOrigins.originRecipients = minimock.CallerInfo(1)

	return mmNotify
}

// ExpectMetaParam5 sets up expected param meta for Notifier.Notify
func (mmNotify *mNotifierMockNotify) ExpectMetaParam5(meta map[string]string) *mNotifierMockNotify {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{}
	}

	if mmNotify.defaultExpectation.params != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Expect")
	}

	if mmNotify.defaultExpectation.paramPtrs == nil {
		mmNotify.defaultExpectation.paramPtrs = &NotifierMockNotifyParamPtrs{}
	}
	mmNotify.defaultExpectation.paramPtrs.meta = &meta
	mmNotify.defaultExpectation.expectationOrigins.originMeta = minimock.CallerInfo(1)

	return mmNotify
}

// Inspect accepts an inspector function that has same arguments as the Notifier.Notify
func (mmNotify *mNotifierMockNotify) Inspect(f func(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string)) *mNotifierMockNotify {
	if mmNotify.mock.inspectFuncNotify != nil {
		mmNotify.mock.t.Fatalf("Inspect function is already set for NotifierMock.Notify")
	}

	mmNotify.mock.inspectFuncNotify = f

	return mmNotify
}

// Return sets up results that will be returned by Notifier.Notify
func (mmNotify *mNotifierMockNotify) Return(err error) *NotifierMock {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	if mmNotify.defaultExpectation == nil {
		mmNotify.defaultExpectation = &NotifierMockNotifyExpectation{mock: mmNotify.mock}
	}
	mmNotify.defaultExpectation.results = &NotifierMockNotifyResults{err}
	mmNotify.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmNotify.mock
}

// Set uses given function f to mock the Notifier.Notify method
func (mmNotify *mNotifierMockNotify) Set(f func(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) (err error)) *NotifierMock {
	if mmNotify.defaultExpectation != nil {
		mmNotify.mock.t.Fatalf("Default expectation is already set for the Notifier.Notify method")
	}

	if len(mmNotify.expectations) > 0 {
		mmNotify.mock.t.Fatalf("Some expectations are already set for the Notifier.Notify method")
	}

	mmNotify.mock.funcNotify = f
	mmNotify.mock.funcNotifyOrigin = minimock.CallerInfo(1)
	return mmNotify.mock
}

// When sets expectation for the Notifier.Notify which will trigger the result defined by the following
// Then helper
func (mmNotify *mNotifierMockNotify) When(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) *NotifierMockNotifyExpectation {
	if mmNotify.mock.funcNotify != nil {
		mmNotify.mock.t.Fatalf("NotifierMock.Notify mock is already set by Set")
	}

	expectation := &NotifierMockNotifyExpectation{
		mock:               mmNotify.mock,
		params:             &NotifierMockNotifyParams{ctx, event, articleID, recipients, meta},
		expectationOrigins: NotifierMockNotifyExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmNotify.expectations = append(mmNotify.expectations, expectation)
	return expectation
}

// Then sets up Notifier.Notify return parameters for the expectation previously defined by the When method
func (e *NotifierMockNotifyExpectation) Then(err error) *NotifierMock {
	e.results = &NotifierMockNotifyResults{err}
	return e.mock
}

// Times sets number of times Notifier.Notify should be invoked
func (mmNotify *mNotifierMockNotify) Times(n uint64) *mNotifierMockNotify {
	if n == 0 {
		mmNotify.mock.t.Fatalf("Times of NotifierMock.Notify mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmNotify.expectedInvocations, n)
	mmNotify.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmNotify
}

func (mmNotify *mNotifierMockNotify) invocationsDone() bool {
	if len(mmNotify.expectations) == 0 && mmNotify.defaultExpectation == nil && mmNotify.mock.funcNotify == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmNotify.mock.afterNotifyCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmNotify.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Notify implements mm_usecase.Notifier
func (mmNotify *NotifierMock) Notify(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) (err error) {
	mm_atomic.AddUint64(&mmNotify.beforeNotifyCounter, 1)
	defer mm_atomic.AddUint64(&mmNotify.afterNotifyCounter, 1)

	mmNotify.t.Helper()

	if mmNotify.inspectFuncNotify != nil {
		mmNotify.inspectFuncNotify(ctx, event, articleID, recipients, meta)
	}

	mm_params := NotifierMockNotifyParams{ctx, event, articleID, recipients, meta}

	// Record call args
	mmNotify.NotifyMock.mutex.Lock()
	mmNotify.NotifyMock.callArgs = append(mmNotify.NotifyMock.callArgs, &mm_params)
	mmNotify.NotifyMock.mutex.Unlock()

	for _, e := range mmNotify.NotifyMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmNotify.NotifyMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmNotify.NotifyMock.defaultExpectation.Counter, 1)
		mm_want := mmNotify.NotifyMock.defaultExpectation.params
		mm_want_ptrs := mmNotify.NotifyMock.defaultExpectation.paramPtrs

		mm_got := NotifierMockNotifyParams{ctx, event, articleID, recipients, meta}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmNotify.t.Errorf("NotifierMock.Notify got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmNotify.NotifyMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.event != nil && !minimock.Equal(*mm_want_ptrs.event, mm_got.event) {
				mmNotify.t.Errorf("NotifierMock.Notify got unexpected parameter event, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmNotify.NotifyMock.defaultExpectation.expectationOrigins.originEvent, *mm_want_ptrs.event, mm_got.event, minimock.Diff(*mm_want_ptrs.event, mm_got.event))
			}

			if mm_want_ptrs.articleID != nil && !minimock.Equal(*mm_want_ptrs.articleID, mm_got.articleID) {
				mmNotify.t.Errorf("NotifierMock.Notify got unexpected parameter articleID, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmNotify.NotifyMock.defaultExpectation.expectationOrigins.originArticleID, *mm_want_ptrs.articleID, mm_got.articleID, minimock.Diff(*mm_want_ptrs.articleID, mm_got.articleID))
			}

			if mm_want_ptrs.recipients != nil && !minimock.Equal(*mm_want_ptrs.recipients, mm_got.recipients) {
				mmNotify.t.Errorf("NotifierMock.Notify got unexpected parameter recipients, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmNotify.NotifyMock.defaultExpectation.expectationOrigins.originRecipients, *mm_want_ptrs.recipients, mm_got.recipients, minimock.Diff(*mm_want_ptrs.recipients, mm_got.recipients))
			}

			if mm_want_ptrs.meta != nil && !minimock.Equal(*mm_want_ptrs.meta, mm_got.meta) {
				mmNotify.t.Errorf("NotifierMock.Notify got unexpected parameter meta, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmNotify.NotifyMock.defaultExpectation.expectationOrigins.originMeta, *mm_want_ptrs.meta, mm_got.meta, minimock.Diff(*mm_want_ptrs.meta, mm_got.meta))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmNotify.t.Errorf("NotifierMock.Notify got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmNotify.NotifyMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmNotify.NotifyMock.defaultExpectation.results
		if mm_results == nil {
			mmNotify.t.Fatal("No results are set for the NotifierMock.Notify")
		}
		return (*mm_results).err
	}
	if mmNotify.funcNotify != nil {
		return mmNotify.funcNotify(ctx, event, articleID, recipients, meta)
	}
	mmNotify.t.Fatalf("Unexpected call to NotifierMock.Notify. %v %v %v %v %v", ctx, event, articleID, recipients, meta)
	return
}

// NotifyAfterCounter returns a count of finished NotifierMock.Notify invocations
func (mmNotify *NotifierMock) NotifyAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmNotify.afterNotifyCounter)
}

// NotifyBeforeCounter returns a count of NotifierMock.Notify invocations
func (mmNotify *NotifierMock) NotifyBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmNotify.beforeNotifyCounter)
}

// Calls returns a list of arguments used in each call to NotifierMock.Notify.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmNotify *mNotifierMockNotify) Calls() []*NotifierMockNotifyParams {
	mmNotify.mutex.RLock()

	argCopy := make([]*NotifierMockNotifyParams, len(mmNotify.callArgs))
	copy(argCopy, mmNotify.callArgs)

	mmNotify.mutex.RUnlock()

	return argCopy
}

// MinimockNotifyDone returns true if the count of the Notify invocations corresponds
// the number of defined expectations
func (m *NotifierMock) MinimockNotifyDone() bool {
	if m.NotifyMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.NotifyMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.NotifyMock.invocationsDone()
}

// MinimockNotifyInspect logs each unmet expectation
func (m *NotifierMock) MinimockNotifyInspect() {
	for _, e := range m.NotifyMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to NotifierMock.Notify at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterNotifyCounter := mm_atomic.LoadUint64(&m.afterNotifyCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.NotifyMock.defaultExpectation != nil && afterNotifyCounter < 1 {
		if m.NotifyMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to NotifierMock.Notify at\n%s", m.NotifyMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to NotifierMock.Notify at\n%s with params: %#v", m.NotifyMock.defaultExpectation.expectationOrigins.origin, *m.NotifyMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcNotify != nil && afterNotifyCounter < 1 {
		m.t.Errorf("Expected call to NotifierMock.Notify at\n%s", m.funcNotifyOrigin)
	}

	if !m.NotifyMock.invocationsDone() && afterNotifyCounter > 0 {
		m.t.Errorf("Expected %d calls to NotifierMock.Notify at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.NotifyMock.expectedInvocations), m.NotifyMock.expectedInvocationsOrigin, afterNotifyCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *NotifierMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockNotifyInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *NotifierMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *NotifierMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockNotifyDone()
}
