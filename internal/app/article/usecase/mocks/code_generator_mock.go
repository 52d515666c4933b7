// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/usecase.CodeGenerator -o code_generator_mock.go -n CodeGeneratorMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// CodeGeneratorMock implements mm_usecase.CodeGenerator
type CodeGeneratorMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcNew          func(digits int) (s1 string, err error)
	funcNewOrigin    string
	inspectFuncNew   func(digits int)
	afterNewCounter  uint64
	beforeNewCounter uint64
	NewMock          mCodeGeneratorMockNew
}

// NewCodeGeneratorMock returns a mock for mm_usecase.CodeGenerator
func NewCodeGeneratorMock(t minimock.Tester) *CodeGeneratorMock {
	m := &CodeGeneratorMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.NewMock = mCodeGeneratorMockNew{mock: m}
	m.NewMock.callArgs = []*CodeGeneratorMockNewParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mCodeGeneratorMockNew struct {
	optional           bool
	mock               *CodeGeneratorMock
	defaultExpectation *CodeGeneratorMockNewExpectation
	expectations       []*CodeGeneratorMockNewExpectation

	callArgs []*CodeGeneratorMockNewParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CodeGeneratorMockNewExpectation specifies expectation struct of the CodeGenerator.New
type CodeGeneratorMockNewExpectation struct {
	mock               *CodeGeneratorMock
	params             *CodeGeneratorMockNewParams
	paramPtrs          *CodeGeneratorMockNewParamPtrs
	expectationOrigins CodeGeneratorMockNewExpectationOrigins
	results            *CodeGeneratorMockNewResults
	returnOrigin       string
	Counter            uint64
}

// CodeGeneratorMockNewParams contains parameters of the CodeGenerator.New
type CodeGeneratorMockNewParams struct {
	digits int
}

// CodeGeneratorMockNewParamPtrs contains pointers to parameters of the CodeGenerator.New
type CodeGeneratorMockNewParamPtrs struct {
	digits *int
}

// CodeGeneratorMockNewResults contains results of the CodeGenerator.New
type CodeGeneratorMockNewResults struct {
	s1  string
	err error
}

// CodeGeneratorMockNewOrigins contains origins of expectations of the CodeGenerator.New
type CodeGeneratorMockNewExpectationOrigins struct {
	origin       string
	originDigits string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmNew *mCodeGeneratorMockNew) Optional() *mCodeGeneratorMockNew {
	mmNew.optional = true
	return mmNew
}

// Expect sets up expected params for CodeGenerator.New
func (mmNew *mCodeGeneratorMockNew) Expect(digits int) *mCodeGeneratorMockNew {
	if mmNew.mock.funcNew != nil {
		mmNew.mock.t.Fatalf("CodeGeneratorMock.New mock is already set by Set")
	}

	if mmNew.defaultExpectation == nil {
		mmNew.defaultExpectation = &CodeGeneratorMockNewExpectation{}
	}

	if mmNew.defaultExpectation.paramPtrs != nil {
		mmNew.mock.t.Fatalf("CodeGeneratorMock.New mock is already set by ExpectParams functions")
	}

	mmNew.defaultExpectation.params = &CodeGeneratorMockNewParams{digits}
	mmNew.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmNew.expectations {
		if minimock.Equal(e.params, mmNew.defaultExpectation.params) {
			mmNew.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmNew.defaultExpectation.params)
		}
	}

	return mmNew
}

// ExpectDigitsParam1 sets up expected param digits for CodeGenerator.New
func (mmNew *mCodeGeneratorMockNew) ExpectDigitsParam1(digits int) *mCodeGeneratorMockNew {
	if mmNew.mock.funcNew != nil {
		mmNew.mock.t.Fatalf("CodeGeneratorMock.New mock is already set by Set")
	}

	if mmNew.defaultExpectation == nil {
		mmNew.defaultExpectation = &CodeGeneratorMockNewExpectation{}
	}

	if mmNew.defaultExpectation.params != nil {
		mmNew.mock.t.Fatalf("CodeGeneratorMock.New mock is already set by Expect")
	}

	if mmNew.defaultExpectation.paramPtrs == nil {
		mmNew.defaultExpectation.paramPtrs = &CodeGeneratorMockNewParamPtrs{}
	}
	mmNew.defaultExpectation.paramPtrs.digits = &digits
	mmNew.defaultExpectation.expectationOrigins.originDigits = minimock.CallerInfo(1)

	return mmNew
}

// Inspect accepts an inspector function that has same arguments as the CodeGenerator.New
func (mmNew *mCodeGeneratorMockNew) Inspect(f func(digits int)) *mCodeGeneratorMockNew {
	if mmNew.mock.inspectFuncNew != nil {
		mmNew.mock.t.Fatalf("Inspect function is already set for CodeGeneratorMock.New")
	}

	mmNew.mock.inspectFuncNew = f

	return mmNew
}

// Return sets up results that will be returned by CodeGenerator.New
func (mmNew *mCodeGeneratorMockNew) Return(s1 string, err error) *CodeGeneratorMock {
	if mmNew.mock.funcNew != nil {
		mmNew.mock.t.Fatalf("CodeGeneratorMock.New mock is already set by Set")
	}

	if mmNew.defaultExpectation == nil {
		mmNew.defaultExpectation = &CodeGeneratorMockNewExpectation{mock: mmNew.mock}
	}
	mmNew.defaultExpectation.results = &CodeGeneratorMockNewResults{s1, err}
	mmNew.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmNew.mock
}

// Set uses given function f to mock the CodeGenerator.New method
func (mmNew *mCodeGeneratorMockNew) Set(f func(digits int) (s1 string, err error)) *CodeGeneratorMock {
	if mmNew.defaultExpectation != nil {
		mmNew.mock.t.Fatalf("Default expectation is already set for the CodeGenerator.New method")
	}

	if len(mmNew.expectations) > 0 {
		mmNew.mock.t.Fatalf("Some expectations are already set for the CodeGenerator.New method")
	}

	mmNew.mock.funcNew = f
	mmNew.mock.funcNewOrigin = minimock.CallerInfo(1)
	return mmNew.mock
}

// When sets expectation for the CodeGenerator.New which will trigger the result defined by the following
// Then helper
func (mmNew *mCodeGeneratorMockNew) When(digits int) *CodeGeneratorMockNewExpectation {
	if mmNew.mock.funcNew != nil {
		mmNew.mock.t.Fatalf("CodeGeneratorMock.New mock is already set by Set")
	}

	expectation := &CodeGeneratorMockNewExpectation{
		mock:               mmNew.mock,
		params:             &CodeGeneratorMockNewParams{digits},
		expectationOrigins: CodeGeneratorMockNewExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmNew.expectations = append(mmNew.expectations, expectation)
	return expectation
}

// Then sets up CodeGenerator.New return parameters for the expectation previously defined by the When method
func (e *CodeGeneratorMockNewExpectation) Then(s1 string, err error) *CodeGeneratorMock {
	e.results = &CodeGeneratorMockNewResults{s1, err}
	return e.mock
}

// Times sets number of times CodeGenerator.New should be invoked
func (mmNew *mCodeGeneratorMockNew) Times(n uint64) *mCodeGeneratorMockNew {
	if n == 0 {
		mmNew.mock.t.Fatalf("Times of CodeGeneratorMock.New mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmNew.expectedInvocations, n)
	mmNew.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmNew
}

func (mmNew *mCodeGeneratorMockNew) invocationsDone() bool {
	if len(mmNew.expectations) == 0 && mmNew.defaultExpectation == nil && mmNew.mock.funcNew == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmNew.mock.afterNewCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmNew.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// New implements mm_usecase.CodeGenerator
func (mmNew *CodeGeneratorMock) New(digits int) (s1 string, err error) {
	mm_atomic.AddUint64(&mmNew.beforeNewCounter, 1)
	defer mm_atomic.AddUint64(&mmNew.afterNewCounter, 1)

	mmNew.t.Helper()

	if mmNew.inspectFuncNew != nil {
		mmNew.inspectFuncNew(digits)
	}

	mm_params := CodeGeneratorMockNewParams{digits}

	// Record call args
	mmNew.NewMock.mutex.Lock()
	mmNew.NewMock.callArgs = append(mmNew.NewMock.callArgs, &mm_params)
	mmNew.NewMock.mutex.Unlock()

	for _, e := range mmNew.NewMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmNew.NewMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmNew.NewMock.defaultExpectation.Counter, 1)
		mm_want := mmNew.NewMock.defaultExpectation.params
		mm_want_ptrs := mmNew.NewMock.defaultExpectation.paramPtrs

		mm_got := CodeGeneratorMockNewParams{digits}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.digits != nil && !minimock.Equal(*mm_want_ptrs.digits, mm_got.digits) {
				mmNew.t.Errorf("CodeGeneratorMock.New got unexpected parameter digits, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmNew.NewMock.defaultExpectation.expectationOrigins.originDigits, *mm_want_ptrs.digits, mm_got.digits, minimock.Diff(*mm_want_ptrs.digits, mm_got.digits))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmNew.t.Errorf("CodeGeneratorMock.New got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmNew.NewMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmNew.NewMock.defaultExpectation.results
		if mm_results == nil {
			mmNew.t.Fatal("No results are set for the CodeGeneratorMock.New")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmNew.funcNew != nil {
		return mmNew.funcNew(digits)
	}
	mmNew.t.Fatalf("Unexpected call to CodeGeneratorMock.New. %v", digits)
	return
}

// NewAfterCounter returns a count of finished CodeGeneratorMock.New invocations
func (mmNew *CodeGeneratorMock) NewAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmNew.afterNewCounter)
}

// NewBeforeCounter returns a count of CodeGeneratorMock.New invocations
func (mmNew *CodeGeneratorMock) NewBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmNew.beforeNewCounter)
}

// Calls returns a list of arguments used in each call to CodeGeneratorMock.New.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmNew *mCodeGeneratorMockNew) Calls() []*CodeGeneratorMockNewParams {
	mmNew.mutex.RLock()

	argCopy := make([]*CodeGeneratorMockNewParams, len(mmNew.callArgs))
	copy(argCopy, mmNew.callArgs)

	mmNew.mutex.RUnlock()

	return argCopy
}

// MinimockNewDone returns true if the count of the New invocations corresponds
// the number of defined expectations
func (m *CodeGeneratorMock) MinimockNewDone() bool {
	if m.NewMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.NewMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.NewMock.invocationsDone()
}

// MinimockNewInspect logs each unmet expectation
func (m *CodeGeneratorMock) MinimockNewInspect() {
	for _, e := range m.NewMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CodeGeneratorMock.New at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterNewCounter := mm_atomic.LoadUint64(&m.afterNewCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.NewMock.defaultExpectation != nil && afterNewCounter < 1 {
		if m.NewMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CodeGeneratorMock.New at\n%s", m.NewMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CodeGeneratorMock.New at\n%s with params: %#v", m.NewMock.defaultExpectation.expectationOrigins.origin, *m.NewMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcNew != nil && afterNewCounter < 1 {
		m.t.Errorf("Expected call to CodeGeneratorMock.New at\n%s", m.funcNewOrigin)
	}

	if !m.NewMock.invocationsDone() && afterNewCounter > 0 {
		m.t.Errorf("Expected %d calls to CodeGeneratorMock.New at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.NewMock.expectedInvocations), m.NewMock.expectedInvocationsOrigin, afterNewCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *CodeGeneratorMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockNewInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *CodeGeneratorMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *CodeGeneratorMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockNewDone()
}
