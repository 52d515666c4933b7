// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/lexnotes/journal/internal/app/auth.PasswordChecker -o password_checker_mock.go -n PasswordCheckerMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// PasswordCheckerMock implements mm_auth.PasswordChecker
type PasswordCheckerMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCheckPasswordHash          func(password []byte, hash string) (err error)
	funcCheckPasswordHashOrigin    string
	inspectFuncCheckPasswordHash   func(password []byte, hash string)
	afterCheckPasswordHashCounter  uint64
	beforeCheckPasswordHashCounter uint64
	CheckPasswordHashMock          mPasswordCheckerMockCheckPasswordHash
}

// NewPasswordCheckerMock returns a mock for mm_auth.PasswordChecker
func NewPasswordCheckerMock(t minimock.Tester) *PasswordCheckerMock {
	m := &PasswordCheckerMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CheckPasswordHashMock = mPasswordCheckerMockCheckPasswordHash{mock: m}
	m.CheckPasswordHashMock.callArgs = []*PasswordCheckerMockCheckPasswordHashParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mPasswordCheckerMockCheckPasswordHash struct {
	optional           bool
	mock               *PasswordCheckerMock
	defaultExpectation *PasswordCheckerMockCheckPasswordHashExpectation
	expectations       []*PasswordCheckerMockCheckPasswordHashExpectation

	callArgs []*PasswordCheckerMockCheckPasswordHashParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// PasswordCheckerMockCheckPasswordHashExpectation specifies expectation struct of the PasswordChecker.CheckPasswordHash
type PasswordCheckerMockCheckPasswordHashExpectation struct {
	mock               *PasswordCheckerMock
	params             *PasswordCheckerMockCheckPasswordHashParams
	paramPtrs          *PasswordCheckerMockCheckPasswordHashParamPtrs
	expectationOrigins PasswordCheckerMockCheckPasswordHashExpectationOrigins
	results            *PasswordCheckerMockCheckPasswordHashResults
	returnOrigin       string
	Counter            uint64
}

// PasswordCheckerMockCheckPasswordHashParams contains parameters of the PasswordChecker.CheckPasswordHash
type PasswordCheckerMockCheckPasswordHashParams struct {
	password []byte
	hash     string
}

// PasswordCheckerMockCheckPasswordHashParamPtrs contains pointers to parameters of the PasswordChecker.CheckPasswordHash
type PasswordCheckerMockCheckPasswordHashParamPtrs struct {
	password *[]byte
	hash     *string
}

// PasswordCheckerMockCheckPasswordHashResults contains results of the PasswordChecker.CheckPasswordHash
type PasswordCheckerMockCheckPasswordHashResults struct {
	err error
}

// PasswordCheckerMockCheckPasswordHashOrigins contains origins of expectations of the PasswordChecker.CheckPasswordHash
type PasswordCheckerMockCheckPasswordHashExpectationOrigins struct {
	origin         string
	originPassword string
	originHash     string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Optional() *mPasswordCheckerMockCheckPasswordHash {
	mmCheckPasswordHash.optional = true
	return mmCheckPasswordHash
}

// Expect sets up expected params for PasswordChecker.CheckPasswordHash
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Expect(password []byte, hash string) *mPasswordCheckerMockCheckPasswordHash {
	if mmCheckPasswordHash.mock.funcCheckPasswordHash != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Set")
	}

	if mmCheckPasswordHash.defaultExpectation == nil {
		mmCheckPasswordHash.defaultExpectation = &PasswordCheckerMockCheckPasswordHashExpectation{}
	}

	if mmCheckPasswordHash.defaultExpectation.paramPtrs != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by ExpectParams functions")
	}

	mmCheckPasswordHash.defaultExpectation.params = &PasswordCheckerMockCheckPasswordHashParams{password, hash}
	mmCheckPasswordHash.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCheckPasswordHash.expectations {
		if minimock.Equal(e.params, mmCheckPasswordHash.defaultExpectation.params) {
			mmCheckPasswordHash.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCheckPasswordHash.defaultExpectation.params)
		}
	}

	return mmCheckPasswordHash
}

// ExpectPasswordParam1 sets up expected param password for PasswordChecker.CheckPasswordHash
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) ExpectPasswordParam1(password []byte) *mPasswordCheckerMockCheckPasswordHash {
	if mmCheckPasswordHash.mock.funcCheckPasswordHash != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Set")
	}

	if mmCheckPasswordHash.defaultExpectation == nil {
		mmCheckPasswordHash.defaultExpectation = &PasswordCheckerMockCheckPasswordHashExpectation{}
	}

	if mmCheckPasswordHash.defaultExpectation.params != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Expect")
	}

	if mmCheckPasswordHash.defaultExpectation.paramPtrs == nil {
		mmCheckPasswordHash.defaultExpectation.paramPtrs = &PasswordCheckerMockCheckPasswordHashParamPtrs{}
	}
	mmCheckPasswordHash.defaultExpectation.paramPtrs.password = &password
	mmCheckPasswordHash.defaultExpectation.expectationOrigins.originPassword = minimock.CallerInfo(1)

	return mmCheckPasswordHash
}

// ExpectHashParam2 sets up expected param hash for PasswordChecker.CheckPasswordHash
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) ExpectHashParam2(hash string) *mPasswordCheckerMockCheckPasswordHash {
	if mmCheckPasswordHash.mock.funcCheckPasswordHash != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Set")
	}

	if mmCheckPasswordHash.defaultExpectation == nil {
		mmCheckPasswordHash.defaultExpectation = &PasswordCheckerMockCheckPasswordHashExpectation{}
	}

	if mmCheckPasswordHash.defaultExpectation.params != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Expect")
	}

	if mmCheckPasswordHash.defaultExpectation.paramPtrs == nil {
		mmCheckPasswordHash.defaultExpectation.paramPtrs = &PasswordCheckerMockCheckPasswordHashParamPtrs{}
	}
	mmCheckPasswordHash.defaultExpectation.paramPtrs.hash = &hash
	mmCheckPasswordHash.defaultExpectation.expectationOrigins.originHash = minimock.CallerInfo(1)

	return mmCheckPasswordHash
}

// Inspect accepts an inspector function that has same arguments as the PasswordChecker.CheckPasswordHash
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Inspect(f func(password []byte, hash string)) *mPasswordCheckerMockCheckPasswordHash {
	if mmCheckPasswordHash.mock.inspectFuncCheckPasswordHash != nil {
		mmCheckPasswordHash.mock.t.Fatalf("Inspect function is already set for PasswordCheckerMock.CheckPasswordHash")
	}

	mmCheckPasswordHash.mock.inspectFuncCheckPasswordHash = f

	return mmCheckPasswordHash
}

// Return sets up results that will be returned by PasswordChecker.CheckPasswordHash
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Return(err error) *PasswordCheckerMock {
	if mmCheckPasswordHash.mock.funcCheckPasswordHash != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Set")
	}

	if mmCheckPasswordHash.defaultExpectation == nil {
		mmCheckPasswordHash.defaultExpectation = &PasswordCheckerMockCheckPasswordHashExpectation{mock: mmCheckPasswordHash.mock}
	}
	mmCheckPasswordHash.defaultExpectation.results = &PasswordCheckerMockCheckPasswordHashResults{err}
	mmCheckPasswordHash.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCheckPasswordHash.mock
}

// Set uses given function f to mock the PasswordChecker.CheckPasswordHash method
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Set(f func(password []byte, hash string) (err error)) *PasswordCheckerMock {
	if mmCheckPasswordHash.defaultExpectation != nil {
		mmCheckPasswordHash.mock.t.Fatalf("Default expectation is already set for the PasswordChecker.CheckPasswordHash method")
	}

	if len(mmCheckPasswordHash.expectations) > 0 {
		mmCheckPasswordHash.mock.t.Fatalf("Some expectations are already set for the PasswordChecker.CheckPasswordHash method")
	}

	mmCheckPasswordHash.mock.funcCheckPasswordHash = f
	mmCheckPasswordHash.mock.funcCheckPasswordHashOrigin = minimock.CallerInfo(1)
	return mmCheckPasswordHash.mock
}

// When sets expectation for the PasswordChecker.CheckPasswordHash which will trigger the result defined by the following
// Then helper
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) When(password []byte, hash string) *PasswordCheckerMockCheckPasswordHashExpectation {
	if mmCheckPasswordHash.mock.funcCheckPasswordHash != nil {
		mmCheckPasswordHash.mock.t.Fatalf("PasswordCheckerMock.CheckPasswordHash mock is already set by Set")
	}

	expectation := &PasswordCheckerMockCheckPasswordHashExpectation{
		mock:               mmCheckPasswordHash.mock,
		params:             &PasswordCheckerMockCheckPasswordHashParams{password, hash},
		expectationOrigins: PasswordCheckerMockCheckPasswordHashExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCheckPasswordHash.expectations = append(mmCheckPasswordHash.expectations, expectation)
	return expectation
}

// Then sets up PasswordChecker.CheckPasswordHash return parameters for the expectation previously defined by the When method
func (e *PasswordCheckerMockCheckPasswordHashExpectation) Then(err error) *PasswordCheckerMock {
	e.results = &PasswordCheckerMockCheckPasswordHashResults{err}
	return e.mock
}

// Times sets number of times PasswordChecker.CheckPasswordHash should be invoked
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Times(n uint64) *mPasswordCheckerMockCheckPasswordHash {
	if n == 0 {
		mmCheckPasswordHash.mock.t.Fatalf("Times of PasswordCheckerMock.CheckPasswordHash mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCheckPasswordHash.expectedInvocations, n)
	mmCheckPasswordHash.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCheckPasswordHash
}

func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) invocationsDone() bool {
	if len(mmCheckPasswordHash.expectations) == 0 && mmCheckPasswordHash.defaultExpectation == nil && mmCheckPasswordHash.mock.funcCheckPasswordHash == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCheckPasswordHash.mock.afterCheckPasswordHashCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCheckPasswordHash.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// CheckPasswordHash implements mm_auth.PasswordChecker
func (mmCheckPasswordHash *PasswordCheckerMock) CheckPasswordHash(password []byte, hash string) (err error) {
	mm_atomic.AddUint64(&mmCheckPasswordHash.beforeCheckPasswordHashCounter, 1)
	defer mm_atomic.AddUint64(&mmCheckPasswordHash.afterCheckPasswordHashCounter, 1)

	mmCheckPasswordHash.t.Helper()

	if mmCheckPasswordHash.inspectFuncCheckPasswordHash != nil {
		mmCheckPasswordHash.inspectFuncCheckPasswordHash(password, hash)
	}

	mm_params := PasswordCheckerMockCheckPasswordHashParams{password, hash}

	// Record call args
	mmCheckPasswordHash.CheckPasswordHashMock.mutex.Lock()
	mmCheckPasswordHash.CheckPasswordHashMock.callArgs = append(mmCheckPasswordHash.CheckPasswordHashMock.callArgs, &mm_params)
	mmCheckPasswordHash.CheckPasswordHashMock.mutex.Unlock()

	for _, e := range mmCheckPasswordHash.CheckPasswordHashMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.Counter, 1)
		mm_want := mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.params
		mm_want_ptrs := mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.paramPtrs

		mm_got := PasswordCheckerMockCheckPasswordHashParams{password, hash}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.password != nil && !minimock.Equal(*mm_want_ptrs.password, mm_got.password) {
				mmCheckPasswordHash.t.Errorf("PasswordCheckerMock.CheckPasswordHash got unexpected parameter password, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.expectationOrigins.originPassword, *mm_want_ptrs.password, mm_got.password, minimock.Diff(*mm_want_ptrs.password, mm_got.password))
			}

			if mm_want_ptrs.hash != nil && !minimock.Equal(*mm_want_ptrs.hash, mm_got.hash) {
				mmCheckPasswordHash.t.Errorf("PasswordCheckerMock.CheckPasswordHash got unexpected parameter hash, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.expectationOrigins.originHash, *mm_want_ptrs.hash, mm_got.hash, minimock.Diff(*mm_want_ptrs.hash, mm_got.hash))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCheckPasswordHash.t.Errorf("PasswordCheckerMock.CheckPasswordHash got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCheckPasswordHash.CheckPasswordHashMock.defaultExpectation.results
		if mm_results == nil {
			mmCheckPasswordHash.t.Fatal("No results are set for the PasswordCheckerMock.CheckPasswordHash")
		}
		return (*mm_results).err
	}
	if mmCheckPasswordHash.funcCheckPasswordHash != nil {
		return mmCheckPasswordHash.funcCheckPasswordHash(password, hash)
	}
	mmCheckPasswordHash.t.Fatalf("Unexpected call to PasswordCheckerMock.CheckPasswordHash. %v %v", password, hash)
	return
}

// CheckPasswordHashAfterCounter returns a count of finished PasswordCheckerMock.CheckPasswordHash invocations
func (mmCheckPasswordHash *PasswordCheckerMock) CheckPasswordHashAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckPasswordHash.afterCheckPasswordHashCounter)
}

// CheckPasswordHashBeforeCounter returns a count of PasswordCheckerMock.CheckPasswordHash invocations
func (mmCheckPasswordHash *PasswordCheckerMock) CheckPasswordHashBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCheckPasswordHash.beforeCheckPasswordHashCounter)
}

// Calls returns a list of arguments used in each call to PasswordCheckerMock.CheckPasswordHash.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCheckPasswordHash *mPasswordCheckerMockCheckPasswordHash) Calls() []*PasswordCheckerMockCheckPasswordHashParams {
	mmCheckPasswordHash.mutex.RLock()

	argCopy := make([]*PasswordCheckerMockCheckPasswordHashParams, len(mmCheckPasswordHash.callArgs))
	copy(argCopy, mmCheckPasswordHash.callArgs)

	mmCheckPasswordHash.mutex.RUnlock()

	return argCopy
}

// MinimockCheckPasswordHashDone returns true if the count of the CheckPasswordHash invocations corresponds
// the number of defined expectations
func (m *PasswordCheckerMock) MinimockCheckPasswordHashDone() bool {
	if m.CheckPasswordHashMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CheckPasswordHashMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CheckPasswordHashMock.invocationsDone()
}

// MinimockCheckPasswordHashInspect logs each unmet expectation
func (m *PasswordCheckerMock) MinimockCheckPasswordHashInspect() {
	for _, e := range m.CheckPasswordHashMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to PasswordCheckerMock.CheckPasswordHash at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCheckPasswordHashCounter := mm_atomic.LoadUint64(&m.afterCheckPasswordHashCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CheckPasswordHashMock.defaultExpectation != nil && afterCheckPasswordHashCounter < 1 {
		if m.CheckPasswordHashMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to PasswordCheckerMock.CheckPasswordHash at\n%s", m.CheckPasswordHashMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to PasswordCheckerMock.CheckPasswordHash at\n%s with params: %#v", m.CheckPasswordHashMock.defaultExpectation.expectationOrigins.origin, *m.CheckPasswordHashMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCheckPasswordHash != nil && afterCheckPasswordHashCounter < 1 {
		m.t.Errorf("Expected call to PasswordCheckerMock.CheckPasswordHash at\n%s", m.funcCheckPasswordHashOrigin)
	}

	if !m.CheckPasswordHashMock.invocationsDone() && afterCheckPasswordHashCounter > 0 {
		m.t.Errorf("Expected %d calls to PasswordCheckerMock.CheckPasswordHash at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CheckPasswordHashMock.expectedInvocations), m.CheckPasswordHashMock.expectedInvocationsOrigin, afterCheckPasswordHashCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *PasswordCheckerMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCheckPasswordHashInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *PasswordCheckerMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *PasswordCheckerMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCheckPasswordHashDone()
}
