// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package trace is a generated GoMock package.
package trace

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockReader is a mock of Reader interface.
type MockReader struct {
	ctrl     *gomock.Controller
	recorder *MockReaderMockRecorder
	isgomock struct{}
}

// MockReaderMockRecorder is the mock recorder for MockReader.
type MockReaderMockRecorder struct {
	mock *MockReader
}

// NewMockReader creates a new mock instance.
func NewMockReader(ctrl *gomock.Controller) *MockReader {
	mock := &MockReader{ctrl: ctrl}
	mock.recorder = &MockReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReader) EXPECT() *MockReaderMockRecorder {
	return m.recorder
}

// Next mocks base method.
func (m *MockReader) Next() (Op, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(Op)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockReaderMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockReader)(nil).Next))
}

// ReadHint mocks base method.
func (m *MockReader) ReadHint() (HintRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadHint")
	ret0, _ := ret[0].(HintRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadHint indicates an expected call of ReadHint.
func (mr *MockReaderMockRecorder) ReadHint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadHint", reflect.TypeOf((*MockReader)(nil).ReadHint))
}

// ReadBranch mocks base method.
func (m *MockReader) ReadBranch() (BranchRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadBranch")
	ret0, _ := ret[0].(BranchRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadBranch indicates an expected call of ReadBranch.
func (mr *MockReaderMockRecorder) ReadBranch() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadBranch", reflect.TypeOf((*MockReader)(nil).ReadBranch))
}

// ReadSquash mocks base method.
func (m *MockReader) ReadSquash() (SquashRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadSquash")
	ret0, _ := ret[0].(SquashRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadSquash indicates an expected call of ReadSquash.
func (mr *MockReaderMockRecorder) ReadSquash() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadSquash", reflect.TypeOf((*MockReader)(nil).ReadSquash))
}

// Close mocks base method.
func (m *MockReader) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockReaderMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockReader)(nil).Close))
}
