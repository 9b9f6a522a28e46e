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

// Package predictor is a generated GoMock package.
package predictor

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockFallback is a mock of Fallback interface.
type MockFallback struct {
	ctrl     *gomock.Controller
	recorder *MockFallbackMockRecorder
	isgomock struct{}
}

// MockFallbackMockRecorder is the mock recorder for MockFallback.
type MockFallbackMockRecorder struct {
	mock *MockFallback
}

// NewMockFallback creates a new mock instance.
func NewMockFallback(ctrl *gomock.Controller) *MockFallback {
	mock := &MockFallback{ctrl: ctrl}
	mock.recorder = &MockFallbackMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFallback) EXPECT() *MockFallbackMockRecorder {
	return m.recorder
}

// Lookup mocks base method.
func (m *MockFallback) Lookup(tid int, pc uint64, h History) (bool, History) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lookup", tid, pc, h)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(History)
	return ret0, ret1
}

// Lookup indicates an expected call of Lookup.
func (mr *MockFallbackMockRecorder) Lookup(tid, pc, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockFallback)(nil).Lookup), tid, pc, h)
}

// Update mocks base method.
func (m *MockFallback) Update(tid int, pc uint64, taken bool, h History, squashed bool, target uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Update", tid, pc, taken, h, squashed, target)
}

// Update indicates an expected call of Update.
func (mr *MockFallbackMockRecorder) Update(tid, pc, taken, h, squashed, target any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockFallback)(nil).Update), tid, pc, taken, h, squashed, target)
}

// UpdateHistories mocks base method.
func (m *MockFallback) UpdateHistories(tid int, pc uint64, uncond, taken bool, target uint64, h History) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UpdateHistories", tid, pc, uncond, taken, target, h)
}

// UpdateHistories indicates an expected call of UpdateHistories.
func (mr *MockFallbackMockRecorder) UpdateHistories(tid, pc, uncond, taken, target, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateHistories", reflect.TypeOf((*MockFallback)(nil).UpdateHistories), tid, pc, uncond, taken, target, h)
}

// Squash mocks base method.
func (m *MockFallback) Squash(tid int, h History) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Squash", tid, h)
}

// Squash indicates an expected call of Squash.
func (mr *MockFallbackMockRecorder) Squash(tid, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Squash", reflect.TypeOf((*MockFallback)(nil).Squash), tid, h)
}
