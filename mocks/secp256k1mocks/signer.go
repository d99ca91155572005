// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package secp256k1mocks provides a hand-written stand-in for
// secp256k1.Signer, following the shape mockery would generate for it.
package secp256k1mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
)

// Signer is a mock type for the secp256k1.Signer interface.
type Signer struct {
	mock.Mock
}

// Sign provides a mock function with given fields: ctx, hash
func (_m *Signer) Sign(ctx context.Context, hash getypes.Hash) (*getypes.Signature, error) {
	ret := _m.Called(ctx, hash)

	var r0 *getypes.Signature
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, getypes.Hash) (*getypes.Signature, error)); ok {
		return rf(ctx, hash)
	}
	if rf, ok := ret.Get(0).(func(context.Context, getypes.Hash) *getypes.Signature); ok {
		r0 = rf(ctx, hash)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*getypes.Signature)
	}

	if rf, ok := ret.Get(1).(func(context.Context, getypes.Hash) error); ok {
		r1 = rf(ctx, hash)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignerAddress provides a mock function with given fields:
func (_m *Signer) SignerAddress() getypes.Address {
	ret := _m.Called()

	var r0 getypes.Address
	if rf, ok := ret.Get(0).(func() getypes.Address); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(getypes.Address)
	}

	return r0
}

// NewSigner creates a new instance of Signer. It also registers a testing
// interface on the mock and a cleanup function to assert the mock's
// expectations.
func NewSigner(t interface {
	mock.TestingT
	Cleanup(func())
}) *Signer {
	m := &Signer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
