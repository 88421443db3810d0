// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingredis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	arguments := m.Called(ctx, key, values)
	return redis.NewIntResult(int64(arguments.Int(0)), arguments.Error(1))
}

func (m *mockClient) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	arguments := m.Called(ctx, key, start, stop)
	return redis.NewStatusResult(arguments.String(0), arguments.Error(1))
}

func (m *mockClient) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	arguments := m.Called(ctx, key, expiration)
	return redis.NewBoolResult(arguments.Bool(0), arguments.Error(1))
}
