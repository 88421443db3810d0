// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongfa365/perflog/clock/clocktest"
)

func TestFromContext(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		//nolint:staticcheck
		assert.Same(t, Fallback(), FromContext(nil))
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Same(t, Fallback(), FromContext(context.Background()))
	})

	t.Run("Present", func(t *testing.T) {
		var (
			assert = assert.New(t)
			s      = NewScope()
			ctx    = WithScope(context.Background(), s)
		)

		assert.Same(s, FromContext(ctx))
	})
}

func TestWithScope(t *testing.T) {
	assert := assert.New(t)

	type testKey struct{}
	parent := context.WithValue(context.Background(), testKey{}, "value")
	assert.Equal(parent, WithScope(parent, nil))

	//nolint:staticcheck
	ctx := WithScope(nil, NewScope())
	assert.NotNil(ctx)
	assert.NotSame(Fallback(), FromContext(ctx))
}

func TestInit(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		c       = clocktest.NewManual(testStart)
		ctx     = Init(context.Background(), Clock(c))
		id      = uuid.New()
	)

	s := FromContext(ctx)
	require.NotNil(s)
	assert.NotSame(Fallback(), s)
	assert.NotSame(s, FromContext(Init(context.Background())))

	c.Add(20 * time.Millisecond)
	assert.Equal(int64(20), Checkpoint(ctx, "first").Value)
	assert.Equal(int64(5), Attach(ctx, "explicit", 5*time.Millisecond).Value)
	assert.Equal(int64(3), AttachMillis(ctx, "millis", 3.3).Value)
	assert.Equal(int64(100), AttachSince(ctx, "since", c.Now().Add(-100*time.Millisecond)).Value)

	g := GroupOf(ctx, id)
	c.Add(10 * time.Millisecond)
	g.Checkpoint("grouped")
	assert.Equal([]string{"first", "explicit", "millis", "since"}, names(Nodes(ctx)))

	CloseGroup(ctx, id)
	assert.Equal([]string{"first", "explicit", "millis", "since", "grouped"}, names(Nodes(ctx)))
	assert.Equal([]int64{20, 5, 3, 100, 10}, values(Nodes(ctx)))

	Clear(ctx)
	assert.Empty(Nodes(ctx))
}

func TestPurgeFallback(t *testing.T) {
	assert := assert.New(t)

	Fallback().reset()
	defer Fallback().reset()

	for i := 0; i < FallbackLimit; i++ {
		Attach(context.Background(), "stale", time.Millisecond)
	}

	assert.Equal(FallbackLimit, Fallback().Len())
	assert.False(PurgeFallback())
	assert.Equal(FallbackLimit, Fallback().Len())

	GroupOf(context.Background(), uuid.New())
	assert.True(PurgeFallback())
	assert.Zero(Fallback().Len())
	assert.Empty(Nodes(context.Background()))

	for i := 0; i <= FallbackLimit; i++ {
		Attach(context.Background(), "stale", time.Millisecond)
	}

	Init(context.Background())
	assert.Zero(Fallback().Len())
}
