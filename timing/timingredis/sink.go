// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package timingredis keeps completed timing trees in a capped redis list, where they can be
// inspected after the fact.
package timingredis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yongfa365/perflog/timing"
	"github.com/yongfa365/perflog/timing/timingcodec"
)

// Client is the subset of the redis client used by a Sink.  *redis.Client satisfies it.
type Client interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Sink pushes each tree it receives onto a redis list
type Sink struct {
	client Client
	codec  *timingcodec.Codec
	key    string
	maxLen int64
	ttl    time.Duration
}

// NewSink creates a Sink that writes through the given client.  This function panics if
// client is nil.
func NewSink(client Client, o Options) (*Sink, error) {
	if client == nil {
		panic("a redis client is required")
	}

	c, err := o.codec()
	if err != nil {
		return nil, err
	}

	return &Sink{
		client: client,
		codec:  c,
		key:    o.key(),
		maxLen: o.MaxLen,
		ttl:    o.TTL,
	}, nil
}

// Key returns the name of the list this sink pushes onto
func (s *Sink) Key() string {
	return s.key
}

// Send encodes nodes and pushes them onto the list, then applies the length cap and TTL.
// Empty trees are not recorded.
func (s *Sink) Send(ctx context.Context, nodes []*timing.Node) error {
	if len(nodes) == 0 {
		return nil
	}

	data, err := s.codec.Marshal(nodes)
	if err != nil {
		return err
	}

	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("unable to push timings onto %s: %w", s.key, err)
	}

	if s.maxLen > 0 {
		if err := s.client.LTrim(ctx, s.key, -s.maxLen, -1).Err(); err != nil {
			return fmt.Errorf("unable to trim %s: %w", s.key, err)
		}
	}

	if s.ttl > 0 {
		if err := s.client.Expire(ctx, s.key, s.ttl).Err(); err != nil {
			return fmt.Errorf("unable to expire %s: %w", s.key, err)
		}
	}

	return nil
}
