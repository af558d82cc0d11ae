// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package services

import (
	"context"
	"errors"
	"fmt"
)

// ConsumerService runs a blocking function under supervision.
//
//	svc := services.NewConsumerService("bookmark-metrics", func(ctx context.Context) error {
//	    return events.CountBookmarkEvents(ctx, bus)
//	})
type ConsumerService struct {
	name string
	run  func(ctx context.Context) error
}

// NewConsumerService creates a named service around run.
func NewConsumerService(name string, run func(ctx context.Context) error) *ConsumerService {
	return &ConsumerService{name: name, run: run}
}

// Serve implements suture.Service. If run returns while ctx is still live,
// the return is reported as a failure so suture restarts the consumer.
func (c *ConsumerService) Serve(ctx context.Context) error {
	err := c.run(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err == nil || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: consumer stopped unexpectedly", c.name)
	}
	return fmt.Errorf("%s: %w", c.name, err)
}

// String implements fmt.Stringer for suture logs.
func (c *ConsumerService) String() string {
	return c.name
}
