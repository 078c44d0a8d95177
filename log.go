// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth

import (
	"log/slog"

	"github.com/gogama/reauth/request"
)

// LogEvents returns an event handler that logs each event to logger
// with structured attributes (correlation id, method, URL, attempt,
// and, once known, status). Attempt-level events log at Debug; an
// error-classified AfterAttempt and BeforeResolve log at Warn;
// AfterExecution logs at Info.
//
// The client itself never logs; push the returned handler onto the
// events of interest to opt in:
//
//	g := &reauth.HandlerGroup{}
//	h := reauth.LogEvents(logger)
//	for _, evt := range reauth.Events() {
//		g.PushBack(evt, h)
//	}
//	client := &reauth.Client{Handlers: g}
func LogEvents(logger *slog.Logger) Handler {
	return HandlerFunc(func(evt Event, o *request.Outcome) {
		attrs := []any{
			slog.String("id", o.Request.ID),
			slog.String("method", o.Request.Method),
			slog.String("url", o.Request.URL.String()),
			slog.Int("attempt", o.Attempt),
		}
		if o.StatusCode != 0 {
			attrs = append(attrs, slog.Int("status", o.StatusCode))
		}
		if o.ErrorMessage != "" {
			attrs = append(attrs, slog.String("error", o.ErrorMessage))
		}
		switch evt {
		case AfterExecution:
			logger.Info(evt.Name(), attrs...)
		case BeforeResolve:
			logger.Warn(evt.Name(), attrs...)
		case AfterAttempt:
			if o.IsError() {
				logger.Warn(evt.Name(), attrs...)
			} else {
				logger.Debug(evt.Name(), attrs...)
			}
		default:
			logger.Debug(evt.Name(), attrs...)
		}
	})
}
