// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package resolve

import "net/http"

// A Category is the failure class of an error outcome, derived from the
// status classification (and, for 503, the error message). It is a
// closed enumeration: Resolve dispatches over it with one handler
// invocation per category.
type Category int

const (
	// None indicates a success outcome: nothing to resolve.
	None Category = iota
	// BadRequest indicates a 400 response. Carries the error message.
	BadRequest
	// Unauthorized indicates a 401 response. Resolution additionally
	// consults the request's credential source to decide between
	// refresh-and-replay, not-logged-in, and the generic unauthorized
	// handler.
	Unauthorized
	// Forbidden indicates a 403 response.
	Forbidden
	// NotFound indicates a 404 or 410 response. The handler receives
	// the concrete code.
	NotFound
	// Duplicate indicates a 409 response.
	Duplicate
	// EntityTooLarge indicates a 413 response.
	EntityTooLarge
	// RateLimited indicates a 429 response. Carries the Retry-After
	// value when one is present.
	RateLimited
	// ServerError indicates a 500 response. Carries the error message.
	ServerError
	// BadGateway indicates a 502 response.
	BadGateway
	// Maintenance indicates a 503 response whose error message is
	// exactly "Maintenance". Carries the Retry-After value when one is
	// present.
	Maintenance
	// Unreachable indicates a 521 response, or a 503 response with any
	// message other than "Maintenance".
	Unreachable
	// GatewayTimeout indicates a 504 response.
	GatewayTimeout
	// Unknown indicates any other error status. The handler receives
	// the code and the error message.
	Unknown
)

var categoryNames = []string{
	"None",
	"BadRequest",
	"Unauthorized",
	"Forbidden",
	"NotFound",
	"Duplicate",
	"EntityTooLarge",
	"RateLimited",
	"ServerError",
	"BadGateway",
	"Maintenance",
	"Unreachable",
	"GatewayTimeout",
	"Unknown",
}

// String returns the name of the category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Invalid"
}

// maintenanceMessage is the exact 503 error body that distinguishes a
// planned maintenance window from a generally unreachable server.
const maintenanceMessage = "Maintenance"

// Categorize derives the failure category from a status classification
// and error message. Status codes below 400 categorize as None. The
// mapping is total: every error status falls into exactly one category,
// with unlisted codes falling into Unknown.
func Categorize(code int, message string) Category {
	if code < http.StatusBadRequest {
		return None
	}
	switch code {
	case http.StatusBadRequest:
		return BadRequest
	case http.StatusUnauthorized:
		return Unauthorized
	case http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound, http.StatusGone:
		return NotFound
	case http.StatusConflict:
		return Duplicate
	case http.StatusRequestEntityTooLarge:
		return EntityTooLarge
	case http.StatusTooManyRequests:
		return RateLimited
	case http.StatusInternalServerError:
		return ServerError
	case http.StatusBadGateway:
		return BadGateway
	case http.StatusServiceUnavailable:
		if message == maintenanceMessage {
			return Maintenance
		}
		return Unreachable
	case http.StatusGatewayTimeout:
		return GatewayTimeout
	case 521: // origin server down (non-standard, used by CDN fronts)
		return Unreachable
	default:
		return Unknown
	}
}
