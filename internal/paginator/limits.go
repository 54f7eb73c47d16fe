// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paginator

import (
	"fmt"
	"strconv"
)

const (
	// NoLimit is the "limit" value asking for every object.
	NoLimit = -1

	// UnboundedCap is the page size served for [NoLimit].
	UnboundedCap = 2000

	// DefaultLimitPerPage is used when neither the resource nor the
	// configuration name a default page size.
	DefaultLimitPerPage = 20
)

// Limits carries the page size settings a [LimitPolicy] works with.
type Limits struct {
	// Default is the page size used when the request names none.
	Default int
	// Max caps the page size. Zero disables the cap.
	Max int
}

// LimitPolicy turns the raw "limit" request parameter into the effective
// page size. raw is empty when the parameter is absent.
type LimitPolicy func(raw string, limits Limits) (int, error)

// StandardLimit accepts any non-negative integer. Zero asks for every
// object and is therefore clamped to the maximum like any oversized value.
func StandardLimit(raw string, limits Limits) (int, error) {
	limit, err := requestedLimit(raw, limits)
	if err != nil {
		return 0, err
	}
	if limit < 0 {
		return 0, fmt.Errorf("%w: '%d' provided, please provide a positive integer >= 0", ErrInvalidLimit, limit)
	}

	if limits.Max > 0 && (limit == 0 || limit > limits.Max) {
		return limits.Max, nil
	}
	return limit, nil
}

// UnboundedLimit behaves like [StandardLimit] but also accepts [NoLimit],
// which is served as [UnboundedCap] objects. The configured maximum stays
// authoritative: when it is below the cap, it wins.
func UnboundedLimit(raw string, limits Limits) (int, error) {
	limit, err := requestedLimit(raw, limits)
	if err != nil {
		return 0, err
	}

	if limit == NoLimit {
		if limits.Max > 0 && limits.Max < UnboundedCap {
			return limits.Max, nil
		}
		return UnboundedCap, nil
	}
	if limit < 0 {
		return 0, fmt.Errorf("%w: '%d' provided, please provide a positive integer or -1", ErrInvalidLimit, limit)
	}

	if limits.Max > 0 && (limit == 0 || limit > limits.Max) {
		return limits.Max, nil
	}
	return limit, nil
}

func requestedLimit(raw string, limits Limits) (int, error) {
	if raw == "" {
		if limits.Default > 0 {
			return limits.Default, nil
		}
		return DefaultLimitPerPage, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' provided, please provide a positive integer", ErrInvalidLimit, raw)
	}
	return limit, nil
}

// CountPolicy decides whether a paginator asks its source for the total
// number of objects.
type CountPolicy int

const (
	// CountAll queries the total and reports it as "total_count".
	CountAll CountPolicy = iota
	// SkipCount never queries the total and omits "total_count".
	SkipCount
)

// UnknownCount is reported in place of the total under [SkipCount].
const UnknownCount = -1
