// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paginator slices object lists into limit/offset pages and builds
// the "meta" envelope returned with every list response.
//
// The behaviour of a [Paginator] is assembled from two policies:
//
//   - a [LimitPolicy] turning the requested "limit" into the effective page
//     size ([StandardLimit], [UnboundedLimit]);
//   - a [CountPolicy] deciding whether the total number of objects is
//     queried ([CountAll]) or skipped ([SkipCount]).
//
// [Standard], [Infinite] and [NoTotalCount] are ready-made [Factory] values
// combining them.
package paginator
