// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource implements the REST resource layer that the rest of the
// application plugs into.
//
// A [Resource] owns an ordered list of [Field] values, a [DataSource] and the
// request checks ([Authentication], [Authorization], [Throttle]). Incoming
// request data is turned into domain objects by hydration ([Resource.FullHydrate])
// and domain objects are turned into their wire representation by dehydration
// ([Resource.FullDehydrate]). Every step goes through an explicit interface so
// that custom fields and data sources can replace individual behaviour without
// touching the resource itself.
//
// Routes are registered on a chi router by [Resource.Routes]:
//
//	GET  /                  list, paginated
//	POST /                  create
//	GET  /set/{pk_list}/    batched fetch of ";"-separated identifiers
//	GET  /{pk}/             detail
package resource
