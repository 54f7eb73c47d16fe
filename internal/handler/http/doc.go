// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It wires the REST resources, the authentication endpoints and the media
// route onto a chi router. Bearer authentication, request tracing, access
// logging and response compression are handled here before requests reach
// the resources and services.
package http
