// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fields provides resource fields that refine the defaults of
// package resource:
//
//   - [Base64FileField] accepts uploads encoded as "data:<mime>;base64,<payload>";
//   - [OptimizedToOneField] renders a related URI straight from the foreign
//     key, without loading the related object;
//   - [CheckToManyField] hides a to-many relation behind a permission check;
//   - [DateTimeField] reads an empty string as "no value".
package fields
