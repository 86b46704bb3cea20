// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access is the authorization gate of the community API.
//
// Every role maps to a privilege [Tier]. A request is allowed when the
// caller's tier reaches the required minimum, or when the requirement names
// a resource owner and the caller is that owner. The OR between the two
// checks lives only in [Authorize]; handlers and services describe what they
// need with a [Requirement] and never compare roles themselves.
package access
