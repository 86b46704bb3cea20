// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client runtime.
//
// Each subcommand maps to one call of [adapter.APIClient]. Results are
// printed as indented JSON, and tokens are printed bare so they can be
// captured by a shell:
//
//	TOKEN=$(ml-client login -username miya -password ...)
//	ml-client -token "$TOKEN" me
package client
