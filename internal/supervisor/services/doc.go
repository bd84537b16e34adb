// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

// Package services adapts Orbitdesk's long-running components to
// suture.Service so they can run under the supervisor tree.
//
// Every service blocks in Serve until its context is canceled and returns
// ctx.Err() on a clean stop, which suture treats as a normal termination.
package services
