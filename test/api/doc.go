/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package api provides black-box test utilities for the restaurant
// reservation service: an HTTP client with bearer-token auth and
// transient-failure retry, a schema-backed response validator, and payload
// builders for every request body the suites send.
//
// The package deliberately maintains its own small HTTP client instead of a
// generated one. The suites assert on raw status codes and bodies, including
// error responses, so the client never converts HTTP-level errors into Go
// errors; only transport failures surface as errors, and only after the
// retry budget is spent.
//
// Nothing here talks to a data store or carries cross-test state. A client
// instance owns exactly one piece of mutable state, its bearer token, and
// test cases construct their own instances rather than sharing globals.
package api
