// Package github talks to the GitHub release API for template downloads.
//
// The package provides a single long-lived Client that verifies server
// certificates against the operating system trust store, attaches optional
// bearer-token authentication, and classifies rejected responses. A 403 or
// 429 carrying rate-limit headers yields the full rate-limit diagnostic;
// any other non-2xx yields a generic status/URL message. Both always
// include the raw status code and URL so the user has a minimum actionable
// signal.
//
// No retry or backoff happens at this layer; a caller that wants to retry
// owns that decision.
package github
