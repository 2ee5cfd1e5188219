// Package api provides an HTTP implementation of the domain.APIClient
// interface used by aidconnect.
//
// Supported operations include:
//   - Registering, logging in and fetching the current account.
//   - Listing, fetching and creating help requests.
//   - Listing and creating help offers.
//   - Probing backend health.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. The bearer token is read from a domain.TokenSource on every call
// so a login made mid-run is picked up. Non-2xx statuses are returned as
// *Error carrying one user-visible message. Calls are never retried.
package api
