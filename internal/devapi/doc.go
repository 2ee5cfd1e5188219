// Package devapi is an in-memory stand-in for the Aid-Connect REST backend,
// used by cmd/devserver during local development and by client tests.
//
// HTTP API (all under /api)
//
//	POST /auth/register   create an account, returns a bearer token
//	POST /auth/login      exchange email+password for a bearer token
//	GET  /auth/me         the account behind the bearer token
//	GET  /requests        list requests (category, status, latitude, longitude, radius, limit)
//	POST /requests        create a request
//	GET  /requests/{id}   fetch one request
//	GET  /offers          list active offers (category, limit)
//	POST /offers          create an offer
//	GET  /                banner
//	GET  /health          liveness
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Errors are JSON {"detail": "..."}; body validation failures use the
//     list form {"detail": [{"loc": [...], "msg": "..."}]}.
//   - Tokens are HS256 JWTs whose "sub" claim is the user id.
//   - There is no classifier and no matching engine: new requests get the
//     backend's fallback classification and an empty ai_matches list.
package devapi
