// Package dashboard loads the signed-in user's overview: their profile,
// community-wide request and offer counts, and the most recent posts.
package dashboard
