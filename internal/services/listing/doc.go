// Package listing fetches help requests and offers and narrows them for display.
//
// Category, status and area are forwarded to the backend; priority and free
// text are matched locally. Results come back as cards carrying the distance
// from the viewer and the number of backend match suggestions.
package listing
