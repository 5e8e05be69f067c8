// Package api contains the HTTP handlers, request/response models, and
// error mapping for the JSON API. Handlers adapt the pure auth and
// store components to HTTP; they hold no business logic of their own.
package api
