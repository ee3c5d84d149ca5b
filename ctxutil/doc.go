// Package ctxutil stores and retrieves request-scoped values: the resolved
// user id, the bearer token and the trace id.
//
// Values set through SetValue are mirrored onto the *gin.Context when one is
// embedded in the context, so gin handlers and plain context consumers see
// the same data.
package ctxutil
