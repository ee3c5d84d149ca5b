// Package consts defines application-wide constants shared by the HTTP layer
// and the context helpers: header names, context keys and defaults.
package consts
