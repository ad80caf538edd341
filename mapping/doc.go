// Package mapping maintains the slow-changing reference views: which ward
// each bus stop sits in and which wards each route touches. Both are persisted
// as JSON documents and refreshed only when stale, since stops and routes
// change far less often than positions.
package mapping
