// Package wmata fetches bus positions, stops and routes from the WMATA JSON
// API. The core consumes the returned records as plain data; nothing here is
// cached or persisted.
package wmata
