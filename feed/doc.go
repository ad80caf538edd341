// Package feed reads GTFS-RT TripUpdates and VehiclePositions and joins them
// into per-vehicle samples carrying a schedule deviation in minutes, the same
// shape the WMATA JSON API reports natively.
package feed
