/*
Package geo classifies points into administrative wards.

The boundary dataset is a GeoJSON FeatureCollection with one feature per
ward (WARD property). Each feature's polygon rings are kept in memory as a
WardIndex: first ring exterior, following rings holes. MultiPolygon wards are
flattened into a single ring list, which assumes a hole never belongs to more
than one sub-polygon of the same ward.

Containment uses ray casting. The index is immutable once built and safe for
concurrent reads; parse it once per process and reuse it for every
classification call.
*/
package geo
