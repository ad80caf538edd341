/*
Package history carries the static WMATA performance reference tables and
the operations the historical blender needs over them: recency slicing,
timepoint-weighted window averages, and route id matching between the
API's route variants and the annual report's line-level ids.

The tables are versioned by the source documents cited in data.go; they are
not fetched at runtime.
*/
package history
