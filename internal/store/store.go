// Package store provides persistence for the plot-listing collections
// with two interchangeable backends: a JSON-file store and a PostgreSQL
// store. The backend is chosen by configuration at process start; from
// the pipelines' perspective the two are behaviorally equivalent.
package store

import "errors"

// ErrNotFound is returned when a target record does not exist in its
// collection. A missing backing file is not an error: reads of a
// collection that has never been written return an empty slice.
var ErrNotFound = errors.New("record not found")
