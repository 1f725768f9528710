// Package dataprocessing implements the cab-request analysis pipeline:
// load the raw CSV, clean and type the rows, derive time features, and
// aggregate supply and demand per (time slot, pickup point) group.
//
// The pipeline is strictly linear and fail-fast: the first load, parse, or
// validation error aborts the run. There is no partial output; either the
// full summary is produced or the run ends with a typed error identifying
// the stage and the offending input.
package dataprocessing
