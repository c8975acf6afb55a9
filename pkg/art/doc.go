// Package art defines the thread art domain model: nail layouts on a
// geometric boundary and the thread path strung between them.
//
// A nail is a point in the unit square [0,1]x[0,1], identified solely by
// its position in the layout. The thread path is an ordered list of nail
// indices; consecutive entries form the line segments of the thread.
//
// The package provides deterministic layout generation for circle and
// square boundaries (see [Generate]) and semantic validation of loaded
// data (see [Validate]).
package art
