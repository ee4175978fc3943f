// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Location is the predicate function for location builders.
type Location func(*sql.Selector)

// StationDuration is the predicate function for stationduration builders.
type StationDuration func(*sql.Selector)
