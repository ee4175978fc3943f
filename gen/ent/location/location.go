// Code generated by ent, DO NOT EDIT.

package location

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the location type in the database.
	Label = "location"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDisplayOrder holds the string denoting the display_order field in the database.
	FieldDisplayOrder = "display_order"
	// FieldShowInTag holds the string denoting the show_in_tag field in the database.
	FieldShowInTag = "show_in_tag"
	// EdgeDurations holds the string denoting the durations edge name in mutations.
	EdgeDurations = "durations"
	// Table holds the table name of the location in the database.
	Table = "locations"
	// DurationsTable is the table that holds the durations relation/edge.
	DurationsTable = "station_durations"
	// DurationsInverseTable is the table name for the StationDuration entity.
	// It exists in this package in order to avoid circular dependency with the "stationduration" package.
	DurationsInverseTable = "station_durations"
	// DurationsColumn is the table column denoting the durations relation/edge.
	DurationsColumn = "location_id"
)

// Columns holds all SQL columns for location fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDisplayOrder,
	FieldShowInTag,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDisplayOrder holds the default value on creation for the "display_order" field.
	DefaultDisplayOrder int
	// DefaultShowInTag holds the default value on creation for the "show_in_tag" field.
	DefaultShowInTag bool
)

// OrderOption defines the ordering options for the Location queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDisplayOrder orders the results by the display_order field.
func ByDisplayOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayOrder, opts...).ToFunc()
}

// ByShowInTag orders the results by the show_in_tag field.
func ByShowInTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShowInTag, opts...).ToFunc()
}

// ByDurationsCount orders the results by durations count.
func ByDurationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDurationsStep(), opts...)
	}
}

// ByDurations orders the results by durations terms.
func ByDurations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDurationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDurationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DurationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DurationsTable, DurationsColumn),
	)
}
