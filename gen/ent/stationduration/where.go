// Code generated by ent, DO NOT EDIT.

package stationduration

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fyang93/housing-ocr/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldLTE(FieldID, id))
}

// StationName applies equality check predicate on the "station_name" field. It's identical to StationNameEQ.
func StationName(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldStationName, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldLocationID, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldDuration, v))
}

// StationNameEQ applies the EQ predicate on the "station_name" field.
func StationNameEQ(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldStationName, v))
}

// StationNameNEQ applies the NEQ predicate on the "station_name" field.
func StationNameNEQ(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNEQ(FieldStationName, v))
}

// StationNameIn applies the In predicate on the "station_name" field.
func StationNameIn(vs ...string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldIn(FieldStationName, vs...))
}

// StationNameNotIn applies the NotIn predicate on the "station_name" field.
func StationNameNotIn(vs ...string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNotIn(FieldStationName, vs...))
}

// StationNameGT applies the GT predicate on the "station_name" field.
func StationNameGT(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldGT(FieldStationName, v))
}

// StationNameGTE applies the GTE predicate on the "station_name" field.
func StationNameGTE(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldGTE(FieldStationName, v))
}

// StationNameLT applies the LT predicate on the "station_name" field.
func StationNameLT(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldLT(FieldStationName, v))
}

// StationNameLTE applies the LTE predicate on the "station_name" field.
func StationNameLTE(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldLTE(FieldStationName, v))
}

// StationNameContains applies the Contains predicate on the "station_name" field.
func StationNameContains(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldContains(FieldStationName, v))
}

// StationNameHasPrefix applies the HasPrefix predicate on the "station_name" field.
func StationNameHasPrefix(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldHasPrefix(FieldStationName, v))
}

// StationNameHasSuffix applies the HasSuffix predicate on the "station_name" field.
func StationNameHasSuffix(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldHasSuffix(FieldStationName, v))
}

// StationNameEqualFold applies the EqualFold predicate on the "station_name" field.
func StationNameEqualFold(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEqualFold(FieldStationName, v))
}

// StationNameContainsFold applies the ContainsFold predicate on the "station_name" field.
func StationNameContainsFold(v string) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldContainsFold(FieldStationName, v))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNotIn(FieldLocationID, vs...))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.StationDuration {
	return predicate.StationDuration(sql.FieldLTE(FieldDuration, v))
}

// HasLocation applies the HasEdge predicate on the "location" edge.
func HasLocation() predicate.StationDuration {
	return predicate.StationDuration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocationWith applies the HasEdge predicate on the "location" edge with a given conditions (other predicates).
func HasLocationWith(preds ...predicate.Location) predicate.StationDuration {
	return predicate.StationDuration(func(s *sql.Selector) {
		step := newLocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StationDuration) predicate.StationDuration {
	return predicate.StationDuration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StationDuration) predicate.StationDuration {
	return predicate.StationDuration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StationDuration) predicate.StationDuration {
	return predicate.StationDuration(sql.NotPredicates(p))
}
