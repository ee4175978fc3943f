// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fyang93/housing-ocr/gen/ent/location"
	"github.com/fyang93/housing-ocr/gen/ent/stationduration"
)

// StationDuration is the model entity for the StationDuration schema.
type StationDuration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StationName holds the value of the "station_name" field.
	StationName string `json:"station_name,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID int `json:"location_id,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration int `json:"duration,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StationDurationQuery when eager-loading is set.
	Edges        StationDurationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StationDurationEdges holds the relations/edges for other nodes in the graph.
type StationDurationEdges struct {
	// Location holds the value of the location edge.
	Location *Location `json:"location,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LocationOrErr returns the Location value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StationDurationEdges) LocationOrErr() (*Location, error) {
	if e.Location != nil {
		return e.Location, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: location.Label}
	}
	return nil, &NotLoadedError{edge: "location"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StationDuration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stationduration.FieldID, stationduration.FieldLocationID, stationduration.FieldDuration:
			values[i] = new(sql.NullInt64)
		case stationduration.FieldStationName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StationDuration fields.
func (_m *StationDuration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stationduration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stationduration.FieldStationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field station_name", values[i])
			} else if value.Valid {
				_m.StationName = value.String
			}
		case stationduration.FieldLocationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value.Valid {
				_m.LocationID = int(value.Int64)
			}
		case stationduration.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StationDuration.
// This includes values selected through modifiers, order, etc.
func (_m *StationDuration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLocation queries the "location" edge of the StationDuration entity.
func (_m *StationDuration) QueryLocation() *LocationQuery {
	return NewStationDurationClient(_m.config).QueryLocation(_m)
}

// Update returns a builder for updating this StationDuration.
// Note that you need to call StationDuration.Unwrap() before calling this method if this StationDuration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StationDuration) Update() *StationDurationUpdateOne {
	return NewStationDurationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StationDuration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StationDuration) Unwrap() *StationDuration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StationDuration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StationDuration) String() string {
	var builder strings.Builder
	builder.WriteString("StationDuration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("station_name=")
	builder.WriteString(_m.StationName)
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteByte(')')
	return builder.String()
}

// StationDurations is a parsable slice of StationDuration.
type StationDurations []*StationDuration
