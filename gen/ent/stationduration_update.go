// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fyang93/housing-ocr/gen/ent/location"
	"github.com/fyang93/housing-ocr/gen/ent/predicate"
	"github.com/fyang93/housing-ocr/gen/ent/stationduration"
)

// StationDurationUpdate is the builder for updating StationDuration entities.
type StationDurationUpdate struct {
	config
	hooks    []Hook
	mutation *StationDurationMutation
}

// Where appends a list predicates to the StationDurationUpdate builder.
func (_u *StationDurationUpdate) Where(ps ...predicate.StationDuration) *StationDurationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStationName sets the "station_name" field.
func (_u *StationDurationUpdate) SetStationName(v string) *StationDurationUpdate {
	_u.mutation.SetStationName(v)
	return _u
}

// SetNillableStationName sets the "station_name" field if the given value is not nil.
func (_u *StationDurationUpdate) SetNillableStationName(v *string) *StationDurationUpdate {
	if v != nil {
		_u.SetStationName(*v)
	}
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *StationDurationUpdate) SetLocationID(v int) *StationDurationUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *StationDurationUpdate) SetNillableLocationID(v *int) *StationDurationUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *StationDurationUpdate) SetDuration(v int) *StationDurationUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *StationDurationUpdate) SetNillableDuration(v *int) *StationDurationUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *StationDurationUpdate) AddDuration(v int) *StationDurationUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetLocation sets the "location" edge to the Location entity.
func (_u *StationDurationUpdate) SetLocation(v *Location) *StationDurationUpdate {
	return _u.SetLocationID(v.ID)
}

// Mutation returns the StationDurationMutation object of the builder.
func (_u *StationDurationUpdate) Mutation() *StationDurationMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the Location entity.
func (_u *StationDurationUpdate) ClearLocation() *StationDurationUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StationDurationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StationDurationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StationDurationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StationDurationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StationDurationUpdate) check() error {
	if v, ok := _u.mutation.StationName(); ok {
		if err := stationduration.StationNameValidator(v); err != nil {
			return &ValidationError{Name: "station_name", err: fmt.Errorf(`ent: validator failed for field "StationDuration.station_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := stationduration.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "StationDuration.duration": %w`, err)}
		}
	}
	if _u.mutation.LocationCleared() && len(_u.mutation.LocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StationDuration.location"`)
	}
	return nil
}

func (_u *StationDurationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stationduration.Table, stationduration.Columns, sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StationName(); ok {
		_spec.SetField(stationduration.FieldStationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(stationduration.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(stationduration.FieldDuration, field.TypeInt, value)
	}
	if _u.mutation.LocationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stationduration.LocationTable,
			Columns: []string{stationduration.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(location.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stationduration.LocationTable,
			Columns: []string{stationduration.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(location.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stationduration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StationDurationUpdateOne is the builder for updating a single StationDuration entity.
type StationDurationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StationDurationMutation
}

// SetStationName sets the "station_name" field.
func (_u *StationDurationUpdateOne) SetStationName(v string) *StationDurationUpdateOne {
	_u.mutation.SetStationName(v)
	return _u
}

// SetNillableStationName sets the "station_name" field if the given value is not nil.
func (_u *StationDurationUpdateOne) SetNillableStationName(v *string) *StationDurationUpdateOne {
	if v != nil {
		_u.SetStationName(*v)
	}
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *StationDurationUpdateOne) SetLocationID(v int) *StationDurationUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *StationDurationUpdateOne) SetNillableLocationID(v *int) *StationDurationUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *StationDurationUpdateOne) SetDuration(v int) *StationDurationUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *StationDurationUpdateOne) SetNillableDuration(v *int) *StationDurationUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *StationDurationUpdateOne) AddDuration(v int) *StationDurationUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetLocation sets the "location" edge to the Location entity.
func (_u *StationDurationUpdateOne) SetLocation(v *Location) *StationDurationUpdateOne {
	return _u.SetLocationID(v.ID)
}

// Mutation returns the StationDurationMutation object of the builder.
func (_u *StationDurationUpdateOne) Mutation() *StationDurationMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the Location entity.
func (_u *StationDurationUpdateOne) ClearLocation() *StationDurationUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// Where appends a list predicates to the StationDurationUpdate builder.
func (_u *StationDurationUpdateOne) Where(ps ...predicate.StationDuration) *StationDurationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StationDurationUpdateOne) Select(field string, fields ...string) *StationDurationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StationDuration entity.
func (_u *StationDurationUpdateOne) Save(ctx context.Context) (*StationDuration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StationDurationUpdateOne) SaveX(ctx context.Context) *StationDuration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StationDurationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StationDurationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StationDurationUpdateOne) check() error {
	if v, ok := _u.mutation.StationName(); ok {
		if err := stationduration.StationNameValidator(v); err != nil {
			return &ValidationError{Name: "station_name", err: fmt.Errorf(`ent: validator failed for field "StationDuration.station_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := stationduration.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "StationDuration.duration": %w`, err)}
		}
	}
	if _u.mutation.LocationCleared() && len(_u.mutation.LocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StationDuration.location"`)
	}
	return nil
}

func (_u *StationDurationUpdateOne) sqlSave(ctx context.Context) (_node *StationDuration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stationduration.Table, stationduration.Columns, sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StationDuration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stationduration.FieldID)
		for _, f := range fields {
			if !stationduration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stationduration.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StationName(); ok {
		_spec.SetField(stationduration.FieldStationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(stationduration.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(stationduration.FieldDuration, field.TypeInt, value)
	}
	if _u.mutation.LocationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stationduration.LocationTable,
			Columns: []string{stationduration.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(location.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stationduration.LocationTable,
			Columns: []string{stationduration.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(location.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StationDuration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stationduration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
