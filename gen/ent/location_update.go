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

// LocationUpdate is the builder for updating Location entities.
type LocationUpdate struct {
	config
	hooks    []Hook
	mutation *LocationMutation
}

// Where appends a list predicates to the LocationUpdate builder.
func (_u *LocationUpdate) Where(ps ...predicate.Location) *LocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LocationUpdate) SetName(v string) *LocationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableName(v *string) *LocationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *LocationUpdate) SetDisplayOrder(v int) *LocationUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableDisplayOrder(v *int) *LocationUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *LocationUpdate) AddDisplayOrder(v int) *LocationUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetShowInTag sets the "show_in_tag" field.
func (_u *LocationUpdate) SetShowInTag(v bool) *LocationUpdate {
	_u.mutation.SetShowInTag(v)
	return _u
}

// SetNillableShowInTag sets the "show_in_tag" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableShowInTag(v *bool) *LocationUpdate {
	if v != nil {
		_u.SetShowInTag(*v)
	}
	return _u
}

// AddDurationIDs adds the "durations" edge to the StationDuration entity by IDs.
func (_u *LocationUpdate) AddDurationIDs(ids ...int) *LocationUpdate {
	_u.mutation.AddDurationIDs(ids...)
	return _u
}

// AddDurations adds the "durations" edges to the StationDuration entity.
func (_u *LocationUpdate) AddDurations(v ...*StationDuration) *LocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDurationIDs(ids...)
}

// Mutation returns the LocationMutation object of the builder.
func (_u *LocationUpdate) Mutation() *LocationMutation {
	return _u.mutation
}

// ClearDurations clears all "durations" edges to the StationDuration entity.
func (_u *LocationUpdate) ClearDurations() *LocationUpdate {
	_u.mutation.ClearDurations()
	return _u
}

// RemoveDurationIDs removes the "durations" edge to StationDuration entities by IDs.
func (_u *LocationUpdate) RemoveDurationIDs(ids ...int) *LocationUpdate {
	_u.mutation.RemoveDurationIDs(ids...)
	return _u
}

// RemoveDurations removes "durations" edges to StationDuration entities.
func (_u *LocationUpdate) RemoveDurations(v ...*StationDuration) *LocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDurationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := location.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Location.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(location.Table, location.Columns, sqlgraph.NewFieldSpec(location.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(location.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(location.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(location.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShowInTag(); ok {
		_spec.SetField(location.FieldShowInTag, field.TypeBool, value)
	}
	if _u.mutation.DurationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.DurationsTable,
			Columns: []string{location.DurationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDurationsIDs(); len(nodes) > 0 && !_u.mutation.DurationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.DurationsTable,
			Columns: []string{location.DurationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DurationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.DurationsTable,
			Columns: []string{location.DurationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{location.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocationUpdateOne is the builder for updating a single Location entity.
type LocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocationMutation
}

// SetName sets the "name" field.
func (_u *LocationUpdateOne) SetName(v string) *LocationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableName(v *string) *LocationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *LocationUpdateOne) SetDisplayOrder(v int) *LocationUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableDisplayOrder(v *int) *LocationUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *LocationUpdateOne) AddDisplayOrder(v int) *LocationUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetShowInTag sets the "show_in_tag" field.
func (_u *LocationUpdateOne) SetShowInTag(v bool) *LocationUpdateOne {
	_u.mutation.SetShowInTag(v)
	return _u
}

// SetNillableShowInTag sets the "show_in_tag" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableShowInTag(v *bool) *LocationUpdateOne {
	if v != nil {
		_u.SetShowInTag(*v)
	}
	return _u
}

// AddDurationIDs adds the "durations" edge to the StationDuration entity by IDs.
func (_u *LocationUpdateOne) AddDurationIDs(ids ...int) *LocationUpdateOne {
	_u.mutation.AddDurationIDs(ids...)
	return _u
}

// AddDurations adds the "durations" edges to the StationDuration entity.
func (_u *LocationUpdateOne) AddDurations(v ...*StationDuration) *LocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDurationIDs(ids...)
}

// Mutation returns the LocationMutation object of the builder.
func (_u *LocationUpdateOne) Mutation() *LocationMutation {
	return _u.mutation
}

// ClearDurations clears all "durations" edges to the StationDuration entity.
func (_u *LocationUpdateOne) ClearDurations() *LocationUpdateOne {
	_u.mutation.ClearDurations()
	return _u
}

// RemoveDurationIDs removes the "durations" edge to StationDuration entities by IDs.
func (_u *LocationUpdateOne) RemoveDurationIDs(ids ...int) *LocationUpdateOne {
	_u.mutation.RemoveDurationIDs(ids...)
	return _u
}

// RemoveDurations removes "durations" edges to StationDuration entities.
func (_u *LocationUpdateOne) RemoveDurations(v ...*StationDuration) *LocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDurationIDs(ids...)
}

// Where appends a list predicates to the LocationUpdate builder.
func (_u *LocationUpdateOne) Where(ps ...predicate.Location) *LocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocationUpdateOne) Select(field string, fields ...string) *LocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Location entity.
func (_u *LocationUpdateOne) Save(ctx context.Context) (*Location, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationUpdateOne) SaveX(ctx context.Context) *Location {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := location.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Location.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LocationUpdateOne) sqlSave(ctx context.Context) (_node *Location, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(location.Table, location.Columns, sqlgraph.NewFieldSpec(location.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Location.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, location.FieldID)
		for _, f := range fields {
			if !location.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != location.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(location.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(location.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(location.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShowInTag(); ok {
		_spec.SetField(location.FieldShowInTag, field.TypeBool, value)
	}
	if _u.mutation.DurationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.DurationsTable,
			Columns: []string{location.DurationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDurationsIDs(); len(nodes) > 0 && !_u.mutation.DurationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.DurationsTable,
			Columns: []string{location.DurationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DurationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.DurationsTable,
			Columns: []string{location.DurationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Location{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{location.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
