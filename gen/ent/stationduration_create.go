// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fyang93/housing-ocr/gen/ent/location"
	"github.com/fyang93/housing-ocr/gen/ent/stationduration"
)

// StationDurationCreate is the builder for creating a StationDuration entity.
type StationDurationCreate struct {
	config
	mutation *StationDurationMutation
	hooks    []Hook
}

// SetStationName sets the "station_name" field.
func (_c *StationDurationCreate) SetStationName(v string) *StationDurationCreate {
	_c.mutation.SetStationName(v)
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *StationDurationCreate) SetLocationID(v int) *StationDurationCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *StationDurationCreate) SetDuration(v int) *StationDurationCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetLocation sets the "location" edge to the Location entity.
func (_c *StationDurationCreate) SetLocation(v *Location) *StationDurationCreate {
	return _c.SetLocationID(v.ID)
}

// Mutation returns the StationDurationMutation object of the builder.
func (_c *StationDurationCreate) Mutation() *StationDurationMutation {
	return _c.mutation
}

// Save creates the StationDuration in the database.
func (_c *StationDurationCreate) Save(ctx context.Context) (*StationDuration, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StationDurationCreate) SaveX(ctx context.Context) *StationDuration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StationDurationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StationDurationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StationDurationCreate) check() error {
	if _, ok := _c.mutation.StationName(); !ok {
		return &ValidationError{Name: "station_name", err: errors.New(`ent: missing required field "StationDuration.station_name"`)}
	}
	if v, ok := _c.mutation.StationName(); ok {
		if err := stationduration.StationNameValidator(v); err != nil {
			return &ValidationError{Name: "station_name", err: fmt.Errorf(`ent: validator failed for field "StationDuration.station_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`ent: missing required field "StationDuration.location_id"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "StationDuration.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := stationduration.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "StationDuration.duration": %w`, err)}
		}
	}
	if len(_c.mutation.LocationIDs()) == 0 {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required edge "StationDuration.location"`)}
	}
	return nil
}

func (_c *StationDurationCreate) sqlSave(ctx context.Context) (*StationDuration, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StationDurationCreate) createSpec() (*StationDuration, *sqlgraph.CreateSpec) {
	var (
		_node = &StationDuration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stationduration.Table, sqlgraph.NewFieldSpec(stationduration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StationName(); ok {
		_spec.SetField(stationduration.FieldStationName, field.TypeString, value)
		_node.StationName = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(stationduration.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	if nodes := _c.mutation.LocationIDs(); len(nodes) > 0 {
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
		_node.LocationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StationDurationCreateBulk is the builder for creating many StationDuration entities in bulk.
type StationDurationCreateBulk struct {
	config
	err      error
	builders []*StationDurationCreate
}

// Save creates the StationDuration entities in the database.
func (_c *StationDurationCreateBulk) Save(ctx context.Context) ([]*StationDuration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StationDuration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StationDurationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StationDurationCreateBulk) SaveX(ctx context.Context) []*StationDuration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StationDurationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StationDurationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
