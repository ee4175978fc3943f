package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StationDuration records travel minutes from one station to one location.
// Keyed by (station_name, location) so re-submitting is an upsert.
type StationDuration struct{ ent.Schema }

func (StationDuration) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "station_durations"},
	}
}

func (StationDuration) Fields() []ent.Field {
	return []ent.Field{
		field.String("station_name").NotEmpty(),
		field.Int("location_id"),
		field.Int("duration").NonNegative(), // minutes
	}
}

func (StationDuration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("location", Location.Type).
			Ref("durations").
			Field("location_id").
			Unique().
			Required(),
	}
}

func (StationDuration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("station_name", "location_id").Unique(),
		index.Fields("station_name"),
		index.Fields("location_id"),
	}
}
