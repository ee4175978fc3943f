package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Location is a user-defined destination (office, school) that station travel
// times are measured against.
type Location struct{ ent.Schema }

func (Location) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "locations"},
	}
}

func (Location) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.Int("display_order").Default(0),
		field.Bool("show_in_tag").Default(false),
	}
}

func (Location) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("durations", StationDuration.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Location) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
