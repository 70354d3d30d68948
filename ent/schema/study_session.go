package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession records one pass through a deck: created at run start,
// updated once per card result via CardResult rows, and stamped with
// totals at completion.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owner of the run; sessions are never shared"),
		field.Int("total_cards").
			NonNegative(),
		field.Int("correct_count").
			Default(0),
		field.Int("incorrect_count").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set by Finalize; nil while the run is in progress or abandoned"),
	}
}

func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deck", Deck.Type).
			Ref("sessions").
			Unique().
			Required(),
		edge.To("results", CardResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("started_at"),
	}
}
