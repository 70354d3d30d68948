package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CardResult is one judged card within a session. Append-only: created
// exactly once per card answered, never updated.
type CardResult struct {
	ent.Schema
}

func (CardResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("card_id").
			Comment("The card that was judged. Kept as a plain id rather than an edge so results survive card edits"),
		field.Bool("is_correct"),
		field.Int("time_spent_ms").
			Default(0).
			Comment("Wall-clock delta from card entry to judgment; 0 when not measured"),
		field.Time("answered_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CardResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("results").
			Unique().
			Required(),
	}
}

func (CardResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("is_correct"),
	}
}
