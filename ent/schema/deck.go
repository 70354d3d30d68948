package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deck is a named collection of cards owned by one user.
type Deck struct {
	ent.Schema
}

func (Deck) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").
			NotEmpty().
			Immutable().
			Comment("Identity provider user id of the owner"),
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.String("description").
			Default("").
			MaxLen(500),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Deck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cards", Card.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", StudySession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Deck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
