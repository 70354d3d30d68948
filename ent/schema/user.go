package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User mirrors the identity provider's user record with the billing flags
// the server needs locally. Rows are created and updated exclusively by the
// billing webhook; a request for an unknown user id gets free-tier defaults
// without creating a row.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Identity provider user id"),
		field.String("email").
			Default("").
			Comment("Primary email, if the webhook supplied one"),
		field.String("plan").
			Default("free_user").
			Comment("Plan label from the billing provider"),
		field.Bool("unlimited_decks").
			Default(false).
			Comment("Entitlement: no deck count limit"),
		field.Bool("ai_generation").
			Default(false).
			Comment("Entitlement: AI tutoring and card generation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
