package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a concept status transition for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept").NotEmpty(),
		field.String("from_status").NotEmpty(),
		field.String("to_status").NotEmpty(),
		field.Float("theta").
			Comment("Ability estimate that triggered the transition"),
		field.Strings("unlocked").
			Optional().
			Comment("Dependent concepts opened by this transition"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept"),
	}
}
