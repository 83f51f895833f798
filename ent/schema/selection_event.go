package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SelectionEvent records which question was served and how it was chosen.
type SelectionEvent struct {
	ent.Schema
}

func (SelectionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SelectionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("strategy").
			NotEmpty().
			Comment("ranked, fallback, first_attempt, or max_info"),
		field.String("explanation").
			Default("").
			Comment("Learner-facing reason the question was chosen"),
	}
}

func (SelectionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("strategy"),
	}
}
