package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records a hint shown to the learner.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("level").
			Comment("Escalation level, 1 is the gentlest"),
		field.String("hint_text").NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("llm or fallback"),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
