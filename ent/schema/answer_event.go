package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded attempt at a question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Question the learner attempted"),
		field.String("topic").
			NotEmpty().
			Comment("Concept the question belongs to"),
		field.Bool("correct").
			Comment("Whether every hidden test passed"),
		field.Float("pass_rate").
			Default(0).
			Comment("Fraction of hidden tests passed"),
		field.Float("time_secs").
			Default(0).
			Comment("Seconds spent on the attempt"),
		field.Float("theta_before").
			Comment("Topic ability estimate before this answer"),
		field.Float("theta_after").
			Comment("Topic ability estimate after this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
