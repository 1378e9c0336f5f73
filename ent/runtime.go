// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edugen/tka/ent/examresult"
	"github.com/edugen/tka/ent/examsnapshot"
	"github.com/edugen/tka/ent/llmrequestevent"
	"github.com/edugen/tka/ent/schema"
	"github.com/edugen/tka/ent/session"
	"github.com/edugen/tka/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	examresultFields := schema.ExamResult{}.Fields()
	_ = examresultFields
	// examresultDescResultID is the schema descriptor for result_id field.
	examresultDescResultID := examresultFields[0].Descriptor()
	// examresult.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	examresult.ResultIDValidator = examresultDescResultID.Validators[0].(func(string) error)
	// examresultDescUsername is the schema descriptor for username field.
	examresultDescUsername := examresultFields[1].Descriptor()
	// examresult.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	examresult.UsernameValidator = examresultDescUsername.Validators[0].(func(string) error)
	// examresultDescTakenAt is the schema descriptor for taken_at field.
	examresultDescTakenAt := examresultFields[6].Descriptor()
	// examresult.DefaultTakenAt holds the default value on creation for the taken_at field.
	examresult.DefaultTakenAt = examresultDescTakenAt.Default.(func() time.Time)
	examsnapshotFields := schema.ExamSnapshot{}.Fields()
	_ = examsnapshotFields
	// examsnapshotDescUsername is the schema descriptor for username field.
	examsnapshotDescUsername := examsnapshotFields[0].Descriptor()
	// examsnapshot.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	examsnapshot.UsernameValidator = examsnapshotDescUsername.Validators[0].(func(string) error)
	// examsnapshotDescSavedAt is the schema descriptor for saved_at field.
	examsnapshotDescSavedAt := examsnapshotFields[2].Descriptor()
	// examsnapshot.DefaultSavedAt holds the default value on creation for the saved_at field.
	examsnapshot.DefaultSavedAt = examsnapshotDescSavedAt.Default.(func() time.Time)
	// examsnapshot.UpdateDefaultSavedAt holds the default value on update for the saved_at field.
	examsnapshot.UpdateDefaultSavedAt = examsnapshotDescSavedAt.UpdateDefault.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUsername is the schema descriptor for username field.
	sessionDescUsername := sessionFields[1].Descriptor()
	// session.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	session.UsernameValidator = sessionDescUsername.Validators[0].(func(string) error)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[2].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPassword is the schema descriptor for password field.
	userDescPassword := userFields[1].Descriptor()
	// user.PasswordValidator is a validator for the "password" field. It is called by the builders before save.
	user.PasswordValidator = userDescPassword.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
