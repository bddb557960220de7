// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/checkpoint"
	"github.com/weftworks/weft/ent/credential"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/ent/schema"
	"github.com/weftworks/weft/ent/skillrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	callbackrecordFields := schema.CallbackRecord{}.Fields()
	_ = callbackrecordFields
	// callbackrecordDescCreatedAt is the schema descriptor for created_at field.
	callbackrecordDescCreatedAt := callbackrecordFields[5].Descriptor()
	// callbackrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	callbackrecord.DefaultCreatedAt = callbackrecordDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCheckpointNs is the schema descriptor for checkpoint_ns field.
	checkpointDescCheckpointNs := checkpointFields[2].Descriptor()
	// checkpoint.DefaultCheckpointNs holds the default value on creation for the checkpoint_ns field.
	checkpoint.DefaultCheckpointNs = checkpointDescCheckpointNs.Default.(string)
	// checkpointDescTs is the schema descriptor for ts field.
	checkpointDescTs := checkpointFields[4].Descriptor()
	// checkpoint.DefaultTs holds the default value on creation for the ts field.
	checkpoint.DefaultTs = checkpointDescTs.Default.(func() time.Time)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[6].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[14].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	skillrecordFields := schema.SkillRecord{}.Fields()
	_ = skillrecordFields
	// skillrecordDescIsPublic is the schema descriptor for is_public field.
	skillrecordDescIsPublic := skillrecordFields[3].Descriptor()
	// skillrecord.DefaultIsPublic holds the default value on creation for the is_public field.
	skillrecord.DefaultIsPublic = skillrecordDescIsPublic.Default.(bool)
	// skillrecordDescCreatedAt is the schema descriptor for created_at field.
	skillrecordDescCreatedAt := skillrecordFields[6].Descriptor()
	// skillrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	skillrecord.DefaultCreatedAt = skillrecordDescCreatedAt.Default.(func() time.Time)
	// skillrecordDescUpdatedAt is the schema descriptor for updated_at field.
	skillrecordDescUpdatedAt := skillrecordFields[7].Descriptor()
	// skillrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillrecord.DefaultUpdatedAt = skillrecordDescUpdatedAt.Default.(func() time.Time)
	// skillrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillrecord.UpdateDefaultUpdatedAt = skillrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
