// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CallbackRecordsColumns holds the columns for the "callback_records" table.
	CallbackRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "correlation_token", Type: field.TypeString, Unique: true},
		{Name: "skill_name", Type: field.TypeString},
		{Name: "deadline_ts", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "consumed_at", Type: field.TypeTime, Nullable: true},
		{Name: "thread_id", Type: field.TypeString},
	}
	// CallbackRecordsTable holds the schema information for the "callback_records" table.
	CallbackRecordsTable = &schema.Table{
		Name:       "callback_records",
		Columns:    CallbackRecordsColumns,
		PrimaryKey: []*schema.Column{CallbackRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "callback_records_runs_callbacks",
				Columns:    []*schema.Column{CallbackRecordsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "callbackrecord_thread_id",
				Unique:  false,
				Columns: []*schema.Column{CallbackRecordsColumns[6]},
			},
			{
				Name:    "callbackrecord_deadline_ts",
				Unique:  false,
				Columns: []*schema.Column{CallbackRecordsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "consumed_at IS NULL",
				},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "checkpoint_ns", Type: field.TypeString, Default: ""},
		{Name: "parent_checkpoint_id", Type: field.TypeString, Nullable: true},
		{Name: "ts", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "channel_values", Type: field.TypeJSON},
		{Name: "channel_versions", Type: field.TypeJSON, Nullable: true},
		{Name: "pending_writes", Type: field.TypeJSON, Nullable: true},
		{Name: "active_skill", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "run_name", Type: field.TypeString, Nullable: true},
		{Name: "sop_preview", Type: field.TypeString, Nullable: true},
		{Name: "thread_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_runs_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[12]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_thread_id_ts",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[12], CheckpointsColumns[3]},
			},
			{
				Name:    "checkpoint_workspace_id_ts",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[4], CheckpointsColumns[3]},
			},
			{
				Name:    "checkpoint_thread_id_parent_checkpoint_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[12], CheckpointsColumns[2]},
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "ref", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "dsn", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credential_owner_id_ref",
				Unique:  true,
				Columns: []*schema.Column{CredentialsColumns[1], CredentialsColumns[2]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "run_name", Type: field.TypeString, Nullable: true},
		{Name: "sop", Type: field.TypeString, Size: 2147483647},
		{Name: "initial_data", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "error"}, Default: "pending"},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "parent_thread_id", Type: field.TypeString, Nullable: true},
		{Name: "llm_model", Type: field.TypeString, Nullable: true},
		{Name: "ack_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "active_skill", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeJSON, Nullable: true},
		{Name: "resume_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "callback_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4]},
			},
			{
				Name:    "run_owner_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[5]},
			},
			{
				Name:    "run_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[14]},
			},
			{
				Name:    "run_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6], RunsColumns[4]},
			},
			{
				Name:    "run_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[18]},
			},
		},
	}
	// SkillRecordsColumns holds the columns for the "skill_records" table.
	SkillRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "is_public", Type: field.TypeBool, Default: false},
		{Name: "manifest", Type: field.TypeString, Size: 2147483647},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SkillRecordsTable holds the schema information for the "skill_records" table.
	SkillRecordsTable = &schema.Table{
		Name:       "skill_records",
		Columns:    SkillRecordsColumns,
		PrimaryKey: []*schema.Column{SkillRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillrecord_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{SkillRecordsColumns[2]},
			},
			{
				Name:    "skillrecord_name_workspace_id",
				Unique:  true,
				Columns: []*schema.Column{SkillRecordsColumns[1], SkillRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CallbackRecordsTable,
		CheckpointsTable,
		CredentialsTable,
		RunsTable,
		SkillRecordsTable,
	}
)

func init() {
	CallbackRecordsTable.ForeignKeys[0].RefTable = RunsTable
	CheckpointsTable.ForeignKeys[0].RefTable = RunsTable
}
