// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "key_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "encrypted_secret", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "last_failure_at", Type: field.TypeTime, Nullable: true},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "monthly_budget", Type: field.TypeFloat64, Default: 0},
		{Name: "current_spend", Type: field.TypeFloat64, Default: 0},
		{Name: "last_spend_reset", Type: field.TypeTime},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ok", "error"}, Default: "ok"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_provider_active",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1], APIKeysColumns[10]},
			},
		},
	}
	// APIUsageLogsColumns holds the columns for the "api_usage_logs" table.
	APIUsageLogsColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "key_id", Type: field.TypeString},
	}
	// APIUsageLogsTable holds the schema information for the "api_usage_logs" table.
	APIUsageLogsTable = &schema.Table{
		Name:       "api_usage_logs",
		Columns:    APIUsageLogsColumns,
		PrimaryKey: []*schema.Column{APIUsageLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_usage_logs_api_keys_usage_logs",
				Columns:    []*schema.Column{APIUsageLogsColumns[7]},
				RefColumns: []*schema.Column{APIKeysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apiusagelog_created_at",
				Unique:  false,
				Columns: []*schema.Column{APIUsageLogsColumns[6]},
			},
			{
				Name:    "apiusagelog_key_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{APIUsageLogsColumns[7], APIUsageLogsColumns[6]},
			},
			{
				Name:    "apiusagelog_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{APIUsageLogsColumns[1], APIUsageLogsColumns[6]},
			},
		},
	}
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"head", "council", "lead", "task"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"initializing", "active", "idle_working", "idle_paused", "deliberating", "working", "reviewing", "suspended", "terminated"}, Default: "initializing"},
		{Name: "persistent", Type: field.TypeBool, Default: false},
		{Name: "ethos", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "preferred_config_id", Type: field.TypeString, Nullable: true},
		{Name: "saved_config_id", Type: field.TypeString, Nullable: true},
		{Name: "recent_violations", Type: field.TypeInt, Default: 0},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_agents_children",
				Columns:    []*schema.Column{AgentsColumns[10]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_parent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[10]},
			},
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
			{
				Name:    "agent_tier_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[2]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_actor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[5]},
			},
		},
	}
	// CapabilityOverridesColumns holds the columns for the "capability_overrides" table.
	CapabilityOverridesColumns = []*schema.Column{
		{Name: "override_id", Type: field.TypeString, Unique: true},
		{Name: "capability", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"grant", "revoke"}},
		{Name: "granted_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// CapabilityOverridesTable holds the schema information for the "capability_overrides" table.
	CapabilityOverridesTable = &schema.Table{
		Name:       "capability_overrides",
		Columns:    CapabilityOverridesColumns,
		PrimaryKey: []*schema.Column{CapabilityOverridesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "capability_overrides_agents_capability_overrides",
				Columns:    []*schema.Column{CapabilityOverridesColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "capabilityoverride_agent_id_capability",
				Unique:  true,
				Columns: []*schema.Column{CapabilityOverridesColumns[6], CapabilityOverridesColumns[1]},
			},
		},
	}
	// CriticReviewsColumns holds the columns for the "critic_reviews" table.
	CriticReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "critic_id", Type: field.TypeString},
		{Name: "critic_type", Type: field.TypeEnum, Enums: []string{"code-critic", "output-critic", "plan-critic"}},
		{Name: "submission_hash", Type: field.TypeString},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"pass", "reject", "escalate"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "cached", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CriticReviewsTable holds the schema information for the "critic_reviews" table.
	CriticReviewsTable = &schema.Table{
		Name:       "critic_reviews",
		Columns:    CriticReviewsColumns,
		PrimaryKey: []*schema.Column{CriticReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "critic_reviews_tasks_critic_reviews",
				Columns:    []*schema.Column{CriticReviewsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "criticreview_task_id_submission_hash",
				Unique:  false,
				Columns: []*schema.Column{CriticReviewsColumns[10], CriticReviewsColumns[3]},
			},
			{
				Name:    "criticreview_critic_id",
				Unique:  false,
				Columns: []*schema.Column{CriticReviewsColumns[1]},
			},
		},
	}
	// DeliberationsColumns holds the columns for the "deliberations" table.
	DeliberationsColumns = []*schema.Column{
		{Name: "deliberation_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString, Size: 2147483647},
		{Name: "opened_by", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "resolved", "dismissed"}, Default: "open"},
		{Name: "resolution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
	}
	// DeliberationsTable holds the schema information for the "deliberations" table.
	DeliberationsTable = &schema.Table{
		Name:       "deliberations",
		Columns:    DeliberationsColumns,
		PrimaryKey: []*schema.Column{DeliberationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deliberations_tasks_deliberations",
				Columns:    []*schema.Column{DeliberationsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deliberation_status",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[3]},
			},
			{
				Name:    "deliberation_task_id",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[7]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "language", Type: field.TypeString, Default: "python"},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "blocked"}, Default: "pending"},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
		{Name: "security_result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executions_agents_executions",
				Columns:    []*schema.Column{ExecutionsColumns[12]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "execution_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[12], ExecutionsColumns[5]},
			},
			{
				Name:    "execution_task_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1]},
			},
		},
	}
	// ModelConfigsColumns holds the columns for the "model_configs" table.
	ModelConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// ModelConfigsTable holds the schema information for the "model_configs" table.
	ModelConfigsTable = &schema.Table{
		Name:       "model_configs",
		Columns:    ModelConfigsColumns,
		PrimaryKey: []*schema.Column{ModelConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "model_configs_agents_model_configs",
				Columns:    []*schema.Column{ModelConfigsColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "modelconfig_agent_id_model",
				Unique:  true,
				Columns: []*schema.Column{ModelConfigsColumns[6], ModelConfigsColumns[1]},
			},
		},
	}
	// SandboxRecordsColumns holds the columns for the "sandbox_records" table.
	SandboxRecordsColumns = []*schema.Column{
		{Name: "sandbox_id", Type: field.TypeString, Unique: true},
		{Name: "container_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "image", Type: field.TypeString},
		{Name: "network_mode", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "destroyed_at", Type: field.TypeTime, Nullable: true},
		{Name: "destroy_reason", Type: field.TypeString, Nullable: true},
	}
	// SandboxRecordsTable holds the schema information for the "sandbox_records" table.
	SandboxRecordsTable = &schema.Table{
		Name:       "sandbox_records",
		Columns:    SandboxRecordsColumns,
		PrimaryKey: []*schema.Column{SandboxRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxRecordsColumns[2]},
			},
			{
				Name:    "sandboxrecord_destroyed_at_created_at",
				Unique:  false,
				Columns: []*schema.Column{SandboxRecordsColumns[6], SandboxRecordsColumns[5]},
			},
		},
	}
	// SystemSettingsColumns holds the columns for the "system_settings" table.
	SystemSettingsColumns = []*schema.Column{
		{Name: "setting_key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SystemSettingsTable holds the schema information for the "system_settings" table.
	SystemSettingsTable = &schema.Table{
		Name:       "system_settings",
		Columns:    SystemSettingsColumns,
		PrimaryKey: []*schema.Column{SystemSettingsColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "deliberating", "approved", "rejected", "delegating", "assigned", "in_progress", "review", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"sovereign", "critical", "high", "normal", "low", "idle"}, Default: "normal"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_agents_tasks",
				Columns:    []*schema.Column{TasksColumns[13]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13], TasksColumns[4]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"TASK_CREATED", "STATUS_CHANGED", "PROGRESS_UPDATED", "RETRY_SCHEDULED", "COMPLETED", "FAILED", "CANCELLED"}},
		{Name: "seq", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_events_tasks_events",
				Columns:    []*schema.Column{TaskEventsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_task_id_occurred_at_seq",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[5], TaskEventsColumns[4], TaskEventsColumns[2]},
			},
		},
	}
	// VotesColumns holds the columns for the "votes" table.
	VotesColumns = []*schema.Column{
		{Name: "vote_id", Type: field.TypeString, Unique: true},
		{Name: "voter_id", Type: field.TypeString},
		{Name: "choice", Type: field.TypeEnum, Enums: []string{"approve", "reject", "abstain"}},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deliberation_id", Type: field.TypeString},
	}
	// VotesTable holds the schema information for the "votes" table.
	VotesTable = &schema.Table{
		Name:       "votes",
		Columns:    VotesColumns,
		PrimaryKey: []*schema.Column{VotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "votes_deliberations_votes",
				Columns:    []*schema.Column{VotesColumns[5]},
				RefColumns: []*schema.Column{DeliberationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vote_deliberation_id_voter_id",
				Unique:  true,
				Columns: []*schema.Column{VotesColumns[5], VotesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		APIUsageLogsTable,
		AgentsTable,
		AuditLogsTable,
		CapabilityOverridesTable,
		CriticReviewsTable,
		DeliberationsTable,
		ExecutionsTable,
		ModelConfigsTable,
		SandboxRecordsTable,
		SystemSettingsTable,
		TasksTable,
		TaskEventsTable,
		VotesTable,
	}
)

func init() {
	APIUsageLogsTable.ForeignKeys[0].RefTable = APIKeysTable
	AgentsTable.ForeignKeys[0].RefTable = AgentsTable
	CapabilityOverridesTable.ForeignKeys[0].RefTable = AgentsTable
	CriticReviewsTable.ForeignKeys[0].RefTable = TasksTable
	DeliberationsTable.ForeignKeys[0].RefTable = TasksTable
	ExecutionsTable.ForeignKeys[0].RefTable = AgentsTable
	ModelConfigsTable.ForeignKeys[0].RefTable = AgentsTable
	TasksTable.ForeignKeys[0].RefTable = AgentsTable
	TaskEventsTable.ForeignKeys[0].RefTable = TasksTable
	VotesTable.ForeignKeys[0].RefTable = DeliberationsTable
}
