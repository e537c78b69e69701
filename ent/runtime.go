// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/auditlog"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/sandboxrecord"
	"github.com/agentium/agentium/ent/schema"
	"github.com/agentium/agentium/ent/systemsetting"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
	"github.com/agentium/agentium/ent/vote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescPriority is the schema descriptor for priority field.
	apikeyDescPriority := apikeyFields[3].Descriptor()
	// apikey.DefaultPriority holds the default value on creation for the priority field.
	apikey.DefaultPriority = apikeyDescPriority.Default.(int)
	// apikeyDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	apikeyDescConsecutiveFailures := apikeyFields[4].Descriptor()
	// apikey.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	apikey.DefaultConsecutiveFailures = apikeyDescConsecutiveFailures.Default.(int)
	// apikeyDescMonthlyBudget is the schema descriptor for monthly_budget field.
	apikeyDescMonthlyBudget := apikeyFields[7].Descriptor()
	// apikey.DefaultMonthlyBudget holds the default value on creation for the monthly_budget field.
	apikey.DefaultMonthlyBudget = apikeyDescMonthlyBudget.Default.(float64)
	// apikeyDescCurrentSpend is the schema descriptor for current_spend field.
	apikeyDescCurrentSpend := apikeyFields[8].Descriptor()
	// apikey.DefaultCurrentSpend holds the default value on creation for the current_spend field.
	apikey.DefaultCurrentSpend = apikeyDescCurrentSpend.Default.(float64)
	// apikeyDescLastSpendReset is the schema descriptor for last_spend_reset field.
	apikeyDescLastSpendReset := apikeyFields[9].Descriptor()
	// apikey.DefaultLastSpendReset holds the default value on creation for the last_spend_reset field.
	apikey.DefaultLastSpendReset = apikeyDescLastSpendReset.Default.(func() time.Time)
	// apikeyDescActive is the schema descriptor for active field.
	apikeyDescActive := apikeyFields[10].Descriptor()
	// apikey.DefaultActive holds the default value on creation for the active field.
	apikey.DefaultActive = apikeyDescActive.Default.(bool)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[12].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	apiusagelogFields := schema.APIUsageLog{}.Fields()
	_ = apiusagelogFields
	// apiusagelogDescInputTokens is the schema descriptor for input_tokens field.
	apiusagelogDescInputTokens := apiusagelogFields[4].Descriptor()
	// apiusagelog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	apiusagelog.DefaultInputTokens = apiusagelogDescInputTokens.Default.(int)
	// apiusagelogDescOutputTokens is the schema descriptor for output_tokens field.
	apiusagelogDescOutputTokens := apiusagelogFields[5].Descriptor()
	// apiusagelog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	apiusagelog.DefaultOutputTokens = apiusagelogDescOutputTokens.Default.(int)
	// apiusagelogDescCost is the schema descriptor for cost field.
	apiusagelogDescCost := apiusagelogFields[6].Descriptor()
	// apiusagelog.DefaultCost holds the default value on creation for the cost field.
	apiusagelog.DefaultCost = apiusagelogDescCost.Default.(float64)
	// apiusagelogDescCreatedAt is the schema descriptor for created_at field.
	apiusagelogDescCreatedAt := apiusagelogFields[7].Descriptor()
	// apiusagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	apiusagelog.DefaultCreatedAt = apiusagelogDescCreatedAt.Default.(func() time.Time)
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescPersistent is the schema descriptor for persistent field.
	agentDescPersistent := agentFields[4].Descriptor()
	// agent.DefaultPersistent holds the default value on creation for the persistent field.
	agent.DefaultPersistent = agentDescPersistent.Default.(bool)
	// agentDescRecentViolations is the schema descriptor for recent_violations field.
	agentDescRecentViolations := agentFields[8].Descriptor()
	// agent.DefaultRecentViolations holds the default value on creation for the recent_violations field.
	agent.DefaultRecentViolations = agentDescRecentViolations.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[10].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[5].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	capabilityoverrideFields := schema.CapabilityOverride{}.Fields()
	_ = capabilityoverrideFields
	// capabilityoverrideDescCreatedAt is the schema descriptor for created_at field.
	capabilityoverrideDescCreatedAt := capabilityoverrideFields[5].Descriptor()
	// capabilityoverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	capabilityoverride.DefaultCreatedAt = capabilityoverrideDescCreatedAt.Default.(func() time.Time)
	// capabilityoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	capabilityoverrideDescUpdatedAt := capabilityoverrideFields[6].Descriptor()
	// capabilityoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	capabilityoverride.DefaultUpdatedAt = capabilityoverrideDescUpdatedAt.Default.(func() time.Time)
	// capabilityoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	capabilityoverride.UpdateDefaultUpdatedAt = capabilityoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	criticreviewFields := schema.CriticReview{}.Fields()
	_ = criticreviewFields
	// criticreviewDescCached is the schema descriptor for cached field.
	criticreviewDescCached := criticreviewFields[9].Descriptor()
	// criticreview.DefaultCached holds the default value on creation for the cached field.
	criticreview.DefaultCached = criticreviewDescCached.Default.(bool)
	// criticreviewDescCreatedAt is the schema descriptor for created_at field.
	criticreviewDescCreatedAt := criticreviewFields[10].Descriptor()
	// criticreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	criticreview.DefaultCreatedAt = criticreviewDescCreatedAt.Default.(func() time.Time)
	deliberationFields := schema.Deliberation{}.Fields()
	_ = deliberationFields
	// deliberationDescCreatedAt is the schema descriptor for created_at field.
	deliberationDescCreatedAt := deliberationFields[6].Descriptor()
	// deliberation.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliberation.DefaultCreatedAt = deliberationDescCreatedAt.Default.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescLanguage is the schema descriptor for language field.
	executionDescLanguage := executionFields[4].Descriptor()
	// execution.DefaultLanguage holds the default value on creation for the language field.
	execution.DefaultLanguage = executionDescLanguage.Default.(string)
	// executionDescStartedAt is the schema descriptor for started_at field.
	executionDescStartedAt := executionFields[11].Descriptor()
	// execution.DefaultStartedAt holds the default value on creation for the started_at field.
	execution.DefaultStartedAt = executionDescStartedAt.Default.(func() time.Time)
	modelconfigFields := schema.ModelConfig{}.Fields()
	_ = modelconfigFields
	// modelconfigDescCreatedAt is the schema descriptor for created_at field.
	modelconfigDescCreatedAt := modelconfigFields[5].Descriptor()
	// modelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfig.DefaultCreatedAt = modelconfigDescCreatedAt.Default.(func() time.Time)
	// modelconfigDescUpdatedAt is the schema descriptor for updated_at field.
	modelconfigDescUpdatedAt := modelconfigFields[6].Descriptor()
	// modelconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelconfig.DefaultUpdatedAt = modelconfigDescUpdatedAt.Default.(func() time.Time)
	// modelconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelconfig.UpdateDefaultUpdatedAt = modelconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	sandboxrecordFields := schema.SandboxRecord{}.Fields()
	_ = sandboxrecordFields
	// sandboxrecordDescCreatedAt is the schema descriptor for created_at field.
	sandboxrecordDescCreatedAt := sandboxrecordFields[5].Descriptor()
	// sandboxrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	sandboxrecord.DefaultCreatedAt = sandboxrecordDescCreatedAt.Default.(func() time.Time)
	systemsettingFields := schema.SystemSetting{}.Fields()
	_ = systemsettingFields
	// systemsettingDescUpdatedAt is the schema descriptor for updated_at field.
	systemsettingDescUpdatedAt := systemsettingFields[3].Descriptor()
	// systemsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	systemsetting.DefaultUpdatedAt = systemsettingDescUpdatedAt.Default.(func() time.Time)
	// systemsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	systemsetting.UpdateDefaultUpdatedAt = systemsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[7].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[8].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[9].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[13].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescOccurredAt is the schema descriptor for occurred_at field.
	taskeventDescOccurredAt := taskeventFields[5].Descriptor()
	// taskevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	taskevent.DefaultOccurredAt = taskeventDescOccurredAt.Default.(func() time.Time)
	voteFields := schema.Vote{}.Fields()
	_ = voteFields
	// voteDescCreatedAt is the schema descriptor for created_at field.
	voteDescCreatedAt := voteFields[5].Descriptor()
	// vote.DefaultCreatedAt holds the default value on creation for the created_at field.
	vote.DefaultCreatedAt = voteDescCreatedAt.Default.(func() time.Time)
}
