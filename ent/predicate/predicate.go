// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// APIUsageLog is the predicate function for apiusagelog builders.
type APIUsageLog func(*sql.Selector)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CapabilityOverride is the predicate function for capabilityoverride builders.
type CapabilityOverride func(*sql.Selector)

// CriticReview is the predicate function for criticreview builders.
type CriticReview func(*sql.Selector)

// Deliberation is the predicate function for deliberation builders.
type Deliberation func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ModelConfig is the predicate function for modelconfig builders.
type ModelConfig func(*sql.Selector)

// SandboxRecord is the predicate function for sandboxrecord builders.
type SandboxRecord func(*sql.Selector)

// SystemSetting is the predicate function for systemsetting builders.
type SystemSetting func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskEvent is the predicate function for taskevent builders.
type TaskEvent func(*sql.Selector)

// Vote is the predicate function for vote builders.
type Vote func(*sql.Selector)
