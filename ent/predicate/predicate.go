// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CallbackRecord is the predicate function for callbackrecord builders.
type CallbackRecord func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// SkillRecord is the predicate function for skillrecord builders.
type SkillRecord func(*sql.Selector)
