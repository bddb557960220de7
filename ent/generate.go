// Package ent holds the generated entity client for the engine's persisted
// types. Regenerate after editing the schemas under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
