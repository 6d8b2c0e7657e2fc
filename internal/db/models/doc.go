// Package models contains database model definitions.
//
// Each entity declares its full persisted shape plus the derived payload
// shapes accepted on the write paths: an Insert type covering the fields a
// client may supply on creation (excluding server-assigned id and
// timestamps) and, for mutable entities, an Update type whose pointer
// fields allow any subset of the insertable fields.
package models
