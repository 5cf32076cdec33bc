// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for hedgewatch: note metadata,
// configuration, and the error taxonomy used across the watch cycle.
package types

// Metadata holds the lightweight description of a HedgeDoc note returned by
// its info endpoint. A fresh value is produced on every poll.
type Metadata struct {
	// Title is the note title as rendered by HedgeDoc.
	Title string `json:"title" yaml:"title"`

	// LastModified is the note's revision marker ("updatetime"). It is an
	// opaque token compared for equality only and never parsed.
	LastModified string `json:"updatetime" yaml:"updatetime"`

	// Description is the note description, empty when the note has none.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ViewCount is the number of times the note was viewed.
	ViewCount int `json:"viewcount" yaml:"viewcount"`

	// CreatedAt is the note creation marker ("createtime"), kept opaque.
	CreatedAt string `json:"createtime,omitempty" yaml:"createtime,omitempty"`
}
