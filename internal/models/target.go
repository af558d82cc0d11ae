// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package models

import (
	"fmt"
	"time"
)

// TargetKind identifies what a like or notification points at.
type TargetKind int

const (
	// TargetUnknown is the zero value and is never valid.
	TargetUnknown TargetKind = iota
	TargetPost
	TargetComment
	TargetReply
	TargetArticle
	TargetCollege
)

// String returns the stable storage and wire name of the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetPost:
		return "post"
	case TargetComment:
		return "comment"
	case TargetReply:
		return "reply"
	case TargetArticle:
		return "article"
	case TargetCollege:
		return "college"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k TargetKind) Valid() bool {
	return k >= TargetPost && k <= TargetCollege
}

// ParseTargetKind converts a wire name back to a TargetKind.
func ParseTargetKind(s string) (TargetKind, error) {
	switch s {
	case "post":
		return TargetPost, nil
	case "comment":
		return TargetComment, nil
	case "reply":
		return TargetReply, nil
	case "article":
		return TargetArticle, nil
	case "college":
		return TargetCollege, nil
	default:
		return TargetUnknown, fmt.Errorf("unknown target kind %q", s)
	}
}

// TargetKindNames lists the wire names of every valid kind, in declaration order.
func TargetKindNames() []string {
	names := make([]string, 0, int(TargetCollege))
	for k := TargetPost; k <= TargetCollege; k++ {
		names = append(names, k.String())
	}
	return names
}

// MarshalText encodes the kind by name so JSON payloads stay readable.
func (k TargetKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal target kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *TargetKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTargetKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Target addresses a single likeable entity.
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

// Like is a user's like of a Target.
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Target    Target    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}
