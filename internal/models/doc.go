// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package models defines the value types shared across the capstone service.

College mirrors a catalog row. Any numeric feature may be nil; consumers
substitute configured defaults instead of failing. Values handed to the
recommendation and resolution packages are treated as read-only.

Likes and notifications address their subject through Target, a tagged
TargetKind plus an id, so every dispatch site switches over a closed set
of kinds.
*/
package models
