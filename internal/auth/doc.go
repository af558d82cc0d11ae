// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package auth provides JWT authentication for the API.

Tokens are HS256 signed and carry a user_id claim, matching the access
tokens issued by the original account service, so existing clients keep
working. user_id may be encoded as a JSON number or a numeric string.

# Modes

	jwt   Authorization: Bearer <token> is required on protected routes
	none  every request runs as the anonymous user id 0 (local runs only)

Handlers read the caller with UserIDFromContext:

	userID, ok := auth.UserIDFromContext(r.Context())
*/
package auth
