// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package normalize turns raw API payloads into models records.

The voting API's field names and envelopes are not stable, so each payload
type has one coercion function:

	programs, err := normalize.Programs(body) // [], {data:[]}, {programs:[]}
	topic, err := normalize.Topic(body)       // {...} or {data:{...}}
	agg, err := normalize.Results(body)       // {success, data:{public_votes...}}

# Aliases

Every field has a priority-ordered alias list and the first non-empty value
wins, e.g. image_url → imgUrl → imageUrl, created_at → createdAt.

# Coercion

Values are weakly decoded with mapstructure, so "5", 5 and 5.0 all become the
int 5 and numeric ids become strings where a string is declared. null and
unconvertible values become the zero value.

# Errors

Missing fields never fail: they default to "" or 0. Records without an
identifying field are dropped from lists. A payload that cannot be read at
all (invalid JSON, wrong shape, success:false) returns *Error, which matches
ErrMalformed:

	if errors.Is(err, normalize.ErrMalformed) { ... }
*/
package normalize
