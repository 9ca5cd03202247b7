// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views holds the page view-models: everything between a normalized
API record and a rendered template.

# Vote Kinds

A topic's vote_type becomes a VoteKind:

	kind := views.TopicKind(topic) // Binary{...} or Choice{...}
	opts := views.Options(kind)

Binary yields Pass (1) and Fail (2), both labeled with the target
participant. Choice yields one option per participant with the 1-based
position as its value.

# Results

BuildResult labels the tally with the same Options list, so tally key k
always names the option whose value was k. Missing keys become zero-vote
bars. Bars sort by votes descending; ties keep option order.

# Comments

Composer and Deletion are the create and delete flows as value-typed state
machines. Every failure collapses to MsgPostFailed or MsgDeleteFailed.

# Formatting

CalcPercent, FormatPercent, FormatCount, FormatRelative and EmbedURL.
*/
package views
