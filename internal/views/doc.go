// Package views provides the built-in materialized views.
//
//   - users: every user document, unchanged
//   - matches: scored pairs of users that meet each other's requirement
//   - messages: messages grouped into conversations, oldest first
//
// Views are stateless; the view engine owns their indexes and aggregates.
package views
