// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
// ViewEngine keeps materialized views consistent with the document store.
// UserService, MessageService and MatchService build the matchmaking
// workflow on top of the engine's users, matches and messages views.
// SettingsService reads and writes application settings through a
// driven.ConfigStore and checks matching aspects against the views
// package.
package services
