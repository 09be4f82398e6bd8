// Package notify provides implementations of driven.Notifier.
//
// Adapters:
//   - SMTPNotifier: delivers email through an SMTP server (gomail)
//   - LogNotifier: writes notifications to the verbose log
//   - Outbox: keeps notifications in memory
package notify
