package services

import "log"

// Notifier delivers fire-and-forget user-facing notices after write
// operations. Outcomes are never consulted for control flow, matching the
// toast behavior of the web client.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notices to the process log. It stands in for the
// client-side toast when the catalog runs server-side.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (*LogNotifier) Success(message string) {
	log.Printf("✅ %s", message)
}

func (*LogNotifier) Error(message string) {
	log.Printf("❌ %s", message)
}
