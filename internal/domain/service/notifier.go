package service

// Notifier surfaces user-facing outcome messages for mutations, the
// equivalent of toast notifications in a browser client.
type Notifier interface {
	Success(message string)
	Error(message string)
}
