package email

// Notifier sends a plain notification mail to the back office.
// Submission flows treat delivery as best effort: failures are logged
// and never fail the submission.
type Notifier interface {
	Notify(subject, body string) error
}

// NoopNotifier is used when SMTP is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(subject, body string) error {
	return nil
}
