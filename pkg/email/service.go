package email

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

// Timestamps in notification bodies use the company's local timezone, like
// the admin tooling does.
var tunisLocation = loadTunisLocation()

func loadTunisLocation() *time.Location {
	loc, err := time.LoadLocation("Africa/Tunis")
	if err != nil {
		return time.Local
	}
	return loc
}

// Service renders notification emails and hands them to the configured
// mailer. It owns the operator addresses so callers only supply content.
type Service struct {
	mailer    Mailer
	fromName  string
	from      string
	to        string
	templates *template.Template
}

type ContactNotificationData struct {
	ContactID uint
	Name      string
	Company   string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IPAddress string
	Timestamp string
}

type DailyReportData struct {
	Date                string
	NewContacts         int64
	PendingTestimonials int64
}

func NewService(mailer Mailer, from, to string) (*Service, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %w", err)
	}

	return &Service{
		mailer:    mailer,
		fromName:  "Forge3D Contact Form",
		from:      from,
		to:        to,
		templates: templates,
	}, nil
}

// OperatorAddress is the fixed recipient of all notification emails.
func (s *Service) OperatorAddress() string {
	return s.to
}

// FormatTimestamp renders t the way notification bodies expect it.
func FormatTimestamp(t time.Time) string {
	return t.In(tunisLocation).Format("02/01/2006 15:04:05")
}

// BuildContactNotification renders the notification for one contact request.
// The message is returned rather than sent so the caller can log its content
// whatever the delivery outcome.
func (s *Service) BuildContactNotification(data ContactNotificationData) (*Message, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "contact_notification.txt", data); err != nil {
		return nil, fmt.Errorf("template execution error: %w", err)
	}

	subject := fmt.Sprintf("Nouveau contact: %s - %s", data.Subject, data.Name)
	return NewMessage(s.fromName, s.from, s.to, data.Email, subject, body.String()), nil
}

// Send delivers a previously built message.
func (s *Service) Send(msg *Message) error {
	return s.mailer.Send(msg)
}

// SendDailyReport mails the operator a summary of the day's submissions.
func (s *Service) SendDailyReport(data DailyReportData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "daily_report.txt", data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	subject := fmt.Sprintf("Rapport quotidien Forge3D - %s", data.Date)
	return s.mailer.Send(NewMessage(s.fromName, s.from, s.to, "", subject, body.String()))
}
