package email

import (
	"bytes"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one outbound plain-text email, fully assembled before delivery
// so the same content can be handed to the SMTP relay and to the email log.
type Message struct {
	FromName  string
	From      string
	To        string
	ReplyTo   string
	Subject   string
	Body      string
	MessageID string
	Date      time.Time
}

// Mailer delivers an assembled message. The SMTP implementation is swapped
// for a fake in tests.
type Mailer interface {
	Send(msg *Message) error
}

// headerOrder fixes the rendering order so a message serializes identically
// every time it is built.
var headerOrder = []string{
	"From", "To", "Reply-To", "Subject", "Date", "Message-ID",
	"MIME-Version", "Content-Type",
}

func NewMessage(fromName, from, to, replyTo, subject, body string) *Message {
	return &Message{
		FromName:  fromName,
		From:      from,
		To:        to,
		ReplyTo:   replyTo,
		Subject:   subject,
		Body:      body,
		MessageID: fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(from)),
		Date:      time.Now(),
	}
}

// Headers returns the SMTP headers of the message. Subjects are Q-encoded so
// accented French text survives the transport.
func (m *Message) Headers() map[string]string {
	headers := map[string]string{
		"From":         fmt.Sprintf("%q <%s>", m.FromName, m.From),
		"To":           m.To,
		"Subject":      mime.QEncoding.Encode("utf-8", m.Subject),
		"Date":         m.Date.Format(time.RFC1123Z),
		"Message-ID":   m.MessageID,
		"MIME-Version": "1.0",
		"Content-Type": `text/plain; charset="UTF-8"`,
	}
	if m.ReplyTo != "" {
		headers["Reply-To"] = m.ReplyTo
	}
	return headers
}

// Bytes renders the full RFC 5322 message.
func (m *Message) Bytes() []byte {
	headers := m.Headers()

	var buf bytes.Buffer
	for _, key := range headerOrder {
		if value, ok := headers[key]; ok {
			buf.WriteString(key)
			buf.WriteString(": ")
			buf.WriteString(value)
			buf.WriteString("\r\n")
		}
	}
	buf.WriteString("\r\n")
	buf.WriteString(m.Body)
	return buf.Bytes()
}

// SMTPMailer sends messages through a plain SMTP relay (STARTTLS is handled
// by net/smtp when the server advertises it).
type SMTPMailer struct {
	host     string
	addr     string
	user     string
	password string
}

func NewSMTPMailer(host, port, user, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		addr:     host + ":" + port,
		user:     user,
		password: password,
	}
}

var _ Mailer = (*SMTPMailer)(nil)

func (s *SMTPMailer) Send(msg *Message) error {
	var auth smtp.Auth
	if s.user != "" && s.password != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}

	if err := smtp.SendMail(s.addr, auth, msg.From, []string{msg.To}, msg.Bytes()); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func domainOf(address string) string {
	if i := strings.LastIndex(address, "@"); i >= 0 && i+1 < len(address) {
		return address[i+1:]
	}
	return "localhost"
}
