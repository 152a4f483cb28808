package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/leadtrack/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

var newLeadTemplate = template.Must(template.New("new-lead").Parse(`
<h2>New lead captured</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;</p>
<p>Status: {{.Status}}</p>
<p>Created: {{.CreatedAt.Format "2006-01-02 15:04 MST"}}</p>
`))

// NotifyLeadCreated mails the sales inbox about a freshly captured lead.
func (s *EmailSender) NotifyLeadCreated(payload queue.LeadCreatedPayload) error {
	var body bytes.Buffer
	if err := newLeadTemplate.Execute(&body, payload); err != nil {
		return fmt.Errorf("render new-lead mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s", payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send new-lead mail: %w", err)
	}

	return nil
}
