package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/clockin-app/clockin-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendReportReady(to, userName, reportName, periodLabel, downloadLink string) error
	SendAnomalyDigest(to, userName, periodLabel string, anomalyCount int, dashboardLink string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type reportReadyEmailData struct {
	UserName     string
	ReportName   string
	PeriodLabel  string
	DownloadLink string
}

// SendReportReady notifies a user that an exported report is ready
func (s *emailServiceImpl) SendReportReady(to, userName, reportName, periodLabel, downloadLink string) error {
	data := reportReadyEmailData{
		UserName:     userName,
		ReportName:   reportName,
		PeriodLabel:  periodLabel,
		DownloadLink: downloadLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "report_ready.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your %s report is ready", reportName), body.String())
}

type anomalyDigestEmailData struct {
	UserName      string
	PeriodLabel   string
	AnomalyCount  int
	DashboardLink string
}

// SendAnomalyDigest summarizes unmatched punches found in a report run
func (s *emailServiceImpl) SendAnomalyDigest(to, userName, periodLabel string, anomalyCount int, dashboardLink string) error {
	data := anomalyDigestEmailData{
		UserName:      userName,
		PeriodLabel:   periodLabel,
		AnomalyCount:  anomalyCount,
		DashboardLink: dashboardLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "anomaly_digest.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("%d punch anomalies need review", anomalyCount), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
