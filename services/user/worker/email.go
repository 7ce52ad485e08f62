package worker

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	nsqpkg "github.com/urbandrive/urbandrive/internal/pkg/nsq"
)

// EmailSender delivers a single outbound email.
type EmailSender interface {
	Send(job models.EmailJob) error
}

// SMTPSender implements EmailSender over a plain SMTP relay
type SMTPSender struct {
	cfg *models.SMTPConfig
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg *models.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers one email through the configured relay
func (s *SMTPSender) Send(job models.EmailJob) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + job.To,
		"Subject: " + job.Subject,
		"",
		job.Body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{job.To}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", job.To, err)
	}

	return nil
}

// EmailWorker consumes queued email jobs and delivers them
type EmailWorker struct {
	consumer *nsqpkg.Consumer
	sender   EmailSender
}

// NewEmailWorker wires the queue consumer to the sender. Returning an
// error from the handler requeues the job for another attempt.
func NewEmailWorker(cfg *models.NSQConfig, sender EmailSender) (*EmailWorker, error) {
	worker := &EmailWorker{sender: sender}

	consumer, err := nsqpkg.NewConsumer(cfg.EmailTopic, cfg.EmailChannel, cfg.NSQDAddress, worker.handleMessage)
	if err != nil {
		return nil, err
	}
	worker.consumer = consumer

	return worker, nil
}

func (w *EmailWorker) handleMessage(message []byte) error {
	var job models.EmailJob
	if err := nsqpkg.UnmarshalMessage(message, &job); err != nil {
		// A malformed job never becomes sendable; drop it.
		logger.Error("Discarding malformed email job", logger.Err(err))
		return nil
	}

	if err := w.sender.Send(job); err != nil {
		logger.Error("Email delivery failed",
			logger.String("to", job.To),
			logger.Err(err))
		return err
	}

	logger.Info("Email delivered",
		logger.String("to", job.To),
		logger.String("subject", job.Subject))

	return nil
}

// Stop drains the consumer
func (w *EmailWorker) Stop() {
	if w.consumer != nil {
		w.consumer.Stop()
	}
}
