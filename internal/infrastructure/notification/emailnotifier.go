// Package notification delivers decision notices to applicants over SMTP.
package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/config"
)

var decisionSubjects = map[vo.Action]string{
	vo.ActionApprove:    "Your application has been approved",
	vo.ActionReject:     "Your application was not accepted",
	vo.ActionPermReject: "Your application was not accepted",
	vo.ActionKick:       "Your application has been closed",
	vo.ActionNeedInfo:   "Your application needs more information",
}

// EmailNotifier sends one plain email per decision. It implements
// application.Notifier.
type EmailNotifier struct {
	cfg    config.NotifierConfig
	dialer *gomail.Dialer
}

func NewEmailNotifier(cfg config.NotifierConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (n *EmailNotifier) NotifyDecision(ctx context.Context, notice application.DecisionNotice) error {
	if notice.ApplicantEmail == "" {
		return fmt.Errorf("applicant %s has no notification address", notice.ApplicantID)
	}

	subject, ok := decisionSubjects[notice.Action]
	if !ok {
		return fmt.Errorf("no notice template for action %s", notice.Action)
	}

	body := fmt.Sprintf("Your application (#%d) has been reviewed: %s.",
		notice.ApplicationID, notice.Action)
	if notice.Reason != "" {
		body += fmt.Sprintf("\n\nReviewer note: %s", notice.Reason)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	msg.SetHeader("To", notice.ApplicantEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send decision notice: %w", err)
	}

	return nil
}

// NopNotifier is used when notification is disabled in configuration.
type NopNotifier struct{}

func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

func (n *NopNotifier) NotifyDecision(ctx context.Context, notice application.DecisionNotice) error {
	return nil
}
