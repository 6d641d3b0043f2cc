package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/security"
	"text/template"
	"time"

	"github.com/google/uuid"
)

const (
	previewLimit = 100

	genericFailureReason = "Failed to send message. Please try again later."
	fallbackAckMessage   = "Thank you for contacting me! I'll get back to you soon."
)

var errAckTemplateMissing = errors.New("acknowledgment template not configured")

// ackMessageTemplate is the body of the acknowledgment sent back to the visitor
var ackMessageTemplate = template.Must(template.New("ack").Parse(
	`Thank you for contacting me! I've received your message and will get back to you as soon as possible.

Your message details:
Subject: {{.Subject}}
Message: {{.Preview}}

Best regards,
{{.OwnerName}}`))

// ContactConfig is injected into the contact usecase at construction
type ContactConfig struct {
	PrimaryTemplateID string
	AckTemplateID     string
	Owner             domain.OwnerProfile
	TestMode          bool
	TestDelay         time.Duration
}

// ContactConfigFrom builds the contact configuration from the application config
func ContactConfigFrom(cfg *config.Config) ContactConfig {
	return ContactConfig{
		PrimaryTemplateID: cfg.EmailJSTemplateID,
		AckTemplateID:     cfg.EmailJSAutoReplyTemplateID,
		Owner:             OwnerProfileFrom(cfg),
		TestMode:          cfg.ContactTestMode,
		TestDelay:         cfg.ContactTestDelay,
	}
}

// OwnerProfileFrom extracts the site owner's identity from the application config
func OwnerProfileFrom(cfg *config.Config) domain.OwnerProfile {
	return domain.OwnerProfile{
		Name:     cfg.OwnerName,
		Email:    cfg.OwnerEmail,
		Title:    cfg.OwnerTitle,
		Location: cfg.OwnerLocation,
	}
}

type contactUsecase struct {
	sender   email.Sender
	cfg      ContactConfig
	outcomes domain.OutcomeRepository
}

// NewContactUsecase creates a new contact usecase.
// outcomes may be nil, in which case outcomes are not recorded.
func NewContactUsecase(sender email.Sender, cfg ContactConfig, outcomes domain.OutcomeRepository) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		cfg:      cfg,
		outcomes: outcomes,
	}
}

// IsAvailable reports whether a submission can be delivered or simulated
func (uc *contactUsecase) IsAvailable() bool {
	if uc.cfg.TestMode {
		return true
	}
	// The acknowledgment is best-effort; only the primary send gates availability
	if uc.sender == nil || uc.cfg.PrimaryTemplateID == "" {
		return false
	}
	if c, ok := uc.sender.(interface{ IsConfigured() bool }); ok {
		return c.IsConfigured()
	}
	return true
}

// Submit sends the primary notification to the owner, then acknowledges the sender.
// The flow runs to completion even if ctx is cancelled by the caller.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.SubmissionRequest) *domain.SubmissionOutcome {
	ctx = context.WithoutCancel(ctx)

	outcome := &domain.SubmissionOutcome{
		ID:        uuid.NewString(),
		Status:    domain.StatusSubmitting,
		TestMode:  uc.cfg.TestMode,
		StartedAt: time.Now().UTC(),
	}
	log := logger.Log.With("submission_id", outcome.ID)
	log.Debug("Contact submission received", "sender", security.MaskEmail(req.SenderEmail))

	if uc.cfg.TestMode {
		log.Info("Contact submission simulated (test mode)", "subject", req.Subject, "delay", uc.cfg.TestDelay)
		time.Sleep(uc.cfg.TestDelay)
		uc.finish(ctx, outcome, domain.StatusSucceededFully)
		return outcome
	}

	if err := uc.sender.Send(ctx, uc.cfg.PrimaryTemplateID, uc.primaryParams(req)); err != nil {
		log.Error("Primary contact email failed", "error", err)
		outcome.Reason = failureReason(err)
		uc.finish(ctx, outcome, domain.StatusFailed)
		return outcome
	}
	log.Info("Primary contact email sent")

	uc.finish(ctx, outcome, uc.acknowledge(ctx, req, outcome))
	return outcome
}

// acknowledge sends the courtesy reply, falling back once to the reduced parameter set.
// Failures are recorded on the outcome and never turn the submission into a failure.
func (uc *contactUsecase) acknowledge(ctx context.Context, req *domain.SubmissionRequest, outcome *domain.SubmissionOutcome) domain.SubmissionStatus {
	log := logger.Log.With("submission_id", outcome.ID)

	if uc.cfg.AckTemplateID == "" {
		log.Warn("Acknowledgment skipped, no template configured")
		outcome.AckError = errAckTemplateMissing.Error()
		return domain.StatusSucceededPrimaryOnly
	}

	outcome.AckAttempts = 1
	params, err := uc.ackParams(req)
	if err == nil {
		err = uc.sender.Send(ctx, uc.cfg.AckTemplateID, params)
	}
	if err == nil {
		log.Info("Acknowledgment email sent")
		return domain.StatusSucceededFully
	}
	logAckFailure(log, "Acknowledgment email failed, trying reduced template", err)
	outcome.AckError = err.Error()

	outcome.AckAttempts = 2
	fallbackErr := uc.sender.Send(ctx, uc.cfg.AckTemplateID, uc.fallbackAckParams(req))
	if fallbackErr == nil {
		log.Info("Fallback acknowledgment email sent")
		return domain.StatusSucceededFully
	}
	logAckFailure(log, "Fallback acknowledgment email failed", fallbackErr)
	outcome.AckError = errors.Join(err, fallbackErr).Error()

	return domain.StatusSucceededPrimaryOnly
}

func (uc *contactUsecase) finish(ctx context.Context, outcome *domain.SubmissionOutcome, status domain.SubmissionStatus) {
	outcome.Status = status
	outcome.CompletedAt = time.Now().UTC()

	if uc.outcomes == nil {
		return
	}
	if err := uc.outcomes.Save(ctx, outcome); err != nil {
		logger.Log.Warn("Failed to record submission outcome", "submission_id", outcome.ID, "error", err)
	}
}

func (uc *contactUsecase) primaryParams(req *domain.SubmissionRequest) map[string]any {
	return map[string]any{
		"from_name": req.SenderName,
		"reply_to":  req.SenderEmail,
		"subject":   req.Subject,
		"message":   req.Body,
		"to_name":   uc.cfg.Owner.Name,
		"recipient": uc.cfg.Owner.Email,
	}
}

func (uc *contactUsecase) ackParams(req *domain.SubmissionRequest) (map[string]any, error) {
	var message bytes.Buffer
	err := ackMessageTemplate.Execute(&message, struct {
		Subject   string
		Preview   string
		OwnerName string
	}{
		Subject:   req.Subject,
		Preview:   bodyPreview(req.Body),
		OwnerName: uc.cfg.Owner.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render acknowledgment message: %w", err)
	}

	return map[string]any{
		"to_name":   req.SenderName,
		"reply_to":  req.SenderEmail,
		"from_name": uc.cfg.Owner.Name,
		"subject":   fmt.Sprintf("Thank you for your message, %s", req.SenderName),
		"message":   message.String(),
	}, nil
}

func (uc *contactUsecase) fallbackAckParams(req *domain.SubmissionRequest) map[string]any {
	return map[string]any{
		"to":        req.SenderEmail,
		"from_name": uc.cfg.Owner.Name,
		"to_name":   req.SenderName,
		"message":   fallbackAckMessage,
	}
}

// bodyPreview returns the first 100 characters of body, with "..." appended if it was cut.
func bodyPreview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit]) + "..."
}

// failureReason is the user-visible text for a failed primary send
func failureReason(err error) string {
	var sendErr *email.SendError
	if errors.As(err, &sendErr) {
		if text := sendErr.PublicText(); text != "" {
			return "Error: " + text
		}
	}
	return genericFailureReason
}

func logAckFailure(log *slog.Logger, msg string, err error) {
	var sendErr *email.SendError
	if errors.As(err, &sendErr) {
		log.Warn(msg, "status", sendErr.Status, "text", sendErr.Text)
		return
	}
	log.Warn(msg, "error", err)
}
