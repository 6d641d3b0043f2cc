package main

import (
	"encoding/json"
	"fmt"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/repository"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func newSendCmd(load configLoader) *cobra.Command {
	var (
		req      domain.SubmissionRequest
		testMode bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a contact message through the configured provider",
		Long: `Runs the same flow as POST /v1/contact: notify the site owner, then
acknowledge the sender. The outcome is printed as JSON and recorded in the
audit store when one is configured.`,
		Example: `  contactctl send --name Jane --email jane@example.com --subject Hi --message "Hello there"
  contactctl send --test-mode --name Jane --email jane@example.com --subject Hi --message Hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validator.New()
			v.SetTagName("binding")
			validation.RegisterValidators(v)
			if err := v.Struct(&req); err != nil {
				for _, msg := range validation.FormatValidationErrors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				return fmt.Errorf("invalid contact form")
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			if testMode {
				cfg.ContactTestMode = true
			}

			outcomes, closeStore, err := repository.OpenOutcomeStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			contact := usecase.NewContactUsecase(email.NewClient(cfg), usecase.ContactConfigFrom(cfg), outcomes)
			if !contact.IsAvailable() {
				return domain.ErrProviderNotConfigured
			}

			outcome := contact.Submit(cmd.Context(), &req)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(outcome); err != nil {
				return err
			}

			if outcome.Status == domain.StatusFailed {
				return fmt.Errorf("submission failed: %s", outcome.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.SenderName, "name", "", "sender name")
	cmd.Flags().StringVar(&req.SenderEmail, "email", "", "sender email address")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&req.Body, "message", "", "message body")
	cmd.Flags().BoolVar(&testMode, "test-mode", false, "simulate the submission without calling the provider")

	return cmd
}
