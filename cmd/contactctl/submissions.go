package main

import (
	"context"
	"fmt"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/repository"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/auth"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newSubmissionsCmd(load configLoader) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "submissions",
		Aliases: []string{"ls"},
		Short:   "List recorded submission outcomes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			outcomes, closeStore, err := repository.OpenOutcomeStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			// Local operators act as admin
			ctx := context.WithValue(cmd.Context(), domain.KeySubject, "contactctl")
			ctx = context.WithValue(ctx, domain.KeyUserRole, auth.RoleAdmin)
			list, err := usecase.NewAdminUsecase(outcomes).ListSubmissions(ctx, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tACK ATTEMPTS\tCOMPLETED\tREASON")
			for _, o := range list {
				reason := o.Reason
				if reason == "" {
					reason = o.AckError
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", o.ID, o.Status, o.AckAttempts, o.CompletedAt.Format(time.RFC3339), reason)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of outcomes")

	return cmd
}
