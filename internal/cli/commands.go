package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/people/internal/display"
	"github.com/mmynk/people/internal/middleware"
	"github.com/mmynk/people/internal/models"
	"github.com/mmynk/people/internal/service"
)

func newAddCmd(opts *options) *cobra.Command {
	var rec models.NewRecord

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new person",
		Args:  cobra.NoArgs,
		RunE: middleware.Logged(func(cmd *cobra.Command, args []string) error {
			if err := service.ValidateRecord(rec); err != nil {
				return err
			}
			return withService(cmd.Context(), opts.dbPath, func(svc *service.PeopleService) error {
				_, err := svc.Add(cmd.Context(), rec)
				return err
			})
		}),
	}

	cmd.Flags().StringVarP(&rec.Name, "name", "n", "", "The person's name")
	cmd.Flags().StringVarP(&rec.ZodiacSign, "zodiac_sign", "z", "", "The person's zodiac sign")
	cmd.Flags().StringVarP(&rec.Birth, "birth", "b", "", "The person's birth date")
	markRequired(cmd, "name", "birth")

	return cmd
}

func newDisplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "display",
		Short: "Display all people",
		Args:  cobra.NoArgs,
		RunE: middleware.Logged(func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), opts.dbPath, func(svc *service.PeopleService) error {
				entries, err := svc.All(cmd.Context())
				if err != nil {
					return err
				}
				return display.Table(cmd.OutOrStdout(), entries)
			})
		}),
	}
}

func newSelectCmd(opts *options) *cobra.Command {
	var sign string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select people by zodiac sign",
		Args:  cobra.NoArgs,
		RunE: middleware.Logged(func(cmd *cobra.Command, args []string) error {
			if err := service.ValidateSign(sign); err != nil {
				return err
			}
			return withService(cmd.Context(), opts.dbPath, func(svc *service.PeopleService) error {
				entries, err := svc.BySign(cmd.Context(), sign)
				if err != nil {
					return err
				}
				return display.Table(cmd.OutOrStdout(), entries)
			})
		}),
	}

	cmd.Flags().StringVarP(&sign, "zodiac_sign", "S", "", "The required zodiac sign")
	markRequired(cmd, "zodiac_sign")

	return cmd
}
