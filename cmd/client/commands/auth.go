// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/spf13/cobra"
)

// formError joins the field messages of a failed form in a stable order.
func formError(errs validators.FormErrors, order ...string) error {
	msgs := make([]string, 0, len(errs))
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			msgs = append(msgs, msg)
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = c.prompt(cmd, "Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = c.prompt(cmd, "Password: "); err != nil {
					return err
				}
			}

			email = strings.TrimSpace(email)
			if errs := validators.ValidateLoginForm(email, password); errs.HasErrors() {
				return formError(errs, validators.FormFieldEmail, validators.FormFieldPassword)
			}

			env, err := c.client(cmd.Context())
			if err != nil {
				return err
			}

			session, err := env.Client.Services().AuthService.Login(cmd.Context(), models.LoginCredentials{Email: email, Password: password})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.User.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")

	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			confirm := password
			if password == "" {
				if password, err = c.prompt(cmd, "Password: "); err != nil {
					return err
				}
				if confirm, err = c.prompt(cmd, "Confirm password: "); err != nil {
					return err
				}
			}

			name, email = strings.TrimSpace(name), strings.TrimSpace(email)
			if errs := validators.ValidateRegisterForm(name, email, password, confirm); errs.HasErrors() {
				return formError(errs,
					validators.FormFieldName, validators.FormFieldEmail,
					validators.FormFieldPassword, validators.FormFieldConfirmPassword)
			}
			if res := validators.ValidatePassword(password); res.Message != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", res.Message)
			}

			env, err := c.client(cmd.Context())
			if err != nil {
				return err
			}

			session, err := env.Client.Services().AuthService.Register(cmd.Context(), models.RegisterData{Name: name, Email: email, Password: password})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created, signed in as %s\n", session.User.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.client(cmd.Context())
			if err != nil {
				return err
			}

			env.Client.Services().AuthService.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.client(cmd.Context())
			if err != nil {
				return err
			}

			session, err := requireSession(cmd, env)
			if err != nil {
				return err
			}

			return c.print(cmd, session.User, func(w io.Writer) {
				fmt.Fprintf(w, "ID:\t%s\n", session.User.ID)
				fmt.Fprintf(w, "Email:\t%s\n", session.User.Email)
				fmt.Fprintf(w, "Name:\t%s\n", dash(session.User.Name))
				fmt.Fprintf(w, "Session expires:\t%s\n", session.ExpiresAt.Local().Format(time.RFC1123))
			})
		},
	}
}
