// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/spf13/cobra"
)

const defaultUserDBPath = "./userdb.json"

type userDBFlags struct {
	path string

	username     string
	mail         string
	password     string
	bcryptHash   string
	secretAccess bool
}

// NewUserDBCommand returns the root command of the userdb tool. The user
// database file is created empty when it does not exist.
func NewUserDBCommand(out io.Writer, log *logger.Logger) *cobra.Command {
	f := &userDBFlags{}

	cmd := &cobra.Command{
		Use:           "userdb",
		Short:         "Manage the user database of the data catalog server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.PersistentFlags().StringVarP(&f.path, "file", "f", defaultUserDBPath, "Path of the user database to modify or create")

	cmd.AddCommand(
		newHashCommand(f, log),
		newListUsersCommand(f, log),
		newAddUserCommand(f, log),
		newShowUserCommand(f, log),
		newRemoveUserCommand(f, log),
		newSecretAccessCommand(f, log, "give_secret", "Give a user access to secrets", true),
		newSecretAccessCommand(f, log, "remove_secret", "Remove a user's access to secrets", false),
	)
	return cmd
}

func (f *userDBFlags) repository(log *logger.Logger) (store.UserRepository, error) {
	return store.NewUserRepository(config.Storage{UserDBPath: f.path}, log)
}

func (f *userDBFlags) requireUsername() error {
	if f.username == "" {
		return usageErrorf("username is not set, use -u")
	}
	return nil
}

func newHashCommand(f *userDBFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print a bcrypt hash for the given password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.password == "" {
				return usageErrorf("password is not set, use -p")
			}

			hash, err := service.NewAuthService(nil, config.App{}, log).HashPassword(f.password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "Password to hash")
	return cmd
}

func newListUsersCommand(f *userDBFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := f.repository(log)
			if err != nil {
				return err
			}

			users, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), u.Username); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newAddUserCommand(f *userDBFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new user; requires -u, -m and either -p or -b",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.requireUsername(); err != nil {
				return err
			}
			if f.mail == "" {
				return usageErrorf("mail is not set, use -m")
			}

			hash := f.bcryptHash
			if hash == "" {
				if f.password == "" {
					return usageErrorf("no password or hash given, use -p or -b")
				}
				var err error
				hash, err = service.NewAuthService(nil, config.App{}, log).HashPassword(f.password)
				if err != nil {
					return err
				}
			}

			repo, err := f.repository(log)
			if err != nil {
				return err
			}

			user := models.UserInDB{
				User: models.User{
					Username:         f.username,
					Email:            f.mail,
					HasSecretsAccess: f.secretAccess,
				},
				HashedPassword: hash,
			}
			if err := repo.Add(cmd.Context(), user); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "new user added:")
			return printUser(cmd.OutOrStdout(), user)
		},
	}
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "Username of the new user")
	cmd.Flags().StringVarP(&f.mail, "mail", "m", "", "Email of the new user")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "Password of the new user")
	cmd.Flags().StringVarP(&f.bcryptHash, "bcrypt-hash", "b", "", "Precomputed bcrypt hash of the password")
	cmd.Flags().BoolVarP(&f.secretAccess, "secret-access", "s", false, "Give the new user access to secrets")
	cmd.MarkFlagsMutuallyExclusive("password", "bcrypt-hash")
	return cmd
}

func newShowUserCommand(f *userDBFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.requireUsername(); err != nil {
				return err
			}
			repo, err := f.repository(log)
			if err != nil {
				return err
			}

			user, err := repo.Get(cmd.Context(), f.username)
			if err != nil {
				return err
			}
			return printUser(cmd.OutOrStdout(), user)
		},
	}
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "Username to show")
	return cmd
}

func newRemoveUserCommand(f *userDBFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"delete"},
		Short:   "Delete a single user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.requireUsername(); err != nil {
				return err
			}
			repo, err := f.repository(log)
			if err != nil {
				return err
			}

			user, err := repo.Get(cmd.Context(), f.username)
			if err != nil {
				return err
			}
			if err := repo.Delete(cmd.Context(), f.username); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "deleted user:")
			return printUser(cmd.OutOrStdout(), user)
		},
	}
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "Username to delete")
	return cmd
}

func newSecretAccessCommand(f *userDBFlags, log *logger.Logger, use, short string, grant bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.requireUsername(); err != nil {
				return err
			}
			repo, err := f.repository(log)
			if err != nil {
				return err
			}

			user, err := repo.Get(cmd.Context(), f.username)
			if err != nil {
				return err
			}
			user.HasSecretsAccess = grant
			if err := repo.Update(cmd.Context(), user); err != nil {
				return err
			}
			return printUser(cmd.OutOrStdout(), user)
		},
	}
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "Username to modify")
	return cmd
}

func printUser(out io.Writer, user models.UserInDB) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(user)
}
