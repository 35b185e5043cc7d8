package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var email, code string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an emailed one-time code",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if email == "" {
				v, err := prompt(in, out, "Email: ")
				if err != nil {
					return err
				}
				email = v
			}
			if err := api.Login(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintf(out, "A login code was sent to %s.\n", email)

			if code == "" {
				v, err := prompt(in, out, "Code: ")
				if err != nil {
					return err
				}
				code = v
			}
			if _, err := api.VerifyOTP(cmd.Context(), email, code); err != nil {
				return err
			}
			printDone(out, "Logged in as %s", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&code, "code", "", "one-time code (prompted when empty)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.Logout(cmd.Context()); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Logged out (removed %s)", cfg.TokenPath())
			return nil
		},
	}
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimSpace(line), nil
}
