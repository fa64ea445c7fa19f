// Command hash-password prints an argon2id hash for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"thirdcoast.systems/videomarkup/pkg/utils/passwords"
)

var errEmptyPassword = errors.New("password must not be empty")

func newRootCmd(stdin io.Reader, isTerminal func() bool, readSecret func() ([]byte, error)) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash an admin password with argon2id",
		Long: "Reads a password (interactively, or from stdin with --stdin) and prints the\n" +
			"argon2id hash to put into ADMIN_PASSWORD_HASH.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if fromStdin || !isTerminal() {
				line, err := bufio.NewReader(stdin).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				secret, err := readSecret()
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(secret)
			}
			if password == "" {
				return errEmptyPassword
			}

			hash, err := passwords.NewPassword(passwords.PasswordInput{Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the password from the first line of stdin")
	return cmd
}

func main() {
	fd := int(os.Stdin.Fd())
	cmd := newRootCmd(os.Stdin,
		func() bool { return term.IsTerminal(fd) },
		func() ([]byte, error) { return term.ReadPassword(fd) },
	)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
