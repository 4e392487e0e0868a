package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/planehq/plane-cli/internal/config"
)

func newLogin(auth *config.Auth) *cobra.Command {
	cfg := &config.AuthLogin{Auth: auth}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Plane API key for future invocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runLogin(cfg *config.AuthLogin, out io.Writer) error {
	key, set := cfg.APIKeyFlag()
	if !set {
		var err error
		key, err = promptAPIKey(out)
		if err != nil {
			return err
		}
	}
	if key == "" {
		return errors.New("no API key provided: pass --api-key or enter one at the prompt")
	}

	source, err := cfg.AuthStore().Save(key)
	if err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s API key stored (%s)\n", green("✓"), source)
	return nil
}

// promptAPIKey reads the key from stdin, hiding the input when stdin is a
// terminal.
func promptAPIKey(out io.Writer) (string, error) {
	fmt.Fprint(out, "API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
