// Command useradd creates an account directly in the database, bypassing
// the HTTP API. It is how the first administrator gets created.
//
//	useradd -username admin -flags 6 -- -d postgres://...
//
// Everything after "--" is handed to the server configuration loader, so
// the same env vars, config file and flags apply.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/crypto"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/models"
	"golang.org/x/term"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readPassword is replaced in tests.
var readPassword = func() (string, error) {
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	return string(b), err
}

// bootstrap is the principal the command acts as.
var bootstrap = models.AuthUser{Username: "useradd", Flags: models.FlagAdmin}

type options struct {
	username   string
	flags      models.UserFlags
	configArgs []string
}

func main() {
	log := logger.NewLogger("useradd")
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stderr, log); err != nil {
		fmt.Fprintln(os.Stderr, "useradd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer, log *logger.Logger) error {
	opts, err := parseOptions(args, in, out)
	if err != nil {
		return err
	}

	cfg, err := config.GetStructuredConfig(opts.configArgs)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	password, err := promptPassword(out)
	if err != nil {
		return err
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	users := service.NewUserService(&store.Storages{Users: store.NewUserRepository(db, nil, log)}, crypto.NewPasswordHasher(cfg.App.HashConcurrency), log)
	created, err := createUser(ctx, users, opts, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "created user %s (%s)\n", created.Username, created.ID)
	return nil
}

func parseOptions(args []string, in io.Reader, out io.Writer) (options, error) {
	fset := flag.NewFlagSet("useradd", flag.ContinueOnError)
	fset.SetOutput(out)
	username := fset.String("username", "", "name of the new user (prompted when empty)")
	flags := fset.Int("flags", int(models.FlagAdmin|models.FlagCreateUser), "user flags bitmask")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		username:   *username,
		flags:      models.UserFlags(*flags),
		configArgs: fset.Args(),
	}

	if opts.username == "" {
		fmt.Fprint(out, "Username: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return options{}, fmt.Errorf("error reading username: %w", err)
		}
		opts.username = strings.TrimSpace(line)
	}

	if err := validators.ValidateUsername(opts.username); err != nil {
		return options{}, err
	}
	if err := validators.ValidateFlags(opts.flags); err != nil {
		return options{}, err
	}
	return opts, nil
}

func promptPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "Password: ")
	password, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	if err = validators.ValidatePassword(password); err != nil {
		return "", err
	}

	fmt.Fprint(out, "Repeat password: ")
	repeated, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	if repeated != password {
		return "", errPasswordMismatch
	}
	return password, nil
}

func createUser(ctx context.Context, users service.UserService, opts options, password string) (models.AuthUser, error) {
	created, err := users.CreateUser(ctx, bootstrap, opts.username, models.ReceivedUser{
		Password: password,
		Flags:    opts.flags,
	})
	if errors.Is(err, service.ErrUserExists) {
		return models.AuthUser{}, fmt.Errorf("user %q already exists", opts.username)
	}
	return created, err
}
