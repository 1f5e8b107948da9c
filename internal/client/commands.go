package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"pick", "pick", "choose an account and autofill it (default)", (*App).runPick},
	{"fill", "fill <index>", "autofill the account at index", (*App).runFill},
	{"list", "list", "list stored accounts", (*App).runList},
	{"show", "show [--show-password] <index>", "print the decrypted account at index", (*App).runShow},
	{"add", "add [--label L --account A --username U --container C --password-stdin]", "add an account", (*App).runAdd},
	{"edit", "edit <index>", "edit the account at index", (*App).runEdit},
	{"remove", "remove <index>", "delete the account at index", (*App).runRemove},
	{"unlock", "unlock [--password-stdin]", "send the master password to the daemon", (*App).runUnlock},
	{"lock", "lock", "discard the key held by the daemon", (*App).runLock},
	{"status", "status", "print the daemon version and key state", (*App).runStatus},
}

// Run parses global flags and executes one command. Without a command it
// opens the account picker.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("vaultctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(a.out)
	fs.BoolVar(&a.noPrompt, "no-prompt", false, "never ask for the master password here; wait for another unlock instead")
	fs.DurationVar(&a.waitTimeout, "wait", a.waitTimeout, "how long --no-prompt waits for an unlock")
	fs.Usage = func() { a.printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	rest := fs.Args()
	name := "pick"
	if len(rest) > 0 {
		name, rest = rest[0], rest[1:]
	}

	for _, cmd := range commands {
		if cmd.name == name {
			traceID := utils.NewUUIDGenerator().Generate()
			a.logger.Debug().Str("command", name).Str("trace_id", traceID).Msg("running command")
			return cmd.run(a, context.WithValue(ctx, utils.TraceIDCtxKey, traceID), rest)
		}
	}

	a.printUsage(fs)
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (a *App) printUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(a.out, "Usage: vaultctl [global flags] <command> [args]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Commands:")
	tw := tabwriter.NewWriter(a.out, 2, 0, 3, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.usage, cmd.summary)
	}
	_ = tw.Flush()
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Global flags:")
	fmt.Fprint(a.out, fs.FlagUsages())
}

func (a *App) runPick(ctx context.Context, _ []string) error {
	records, err := a.vault.ListCredentials(ctx)
	if err != nil {
		return fmt.Errorf("list credentials: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No accounts stored.")
		return nil
	}

	index, err := a.ui.PickAccount(ctx, records)
	if err != nil {
		return err
	}
	return a.autofill(ctx, records[index])
}

func (a *App) runFill(ctx context.Context, args []string) error {
	index, err := parseIndex(args)
	if err != nil {
		return err
	}

	records, err := a.vault.ListCredentials(ctx)
	if err != nil {
		return fmt.Errorf("list credentials: %w", err)
	}
	if index >= len(records) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return a.autofill(ctx, records[index])
}

func (a *App) autofill(ctx context.Context, record models.CredentialRecord) error {
	err := a.withKey(ctx, func(ctx context.Context) error {
		return a.vault.Autofill(ctx, record)
	})
	if err != nil {
		return fmt.Errorf("autofill %s: %w", record.AccountLabel, err)
	}

	fmt.Fprintf(a.out, "Autofill sent for %s (%s)\n", record.AccountLabel, record.AccountID)
	return nil
}

func (a *App) runList(ctx context.Context, _ []string) error {
	records, err := a.vault.ListCredentials(ctx)
	if err != nil {
		return fmt.Errorf("list credentials: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No accounts stored.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tACCOUNT\tCONTAINER\tPASSWORD")
	for i, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, r.AccountLabel, r.AccountID, valueOrDash(r.ContainerID), yesNo(r.HasPassword()))
	}
	return tw.Flush()
}

func (a *App) runShow(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("show", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	showPassword := fs.Bool("show-password", false, "print the password in clear text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	index, err := parseIndex(fs.Args())
	if err != nil {
		return err
	}

	credential, err := a.reveal(ctx, index)
	if err != nil {
		return err
	}

	password := "(none)"
	if credential.Password != "" {
		password = strings.Repeat("*", 8)
		if *showPassword {
			password = credential.Password
		}
	}

	tw := tabwriter.NewWriter(a.out, 2, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Label:\t%s\n", credential.AccountLabel)
	fmt.Fprintf(tw, "Account:\t%s\n", credential.AccountID)
	fmt.Fprintf(tw, "Username:\t%s\n", credential.Username)
	fmt.Fprintf(tw, "Password:\t%s\n", password)
	fmt.Fprintf(tw, "Container:\t%s\n", valueOrDash(credential.ContainerID))
	return tw.Flush()
}

func (a *App) runAdd(ctx context.Context, args []string) error {
	var credential models.PlainCredential
	var passwordStdin bool

	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&credential.AccountLabel, "label", "", "display label")
	fs.StringVar(&credential.AccountID, "account", "", "account identifier")
	fs.StringVar(&credential.Username, "username", "", "sign-in user name")
	fs.StringVar(&credential.ContainerID, "container", "", "browser container to open the sign-in page in")
	fs.BoolVar(&passwordStdin, "password-stdin", false, "read the account password from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if credential.AccountID == "" && credential.Username == "" {
		edited, err := a.ui.EditCredential(ctx, nil)
		if err != nil {
			return err
		}
		credential = edited
	} else if passwordStdin {
		password, err := a.readSecret()
		if err != nil {
			return err
		}
		credential.Password = password
	}

	err := a.withKey(ctx, func(ctx context.Context) error {
		return a.vault.AddCredential(ctx, credential)
	})
	if err != nil {
		return fmt.Errorf("add credential: %w", err)
	}

	fmt.Fprintln(a.out, "Account added.")
	return nil
}

func (a *App) runEdit(ctx context.Context, args []string) error {
	index, err := parseIndex(args)
	if err != nil {
		return err
	}

	current, err := a.reveal(ctx, index)
	if err != nil {
		return err
	}

	edited, err := a.ui.EditCredential(ctx, &current)
	if err != nil {
		return err
	}

	err = a.withKey(ctx, func(ctx context.Context) error {
		return a.vault.UpdateCredential(ctx, index, edited)
	})
	if err != nil {
		return fmt.Errorf("update credential %d: %w", index, err)
	}

	fmt.Fprintln(a.out, "Account updated.")
	return nil
}

func (a *App) runRemove(ctx context.Context, args []string) error {
	index, err := parseIndex(args)
	if err != nil {
		return err
	}

	if err = a.vault.DeleteCredential(ctx, index); err != nil {
		return fmt.Errorf("delete credential %d: %w", index, err)
	}

	fmt.Fprintln(a.out, "Account removed.")
	return nil
}

func (a *App) runUnlock(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("unlock", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	passwordStdin := fs.Bool("password-stdin", false, "read the master password from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	unlocked, err := a.vault.HasKey(ctx)
	if err != nil {
		return fmt.Errorf("check vault state: %w", err)
	}
	if unlocked {
		fmt.Fprintln(a.out, "Vault is already unlocked.")
		return nil
	}

	if *passwordStdin {
		password, err := a.readSecret()
		if err != nil {
			return err
		}
		if err = a.vault.Unlock(ctx, password); err != nil {
			return fmt.Errorf("unlock: %w", err)
		}
	} else if err = a.ui.Unlock(ctx, a.vault.Unlock); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Vault unlocked.")
	return nil
}

func (a *App) runLock(ctx context.Context, _ []string) error {
	if err := a.vault.Lock(ctx); err != nil {
		return fmt.Errorf("lock: %w", err)
	}

	fmt.Fprintln(a.out, "Vault locked.")
	return nil
}

func (a *App) runStatus(ctx context.Context, _ []string) error {
	status, err := a.vault.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	fmt.Fprintf(a.out, "vaultd %s: %s\n", status.Version, status.State)
	return nil
}

func (a *App) reveal(ctx context.Context, index int) (models.PlainCredential, error) {
	var credential models.PlainCredential
	err := a.withKey(ctx, func(ctx context.Context) error {
		var err error
		credential, err = a.vault.RevealCredential(ctx, index)
		return err
	})
	if err != nil {
		return models.PlainCredential{}, fmt.Errorf("reveal credential %d: %w", index, err)
	}
	return credential, nil
}

func parseIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrMissingIndex
	}

	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, args[0])
	}
	return index, nil
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
