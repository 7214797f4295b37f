package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/client"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/config"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/localstore"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/observability"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/repo"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/submit"
)

// prompter asks the user for one field value. check reports why a value
// would be rejected, nil when it is acceptable.
type prompter interface {
	Ask(f *form.Field, check func(string) error) (string, error)
}

// surveyPrompter renders fields as terminal prompts.
type surveyPrompter struct{}

func (surveyPrompter) Ask(f *form.Field, check func(string) error) (string, error) {
	msg := f.Label
	if !f.Required {
		msg += " (optional)"
	}
	var p survey.Prompt
	switch {
	case len(f.Options) > 0:
		p = &survey.Select{Message: msg, Options: f.Options}
	case f.Type == form.TypeTextarea:
		p = &survey.Multiline{Message: msg}
	default:
		p = &survey.Input{Message: msg}
	}

	var out string
	err := survey.AskOne(p, &out, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		if opt, ok := ans.(survey.OptionAnswer); ok {
			s = opt.Value
		}
		return check(s)
	}))
	return out, err
}

// terminalView prints the page effects the orchestrator asks for.
type terminalView struct {
	w io.Writer
	f *form.Form
}

func (v *terminalView) FocusField(name string) {
	label := name
	if fld := v.f.Field(name); fld != nil {
		label = fld.Label
	}
	fmt.Fprintf(v.w, "! please check %q\n", label)
}

func (v *terminalView) SetBusy(busy bool, label string) {
	if busy {
		fmt.Fprintln(v.w, label)
	}
}

func (v *terminalView) ShowSuccess(orderID string) {
	if orderID != "" {
		fmt.Fprintf(v.w, "Thank you! Your order has been placed. Order ID: %s\n", orderID)
		return
	}
	fmt.Fprintln(v.w, "Thank you! Your message has been sent. We will get back to you soon.")
}

func newSubmitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the contact or order form to the backend",
		Long: `Submit the contact or order form to the backend.

Field values come from flags or, with --interactive, from prompts.
When the backend is unreachable the submission is saved locally and
still confirmed.

Examples:
  aquablue submit contact --name Asha --email asha@example.com \
      --phone 9876543210 --subject Feedback --message "Great water"
  aquablue submit order --interactive`,
	}
	cmd.AddCommand(
		newFormCmd(a, "contact", "Send a contact message", form.Contact, submit.NewContact),
		newFormCmd(a, "order", "Place a delivery order", form.Order, submit.NewOrder),
	)
	return cmd
}

// orchestratorFor builds the orchestrator matching a form kind.
type orchestratorFor func(*form.Form, submit.Deps) *submit.Orchestrator

func newFormCmd(a *app, use, short string, newForm func() *form.Form, newOrch orchestratorFor) *cobra.Command {
	fields := newForm().Fields
	values := make(map[string]*string, len(fields))
	var interactive bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := make(map[string]string, len(values))
			for name, v := range values {
				set[name] = *v
			}
			return runSubmit(cmd.Context(), a, newForm(), newOrch, set, interactive, cmd.OutOrStdout())
		},
	}
	for _, fld := range fields {
		values[fld.Name] = cmd.Flags().String(fld.Name, "", fld.Label)
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for every field")
	return cmd
}

// runSubmit fills f, then drives one submission through the orchestrator.
func runSubmit(ctx context.Context, a *app, f *form.Form, newOrch orchestratorFor, values map[string]string, interactive bool, out io.Writer) error {
	cfg := a.cfg
	mode, ok := submit.ParseMode(cfg.Client.SubmitMode)
	if !ok {
		return fmt.Errorf("unknown submit mode %q", cfg.Client.SubmitMode)
	}

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version, observability.ComponentCLI)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() { _ = shutdownOTel(context.Background()) }()

	store, closeStore, err := openLocalStore(cfg.Client)
	if err != nil {
		return err
	}
	defer closeStore()

	view := &terminalView{w: out, f: f}
	deps := submit.Deps{
		Poster: client.New(cfg.Client.APIBaseURL, client.WithTimeout(cfg.Client.Timeout), client.WithUserAgent("aquablue-cli/"+version)),
		Local:  store,
		View:   view,
		Mode:   mode,
	}
	orch := newOrch(f, deps)

	for _, fld := range f.Fields {
		val := values[fld.Name]
		if interactive {
			name := fld.Name
			val, err = a.prompter.Ask(fld, func(s string) error {
				valid, err := orch.Change(name, s)
				if err != nil {
					return err
				}
				if !valid {
					return errors.New(invalidHint(fld))
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		if err := f.Set(fld.Name, strings.TrimRight(val, "\r\n")); err != nil {
			return err
		}
	}

	outcome, err := orch.Submit(ctx)
	if err != nil {
		return err
	}
	log.Debug().
		Str("form", f.ID).
		Stringer("state", outcome.State).
		Bool("stored_locally", outcome.StoredLocally).
		Int("status", outcome.StatusCode).
		Msg("submission finished")
	if outcome.State == submit.StateInvalid {
		return fmt.Errorf("%s is missing or invalid", outcome.InvalidField)
	}
	if outcome.StoredLocally {
		fmt.Fprintln(out, "(backend unreachable, saved locally)")
	}
	return nil
}

func invalidHint(f *form.Field) string {
	switch f.Type {
	case form.TypeEmail:
		return "enter a valid email address"
	case form.TypeTel:
		return "enter a 10 digit phone number"
	}
	return "this field is required"
}

// openLocalStore opens the fallback store in its SQLite file.
func openLocalStore(cfg config.ClientConfig) (*localstore.Store, func(), error) {
	db, err := repo.OpenLocalStore(cfg.LocalDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if err := repo.AutoMigrateSlots(db); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrate local store: %w", err)
	}
	return localstore.New(repo.NewSlotStorage(db)), closeFn, nil
}
