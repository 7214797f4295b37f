// Package submit drives a form from submit to confirmation: validate every
// required field, post the payload once, and converge every backend outcome
// on the success panel. When the backend cannot be reached the submission is
// appended to local storage first.
//
// In strict mode a completed request with a non-2xx status is reported as a
// failure instead of being shown as a success.
package submit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/client"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/localstore"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/sysutil"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/validate"
)

const tracerName = "github.com/Ramsagar705/aqua-blue-hydropack/internal/submit"

var (
	// ErrBusy is returned when Submit is called while a previous submission
	// on the same form is still outstanding.
	ErrBusy = errors.New("submission already in progress")

	// ErrRejected is returned in strict mode when the backend answers with a
	// non-2xx status. It wraps the *client.StatusError.
	ErrRejected = errors.New("submission rejected by backend")
)

// Kind selects the payload shape and confirmation behaviour.
type Kind int

const (
	KindContact Kind = iota
	KindOrder
)

func (k Kind) String() string {
	if k == KindOrder {
		return "order"
	}
	return "contact"
}

// Mode controls how non-2xx responses are treated.
type Mode string

const (
	// ModeDemo shows the success panel for every backend outcome.
	ModeDemo Mode = "demo"
	// ModeStrict surfaces non-2xx responses as ErrRejected.
	ModeStrict Mode = "strict"
)

// ParseMode maps a configuration string to a Mode. Unknown values yield
// ModeDemo and ok=false.
func ParseMode(s string) (m Mode, ok bool) {
	switch Mode(s) {
	case ModeDemo:
		return ModeDemo, true
	case ModeStrict:
		return ModeStrict, true
	}
	return ModeDemo, false
}

// State is the orchestrator's position in the submit flow.
type State int32

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSucceeded
	StateFailed
)

var stateNames = [...]string{"idle", "validating", "invalid", "submitting", "succeeded", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int32(s))
	}
	return stateNames[s]
}

// Poster sends one JSON submission. *client.Client satisfies it.
type Poster interface {
	PostJSON(ctx context.Context, path string, payload any) (*client.Response, error)
}

// FieldValidator checks a field and toggles its error marker.
// *validate.Validator satisfies it.
type FieldValidator interface {
	Validate(t validate.Target) bool
}

// Recorder appends a record to a named local storage slot.
// *localstore.Store satisfies it.
type Recorder interface {
	Append(ctx context.Context, key string, record any) error
}

// Deps are the collaborators shared by both forms.
type Deps struct {
	Poster    Poster
	Validator FieldValidator
	Local     Recorder
	View      View
	Mode      Mode
	// Now defaults to time.Now.
	Now func() time.Time
	// Tracer defaults to the global OpenTelemetry provider.
	Tracer trace.Tracer
}

// Outcome summarises one Submit call.
type Outcome struct {
	State State
	// OrderID is the confirmation id shown to the customer (orders only).
	OrderID string
	// InvalidField names the focused field when State is StateInvalid.
	InvalidField string
	// StoredLocally is set when the submission went to local storage.
	StoredLocally bool
	// StatusCode is the backend's HTTP status, 0 if no response arrived.
	StatusCode int
}

// Orchestrator runs the submit flow of one form instance.
type Orchestrator struct {
	kind Kind
	form *form.Form
	deps Deps

	busy  atomic.Bool
	state atomic.Int32
}

// NewContact returns an orchestrator for a contact form.
func NewContact(f *form.Form, d Deps) *Orchestrator { return newOrchestrator(KindContact, f, d) }

// NewOrder returns an orchestrator for an order form.
func NewOrder(f *form.Form, d Deps) *Orchestrator { return newOrchestrator(KindOrder, f, d) }

func newOrchestrator(k Kind, f *form.Form, d Deps) *Orchestrator {
	if d.Validator == nil {
		d.Validator = validate.New()
	}
	if d.View == nil {
		d.View = NopView{}
	}
	if d.Mode == "" {
		d.Mode = ModeDemo
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Tracer == nil {
		d.Tracer = otel.Tracer(tracerName)
	}
	return &Orchestrator{kind: k, form: f, deps: d}
}

// Form returns the form being driven.
func (o *Orchestrator) Form() *form.Form { return o.form }

// Kind returns the form kind.
func (o *Orchestrator) Kind() Kind { return o.kind }

// State returns the current state.
func (o *Orchestrator) State() State { return State(o.state.Load()) }

func (o *Orchestrator) setState(s State) { o.state.Store(int32(s)) }

// Change sets a field value and revalidates that field, the way a page
// re-checks a control when it loses focus. It returns the field's validity.
func (o *Orchestrator) Change(name, value string) (bool, error) {
	if err := o.form.Set(name, value); err != nil {
		return false, err
	}
	return o.deps.Validator.Validate(o.form.Field(name)), nil
}

// Submit runs the full flow once. Validation failures are not errors: the
// returned Outcome has State StateInvalid and names the focused field.
// The only errors are ErrBusy and, in strict mode, ErrRejected.
func (o *Orchestrator) Submit(ctx context.Context) (Outcome, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return Outcome{State: o.State()}, ErrBusy
	}
	defer o.busy.Store(false)

	ctx, span := o.deps.Tracer.Start(ctx, "submit "+o.form.ID,
		trace.WithAttributes(attribute.String("form.kind", o.kind.String())))
	defer span.End()

	lg := log.With().Str("form", o.form.ID).Logger()

	o.setState(StateValidating)
	if name, ok := o.validateAll(); !ok {
		if name != "" {
			o.deps.View.FocusField(name)
		}
		o.setState(StateIdle)
		span.SetAttributes(attribute.String("submit.outcome", "invalid"))
		lg.Debug().Str("field", name).Msg("form invalid")
		return Outcome{State: StateInvalid, InvalidField: name}, nil
	}

	payload := o.payload()

	o.setState(StateSubmitting)
	o.deps.View.SetBusy(true, o.form.LoadingLabel)
	defer o.deps.View.SetBusy(false, o.form.SubmitLabel)

	resp, err := o.deps.Poster.PostJSON(ctx, o.form.Endpoint, payload)
	if err != nil {
		return o.fallback(ctx, span, lg, payload, err), nil
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	out := Outcome{StatusCode: resp.StatusCode}

	if resp.OK() {
		if o.kind == KindOrder {
			out.OrderID = sysutil.FirstNonEmpty(orderIDFrom(resp), GenerateOrderID(o.deps.Now()))
		}
		lg.Info().Int("status", resp.StatusCode).Str("order_id", out.OrderID).Msg("submission accepted")
		return o.succeed(span, out), nil
	}

	if o.deps.Mode == ModeStrict {
		o.setState(StateFailed)
		span.SetStatus(codes.Error, "rejected")
		span.SetAttributes(attribute.String("submit.outcome", "rejected"))
		lg.Warn().Int("status", resp.StatusCode).Msg("submission rejected")
		out.State = StateFailed
		return out, fmt.Errorf("%w: %w", ErrRejected, resp.Err())
	}

	if o.kind == KindOrder {
		out.OrderID = GenerateOrderID(o.deps.Now())
	}
	lg.Warn().Int("status", resp.StatusCode).Msg("backend rejected submission, showing success anyway")
	return o.succeed(span, out), nil
}

// validateAll runs the validator over every required field without
// stopping at the first failure, so each invalid field gets its marker.
func (o *Orchestrator) validateAll() (firstInvalid string, ok bool) {
	ok = true
	for _, f := range o.form.Required() {
		if !o.deps.Validator.Validate(f) {
			ok = false
		}
	}
	if ok {
		return "", true
	}
	if f := o.form.FirstError(); f != nil {
		return f.Name, false
	}
	return "", false
}

func (o *Orchestrator) payload() any {
	if o.kind == KindOrder {
		return form.OrderFrom(o.form)
	}
	return form.ContactFrom(o.form)
}

func (o *Orchestrator) fallback(ctx context.Context, span trace.Span, lg zerolog.Logger, payload any, cause error) Outcome {
	span.RecordError(cause)
	lg.Warn().Err(cause).Msg("backend not available, using local storage")

	now := o.deps.Now()
	out := Outcome{}
	var key string
	var record any
	switch p := payload.(type) {
	case form.OrderSubmission:
		out.OrderID = GenerateOrderID(now)
		key = localstore.OrdersKey
		record = localstore.OrderRecord{OrderSubmission: p, OrderID: out.OrderID, Timestamp: localstore.Timestamp(now)}
	case form.ContactSubmission:
		key = localstore.ContactsKey
		record = localstore.ContactRecord{ContactSubmission: p, Timestamp: localstore.Timestamp(now)}
	}

	// The request may have failed because ctx expired; the local save must
	// still happen.
	if o.deps.Local == nil {
		lg.Error().Msg("no local storage configured, submission dropped")
	} else if err := o.deps.Local.Append(context.WithoutCancel(ctx), key, record); err != nil {
		lg.Error().Err(err).Str("slot", key).Msg("saving submission locally failed")
	} else {
		out.StoredLocally = true
	}
	span.SetAttributes(attribute.Bool("submit.stored_locally", out.StoredLocally))
	return o.succeed(span, out)
}

func (o *Orchestrator) succeed(span trace.Span, out Outcome) Outcome {
	o.deps.View.ShowSuccess(out.OrderID)
	o.setState(StateSucceeded)
	span.SetAttributes(attribute.String("submit.outcome", "succeeded"))
	out.State = StateSucceeded
	return out
}

func orderIDFrom(resp *client.Response) string {
	var body struct {
		OrderID string `json:"order_id"`
	}
	if err := resp.DecodeJSON(&body); err != nil {
		return ""
	}
	return body.OrderID
}
