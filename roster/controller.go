package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/mohae/deepcopy"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hospital-mgmt/frontdesk/backend"
	"github.com/hospital-mgmt/frontdesk/errors"
	"github.com/hospital-mgmt/frontdesk/notify"
	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/session"
)

const (
	TitleAddPatient  = "Add New Patient"
	TitleEditPatient = "Edit Patient"
	LabelAddPatient  = "Add Patient"
	LabelEditPatient = "Update Patient"

	MessageLoadFailed      = "Failed to load patients. Please try again."
	MessagePatientNotFound = "Patient not found"
	MessagePatientAdded    = "Patient added successfully"
	MessagePatientUpdated  = "Patient updated successfully"
	MessageSaveFailed      = "Failed to save patient. Please try again."
	MessagePatientDeleted  = "Patient deleted successfully"
	MessageDeleteFailed    = "Failed to delete patient. Please try again."

	DeleteConfirmationPrompt = "Are you sure you want to delete this patient? This action cannot be undone."
)

type Clock func() time.Time

type noopIndicator struct{}

func (noopIndicator) SetSaving(bool) {}

type Params struct {
	fx.In

	Client    backend.ClientInterface
	Session   *session.Context
	Renderer  Renderer
	Notifier  notify.Surface
	Confirmer Confirmer
	Validator *patients.Validator
	Logger    *zap.SugaredLogger

	Indicator SaveIndicator `optional:"true"`
	Clock     Clock         `optional:"true"`
}

// Controller keeps the dashboard consistent with the server. The patient list is a read
// cache: it is replaced by a full reload after every mutation and never patched locally.
// It is not safe for concurrent use.
type Controller struct {
	client    backend.ClientInterface
	session   *session.Context
	renderer  Renderer
	notifier  notify.Surface
	confirmer Confirmer
	validator *patients.Validator
	logger    *zap.SugaredLogger
	indicator SaveIndicator
	now       Clock

	state       State
	patients    []patients.Patient
	currentUser *session.User

	modalOpen bool
	editing   bool
	draft     patients.Draft
}

func NewController(p Params) *Controller {
	c := &Controller{
		client:    p.Client,
		session:   p.Session,
		renderer:  p.Renderer,
		notifier:  p.Notifier,
		confirmer: p.Confirmer,
		validator: p.Validator,
		logger:    p.Logger,
		indicator: p.Indicator,
		now:       p.Clock,
		patients:  []patients.Patient{},
	}
	if c.indicator == nil {
		c.indicator = noopIndicator{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Start shows the current user and loads the list, as the dashboard does on page load.
func (c *Controller) Start(ctx context.Context) error {
	c.LoadUserInfo()
	return c.LoadPatients(ctx)
}

func (c *Controller) LoadUserInfo() {
	c.currentUser = c.session.User()
	c.renderer.RenderHeader(NewHeader(c.currentUser))
}

// Can reports whether the signed in user may perform action. LoadUserInfo must have run.
func (c *Controller) Can(action Action) bool {
	return Capabilities(c.currentUser).Contains(action)
}

func (c *Controller) State() State {
	return c.state
}

// Patients returns a copy of the cached list.
func (c *Controller) Patients() []patients.Patient {
	result := make([]patients.Patient, len(c.patients))
	copy(result, c.patients)
	return result
}

func (c *Controller) LoadPatients(ctx context.Context) error {
	c.state = StateLoading
	c.renderer.SetLoading(true)
	c.renderer.RenderList(nil)
	c.renderer.SetEmpty(false)
	defer c.renderer.SetLoading(false)

	list, err := c.client.ListPatients(ctx)
	if err != nil {
		c.logger.Errorw("error loading patients", "error", err)
		c.patients = []patients.Patient{}
		c.state = StateLoadFailed
		c.notifier.Show(MessageLoadFailed, notify.SeverityDanger)
		return err
	}

	c.patients = list
	if len(c.patients) == 0 {
		c.state = StateEmpty
		c.renderer.SetEmpty(true)
		return nil
	}

	c.state = StatePopulated
	c.RenderPatients()
	return nil
}

// Rows builds one row per cached patient, in cache order.
func (c *Controller) Rows() []Row {
	capabilities := Capabilities(c.currentUser)
	now := c.now()

	rows := make([]Row, 0, len(c.patients))
	for _, p := range c.patients {
		rows = append(rows, NewRow(p, capabilities, now))
	}
	return rows
}

func (c *Controller) RenderPatients() {
	c.renderer.RenderList(c.Rows())
}

func (c *Controller) ShowAddPatientModal() {
	c.editing = false
	c.draft = patients.Draft{}
	c.openModal(TitleAddPatient, LabelAddPatient)
}

// EditPatient opens the form prefilled from the cache. An id missing from the cache (the
// list may be stale) is reported and the form stays closed.
func (c *Controller) EditPatient(id int64) error {
	patient, ok := patients.Find(c.patients, id)
	if !ok {
		c.notifier.Show(MessagePatientNotFound, notify.SeverityDanger)
		return fmt.Errorf("patient %d: %w", id, errors.NotFound)
	}

	c.editing = true
	c.draft = patients.NewDraft(deepcopy.Copy(patient).(patients.Patient))
	c.openModal(TitleEditPatient, LabelEditPatient)
	return nil
}

func (c *Controller) ClosePatientModal() {
	if c.modalOpen {
		c.renderer.CloseForm()
	}
	c.modalOpen = false
	c.editing = false
	c.draft = patients.Draft{}
}

func (c *Controller) ModalOpen() bool {
	return c.modalOpen
}

func (c *Controller) Editing() bool {
	return c.editing
}

// Draft returns the form content as it was when the modal was opened.
func (c *Controller) Draft() patients.Draft {
	return c.draft
}

// HandlePatientSubmit creates or updates a patient from the form and reloads the list.
func (c *Controller) HandlePatientSubmit(ctx context.Context, draft patients.Draft) error {
	c.indicator.SetSaving(true)
	defer c.indicator.SetSaving(false)

	draft = draft.Trimmed()
	if err := c.validator.Validate(draft, c.now()); err != nil {
		return c.fail(err, MessageSaveFailed)
	}

	var err error
	message := MessagePatientAdded
	if c.editing {
		id, ok := draft.Id()
		if !ok {
			return c.fail(errors.NewValidationError(MessagePatientNotFound), MessageSaveFailed)
		}
		message = MessagePatientUpdated
		_, err = c.client.UpdatePatient(ctx, id, draft.Fields())
	} else {
		_, err = c.client.CreatePatient(ctx, draft.Fields())
	}
	if err != nil {
		c.logger.Errorw("error saving patient", "editing", c.editing, "error", err)
		return c.fail(err, MessageSaveFailed)
	}

	c.notifier.Show(message, notify.SeveritySuccess)
	c.ClosePatientModal()
	c.reload(ctx)
	return nil
}

// DeletePatient asks for confirmation first. It reports whether a delete request was made
// and succeeded.
func (c *Controller) DeletePatient(ctx context.Context, id int64) (bool, error) {
	if !c.confirmer.Confirm(DeleteConfirmationPrompt) {
		return false, nil
	}

	if err := c.client.DeletePatient(ctx, id); err != nil {
		c.logger.Errorw("error deleting patient", "id", id, "error", err)
		c.notifier.Show(MessageDeleteFailed, notify.SeverityDanger)
		return false, err
	}

	c.notifier.Show(MessagePatientDeleted, notify.SeveritySuccess)
	c.reload(ctx)
	return true, nil
}

func (c *Controller) openModal(title string, label string) {
	c.modalOpen = true
	c.renderer.RenderForm(Form{
		Title:       title,
		SubmitLabel: label,
		Editing:     c.editing,
		Draft:       c.draft,
	})
}

// reload resynchronizes with the server after a mutation. A failure is already surfaced by
// LoadPatients and does not undo the mutation.
func (c *Controller) reload(ctx context.Context) {
	if err := c.LoadPatients(ctx); err != nil {
		c.logger.Warnw("unable to reload patients after mutation", "error", err)
	}
}

func (c *Controller) fail(err error, fallback string) error {
	c.notifier.Show(errors.UserMessage(err, fallback), notify.SeverityDanger)
	return err
}
