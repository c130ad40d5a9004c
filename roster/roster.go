package roster

import (
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/session"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateLoadFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateLoadFailed:
		return "load failed"
	default:
		return "idle"
	}
}

type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

const notAvailable = "N/A"

var roleCapabilities = map[session.Role]mapset.Set[Action]{
	session.RoleReceptionist: mapset.NewSet(ActionAdd, ActionEdit, ActionDelete),
	session.RoleDoctor:       mapset.NewSet(ActionEdit),
}

// Capabilities returns what user may do on the dashboard. Edit is always available, delete
// only to receptionists and add to everyone but doctors.
func Capabilities(user *session.User) mapset.Set[Action] {
	if user != nil {
		if capabilities, ok := roleCapabilities[user.Role]; ok {
			return capabilities.Clone()
		}
	}
	return mapset.NewSet(ActionAdd, ActionEdit)
}

type Header struct {
	Username string
	Role     string
	Initial  string
	CanAdd   bool
}

func NewHeader(user *session.User) Header {
	if user == nil {
		return Header{CanAdd: Capabilities(nil).Contains(ActionAdd)}
	}
	return Header{
		Username: user.Username,
		Role:     strings.ToUpper(string(user.Role)),
		Initial:  user.Initial(),
		CanAdd:   Capabilities(user).Contains(ActionAdd),
	}
}

// Row holds the display values of one patient. Free text is raw; escaping is the job of
// renderers that produce markup.
type Row struct {
	Id          int64
	Name        string
	DateOfBirth string
	Age         string
	Gender      string
	Phone       string
	Email       string
	Actions     []Action
}

func (r Row) Can(action Action) bool {
	for _, a := range r.Actions {
		if a == action {
			return true
		}
	}
	return false
}

func NewRow(p patients.Patient, capabilities mapset.Set[Action], now time.Time) Row {
	age := notAvailable
	if years, err := patients.Age(p.DateOfBirth, now); err == nil {
		age = strconv.Itoa(years)
	}

	actions := []Action{ActionEdit}
	if capabilities.Contains(ActionDelete) {
		actions = append(actions, ActionDelete)
	}

	return Row{
		Id:          p.Id,
		Name:        p.FullName(),
		DateOfBirth: patients.FormatDate(p.DateOfBirth),
		Age:         age,
		Gender:      patients.Capitalize(string(p.Gender)),
		Phone:       orNotAvailable(p.Phone),
		Email:       orNotAvailable(p.Email),
		Actions:     actions,
	}
}

type Form struct {
	Title       string
	SubmitLabel string
	Editing     bool
	Draft       patients.Draft
}

// Renderer is the view of the dashboard.
type Renderer interface {
	RenderHeader(header Header)
	RenderList(rows []Row)
	// SetEmpty shows or hides the empty state.
	SetEmpty(empty bool)
	SetLoading(loading bool)
	RenderForm(form Form)
	CloseForm()
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// SaveIndicator is the submit control of the patient form.
type SaveIndicator interface {
	SetSaving(saving bool)
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

// Renderers fans every call out to each renderer in order.
type Renderers []Renderer

func (r Renderers) RenderHeader(header Header) {
	for _, renderer := range r {
		renderer.RenderHeader(header)
	}
}

func (r Renderers) RenderList(rows []Row) {
	for _, renderer := range r {
		renderer.RenderList(rows)
	}
}

func (r Renderers) SetEmpty(empty bool) {
	for _, renderer := range r {
		renderer.SetEmpty(empty)
	}
}

func (r Renderers) SetLoading(loading bool) {
	for _, renderer := range r {
		renderer.SetLoading(loading)
	}
}

func (r Renderers) RenderForm(form Form) {
	for _, renderer := range r {
		renderer.RenderForm(form)
	}
}

func (r Renderers) CloseForm() {
	for _, renderer := range r {
		renderer.CloseForm()
	}
}
