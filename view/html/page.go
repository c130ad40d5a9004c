// Package html renders a static snapshot of the dashboard.
package html

import (
	"io"
	"strconv"
	"sync"

	"github.com/fatih/structs"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hospital-mgmt/frontdesk/notify"
	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/roster"
)

const PageTitle = "Hospital Management - Dashboard"

var genders = []patients.Gender{patients.GenderMale, patients.GenderFemale, patients.GenderOther}

// Page collects what the roster controller renders and writes it as one HTML document.
// Every text value goes through gomponents, which escapes it.
type Page struct {
	mu            sync.Mutex
	header        roster.Header
	rows          []roster.Row
	empty         bool
	loading       bool
	form          *roster.Form
	notifications []notify.Notification
}

var (
	_ roster.Renderer = &Page{}
	_ notify.Sink     = &Page{}
)

func NewPage() *Page {
	return &Page{}
}

func (p *Page) RenderHeader(header roster.Header) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.header = header
}

func (p *Page) RenderList(rows []roster.Row) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = rows
}

func (p *Page) SetEmpty(empty bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.empty = empty
}

func (p *Page) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = loading
}

func (p *Page) RenderForm(form roster.Form) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = &form
}

func (p *Page) CloseForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = nil
}

func (p *Page) Shown(n notify.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, n)
}

func (p *Page) Dismissed(n notify.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.notifications {
		if existing.Id == n.Id {
			p.notifications = append(p.notifications[:i:i], p.notifications[i+1:]...)
			return
		}
	}
}

// Render writes the complete document to w.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.document().Render(w)
}

func (p *Page) document() g.Node {
	var modal g.Node
	if p.form != nil {
		modal = patientForm(*p.form)
	}

	return h.Doctype(h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.TitleEl(g.Text(PageTitle)),
		),
		h.Body(
			headerBar(p.header),
			notificationArea(p.notifications),
			h.Main(
				g.If(p.header.CanAdd, h.Button(h.ID("addPatientBtn"), h.Type("button"), g.Text("Add Patient"))),
				g.If(p.loading, h.Div(h.ID("loadingSpinner"), g.Text("Loading..."))),
				g.If(p.empty, h.Div(h.ID("emptyState"), g.Text("No patients found"))),
				g.If(len(p.rows) > 0, patientTable(p.rows)),
			),
			modal,
		),
	),
	)
}

func headerBar(header roster.Header) g.Node {
	return h.Header(
		h.Span(h.Class("user-avatar"), g.Text(header.Initial)),
		h.Span(h.ID("userName"), g.Text(header.Username)),
		h.Span(h.ID("userRole"), g.Text(header.Role)),
	)
}

func notificationArea(notifications []notify.Notification) g.Node {
	return h.Div(h.ID("notificationArea"),
		g.Map(notifications, func(n notify.Notification) g.Node {
			return h.Div(
				h.Class("alert alert-"+string(n.Severity)),
				h.Data("id", n.Id),
				g.Text(n.Message),
			)
		}),
	)
}

func patientTable(rows []roster.Row) g.Node {
	return h.Table(h.ID("patientsTable"),
		h.THead(h.Tr(
			h.Th(g.Text("ID")),
			h.Th(g.Text("Name")),
			h.Th(g.Text("Date of Birth")),
			h.Th(g.Text("Age")),
			h.Th(g.Text("Gender")),
			h.Th(g.Text("Phone")),
			h.Th(g.Text("Email")),
			h.Th(g.Text("Actions")),
		)),
		h.TBody(g.Map(rows, patientRow)),
	)
}

func patientRow(row roster.Row) g.Node {
	id := strconv.FormatInt(row.Id, 10)
	return h.Tr(
		h.Data("id", id),
		h.Td(g.Text(id)),
		h.Td(h.Strong(g.Text(row.Name))),
		h.Td(g.Text(row.DateOfBirth)),
		h.Td(g.Text(row.Age)),
		h.Td(g.Text(row.Gender)),
		h.Td(g.Text(row.Phone)),
		h.Td(g.Text(row.Email)),
		h.Td(
			g.If(row.Can(roster.ActionEdit), h.Button(h.Class("edit-btn"), h.Data("id", id), g.Text("Edit"))),
			g.If(row.Can(roster.ActionDelete), h.Button(h.Class("delete-btn"), h.Data("id", id), g.Text("Delete"))),
		),
	)
}

// patientForm walks the draft's tagged fields so the form stays in step with Draft.
func patientForm(form roster.Form) g.Node {
	var controls []g.Node
	for _, field := range structs.Fields(form.Draft) {
		name := field.Tag("structs")
		value, _ := field.Value().(string)
		label := field.Tag("label")
		if label == "-" {
			controls = append(controls, h.Input(h.Type("hidden"), h.ID(name), h.Name(name), h.Value(value)))
			continue
		}
		controls = append(controls, h.Div(h.Class("form-group"),
			h.Label(h.For(name), g.Text(label)),
			formControl(name, value, field.Tag("input"), field.Tag("required") == "true"),
		))
	}

	return h.Div(h.ID("patientModal"), h.Class("modal"),
		h.H2(h.ID("modalTitle"), g.Text(form.Title)),
		h.Form(h.ID("patientForm"),
			g.Group(controls),
			h.Button(h.Type("submit"), h.ID("savePatientBtn"), g.Text(form.SubmitLabel)),
		),
	)
}

func formControl(name string, value string, input string, required bool) g.Node {
	common := []g.Node{h.ID(name), h.Name(name), g.If(required, h.Required())}

	switch input {
	case "select":
		options := []g.Node{h.Option(h.Value(""), g.Text("Select gender"))}
		for _, gender := range genders {
			options = append(options, h.Option(
				h.Value(string(gender)),
				g.If(string(gender) == value, h.Selected()),
				g.Text(patients.Capitalize(string(gender))),
			))
		}
		return h.Select(g.Group(common), g.Group(options))
	case "textarea":
		return h.Textarea(g.Group(common), g.Text(value))
	case "":
		input = "text"
	}
	return h.Input(h.Type(input), h.Value(value), g.Group(common))
}
