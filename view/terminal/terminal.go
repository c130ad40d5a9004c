// Package terminal renders the front desk in a text terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/hospital-mgmt/frontdesk/auth"
	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/notify"
	"github.com/hospital-mgmt/frontdesk/roster"
)

var hints = map[string]string{
	guard.LoginPath:     "run `frontdesk login` to sign in",
	guard.RegisterPath:  "run `frontdesk register` to create an account",
	guard.DashboardPath: "run `frontdesk dashboard` to see your patients",
}

var severityColors = map[notify.Severity]*color.Color{
	notify.SeveritySuccess: color.New(color.FgGreen),
	notify.SeverityDanger:  color.New(color.FgRed, color.Bold),
	notify.SeverityInfo:    color.New(color.FgCyan),
}

// Terminal writes notifications, navigation and the patient list to out and reads
// confirmations from in.
type Terminal struct {
	out       io.Writer
	in        *bufio.Reader
	logger    *zap.SugaredLogger
	assumeYes bool

	mu       sync.Mutex
	location string
}

var (
	_ notify.Sink           = &Terminal{}
	_ guard.Navigator       = &Terminal{}
	_ roster.Renderer       = &Terminal{}
	_ roster.Confirmer      = &Terminal{}
	_ roster.SaveIndicator  = &Terminal{}
	_ auth.LoadingIndicator = &Terminal{}
	_ auth.FieldMarker      = &Terminal{}
)

func New(out io.Writer, in io.Reader, logger *zap.SugaredLogger) *Terminal {
	return &Terminal{
		out:    out,
		in:     bufio.NewReader(in),
		logger: logger,
	}
}

// AssumeYes answers every confirmation with yes without reading input.
func (t *Terminal) AssumeYes(assumeYes bool) {
	t.assumeYes = assumeYes
}

func (t *Terminal) Shown(n notify.Notification) {
	c, ok := severityColors[n.Severity]
	if !ok {
		c = color.New(color.Reset)
	}
	t.printf("%s\n", c.Sprint(n.Message))
}

func (t *Terminal) Dismissed(n notify.Notification) {
	t.logger.Debugw("notification dismissed", "id", n.Id, "severity", n.Severity)
}

func (t *Terminal) Navigate(path string) {
	t.mu.Lock()
	t.location = path
	t.mu.Unlock()

	if hint, ok := hints[path]; ok {
		t.printf("%s\n", color.New(color.Faint).Sprintf("-> %s: %s", path, hint))
		return
	}
	t.printf("-> %s\n", path)
}

// Location is the last path navigated to, or empty.
func (t *Terminal) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.location
}

func (t *Terminal) Confirm(prompt string) bool {
	if t.assumeYes {
		return true
	}
	t.printf("%s [y/N]: ", prompt)
	answer, err := t.in.ReadString('\n')
	if err != nil && answer == "" {
		t.logger.Debugw("no confirmation read", "error", err)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (t *Terminal) RenderHeader(header roster.Header) {
	if header.Username == "" {
		return
	}
	t.printf("[%s] %s (%s)\n\n", header.Initial, header.Username, header.Role)
}

func (t *Terminal) RenderList(rows []roster.Row) {
	if len(rows) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDATE OF BIRTH\tAGE\tGENDER\tPHONE\tEMAIL\tACTIONS")
	for _, row := range rows {
		actions := make([]string, 0, len(row.Actions))
		for _, action := range row.Actions {
			actions = append(actions, string(action))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.FormatInt(row.Id, 10),
			row.Name,
			row.DateOfBirth,
			row.Age,
			row.Gender,
			row.Phone,
			row.Email,
			strings.Join(actions, ","),
		)
	}
	if err := w.Flush(); err != nil {
		t.logger.Errorw("unable to write patient list", "error", err)
	}
}

func (t *Terminal) SetEmpty(empty bool) {
	if empty {
		t.printf("No patients found\n")
	}
}

func (t *Terminal) SetLoading(loading bool) {
	t.logger.Debugw("loading", "loading", loading)
}

func (t *Terminal) SetSaving(saving bool) {
	t.logger.Debugw("saving", "saving", saving)
}

func (t *Terminal) MarkMismatch(mismatch bool) {
	if mismatch {
		t.printf("%s\n", color.YellowString("Passwords do not match"))
	}
}

func (t *Terminal) RenderForm(form roster.Form) {
	t.printf("%s\n", color.New(color.Bold).Sprint(form.Title))
}

func (t *Terminal) CloseForm() {}

func (t *Terminal) printf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}
