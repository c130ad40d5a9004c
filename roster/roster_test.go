package roster_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/roster"
	"github.com/hospital-mgmt/frontdesk/session"
)

var _ = Describe("Roster", func() {
	DescribeTable("Capabilities",
		func(user *session.User, add, edit, del bool) {
			capabilities := roster.Capabilities(user)
			Expect(capabilities.Contains(roster.ActionAdd)).To(Equal(add))
			Expect(capabilities.Contains(roster.ActionEdit)).To(Equal(edit))
			Expect(capabilities.Contains(roster.ActionDelete)).To(Equal(del))
		},
		Entry("receptionist", &session.User{Role: session.RoleReceptionist}, true, true, true),
		Entry("doctor", &session.User{Role: session.RoleDoctor}, false, true, false),
		Entry("unknown role", &session.User{Role: "nurse"}, true, true, false),
		Entry("no user", nil, true, true, false),
	)

	It("does not share capability sets between callers", func() {
		receptionist := &session.User{Role: session.RoleReceptionist}
		roster.Capabilities(receptionist).Remove(roster.ActionDelete)
		Expect(roster.Capabilities(receptionist).Contains(roster.ActionDelete)).To(BeTrue())
	})

	Describe("NewRow", func() {
		now := time.Date(2024, time.June, 14, 9, 0, 0, 0, time.UTC)

		It("formats the display values", func() {
			row := roster.NewRow(patients.Patient{
				Id:          3,
				FirstName:   "Alan",
				LastName:    "Turing",
				DateOfBirth: "2000-06-15",
				Gender:      patients.GenderMale,
				Phone:       "555-0100",
			}, roster.Capabilities(&session.User{Role: session.RoleReceptionist}), now)

			Expect(row).To(Equal(roster.Row{
				Id:          3,
				Name:        "Alan Turing",
				DateOfBirth: "Jun 15, 2000",
				Age:         "23",
				Gender:      "Male",
				Phone:       "555-0100",
				Email:       "N/A",
				Actions:     []roster.Action{roster.ActionEdit, roster.ActionDelete},
			}))
		})

		It("only offers edit to doctors", func() {
			row := roster.NewRow(patients.Patient{DateOfBirth: "2000-06-15"}, roster.Capabilities(&session.User{Role: session.RoleDoctor}), now)
			Expect(row.Can(roster.ActionEdit)).To(BeTrue())
			Expect(row.Can(roster.ActionDelete)).To(BeFalse())
		})

		It("keeps markup in free text as is", func() {
			row := roster.NewRow(patients.Patient{FirstName: "<b>x</b>", LastName: "&"}, roster.Capabilities(nil), now)
			Expect(row.Name).To(Equal("<b>x</b> &"))
			Expect(row.Age).To(Equal("N/A"))
		})

		It("does not pad the name when the last name is missing", func() {
			row := roster.NewRow(patients.Patient{FirstName: "Alan"}, roster.Capabilities(nil), now)
			Expect(row.Name).To(Equal("Alan"))
		})
	})

	It("fans out to every renderer", func() {
		first := &recorder{}
		second := &recorder{}
		renderers := roster.Renderers{first, second}

		renderers.SetLoading(true)
		renderers.RenderList([]roster.Row{{Id: 1}})

		Expect(first.calls).To(Equal([]string{"loading", "list"}))
		Expect(second.calls).To(Equal(first.calls))
	})
})

type recorder struct {
	calls []string
}

func (r *recorder) RenderHeader(roster.Header) { r.calls = append(r.calls, "header") }
func (r *recorder) RenderList([]roster.Row)    { r.calls = append(r.calls, "list") }
func (r *recorder) SetEmpty(bool)              { r.calls = append(r.calls, "empty") }
func (r *recorder) SetLoading(bool)            { r.calls = append(r.calls, "loading") }
func (r *recorder) RenderForm(roster.Form)     { r.calls = append(r.calls, "form") }
func (r *recorder) CloseForm()                 { r.calls = append(r.calls, "close") }
