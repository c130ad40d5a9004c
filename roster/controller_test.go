package roster_test

import (
	"context"
	stdErrors "errors"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/hospital-mgmt/frontdesk/backend"
	backendTest "github.com/hospital-mgmt/frontdesk/backend/test"
	"github.com/hospital-mgmt/frontdesk/errors"
	"github.com/hospital-mgmt/frontdesk/notify"
	notifyTest "github.com/hospital-mgmt/frontdesk/notify/test"
	"github.com/hospital-mgmt/frontdesk/patients"
	patientsTest "github.com/hospital-mgmt/frontdesk/patients/test"
	"github.com/hospital-mgmt/frontdesk/roster"
	rosterTest "github.com/hospital-mgmt/frontdesk/roster/test"
	"github.com/hospital-mgmt/frontdesk/session"
	"github.com/hospital-mgmt/frontdesk/test"
)

var today = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newSession(role session.Role) *session.Context {
	sessionContext := session.NewContext(session.NewMemoryStore(), zap.NewNop().Sugar())
	Expect(sessionContext.Save("token", map[string]interface{}{"id": 1, "username": "frontdesk", "role": string(role)})).To(Succeed())
	return sessionContext
}

func newValidator() *patients.Validator {
	validator, err := patients.NewValidator(patients.DefaultRules())
	Expect(err).ToNot(HaveOccurred())
	return validator
}

type savingRecorder struct {
	calls []bool
}

func (s *savingRecorder) SetSaving(saving bool) {
	s.calls = append(s.calls, saving)
}

var _ = Describe("Controller", func() {
	var ctx context.Context
	var client *backendTest.MockClientInterface
	var renderer *rosterTest.Renderer
	var surface *notifyTest.Recorder
	var confirmer *rosterTest.Confirmer
	var saving *savingRecorder
	var controller *roster.Controller

	cached := []patients.Patient{
		{Id: 1, FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-12-10", Gender: patients.GenderFemale},
		{Id: 2, FirstName: "Alan", LastName: "Turing", DateOfBirth: "2000-06-15", Gender: patients.GenderMale, Email: "alan@example.com"},
	}

	newController := func(role session.Role) *roster.Controller {
		return roster.NewController(roster.Params{
			Client:    client,
			Session:   newSession(role),
			Renderer:  renderer,
			Notifier:  surface,
			Confirmer: confirmer,
			Validator: newValidator(),
			Logger:    zap.NewNop().Sugar(),
			Indicator: saving,
			Clock:     func() time.Time { return today },
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		client = backendTest.NewMockClientInterface(gomock.NewController(GinkgoT()))
		renderer = rosterTest.NewRenderer()
		surface = notifyTest.NewRecorder()
		confirmer = &rosterTest.Confirmer{}
		saving = &savingRecorder{}
		controller = newController(session.RoleReceptionist)
	})

	Describe("LoadUserInfo", func() {
		It("renders the header of a receptionist", func() {
			controller.LoadUserInfo()
			Expect(renderer.Header).To(Equal(roster.Header{Username: "frontdesk", Role: "RECEPTIONIST", Initial: "F", CanAdd: true}))
		})

		It("hides the add action from doctors", func() {
			controller = newController(session.RoleDoctor)
			controller.LoadUserInfo()
			Expect(renderer.Header.CanAdd).To(BeFalse())
			Expect(controller.Can(roster.ActionDelete)).To(BeFalse())
		})
	})

	Describe("LoadPatients", func() {
		It("renders a row per patient in order", func() {
			client.EXPECT().ListPatients(gomock.Any()).Return(cached, nil)

			Expect(controller.Start(ctx)).To(Succeed())
			Expect(controller.State()).To(Equal(roster.StatePopulated))
			Expect(renderer.Rows).To(HaveLen(2))
			Expect(renderer.Rows[0].Name).To(Equal("Ada Lovelace"))
			Expect(renderer.Rows[1].Age).To(Equal("24"))
			Expect(renderer.Rows[1].Actions).To(ContainElement(roster.ActionDelete))
			Expect(renderer.Empty).To(BeFalse())
			Expect(renderer.LoadingCalls).To(Equal([]bool{true, false}))
		})

		It("shows the empty state for an empty list", func() {
			client.EXPECT().ListPatients(gomock.Any()).Return(nil, nil)

			Expect(controller.LoadPatients(ctx)).To(Succeed())
			Expect(controller.State()).To(Equal(roster.StateEmpty))
			Expect(controller.Patients()).To(BeEmpty())
			Expect(renderer.Empty).To(BeTrue())
			Expect(renderer.Rows).To(BeEmpty())
		})

		It("empties the cache and hides the spinner once when loading fails", func() {
			client.EXPECT().ListPatients(gomock.Any()).Return(cached, nil)
			Expect(controller.LoadPatients(ctx)).To(Succeed())
			renderer.LoadingCalls = nil

			client.EXPECT().ListPatients(gomock.Any()).Return(nil, &errors.RemoteError{Code: http.StatusInternalServerError})
			Expect(controller.LoadPatients(ctx)).ToNot(Succeed())

			Expect(controller.State()).To(Equal(roster.StateLoadFailed))
			Expect(controller.Patients()).To(BeEmpty())
			Expect(renderer.Hides()).To(Equal(1))
			Expect(renderer.Loading).To(BeFalse())
			Expect(surface.Last()).To(Equal(notifyTest.Shown{Message: roster.MessageLoadFailed, Severity: notify.SeverityDanger}))
		})
	})

	Describe("Modal", func() {
		BeforeEach(func() {
			client.EXPECT().ListPatients(gomock.Any()).Return(cached, nil)
			Expect(controller.Start(ctx)).To(Succeed())
		})

		It("opens an empty add form", func() {
			controller.ShowAddPatientModal()

			Expect(controller.ModalOpen()).To(BeTrue())
			Expect(controller.Editing()).To(BeFalse())
			Expect(renderer.Form).To(Equal(&roster.Form{Title: roster.TitleAddPatient, SubmitLabel: roster.LabelAddPatient}))
		})

		It("prefills the edit form from the cache", func() {
			Expect(controller.EditPatient(2)).To(Succeed())

			Expect(controller.Editing()).To(BeTrue())
			Expect(renderer.Form.Title).To(Equal(roster.TitleEditPatient))
			Expect(renderer.Form.SubmitLabel).To(Equal(roster.LabelEditPatient))
			Expect(renderer.Form.Draft).To(Equal(patients.NewDraft(cached[1])))
		})

		It("does not open the form for an id missing from the cache", func() {
			err := controller.EditPatient(3)

			Expect(stdErrors.Is(err, errors.NotFound)).To(BeTrue())
			Expect(controller.ModalOpen()).To(BeFalse())
			Expect(renderer.Form).To(BeNil())
			Expect(surface.Last()).To(Equal(notifyTest.Shown{Message: roster.MessagePatientNotFound, Severity: notify.SeverityDanger}))
		})

		It("does not touch the cache when the draft changes", func() {
			Expect(controller.EditPatient(1)).To(Succeed())
			draft := controller.Draft()
			draft.FirstName = "Changed"

			Expect(controller.Patients()[0].FirstName).To(Equal("Ada"))
		})

		It("resets the form when closed", func() {
			Expect(controller.EditPatient(1)).To(Succeed())
			controller.ClosePatientModal()

			Expect(controller.ModalOpen()).To(BeFalse())
			Expect(controller.Editing()).To(BeFalse())
			Expect(controller.Draft()).To(Equal(patients.Draft{}))
			Expect(renderer.FormCloses).To(Equal(1))
		})
	})

	Describe("HandlePatientSubmit", func() {
		var draft patients.Draft

		BeforeEach(func() {
			draft = patientsTest.RandomDraft()
			draft.DateOfBirth = "1985-03-02"
		})

		It("creates the patient and reloads the list", func() {
			created := draft.Trimmed().Fields()
			gomock.InOrder(
				client.EXPECT().CreatePatient(gomock.Any(), created).Return(&patients.Patient{Id: 9}, nil),
				client.EXPECT().ListPatients(gomock.Any()).Return(cached, nil),
			)

			controller.ShowAddPatientModal()
			Expect(controller.HandlePatientSubmit(ctx, draft)).To(Succeed())

			Expect(surface.Shown()).To(ContainElement(notifyTest.Shown{Message: roster.MessagePatientAdded, Severity: notify.SeveritySuccess}))
			Expect(controller.ModalOpen()).To(BeFalse())
			Expect(controller.State()).To(Equal(roster.StatePopulated))
			Expect(saving.calls).To(Equal([]bool{true, false}))
		})

		It("updates the patient being edited", func() {
			client.EXPECT().ListPatients(gomock.Any()).Return(cached, nil).Times(2)
			client.EXPECT().UpdatePatient(gomock.Any(), int64(2), test.Match(func(f patients.Fields) bool {
				return f.Phone == "555-0199"
			})).Return(&cached[1], nil)

			Expect(controller.LoadPatients(ctx)).To(Succeed())
			Expect(controller.EditPatient(2)).To(Succeed())
			edited := controller.Draft()
			edited.Phone = " 555-0199 "

			Expect(controller.HandlePatientSubmit(ctx, edited)).To(Succeed())
			Expect(surface.Shown()).To(ContainElement(notifyTest.Shown{Message: roster.MessagePatientUpdated, Severity: notify.SeveritySuccess}))
		})

		It("does not call the api for an invalid draft", func() {
			draft.DateOfBirth = "2024-06-16"

			controller.ShowAddPatientModal()
			err := controller.HandlePatientSubmit(ctx, draft)

			Expect(err).To(MatchError(patients.MessageFutureBirthDate))
			Expect(controller.ModalOpen()).To(BeTrue())
			Expect(saving.calls).To(Equal([]bool{true, false}))
		})

		It("shows the server message when saving fails", func() {
			client.EXPECT().CreatePatient(gomock.Any(), gomock.Any()).Return(nil, &errors.RemoteError{Code: http.StatusBadRequest, Message: "Invalid patient data"})

			controller.ShowAddPatientModal()
			Expect(controller.HandlePatientSubmit(ctx, draft)).ToNot(Succeed())
			Expect(surface.Last().Message).To(Equal("Invalid patient data"))
			Expect(controller.ModalOpen()).To(BeTrue())
			Expect(saving.calls).To(Equal([]bool{true, false}))
		})

		It("falls back to the generic save message", func() {
			client.EXPECT().CreatePatient(gomock.Any(), gomock.Any()).Return(nil, &errors.RemoteError{Code: http.StatusInternalServerError})

			controller.ShowAddPatientModal()
			Expect(controller.HandlePatientSubmit(ctx, draft)).ToNot(Succeed())
			Expect(surface.Last().Message).To(Equal(roster.MessageSaveFailed))
		})
	})

	Describe("DeletePatient", func() {
		It("does nothing when the user declines", func() {
			confirmer.Answer = false

			deleted, err := controller.DeletePatient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeFalse())
			Expect(confirmer.Prompts).To(Equal([]string{roster.DeleteConfirmationPrompt}))
		})

		It("deletes and reloads when confirmed", func() {
			confirmer.Answer = true
			gomock.InOrder(
				client.EXPECT().DeletePatient(gomock.Any(), int64(1)).Return(nil),
				client.EXPECT().ListPatients(gomock.Any()).Return(cached[1:], nil),
			)

			deleted, err := controller.DeletePatient(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeTrue())
			Expect(controller.Patients()).To(Equal(cached[1:]))
			Expect(surface.Shown()).To(ContainElement(notifyTest.Shown{Message: roster.MessagePatientDeleted, Severity: notify.SeveritySuccess}))
		})

		It("always shows the generic message on failure", func() {
			confirmer.Answer = true
			client.EXPECT().DeletePatient(gomock.Any(), int64(1)).Return(&errors.RemoteError{Code: http.StatusForbidden, Message: "Forbidden"})

			_, err := controller.DeletePatient(ctx, 1)
			Expect(stdErrors.Is(err, errors.Forbidden)).To(BeTrue())
			Expect(surface.Last()).To(Equal(notifyTest.Shown{Message: roster.MessageDeleteFailed, Severity: notify.SeverityDanger}))
		})
	})
})

var _ = Describe("Controller against the api", func() {
	var ctx context.Context
	var server *backendTest.Server
	var renderer *rosterTest.Renderer
	var confirmer *rosterTest.Confirmer
	var controller *roster.Controller

	BeforeEach(func() {
		ctx = context.Background()
		server = backendTest.ServerStub(nil)
		DeferCleanup(server.Close)

		server.AddAccount("frontdesk", "Abcdef1!", session.RoleReceptionist)
		token, err := server.IssueToken("frontdesk")
		Expect(err).ToNot(HaveOccurred())

		sessionContext := session.NewContext(session.NewMemoryStore(), zap.NewNop().Sugar())
		Expect(sessionContext.Save(token, map[string]interface{}{"id": 1, "username": "frontdesk", "role": "receptionist"})).To(Succeed())

		client, err := backend.NewClient(server.URL, backend.WithTokenSource(sessionContext))
		Expect(err).ToNot(HaveOccurred())

		renderer = rosterTest.NewRenderer()
		confirmer = &rosterTest.Confirmer{}
		controller = roster.NewController(roster.Params{
			Client:    client,
			Session:   sessionContext,
			Renderer:  renderer,
			Notifier:  notifyTest.NewRecorder(),
			Confirmer: confirmer,
			Validator: newValidator(),
			Logger:    zap.NewNop().Sugar(),
		})

		server.AddPatient(patientsTest.RandomPatient())
		Expect(controller.Start(ctx)).To(Succeed())
	})

	It("issues no delete request when the user declines", func() {
		confirmer.Answer = false

		_, err := controller.DeletePatient(ctx, controller.Patients()[0].Id)
		Expect(err).ToNot(HaveOccurred())
		Expect(server.CountRequests(http.MethodDelete, "/api/patients")).To(Equal(0))
		Expect(server.Patients()).To(HaveLen(1))
	})

	It("includes a created patient exactly once after the reload", func() {
		draft := patientsTest.RandomDraft()
		draft.FirstName = "Unique"
		draft.LastName = "Record"

		controller.ShowAddPatientModal()
		Expect(controller.HandlePatientSubmit(ctx, draft)).To(Succeed())

		matches := 0
		for _, p := range controller.Patients() {
			if p.FirstName == "Unique" && p.LastName == "Record" {
				matches++
			}
		}
		Expect(matches).To(Equal(1))
		Expect(controller.Patients()).To(HaveLen(2))
		Expect(server.CountRequests(http.MethodGet, "/api/patients")).To(Equal(2))
	})

	It("removes a deleted patient after the reload", func() {
		confirmer.Answer = true

		deleted, err := controller.DeletePatient(ctx, controller.Patients()[0].Id)
		Expect(err).ToNot(HaveOccurred())
		Expect(deleted).To(BeTrue())
		Expect(controller.State()).To(Equal(roster.StateEmpty))
		Expect(renderer.Empty).To(BeTrue())
	})

	It("empties the cache when the server fails", func() {
		server.FailWith(http.MethodGet, http.StatusInternalServerError)

		Expect(controller.LoadPatients(ctx)).ToNot(Succeed())
		Expect(controller.Patients()).To(BeEmpty())
	})
})
