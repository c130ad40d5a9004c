package errors_test

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hospital-mgmt/frontdesk/errors"
)

var _ = Describe("Errors", func() {
	DescribeTable("UserMessage",
		func(err error, expected string) {
			Expect(errors.UserMessage(err, "fallback")).To(Equal(expected))
		},
		Entry("validation", errors.NewValidationError("Please fill in all fields"), "Please fill in all fields"),
		Entry("wrapped validation", fmt.Errorf("submit: %w", errors.NewValidationError("bad")), "bad"),
		Entry("remote with message", &errors.RemoteError{Code: 400, Message: "Invalid input"}, "Invalid input"),
		Entry("remote without message", &errors.RemoteError{Code: 500}, "fallback"),
		Entry("transport", &errors.TransportError{Err: stdErrors.New("dial tcp: refused")}, errors.ConnectionErrorMessage),
		Entry("other", stdErrors.New("boom"), "fallback"),
	)

	It("matches status sentinels through remote errors", func() {
		err := fmt.Errorf("list: %w", &errors.RemoteError{Code: http.StatusForbidden})
		Expect(stdErrors.Is(err, errors.Forbidden)).To(BeTrue())
		Expect(stdErrors.Is(err, errors.NotFound)).To(BeFalse())
	})

	It("does not map successful status codes", func() {
		Expect(stdErrors.Unwrap(&errors.RemoteError{Code: http.StatusOK})).To(BeNil())
	})

	It("creates errors for codes without a sentinel", func() {
		Expect(errors.FromStatusCode(http.StatusTeapot).Error()).To(Equal(http.StatusText(http.StatusTeapot)))
	})

	Describe("JSONHTTPErrorHandler", func() {
		It("renders http errors as json", func() {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			errors.JSONHTTPErrorHandler(echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials"), c)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Invalid credentials"}`))
		})

		It("renders sentinel errors with their code", func() {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			errors.JSONHTTPErrorHandler(fmt.Errorf("patient: %w", errors.NotFound), c)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"patient: not found"}`))
		})
	})
})
