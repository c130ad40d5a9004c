package patients

import (
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient is the server's record. The id is assigned by the server and never changes.
type Patient struct {
	Id          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      Gender `json:"gender"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Fields is the request body sent when creating or updating a patient. Optional fields are
// sent as empty strings, the same way the dashboard form submits them.
type Fields struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      Gender `json:"gender"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// Find returns the patient with the given id from list.
func Find(list []Patient, id int64) (Patient, bool) {
	for _, p := range list {
		if p.Id == id {
			return p, true
		}
	}
	return Patient{}, false
}
