package patients

import (
	"strconv"
	"strings"
)

// Draft mirrors the patient form while it is open. It only exists between opening the
// modal and submitting or cancelling it.
type Draft struct {
	PatientId   string `structs:"patientId" label:"-"`
	FirstName   string `structs:"firstName" label:"First Name" required:"true"`
	LastName    string `structs:"lastName" label:"Last Name" required:"true"`
	DateOfBirth string `structs:"dateOfBirth" label:"Date of Birth" required:"true" input:"date"`
	Gender      string `structs:"gender" label:"Gender" required:"true" input:"select"`
	Phone       string `structs:"phone" label:"Phone" input:"tel"`
	Email       string `structs:"email" label:"Email" input:"email"`
	Address     string `structs:"address" label:"Address" input:"textarea"`
}

func NewDraft(p Patient) Draft {
	return Draft{
		PatientId:   strconv.FormatInt(p.Id, 10),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Gender:      string(p.Gender),
		Phone:       p.Phone,
		Email:       p.Email,
		Address:     p.Address,
	}
}

// Trimmed strips surrounding whitespace from the free text fields. The date and gender
// come from constrained inputs and are left untouched.
func (d Draft) Trimmed() Draft {
	d.PatientId = strings.TrimSpace(d.PatientId)
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.Address = strings.TrimSpace(d.Address)
	return d
}

func (d Draft) Fields() Fields {
	return Fields{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		Gender:      Gender(d.Gender),
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
	}
}

// Id parses the hidden patient id of an edit draft.
func (d Draft) Id() (int64, bool) {
	if d.PatientId == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(d.PatientId, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
