package test

import (
	"time"

	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/test"
)

var genders = []string{string(patients.GenderMale), string(patients.GenderFemale), string(patients.GenderOther)}

func RandomGender() patients.Gender {
	return patients.Gender(test.Faker.RandomStringElement(genders))
}

// RandomDateOfBirth returns a date between 1 and 90 years before now.
func RandomDateOfBirth(now time.Time) string {
	days := test.Faker.IntBetween(366, 90*365)
	return now.AddDate(0, 0, -days).Format(time.DateOnly)
}

func RandomPatient() patients.Patient {
	return patients.Patient{
		FirstName:   test.Faker.Person().FirstName(),
		LastName:    test.Faker.Person().LastName(),
		DateOfBirth: RandomDateOfBirth(time.Now()),
		Gender:      RandomGender(),
		Phone:       test.Faker.Phone().Number(),
		Email:       test.Faker.Internet().Email(),
		Address:     test.Faker.Address().Address(),
	}
}

// RandomDraft returns a new patient form that passes validation.
func RandomDraft() patients.Draft {
	draft := patients.NewDraft(RandomPatient())
	draft.PatientId = ""
	return draft
}
