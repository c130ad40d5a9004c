package patients

import "github.com/hospital-mgmt/frontdesk/pointer"

// Changes holds the fields of an edit that were actually given. Nil fields keep the value
// of the draft they are applied to.
type Changes struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *string
	Gender      *string
	Phone       *string
	Email       *string
	Address     *string
}

func (c Changes) Apply(d Draft) Draft {
	d.FirstName = pointer.Default(c.FirstName, d.FirstName)
	d.LastName = pointer.Default(c.LastName, d.LastName)
	d.DateOfBirth = pointer.Default(c.DateOfBirth, d.DateOfBirth)
	d.Gender = pointer.Default(c.Gender, d.Gender)
	d.Phone = pointer.Default(c.Phone, d.Phone)
	d.Email = pointer.Default(c.Email, d.Email)
	d.Address = pointer.Default(c.Address, d.Address)
	return d
}
