package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// RandomUsername returns a username long enough for the registration policy.
func RandomUsername() string {
	return Faker.Internet().User() + Faker.Numerify("###")
}

// RandomStrongPassword returns a password with an upper case letter, a lower case letter,
// a digit and a special character.
func RandomStrongPassword() string {
	return "Aa1!" + Faker.RandomStringWithLength(8)
}
