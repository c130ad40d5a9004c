package test

import (
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test runs the ginkgo suite of the calling package. The suite is named after the package,
// e.g. "roster" for github.com/hospital-mgmt/frontdesk/roster_test.
func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, suiteName(callerFunc(2)))
}

func callerFunc(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return runtime.FuncForPC(pc).Name()
}

func suiteName(funcName string) string {
	dir, name := path.Split(funcName)
	pkg, _, _ := strings.Cut(name, ".")
	pkg = strings.TrimSuffix(pkg, "_test")
	if dir == "" {
		return pkg
	}
	return path.Base(dir) + "/" + pkg
}
