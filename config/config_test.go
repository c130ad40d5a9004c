package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hospital-mgmt/frontdesk/config"
)

var _ = Describe("Config", func() {
	BeforeEach(func() {
		// keep a .env file in the working directory out of the way
		wd, err := os.Getwd()
		Expect(err).ToNot(HaveOccurred())
		Expect(os.Chdir(GinkgoT().TempDir())).To(Succeed())
		DeferCleanup(os.Chdir, wd)
	})

	It("has defaults", func() {
		GinkgoT().Setenv("FRONTDESK_SESSION_FILE", "")
		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.ApiBaseUrl).To(Equal("http://localhost:8080"))
		Expect(cfg.HttpTimeout).To(BeZero())
		Expect(cfg.NotificationTTL).To(Equal(5 * time.Second))
		Expect(cfg.LoginRedirectDelay).To(Equal(time.Second))
		Expect(cfg.RegisterRedirectDelay).To(Equal(2 * time.Second))
		Expect(filepath.Base(cfg.SessionFile)).To(Equal("session.json"))
	})

	It("reads the environment", func() {
		GinkgoT().Setenv("FRONTDESK_API_BASE_URL", "https://hospital.example.com")
		GinkgoT().Setenv("FRONTDESK_HTTP_TIMEOUT", "30s")
		GinkgoT().Setenv("FRONTDESK_SESSION_FILE", "/tmp/frontdesk.json")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.ApiBaseUrl).To(Equal("https://hospital.example.com"))
		Expect(cfg.HttpTimeout).To(Equal(30 * time.Second))
		Expect(cfg.SessionFile).To(Equal("/tmp/frontdesk.json"))
	})
})

var _ = Describe("Config with a .env file", func() {
	It("loads variables from it", func() {
		wd, err := os.Getwd()
		Expect(err).ToNot(HaveOccurred())
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, ".env"), []byte("FRONTDESK_NOTIFICATION_TTL=9s\n"), 0o600)).To(Succeed())
		Expect(os.Chdir(dir)).To(Succeed())
		DeferCleanup(os.Chdir, wd)
		DeferCleanup(os.Unsetenv, "FRONTDESK_NOTIFICATION_TTL")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.NotificationTTL).To(Equal(9 * time.Second))
	})
})
