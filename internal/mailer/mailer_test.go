package mailer_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hafiztri/comic-shelf/internal"
	"github.com/hafiztri/comic-shelf/internal/core/events"
	"github.com/hafiztri/comic-shelf/internal/mailer"
)

func TestMailer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mailer Suite")
}

var _ = Describe("Mailer", func() {
	var (
		bus *events.EventBus
		m   *mailer.Mailer
	)

	slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		bus = events.NewEventBus(slogger)
		m = mailer.New(internal.MailConfig{}, slogger)
		m.Register(bus)
	})

	It("consumes registration events without SMTP configured", func() {
		event := events.NewUserRegisteredEvent(1, "reader@example.com", "reader")
		Expect(bus.PublishSync(context.Background(), event)).To(Succeed())
	})

	It("consumes password reset events without SMTP configured", func() {
		event := events.NewPasswordResetRequestedEvent(1, "reader@example.com", "reader", "raw-token")
		Expect(bus.PublishSync(context.Background(), event)).To(Succeed())
	})

	It("rejects events of the wrong concrete type", func() {
		wrong := events.NewUserRegisteredEvent(1, "reader@example.com", "reader")
		err := m.HandlePasswordResetRequested(context.Background(), wrong)
		Expect(err).To(HaveOccurred())

		err = m.HandleUserRegistered(context.Background(),
			events.NewPasswordResetRequestedEvent(1, "reader@example.com", "reader", "raw-token"))
		Expect(err).To(HaveOccurred())
	})
})
