package push_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gordonhealth/staff-portal/internal/core/events"
	"github.com/gordonhealth/staff-portal/internal/push"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPushService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Push Service Suite")
}

var _ = Describe("Push Service", func() {
	var (
		bus     *events.EventBus
		service *push.Service
		slogger *slog.Logger
	)

	BeforeEach(func() {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(slogger)
		service = push.NewService(bus, 10*time.Millisecond, slogger)
	})

	Describe("Send", func() {
		It("should queue the broadcast and deliver it after the dispatch delay", func() {
			broadcast, err := service.Send(context.Background(), push.CreateBroadcastDTO{
				Title:   "System maintenance",
				Message: "The portal restarts at 22:00 tonight.",
			}, "Grace Park")
			Expect(err).NotTo(HaveOccurred())
			Expect(broadcast.ID).NotTo(BeEmpty())
			Expect(broadcast.Author).To(Equal("Grace Park"))

			Eventually(service.Latest).ShouldNot(BeNil())

			latest := service.Latest()
			Expect(latest.ID).To(Equal(broadcast.ID))
			Expect(latest.Title).To(Equal("System maintenance"))
			Expect(latest.Message).To(Equal("The portal restarts at 22:00 tonight."))
			Expect(latest.Author).To(Equal("Grace Park"))
		})

		It("should replace the latest broadcast with each delivery", func() {
			first, err := service.Send(context.Background(), push.CreateBroadcastDTO{
				Title:   "First",
				Message: "First message.",
			}, "Grace Park")
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() bool {
				latest := service.Latest()
				return latest != nil && latest.ID == first.ID
			}).Should(BeTrue())

			second, err := service.Send(context.Background(), push.CreateBroadcastDTO{
				Title:   "Second",
				Message: "Second message.",
			}, "Grace Park")
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() bool {
				latest := service.Latest()
				return latest != nil && latest.ID == second.ID
			}).Should(BeTrue())
		})

		It("should reject a broadcast with no title", func() {
			_, err := service.Send(context.Background(), push.CreateBroadcastDTO{
				Message: "No title.",
			}, "Grace Park")
			Expect(err).To(HaveOccurred())
		})

		It("should reject a broadcast with no message", func() {
			_, err := service.Send(context.Background(), push.CreateBroadcastDTO{
				Title: "No message",
			}, "Grace Park")
			Expect(err).To(HaveOccurred())
		})

		It("should survive the caller's context ending before delivery", func() {
			ctx, cancel := context.WithCancel(context.Background())
			broadcast, err := service.Send(ctx, push.CreateBroadcastDTO{
				Title:   "Detached",
				Message: "Delivery outlives the request.",
			}, "Grace Park")
			Expect(err).NotTo(HaveOccurred())
			cancel()

			Eventually(func() bool {
				latest := service.Latest()
				return latest != nil && latest.ID == broadcast.ID
			}).Should(BeTrue())
		})
	})

	Describe("Latest", func() {
		It("should be nil before any broadcast", func() {
			Expect(service.Latest()).To(BeNil())
		})
	})
})
