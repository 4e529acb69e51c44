package notice_test

import (
	"testing"

	"github.com/gordonhealth/staff-portal/internal/notice"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNoticeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notice Service Suite")
}

var _ = Describe("Notice Service", func() {
	var service *notice.Service

	BeforeEach(func() {
		service = notice.NewService()
	})

	Describe("List", func() {
		It("should return the whole board in publication order", func() {
			notices := service.List()
			Expect(notices).To(HaveLen(3))
			Expect(notices[0].ID).To(Equal("1"))
			Expect(notices[1].ID).To(Equal("2"))
			Expect(notices[2].ID).To(Equal("3"))
		})

		It("should hand out a copy, not the backing slice", func() {
			notices := service.List()
			notices[0].Title = "tampered"

			again := service.List()
			Expect(again[0].Title).NotTo(Equal("tampered"))
		})
	})

	Describe("Important", func() {
		It("should keep only must-read notices", func() {
			notices := service.Important(10)
			Expect(notices).To(HaveLen(2))
			for _, n := range notices {
				Expect(n.IsImportant).To(BeTrue())
			}
		})

		It("should respect the limit", func() {
			notices := service.Important(1)
			Expect(notices).To(HaveLen(1))
			Expect(notices[0].ID).To(Equal("1"))
		})

		It("should return an empty slice for a zero limit", func() {
			Expect(service.Important(0)).To(BeEmpty())
		})
	})
})
