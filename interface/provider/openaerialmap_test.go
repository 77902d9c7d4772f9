package provider_test

import (
	"context"
	"io"
	"net/http"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/interface/provider"
	"github.com/airbusgeo/imagery-probe/service"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAerialMap", func() {
	var (
		api      *fakeAPI
		oam      *provider.OpenAerialMapProvider
		response string
		status   int
		ctx      = context.Background()
		area     = common.Area{BBox: common.DefaultBBox, Center: common.DefaultCenter}
	)

	BeforeEach(func() {
		status = http.StatusOK
		response = `{"meta":{"found":0},"results":[]}`
		api = newFakeAPI()
		api.HandleFunc("/meta", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			io.WriteString(w, response)
		}).Methods(http.MethodGet).Queries("format", "tiff")
		oam = provider.NewOpenAerialMapProvider()
		oam.Endpoint = api.URL("/meta")
	})

	AfterEach(func() {
		api.Close()
	})

	It("should query the catalog for tiff images in the bounding box", func() {
		_, err := oam.Probe(ctx, area)
		Expect(err).NotTo(HaveOccurred())

		reqs := api.Requests("/meta")
		Expect(reqs).To(HaveLen(1))
		Expect(reqs[0].Method).To(Equal(http.MethodGet))
		Expect(reqs[0].Query.Get("bbox")).To(Equal("-74.05,40.65,-73.85,40.85"))
		Expect(reqs[0].Query.Get("format")).To(Equal("tiff"))
	})

	It("should return the uuid of the first result", func() {
		response = `{"results":[
			{"uuid":"https://oin-hotosm.s3.amazonaws.com/5d4/0/first.tif","title":"first","provider":"OIN","acquisition_start":"2019-06-01T00:00:00.000Z"},
			{"uuid":"https://oin-hotosm.s3.amazonaws.com/5d4/0/second.tif","title":"second"},
			{"uuid":"https://oin-hotosm.s3.amazonaws.com/5d4/0/third.tif","title":"third"}
		]}`
		result, err := oam.Probe(ctx, area)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Found).To(BeTrue())
		Expect(result.ImageID).To(Equal("https://oin-hotosm.s3.amazonaws.com/5d4/0/first.tif"))
		Expect(result.Message).To(Equal("OpenAerialMap: found image https://oin-hotosm.s3.amazonaws.com/5d4/0/first.tif"))
		Expect(result.Message).NotTo(ContainSubstring("second"))
	})

	It("should not fail on an unparsable acquisition date", func() {
		response = `{"results":[{"uuid":"abc","acquisition_start":"sometime last summer"}]}`
		result, err := oam.Probe(ctx, area)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ImageID).To(Equal("abc"))
	})

	DescribeTable("should report no images available",
		func(body string) {
			response = body
			result, err := oam.Probe(ctx, area)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Found).To(BeFalse())
			Expect(result.ImageID).To(BeEmpty())
			Expect(result.Message).To(Equal("OpenAerialMap: no images available."))
		},
		Entry("empty results", `{"results":[]}`),
		Entry("null results", `{"results":null}`),
		Entry("absent results", `{"meta":{"found":0}}`),
	)

	It("should classify a non-success status", func() {
		status = http.StatusInternalServerError
		response = `{"error":"boom"}`
		_, err := oam.Probe(ctx, area)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("500"))
		Expect(service.KindOf(err)).To(Equal(service.ErrorKindStatus))
		Expect(service.Temporary(err)).To(BeTrue())
	})

	It("should classify an invalid json body", func() {
		response = `<html>maintenance</html>`
		_, err := oam.Probe(ctx, area)
		Expect(err).To(HaveOccurred())
		Expect(service.KindOf(err)).To(Equal(service.ErrorKindDecode))
	})

	It("should classify a results field that is not a list", func() {
		response = `{"results":{"uuid":"abc"}}`
		_, err := oam.Probe(ctx, area)
		Expect(service.KindOf(err)).To(Equal(service.ErrorKindDecode))
	})

	It("should classify an unreachable catalog", func() {
		oam.Endpoint = unreachableURL() + "/meta"
		_, err := oam.Probe(ctx, area)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).NotTo(BeEmpty())
		Expect(service.KindOf(err)).To(Equal(service.ErrorKindTransport))
	})
})
