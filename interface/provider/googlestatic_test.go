package provider_test

import (
	"context"
	"net/http"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/interface/provider"
	"github.com/airbusgeo/imagery-probe/service"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("GoogleStaticMap", func() {
	var (
		api  *fakeAPI
		gm   *provider.GoogleStaticMapProvider
		ctx  = context.Background()
		area = common.Area{BBox: common.DefaultBBox, Center: common.DefaultCenter}
	)

	BeforeEach(func() {
		api = newFakeAPI()
		api.HandleFunc("/maps/api/staticmap", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("key") != "valid-key" {
				http.Error(w, "The provided API key is invalid.", http.StatusForbidden)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("\x89PNG"))
		}).Methods(http.MethodGet)
		gm = provider.NewGoogleStaticMapProvider("valid-key")
		gm.Endpoint = api.URL("/maps/api/staticmap")
	})

	AfterEach(func() {
		api.Close()
	})

	It("should request a satellite map centered on the area", func() {
		result, err := gm.Probe(ctx, area)
		Expect(err).NotTo(HaveOccurred())

		reqs := api.Requests("/maps/api/staticmap")
		Expect(reqs).To(HaveLen(1))
		q := reqs[0].Query
		Expect(q.Get("center")).To(Equal("30.5,50.4"))
		Expect(q.Get("zoom")).To(Equal("12"))
		Expect(q.Get("size")).To(Equal("512x512"))
		Expect(q.Get("maptype")).To(Equal("satellite"))

		Expect(result.Message).To(Equal("Google Maps: received image from " + result.URL))
	})

	It("should classify a rejected key", func() {
		gm = provider.NewGoogleStaticMapProvider("revoked-key")
		gm.Endpoint = api.URL("/maps/api/staticmap")
		_, err := gm.Probe(ctx, area)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("API key is invalid"))
		Expect(service.KindOf(err)).To(Equal(service.ErrorKindStatus))
	})

	It("should classify an unreachable service", func() {
		gm.Endpoint = unreachableURL()
		_, err := gm.Probe(ctx, area)
		Expect(service.KindOf(err)).To(Equal(service.ErrorKindTransport))
	})
})
