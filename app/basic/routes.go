package basic

import (
	"github.com/dmitrymomot/bindkit/core/router"
	"github.com/dmitrymomot/bindkit/core/view"
)

func registerRoutes(r router.Router[*Context], views *view.Registry) {
	r.Handle("/log-test", logTest)

	r.Handle("/request-param-v1", requestParamV1)
	r.Handle("/request-param-v2", requestParamV2)
	r.Handle("/request-param-v3", requestParamV3)
	r.Handle("/request-param-v4", requestParamV4)
	r.Handle("/request-param-required", requestParamRequired)
	r.Handle("/request-param-default", requestParamDefault)
	r.Handle("/request-param-map", requestParamMap)
	r.Handle("/model-attribute-v1", modelAttributeV1)
	r.Handle("/model-attribute-v2", modelAttributeV2)

	r.Post("/request-body-string-v1", requestBodyStringV1)
	r.Post("/request-body-string-v2", requestBodyStringV2)
	r.Post("/request-body-string-v3", requestBodyStringV3)
	r.Post("/request-body-string-v4", requestBodyStringV4)
	r.Post("/request-body-json-v1", requestBodyJSONV1)

	// The misspelled path is the published one.
	r.Handle("/reponse-view-v1", responseViewV1(views))
	r.Handle("/response-view-v2", responseViewV2(views))
	r.Handle("/response/hello", responseViewV3(views))
}
