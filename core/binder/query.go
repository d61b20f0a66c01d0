package binder

import (
	"net/http"
)

// Query returns the request's query-string parameters as Values.
//
// Example:
//
//	func searchHandler(w http.ResponseWriter, r *http.Request) {
//		page, err := binder.BindScalar(binder.Query(r), binder.Spec{
//			Name:    "page",
//			Kind:    binder.Int,
//			Default: binder.Default("1"),
//		})
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		// page is an int
//	}
func Query(r *http.Request) Values {
	if r.URL == nil {
		return Values{}
	}
	return Values(r.URL.Query())
}
