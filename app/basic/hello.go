package basic

import "github.com/dmitrymomot/bindkit/core/binder"

// HelloData is the demo form object.
type HelloData struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

// helloModel binds username and age onto HelloData. Absent fields keep
// their zero value.
var helloModel = binder.MustModel(
	binder.StringAttr(binder.Spec{Name: "username"}, func(d *HelloData, v string) { d.Username = v }),
	binder.IntAttr(binder.Spec{Name: "age", Nullable: true}, func(d *HelloData, v int) { d.Age = v }),
)
