package pageroute

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// redirect sends the visitor to target. htmx requests get an HX-Redirect
// header so the client performs a full navigation instead of swapping the
// redirected page into the current one.
func redirect(w http.ResponseWriter, r *http.Request, target string) error {
	if htmx.IsHTMX(r) {
		return htmx.NewResponse().Redirect(target).Write(w)
	}
	http.Redirect(w, r, target, http.StatusFound)
	return nil
}

// retargetBody makes htmx swap a full page render into <body>.
func retargetBody(w http.ResponseWriter, r *http.Request) error {
	if !htmx.IsHTMX(r) {
		w.WriteHeader(http.StatusOK)
		return nil
	}
	return htmx.NewResponse().Retarget("body").Write(w)
}
