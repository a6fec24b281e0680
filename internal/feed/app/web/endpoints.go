package web

import (
	"net/http"

	"catalogfeed_api/internal/feed/app/web/handlers"
	"catalogfeed_api/metrics"
)

// Routes wires the feed endpoints onto a mux. The entry points stay thin:
// they only route to the generator.
type Routes struct {
	Refresh  *handlers.RefreshHandler
	Shopping *handlers.FeedHandler
	Local    *handlers.FeedHandler
}

func (rt *Routes) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("It's working!"))
	})
	mux.Handle("/refresh_feed", rt.Refresh)
	mux.Handle("/feed/shopping", rt.Shopping)
	mux.Handle("/feed/local", rt.Local)
	mux.Handle("/metrics", metrics.MetricsHandler())
}
