package tui

import "github.com/avrillon/roomscout/pkg/api"

// fetchState is the one fetch-on-mount lifecycle shared by every screen
// that shows server data: begin -> loading, then data or a derived error
// message. Responses are tagged with a request generation; a response
// from a superseded generation (the screen re-fetched, or the user
// navigated away and back) is discarded instead of clobbering state.
type fetchState[T any] struct {
	loading bool
	err     string
	data    T
	gen     int
}

// begin marks a new fetch and returns its generation tag. The tag must
// travel with the response message and come back through resolve.
func (s *fetchState[T]) begin() int {
	s.gen++
	s.loading = true
	s.err = ""
	return s.gen
}

// resolve applies a fetch result. Stale generations are a no-op. On
// failure the previous data is left alone and err carries the
// server-supplied message when there is one, fallback otherwise.
func (s *fetchState[T]) resolve(gen int, data T, err error, fallback string) {
	if gen != s.gen {
		return
	}
	s.loading = false
	if err != nil {
		s.err = api.UserMessage(err, fallback)
		return
	}
	s.err = ""
	s.data = data
}
