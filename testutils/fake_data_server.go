package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed wrdata
var wrdata embed.FS

// FakeDataServer serves the fixture datasets the same way a static file
// server would serve wr_data.json.
type FakeDataServer struct {
	s *httptest.Server
}

func NewFakeDataServer() *FakeDataServer {
	r := chi.NewRouter()
	r.Get("/data/{file}", dataFileHandler)
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	return &FakeDataServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeDataServer) Close() {
	f.s.Close()
}

func (f *FakeDataServer) URL() string {
	return f.s.URL
}

// FileURL is the URL of one of the files in wrdata, e.g. "players.json".
func (f *FakeDataServer) FileURL(name string) string {
	return fmt.Sprintf("%s/data/%s", f.s.URL, name)
}

func dataFileHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")
	b, err := ReadFile(name)
	if err != nil {
		log.Printf("error reading wrdata/%s: %v", name, err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ReadFile returns the raw bytes of one of the fixture files.
func ReadFile(name string) ([]byte, error) {
	return wrdata.ReadFile(fmt.Sprintf("wrdata/%s", name))
}
