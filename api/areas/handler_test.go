package areas

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gridshed/gridshed/core/engine"
	"github.com/gridshed/gridshed/core/grid"
	"github.com/gridshed/gridshed/core/model"
)

func newServer(t *testing.T) (*httptest.Server, *engine.Engine) {
	t.Helper()
	eng := engine.New(engine.Config{}, nil, nil, nil)
	if _, err := eng.CreateFeeder("North", 500); err != nil {
		t.Fatalf("seed feeder: %v", err)
	}
	mux := http.NewServeMux()
	Register(mux, eng)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, eng
}

func TestCreateAndListAreas(t *testing.T) {
	srv, _ := newServer(t)
	body := `{"name":"Downtown","feeder_id":1,"load_kw":120,"hospitals":4,"population":10000}`
	resp, err := http.Post(srv.URL+"/api/areas", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var a model.Area
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.PriorityLevel != model.PriorityCritical {
		t.Fatalf("expected P1 area, got P%d", a.PriorityLevel)
	}

	resp, err = http.Get(srv.URL + "/api/areas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var listed struct {
		Areas []model.Area `json:"areas"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Areas) != 1 || listed.Areas[0].ID != a.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestCreateAreaValidation(t *testing.T) {
	srv, _ := newServer(t)
	cases := []string{
		`{"name":"","feeder_id":1,"load_kw":10}`,
		`{"name":"X","feeder_id":42,"load_kw":10}`,
		`{"name":"X","feeder_id":1,"load_kw":-5}`,
	}
	for _, body := range cases {
		resp, err := http.Post(srv.URL+"/api/areas", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestDeleteArea(t *testing.T) {
	srv, eng := newServer(t)
	a, err := eng.CreateArea(grid.AreaInput{Name: "A", FeederID: 1, LoadKW: 10})
	if err != nil {
		t.Fatalf("seed area: %v", err)
	}
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/areas/"+strconv.Itoa(a.ID), nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/areas/999", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
