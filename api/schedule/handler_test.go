package schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gridshed/gridshed/core/engine"
	"github.com/gridshed/gridshed/core/grid"
	"github.com/gridshed/gridshed/core/plan"
)

func newServer(t *testing.T) (*httptest.Server, *engine.Engine) {
	t.Helper()
	eng := engine.New(engine.Config{}, nil, nil, nil)
	f, err := eng.CreateFeeder("North", 500)
	if err != nil {
		t.Fatalf("seed feeder: %v", err)
	}
	if _, err := eng.CreateArea(grid.AreaInput{Name: "Suburb", FeederID: f.ID, LoadKW: 100}); err != nil {
		t.Fatalf("seed area: %v", err)
	}
	mux := http.NewServeMux()
	Register(mux, eng)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, eng
}

func TestGenerateAndFetchSchedule(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/api/schedule")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var empty struct {
		Plan *plan.DayPlan `json:"plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&empty); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if empty.Plan != nil {
		t.Fatalf("no plan should exist before generation")
	}

	body := `{"daily_energy_kwh":1200}` // half of 24*100
	resp, err = http.Post(srv.URL+"/api/schedule/generate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var dp plan.DayPlan
	if err := json.NewDecoder(resp.Body).Decode(&dp); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	resp.Body.Close()
	if !dp.Energy.Shortage || len(dp.Cuts) == 0 {
		t.Fatalf("expected a shortage plan with cuts: %+v", dp.Energy)
	}

	resp, err = http.Get(srv.URL + "/api/schedule")
	if err != nil {
		t.Fatalf("get after generate: %v", err)
	}
	var current struct {
		Plan *plan.DayPlan `json:"plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		t.Fatalf("decode current: %v", err)
	}
	resp.Body.Close()
	if current.Plan == nil || current.Plan.RunID != dp.RunID {
		t.Fatalf("current plan mismatch")
	}
}

func TestGenerateNoDemand(t *testing.T) {
	eng := engine.New(engine.Config{}, nil, nil, nil)
	mux := http.NewServeMux()
	Register(mux, eng)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/schedule/generate", "application/json",
		strings.NewReader(`{"daily_energy_kwh":500}`))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("no demand is a success, got %d", resp.StatusCode)
	}
	var dp plan.DayPlan
	if err := json.NewDecoder(resp.Body).Decode(&dp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !dp.Energy.NoDemand {
		t.Fatalf("expected no-demand verdict: %+v", dp.Energy)
	}
}
