package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"allotment-service/internal/domain/entity"
	"allotment-service/internal/usecase"
	"allotment-service/pkg/logger"
	"allotment-service/pkg/schedule"
)

type staticProvider struct {
	allocations []entity.AllocationRow
	groups      []entity.StationGroup
}

func (p *staticProvider) FetchAllocations(ctx context.Context) ([]entity.AllocationRow, error) {
	return p.allocations, nil
}

func (p *staticProvider) FetchStationGroups(ctx context.Context) ([]entity.StationGroup, error) {
	return p.groups, nil
}

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	provider := &staticProvider{
		allocations: []entity.AllocationRow{
			{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Aircraft: "A321", Positions: 10, WeightPerPos: 5, NetRateUSD: 2},
			{FlightNumber: "VN777", Sector: "SGN-CDG", Month: "FEB", Dow: "D3", Station: "SGN", Aircraft: "B787", Positions: 6, WeightPerPos: 8, NetRateUSD: 4},
		},
		groups: []entity.StationGroup{
			{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
		},
	}

	log := logger.NewNopLogger()
	session := usecase.NewSession(
		provider,
		usecase.NewNormalizer(schedule.StrategyFirstOccurrence, 2025, log),
		usecase.NewMatcher(usecase.MatchDateInclusive),
		usecase.NewAggregator(),
		usecase.TotalsConfirmed,
		log,
		nil,
	)
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("session load: %v", err)
	}

	mux := http.NewServeMux()
	NewHandlers(session, log).Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, resp
}

func TestFlightsEndpoint(t *testing.T) {
	mux := testMux(t)

	rec, resp := doJSON(t, mux, http.MethodGet, "/api/flights", "")
	if rec.Code != http.StatusOK || !resp.Success {
		t.Fatalf("GET /api/flights = %d %+v", rec.Code, resp)
	}

	data, _ := json.Marshal(resp.Data)
	var page struct {
		Flights  []entity.Flight `json:"flights"`
		Total    int             `json:"total"`
		PageSize int             `json:"pageSize"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 || len(page.Flights) != 2 {
		t.Errorf("flight page = %+v, want 2 flights", page)
	}
	if page.PageSize != defaultPageSize {
		t.Errorf("pageSize = %d, want %d", page.PageSize, defaultPageSize)
	}
}

func TestFlightsFilterAndPagination(t *testing.T) {
	mux := testMux(t)

	_, resp := doJSON(t, mux, http.MethodGet, "/api/flights?flightNumber=VN123", "")
	data, _ := json.Marshal(resp.Data)
	var page struct {
		Flights []entity.Flight `json:"flights"`
		Total   int             `json:"total"`
	}
	json.Unmarshal(data, &page)
	if page.Total != 1 {
		t.Errorf("filtered total = %d, want 1", page.Total)
	}

	_, resp = doJSON(t, mux, http.MethodGet, "/api/flights?page=2&pageSize=1", "")
	data, _ = json.Marshal(resp.Data)
	json.Unmarshal(data, &page)
	if page.Total != 2 || len(page.Flights) != 1 {
		t.Errorf("page 2 of size 1 = %+v", page)
	}
}

func TestSelectFlightEndpoint(t *testing.T) {
	mux := testMux(t)

	rec, resp := doJSON(t, mux, http.MethodPost, "/api/session/select",
		`{"flightNumber":"VN123","departDate":"2025-01-06"}`)
	if rec.Code != http.StatusOK || !resp.Success {
		t.Fatalf("select = %d %+v", rec.Code, resp)
	}

	data, _ := json.Marshal(resp.Data)
	var view viewPayload
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatal(err)
	}
	if len(view.Standby) != 1 {
		t.Fatalf("standby = %d, want 1", len(view.Standby))
	}
	b := view.Standby[0]
	// cw 50 formatted to 2 places, volume to 3.
	if b.CW != "50.00" || b.Volume != "0.500" || b.GW != "55.00" {
		t.Errorf("formatted booking = cw %s gw %s vol %s", b.CW, b.GW, b.Volume)
	}
	if len(view.Utilization) != 1 || view.Utilization[0].Percentage != "500.00" {
		t.Errorf("utilization = %+v, want G1 at 500.00", view.Utilization)
	}
}

func TestSelectFlightNotFound(t *testing.T) {
	mux := testMux(t)

	rec, resp := doJSON(t, mux, http.MethodPost, "/api/session/select",
		`{"flightNumber":"VN000","departDate":"2025-01-06"}`)
	if rec.Code != http.StatusNotFound || resp.Success {
		t.Errorf("unknown flight = %d %+v, want 404", rec.Code, resp)
	}
}

func TestPromoteDemoteEndpoints(t *testing.T) {
	mux := testMux(t)

	_, resp := doJSON(t, mux, http.MethodPost, "/api/session/select",
		`{"flightNumber":"VN123","departDate":"2025-01-06"}`)
	data, _ := json.Marshal(resp.Data)
	var view viewPayload
	json.Unmarshal(data, &view)
	awb := view.Standby[0].AWB

	rec, resp := doJSON(t, mux, http.MethodPost, "/api/session/promote", `{"awbs":["`+awb+`"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("promote = %d %+v", rec.Code, resp)
	}
	data, _ = json.Marshal(resp.Data)
	json.Unmarshal(data, &view)
	if len(view.Confirmed) != 1 || view.Confirmed[0].Status != entity.BookingStatusConfirmed {
		t.Errorf("confirmed after promote = %+v", view.Confirmed)
	}
	if view.Totals.Weight != "50.00" {
		t.Errorf("totals weight = %s, want 50.00", view.Totals.Weight)
	}

	rec, resp = doJSON(t, mux, http.MethodPost, "/api/session/demote", `{"awbs":["`+awb+`"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("demote = %d %+v", rec.Code, resp)
	}
	data, _ = json.Marshal(resp.Data)
	json.Unmarshal(data, &view)
	if len(view.Confirmed) != 0 || len(view.Standby) != 1 {
		t.Errorf("partition after demote = %d confirmed %d standby", len(view.Confirmed), len(view.Standby))
	}
	if view.Totals.Weight != "0.00" {
		t.Errorf("totals weight after demote = %s, want 0.00", view.Totals.Weight)
	}
}

func TestTransitionWithoutSelection(t *testing.T) {
	mux := testMux(t)

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/session/promote", `{"awbs":["X"]}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("promote without selection = %d, want 409", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := testMux(t)

	rec, _ := doJSON(t, mux, http.MethodGet, "/api/session/promote", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET promote = %d, want 405", rec.Code)
	}
	rec, _ = doJSON(t, mux, http.MethodPost, "/api/flights", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST flights = %d, want 405", rec.Code)
	}
}
