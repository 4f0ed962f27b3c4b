package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"allotment-service/internal/domain/entity"
	"allotment-service/internal/usecase"
	"allotment-service/pkg/logger"
)

// defaultPageSize mirrors the operator screen's flight list window.
const defaultPageSize = 5

// apiResponse is the JSON envelope for every API reply.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Handlers serves the operator API on top of one reconciliation session.
type Handlers struct {
	session *usecase.Session
	logger  logger.Logger
}

// NewHandlers creates the API handlers
func NewHandlers(session *usecase.Session, logger logger.Logger) *Handlers {
	return &Handlers{
		session: session,
		logger:  logger,
	}
}

// Register mounts all API routes on the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.Handle("/api/flights", withCORS(recoverWrapper(h.logger, h.Flights)))
	mux.Handle("/api/session/select", withCORS(recoverWrapper(h.logger, h.SelectFlight)))
	mux.Handle("/api/session/promote", withCORS(recoverWrapper(h.logger, h.Promote)))
	mux.Handle("/api/session/demote", withCORS(recoverWrapper(h.logger, h.Demote)))
	mux.Handle("/api/session/reload", withCORS(recoverWrapper(h.logger, h.Reload)))
}

type flightPage struct {
	Flights  []entity.Flight `json:"flights"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// Flights lists flights, filtered and paginated.
func (h *Handlers) Flights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, apiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	q := r.URL.Query()
	flights := h.session.SearchFlights(usecase.FlightFilter{
		Sector:       q.Get("sector"),
		FlightNumber: q.Get("flightNumber"),
		DepartDate:   q.Get("departDate"),
	})

	page := queryInt(q.Get("page"), 1)
	pageSize := queryInt(q.Get("pageSize"), defaultPageSize)
	total := len(flights)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: flightPage{
			Flights:  flights[start:end],
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		},
	})
}

// SelectFlight establishes the booking partition for one flight.
func (h *Handlers) SelectFlight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		FlightNumber string `json:"flightNumber"`
		DepartDate   string `json:"departDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if req.FlightNumber == "" || req.DepartDate == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "flightNumber and departDate are required"})
		return
	}

	view, err := h.session.SelectFlight(req.FlightNumber, req.DepartDate)
	if err != nil {
		if errors.Is(err, entity.ErrFlightNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: toViewPayload(view)})
}

// Promote moves bookings from standby to confirmed.
func (h *Handlers) Promote(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.session.Promote)
}

// Demote moves bookings from confirmed back to standby.
func (h *Handlers) Demote(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.session.Demote)
}

func (h *Handlers) transition(w http.ResponseWriter, r *http.Request, apply func([]string) (*usecase.View, error)) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		AWBs []string `json:"awbs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	view, err := apply(req.AWBs)
	if err != nil {
		if errors.Is(err, entity.ErrNoFlightSelected) {
			writeJSON(w, http.StatusConflict, apiResponse{Success: false, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: toViewPayload(view)})
}

// Reload refetches the reference collections from the provider.
func (h *Handlers) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	if err := h.session.Load(r.Context()); err != nil {
		writeJSON(w, http.StatusBadGateway, apiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Reference data reloaded"})
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func queryInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return n
	}
	return defaultValue
}
