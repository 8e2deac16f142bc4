package api

import (
	"context"
	"encoding/json"
	"net/http"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	"github.com/ONSdigital/dp-script-error-collector/config"
)

// API provides a struct to wrap the api around
type API struct {
	Router   *mux.Router
	cfg      config.Config
	producer kafka.IProducer
}

// Setup creates the api, with all its routes registered on the provided router
func Setup(_ context.Context, cfg config.Config, r *mux.Router, producer kafka.IProducer) *API {
	api := &API{
		Router:   r,
		cfg:      cfg,
		producer: producer,
	}

	r.HandleFunc("/v1/script-errors", api.PostScriptError).Methods(http.MethodPost)

	return api
}

// errorResponse is the body returned for a request that cannot be accepted
type errorResponse struct {
	Errors []string `json:"errors"`
}

// respond writes v to w as json with the given status code
func (api *API) respond(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error(ctx, "failed to marshal response", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(b); err != nil {
		log.Error(ctx, "failed to write response", err)
	}
}

// respondError writes an error response body with the given status code
func (api *API) respondError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	api.respond(ctx, w, status, errorResponse{Errors: []string{msg}})
}
