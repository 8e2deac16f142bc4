package api

import (
	"encoding/json"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/schema"
)

// PostScriptError handles a script error report posted by a browser
// error callback. It builds the immutable record for the report and
// queues it to Kafka for the pipeline to process.
//
// Reports with negative or overflowing line and column numbers are
// rejected here, at the point where the values are still under the
// reporter's control. Values arriving on the wire are clamped instead.
func (api *API) PostScriptError(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var init event.ErrorEventInit
	if err := json.NewDecoder(req.Body).Decode(&init); err != nil {
		log.Error(ctx, "failed to decode script error report", err)
		api.respondError(ctx, w, http.StatusBadRequest, "failed to decode request body: "+err.Error())
		return
	}

	e := event.NewErrorEvent(event.TypeError, &init)

	b, err := schema.ErrorReported.Marshal(event.NewErrorReported(e))
	if err != nil {
		log.Error(ctx, "failed to marshal error-reported event", err, log.Data{"event_type": e.Type()})
		api.respondError(ctx, w, http.StatusInternalServerError, "failed to queue script error")
		return
	}

	api.producer.Channels().Output <- b

	log.Info(ctx, "script error report queued", log.Data{
		"event_type": e.Type(),
		"filename":   e.Filename(),
		"lineno":     e.Lineno(),
		"colno":      e.Colno(),
	})

	api.respond(ctx, w, http.StatusAccepted, e)
}
