package handlers

import (
	"net/http"

	"taskbox/store"
)

// NewMux wires the full HTTP surface: health probe, task routes, request-id
// logging, and CORS for the given client origin.
func NewMux(ts store.TaskStore, origin string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", Health)
	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		TaskCollection(w, r, ts)
	})
	mux.HandleFunc("/api/tasks/", func(w http.ResponseWriter, r *http.Request) {
		TaskItem(w, r, ts)
	})

	return RequestID(CORS(origin, mux))
}
