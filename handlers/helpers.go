package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"path"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// serverError logs the real failure and hands the caller a generic message.
// Store and connectivity detail never reaches the response body.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[%s] %s %s: %v", requestID(r), r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// taskIDFromPath extracts the trailing numeric id from /api/tasks/{id}.
func taskIDFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(path.Base(r.URL.Path))
}
