package handlers

import (
	"net/http"

	"github.com/acpboloka/apiresttodolist/docs"
	"github.com/acpboloka/apiresttodolist/middleware"

	"github.com/gorilla/mux"
)

// NewRouter wires all routes to the handler functions. Keeping this out of
// main lets tests exercise the full surface without a live listener.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Index).Methods("GET")

	router.HandleFunc("/api/tasks", h.GetTasks).Methods("GET")
	router.HandleFunc("/api/tasks", h.CreateTask).Methods("POST")
	router.HandleFunc("/api/tasks/{id}", h.GetTask).Methods("GET")
	router.HandleFunc("/api/tasks/{id}", h.UpdateTask).Methods("PUT")
	router.HandleFunc("/api/tasks/{id}", h.DeleteTask).Methods("DELETE")

	router.HandleFunc("/api-docs", docs.UI).Methods("GET")
	router.HandleFunc("/api-docs/openapi.json", docs.Schema).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(h.NotFound)

	router.Use(middleware.RequestID)

	return router
}
