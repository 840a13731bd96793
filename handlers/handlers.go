package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/acpboloka/apiresttodolist/models"
	"github.com/acpboloka/apiresttodolist/store"

	"github.com/gorilla/mux"
)

// Handlers struct holds the task store, allowing methods to share it.
type Handlers struct {
	Store *store.Store
}

// NewHandlers is a constructor for the Handlers struct.
func NewHandlers(st *store.Store) *Handlers {
	return &Handlers{Store: st}
}

// apiResponse is the JSON envelope shared by every endpoint.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// listResponse is the envelope for collection responses; data is always an
// array, never null, and total equals the collection length.
type listResponse struct {
	Success bool          `json:"success"`
	Data    []models.Task `json:"data"`
	Total   int           `json:"total"`
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError sends a failure envelope with the given status code.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, apiResponse{Success: false, Message: message})
}

// parseTaskID extracts the {id} path variable. A value that is not a valid
// integer is treated the same as an id no task has.
func parseTaskID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

// GetTasks returns all tasks in insertion order.
func (h *Handlers) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.Store.List()
	respondWithJSON(w, http.StatusOK, listResponse{
		Success: true,
		Data:    tasks,
		Total:   len(tasks),
	})
}

// GetTask returns a single task by its id.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.Store.Get(id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Task not found")
		return
	}

	respondWithJSON(w, http.StatusOK, apiResponse{Success: true, Data: task})
}

// CreateTask creates a new task. Title is required; description defaults to
// the empty string and completed defaults to false when absent.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		log.Printf("JSON decode error in CreateTask: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	task := h.Store.Create(req.Title, req.Description, completed)
	respondWithJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "Task created successfully",
		Data:    task,
	})
}

// UpdateTask merges the fields present in the request into an existing task.
// Any subset of title, description and completed may be sent, including none.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Task not found")
		return
	}

	var req models.UpdateTaskRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		log.Printf("JSON decode error in UpdateTask: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	task, err := h.Store.Update(id, req.Title, req.Description, req.Completed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Task not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	respondWithJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Task updated successfully",
		Data:    task,
	})
}

// DeleteTask removes a task by its id and returns the removed record.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.Store.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Task not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	respondWithJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Task deleted successfully",
		Data:    task,
	})
}

// Index describes the available endpoints.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"message":       "Task Management API",
		"documentation": "/api-docs",
		"endpoints": map[string]string{
			"GET /api/tasks":         "List all tasks",
			"GET /api/tasks/{id}":    "Get a task by id",
			"POST /api/tasks":        "Create a task",
			"PUT /api/tasks/{id}":    "Update a task",
			"DELETE /api/tasks/{id}": "Delete a task",
		},
	})
}

// NotFound is the fallback for unknown routes, keeping every response JSON.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "Route not found")
}
