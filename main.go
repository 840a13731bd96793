package main

import (
	"log"
	"net/http"
	"os"

	"github.com/acpboloka/apiresttodolist/handlers"
	"github.com/acpboloka/apiresttodolist/store"

	gorilla "github.com/gorilla/handlers"
)

func main() {
	// Load the listen port from the environment, defaulting to 3000.
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Create the store and a handlers instance that owns it.
	st := store.New()
	h := handlers.NewHandlers(st)

	router := handlers.NewRouter(h)

	// Cross-origin requests are permitted unconditionally.
	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type"}),
	)

	// Start the server.
	log.Printf("Server listening on :%s...", port)
	log.Printf("API documentation available at http://localhost:%s/api-docs", port)
	log.Fatal(http.ListenAndServe(":"+port, gorilla.LoggingHandler(os.Stdout, cors(router))))
}
