package main

import (
	_ "embed"
	"fmt"
	"log"
	"net/http"

	"dotfall/internal/config"
)

const (
	defaultHost   = "0.0.0.0"
	defaultPort   = "8080"
	defaultAssets = "./assets"
)

//go:embed index.html
var htmlPage string

// Serves the game page and the wasm build artifacts as-is. No game logic
// lives here: the whole engine runs client-side in the wasm binary built
// from cmd/game.
func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	assets := config.GetEnv("WEB_ASSETS", defaultAssets)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, htmlPage)
	})
	http.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assets))))

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Starting web server on http://%s (assets from %s)", addr, assets)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
