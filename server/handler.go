package server

import (
	"fmt"
	"github.com/kodecamp/greet/common"
	"net/http"
)

// DefaultMessage is served when the MESSAGE environment variable is unset.
const DefaultMessage = "Hello, Default!"

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", greet)
	return mux
}

// greet re-reads MESSAGE on every request. A present-but-empty variable
// is an empty greeting, only an unset one falls back to DefaultMessage.
func greet(w http.ResponseWriter, r *http.Request) {
	message := common.GetenvDefault("MESSAGE", DefaultMessage)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// The message goes into the document verbatim, markup included.
	fmt.Fprintf(w, "<h1>%s</h1>", message)
}
