package generate

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

// RegisterRoutes mounts the generation endpoint. snapshot supplies the
// current document; the route never holds editor state itself.
func RegisterRoutes(r chi.Router, client *Client, snapshot func() *report.ReportDocument) {
	r.Post("/api/generate", handleGenerate(client, snapshot))
}

func handleGenerate(client *Client, snapshot func() *report.ReportDocument) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := Format(r.URL.Query().Get("format"))
		if format == "" {
			format = FormatDOCX
		}
		if !format.Valid() {
			http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
			return
		}

		result, err := client.Generate(r.Context(), snapshot(), format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		w.Header().Set("Content-Length", fmt.Sprint(len(result.Data)))
		w.Write(result.Data)
	}
}
