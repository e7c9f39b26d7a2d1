package editor

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/storage"
)

// maxImageUpload caps a single image upload at 8 MiB. Data URIs are stored
// inline in the snapshot, so oversized uploads bloat every save.
const maxImageUpload = 8 << 20

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The editor is a local tool; the server's CORS policy is the gate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterRoutes mounts the report editing endpoints on the given router.
// The store may be nil in previews-only setups; revision routes then 404.
func RegisterRoutes(r chi.Router, session *Session, store *storage.Store) {
	r.Route("/api/report", func(r chi.Router) {
		r.Get("/", handleGetReport(session))
		r.Patch("/", handlePatchReport(session))

		r.Post("/chapters", handleAddChapter(session))
		r.Post("/chapters/{id}/children", handleAddSubChapter(session))
		r.Put("/chapters/{id}", handleRenameChapter(session))
		r.Delete("/chapters/{id}", handleDeleteChapter(session))
		r.Post("/chapters/move", handleMoveChapter(session))

		r.Post("/glossary", handleAddGlossary(session))
		r.Delete("/glossary/{index}", handleDeleteIndexed(session.DeleteGlossaryEntry))
		r.Post("/figures", handleAddFigure(session))
		r.Delete("/figures/{index}", handleDeleteIndexed(session.DeleteFigure))
		r.Post("/schedule", handleAddScheduleTask(session))
		r.Delete("/schedule/{index}", handleDeleteIndexed(session.DeleteScheduleTask))

		r.Post("/images/{key}", handleUploadImage(session))
	})

	r.Get("/api/preview", handlePreview(session))
	r.Get("/api/preview/ws", handlePreviewWS(session))

	if store != nil {
		r.Route("/api/revisions", func(r chi.Router) {
			r.Get("/", handleListRevisions(store))
			r.Post("/{id}/restore", handleRestoreRevision(session, store))
		})
	}
}

func handleGetReport(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Snapshot())
	}
}

// handlePatchReport applies a partial field update. ?commit=1 marks a
// discrete edit (change/blur); plain PATCHes coalesce under the debounce.
func handlePatchReport(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch report.FieldPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid patch body", http.StatusBadRequest)
			return
		}
		commit := r.URL.Query().Get("commit") == "1"
		changed := s.ApplyPatch(&patch, commit)
		writeChanged(w, changed)
	}
}

func handleAddChapter(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeChanged(w, s.AddChapter())
	}
}

func handleAddSubChapter(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid chapter id", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.AddSubChapter(id))
	}
}

func handleRenameChapter(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid chapter id", http.StatusBadRequest)
			return
		}
		var body struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.RenameChapter(id, body.Title))
	}
}

func handleDeleteChapter(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid chapter id", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.DeleteChapter(id))
	}
}

func handleMoveChapter(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Index     int `json:"index"`
			Direction int `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.MoveChapter(body.Index, body.Direction))
	}
}

func handleAddGlossary(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Term       string `json:"term"`
			Definition string `json:"definition"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.AddGlossaryEntry(body.Term, body.Definition))
	}
}

func handleAddFigure(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			Page string `json:"page"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.AddFigure(body.Name, body.Page))
	}
}

func handleAddScheduleTask(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Task  string `json:"task"`
			Start string `json:"start"`
			End   string `json:"end"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		writeChanged(w, s.AddScheduleTask(body.Task, body.Start, body.End))
	}
}

func handleDeleteIndexed(del func(int) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "invalid index", http.StatusBadRequest)
			return
		}
		writeChanged(w, del(index))
	}
}

func handleUploadImage(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := report.ImageKey(chi.URLParam(r, "key"))

		if err := r.ParseMultipartForm(maxImageUpload); err != nil {
			http.Error(w, "invalid multipart body", http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxImageUpload+1))
		if err != nil {
			http.Error(w, "reading upload", http.StatusBadRequest)
			return
		}
		if len(data) > maxImageUpload {
			http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
			return
		}

		if err := s.UploadImage(key, data); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeChanged(w, true)
	}
}

func handlePreview(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(s.Preview()))
	}
}

// handlePreviewWS upgrades to a websocket and streams preview/saved events.
// A fresh preview is pushed on connect so the client starts in sync.
func handlePreviewWS(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("editor: websocket upgrade: %v", err)
			return
		}
		client := s.hub.Add(conn)

		// Sync frame so the client starts from the current document.
		client.Send(Event{Type: "preview", HTML: s.Preview()})

		// Drain incoming frames so pings and close frames are processed.
		go func() {
			defer s.hub.Remove(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

func handleListRevisions(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revs, err := store.ListRevisions(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, revs)
	}
}

func handleRestoreRevision(s *Session, store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := store.GetRevision(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if doc == nil {
			http.Error(w, "revision not found", http.StatusNotFound)
			return
		}
		s.Replace(doc)
		writeJSON(w, http.StatusOK, s.Snapshot())
	}
}

func writeChanged(w http.ResponseWriter, changed bool) {
	writeJSON(w, http.StatusOK, map[string]bool{"changed": changed})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
