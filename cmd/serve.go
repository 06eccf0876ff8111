package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/aleatoric/config"
	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/midi"
	"github.com/jsphweid/aleatoric/model"
	"github.com/jsphweid/aleatoric/probability"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the composer over HTTP",
	Long:  `Serves the excerpt library and composition generation over HTTP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetInputDir()
		lib, err := midi.ReadLibrary(dir)
		if err != nil {
			return err
		}
		s := NewServer(dir, lib)
		slog.Info("listening", "addr", serveAddr, "excerpts", lib.Len())
		return http.ListenAndServe(serveAddr, s.Router())
	},
}

const reloadDelay = 500 * time.Millisecond

// maxBodyBytes caps a composition request.
const maxBodyBytes = 1 << 20

// Server holds the library shared by all requests. Requests only read it;
// every composition works on its own track copies.
type Server struct {
	mu       sync.RWMutex
	lib      *model.ExcerptLibrary
	inputDir string
	debounce func(func())
}

func NewServer(inputDir string, lib *model.ExcerptLibrary) *Server {
	return &Server{
		lib:      lib,
		inputDir: inputDir,
		debounce: debounce.New(reloadDelay),
	}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/excerpts", s.HandleExcerpts).Methods("GET")
	router.HandleFunc("/presets", s.HandlePresets).Methods("GET")
	router.HandleFunc("/compositions", s.HandleCompose).Methods("POST")
	router.HandleFunc("/reload", s.HandleReload).Methods("POST")
	return cors.Default().Handler(router)
}

func (s *Server) library() model.ExcerptLibrary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.lib
}

// Reload re-ingests the input dir and swaps the library in on success.
func (s *Server) Reload() error {
	lib, err := midi.ReadLibrary(s.inputDir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.lib = lib
	s.mu.Unlock()
	slog.Info("reloaded library", "excerpts", lib.Len())
	return nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (s *Server) HandleExcerpts(w http.ResponseWriter, r *http.Request) {
	lib := s.library()
	res := make([]model.ExcerptInfo, 0, lib.Len())
	for _, e := range lib.Excerpts {
		res = append(res, model.ExcerptInfo{Name: e.Name, Events: len(e.Events), Ticks: e.Length()})
	}
	writeJSON(w, res)
}

func (s *Server) HandlePresets(w http.ResponseWriter, r *http.Request) {
	n := s.library().Len()
	res := make([]model.PresetInfo, 0)
	for _, p := range probability.Presets() {
		res = append(res, model.PresetInfo{Name: p.Name, Probabilities: p.Dist(n)})
	}
	writeJSON(w, res)
}

func (s *Server) HandleCompose(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg, err := config.ParseJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := uuid.New().String()
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = id
	}

	comp, err := Compose(cfg, s.library())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var buf bytes.Buffer
	if err := midi.Write(&buf, comp); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	slog.Info("served composition", "id", id, "name", comp.Name, "bytes", buf.Len())
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", comp.Filename()))
	w.Header().Set("X-Composition-Id", id)
	w.Write(buf.Bytes())
}

func (s *Server) HandleReload(w http.ResponseWriter, r *http.Request) {
	s.debounce(func() {
		if err := s.Reload(); err != nil {
			slog.Error("reload failed", "err", err)
		}
	})
	w.WriteHeader(http.StatusAccepted)
}
