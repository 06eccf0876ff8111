package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/aleatoric/midi"
	"github.com/jsphweid/aleatoric/model"
	"github.com/stretchr/testify/assert"
)

func testServer(t *testing.T) *Server {
	dir := inputDir(t)
	lib, err := midi.ReadLibrary(dir)
	assert.NoError(t, err)
	return NewServer(dir, lib)
}

func TestHandleExcerpts(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/excerpts", nil)
	w := httptest.NewRecorder()
	testServer(t).Router().ServeHTTP(w, req)

	resp := w.Result()
	var got []model.ExcerptInfo
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.NoError(json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(got, 3)
	assert.Equal("Silence", got[0].Name)
	assert.Equal("high", got[1].Name)
	assert.Equal("low", got[2].Name)
	for _, e := range got {
		assert.Equal(uint64(1920), e.Ticks)
	}
}

func TestHandlePresets(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/presets", nil)
	w := httptest.NewRecorder()
	testServer(t).Router().ServeHTTP(w, req)

	var got []model.PresetInfo
	assert := assert.New(t)
	assert.NoError(json.NewDecoder(w.Result().Body).Decode(&got))
	assert.Len(got, 12)
	assert.Equal([]float64{0, 0, 1}, got[2].Probabilities)
}

func TestHandleCompose(t *testing.T) {
	body := `{"name":"Web Song!","length":2,"max_tracks":1,"seed":3,"tracks":[{"instrument":"Oboe","octave":4,"distribution":"last"}]}`
	req := httptest.NewRequest(http.MethodPost, "/compositions", strings.NewReader(body))
	w := httptest.NewRecorder()
	testServer(t).Router().ServeHTTP(w, req)

	resp := w.Result()
	raw, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("audio/midi", resp.Header.Get("Content-Type"))
	assert.Equal(`attachment; filename="Web_Song_.mid"`, resp.Header.Get("Content-Disposition"))
	assert.NotEmpty(resp.Header.Get("X-Composition-Id"))
	assert.True(bytes.HasPrefix(raw, []byte("MThd")))

	parsed, err := midi.ReadMidi(bytes.NewReader(raw))
	assert.NoError(err)
	summary := midi.Summarize(parsed)
	assert.Len(summary.Tracks, 1)
	assert.Equal(68, summary.Tracks[0].Program)
}

func TestHandleComposeErrors(t *testing.T) {
	cases := map[string]struct {
		body   string
		status int
	}{
		"bad json":       {`{"name":`, http.StatusBadRequest},
		"bad sum":        {`{"tracks":[{"probabilities":[0.5,0.4,0]}]}`, http.StatusUnprocessableEntity},
		"bad max tracks": {`{"max_tracks":9}`, http.StatusUnprocessableEntity},
		"huge length":    {`{"length":2000000000}`, http.StatusUnprocessableEntity},
		"huge body":      {`{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge},
	}

	s := testServer(t)
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/compositions", strings.NewReader(c.body))
			w := httptest.NewRecorder()
			s.Router().ServeHTTP(w, req)

			var errResp model.ErrorResponse
			assert.Equal(t, c.status, w.Code)
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestReload(t *testing.T) {
	s := testServer(t)
	writeExcerpt(t, s.inputDir, "new", 60)

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	assert.NoError(t, s.Reload())
	assert.Equal(t, 4, s.library().Len())
}
