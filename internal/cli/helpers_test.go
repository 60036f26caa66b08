package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rshade/holocron/internal/cli"
	"github.com/rshade/holocron/internal/config"
)

// setupCLITest isolates configuration and logging in a temp HOLOCRON_HOME.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, env := range []string{
		config.EnvBaseURL, config.EnvTimeout, config.EnvMaxPages, config.EnvRPS,
		config.EnvLocale, config.EnvOutputFormat, config.EnvLogFormat, config.EnvLogFile,
	} {
		t.Setenv(env, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv("NO_COLOR", "1")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

type person map[string]any

func swapiPeople() []person {
	return []person{
		{"name": "Luke Skywalker", "gender": "male", "height": "172", "mass": "77", "birth_year": "19BBY", "eye_color": "blue"},
		{"name": "C-3PO", "gender": "n/a", "height": "167", "mass": "75", "birth_year": "112BBY", "eye_color": "yellow"},
		{"name": "R2-D2", "gender": "n/a", "height": "96", "mass": "32", "birth_year": "33BBY", "eye_color": "red"},
		{"name": "Darth Vader", "gender": "male", "height": "202", "mass": "136", "birth_year": "41.9BBY", "eye_color": "yellow"},
		{"name": "Leia Organa", "gender": "female", "height": "150", "mass": "49", "birth_year": "19BBY", "eye_color": "brown"},
		{"name": "Owen Lars", "gender": "male", "height": "178", "mass": "120", "birth_year": "52BBY", "eye_color": "blue"},
		{"name": "Beru Whitesun lars", "gender": "female", "height": "165", "mass": "75", "birth_year": "47BBY", "eye_color": "blue"},
		{"name": "R5-D4", "gender": "n/a", "height": "97", "mass": "32", "birth_year": "unknown", "eye_color": "red"},
		{"name": "Biggs Darklighter", "gender": "male", "height": "183", "mass": "84", "birth_year": "24BBY", "eye_color": "brown"},
		{"name": "Obi-Wan Kenobi", "gender": "male", "height": "182", "mass": "77", "birth_year": "57BBY", "eye_color": "blue-gray"},
		{"name": "Lobot", "gender": "male", "height": 175, "mass": "79", "birth_year": "37BBY", "eye_color": "blue"},
		{"name": "Lumiya"},
		{"name": "Yoda", "gender": "male", "height": "66", "mass": "17", "birth_year": "896BBY", "eye_color": "brown"},
		{"name": "Jabba Desilijic Tiure", "gender": "hermaphrodite", "height": "175", "mass": "1,358", "birth_year": "600BBY", "eye_color": "orange"},
	}
}

// peopleServer serves people in pages of perPage linked by absolute next URLs.
func peopleServer(t *testing.T, people []person, perPage int) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			page, _ = strconv.Atoi(p)
		}
		start := (page - 1) * perPage
		if start < 0 || (start >= len(people) && len(people) > 0) {
			http.NotFound(w, r)
			return
		}
		end := min(start+perPage, len(people))
		results := people[start:end]
		if results == nil {
			results = []person{}
		}

		var next any
		if end < len(people) {
			next = fmt.Sprintf("%s/api/people/?page=%d", srv.URL, page+1)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":   len(people),
			"next":    next,
			"results": results,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}
