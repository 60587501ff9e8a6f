/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package service

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/chainguard-dev/clog"
	"github.com/gorilla/mux"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/report"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/schema"
)

// Router returns the HTTP routes of the service:
//
//	GET /report?format=html|markdown|json|terminal
//	GET /summary
//	GET /schema/{document}
//	GET /healthz
func (s *Service) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	router.HandleFunc("/report", s.report).Methods(http.MethodGet)
	router.HandleFunc("/summary", s.summary).Methods(http.MethodGet)
	router.HandleFunc("/schema/{document}", s.schema).Methods(http.MethodGet)
	return router
}

func (s *Service) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f := report.FormatHTML
	if name := r.URL.Query().Get("format"); name != "" {
		var err error
		if f, err = report.ParseFormat(name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var buf bytes.Buffer
	if err := s.Render(ctx, &buf, f); err != nil {
		clog.FromContext(ctx).With("error", err).Error("Failed to render report")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	_, _ = buf.WriteTo(w)
}

func (s *Service) summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.Summary(ctx)
	if err != nil {
		clog.FromContext(ctx).With("error", err).Error("Failed to compute summary")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, summary)
}

func (s *Service) schema(w http.ResponseWriter, r *http.Request) {
	sch, err := schema.For(mux.Vars(r)["document"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, sch)
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(b, '\n'))
}
