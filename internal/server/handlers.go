package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sells-group/litigation-cli/internal/query"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOverview serves the dashboard. Without year bounds the table's own
// year range applies, so cases with no year are left out of the charts.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	t, err := s.src.Get(r.Context(), s.opts.DataPath)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	q := r.URL.Query()
	p := query.OverviewParams{
		ClaimType: q.Get("claim_type"),
		Industry:  q.Get("industry"),
	}
	if p.YearMin, err = intParam(q, "year_min"); err != nil {
		writeFailure(w, r, err)
		return
	}
	if p.YearMax, err = intParam(q, "year_max"); err != nil {
		writeFailure(w, r, err)
		return
	}
	if lo, hi, ok := query.YearBounds(t); ok {
		if p.YearMin == nil {
			p.YearMin = &lo
		}
		if p.YearMax == nil {
			p.YearMax = &hi
		}
	}

	o, err := query.BuildOverview(t, p)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleCases(w http.ResponseWriter, r *http.Request) {
	t, err := s.src.Get(r.Context(), s.opts.DataPath)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	q := r.URL.Query()
	p := query.ExplorerParams{
		Keyword:      q.Get("keyword"),
		ClaimType:    q.Get("claim_type"),
		SubCategory:  q.Get("sub_category"),
		Status:       q.Get("status"),
		Jurisdiction: q.Get("jurisdiction"),
		Sort:         query.SortOption(q.Get("sort")),
	}

	var session query.Session
	selected, err := intParam(q, "selected")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if selected != nil {
		session.Select(*selected)
	}

	res, err := query.Explore(t, p, session)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCase(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeFailure(w, r, &paramError{name: "index", reason: "must be an integer"})
		return
	}

	t, err := s.src.Get(r.Context(), s.opts.DataPath)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	d, err := query.Detail(t, index, r.URL.Query().Get("keyword"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleChoices(w http.ResponseWriter, r *http.Request) {
	t, err := s.src.Get(r.Context(), s.opts.DataPath)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	c, err := query.BuildChoices(t, r.URL.Query().Get("claim_type"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// intParam parses an optional integer parameter. Absent means nil.
func intParam(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{name: name, reason: "must be an integer"}
	}
	return &v, nil
}
