package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/catalog"
	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/middleware"
	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var se *services.ServiceError
	if errors.As(err, &se) {
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorUnauthorized:
			status = http.StatusUnauthorized
		}
	}
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}

func (rt *Router) getCatalog(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"pillars":   catalog.Pillars(),
		"questions": catalog.Questions(),
	})
}

type scoreRequest struct {
	Answers map[string]any `json:"answers"`
}

func (rt *Router) previewScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, services.NewInvalidError("invalid request body"))
		return
	}

	answers := services.NormalizeAnswers(any(req.Answers))
	averages := services.PillarAverages(answers)
	total := services.TotalScore24(averages)
	band := services.MaturityBand(total)

	answered := 0
	questionCount := 0
	for _, p := range averages {
		answered += p.AnsweredCount
		questionCount += p.QuestionCount
	}

	render.JSON(w, r, map[string]any{
		"pillarAverages":  averages,
		"pillarsRanked":   services.RankPillarsWeakestFirst(averages),
		"totalScore24":    total,
		"band":            band,
		"bandDescription": services.BandDescription(band),
		"confidence":      services.ConfidenceLabel(answered, questionCount),
		"quickWins":       services.ResolveQuickWins(answers),
	})
}

func (rt *Router) listSnapshots(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	history := services.ChronologicalSnapshots(rt.snapshots.ReadAll(), token)

	// Newest first for the results view.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	render.JSON(w, r, map[string]any{"snapshots": history})
}

type saveSnapshotRequest struct {
	Token   string            `json:"token"`
	Profile services.Profile  `json:"profile"`
	Notes   map[string]string `json:"notes"`
	Answers map[string]any    `json:"answers"`
}

func (rt *Router) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req saveSnapshotRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, services.NewInvalidError("invalid request body"))
		return
	}

	answers := services.NormalizeAnswers(any(req.Answers))
	snapshot := services.BuildSnapshot(req.Token, req.Profile, req.Notes, answers, "")

	log := rt.snapshots.ReadAll()
	if services.IsDuplicateSnapshot(snapshot, log) {
		render.JSON(w, r, map[string]any{"saved": false, "duplicate": true, "snapshot": snapshot})
		return
	}

	if _, err := rt.snapshots.Append(snapshot); err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{"saved": true, "duplicate": false, "snapshot": snapshot})
}

func (rt *Router) getTrend(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	history := services.ChronologicalSnapshots(rt.snapshots.ReadAll(), token)

	type point struct {
		TimestampISO string  `json:"timestampISO"`
		TotalScore24 float64 `json:"totalScore24"`
		Band         string  `json:"band"`
	}
	points := make([]point, 0, len(history))
	for _, s := range history {
		points = append(points, point{TimestampISO: s.TimestampISO, TotalScore24: s.TotalScore24, Band: s.Band})
	}

	render.JSON(w, r, map[string]any{
		"points":    points,
		"sparkline": services.Sparkline(services.TrendValues(history)),
	})
}

type loginRequest struct {
	Code string `json:"code"`
}

func (rt *Router) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, services.NewInvalidError("invalid request body"))
		return
	}

	// An empty configured hash disables the gate entirely.
	if rt.adminCodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(rt.adminCodeHash), []byte(req.Code)); err != nil {
			renderError(w, r, services.NewUnauthorizedError("invalid admin code"))
			return
		}
	}

	token, err := middleware.SignAdminToken(rt.jwtSecret, adminSessionTTL)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]string{"token": token})
}

func (rt *Router) adminRows(r *http.Request) []services.Row {
	q := r.URL.Query()
	rows := services.LatestPerSubject(rt.snapshots.ReadAll())
	rows = services.FilterRows(rows, q.Get("country"), q.Get("q"))

	key := services.SortKey(q.Get("sort"))
	if key != services.SortByScore {
		key = services.SortByDate
	}
	dir := services.SortDir(q.Get("dir"))
	if dir != services.SortAsc {
		dir = services.SortDesc
	}
	return services.SortRows(rows, key, dir)
}

func (rt *Router) adminOverview(w http.ResponseWriter, r *http.Request) {
	allRows := services.LatestPerSubject(rt.snapshots.ReadAll())
	rows := rt.adminRows(r)

	render.JSON(w, r, map[string]any{
		"rows":          rows,
		"insights":      services.Insights(allRows),
		"countries":     services.Countries(allRows),
		"targetScore24": rt.settings.TargetScore(),
	})
}

func (rt *Router) exportCSV(w http.ResponseWriter, r *http.Request) {
	rows := rt.adminRows(r)
	data, err := services.ExportLatestCSV(rows)
	if err != nil {
		renderError(w, r, err)
		return
	}
	filename := fmt.Sprintf("ppqsa-admin-latest-%s.csv", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (rt *Router) exportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := services.ExportLogJSON(rt.snapshots.ReadAll())
	if err != nil {
		renderError(w, r, err)
		return
	}
	filename := fmt.Sprintf("ppqsa-admin-snapshots-%s.json", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (rt *Router) clearSnapshots(w http.ResponseWriter, r *http.Request) {
	if err := rt.snapshots.Clear(); err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"cleared": true})
}

func (rt *Router) listInvites(w http.ResponseWriter, r *http.Request) {
	invites := rt.invites.ReadAll()

	// Lifecycle status: whether the invitee has saved at least one snapshot.
	hasSnapshot := map[string]bool{}
	for _, s := range rt.snapshots.ReadAll() {
		hasSnapshot[s.Token] = true
	}

	type inviteView struct {
		services.Invite
		HasSnapshot bool `json:"hasSnapshot"`
	}
	out := make([]inviteView, 0, len(invites))
	for _, inv := range invites {
		out = append(out, inviteView{Invite: inv, HasSnapshot: hasSnapshot[inv.Token]})
	}
	render.JSON(w, r, map[string]any{"invites": out})
}

type createInviteRequest struct {
	Label string `json:"label"`
}

func (rt *Router) createInvite(w http.ResponseWriter, r *http.Request) {
	var req createInviteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, services.NewInvalidError("invalid request body"))
		return
	}

	invite := services.NewInvite(req.Label)
	invites := append(rt.invites.ReadAll(), invite)
	if err := rt.invites.WriteAll(invites); err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, invite)
}

func (rt *Router) revokeInvite(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	invites, found := services.RevokeInvite(rt.invites.ReadAll(), token)
	if !found {
		renderError(w, r, services.NewNotFoundError("invite not found"))
		return
	}
	if err := rt.invites.WriteAll(invites); err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"revoked": true})
}

func (rt *Router) getTarget(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{"targetScore24": rt.settings.TargetScore()})
}

type setTargetRequest struct {
	Value string `json:"value"`
}

func (rt *Router) setTarget(w http.ResponseWriter, r *http.Request) {
	var req setTargetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, services.NewInvalidError("invalid request body"))
		return
	}

	v, err := rt.settings.SetTargetScore(req.Value)
	if err != nil {
		var se *services.ServiceError
		if errors.As(err, &se) {
			// Invalid input keeps the prior value; report it back.
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]any{"error": se.Message, "targetScore24": v})
			return
		}
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"targetScore24": v})
}
