// Package api exposes the assessment core over HTTP. Handlers stay thin:
// decode, call the services/store layer, render JSON.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/middleware"
	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/store"
)

const adminSessionTTL = 12 * time.Hour

type Router struct {
	snapshots store.Store
	invites   *store.InviteFile
	settings  *store.SettingsFile

	adminCodeHash string
	jwtSecret     []byte
}

func NewRouter(snapshots store.Store, invites *store.InviteFile, settings *store.SettingsFile, adminCodeHash, jwtSecret string) *Router {
	return &Router{
		snapshots:     snapshots,
		invites:       invites,
		settings:      settings,
		adminCodeHash: adminCodeHash,
		jwtSecret:     []byte(jwtSecret),
	}
}

func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", rt.getCatalog)
		r.Post("/score", rt.previewScore)

		r.Get("/snapshots", rt.listSnapshots)
		r.Post("/snapshots", rt.saveSnapshot)
		r.Get("/trends/{token}", rt.getTrend)

		r.Post("/admin/login", rt.adminLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(rt.jwtSecret))

			r.Get("/admin/overview", rt.adminOverview)
			r.Get("/admin/export/csv", rt.exportCSV)
			r.Get("/admin/export/json", rt.exportJSON)
			r.Delete("/admin/snapshots", rt.clearSnapshots)

			r.Get("/admin/invites", rt.listInvites)
			r.Post("/admin/invites", rt.createInvite)
			r.Post("/admin/invites/{token}/revoke", rt.revokeInvite)

			r.Get("/admin/target", rt.getTarget)
			r.Put("/admin/target", rt.setTarget)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true, "name": "PPQSA API"})
	})

	return r
}
