package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/wr_zones/controller"
	"github.com/mww/wr_zones/dataset"
	"github.com/mww/wr_zones/model"
	"github.com/unrolled/render"
)

const dataUnavailableMsg = "Error loading data. Please ensure the data source is available."

type dashboardPage struct {
	Selection model.Selection
	Teams     []string
	Players   []model.Player
	Dashboard *model.Dashboard
	Status    model.Status
}

// errorStatus picks the response code and the template for an error coming
// back from the controller.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, dataset.ErrDataUnavailable):
		return http.StatusServiceUnavailable, "503"
	case errors.Is(err, controller.ErrPlayerNotFound), errors.Is(err, controller.ErrTeamNotFound):
		return http.StatusNotFound, "404"
	case errors.Is(err, model.ErrBadZone):
		return http.StatusBadRequest, "400"
	default:
		return http.StatusInternalServerError, "500"
	}
}

func errorMessage(status int, err error) string {
	if status == http.StatusServiceUnavailable {
		return dataUnavailableMsg
	}
	return err.Error()
}

func renderHTMLError(w http.ResponseWriter, render *render.Render, err error) {
	status, tmpl := errorStatus(err)
	render.HTML(w, status, tmpl, errorMessage(status, err))
}

func renderJSONError(w http.ResponseWriter, render *render.Render, err error) {
	status, _ := errorStatus(err)
	render.JSON(w, status, map[string]string{"error": errorMessage(status, err)})
}

func selectionFromQuery(r *http.Request) model.Selection {
	q := r.URL.Query()
	return model.Selection{
		Team:     q.Get("team"),
		PlayerID: q.Get("player"),
		Zone:     q.Get("zone"),
	}
}

func dashboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := selectionFromQuery(r)
		if sel.Team == "" {
			sel.Team = model.TeamAll
		}

		teams, err := ctrl.Teams(r.Context())
		if err != nil {
			renderHTMLError(w, render, err)
			return
		}

		players, err := ctrl.Players(r.Context(), sel.Team)
		if err != nil {
			renderHTMLError(w, render, err)
			return
		}

		d, err := ctrl.Dashboard(r.Context(), sel)
		if err != nil {
			renderHTMLError(w, render, err)
			return
		}

		page := dashboardPage{
			Selection: sel,
			Teams:     teams,
			Players:   players,
			Dashboard: d,
			Status:    ctrl.Status(),
		}
		render.HTML(w, http.StatusOK, "dashboard", page)
	}
}

func healthHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := ctrl.Status()
		status := http.StatusOK
		if !s.Available {
			status = http.StatusServiceUnavailable
		}
		render.JSON(w, status, s)
	}
}

func teamsAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.Teams(r.Context())
		if err != nil {
			renderJSONError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func teamAggregateAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		agg, err := ctrl.TeamAggregate(r.Context(), team)
		if err != nil {
			renderJSONError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, agg)
	}
}

func playersAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		players, err := ctrl.Players(r.Context(), team)
		if err != nil {
			renderJSONError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func getPlayerAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			renderJSONError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func dashboardAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := ctrl.Dashboard(r.Context(), selectionFromQuery(r))
		if err != nil {
			renderJSONError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func zoneDetailAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zone, err := model.ParseZoneKey(chi.URLParam(r, "zone"))
		if err != nil {
			renderJSONError(w, render, err)
			return
		}

		entityID := chi.URLParam(r, "entityID")
		detail, err := ctrl.ZoneDetail(r.Context(), entityID, zone)
		if err != nil {
			renderJSONError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, detail)
	}
}
