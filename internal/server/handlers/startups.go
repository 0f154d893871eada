package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/server/response"
	"github.com/agentstation/seedmap/pkg/startups"
)

// SectorCount is one entry of the sectors listing.
type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// HandleListStartups handles GET /api/v1/startups.
// @Summary List startups
// @Description List startups with the same filter, search, sort and paging as the grid
// @Tags startups
// @Produce json
// @Param filter query string false "Sector tag, or all"
// @Param q query string false "Case-insensitive substring of the company name or summary"
// @Param sort query string false "name, funding or recent"
// @Param page query integer false "Page number, 12 records per page"
// @Param all query boolean false "Return every matching record in one page"
// @Success 200 {object} response.Response{data=browse.Result}
// @Failure 502 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/startups [get].
func (h *Handlers) HandleListStartups(w http.ResponseWriter, r *http.Request) {
	v := browse.ParseView(r.URL.Query())

	records, err := h.app.Dataset().Load(r.Context())
	if err != nil {
		logLoadFailure(r.Context(), err)
		response.ErrorFromType(w, err)
		return
	}

	sorter := h.app.Sorter()
	var res browse.Result
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		matched := sorter.Sort(browse.Filter(records, v), v.Sort)
		res = browse.Result{
			View:     v.WithPage(1),
			Matched:  matched,
			Visible:  matched,
			Total:    len(matched),
			Page:     1,
			PageSize: len(matched),
		}
	} else {
		res = sorter.Apply(records, v)
	}
	if res.Visible == nil {
		res.Visible = []startups.Record{}
	}

	response.OK(w, res)
}

// HandleGetStartup handles GET /api/v1/startups/{name}.
// @Summary Get startup by name
// @Description Retrieve one startup profile; names match exactly or ignoring case
// @Tags startups
// @Produce json
// @Param name path string true "Company name"
// @Success 200 {object} response.Response{data=startups.Record}
// @Failure 404 {object} response.Response{error=response.Error}
// @Failure 422 {object} response.Response{error=response.Error}
// @Failure 502 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/startups/{name} [get].
func (h *Handlers) HandleGetStartup(w http.ResponseWriter, r *http.Request, name string) {
	if name == "" {
		response.BadRequest(w, msgNoID, "")
		return
	}

	records, err := h.app.Dataset().Load(r.Context())
	if err != nil {
		logLoadFailure(r.Context(), err)
		response.ErrorFromType(w, err)
		return
	}

	rec, err := startups.Find(records, name)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if err := rec.Validate(); err != nil {
		response.Unprocessable(w, msgInvalidRecord, "")
		return
	}

	response.OK(w, rec)
}

// HandleListSectors handles GET /api/v1/sectors.
// @Summary List sectors
// @Description Every sector tag in the dataset with the number of startups carrying it
// @Tags startups
// @Produce json
// @Success 200 {object} response.Response{data=[]SectorCount}
// @Failure 502 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/sectors [get].
func (h *Handlers) HandleListSectors(w http.ResponseWriter, r *http.Request) {
	records, err := h.app.Dataset().Load(r.Context())
	if err != nil {
		logLoadFailure(r.Context(), err)
		response.ErrorFromType(w, err)
		return
	}

	counts := startups.SectorCounts(records)
	sectors := startups.Sectors(records)
	out := make([]SectorCount, 0, len(sectors))
	for _, s := range sectors {
		out = append(out, SectorCount{Sector: s, Count: counts[s]})
	}

	response.OK(w, out)
}
