package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/favicon"
	"github.com/agentstation/seedmap/internal/render"
	"github.com/agentstation/seedmap/internal/theme"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/logging"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Detail page messages.
const (
	msgNoID          = "No startup ID provided"
	msgInvalidRecord = "Invalid startup data: missing required fields"
	msgLoadDetail    = "Failed to load startup details: "
	msgRenderDetail  = "Failed to render startup details: "
)

// HandleIndex handles GET /, the grid page with its first page of cards.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.HandleNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.HandleMethodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}

	ctx := logging.WithOperation(r.Context(), "grid")
	t := h.themes.Resolve(r)
	theme.AdvertiseHints(w)

	v := browse.DefaultView()
	if h.opts.RestoreURLState {
		v = browse.ParseView(r.URL.Query()).WithPage(1)
	}

	records, err := h.app.Dataset().Load(ctx)
	if err != nil {
		logLoadFailure(ctx, err)
		h.writeHTML(w, r, http.StatusBadGateway, func(out io.Writer) error {
			return h.renderer.Grid(out, render.NewGridErrorPage(t, v, err))
		})
		return
	}

	res := h.app.Sorter().Apply(records, v)
	logging.FromContext(ctx).Debug().
		Int("total", res.Total).
		Int("visible", len(res.Visible)).
		Str("filter", v.Filter).
		Str("sort", string(v.Sort)).
		Msg("Grid rendered")

	h.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Grid(out, render.NewGridPage(t, startups.Sectors(records), res))
	})
}

// HandleFragment handles GET /startups. It returns the cards of one page
// for the view in the query plus the sentinel for the next page.
func (h *Handlers) HandleFragment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.HandleMethodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}

	ctx := logging.WithOperation(r.Context(), "fragment")
	v := browse.ParseView(r.URL.Query())

	records, err := h.app.Dataset().Load(ctx)
	if err != nil {
		logLoadFailure(ctx, err)
		h.writeHTML(w, r, http.StatusBadGateway, func(out io.Writer) error {
			return h.renderer.Fragment(out, render.NewErrorFragment(err))
		})
		return
	}

	res := h.app.Sorter().Apply(records, v)
	h.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Fragment(out, render.NewFragment(res))
	})
}

// HandleDetail handles GET /startup?id=, the full profile of one startup.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.HandleMethodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}

	id := r.URL.Query().Get("id")
	ctx := logging.WithStartup(r.Context(), id)
	logger := logging.FromContext(ctx)
	t := h.themes.Resolve(r)
	theme.AdvertiseHints(w)

	page := render.NewDetailPage(t, id)
	status, page := h.resolveDetail(ctx, page)
	if status != http.StatusOK {
		logger.Warn().Int("status", status).Str("reason", page.Error).Msg("Detail page failed")
	}

	var buf bytes.Buffer
	err := h.renderer.Detail(&buf, page)
	if err != nil && page.State == render.DetailContent {
		// A record that breaks the template still gets the error state.
		logger.Error().Err(err).Msg("Failed to render startup details")
		status = http.StatusInternalServerError
		page = render.NewDetailPage(t, id).Fail(msgRenderDetail + renderCause(err))
		buf.Reset()
		err = h.renderer.Detail(&buf, page)
	}

	h.writeHTML(w, r, status, func(out io.Writer) error {
		if err != nil {
			return err
		}
		_, werr := buf.WriteTo(out)
		return werr
	})
}

// resolveDetail moves page out of the loading state and returns the
// status to send with it.
func (h *Handlers) resolveDetail(ctx context.Context, page render.DetailPage) (int, render.DetailPage) {
	if page.ID == "" {
		return http.StatusBadRequest, page.Fail(msgNoID)
	}

	records, err := h.app.Dataset().Load(ctx)
	if err != nil {
		return http.StatusBadGateway, page.Fail(msgLoadDetail + err.Error())
	}

	rec, err := startups.Find(records, page.ID)
	if err != nil {
		return http.StatusNotFound, page.Fail(err.Error())
	}
	if err := rec.Validate(); err != nil {
		return http.StatusUnprocessableEntity, page.Fail(msgInvalidRecord)
	}

	var icon *favicon.Icon
	if found, ok := h.app.Favicons().Resolve(ctx, rec.WebsiteURL); ok {
		icon = &found
	}

	return http.StatusOK, page.Show(render.NewProfile(rec, icon))
}

// renderCause strips the wrapping added by the renderer.
func renderCause(err error) string {
	var re *errors.ResourceError
	if errors.As(err, &re) && re.Err != nil {
		return re.Err.Error()
	}
	return fmt.Sprint(err)
}
