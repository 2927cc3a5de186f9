package server

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/render"
	"github.com/vango-dev/hyperflex/pkg/selector"
	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// handleRender decodes the posted document and responds with its HTML.
//
// Query parameters:
//   - pretty=1 indents the output
//   - page=1 wraps it in a full document, titled by title=
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errors.New("E001").
				WithDetailf("request body exceeds %d bytes", s.config.MaxBodyBytes))
			return
		}
		writeError(w, http.StatusBadRequest, errors.New("E010").WithDetail(err.Error()))
		return
	}

	q := r.URL.Query()
	rc := render.RendererConfig{
		Pretty: s.config.Pretty || isTrue(q.Get("pretty")),
		Indent: s.config.Indent,
	}
	node, err := s.buildDocument(r, body)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isTrue(q.Get("page")) {
		// The head is flushed before the body; a failure after that can
		// only be logged.
		page := render.PageData{Title: q.Get("title"), Body: node}
		if err := render.NewStreamingRenderer(w, rc).RenderPage(page); err != nil {
			s.logger.Warn("page render failed", "error", err)
		}
		return
	}

	html, err := render.NewRenderer(rc).RenderToString(node)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	io.WriteString(w, html)
}

// buildDocument decodes src and runs it through the render chain.
func (s *Server) buildDocument(r *http.Request, src []byte) (*vdom.VNode, error) {
	spec, err := tree.Decode("request", src)
	if err != nil {
		return nil, err
	}
	return s.render(r.Context(), spec)
}

type descriptorResponse struct {
	Tag       string   `json:"tag"`
	ID        string   `json:"id"`
	ClassList []string `json:"classList"`
}

// handleParse reports how a selector is parsed.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	d, err := selector.Parse(r.URL.Query().Get("selector"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, descriptorResponse{
		Tag:       d.Tag,
		ID:        d.ID,
		ClassList: d.ClassList,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
