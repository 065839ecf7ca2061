package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/editor"
	"github.com/ssargent/logmacster/pkg/grid"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/ssargent/logmacster/pkg/logbook"
	"github.com/ssargent/logmacster/pkg/query"
	"github.com/ssargent/logmacster/pkg/shell"
)

// Server holds the API server state
type Server struct {
	ctrl    *editor.Controller
	engine  *query.Engine
	config  ServerConfig
	metrics *Metrics
	logger  *log.Logger
}

// NewServer creates a new API server editing the log held by ctrl
func NewServer(ctrl *editor.Controller, config ServerConfig, metrics *Metrics, logger *log.Logger) *Server {
	return &Server{
		ctrl:    ctrl,
		engine:  query.NewEngine(nil),
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Server) store() *logbook.Store {
	return s.ctrl.Store()
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDocument godoc
//
//	@Summary		Describe the open log
//	@Tags			document
//	@Produce		json
//	@Success		200	{object}	DocumentInfo
//	@Router			/document [get]
//	@Security		ApiKeyAuth
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.store().Document()
	sendSuccess(w, DocumentInfo{
		Title:        s.ctrl.Title(),
		Path:         doc.Path,
		Modified:     s.store().Modified(),
		Header:       doc.Header,
		HeaderFields: doc.HeaderFields(),
		Count:        len(doc.Records),
	})
}

// handleDocumentADIF godoc
//
//	@Summary		Generate ADIF
//	@Description	Returns the text that saving the log would write
//	@Tags			document
//	@Produce		plain
//	@Success		200	{string}	string
//	@Router			/document/adif [get]
//	@Security		ApiKeyAuth
func (s *Server) handleDocumentADIF(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	text := s.store().ADIF()
	s.metrics.RecordCodecOperation("generate", true, time.Since(start))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// handleFields godoc
//
//	@Summary		List schema fields
//	@Tags			schema
//	@Produce		json
//	@Success		200	{array}	adif.FieldSpec
//	@Router			/fields [get]
//	@Security		ApiKeyAuth
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, adif.Fields())
}

// handleColumns godoc
//
//	@Summary		Grid column model
//	@Tags			schema
//	@Produce		json
//	@Success		200	{array}	grid.Column
//	@Router			/columns [get]
//	@Security		ApiKeyAuth
func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, grid.Columns())
}

// handleValidate godoc
//
//	@Summary		Validate a field value
//	@Tags			schema
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ValidateRequest	true	"Field and value"
//	@Success		200		{object}	adif.ValidationResult
//	@Failure		400		{object}	APIResponse
//	@Router			/validate [post]
//	@Security		ApiKeyAuth
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Field == "" {
		sendError(w, "Field is required", http.StatusBadRequest)
		return
	}

	res := adif.Validate(req.Field, req.Value)
	if !res.Valid {
		s.metrics.RecordValidationFailure(req.Field)
	}
	sendSuccess(w, res)
}

// handleListRecords godoc
//
//	@Summary		List records
//	@Description	Rows in log order, optionally filtered and sorted
//	@Tags			records
//	@Produce		json
//	@Param			filter	query		string	false	"Comma separated conditions, e.g. BAND=20m,FREQ>14"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			desc	query		bool	false	"Sort descending"
//	@Success		200		{object}	RecordsResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/records [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	queries, err := query.ParseFieldQueries(params.Get("filter"))
	if err != nil {
		sendError(w, "Invalid filter: "+err.Error(), http.StatusBadRequest)
		return
	}

	desc := false
	if v := params.Get("desc"); v != "" {
		desc, err = strconv.ParseBool(v)
		if err != nil {
			sendError(w, "Invalid desc parameter", http.StatusBadRequest)
			return
		}
	}

	all := s.store().Rows()
	rows := s.engine.Filter(all, queries...)
	if field := params.Get("sort"); field != "" {
		s.engine.Sort(rows, field, desc)
	}

	sendSuccess(w, RecordsResponse{
		Rows:  rows,
		Count: len(rows),
		Total: len(all),
	})
}

// handleCreateRecord godoc
//
//	@Summary		Add a blank record
//	@Tags			records
//	@Produce		json
//	@Success		201	{object}	logbook.Row
//	@Router			/records [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	row := s.store().Add()
	s.metrics.UpdateRecordCount(s.store().Len())
	sendJSON(w, http.StatusCreated, APIResponse{Success: true, Data: row})
}

// handleSetField godoc
//
//	@Summary		Commit a cell
//	@Description	Validates the value and stores it; an invalid value leaves the record unchanged
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Row ID"
//	@Param			field	path		string		true	"ADIF field name"
//	@Param			body	body		CellRequest	true	"New value"
//	@Success		200		{object}	CellResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Failure		422		{object}	adif.ValidationResult
//	@Router			/records/{id}/fields/{field} [put]
//	@Security		ApiKeyAuth
func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	field := chi.URLParam(r, "field")
	if id == "" || field == "" {
		sendError(w, "Row ID and field are required", http.StatusBadRequest)
		return
	}

	var req CellRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	value, err := grid.Commit(s.store(), id, field, req.Value)
	var commitErr *grid.CommitError
	switch {
	case errors.As(err, &commitErr):
		s.metrics.RecordValidationFailure(commitErr.Field)
		sendJSON(w, http.StatusUnprocessableEntity, APIResponse{
			Success: false,
			Data:    adif.ValidationResult{Valid: false, Message: commitErr.Message},
			Error:   commitErr.Error(),
		})
		return
	case errors.Is(err, logbook.ErrRowNotFound):
		sendError(w, "Row not found", http.StatusNotFound)
		return
	case err != nil:
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, CellResponse{ID: id, Field: field, Value: value})
}

// handleDeleteRecords godoc
//
//	@Summary		Delete records
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			body	body		DeleteRequest	true	"Row IDs"
//	@Success		200		{object}	map[string]int
//	@Failure		400		{object}	APIResponse
//	@Router			/records [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteRecords(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		sendError(w, "At least one row ID is required", http.StatusBadRequest)
		return
	}

	n := s.store().Delete(req.IDs...)
	s.metrics.UpdateRecordCount(s.store().Len())
	sendSuccess(w, map[string]int{"deleted": n})
}

// handleOpen godoc
//
//	@Summary		Open a log file
//	@Description	Reads a file on the server and replaces the open log with its records
//	@Tags			file
//	@Accept			json
//	@Produce		json
//	@Param			body	body		PathRequest	true	"File path"
//	@Success		200		{object}	FileResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/file/open [post]
//	@Security		ApiKeyAuth
func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := decodeJSON(r, &req); err != nil || req.Path == "" {
		sendError(w, "A file path is required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	n, err := s.ctrl.Open(req.Path)
	s.metrics.RecordCodecOperation("parse", err == nil, time.Since(start))
	if err != nil {
		s.logger.Warn("open failed", "path", req.Path, "error", err)
		sendError(w, err.Error(), fileErrorStatus(err))
		return
	}

	s.metrics.UpdateRecordCount(n)
	sendSuccess(w, FileResponse{Path: s.store().Path(), Count: n})
}

// handleSave godoc
//
//	@Summary		Save the log
//	@Description	Writes the log to the path it was opened from or last saved to
//	@Tags			file
//	@Produce		json
//	@Success		200	{object}	FileResponse
//	@Failure		409	{object}	APIResponse
//	@Router			/file/save [post]
//	@Security		ApiKeyAuth
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	path := s.store().Path()
	if path == "" {
		sendError(w, editor.ErrNoPath.Error(), http.StatusConflict)
		return
	}
	s.save(w, path)
}

// handleSaveAs godoc
//
//	@Summary		Save the log to a new path
//	@Tags			file
//	@Accept			json
//	@Produce		json
//	@Param			body	body		PathRequest	true	"File path"
//	@Success		200		{object}	FileResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/file/save-as [post]
//	@Security		ApiKeyAuth
func (s *Server) handleSaveAs(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := decodeJSON(r, &req); err != nil || req.Path == "" {
		sendError(w, "A file path is required", http.StatusBadRequest)
		return
	}
	s.save(w, req.Path)
}

func (s *Server) save(w http.ResponseWriter, path string) {
	start := time.Now()
	err := s.ctrl.SaveAs(path)
	s.metrics.RecordCodecOperation("generate", err == nil, time.Since(start))
	if err != nil {
		s.logger.Warn("save failed", "path", path, "error", err)
		sendError(w, err.Error(), fileErrorStatus(err))
		return
	}
	sendSuccess(w, FileResponse{Path: s.store().Path(), Count: s.store().Len()})
}

func fileErrorStatus(err error) int {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, shell.ErrExtension),
		errors.Is(err, shell.ErrNotFile):
		return http.StatusBadRequest
	case errors.Is(err, shell.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, editor.ErrNoPath):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
