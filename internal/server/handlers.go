package server

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	kargo "github.com/okang-lab/Kaffesa-Cargo-Print"
	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/session"
	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/sheet"
	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

type parseRequest struct {
	Text string `json:"text"`
}

type payerRequest struct {
	Payer string `json:"payer" binding:"required"`
}

type sessionResponse struct {
	ID      string          `json:"id,omitempty"`
	Records []session.Entry `json:"records"`
	Blocks  int             `json:"blocks"`
	Dropped int             `json:"dropped"`
	Message string          `json:"message,omitempty"`
}

func newSessionResponse(s session.Session) sessionResponse {
	return sessionResponse{ID: s.ID, Records: s.Entries, Blocks: s.Blocks, Dropped: s.Dropped}
}

// createSession parses pasted text (JSON) or an uploaded file (multipart)
// and stores the records. Input without shipments is not an error.
func (s *Server) createSession(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)

	text, err := s.readInput(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := s.parser.Parse(text)
	if len(res.Records) == 0 {
		c.JSON(http.StatusOK, sessionResponse{
			Records: []session.Entry{},
			Blocks:  res.Blocks,
			Dropped: res.Dropped,
			Message: "no shipments found",
		})
		return
	}

	sess := s.store.Create(res)
	s.logger.Info("session created", "session", sess.ID, "records", len(sess.Entries), "dropped", sess.Dropped)
	c.JSON(http.StatusCreated, newSessionResponse(sess))
}

func (s *Server) readInput(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return "", err
		}
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		return sheet.Read(fh.Filename, f)
	}

	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", err
	}
	return req.Text, nil
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.store.Get(c.Param("sid"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(sess))
}

func (s *Server) deleteSession(c *gin.Context) {
	s.store.Delete(c.Param("sid"))
	c.Status(http.StatusNoContent)
}

func (s *Server) setPayer(c *gin.Context) {
	var req payerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.store.SetPayer(c.Param("sid"), c.Param("rid"), shipment.NormalizePayer(req.Payer))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) labelsHTML(c *gin.Context) {
	sess, err := s.store.Get(c.Param("sid"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.writeHTML(c, sess.Records())
}

func (s *Server) labelHTML(c *gin.Context) {
	entry, err := s.entry(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.writeHTML(c, []shipment.Record{entry.Record})
}

func (s *Server) labelsPDF(c *gin.Context) {
	sess, err := s.store.Get(c.Param("sid"))
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := s.renderer.BulkPDF(c.Request.Context(), sess.Records())
	if err != nil {
		s.fail(c, err)
		return
	}
	writePDF(c, res)
}

func (s *Server) labelPDF(c *gin.Context) {
	entry, err := s.entry(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := s.renderer.LabelPDF(c.Request.Context(), entry.Record)
	if err != nil {
		s.fail(c, err)
		return
	}
	writePDF(c, res)
}

func (s *Server) entry(c *gin.Context) (session.Entry, error) {
	sess, err := s.store.Get(c.Param("sid"))
	if err != nil {
		return session.Entry{}, err
	}
	e, ok := sess.Entry(c.Param("rid"))
	if !ok {
		return session.Entry{}, session.ErrRecordNotFound
	}
	return e, nil
}

func (s *Server) writeHTML(c *gin.Context, recs []shipment.Record) {
	var buf bytes.Buffer
	if err := s.renderer.PrintHTML(&buf, recs); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func writePDF(c *gin.Context, res *kargo.Result) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename()}))
	c.Data(http.StatusOK, "application/pdf", res.Bytes())
}

// fail maps domain errors onto HTTP status codes.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrInvalidPayer), errors.Is(err, kargo.ErrNoRecords):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, kargo.ErrClosed):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
