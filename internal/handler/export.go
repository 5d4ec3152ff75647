package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/middleware"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/service"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the requester's posts as a CSV or XLSX
// attachment.
type ExportHandler struct {
	Posts *service.PostService
}

func NewExportHandler(posts *service.PostService) *ExportHandler {
	return &ExportHandler{Posts: posts}
}

var exportHeader = []string{"ID", "Title", "Description", "Categories", "Created", "Updated"}

// ExportCSV handles GET /posts/export/csv.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return
	}

	posts, err := h.Posts.ByOwner(user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"posts_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for i := range posts {
		p := &posts[i]
		cats := make([]string, 0, len(p.Categories))
		for _, cat := range p.Categories {
			cats = append(cats, cat.Name)
		}
		writer.Write([]string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Title,
			p.Description,
			strings.Join(cats, ";"),
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
}

// ExportXLSX handles GET /posts/export/xlsx.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return
	}

	posts, err := h.Posts.ByOwner(user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Posts"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	for row := range posts {
		p := &posts[row]
		cats := make([]string, 0, len(p.Categories))
		for _, cat := range p.Categories {
			cats = append(cats, cat.Name)
		}
		values := []interface{}{
			p.ID,
			p.Title,
			p.Description,
			strings.Join(cats, ";"),
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"posts_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		// headers are already out; nothing sensible left to send
		c.Status(http.StatusInternalServerError)
	}
}
