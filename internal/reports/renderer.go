// Package reports serializes a land's bid ledger and statistics into
// downloadable documents.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"agromart-backend/internal/bids"
	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

var csvHeader = []string{"Bidder Name", "Mobile Number", "National ID", "Bid Amount", "Date", "Time"}

// Report is a rendered document ready to be sent as a download.
type Report struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate renders the land's ledger in the requested format. Bids appear in
// insertion order; both formats are derived from the same ledger and
// statistics so their aggregate figures always agree.
func (s *Service) Generate(ctx context.Context, landID uuid.UUID, format string) (*Report, error) {
	if format != FormatCSV && format != FormatPDF {
		return nil, apperr.UnsupportedFormat("Invalid format. Use csv or pdf")
	}

	var land models.Land
	if err := s.DB.WithContext(ctx).Where("land_id = ?", landID).First(&land).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Land not found")
		}
		return nil, apperr.Store(err)
	}
	var bidList []models.Bid
	if err := s.DB.WithContext(ctx).
		Where("land_id = ?", landID).
		Order("created_at ASC").
		Find(&bidList).Error; err != nil {
		return nil, apperr.Store(err)
	}

	now := s.now()
	stats := bids.Compute(&land, bidList, now)

	switch format {
	case FormatCSV:
		content, err := renderCSV(bidList)
		if err != nil {
			return nil, apperr.Store(err)
		}
		return &Report{
			FileName:    fmt.Sprintf("land-%s-bids-report.csv", land.LandID),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	default:
		content, err := renderPDF(&land, bidList, stats, now)
		if err != nil {
			return nil, apperr.Store(err)
		}
		return &Report{
			FileName:    fmt.Sprintf("land-%s-bids-report.pdf", land.LandID),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
}

func renderCSV(bidList []models.Bid) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, b := range bidList {
		if err := w.Write(bidRow(b)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderPDF writes the paginated document variant: header block, statistics
// block, then one row per bid. Long ledgers flow onto additional pages via
// the auto page break instead of overflowing a single page.
func renderPDF(land *models.Land, bidList []models.Bid, stats bids.Statistics, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "Land Bidding Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Land Owner: %s", land.OwnerName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Location: %s", land.LocationAddress))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Base Amount: %s", formatAmount(land.Amount)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Report Generated: %s", now.Format("2006-01-02 15:04:05")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, "Statistics")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total Bids: %d", stats.TotalBids))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Highest Bid: %s", formatAmount(stats.HighestBid)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Average Bid: %s", formatAmount(stats.AverageBidAmount)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, "Bids")
	pdf.Ln(10)

	writeTableHeader(pdf)
	pdf.SetFont("Helvetica", "", 10)
	for _, b := range bidList {
		row := bidRow(b)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, row[1], "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, row[2], "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, row[3], "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, row[4]+" "+row[5], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 8, "Bidder Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Mobile", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "National ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.Ln(-1)
}

// bidRow renders the shared record fields used by both variants.
func bidRow(b models.Bid) []string {
	nationalID := b.NationalID
	if nationalID == "" {
		nationalID = "-"
	}
	return []string{
		b.BidderName,
		b.MobileNumber,
		nationalID,
		formatAmount(b.BidAmount),
		b.CreatedAt.Format("2006-01-02"),
		b.CreatedAt.Format("15:04:05"),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
