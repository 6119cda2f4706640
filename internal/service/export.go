package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/zonefest/zonefest-api/internal/config"
	"github.com/zonefest/zonefest-api/internal/domain"
)

type ExportUserRepository interface {
	FindByCollegeID(ctx context.Context, collegeID uint) ([]domain.User, error)
}

type ExportOrganizationRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Organization, error)
	FindColleges(ctx context.Context) ([]domain.Organization, error)
}

type ExportEventRepository interface {
	FindAllEvents(ctx context.Context) ([]domain.Event, error)
}

// ExportService renders participant credentials and program documents with
// the running zone's branding.
type ExportService struct {
	userRepo  ExportUserRepository
	orgRepo   ExportOrganizationRepository
	eventRepo ExportEventRepository
	zone      *config.ZoneConfig
}

func NewExportService(userRepo ExportUserRepository, orgRepo ExportOrganizationRepository, eventRepo ExportEventRepository, zone *config.ZoneConfig) *ExportService {
	return &ExportService{
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		eventRepo: eventRepo,
		zone:      zone,
	}
}

func (s *ExportService) fillColor(pdf *gofpdf.Fpdf) {
	c := s.zone.PrimaryColor
	pdf.SetFillColor(int(c.R*255), int(c.G*255), int(c.B*255))
}

// ParticipantCardsPDF renders one credential card per participant of the
// given college, two cards per page.
func (s *ExportService) ParticipantCardsPDF(ctx context.Context, collegeID uint) ([]byte, error) {
	college, err := s.orgRepo.FindByID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("s.orgRepo.FindByID -> %w", err)
	}

	users, err := s.userRepo.FindByCollegeID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByCollegeID -> %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	const cardHeight = 120.0
	for i, user := range users {
		if i%2 == 0 {
			pdf.AddPage()
		}
		s.drawCard(pdf, 15+float64(i%2)*cardHeight, user, college.Name)
	}

	if len(users) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "I", 12)
		pdf.Text(15, 30, "No participants registered.")
	}

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Output -> %w", err)
	}

	return buf.Bytes(), nil
}

func (s *ExportService) drawCard(pdf *gofpdf.Fpdf, top float64, user domain.User, collegeName string) {
	const left, width = 15.0, 180.0

	s.fillColor(pdf)
	pdf.Rect(left, top, width, 14, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(left+4, top+9, s.zone.DisplayName+" Participant Card")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(left+4, top+24, user.Name)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(left+4, top+32, "ID: "+user.UserID)
	pdf.Text(left+4, top+40, "College: "+collegeName)
	pdf.Text(left+4, top+48, "Course: "+user.Course)
	pdf.Text(left+4, top+56, fmt.Sprintf("Semester: %d", user.Semester))
	pdf.Text(left+4, top+64, "CAP ID: "+user.CapID)

	pdf.SetFont("Helvetica", "I", 8)
	y := top + 76
	for _, line := range s.zone.FooterText {
		pdf.Text(left+4, y, line)
		y += 5
	}

	pdf.Rect(left, top, width, 110, "D")
}

// EventProgramPDF renders the festival program: every event in serial order
// with its category and type.
func (s *ExportService) EventProgramPDF(ctx context.Context) ([]byte, error) {
	events, err := s.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindAllEvents -> %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	s.fillColor(pdf)
	pdf.Rect(10, 10, 190, 14, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(14, 19, s.zone.DisplayName+" Event Program")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(30)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(15, 8, "No.", "1", 0, "C", false, 0, "")
	pdf.CellFormat(75, 8, "Event", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 8, "Type", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, event := range events {
		typeName := ""
		if event.EventType != nil {
			typeName = event.EventType.Name
			if event.EventType.IsGroup {
				typeName += " (group)"
			}
		}

		pdf.CellFormat(15, 8, strconv.Itoa(event.SerialNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(75, 8, event.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, event.ResultCategory, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 8, typeName, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Output -> %w", err)
	}

	return buf.Bytes(), nil
}

// ParticipantsWorkbook exports participants as a spreadsheet, one sheet per
// college, or a single college's sheet when collegeID is non-zero.
func (s *ExportService) ParticipantsWorkbook(ctx context.Context, collegeID uint) ([]byte, error) {
	var colleges []domain.Organization

	if collegeID != 0 {
		college, err := s.orgRepo.FindByID(ctx, collegeID)
		if err != nil {
			return nil, fmt.Errorf("s.orgRepo.FindByID -> %w", err)
		}
		colleges = []domain.Organization{college}
	} else {
		all, err := s.orgRepo.FindColleges(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.orgRepo.FindColleges -> %w", err)
		}
		colleges = all
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, college := range colleges {
		sheet := sheetName(college.Name, i)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("f.NewSheet -> %w", err)
			}
		}

		if err := s.writeParticipantSheet(ctx, f, sheet, college.ID); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("f.WriteToBuffer -> %w", err)
	}

	return buf.Bytes(), nil
}

func (s *ExportService) writeParticipantSheet(ctx context.Context, f *excelize.File, sheet string, collegeID uint) error {
	users, err := s.userRepo.FindByCollegeID(ctx, collegeID)
	if err != nil {
		return fmt.Errorf("s.userRepo.FindByCollegeID -> %w", err)
	}

	headers := []any{"ID", "Name", "Gender", "Phone", "Course", "Semester", "Year", "CAP ID", "Total Score"}
	if err = f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	for i, user := range users {
		row := []any{
			user.UserID,
			user.Name,
			user.Gender,
			user.PhoneNumber,
			user.Course,
			user.Semester,
			user.YearOfStudy,
			user.CapID,
			user.TotalScore,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	return nil
}

// sheetName keeps Excel's 31-char sheet name limit and uniqueness.
func sheetName(name string, index int) string {
	const limit = 27
	if len(name) > limit {
		name = name[:limit]
	}

	return fmt.Sprintf("%s %d", name, index+1)
}
