package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	icsProductID   = "-//Barkley Instituto//Program Calendar//ES"
	icsUIDDomain   = "barkley-instituto"
	icsDateLayout  = "20060102"
	icsStampLayout = "20060102T150405Z"
	icsLineLimit   = 75
)

// ArtifactUploader is the part of StorageService the export needs.
type ArtifactUploader interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

type CalendarExport struct {
	LevelSubjectID uint      `json:"levelSubjectId"`
	Filename       string    `json:"filename"`
	URL            string    `json:"url"`
	Events         int       `json:"events"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

// CalendarExportService renders a program's calendar as iCalendar and
// publishes it to object storage.
type CalendarExportService struct {
	Calendar      *CalendarService
	LevelSubjects LevelSubjectReader
	Objectives    ObjectiveReader
	Storage       ArtifactUploader
}

func NewCalendarExportService(calendarService *CalendarService, levelSubjects LevelSubjectReader, objectives ObjectiveReader, storage ArtifactUploader) *CalendarExportService {
	return &CalendarExportService{
		Calendar:      calendarService,
		LevelSubjects: levelSubjects,
		Objectives:    objectives,
		Storage:       storage,
	}
}

func ExportFilename(levelSubjectID uint) string {
	return fmt.Sprintf("calendars/level-subject-%d.ics", levelSubjectID)
}

// RenderICS returns the calendar document and the number of events in it:
// one all-day event per module window and one per evaluation release.
func (s *CalendarExportService) RenderICS(ctx context.Context, levelSubjectID uint) ([]byte, int, error) {
	ls, err := s.LevelSubjects.FindByID(ctx, levelSubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrLevelSubjectNotFound
		}
		return nil, 0, err
	}

	objectives, err := s.Objectives.ListByLevelSubject(ctx, levelSubjectID)
	if err != nil {
		return nil, 0, err
	}
	byWeek := make(map[int]model.LearningObjective, len(objectives))
	for _, o := range objectives {
		byWeek[o.WeekNumber] = o
	}

	engine := s.Calendar.Engine()
	f := s.Calendar.Projector.Formatter
	stamp := s.Calendar.now().UTC().Format(icsStampLayout)

	var w icsWriter
	w.line("BEGIN:VCALENDAR")
	w.line("VERSION:2.0")
	w.line("PRODID:" + icsProductID)
	w.line("CALSCALE:GREGORIAN")
	w.line("METHOD:PUBLISH")
	w.line("X-WR-CALNAME:" + icsEscape(ls.LevelName+" "+ls.SubjectName))
	w.line("X-WR-TIMEZONE:" + engine.Location().String())

	events := 0
	for n := 1; n <= engine.TotalModules(); n++ {
		start, _ := engine.ModuleStartDate(n)
		end, _ := engine.ModuleEndDate(n)

		summary := f.ModuleLabel(n)
		description := ""
		if o, ok := byWeek[n]; ok {
			summary += ": " + o.Title
			description = o.Description
		}
		w.event(fmt.Sprintf("ls%d-m%d@%s", levelSubjectID, n, icsUIDDomain), stamp, start, end, summary, description)
		events++

		for e := 1; e <= calendar.EvaluationsPerModule; e++ {
			release, _ := engine.EvaluationReleaseDate(n, e)
			w.event(fmt.Sprintf("ls%d-m%d-e%d@%s", levelSubjectID, n, e, icsUIDDomain), stamp, release, release, f.EvaluationLabel(n, e), "")
			events++
		}
	}
	w.line("END:VCALENDAR")

	return w.buf.Bytes(), events, nil
}

// Publish renders the calendar and uploads it under ExportFilename.
func (s *CalendarExportService) Publish(ctx context.Context, levelSubjectID uint) (*CalendarExport, error) {
	doc, events, err := s.RenderICS(ctx, levelSubjectID)
	if err != nil {
		return nil, err
	}

	filename := ExportFilename(levelSubjectID)
	url, err := s.Storage.Upload(ctx, filename, bytes.NewReader(doc), int64(len(doc)), util.MimeCalendar)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Calendar exported",
		zap.Uint("levelSubjectID", levelSubjectID),
		zap.String("url", url),
		zap.Int("events", events))

	return &CalendarExport{
		LevelSubjectID: levelSubjectID,
		Filename:       filename,
		URL:            url,
		Events:         events,
		GeneratedAt:    s.Calendar.now(),
	}, nil
}

type icsWriter struct {
	buf bytes.Buffer
}

// line writes one content line, folded at 75 octets without splitting a
// UTF-8 sequence.
func (w *icsWriter) line(s string) {
	limit := icsLineLimit
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		w.buf.WriteString(s[:cut])
		w.buf.WriteString("\r\n ")
		s = s[cut:]
		limit = icsLineLimit - 1
	}
	w.buf.WriteString(s)
	w.buf.WriteString("\r\n")
}

// event writes an all-day event covering first through last inclusive.
func (w *icsWriter) event(uid, stamp string, first, last time.Time, summary, description string) {
	w.line("BEGIN:VEVENT")
	w.line("UID:" + uid)
	w.line("DTSTAMP:" + stamp)
	w.line("DTSTART;VALUE=DATE:" + first.Format(icsDateLayout))
	w.line("DTEND;VALUE=DATE:" + last.AddDate(0, 0, 1).Format(icsDateLayout))
	w.line("SUMMARY:" + icsEscape(summary))
	if description != "" {
		w.line("DESCRIPTION:" + icsEscape(description))
	}
	w.line("TRANSP:TRANSPARENT")
	w.line("END:VEVENT")
}

var icsEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\r\n", "\\n",
	"\n", "\\n",
)

func icsEscape(s string) string {
	return icsEscaper.Replace(s)
}
