package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportService(f *fixture, uploader ArtifactUploader) *CalendarExportService {
	return NewCalendarExportService(f.calendar, f.levelSubjects, f.objectives, uploader)
}

func TestCalendarExport_RenderICS(t *testing.T) {
	f := newFixture(t, time.Date(2026, time.March, 1, 12, 30, 0, 0, time.UTC))
	f.addObjective(t, 1, "Números, fracciones; y más")
	svc := newExportService(f, &fakeUploader{})

	doc, events, err := svc.RenderICS(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 45, events)

	ics := string(doc)
	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	assert.Equal(t, 45, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Contains(t, ics, "X-WR-TIMEZONE:America/Santiago\r\n")
	assert.Contains(t, ics, "DTSTAMP:20260301T123000Z\r\n")

	// Module windows end exclusively the day after their last day.
	assert.Contains(t, ics, "UID:ls1-m1@barkley-instituto\r\nDTSTAMP:20260301T123000Z\r\nDTSTART;VALUE=DATE:20260309\r\nDTEND;VALUE=DATE:20260323\r\n")
	assert.Contains(t, ics, "SUMMARY:Módulo 1: Números\\, fracciones\\; y más\r\n")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260313\r\nDTEND;VALUE=DATE:20260314\r\nSUMMARY:Evaluación 1 del módulo 1\r\n")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260921\r\nDTEND;VALUE=DATE:20261005\r\n")
	assert.Contains(t, ics, "SUMMARY:Módulo 2\r\n")
}

func TestCalendarExport_FoldsLongLines(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 1, 9))
	description := strings.Repeat("Ecuaciones de primer grado con una incógnita. ", 6)
	require.NoError(t, f.objectives.Create(context.Background(), &model.LearningObjective{
		LevelSubjectID: 1, WeekNumber: 4, Title: "Álgebra", Description: description,
	}))
	svc := newExportService(f, &fakeUploader{})

	doc, _, err := svc.RenderICS(context.Background(), 1)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSuffix(string(doc), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 75, "line %q", line)
		assert.True(t, utf8.ValidString(line), "line %q", line)
	}

	unfolded := strings.ReplaceAll(string(doc), "\r\n ", "")
	assert.Contains(t, unfolded, "DESCRIPTION:"+description+"\r\n")
}

func TestCalendarExport_UnknownProgram(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 1, 9))
	svc := newExportService(f, &fakeUploader{})

	_, _, err := svc.RenderICS(context.Background(), 3)
	assert.ErrorIs(t, err, util.ErrLevelSubjectNotFound)
	_, err = svc.Publish(context.Background(), 3)
	assert.ErrorIs(t, err, util.ErrLevelSubjectNotFound)
}

func TestCalendarExport_Publish(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 1, 9))
	uploader := &fakeUploader{}
	svc := newExportService(f, uploader)

	export, err := svc.Publish(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "calendars/level-subject-1.ics", export.Filename)
	assert.Equal(t, "/uploads/calendars/level-subject-1.ics", export.URL)
	assert.Equal(t, 45, export.Events)
	assert.Equal(t, f.now, export.GeneratedAt)
	assert.Equal(t, util.MimeCalendar, uploader.contentType)
	assert.Contains(t, string(uploader.body), "BEGIN:VCALENDAR")

	uploader.err = errBoom
	_, err = svc.Publish(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)
}

func TestLocalStorageProvider_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: dir}})

	url, err := storage.Upload(context.Background(), "calendars/a.ics", strings.NewReader("BEGIN:VCALENDAR"), 15, util.MimeCalendar)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/calendars/a.ics", url)

	data, err := os.ReadFile(filepath.Join(dir, "calendars", "a.ics"))
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR", string(data))

	_, err = storage.Upload(context.Background(), "calendars/a.ics", strings.NewReader("v2"), 2, util.MimeCalendar)
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "calendars", "a.ics"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	require.NoError(t, storage.Delete(context.Background(), "calendars/a.ics"))
	require.NoError(t, storage.Delete(context.Background(), "calendars/a.ics"))
	_, err = os.Stat(filepath.Join(dir, "calendars", "a.ics"))
	assert.True(t, os.IsNotExist(err))
}
