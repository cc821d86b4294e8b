package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLevelSubjects struct {
	rows   map[uint]*model.LevelSubject
	nextID uint
}

func newFakeLevelSubjects(rows ...model.LevelSubject) *fakeLevelSubjects {
	f := &fakeLevelSubjects{rows: map[uint]*model.LevelSubject{}}
	for i := range rows {
		ls := rows[i]
		_ = f.Create(context.Background(), &ls)
	}
	return f
}

func (f *fakeLevelSubjects) Create(ctx context.Context, ls *model.LevelSubject) error {
	f.nextID++
	ls.ID = f.nextID
	cp := *ls
	f.rows[ls.ID] = &cp
	return nil
}

func (f *fakeLevelSubjects) FindByID(ctx context.Context, id uint) (*model.LevelSubject, error) {
	ls, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ls
	return &cp, nil
}

func (f *fakeLevelSubjects) List(ctx context.Context, activeOnly bool) ([]model.LevelSubject, error) {
	var out []model.LevelSubject
	for _, ls := range f.rows {
		if activeOnly && !ls.IsActive {
			continue
		}
		out = append(out, *ls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLevelSubjects) Update(ctx context.Context, ls *model.LevelSubject) error {
	cp := *ls
	f.rows[ls.ID] = &cp
	return nil
}

func (f *fakeLevelSubjects) Delete(ctx context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

type fakeObjectives struct {
	rows   map[uint]*model.LearningObjective
	nextID uint
}

func newFakeObjectives() *fakeObjectives {
	return &fakeObjectives{rows: map[uint]*model.LearningObjective{}}
}

func (f *fakeObjectives) Create(ctx context.Context, o *model.LearningObjective) error {
	f.nextID++
	o.ID = f.nextID
	cp := *o
	f.rows[o.ID] = &cp
	return nil
}

func (f *fakeObjectives) FindByID(ctx context.Context, id uint) (*model.LearningObjective, error) {
	o, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeObjectives) FindByModule(ctx context.Context, levelSubjectID uint, weekNumber int) (*model.LearningObjective, error) {
	for _, o := range f.rows {
		if o.LevelSubjectID == levelSubjectID && o.WeekNumber == weekNumber {
			cp := *o
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeObjectives) ListByLevelSubject(ctx context.Context, levelSubjectID uint) ([]model.LearningObjective, error) {
	var out []model.LearningObjective
	for _, o := range f.rows {
		if o.LevelSubjectID == levelSubjectID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekNumber < out[j].WeekNumber })
	return out, nil
}

func (f *fakeObjectives) Update(ctx context.Context, o *model.LearningObjective) error {
	cp := *o
	f.rows[o.ID] = &cp
	return nil
}

func (f *fakeObjectives) Delete(ctx context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

type fakeResults struct {
	rows           []model.EvaluationResult
	completedCalls int
}

func (f *fakeResults) Create(ctx context.Context, r *model.EvaluationResult) error {
	r.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *r)
	return nil
}

func (f *fakeResults) CompletedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, error) {
	f.completedCalls++
	set := calendar.NewModuleSet()
	for _, r := range f.rows {
		if r.UserID == userID && r.LevelSubjectID == levelSubjectID && r.EvaluationNumber == 2 && r.Passed {
			set.Add(r.ModuleNumber)
		}
	}
	return set.Sorted(), nil
}

func (f *fakeResults) ListByUser(ctx context.Context, userID, levelSubjectID uint) ([]model.EvaluationResult, error) {
	var out []model.EvaluationResult
	for _, r := range f.rows {
		if r.UserID == userID && r.LevelSubjectID == levelSubjectID {
			out = append(out, r)
		}
	}
	return out, nil
}

// pass records a passed second evaluation, completing the module.
func (f *fakeResults) pass(userID, levelSubjectID uint, modules ...int) {
	for _, m := range modules {
		f.rows = append(f.rows, model.EvaluationResult{
			UserID: userID, LevelSubjectID: levelSubjectID,
			ModuleNumber: m, EvaluationNumber: 2,
			Score: 10, MaxScore: 10, Passed: true,
		})
	}
}

type fakeCache struct {
	entries       map[string][]int
	generations   map[string]int64
	getErr        error
	invalidations int
	rejectedSets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]int{}, generations: map[string]int64{}}
}

func (f *fakeCache) Get(ctx context.Context, userID, levelSubjectID uint) ([]int, int64, bool, error) {
	if f.getErr != nil {
		return nil, 0, false, f.getErr
	}
	key := completedModulesKey(userID, levelSubjectID)
	m, ok := f.entries[key]
	return m, f.generations[key], ok, nil
}

func (f *fakeCache) Set(ctx context.Context, userID, levelSubjectID uint, generation int64, modules []int) error {
	key := completedModulesKey(userID, levelSubjectID)
	if f.generations[key] != generation {
		f.rejectedSets++
		return nil
	}
	f.entries[key] = modules
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, userID, levelSubjectID uint) error {
	key := completedModulesKey(userID, levelSubjectID)
	f.invalidations++
	f.generations[key]++
	delete(f.entries, key)
	return nil
}

// hookedResults runs afterRead once, after the database read and before the
// caller gets the rows back.
type hookedResults struct {
	*fakeResults
	afterRead func()
}

func (h *hookedResults) CompletedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, error) {
	modules, err := h.fakeResults.CompletedModules(ctx, userID, levelSubjectID)
	if hook := h.afterRead; hook != nil {
		h.afterRead = nil
		hook()
	}
	return modules, err
}

type fakeLinks struct {
	rows map[string]*model.EvaluationLink
}

func newFakeLinks() *fakeLinks {
	return &fakeLinks{rows: map[string]*model.EvaluationLink{}}
}

func (f *fakeLinks) Create(ctx context.Context, l *model.EvaluationLink) error {
	if l.ID == "" {
		l.ID = model.NewID()
	}
	cp := *l
	f.rows[l.ID] = &cp
	return nil
}

func (f *fakeLinks) FindByID(ctx context.Context, id string) (*model.EvaluationLink, error) {
	l, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLinks) List(ctx context.Context, levelSubjectID uint, moduleNumber int) ([]model.EvaluationLink, error) {
	var out []model.EvaluationLink
	for _, l := range f.rows {
		if l.LevelSubjectID != levelSubjectID {
			continue
		}
		if moduleNumber > 0 && l.ModuleNumber != moduleNumber {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ModuleNumber != out[j].ModuleNumber {
			return out[i].ModuleNumber < out[j].ModuleNumber
		}
		return out[i].EvaluationNumber < out[j].EvaluationNumber
	})
	return out, nil
}

func (f *fakeLinks) Update(ctx context.Context, l *model.EvaluationLink) error {
	cp := *l
	f.rows[l.ID] = &cp
	return nil
}

func (f *fakeLinks) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

type fakeUploader struct {
	filename    string
	contentType string
	body        []byte
	err         error
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	f.filename, f.contentType, f.body = filename, contentType, buf.Bytes()
	return "/uploads/" + filename, nil
}

var errBoom = errors.New("boom")

// fixture wires a CalendarService over in-memory stores on the default
// calendar with one program, "1° Medio" / "Matemática" (ID 1).
type fixture struct {
	levelSubjects *fakeLevelSubjects
	objectives    *fakeObjectives
	results       *fakeResults
	cache         *fakeCache
	calendar      *CalendarService
	now           time.Time
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	f := &fixture{
		levelSubjects: newFakeLevelSubjects(model.LevelSubject{LevelName: "1° Medio", SubjectName: "Matemática", IsActive: true}),
		objectives:    newFakeObjectives(),
		results:       &fakeResults{},
		cache:         newFakeCache(),
		now:           now,
	}
	f.calendar = NewCalendarService(
		calendar.MustNewEngine(calendar.DefaultConfig()),
		f.levelSubjects,
		f.objectives,
		f.results,
		f.cache,
		NewScheduleProjector(util.NewDateFormatter("es-CL")),
	)
	f.calendar.Now = func() time.Time { return f.now }
	return f
}

func (f *fixture) addObjective(t *testing.T, week int, title string) {
	t.Helper()
	require.NoError(t, f.objectives.Create(context.Background(), &model.LearningObjective{
		LevelSubjectID: 1, WeekNumber: week, Code: fmt.Sprintf("OA%02d", week), Title: title,
	}))
}

// santiago returns the given wall-clock time in the program's time zone.
func santiago(y int, m time.Month, d, hour int) time.Time {
	loc, err := time.LoadLocation(calendar.DefaultTimezone)
	if err != nil {
		panic(err)
	}
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

func ymd(t time.Time) string {
	return t.Format(calendar.DateLayout)
}
