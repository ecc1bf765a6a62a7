package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	mu      sync.Mutex
	saved   []models.Application
	saves   int
	loadErr error
	saveErr error
}

func (m *memPersister) Load(context.Context) ([]models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return cloneAll(m.saved), nil
}

func (m *memPersister) Save(_ context.Context, apps []models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = cloneAll(apps)
	return nil
}

func newTestStore(t *testing.T, p *memPersister) *Store {
	t.Helper()
	s, err := New(context.Background(), p, logging.NewNop())
	require.NoError(t, err)
	return s
}

func addApp(t *testing.T, s *Store, title, company string) models.Application {
	t.Helper()
	a, err := s.Add(context.Background(), models.NewApplication{Title: title, Company: company, Date: "2024-03-01"})
	require.NoError(t, err)
	return a
}

func TestNew_LoadsPersistedRecords(t *testing.T) {
	p := &memPersister{saved: fixture("a", "b")}
	s := newTestStore(t, p)

	assert.Equal(t, []string{"a", "b"}, idsOf(s.List()))
}

func TestNew_ParseErrorStartsEmpty(t *testing.T) {
	p := &memPersister{loadErr: &common.ParseError{Source: "slot", Err: errors.New("bad")}}
	s := newTestStore(t, p)

	assert.Empty(t, s.List())
	assert.NotNil(t, s.List())
}

func TestNew_OtherLoadErrorFails(t *testing.T) {
	p := &memPersister{loadErr: errors.New("disk gone")}
	_, err := New(context.Background(), p, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestAdd_PersistsAndAppends(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(t, p)

	a := addApp(t, s, "Engineer", "Acme")
	b := addApp(t, s, "Designer", "Globex")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, []string{a.ID, b.ID}, idsOf(s.List()))
	assert.Equal(t, []string{a.ID, b.ID}, idsOf(p.saved))
	assert.Equal(t, 2, p.saves)
}

func TestAdd_ValidationErrorSavesNothing(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(t, p)

	_, err := s.Add(context.Background(), models.NewApplication{Title: "  ", Company: "Acme", Date: "2024-01-01"})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, s.Len())
	assert.Zero(t, p.saves)
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := newTestStore(t, &memPersister{})
	a := addApp(t, s, "Engineer", "Acme")

	got, err := s.Get(a.ID)
	require.NoError(t, err)
	got.Title = "changed"
	got.Checklist[0].Tasks[0].Done = true

	again, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", again.Title)
	assert.False(t, again.Checklist[0].Tasks[0].Done)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(t, p)
	a := addApp(t, s, "Engineer", "Acme")

	got, err := s.Update(context.Background(), a.ID, func(app *models.Application) error {
		return app.SetStatus(models.StatusApplied)
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, got.Status)
	assert.Equal(t, models.StatusApplied, p.saved[0].Status)

	saves := p.saves
	_, err = s.Update(context.Background(), a.ID, func(app *models.Application) error {
		app.Title = "half-done"
		return errors.New("boom")
	})
	require.Error(t, err)
	stored, _ := s.Get(a.ID)
	assert.Equal(t, "Engineer", stored.Title)
	assert.Equal(t, saves, p.saves)

	_, err = s.Update(context.Background(), "missing", func(*models.Application) error { return nil })
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpsert_RequiresID(t *testing.T) {
	s := newTestStore(t, &memPersister{})
	err := s.Upsert(context.Background(), models.Application{Title: "x"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestStore_Remove(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(t, p)
	a := addApp(t, s, "Engineer", "Acme")
	b := addApp(t, s, "Designer", "Globex")

	require.NoError(t, s.Remove(context.Background(), a.ID))
	assert.Equal(t, []string{b.ID}, idsOf(s.List()))

	saves := p.saves
	require.NoError(t, s.Remove(context.Background(), "missing"))
	assert.Equal(t, saves, p.saves)
}

func TestReorder(t *testing.T) {
	s := newTestStore(t, &memPersister{saved: fixture("a", "b", "c")})
	ctx := context.Background()

	require.NoError(t, s.Reorder(ctx, "a", 2))
	assert.Equal(t, []string{"b", "c", "a"}, idsOf(s.List()))

	require.NoError(t, s.Move(ctx, 2, 0))
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(s.List()))

	assert.ErrorIs(t, s.Reorder(ctx, "missing", 0), common.ErrNotFound)
	assert.ErrorIs(t, s.Move(ctx, 0, 5), common.ErrIndex)
	assert.ErrorIs(t, s.Move(ctx, 9, 9), common.ErrIndex)
}

func TestReorder_SamePositionIsNoop(t *testing.T) {
	p := &memPersister{saved: fixture("a", "b", "c")}
	s := newTestStore(t, p)

	require.NoError(t, s.Reorder(context.Background(), "b", 1))
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(s.List()))
	assert.Zero(t, p.saves)
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := newTestStore(t, &memPersister{})
	ctx := context.Background()
	a := addApp(t, src, "Engineer", "Acme")
	addApp(t, src, "Designer", "Globex")
	_, err := src.Update(ctx, a.ID, func(app *models.Application) error {
		app.Notes = "call back"
		i := app.AddInterviewRound()
		r := app.InterviewRounds[i]
		r.Date = "2024-04-02"
		r.Time = "10:30"
		r.Location.Remote = "https://meet.example.com/x"
		return app.SetInterviewRound(i, r)
	})
	require.NoError(t, err)

	data, err := src.ExportSnapshot()
	require.NoError(t, err)

	dst := newTestStore(t, &memPersister{saved: fixture("old")})
	require.NoError(t, dst.ImportSnapshot(ctx, data))

	assert.Equal(t, src.List(), dst.List())
}

func TestImportSnapshot_MalformedLeavesStateUntouched(t *testing.T) {
	p := &memPersister{saved: fixture("a", "b")}
	s := newTestStore(t, p)

	for _, in := range []string{"not json", `{"id":"x"}`, `[{"id":""}]`, ""} {
		err := s.ImportSnapshot(context.Background(), []byte(in))
		var pe *common.ParseError
		assert.ErrorAs(t, err, &pe, in)
		assert.Equal(t, []string{"a", "b"}, idsOf(s.List()))
	}
	assert.Zero(t, p.saves)
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(t, p)
	p.saveErr = errors.New("quota exceeded")

	a, err := s.Add(context.Background(), models.NewApplication{Title: "Engineer", Company: "Acme", Date: "2024-01-01"})
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Contains(t, err.Error(), "quota exceeded")

	got, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Title)
	assert.Empty(t, p.saved)
}

func TestAttachFile(t *testing.T) {
	s := newTestStore(t, &memPersister{})
	ctx := context.Background()
	a := addApp(t, s, "Engineer", "Acme")

	att := models.Attachment{Name: "cv.pdf", MimeType: "application/pdf", Size: 3, Data: []byte("pdf")}
	require.NoError(t, s.AttachFile(ctx, a.ID, models.SlotResume, att))

	got, _ := s.Get(a.ID)
	require.NotNil(t, got.Resume)
	assert.Equal(t, "cv.pdf", got.Resume.Name)
	assert.Nil(t, got.CoverLetter)
}

func TestAttachFile_AfterDeleteIsDropped(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(t, p)
	ctx := context.Background()
	a := addApp(t, s, "Engineer", "Acme")
	b := addApp(t, s, "Designer", "Globex")

	require.NoError(t, s.Remove(ctx, a.ID))

	att := models.Attachment{Name: "cover.docx", Data: []byte("x"), Size: 1}
	err := s.AttachFile(ctx, a.ID, models.SlotCoverLetter, att)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.Equal(t, []string{b.ID}, idsOf(s.List()))
	other, _ := s.Get(b.ID)
	assert.Nil(t, other.CoverLetter)
}

func TestReset(t *testing.T) {
	s := newTestStore(t, &memPersister{})
	ctx := context.Background()
	a := addApp(t, s, "Engineer", "Acme")

	_, err := s.Update(ctx, a.ID, func(app *models.Application) error {
		app.Notes = "n"
		app.JobReqID = "R-1"
		require.NoError(t, app.Checklist.ToggleTask(0, 0))
		return app.SetStatus(models.StatusOffer)
	})
	require.NoError(t, err)

	got, err := s.Reset(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, got.Status)
	assert.Empty(t, got.Notes)
	assert.Empty(t, got.JobReqID)
	assert.Zero(t, got.Progress())
	assert.Equal(t, "Engineer", got.Title)
}

func TestGroupByStatus(t *testing.T) {
	s := newTestStore(t, &memPersister{})
	ctx := context.Background()
	a := addApp(t, s, "A", "Acme")
	b := addApp(t, s, "B", "Acme")
	addApp(t, s, "C", "Acme")

	_, err := s.Update(ctx, a.ID, func(app *models.Application) error { return app.SetStatus(models.StatusRejected) })
	require.NoError(t, err)
	_, err = s.Update(ctx, b.ID, func(app *models.Application) error { return app.SetStatus(models.StatusInterviewing) })
	require.NoError(t, err)

	board := s.GroupByStatus()
	assert.Len(t, board.NotStarted, 1)
	assert.Empty(t, board.Applied)
	assert.Len(t, board.Interviewing, 1)
	assert.Len(t, board.Completed, 1)
}
