package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/internal/apperrors"
	"content-planner/internal/models"
	"content-planner/internal/repository"
)

type failingStore struct {
	posts []models.Post
	saves int
}

func (f *failingStore) Load(context.Context) ([]models.Post, error) { return f.posts, nil }

func (f *failingStore) SaveAll(context.Context, []models.Post) error {
	f.saves++
	return errors.New("disk full")
}

func newService(t *testing.T) (*PostService, *repository.PostRepository) {
	t.Helper()
	repo := repository.NewPostRepository(repository.NewMemoryKV(), "posts")
	svc, err := NewPostService(context.Background(), repo)
	require.NoError(t, err)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc, repo
}

func draft(title string) models.Post {
	return models.Post{
		Title:       title,
		Description: "about " + title,
		Category:    "Social Media",
		Frequency:   models.FrequencyWeekly,
		StartDate:   models.NewDate(2024, time.March, 15),
		PostTime:    "09:30",
		Platforms:   []models.Platform{models.PlatformTwitter, models.PlatformLinkedIn},
	}
}

func TestCreateThenList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	in := draft("Tips")
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	want := in
	want.ID = created.ID
	assert.Equal(t, []models.Post{want}, svc.List())
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), models.Post{
		Title:     "  Launch  ",
		Frequency: models.FrequencyOnce,
		StartDate: models.NewDate(2024, time.April, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, "Launch", created.Title)
	assert.Equal(t, models.DefaultPostTime, created.PostTime)
	assert.NotNil(t, created.Platforms)
	assert.Empty(t, created.Platforms)
	assert.NotEmpty(t, created.ID)
}

func TestCreateKeepsGivenIDUnlessTaken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	p := draft("A")
	p.ID = "mine"
	first, err := svc.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "mine", first.ID)

	second, err := svc.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, "mine", second.ID)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*models.Post)
		field string
	}{
		{name: "missing title", edit: func(p *models.Post) { p.Title = "  " }, field: "title"},
		{name: "bad frequency", edit: func(p *models.Post) { p.Frequency = "yearly" }, field: "frequency"},
		{name: "missing date", edit: func(p *models.Post) { p.StartDate = models.Date{} }, field: "startDate"},
		{name: "impossible date", edit: func(p *models.Post) { p.StartDate = models.NewDate(2023, time.February, 29) }, field: "startDate"},
		{name: "bad time", edit: func(p *models.Post) { p.PostTime = "25:00" }, field: "postTime"},
		{name: "bad platform", edit: func(p *models.Post) { p.Platforms = []models.Platform{"myspace"} }, field: "platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			p := draft("x")
			tt.edit(&p)

			_, err := svc.Create(context.Background(), p)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, svc.List())
		})
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, _ := svc.Create(ctx, draft("A"))
	b, _ := svc.Create(ctx, draft("B"))
	c, _ := svc.Create(ctx, draft("C"))

	changed := b
	changed.Title = "B2"
	changed.Frequency = models.FrequencyMonthly
	changed.Platforms = []models.Platform{models.PlatformInstagram}
	changed.ID = "ignored"

	got, err := svc.Update(ctx, b.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	list := svc.List()
	require.Len(t, list, 3)
	assert.Equal(t, a, list[0])
	assert.Equal(t, c, list[2])

	want := changed
	want.ID = b.ID
	assert.Equal(t, want, list[1])
}

func TestUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	a, _ := svc.Create(ctx, draft("A"))

	_, err := svc.Update(ctx, "nope", draft("Z"))
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	assert.Equal(t, []models.Post{a}, svc.List())
}

func TestDeleteKeepsOrderAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, _ := svc.Create(ctx, draft("A"))
	b, _ := svc.Create(ctx, draft("B"))
	c, _ := svc.Create(ctx, draft("C"))

	assert.True(t, svc.Delete(ctx, b.ID))
	assert.Equal(t, []models.Post{a, c}, svc.List())

	assert.False(t, svc.Delete(ctx, b.ID))
	assert.Equal(t, []models.Post{a, c}, svc.List())
}

func TestMutationsPersist(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	a, _ := svc.Create(ctx, draft("A"))
	b, _ := svc.Create(ctx, draft("B"))
	svc.Delete(ctx, a.ID)

	reloaded, err := NewPostService(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, []models.Post{b}, reloaded.List())
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{}
	svc, err := NewPostService(ctx, store)
	require.NoError(t, err)

	created, err := svc.Create(ctx, draft("A"))
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []models.Post{created}, svc.List())
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	created, _ := svc.Create(ctx, draft("A"))

	list := svc.List()
	list[0].Title = "mutated"
	list[0].Platforms[0] = models.PlatformFacebook

	got, ok := svc.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestAppendToDescription(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	created, _ := svc.Create(ctx, draft("A"))

	got, err := svc.AppendToDescription(ctx, created.ID, "#a #b")
	require.NoError(t, err)
	assert.Equal(t, "about A\n\n#a #b", got.Description)

	_, err = svc.AppendToDescription(ctx, "nope", "#a")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
