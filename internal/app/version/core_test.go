package version_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/app/version/mocks"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/stretchr/testify/require"
)

type mock struct {
	repo    *mocks.RepositoryMock
	idGen   *mocks.IDGeneratorMock
	timeGen *mocks.TimeGeneratorMock
}

func newMock(t *testing.T) mock {
	return mock{
		repo:    mocks.NewRepositoryMock(t),
		idGen:   mocks.NewIDGeneratorMock(t),
		timeGen: mocks.NewTimeGeneratorMock(t),
	}
}

func TestNewCore(t *testing.T) {
	t.Parallel()

	m := newMock(t)

	tests := []struct {
		name    string
		repo    version.Repository
		idGen   version.IDGenerator
		timeGen version.TimeGenerator
		wantErr bool
	}{
		{name: "success", repo: m.repo, idGen: m.idGen, timeGen: m.timeGen},
		{name: "error/nil_repo", repo: nil, idGen: m.idGen, timeGen: m.timeGen, wantErr: true},
		{name: "error/nil_idGen", repo: m.repo, idGen: nil, timeGen: m.timeGen, wantErr: true},
		{name: "error/nil_timeGen", repo: m.repo, idGen: m.idGen, timeGen: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := version.NewCore(tt.repo, tt.idGen, tt.timeGen)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCore_Record(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		actorID   = uuid.New()
		id        = uuid.New()
		now       = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		expErr    = errors.New("expected error")
		validReq  = version.RecordReq{
			ArticleID:  articleID,
			Role:       version.RoleEditor,
			Format:     version.FormatPDF,
			URL:        "https://blob/editor.pdf",
			ProducedBy: actorID,
		}
	)

	tests := []struct {
		name    string
		req     version.RecordReq
		setup   func(m mock)
		want    version.DocumentVersion
		wantErr error
	}{
		{
			name: "success",
			req:  validReq,
			setup: func(m mock) {
				m.idGen.NewMock.Return(id, nil)
				m.timeGen.NowMock.Return(now)
				m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, v version.DocumentVersion) error {
					require.Equal(t, version.DocumentVersion{
						ID:         id,
						ArticleID:  articleID,
						Role:       version.RoleEditor,
						Format:     version.FormatPDF,
						URL:        "https://blob/editor.pdf",
						ProducedBy: actorID,
						CreatedAt:  now,
					}, v)
					return nil
				})
			},
			want: version.DocumentVersion{
				ID: id, ArticleID: articleID, Role: version.RoleEditor, Format: version.FormatPDF,
				URL: "https://blob/editor.pdf", ProducedBy: actorID, CreatedAt: now,
			},
		},
		{
			name:    "error/nil_article_id",
			req:     version.RecordReq{Role: version.RoleEditor, Format: version.FormatPDF, URL: "u", ProducedBy: actorID},
			wantErr: nil,
		},
		{
			name:    "error/invalid_role",
			req:     version.RecordReq{ArticleID: articleID, Role: "DRAFT", Format: version.FormatPDF, URL: "u"},
			wantErr: version.ErrInvalidRole(),
		},
		{
			name:    "error/invalid_format",
			req:     version.RecordReq{ArticleID: articleID, Role: version.RoleEditor, Format: "TXT", URL: "u"},
			wantErr: version.ErrInvalidFormat(),
		},
		{
			name:    "error/empty_url",
			req:     version.RecordReq{ArticleID: articleID, Role: version.RoleEditor, Format: version.FormatPDF},
			wantErr: version.ErrEmptyURL(),
		},
		{
			name: "error/repo",
			req:  validReq,
			setup: func(m mock) {
				m.idGen.NewMock.Return(id, nil)
				m.timeGen.NowMock.Return(now)
				m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, _ version.DocumentVersion) error {
					return expErr
				})
			},
			wantErr: expErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			core, err := version.NewCore(m.repo, m.idGen, m.timeGen)
			require.NoError(t, err)

			got, err := core.Record(ctx, nil, tt.req)
			if tt.want == (version.DocumentVersion{}) {
				require.Error(t, err)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCore_LatestFor(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		stored    = version.DocumentVersion{ID: uuid.New(), ArticleID: articleID, Role: version.RoleReviewer, Format: version.FormatDOCX, URL: "u"}
	)

	tests := []struct {
		name      string
		articleID uuid.UUID
		role      version.Role
		setup     func(m mock)
		wantErr   error
	}{
		{
			name:      "success",
			articleID: articleID,
			role:      version.RoleReviewer,
			setup: func(m mock) {
				m.repo.GetLatestMock.Expect(ctx, articleID, version.RoleReviewer).Return(stored, nil)
			},
		},
		{
			name:      "error/nil_article_id",
			articleID: uuid.Nil,
			role:      version.RoleReviewer,
			wantErr:   nil,
		},
		{
			name:      "error/invalid_role",
			articleID: articleID,
			role:      "PROOFREADER",
			wantErr:   version.ErrInvalidRole(),
		},
		{
			name:      "error/not_found",
			articleID: articleID,
			role:      version.RoleAdmin,
			setup: func(m mock) {
				m.repo.GetLatestMock.Expect(ctx, articleID, version.RoleAdmin).
					Return(version.DocumentVersion{}, version.ErrVersionNotFound())
			},
			wantErr: version.ErrVersionNotFound(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			core, err := version.NewCore(m.repo, m.idGen, m.timeGen)
			require.NoError(t, err)

			got, err := core.LatestFor(ctx, tt.articleID, tt.role)
			if tt.name == "success" {
				require.NoError(t, err)
				require.Equal(t, stored, got)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCore_ListMissingCounterpart_DefaultLimit(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	m.repo.ListMissingCounterpartMock.Expect(context.Background(), 100).Return(nil, nil)

	core, err := version.NewCore(m.repo, m.idGen, m.timeGen)
	require.NoError(t, err)

	_, err = core.ListMissingCounterpart(context.Background(), 0)
	require.NoError(t, err)
}
