package changelog_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/changelog/mocks"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
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

func TestCore_Append(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		actorID   = uuid.New()
		id        = uuid.New()
		now       = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		expErr    = errors.New("expected error")
		validReq  = changelog.AppendReq{
			ArticleID:  articleID,
			Role:       version.RoleEditor,
			ActorID:    actorID,
			OldFileURL: "https://blob/old.pdf",
			NewFileURL: "https://blob/new.pdf",
			Comments:   "tightened citations in part II",
		}
	)

	tests := []struct {
		name    string
		req     changelog.AppendReq
		setup   func(m mock)
		wantErr error
		wantOK  bool
	}{
		{
			name: "success",
			req:  validReq,
			setup: func(m mock) {
				m.idGen.NewMock.Return(id, nil)
				m.timeGen.NowMock.Return(now)
				m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, e changelog.Entry) error {
					require.Equal(t, id, e.ID)
					require.Equal(t, now, e.EditedAt)
					require.Equal(t, "tightened citations in part II", e.Comments)
					require.Nil(t, e.DiffSummary)
					return nil
				})
			},
			wantOK: true,
		},
		{
			name: "error/nil_article_id",
			req:  changelog.AppendReq{Role: version.RoleEditor, ActorID: actorID},
		},
		{
			name: "error/nil_actor_id",
			req:  changelog.AppendReq{ArticleID: articleID, Role: version.RoleEditor},
		},
		{
			name:    "error/invalid_role",
			req:     changelog.AppendReq{ArticleID: articleID, Role: "TYPESETTER", ActorID: actorID},
			wantErr: changelog.ErrInvalidRole(),
		},
		{
			name: "error/repo",
			req:  validReq,
			setup: func(m mock) {
				m.idGen.NewMock.Return(id, nil)
				m.timeGen.NowMock.Return(now)
				m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, _ changelog.Entry) error {
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

			core, err := changelog.NewCore(m.repo, m.idGen, m.timeGen)
			require.NoError(t, err)

			entry, err := core.Append(ctx, nil, tt.req)
			if !tt.wantOK {
				require.Error(t, err)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, id, entry.ID)
			require.Equal(t, now, entry.EditedAt)
		})
	}
}

func TestCore_DiffFor(t *testing.T) {
	t.Parallel()

	var (
		ctx     = context.Background()
		entryID = uuid.New()
		stats   = diff.Stats{Added: 3, Removed: 1, Unchanged: 40, Total: 44}
	)

	tests := []struct {
		name    string
		setup   func(m mock)
		want    diff.Stats
		wantErr error
	}{
		{
			name: "success",
			setup: func(m mock) {
				m.repo.GetMock.Expect(ctx, entryID).
					Return(changelog.Entry{ID: entryID, DiffSummary: &stats}, nil)
			},
			want: stats,
		},
		{
			name: "error/not_computed",
			setup: func(m mock) {
				m.repo.GetMock.Expect(ctx, entryID).
					Return(changelog.Entry{ID: entryID}, nil)
			},
			wantErr: changelog.ErrDiffNotComputed(),
		},
		{
			name: "error/not_found",
			setup: func(m mock) {
				m.repo.GetMock.Expect(ctx, entryID).
					Return(changelog.Entry{}, changelog.ErrEntryNotFound())
			},
			wantErr: changelog.ErrEntryNotFound(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			tt.setup(m)

			core, err := changelog.NewCore(m.repo, m.idGen, m.timeGen)
			require.NoError(t, err)

			got, err := core.DiffFor(ctx, entryID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCore_SetDiffSummary(t *testing.T) {
	t.Parallel()

	var (
		ctx     = context.Background()
		entryID = uuid.New()
		stats   = diff.Stats{Added: 2, Unchanged: 10, Total: 12}
	)

	m := newMock(t)
	m.repo.UpdateDiffSummaryMock.Expect(ctx, entryID, stats).Return(nil)

	core, err := changelog.NewCore(m.repo, m.idGen, m.timeGen)
	require.NoError(t, err)

	require.NoError(t, core.SetDiffSummary(ctx, entryID, stats))
	require.Error(t, core.SetDiffSummary(ctx, uuid.Nil, stats))
}
