package calendar

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

type fakeAccountRepo struct {
	accounts []*entities.CalendarAccount
	upserted *entities.CalendarAccount
	touched  []uuid.UUID
}

func (f *fakeAccountRepo) Upsert(ctx context.Context, account *entities.CalendarAccount) error {
	f.upserted = account
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entities.CalendarProvider) (*entities.CalendarAccount, error) {
	for _, a := range f.accounts {
		if a.UserID == userID && a.Provider == provider {
			return a, nil
		}
	}
	return nil, entities.ErrCalendarAccountNotFound
}

func (f *fakeAccountRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.CalendarAccount, error) {
	var out []*entities.CalendarAccount
	for _, a := range f.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) TouchLastSynced(ctx context.Context, accountID uuid.UUID) error {
	f.touched = append(f.touched, accountID)
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, accountID uuid.UUID) error {
	return nil
}

type fakeGoogleFetcher struct {
	meetings []entities.Meeting
	err      error
}

func (f *fakeGoogleFetcher) FetchUpcomingEvents(ctx context.Context) ([]entities.Meeting, error) {
	return f.meetings, f.err
}

type fakeAppleFetcher struct {
	meetings []entities.Meeting
	err      error
	gotID    string
	gotPass  string
}

func (f *fakeAppleFetcher) FetchUpcomingEvents(ctx context.Context, appleID, appPassword string) ([]entities.Meeting, error) {
	f.gotID = appleID
	f.gotPass = appPassword
	return f.meetings, f.err
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestService(repo *fakeAccountRepo, google GoogleFetcher, apple AppleFetcher, csvPath string) *Service {
	factory := func(ctx context.Context, token *oauth2.Token) GoogleFetcher { return google }
	return NewService(repo, factory, apple, nil, csvPath, zap.NewNop())
}

func TestGoogleEventsNotConnected(t *testing.T) {
	svc := newTestService(&fakeAccountRepo{}, &fakeGoogleFetcher{}, &fakeAppleFetcher{}, "")

	_, err := svc.GoogleEvents(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entities.ErrCalendarNotConnected)
}

func TestGoogleEventsTouchesSyncTime(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAccountRepo{}
	token := "access"
	repo.accounts = append(repo.accounts, &entities.CalendarAccount{
		ID:          uuid.New(),
		UserID:      userID,
		Provider:    entities.CalendarProviderGoogle,
		AccessToken: &token,
	})

	google := &fakeGoogleFetcher{meetings: []entities.Meeting{{Title: "Planning", Source: entities.MeetingSourceGoogle}}}
	svc := newTestService(repo, google, &fakeAppleFetcher{}, "")

	meetings, err := svc.GoogleEvents(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)
	assert.Len(t, repo.touched, 1)
}

func TestConnectAppleStoresAccount(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAccountRepo{}
	apple := &fakeAppleFetcher{meetings: []entities.Meeting{{Title: "Dinner", Source: entities.MeetingSourceApple}}}
	svc := newTestService(repo, &fakeGoogleFetcher{}, apple, "")

	meetings, err := svc.ConnectApple(context.Background(), userID, "user@icloud.example", "app-pass")
	require.NoError(t, err)
	assert.Len(t, meetings, 1)
	assert.Equal(t, "user@icloud.example", apple.gotID)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, entities.CalendarProviderApple, repo.upserted.Provider)
	assert.Equal(t, userID, repo.upserted.UserID)
}

func TestConnectAppleRejectsBadCredentials(t *testing.T) {
	repo := &fakeAccountRepo{}
	apple := &fakeAppleFetcher{err: entities.ErrCalendarCredentials}
	svc := newTestService(repo, &fakeGoogleFetcher{}, apple, "")

	_, err := svc.ConnectApple(context.Background(), uuid.New(), "user@icloud.example", "wrong")
	assert.ErrorIs(t, err, entities.ErrCalendarCredentials)
	assert.Nil(t, repo.upserted)
}

func TestSyncMergesSources(t *testing.T) {
	userID := uuid.New()
	csvPath := writeTempCSV(t, sampleCSV)

	repo := &fakeAccountRepo{}
	token := "access"
	appleID := "user@icloud.example"
	appPass := "app-pass"
	repo.accounts = append(repo.accounts,
		&entities.CalendarAccount{ID: uuid.New(), UserID: userID, Provider: entities.CalendarProviderGoogle, AccessToken: &token},
		&entities.CalendarAccount{ID: uuid.New(), UserID: userID, Provider: entities.CalendarProviderApple, AppleID: &appleID, AppPassword: &appPass},
	)

	google := &fakeGoogleFetcher{meetings: []entities.Meeting{{Title: "Google sync", Source: entities.MeetingSourceGoogle}}}
	apple := &fakeAppleFetcher{meetings: []entities.Meeting{{Title: "Apple sync", Source: entities.MeetingSourceApple}}}
	svc := newTestService(repo, google, apple, csvPath)

	meetings, err := svc.Sync(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, meetings, 4)

	// CSV IDs are kept, provider events are numbered after them.
	ids := []int{meetings[0].ID, meetings[1].ID, meetings[2].ID, meetings[3].ID}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestSyncSkipsFailingSource(t *testing.T) {
	userID := uuid.New()
	csvPath := writeTempCSV(t, sampleCSV)

	repo := &fakeAccountRepo{}
	appleID := "user@icloud.example"
	appPass := "app-pass"
	repo.accounts = append(repo.accounts,
		&entities.CalendarAccount{ID: uuid.New(), UserID: userID, Provider: entities.CalendarProviderApple, AppleID: &appleID, AppPassword: &appPass},
	)

	apple := &fakeAppleFetcher{err: entities.ErrCalendarUnavailable}
	svc := newTestService(repo, &fakeGoogleFetcher{}, apple, csvPath)

	meetings, err := svc.Sync(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, meetings, 2)
}

func TestSyncWithoutLocalCSV(t *testing.T) {
	svc := newTestService(&fakeAccountRepo{}, &fakeGoogleFetcher{}, &fakeAppleFetcher{}, filepath.Join(t.TempDir(), "missing.csv"))

	meetings, err := svc.Sync(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestImportCSV(t *testing.T) {
	svc := newTestService(&fakeAccountRepo{}, &fakeGoogleFetcher{}, &fakeAppleFetcher{}, "")

	meetings, err := svc.ImportCSV(context.Background(), uuid.New(), sampleCSV)
	require.NoError(t, err)
	assert.Len(t, meetings, 2)

	_, err = svc.ImportCSV(context.Background(), uuid.New(), "id,title\n1,x\n")
	assert.Error(t, err)
}
