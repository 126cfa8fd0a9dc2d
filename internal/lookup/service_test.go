package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ytget/vocab-trainer/internal/dictionary"
	"github.com/ytget/vocab-trainer/internal/logger"
	mock_dictionary "github.com/ytget/vocab-trainer/internal/mocks/dictionary"
	"github.com/ytget/vocab-trainer/internal/model"
)

// recorder collects status updates from the service callback
type recorder struct {
	mu      sync.Mutex
	updates []model.Lookup
}

func (r *recorder) record(l *model.Lookup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, *l)
}

func (r *recorder) statuses() []model.LookupStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	statuses := make([]model.LookupStatus, 0, len(r.updates))
	for _, u := range r.updates {
		statuses = append(statuses, u.Status)
	}
	return statuses
}

func (r *recorder) lastUpdate() model.Lookup {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates[len(r.updates)-1]
}

func newTestService(t *testing.T) (*Service, *mock_dictionary.MockFetcher, *recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fetcher := mock_dictionary.NewMockFetcher(ctrl)
	service := NewService(fetcher, logger.Nop())
	rec := &recorder{}
	service.SetUpdateCallback(rec.record)
	return service, fetcher, rec
}

func TestNewService(t *testing.T) {
	service := NewService(nil, logger.Nop())

	_, ok := service.Active()
	assert.False(t, ok)
	_, ok = service.Last()
	assert.False(t, ok)
}

func TestStart_Completed(t *testing.T) {
	service, fetcher, rec := newTestService(t)

	entries := []model.Entry{
		{Headword: model.HeadwordInfo{Value: "gre*gar*i*ous"}},
		{Headword: model.HeadwordInfo{Value: "gre*gar*i*ous*ly"}},
	}
	fetcher.EXPECT().
		Fetch(gomock.Any(), model.DictionaryLearners, "gregarious").
		Return(entries, nil)

	lookup, err := service.Start(model.DictionaryLearners, "gregarious")
	require.NoError(t, err)
	assert.Equal(t, model.LookupStatusPending, lookup.Status)
	assert.Equal(t, "gregarious", lookup.Word)
	assert.True(t, strings.HasPrefix(lookup.ID, "lookup-"))

	service.Wait()

	assert.Equal(t, []model.LookupStatus{
		model.LookupStatusPending,
		model.LookupStatusFetching,
		model.LookupStatusCompleted,
	}, rec.statuses())

	final := rec.lastUpdate()
	assert.Equal(t, lookup.ID, final.ID)
	assert.Equal(t, entries, final.Entries)
	assert.NoError(t, final.LastError)
	assert.False(t, final.FinishedAt.IsZero())

	_, active := service.Active()
	assert.False(t, active)
	last, ok := service.Last()
	require.True(t, ok)
	assert.Equal(t, model.LookupStatusCompleted, last.Status)
}

func TestStart_Error(t *testing.T) {
	service, fetcher, rec := newTestService(t)

	fetchErr := &dictionary.DecodeError{Body: []byte("{"), Err: errors.New("unexpected end of JSON input")}
	fetcher.EXPECT().
		Fetch(gomock.Any(), model.DictionaryCollegiate, "broken").
		Return(nil, fetchErr)

	_, err := service.Start(model.DictionaryCollegiate, "broken")
	require.NoError(t, err)
	service.Wait()

	final := rec.lastUpdate()
	assert.Equal(t, model.LookupStatusError, final.Status)
	var decodeErr *dictionary.DecodeError
	assert.ErrorAs(t, final.LastError, &decodeErr)
	assert.Nil(t, final.Entries)
	assert.NotEmpty(t, final.ErrorText())
}

func TestStart_Validation(t *testing.T) {
	service, _, rec := newTestService(t)

	_, err := service.Start(model.DictionaryLearners, "   ")
	assert.ErrorIs(t, err, ErrEmptyWord)

	_, err = service.Start(model.Dictionary("thesaurus"), "word")
	assert.Error(t, err)

	assert.Empty(t, rec.statuses())
}

func TestStart_SingleFlight(t *testing.T) {
	service, fetcher, _ := newTestService(t)

	started := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), "first").
		DoAndReturn(func(ctx context.Context, _ model.Dictionary, _ string) ([]model.Entry, error) {
			close(started)
			<-release
			return []model.Entry{}, nil
		})

	_, err := service.Start(model.DictionaryLearners, "first")
	require.NoError(t, err)
	<-started

	active, ok := service.Active()
	require.True(t, ok)
	assert.Equal(t, model.LookupStatusFetching, active.Status)

	_, err = service.Start(model.DictionaryLearners, "second")
	assert.ErrorIs(t, err, ErrLookupInProgress)

	close(release)
	service.Wait()

	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), "second").
		Return([]model.Entry{}, nil)
	_, err = service.Start(model.DictionaryLearners, "second")
	require.NoError(t, err)
	service.Wait()
}

func TestCancel(t *testing.T) {
	service, fetcher, rec := newTestService(t)

	assert.ErrorIs(t, service.Cancel(), ErrNoActiveLookup)

	started := make(chan struct{})
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), "slow").
		DoAndReturn(func(ctx context.Context, _ model.Dictionary, _ string) ([]model.Entry, error) {
			close(started)
			<-ctx.Done()
			return nil, &dictionary.TransportError{URL: "u", Err: ctx.Err()}
		})

	_, err := service.Start(model.DictionaryLearners, "slow")
	require.NoError(t, err)
	<-started

	require.NoError(t, service.Cancel())

	done := make(chan struct{})
	go func() {
		service.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lookup did not stop after Cancel")
	}

	final := rec.lastUpdate()
	assert.Equal(t, model.LookupStatusCanceled, final.Status)
	assert.ErrorIs(t, final.LastError, context.Canceled)
}

func TestUpdateCallback_Optional(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock_dictionary.NewMockFetcher(ctrl)
	service := NewService(fetcher, logger.Nop())

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Entry{}, nil)

	_, err := service.Start(model.DictionaryLearners, "word")
	require.NoError(t, err)
	service.Wait()

	last, ok := service.Last()
	require.True(t, ok)
	assert.Equal(t, model.LookupStatusCompleted, last.Status)
}

func TestGenerateLookupID(t *testing.T) {
	id1 := generateLookupID()
	id2 := generateLookupID()

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, "lookup-"))
	// lookup- + 36 chars for UUID
	assert.Len(t, id1, len("lookup-")+36)
}
