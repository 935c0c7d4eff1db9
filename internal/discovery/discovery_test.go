package discovery_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"mailscout/internal/discovery"
	mockdiscovery "mailscout/internal/discovery/mock"
	"mailscout/internal/validate"
	mockvalidate "mailscout/internal/validate/mock"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"mailscout/pkg/serrors"
	"mailscout/pkg/storage"
	mockstorage "mailscout/pkg/storage/mock"

	"go.uber.org/mock/gomock"
)

const targetKey = "acme.com"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

type testDeps struct {
	ctrl      *gomock.Controller
	storage   *mockstorage.MockStorage
	runner    *mockdiscovery.MockRunner
	validator *mockvalidate.MockValidator
	service   discovery.Discoverer
}

func newTestDiscoverer(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	runner := mockdiscovery.NewMockRunner(ctrl)
	validator := mockvalidate.NewMockValidator(ctrl)
	service := discovery.New(st, runner, validator, discovery.Options{
		MaxAttempts:        3,
		ResultCacheTTL:     time.Hour,
		ValidationCacheTTL: 6 * time.Hour,
	})

	return testDeps{ctrl: ctrl, storage: st, runner: runner, validator: validator, service: service}
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testTarget() domain.TargetDescriptor {
	return domain.TargetDescriptor{CompanyName: "Acme Corp", Domain: "acme.com"}
}

func TestDiscoverer_Enqueue_JobAdded(t *testing.T) {
	d := newTestDiscoverer(t)
	userID := domain.UserID{}

	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
				if len(discoveries) != 1 {
					t.Fatalf("expected one discovery input")
				}

				return discoveries, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	run, err := d.service.Enqueue(context.Background(), userID, testTarget())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run == nil {
		t.Fatalf("expected discovery, got nil")
	}
	if run.TargetKey != targetKey {
		t.Fatalf("expected target key %q got %q", targetKey, run.TargetKey)
	}
	if run.Target.WebsiteURL != "https://acme.com" {
		t.Fatalf("expected derived website URL, got %q", run.Target.WebsiteURL)
	}
	if run.Status != domain.DiscoveryStatusPending {
		t.Fatalf("expected status PENDING, got %s", run.Status)
	}
}

func TestDiscoverer_Enqueue_UsesLastCompletedResult(t *testing.T) {
	d := newTestDiscoverer(t)
	userID := domain.UserID{}
	completed := domain.Discovery{Result: domain.DiscoveryResult{
		Emails: []domain.EmailHit{{Address: "info@acme.com"}},
	}}

	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
				return discoveries, nil
			},
		)
		// Job not added (already exists)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		// There is a last completed run for the target key
		tx.EXPECT().LastCompletedByTargetKey(gomock.Any(), targetKey).Return(&completed, nil)
		// Update the newly created run to completed with that result
		tx.EXPECT().UpdateDiscoveryByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DiscoveryID, updates storage.DiscoveryUpdates) (*domain.Discovery, error) {
				if updates.Status != domain.DiscoveryStatusCompleted || updates.Result == nil {
					t.Fatalf("expected completed update with result")
				}
				res := domain.Discovery{Status: domain.DiscoveryStatusCompleted, Result: *updates.Result}

				return &res, nil
			},
		)
	})

	run, err := d.service.Enqueue(context.Background(), userID, testTarget())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != domain.DiscoveryStatusCompleted {
		t.Fatalf("expected status COMPLETED, got %s", run.Status)
	}
	if len(run.Result.Emails) != 1 {
		t.Fatalf("expected reused result, got %+v", run.Result)
	}
}

func TestDiscoverer_Enqueue_PendingWhenJobExistsWithoutResult(t *testing.T) {
	d := newTestDiscoverer(t)

	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
				return discoveries, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedByTargetKey(gomock.Any(), targetKey).Return(nil, nil)
	})

	run, err := d.service.Enqueue(context.Background(), domain.UserID{}, testTarget())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != domain.DiscoveryStatusPending {
		t.Fatalf("expected status PENDING, got %s", run.Status)
	}
}

func TestDiscoverer_Enqueue_InvalidTarget(t *testing.T) {
	d := newTestDiscoverer(t)
	// No storage calls expected

	_, err := d.service.Enqueue(context.Background(), domain.UserID{}, domain.TargetDescriptor{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	d.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
}

func TestDiscoverer_Enqueue_PropagatesErrors(t *testing.T) {
	d := newTestDiscoverer(t)
	userID := domain.UserID{}

	// error from StoreDiscoveries
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := d.service.Enqueue(context.Background(), userID, testTarget()); err == nil {
		t.Fatalf("expected error from StoreDiscoveries")
	}

	// error from AddJob
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
				return discoveries, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := d.service.Enqueue(context.Background(), userID, testTarget()); err == nil {
		t.Fatalf("expected error from AddJob")
	}

	// error from LastCompletedByTargetKey
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
				return discoveries, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedByTargetKey(gomock.Any(), targetKey).Return(nil, errors.New("last err"))
	})
	if _, err := d.service.Enqueue(context.Background(), userID, testTarget()); err == nil {
		t.Fatalf("expected error from LastCompletedByTargetKey")
	}

	// error from UpdateDiscoveryByID
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
				return discoveries, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedByTargetKey(gomock.Any(), targetKey).
			Return(&domain.Discovery{Result: domain.DiscoveryResult{}}, nil)
		tx.EXPECT().UpdateDiscoveryByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("update err"))
	})
	if _, err := d.service.Enqueue(context.Background(), userID, testTarget()); err == nil {
		t.Fatalf("expected error from UpdateDiscoveryByID")
	}
}

func TestDiscoverer_UserDiscoveries_SuccessAndPagination(t *testing.T) {
	d := newTestDiscoverer(t)
	userID := domain.UserID{}
	status := domain.DiscoveryStatusPending
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339)

	page := storage.UserDiscoveries{
		Discoveries: []domain.Discovery{{TargetKey: targetKey}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	d.storage.EXPECT().UserDiscoveries(gomock.Any(), userID, status, cursorTime, uint(10)).Return(page, nil)

	runs, next, err := d.service.UserDiscoveries(context.Background(), userID, status, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].TargetKey != targetKey {
		t.Fatalf("unexpected discoveries: %+v", runs)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestDiscoverer_UserDiscoveries_InvalidCursor(t *testing.T) {
	d := newTestDiscoverer(t)
	_, _, err := d.service.UserDiscoveries(context.Background(), domain.UserID{}, "", "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestDiscoverer_Result(t *testing.T) {
	d := newTestDiscoverer(t)
	userID := domain.UserID{}
	id := domain.DiscoveryID{}

	// found
	d.storage.EXPECT().DiscoveryByID(gomock.Any(), userID, id).
		Return(&domain.Discovery{TargetKey: targetKey}, nil)
	run, err := d.service.Result(context.Background(), userID, id)
	if err != nil || run == nil || run.TargetKey != targetKey {
		t.Fatalf("unexpected: run=%+v err=%v", run, err)
	}

	// not found
	d.storage.EXPECT().DiscoveryByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = d.service.Result(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	d.storage.EXPECT().DiscoveryByID(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	if _, err = d.service.Result(context.Background(), userID, id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDiscoverer_Delete(t *testing.T) {
	d := newTestDiscoverer(t)
	userID := domain.UserID{}
	id := domain.DiscoveryID{}

	// success
	d.storage.EXPECT().DeleteDiscovery(gomock.Any(), userID, id).Return(&domain.Discovery{}, nil)
	if err := d.service.Delete(context.Background(), userID, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	d.storage.EXPECT().DeleteDiscovery(gomock.Any(), userID, id).Return(nil, nil)
	err := d.service.Delete(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	d.storage.EXPECT().DeleteDiscovery(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	if err := d.service.Delete(context.Background(), userID, id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDiscoverer_Validate_UsesStoredVerdict(t *testing.T) {
	d := newTestDiscoverer(t)
	stored := domain.ValidationResult{Address: "info@acme.com", Valid: true}

	d.storage.EXPECT().ValidationByAddress(gomock.Any(), "info@acme.com", gomock.Any()).
		Return(&stored, nil)
	// no validator call expected

	res, err := d.service.Validate(context.Background(), "  Info@Acme.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != &stored {
		t.Fatalf("expected stored verdict to be returned")
	}
}

func TestDiscoverer_Validate_FreshVerdictPersisted(t *testing.T) {
	d := newTestDiscoverer(t)
	fresh := domain.ValidationResult{Address: "info@acme.com", Valid: true}

	d.storage.EXPECT().ValidationByAddress(gomock.Any(), "info@acme.com", gomock.Any()).Return(nil, nil)
	d.validator.EXPECT().Validate(gomock.Any(), "info@acme.com").Return(&fresh, nil)
	d.storage.EXPECT().UpsertValidation(gomock.Any(), fresh).Return(nil)

	res, err := d.service.Validate(context.Background(), "info@acme.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != &fresh {
		t.Fatalf("expected fresh verdict to be returned")
	}
}

func TestDiscoverer_Validate_UpsertFailureIsSoft(t *testing.T) {
	d := newTestDiscoverer(t)
	fresh := domain.ValidationResult{Address: "info@acme.com"}

	d.storage.EXPECT().ValidationByAddress(gomock.Any(), "info@acme.com", gomock.Any()).Return(nil, nil)
	d.validator.EXPECT().Validate(gomock.Any(), "info@acme.com").Return(&fresh, nil)
	d.storage.EXPECT().UpsertValidation(gomock.Any(), fresh).Return(errors.New("db down"))

	if _, err := d.service.Validate(context.Background(), "info@acme.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverer_Validate_SkipDNSBypassesStore(t *testing.T) {
	d := newTestDiscoverer(t)
	partial := domain.ValidationResult{Address: "info@acme.com", Valid: true}

	// no ValidationByAddress or UpsertValidation calls expected
	d.validator.EXPECT().Validate(gomock.Any(), "info@acme.com", gomock.Any()).Return(&partial, nil)

	res, err := d.service.Validate(context.Background(), "info@acme.com", validate.WithSkipDNS())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != &partial {
		t.Fatalf("expected partial verdict to be returned")
	}
}

func TestDiscoverer_Validate_EmptyAddress(t *testing.T) {
	d := newTestDiscoverer(t)

	_, err := d.service.Validate(context.Background(), "   ")
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestDiscoverer_Discover_ConflictWhenNoPendingRuns(t *testing.T) {
	d := newTestDiscoverer(t)

	d.storage.EXPECT().PendingCountByTargetKey(gomock.Any(), targetKey).Return(int64(0), nil)

	err := d.service.Discover(context.Background(), targetKey, testTarget())
	if err == nil || !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDiscoverer_Discover_Success(t *testing.T) {
	d := newTestDiscoverer(t)
	validation := domain.ValidationResult{Address: "info@acme.com", Valid: true}
	result := domain.DiscoveryResult{
		Emails: []domain.EmailHit{
			{Address: "info@acme.com", Validation: &validation},
			{Address: "hello@acme.com"},
		},
	}

	d.storage.EXPECT().PendingCountByTargetKey(gomock.Any(), targetKey).Return(int64(2), nil)
	d.runner.EXPECT().Run(gomock.Any(), testTarget()).Return(&result, nil)
	// only hits with a validation verdict are persisted
	d.storage.EXPECT().UpsertValidation(gomock.Any(), validation).Return(nil)
	d.storage.EXPECT().UpdatePendingByTargetKey(gomock.Any(), targetKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.DiscoveryUpdates) error {
			if updates.Status != domain.DiscoveryStatusCompleted {
				t.Fatalf("expected COMPLETED update, got %s", updates.Status)
			}
			if updates.Result == nil || len(updates.Result.Emails) != 2 {
				t.Fatalf("expected result with two hits")
			}
			if updates.LastError == nil || *updates.LastError != "" {
				t.Fatalf("expected last error to be cleared")
			}

			return nil
		},
	)

	if err := d.service.Discover(context.Background(), targetKey, testTarget()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverer_Discover_RunFailureMarksFailed(t *testing.T) {
	d := newTestDiscoverer(t)

	d.storage.EXPECT().PendingCountByTargetKey(gomock.Any(), targetKey).Return(int64(1), nil)
	d.runner.EXPECT().Run(gomock.Any(), testTarget()).Return(nil, errors.New("all sources down"))
	d.storage.EXPECT().UpdatePendingByTargetKey(gomock.Any(), targetKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.DiscoveryUpdates) error {
			if updates.Status != domain.DiscoveryStatusFailed {
				t.Fatalf("expected FAILED update, got %s", updates.Status)
			}
			if updates.MaxAttempts != 3 {
				t.Fatalf("expected max attempts guard, got %d", updates.MaxAttempts)
			}
			if updates.LastError == nil || *updates.LastError == "" {
				t.Fatalf("expected last error to be recorded")
			}

			return nil
		},
	)

	err := d.service.Discover(context.Background(), targetKey, testTarget())
	if err == nil {
		t.Fatalf("expected run error to propagate")
	}
}
