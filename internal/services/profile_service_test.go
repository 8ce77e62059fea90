package services

import (
	"context"
	"testing"

	"fintrack/internal/testutil"
)

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(testutil.SetupTestStore(t))

	_, err := svc.GetProfile(ctx)
	testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")

	_, err = svc.CompleteOnboarding(ctx, "   ")
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	profile, err := svc.CompleteOnboarding(ctx, " Meera ")
	testutil.AssertNoError(t, err)
	if profile.Name != "Meera" || !profile.HasCompletedOnboarding || profile.JoinedAt.IsZero() {
		t.Errorf("unexpected profile %+v", profile)
	}

	got, err := svc.GetProfile(ctx)
	testutil.AssertNoError(t, err)
	if got.Name != "Meera" {
		t.Errorf("expected Meera, got %q", got.Name)
	}

	testutil.AssertNoError(t, svc.ClearProfile(ctx))
	_, err = svc.GetProfile(ctx)
	testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
}

func TestProfileStorageFailure(t *testing.T) {
	svc := NewProfileService(failingGateway{})
	_, err := svc.GetProfile(context.Background())
	testutil.AssertAppError(t, err, "INTERNAL_ERROR")
}
